package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/noorix/hub/backend/auth"
	"github.com/noorix/hub/backend/store"
	"github.com/sirupsen/logrus"
)

const stateCookie = "oauth_state"

type AuthHandler struct {
	DB          *store.DB
	Google      *auth.GoogleAuthenticator
	Guard       *auth.Guard
	JWTSecret   string
	FrontendURL string
}

// Login starts the Google sign-in flow. The state nonce goes into a
// short-lived cookie and must come back unchanged on the callback.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		writeStoreError(w, "failed to start login", err)
		return
	}
	state := hex.EncodeToString(buf)
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.Google.AuthCodeURL(state), http.StatusFound)
}

// Callback finishes the flow: verifies state, exchanges the code for a
// verified identity, upserts the user record, and issues a session token.
// Record creation is a side effect of session issuance; there is no separate
// sign-up call.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || r.URL.Query().Get("state") != cookie.Value {
		writeMessage(w, http.StatusBadRequest, "invalid oauth state")
		return
	}
	code := r.URL.Query().Get("code")
	if code == "" {
		writeMessage(w, http.StatusBadRequest, "missing authorization code")
		return
	}
	identity, err := h.Google.Exchange(r.Context(), code)
	if err != nil {
		logrus.WithError(err).Warn("google exchange failed")
		writeMessage(w, http.StatusUnauthorized, "sign-in failed")
		return
	}
	user, err := h.DB.UpsertUserByEmail(r.Context(), identity.Email, identity.Name, identity.AvatarURL)
	if err != nil {
		writeStoreError(w, "failed to sign in", err)
		return
	}
	token, err := auth.NewToken(h.JWTSecret, user)
	if err != nil {
		writeStoreError(w, "failed to issue session", err)
		return
	}
	if h.FrontendURL != "" {
		http.Redirect(w, r, h.FrontendURL+"/auth/callback#token="+token, http.StatusFound)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "signed in", "token": token, "user": user})
}

// Me returns the caller's record and effective role. The role is resolved
// fresh, so a change made by root shows up here before any re-login.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if err := h.Guard.Authorize(r.Context(), sess, auth.AnyAuthenticated()); err != nil {
		writeGuardError(w, err)
		return
	}
	user, err := h.DB.UserByID(r.Context(), sess.UserID)
	if err != nil {
		writeStoreError(w, "failed to load user", err)
		return
	}
	if user == nil {
		writeMessage(w, http.StatusNotFound, "user not found")
		return
	}
	role := h.Guard.EffectiveRole(r.Context(), sess)
	writeJSON(w, http.StatusOK, envelope{"message": "ok", "user": user, "effectiveRole": role})
}

// Logout is client-side: the token is stateless and there is no revocation
// list, so the server has nothing to forget.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if err := h.Guard.Authorize(r.Context(), sess, auth.AnyAuthenticated()); err != nil {
		writeGuardError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "logged out")
}
