package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/noorix/hub/backend/auth"
	"github.com/noorix/hub/backend/middleware"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// All responses share one envelope: {"message": ...} plus data fields on
// success, plus "error" with the underlying message on a 500.
type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{"message": message})
}

// writeStoreError logs the store failure and returns a generic 500. The
// underlying message is passed through as a diagnostic.
func writeStoreError(w http.ResponseWriter, what string, err error) {
	logrus.WithError(err).Error(what)
	writeJSON(w, http.StatusInternalServerError, envelope{"message": what, "error": err.Error()})
}

// writeGuardError maps guard denials onto status codes: 401 when there is no
// valid session, 403 when the session's role is insufficient.
func writeGuardError(w http.ResponseWriter, err error) {
	if errors.Is(err, auth.ErrUnauthenticated) {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}
	writeMessage(w, http.StatusForbidden, "insufficient permissions")
}

func session(r *http.Request) *auth.Session {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		return nil
	}
	return sess
}

func idParam(r *http.Request) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
}
