package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/noorix/hub/backend/auth"
	"github.com/noorix/hub/backend/models"
	"github.com/noorix/hub/backend/service"
	"github.com/noorix/hub/backend/store"
	"github.com/sirupsen/logrus"
)

type FeedbackHandler struct {
	DB     *store.DB
	Guard  *auth.Guard
	Mailer *service.Mailer
}

type CreateFeedbackRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Create is open to any signed-in user; the item is owned by its submitter.
// When SMTP is configured the inbox gets a notification; a mail failure is
// logged and the request still succeeds.
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if err := h.Guard.Authorize(r.Context(), sess, auth.AnyAuthenticated()); err != nil {
		writeGuardError(w, err)
		return
	}
	var req CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Message) == "" {
		writeMessage(w, http.StatusBadRequest, "subject and message required")
		return
	}
	now := time.Now()
	fb := &models.Feedback{
		Subject:        strings.TrimSpace(req.Subject),
		Message:        strings.TrimSpace(req.Message),
		Status:         models.FeedbackNew,
		CreatedBy:      sess.UserID,
		CreatedByEmail: sess.Email,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	id, err := h.DB.InsertFeedback(r.Context(), fb)
	if err != nil {
		writeStoreError(w, "failed to submit feedback", err)
		return
	}
	fb.ID = id
	if h.Mailer.Configured() {
		if err := h.Mailer.NotifyFeedback(fb); err != nil {
			logrus.WithError(err).Warn("feedback notification mail failed")
		}
	}
	writeJSON(w, http.StatusCreated, envelope{"message": "feedback submitted", "feedback": fb})
}

// MyFeedback lists the caller's own submissions only.
func (h *FeedbackHandler) MyFeedback(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if err := h.Guard.Authorize(r.Context(), sess, auth.AnyAuthenticated()); err != nil {
		writeGuardError(w, err)
		return
	}
	items, err := h.DB.ListFeedback(r.Context(), store.FeedbackFilter{CreatedBy: &sess.UserID})
	if err != nil {
		writeStoreError(w, "failed to list feedback", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "ok", "feedback": items})
}

// List is the full admin inbox, optionally narrowed by ?status=.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := h.Guard.Authorize(r.Context(), session(r), auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	status := r.URL.Query().Get("status")
	if status != "" && !models.FeedbackStatusValid(models.FeedbackStatus(status)) {
		writeMessage(w, http.StatusBadRequest, "invalid status filter")
		return
	}
	items, err := h.DB.ListFeedback(r.Context(), store.FeedbackFilter{Status: status})
	if err != nil {
		writeStoreError(w, "failed to list feedback", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "ok", "feedback": items})
}

func (h *FeedbackHandler) Get(w http.ResponseWriter, r *http.Request) {
	if err := h.Guard.Authorize(r.Context(), session(r), auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid feedback id")
		return
	}
	fb, err := h.DB.FeedbackByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, "failed to load feedback", err)
		return
	}
	if fb == nil {
		writeMessage(w, http.StatusNotFound, "feedback not found")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "ok", "feedback": fb})
}

type ReviewFeedbackRequest struct {
	Status        *models.FeedbackStatus `json:"status"`
	AdminResponse *string                `json:"adminResponse"`
}

// Update sets status and/or adminResponse. Status may move to any of the
// four values from any other; there is no enforced transition order.
func (h *FeedbackHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := h.Guard.Authorize(r.Context(), session(r), auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid feedback id")
		return
	}
	var req ReviewFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Status == nil && req.AdminResponse == nil {
		writeMessage(w, http.StatusBadRequest, "nothing to update")
		return
	}
	if req.Status != nil && !models.FeedbackStatusValid(*req.Status) {
		writeMessage(w, http.StatusBadRequest, "invalid status")
		return
	}
	fb, err := h.DB.FeedbackByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, "failed to load feedback", err)
		return
	}
	if fb == nil {
		writeMessage(w, http.StatusNotFound, "feedback not found")
		return
	}
	if err := h.DB.UpdateFeedbackReview(r.Context(), id, req.Status, req.AdminResponse); err != nil {
		writeStoreError(w, "failed to update feedback", err)
		return
	}
	fb, err = h.DB.FeedbackByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, "failed to load feedback", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "feedback updated", "feedback": fb})
}

func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Guard.Authorize(r.Context(), session(r), auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid feedback id")
		return
	}
	deleted, err := h.DB.DeleteFeedback(r.Context(), id)
	if err != nil {
		writeStoreError(w, "failed to delete feedback", err)
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "feedback not found")
		return
	}
	writeMessage(w, http.StatusOK, "feedback deleted")
}
