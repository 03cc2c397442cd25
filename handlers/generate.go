package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/noorix/hub/backend/auth"
	"github.com/noorix/hub/backend/service"
)

type GenerateHandler struct {
	Guard *auth.Guard
	AI    *service.AIGenerator
}

type GenerateRequest struct {
	Topic string `json:"topic"`
	Tone  string `json:"tone"`
}

// Generate drafts content copy with the configured model. Content managers
// only; the draft is returned to the caller and not persisted.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if err := h.Guard.Authorize(r.Context(), session(r), auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	if h.AI == nil {
		writeMessage(w, http.StatusServiceUnavailable, "draft generation not configured")
		return
	}
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		writeMessage(w, http.StatusBadRequest, "topic required")
		return
	}
	draft, err := h.AI.Draft(r.Context(), req.Topic, req.Tone)
	if err != nil {
		writeStoreError(w, "failed to generate draft", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "draft generated", "draft": draft})
}
