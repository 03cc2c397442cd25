package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/noorix/hub/backend/auth"
	"github.com/noorix/hub/backend/models"
	"github.com/noorix/hub/backend/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContentHandlesHandler struct {
	DB    *store.DB
	Guard *auth.Guard
}

type ContentHandleRequest struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

// List is public, sorted by position.
func (h *ContentHandlesHandler) List(w http.ResponseWriter, r *http.Request) {
	handles, err := h.DB.ListContentHandles(r.Context())
	if err != nil {
		writeStoreError(w, "failed to list content handles", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "ok", "contentHandles": handles})
}

func (h *ContentHandlesHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if err := h.Guard.Authorize(r.Context(), sess, auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	var req ContentHandleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Label == "" || req.URL == "" {
		writeMessage(w, http.StatusBadRequest, "label and url required")
		return
	}
	existing, err := h.DB.ListContentHandles(r.Context())
	if err != nil {
		writeStoreError(w, "failed to create content handle", err)
		return
	}
	handle := &models.ContentHandle{
		Label:     req.Label,
		URL:       req.URL,
		Icon:      req.Icon,
		Position:  len(existing), // append at the end
		CreatedBy: sess.UserID,
		CreatedAt: time.Now(),
	}
	id, err := h.DB.InsertContentHandle(r.Context(), handle)
	if err != nil {
		writeStoreError(w, "failed to create content handle", err)
		return
	}
	handle.ID = id
	writeJSON(w, http.StatusCreated, envelope{"message": "content handle created", "contentHandle": handle})
}

func (h *ContentHandlesHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := h.Guard.Authorize(r.Context(), session(r), auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid content handle id")
		return
	}
	var req ContentHandleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Label == "" || req.URL == "" {
		writeMessage(w, http.StatusBadRequest, "label and url required")
		return
	}
	handle, err := h.DB.ContentHandleByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, "failed to load content handle", err)
		return
	}
	if handle == nil {
		writeMessage(w, http.StatusNotFound, "content handle not found")
		return
	}
	handle.Label = req.Label
	handle.URL = req.URL
	handle.Icon = req.Icon
	if err := h.DB.UpdateContentHandle(r.Context(), id, handle); err != nil {
		writeStoreError(w, "failed to update content handle", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "content handle updated", "contentHandle": handle})
}

func (h *ContentHandlesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Guard.Authorize(r.Context(), session(r), auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid content handle id")
		return
	}
	deleted, err := h.DB.DeleteContentHandle(r.Context(), id)
	if err != nil {
		writeStoreError(w, "failed to delete content handle", err)
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "content handle not found")
		return
	}
	writeMessage(w, http.StatusOK, "content handle deleted")
}

type ReorderRequest struct {
	IDs []string `json:"ids"`
}

// Reorder assigns each handle the position of its index in the request.
// Malformed ids are rejected up front; ids that match no document are
// silently skipped. The writes are independent, one per id — not a
// transaction. Position is a display hint, so a partially applied reorder
// still leaves a usable ordering.
func (h *ContentHandlesHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	if err := h.Guard.Authorize(r.Context(), session(r), auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if len(req.IDs) == 0 {
		writeMessage(w, http.StatusBadRequest, "ids required")
		return
	}
	ids := make([]primitive.ObjectID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid content handle id: "+raw)
			return
		}
		ids = append(ids, id)
	}
	for i, id := range ids {
		if err := h.DB.SetContentHandlePosition(r.Context(), id, i); err != nil {
			writeStoreError(w, "failed to reorder content handles", err)
			return
		}
	}
	writeMessage(w, http.StatusOK, "content handles reordered")
}
