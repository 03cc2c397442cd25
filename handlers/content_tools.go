package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/noorix/hub/backend/auth"
	"github.com/noorix/hub/backend/models"
	"github.com/noorix/hub/backend/store"
	"github.com/noorix/hub/backend/utils"
)

type ContentToolsHandler struct {
	DB    *store.DB
	Guard *auth.Guard
}

type ContentToolRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	IconURL     string `json:"iconUrl"`
	Tags        string `json:"tags"` // comma-separated
}

func (h *ContentToolsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.ContentFilter{
		Query: r.URL.Query().Get("q"),
		Tag:   r.URL.Query().Get("tag"),
	}
	tools, err := h.DB.ListContentTools(r.Context(), filter)
	if err != nil {
		writeStoreError(w, "failed to list content tools", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "ok", "contentTools": tools})
}

func (h *ContentToolsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid content tool id")
		return
	}
	tool, err := h.DB.ContentToolByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, "failed to load content tool", err)
		return
	}
	if tool == nil {
		writeMessage(w, http.StatusNotFound, "content tool not found")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "ok", "contentTool": tool})
}

func (h *ContentToolsHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if err := h.Guard.Authorize(r.Context(), sess, auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	var req ContentToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Name == "" || req.Description == "" {
		writeMessage(w, http.StatusBadRequest, "name and description required")
		return
	}
	now := time.Now()
	tool := &models.ContentTool{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
		IconURL:     req.IconURL,
		Tags:        utils.NormalizeTags(req.Tags),
		CreatedBy:   sess.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := h.DB.InsertContentTool(r.Context(), tool)
	if err != nil {
		writeStoreError(w, "failed to create content tool", err)
		return
	}
	tool.ID = id
	writeJSON(w, http.StatusCreated, envelope{"message": "content tool created", "contentTool": tool})
}

func (h *ContentToolsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := h.Guard.Authorize(r.Context(), session(r), auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid content tool id")
		return
	}
	var req ContentToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Name == "" || req.Description == "" {
		writeMessage(w, http.StatusBadRequest, "name and description required")
		return
	}
	tool, err := h.DB.ContentToolByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, "failed to load content tool", err)
		return
	}
	if tool == nil {
		writeMessage(w, http.StatusNotFound, "content tool not found")
		return
	}
	tool.Name = req.Name
	tool.Description = req.Description
	tool.URL = req.URL
	tool.IconURL = req.IconURL
	tool.Tags = utils.NormalizeTags(req.Tags)
	tool.UpdatedAt = time.Now()
	if err := h.DB.UpdateContentTool(r.Context(), id, tool); err != nil {
		writeStoreError(w, "failed to update content tool", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "content tool updated", "contentTool": tool})
}

func (h *ContentToolsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Guard.Authorize(r.Context(), session(r), auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid content tool id")
		return
	}
	deleted, err := h.DB.DeleteContentTool(r.Context(), id)
	if err != nil {
		writeStoreError(w, "failed to delete content tool", err)
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "content tool not found")
		return
	}
	writeMessage(w, http.StatusOK, "content tool deleted")
}
