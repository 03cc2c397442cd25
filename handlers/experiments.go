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

type ExperimentsHandler struct {
	DB    *store.DB
	Guard *auth.Guard
}

type ExperimentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	LinkURL     string `json:"linkUrl"`
	ImageURL    string `json:"imageUrl"`
	Tags        string `json:"tags"` // comma-separated
}

func (h *ExperimentsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.ContentFilter{
		Query: r.URL.Query().Get("q"),
		Tag:   r.URL.Query().Get("tag"),
	}
	exps, err := h.DB.ListExperiments(r.Context(), filter)
	if err != nil {
		writeStoreError(w, "failed to list experiments", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "ok", "experiments": exps})
}

func (h *ExperimentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid experiment id")
		return
	}
	exp, err := h.DB.ExperimentByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, "failed to load experiment", err)
		return
	}
	if exp == nil {
		writeMessage(w, http.StatusNotFound, "experiment not found")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "ok", "experiment": exp})
}

func (h *ExperimentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if err := h.Guard.Authorize(r.Context(), sess, auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	var req ExperimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Title == "" || req.Description == "" {
		writeMessage(w, http.StatusBadRequest, "title and description required")
		return
	}
	now := time.Now()
	exp := &models.Experiment{
		Title:       req.Title,
		Description: req.Description,
		LinkURL:     req.LinkURL,
		ImageURL:    req.ImageURL,
		Tags:        utils.NormalizeTags(req.Tags),
		CreatedBy:   sess.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := h.DB.InsertExperiment(r.Context(), exp)
	if err != nil {
		writeStoreError(w, "failed to create experiment", err)
		return
	}
	exp.ID = id
	writeJSON(w, http.StatusCreated, envelope{"message": "experiment created", "experiment": exp})
}

func (h *ExperimentsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := h.Guard.Authorize(r.Context(), session(r), auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid experiment id")
		return
	}
	var req ExperimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Title == "" || req.Description == "" {
		writeMessage(w, http.StatusBadRequest, "title and description required")
		return
	}
	exp, err := h.DB.ExperimentByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, "failed to load experiment", err)
		return
	}
	if exp == nil {
		writeMessage(w, http.StatusNotFound, "experiment not found")
		return
	}
	exp.Title = req.Title
	exp.Description = req.Description
	exp.LinkURL = req.LinkURL
	exp.ImageURL = req.ImageURL
	exp.Tags = utils.NormalizeTags(req.Tags)
	exp.UpdatedAt = time.Now()
	if err := h.DB.UpdateExperiment(r.Context(), id, exp); err != nil {
		writeStoreError(w, "failed to update experiment", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "experiment updated", "experiment": exp})
}

func (h *ExperimentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Guard.Authorize(r.Context(), session(r), auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid experiment id")
		return
	}
	deleted, err := h.DB.DeleteExperiment(r.Context(), id)
	if err != nil {
		writeStoreError(w, "failed to delete experiment", err)
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "experiment not found")
		return
	}
	writeMessage(w, http.StatusOK, "experiment deleted")
}
