package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gosimple/slug"
	"github.com/noorix/hub/backend/auth"
	"github.com/noorix/hub/backend/models"
	"github.com/noorix/hub/backend/store"
	"github.com/noorix/hub/backend/utils"
)

type BlogsHandler struct {
	DB    *store.DB
	Guard *auth.Guard
}

type BlogRequest struct {
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content"`
	CoverImageURL string `json:"coverImageUrl"`
	Tags          string `json:"tags"` // comma-separated
	Published     bool   `json:"published"`
}

// List is public. Supports ?q= substring search and ?tag= filtering.
func (h *BlogsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.ContentFilter{
		Query: r.URL.Query().Get("q"),
		Tag:   r.URL.Query().Get("tag"),
	}
	blogs, err := h.DB.ListBlogs(r.Context(), filter)
	if err != nil {
		writeStoreError(w, "failed to list blogs", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "ok", "blogs": blogs})
}

func (h *BlogsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid blog id")
		return
	}
	blog, err := h.DB.BlogByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, "failed to load blog", err)
		return
	}
	if blog == nil {
		writeMessage(w, http.StatusNotFound, "blog not found")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "ok", "blog": blog})
}

func (h *BlogsHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if err := h.Guard.Authorize(r.Context(), sess, auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	var req BlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Title == "" || req.Content == "" {
		writeMessage(w, http.StatusBadRequest, "title and content required")
		return
	}
	now := time.Now()
	blog := &models.Blog{
		Title:         req.Title,
		Slug:          slug.Make(req.Title),
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		Tags:          utils.NormalizeTags(req.Tags),
		Published:     req.Published,
		CreatedBy:     sess.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	id, err := h.DB.InsertBlog(r.Context(), blog)
	if err != nil {
		writeStoreError(w, "failed to create blog", err)
		return
	}
	blog.ID = id
	writeJSON(w, http.StatusCreated, envelope{"message": "blog created", "blog": blog})
}

func (h *BlogsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := h.Guard.Authorize(r.Context(), session(r), auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid blog id")
		return
	}
	var req BlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Title == "" || req.Content == "" {
		writeMessage(w, http.StatusBadRequest, "title and content required")
		return
	}
	blog, err := h.DB.BlogByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, "failed to load blog", err)
		return
	}
	if blog == nil {
		writeMessage(w, http.StatusNotFound, "blog not found")
		return
	}
	blog.Title = req.Title
	blog.Slug = slug.Make(req.Title)
	blog.Excerpt = req.Excerpt
	blog.Content = req.Content
	blog.CoverImageURL = req.CoverImageURL
	blog.Tags = utils.NormalizeTags(req.Tags)
	blog.Published = req.Published
	blog.UpdatedAt = time.Now()
	if err := h.DB.UpdateBlog(r.Context(), id, blog); err != nil {
		writeStoreError(w, "failed to update blog", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "blog updated", "blog": blog})
}

func (h *BlogsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Guard.Authorize(r.Context(), session(r), auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid blog id")
		return
	}
	deleted, err := h.DB.DeleteBlog(r.Context(), id)
	if err != nil {
		writeStoreError(w, "failed to delete blog", err)
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "blog not found")
		return
	}
	writeMessage(w, http.StatusOK, "blog deleted")
}
