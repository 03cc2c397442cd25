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

type ProductsHandler struct {
	DB    *store.DB
	Guard *auth.Guard
}

type ProductRequest struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	LinkURL     string `json:"linkUrl"`
	Tags        string `json:"tags"` // comma-separated
}

func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.ContentFilter{
		Query: r.URL.Query().Get("q"),
		Tag:   r.URL.Query().Get("tag"),
	}
	products, err := h.DB.ListProducts(r.Context(), filter)
	if err != nil {
		writeStoreError(w, "failed to list products", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "ok", "products": products})
}

func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid product id")
		return
	}
	product, err := h.DB.ProductByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, "failed to load product", err)
		return
	}
	if product == nil {
		writeMessage(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "ok", "product": product})
}

func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if err := h.Guard.Authorize(r.Context(), sess, auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Name == "" || req.Description == "" {
		writeMessage(w, http.StatusBadRequest, "name and description required")
		return
	}
	now := time.Now()
	product := &models.Product{
		Name:        req.Name,
		Tagline:     req.Tagline,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		LinkURL:     req.LinkURL,
		Tags:        utils.NormalizeTags(req.Tags),
		CreatedBy:   sess.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := h.DB.InsertProduct(r.Context(), product)
	if err != nil {
		writeStoreError(w, "failed to create product", err)
		return
	}
	product.ID = id
	writeJSON(w, http.StatusCreated, envelope{"message": "product created", "product": product})
}

func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := h.Guard.Authorize(r.Context(), session(r), auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid product id")
		return
	}
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Name == "" || req.Description == "" {
		writeMessage(w, http.StatusBadRequest, "name and description required")
		return
	}
	product, err := h.DB.ProductByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, "failed to load product", err)
		return
	}
	if product == nil {
		writeMessage(w, http.StatusNotFound, "product not found")
		return
	}
	product.Name = req.Name
	product.Tagline = req.Tagline
	product.Description = req.Description
	product.ImageURL = req.ImageURL
	product.LinkURL = req.LinkURL
	product.Tags = utils.NormalizeTags(req.Tags)
	product.UpdatedAt = time.Now()
	if err := h.DB.UpdateProduct(r.Context(), id, product); err != nil {
		writeStoreError(w, "failed to update product", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "product updated", "product": product})
}

func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Guard.Authorize(r.Context(), session(r), auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid product id")
		return
	}
	deleted, err := h.DB.DeleteProduct(r.Context(), id)
	if err != nil {
		writeStoreError(w, "failed to delete product", err)
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "product not found")
		return
	}
	writeMessage(w, http.StatusOK, "product deleted")
}
