package controller

import (
	"net/http"

	"catalogo-3d/models"
	"catalogo-3d/repository"
)

// CategoryController handles HTTP requests for categories
type CategoryController struct {
	repository repository.CategoryRepositoryInterface
}

// NewCategoryController creates a new CategoryController
func NewCategoryController(repo repository.CategoryRepositoryInterface) *CategoryController {
	return &CategoryController{repository: repo}
}

// List handles GET /api/categories, newest first
func (c *CategoryController) List(w http.ResponseWriter, r *http.Request) {
	categories, err := c.repository.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// Create handles POST /api/categories.
// The created record is returned wrapped in a list.
func (c *CategoryController) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category, err := c.repository.Create(r.Context(), req.Name, isActive)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, []models.Category{*category})
}

// Patch handles PATCH /api/categories: only supplied fields change
func (c *CategoryController) Patch(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	if err := c.repository.Update(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Delete handles DELETE /api/categories with body {id}
func (c *CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.ID == 0 {
		writeError(w, models.NewValidationError("category id is required"))
		return
	}

	if err := c.repository.Delete(r.Context(), req.ID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
