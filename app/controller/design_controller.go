package controller

import (
	"net/http"
	"strconv"
	"strings"

	"catalogo-3d/models"
	"catalogo-3d/repository"
)

// DesignController handles HTTP requests for designs
type DesignController struct {
	repository repository.DesignRepositoryInterface
}

// NewDesignController creates a new DesignController
func NewDesignController(repo repository.DesignRepositoryInterface) *DesignController {
	return &DesignController{repository: repo}
}

// List handles GET /api/designs
// Returns every design with its images, newest first
func (c *DesignController) List(w http.ResponseWriter, r *http.Request) {
	designs, err := c.repository.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, designs)
}

// Create handles POST /api/designs
func (c *DesignController) Create(w http.ResponseWriter, r *http.Request) {
	var req models.DesignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	design, err := c.repository.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, design)
}

// parseID extracts the design id from a /api/designs/{id} path
func parseID(path string) (int64, error) {
	raw := strings.TrimPrefix(path, "/api/designs/")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, models.NewValidationError("invalid design id")
	}
	return id, nil
}

// GetByID handles GET /api/designs/{id}
func (c *DesignController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Path)
	if err != nil {
		writeError(w, err)
		return
	}

	design, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, design)
}

// Update handles PUT /api/designs/{id}
// A non-empty images list replaces the whole image set; an empty or absent
// list leaves existing images untouched.
func (c *DesignController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Path)
	if err != nil {
		writeError(w, err)
		return
	}

	var req models.DesignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	design, err := c.repository.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, design)
}

// Delete handles DELETE /api/designs/{id}
// Image rows go with the design via the store's cascade
func (c *DesignController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Path)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := c.repository.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ApplyPercentage handles POST /api/designs/percentage
// Best-effort bulk update: a failure part-way leaves earlier price
// updates applied.
func (c *DesignController) ApplyPercentage(w http.ResponseWriter, r *http.Request) {
	var req models.PercentageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	updated, err := c.repository.ApplyPercentage(r.Context(), *req.Percentage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"updatedCount": updated,
	})
}
