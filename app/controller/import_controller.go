package controller

import (
	"errors"
	"net/http"

	"catalogo-3d/models"
	"catalogo-3d/service"
)

// ImportController handles HTTP requests for the Drive image import
type ImportController struct {
	importService service.ImportServiceInterface
}

// NewImportController creates a new ImportController.
// importService may be nil when Drive credentials are not configured.
func NewImportController(importService service.ImportServiceInterface) *ImportController {
	return &ImportController{importService: importService}
}

// Import handles POST /api/designs/import with body {folderId}
func (c *ImportController) Import(w http.ResponseWriter, r *http.Request) {
	if c.importService == nil {
		writeError(w, errors.New("drive import is not configured"))
		return
	}

	var req struct {
		FolderID string `json:"folderId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.FolderID == "" {
		writeError(w, models.NewValidationError("folderId is required"))
		return
	}

	result, err := c.importService.ImportFromFolder(r.Context(), req.FolderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
