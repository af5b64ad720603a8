package controller

import (
	"net/http"

	"catalogo-3d/service"
)

// StorageController handles HTTP requests for storage initialization
type StorageController struct {
	storage service.StorageClientInterface
}

// NewStorageController creates a new StorageController
func NewStorageController(storage service.StorageClientInterface) *StorageController {
	return &StorageController{storage: storage}
}

// InitStorage handles GET /api/init-storage
// Idempotent: creates the public images bucket only when absent
func (c *StorageController) InitStorage(w http.ResponseWriter, r *http.Request) {
	existed, err := c.storage.EnsureBucket(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{
		"success":      true,
		"bucketExists": existed,
	})
}
