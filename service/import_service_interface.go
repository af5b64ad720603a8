package service

import (
	"context"

	"catalogo-3d/models"
)

// ImportServiceInterface defines the contract for the bulk image import
type ImportServiceInterface interface {
	ImportFromFolder(ctx context.Context, folderID string) (*models.ImportResult, error)
}
