package service

import "context"

// CatalogServiceInterface defines the contract for catalog export operations
type CatalogServiceInterface interface {
	RenderCatalogHTML(ctx context.Context) (string, error)
	GeneratePDF(ctx context.Context) ([]byte, error)
}
