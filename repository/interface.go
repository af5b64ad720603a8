package repository

import (
	"context"

	"catalogo-3d/models"
)

// DesignRepositoryInterface defines the contract for design repository operations
type DesignRepositoryInterface interface {
	ListAll(ctx context.Context) ([]models.Design, error)
	GetByID(ctx context.Context, id int64) (*models.Design, error)
	Create(ctx context.Context, req *models.DesignRequest) (*models.Design, error)
	Update(ctx context.Context, id int64, req *models.DesignRequest) (*models.Design, error)
	Delete(ctx context.Context, id int64) error
	// ApplyPercentage rescales every stored price by percent, rounding up.
	// Best-effort bulk update: prices are written one at a time and the first
	// failure aborts the loop with prior updates left applied.
	ApplyPercentage(ctx context.Context, percent float64) (int, error)
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	ListAll(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, name string, isActive bool) (*models.Category, error)
	Update(ctx context.Context, patch *models.CategoryPatchRequest) error
	Delete(ctx context.Context, id int64) error
}
