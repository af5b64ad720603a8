package models

import "time"

// Category represents an administrable catalog category.
// Deactivation is a soft toggle (is_active), not a delete.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryCreateRequest represents the request body for creating a category
type CategoryCreateRequest struct {
	Name     string `json:"name"`
	IsActive *bool  `json:"is_active"`
}

// Validate checks that the category name is present
func (r *CategoryCreateRequest) Validate() error {
	if r.Name == "" {
		return NewValidationError("category name is required")
	}
	return nil
}

// CategoryPatchRequest represents a partial update: only supplied fields change
type CategoryPatchRequest struct {
	ID       int64   `json:"id"`
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

// Validate checks that the target id is present
func (r *CategoryPatchRequest) Validate() error {
	if r.ID == 0 {
		return NewValidationError("category id is required")
	}
	return nil
}
