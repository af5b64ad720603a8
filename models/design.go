package models

import "time"

// Design represents a sellable 3D-printed product listing
type Design struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Price       int64         `json:"price"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Images      []DesignImage `json:"images"`
}

// DesignImage represents one image of a design.
// display_order is a 0-based, gapless sort key assigned on write.
type DesignImage struct {
	ID           int64  `json:"id"`
	DesignID     int64  `json:"design_id"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
}
