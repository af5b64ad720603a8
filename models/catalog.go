package models

// CatalogEntry represents a single design on a printable catalog page
type CatalogEntry struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	ImageURL       string `json:"imageUrl"`
	FormattedPrice string `json:"formattedPrice"`
}
