package models

// DesignRequest represents the request body for creating or updating a design.
// Price arrives as a JSON number and is rounded to an integer before storage.
// On update, an empty Images list leaves the existing image set untouched.
type DesignRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
}

// Validate checks the required fields shared by create and update
func (r *DesignRequest) Validate() error {
	if r.Title == "" || r.Description == "" || r.Price <= 0 {
		return NewValidationError("title, description and a positive price are required")
	}
	return nil
}

// PercentageRequest represents the request body for the bulk price adjustment
type PercentageRequest struct {
	Percentage *float64 `json:"percentage"`
}

// Validate checks that a percentage value was supplied
func (r *PercentageRequest) Validate() error {
	if r.Percentage == nil {
		return NewValidationError("percentage must be a number")
	}
	return nil
}
