package models

// DriveImage represents an image file found in a Google Drive folder
type DriveImage struct {
	FileID   string `json:"fileId"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
}

// ImportResult summarizes a bulk image import from Google Drive.
// URLs are the public storage URLs of the imported images, ready to be
// attached to a design.
type ImportResult struct {
	URLs     []string `json:"urls"`
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Total    int      `json:"total"`
	Errors   []string `json:"errors,omitempty"`
}
