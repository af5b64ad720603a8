package controller

import (
	"io"
	"net/http"

	"catalogo-3d/models"
	"catalogo-3d/service"
)

// maxUploadSize caps multipart uploads at 10MB, matching the bucket limit
const maxUploadSize = 10 << 20

// UploadController handles HTTP requests for image uploads
type UploadController struct {
	uploadService service.UploadServiceInterface
}

// NewUploadController creates a new UploadController
func NewUploadController(uploadService service.UploadServiceInterface) *UploadController {
	return &UploadController{uploadService: uploadService}
}

// Upload handles POST /api/upload (multipart form, field "file")
func (c *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, models.NewValidationError("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, models.NewValidationError("no file provided"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, err)
		return
	}

	url, err := c.uploadService.Upload(r.Context(), data, header.Header.Get("Content-Type"), header.Filename)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
