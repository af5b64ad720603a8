package service

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"catalogo-3d/models"
	"catalogo-3d/utils"
)

// designsPrefix is the logical path prefix for uploaded design images
const designsPrefix = "designs/"

// UploadService validates uploaded images and stores them in the bucket.
// Implements UploadServiceInterface
type UploadService struct {
	storage StorageClientInterface
}

// NewUploadService creates a new UploadService
func NewUploadService(storage StorageClientInterface) *UploadService {
	return &UploadService{storage: storage}
}

// Ensure UploadService implements UploadServiceInterface
var _ UploadServiceInterface = (*UploadService)(nil)

// Upload validates the declared MIME type, stores the bytes under a
// collision-resistant name and returns the public URL. A JPEG thumbnail is
// stored alongside under designs/thumbs/; thumbnail failures are logged and
// never fail the upload.
//
// Storage writes are not transactional with repository writes: an uploaded
// image whose design-create call later fails stays orphaned in the bucket.
func (s *UploadService) Upload(ctx context.Context, data []byte, declaredMimeType, originalName string) (string, error) {
	if !strings.HasPrefix(declaredMimeType, "image/") {
		return "", models.NewValidationError("file must be an image")
	}

	if _, err := s.storage.EnsureBucket(ctx); err != nil {
		return "", fmt.Errorf("failed to ensure storage bucket: %w", err)
	}

	fileName := utils.UniqueFileName(originalName)
	path := designsPrefix + fileName

	if err := s.storage.Upload(ctx, path, data, declaredMimeType); err != nil {
		return "", err
	}

	s.storeThumbnail(ctx, fileName, data)

	return s.storage.PublicURL(path), nil
}

// storeThumbnail writes a reduced JPEG variant next to the original
func (s *UploadService) storeThumbnail(ctx context.Context, fileName string, data []byte) {
	thumb, err := OptimizeImage(data, "thumb")
	if err != nil {
		log.Printf("⚠️  Warning: Failed to build thumbnail for %s: %v", fileName, err)
		return
	}

	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	thumbPath := designsPrefix + "thumbs/" + base + ".jpg"
	if err := s.storage.Upload(ctx, thumbPath, thumb, "image/jpeg"); err != nil {
		log.Printf("⚠️  Warning: Failed to store thumbnail %s: %v", thumbPath, err)
	}
}
