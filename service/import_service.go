package service

import (
	"context"
	"fmt"
	"log"

	"catalogo-3d/models"
)

// ImportService copies images from a Google Drive folder into the storage
// bucket, so the resulting URLs can be attached to new designs.
// Implements ImportServiceInterface
type ImportService struct {
	driveService  DriveServiceInterface
	uploadService UploadServiceInterface
}

// NewImportService creates a new ImportService
func NewImportService(driveService DriveServiceInterface, uploadService UploadServiceInterface) *ImportService {
	return &ImportService{
		driveService:  driveService,
		uploadService: uploadService,
	}
}

// Ensure ImportService implements ImportServiceInterface
var _ ImportServiceInterface = (*ImportService)(nil)

// ImportFromFolder downloads every image in the Drive folder and uploads it
// into the bucket. Per-file failures are collected and reported in the
// result, not fatal; only the folder listing itself can fail the import.
func (s *ImportService) ImportFromFolder(ctx context.Context, folderID string) (*models.ImportResult, error) {
	log.Printf("🔄 Starting image import from Drive folder: %s", folderID)

	images, err := s.driveService.ListImages(folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images from Drive: %w", err)
	}

	result := &models.ImportResult{
		URLs:  []string{},
		Total: len(images),
	}
	log.Printf("📦 Processing %d images from Google Drive", len(images))

	for _, img := range images {
		data, err := s.driveService.DownloadImage(img.FileID)
		if err != nil {
			errorMsg := fmt.Sprintf("failed to download %s (%s): %v", img.Name, img.FileID, err)
			log.Printf("❌ %s", errorMsg)
			result.Errors = append(result.Errors, errorMsg)
			result.Failed++
			continue
		}

		url, err := s.uploadService.Upload(ctx, data, img.MimeType, img.Name)
		if err != nil {
			errorMsg := fmt.Sprintf("failed to store %s (%s): %v", img.Name, img.FileID, err)
			log.Printf("❌ %s", errorMsg)
			result.Errors = append(result.Errors, errorMsg)
			result.Failed++
			continue
		}

		log.Printf("✅ Imported %s -> %s", img.Name, url)
		result.URLs = append(result.URLs, url)
		result.Imported++
	}

	log.Printf("🎉 Import completed: %d imported, %d failed, %d total", result.Imported, result.Failed, result.Total)
	return result, nil
}
