package service

import "context"

// UploadServiceInterface defines the contract for image upload operations
type UploadServiceInterface interface {
	// Upload validates and stores an image, returning its public URL
	Upload(ctx context.Context, data []byte, declaredMimeType, originalName string) (string, error)
}
