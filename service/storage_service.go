package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// BucketName is the public container holding all uploaded images
const BucketName = "images"

// StorageService is a REST client for the managed object store.
// Implements StorageClientInterface
type StorageService struct {
	baseURL string
	client  *http.Client
}

// NewStorageService creates a new StorageService.
// baseURL is the storage API root, e.g. "https://xyz.supabase.co/storage/v1".
func NewStorageService(baseURL string) *StorageService {
	return &StorageService{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Ensure StorageService implements StorageClientInterface
var _ StorageClientInterface = (*StorageService)(nil)

// BucketExists checks whether the images bucket exists
func (s *StorageService) BucketExists(ctx context.Context) (bool, error) {
	url := fmt.Sprintf("%s/bucket/%s", s.baseURL, BucketName)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build bucket request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return true, nil
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("bucket check returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

// CreateBucket creates the public images bucket. A response indicating the
// bucket already exists is treated as success, not error.
func (s *StorageService) CreateBucket(ctx context.Context) error {
	payload, err := json.Marshal(map[string]interface{}{
		"name":   BucketName,
		"public": true,
	})
	if err != nil {
		return fmt.Errorf("failed to encode bucket payload: %w", err)
	}

	url := fmt.Sprintf("%s/bucket", s.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build bucket request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		log.Printf("✓ Created storage bucket %q", BucketName)
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	// Tolerate a concurrent or earlier create
	if resp.StatusCode == http.StatusConflict || strings.Contains(strings.ToLower(string(body)), "already exists") {
		log.Printf("⏭️  Storage bucket %q already exists", BucketName)
		return nil
	}

	return fmt.Errorf("bucket create returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}

// EnsureBucket checks that the bucket exists and creates it if absent.
// Returns whether it already existed.
func (s *StorageService) EnsureBucket(ctx context.Context) (bool, error) {
	exists, err := s.BucketExists(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return true, nil
	}
	if err := s.CreateBucket(ctx); err != nil {
		return false, err
	}
	return false, nil
}

// Upload stores the bytes under the given path in the images bucket
func (s *StorageService) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	url := fmt.Sprintf("%s/object/%s/%s", s.baseURL, BucketName, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Cache-Control", "max-age=3600")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("object upload returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	log.Printf("✓ Uploaded object %s/%s (%d bytes)", BucketName, path, len(data))
	return nil
}

// PublicURL returns the publicly resolvable URL for a stored object
func (s *StorageService) PublicURL(path string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", s.baseURL, BucketName, path)
}
