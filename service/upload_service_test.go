package service

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"catalogo-3d/models"
)

// fakeStorage records calls to the storage client
type fakeStorage struct {
	ensureCalls int
	uploads     map[string][]byte
	uploadErr   error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: make(map[string][]byte)}
}

func (f *fakeStorage) EnsureBucket(ctx context.Context) (bool, error) {
	f.ensureCalls++
	return true, nil
}

func (f *fakeStorage) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploads[path] = data
	return nil
}

func (f *fakeStorage) PublicURL(path string) string {
	return "https://store.example.com/object/public/images/" + path
}

// pngBytes encodes a small valid PNG for upload tests
func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestUploadRejectsNonImage(t *testing.T) {
	storage := newFakeStorage()
	svc := NewUploadService(storage)

	_, err := svc.Upload(context.Background(), []byte("hello"), "text/plain", "notes.txt")
	if err == nil {
		t.Fatal("Upload() with text/plain = nil error, want ValidationError")
	}
	if !models.IsValidation(err) {
		t.Errorf("Upload() error = %T, want *ValidationError", err)
	}
	if len(storage.uploads) != 0 {
		t.Error("Upload() stored bytes for a rejected file")
	}
}

func TestUploadAcceptsImage(t *testing.T) {
	storage := newFakeStorage()
	svc := NewUploadService(storage)

	data := pngBytes(t)
	url, err := svc.Upload(context.Background(), data, "image/png", "vase.png")
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if storage.ensureCalls != 1 {
		t.Errorf("Upload() ensured the bucket %d times, want 1", storage.ensureCalls)
	}

	var objectPath string
	for path := range storage.uploads {
		if strings.HasPrefix(path, "designs/") && !strings.HasPrefix(path, "designs/thumbs/") {
			objectPath = path
		}
	}
	if objectPath == "" {
		t.Fatal("Upload() stored nothing under designs/")
	}
	if !strings.HasSuffix(objectPath, ".png") {
		t.Errorf("Upload() stored %q, want a .png object name", objectPath)
	}
	if !bytes.Equal(storage.uploads[objectPath], data) {
		t.Error("Upload() altered the stored original bytes")
	}
	if url != storage.PublicURL(objectPath) {
		t.Errorf("Upload() url = %q, want %q", url, storage.PublicURL(objectPath))
	}
}

func TestUploadStoresThumbnail(t *testing.T) {
	storage := newFakeStorage()
	svc := NewUploadService(storage)

	if _, err := svc.Upload(context.Background(), pngBytes(t), "image/png", "vase.png"); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	found := false
	for path := range storage.uploads {
		if strings.HasPrefix(path, "designs/thumbs/") && strings.HasSuffix(path, ".jpg") {
			found = true
		}
	}
	if !found {
		t.Error("Upload() did not store a thumbnail under designs/thumbs/")
	}
}

func TestUploadThumbnailFailureIsNotFatal(t *testing.T) {
	storage := newFakeStorage()
	svc := NewUploadService(storage)

	// Declared as image but undecodable: the original is stored, the
	// thumbnail step fails quietly.
	url, err := svc.Upload(context.Background(), []byte("not a real image"), "image/png", "broken.png")
	if err != nil {
		t.Fatalf("Upload() error = %v, want nil when only the thumbnail fails", err)
	}
	if url == "" {
		t.Error("Upload() returned empty url")
	}
	for path := range storage.uploads {
		if strings.HasPrefix(path, "designs/thumbs/") {
			t.Errorf("Upload() stored a thumbnail %q from undecodable bytes", path)
		}
	}
}
