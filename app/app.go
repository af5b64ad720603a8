package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"catalogo-3d/app/controller"
	"catalogo-3d/app/router"
	"catalogo-3d/db"
	"catalogo-3d/repository"
	"catalogo-3d/service"
)

// App holds the wired application
type App struct {
	Mux *http.ServeMux
	DB  *sql.DB
}

// Close releases the application's resources
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// Initialize wires the application: database, storage client, services,
// repositories and controllers. Dependencies are constructed once here and
// passed down explicitly.
func Initialize() (*App, error) {
	// Database connection
	conn, err := db.Connect()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Object store client
	storageURL := os.Getenv("STORAGE_URL")
	if storageURL == "" {
		conn.Close()
		return nil, fmt.Errorf("STORAGE_URL environment variable is not set")
	}
	storageService := service.NewStorageService(storageURL)

	// Make sure the public images bucket exists before serving uploads.
	// The per-upload check repeats this, so a failure here is not fatal.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if existed, err := storageService.EnsureBucket(ctx); err != nil {
		log.Printf("⚠️  Warning: Could not initialize storage bucket: %v", err)
	} else if existed {
		log.Printf("✓ Storage bucket %q already exists", service.BucketName)
	} else {
		log.Printf("✓ Storage bucket %q created", service.BucketName)
	}

	uploadService := service.NewUploadService(storageService)

	// Drive import is optional: wired only when credentials are configured
	var importService service.ImportServiceInterface
	if credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentialsPath != "" {
		driveService, err := service.NewDriveService(credentialsPath)
		if err != nil {
			conn.Close()
			return nil, err
		}
		importService = service.NewImportService(driveService, uploadService)
	} else {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS not set, Drive import disabled")
	}

	// Repositories
	designRepo := repository.NewDesignRepository(conn)
	categoryRepo := repository.NewCategoryRepository(conn)

	// Catalog export
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	catalogService := service.NewCatalogService(designRepo, baseURL, filepath.Join("templates", "catalog.html"))

	// Create controllers
	controllers := &router.Controllers{
		Design:   controller.NewDesignController(designRepo),
		Category: controller.NewCategoryController(categoryRepo),
		Upload:   controller.NewUploadController(uploadService),
		Storage:  controller.NewStorageController(storageService),
		Import:   controller.NewImportController(importService),
		Catalog:  controller.NewCatalogController(catalogService),
	}

	return &App{
		Mux: router.SetupRoutes(controllers),
		DB:  conn,
	}, nil
}
