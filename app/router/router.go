package router

import (
	"net/http"
	"strings"

	"catalogo-3d/app/controller"
)

type Controllers struct {
	Design   *controller.DesignController
	Category *controller.CategoryController
	Upload   *controller.UploadController
	Storage  *controller.StorageController
	Import   *controller.ImportController
	Catalog  *controller.CatalogController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Design collection: list and create
	mux.HandleFunc("/api/designs", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Design.List(w, r)
		} else if r.Method == http.MethodPost {
			controllers.Design.Create(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Design actions and by-id routes (actions must be checked before :id)
	mux.HandleFunc("/api/designs/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/designs/")

		// Bulk percentage adjustment
		if path == "percentage" {
			if r.Method == http.MethodPost {
				controllers.Design.ApplyPercentage(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		// Bulk image import from Drive
		if path == "import" {
			if r.Method == http.MethodPost {
				controllers.Import.Import(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		// Route to appropriate handler based on HTTP method
		if r.Method == http.MethodGet {
			controllers.Design.GetByID(w, r)
		} else if r.Method == http.MethodPut {
			controllers.Design.Update(w, r)
		} else if r.Method == http.MethodDelete {
			controllers.Design.Delete(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Categories: whole CRUD on one route, id travels in the body
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			controllers.Category.List(w, r)
		case http.MethodPost:
			controllers.Category.Create(w, r)
		case http.MethodPatch:
			controllers.Category.Patch(w, r)
		case http.MethodDelete:
			controllers.Category.Delete(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Storage initialization (idempotent bucket check)
	mux.HandleFunc("/api/init-storage", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Storage.InitStorage(w, r)
	})

	// Image upload
	mux.HandleFunc("/api/upload", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Upload.Upload(w, r)
	})

	// Printable catalog
	mux.HandleFunc("/api/catalog/render", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Catalog.Render(w, r)
	})
	mux.HandleFunc("/api/catalog/export", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Catalog.Export(w, r)
	})

	return mux
}
