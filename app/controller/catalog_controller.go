package controller

import (
	"fmt"
	"log"
	"net/http"

	"catalogo-3d/service"
)

// CatalogController handles HTTP requests for the printable catalog export
type CatalogController struct {
	catalogService service.CatalogServiceInterface
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService service.CatalogServiceInterface) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// Render handles GET /api/catalog/render
// Serves the paginated catalog HTML that the PDF export prints
func (c *CatalogController) Render(w http.ResponseWriter, r *http.Request) {
	html, err := c.catalogService.RenderCatalogHTML(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		log.Printf("❌ Failed to write catalog HTML: %v", err)
	}
}

// Export handles GET /api/catalog/export
// Prints the rendered catalog to a downloadable PDF
func (c *CatalogController) Export(w http.ResponseWriter, r *http.Request) {
	pdf, err := c.catalogService.GeneratePDF(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="catalogo.pdf"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdf)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("❌ Failed to write catalog PDF: %v", err)
	}
}
