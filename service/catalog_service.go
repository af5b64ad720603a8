package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"time"

	"catalogo-3d/models"
	"catalogo-3d/repository"
	"catalogo-3d/utils"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// CatalogService renders the printable design catalog and exports it to PDF
// Implements CatalogServiceInterface
type CatalogService struct {
	designRepo   repository.DesignRepositoryInterface
	baseURL      string // Base URL for the render endpoint (e.g., "http://localhost:8080")
	templatePath string
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(designRepo repository.DesignRepositoryInterface, baseURL, templatePath string) *CatalogService {
	return &CatalogService{
		designRepo:   designRepo,
		baseURL:      baseURL,
		templatePath: templatePath,
	}
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// paginateEntries splits catalog entries into pages of 9 entries each
func paginateEntries(entries []models.CatalogEntry) [][]models.CatalogEntry {
	const entriesPerPage = 9
	var pages [][]models.CatalogEntry

	for i := 0; i < len(entries); i += entriesPerPage {
		end := i + entriesPerPage
		if end > len(entries) {
			end = len(entries)
		}
		pages = append(pages, entries[i:end])
	}

	return pages
}

// RenderCatalogHTML renders every design into the paginated catalog template.
// Each design shows its first image (display_order 0) and formatted price.
func (s *CatalogService) RenderCatalogHTML(ctx context.Context) (string, error) {
	designs, err := s.designRepo.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list designs for catalog: %w", err)
	}

	entries := make([]models.CatalogEntry, 0, len(designs))
	for _, d := range designs {
		entry := models.CatalogEntry{
			ID:             d.ID,
			Title:          d.Title,
			FormattedPrice: utils.FormatPrice(d.Price),
		}
		if len(d.Images) > 0 {
			entry.ImageURL = d.Images[0].ImageURL
		}
		entries = append(entries, entry)
	}

	templateData := struct {
		Pages       [][]models.CatalogEntry
		GeneratedAt string
	}{
		Pages:       paginateEntries(entries),
		GeneratedAt: time.Now().Format("2006-01-02"),
	}

	tmpl, err := template.ParseFiles(s.templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// GeneratePDF prints the rendered catalog to PDF using headless Chrome
func (s *CatalogService) GeneratePDF(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/api/catalog/render", s.baseURL)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		// Wait for catalog images before printing
		chromedp.Evaluate(`
			(function() {
				return Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
					return new Promise((resolve) => {
						if (img.complete) {
							resolve();
							return;
						}
						const timeout = setTimeout(() => resolve(), 5000);
						img.onload = () => { clearTimeout(timeout); resolve(); };
						img.onerror = () => { clearTimeout(timeout); resolve(); };
					});
				}));
			})();
		`, nil),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 portrait, page breaks handled by CSS page-break-after
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}
