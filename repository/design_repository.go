package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"catalogo-3d/models"
	"catalogo-3d/pricing"
)

// DesignRepository handles database operations for designs and their images
// Implements DesignRepositoryInterface
type DesignRepository struct {
	db *sql.DB
}

// NewDesignRepository creates a new DesignRepository
func NewDesignRepository(db *sql.DB) *DesignRepository {
	return &DesignRepository{db: db}
}

// Ensure DesignRepository implements DesignRepositoryInterface
var _ DesignRepositoryInterface = (*DesignRepository)(nil)

// imageRows builds the image rows for a design from an ordered URL list.
// display_order is the 0-based index in the input list, so the stored set
// is always gapless and matches the submitted order.
func imageRows(designID int64, urls []string) []models.DesignImage {
	rows := make([]models.DesignImage, 0, len(urls))
	for i, url := range urls {
		rows = append(rows, models.DesignImage{
			DesignID:     designID,
			ImageURL:     url,
			DisplayOrder: i,
		})
	}
	return rows
}

// ListAll retrieves every design, newest first, each with its images
// sorted by display_order ascending
func (r *DesignRepository) ListAll(ctx context.Context) ([]models.Design, error) {
	query := `
		SELECT id, title, description, price, created_at, updated_at
		FROM designs
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error querying designs: %v", err)
		return nil, fmt.Errorf("failed to query designs: %w", err)
	}
	defer rows.Close()

	designs := []models.Design{}
	for rows.Next() {
		var d models.Design
		if err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.Price, &d.CreatedAt, &d.UpdatedAt); err != nil {
			log.Printf("❌ Error scanning design: %v", err)
			continue
		}
		d.Images = []models.DesignImage{}
		designs = append(designs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate designs: %w", err)
	}

	// Fetch all images in one query and merge them into their designs
	imgQuery := `
		SELECT id, design_id, image_url, display_order
		FROM design_images
		ORDER BY display_order ASC
	`
	imgRows, err := r.db.QueryContext(ctx, imgQuery)
	if err != nil {
		log.Printf("❌ Error querying design images: %v", err)
		return nil, fmt.Errorf("failed to query design images: %w", err)
	}
	defer imgRows.Close()

	byDesign := make(map[int64][]models.DesignImage)
	for imgRows.Next() {
		var img models.DesignImage
		if err := imgRows.Scan(&img.ID, &img.DesignID, &img.ImageURL, &img.DisplayOrder); err != nil {
			log.Printf("❌ Error scanning design image: %v", err)
			continue
		}
		byDesign[img.DesignID] = append(byDesign[img.DesignID], img)
	}
	if err := imgRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate design images: %w", err)
	}

	for i := range designs {
		if imgs, ok := byDesign[designs[i].ID]; ok {
			designs[i].Images = imgs
		}
	}

	log.Printf("✓ Successfully fetched %d designs", len(designs))
	return designs, nil
}

// getImages retrieves the images of one design sorted by display_order ascending
func (r *DesignRepository) getImages(ctx context.Context, designID int64) ([]models.DesignImage, error) {
	query := `
		SELECT id, design_id, image_url, display_order
		FROM design_images
		WHERE design_id = $1
		ORDER BY display_order ASC
	`

	rows, err := r.db.QueryContext(ctx, query, designID)
	if err != nil {
		return nil, fmt.Errorf("failed to query design images: %w", err)
	}
	defer rows.Close()

	images := []models.DesignImage{}
	for rows.Next() {
		var img models.DesignImage
		if err := rows.Scan(&img.ID, &img.DesignID, &img.ImageURL, &img.DisplayOrder); err != nil {
			log.Printf("❌ Error scanning design image: %v", err)
			continue
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate design images: %w", err)
	}

	return images, nil
}

// GetByID retrieves a single design with its images.
// Returns models.ErrNotFound when no row matches.
func (r *DesignRepository) GetByID(ctx context.Context, id int64) (*models.Design, error) {
	query := `
		SELECT id, title, description, price, created_at, updated_at
		FROM designs
		WHERE id = $1
	`

	var d models.Design
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.Title, &d.Description, &d.Price, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		log.Printf("❌ Error fetching design %d: %v", id, err)
		return nil, fmt.Errorf("failed to get design: %w", err)
	}

	images, err := r.getImages(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Images = images

	return &d, nil
}

// insertImages inserts the given image rows inside the transaction
func insertImages(ctx context.Context, tx *sql.Tx, images []models.DesignImage) error {
	query := `
		INSERT INTO design_images (design_id, image_url, display_order)
		VALUES ($1, $2, $3)
	`
	for _, img := range images {
		if _, err := tx.ExecContext(ctx, query, img.DesignID, img.ImageURL, img.DisplayOrder); err != nil {
			return fmt.Errorf("failed to insert design image: %w", err)
		}
	}
	return nil
}

// Create inserts a new design and its image rows in one transaction.
// The submitted price is rounded (half away from zero) before storage.
func (r *DesignRepository) Create(ctx context.Context, req *models.DesignRequest) (*models.Design, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO designs (title, description, price, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		RETURNING id, created_at, updated_at
	`

	d := models.Design{
		Title:       req.Title,
		Description: req.Description,
		Price:       pricing.RoundPrice(req.Price),
		Images:      []models.DesignImage{},
	}
	err = tx.QueryRowContext(ctx, query, d.Title, d.Description, d.Price).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		log.Printf("❌ Error inserting design: %v", err)
		return nil, fmt.Errorf("failed to insert design: %w", err)
	}

	if len(req.Images) > 0 {
		d.Images = imageRows(d.ID, req.Images)
		if err := insertImages(ctx, tx, d.Images); err != nil {
			log.Printf("❌ Error inserting images for design %d: %v", d.ID, err)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit design: %w", err)
	}

	log.Printf("✓ Successfully created design %d with %d images", d.ID, len(d.Images))
	return &d, nil
}

// Update modifies a design, always refreshing updated_at. A non-empty image
// list replaces the entire image set with freshly assigned display_order
// values; an empty list leaves existing images untouched.
func (r *DesignRepository) Update(ctx context.Context, id int64, req *models.DesignRequest) (*models.Design, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE designs
		SET title = $1, description = $2, price = $3, updated_at = now()
		WHERE id = $4
		RETURNING id, created_at, updated_at
	`

	d := models.Design{
		Title:       req.Title,
		Description: req.Description,
		Price:       pricing.RoundPrice(req.Price),
	}
	err = tx.QueryRowContext(ctx, query, d.Title, d.Description, d.Price, id).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		log.Printf("❌ Error updating design %d: %v", id, err)
		return nil, fmt.Errorf("failed to update design: %w", err)
	}

	if len(req.Images) > 0 {
		// Replace-all: drop the old set, renumber the new one from 0
		if _, err := tx.ExecContext(ctx, `DELETE FROM design_images WHERE design_id = $1`, id); err != nil {
			log.Printf("❌ Error deleting images for design %d: %v", id, err)
			return nil, fmt.Errorf("failed to delete design images: %w", err)
		}
		d.Images = imageRows(id, req.Images)
		if err := insertImages(ctx, tx, d.Images); err != nil {
			log.Printf("❌ Error inserting images for design %d: %v", id, err)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit design update: %w", err)
	}

	if len(req.Images) == 0 {
		images, err := r.getImages(ctx, id)
		if err != nil {
			return nil, err
		}
		d.Images = images
	}

	log.Printf("✓ Successfully updated design %d", id)
	return &d, nil
}

// Delete removes a design. Its image rows are removed by the ON DELETE
// CASCADE constraint in the store, not by application code.
func (r *DesignRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM designs WHERE id = $1`, id); err != nil {
		log.Printf("❌ Error deleting design %d: %v", id, err)
		return fmt.Errorf("failed to delete design: %w", err)
	}

	log.Printf("✓ Successfully deleted design %d", id)
	return nil
}

// ApplyPercentage rescales every design price by percent, rounding up.
// Records are processed sequentially; the first write failure aborts the
// loop and is reported, with updates already applied left in place. The
// operation is best-effort, not all-or-nothing.
func (r *DesignRepository) ApplyPercentage(ctx context.Context, percent float64) (int, error) {
	log.Printf("🔄 Applying %.2f%% price adjustment to all designs", percent)

	rows, err := r.db.QueryContext(ctx, `SELECT id, price FROM designs`)
	if err != nil {
		return 0, fmt.Errorf("failed to query design prices: %w", err)
	}
	defer rows.Close()

	type priceRow struct {
		id    int64
		price int64
	}
	var prices []priceRow
	for rows.Next() {
		var p priceRow
		if err := rows.Scan(&p.id, &p.price); err != nil {
			return 0, fmt.Errorf("failed to scan design price: %w", err)
		}
		prices = append(prices, p)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to iterate design prices: %w", err)
	}

	query := `UPDATE designs SET price = $1, updated_at = now() WHERE id = $2`
	for _, p := range prices {
		newPrice := pricing.AdjustPrice(p.price, percent)
		if _, err := r.db.ExecContext(ctx, query, newPrice, p.id); err != nil {
			log.Printf("❌ Error updating price for design %d: %v", p.id, err)
			return 0, fmt.Errorf("failed to update price for design %d: %w", p.id, err)
		}
	}

	log.Printf("✓ Successfully adjusted prices for %d designs", len(prices))
	return len(prices), nil
}
