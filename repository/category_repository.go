package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"catalogo-3d/models"
)

// CategoryRepository handles database operations for categories
// Implements CategoryRepositoryInterface
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Ensure CategoryRepository implements CategoryRepositoryInterface
var _ CategoryRepositoryInterface = (*CategoryRepository)(nil)

// ListAll retrieves all categories, newest first
func (r *CategoryRepository) ListAll(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, name, is_active, created_at
		FROM categories
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error querying categories: %v", err)
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.IsActive, &c.CreatedAt); err != nil {
			log.Printf("❌ Error scanning category: %v", err)
			continue
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	log.Printf("✓ Successfully fetched %d categories", len(categories))
	return categories, nil
}

// Create inserts a new category
func (r *CategoryRepository) Create(ctx context.Context, name string, isActive bool) (*models.Category, error) {
	query := `
		INSERT INTO categories (name, is_active, created_at)
		VALUES ($1, $2, now())
		RETURNING id, created_at
	`

	c := models.Category{Name: name, IsActive: isActive}
	if err := r.db.QueryRowContext(ctx, query, name, isActive).Scan(&c.ID, &c.CreatedAt); err != nil {
		log.Printf("❌ Error inserting category: %v", err)
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}

	log.Printf("✓ Successfully created category %d (%s)", c.ID, c.Name)
	return &c, nil
}

// Update applies a partial patch: only the supplied fields change
func (r *CategoryRepository) Update(ctx context.Context, patch *models.CategoryPatchRequest) error {
	var sets []string
	var args []interface{}
	argIndex := 1

	if patch.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argIndex))
		args = append(args, *patch.Name)
		argIndex++
	}
	if patch.IsActive != nil {
		sets = append(sets, fmt.Sprintf("is_active = $%d", argIndex))
		args = append(args, *patch.IsActive)
		argIndex++
	}

	if len(sets) == 0 {
		log.Printf("⏭️  Category patch for %d carries no fields, nothing to update", patch.ID)
		return nil
	}

	query := fmt.Sprintf("UPDATE categories SET %s WHERE id = $%d", strings.Join(sets, ", "), argIndex)
	args = append(args, patch.ID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ Error updating category %d: %v", patch.ID, err)
		return fmt.Errorf("failed to update category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("⚠️  Warning: Could not get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		log.Printf("⚠️  No rows updated for category id: %d (record may not exist)", patch.ID)
	}

	return nil
}

// Delete removes a category. Categories own no children, so this is a
// plain hard delete.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		log.Printf("❌ Error deleting category %d: %v", id, err)
		return fmt.Errorf("failed to delete category: %w", err)
	}

	log.Printf("✓ Successfully deleted category %d", id)
	return nil
}
