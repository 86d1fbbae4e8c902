package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/NascpHisCommunity/Nascap-website/models"
)

// ContentFilter narrows published-content queries for the read-only API.
// Zero values mean "no constraint".
type ContentFilter struct {
	Types        []models.ContentType
	CategorySlug string
	Since        *time.Time
	Limit        int
}

// ContentRepository interface defines content item database operations
type ContentRepository interface {
	GetAll(ctx context.Context) ([]models.Content, error)
	GetByID(ctx context.Context, id int64) (*models.Content, error)
	GetBySlug(ctx context.Context, slug string) (*models.Content, error)
	ListPublished(ctx context.Context, filter ContentFilter) ([]models.Content, error)
	Create(ctx context.Context, content *models.Content) error
	Update(ctx context.Context, content *models.Content) error
	Delete(ctx context.Context, id int64) error
}

// contentRepository implements ContentRepository interface
type contentRepository struct {
	db *sql.DB
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *sql.DB) ContentRepository {
	return &contentRepository{db: db}
}

const contentSelect = `
	SELECT c.id, c.title, c.slug, c.content_type, c.category_id, cat.name,
	       c.body, c.published, c.published_at, c.created_at, c.updated_at
	FROM contents c
	LEFT JOIN categories cat ON cat.id = c.category_id
`

// GetAll retrieves all content items, newest first
func (r *contentRepository) GetAll(ctx context.Context) ([]models.Content, error) {
	query := contentSelect + ` ORDER BY c.published_at DESC, c.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contents: %w", err)
	}
	defer rows.Close()

	return collectContents(rows)
}

// GetByID retrieves a content item by ID
func (r *contentRepository) GetByID(ctx context.Context, id int64) (*models.Content, error) {
	query := contentSelect + ` WHERE c.id = ?`

	content, err := scanContent(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("content with ID %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get content: %w", err)
	}

	return content, nil
}

// GetBySlug retrieves a content item by slug
func (r *contentRepository) GetBySlug(ctx context.Context, slug string) (*models.Content, error) {
	query := contentSelect + ` WHERE c.slug = ?`

	content, err := scanContent(r.db.QueryRowContext(ctx, query, slug))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("content %q not found", slug)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get content: %w", err)
	}

	return content, nil
}

// ListPublished retrieves published content matching the filter, newest first
func (r *contentRepository) ListPublished(ctx context.Context, filter ContentFilter) ([]models.Content, error) {
	query := contentSelect + ` WHERE c.published = 1`
	var args []interface{}

	if len(filter.Types) > 0 {
		query += ` AND c.content_type IN (`
		for i, t := range filter.Types {
			if i > 0 {
				query += `, `
			}
			query += `?`
			args = append(args, string(t))
		}
		query += `)`
	}
	if filter.CategorySlug != "" {
		query += ` AND cat.slug = ?`
		args = append(args, filter.CategorySlug)
	}
	if filter.Since != nil {
		query += ` AND (c.published_at >= ? OR c.created_at >= ?)`
		args = append(args, *filter.Since, *filter.Since)
	}

	query += ` ORDER BY c.published_at DESC, c.created_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query published contents: %w", err)
	}
	defer rows.Close()

	return collectContents(rows)
}

// Create creates a new content item
func (r *contentRepository) Create(ctx context.Context, content *models.Content) error {
	query := `
		INSERT INTO contents (title, slug, content_type, category_id, body, published, published_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		content.Title,
		content.Slug,
		string(content.Type),
		content.CategoryID,
		content.Body,
		content.Published,
		content.PublishedAt,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create content: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	content.ID = id
	content.CreatedAt = now
	content.UpdatedAt = now
	return nil
}

// Update updates an existing content item
func (r *contentRepository) Update(ctx context.Context, content *models.Content) error {
	query := `
		UPDATE contents
		SET title = ?, slug = ?, content_type = ?, category_id = ?, body = ?,
		    published = ?, published_at = ?, updated_at = ?
		WHERE id = ?
	`

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		content.Title,
		content.Slug,
		string(content.Type),
		content.CategoryID,
		content.Body,
		content.Published,
		content.PublishedAt,
		now,
		content.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update content: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("content with ID %d not found", content.ID)
	}

	content.UpdatedAt = now
	return nil
}

// Delete deletes a content item by ID
func (r *contentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("content with ID %d not found", id)
	}

	return nil
}

// scanContent scans one content row
func scanContent(row rowScanner) (*models.Content, error) {
	var content models.Content
	var categoryID sql.NullInt64
	var categoryName sql.NullString
	var publishedAt sql.NullTime
	var contentType string

	err := row.Scan(
		&content.ID,
		&content.Title,
		&content.Slug,
		&contentType,
		&categoryID,
		&categoryName,
		&content.Body,
		&content.Published,
		&publishedAt,
		&content.CreatedAt,
		&content.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	content.Type = models.ContentType(contentType)
	if categoryID.Valid {
		content.CategoryID = &categoryID.Int64
	}
	if categoryName.Valid {
		content.CategoryName = categoryName.String
	}
	if publishedAt.Valid {
		content.PublishedAt = &publishedAt.Time
	}

	return &content, nil
}

// collectContents drains a content query result
func collectContents(rows *sql.Rows) ([]models.Content, error) {
	var contents []models.Content
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan content: %w", err)
		}
		contents = append(contents, *content)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contents: %w", err)
	}

	return contents, nil
}
