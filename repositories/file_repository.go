package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/NascpHisCommunity/Nascap-website/models"
)

// FileFilter narrows file listings for the read-only API. Zero values mean
// "no constraint".
type FileFilter struct {
	Category string
	FileType models.FileType
	Limit    int
}

// FileRepository interface defines uploaded-file database operations
type FileRepository interface {
	List(ctx context.Context, filter FileFilter) ([]models.File, error)
	GetByID(ctx context.Context, id int64) (*models.File, error)
	Create(ctx context.Context, file *models.File) error
	Update(ctx context.Context, file *models.File) error
	Delete(ctx context.Context, id int64) error
}

// fileRepository implements FileRepository interface
type fileRepository struct {
	db *sql.DB
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *sql.DB) FileRepository {
	return &fileRepository{db: db}
}

const fileColumns = `id, title, description, stored_path, category, file_type, uploaded_by, created_at, updated_at`

// List retrieves file records matching the filter, most recently updated
// first. Category matching is case-insensitive, mirroring how the public
// front-end queries slices like "reports" or "publications".
func (r *fileRepository) List(ctx context.Context, filter FileFilter) ([]models.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE 1=1`
	var args []interface{}

	if filter.Category != "" {
		query += ` AND category COLLATE NOCASE = ?`
		args = append(args, filter.Category)
	}
	if filter.FileType != "" {
		query += ` AND file_type = ?`
		args = append(args, string(filter.FileType))
	}

	query += ` ORDER BY updated_at DESC, created_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query files: %w", err)
	}
	defer rows.Close()

	var files []models.File
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		files = append(files, *file)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating files: %w", err)
	}

	return files, nil
}

// GetByID retrieves a file record by ID
func (r *fileRepository) GetByID(ctx context.Context, id int64) (*models.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = ?`

	file, err := scanFile(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("file with ID %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get file: %w", err)
	}

	return file, nil
}

// Create creates a new file record
func (r *fileRepository) Create(ctx context.Context, file *models.File) error {
	query := `
		INSERT INTO files (title, description, stored_path, category, file_type, uploaded_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		file.Title,
		file.Description,
		file.StoredPath,
		file.Category,
		string(file.FileType),
		file.UploadedBy,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	file.ID = id
	file.CreatedAt = now
	file.UpdatedAt = now
	return nil
}

// Update updates an existing file record's metadata
func (r *fileRepository) Update(ctx context.Context, file *models.File) error {
	query := `
		UPDATE files
		SET title = ?, description = ?, category = ?, file_type = ?, updated_at = ?
		WHERE id = ?
	`

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		file.Title,
		file.Description,
		file.Category,
		string(file.FileType),
		now,
		file.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update file: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("file with ID %d not found", file.ID)
	}

	file.UpdatedAt = now
	return nil
}

// Delete deletes a file record by ID
func (r *fileRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM files WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("file with ID %d not found", id)
	}

	return nil
}

// scanFile scans one file row
func scanFile(row rowScanner) (*models.File, error) {
	var file models.File
	var uploadedBy sql.NullInt64
	var fileType string

	err := row.Scan(
		&file.ID,
		&file.Title,
		&file.Description,
		&file.StoredPath,
		&file.Category,
		&fileType,
		&uploadedBy,
		&file.CreatedAt,
		&file.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	file.FileType = models.FileType(fileType)
	if uploadedBy.Valid {
		file.UploadedBy = &uploadedBy.Int64
	}

	return &file, nil
}
