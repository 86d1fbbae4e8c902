package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NascpHisCommunity/Nascap-website/models"
	"github.com/NascpHisCommunity/Nascap-website/repositories"
)

// FileService interface defines uploaded-file management business logic
type FileService interface {
	ListFiles(ctx context.Context, filter repositories.FileFilter) ([]models.File, error)
	GetFileByID(ctx context.Context, id int64) (*models.File, error)
	Upload(ctx context.Context, form *models.FileForm, filename string, src io.Reader, uploadedBy *int64) (*models.File, error)
	UpdateFile(ctx context.Context, id int64, form *models.FileForm) (*models.File, error)
	DeleteFile(ctx context.Context, id int64) error
}

// fileService implements FileService interface. Blobs live on local disk
// under root, organized by upload date; the database only stores the
// relative path.
type fileService struct {
	fileRepo repositories.FileRepository
	root     string
}

// NewFileService creates a new file service storing blobs under root
func NewFileService(fileRepo repositories.FileRepository, root string) FileService {
	return &fileService{fileRepo: fileRepo, root: root}
}

// ListFiles retrieves file records matching the filter
func (s *fileService) ListFiles(ctx context.Context, filter repositories.FileFilter) ([]models.File, error) {
	files, err := s.fileRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range files {
		files[i].URL = fileURL(files[i].StoredPath)
	}
	return files, nil
}

// GetFileByID retrieves a file record by ID
func (s *fileService) GetFileByID(ctx context.Context, id int64) (*models.File, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid file ID: %d", id)
	}

	file, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	file.URL = fileURL(file.StoredPath)
	return file, nil
}

// Upload validates the metadata, writes the blob under a date-based path
// with an opaque name, and records it. The blob is removed again if the
// database insert fails so no orphan is left behind.
func (s *fileService) Upload(ctx context.Context, form *models.FileForm, filename string, src io.Reader, uploadedBy *int64) (*models.File, error) {
	if errors := form.Validate(); len(errors) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errors, ", "))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	relPath := path.Join(time.Now().UTC().Format("2006/01/02"), uuid.NewString()+ext)
	absPath := filepath.Join(s.root, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(absPath)
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(absPath)
		return nil, fmt.Errorf("failed to finish upload: %w", err)
	}

	file := &models.File{
		Title:       strings.TrimSpace(form.Title),
		Description: form.Description,
		StoredPath:  relPath,
		Category:    strings.TrimSpace(form.Category),
		FileType:    models.FileType(form.FileType),
		UploadedBy:  uploadedBy,
	}

	if err := s.fileRepo.Create(ctx, file); err != nil {
		os.Remove(absPath)
		return nil, fmt.Errorf("failed to record upload: %w", err)
	}

	file.URL = fileURL(file.StoredPath)
	return file, nil
}

// UpdateFile updates a file record's metadata; the blob stays put
func (s *fileService) UpdateFile(ctx context.Context, id int64, form *models.FileForm) (*models.File, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid file ID: %d", id)
	}

	if errors := form.Validate(); len(errors) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errors, ", "))
	}

	file, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("file not found: %w", err)
	}

	file.Title = strings.TrimSpace(form.Title)
	file.Description = form.Description
	file.Category = strings.TrimSpace(form.Category)
	file.FileType = models.FileType(form.FileType)

	if err := s.fileRepo.Update(ctx, file); err != nil {
		return nil, fmt.Errorf("failed to update file: %w", err)
	}

	file.URL = fileURL(file.StoredPath)
	return file, nil
}

// DeleteFile removes the record and then the blob. A missing blob is not an
// error; the record is the source of truth.
func (s *fileService) DeleteFile(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid file ID: %d", id)
	}

	file, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("file not found: %w", err)
	}

	if err := s.fileRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	absPath := filepath.Join(s.root, filepath.FromSlash(file.StoredPath))
	if err := os.Remove(absPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove stored file: %w", err)
	}

	return nil
}

// fileURL maps a stored path onto the public media URL
func fileURL(storedPath string) string {
	return "/media/" + storedPath
}
