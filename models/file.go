package models

import (
	"path/filepath"
	"strings"
	"time"
)

// FileType classifies an uploaded file.
type FileType string

const (
	FileDocument FileType = "document"
	FileImage    FileType = "image"
	FileVideo    FileType = "video"
)

var fileTypes = map[FileType]bool{
	FileDocument: true,
	FileImage:    true,
	FileVideo:    true,
}

// Valid reports whether the file type is one of the known types.
func (t FileType) Valid() bool {
	return fileTypes[t]
}

// File represents an uploaded file managed through the admin interface.
// StoredPath is relative to the upload root and is organized by upload date.
type File struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description,omitempty" db:"description"`
	StoredPath  string    `json:"-" db:"stored_path"`
	URL         string    `json:"url" db:"-"`
	Category    string    `json:"category,omitempty" db:"category"`
	FileType    FileType  `json:"file_type" db:"file_type"`
	UploadedBy  *int64    `json:"uploaded_by,omitempty" db:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Extension returns the lowercased file extension of the stored file.
func (f *File) Extension() string {
	return strings.ToLower(filepath.Ext(f.StoredPath))
}

// FileForm represents form metadata accompanying an upload
type FileForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	FileType    string `json:"file_type"`
}

// Validate validates the file form data
func (f *FileForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Title) == "" {
		errors = append(errors, "Title is required")
	}
	if len(f.Title) > 255 {
		errors = append(errors, "Title must be less than 255 characters")
	}
	if !FileType(f.FileType).Valid() {
		errors = append(errors, "File type must be one of document, image, video")
	}

	return errors
}
