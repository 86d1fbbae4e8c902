package models

import "strings"

// Category groups and filters content items (e.g. news, events, blogs).
type Category struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description,omitempty" db:"description"`
}

// CategoryForm represents form data for creating/updating categories
type CategoryForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate validates the category form data
func (f *CategoryForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Name) == "" {
		errors = append(errors, "Name is required")
	}
	if len(f.Name) > 100 {
		errors = append(errors, "Name must be less than 100 characters")
	}

	return errors
}
