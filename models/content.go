package models

import (
	"strings"
	"time"
)

// ContentType classifies a content item.
type ContentType string

const (
	ContentDepartment   ContentType = "department"
	ContentNews         ContentType = "news"
	ContentAnnouncement ContentType = "announcement"
	ContentEvent        ContentType = "event"
	ContentBlog         ContentType = "blog"
)

var contentTypes = map[ContentType]bool{
	ContentDepartment:   true,
	ContentNews:         true,
	ContentAnnouncement: true,
	ContentEvent:        true,
	ContentBlog:         true,
}

// Valid reports whether the content type is one of the known types.
func (t ContentType) Valid() bool {
	return contentTypes[t]
}

// Content stores write-ups such as department details, news, announcements,
// events, or blog posts. Each item can be linked to a category.
type Content struct {
	ID           int64       `json:"id" db:"id"`
	Title        string      `json:"title" db:"title"`
	Slug         string      `json:"slug" db:"slug"`
	Type         ContentType `json:"content_type" db:"content_type"`
	CategoryID   *int64      `json:"category_id,omitempty" db:"category_id"`
	CategoryName string      `json:"category_name,omitempty" db:"-"`
	Body         string      `json:"body" db:"body"`
	Published    bool        `json:"published" db:"published"`
	PublishedAt  *time.Time  `json:"published_at,omitempty" db:"published_at"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

// ContentForm represents form data for creating/updating content items
type ContentForm struct {
	Title      string `json:"title"`
	Type       string `json:"content_type"`
	CategoryID *int64 `json:"category_id"`
	Body       string `json:"body"`
	Published  bool   `json:"published"`
}

// Validate validates the content form data
func (f *ContentForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Title) == "" {
		errors = append(errors, "Title is required")
	}
	if len(f.Title) > 255 {
		errors = append(errors, "Title must be less than 255 characters")
	}
	if !ContentType(f.Type).Valid() {
		errors = append(errors, "Content type must be one of department, news, announcement, event, blog")
	}
	if strings.TrimSpace(f.Body) == "" {
		errors = append(errors, "Body is required")
	}

	return errors
}
