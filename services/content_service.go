package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/NascpHisCommunity/Nascap-website/models"
	"github.com/NascpHisCommunity/Nascap-website/repositories"
)

// ContentService interface defines content management business logic plus
// the curated read slices served by the public API.
type ContentService interface {
	GetAllContents(ctx context.Context) ([]models.Content, error)
	GetContentByID(ctx context.Context, id int64) (*models.Content, error)
	GetContentBySlug(ctx context.Context, slug string) (*models.Content, error)
	CreateContent(ctx context.Context, form *models.ContentForm) (*models.Content, error)
	UpdateContent(ctx context.Context, id int64, form *models.ContentForm) (*models.Content, error)
	DeleteContent(ctx context.Context, id int64) error

	LatestNewsEvents(ctx context.Context) ([]models.Content, error)
	DepartmentContents(ctx context.Context) ([]models.Content, error)
	PublishedByType(ctx context.Context, contentType models.ContentType, limit int) ([]models.Content, error)
	PublishedByCategory(ctx context.Context, categorySlug string, limit int) ([]models.Content, error)
}

// contentService implements ContentService interface
type contentService struct {
	contentRepo repositories.ContentRepository
}

// NewContentService creates a new content service
func NewContentService(contentRepo repositories.ContentRepository) ContentService {
	return &contentService{contentRepo: contentRepo}
}

// GetAllContents retrieves all content items
func (s *contentService) GetAllContents(ctx context.Context) ([]models.Content, error) {
	return s.contentRepo.GetAll(ctx)
}

// GetContentByID retrieves a content item by ID
func (s *contentService) GetContentByID(ctx context.Context, id int64) (*models.Content, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid content ID: %d", id)
	}
	return s.contentRepo.GetByID(ctx, id)
}

// GetContentBySlug retrieves a content item by slug
func (s *contentService) GetContentBySlug(ctx context.Context, slug string) (*models.Content, error) {
	return s.contentRepo.GetBySlug(ctx, slug)
}

// CreateContent creates a new content item with validation. The slug is
// derived from the title and made unique by suffixing a counter on
// collision. Publishing stamps published_at.
func (s *contentService) CreateContent(ctx context.Context, form *models.ContentForm) (*models.Content, error) {
	if errors := form.Validate(); len(errors) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errors, ", "))
	}

	slug, err := s.uniqueSlug(ctx, models.Slugify(form.Title))
	if err != nil {
		return nil, err
	}

	content := &models.Content{
		Title:      strings.TrimSpace(form.Title),
		Slug:       slug,
		Type:       models.ContentType(form.Type),
		CategoryID: form.CategoryID,
		Body:       form.Body,
		Published:  form.Published,
	}
	if form.Published {
		now := time.Now().UTC()
		content.PublishedAt = &now
	}

	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}

	return content, nil
}

// UpdateContent updates an existing content item. The slug stays stable so
// published URLs keep working; published_at is set once on first publish.
func (s *contentService) UpdateContent(ctx context.Context, id int64, form *models.ContentForm) (*models.Content, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid content ID: %d", id)
	}

	if errors := form.Validate(); len(errors) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errors, ", "))
	}

	content, err := s.contentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("content not found: %w", err)
	}

	content.Title = strings.TrimSpace(form.Title)
	content.Type = models.ContentType(form.Type)
	content.CategoryID = form.CategoryID
	content.Body = form.Body
	content.Published = form.Published
	if form.Published && content.PublishedAt == nil {
		now := time.Now().UTC()
		content.PublishedAt = &now
	}

	if err := s.contentRepo.Update(ctx, content); err != nil {
		return nil, fmt.Errorf("failed to update content: %w", err)
	}

	return content, nil
}

// DeleteContent permanently deletes a content item
func (s *contentService) DeleteContent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid content ID: %d", id)
	}

	if err := s.contentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}

	return nil
}

// LatestNewsEvents returns published news and event items from the last 30
// days, newest first. Feeds the front-end carousel.
func (s *contentService) LatestNewsEvents(ctx context.Context) ([]models.Content, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -30)
	return s.contentRepo.ListPublished(ctx, repositories.ContentFilter{
		Types: []models.ContentType{models.ContentNews, models.ContentEvent},
		Since: &cutoff,
	})
}

// DepartmentContents returns all published department write-ups
func (s *contentService) DepartmentContents(ctx context.Context) ([]models.Content, error) {
	return s.contentRepo.ListPublished(ctx, repositories.ContentFilter{
		Types: []models.ContentType{models.ContentDepartment},
	})
}

// PublishedByType returns published items of one type, optionally limited
func (s *contentService) PublishedByType(ctx context.Context, contentType models.ContentType, limit int) ([]models.Content, error) {
	if !contentType.Valid() {
		return nil, fmt.Errorf("unknown content type %q", contentType)
	}
	return s.contentRepo.ListPublished(ctx, repositories.ContentFilter{
		Types: []models.ContentType{contentType},
		Limit: limit,
	})
}

// PublishedByCategory returns published items in one category, optionally limited
func (s *contentService) PublishedByCategory(ctx context.Context, categorySlug string, limit int) ([]models.Content, error) {
	return s.contentRepo.ListPublished(ctx, repositories.ContentFilter{
		CategorySlug: categorySlug,
		Limit:        limit,
	})
}

// uniqueSlug finds a free slug, suffixing -2, -3, ... on collision
func (s *contentService) uniqueSlug(ctx context.Context, base string) (string, error) {
	if base == "" {
		return "", fmt.Errorf("title produces an empty slug")
	}

	slug := base
	for i := 2; ; i++ {
		if _, err := s.contentRepo.GetBySlug(ctx, slug); err != nil {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
