package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/NascpHisCommunity/Nascap-website/models"
	"github.com/NascpHisCommunity/Nascap-website/repositories"
)

// CategoryService interface defines category management business logic
type CategoryService interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	CreateCategory(ctx context.Context, form *models.CategoryForm) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, form *models.CategoryForm) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// categoryService implements CategoryService interface
type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// GetAllCategories retrieves all categories
func (s *categoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

// GetCategoryByID retrieves a category by ID
func (s *categoryService) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid category ID: %d", id)
	}
	return s.categoryRepo.GetByID(ctx, id)
}

// GetCategoryBySlug retrieves a category by slug
func (s *categoryService) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.categoryRepo.GetBySlug(ctx, slug)
}

// CreateCategory creates a new category with validation
func (s *categoryService) CreateCategory(ctx context.Context, form *models.CategoryForm) (*models.Category, error) {
	if errors := form.Validate(); len(errors) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errors, ", "))
	}

	name := strings.TrimSpace(form.Name)
	category := &models.Category{
		Name:        name,
		Slug:        models.Slugify(name),
		Description: form.Description,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// UpdateCategory updates an existing category
func (s *categoryService) UpdateCategory(ctx context.Context, id int64, form *models.CategoryForm) (*models.Category, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid category ID: %d", id)
	}

	if errors := form.Validate(); len(errors) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errors, ", "))
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("category not found: %w", err)
	}

	name := strings.TrimSpace(form.Name)
	category.Name = name
	category.Slug = models.Slugify(name)
	category.Description = form.Description

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// DeleteCategory permanently deletes a category. Linked content items stay
// and lose their category reference.
func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid category ID: %d", id)
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
