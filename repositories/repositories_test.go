package repositories

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/NascpHisCommunity/Nascap-website/database"
	"github.com/NascpHisCommunity/Nascap-website/models"
	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	// Create a temporary database for testing; the directory (and the WAL
	// sidecar files) go away with it
	dbPath := filepath.Join(t.TempDir(), "test.db")

	t.Cleanup(func() {
		database.CloseDB()
	})

	// Initialize test database using the actual migration system
	if err := database.InitializeDatabase(dbPath); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	return database.GetDB()
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	// Test Create
	user := &models.User{
		Username:     "jdoe",
		Email:        "jdoe@example.gov",
		PasswordHash: "hashed",
		Role:         models.RoleEditor,
	}

	err := repo.Create(ctx, user)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	if user.ID == 0 {
		t.Error("Expected user ID to be set after creation")
	}

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("Failed to get user by ID: %v", err)
	}

	if retrieved.Username != user.Username {
		t.Errorf("Expected username %s, got %s", user.Username, retrieved.Username)
	}

	// Test GetByUsername
	byName, err := repo.GetByUsername(ctx, "jdoe")
	if err != nil {
		t.Fatalf("Failed to get user by username: %v", err)
	}

	if byName.ID != user.ID {
		t.Errorf("Expected user ID %d, got %d", user.ID, byName.ID)
	}

	// Test GetAll
	users, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("Failed to get all users: %v", err)
	}

	if len(users) != 1 {
		t.Errorf("Expected 1 user, got %d", len(users))
	}

	// Test Update
	user.Role = models.RoleAdmin
	err = repo.Update(ctx, user)
	if err != nil {
		t.Fatalf("Failed to update user: %v", err)
	}

	updated, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("Failed to get updated user: %v", err)
	}

	if updated.Role != models.RoleAdmin {
		t.Errorf("Expected updated role %s, got %s", models.RoleAdmin, updated.Role)
	}

	// Test Count
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}

	if count != 1 {
		t.Errorf("Expected count 1, got %d", count)
	}

	// Test Delete
	err = repo.Delete(ctx, user.ID)
	if err != nil {
		t.Fatalf("Failed to delete user: %v", err)
	}

	// Verify deletion
	_, err = repo.GetByID(ctx, user.ID)
	if err == nil {
		t.Error("Expected error when getting deleted user")
	}
}

func TestCategoryRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	// Test Create
	category := &models.Category{
		Name:        "Public Health",
		Slug:        "public-health",
		Description: "Health-related notices",
	}

	err := repo.Create(ctx, category)
	if err != nil {
		t.Fatalf("Failed to create category: %v", err)
	}

	if category.ID == 0 {
		t.Error("Expected category ID to be set after creation")
	}

	// Test GetBySlug
	bySlug, err := repo.GetBySlug(ctx, "public-health")
	if err != nil {
		t.Fatalf("Failed to get category by slug: %v", err)
	}

	if bySlug.Name != category.Name {
		t.Errorf("Expected name %s, got %s", category.Name, bySlug.Name)
	}

	// Test Update
	category.Name = "Community Health"
	err = repo.Update(ctx, category)
	if err != nil {
		t.Fatalf("Failed to update category: %v", err)
	}

	updated, err := repo.GetByID(ctx, category.ID)
	if err != nil {
		t.Fatalf("Failed to get updated category: %v", err)
	}

	if updated.Name != "Community Health" {
		t.Errorf("Expected updated name 'Community Health', got %s", updated.Name)
	}

	// Test GetAll
	categories, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("Failed to get all categories: %v", err)
	}

	if len(categories) != 1 {
		t.Errorf("Expected 1 category, got %d", len(categories))
	}

	// Test Delete
	err = repo.Delete(ctx, category.ID)
	if err != nil {
		t.Fatalf("Failed to delete category: %v", err)
	}

	_, err = repo.GetByID(ctx, category.ID)
	if err == nil {
		t.Error("Expected error when getting deleted category")
	}
}

func TestContentRepository(t *testing.T) {
	db := setupTestDB(t)
	contentRepo := NewContentRepository(db)
	categoryRepo := NewCategoryRepository(db)
	ctx := context.Background()

	category := &models.Category{Name: "News Desk", Slug: "news-desk"}
	if err := categoryRepo.Create(ctx, category); err != nil {
		t.Fatalf("Failed to create category: %v", err)
	}

	// Test Create
	now := time.Now().UTC()
	content := &models.Content{
		Title:       "Budget Approved",
		Slug:        "budget-approved",
		Type:        models.ContentNews,
		CategoryID:  &category.ID,
		Body:        "The council approved the budget.",
		Published:   true,
		PublishedAt: &now,
	}

	err := contentRepo.Create(ctx, content)
	if err != nil {
		t.Fatalf("Failed to create content: %v", err)
	}

	if content.ID == 0 {
		t.Error("Expected content ID to be set after creation")
	}

	// Test GetBySlug and the category join
	retrieved, err := contentRepo.GetBySlug(ctx, "budget-approved")
	if err != nil {
		t.Fatalf("Failed to get content by slug: %v", err)
	}

	if retrieved.CategoryName != "News Desk" {
		t.Errorf("Expected joined category name 'News Desk', got %s", retrieved.CategoryName)
	}

	// An unpublished draft must not leak into published listings
	draft := &models.Content{
		Title: "Draft Item",
		Slug:  "draft-item",
		Type:  models.ContentNews,
		Body:  "Not ready.",
	}
	if err := contentRepo.Create(ctx, draft); err != nil {
		t.Fatalf("Failed to create draft: %v", err)
	}

	published, err := contentRepo.ListPublished(ctx, ContentFilter{
		Types: []models.ContentType{models.ContentNews},
	})
	if err != nil {
		t.Fatalf("Failed to list published contents: %v", err)
	}

	if len(published) != 1 || published[0].Slug != "budget-approved" {
		t.Errorf("Expected only the published item, got %d items", len(published))
	}

	// Test the category-slug filter
	byCategory, err := contentRepo.ListPublished(ctx, ContentFilter{CategorySlug: "news-desk"})
	if err != nil {
		t.Fatalf("Failed to list by category: %v", err)
	}

	if len(byCategory) != 1 {
		t.Errorf("Expected 1 item in category, got %d", len(byCategory))
	}

	// Test the since filter: an old item falls out of the window
	oldDate := time.Now().UTC().AddDate(0, 0, -60)
	old := &models.Content{
		Title:       "Old Notice",
		Slug:        "old-notice",
		Type:        models.ContentNews,
		Body:        "Stale.",
		Published:   true,
		PublishedAt: &oldDate,
	}
	if err := contentRepo.Create(ctx, old); err != nil {
		t.Fatalf("Failed to create old content: %v", err)
	}
	// Backdate created_at too, Create stamps it with now
	if _, err := db.Exec("UPDATE contents SET created_at = ? WHERE id = ?", oldDate, old.ID); err != nil {
		t.Fatalf("Failed to backdate content: %v", err)
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -30)
	recent, err := contentRepo.ListPublished(ctx, ContentFilter{Since: &cutoff})
	if err != nil {
		t.Fatalf("Failed to list recent contents: %v", err)
	}

	for _, item := range recent {
		if item.Slug == "old-notice" {
			t.Error("Expected old item to be excluded by the since filter")
		}
	}

	// Deleting the category detaches the content instead of deleting it
	if err := categoryRepo.Delete(ctx, category.ID); err != nil {
		t.Fatalf("Failed to delete category: %v", err)
	}

	detached, err := contentRepo.GetByID(ctx, content.ID)
	if err != nil {
		t.Fatalf("Expected content to survive category deletion: %v", err)
	}
	if detached.CategoryID != nil {
		t.Errorf("Expected category_id to become NULL, got %d", *detached.CategoryID)
	}

	// Test Delete
	if err := contentRepo.Delete(ctx, content.ID); err != nil {
		t.Fatalf("Failed to delete content: %v", err)
	}

	if _, err := contentRepo.GetByID(ctx, content.ID); err == nil {
		t.Error("Expected error when getting deleted content")
	}
}

func TestFileRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFileRepository(db)
	ctx := context.Background()

	// Test Create
	file := &models.File{
		Title:       "Annual Report 2026",
		Description: "Full-year figures",
		StoredPath:  "2026/08/31/abc123.pdf",
		Category:    "Reports",
		FileType:    models.FileDocument,
	}

	err := repo.Create(ctx, file)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if file.ID == 0 {
		t.Error("Expected file ID to be set after creation")
	}

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, file.ID)
	if err != nil {
		t.Fatalf("Failed to get file by ID: %v", err)
	}

	if retrieved.StoredPath != file.StoredPath {
		t.Errorf("Expected stored path %s, got %s", file.StoredPath, retrieved.StoredPath)
	}

	// Category filtering is case-insensitive
	files, err := repo.List(ctx, FileFilter{Category: "reports"})
	if err != nil {
		t.Fatalf("Failed to list files by category: %v", err)
	}

	if len(files) != 1 {
		t.Errorf("Expected 1 file in category, got %d", len(files))
	}

	// Type filter excludes non-matching files
	images, err := repo.List(ctx, FileFilter{FileType: models.FileImage})
	if err != nil {
		t.Fatalf("Failed to list files by type: %v", err)
	}

	if len(images) != 0 {
		t.Errorf("Expected no image files, got %d", len(images))
	}

	// Test Update
	file.Title = "Annual Report 2026 (revised)"
	err = repo.Update(ctx, file)
	if err != nil {
		t.Fatalf("Failed to update file: %v", err)
	}

	updated, err := repo.GetByID(ctx, file.ID)
	if err != nil {
		t.Fatalf("Failed to get updated file: %v", err)
	}

	if updated.Title != file.Title {
		t.Errorf("Expected updated title %s, got %s", file.Title, updated.Title)
	}

	// Test Delete
	err = repo.Delete(ctx, file.ID)
	if err != nil {
		t.Fatalf("Failed to delete file: %v", err)
	}

	if _, err := repo.GetByID(ctx, file.ID); err == nil {
		t.Error("Expected error when getting deleted file")
	}
}
