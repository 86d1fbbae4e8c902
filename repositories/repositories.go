package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	User     UserRepository
	Category CategoryRepository
	Content  ContentRepository
	File     FileRepository
	Audit    AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Category: NewCategoryRepository(db),
		Content:  NewContentRepository(db),
		File:     NewFileRepository(db),
		Audit:    NewAuditRepository(db),
	}
}
