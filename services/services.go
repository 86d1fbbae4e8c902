package services

import (
	"github.com/NascpHisCommunity/Nascap-website/repositories"
)

// Services holds all service instances
type Services struct {
	Audit    AuditService
	Auth     AuthService
	User     UserService
	Category CategoryService
	Content  ContentService
	File     FileService
}

// NewServices creates and initializes all service instances. uploadRoot is
// the directory uploaded file blobs are stored under.
func NewServices(repos *repositories.Repositories, uploadRoot string) *Services {
	return &Services{
		Audit:    NewAuditService(repos.Audit),
		Auth:     NewAuthService(repos.User),
		User:     NewUserService(repos.User),
		Category: NewCategoryService(repos.Category),
		Content:  NewContentService(repos.Content),
		File:     NewFileService(repos.File, uploadRoot),
	}
}
