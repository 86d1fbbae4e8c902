package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/NascpHisCommunity/Nascap-website/models"
	"github.com/NascpHisCommunity/Nascap-website/repositories"
)

// ErrInvalidCredentials is returned for unknown usernames and wrong
// passwords alike; callers must not reveal which one failed.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService interface defines authentication business logic
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	EnsureAdmin(ctx context.Context, username, password string) error
	FindOrCreateSSOUser(ctx context.Context, username, email string) (*models.User, error)
}

// authService implements AuthService interface
type authService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Authenticate checks a username/password pair against the stored bcrypt
// hash and returns the matching account.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		// Burn a comparison anyway so unknown usernames take about as long
		// as wrong passwords.
		bcrypt.CompareHashAndPassword([]byte("$2a$10$N9qo8uLOickgx2ZMRZoMye"), []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// EnsureAdmin creates the bootstrap admin account if it does not exist yet.
// A no-op when the username is empty or already taken.
func (s *authService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	return nil
}

// FindOrCreateSSOUser resolves an OIDC identity to a local account, creating
// a viewer account on first login. SSO accounts get a random unusable
// password so they can only ever sign in through the provider.
func (s *authService) FindOrCreateSSOUser(ctx context.Context, username, email string) (*models.User, error) {
	if username == "" {
		return nil, fmt.Errorf("SSO identity has no usable username")
	}

	if user, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return user, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to generate placeholder password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleViewer,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create SSO account: %w", err)
	}

	return user, nil
}
