package models

import (
	"strings"
	"time"
)

// User roles. The role gates access to the admin surfaces: admins manage
// users and see the audit dashboard, editors manage content and files,
// viewers only read.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// User represents an admin-interface account.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	Bio          string    `json:"bio,omitempty" db:"bio"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserForm represents form data for creating/updating users. Password is
// empty on update when the password should stay unchanged.
type UserForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
}

// Validate validates the user form data
func (f *UserForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Username) == "" {
		errors = append(errors, "Username is required")
	}
	if len(f.Username) > 150 {
		errors = append(errors, "Username must be less than 150 characters")
	}
	if f.Email != "" && !isValidEmail(f.Email) {
		errors = append(errors, "Email format is invalid")
	}
	if f.Role != "" && !ValidRole(f.Role) {
		errors = append(errors, "Role must be one of admin, editor, viewer")
	}
	if f.Password != "" && len(f.Password) < 8 {
		errors = append(errors, "Password must be at least 8 characters")
	}

	return errors
}

// isValidEmail performs basic email validation
func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	if strings.Index(email[at+1:], "@") != -1 {
		return false
	}
	dot := strings.LastIndex(email, ".")
	return dot > at+1 && dot < len(email)-1
}
