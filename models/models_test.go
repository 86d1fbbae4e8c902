package models

import (
	"testing"
)

// Test the closed set of audit actions
func TestAuditActionValid(t *testing.T) {
	validActions := []AuditAction{ActionLogin, ActionLogout, ActionFailedLogin, ActionPageView}
	for _, action := range validActions {
		if !action.Valid() {
			t.Errorf("Expected %s to be a valid audit action", action)
		}
	}

	invalidActions := []AuditAction{"", "page_deleted", "LOGIN", "login ", "signup"}
	for _, action := range invalidActions {
		if action.Valid() {
			t.Errorf("Expected %q to be an invalid audit action", action)
		}
	}
}

// Test slug derivation
func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Annual Report":          "annual-report",
		"Budget 2026: Q&A":       "budget-2026-q-a",
		"  Leading & Trailing  ": "leading-trailing",
		"already-a-slug":         "already-a-slug",
		"UPPER CASE":             "upper-case",
		"!!!":                    "",
		"":                       "",
	}
	for input, expected := range cases {
		if got := Slugify(input); got != expected {
			t.Errorf("Slugify(%q) = %q, expected %q", input, got, expected)
		}
	}
}

// Test UserForm validation
func TestUserFormValidation(t *testing.T) {
	// Test valid form
	validForm := UserForm{
		Username: "jdoe",
		Email:    "jdoe@example.gov",
		Password: "longenough",
		Role:     RoleEditor,
	}
	errors := validForm.Validate()
	if len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	// Test invalid form
	invalidForm := UserForm{
		Username: "", // Empty username
		Email:    "not-an-email",
		Password: "short",
		Role:     "superuser",
	}
	errors = invalidForm.Validate()
	if len(errors) != 4 {
		t.Errorf("Expected 4 errors for invalid form, got: %v", errors)
	}

	// Empty password means "keep the current one" on update
	updateForm := UserForm{Username: "jdoe", Role: RoleViewer}
	errors = updateForm.Validate()
	if len(errors) != 0 {
		t.Errorf("Expected no errors for update without password, got: %v", errors)
	}
}

// Test ContentForm validation
func TestContentFormValidation(t *testing.T) {
	// Test valid form
	validForm := ContentForm{
		Title: "Road Maintenance Notice",
		Type:  string(ContentAnnouncement),
		Body:  "Main street will be closed.",
	}
	errors := validForm.Validate()
	if len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	// Test invalid form
	invalidForm := ContentForm{
		Title: "", // Empty title
		Type:  "bulletin",
		Body:  "",
	}
	errors = invalidForm.Validate()
	if len(errors) != 3 {
		t.Errorf("Expected 3 errors for invalid form, got: %v", errors)
	}
}

// Test CategoryForm validation
func TestCategoryFormValidation(t *testing.T) {
	validForm := CategoryForm{Name: "Public Health"}
	if errors := validForm.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	invalidForm := CategoryForm{Name: ""}
	if errors := invalidForm.Validate(); len(errors) != 1 {
		t.Errorf("Expected 1 error for invalid form, got: %v", errors)
	}
}

// Test FileForm validation and extension handling
func TestFileFormValidation(t *testing.T) {
	validForm := FileForm{
		Title:    "Annual budget",
		FileType: string(FileDocument),
		Category: "finance",
	}
	if errors := validForm.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	invalidForm := FileForm{
		Title:    "",
		FileType: "spreadsheet",
	}
	if errors := invalidForm.Validate(); len(errors) != 2 {
		t.Errorf("Expected 2 errors for invalid form, got: %v", errors)
	}
}

// Test email validation helper
func TestEmailValidation(t *testing.T) {
	validEmails := []string{"a@b.co", "jdoe@example.gov", "first.last@dept.example.org"}
	for _, email := range validEmails {
		if !isValidEmail(email) {
			t.Errorf("Expected %s to be a valid email", email)
		}
	}

	invalidEmails := []string{"", "plain", "@example.com", "a@", "a@@b.co", "a@b"}
	for _, email := range invalidEmails {
		if isValidEmail(email) {
			t.Errorf("Expected %s to be an invalid email", email)
		}
	}
}
