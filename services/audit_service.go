package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/NascpHisCommunity/Nascap-website/models"
	"github.com/NascpHisCommunity/Nascap-website/repositories"
)

// AuthEventKind tags the identity lifecycle events reported by the
// authentication layer.
type AuthEventKind int

const (
	LoginSucceeded AuthEventKind = iota
	LoginFailed
	LoggedOut
)

// AuthEvent describes one identity lifecycle event. Credentials is only set
// for failed attempts and carries the submitted form fields.
type AuthEvent struct {
	Kind        AuthEventKind
	UserID      *int64
	Credentials map[string]any
	IPAddress   string
	Path        string
	UserAgent   string
}

// AuditSink is the capability the authentication layer calls to report
// lifecycle events. Errors propagate to the caller; the sink never retries.
type AuditSink interface {
	RecordAuthEvent(ctx context.Context, event AuthEvent) (*models.AuditLog, error)
}

// AuditService interface defines audit trail business logic: the write path
// (Record and the auth-event sink) and the read path (recent entries and the
// dashboard summary).
type AuditService interface {
	AuditSink
	Record(ctx context.Context, action models.AuditAction, userID *int64, ip, path, userAgent string, additional map[string]any) (*models.AuditLog, error)
	RecentEntries(ctx context.Context, limit int) ([]models.AuditLog, error)
	Summarize(ctx context.Context) (*models.AuditSummary, error)
}

// auditService implements AuditService interface
type auditService struct {
	auditRepo repositories.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repositories.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// Record validates and persists one audit entry. The store assigns id and
// timestamp; both are set on the returned entry. Validation failures create
// no row; storage failures propagate as *repositories.StorageError.
func (s *auditService) Record(ctx context.Context, action models.AuditAction, userID *int64, ip, path, userAgent string, additional map[string]any) (*models.AuditLog, error) {
	if !action.Valid() {
		return nil, &models.ValidationError{
			Field:   "action",
			Message: fmt.Sprintf("unknown audit action %q", action),
		}
	}
	if len(path) > models.MaxAuditPathLen {
		return nil, &models.ValidationError{
			Field:   "path",
			Message: fmt.Sprintf("path exceeds %d characters", models.MaxAuditPathLen),
		}
	}

	entry := &models.AuditLog{
		UserID:         userID,
		Action:         action,
		IPAddress:      ip,
		Path:           path,
		UserAgent:      userAgent,
		AdditionalData: additional,
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// RecordAuthEvent maps a lifecycle event onto its audit action and records
// it. Failed logins keep the submitted credential fields as additional data,
// with password-like values redacted before they touch the store.
func (s *auditService) RecordAuthEvent(ctx context.Context, event AuthEvent) (*models.AuditLog, error) {
	var action models.AuditAction
	var additional map[string]any

	switch event.Kind {
	case LoginSucceeded:
		action = models.ActionLogin
	case LoggedOut:
		action = models.ActionLogout
	case LoginFailed:
		action = models.ActionFailedLogin
		if event.Credentials != nil {
			additional = map[string]any{"credentials": redactCredentials(event.Credentials)}
		}
	default:
		return nil, &models.ValidationError{
			Field:   "kind",
			Message: fmt.Sprintf("unknown auth event kind %d", event.Kind),
		}
	}

	return s.Record(ctx, action, event.UserID, event.IPAddress, event.Path, event.UserAgent, additional)
}

// RecentEntries returns the newest audit entries for the admin log view
func (s *auditService) RecentEntries(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.auditRepo.List(ctx, limit)
}

// Summarize computes the dashboard aggregation on demand from the persisted
// rows. Purely a read; a write committing during the call may or may not be
// reflected.
func (s *auditService) Summarize(ctx context.Context) (*models.AuditSummary, error) {
	pageViews, err := s.auditRepo.PerPathCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate page views: %w", err)
	}

	visitors, err := s.auditRepo.DistinctVisitorCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count visitors: %w", err)
	}

	return &models.AuditSummary{
		PageViews:     pageViews,
		TotalVisitors: visitors,
	}, nil
}

// sensitiveFields are credential keys whose submitted values must never be
// persisted verbatim.
var sensitiveFields = []string{"password", "passwd", "pwd", "secret", "token"}

// redactCredentials returns a copy of the credential map with sensitive
// values masked. Keys survive so the trail still shows what was submitted.
func redactCredentials(credentials map[string]any) map[string]any {
	redacted := make(map[string]any, len(credentials))
	for key, value := range credentials {
		if isSensitiveField(key) {
			redacted[key] = "[REDACTED]"
		} else {
			redacted[key] = value
		}
	}
	return redacted
}

func isSensitiveField(key string) bool {
	lower := strings.ToLower(key)
	for _, field := range sensitiveFields {
		if strings.Contains(lower, field) {
			return true
		}
	}
	return false
}
