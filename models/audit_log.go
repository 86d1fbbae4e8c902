package models

import "time"

// AuditAction identifies the kind of event captured in the audit trail.
type AuditAction string

const (
	ActionLogin       AuditAction = "login"
	ActionLogout      AuditAction = "logout"
	ActionFailedLogin AuditAction = "failed_login"
	ActionPageView    AuditAction = "page_view"
)

// auditActions is the closed set of recordable actions. Anything outside it
// is rejected at record time.
var auditActions = map[AuditAction]bool{
	ActionLogin:       true,
	ActionLogout:      true,
	ActionFailedLogin: true,
	ActionPageView:    true,
}

// Valid reports whether the action belongs to the recordable set.
func (a AuditAction) Valid() bool {
	return auditActions[a]
}

// MaxAuditPathLen caps the recorded request path. Over-length paths are
// rejected outright, never silently truncated.
const MaxAuditPathLen = 255

// AuditLog represents one immutable audit trail entry. Entries are only ever
// created and read; there is no update or delete path for them.
type AuditLog struct {
	ID        int64       `json:"id" db:"id"`
	UserID    *int64      `json:"user_id,omitempty" db:"user_id"`
	Action    AuditAction `json:"action" db:"action"`
	IPAddress string      `json:"ip_address,omitempty" db:"ip_address"`
	Path      string      `json:"path,omitempty" db:"path"`
	UserAgent string      `json:"user_agent,omitempty" db:"user_agent"`
	// Timestamp is assigned by the store at insert time, never by callers.
	Timestamp      time.Time      `json:"timestamp" db:"timestamp"`
	AdditionalData map[string]any `json:"additional_data,omitempty" db:"additional_data"`
}

// PathCount is one row of the per-path page view aggregation.
type PathCount struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// AuditSummary is the dashboard payload: page views grouped by path (most
// viewed first) and the number of distinct visitor IPs. Visitors are counted
// by IP address, which undercounts users behind shared IPs and overcounts
// users whose IP changes; a known approximation.
type AuditSummary struct {
	PageViews     []PathCount `json:"page_views"`
	TotalVisitors int         `json:"total_visitors"`
}
