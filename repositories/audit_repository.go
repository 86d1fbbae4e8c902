package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NascpHisCommunity/Nascap-website/models"
)

// StorageError wraps a failure of the underlying audit store. Writes either
// fully succeed or fail with this error; there is no partial state and no
// internal retry.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("audit storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// AuditRepository handles audit trail persistence. The trail is append-only:
// the interface deliberately exposes no update or delete operation.
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	GetByID(ctx context.Context, id int64) (*models.AuditLog, error)
	List(ctx context.Context, limit int) ([]models.AuditLog, error)
	PerPathCounts(ctx context.Context) ([]models.PathCount, error)
	DistinctVisitorCount(ctx context.Context) (int, error)
}

// auditRepository implements AuditRepository over SQLite
type auditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &auditRepository{db: db}
}

// Create inserts a new audit entry. The timestamp is assigned here, never
// taken from the caller, and is written back to the entry along with the
// generated id. Empty ip/path are stored as NULL so aggregate queries can
// tell "unknown" apart from a real value.
func (r *auditRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	query := `
		INSERT INTO audit_log (user_id, action, ip_address, path, user_agent, timestamp, additional_data)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var additional interface{}
	if entry.AdditionalData != nil {
		data, err := json.Marshal(entry.AdditionalData)
		if err != nil {
			return &StorageError{Op: "encode additional data", Err: err}
		}
		additional = string(data)
	}

	now := time.Now().UTC()

	result, err := r.db.ExecContext(ctx, query,
		entry.UserID,
		string(entry.Action),
		nullIfEmpty(entry.IPAddress),
		nullIfEmpty(entry.Path),
		entry.UserAgent,
		now,
		additional,
	)
	if err != nil {
		return &StorageError{Op: "insert", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return &StorageError{Op: "read inserted id", Err: err}
	}

	entry.ID = id
	entry.Timestamp = now
	return nil
}

// GetByID retrieves a single audit entry
func (r *auditRepository) GetByID(ctx context.Context, id int64) (*models.AuditLog, error) {
	query := `
		SELECT id, user_id, action, ip_address, path, user_agent, timestamp, additional_data
		FROM audit_log
		WHERE id = ?
	`

	entry, err := scanAuditEntry(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("audit entry with ID %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get audit entry: %w", err)
	}

	return entry, nil
}

// List retrieves the most recent audit entries, newest first
func (r *auditRepository) List(ctx context.Context, limit int) ([]models.AuditLog, error) {
	query := `
		SELECT id, user_id, action, ip_address, path, user_agent, timestamp, additional_data
		FROM audit_log
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditLog
	for rows.Next() {
		entry, err := scanAuditEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit entries: %w", err)
	}

	return entries, nil
}

// PerPathCounts groups page views by path, most viewed first. The secondary
// path ordering keeps equal counts deterministic for a given snapshot.
func (r *auditRepository) PerPathCounts(ctx context.Context) ([]models.PathCount, error) {
	query := `
		SELECT path, COUNT(*) AS views
		FROM audit_log
		WHERE action = ? AND path IS NOT NULL
		GROUP BY path
		ORDER BY views DESC, path ASC
	`

	rows, err := r.db.QueryContext(ctx, query, string(models.ActionPageView))
	if err != nil {
		return nil, fmt.Errorf("failed to query per-path counts: %w", err)
	}
	defer rows.Close()

	var counts []models.PathCount
	for rows.Next() {
		var pc models.PathCount
		if err := rows.Scan(&pc.Path, &pc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan path count: %w", err)
		}
		counts = append(counts, pc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating path counts: %w", err)
	}

	return counts, nil
}

// DistinctVisitorCount counts distinct page-view IPs. NULL ip_address rows
// fall out of COUNT(DISTINCT), so unknown visitors are not counted.
func (r *auditRepository) DistinctVisitorCount(ctx context.Context) (int, error) {
	query := `SELECT COUNT(DISTINCT ip_address) FROM audit_log WHERE action = ?`

	var count int
	err := r.db.QueryRowContext(ctx, query, string(models.ActionPageView)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count distinct visitors: %w", err)
	}

	return count, nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAuditEntry scans one audit row, converting NULL columns back to the
// model's zero values
func scanAuditEntry(row rowScanner) (*models.AuditLog, error) {
	var entry models.AuditLog
	var userID sql.NullInt64
	var ipAddress, path, additional sql.NullString
	var action string

	err := row.Scan(
		&entry.ID,
		&userID,
		&action,
		&ipAddress,
		&path,
		&entry.UserAgent,
		&entry.Timestamp,
		&additional,
	)
	if err != nil {
		return nil, err
	}

	entry.Action = models.AuditAction(action)
	if userID.Valid {
		entry.UserID = &userID.Int64
	}
	if ipAddress.Valid {
		entry.IPAddress = ipAddress.String
	}
	if path.Valid {
		entry.Path = path.String
	}
	if additional.Valid && additional.String != "" {
		if err := json.Unmarshal([]byte(additional.String), &entry.AdditionalData); err != nil {
			return nil, fmt.Errorf("failed to decode additional data: %w", err)
		}
	}

	return &entry, nil
}

// nullIfEmpty maps an empty string to SQL NULL
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
