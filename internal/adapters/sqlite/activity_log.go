package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// ActivityLog implements secondary.ActivityLogger with SQLite.
type ActivityLog struct {
	db *sql.DB
}

// NewActivityLog creates a new SQLite activity logger.
func NewActivityLog(db *sql.DB) *ActivityLog {
	return &ActivityLog{db: db}
}

// LogEvent records an event for a repository with free-form detail.
func (l *ActivityLog) LogEvent(ctx context.Context, reponame, event, detail string) error {
	var det sql.NullString
	if detail != "" {
		det = sql.NullString{String: detail, Valid: true}
	}

	_, err := l.db.ExecContext(ctx,
		"INSERT INTO activity_log (reponame, event, detail) VALUES (?, ?, ?)",
		reponame, event, det,
	)
	if err != nil {
		return fmt.Errorf("failed to log %s event for %s: %w", event, reponame, err)
	}
	return nil
}

// ActivityEntry is one row of the audit trail.
type ActivityEntry struct {
	Reponame  string
	Event     string
	Detail    string
	CreatedAt string
}

// Recent returns the most recent entries, newest first.
func (l *ActivityLog) Recent(ctx context.Context, limit int) ([]ActivityEntry, error) {
	rows, err := l.db.QueryContext(ctx,
		"SELECT reponame, event, detail, created_at FROM activity_log ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []ActivityEntry
	for rows.Next() {
		var e ActivityEntry
		var detail sql.NullString
		if err := rows.Scan(&e.Reponame, &e.Event, &detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		e.Detail = detail.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
