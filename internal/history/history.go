// Package history persists a log of finished exports.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Export outcomes.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Entry is one export attempt.
type Entry struct {
	ID        int64
	ExportID  string
	Type      string
	Status    string
	Records   int
	Queries   int
	Bytes     int64
	Filename  string
	Error     string
	Duration  time.Duration
	CreatedAt time.Time
}

// Filter specifies criteria for listing entries.
type Filter struct {
	Type   *string
	Status *string
	Limit  int // 0 = no limit
}

// Store persists entries.
type Store struct {
	db *sql.DB
}

// NewStore creates a history store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Add inserts an entry and sets its ID and CreatedAt.
func (s *Store) Add(ctx context.Context, e *Entry) error {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO exports (export_id, type, status, records, queries, bytes, filename, error, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ExportID, e.Type, e.Status, e.Records, e.Queries, e.Bytes, e.Filename, e.Error, e.Duration.Milliseconds(), now,
	)
	if err != nil {
		return fmt.Errorf("insert export: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	e.ID = id
	e.CreatedAt = now
	return nil
}

// List returns entries matching the filter, most recent first.
func (s *Store) List(ctx context.Context, f Filter) ([]*Entry, error) {
	var conditions []string
	var args []any

	if f.Type != nil {
		conditions = append(conditions, "type = ?")
		args = append(args, *f.Type)
	}
	if f.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *f.Status)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := `SELECT id, export_id, type, status, records, queries, bytes, filename, error, duration_ms, created_at
		FROM exports ` + whereClause + ` ORDER BY created_at DESC, id DESC`

	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Entry
	for rows.Next() {
		e := &Entry{}
		var durationMS int64
		if err := rows.Scan(&e.ID, &e.ExportID, &e.Type, &e.Status, &e.Records, &e.Queries, &e.Bytes,
			&e.Filename, &e.Error, &durationMS, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan export: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exports: %w", err)
	}

	return results, nil
}
