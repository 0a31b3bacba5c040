// Package settings persists site-wide export options.
package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultPerPage is returned when no per-page value has been stored.
const DefaultPerPage = 50

const keyPerPage = "export_per_page"

var (
	// ErrInvalidPerPage is returned for per-page values that are not positive integers.
	ErrInvalidPerPage = errors.New("per_page must be a positive integer")

	// ErrNotFound indicates the option has never been set.
	ErrNotFound = errors.New("option not found")
)

// Store reads and writes options.
type Store struct {
	db *sql.DB
}

// NewStore creates a settings store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the raw value of an option.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM options WHERE name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get option %s: %w", name, err)
	}
	return value, nil
}

// Set stores an option, replacing any previous value.
func (s *Store) Set(ctx context.Context, name, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO options (name, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		name, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set option %s: %w", name, err)
	}
	return nil
}

// PerPage returns the stored per-page value, or DefaultPerPage when unset
// or unreadable as a positive integer.
func (s *Store) PerPage(ctx context.Context) (int, error) {
	raw, err := s.Get(ctx, keyPerPage)
	if errors.Is(err, ErrNotFound) {
		return DefaultPerPage, nil
	}
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return DefaultPerPage, nil
	}
	return n, nil
}

// SetPerPage stores the per-page value. Non-positive values are rejected
// with ErrInvalidPerPage.
func (s *Store) SetPerPage(ctx context.Context, n int) error {
	if n <= 0 {
		return ErrInvalidPerPage
	}
	return s.Set(ctx, keyPerPage, strconv.Itoa(n))
}

// ParsePerPage converts submitted text to a per-page value.
func ParsePerPage(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, ErrInvalidPerPage
	}
	return n, nil
}
