package settings_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/vmunix/cpexport/internal/migrations"
	"github.com/vmunix/cpexport/internal/settings"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Apply(db))
	return db
}

func TestStore_PerPageDefault(t *testing.T) {
	s := settings.NewStore(setupTestDB(t))

	n, err := s.PerPage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultPerPage, n)
}

func TestStore_SetPerPage(t *testing.T) {
	ctx := context.Background()
	s := settings.NewStore(setupTestDB(t))

	require.NoError(t, s.SetPerPage(ctx, 20))
	n, err := s.PerPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, n)

	// Overwrites.
	require.NoError(t, s.SetPerPage(ctx, 100))
	n, err = s.PerPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, n)
}

func TestStore_SetPerPageInvalid(t *testing.T) {
	ctx := context.Background()
	s := settings.NewStore(setupTestDB(t))

	require.NoError(t, s.SetPerPage(ctx, 10))
	assert.ErrorIs(t, s.SetPerPage(ctx, 0), settings.ErrInvalidPerPage)
	assert.ErrorIs(t, s.SetPerPage(ctx, -5), settings.ErrInvalidPerPage)

	n, err := s.PerPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, n, "rejected values leave the stored one alone")
}

func TestStore_PerPageCorruptValue(t *testing.T) {
	ctx := context.Background()
	s := settings.NewStore(setupTestDB(t))

	require.NoError(t, s.Set(ctx, "export_per_page", "lots"))
	n, err := s.PerPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultPerPage, n)
}

func TestStore_GetMissing(t *testing.T) {
	s := settings.NewStore(setupTestDB(t))

	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, settings.ErrNotFound)
}

func TestParsePerPage(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"20", 20, false},
		{" 100 ", 100, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"", 0, true},
		{"ten", 0, true},
		{"2.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := settings.ParsePerPage(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, settings.ErrInvalidPerPage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
