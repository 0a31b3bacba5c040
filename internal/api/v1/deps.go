package v1

//go:generate mockgen -source=deps.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"

	"github.com/vmunix/cpexport/internal/export"
	"github.com/vmunix/cpexport/internal/history"
	"github.com/vmunix/cpexport/pkg/wpapi"
)

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Exporter runs exports.
type Exporter interface {
	Export(ctx context.Context, req export.Request) (*export.File, error)
}

// SettingsStore reads and writes the per-page setting.
type SettingsStore interface {
	PerPage(ctx context.Context) (int, error)
	SetPerPage(ctx context.Context, n int) error
}

// TypeRegistry lists exportable types and rediscovers custom ones.
type TypeRegistry interface {
	Types() []export.TypeInfo
	Refresh(ctx context.Context, src export.TypeSource) (int, error)
}

// HistoryLister reads the export log.
type HistoryLister interface {
	List(ctx context.Context, f history.Filter) ([]*history.Entry, error)
}

// SiteClient talks to the site being exported.
type SiteClient interface {
	Site(ctx context.Context) (*wpapi.SiteInfo, error)
	PostTypes(ctx context.Context) ([]wpapi.PostType, error)
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required dependencies
	Exporter Exporter
	Settings SettingsStore
	Types    TypeRegistry

	// Optional dependencies (nil if not configured)
	History HistoryLister
	Site    SiteClient
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Exporter == nil {
		return errors.New("exporter is required")
	}
	if d.Settings == nil {
		return errors.New("settings store is required")
	}
	if d.Types == nil {
		return errors.New("type registry is required")
	}
	return nil
}
