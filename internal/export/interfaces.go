package export

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/vmunix/cpexport/internal/history"
	"github.com/vmunix/cpexport/pkg/wpapi"
)

// Lister fetches one page of a content type's collection.
type Lister interface {
	List(ctx context.Context, t ContentType, args QueryArgs, page, perPage int) ([]wpapi.Record, error)
}

// TermResolver maps a term slug to its ID. wpapi.ErrNotFound signals an
// unknown slug.
type TermResolver interface {
	TermID(ctx context.Context, taxonomy, slug string) (int64, error)
}

// CommentResolver returns the IDs of comments left on items of the given
// post types.
type CommentResolver interface {
	CommentIDs(ctx context.Context, postTypes []string) ([]int64, error)
}

// PerPageSource provides the persisted per-page setting.
type PerPageSource interface {
	PerPage(ctx context.Context) (int, error)
}

// SiteNamer provides the site title used in export file names.
type SiteNamer interface {
	SiteName(ctx context.Context) (string, error)
}

// HistoryStore records finished exports.
type HistoryStore interface {
	Add(ctx context.Context, e *history.Entry) error
}
