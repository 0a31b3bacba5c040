package export

import (
	"context"
	"net/url"
	"strconv"

	"github.com/vmunix/cpexport/pkg/wpapi"
)

// Collector is the part of wpapi.Client the REST lister needs.
type Collector interface {
	List(ctx context.Context, route string, params url.Values) ([]wpapi.Record, error)
}

// RESTLister adapts the REST client to Lister.
type RESTLister struct {
	client Collector
	embed  bool
}

// NewRESTLister creates a Lister backed by the site's REST API. With embed
// set, authors and featured images are embedded in each record.
func NewRESTLister(client Collector, embed bool) *RESTLister {
	return &RESTLister{client: client, embed: embed}
}

// List implements Lister.
func (l *RESTLister) List(ctx context.Context, t ContentType, args QueryArgs, page, perPage int) ([]wpapi.Record, error) {
	params := args.Values()
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	if l.embed && params.Get(ArgFields) == "" {
		params.Set("_embed", "1")
	}
	return l.client.List(ctx, string(t), params)
}
