package export

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/vmunix/cpexport/pkg/wpapi"
)

// DefaultPageSize is used when neither the request nor the stored setting
// carries an allowed page size.
const DefaultPageSize = 50

// AllowedPageSizes bounds how many records a single batch may request.
var AllowedPageSizes = []int{10, 20, 50, 100}

// ValidPageSize reports whether n is one of AllowedPageSizes.
func ValidPageSize(n int) bool {
	return slices.Contains(AllowedPageSizes, n)
}

// Result is the outcome of a full export.
type Result struct {
	Records  []wpapi.Record
	PageSize int
	Queries  int // listing calls issued, including a final empty page
	Filtered int // records removed by the media post-filter
}

type accState int

const (
	stateFetching accState = iota
	stateFiltering
	stateDone
)

// Accumulator pages through a collection until it is exhausted.
type Accumulator struct {
	lister   Lister
	settings PerPageSource
	log      *slog.Logger
}

// NewAccumulator creates an accumulator. settings may be nil, in which case
// invalid page sizes fall back to DefaultPageSize.
func NewAccumulator(lister Lister, settings PerPageSource, log *slog.Logger) *Accumulator {
	if log == nil {
		log = slog.Default()
	}
	return &Accumulator{
		lister:   lister,
		settings: settings,
		log:      log,
	}
}

// PageSize returns requested if it is allowed, otherwise the stored
// setting if that is allowed, otherwise DefaultPageSize.
func (a *Accumulator) PageSize(ctx context.Context, requested int) int {
	if ValidPageSize(requested) {
		return requested
	}
	if a.settings == nil {
		return DefaultPageSize
	}
	stored, err := a.settings.PerPage(ctx)
	if err != nil {
		a.log.Warn("read per-page setting failed, using default", "error", err)
		return DefaultPageSize
	}
	if ValidPageSize(stored) {
		return stored
	}
	return DefaultPageSize
}

// includeChunk caps how many IDs a single listing request carries in
// include. Longer lists are listed chunk by chunk.
const includeChunk = 100

// Run fetches every page of q, one page at a time, and applies the media
// post-filter. A page shorter than the page size (or empty) ends the
// listing; a final page of exactly the page size costs one extra empty
// query. An include list longer than includeChunk is split, each chunk is
// paged through in turn and the results are concatenated in chunk order.
// Any listing error aborts the export and no records are returned.
func (a *Accumulator) Run(ctx context.Context, q *Query, requestedPageSize int) (*Result, error) {
	res := &Result{PageSize: a.PageSize(ctx, requestedPageSize)}
	if q.Empty {
		return res, nil
	}

	chunks := includeChunks(q.Args)
	var records []wpapi.Record
	chunk, page := 0, 1
	state := stateFetching
	for state != stateDone {
		switch state {
		case stateFetching:
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			batch, err := a.lister.List(ctx, q.Type, chunks[chunk], page, res.PageSize)
			res.Queries++
			if err != nil {
				return nil, fmt.Errorf("list %s page %d: %w", q.Type, page, err)
			}
			records = append(records, batch...)
			page++
			if len(batch) != res.PageSize {
				chunk, page = chunk+1, 1
				if chunk == len(chunks) {
					state = stateFiltering
				}
			}

		case stateFiltering:
			if q.Variant == VariantMedia {
				before := len(records)
				records = FilterMedia(records, q.Args)
				res.Filtered = before - len(records)
			}
			state = stateDone
		}
	}

	a.log.Debug("accumulated",
		"type", q.Type,
		"records", len(records),
		"queries", res.Queries,
		"chunks", len(chunks),
		"page_size", res.PageSize,
	)

	res.Records = records
	return res, nil
}

// includeChunks splits a numeric include list into includeChunk-sized
// argument sets. Other arguments are shared by every chunk.
func includeChunks(args QueryArgs) []QueryArgs {
	ids, ok := args[ArgInclude].([]int64)
	if !ok || len(ids) <= includeChunk {
		return []QueryArgs{args}
	}

	chunks := make([]QueryArgs, 0, (len(ids)+includeChunk-1)/includeChunk)
	for start := 0; start < len(ids); start += includeChunk {
		c := args.Clone()
		c[ArgInclude] = ids[start:min(start+includeChunk, len(ids))]
		chunks = append(chunks, c)
	}
	return chunks
}

// FilterMedia keeps records whose media_categories contain the
// media_categories argument and whose media_tags intersect the media_tags
// argument. Unset arguments do not constrain.
func FilterMedia(records []wpapi.Record, args QueryArgs) []wpapi.Record {
	category := args.Int64(ArgMediaCategories)
	tags := args.Int64s(ArgMediaTags)
	if category == 0 && len(tags) == 0 {
		return records
	}

	kept := records[:0:0]
	for _, rec := range records {
		if category != 0 && !slices.Contains(rec.Int64s(ArgMediaCategories), category) {
			continue
		}
		if len(tags) > 0 && !intersects(rec.Int64s(ArgMediaTags), tags) {
			continue
		}
		kept = append(kept, rec)
	}
	return kept
}

func intersects(a, b []int64) bool {
	for _, v := range a {
		if slices.Contains(b, v) {
			return true
		}
	}
	return false
}
