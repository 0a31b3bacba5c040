package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vmunix/cpexport/internal/history"
	"github.com/vmunix/cpexport/pkg/wpapi"
)

// MediaTypeJSON is the content type of export files.
const MediaTypeJSON = "application/json"

const filenameTimeLayout = "2006-01-02T15-04-05"

// fallbackSiteName is used in file names when the site title is unknown.
const fallbackSiteName = "site"

// Request is one export invocation.
type Request struct {
	Type     ContentType
	Filters  url.Values
	PageSize int // 0 or a disallowed value means "use the stored setting"
}

// NewRequest reads the content type and page size from form input. The
// whole input is kept as filters.
func NewRequest(in url.Values) Request {
	raw := in.Get("page_size")
	if raw == "" {
		raw = in.Get("per_page")
	}
	pageSize, _ := strconv.Atoi(strings.TrimSpace(raw))
	return Request{
		Type:     ContentType(strings.TrimSpace(in.Get("type"))),
		Filters:  in,
		PageSize: pageSize,
	}
}

// Validate checks the parts of a request that do not need the registry.
// Dates are compared as ISO-8601 strings.
func (r Request) Validate() error {
	if r.Type == "" {
		return fmt.Errorf("missing type: %w", ErrInvalidType)
	}
	start, end := r.Filters.Get(FieldStartDate), r.Filters.Get(FieldEndDate)
	if start != "" && end != "" && start > end {
		return fmt.Errorf("%s > %s: %w", start, end, ErrInvalidDateRange)
	}
	return nil
}

// File is a finished export ready to be served.
type File struct {
	ExportID    string
	Name        string
	ContentType string
	Data        []byte
	Records     int
	Queries     int
}

// Exporter runs full exports: build filters, accumulate, serialize.
type Exporter struct {
	registry *Registry
	builder  *Builder
	acc      *Accumulator
	history  HistoryStore
	site     SiteNamer
	siteName string
	now      func() time.Time
	log      *slog.Logger
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithSiteName fixes the site name used in file names.
func WithSiteName(name string) ExporterOption {
	return func(e *Exporter) {
		e.siteName = name
	}
}

// WithSiteNamer looks the site name up when none is configured.
func WithSiteNamer(site SiteNamer) ExporterOption {
	return func(e *Exporter) {
		e.site = site
	}
}

// WithHistory records every export attempt.
func WithHistory(h HistoryStore) ExporterOption {
	return func(e *Exporter) {
		e.history = h
	}
}

// WithClock overrides the time source (for testing).
func WithClock(now func() time.Time) ExporterOption {
	return func(e *Exporter) {
		e.now = now
	}
}

// NewExporter creates an exporter.
func NewExporter(registry *Registry, builder *Builder, acc *Accumulator, log *slog.Logger, opts ...ExporterOption) *Exporter {
	if log == nil {
		log = slog.Default()
	}
	e := &Exporter{
		registry: registry,
		builder:  builder,
		acc:      acc,
		now:      time.Now,
		log:      log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export runs req to completion and returns the encoded file. Nothing is
// returned unless every page was fetched.
func (e *Exporter) Export(ctx context.Context, req Request) (*File, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, ok := e.registry.Lookup(req.Type); !ok {
		return nil, fmt.Errorf("%q: %w", req.Type, ErrInvalidType)
	}

	exportID := uuid.NewString()
	log := e.log.With("export_id", exportID, "type", req.Type)
	start := time.Now()

	file, err := e.run(ctx, req, exportID)
	duration := time.Since(start)

	entry := &history.Entry{
		ExportID: exportID,
		Type:     string(req.Type),
		Duration: duration,
	}
	if err != nil {
		entry.Status = history.StatusFailed
		entry.Error = err.Error()
		log.Error("export failed", "error", err, "duration_ms", duration.Milliseconds())
	} else {
		entry.Status = history.StatusCompleted
		entry.Records = file.Records
		entry.Queries = file.Queries
		entry.Bytes = int64(len(file.Data))
		entry.Filename = file.Name
		log.Info("export complete",
			"records", file.Records,
			"queries", file.Queries,
			"bytes", len(file.Data),
			"duration_ms", duration.Milliseconds(),
		)
	}
	e.record(ctx, entry)

	if err != nil {
		return nil, err
	}
	return file, nil
}

func (e *Exporter) run(ctx context.Context, req Request, exportID string) (*File, error) {
	q, err := e.builder.Build(ctx, req.Type, req.Filters)
	if err != nil {
		return nil, err
	}

	res, err := e.acc.Run(ctx, q, req.PageSize)
	if err != nil {
		return nil, err
	}

	records := res.Records
	if records == nil {
		records = []wpapi.Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}

	return &File{
		ExportID:    exportID,
		Name:        Filename(e.resolveSiteName(ctx), req.Type, e.now()),
		ContentType: MediaTypeJSON,
		Data:        data,
		Records:     len(records),
		Queries:     res.Queries,
	}, nil
}

func (e *Exporter) record(ctx context.Context, entry *history.Entry) {
	if e.history == nil {
		return
	}
	if err := e.history.Add(context.WithoutCancel(ctx), entry); err != nil {
		e.log.Warn("record export history failed", "export_id", entry.ExportID, "error", err)
	}
}

func (e *Exporter) resolveSiteName(ctx context.Context) string {
	if e.siteName != "" {
		return e.siteName
	}
	if e.site == nil {
		return fallbackSiteName
	}
	name, err := e.site.SiteName(ctx)
	if err != nil || strings.TrimSpace(name) == "" {
		if err != nil {
			e.log.Warn("site name lookup failed", "error", err)
		}
		return fallbackSiteName
	}
	return name
}

// Filename builds "<site>-json-<type>-<timestamp>.json".
func Filename(site string, t ContentType, at time.Time) string {
	site = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', '\r', '\n':
			return '-'
		}
		return r
	}, strings.TrimSpace(site))
	return fmt.Sprintf("%s-json-%s-%s.json", site, t, at.Format(filenameTimeLayout))
}
