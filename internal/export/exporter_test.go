package export_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/cpexport/internal/export"
	"github.com/vmunix/cpexport/internal/export/mocks"
	"github.com/vmunix/cpexport/internal/history"
	"github.com/vmunix/cpexport/pkg/wpapi"
)

var fixedTime = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

func newTestExporter(t *testing.T, lister export.Lister, settings export.PerPageSource, opts ...export.ExporterOption) *export.Exporter {
	t.Helper()
	reg := newTestRegistry(t)
	builder := export.NewBuilder(reg, nil, nil, testLogger())
	acc := export.NewAccumulator(lister, settings, testLogger())
	opts = append([]export.ExporterOption{export.WithClock(func() time.Time { return fixedTime })}, opts...)
	return export.NewExporter(reg, builder, acc, testLogger(), opts...)
}

func TestExporter_Export(t *testing.T) {
	lister := &pagedLister{records: makeRecords(25, 1)}
	exp := newTestExporter(t, lister, nil, export.WithSiteName("Example Blog"))

	file, err := exp.Export(context.Background(), export.Request{Type: export.TypePosts, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, 3, file.Queries)
	assert.Equal(t, 25, file.Records)
	assert.Equal(t, export.MediaTypeJSON, file.ContentType)
	assert.Equal(t, "Example Blog-json-posts-2024-03-09T14-05-07.json", file.Name)
	assert.NotEmpty(t, file.ExportID)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(file.Data, &decoded))
	require.Len(t, decoded, 25)
	assert.InDelta(t, 1, decoded[0]["id"], 0)
	assert.InDelta(t, 25, decoded[24]["id"], 0)
}

func TestExporter_EmptyResultIsEmptyArray(t *testing.T) {
	exp := newTestExporter(t, &pagedLister{}, nil)

	file, err := exp.Export(context.Background(), export.Request{Type: export.TypeUsers})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(file.Data))
	assert.Equal(t, 1, file.Queries)
	assert.Equal(t, "site-json-users-2024-03-09T14-05-07.json", file.Name)
}

func TestExporter_UsesStoredPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mocks.NewMockPerPageSource(ctrl)
	settings.EXPECT().PerPage(gomock.Any()).Return(20, nil)

	lister := &pagedLister{records: makeRecords(5, 1)}
	exp := newTestExporter(t, lister, settings)

	_, err := exp.Export(context.Background(), export.Request{Type: export.TypePages})
	require.NoError(t, err)
	assert.Equal(t, []int{20}, lister.sizes)
}

func TestExporter_InvalidType(t *testing.T) {
	ctrl := gomock.NewController(t)
	hist := mocks.NewMockHistoryStore(ctrl) // nothing recorded

	lister := &pagedLister{}
	exp := newTestExporter(t, lister, nil, export.WithHistory(hist))

	for _, typ := range []export.ContentType{"", "widgets"} {
		file, err := exp.Export(context.Background(), export.Request{Type: typ})
		assert.ErrorIs(t, err, export.ErrInvalidType)
		assert.Nil(t, file)
	}
	assert.Empty(t, lister.pages, "no listing for invalid types")
}

func TestExporter_InvalidDateRange(t *testing.T) {
	exp := newTestExporter(t, &pagedLister{}, nil)

	req := export.Request{
		Type: export.TypePosts,
		Filters: url.Values{
			"start_date": {"2024-05-01T00:00:00"},
			"end_date":   {"2024-04-01T00:00:00"},
		},
	}
	_, err := exp.Export(context.Background(), req)
	assert.ErrorIs(t, err, export.ErrInvalidDateRange)
}

func TestExporter_RecordsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	hist := mocks.NewMockHistoryStore(ctrl)

	var got *history.Entry
	hist.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *history.Entry) error {
		got = e
		return nil
	})

	exp := newTestExporter(t, &pagedLister{records: makeRecords(3, 1)}, nil,
		export.WithHistory(hist), export.WithSiteName("blog"))

	file, err := exp.Export(context.Background(), export.Request{Type: "books", PageSize: 10})
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, file.ExportID, got.ExportID)
	assert.Equal(t, "books", got.Type)
	assert.Equal(t, history.StatusCompleted, got.Status)
	assert.Equal(t, 3, got.Records)
	assert.Equal(t, 1, got.Queries)
	assert.Equal(t, int64(len(file.Data)), got.Bytes)
	assert.Equal(t, file.Name, got.Filename)
	assert.Empty(t, got.Error)
}

func TestExporter_FailureRecordsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockLister(ctrl)
	lister.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), 1, 50).Return(nil, wpapi.ErrUnauthorized)

	hist := mocks.NewMockHistoryStore(ctrl)
	hist.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *history.Entry) error {
		assert.Equal(t, history.StatusFailed, e.Status)
		assert.Contains(t, e.Error, "unauthorized")
		assert.Zero(t, e.Records)
		return nil
	})

	exp := newTestExporter(t, lister, nil, export.WithHistory(hist))

	file, err := exp.Export(context.Background(), export.Request{Type: export.TypePosts})
	assert.ErrorIs(t, err, wpapi.ErrUnauthorized)
	assert.Nil(t, file)
}

func TestExporter_HistoryErrorIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	hist := mocks.NewMockHistoryStore(ctrl)
	hist.EXPECT().Add(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	exp := newTestExporter(t, &pagedLister{}, nil, export.WithHistory(hist))

	_, err := exp.Export(context.Background(), export.Request{Type: export.TypeTags})
	assert.NoError(t, err)
}

func TestExporter_SiteNamer(t *testing.T) {
	t.Run("looked up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		site := mocks.NewMockSiteNamer(ctrl)
		site.EXPECT().SiteName(gomock.Any()).Return("My Site", nil)

		exp := newTestExporter(t, &pagedLister{}, nil, export.WithSiteNamer(site))
		file, err := exp.Export(context.Background(), export.Request{Type: export.TypeMenus})
		require.NoError(t, err)
		assert.Equal(t, "My Site-json-menus-2024-03-09T14-05-07.json", file.Name)
	})

	t.Run("lookup failure falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		site := mocks.NewMockSiteNamer(ctrl)
		site.EXPECT().SiteName(gomock.Any()).Return("", errors.New("offline"))

		exp := newTestExporter(t, &pagedLister{}, nil, export.WithSiteNamer(site))
		file, err := exp.Export(context.Background(), export.Request{Type: export.TypeMenus})
		require.NoError(t, err)
		assert.Equal(t, "site-json-menus-2024-03-09T14-05-07.json", file.Name)
	})

	t.Run("configured name wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		site := mocks.NewMockSiteNamer(ctrl) // not consulted

		exp := newTestExporter(t, &pagedLister{}, nil, export.WithSiteNamer(site), export.WithSiteName("fixed"))
		file, err := exp.Export(context.Background(), export.Request{Type: export.TypeMenus})
		require.NoError(t, err)
		assert.Equal(t, "fixed-json-menus-2024-03-09T14-05-07.json", file.Name)
	})
}

func TestFilename(t *testing.T) {
	at := time.Date(2023, 12, 31, 23, 59, 1, 0, time.UTC)
	assert.Equal(t, "blog-json-posts-2023-12-31T23-59-01.json", export.Filename("blog", export.TypePosts, at))
	assert.Equal(t, "a-b-c-json-media-2023-12-31T23-59-01.json", export.Filename(` a/b"c `, export.TypeMedia, at))
}

func TestNewRequest(t *testing.T) {
	req := export.NewRequest(url.Values{"type": {" posts "}, "per_page": {"20"}, "author": {"3"}})
	assert.Equal(t, export.TypePosts, req.Type)
	assert.Equal(t, 20, req.PageSize)
	assert.Equal(t, "3", req.Filters.Get("author"))

	req = export.NewRequest(url.Values{"type": {"pages"}, "page_size": {"100"}, "per_page": {"20"}})
	assert.Equal(t, 100, req.PageSize)

	req = export.NewRequest(url.Values{"type": {"pages"}, "page_size": {"lots"}})
	assert.Zero(t, req.PageSize)
}
