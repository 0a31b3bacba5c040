package export_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/cpexport/internal/export"
	"github.com/vmunix/cpexport/internal/export/mocks"
	"github.com/vmunix/cpexport/pkg/wpapi"
)

func newTestRegistry(t *testing.T) *export.Registry {
	t.Helper()
	reg, err := export.NewRegistry(export.CustomType{PostType: "book", RESTBase: "books", Label: "Books"})
	require.NoError(t, err)
	return reg
}

func TestBuilder_InvalidType(t *testing.T) {
	b := export.NewBuilder(newTestRegistry(t), nil, nil, testLogger())

	_, err := b.Build(context.Background(), "widgets", url.Values{})
	assert.ErrorIs(t, err, export.ErrInvalidType)
}

func TestBuilder_Posts_IncludeIDs(t *testing.T) {
	b := export.NewBuilder(newTestRegistry(t), nil, nil, testLogger())

	in := url.Values{
		"ids":             {"3, 7,x,10"},
		"include-exclude": {"include"},
	}
	q, err := b.Build(context.Background(), export.TypePosts, in)
	require.NoError(t, err)

	assert.Equal(t, []int64{3, 7, 10}, q.Args[export.ArgInclude])
	assert.NotContains(t, q.Args, export.ArgExclude)
	assert.True(t, q.Pushdown)
	assert.Equal(t, export.VariantStandardPost, q.Variant)
}

func TestBuilder_Posts_ExcludeIDs(t *testing.T) {
	b := export.NewBuilder(newTestRegistry(t), nil, nil, testLogger())

	in := url.Values{
		"ids":             {"4,5"},
		"include-exclude": {"exclude"},
	}
	q, err := b.Build(context.Background(), export.TypePosts, in)
	require.NoError(t, err)

	assert.Equal(t, []int64{4, 5}, q.Args[export.ArgExclude])
	assert.NotContains(t, q.Args, export.ArgInclude)
}

func TestBuilder_Posts_RenamedIDField(t *testing.T) {
	b := export.NewBuilder(newTestRegistry(t), nil, nil, testLogger())

	q, err := b.Build(context.Background(), export.TypePosts, url.Values{"exclude": {"8, 9"}})
	require.NoError(t, err)
	assert.Equal(t, []int64{8, 9}, q.Args[export.ArgExclude])
	assert.NotContains(t, q.Args, export.ArgInclude)
}

func TestBuilder_CustomType_ScopedRadio(t *testing.T) {
	b := export.NewBuilder(newTestRegistry(t), nil, nil, testLogger())

	in := url.Values{
		"ids":                  {"12"},
		"book-include-exclude": {"exclude"},
	}
	q, err := b.Build(context.Background(), "books", in)
	require.NoError(t, err)

	assert.Equal(t, export.VariantStandardPost, q.Variant)
	assert.Equal(t, []int64{12}, q.Args[export.ArgExclude])
}

func TestBuilder_Posts_AllFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	terms := mocks.NewMockTermResolver(ctrl)
	terms.EXPECT().TermID(gomock.Any(), export.TaxonomyPostTag, "go").Return(int64(11), nil)
	terms.EXPECT().TermID(gomock.Any(), export.TaxonomyPostTag, "cafe-au-lait").Return(int64(12), nil)
	terms.EXPECT().TermID(gomock.Any(), export.TaxonomyPostTag, "missing").Return(int64(0), wpapi.ErrNotFound)

	b := export.NewBuilder(newTestRegistry(t), terms, nil, testLogger())

	in := url.Values{
		"author":     {"2"},
		"categories": {"6"},
		"post_tags":  {"Go, Café au Lait,,missing"},
		"start_date": {"2024-01-01T00:00:00"},
		"end_date":   {"2024-12-31T23:59:59"},
		"status":     {"publish"},
	}
	q, err := b.Build(context.Background(), export.TypePosts, in)
	require.NoError(t, err)

	assert.Equal(t, export.QueryArgs{
		export.ArgAuthor:     int64(2),
		export.ArgCategories: int64(6),
		export.ArgTags:       []int64{11, 12},
		export.ArgAfter:      "2024-01-01T00:00:00",
		export.ArgBefore:     "2024-12-31T23:59:59",
		export.ArgStatus:     "publish",
	}, q.Args)
}

func TestBuilder_Posts_EmptyInputPrunesEverything(t *testing.T) {
	b := export.NewBuilder(newTestRegistry(t), nil, nil, testLogger())

	in := url.Values{
		"author":     {"0"},
		"categories": {""},
		"ids":        {" , "},
		"post_tags":  {""},
		"start_date": {""},
		"status":     {""},
	}
	q, err := b.Build(context.Background(), export.TypePosts, in)
	require.NoError(t, err)
	assert.Empty(t, q.Args, "absent keys mean no constraint")
}

func TestBuilder_Posts_TagLookupErrorDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	terms := mocks.NewMockTermResolver(ctrl)
	terms.EXPECT().TermID(gomock.Any(), export.TaxonomyPostTag, "news").Return(int64(0), errors.New("timeout"))

	b := export.NewBuilder(newTestRegistry(t), terms, nil, testLogger())

	q, err := b.Build(context.Background(), export.TypePosts, url.Values{"post_tags": {"news"}})
	require.NoError(t, err)
	assert.NotContains(t, q.Args, export.ArgTags)
}

func TestBuilder_Media(t *testing.T) {
	ctrl := gomock.NewController(t)
	terms := mocks.NewMockTermResolver(ctrl)
	terms.EXPECT().TermID(gomock.Any(), export.TaxonomyMediaPostTag, "banner").Return(int64(21), nil)

	b := export.NewBuilder(newTestRegistry(t), terms, nil, testLogger())

	in := url.Values{
		"media_type":       {"image"},
		"media_categories": {"4"},
		"media_tags":       {"banner"},
		"status":           {"publish"},
	}
	q, err := b.Build(context.Background(), export.TypeMedia, in)
	require.NoError(t, err)

	assert.Equal(t, export.VariantMedia, q.Variant)
	assert.True(t, q.Pushdown)
	assert.Equal(t, export.QueryArgs{
		export.ArgStatus:          "inherit",
		export.ArgMediaType:       "image",
		export.ArgMediaCategories: int64(4),
		export.ArgMediaTags:       []int64{21},
	}, q.Args)
}

func TestBuilder_Taxonomies(t *testing.T) {
	b := export.NewBuilder(newTestRegistry(t), nil, nil, testLogger())

	tests := []struct {
		name string
		typ  export.ContentType
		in   url.Values
		want export.QueryArgs
	}{
		{
			name: "categories selected",
			typ:  export.TypeCategories,
			in:   url.Values{"categories": {"3", "5", "oops"}},
			want: export.QueryArgs{export.ArgInclude: []int64{3, 5}},
		},
		{
			name: "all among selected collapses",
			typ:  export.TypeCategories,
			in:   url.Values{"categories": {"3", "0", "5"}},
			want: export.QueryArgs{},
		},
		{
			name: "tags nothing selected",
			typ:  export.TypeTags,
			in:   url.Values{},
			want: export.QueryArgs{},
		},
		{
			name: "taxonomies",
			typ:  export.TypeTaxonomies,
			in:   url.Values{"taxonomies": {"9"}},
			want: export.QueryArgs{export.ArgInclude: []int64{9}},
		},
		{
			name: "menus by id",
			typ:  export.TypeMenus,
			in:   url.Values{"menus": {"2", " 4 "}},
			want: export.QueryArgs{export.ArgInclude: []string{"2", "4"}},
		},
		{
			name: "menus all",
			typ:  export.TypeMenus,
			in:   url.Values{"menus": {"2", "all"}},
			want: export.QueryArgs{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := b.Build(context.Background(), tt.typ, tt.in)
			require.NoError(t, err)
			assert.False(t, q.Pushdown)
			assert.Equal(t, export.VariantTaxonomy, q.Variant)
			assert.Equal(t, tt.want, q.Args)
		})
	}
}

func TestBuilder_Users(t *testing.T) {
	b := export.NewBuilder(newTestRegistry(t), nil, nil, testLogger())

	t.Run("explicit users ignore role filters", func(t *testing.T) {
		in := url.Values{
			"users":               {"5", "9"},
			"roles":               {"editor"},
			"has_published_posts": {""},
		}
		q, err := b.Build(context.Background(), export.TypeUsers, in)
		require.NoError(t, err)
		assert.Equal(t, export.QueryArgs{export.ArgInclude: []int64{5, 9}}, q.Args)
	})

	t.Run("all users applies role filters", func(t *testing.T) {
		in := url.Values{
			"users":               {"0", "5"},
			"roles":               {"editor"},
			"has_published_posts": {""},
		}
		q, err := b.Build(context.Background(), export.TypeUsers, in)
		require.NoError(t, err)
		assert.Equal(t, export.QueryArgs{
			export.ArgRoles:             "editor",
			export.ArgHasPublishedPosts: true,
		}, q.Args)
	})

	t.Run("no selection and no filters", func(t *testing.T) {
		q, err := b.Build(context.Background(), export.TypeUsers, url.Values{})
		require.NoError(t, err)
		assert.Empty(t, q.Args)
		assert.Equal(t, export.VariantUsers, q.Variant)
	})
}

func TestBuilder_Comments(t *testing.T) {
	t.Run("all post types", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		comments := mocks.NewMockCommentResolver(ctrl) // not consulted

		b := export.NewBuilder(newTestRegistry(t), nil, comments, testLogger())
		q, err := b.Build(context.Background(), export.TypeComments, url.Values{"post_types": {"post", "0"}})
		require.NoError(t, err)
		assert.Empty(t, q.Args)
		assert.False(t, q.Empty)
	})

	t.Run("selected post types", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		comments := mocks.NewMockCommentResolver(ctrl)
		comments.EXPECT().CommentIDs(gomock.Any(), []string{"post", "book"}).Return([]int64{31, 32}, nil)

		b := export.NewBuilder(newTestRegistry(t), nil, comments, testLogger())
		q, err := b.Build(context.Background(), export.TypeComments, url.Values{"post_types": {"post", "book"}})
		require.NoError(t, err)
		assert.Equal(t, export.QueryArgs{export.ArgInclude: []int64{31, 32}}, q.Args)
		assert.False(t, q.Pushdown)
	})

	t.Run("selection without comments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		comments := mocks.NewMockCommentResolver(ctrl)
		comments.EXPECT().CommentIDs(gomock.Any(), []string{"page"}).Return(nil, nil)

		b := export.NewBuilder(newTestRegistry(t), nil, comments, testLogger())
		q, err := b.Build(context.Background(), export.TypeComments, url.Values{"post_types": {"page"}})
		require.NoError(t, err)
		assert.True(t, q.Empty)
	})

	t.Run("resolution failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		comments := mocks.NewMockCommentResolver(ctrl)
		comments.EXPECT().CommentIDs(gomock.Any(), gomock.Any()).Return(nil, wpapi.ErrUnauthorized)

		b := export.NewBuilder(newTestRegistry(t), nil, comments, testLogger())
		_, err := b.Build(context.Background(), export.TypeComments, url.Values{"post_types": {"post"}})
		assert.ErrorIs(t, err, wpapi.ErrUnauthorized)
	})
}

func TestBuilder_MediaTagsAgainstSite(t *testing.T) {
	var paths []string
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path != "/wp-json/wp/v2/media_tags" {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "banner", r.URL.Query().Get("slug"))
		_, _ = w.Write([]byte(`[{"id":31}]`))
	}))
	defer site.Close()

	client := wpapi.New(site.URL)
	b := export.NewBuilder(newTestRegistry(t), client, nil, testLogger())

	q, err := b.Build(context.Background(), export.TypeMedia, url.Values{"media_tags": {"Banner"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"/wp-json/wp/v2/media_tags"}, paths)
	assert.Equal(t, []int64{31}, q.Args[export.ArgMediaTags])
}
