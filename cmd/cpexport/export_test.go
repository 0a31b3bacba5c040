package main

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildExportForm_Posts(t *testing.T) {
	form := buildExportForm("posts", exportOptions{
		author:   3,
		postTags: []string{"go", "rust"},
		ids:      "4,8",
		exclude:  true,
		start:    "2024-01-01T00:00:00",
		perPage:  20,
	})

	assert.Equal(t, "3", form.Get("author"))
	assert.Equal(t, "go,rust", form.Get("post_tags"))
	assert.Equal(t, "4,8", form.Get("ids"))
	assert.Equal(t, "exclude", form.Get("include-exclude"))
	assert.Equal(t, "2024-01-01T00:00:00", form.Get("start_date"))
	assert.Equal(t, "20", form.Get("per_page"))
	assert.False(t, form.Has("categories"))
	assert.False(t, form.Has("end_date"))
}

func TestBuildExportForm_IncludeByDefault(t *testing.T) {
	form := buildExportForm("pages", exportOptions{ids: "1"})
	assert.Equal(t, "include", form.Get("include-exclude"))
}

func TestBuildExportForm_Selection(t *testing.T) {
	tests := []struct {
		typ   string
		field string
	}{
		{"categories", "categories"},
		{"tags", "tags"},
		{"taxonomies", "taxonomies"},
		{"menus", "menus"},
		{"comments", "post_types"},
		{"users", "users"},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			form := buildExportForm(tt.typ, exportOptions{selection: []string{"1", "2"}})
			assert.Equal(t, []string{"1", "2"}, form[tt.field])
		})
	}
}

func TestBuildExportForm_Users(t *testing.T) {
	form := buildExportForm("users", exportOptions{roles: "editor", hasPublishedPosts: true})
	assert.Equal(t, "editor", form.Get("roles"))
	assert.True(t, form.Has("has_published_posts"))
}

func typesServer(t *testing.T) string {
	t.Helper()
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/api/v1/export":
				w.WriteHeader(http.StatusNoContent)
			case "/api/v1/types":
				respondJSON(t, w, TypesResponse{Types: []TypeResponse{
					{Type: "posts"}, {Type: "pages"}, {Type: "categories"}, {Type: "users"},
				}})
			default:
				http.NotFound(w, r)
			}
		}).
		Build()
	return srv.URL
}

func TestExplainNoExport(t *testing.T) {
	client := NewClient(typesServer(t), "k")

	err := explainNoExport(client, "categores")
	require.Error(t, err)
	assert.Equal(t, `unknown type "categores" (did you mean "categories"?)`, err.Error())

	err = explainNoExport(client, "zzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: posts, pages, categories, users")

	err = explainNoExport(client, "posts")
	require.Error(t, err)
	assert.Equal(t, `no export produced for "posts"`, err.Error())
}

func TestRunExportCmd_UnknownType(t *testing.T) {
	withServer(t, typesServer(t), "k")

	err := runExportCmd(exportCmd, []string{"post"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "posts"`)
}

func TestRunExportCmd_WritesFile(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/export").
		Handler(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Disposition", `attachment; filename="site-json-tags-2024-03-09T14-05-07.json"`)
			w.Header().Set("X-Export-Records", "0")
			_, _ = w.Write([]byte(`[]`))
		}).
		Build()
	withServer(t, srv.URL, "k")

	out := filepath.Join(t.TempDir(), "tags.json")
	old := exportOpts
	exportOpts = exportOptions{output: out}
	t.Cleanup(func() { exportOpts = old })

	require.NoError(t, runExportCmd(exportCmd, []string{"tags"}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestRunExportCmd_DefaultsToServerFilename(t *testing.T) {
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Disposition", `attachment; filename="site-json-menus-2024-03-09T14-05-07.json"`)
			_, _ = w.Write([]byte(`[{"id":1}]`))
		}).
		Build()
	withServer(t, srv.URL, "k")
	chdir(t, t.TempDir())

	old := exportOpts
	exportOpts = exportOptions{}
	t.Cleanup(func() { exportOpts = old })

	require.NoError(t, runExportCmd(exportCmd, []string{"menus"}))

	data, err := os.ReadFile("site-json-menus-2024-03-09T14-05-07.json")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(data))
}

func TestCheckExportFlags(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		opts    exportOptions
		wantErr string
	}{
		{"posts by category", "posts", exportOptions{categories: 5}, ""},
		{"categories selection", "categories", exportOptions{selection: []string{"3"}}, ""},
		{"categories with post filter", "categories", exportOptions{categories: 5, selection: []string{"3"}}, "--categories filters posts"},
		{"users with post filter", "users", exportOptions{categories: 5}, "--categories filters posts"},
		{"select on posts", "posts", exportOptions{selection: []string{"1"}}, "--select does not apply to posts"},
		{"select on custom type", "books", exportOptions{selection: []string{"1"}}, "--select does not apply to books"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkExportFlags(tt.typ, tt.opts)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunExportCmd_RejectsConflictingFlags(t *testing.T) {
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, _ *http.Request) {
			t.Error("no request expected")
		}).
		Build()
	withServer(t, srv.URL, "k")

	old := exportOpts
	exportOpts = exportOptions{categories: 5, selection: []string{"3"}}
	t.Cleanup(func() { exportOpts = old })

	err := runExportCmd(exportCmd, []string{"categories"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--categories")
}
