package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vmunix/cpexport/internal/export"
)

type exportOptions struct {
	author            int
	categories        int
	postTags          []string
	ids               string
	exclude           bool
	start             string
	end               string
	status            string
	mediaType         string
	mediaCategory     int
	mediaTags         []string
	selection         []string
	roles             string
	hasPublishedPosts bool
	perPage           int
	output            string
}

var exportOpts exportOptions

var exportCmd = &cobra.Command{
	Use:   "export <type>",
	Short: "Export content as a JSON file",
	Long: `Export site content as a JSON file.

Types: posts, pages, media, categories, tags, taxonomies, comments, menus,
users, plus any custom types the daemon knows about (see 'cpexport types').

--select applies to list-style types: category/tag/taxonomy IDs, menu slugs,
user IDs, or post type names for comments. Use 0 (or "all" for menus) to
export everything. --categories filters posts by category and cannot be
combined with list-style types.

Examples:
  cpexport export posts --author 3 --start 2024-01-01T00:00:00
  cpexport export posts --ids 4,8,15 --exclude
  cpexport export media --media-type image --media-tags summer,beach
  cpexport export comments --select post,page
  cpexport export users --roles editor --has-published-posts
  cpexport export pages -o - | jq length`,
	Args: cobra.ExactArgs(1),
	RunE: runExportCmd,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	f := exportCmd.Flags()
	f.IntVar(&exportOpts.author, "author", 0, "Author ID")
	f.IntVar(&exportOpts.categories, "categories", 0, "Category ID")
	f.StringSliceVar(&exportOpts.postTags, "post-tags", nil, "Tag slugs")
	f.StringVar(&exportOpts.ids, "ids", "", "Comma-separated item IDs")
	f.BoolVar(&exportOpts.exclude, "exclude", false, "Exclude --ids instead of including them")
	f.StringVar(&exportOpts.start, "start", "", "Start date (ISO 8601)")
	f.StringVar(&exportOpts.end, "end", "", "End date (ISO 8601)")
	f.StringVar(&exportOpts.status, "status", "", "Post status")
	f.StringVar(&exportOpts.mediaType, "media-type", "", "Media type (image, video, audio, application)")
	f.IntVar(&exportOpts.mediaCategory, "media-category", 0, "Media category ID")
	f.StringSliceVar(&exportOpts.mediaTags, "media-tags", nil, "Media tag slugs")
	f.StringSliceVar(&exportOpts.selection, "select", nil, "Selection for list-style types")
	f.StringVar(&exportOpts.roles, "roles", "", "User roles")
	f.BoolVar(&exportOpts.hasPublishedPosts, "has-published-posts", false, "Only users with published posts")
	f.IntVar(&exportOpts.perPage, "per-page", 0, "Batch size (10, 20, 50 or 100; default: stored setting)")
	f.StringVarP(&exportOpts.output, "output", "o", "", "Output file, '-' for stdout (default: server file name)")
}

// selectionTypes are exported from a --select list rather than post filters.
var selectionTypes = map[export.ContentType]bool{
	export.TypeCategories: true,
	export.TypeTags:       true,
	export.TypeTaxonomies: true,
	export.TypeMenus:      true,
	export.TypeComments:   true,
	export.TypeUsers:      true,
}

// checkExportFlags rejects flag combinations that would send one form field
// twice or be silently ignored.
func checkExportFlags(typ string, o exportOptions) error {
	if !selectionTypes[export.ContentType(typ)] {
		if len(o.selection) > 0 {
			return fmt.Errorf("--select does not apply to %s, use --ids", typ)
		}
		return nil
	}
	if o.categories > 0 {
		return fmt.Errorf("--categories filters posts; use --select to choose %s", typ)
	}
	return nil
}

// selectionField names the form field a type reads its selection from.
func selectionField(typ string) string {
	switch export.ContentType(typ) {
	case export.TypeMenus:
		return export.FieldMenus
	case export.TypeComments:
		return export.FieldPostTypes
	case export.TypeUsers:
		return export.FieldUsers
	default:
		return typ
	}
}

func buildExportForm(typ string, o exportOptions) url.Values {
	form := url.Values{}
	setInt := func(key string, n int) {
		if n > 0 {
			form.Set(key, strconv.Itoa(n))
		}
	}
	setStr := func(key, v string) {
		if v != "" {
			form.Set(key, v)
		}
	}

	setInt(export.ArgAuthor, o.author)
	setInt(export.ArgCategories, o.categories)
	setInt(export.ArgMediaCategories, o.mediaCategory)
	setInt("per_page", o.perPage)
	setStr(export.FieldPostTags, strings.Join(o.postTags, ","))
	setStr(export.FieldMediaTags, strings.Join(o.mediaTags, ","))
	setStr(export.FieldStartDate, o.start)
	setStr(export.FieldEndDate, o.end)
	setStr(export.ArgStatus, o.status)
	setStr(export.ArgMediaType, o.mediaType)
	setStr(export.ArgRoles, o.roles)

	if o.ids != "" {
		form.Set(export.FieldIDs, o.ids)
		mode := export.ArgInclude
		if o.exclude {
			mode = export.ArgExclude
		}
		form.Set(export.FieldIncludeExclude, mode)
	}
	if len(o.selection) > 0 {
		form[selectionField(typ)] = o.selection
	}
	if o.hasPublishedPosts {
		form.Set(export.FieldHasPublishedPosts, "1")
	}
	return form
}

func runExportCmd(cmd *cobra.Command, args []string) error {
	typ := strings.TrimSpace(args[0])
	if err := checkExportFlags(typ, exportOpts); err != nil {
		return err
	}
	client := NewClient(serverURL, apiKey)

	file, err := client.Export(typ, buildExportForm(typ, exportOpts))
	if errors.Is(err, ErrNoExport) {
		return explainNoExport(client, typ)
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	out := exportOpts.output
	if out == "-" {
		_, err := os.Stdout.Write(file.Data)
		return err
	}
	if out == "" {
		out = file.Name
		if out == "" {
			out = typ + ".json"
		}
	}
	if err := os.WriteFile(out, file.Data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	if jsonOutput {
		printJSON(map[string]any{
			"file":      out,
			"export_id": file.ID,
			"records":   file.Records,
			"queries":   file.Queries,
			"bytes":     len(file.Data),
		})
		return nil
	}

	abs, _ := filepath.Abs(out)
	fmt.Fprintf(os.Stderr, "Exported %d %s (%s, %d queries) to %s\n",
		file.Records, typ, humanize.Bytes(uint64(len(file.Data))), file.Queries, abs)
	return nil
}

// explainNoExport works out why the daemon declined an export: an unknown
// type gets a suggestion, anything else is most likely the API key.
func explainNoExport(client *Client, typ string) error {
	types, err := client.Types()
	if err != nil {
		return fmt.Errorf("no export produced for %q (check the type and --api-key): %w", typ, err)
	}

	names := make([]string, len(types.Types))
	for i, t := range types.Types {
		if t.Type == typ {
			return fmt.Errorf("no export produced for %q", typ)
		}
		names[i] = t.Type
	}

	if s := export.Suggest(typ, names); s != "" {
		return fmt.Errorf("unknown type %q (did you mean %q?)", typ, s)
	}
	return fmt.Errorf("unknown type %q (available: %s)", typ, strings.Join(names, ", "))
}
