package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/vmunix/cpexport/pkg/wpapi"
)

// Form field names read by the builder.
const (
	FieldIDs               = "ids"
	FieldIncludeExclude    = "include-exclude"
	FieldPostTags          = "post_tags"
	FieldMediaTags         = "media_tags"
	FieldStartDate         = "start_date"
	FieldEndDate           = "end_date"
	FieldPostTypes         = "post_types"
	FieldUsers             = "users"
	FieldMenus             = "menus"
	FieldHasPublishedPosts = "has_published_posts"
)

// Taxonomies used to resolve tag slugs.
const (
	TaxonomyPostTag      = "post_tag"
	TaxonomyMediaPostTag = "media_post_tag"
)

// Query is the resolved listing request for one export.
type Query struct {
	Type     ContentType
	Variant  Variant
	Args     QueryArgs
	Pushdown bool
	// Empty is set when a selection resolved to no items at all (comments
	// of post types nobody commented on). Nothing needs to be fetched.
	Empty bool
}

// Builder turns raw form input into a Query.
type Builder struct {
	registry *Registry
	terms    TermResolver
	comments CommentResolver
	log      *slog.Logger
}

// NewBuilder creates a filter builder.
func NewBuilder(registry *Registry, terms TermResolver, comments CommentResolver, log *slog.Logger) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{
		registry: registry,
		terms:    terms,
		comments: comments,
		log:      log,
	}
}

// Build produces the listing arguments for content type t. Bad IDs and
// unknown tag slugs are dropped rather than reported. The only errors are
// ErrInvalidType and failures while resolving comment selections.
func (b *Builder) Build(ctx context.Context, t ContentType, in url.Values) (*Query, error) {
	variant, ok := b.registry.Lookup(t)
	if !ok {
		return nil, fmt.Errorf("%q: %w", t, ErrInvalidType)
	}

	q := &Query{Type: t, Variant: variant, Pushdown: variant.Pushdown()}

	switch variant {
	case VariantStandardPost, VariantMedia:
		q.Args = b.postArgs(ctx, t, variant, in)
	case VariantTaxonomy:
		q.Args = selectionArgs(t, in)
	case VariantUsers:
		q.Args = userArgs(in)
	case VariantComments:
		args, empty, err := b.commentArgs(ctx, in)
		if err != nil {
			return nil, err
		}
		q.Args, q.Empty = args, empty
	}

	q.Args.Prune()
	return q, nil
}

func (b *Builder) postArgs(ctx context.Context, t ContentType, variant Variant, in url.Values) QueryArgs {
	args := QueryArgs{
		ArgAuthor:     parseUint(in.Get(ArgAuthor)),
		ArgCategories: parseUint(in.Get(ArgCategories)),
		ArgAfter:      in.Get(FieldStartDate),
		ArgBefore:     in.Get(FieldEndDate),
		ArgStatus:     strings.TrimSpace(in.Get(ArgStatus)),
	}

	postType, _ := b.registry.PostTypeOf(t)
	key, ids := idFilter(in, postType)
	args[key] = ids

	if variant == VariantMedia {
		// Attachments always carry the inherit status.
		args[ArgStatus] = "inherit"
		args[ArgMediaType] = strings.TrimSpace(in.Get(ArgMediaType))
		args[ArgMediaCategories] = parseUint(in.Get(ArgMediaCategories))
		args[ArgMediaTags] = b.resolveTags(ctx, TaxonomyMediaPostTag, in.Get(FieldMediaTags))
		return args
	}

	args[ArgTags] = b.resolveTags(ctx, TaxonomyPostTag, in.Get(FieldPostTags))
	return args
}

// idFilter reads the ID textarea and its include/exclude radio. The radio
// may be scoped to the post type ("book-include-exclude"). Requests that
// already name the field "include" or "exclude" are accepted as is.
func idFilter(in url.Values, postType string) (string, []int64) {
	raw := in.Get(FieldIDs)
	if raw == "" {
		if inc := in.Get(ArgInclude); inc != "" {
			return ArgInclude, ParseIDs(inc)
		}
		return ArgExclude, ParseIDs(in.Get(ArgExclude))
	}

	mode := in.Get(FieldIncludeExclude)
	if postType != "" {
		if scoped := in.Get(postType + "-" + FieldIncludeExclude); scoped != "" {
			mode = scoped
		}
	}
	if mode == ArgExclude {
		return ArgExclude, ParseIDs(raw)
	}
	return ArgInclude, ParseIDs(raw)
}

func (b *Builder) resolveTags(ctx context.Context, taxonomy, raw string) []int64 {
	slugs := parseSlugs(raw)
	if len(slugs) == 0 || b.terms == nil {
		return nil
	}

	ids := make([]int64, 0, len(slugs))
	for _, slug := range slugs {
		id, err := b.terms.TermID(ctx, taxonomy, slug)
		if err != nil {
			if !errors.Is(err, wpapi.ErrNotFound) {
				b.log.Warn("tag lookup failed, ignoring", "taxonomy", taxonomy, "slug", slug, "error", err)
			}
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// selectionArgs handles categories, tags, taxonomies and menus, which the
// form submits as checkbox lists named after the type.
func selectionArgs(t ContentType, in url.Values) QueryArgs {
	args := QueryArgs{}
	if t == TypeMenus {
		if names, all := parseNames(in[FieldMenus], "all"); !all {
			args[ArgInclude] = names
		}
		return args
	}
	if ids, all := parseSelection(in[string(t)]); !all {
		args[ArgInclude] = ids
	}
	return args
}

// userArgs applies role and published-posts filters only when no explicit
// users were chosen.
func userArgs(in url.Values) QueryArgs {
	args := QueryArgs{}
	ids, all := parseSelection(in[FieldUsers])
	if !all && len(ids) > 0 {
		args[ArgInclude] = ids
		return args
	}
	args[ArgRoles] = strings.TrimSpace(in.Get(ArgRoles))
	args[ArgHasPublishedPosts] = in.Has(FieldHasPublishedPosts)
	return args
}

func (b *Builder) commentArgs(ctx context.Context, in url.Values) (QueryArgs, bool, error) {
	args := QueryArgs{}
	postTypes, all := parseNames(in[FieldPostTypes], "0")
	if all || len(postTypes) == 0 || b.comments == nil {
		return args, false, nil
	}

	ids, err := b.comments.CommentIDs(ctx, postTypes)
	if err != nil {
		return nil, false, fmt.Errorf("resolve comments for %s: %w", strings.Join(postTypes, ","), err)
	}
	if len(ids) == 0 {
		return args, true, nil
	}
	args[ArgInclude] = ids
	return args, false, nil
}
