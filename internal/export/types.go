// Package export builds REST filter arguments from export form input and
// accumulates paginated results into a single JSON document.
package export

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/hbollon/go-edlib"

	"github.com/vmunix/cpexport/pkg/wpapi"
)

// ContentType is the REST collection being exported ("posts", "users", or a
// custom type's rest_base).
type ContentType string

// Builtin content types.
const (
	TypePosts      ContentType = "posts"
	TypePages      ContentType = "pages"
	TypeMedia      ContentType = "media"
	TypeCategories ContentType = "categories"
	TypeTags       ContentType = "tags"
	TypeTaxonomies ContentType = "taxonomies"
	TypeComments   ContentType = "comments"
	TypeMenus      ContentType = "menus"
	TypeUsers      ContentType = "users"
)

// Variant is the filter shape a content type uses.
type Variant int

const (
	VariantStandardPost Variant = iota + 1
	VariantMedia
	VariantTaxonomy
	VariantComments
	VariantUsers
)

func (v Variant) String() string {
	switch v {
	case VariantStandardPost:
		return "post"
	case VariantMedia:
		return "media"
	case VariantTaxonomy:
		return "taxonomy"
	case VariantComments:
		return "comments"
	case VariantUsers:
		return "users"
	default:
		return "unknown"
	}
}

// Pushdown reports whether the listing API applies this variant's filters
// itself. Other variants are narrowed with a locally resolved include list.
func (v Variant) Pushdown() bool {
	return v == VariantStandardPost || v == VariantMedia
}

// builtins lists builtin types in the order they are presented.
var builtins = []struct {
	Type     ContentType
	Variant  Variant
	PostType string
	Label    string
}{
	{TypePosts, VariantStandardPost, "post", "Posts"},
	{TypePages, VariantStandardPost, "page", "Pages"},
	{TypeCategories, VariantTaxonomy, "", "Categories"},
	{TypeTags, VariantTaxonomy, "", "Tags"},
	{TypeTaxonomies, VariantTaxonomy, "", "Taxonomies"},
	{TypeComments, VariantComments, "", "Comments"},
	{TypeMenus, VariantTaxonomy, "", "Menus"},
	{TypeMedia, VariantMedia, "attachment", "Media"},
	{TypeUsers, VariantUsers, "", "Users"},
}

// corePostTypes are post types shipped with core that never count as custom.
var corePostTypes = map[string]bool{
	"post": true, "page": true, "attachment": true, "nav_menu_item": true,
	"wp_block": true, "wp_template": true, "wp_template_part": true,
	"wp_navigation": true, "wp_global_styles": true, "wp_font_family": true,
	"wp_font_face": true,
}

// CustomType is a site-registered post type exported like posts.
type CustomType struct {
	PostType string      // e.g. "book"
	RESTBase ContentType // e.g. "books"
	Label    string
}

// TypeInfo describes an exportable type.
type TypeInfo struct {
	Type     ContentType `json:"type"`
	Variant  string      `json:"variant"`
	Pushdown bool        `json:"pushdown"`
	Label    string      `json:"label"`
	Custom   bool        `json:"custom"`
}

// TypeSource lists the post types a site exposes.
type TypeSource interface {
	PostTypes(ctx context.Context) ([]wpapi.PostType, error)
}

// Registry maps content types to variants. Custom types can be replaced at
// runtime when the site is rediscovered, so access is synchronized.
type Registry struct {
	mu         sync.RWMutex
	static     map[ContentType]CustomType
	discovered map[ContentType]CustomType
}

// NewRegistry creates a registry holding the builtins plus the given
// statically configured custom types.
func NewRegistry(custom ...CustomType) (*Registry, error) {
	r := &Registry{
		static:     make(map[ContentType]CustomType),
		discovered: make(map[ContentType]CustomType),
	}
	for _, ct := range custom {
		if err := r.Register(ct); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a static custom type.
func (r *Registry) Register(ct CustomType) error {
	if ct.RESTBase == "" {
		return fmt.Errorf("register custom type %q: empty rest base", ct.PostType)
	}
	if ct.PostType == "" {
		ct.PostType = string(ct.RESTBase)
	}
	if ct.Label == "" {
		ct.Label = string(ct.RESTBase)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := builtinVariant(ct.RESTBase); ok {
		return fmt.Errorf("register %q: %w", ct.RESTBase, ErrDuplicateType)
	}
	if _, ok := r.static[ct.RESTBase]; ok {
		return fmt.Errorf("register %q: %w", ct.RESTBase, ErrDuplicateType)
	}
	r.static[ct.RESTBase] = ct
	return nil
}

// Refresh replaces the discovered custom types with the site's current
// non-core post types and returns how many were found.
func (r *Registry) Refresh(ctx context.Context, src TypeSource) (int, error) {
	postTypes, err := src.PostTypes(ctx)
	if err != nil {
		return 0, fmt.Errorf("discover post types: %w", err)
	}

	discovered := make(map[ContentType]CustomType)
	for _, pt := range postTypes {
		if corePostTypes[pt.Slug] {
			continue
		}
		base := ContentType(pt.RESTBase)
		if _, ok := builtinVariant(base); ok {
			continue
		}
		discovered[base] = CustomType{PostType: pt.Slug, RESTBase: base, Label: pt.Name}
	}

	r.mu.Lock()
	r.discovered = discovered
	r.mu.Unlock()

	return len(discovered), nil
}

// Lookup returns the variant for a content type.
func (r *Registry) Lookup(t ContentType) (Variant, bool) {
	if v, ok := builtinVariant(t); ok {
		return v, true
	}
	if _, ok := r.custom(t); ok {
		return VariantStandardPost, true
	}
	return 0, false
}

// PostTypeOf returns the post type name behind a post-like content type.
func (r *Registry) PostTypeOf(t ContentType) (string, bool) {
	for _, b := range builtins {
		if b.Type == t {
			return b.PostType, b.PostType != ""
		}
	}
	if ct, ok := r.custom(t); ok {
		return ct.PostType, true
	}
	return "", false
}

// TypeForPostType maps a post type name ("post", "book") to its collection.
func (r *Registry) TypeForPostType(postType string) (ContentType, bool) {
	for _, b := range builtins {
		if b.PostType != "" && b.PostType == postType {
			return b.Type, true
		}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, set := range []map[ContentType]CustomType{r.static, r.discovered} {
		for base, ct := range set {
			if ct.PostType == postType {
				return base, true
			}
		}
	}
	return "", false
}

// Types lists builtin types followed by custom types sorted by name.
func (r *Registry) Types() []TypeInfo {
	infos := make([]TypeInfo, 0, len(builtins))
	for _, b := range builtins {
		infos = append(infos, TypeInfo{
			Type:     b.Type,
			Variant:  b.Variant.String(),
			Pushdown: b.Variant.Pushdown(),
			Label:    b.Label,
		})
	}

	r.mu.RLock()
	custom := make([]CustomType, 0, len(r.static)+len(r.discovered))
	for _, ct := range r.static {
		custom = append(custom, ct)
	}
	for base, ct := range r.discovered {
		if _, ok := r.static[base]; !ok {
			custom = append(custom, ct)
		}
	}
	r.mu.RUnlock()

	sort.Slice(custom, func(i, j int) bool { return custom[i].RESTBase < custom[j].RESTBase })
	for _, ct := range custom {
		infos = append(infos, TypeInfo{
			Type:     ct.RESTBase,
			Variant:  VariantStandardPost.String(),
			Pushdown: true,
			Label:    ct.Label,
			Custom:   true,
		})
	}
	return infos
}

func (r *Registry) custom(t ContentType) (CustomType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if ct, ok := r.static[t]; ok {
		return ct, true
	}
	ct, ok := r.discovered[t]
	return ct, ok
}

func builtinVariant(t ContentType) (Variant, bool) {
	for _, b := range builtins {
		if b.Type == t {
			return b.Variant, true
		}
	}
	return 0, false
}

// suggestThreshold is the minimum Jaro-Winkler similarity for a suggestion.
const suggestThreshold = 0.8

// Suggest returns the candidate closest to name, or "" if none is close enough.
func Suggest(name string, candidates []string) string {
	best := ""
	bestScore := float32(0)
	for _, c := range candidates {
		score := edlib.JaroWinklerSimilarity(name, c)
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	if bestScore < suggestThreshold {
		return ""
	}
	return best
}
