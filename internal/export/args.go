package export

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Query argument keys understood by the wp/v2 collections.
const (
	ArgAuthor            = "author"
	ArgCategories        = "categories"
	ArgTags              = "tags"
	ArgInclude           = "include"
	ArgExclude           = "exclude"
	ArgAfter             = "after"
	ArgBefore            = "before"
	ArgStatus            = "status"
	ArgMediaType         = "media_type"
	ArgMediaCategories   = "media_categories"
	ArgMediaTags         = "media_tags"
	ArgRoles             = "roles"
	ArgHasPublishedPosts = "has_published_posts"
	ArgPost              = "post"
	ArgFields            = "_fields"
)

// QueryArgs holds listing filters. Values are one of int64, []int64,
// string, []string or bool. A missing key means "no constraint".
type QueryArgs map[string]any

// Clone returns a shallow copy; slices are shared and never mutated.
func (a QueryArgs) Clone() QueryArgs {
	out := make(QueryArgs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Prune removes every key whose value is empty: zero numbers, empty
// strings, empty lists and false.
func (a QueryArgs) Prune() QueryArgs {
	for k, v := range a {
		if isEmpty(v) {
			delete(a, k)
		}
	}
	return a
}

// Keys returns the keys in sorted order.
func (a QueryArgs) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Int64 returns a scalar numeric argument.
func (a QueryArgs) Int64(key string) int64 {
	n, _ := a[key].(int64)
	return n
}

// Int64s returns a numeric list argument.
func (a QueryArgs) Int64s(key string) []int64 {
	ids, _ := a[key].([]int64)
	return ids
}

// Values encodes the arguments as query parameters. Lists are sent
// comma-separated, which the REST API accepts for array parameters.
func (a QueryArgs) Values() url.Values {
	v := url.Values{}
	for _, k := range a.Keys() {
		switch val := a[k].(type) {
		case int64:
			v.Set(k, strconv.FormatInt(val, 10))
		case int:
			v.Set(k, strconv.Itoa(val))
		case string:
			v.Set(k, val)
		case bool:
			v.Set(k, strconv.FormatBool(val))
		case []int64:
			parts := make([]string, len(val))
			for i, id := range val {
				parts[i] = strconv.FormatInt(id, 10)
			}
			v.Set(k, strings.Join(parts, ","))
		case []string:
			v.Set(k, strings.Join(val, ","))
		}
	}
	return v
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case int64:
		return val == 0
	case int:
		return val == 0
	case string:
		return val == ""
	case bool:
		return !val
	case []int64:
		return len(val) == 0
	case []string:
		return len(val) == 0
	default:
		return false
	}
}
