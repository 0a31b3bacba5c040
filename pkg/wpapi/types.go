// Package wpapi is a client for the ClassicPress/WordPress REST API (wp/v2).
package wpapi

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Record is a single object returned by a listing endpoint.
// It is kept verbatim so exported files carry every field the site returned.
type Record json.RawMessage

// MarshalJSON returns the record bytes unchanged.
func (r Record) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// UnmarshalJSON stores a copy of data.
func (r *Record) UnmarshalJSON(data []byte) error {
	if r == nil {
		return fmt.Errorf("wpapi: UnmarshalJSON on nil Record")
	}
	*r = append((*r)[0:0], data...)
	return nil
}

// Field returns the raw value of a top-level field, or nil if absent.
func (r Record) Field(name string) json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(r, &fields); err != nil {
		return nil
	}
	return fields[name]
}

// Int64 returns a numeric top-level field such as "id".
func (r Record) Int64(name string) (int64, bool) {
	raw := r.Field(name)
	if raw == nil {
		return 0, false
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	v, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Int64s returns a field holding a list of term or object IDs
// (e.g. "media_categories"). Missing or malformed fields yield nil.
func (r Record) Int64s(name string) []int64 {
	raw := r.Field(name)
	if raw == nil {
		return nil
	}
	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil
	}
	return ids
}

// PostType describes an entry of GET /wp/v2/types.
type PostType struct {
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	RESTBase     string `json:"rest_base"`
	Hierarchical bool   `json:"hierarchical"`
}

// SiteInfo is the subset of the REST index (GET /wp-json/) we use.
type SiteInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Home        string `json:"home"`
}

// apiError is the error envelope returned by the REST API.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type termRef struct {
	ID int64 `json:"id"`
}
