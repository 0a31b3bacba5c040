package wpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	apiPrefix       = "/wp-json"
	defaultTimeout  = 30 * time.Second
	defaultTermTTL  = 10 * time.Minute
	maxErrorBodyLen = 4096
)

// Sentinel errors for REST API responses.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized: check site username and application password")
)

// APIError is a non-2xx response that maps to no sentinel.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("rest api error: status %d", e.Status)
	}
	return fmt.Sprintf("rest api error: status %d: %s: %s", e.Status, e.Code, e.Message)
}

// Client talks to a single site's REST API.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	log        *slog.Logger
	terms      *termCache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithCredentials enables basic auth with an application password.
func WithCredentials(username, appPassword string) Option {
	return func(c *Client) {
		c.username = username
		c.password = appPassword
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "wpapi")
	}
}

// WithTermCacheTTL sets how long slug lookups are cached. Zero disables the cache.
func WithTermCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.terms = newTermCache(ttl)
	}
}

// New creates a client for the site at siteURL (e.g. "https://example.com").
func New(siteURL string, opts ...Option) *Client {
	base := strings.TrimSuffix(siteURL, "/")
	base = strings.TrimSuffix(base, apiPrefix)
	c := &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		terms: newTermCache(defaultTermTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the site base URL.
func (c *Client) URL() string {
	return c.baseURL
}

// List fetches one page of a wp/v2 collection. route is the collection's
// rest base ("posts", "media", "users", a custom type's rest_base, ...).
// Paging parameters are expected in params.
//
// A page past the end of the collection is reported by the API as a 400
// "*_invalid_page_number" error; List returns an empty page for it.
// Collections served as objects keyed by slug (types, taxonomies) are
// flattened to their values in document order.
func (c *Client) List(ctx context.Context, route string, params url.Values) ([]Record, error) {
	start := time.Now()

	body, err := c.get(ctx, "/wp/v2/"+strings.Trim(route, "/"), params)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest &&
			strings.HasSuffix(apiErr.Code, "_invalid_page_number") {
			return nil, nil
		}
		return nil, err
	}

	records, err := decodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", route, err)
	}

	if c.log != nil {
		c.log.Debug("list complete",
			"route", route,
			"page", params.Get("page"),
			"results", len(records),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
	return records, nil
}

// TermID resolves a term slug within a taxonomy (e.g. "post_tag",
// "media_post_tag") to its ID. ErrNotFound means no such term.
func (c *Client) TermID(ctx context.Context, taxonomy, slug string) (int64, error) {
	if id, ok := c.terms.get(taxonomy, slug); ok {
		return id, nil
	}

	params := url.Values{}
	params.Set("slug", slug)
	params.Set("_fields", "id")
	body, err := c.get(ctx, "/wp/v2/"+TaxonomyRoute(taxonomy), params)
	if err != nil {
		return 0, err
	}

	var refs []termRef
	if err := json.Unmarshal(body, &refs); err != nil {
		return 0, fmt.Errorf("decode terms: %w", err)
	}
	if len(refs) == 0 || refs[0].ID == 0 {
		return 0, ErrNotFound
	}

	c.terms.set(taxonomy, slug, refs[0].ID)
	return refs[0].ID, nil
}

// PostTypes returns every post type exposed over REST.
func (c *Client) PostTypes(ctx context.Context) ([]PostType, error) {
	records, err := c.List(ctx, "types", nil)
	if err != nil {
		return nil, err
	}
	types := make([]PostType, 0, len(records))
	for _, rec := range records {
		var pt PostType
		if err := json.Unmarshal(rec, &pt); err != nil {
			return nil, fmt.Errorf("decode post type: %w", err)
		}
		if pt.RESTBase == "" {
			pt.RESTBase = pt.Slug
		}
		types = append(types, pt)
	}
	return types, nil
}

// Site fetches the REST index describing the site.
func (c *Client) Site(ctx context.Context) (*SiteInfo, error) {
	body, err := c.get(ctx, "/", nil)
	if err != nil {
		return nil, err
	}
	var info SiteInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("decode site info: %w", err)
	}
	return &info, nil
}

// SiteName returns the site title as configured in its general settings.
func (c *Client) SiteName(ctx context.Context) (string, error) {
	info, err := c.Site(ctx)
	if err != nil {
		return "", err
	}
	return info.Name, nil
}

// taxonomyRoutes maps taxonomy names to their rest_base where the two differ.
var taxonomyRoutes = map[string]string{
	"post_tag":       "tags",
	"category":       "categories",
	"media_post_tag": "media_tags",
	"media_category": "media_categories",
}

// TaxonomyRoute maps a taxonomy name to its REST collection. Taxonomies
// registered with a matching rest_base map to themselves.
func TaxonomyRoute(taxonomy string) string {
	if route, ok := taxonomyRoutes[taxonomy]; ok {
		return route
	}
	return taxonomy
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	reqURL, err := url.Parse(c.baseURL + apiPrefix + path)
	if err != nil {
		return nil, fmt.Errorf("invalid site URL: %w", err)
	}
	if len(params) > 0 {
		reqURL.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, readAPIError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

func readAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
	var envelope apiError
	if json.Unmarshal(body, &envelope) == nil {
		apiErr.Code = envelope.Code
		apiErr.Message = envelope.Message
	}
	return apiErr
}

func decodeRecords(body []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	case '{':
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		var records []Record
		for dec.More() {
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			var rec Record
			if err := dec.Decode(&rec); err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		return records, nil
	default:
		return nil, fmt.Errorf("unexpected response body starting with %q", trimmed[0])
	}
}
