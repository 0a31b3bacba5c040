package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrNoExport is returned when the daemon answers an export with no content.
// The daemon does this for unauthorized requests and unknown types.
var ErrNoExport = errors.New("no export produced")

// Client wraps HTTP calls to the cpexport daemon.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new cpexport API client.
func NewClient(serverURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Minute,
		},
	}
}

func (c *Client) do(method, path string, form url.Values) (*http.Response, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func (c *Client) get(path string, result any) error {
	resp, err := c.do(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return serverError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(path string, form url.Values, result any) error {
	if form == nil {
		form = url.Values{}
	}
	resp, err := c.do(http.MethodPost, path, form)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return serverError(resp)
	}
	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func serverError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var apiErr struct {
		Error string `json:"error"`
		Data  string `json:"data"`
	}
	if json.Unmarshal(body, &apiErr) == nil {
		if msg := apiErr.Error + apiErr.Data; msg != "" {
			return fmt.Errorf("server error %d: %s", resp.StatusCode, msg)
		}
	}
	return fmt.Errorf("server error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}

// ExportFile is a downloaded export.
type ExportFile struct {
	Name    string
	ID      string
	Records int
	Queries int
	Data    []byte
}

// Export requests an export of the given type with form-style filters.
func (c *Client) Export(typ string, filters url.Values) (*ExportFile, error) {
	form := url.Values{}
	for k, v := range filters {
		form[k] = v
	}
	form.Set("type", typ)
	form.Set("download", "1")

	resp, err := c.do(http.MethodPost, "/api/v1/export", form)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent:
		return nil, ErrNoExport
	default:
		return nil, serverError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}

	f := &ExportFile{
		Name: attachmentName(resp.Header.Get("Content-Disposition")),
		ID:   resp.Header.Get("X-Export-Id"),
		Data: data,
	}
	f.Records, _ = strconv.Atoi(resp.Header.Get("X-Export-Records"))
	f.Queries, _ = strconv.Atoi(resp.Header.Get("X-Export-Queries"))
	return f, nil
}

func attachmentName(disposition string) string {
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}

// API response types (mirror server types)

type SettingsResponse struct {
	PerPage          int   `json:"per_page"`
	EffectivePerPage int   `json:"effective_per_page"`
	AllowedPerPage   []int `json:"allowed_per_page"`
}

type TypeResponse struct {
	Type     string `json:"type"`
	Variant  string `json:"variant"`
	Pushdown bool   `json:"pushdown"`
	Label    string `json:"label"`
	Custom   bool   `json:"custom"`
}

type TypesResponse struct {
	Types      []TypeResponse `json:"types"`
	Discovered *int           `json:"discovered,omitempty"`
}

type ExportResponse struct {
	ID         int64     `json:"id"`
	ExportID   string    `json:"export_id"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	Records    int       `json:"records"`
	Queries    int       `json:"queries"`
	Bytes      int64     `json:"bytes"`
	Filename   string    `json:"filename,omitempty"`
	Error      string    `json:"error,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

type ListExportsResponse struct {
	Items []ExportResponse `json:"items"`
	Total int              `json:"total"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Site    *struct {
		URL       string `json:"url"`
		Reachable bool   `json:"reachable"`
		Name      string `json:"name,omitempty"`
		Error     string `json:"error,omitempty"`
	} `json:"site,omitempty"`
}

func (c *Client) Settings() (*SettingsResponse, error) {
	var resp SettingsResponse
	if err := c.get("/api/v1/settings", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SetPerPage(n string) error {
	return c.post("/api/v1/settings/per-page", url.Values{"per_page": {n}}, nil)
}

func (c *Client) Types() (*TypesResponse, error) {
	var resp TypesResponse
	if err := c.get("/api/v1/types", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RefreshTypes() (*TypesResponse, error) {
	var resp TypesResponse
	if err := c.post("/api/v1/types/refresh", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) History(typ, status string, limit int) (*ListExportsResponse, error) {
	params := url.Values{}
	if typ != "" {
		params.Set("type", typ)
	}
	if status != "" {
		params.Set("status", status)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/v1/exports"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp ListExportsResponse
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
