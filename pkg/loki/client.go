// Package loki provides an HTTP client for querying Loki logs via LogQL.
package loki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"
)

// Client queries the Loki HTTP API. Loki expects nanosecond epoch timestamps.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Loki client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    trimTrailingSlash(baseURL),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func trimTrailingSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// Stream is one log stream in a query result.
type Stream struct {
	Stream map[string]string `json:"stream"`
	Values [][2]string       `json:"values"` // [ns-epoch, line]
}

// ResultData is the data section of a Loki query response.
type ResultData struct {
	ResultType string          `json:"resultType"`
	Result     []Stream        `json:"result"`
	Stats      json.RawMessage `json:"stats,omitempty"`
}

// QueryResult is a Loki query response, optionally annotated with sampling
// information when the result set was reduced.
type QueryResult struct {
	Status   string        `json:"status"`
	Data     ResultData    `json:"data"`
	Sampling *SamplingInfo `json:"_sampling,omitempty"`
}

// TotalEntries returns the number of log lines across all streams.
func (r *QueryResult) TotalEntries() int {
	total := 0
	for _, s := range r.Data.Result {
		total += len(s.Values)
	}
	return total
}

// QueryRange executes a LogQL range query. Direction defaults to backward
// (newest first).
func (c *Client) QueryRange(ctx context.Context, query string, start, end time.Time, limit int, direction string) (*QueryResult, error) {
	if limit <= 0 {
		limit = 1000
	}
	if direction == "" {
		direction = "backward"
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("start", strconv.FormatInt(start.UnixNano(), 10))
	params.Set("end", strconv.FormatInt(end.UnixNano(), 10))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("direction", direction)

	slog.Debug("Executing Loki range query", "query", query, "start", start, "end", end)

	var result QueryResult
	if err := c.getJSON(ctx, "/loki/api/v1/query_range", params, &result); err != nil {
		return nil, err
	}

	slog.Debug("Loki query returned",
		"streams", len(result.Data.Result), "entries", result.TotalEntries())
	return &result, nil
}

// QueryInstant executes a LogQL instant query at the given time (zero time
// means now).
func (c *Client) QueryInstant(ctx context.Context, query string, at time.Time) (*QueryResult, error) {
	params := url.Values{}
	params.Set("query", query)
	if !at.IsZero() {
		params.Set("time", strconv.FormatInt(at.UnixNano(), 10))
	}

	var result QueryResult
	if err := c.getJSON(ctx, "/loki/api/v1/query", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Labels returns all label names in the given range.
func (c *Client) Labels(ctx context.Context, start, end time.Time) ([]string, error) {
	params := url.Values{}
	if !start.IsZero() {
		params.Set("start", strconv.FormatInt(start.UnixNano(), 10))
	}
	if !end.IsZero() {
		params.Set("end", strconv.FormatInt(end.UnixNano(), 10))
	}

	var resp struct {
		Data []string `json:"data"`
	}
	if err := c.getJSON(ctx, "/loki/api/v1/labels", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// LabelValues returns the values for one label in the given range.
func (c *Client) LabelValues(ctx context.Context, label string, start, end time.Time) ([]string, error) {
	params := url.Values{}
	if !start.IsZero() {
		params.Set("start", strconv.FormatInt(start.UnixNano(), 10))
	}
	if !end.IsZero() {
		params.Set("end", strconv.FormatInt(end.UnixNano(), 10))
	}

	var resp struct {
		Data []string `json:"data"`
	}
	if err := c.getJSON(ctx, "/loki/api/v1/label/"+url.PathEscape(label)+"/values", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Ready reports whether Loki is accepting queries.
func (c *Client) Ready(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ready", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode == http.StatusOK
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building Loki request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("Loki request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("Loki returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding Loki response: %w", err)
	}
	return nil
}

// BuildLabelFilter builds a LogQL label selector from a label map.
func BuildLabelFilter(labels map[string]string) string {
	if len(labels) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := "{"
	for i, k := range keys {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s=%q", k, labels[k])
	}
	return out + "}"
}

// BuildErrorQuery builds a LogQL query matching common error patterns for
// the given labels.
func BuildErrorQuery(labels map[string]string) string {
	return BuildLabelFilter(labels) + ` |~ "(?i)(error|exception|fail|fatal)"`
}
