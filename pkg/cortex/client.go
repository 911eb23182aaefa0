// Package cortex provides an HTTP client for querying Cortex metrics via
// PromQL (Prometheus-compatible API).
package cortex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"
)

// Client queries the Cortex HTTP API. Cortex expects second epoch timestamps.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Cortex client.
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

// Sample is one (timestamp, value) observation. The wire format is a
// two-element array of a float timestamp and a string value.
type Sample struct {
	Timestamp float64
	Value     string
}

// UnmarshalJSON decodes the Prometheus [ts, "value"] pair format.
func (s *Sample) UnmarshalJSON(data []byte) error {
	var raw [2]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[0], &s.Timestamp); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &s.Value)
}

// MarshalJSON encodes back to the [ts, "value"] pair format.
func (s Sample) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{s.Timestamp, s.Value})
}

// Float returns the numeric value, or false for NaN/unparseable samples.
func (s Sample) Float() (float64, bool) {
	if s.Value == "NaN" || s.Value == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s.Value, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// SeriesSummary holds descriptive statistics for one series.
type SeriesSummary struct {
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
	Avg    *float64 `json:"avg"`
	Latest *float64 `json:"latest"`
	Count  int      `json:"count"`
}

// Series is one metric series in a query result.
type Series struct {
	Metric  map[string]string `json:"metric"`
	Values  []Sample          `json:"values"`
	Summary *SeriesSummary    `json:"_summary,omitempty"`
}

// numericValues returns the parseable sample values in order.
func (s *Series) numericValues() []float64 {
	out := make([]float64, 0, len(s.Values))
	for _, v := range s.Values {
		if f, ok := v.Float(); ok {
			out = append(out, f)
		}
	}
	return out
}

// ResultData is the data section of a Cortex query response.
type ResultData struct {
	ResultType string   `json:"resultType"`
	Result     []Series `json:"result"`
}

// AggregationInfo records how a result set was reduced.
type AggregationInfo struct {
	OriginalSeries int    `json:"original_series"`
	KeptSeries     int    `json:"kept_series"`
	Method         string `json:"method"`
}

// QueryResult is a Cortex query response, optionally annotated with
// aggregation information when series were dropped.
type QueryResult struct {
	Status      string           `json:"status"`
	Data        ResultData       `json:"data"`
	Aggregation *AggregationInfo `json:"_aggregation,omitempty"`
}

// RangeQuery executes a PromQL range query. Step defaults to 60s.
func (c *Client) RangeQuery(ctx context.Context, query string, start, end time.Time, step string) (*QueryResult, error) {
	if step == "" {
		step = "60s"
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("start", strconv.FormatInt(start.Unix(), 10))
	params.Set("end", strconv.FormatInt(end.Unix(), 10))
	params.Set("step", step)

	slog.Debug("Executing Cortex range query", "query", query, "start", start, "end", end, "step", step)

	var result QueryResult
	if err := c.getJSON(ctx, "/api/prom/query_range", params, &result); err != nil {
		return nil, err
	}

	slog.Debug("Cortex query returned", "series", len(result.Data.Result))
	return &result, nil
}

// InstantQuery executes a PromQL instant query at the given time (zero time
// means now).
func (c *Client) InstantQuery(ctx context.Context, query string, at time.Time) (*QueryResult, error) {
	params := url.Values{}
	params.Set("query", query)
	if !at.IsZero() {
		params.Set("time", strconv.FormatInt(at.Unix(), 10))
	}

	var result QueryResult
	if err := c.getJSON(ctx, "/api/prom/query", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SeriesMatch finds series by label matchers.
func (c *Client) SeriesMatch(ctx context.Context, match []string, start, end time.Time) ([]map[string]string, error) {
	params := url.Values{}
	for _, m := range match {
		params.Add("match[]", m)
	}
	if !start.IsZero() {
		params.Set("start", strconv.FormatInt(start.Unix(), 10))
	}
	if !end.IsZero() {
		params.Set("end", strconv.FormatInt(end.Unix(), 10))
	}

	var resp struct {
		Data []map[string]string `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/prom/series", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Labels returns all label names in the given range.
func (c *Client) Labels(ctx context.Context, start, end time.Time) ([]string, error) {
	params := url.Values{}
	if !start.IsZero() {
		params.Set("start", strconv.FormatInt(start.Unix(), 10))
	}
	if !end.IsZero() {
		params.Set("end", strconv.FormatInt(end.Unix(), 10))
	}

	var resp struct {
		Data []string `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/prom/labels", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// LabelValues returns the values for one label.
func (c *Client) LabelValues(ctx context.Context, label string, start, end time.Time) ([]string, error) {
	params := url.Values{}
	if !start.IsZero() {
		params.Set("start", strconv.FormatInt(start.Unix(), 10))
	}
	if !end.IsZero() {
		params.Set("end", strconv.FormatInt(end.Unix(), 10))
	}

	var resp struct {
		Data []string `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/prom/label/"+url.PathEscape(label)+"/values", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Ready reports whether Cortex is accepting queries.
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
		return fmt.Errorf("building Cortex request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("Cortex request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("Cortex returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding Cortex response: %w", err)
	}
	return nil
}

// BuildLabelSelector builds a PromQL label selector from a label map.
func BuildLabelSelector(labels map[string]string) string {
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

// BuildCPUQuery builds a PromQL query for CPU utilization percentage.
func BuildCPUQuery(instance string) string {
	selector := `mode="idle"`
	if instance != "" {
		selector = fmt.Sprintf(`mode="idle", instance=%q`, instance)
	}
	return fmt.Sprintf(`100 * (1 - avg by (instance) (rate(node_cpu_seconds_total{%s}[5m])))`, selector)
}

// BuildMemoryQuery builds a PromQL query for memory utilization percentage.
func BuildMemoryQuery(instance string) string {
	selector := ""
	if instance != "" {
		selector = fmt.Sprintf(`{instance=%q}`, instance)
	}
	return fmt.Sprintf(`100 * (1 - (node_memory_MemAvailable_bytes%s / node_memory_MemTotal_bytes%s))`, selector, selector)
}

// BuildErrorRateQuery builds a PromQL query for the HTTP 5xx error rate.
func BuildErrorRateQuery(service string) string {
	if service != "" {
		return fmt.Sprintf(
			`sum(rate(http_requests_total{status=~"5..", service=%q}[5m])) / sum(rate(http_requests_total{service=%q}[5m]))`,
			service, service)
	}
	return `sum(rate(http_requests_total{status=~"5.."}[5m])) / sum(rate(http_requests_total[5m]))`
}
