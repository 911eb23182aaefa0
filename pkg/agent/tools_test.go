package agent

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/incident-ops/rcad/pkg/cache"
	"github.com/incident-ops/rcad/pkg/cortex"
	"github.com/incident-ops/rcad/pkg/loki"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lokiArgs(query string) map[string]any {
	return map[string]any{
		"logql_query": query,
		"start_time":  "2026-08-26T10:00:00Z",
		"end_time":    "2026-08-26T10:30:00Z",
	}
}

func TestExecuteQueryLoki_FormatsResults(t *testing.T) {
	// Two streams, out of order timestamps, one oversized line.
	longLine := ""
	for i := 0; i < 2100; i++ {
		longLine += "x"
	}
	body := fmt.Sprintf(`{"status":"success","data":{"resultType":"streams","result":[
		{"stream":{"service":"api"},"values":[
			["1756202400000000000","connection refused to db"],
			["1756202460000000000",%q]]},
		{"stream":{"service":"worker"},"values":[
			["1756202430000000000","job timed out"]]}
	]}}`, longLine)

	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(body))
	}))
	defer srv.Close()
	cortexSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer cortexSrv.Close()

	tools := NewToolset(
		loki.NewClient(srv.URL, 5*time.Second),
		cortex.NewClient(cortexSrv.URL, 5*time.Second),
		cache.New(10, time.Minute),
	)

	out := tools.Execute(context.Background(), "query_loki", lokiArgs(`{service="api"}`))
	require.Equal(t, true, out["success"])
	assert.Equal(t, 3, out["result_count"])
	assert.Equal(t, 2, out["streams_count"])

	logs := out["logs"].([]map[string]any)
	require.Len(t, logs, 3)
	// Newest first across streams.
	assert.Contains(t, logs[0]["message"], "... [truncated]")
	assert.Equal(t, "job timed out", logs[1]["message"])
	assert.Equal(t, "connection refused to db", logs[2]["message"])
	assert.Equal(t, map[string]string{"service": "worker"}, logs[1]["labels"])

	// Second identical call is served from the cache.
	out2 := tools.Execute(context.Background(), "query_loki", lokiArgs(`{service="api"}`))
	require.Equal(t, true, out2["success"])
	assert.Equal(t, 1, hits)
}

func TestExecuteQueryLoki_BackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many outstanding requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()
	cortexSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer cortexSrv.Close()

	tools := NewToolset(
		loki.NewClient(srv.URL, 5*time.Second),
		cortex.NewClient(cortexSrv.URL, 5*time.Second),
		cache.New(10, time.Minute),
	)

	out := tools.Execute(context.Background(), "query_loki", lokiArgs(`{service="api"}`))
	assert.Equal(t, false, out["success"])
	assert.NotEmpty(t, out["error"])
	assert.Equal(t, `{service="api"}`, out["query"])
}

func TestExecuteQueryLoki_InvalidTimes(t *testing.T) {
	tools := emptyBackends(t)
	out := tools.Execute(context.Background(), "query_loki", map[string]any{
		"logql_query": "{}",
		"start_time":  "yesterday",
		"end_time":    "now",
	})
	assert.Equal(t, false, out["success"])
}

func TestExecuteQueryCortex_FormatsResults(t *testing.T) {
	body := `{"status":"success","data":{"resultType":"matrix","result":[
		{"metric":{"instance":"node-1"},"values":[
			[1756202400,"10.5"],[1756202460,"12.0"],[1756202520,"NaN"]]}
	]}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()
	lokiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer lokiSrv.Close()

	tools := NewToolset(
		loki.NewClient(lokiSrv.URL, 5*time.Second),
		cortex.NewClient(srv.URL, 5*time.Second),
		cache.New(10, time.Minute),
	)

	out := tools.Execute(context.Background(), "query_cortex", map[string]any{
		"promql_query": "node_load1",
		"start_time":   "2026-08-26T10:00:00Z",
		"end_time":     "2026-08-26T10:30:00Z",
	})
	require.Equal(t, true, out["success"])
	assert.Equal(t, "60s", out["step"])
	assert.Equal(t, 1, out["series_count"])

	metrics := out["metrics"].([]map[string]any)
	require.Len(t, metrics, 1)
	assert.Equal(t, map[string]string{"instance": "node-1"}, metrics[0]["labels"])
	assert.Equal(t, 3, metrics[0]["total_points"])

	points := metrics[0]["data_points"].([]map[string]any)
	require.Len(t, points, 3)
	assert.Equal(t, 10.5, points[0]["value"])
	assert.Nil(t, points[2]["value"])

	summary := metrics[0]["summary"].(*cortex.SeriesSummary)
	require.NotNil(t, summary.Max)
	assert.Equal(t, 12.0, *summary.Max)
	assert.Equal(t, 2, summary.Count)
}

func TestExecute_UnknownTool(t *testing.T) {
	tools := emptyBackends(t)
	out := tools.Execute(context.Background(), "query_graphite", nil)
	assert.Contains(t, out["error"], "Unknown tool")
}
