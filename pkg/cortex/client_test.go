package cortex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeQuery(t *testing.T) {
	var gotStart, gotStep string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/prom/query_range", r.URL.Path)
		gotStart = r.URL.Query().Get("start")
		gotStep = r.URL.Query().Get("step")
		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": {
				"resultType": "matrix",
				"result": [{
					"metric": {"instance": "node-1"},
					"values": [[1700000000, "0.5"], [1700000060, "0.7"]]
				}]
			}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	start := time.Unix(1700000000, 0)

	res, err := c.RangeQuery(context.Background(), "up", start, start.Add(time.Hour), "")
	require.NoError(t, err)

	assert.Equal(t, "1700000000", gotStart, "start must be second epoch")
	assert.Equal(t, "60s", gotStep, "default step")
	require.Len(t, res.Data.Result, 1)
	require.Len(t, res.Data.Result[0].Values, 2)

	v, ok := res.Data.Result[0].Values[1].Float()
	require.True(t, ok)
	assert.Equal(t, 0.7, v)
	assert.Equal(t, float64(1700000060), res.Data.Result[0].Values[1].Timestamp)
}

func TestSampleRoundTrip(t *testing.T) {
	s := Sample{Timestamp: 1700000000, Value: "3.14"}
	data, err := json.Marshal(s)
	require.NoError(t, err)

	var back Sample
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)
}

func TestSampleFloat_NaN(t *testing.T) {
	s := Sample{Timestamp: 1, Value: "NaN"}
	_, ok := s.Float()
	assert.False(t, ok)
}

func TestRangeQuery_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad query", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.RangeQuery(context.Background(), "up{", time.Now().Add(-time.Hour), time.Now(), "60s")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestReady(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.True(t, NewClient(srv.URL, time.Second).Ready(context.Background()))
	assert.False(t, NewClient("http://127.0.0.1:1", time.Second).Ready(context.Background()))
}

func TestQueryBuilders(t *testing.T) {
	assert.Equal(t, "{}", BuildLabelSelector(nil))
	assert.Equal(t, `{instance="node-1", service="api"}`,
		BuildLabelSelector(map[string]string{"service": "api", "instance": "node-1"}))

	assert.Contains(t, BuildCPUQuery("node-1"), `instance="node-1"`)
	assert.Contains(t, BuildCPUQuery(""), `mode="idle"`)
	assert.Contains(t, BuildMemoryQuery("node-1"), "node_memory_MemAvailable_bytes")
	assert.Contains(t, BuildErrorRateQuery("api"), `service="api"`)
	assert.Contains(t, BuildErrorRateQuery(""), `status=~"5.."`)
}
