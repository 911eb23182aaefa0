package loki

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

func TestQueryRange(t *testing.T) {
	var gotQuery, gotStart, gotLimit, gotDirection string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/loki/api/v1/query_range", r.URL.Path)
		gotQuery = r.URL.Query().Get("query")
		gotStart = r.URL.Query().Get("start")
		gotLimit = r.URL.Query().Get("limit")
		gotDirection = r.URL.Query().Get("direction")
		_ = json.NewEncoder(w).Encode(QueryResult{
			Status: "success",
			Data: ResultData{
				ResultType: "streams",
				Result: []Stream{{
					Stream: map[string]string{"service": "api"},
					Values: [][2]string{{"1700000000000000000", "connection refused"}},
				}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	start := time.Unix(1700000000, 0)
	end := start.Add(time.Hour)

	res, err := c.QueryRange(context.Background(), `{service="api"}`, start, end, 0, "")
	require.NoError(t, err)

	assert.Equal(t, `{service="api"}`, gotQuery)
	assert.Equal(t, "1700000000000000000", gotStart, "start must be nanosecond epoch")
	assert.Equal(t, "1000", gotLimit, "default limit")
	assert.Equal(t, "backward", gotDirection)
	assert.Equal(t, 1, res.TotalEntries())
}

func TestQueryRange_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "parse error", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.QueryRange(context.Background(), "{", time.Now().Add(-time.Hour), time.Now(), 100, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestLabelsAndValues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/loki/api/v1/labels":
			_, _ = w.Write([]byte(`{"status":"success","data":["service","namespace"]}`))
		case "/loki/api/v1/label/service/values":
			_, _ = w.Write([]byte(`{"status":"success","data":["api","db"]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)

	labels, err := c.Labels(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, []string{"service", "namespace"}, labels)

	values, err := c.LabelValues(context.Background(), "service", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, []string{"api", "db"}, values)
}

func TestReady(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ready" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	assert.True(t, c.Ready(context.Background()))

	down := NewClient("http://127.0.0.1:1", time.Second)
	assert.False(t, down.Ready(context.Background()))
}

func TestBuildLabelFilter(t *testing.T) {
	assert.Equal(t, "{}", BuildLabelFilter(nil))
	assert.Equal(t, `{pod="api-123", service="api"}`,
		BuildLabelFilter(map[string]string{"service": "api", "pod": "api-123"}))
}

func TestBuildErrorQuery(t *testing.T) {
	q := BuildErrorQuery(map[string]string{"service": "api"})
	assert.Equal(t, `{service="api"} |~ "(?i)(error|exception|fail|fatal)"`, q)
}
