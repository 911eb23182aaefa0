package agent

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/incident-ops/rcad/ent"
	"github.com/incident-ops/rcad/pkg/cache"
	"github.com/incident-ops/rcad/pkg/cortex"
	"github.com/incident-ops/rcad/pkg/llm"
	"github.com/incident-ops/rcad/pkg/loki"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedProvider returns canned responses in order and errors when the
// script runs out.
type scriptedProvider struct {
	responses []*llm.Response
	errs      []error
	calls     int
}

func (p *scriptedProvider) Name() string  { return "scripted" }
func (p *scriptedProvider) Model() string { return "test-model" }

func (p *scriptedProvider) Chat(ctx context.Context, messages []llm.Message, tools []llm.Tool, systemPrompt string) (*llm.Response, error) {
	i := p.calls
	p.calls++
	if i < len(p.errs) && p.errs[i] != nil {
		return nil, p.errs[i]
	}
	if i >= len(p.responses) {
		return nil, errors.New("no scripted response left")
	}
	return p.responses[i], nil
}

func toolCallResponse(calls ...llm.ToolCall) *llm.Response {
	return &llm.Response{ToolCalls: calls, StopReason: "tool_use", TokensUsed: 100}
}

func textResponse(content string) *llm.Response {
	return &llm.Response{Content: content, StopReason: "end_turn", TokensUsed: 50}
}

func reportCall(args map[string]any) llm.ToolCall {
	return llm.ToolCall{ID: "call-1", Name: "generate_report", Arguments: args}
}

func testAlert() *ent.Alert {
	return &ent.Alert{
		ID:          "a1",
		Alertname:   "NetworkInterfaceDown",
		Severity:    "critical",
		Status:      "firing",
		Labels:      map[string]string{"service": "core-network", "device": "eth0", "datacenter": "dc1"},
		Annotations: map[string]string{"description": "Interface eth0 is down on node-3"},
		StartsAt:    time.Now().Add(-10 * time.Minute),
	}
}

// emptyBackends serves empty Loki and Cortex results.
func emptyBackends(t *testing.T) *Toolset {
	t.Helper()
	lokiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":{"resultType":"streams","result":[]}}`))
	}))
	t.Cleanup(lokiSrv.Close)
	cortexSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":{"resultType":"matrix","result":[]}}`))
	}))
	t.Cleanup(cortexSrv.Close)

	return NewToolset(
		loki.NewClient(lokiSrv.URL, 5*time.Second),
		cortex.NewClient(cortexSrv.URL, 5*time.Second),
		cache.New(10, time.Minute),
	)
}

func TestAnalyzeAlert_GeneratesReport(t *testing.T) {
	provider := &scriptedProvider{responses: []*llm.Response{
		toolCallResponse(reportCall(map[string]any{
			"root_cause":       "Interface eth0 went down after carrier loss",
			"confidence_score": float64(85),
			"summary":          "eth0 lost carrier on node-3, isolating the host.",
			"remediation_steps": []any{
				map[string]any{"priority": "immediate", "action": "Bring interface eth0 up", "risk": "medium"},
			},
		})),
	}}
	a := New(provider, emptyBackends(t), 10, "")

	result, err := a.AnalyzeAlert(context.Background(), testAlert())
	require.NoError(t, err)
	require.NotNil(t, result.Report)

	assert.Equal(t, "Interface eth0 went down after carrier loss", result.Report.RootCause)
	assert.Equal(t, 85, result.Report.ConfidenceScore)
	require.Len(t, result.Report.RemediationSteps, 1)
	assert.Equal(t, "sudo ip link set eth0 up", result.Report.RemediationSteps[0].Command)
	assert.Equal(t, "scripted", result.Metadata.Provider)
	assert.Equal(t, 1, result.Metadata.ToolCalls)
	assert.Equal(t, 100, result.Metadata.TokensUsed)
}

func TestAnalyzeAlert_QueryThenReport(t *testing.T) {
	var lokiStart string
	lokiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lokiStart = r.URL.Query().Get("start")
		w.Write([]byte(`{"status":"success","data":{"resultType":"streams","result":[]}}`))
	}))
	defer lokiSrv.Close()
	cortexSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":{"resultType":"matrix","result":[]}}`))
	}))
	defer cortexSrv.Close()

	tools := NewToolset(
		loki.NewClient(lokiSrv.URL, 5*time.Second),
		cortex.NewClient(cortexSrv.URL, 5*time.Second),
		cache.New(10, time.Minute),
	)

	provider := &scriptedProvider{responses: []*llm.Response{
		// Hallucinated timestamps and the "query"/"start"/"end" aliases.
		toolCallResponse(llm.ToolCall{ID: "c1", Name: "query_loki", Arguments: map[string]any{
			"query": `{service="core-network"} |= "error"`,
			"start": "2023-01-01T00:00:00Z",
			"end":   "2023-01-01T01:00:00Z",
		}}),
		toolCallResponse(reportCall(map[string]any{
			"root_cause":        "No errors found, interface flap",
			"confidence_score":  float64(60),
			"summary":           "Brief interface flap.",
			"remediation_steps": []any{map[string]any{"priority": "immediate", "action": "Verify interface status"}},
		})),
	}}
	a := New(provider, tools, 10, "")

	alert := testAlert()
	result, err := a.AnalyzeAlert(context.Background(), alert)
	require.NoError(t, err)
	require.NotNil(t, result.Report)
	assert.Equal(t, 2, result.Metadata.ToolCalls)

	// The pinned window, not the hallucinated 2023 dates, reaches Loki.
	require.NotEmpty(t, lokiStart)
	expected := alert.StartsAt.Add(-15 * time.Minute)
	assert.Equal(t, expected.UTC().Format(windowTimeFormat),
		mustParseNanos(t, lokiStart).UTC().Format(windowTimeFormat))
}

func mustParseNanos(t *testing.T, ns string) time.Time {
	t.Helper()
	var n int64
	for _, c := range ns {
		n = n*10 + int64(c-'0')
	}
	return time.Unix(0, n)
}

func TestAnalyzeAlert_TextFallback(t *testing.T) {
	text := "The root cause is a saturated uplink on the core switch causing packet loss.\n" +
		"You should restart the affected interface and monitor traffic levels afterwards."
	provider := &scriptedProvider{responses: []*llm.Response{textResponse(text)}}
	a := New(provider, emptyBackends(t), 10, "")

	result, err := a.AnalyzeAlert(context.Background(), testAlert())
	require.NoError(t, err)
	require.NotNil(t, result.Report)

	assert.Equal(t, 30, result.Report.ConfidenceScore)
	assert.True(t, strings.HasPrefix(result.Report.Summary, "[Fallback Report]"))
	assert.Contains(t, result.Report.RootCause, "root cause")
	require.NotEmpty(t, result.Report.RemediationSteps)
	assert.True(t, result.Metadata.Fallback)
	assert.NotEmpty(t, result.Warning)
}

func TestAnalyzeAlert_MinimalReportAfterMaxIterations(t *testing.T) {
	queryCall := llm.ToolCall{ID: "c1", Name: "query_loki", Arguments: map[string]any{
		"logql_query": `{service="core-network"}`,
	}}
	provider := &scriptedProvider{responses: []*llm.Response{
		toolCallResponse(queryCall),
		toolCallResponse(queryCall),
	}}
	a := New(provider, emptyBackends(t), 2, "")

	result, err := a.AnalyzeAlert(context.Background(), testAlert())
	require.NoError(t, err)
	require.NotNil(t, result.Report)

	assert.Equal(t, 40, result.Report.ConfidenceScore)
	assert.Contains(t, result.Report.RootCause, "NetworkInterfaceDown")
	assert.Contains(t, result.Report.RootCause, "core-network")
	assert.True(t, strings.HasPrefix(result.Report.Summary, "[Minimal Report]"))
	assert.Len(t, result.Report.RemediationSteps, 2)
	assert.True(t, result.Metadata.Fallback)
}

func TestAnalyzeAlert_ProviderError(t *testing.T) {
	provider := &scriptedProvider{errs: []error{errors.New("connection refused")}}
	a := New(provider, emptyBackends(t), 10, "")

	result, err := a.AnalyzeAlert(context.Background(), testAlert())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scripted")
	require.NotNil(t, result)
	assert.Nil(t, result.Report)
	assert.Equal(t, "scripted", result.Metadata.Provider)
}

func TestAnalyzeAlert_RateLimitRetry(t *testing.T) {
	provider := &scriptedProvider{
		errs: []error{errors.New("429 too many requests")},
		responses: []*llm.Response{
			nil, // consumed by the error slot
			toolCallResponse(reportCall(map[string]any{
				"root_cause":        "Transient failure",
				"confidence_score":  float64(50),
				"summary":           "Recovered after retry.",
				"remediation_steps": []any{map[string]any{"priority": "immediate", "action": "Check service logs"}},
			})),
		},
	}
	a := New(provider, emptyBackends(t), 10, "")

	// Shorten the retry for the test.
	origBackoff := rateLimitBackoff
	rateLimitBackoff = 10 * time.Millisecond
	defer func() { rateLimitBackoff = origBackoff }()

	result, err := a.AnalyzeAlert(context.Background(), testAlert())
	require.NoError(t, err)
	require.NotNil(t, result.Report)
	assert.Equal(t, "Transient failure", result.Report.RootCause)
	assert.Equal(t, 2, provider.calls)
}

func TestAnalyzeIncident_PromptContainsAlerts(t *testing.T) {
	primaryID := "a1"
	reason := "Correlated by same datacenter: dc1"
	inc := &ent.Incident{
		ID:                "inc-1",
		Title:             "NetworkInterfaceDown",
		Severity:          "critical",
		Status:            "open",
		AffectedServices:  []string{"core-network", "payment-api"},
		PrimaryAlertID:    &primaryID,
		CorrelationReason: &reason,
		StartedAt:         time.Now().Add(-20 * time.Minute),
	}
	alerts := []*ent.Alert{
		testAlert(),
		{
			ID:        "a2",
			Alertname: "HighLatency",
			Severity:  "warning",
			Status:    "firing",
			Labels:    map[string]string{"service": "payment-api"},
			StartsAt:  time.Now().Add(-5 * time.Minute),
		},
	}

	prompt, window := formatIncidentPrompt(inc, alerts, time.Now().UTC())
	assert.Contains(t, prompt, "NetworkInterfaceDown")
	assert.Contains(t, prompt, "HighLatency")
	assert.Contains(t, prompt, reason)
	assert.Contains(t, prompt, `"is_primary": true`)
	assert.Contains(t, prompt, "Begin by calling query_loki for: core-network")
	assert.NotEmpty(t, window.start)
	assert.NotEmpty(t, window.end)
	// Window opens 15 minutes before the earliest alert.
	expected := alerts[0].StartsAt.Add(-15 * time.Minute).UTC().Format(windowTimeFormat)
	assert.Equal(t, expected, window.start)
}
