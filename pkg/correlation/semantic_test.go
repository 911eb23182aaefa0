package correlation

import (
	"context"
	"errors"
	"testing"

	"github.com/incident-ops/rcad/ent"
	entalert "github.com/incident-ops/rcad/ent/alert"
	"github.com/incident-ops/rcad/pkg/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedProvider returns canned responses in order, or a fixed error.
type scriptedProvider struct {
	responses []*llm.Response
	err       error
	calls     int
}

func (p *scriptedProvider) Name() string  { return "scripted" }
func (p *scriptedProvider) Model() string { return "scripted" }

func (p *scriptedProvider) Chat(_ context.Context, _ []llm.Message, _ []llm.Tool, _ string) (*llm.Response, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.calls >= len(p.responses) {
		return nil, errors.New("no scripted response left")
	}
	resp := p.responses[p.calls]
	p.calls++
	return resp, nil
}

func TestCategorizeAlert(t *testing.T) {
	tests := []struct {
		name     string
		alert    *ent.Alert
		category string
	}{
		{
			"memory exhaustion",
			&ent.Alert{
				Alertname:   "OOMKilled",
				Severity:    entalert.SeverityCritical,
				Annotations: map[string]string{"summary": "container killed, out of memory"},
			},
			"memory_exhaustion",
		},
		{
			"routing protocol",
			&ent.Alert{
				Alertname:   "BGPNeighborDown",
				Severity:    entalert.SeverityCritical,
				Annotations: map[string]string{"summary": "bgp peering adjacency lost"},
			},
			"routing_protocol",
		},
		{
			"network connectivity",
			&ent.Alert{
				Alertname:   "InterfaceDown",
				Severity:    entalert.SeverityCritical,
				Annotations: map[string]string{"summary": "link down, carrier lost on eth0"},
			},
			"network_connectivity",
		},
		{
			"no signal",
			&ent.Alert{Alertname: "SomethingOdd", Severity: entalert.SeverityInfo},
			"unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, _ := CategorizeAlert(tt.alert)
			assert.Equal(t, tt.category, category)
		})
	}
}

func TestParseVerdict(t *testing.T) {
	v := parseVerdict(`{"related": true, "confidence": 0.9, "reason": "same device"}`)
	assert.True(t, v.Related)
	assert.Equal(t, 0.9, v.Confidence)
	assert.Equal(t, "same device", v.Reason)

	v = parseVerdict("```json\n{\"related\": false, \"confidence\": 0.7, \"reason\": \"different dc\"}\n```")
	assert.False(t, v.Related)
	assert.Equal(t, 0.7, v.Confidence)

	v = parseVerdict("I think related: true because they share a switch")
	assert.True(t, v.Related)
	assert.Equal(t, "Parse error", v.Reason)

	v = parseVerdict("not parseable at all")
	assert.False(t, v.Related)
	assert.Equal(t, 0.5, v.Confidence)
}

func TestAreSemanticallyRelated_IncompatibleCategories(t *testing.T) {
	// The provider must not be consulted for a hard category mismatch.
	provider := &scriptedProvider{err: errors.New("should not be called")}
	c := NewSemanticCorrelator(provider)

	memAlert := &ent.Alert{
		Alertname:   "OOMKilled",
		Severity:    entalert.SeverityCritical,
		Annotations: map[string]string{"summary": "container killed, out of memory"},
	}
	inc := &ent.Incident{Title: "InterfaceDown", AffectedLabels: map[string]string{}}
	incAlerts := []*ent.Alert{{
		Alertname:   "InterfaceDown",
		Severity:    entalert.SeverityCritical,
		Annotations: map[string]string{"summary": "link down, carrier lost"},
	}}

	related, reason, confidence := c.AreSemanticallyRelated(context.Background(), memAlert, inc, incAlerts)
	assert.False(t, related)
	assert.Contains(t, reason, "Different incident type")
	assert.Equal(t, 0.8, confidence)
	assert.Equal(t, 0, provider.calls)
}

func TestAreSemanticallyRelated_LLMVerdict(t *testing.T) {
	provider := &scriptedProvider{responses: []*llm.Response{
		{Content: `{"related": true, "confidence": 0.85, "reason": "same spine switch"}`, StopReason: "end_turn"},
	}}
	c := NewSemanticCorrelator(provider)

	a := &ent.Alert{
		Alertname: "APITimeout",
		Severity:  entalert.SeverityWarning,
		Labels:    map[string]string{"datacenter": "dc1"},
	}
	inc := &ent.Incident{
		Title:          "InterfaceDown",
		AffectedLabels: map[string]string{"datacenter": "dc1"},
	}

	related, reason, confidence := c.AreSemanticallyRelated(context.Background(), a, inc, nil)
	assert.True(t, related)
	assert.Equal(t, "same spine switch", reason)
	assert.Equal(t, 0.85, confidence)
}

func TestAreSemanticallyRelated_FallbackOnLLMError(t *testing.T) {
	provider := &scriptedProvider{err: errors.New("connection refused")}
	c := NewSemanticCorrelator(provider)

	a := &ent.Alert{
		Alertname:   "PostgreSQLConnectionPoolExhausted",
		Severity:    entalert.SeverityCritical,
		Annotations: map[string]string{"summary": "database connection pool exhausted"},
	}
	inc := &ent.Incident{Title: "PostgreSQLDown", AffectedLabels: map[string]string{}}
	incAlerts := []*ent.Alert{{
		Alertname:   "PostgreSQLDown",
		Severity:    entalert.SeverityCritical,
		Annotations: map[string]string{"summary": "postgresql primary failover in progress"},
	}}

	related, reason, confidence := c.AreSemanticallyRelated(context.Background(), a, inc, incAlerts)
	assert.True(t, related)
	assert.Equal(t, "Same incident category: database_failure", reason)
	assert.Equal(t, 0.6, confidence)
}

func TestFindBestIncident(t *testing.T) {
	provider := &scriptedProvider{responses: []*llm.Response{
		{Content: `{"related": true, "confidence": 0.7, "reason": "same dc"}`, StopReason: "end_turn"},
		{Content: `{"related": true, "confidence": 0.9, "reason": "same device"}`, StopReason: "end_turn"},
	}}
	c := NewSemanticCorrelator(provider)

	a := &ent.Alert{Alertname: "APITimeout", Severity: entalert.SeverityWarning}
	inc1 := &ent.Incident{ID: "inc-1", Title: "First"}
	inc2 := &ent.Incident{ID: "inc-2", Title: "Second"}

	best, reason, confidence := c.FindBestIncident(context.Background(), a, []Candidate{
		{Incident: inc1}, {Incident: inc2},
	})
	require.NotNil(t, best)
	assert.Equal(t, "inc-2", best.ID)
	assert.Equal(t, "same device", reason)
	assert.Equal(t, 0.9, confidence)
}

func TestFindBestIncident_NoMatch(t *testing.T) {
	provider := &scriptedProvider{responses: []*llm.Response{
		{Content: `{"related": false, "confidence": 0.9, "reason": "different dc"}`, StopReason: "end_turn"},
	}}
	c := NewSemanticCorrelator(provider)

	a := &ent.Alert{Alertname: "APITimeout", Severity: entalert.SeverityWarning}
	best, reason, confidence := c.FindBestIncident(context.Background(), a, []Candidate{
		{Incident: &ent.Incident{ID: "inc-1"}},
	})
	assert.Nil(t, best)
	assert.Equal(t, "No semantic match found", reason)
	assert.Equal(t, 0.0, confidence)
}
