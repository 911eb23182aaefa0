package correlation

import (
	"testing"

	"github.com/incident-ops/rcad/ent"
	entalert "github.com/incident-ops/rcad/ent/alert"
	"github.com/stretchr/testify/assert"
)

func TestScore_DirectLabelMatch(t *testing.T) {
	a := &ent.Alert{
		Alertname: "HighErrorRate",
		Labels:    map[string]string{"service": "api", "namespace": "prod"},
	}
	inc := &ent.Incident{
		Title:          "HighLatency",
		AffectedLabels: map[string]string{"service": "api", "namespace": "prod"},
	}

	// service exact (+2) + namespace exact (+2) + same service bonus (+3)
	// + same namespace bonus (+2)
	assert.Equal(t, 9, Score(a, inc))
}

func TestScore_PartialPodNameMatch(t *testing.T) {
	a := &ent.Alert{
		Alertname: "PodCrashLooping",
		Labels:    map[string]string{"instance": "api-7f8d9c-abc12"},
	}
	inc := &ent.Incident{
		Title:          "PodCrashLooping",
		AffectedLabels: map[string]string{"instance": "api-7f8d9c-xyz34"},
	}

	assert.Equal(t, 1, Score(a, inc))
}

func TestScore_InfrastructureLabels(t *testing.T) {
	a := &ent.Alert{
		Alertname: "HighErrorRate",
		Labels:    map[string]string{"datacenter": "dc1", "namespace": "payments"},
	}
	inc := &ent.Incident{
		Title:          "HighLatency",
		AffectedLabels: map[string]string{"datacenter": "dc1", "namespace": "checkout"},
	}

	// Shared datacenter (+4); namespaces differ.
	assert.Equal(t, 4, Score(a, inc))
}

func TestScore_CrossReference(t *testing.T) {
	a := &ent.Alert{
		Alertname: "UpstreamTimeout",
		Labels:    map[string]string{"upstream": "db-primary"},
	}
	inc := &ent.Incident{
		Title:            "NodeDown",
		AffectedLabels:   map[string]string{"node": "db-primary"},
		AffectedServices: []string{"db-primary"},
	}

	// upstream == incident node (+5) and in affected services (+4).
	assert.Equal(t, 9, Score(a, inc))
}

func TestScore_AnnotationMention(t *testing.T) {
	a := &ent.Alert{
		Alertname:   "ServiceDegraded",
		Labels:      map[string]string{},
		Annotations: map[string]string{"description": "checkout failing because node-42 is unreachable"},
	}
	inc := &ent.Incident{
		Title:            "NodeUnreachable",
		AffectedLabels:   map[string]string{"node": "node-42"},
		AffectedServices: []string{"checkout"},
	}

	// node mention (+3) + service mention (+2).
	assert.Equal(t, 5, Score(a, inc))
}

func TestScore_InfrastructureAffinity(t *testing.T) {
	a := &ent.Alert{
		Alertname: "InterfaceDown",
		Labels:    map[string]string{"datacenter": "dc1", "namespace": "network-infra"},
	}
	inc := &ent.Incident{
		Title:          "CheckoutLatency",
		AffectedLabels: map[string]string{"datacenter": "dc1", "namespace": "shop"},
	}

	// Shared datacenter label (+4) + infra alert affinity (+3).
	assert.Equal(t, 7, Score(a, inc))
}

func TestScore_NetworkPathMatchesSegment(t *testing.T) {
	a := &ent.Alert{
		Alertname: "APITimeout",
		Labels:    map[string]string{"network_path": "spine-1", "namespace": "shop"},
	}
	inc := &ent.Incident{
		Title:          "BGPNeighborDown",
		AffectedLabels: map[string]string{"network_segment": "spine-1", "namespace": "network-infra"},
	}

	// Symptom joining an infra incident via network path (+4).
	assert.Equal(t, 4, Score(a, inc))
}

func TestCausalScore(t *testing.T) {
	tests := []struct {
		name     string
		alert    *ent.Alert
		expected int
	}{
		{
			"interface critical",
			&ent.Alert{Alertname: "InterfaceDown", Severity: entalert.SeverityCritical},
			20, // interface 15 + critical 5
		},
		{
			"bgp warning",
			&ent.Alert{Alertname: "BGPNeighborDown", Severity: entalert.SeverityWarning},
			14,
		},
		{
			"symptom",
			&ent.Alert{Alertname: "HighLatency", Severity: entalert.SeverityWarning},
			3,
		},
		{
			"multiple indicators",
			&ent.Alert{Alertname: "NetworkConnectivityTimeout", Severity: entalert.SeverityWarning},
			19, // network 11 + connectivity 5 + timeout 3
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CausalScore(tt.alert))
		})
	}
}

func TestReason(t *testing.T) {
	a := &ent.Alert{
		Alertname: "HighErrorRate",
		Labels:    map[string]string{"service": "api", "datacenter": "dc1"},
	}
	inc := &ent.Incident{
		Title:          "APIDown",
		AffectedLabels: map[string]string{"service": "api", "datacenter": "dc1"},
	}

	reason := Reason(a, inc)
	assert.Contains(t, reason, "Correlated by ")
	assert.Contains(t, reason, "same service: api")
	assert.Contains(t, reason, "shared datacenter: dc1")
}

func TestReason_TimeProximityFallback(t *testing.T) {
	a := &ent.Alert{Alertname: "SomethingOdd", Labels: map[string]string{}}
	inc := &ent.Incident{Title: "OtherIssue", AffectedLabels: map[string]string{}}

	assert.Equal(t, "Correlated by time proximity", Reason(a, inc))
}

func TestReason_SymptomOfInfraIncident(t *testing.T) {
	a := &ent.Alert{Alertname: "CheckoutTimeout", Labels: map[string]string{}}
	inc := &ent.Incident{Title: "InterfaceFlapping", AffectedLabels: map[string]string{}}

	assert.Contains(t, Reason(a, inc), "symptom of infrastructure incident")
}

func TestPartialMatch(t *testing.T) {
	assert.True(t, partialMatch("api-abc123", "api-xyz789"))
	assert.True(t, partialMatch("api", "api"))
	assert.False(t, partialMatch("api-1", "web-2"))
}
