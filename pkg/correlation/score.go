// Package correlation groups related alerts into incidents using a two-phase
// approach: structural label scoring followed by semantic arbitration.
package correlation

import (
	"strings"

	"github.com/incident-ops/rcad/ent"
	entalert "github.com/incident-ops/rcad/ent/alert"
)

// Primary correlation labels (direct match).
var correlationLabels = []string{"service", "namespace", "node", "instance", "job", "app"}

// Infrastructure labels for cross-namespace correlation.
var infrastructureLabels = []string{"datacenter", "network_segment", "cluster", "zone", "region", "rack", "network_path"}

// Labels that reference other entities.
var crossReferenceLabels = []string{"target_node", "destination", "source", "peer", "upstream", "downstream", "dependency"}

// Alert name patterns that indicate infrastructure issues (likely root causes).
var infrastructureAlertPatterns = []string{
	"interface", "bgp", "ospf", "network", "route", "switch", "router",
	"connectivity", "partition", "unreachable", "carrier", "link",
}

// Namespaces that host infrastructure tooling itself.
var infrastructureNamespaces = map[string]bool{
	"network-infra":  true,
	"infrastructure": true,
	"networking":     true,
}

// causalIndicators weights alertname substrings by how likely they indicate a
// root cause rather than a symptom.
var causalIndicators = map[string]int{
	// Infrastructure alerts score highest.
	"interface": 15,
	"bgp":       14,
	"carrier":   14,
	"ospf":      13,
	"partition": 13,
	"route":     12,
	"network":   11,
	// Resource exhaustion.
	"disk":    10,
	"storage": 10,
	"memory":  9,
	"oom":     9,
	"cpu":     8,
	"quota":   8,
	// Symptoms score lowest.
	"connectivity": 5,
	"error":        4,
	"timeout":      3,
	"latency":      3,
	"health":       3,
	"unavailable":  2,
}

// minCandidateScore is the minimum structural score for an incident to be
// considered a correlation candidate.
const minCandidateScore = 2

// Score computes the structural correlation score between an alert and an
// incident. Higher means more related.
func Score(a *ent.Alert, inc *ent.Incident) int {
	score := 0
	alertLabels := a.Labels
	incidentLabels := inc.AffectedLabels

	// Direct label matching.
	for _, label := range correlationLabels {
		av, aok := alertLabels[label]
		iv, iok := incidentLabels[label]
		if !aok || !iok {
			continue
		}
		if av == iv {
			score += 2
		} else if partialMatch(av, iv) {
			score++
		}
	}

	// Infrastructure label matching enables cross-namespace correlation.
	for _, label := range infrastructureLabels {
		if av, ok := alertLabels[label]; ok && av == incidentLabels[label] && av != "" {
			score += 4
		}
	}

	score += crossReferenceScore(a, inc)
	score += infrastructureAffinity(a, inc)

	if v := alertLabels["service"]; v != "" && v == incidentLabels["service"] {
		score += 3
	}
	if v := alertLabels["namespace"]; v != "" && v == incidentLabels["namespace"] {
		score += 2
	}

	return score
}

// crossReferenceScore scores cross-references between the alert and the
// incident: labels like target_node or upstream pointing at the other side's
// node or service.
func crossReferenceScore(a *ent.Alert, inc *ent.Incident) int {
	score := 0
	alertLabels := a.Labels
	incidentLabels := inc.AffectedLabels

	incidentServices := make(map[string]bool, len(inc.AffectedServices))
	for _, svc := range inc.AffectedServices {
		incidentServices[svc] = true
	}

	// Alert referencing the incident.
	for _, ref := range crossReferenceLabels {
		refValue, ok := alertLabels[ref]
		if !ok {
			continue
		}
		if refValue == incidentLabels["node"] && refValue != "" {
			score += 5
		}
		if incidentServices[refValue] {
			score += 4
		}
	}

	// Incident referencing the alert.
	for _, ref := range crossReferenceLabels {
		refValue, ok := incidentLabels[ref]
		if !ok {
			continue
		}
		if refValue == alertLabels["node"] && refValue != "" {
			score += 5
		}
		if refValue == alertLabels["service"] && refValue != "" {
			score += 4
		}
	}

	score += annotationReferenceScore(a, inc)
	return score
}

// annotationReferenceScore checks whether the alert's description or summary
// mentions the incident's node or services.
func annotationReferenceScore(a *ent.Alert, inc *ent.Incident) int {
	score := 0
	alertText := strings.ToLower(a.Annotations["description"] + " " + a.Annotations["summary"])

	if node := inc.AffectedLabels["node"]; node != "" && strings.Contains(alertText, strings.ToLower(node)) {
		score += 3
	}
	for _, svc := range inc.AffectedServices {
		if svc != "" && strings.Contains(alertText, strings.ToLower(svc)) {
			score += 2
		}
	}
	return score
}

// infrastructureAffinity scores the pairing of an infrastructure alert (or
// incident) with symptom alerts in other namespaces: network failures cause
// timeouts and latency far from where they originate.
func infrastructureAffinity(a *ent.Alert, inc *ent.Incident) int {
	score := 0
	alertLabels := a.Labels
	incidentLabels := inc.AffectedLabels

	alertIsInfra := matchesInfraPattern(a.Alertname)
	incidentIsInfra := incidentHasInfraAlert(inc)

	if alertIsInfra && !infrastructureNamespaces[incidentLabels["namespace"]] {
		if dc := alertLabels["datacenter"]; dc != "" && dc == incidentLabels["datacenter"] {
			score += 3
		}
	}

	if incidentIsInfra && !infrastructureNamespaces[alertLabels["namespace"]] {
		if dc := alertLabels["datacenter"]; dc != "" && dc == incidentLabels["datacenter"] {
			score += 3
		}
		if np := alertLabels["network_path"]; np != "" && np == incidentLabels["network_segment"] {
			score += 4
		}
	}

	return score
}

// incidentHasInfraAlert reports whether the incident looks infrastructure
// related, judged by its title.
func incidentHasInfraAlert(inc *ent.Incident) bool {
	return matchesInfraPattern(inc.Title)
}

func matchesInfraPattern(name string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range infrastructureAlertPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// partialMatch reports whether two label values share a base name, stripping
// the segment after the last hyphen (random pod suffixes).
func partialMatch(v1, v2 string) bool {
	return baseName(v1) == baseName(v2)
}

func baseName(v string) string {
	if i := strings.LastIndex(v, "-"); i >= 0 {
		return v[:i]
	}
	return v
}

// CausalScore estimates how likely an alert is to be the root cause of its
// incident, based on alertname indicators and severity.
func CausalScore(a *ent.Alert) int {
	score := 0
	alertname := strings.ToLower(a.Alertname)
	for indicator, points := range causalIndicators {
		if strings.Contains(alertname, indicator) {
			score += points
		}
	}
	if a.Severity == entalert.SeverityCritical {
		score += 5
	}
	return score
}

// Reason produces a human-readable explanation of why the alert was grouped
// into the incident.
func Reason(a *ent.Alert, inc *ent.Incident) string {
	var reasons []string
	alertLabels := a.Labels
	incidentLabels := inc.AffectedLabels

	for _, label := range correlationLabels {
		if av, ok := alertLabels[label]; ok && av == incidentLabels[label] && av != "" {
			reasons = append(reasons, "same "+label+": "+av)
		}
	}
	for _, label := range infrastructureLabels {
		if av, ok := alertLabels[label]; ok && av == incidentLabels[label] && av != "" {
			reasons = append(reasons, "shared "+label+": "+av)
		}
	}

	incidentServices := make(map[string]bool, len(inc.AffectedServices))
	for _, svc := range inc.AffectedServices {
		incidentServices[svc] = true
	}
	for _, ref := range crossReferenceLabels {
		refValue, ok := alertLabels[ref]
		if !ok {
			continue
		}
		if refValue == incidentLabels["node"] && refValue != "" {
			reasons = append(reasons, ref+" references incident node")
		} else if incidentServices[refValue] {
			reasons = append(reasons, ref+" references incident service")
		}
	}

	alertIsInfra := matchesInfraPattern(a.Alertname)
	incidentIsInfra := incidentHasInfraAlert(inc)
	if alertIsInfra && !incidentIsInfra {
		if dc := alertLabels["datacenter"]; dc != "" && dc == incidentLabels["datacenter"] {
			reasons = append(reasons, "infrastructure alert in same datacenter")
		}
	} else if incidentIsInfra && !alertIsInfra {
		reasons = append(reasons, "symptom of infrastructure incident")
	}

	if len(reasons) == 0 {
		return "Correlated by time proximity"
	}
	if len(reasons) > 4 {
		reasons = reasons[:4]
	}
	return "Correlated by " + strings.Join(reasons, ", ")
}
