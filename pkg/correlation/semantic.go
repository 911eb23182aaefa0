package correlation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/incident-ops/rcad/ent"
	"github.com/incident-ops/rcad/pkg/llm"
)

// incidentCategory is one semantic class of incidents with the keywords that
// identify it.
type incidentCategory struct {
	name     string
	keywords []string
}

// incidentCategories is the fixed set of semantic classes used to pre-filter
// correlation candidates before asking the LLM.
var incidentCategories = []incidentCategory{
	{"network_connectivity", []string{
		"interface down", "link down", "carrier lost", "port down",
		"connection refused", "unreachable", "no route", "network partition",
	}},
	{"network_congestion", []string{
		"congestion", "packet drop", "buffer overflow", "queue full",
		"bandwidth saturation", "throttling", "qos violation", "traffic spike",
	}},
	{"routing_protocol", []string{
		"bgp", "ospf", "eigrp", "routing", "neighbor down", "adjacency",
		"route withdrawal", "convergence", "peering",
	}},
	{"database_failure", []string{
		"database", "postgresql", "mysql", "mongodb", "redis",
		"connection pool", "replication", "replica", "primary", "failover",
	}},
	{"memory_exhaustion", []string{
		"oom", "out of memory", "memory leak", "heap", "gc pressure",
		"memory exhaustion", "killed", "evicted",
	}},
	{"disk_exhaustion", []string{
		"disk full", "disk space", "storage", "inode", "quota exceeded",
		"filesystem", "volume",
	}},
	{"service_failure", []string{
		"crash", "error", "exception", "failed", "unavailable",
		"circuit breaker", "timeout", "unhealthy",
	}},
	{"latency_degradation", []string{
		"latency", "slow", "degraded", "response time", "p99", "p95",
		"high latency", "performance",
	}},
}

// incompatiblePairs lists category pairs that cannot share a root cause.
var incompatiblePairs = [][2]string{
	{"network_connectivity", "memory_exhaustion"},
	{"network_connectivity", "disk_exhaustion"},
	{"network_congestion", "database_failure"},
	{"network_congestion", "memory_exhaustion"},
	{"routing_protocol", "disk_exhaustion"},
	{"memory_exhaustion", "disk_exhaustion"},
}

// SemanticCorrelator asks an LLM whether alerts describe the same underlying
// problem, going beyond label matching.
type SemanticCorrelator struct {
	llm llm.Provider
}

// NewSemanticCorrelator creates a semantic correlator backed by the given
// provider.
func NewSemanticCorrelator(provider llm.Provider) *SemanticCorrelator {
	if provider == nil {
		panic("NewSemanticCorrelator: provider must not be nil")
	}
	return &SemanticCorrelator{llm: provider}
}

// CategorizeAlert classifies an alert into an incident category, returning
// the category name and a normalized keyword-hit score.
func CategorizeAlert(a *ent.Alert) (string, float64) {
	text := strings.ToLower(alertContext(a))

	bestCategory := "unknown"
	bestScore := 0.0
	for _, cat := range incidentCategories {
		hits := 0
		for _, kw := range cat.keywords {
			if strings.Contains(text, kw) {
				hits++
			}
		}
		score := float64(hits) / float64(len(cat.keywords))
		if score > bestScore {
			bestScore = score
			bestCategory = cat.name
		}
	}
	return bestCategory, bestScore
}

// AreSemanticallyRelated determines whether an alert belongs to an incident.
// Returns (related, reason, confidence).
func (c *SemanticCorrelator) AreSemanticallyRelated(ctx context.Context, a *ent.Alert, inc *ent.Incident, incidentAlerts []*ent.Alert) (bool, string, float64) {
	alertCategory, alertScore := CategorizeAlert(a)

	incidentCats := make(map[string]bool)
	var soleCategory string
	for _, ia := range incidentAlerts {
		cat, _ := CategorizeAlert(ia)
		incidentCats[cat] = true
		soleCategory = cat
	}

	// Reject outright when the categories are fundamentally incompatible and
	// the classifier is confident.
	if !incidentCats[alertCategory] && alertScore > 0.3 {
		if len(incidentCats) == 1 && soleCategory != "unknown" &&
			categoriesIncompatible(alertCategory, soleCategory) {
			return false, fmt.Sprintf("Different incident type: %s vs %s", alertCategory, soleCategory), 0.8
		}
	}

	alertDC := labelOrUnknown(a.Labels, "datacenter")
	incidentDC := labelOrUnknown(inc.AffectedLabels, "datacenter")
	sameDC := "DIFFERENT"
	if alertDC == incidentDC {
		sameDC = "THE SAME"
	}

	prompt := fmt.Sprintf(`Analyze if these two issues should be grouped into the SAME incident or kept SEPARATE.

NEW ALERT (Datacenter: %s):
%s

EXISTING INCIDENT (Datacenter: %s):
%s

CRITICAL: The alert is in datacenter '%s' and the incident is in datacenter '%s'.
These are %s datacenters.

Rules:
1. DIFFERENT datacenters = SEPARATE incidents (related: false) unless there's a clear upstream/downstream dependency
2. SAME datacenter + SAME network segment + related issue type = SAME incident (related: true)
3. SAME datacenter + SAME device = SAME incident (related: true)

Respond with JSON:
{
    "related": true/false,
    "confidence": 0.0-1.0,
    "reason": "brief explanation"
}`, alertDC, alertContext(a), incidentDC, incidentContext(inc, incidentAlerts), alertDC, incidentDC, sameDC)

	resp, err := c.llm.Chat(ctx, []llm.Message{llm.NewUserMessage(prompt)}, nil, "")
	if err == nil && resp.Content != "" {
		verdict := parseVerdict(resp.Content)
		return verdict.Related, verdict.Reason, verdict.Confidence
	}
	if err != nil {
		slog.Warn("LLM semantic analysis failed", "error", err)
	}

	// Fall back to the category classifier.
	if incidentCats[alertCategory] {
		return true, "Same incident category: " + alertCategory, 0.6
	}
	return false, "Unable to determine relationship", 0.3
}

// FindBestIncident returns the candidate incident the alert is most
// confidently related to, or nil when none matches.
func (c *SemanticCorrelator) FindBestIncident(ctx context.Context, a *ent.Alert, candidates []Candidate) (*ent.Incident, string, float64) {
	var best *ent.Incident
	bestReason := "No semantic match found"
	bestConfidence := 0.0

	for _, cand := range candidates {
		related, reason, confidence := c.AreSemanticallyRelated(ctx, a, cand.Incident, cand.Alerts)
		if related && confidence > bestConfidence {
			best = cand.Incident
			bestReason = reason
			bestConfidence = confidence
		}
	}
	return best, bestReason, bestConfidence
}

// Candidate pairs a candidate incident with its current member alerts.
type Candidate struct {
	Incident *ent.Incident
	Alerts   []*ent.Alert
}

// verdict is the JSON shape the arbitration prompt asks for.
type verdict struct {
	Related    bool    `json:"related"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// parseVerdict parses the LLM's JSON answer, tolerating markdown fences and
// malformed output.
func parseVerdict(content string) verdict {
	content = strings.TrimSpace(content)

	if i := strings.Index(content, "```json"); i >= 0 {
		content = content[i+len("```json"):]
		if j := strings.Index(content, "```"); j >= 0 {
			content = content[:j]
		}
		content = strings.TrimSpace(content)
	} else if i := strings.Index(content, "```"); i >= 0 {
		content = content[i+3:]
		if j := strings.Index(content, "```"); j >= 0 {
			content = content[:j]
		}
		content = strings.TrimSpace(content)
	}

	var v verdict
	if err := json.Unmarshal([]byte(content), &v); err == nil {
		return v
	}

	// Last resort: look for a positive answer in the raw text.
	v = verdict{Related: false, Confidence: 0.5, Reason: "Parse error"}
	lower := strings.ToLower(content)
	if strings.Contains(lower, "related") && strings.Contains(lower, "true") {
		v.Related = true
	}
	return v
}

func categoriesIncompatible(cat1, cat2 string) bool {
	for _, pair := range incompatiblePairs {
		if (cat1 == pair[0] && cat2 == pair[1]) || (cat1 == pair[1] && cat2 == pair[0]) {
			return true
		}
	}
	return false
}

// alertContext renders the semantic context of an alert for classification
// and prompting.
func alertContext(a *ent.Alert) string {
	labels := a.Labels
	annotations := a.Annotations

	segment := labels["network_segment"]
	if segment == "" {
		segment = labels["network_path"]
	}
	if segment == "" {
		segment = "unknown"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Alert: %s\n", a.Alertname)
	fmt.Fprintf(&b, "Severity: %s\n", a.Severity)
	fmt.Fprintf(&b, "Service: %s\n", labelOrUnknown(labels, "service"))
	fmt.Fprintf(&b, "Namespace: %s\n", labelOrUnknown(labels, "namespace"))
	fmt.Fprintf(&b, "Datacenter: %s\n", labelOrUnknown(labels, "datacenter"))
	fmt.Fprintf(&b, "Network Segment: %s\n", segment)
	fmt.Fprintf(&b, "Summary: %s\n", annotationOrNA(annotations, "summary"))
	fmt.Fprintf(&b, "Description: %s", annotationOrNA(annotations, "description"))

	for _, label := range []string{"node", "interface", "cluster", "upstream", "downstream", "peer"} {
		if v, ok := labels[label]; ok {
			fmt.Fprintf(&b, "\n%s: %s", label, v)
		}
	}
	return b.String()
}

// incidentContext renders the semantic context of an incident and up to five
// of its alerts.
func incidentContext(inc *ent.Incident, alerts []*ent.Alert) string {
	labels := inc.AffectedLabels

	segment := labels["network_segment"]
	if segment == "" {
		segment = labels["network_path"]
	}
	if segment == "" {
		segment = "unknown"
	}

	reason := "N/A"
	if inc.CorrelationReason != nil && *inc.CorrelationReason != "" {
		reason = *inc.CorrelationReason
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Incident: %s\n", inc.Title)
	fmt.Fprintf(&b, "Affected Services: %s\n", strings.Join(inc.AffectedServices, ", "))
	fmt.Fprintf(&b, "Datacenter: %s\n", labelOrUnknown(labels, "datacenter"))
	fmt.Fprintf(&b, "Network Segment: %s\n", segment)
	fmt.Fprintf(&b, "Correlation Reason: %s\n\n", reason)
	b.WriteString("Alerts in this incident:")

	limit := len(alerts)
	if limit > 5 {
		limit = 5
	}
	for _, a := range alerts[:limit] {
		fmt.Fprintf(&b, "\n- %s: %s", a.Alertname, annotationOrNA(a.Annotations, "summary"))
	}
	return b.String()
}

func labelOrUnknown(labels map[string]string, key string) string {
	if v, ok := labels[key]; ok && v != "" {
		return v
	}
	return "unknown"
}

func annotationOrNA(annotations map[string]string, key string) string {
	if v, ok := annotations[key]; ok && v != "" {
		return v
	}
	return "N/A"
}
