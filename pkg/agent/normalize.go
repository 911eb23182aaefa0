package agent

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/incident-ops/rcad/pkg/models"
)

// Argument aliases the model commonly substitutes for the schema names.
var queryArgAliases = map[string]map[string]string{
	"query_loki": {
		"end":   "end_time",
		"start": "start_time",
		"query": "logql_query",
		"logql": "logql_query",
	},
	"query_cortex": {
		"end":    "end_time",
		"start":  "start_time",
		"query":  "promql_query",
		"promql": "promql_query",
	},
}

var reportArgAliases = map[string]string{
	"root":       "root_cause",
	"cause":      "root_cause",
	"confidence": "confidence_score",
	"score":      "confidence_score",
}

// normalizeToolInput repairs common model mistakes in tool arguments:
// renamed parameters, missing required report fields, and hallucinated
// timestamps, which are overridden with the pinned query window.
func normalizeToolInput(name string, args map[string]any, window queryWindow) map[string]any {
	normalized := make(map[string]any, len(args))
	for k, v := range args {
		normalized[k] = v
	}

	if aliases, ok := queryArgAliases[name]; ok {
		for wrong, correct := range aliases {
			if _, hasWrong := normalized[wrong]; !hasWrong {
				continue
			}
			if _, hasCorrect := normalized[correct]; !hasCorrect {
				normalized[correct] = normalized[wrong]
			}
			delete(normalized, wrong)
		}
		// Models hallucinate timestamps from training data. Always pin the
		// window computed from the alert itself.
		if window.start != "" && window.end != "" {
			normalized["start_time"] = window.start
			normalized["end_time"] = window.end
		}
		return normalized
	}

	if name == "generate_report" {
		for wrong, correct := range reportArgAliases {
			if _, hasWrong := normalized[wrong]; !hasWrong {
				continue
			}
			if _, hasCorrect := normalized[correct]; !hasCorrect {
				normalized[correct] = normalized[wrong]
				delete(normalized, wrong)
			}
		}
		if stringArg(normalized, "root_cause") == "" {
			if summary := stringArg(normalized, "summary"); summary != "" {
				normalized["root_cause"] = summary
			} else {
				normalized["root_cause"] = "Root cause could not be determined from available evidence"
			}
		}
		if _, ok := normalized["confidence_score"]; !ok {
			normalized["confidence_score"] = 50
		}
		if stringArg(normalized, "summary") == "" {
			normalized["summary"] = stringArg(normalized, "root_cause")
		}
		normalized["confidence_score"] = intArg(normalized, "confidence_score", 50)
	}

	return normalized
}

// executeGenerateReport validates the model's report arguments into a
// ReportData. Tolerant of the shapes smaller models produce: JSON encoded as
// strings, single objects where arrays are expected, and bare string steps.
func executeGenerateReport(args map[string]any) map[string]any {
	rootCause := stringArg(args, "root_cause")
	if rootCause == "" {
		return map[string]any{"success": false, "error": "root_cause is required"}
	}
	summary := stringArg(args, "summary")
	if summary == "" {
		summary = rootCause
	}
	confidence := intArg(args, "confidence_score", 50)
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}

	report := &models.ReportData{
		RootCause:        rootCause,
		ConfidenceScore:  confidence,
		Summary:          summary,
		Timeline:         buildTimeline(args["timeline"]),
		Evidence:         buildEvidence(args["evidence"]),
		RemediationSteps: buildRemediationSteps(args["remediation_steps"], rootCause),
	}

	return map[string]any{"success": true, "report": report}
}

// parseJSONValue unwraps values some providers send as JSON strings instead
// of structured objects. Non-JSON strings come back as nil.
func parseJSONValue(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	var parsed any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return nil
	}
	return parsed
}

func asList(value any) []any {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		return v
	case map[string]any:
		return []any{v}
	default:
		return nil
	}
}

func buildTimeline(raw any) []models.TimelineEvent {
	events := []models.TimelineEvent{}
	for _, item := range asList(parseJSONValue(raw)) {
		switch e := item.(type) {
		case map[string]any:
			events = append(events, models.TimelineEvent{
				Timestamp: stringOrNow(e, "timestamp"),
				Event:     stringArg(e, "event"),
				Source:    stringOrDefault(e, "source", "alert"),
			})
		case string:
			events = append(events, models.TimelineEvent{
				Timestamp: time.Now().UTC().Format(time.RFC3339),
				Event:     e,
				Source:    "alert",
			})
		}
	}
	return events
}

func buildEvidence(raw any) models.Evidence {
	evidence := models.Evidence{Logs: []models.LogEvidence{}, Metrics: []models.MetricEvidence{}}
	m, ok := parseJSONValue(raw).(map[string]any)
	if !ok {
		return evidence
	}

	if logs, ok := m["logs"].([]any); ok {
		for _, item := range logs {
			switch log := item.(type) {
			case map[string]any:
				evidence.Logs = append(evidence.Logs, models.LogEvidence{
					Timestamp: stringOrNow(log, "timestamp"),
					Message:   stringArg(log, "message"),
					Source:    stringOrDefault(log, "source", "loki"),
				})
			case string:
				evidence.Logs = append(evidence.Logs, models.LogEvidence{
					Timestamp: time.Now().UTC().Format(time.RFC3339),
					Message:   log,
					Source:    "loki",
				})
			}
		}
	}
	if metrics, ok := m["metrics"].([]any); ok {
		for _, item := range metrics {
			metric, ok := item.(map[string]any)
			if !ok {
				continue
			}
			evidence.Metrics = append(evidence.Metrics, models.MetricEvidence{
				Name:      stringOrDefault(metric, "name", "unknown"),
				Value:     formatMetricValue(metric["value"]),
				Timestamp: stringOrNow(metric, "timestamp"),
			})
		}
	}
	return evidence
}

func buildRemediationSteps(raw any, rootCause string) []models.RemediationStep {
	parsed := parseJSONValue(raw)
	if s, ok := raw.(string); ok && parsed == nil {
		// Not JSON, treat the whole string as a single action.
		parsed = []any{s}
	}

	steps := []models.RemediationStep{}
	for _, item := range asList(parsed) {
		switch step := item.(type) {
		case map[string]any:
			action := stringArg(step, "action")
			command := stringArg(step, "command")
			if command == "" {
				command = inferCommand(action, rootCause)
			}
			steps = append(steps, models.RemediationStep{
				Priority:    validPriority(stringArg(step, "priority")),
				Action:      action,
				Command:     command,
				Risk:        validRisk(stringArg(step, "risk")),
				Description: stringArg(step, "description"),
			})
		case string:
			steps = append(steps, models.RemediationStep{
				Priority: "immediate",
				Action:   step,
				Command:  inferCommand(step, rootCause),
				Risk:     "low",
			})
		}
	}
	return steps
}

func validPriority(p string) string {
	if p == "immediate" || p == "long_term" {
		return p
	}
	return "immediate"
}

func validRisk(r string) string {
	switch r {
	case "low", "medium", "high":
		return r
	}
	return "low"
}

var networkDevicePattern = regexp.MustCompile(`(eth\d+|veth\d+|ens\d+\w*|enp\d+s\d+\w*|dummy\d+)`)
var serviceNamePattern = regexp.MustCompile(`(\w+[-\w]*(?:\.service)?)`)

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// inferCommand fills in a shell command when the model gives a remediation
// action without one, keyed off the action text and root cause.
func inferCommand(action, rootCause string) string {
	actionLower := strings.ToLower(action)
	combined := actionLower + " " + strings.ToLower(rootCause)

	if containsAny(combined, "interface", "network", "eth", "veth", "ens", "enp") {
		device := "eth0"
		if m := networkDevicePattern.FindString(combined); m != "" {
			device = m
		}
		switch {
		case containsAny(actionLower, "bring up", "set up", "restore", "enable", "fix"):
			return "sudo ip link set " + device + " up"
		case containsAny(actionLower, "verify", "check", "status", "investigate"):
			return "ip link show " + device
		case containsAny(actionLower, "ping", "connectivity", "network"):
			return "ping -c 3 $(ip route | grep default | awk '{print $3}')"
		case containsAny(actionLower, "dmesg", "kernel", "log"):
			return "dmesg | tail -50 | grep -i " + device
		}
		return "ip link show " + device
	}

	if containsAny(combined, "disk", "space", "storage", "full") {
		if containsAny(actionLower, "clean", "clear", "remove", "delete") {
			return "sudo find /var/log -name '*.gz' -mtime +7 -delete"
		}
		return "df -h"
	}

	if containsAny(combined, "memory", "oom", "ram") {
		if containsAny(actionLower, "check", "verify", "status") {
			return "free -m"
		}
		return "free -m && top -bn1 | head -20"
	}

	if containsAny(combined, "cpu", "load", "process") {
		return "top -bn1 | head -20"
	}

	if containsAny(combined, "service", "systemd", "daemon") {
		service := "service-name"
		if m := serviceNamePattern.FindString(combined); m != "" {
			service = strings.TrimSuffix(m, ".service")
		}
		switch {
		case strings.Contains(actionLower, "restart"):
			return "sudo systemctl restart " + service
		case containsAny(actionLower, "check", "status", "verify"):
			return "systemctl status " + service
		case strings.Contains(actionLower, "start"):
			return "sudo systemctl start " + service
		}
		return "systemctl status " + service
	}

	if containsAny(combined, "container", "docker", "pod") {
		switch {
		case strings.Contains(actionLower, "restart"):
			return "docker ps -a && docker restart <container_id>"
		case containsAny(actionLower, "check", "status", "verify"):
			return "docker ps -a"
		case strings.Contains(actionLower, "logs"):
			return "docker logs --tail 100 <container_id>"
		}
		return "docker ps -a"
	}

	if containsAny(combined, "kubernetes", "kubectl", "k8s", "deployment") {
		switch {
		case containsAny(actionLower, "restart", "rollout"):
			return "kubectl rollout restart deployment/<deployment-name>"
		case strings.Contains(actionLower, "scale"):
			return "kubectl scale deployment/<deployment-name> --replicas=3"
		}
		return "kubectl get pods"
	}

	if containsAny(actionLower, "investigate", "review", "check", "verify") {
		return "journalctl -xe --no-pager | tail -100"
	}
	if containsAny(actionLower, "log", "error") {
		return "journalctl -xe --no-pager | tail -50"
	}
	return ""
}

func stringOrDefault(m map[string]any, key, fallback string) string {
	if v := stringArg(m, key); v != "" {
		return v
	}
	return fallback
}

func stringOrNow(m map[string]any, key string) string {
	if v := stringArg(m, key); v != "" {
		return v
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func formatMetricValue(v any) string {
	switch value := v.(type) {
	case nil:
		return "0"
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	case int:
		return strconv.Itoa(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
