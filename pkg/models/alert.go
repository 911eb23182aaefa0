// Package models defines domain types shared between the API, service, and
// agent layers.
package models

import "strings"

// Severity is an alert or incident severity level.
type Severity string

// Severity levels, ordered from most to least urgent.
const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// ParseSeverity normalizes a severity label value. Unknown values map to
// warning so a misconfigured alert rule never drops an alert.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return SeverityCritical
	case "warning":
		return SeverityWarning
	case "info":
		return SeverityInfo
	default:
		return SeverityWarning
	}
}

// rank orders severities for monotonic upgrades (higher is more severe).
func (s Severity) rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	}
	return 0
}

// Max returns the more severe of the two severities.
func (s Severity) Max(other Severity) Severity {
	if other.rank() > s.rank() {
		return other
	}
	return s
}

// AlertStatus is the firing state of an alert.
type AlertStatus string

// Alert statuses.
const (
	AlertFiring   AlertStatus = "firing"
	AlertResolved AlertStatus = "resolved"
)

// ParseAlertStatus normalizes an Alertmanager status value. Unknown values
// map to firing.
func ParseAlertStatus(s string) AlertStatus {
	if strings.ToLower(strings.TrimSpace(s)) == "resolved" {
		return AlertResolved
	}
	return AlertFiring
}
