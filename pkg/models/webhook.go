package models

import "time"

// WebhookPayload is the Alertmanager v4 webhook body.
type WebhookPayload struct {
	Version           string            `json:"version"`
	GroupKey          string            `json:"groupKey"`
	Status            string            `json:"status"`
	Receiver          string            `json:"receiver"`
	GroupLabels       map[string]string `json:"groupLabels"`
	CommonLabels      map[string]string `json:"commonLabels"`
	CommonAnnotations map[string]string `json:"commonAnnotations"`
	ExternalURL       string            `json:"externalURL"`
	Alerts            []WebhookAlert    `json:"alerts"`
}

// WebhookAlert is a single alert inside a webhook batch.
type WebhookAlert struct {
	Status       string            `json:"status"`
	Labels       map[string]string `json:"labels"`
	Annotations  map[string]string `json:"annotations"`
	StartsAt     time.Time         `json:"startsAt"`
	EndsAt       time.Time         `json:"endsAt"`
	GeneratorURL string            `json:"generatorURL"`
	Fingerprint  string            `json:"fingerprint"`
}

// Alertname returns the alertname label, or "unknown" when absent.
func (a WebhookAlert) Alertname() string {
	if name := a.Labels["alertname"]; name != "" {
		return name
	}
	return "unknown"
}

// Severity returns the parsed severity label.
func (a WebhookAlert) Severity() Severity {
	return ParseSeverity(a.Labels["severity"])
}
