package models

// ReportStatus is the lifecycle state of an RCA report.
type ReportStatus string

// Report statuses.
const (
	ReportPending  ReportStatus = "pending"
	ReportComplete ReportStatus = "complete"
	ReportFailed   ReportStatus = "failed"
)

// TimelineEvent is one entry in a report's chronological event sequence.
type TimelineEvent struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	Source    string `json:"source"`
}

// LogEvidence is a single supporting log line.
type LogEvidence struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Source    string `json:"source,omitempty"`
}

// MetricEvidence is a single supporting metric observation.
type MetricEvidence struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	Timestamp string `json:"timestamp"`
}

// Evidence groups the supporting observations backing a root cause.
type Evidence struct {
	Logs    []LogEvidence    `json:"logs"`
	Metrics []MetricEvidence `json:"metrics"`
}

// RemediationStep is one suggested action.
type RemediationStep struct {
	Priority    string `json:"priority"` // immediate | long_term
	Action      string `json:"action"`
	Command     string `json:"command,omitempty"`
	Risk        string `json:"risk"` // low | medium | high
	Description string `json:"description,omitempty"`
}

// ReportData is the full structured output of one investigation, produced by
// the agent and persisted by the report service.
type ReportData struct {
	RootCause        string            `json:"root_cause"`
	ConfidenceScore  int               `json:"confidence_score"`
	Summary          string            `json:"summary"`
	Timeline         []TimelineEvent   `json:"timeline"`
	Evidence         Evidence          `json:"evidence"`
	RemediationSteps []RemediationStep `json:"remediation_steps"`
	Category         string            `json:"category,omitempty"`
}

// AnalysisMetadata records how the investigation ran.
type AnalysisMetadata struct {
	Provider        string  `json:"provider"`
	Model           string  `json:"model"`
	TokensUsed      int     `json:"tokens_used"`
	DurationSeconds float64 `json:"duration_seconds"`
	ToolCalls       int     `json:"tool_calls"`
	Fallback        bool    `json:"fallback,omitempty"`
	Warning         string  `json:"warning,omitempty"`
}
