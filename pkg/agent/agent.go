package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/incident-ops/rcad/ent"
	"github.com/incident-ops/rcad/pkg/llm"
	"github.com/incident-ops/rcad/pkg/models"
)

const (
	defaultMaxIterations = 10
	// Below this, assistant text is too thin to salvage into a report.
	minFallbackTextLen = 50
)

// rateLimitBackoff is how long the loop waits after a rate-limited request.
var rateLimitBackoff = 5 * time.Second

// Agent drives the analysis conversation: it feeds the model alert context,
// executes the tools it calls, and collects the final report.
type Agent struct {
	llm           llm.Provider
	tools         *Toolset
	defs          []llm.Tool
	maxIterations int
	systemPrompt  string
}

// New creates an Agent. maxIterations below 1 falls back to the default.
func New(provider llm.Provider, tools *Toolset, maxIterations int, expertContext string) *Agent {
	if provider == nil {
		panic("agent.New: provider must not be nil")
	}
	if tools == nil {
		panic("agent.New: tools must not be nil")
	}
	if maxIterations < 1 {
		maxIterations = defaultMaxIterations
	}
	a := &Agent{
		llm:           provider,
		tools:         tools,
		defs:          []llm.Tool{queryLokiTool, queryCortexTool, generateReportTool},
		maxIterations: maxIterations,
		systemPrompt:  buildSystemPrompt(expertContext),
	}
	slog.Info("RCA agent initialized", "provider", provider.Name(), "model", provider.Model())
	return a
}

// Result is the outcome of one analysis run. Metadata is populated even when
// the run fails.
type Result struct {
	Report   *models.ReportData
	Metadata models.AnalysisMetadata
	Warning  string
}

// run holds per-invocation state so a single Agent is safe for concurrent
// analyses.
type run struct {
	agent     *Agent
	window    queryWindow
	tokens    int
	toolCalls int
	startedAt time.Time
}

// AnalyzeAlert investigates a single alert and produces a report.
func (a *Agent) AnalyzeAlert(ctx context.Context, alert *ent.Alert) (*Result, error) {
	prompt, window := formatAlertPrompt(alert, time.Now().UTC())
	r := &run{agent: a, window: window, startedAt: time.Now()}
	return r.loop(ctx, prompt)
}

// AnalyzeIncident investigates an incident with its correlated alerts.
func (a *Agent) AnalyzeIncident(ctx context.Context, inc *ent.Incident, alerts []*ent.Alert) (*Result, error) {
	prompt, window := formatIncidentPrompt(inc, alerts, time.Now().UTC())
	r := &run{agent: a, window: window, startedAt: time.Now()}
	return r.loop(ctx, prompt)
}

func (r *run) loop(ctx context.Context, initialPrompt string) (*Result, error) {
	a := r.agent
	messages := []llm.Message{llm.NewUserMessage(initialPrompt)}
	var report *models.ReportData

	for iteration := 1; iteration <= a.maxIterations; iteration++ {
		slog.Info("RCA agent iteration",
			"iteration", iteration, "max", a.maxIterations, "provider", a.llm.Name())

		resp, err := a.llm.Chat(ctx, messages, a.defs, a.systemPrompt)
		if err != nil {
			if isRateLimited(err) {
				slog.Info("Rate limited, backing off", "wait", rateLimitBackoff)
				select {
				case <-time.After(rateLimitBackoff):
					continue
				case <-ctx.Done():
					return &Result{Metadata: r.metadata()}, ctx.Err()
				}
			}
			return &Result{Metadata: r.metadata()},
				fmt.Errorf("llm error (%s): %w", a.llm.Name(), err)
		}
		r.tokens += resp.TokensUsed

		if resp.IsComplete() {
			if report != nil {
				return r.finalize(report), nil
			}
			// The model stopped without the report. Push it to call
			// generate_report before giving up.
			if r.toolCalls > 0 && iteration < a.maxIterations-1 {
				slog.Info("Model stopped without report, prompting to continue",
					"tool_calls", r.toolCalls)
				if resp.Content != "" {
					messages = append(messages, llm.Message{Role: llm.RoleAssistant, Content: resp.Content})
				}
				messages = append(messages, llm.NewUserMessage(forceReportPrompt(iteration)))
				continue
			}

			slog.Info("Agent completed analysis without generating report")
			if resp.Content != "" {
				messages = append(messages, llm.Message{Role: llm.RoleAssistant, Content: resp.Content})
			}
			if text := assistantText(messages); len(text) > minFallbackTextLen {
				return r.fallbackReport(text), nil
			}
			return &Result{Metadata: r.metadata()},
				errors.New("agent completed without generating a report")
		}

		if resp.HasToolCalls() {
			messages = append(messages, llm.NewAssistantMessage(resp))

			for _, call := range resp.ToolCalls {
				r.toolCalls++
				slog.Info("Executing tool", "tool", call.Name)
				args := normalizeToolInput(call.Name, call.Arguments, r.window)
				result := a.tools.Execute(ctx, call.Name, args)

				if call.Name == "generate_report" {
					if rep, ok := result["report"].(*models.ReportData); ok {
						report = rep
					}
				}
				messages = append(messages, llm.NewToolResultMessage(call, encodeToolResult(result)))
			}

			if report != nil {
				return r.finalize(report), nil
			}
			continue
		}

		// No tool calls but the provider did not signal completion either.
		slog.Warn("Unexpected agent state", "stop_reason", resp.StopReason)
		if resp.Content != "" {
			messages = append(messages, llm.Message{Role: llm.RoleAssistant, Content: resp.Content})
			messages = append(messages, llm.NewUserMessage(
				"Please continue your analysis and generate the report using the generate_report tool."))
		}
	}

	slog.Warn("Max iterations reached", "max", a.maxIterations)
	if report != nil {
		return r.finalize(report), nil
	}
	if text := assistantText(messages); len(text) > minFallbackTextLen {
		return r.fallbackReport(text), nil
	}
	return r.minimalReport(initialPrompt), nil
}

func (r *run) finalize(report *models.ReportData) *Result {
	return &Result{Report: report, Metadata: r.metadata()}
}

func (r *run) metadata() models.AnalysisMetadata {
	return models.AnalysisMetadata{
		Provider:        r.agent.llm.Name(),
		Model:           r.agent.llm.Model(),
		TokensUsed:      r.tokens,
		DurationSeconds: time.Since(r.startedAt).Seconds(),
		ToolCalls:       r.toolCalls,
	}
}

func forceReportPrompt(iteration int) string {
	level := "IMPORTANT"
	if iteration >= 5 {
		level = "CRITICAL"
	}
	return fmt.Sprintf("**%s**: You MUST call the `generate_report` tool NOW to complete this analysis.\n\n"+
		"Based on the evidence gathered (or lack thereof), call generate_report with:\n"+
		"- root_cause: Your best assessment of what caused the issue (even if uncertain)\n"+
		"- confidence_score: 0-100 (use lower scores if evidence is limited)\n"+
		"- summary: Brief description of the incident and findings\n"+
		"- remediation_steps: Array with at least one step having 'priority' and 'action' fields\n\n"+
		"If you couldn't find logs or metrics, that's OK - report what you know from the alert itself.\n"+
		"DO NOT respond with text. ONLY call the generate_report tool.", level)
}

func isRateLimited(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate") || strings.Contains(msg, "429")
}

// assistantText joins all plain assistant turns in the transcript.
func assistantText(messages []llm.Message) string {
	var parts []string
	for _, m := range messages {
		if m.Role == llm.RoleAssistant && m.Content != "" {
			parts = append(parts, m.Content)
		}
	}
	return strings.Join(parts, "\n")
}

func encodeToolResult(result map[string]any) string {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf(`{"success": false, "error": %q}`, err.Error())
	}
	return string(raw)
}

var rootCauseIndicators = []string{"root cause", "caused by", "issue is", "problem is", "due to"}
var actionIndicators = []string{"recommend", "suggest", "should", "need to", "must", "fix", "resolve", "restart", "scale"}

// fallbackReport salvages a report from the model's text analysis when it
// never called generate_report. Common with smaller local models.
func (r *run) fallbackReport(text string) *Result {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	var summaryLines []string
	for i, line := range lines {
		if i >= 5 {
			break
		}
		if strings.TrimSpace(line) != "" && len(line) > 20 {
			summaryLines = append(summaryLines, line)
		}
	}
	summary := "Analysis completed via text response"
	if len(summaryLines) > 0 {
		summary = strings.Join(summaryLines, " ")
		if len(summary) > 500 {
			summary = summary[:500]
		}
	}

	rootCause := "Unable to definitively determine root cause"
	for _, line := range lines {
		lower := strings.ToLower(line)
		if containsAny(lower, rootCauseIndicators...) {
			rootCause = strings.TrimSpace(line)
			break
		}
	}
	if len(rootCause) > 500 {
		rootCause = rootCause[:500]
	}

	var steps []models.RemediationStep
	for _, line := range lines {
		if len(steps) >= 3 {
			break
		}
		lower := strings.ToLower(line)
		if len(line) > 20 && containsAny(lower, actionIndicators...) {
			action := strings.TrimSpace(line)
			if len(action) > 200 {
				action = action[:200]
			}
			steps = append(steps, models.RemediationStep{
				Priority: "immediate",
				Action:   action,
				Risk:     "low",
			})
		}
	}
	if len(steps) == 0 {
		steps = append(steps, models.RemediationStep{
			Priority: "immediate",
			Action:   "Review the text analysis above for specific remediation steps",
			Risk:     "low",
		})
	}

	slog.Info("Created fallback report from text analysis", "remediation_steps", len(steps))

	meta := r.metadata()
	meta.Fallback = true
	warning := "This report was generated from text analysis as the model did not use the generate_report tool"
	meta.Warning = warning

	return &Result{
		Report: &models.ReportData{
			RootCause:        rootCause,
			ConfidenceScore:  30,
			Summary:          "[Fallback Report] " + summary,
			Timeline:         []models.TimelineEvent{},
			Evidence:         models.Evidence{Logs: []models.LogEvidence{}, Metrics: []models.MetricEvidence{}},
			RemediationSteps: steps,
		},
		Metadata: meta,
		Warning:  warning,
	}
}

var (
	alertnamePattern   = regexp.MustCompile(`"alertname":\s*"([^"]+)"`)
	servicePattern     = regexp.MustCompile(`"service":\s*"([^"]+)"`)
	devicePattern      = regexp.MustCompile(`"device":\s*"([^"]+)"`)
	descriptionPattern = regexp.MustCompile(`"description":\s*"([^"]+)"`)
	summaryPattern     = regexp.MustCompile(`"summary":\s*"([^"]+)"`)
)

// minimalReport is the last resort when the model produced neither a report
// nor usable text: it restates the alert itself and recommends manual
// investigation.
func (r *run) minimalReport(initialPrompt string) *Result {
	alertName := "Unknown"
	service := "Unknown"
	description := "Analysis incomplete"

	if m := alertnamePattern.FindStringSubmatch(initialPrompt); m != nil {
		alertName = m[1]
	}
	if m := servicePattern.FindStringSubmatch(initialPrompt); m != nil {
		service = m[1]
	} else if m := devicePattern.FindStringSubmatch(initialPrompt); m != nil {
		service = m[1]
	}
	if m := descriptionPattern.FindStringSubmatch(initialPrompt); m != nil {
		description = m[1]
	}
	if m := summaryPattern.FindStringSubmatch(initialPrompt); m != nil {
		description = m[1]
	}

	slog.Info("Created minimal report", "alertname", alertName, "service", service)

	meta := r.metadata()
	meta.Fallback = true
	warning := "This is a minimal report created because the agent exceeded max iterations"
	meta.Warning = warning

	return &Result{
		Report: &models.ReportData{
			RootCause:       fmt.Sprintf("Alert '%s' on service '%s' - %s", alertName, service, description),
			ConfidenceScore: 40,
			Summary: fmt.Sprintf("[Minimal Report] The RCA agent was unable to complete full analysis "+
				"within iteration limits. Alert '%s' fired for service '%s'. %s. "+
				"Manual investigation recommended.", alertName, service, description),
			Timeline: []models.TimelineEvent{{
				Timestamp: time.Now().UTC().Format(time.RFC3339),
				Event:     fmt.Sprintf("Alert %s triggered investigation", alertName),
				Source:    "alert",
			}},
			Evidence: models.Evidence{Logs: []models.LogEvidence{}, Metrics: []models.MetricEvidence{}},
			RemediationSteps: []models.RemediationStep{
				{
					Priority:    "immediate",
					Action:      fmt.Sprintf("Investigate %s on %s", alertName, service),
					Description: description,
					Risk:        "low",
				},
				{
					Priority:    "immediate",
					Action:      "Check service logs and metrics manually",
					Description: "The automated analysis could not gather sufficient evidence. Manual log review recommended.",
					Risk:        "low",
				},
			},
		},
		Metadata: meta,
		Warning:  warning,
	}
}

func llmTool(name, description string, schema map[string]any) llm.Tool {
	return llm.Tool{Name: name, Description: description, InputSchema: schema}
}
