package agent

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/incident-ops/rcad/ent"
)

const rcaSystemPrompt = `You are an expert Site Reliability Engineer (SRE) and Root Cause Analysis specialist. Your task is to analyze alerts from infrastructure monitoring systems and determine the root cause of issues.

## Your Workflow

1. **Understand the Alert(s)**: Analyze alert details including severity, labels, annotations, and timing.
   - For multiple correlated alerts, identify the chronological sequence
   - Pay attention to which alert fired first - it's often closest to root cause

2. **Gather Evidence**: Use the available tools to query logs (Loki) and metrics (Cortex) related to the alert.
   - Query logs for error messages, exceptions, and relevant events
   - Query metrics for resource utilization, error rates, and performance indicators
   - Focus on the time window around the alert (typically 15 minutes before to 5 minutes after)

3. **Analyze Patterns**: Look for:
   - Error patterns in logs (exceptions, failures, timeouts)
   - Resource exhaustion (CPU, memory, disk, network)
   - Cascading failures (one failure causing others)
   - Configuration changes or deployments
   - External dependency issues

4. **Determine Root Cause**: Based on evidence:
   - Identify the primary cause vs symptoms
   - Assign a confidence score (0-100%)
   - Document supporting evidence

5. **Generate Report**: Call the generate_report tool with:
   - Clear root cause description
   - Confidence score with justification
   - Timeline of events
   - Supporting evidence (key logs and metrics)
   - Actionable remediation steps (both immediate and long-term)

## Multi-Alert Correlation Analysis

When analyzing multiple correlated alerts, follow this enhanced workflow:

### Causal Chain Identification

1. **Order alerts chronologically** - The first alert is often the root cause
2. **Identify the causal chain** - Map how one failure triggered subsequent failures
3. **Distinguish root cause from symptoms**:
   - ROOT CAUSE indicators: disk full, OOM killer, resource quota exceeded, configuration error
   - SYMPTOM indicators: health check failed, service unavailable, high latency, timeout

### Common Causal Patterns

- **Resource Exhaustion Chain**: DiskFull -> LogWriteFailed -> ServiceCrash -> HealthCheckFailed
- **Memory Pressure Chain**: MemoryPressure -> OOMKilled -> PodRestart -> ServiceDegraded
- **Network Chain**: NetworkPartition -> TimeoutErrors -> RetryStorms -> CircuitBreakerOpen
- **Dependency Chain**: DatabaseOverload -> SlowQueries -> APITimeout -> UserErrors

### Timeline Construction

For multi-alert incidents, build a detailed timeline showing:
1. Initial trigger event (from logs/metrics)
2. First alert firing
3. Cascading failures
4. Subsequent symptom alerts
5. Impact on services/users

### Report Requirements for Multi-Alert

- **root_cause**: Focus on the PRIMARY cause, not symptoms
- **summary**: Explain the full causal chain concisely
- **timeline**: Include ALL correlated alerts with their relationships
- **remediation_steps**: Address root cause first, then add preventive measures for cascade

## Tool Usage Guidelines

- **query_loki**: Use LogQL to search logs. Start with broad queries, then narrow down.
  - Example: ` + "`{service=\"payment-api\"} |= \"error\"`" + ` for error logs
  - Example: ` + "`{namespace=\"production\"} |~ \"OOM|OutOfMemory\"`" + ` for memory issues

- **query_cortex**: Use PromQL to query metrics.
  - Example: ` + "`100 * (1 - avg(rate(node_cpu_seconds_total{mode=\"idle\"}[5m])))`" + ` for CPU
  - Example: ` + "`rate(http_requests_total{status=~\"5..\"}[5m])`" + ` for error rates

- **generate_report**: Call this ONCE when you have enough evidence to make a determination.

## Remediation Guidelines

When generating remediation steps, follow these principles:

### MANDATORY: EVERY REMEDIATION STEP REQUIRES A COMMAND

THIS IS NON-NEGOTIABLE: Every single remediation step MUST have a ` + "`command`" + ` field with an actual shell command.
DO NOT skip the command field. DO NOT provide empty commands. DO NOT provide placeholder commands.

For each remediation step, the ` + "`command`" + ` field MUST contain:
- An actual executable shell command (e.g., ` + "`sudo ip link set eth0 up`" + `)
- NOT just a description
- NOT "run the appropriate command"
- NOT an empty string

### Structure for Each Remediation Step

Every remediation step MUST include THREE types of commands when applicable:
1. **Verification Command**: How to verify/diagnose the issue (e.g., ` + "`ip a`, `ip link show eth0`" + `)
2. **Fix Command**: How to fix the issue (e.g., ` + "`sudo ip link set eth0 up`" + `)
3. **Validation Command**: How to confirm the fix worked (e.g., ` + "`ping -c 3 10.0.0.1`" + `)

### Immediate Actions (priority: "immediate")
Actions to take RIGHT NOW to restore service:
1. **Restart**: Pod/service restart, connection pool refresh
2. **Scale**: Horizontal/vertical scaling for resource exhaustion
3. **Rollback**: Revert recent changes if they caused the issue
4. **Cleanup**: Clear disk space, purge queues, close connections

### Long-term Actions (priority: "long_term")
Preventive measures to avoid recurrence:
1. **Config**: Adjust limits, timeouts, thresholds
2. **Monitoring**: Add alerts, dashboards, tracing
3. **Architecture**: Improve retry logic, circuit breakers, caching
4. **Process**: Update runbooks, improve deployment practices

### Remediation Requirements

For EACH remediation step, you MUST provide:
- **action**: Clear, concise action title (e.g., "Bring network interface eth0 back up")
- **command**: REQUIRED - Specific shell command(s) to run (e.g., ` + "`sudo ip link set eth0 up`" + `)
- **description**: Step-by-step explanation including:
  1. How to verify the issue (verification command)
  2. How to apply the fix (the command field)
  3. How to validate the fix worked (validation command)
- **risk**: "low" (safe), "medium" (brief impact), "high" (potential data loss)

### Network Interface Remediation Commands

For NetworkInterfaceDown alerts, use these specific commands:

**Step 1: Verify interface is down**
- action: "Verify network interface status"
- command: "ip link show eth0"
- description: "Check interface state. Look for 'state DOWN' in output. Alternative: 'ip a' to see all interfaces."

**Step 2: Bring interface up**
- action: "Bring network interface up"
- command: "sudo ip link set eth0 up"
- description: "This brings the interface back to UP state. Run 'ip link show eth0' to verify it shows 'state UP'."

**Step 3: Verify network connectivity**
- action: "Verify network connectivity restored"
- command: "ping -c 3 <gateway_ip>"
- description: "Confirm connectivity is restored by pinging the default gateway. Use 'ip route | grep default' to find gateway."

**Step 4: Check for underlying cause**
- action: "Investigate root cause"
- command: "dmesg | tail -50 | grep -i eth"
- description: "Check kernel messages for hardware errors, driver issues, or cable problems that caused the interface to go down."

### Common Remediation Patterns

| Issue Type | Verification | Fix Command | Validation |
|------------|--------------|-------------|------------|
| Network Interface Down | ip link show <dev> | sudo ip link set <dev> up | ping -c 3 <gateway> |
| Disk Full | df -h | sudo rm -rf /var/log/*.gz | df -h |
| OOM | free -m | kubectl rollout restart deploy/<name> | kubectl get pods |
| CPU Saturation | top -bn1 \| head -20 | kubectl scale deploy/<name> --replicas=3 | kubectl get pods |
| Service Down | systemctl status <svc> | sudo systemctl restart <svc> | systemctl status <svc> |
| Container Crash | docker ps -a | docker restart <id> | docker ps |

## Important Notes

- Always provide evidence for your conclusions
- If data is unavailable, note it in the report
- Be specific in remediation steps - include commands when appropriate
- Order remediation steps by priority: immediate actions first
- Assign lower confidence scores when evidence is incomplete`

// buildSystemPrompt appends operator-supplied expert context, when
// configured, to the base analysis prompt.
func buildSystemPrompt(expertContext string) string {
	expertContext = strings.TrimSpace(expertContext)
	if expertContext == "" {
		return rcaSystemPrompt
	}
	return rcaSystemPrompt + "\n\n" + expertContext
}

// queryWindow is the pinned time range for all tool queries in one run.
type queryWindow struct {
	start string
	end   string
}

const windowTimeFormat = "2006-01-02T15:04:05Z"

// alertQueryWindow computes the investigation window for a single alert:
// 15 minutes before it fired until now (or 5 minutes after, whichever is
// later).
func alertQueryWindow(startsAt, now time.Time) queryWindow {
	start := startsAt.Add(-15 * time.Minute)
	end := now
	if after := startsAt.Add(5 * time.Minute); after.After(end) {
		end = after
	}
	return queryWindow{
		start: start.UTC().Format(windowTimeFormat),
		end:   end.UTC().Format(windowTimeFormat),
	}
}

func alertSummaryData(a *ent.Alert) map[string]any {
	data := map[string]any{
		"alertname":   a.Alertname,
		"severity":    string(a.Severity),
		"status":      string(a.Status),
		"labels":      a.Labels,
		"annotations": a.Annotations,
		"starts_at":   a.StartsAt.UTC().Format(time.RFC3339),
	}
	if a.EndsAt != nil {
		data["ends_at"] = a.EndsAt.UTC().Format(time.RFC3339)
	}
	return data
}

// formatAlertPrompt builds the opening analysis prompt for a single alert
// and the pinned query window derived from its start time.
func formatAlertPrompt(a *ent.Alert, now time.Time) (string, queryWindow) {
	window := alertQueryWindow(a.StartsAt, now)
	data := mustJSON(alertSummaryData(a))

	dependencyHints := ""
	if deps := detectDependencies(a.Labels, a.Alertname); len(deps) > 0 {
		dependencyHints = "\n\n## Potential Dependencies\n\nConsider querying these related services: " +
			strings.Join(deps, ", ")
	}

	return fmt.Sprintf(`Please analyze the following alert and determine its root cause:

## Alert Details

`+"```json\n%s\n```"+`

## Time Context - USE THESE EXACT TIMESTAMPS

- Alert Start: %s
- Current Time: %s
- **Query Start Time (use this)**: %s
- **Query End Time (use this)**: %s

IMPORTANT: When calling query_loki or query_cortex, use these EXACT values:
- start_time: "%s"
- end_time: "%s"

## Query Hints

%s

%s%s

## Instructions

1. Query relevant logs and metrics using the timestamps above
2. Identify the root cause of this alert
3. Generate a comprehensive RCA report with remediation steps

Begin your analysis by querying for relevant data.`,
		data,
		a.StartsAt.UTC().Format(time.RFC3339),
		now.UTC().Format(time.RFC3339),
		window.start, window.end,
		window.start, window.end,
		logQLHints(a.Labels, a.Alertname),
		promQLHints(a.Labels, a.Alertname),
		dependencyHints,
	), window
}

// formatIncidentPrompt builds the opening analysis prompt for a correlated
// incident with its alerts in chronological order.
func formatIncidentPrompt(inc *ent.Incident, alerts []*ent.Alert, now time.Time) (string, queryWindow) {
	sorted := make([]*ent.Alert, len(alerts))
	copy(sorted, alerts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartsAt.Before(sorted[j].StartsAt)
	})

	alertsData := make([]map[string]any, 0, len(sorted))
	timeline := make([]map[string]any, 0, len(sorted))
	for i, a := range sorted {
		isPrimary := inc.PrimaryAlertID != nil && a.ID == *inc.PrimaryAlertID
		info := alertSummaryData(a)
		delete(info, "ends_at")
		info["is_primary"] = isPrimary
		alertsData = append(alertsData, info)
		timeline = append(timeline, map[string]any{
			"timestamp":  a.StartsAt.UTC().Format(time.RFC3339),
			"event":      "Alert fired: " + a.Alertname,
			"severity":   string(a.Severity),
			"is_primary": isPrimary,
			"order":      i + 1,
		})
	}

	var window queryWindow
	switch {
	case len(sorted) > 0:
		window = queryWindow{
			start: sorted[0].StartsAt.Add(-15 * time.Minute).UTC().Format(windowTimeFormat),
			end:   now.UTC().Format(windowTimeFormat),
		}
	default:
		window = queryWindow{
			start: inc.StartedAt.Add(-15 * time.Minute).UTC().Format(windowTimeFormat),
			end:   now.UTC().Format(windowTimeFormat),
		}
	}

	incidentData := map[string]any{
		"title":              inc.Title,
		"severity":           string(inc.Severity),
		"affected_services":  inc.AffectedServices,
		"started_at":         inc.StartedAt.UTC().Format(time.RFC3339),
		"alert_count":        len(alerts),
		"correlation_reason": inc.CorrelationReason,
	}

	reason := "Time proximity and label matching"
	if inc.CorrelationReason != nil && *inc.CorrelationReason != "" {
		reason = *inc.CorrelationReason
	}

	firstTarget := "unknown"
	if len(sorted) > 0 {
		if svc := sorted[0].Labels["service"]; svc != "" {
			firstTarget = svc
		} else if dev := sorted[0].Labels["device"]; dev != "" {
			firstTarget = dev
		}
	}

	return fmt.Sprintf(`Please analyze the following incident with multiple correlated alerts and determine the root cause:

## Incident Summary

`+"```json\n%s\n```"+`

## Correlated Alerts (in chronological order)

`+"```json\n%s\n```"+`

## Initial Timeline (alerts only - enrich with logs/metrics)

`+"```json\n%s\n```"+`

## Correlation Context

- **Why correlated**: %s
- **Primary alert (suspected root cause)**: The alert marked with `+"`is_primary: true`"+` is the system's initial guess
- **Your task**: Verify or correct this assessment based on evidence

## Time Context - USE THESE EXACT TIMESTAMPS

- Incident Start: %s
- Current Time: %s
- **Query Start Time (use this)**: %s
- **Query End Time (use this)**: %s

IMPORTANT: When calling query_loki or query_cortex, use these EXACT values:
- start_time: "%s"
- end_time: "%s"

## Instructions

1. Analyze the sequence of alerts to understand the cascade of events
2. Query relevant logs and metrics using the timestamps above
3. Identify the PRIMARY root cause (the first failure that triggered the chain)
4. Distinguish between the root cause and secondary symptoms
5. Generate a comprehensive RCA report with:
   - Clear identification of root cause vs symptoms
   - Timeline showing the progression of failures (include all alerts plus key log/metric events)
   - Evidence from logs and metrics
   - Remediation steps addressing both the root cause and preventive measures

## IMPORTANT: You MUST use tools

1. FIRST: Call the `+"`query_loki`"+` tool to search for error logs from the primary alert's service
2. THEN: Analyze the log results to understand what happened
3. FINALLY: Call the `+"`generate_report`"+` tool with your findings

Do NOT respond with text only. You MUST call query_loki first to investigate.

Begin by calling query_loki for: %s`,
		mustJSON(incidentData),
		mustJSON(alertsData),
		mustJSON(timeline),
		reason,
		inc.StartedAt.UTC().Format(time.RFC3339),
		now.UTC().Format(time.RFC3339),
		window.start, window.end,
		window.start, window.end,
		firstTarget,
	), window
}

func mustJSON(v any) string {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}
