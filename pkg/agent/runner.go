package agent

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/incident-ops/rcad/ent"
	"github.com/incident-ops/rcad/pkg/metrics"
	"github.com/incident-ops/rcad/pkg/models"
	"github.com/incident-ops/rcad/pkg/services"
)

// defaultSettleDelay gives correlation a moment to attach trailing alerts
// from the same webhook burst before analysis snapshots the incident.
const defaultSettleDelay = time.Second

// Runner executes analysis for incidents in the background, managing the
// incident status transitions and report lifecycle around each run.
type Runner struct {
	incidents   *services.IncidentService
	reports     *services.ReportService
	agent       *Agent
	settleDelay time.Duration
}

// NewRunner creates a Runner.
func NewRunner(incidents *services.IncidentService, reports *services.ReportService, agent *Agent) *Runner {
	if incidents == nil {
		panic("NewRunner: incidents must not be nil")
	}
	if reports == nil {
		panic("NewRunner: reports must not be nil")
	}
	if agent == nil {
		panic("NewRunner: agent must not be nil")
	}
	return &Runner{
		incidents:   incidents,
		reports:     reports,
		agent:       agent,
		settleDelay: defaultSettleDelay,
	}
}

// Start launches Run in a goroutine, detached from the caller's request
// context.
func (r *Runner) Start(incidentID string) {
	go func() {
		defer func() {
			if p := recover(); p != nil {
				slog.Error("RCA run panicked", "incident_id", incidentID, "panic", p)
				r.reopenIncident(context.Background(), incidentID)
			}
		}()
		if err := r.Run(context.Background(), incidentID); err != nil {
			slog.Error("RCA run failed", "incident_id", incidentID, "error", err)
		}
	}()
}

// Run analyzes one incident end to end: claim it, create the pending report,
// run the agent, and persist the outcome. Incidents that are no longer open
// are skipped; only one run claims an incident at a time.
func (r *Runner) Run(ctx context.Context, incidentID string) error {
	select {
	case <-time.After(r.settleDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	claimed, err := r.claimIncident(ctx, incidentID)
	if err != nil {
		return err
	}
	if !claimed {
		return nil
	}

	started := time.Now()
	err = r.analyze(ctx, incidentID)
	metrics.RCADuration.Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.RCARuns.WithLabelValues("failure").Inc()
		r.reopenIncident(ctx, incidentID)
		return err
	}
	metrics.RCARuns.WithLabelValues("success").Inc()
	return nil
}

// claimIncident moves an open incident to analyzing. Any other status means
// another run owns it or it no longer needs analysis.
func (r *Runner) claimIncident(ctx context.Context, incidentID string) (bool, error) {
	inc, err := r.incidents.Get(ctx, incidentID)
	if err != nil {
		return false, err
	}
	if models.IncidentStatus(inc.Status) != models.IncidentOpen {
		slog.Info("Skipping RCA, incident not open",
			"incident_id", incidentID, "status", inc.Status)
		return false, nil
	}
	if _, err := r.incidents.UpdateStatus(ctx, incidentID, models.IncidentAnalyzing); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *Runner) analyze(ctx context.Context, incidentID string) error {
	inc, err := r.incidents.GetWithAlerts(ctx, incidentID)
	if err != nil {
		return err
	}
	alerts := inc.Edges.Alerts

	report, err := r.pendingReport(ctx, incidentID)
	if err != nil {
		return err
	}

	var result *Result
	var runErr error
	if len(alerts) == 1 {
		result, runErr = r.agent.AnalyzeAlert(ctx, alerts[0])
	} else {
		result, runErr = r.agent.AnalyzeIncident(ctx, inc, alerts)
	}
	if result != nil {
		metrics.LLMTokens.WithLabelValues(result.Metadata.Provider).Add(float64(result.Metadata.TokensUsed))
	}

	if runErr != nil || result == nil || result.Report == nil {
		errMsg := "analysis produced no report"
		if runErr != nil {
			errMsg = runErr.Error()
		}
		var meta *models.AnalysisMetadata
		if result != nil {
			meta = &result.Metadata
		}
		if _, err := r.reports.MarkFailed(ctx, report.ID, errMsg, meta); err != nil {
			slog.Error("Failed to mark report failed", "report_id", report.ID, "error", err)
		}
		if runErr != nil {
			return runErr
		}
		return errors.New(errMsg)
	}

	if result.Warning != "" {
		slog.Warn("Analysis completed with degraded report",
			"incident_id", incidentID, "warning", result.Warning)
	}

	if _, err := r.reports.UpdateFromAnalysis(ctx, report.ID, result.Report, &result.Metadata); err != nil {
		return err
	}
	if _, err := r.incidents.MarkRCAComplete(ctx, incidentID); err != nil {
		return err
	}
	slog.Info("RCA completed",
		"incident_id", incidentID,
		"confidence", result.Report.ConfidenceScore,
		"tool_calls", result.Metadata.ToolCalls)
	return nil
}

// pendingReport creates the placeholder report, reusing the existing one on
// re-analysis.
func (r *Runner) pendingReport(ctx context.Context, incidentID string) (*ent.RCAReport, error) {
	report, err := r.reports.CreatePending(ctx, incidentID)
	if err == nil {
		return report, nil
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return r.reports.GetByIncident(ctx, incidentID)
	}
	return nil, err
}

// reopenIncident returns a failed run's incident to open so it can be
// retried.
func (r *Runner) reopenIncident(ctx context.Context, incidentID string) {
	if _, err := r.incidents.UpdateStatus(ctx, incidentID, models.IncidentOpen); err != nil &&
		!errors.Is(err, services.ErrInvalidTransition) {
		slog.Error("Failed to reopen incident after RCA failure",
			"incident_id", incidentID, "error", err)
	}
}
