// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/incident-ops/rcad/ent/alert"
	"github.com/incident-ops/rcad/ent/incident"
	"github.com/incident-ops/rcad/ent/predicate"
	"github.com/incident-ops/rcad/ent/rcareport"
)

// IncidentUpdate is the builder for updating Incident entities.
type IncidentUpdate struct {
	config
	hooks    []Hook
	mutation *IncidentMutation
}

// Where appends a list predicates to the IncidentUpdate builder.
func (_u *IncidentUpdate) Where(ps ...predicate.Incident) *IncidentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *IncidentUpdate) SetTitle(v string) *IncidentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableTitle(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *IncidentUpdate) SetStatus(v incident.Status) *IncidentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableStatus(v *incident.Status) *IncidentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *IncidentUpdate) SetSeverity(v incident.Severity) *IncidentUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableSeverity(v *incident.Severity) *IncidentUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetPrimaryAlertID sets the "primary_alert_id" field.
func (_u *IncidentUpdate) SetPrimaryAlertID(v string) *IncidentUpdate {
	_u.mutation.SetPrimaryAlertID(v)
	return _u
}

// SetNillablePrimaryAlertID sets the "primary_alert_id" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillablePrimaryAlertID(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetPrimaryAlertID(*v)
	}
	return _u
}

// ClearPrimaryAlertID clears the value of the "primary_alert_id" field.
func (_u *IncidentUpdate) ClearPrimaryAlertID() *IncidentUpdate {
	_u.mutation.ClearPrimaryAlertID()
	return _u
}

// SetCorrelationReason sets the "correlation_reason" field.
func (_u *IncidentUpdate) SetCorrelationReason(v string) *IncidentUpdate {
	_u.mutation.SetCorrelationReason(v)
	return _u
}

// SetNillableCorrelationReason sets the "correlation_reason" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableCorrelationReason(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetCorrelationReason(*v)
	}
	return _u
}

// ClearCorrelationReason clears the value of the "correlation_reason" field.
func (_u *IncidentUpdate) ClearCorrelationReason() *IncidentUpdate {
	_u.mutation.ClearCorrelationReason()
	return _u
}

// SetAffectedServices sets the "affected_services" field.
func (_u *IncidentUpdate) SetAffectedServices(v []string) *IncidentUpdate {
	_u.mutation.SetAffectedServices(v)
	return _u
}

// AppendAffectedServices appends value to the "affected_services" field.
func (_u *IncidentUpdate) AppendAffectedServices(v []string) *IncidentUpdate {
	_u.mutation.AppendAffectedServices(v)
	return _u
}

// SetAffectedLabels sets the "affected_labels" field.
func (_u *IncidentUpdate) SetAffectedLabels(v map[string]string) *IncidentUpdate {
	_u.mutation.SetAffectedLabels(v)
	return _u
}

// ClearAffectedLabels clears the value of the "affected_labels" field.
func (_u *IncidentUpdate) ClearAffectedLabels() *IncidentUpdate {
	_u.mutation.ClearAffectedLabels()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *IncidentUpdate) SetStartedAt(v time.Time) *IncidentUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableStartedAt(v *time.Time) *IncidentUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *IncidentUpdate) SetResolvedAt(v time.Time) *IncidentUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableResolvedAt(v *time.Time) *IncidentUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *IncidentUpdate) ClearResolvedAt() *IncidentUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetRcaCompletedAt sets the "rca_completed_at" field.
func (_u *IncidentUpdate) SetRcaCompletedAt(v time.Time) *IncidentUpdate {
	_u.mutation.SetRcaCompletedAt(v)
	return _u
}

// SetNillableRcaCompletedAt sets the "rca_completed_at" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableRcaCompletedAt(v *time.Time) *IncidentUpdate {
	if v != nil {
		_u.SetRcaCompletedAt(*v)
	}
	return _u
}

// ClearRcaCompletedAt clears the value of the "rca_completed_at" field.
func (_u *IncidentUpdate) ClearRcaCompletedAt() *IncidentUpdate {
	_u.mutation.ClearRcaCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IncidentUpdate) SetUpdatedAt(v time.Time) *IncidentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by IDs.
func (_u *IncidentUpdate) AddAlertIDs(ids ...string) *IncidentUpdate {
	_u.mutation.AddAlertIDs(ids...)
	return _u
}

// AddAlerts adds the "alerts" edges to the Alert entity.
func (_u *IncidentUpdate) AddAlerts(v ...*Alert) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertIDs(ids...)
}

// SetRcaReportID sets the "rca_report" edge to the RCAReport entity by ID.
func (_u *IncidentUpdate) SetRcaReportID(id string) *IncidentUpdate {
	_u.mutation.SetRcaReportID(id)
	return _u
}

// SetNillableRcaReportID sets the "rca_report" edge to the RCAReport entity by ID if the given value is not nil.
func (_u *IncidentUpdate) SetNillableRcaReportID(id *string) *IncidentUpdate {
	if id != nil {
		_u = _u.SetRcaReportID(*id)
	}
	return _u
}

// SetRcaReport sets the "rca_report" edge to the RCAReport entity.
func (_u *IncidentUpdate) SetRcaReport(v *RCAReport) *IncidentUpdate {
	return _u.SetRcaReportID(v.ID)
}

// Mutation returns the IncidentMutation object of the builder.
func (_u *IncidentUpdate) Mutation() *IncidentMutation {
	return _u.mutation
}

// ClearAlerts clears all "alerts" edges to the Alert entity.
func (_u *IncidentUpdate) ClearAlerts() *IncidentUpdate {
	_u.mutation.ClearAlerts()
	return _u
}

// RemoveAlertIDs removes the "alerts" edge to Alert entities by IDs.
func (_u *IncidentUpdate) RemoveAlertIDs(ids ...string) *IncidentUpdate {
	_u.mutation.RemoveAlertIDs(ids...)
	return _u
}

// RemoveAlerts removes "alerts" edges to Alert entities.
func (_u *IncidentUpdate) RemoveAlerts(v ...*Alert) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertIDs(ids...)
}

// ClearRcaReport clears the "rca_report" edge to the RCAReport entity.
func (_u *IncidentUpdate) ClearRcaReport() *IncidentUpdate {
	_u.mutation.ClearRcaReport()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IncidentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IncidentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IncidentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := incident.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := incident.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Incident.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := incident.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Incident.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := incident.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Incident.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *IncidentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incident.Table, incident.Columns, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(incident.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(incident.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PrimaryAlertID(); ok {
		_spec.SetField(incident.FieldPrimaryAlertID, field.TypeString, value)
	}
	if _u.mutation.PrimaryAlertIDCleared() {
		_spec.ClearField(incident.FieldPrimaryAlertID, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationReason(); ok {
		_spec.SetField(incident.FieldCorrelationReason, field.TypeString, value)
	}
	if _u.mutation.CorrelationReasonCleared() {
		_spec.ClearField(incident.FieldCorrelationReason, field.TypeString)
	}
	if value, ok := _u.mutation.AffectedServices(); ok {
		_spec.SetField(incident.FieldAffectedServices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAffectedServices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, incident.FieldAffectedServices, value)
		})
	}
	if value, ok := _u.mutation.AffectedLabels(); ok {
		_spec.SetField(incident.FieldAffectedLabels, field.TypeJSON, value)
	}
	if _u.mutation.AffectedLabelsCleared() {
		_spec.ClearField(incident.FieldAffectedLabels, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(incident.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(incident.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(incident.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RcaCompletedAt(); ok {
		_spec.SetField(incident.FieldRcaCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.RcaCompletedAtCleared() {
		_spec.ClearField(incident.FieldRcaCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(incident.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.AlertsTable,
			Columns: []string{incident.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertsIDs(); len(nodes) > 0 && !_u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.AlertsTable,
			Columns: []string{incident.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.AlertsTable,
			Columns: []string{incident.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RcaReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   incident.RcaReportTable,
			Columns: []string{incident.RcaReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rcareport.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RcaReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   incident.RcaReportTable,
			Columns: []string{incident.RcaReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rcareport.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IncidentUpdateOne is the builder for updating a single Incident entity.
type IncidentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IncidentMutation
}

// SetTitle sets the "title" field.
func (_u *IncidentUpdateOne) SetTitle(v string) *IncidentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableTitle(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *IncidentUpdateOne) SetStatus(v incident.Status) *IncidentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableStatus(v *incident.Status) *IncidentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *IncidentUpdateOne) SetSeverity(v incident.Severity) *IncidentUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableSeverity(v *incident.Severity) *IncidentUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetPrimaryAlertID sets the "primary_alert_id" field.
func (_u *IncidentUpdateOne) SetPrimaryAlertID(v string) *IncidentUpdateOne {
	_u.mutation.SetPrimaryAlertID(v)
	return _u
}

// SetNillablePrimaryAlertID sets the "primary_alert_id" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillablePrimaryAlertID(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetPrimaryAlertID(*v)
	}
	return _u
}

// ClearPrimaryAlertID clears the value of the "primary_alert_id" field.
func (_u *IncidentUpdateOne) ClearPrimaryAlertID() *IncidentUpdateOne {
	_u.mutation.ClearPrimaryAlertID()
	return _u
}

// SetCorrelationReason sets the "correlation_reason" field.
func (_u *IncidentUpdateOne) SetCorrelationReason(v string) *IncidentUpdateOne {
	_u.mutation.SetCorrelationReason(v)
	return _u
}

// SetNillableCorrelationReason sets the "correlation_reason" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableCorrelationReason(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetCorrelationReason(*v)
	}
	return _u
}

// ClearCorrelationReason clears the value of the "correlation_reason" field.
func (_u *IncidentUpdateOne) ClearCorrelationReason() *IncidentUpdateOne {
	_u.mutation.ClearCorrelationReason()
	return _u
}

// SetAffectedServices sets the "affected_services" field.
func (_u *IncidentUpdateOne) SetAffectedServices(v []string) *IncidentUpdateOne {
	_u.mutation.SetAffectedServices(v)
	return _u
}

// AppendAffectedServices appends value to the "affected_services" field.
func (_u *IncidentUpdateOne) AppendAffectedServices(v []string) *IncidentUpdateOne {
	_u.mutation.AppendAffectedServices(v)
	return _u
}

// SetAffectedLabels sets the "affected_labels" field.
func (_u *IncidentUpdateOne) SetAffectedLabels(v map[string]string) *IncidentUpdateOne {
	_u.mutation.SetAffectedLabels(v)
	return _u
}

// ClearAffectedLabels clears the value of the "affected_labels" field.
func (_u *IncidentUpdateOne) ClearAffectedLabels() *IncidentUpdateOne {
	_u.mutation.ClearAffectedLabels()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *IncidentUpdateOne) SetStartedAt(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableStartedAt(v *time.Time) *IncidentUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *IncidentUpdateOne) SetResolvedAt(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableResolvedAt(v *time.Time) *IncidentUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *IncidentUpdateOne) ClearResolvedAt() *IncidentUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetRcaCompletedAt sets the "rca_completed_at" field.
func (_u *IncidentUpdateOne) SetRcaCompletedAt(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetRcaCompletedAt(v)
	return _u
}

// SetNillableRcaCompletedAt sets the "rca_completed_at" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableRcaCompletedAt(v *time.Time) *IncidentUpdateOne {
	if v != nil {
		_u.SetRcaCompletedAt(*v)
	}
	return _u
}

// ClearRcaCompletedAt clears the value of the "rca_completed_at" field.
func (_u *IncidentUpdateOne) ClearRcaCompletedAt() *IncidentUpdateOne {
	_u.mutation.ClearRcaCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IncidentUpdateOne) SetUpdatedAt(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by IDs.
func (_u *IncidentUpdateOne) AddAlertIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.AddAlertIDs(ids...)
	return _u
}

// AddAlerts adds the "alerts" edges to the Alert entity.
func (_u *IncidentUpdateOne) AddAlerts(v ...*Alert) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertIDs(ids...)
}

// SetRcaReportID sets the "rca_report" edge to the RCAReport entity by ID.
func (_u *IncidentUpdateOne) SetRcaReportID(id string) *IncidentUpdateOne {
	_u.mutation.SetRcaReportID(id)
	return _u
}

// SetNillableRcaReportID sets the "rca_report" edge to the RCAReport entity by ID if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableRcaReportID(id *string) *IncidentUpdateOne {
	if id != nil {
		_u = _u.SetRcaReportID(*id)
	}
	return _u
}

// SetRcaReport sets the "rca_report" edge to the RCAReport entity.
func (_u *IncidentUpdateOne) SetRcaReport(v *RCAReport) *IncidentUpdateOne {
	return _u.SetRcaReportID(v.ID)
}

// Mutation returns the IncidentMutation object of the builder.
func (_u *IncidentUpdateOne) Mutation() *IncidentMutation {
	return _u.mutation
}

// ClearAlerts clears all "alerts" edges to the Alert entity.
func (_u *IncidentUpdateOne) ClearAlerts() *IncidentUpdateOne {
	_u.mutation.ClearAlerts()
	return _u
}

// RemoveAlertIDs removes the "alerts" edge to Alert entities by IDs.
func (_u *IncidentUpdateOne) RemoveAlertIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.RemoveAlertIDs(ids...)
	return _u
}

// RemoveAlerts removes "alerts" edges to Alert entities.
func (_u *IncidentUpdateOne) RemoveAlerts(v ...*Alert) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertIDs(ids...)
}

// ClearRcaReport clears the "rca_report" edge to the RCAReport entity.
func (_u *IncidentUpdateOne) ClearRcaReport() *IncidentUpdateOne {
	_u.mutation.ClearRcaReport()
	return _u
}

// Where appends a list predicates to the IncidentUpdate builder.
func (_u *IncidentUpdateOne) Where(ps ...predicate.Incident) *IncidentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IncidentUpdateOne) Select(field string, fields ...string) *IncidentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Incident entity.
func (_u *IncidentUpdateOne) Save(ctx context.Context) (*Incident, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentUpdateOne) SaveX(ctx context.Context) *Incident {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IncidentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IncidentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := incident.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := incident.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Incident.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := incident.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Incident.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := incident.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Incident.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *IncidentUpdateOne) sqlSave(ctx context.Context) (_node *Incident, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incident.Table, incident.Columns, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Incident.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, incident.FieldID)
		for _, f := range fields {
			if !incident.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != incident.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(incident.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(incident.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PrimaryAlertID(); ok {
		_spec.SetField(incident.FieldPrimaryAlertID, field.TypeString, value)
	}
	if _u.mutation.PrimaryAlertIDCleared() {
		_spec.ClearField(incident.FieldPrimaryAlertID, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationReason(); ok {
		_spec.SetField(incident.FieldCorrelationReason, field.TypeString, value)
	}
	if _u.mutation.CorrelationReasonCleared() {
		_spec.ClearField(incident.FieldCorrelationReason, field.TypeString)
	}
	if value, ok := _u.mutation.AffectedServices(); ok {
		_spec.SetField(incident.FieldAffectedServices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAffectedServices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, incident.FieldAffectedServices, value)
		})
	}
	if value, ok := _u.mutation.AffectedLabels(); ok {
		_spec.SetField(incident.FieldAffectedLabels, field.TypeJSON, value)
	}
	if _u.mutation.AffectedLabelsCleared() {
		_spec.ClearField(incident.FieldAffectedLabels, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(incident.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(incident.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(incident.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RcaCompletedAt(); ok {
		_spec.SetField(incident.FieldRcaCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.RcaCompletedAtCleared() {
		_spec.ClearField(incident.FieldRcaCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(incident.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.AlertsTable,
			Columns: []string{incident.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertsIDs(); len(nodes) > 0 && !_u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.AlertsTable,
			Columns: []string{incident.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.AlertsTable,
			Columns: []string{incident.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RcaReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   incident.RcaReportTable,
			Columns: []string{incident.RcaReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rcareport.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RcaReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   incident.RcaReportTable,
			Columns: []string{incident.RcaReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rcareport.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Incident{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
