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
	"github.com/incident-ops/rcad/ent/predicate"
	"github.com/incident-ops/rcad/ent/rcareport"
)

// RCAReportUpdate is the builder for updating RCAReport entities.
type RCAReportUpdate struct {
	config
	hooks    []Hook
	mutation *RCAReportMutation
}

// Where appends a list predicates to the RCAReportUpdate builder.
func (_u *RCAReportUpdate) Where(ps ...predicate.RCAReport) *RCAReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRootCause sets the "root_cause" field.
func (_u *RCAReportUpdate) SetRootCause(v string) *RCAReportUpdate {
	_u.mutation.SetRootCause(v)
	return _u
}

// SetNillableRootCause sets the "root_cause" field if the given value is not nil.
func (_u *RCAReportUpdate) SetNillableRootCause(v *string) *RCAReportUpdate {
	if v != nil {
		_u.SetRootCause(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *RCAReportUpdate) SetConfidenceScore(v int) *RCAReportUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *RCAReportUpdate) SetNillableConfidenceScore(v *int) *RCAReportUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *RCAReportUpdate) AddConfidenceScore(v int) *RCAReportUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *RCAReportUpdate) SetSummary(v string) *RCAReportUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *RCAReportUpdate) SetNillableSummary(v *string) *RCAReportUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetTimeline sets the "timeline" field.
func (_u *RCAReportUpdate) SetTimeline(v []map[string]interface{}) *RCAReportUpdate {
	_u.mutation.SetTimeline(v)
	return _u
}

// AppendTimeline appends value to the "timeline" field.
func (_u *RCAReportUpdate) AppendTimeline(v []map[string]interface{}) *RCAReportUpdate {
	_u.mutation.AppendTimeline(v)
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *RCAReportUpdate) SetEvidence(v map[string]interface{}) *RCAReportUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// SetRemediationSteps sets the "remediation_steps" field.
func (_u *RCAReportUpdate) SetRemediationSteps(v []map[string]interface{}) *RCAReportUpdate {
	_u.mutation.SetRemediationSteps(v)
	return _u
}

// AppendRemediationSteps appends value to the "remediation_steps" field.
func (_u *RCAReportUpdate) AppendRemediationSteps(v []map[string]interface{}) *RCAReportUpdate {
	_u.mutation.AppendRemediationSteps(v)
	return _u
}

// SetAnalysisMetadata sets the "analysis_metadata" field.
func (_u *RCAReportUpdate) SetAnalysisMetadata(v map[string]interface{}) *RCAReportUpdate {
	_u.mutation.SetAnalysisMetadata(v)
	return _u
}

// ClearAnalysisMetadata clears the value of the "analysis_metadata" field.
func (_u *RCAReportUpdate) ClearAnalysisMetadata() *RCAReportUpdate {
	_u.mutation.ClearAnalysisMetadata()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RCAReportUpdate) SetStatus(v rcareport.Status) *RCAReportUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RCAReportUpdate) SetNillableStatus(v *rcareport.Status) *RCAReportUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RCAReportUpdate) SetErrorMessage(v string) *RCAReportUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RCAReportUpdate) SetNillableErrorMessage(v *string) *RCAReportUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RCAReportUpdate) ClearErrorMessage() *RCAReportUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RCAReportUpdate) SetStartedAt(v time.Time) *RCAReportUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RCAReportUpdate) SetNillableStartedAt(v *time.Time) *RCAReportUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RCAReportUpdate) SetCompletedAt(v time.Time) *RCAReportUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RCAReportUpdate) SetNillableCompletedAt(v *time.Time) *RCAReportUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RCAReportUpdate) ClearCompletedAt() *RCAReportUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RCAReportUpdate) SetUpdatedAt(v time.Time) *RCAReportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RCAReportMutation object of the builder.
func (_u *RCAReportUpdate) Mutation() *RCAReportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RCAReportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RCAReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RCAReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RCAReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RCAReportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := rcareport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RCAReportUpdate) check() error {
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := rcareport.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "RCAReport.confidence_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := rcareport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RCAReport.status": %w`, err)}
		}
	}
	if _u.mutation.IncidentCleared() && len(_u.mutation.IncidentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RCAReport.incident"`)
	}
	return nil
}

func (_u *RCAReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rcareport.Table, rcareport.Columns, sqlgraph.NewFieldSpec(rcareport.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RootCause(); ok {
		_spec.SetField(rcareport.FieldRootCause, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(rcareport.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(rcareport.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(rcareport.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timeline(); ok {
		_spec.SetField(rcareport.FieldTimeline, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTimeline(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rcareport.FieldTimeline, value)
		})
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(rcareport.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RemediationSteps(); ok {
		_spec.SetField(rcareport.FieldRemediationSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRemediationSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rcareport.FieldRemediationSteps, value)
		})
	}
	if value, ok := _u.mutation.AnalysisMetadata(); ok {
		_spec.SetField(rcareport.FieldAnalysisMetadata, field.TypeJSON, value)
	}
	if _u.mutation.AnalysisMetadataCleared() {
		_spec.ClearField(rcareport.FieldAnalysisMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(rcareport.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(rcareport.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(rcareport.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(rcareport.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(rcareport.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(rcareport.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(rcareport.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rcareport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RCAReportUpdateOne is the builder for updating a single RCAReport entity.
type RCAReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RCAReportMutation
}

// SetRootCause sets the "root_cause" field.
func (_u *RCAReportUpdateOne) SetRootCause(v string) *RCAReportUpdateOne {
	_u.mutation.SetRootCause(v)
	return _u
}

// SetNillableRootCause sets the "root_cause" field if the given value is not nil.
func (_u *RCAReportUpdateOne) SetNillableRootCause(v *string) *RCAReportUpdateOne {
	if v != nil {
		_u.SetRootCause(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *RCAReportUpdateOne) SetConfidenceScore(v int) *RCAReportUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *RCAReportUpdateOne) SetNillableConfidenceScore(v *int) *RCAReportUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *RCAReportUpdateOne) AddConfidenceScore(v int) *RCAReportUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *RCAReportUpdateOne) SetSummary(v string) *RCAReportUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *RCAReportUpdateOne) SetNillableSummary(v *string) *RCAReportUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetTimeline sets the "timeline" field.
func (_u *RCAReportUpdateOne) SetTimeline(v []map[string]interface{}) *RCAReportUpdateOne {
	_u.mutation.SetTimeline(v)
	return _u
}

// AppendTimeline appends value to the "timeline" field.
func (_u *RCAReportUpdateOne) AppendTimeline(v []map[string]interface{}) *RCAReportUpdateOne {
	_u.mutation.AppendTimeline(v)
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *RCAReportUpdateOne) SetEvidence(v map[string]interface{}) *RCAReportUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// SetRemediationSteps sets the "remediation_steps" field.
func (_u *RCAReportUpdateOne) SetRemediationSteps(v []map[string]interface{}) *RCAReportUpdateOne {
	_u.mutation.SetRemediationSteps(v)
	return _u
}

// AppendRemediationSteps appends value to the "remediation_steps" field.
func (_u *RCAReportUpdateOne) AppendRemediationSteps(v []map[string]interface{}) *RCAReportUpdateOne {
	_u.mutation.AppendRemediationSteps(v)
	return _u
}

// SetAnalysisMetadata sets the "analysis_metadata" field.
func (_u *RCAReportUpdateOne) SetAnalysisMetadata(v map[string]interface{}) *RCAReportUpdateOne {
	_u.mutation.SetAnalysisMetadata(v)
	return _u
}

// ClearAnalysisMetadata clears the value of the "analysis_metadata" field.
func (_u *RCAReportUpdateOne) ClearAnalysisMetadata() *RCAReportUpdateOne {
	_u.mutation.ClearAnalysisMetadata()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RCAReportUpdateOne) SetStatus(v rcareport.Status) *RCAReportUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RCAReportUpdateOne) SetNillableStatus(v *rcareport.Status) *RCAReportUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RCAReportUpdateOne) SetErrorMessage(v string) *RCAReportUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RCAReportUpdateOne) SetNillableErrorMessage(v *string) *RCAReportUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RCAReportUpdateOne) ClearErrorMessage() *RCAReportUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RCAReportUpdateOne) SetStartedAt(v time.Time) *RCAReportUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RCAReportUpdateOne) SetNillableStartedAt(v *time.Time) *RCAReportUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RCAReportUpdateOne) SetCompletedAt(v time.Time) *RCAReportUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RCAReportUpdateOne) SetNillableCompletedAt(v *time.Time) *RCAReportUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RCAReportUpdateOne) ClearCompletedAt() *RCAReportUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RCAReportUpdateOne) SetUpdatedAt(v time.Time) *RCAReportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RCAReportMutation object of the builder.
func (_u *RCAReportUpdateOne) Mutation() *RCAReportMutation {
	return _u.mutation
}

// Where appends a list predicates to the RCAReportUpdate builder.
func (_u *RCAReportUpdateOne) Where(ps ...predicate.RCAReport) *RCAReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RCAReportUpdateOne) Select(field string, fields ...string) *RCAReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RCAReport entity.
func (_u *RCAReportUpdateOne) Save(ctx context.Context) (*RCAReport, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RCAReportUpdateOne) SaveX(ctx context.Context) *RCAReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RCAReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RCAReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RCAReportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := rcareport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RCAReportUpdateOne) check() error {
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := rcareport.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "RCAReport.confidence_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := rcareport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RCAReport.status": %w`, err)}
		}
	}
	if _u.mutation.IncidentCleared() && len(_u.mutation.IncidentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RCAReport.incident"`)
	}
	return nil
}

func (_u *RCAReportUpdateOne) sqlSave(ctx context.Context) (_node *RCAReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rcareport.Table, rcareport.Columns, sqlgraph.NewFieldSpec(rcareport.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RCAReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rcareport.FieldID)
		for _, f := range fields {
			if !rcareport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rcareport.FieldID {
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
	if value, ok := _u.mutation.RootCause(); ok {
		_spec.SetField(rcareport.FieldRootCause, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(rcareport.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(rcareport.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(rcareport.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timeline(); ok {
		_spec.SetField(rcareport.FieldTimeline, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTimeline(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rcareport.FieldTimeline, value)
		})
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(rcareport.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RemediationSteps(); ok {
		_spec.SetField(rcareport.FieldRemediationSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRemediationSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rcareport.FieldRemediationSteps, value)
		})
	}
	if value, ok := _u.mutation.AnalysisMetadata(); ok {
		_spec.SetField(rcareport.FieldAnalysisMetadata, field.TypeJSON, value)
	}
	if _u.mutation.AnalysisMetadataCleared() {
		_spec.ClearField(rcareport.FieldAnalysisMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(rcareport.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(rcareport.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(rcareport.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(rcareport.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(rcareport.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(rcareport.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(rcareport.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &RCAReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rcareport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
