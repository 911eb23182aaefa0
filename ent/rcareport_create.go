// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incident-ops/rcad/ent/incident"
	"github.com/incident-ops/rcad/ent/rcareport"
)

// RCAReportCreate is the builder for creating a RCAReport entity.
type RCAReportCreate struct {
	config
	mutation *RCAReportMutation
	hooks    []Hook
}

// SetIncidentID sets the "incident_id" field.
func (_c *RCAReportCreate) SetIncidentID(v string) *RCAReportCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetRootCause sets the "root_cause" field.
func (_c *RCAReportCreate) SetRootCause(v string) *RCAReportCreate {
	_c.mutation.SetRootCause(v)
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *RCAReportCreate) SetConfidenceScore(v int) *RCAReportCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *RCAReportCreate) SetSummary(v string) *RCAReportCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetTimeline sets the "timeline" field.
func (_c *RCAReportCreate) SetTimeline(v []map[string]interface{}) *RCAReportCreate {
	_c.mutation.SetTimeline(v)
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *RCAReportCreate) SetEvidence(v map[string]interface{}) *RCAReportCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetRemediationSteps sets the "remediation_steps" field.
func (_c *RCAReportCreate) SetRemediationSteps(v []map[string]interface{}) *RCAReportCreate {
	_c.mutation.SetRemediationSteps(v)
	return _c
}

// SetAnalysisMetadata sets the "analysis_metadata" field.
func (_c *RCAReportCreate) SetAnalysisMetadata(v map[string]interface{}) *RCAReportCreate {
	_c.mutation.SetAnalysisMetadata(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RCAReportCreate) SetStatus(v rcareport.Status) *RCAReportCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RCAReportCreate) SetNillableStatus(v *rcareport.Status) *RCAReportCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RCAReportCreate) SetErrorMessage(v string) *RCAReportCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RCAReportCreate) SetNillableErrorMessage(v *string) *RCAReportCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RCAReportCreate) SetStartedAt(v time.Time) *RCAReportCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RCAReportCreate) SetCompletedAt(v time.Time) *RCAReportCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RCAReportCreate) SetNillableCompletedAt(v *time.Time) *RCAReportCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RCAReportCreate) SetCreatedAt(v time.Time) *RCAReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RCAReportCreate) SetNillableCreatedAt(v *time.Time) *RCAReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RCAReportCreate) SetUpdatedAt(v time.Time) *RCAReportCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RCAReportCreate) SetNillableUpdatedAt(v *time.Time) *RCAReportCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RCAReportCreate) SetID(v string) *RCAReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetIncident sets the "incident" edge to the Incident entity.
func (_c *RCAReportCreate) SetIncident(v *Incident) *RCAReportCreate {
	return _c.SetIncidentID(v.ID)
}

// Mutation returns the RCAReportMutation object of the builder.
func (_c *RCAReportCreate) Mutation() *RCAReportMutation {
	return _c.mutation
}

// Save creates the RCAReport in the database.
func (_c *RCAReportCreate) Save(ctx context.Context) (*RCAReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RCAReportCreate) SaveX(ctx context.Context) *RCAReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RCAReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RCAReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RCAReportCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := rcareport.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rcareport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := rcareport.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RCAReportCreate) check() error {
	if _, ok := _c.mutation.IncidentID(); !ok {
		return &ValidationError{Name: "incident_id", err: errors.New(`ent: missing required field "RCAReport.incident_id"`)}
	}
	if _, ok := _c.mutation.RootCause(); !ok {
		return &ValidationError{Name: "root_cause", err: errors.New(`ent: missing required field "RCAReport.root_cause"`)}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "RCAReport.confidence_score"`)}
	}
	if v, ok := _c.mutation.ConfidenceScore(); ok {
		if err := rcareport.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "RCAReport.confidence_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "RCAReport.summary"`)}
	}
	if _, ok := _c.mutation.Timeline(); !ok {
		return &ValidationError{Name: "timeline", err: errors.New(`ent: missing required field "RCAReport.timeline"`)}
	}
	if _, ok := _c.mutation.Evidence(); !ok {
		return &ValidationError{Name: "evidence", err: errors.New(`ent: missing required field "RCAReport.evidence"`)}
	}
	if _, ok := _c.mutation.RemediationSteps(); !ok {
		return &ValidationError{Name: "remediation_steps", err: errors.New(`ent: missing required field "RCAReport.remediation_steps"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RCAReport.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := rcareport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RCAReport.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "RCAReport.started_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RCAReport.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RCAReport.updated_at"`)}
	}
	if len(_c.mutation.IncidentIDs()) == 0 {
		return &ValidationError{Name: "incident", err: errors.New(`ent: missing required edge "RCAReport.incident"`)}
	}
	return nil
}

func (_c *RCAReportCreate) sqlSave(ctx context.Context) (*RCAReport, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected RCAReport.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RCAReportCreate) createSpec() (*RCAReport, *sqlgraph.CreateSpec) {
	var (
		_node = &RCAReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rcareport.Table, sqlgraph.NewFieldSpec(rcareport.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RootCause(); ok {
		_spec.SetField(rcareport.FieldRootCause, field.TypeString, value)
		_node.RootCause = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(rcareport.FieldConfidenceScore, field.TypeInt, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(rcareport.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Timeline(); ok {
		_spec.SetField(rcareport.FieldTimeline, field.TypeJSON, value)
		_node.Timeline = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(rcareport.FieldEvidence, field.TypeJSON, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.RemediationSteps(); ok {
		_spec.SetField(rcareport.FieldRemediationSteps, field.TypeJSON, value)
		_node.RemediationSteps = value
	}
	if value, ok := _c.mutation.AnalysisMetadata(); ok {
		_spec.SetField(rcareport.FieldAnalysisMetadata, field.TypeJSON, value)
		_node.AnalysisMetadata = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(rcareport.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(rcareport.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(rcareport.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(rcareport.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rcareport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(rcareport.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.IncidentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   rcareport.IncidentTable,
			Columns: []string{rcareport.IncidentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.IncidentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RCAReportCreateBulk is the builder for creating many RCAReport entities in bulk.
type RCAReportCreateBulk struct {
	config
	err      error
	builders []*RCAReportCreate
}

// Save creates the RCAReport entities in the database.
func (_c *RCAReportCreateBulk) Save(ctx context.Context) ([]*RCAReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RCAReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RCAReportMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RCAReportCreateBulk) SaveX(ctx context.Context) []*RCAReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RCAReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RCAReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
