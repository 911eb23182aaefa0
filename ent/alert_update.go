// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incident-ops/rcad/ent/alert"
	"github.com/incident-ops/rcad/ent/incident"
	"github.com/incident-ops/rcad/ent/predicate"
)

// AlertUpdate is the builder for updating Alert entities.
type AlertUpdate struct {
	config
	hooks    []Hook
	mutation *AlertMutation
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdate) Where(ps ...predicate.Alert) *AlertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *AlertUpdate) SetFingerprint(v string) *AlertUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableFingerprint(v *string) *AlertUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetAlertname sets the "alertname" field.
func (_u *AlertUpdate) SetAlertname(v string) *AlertUpdate {
	_u.mutation.SetAlertname(v)
	return _u
}

// SetNillableAlertname sets the "alertname" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableAlertname(v *string) *AlertUpdate {
	if v != nil {
		_u.SetAlertname(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AlertUpdate) SetSeverity(v alert.Severity) *AlertUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableSeverity(v *alert.Severity) *AlertUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertUpdate) SetStatus(v alert.Status) *AlertUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableStatus(v *alert.Status) *AlertUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLabels sets the "labels" field.
func (_u *AlertUpdate) SetLabels(v map[string]string) *AlertUpdate {
	_u.mutation.SetLabels(v)
	return _u
}

// SetAnnotations sets the "annotations" field.
func (_u *AlertUpdate) SetAnnotations(v map[string]string) *AlertUpdate {
	_u.mutation.SetAnnotations(v)
	return _u
}

// ClearAnnotations clears the value of the "annotations" field.
func (_u *AlertUpdate) ClearAnnotations() *AlertUpdate {
	_u.mutation.ClearAnnotations()
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *AlertUpdate) SetStartsAt(v time.Time) *AlertUpdate {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableStartsAt(v *time.Time) *AlertUpdate {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *AlertUpdate) SetEndsAt(v time.Time) *AlertUpdate {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableEndsAt(v *time.Time) *AlertUpdate {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// ClearEndsAt clears the value of the "ends_at" field.
func (_u *AlertUpdate) ClearEndsAt() *AlertUpdate {
	_u.mutation.ClearEndsAt()
	return _u
}

// SetGeneratorURL sets the "generator_url" field.
func (_u *AlertUpdate) SetGeneratorURL(v string) *AlertUpdate {
	_u.mutation.SetGeneratorURL(v)
	return _u
}

// SetNillableGeneratorURL sets the "generator_url" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableGeneratorURL(v *string) *AlertUpdate {
	if v != nil {
		_u.SetGeneratorURL(*v)
	}
	return _u
}

// ClearGeneratorURL clears the value of the "generator_url" field.
func (_u *AlertUpdate) ClearGeneratorURL() *AlertUpdate {
	_u.mutation.ClearGeneratorURL()
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *AlertUpdate) SetIncidentID(v string) *AlertUpdate {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableIncidentID(v *string) *AlertUpdate {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// ClearIncidentID clears the value of the "incident_id" field.
func (_u *AlertUpdate) ClearIncidentID() *AlertUpdate {
	_u.mutation.ClearIncidentID()
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *AlertUpdate) SetReceivedAt(v time.Time) *AlertUpdate {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableReceivedAt(v *time.Time) *AlertUpdate {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AlertUpdate) SetUpdatedAt(v time.Time) *AlertUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIncident sets the "incident" edge to the Incident entity.
func (_u *AlertUpdate) SetIncident(v *Incident) *AlertUpdate {
	return _u.SetIncidentID(v.ID)
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdate) Mutation() *AlertMutation {
	return _u.mutation
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (_u *AlertUpdate) ClearIncident() *AlertUpdate {
	_u.mutation.ClearIncident()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AlertUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := alert.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertUpdate) check() error {
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := alert.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Alert.fingerprint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Alertname(); ok {
		if err := alert.AlertnameValidator(v); err != nil {
			return &ValidationError{Name: "alertname", err: fmt.Errorf(`ent: validator failed for field "Alert.alertname": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := alert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Alert.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := alert.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Alert.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AlertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(alert.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Alertname(); ok {
		_spec.SetField(alert.FieldAlertname, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(alert.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alert.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Labels(); ok {
		_spec.SetField(alert.FieldLabels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Annotations(); ok {
		_spec.SetField(alert.FieldAnnotations, field.TypeJSON, value)
	}
	if _u.mutation.AnnotationsCleared() {
		_spec.ClearField(alert.FieldAnnotations, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(alert.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(alert.FieldEndsAt, field.TypeTime, value)
	}
	if _u.mutation.EndsAtCleared() {
		_spec.ClearField(alert.FieldEndsAt, field.TypeTime)
	}
	if value, ok := _u.mutation.GeneratorURL(); ok {
		_spec.SetField(alert.FieldGeneratorURL, field.TypeString, value)
	}
	if _u.mutation.GeneratorURLCleared() {
		_spec.ClearField(alert.FieldGeneratorURL, field.TypeString)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(alert.FieldReceivedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(alert.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IncidentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alert.IncidentTable,
			Columns: []string{alert.IncidentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IncidentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alert.IncidentTable,
			Columns: []string{alert.IncidentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertUpdateOne is the builder for updating a single Alert entity.
type AlertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertMutation
}

// SetFingerprint sets the "fingerprint" field.
func (_u *AlertUpdateOne) SetFingerprint(v string) *AlertUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableFingerprint(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetAlertname sets the "alertname" field.
func (_u *AlertUpdateOne) SetAlertname(v string) *AlertUpdateOne {
	_u.mutation.SetAlertname(v)
	return _u
}

// SetNillableAlertname sets the "alertname" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableAlertname(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetAlertname(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AlertUpdateOne) SetSeverity(v alert.Severity) *AlertUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableSeverity(v *alert.Severity) *AlertUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertUpdateOne) SetStatus(v alert.Status) *AlertUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableStatus(v *alert.Status) *AlertUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLabels sets the "labels" field.
func (_u *AlertUpdateOne) SetLabels(v map[string]string) *AlertUpdateOne {
	_u.mutation.SetLabels(v)
	return _u
}

// SetAnnotations sets the "annotations" field.
func (_u *AlertUpdateOne) SetAnnotations(v map[string]string) *AlertUpdateOne {
	_u.mutation.SetAnnotations(v)
	return _u
}

// ClearAnnotations clears the value of the "annotations" field.
func (_u *AlertUpdateOne) ClearAnnotations() *AlertUpdateOne {
	_u.mutation.ClearAnnotations()
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *AlertUpdateOne) SetStartsAt(v time.Time) *AlertUpdateOne {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableStartsAt(v *time.Time) *AlertUpdateOne {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *AlertUpdateOne) SetEndsAt(v time.Time) *AlertUpdateOne {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableEndsAt(v *time.Time) *AlertUpdateOne {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// ClearEndsAt clears the value of the "ends_at" field.
func (_u *AlertUpdateOne) ClearEndsAt() *AlertUpdateOne {
	_u.mutation.ClearEndsAt()
	return _u
}

// SetGeneratorURL sets the "generator_url" field.
func (_u *AlertUpdateOne) SetGeneratorURL(v string) *AlertUpdateOne {
	_u.mutation.SetGeneratorURL(v)
	return _u
}

// SetNillableGeneratorURL sets the "generator_url" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableGeneratorURL(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetGeneratorURL(*v)
	}
	return _u
}

// ClearGeneratorURL clears the value of the "generator_url" field.
func (_u *AlertUpdateOne) ClearGeneratorURL() *AlertUpdateOne {
	_u.mutation.ClearGeneratorURL()
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *AlertUpdateOne) SetIncidentID(v string) *AlertUpdateOne {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableIncidentID(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// ClearIncidentID clears the value of the "incident_id" field.
func (_u *AlertUpdateOne) ClearIncidentID() *AlertUpdateOne {
	_u.mutation.ClearIncidentID()
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *AlertUpdateOne) SetReceivedAt(v time.Time) *AlertUpdateOne {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableReceivedAt(v *time.Time) *AlertUpdateOne {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AlertUpdateOne) SetUpdatedAt(v time.Time) *AlertUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIncident sets the "incident" edge to the Incident entity.
func (_u *AlertUpdateOne) SetIncident(v *Incident) *AlertUpdateOne {
	return _u.SetIncidentID(v.ID)
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdateOne) Mutation() *AlertMutation {
	return _u.mutation
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (_u *AlertUpdateOne) ClearIncident() *AlertUpdateOne {
	_u.mutation.ClearIncident()
	return _u
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdateOne) Where(ps ...predicate.Alert) *AlertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertUpdateOne) Select(field string, fields ...string) *AlertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Alert entity.
func (_u *AlertUpdateOne) Save(ctx context.Context) (*Alert, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdateOne) SaveX(ctx context.Context) *Alert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AlertUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := alert.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertUpdateOne) check() error {
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := alert.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Alert.fingerprint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Alertname(); ok {
		if err := alert.AlertnameValidator(v); err != nil {
			return &ValidationError{Name: "alertname", err: fmt.Errorf(`ent: validator failed for field "Alert.alertname": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := alert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Alert.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := alert.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Alert.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AlertUpdateOne) sqlSave(ctx context.Context) (_node *Alert, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Alert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alert.FieldID)
		for _, f := range fields {
			if !alert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alert.FieldID {
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
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(alert.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Alertname(); ok {
		_spec.SetField(alert.FieldAlertname, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(alert.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alert.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Labels(); ok {
		_spec.SetField(alert.FieldLabels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Annotations(); ok {
		_spec.SetField(alert.FieldAnnotations, field.TypeJSON, value)
	}
	if _u.mutation.AnnotationsCleared() {
		_spec.ClearField(alert.FieldAnnotations, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(alert.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(alert.FieldEndsAt, field.TypeTime, value)
	}
	if _u.mutation.EndsAtCleared() {
		_spec.ClearField(alert.FieldEndsAt, field.TypeTime)
	}
	if value, ok := _u.mutation.GeneratorURL(); ok {
		_spec.SetField(alert.FieldGeneratorURL, field.TypeString, value)
	}
	if _u.mutation.GeneratorURLCleared() {
		_spec.ClearField(alert.FieldGeneratorURL, field.TypeString)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(alert.FieldReceivedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(alert.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IncidentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alert.IncidentTable,
			Columns: []string{alert.IncidentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IncidentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alert.IncidentTable,
			Columns: []string{alert.IncidentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Alert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
