// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/incident-ops/rcad/ent/alert"
	"github.com/incident-ops/rcad/ent/incident"
	"github.com/incident-ops/rcad/ent/predicate"
	"github.com/incident-ops/rcad/ent/rcareport"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAlert     = "Alert"
	TypeIncident  = "Incident"
	TypeRCAReport = "RCAReport"
)

// AlertMutation represents an operation that mutates the Alert nodes in the graph.
type AlertMutation struct {
	config
	op              Op
	typ             string
	id              *string
	fingerprint     *string
	alertname       *string
	severity        *alert.Severity
	status          *alert.Status
	labels          *map[string]string
	annotations     *map[string]string
	starts_at       *time.Time
	ends_at         *time.Time
	generator_url   *string
	received_at     *time.Time
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	incident        *string
	clearedincident bool
	done            bool
	oldValue        func(context.Context) (*Alert, error)
	predicates      []predicate.Alert
}

var _ ent.Mutation = (*AlertMutation)(nil)

// alertOption allows management of the mutation configuration using functional options.
type alertOption func(*AlertMutation)

// newAlertMutation creates new mutation for the Alert entity.
func newAlertMutation(c config, op Op, opts ...alertOption) *AlertMutation {
	m := &AlertMutation{
		config:        c,
		op:            op,
		typ:           TypeAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertID sets the ID field of the mutation.
func withAlertID(id string) alertOption {
	return func(m *AlertMutation) {
		var (
			err   error
			once  sync.Once
			value *Alert
		)
		m.oldValue = func(ctx context.Context) (*Alert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Alert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlert sets the old Alert of the mutation.
func withAlert(node *Alert) alertOption {
	return func(m *AlertMutation) {
		m.oldValue = func(context.Context) (*Alert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Alert entities.
func (m *AlertMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Alert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFingerprint sets the "fingerprint" field.
func (m *AlertMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *AlertMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *AlertMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetAlertname sets the "alertname" field.
func (m *AlertMutation) SetAlertname(s string) {
	m.alertname = &s
}

// Alertname returns the value of the "alertname" field in the mutation.
func (m *AlertMutation) Alertname() (r string, exists bool) {
	v := m.alertname
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertname returns the old "alertname" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldAlertname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertname: %w", err)
	}
	return oldValue.Alertname, nil
}

// ResetAlertname resets all changes to the "alertname" field.
func (m *AlertMutation) ResetAlertname() {
	m.alertname = nil
}

// SetSeverity sets the "severity" field.
func (m *AlertMutation) SetSeverity(a alert.Severity) {
	m.severity = &a
}

// Severity returns the value of the "severity" field in the mutation.
func (m *AlertMutation) Severity() (r alert.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldSeverity(ctx context.Context) (v alert.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *AlertMutation) ResetSeverity() {
	m.severity = nil
}

// SetStatus sets the "status" field.
func (m *AlertMutation) SetStatus(a alert.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AlertMutation) Status() (r alert.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldStatus(ctx context.Context) (v alert.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AlertMutation) ResetStatus() {
	m.status = nil
}

// SetLabels sets the "labels" field.
func (m *AlertMutation) SetLabels(value map[string]string) {
	m.labels = &value
}

// Labels returns the value of the "labels" field in the mutation.
func (m *AlertMutation) Labels() (r map[string]string, exists bool) {
	v := m.labels
	if v == nil {
		return
	}
	return *v, true
}

// OldLabels returns the old "labels" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldLabels(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabels: %w", err)
	}
	return oldValue.Labels, nil
}

// ResetLabels resets all changes to the "labels" field.
func (m *AlertMutation) ResetLabels() {
	m.labels = nil
}

// SetAnnotations sets the "annotations" field.
func (m *AlertMutation) SetAnnotations(value map[string]string) {
	m.annotations = &value
}

// Annotations returns the value of the "annotations" field in the mutation.
func (m *AlertMutation) Annotations() (r map[string]string, exists bool) {
	v := m.annotations
	if v == nil {
		return
	}
	return *v, true
}

// OldAnnotations returns the old "annotations" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldAnnotations(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnnotations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnnotations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnnotations: %w", err)
	}
	return oldValue.Annotations, nil
}

// ClearAnnotations clears the value of the "annotations" field.
func (m *AlertMutation) ClearAnnotations() {
	m.annotations = nil
	m.clearedFields[alert.FieldAnnotations] = struct{}{}
}

// AnnotationsCleared returns if the "annotations" field was cleared in this mutation.
func (m *AlertMutation) AnnotationsCleared() bool {
	_, ok := m.clearedFields[alert.FieldAnnotations]
	return ok
}

// ResetAnnotations resets all changes to the "annotations" field.
func (m *AlertMutation) ResetAnnotations() {
	m.annotations = nil
	delete(m.clearedFields, alert.FieldAnnotations)
}

// SetStartsAt sets the "starts_at" field.
func (m *AlertMutation) SetStartsAt(t time.Time) {
	m.starts_at = &t
}

// StartsAt returns the value of the "starts_at" field in the mutation.
func (m *AlertMutation) StartsAt() (r time.Time, exists bool) {
	v := m.starts_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartsAt returns the old "starts_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldStartsAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartsAt: %w", err)
	}
	return oldValue.StartsAt, nil
}

// ResetStartsAt resets all changes to the "starts_at" field.
func (m *AlertMutation) ResetStartsAt() {
	m.starts_at = nil
}

// SetEndsAt sets the "ends_at" field.
func (m *AlertMutation) SetEndsAt(t time.Time) {
	m.ends_at = &t
}

// EndsAt returns the value of the "ends_at" field in the mutation.
func (m *AlertMutation) EndsAt() (r time.Time, exists bool) {
	v := m.ends_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndsAt returns the old "ends_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldEndsAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndsAt: %w", err)
	}
	return oldValue.EndsAt, nil
}

// ClearEndsAt clears the value of the "ends_at" field.
func (m *AlertMutation) ClearEndsAt() {
	m.ends_at = nil
	m.clearedFields[alert.FieldEndsAt] = struct{}{}
}

// EndsAtCleared returns if the "ends_at" field was cleared in this mutation.
func (m *AlertMutation) EndsAtCleared() bool {
	_, ok := m.clearedFields[alert.FieldEndsAt]
	return ok
}

// ResetEndsAt resets all changes to the "ends_at" field.
func (m *AlertMutation) ResetEndsAt() {
	m.ends_at = nil
	delete(m.clearedFields, alert.FieldEndsAt)
}

// SetGeneratorURL sets the "generator_url" field.
func (m *AlertMutation) SetGeneratorURL(s string) {
	m.generator_url = &s
}

// GeneratorURL returns the value of the "generator_url" field in the mutation.
func (m *AlertMutation) GeneratorURL() (r string, exists bool) {
	v := m.generator_url
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratorURL returns the old "generator_url" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldGeneratorURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratorURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratorURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratorURL: %w", err)
	}
	return oldValue.GeneratorURL, nil
}

// ClearGeneratorURL clears the value of the "generator_url" field.
func (m *AlertMutation) ClearGeneratorURL() {
	m.generator_url = nil
	m.clearedFields[alert.FieldGeneratorURL] = struct{}{}
}

// GeneratorURLCleared returns if the "generator_url" field was cleared in this mutation.
func (m *AlertMutation) GeneratorURLCleared() bool {
	_, ok := m.clearedFields[alert.FieldGeneratorURL]
	return ok
}

// ResetGeneratorURL resets all changes to the "generator_url" field.
func (m *AlertMutation) ResetGeneratorURL() {
	m.generator_url = nil
	delete(m.clearedFields, alert.FieldGeneratorURL)
}

// SetIncidentID sets the "incident_id" field.
func (m *AlertMutation) SetIncidentID(s string) {
	m.incident = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *AlertMutation) IncidentID() (r string, exists bool) {
	v := m.incident
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldIncidentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ClearIncidentID clears the value of the "incident_id" field.
func (m *AlertMutation) ClearIncidentID() {
	m.incident = nil
	m.clearedFields[alert.FieldIncidentID] = struct{}{}
}

// IncidentIDCleared returns if the "incident_id" field was cleared in this mutation.
func (m *AlertMutation) IncidentIDCleared() bool {
	_, ok := m.clearedFields[alert.FieldIncidentID]
	return ok
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *AlertMutation) ResetIncidentID() {
	m.incident = nil
	delete(m.clearedFields, alert.FieldIncidentID)
}

// SetReceivedAt sets the "received_at" field.
func (m *AlertMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *AlertMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *AlertMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AlertMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AlertMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AlertMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AlertMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AlertMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AlertMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (m *AlertMutation) ClearIncident() {
	m.clearedincident = true
	m.clearedFields[alert.FieldIncidentID] = struct{}{}
}

// IncidentCleared reports if the "incident" edge to the Incident entity was cleared.
func (m *AlertMutation) IncidentCleared() bool {
	return m.IncidentIDCleared() || m.clearedincident
}

// IncidentIDs returns the "incident" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IncidentID instead. It exists only for internal usage by the builders.
func (m *AlertMutation) IncidentIDs() (ids []string) {
	if id := m.incident; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIncident resets all changes to the "incident" edge.
func (m *AlertMutation) ResetIncident() {
	m.incident = nil
	m.clearedincident = false
}

// Where appends a list predicates to the AlertMutation builder.
func (m *AlertMutation) Where(ps ...predicate.Alert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Alert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Alert).
func (m *AlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.fingerprint != nil {
		fields = append(fields, alert.FieldFingerprint)
	}
	if m.alertname != nil {
		fields = append(fields, alert.FieldAlertname)
	}
	if m.severity != nil {
		fields = append(fields, alert.FieldSeverity)
	}
	if m.status != nil {
		fields = append(fields, alert.FieldStatus)
	}
	if m.labels != nil {
		fields = append(fields, alert.FieldLabels)
	}
	if m.annotations != nil {
		fields = append(fields, alert.FieldAnnotations)
	}
	if m.starts_at != nil {
		fields = append(fields, alert.FieldStartsAt)
	}
	if m.ends_at != nil {
		fields = append(fields, alert.FieldEndsAt)
	}
	if m.generator_url != nil {
		fields = append(fields, alert.FieldGeneratorURL)
	}
	if m.incident != nil {
		fields = append(fields, alert.FieldIncidentID)
	}
	if m.received_at != nil {
		fields = append(fields, alert.FieldReceivedAt)
	}
	if m.created_at != nil {
		fields = append(fields, alert.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, alert.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alert.FieldFingerprint:
		return m.Fingerprint()
	case alert.FieldAlertname:
		return m.Alertname()
	case alert.FieldSeverity:
		return m.Severity()
	case alert.FieldStatus:
		return m.Status()
	case alert.FieldLabels:
		return m.Labels()
	case alert.FieldAnnotations:
		return m.Annotations()
	case alert.FieldStartsAt:
		return m.StartsAt()
	case alert.FieldEndsAt:
		return m.EndsAt()
	case alert.FieldGeneratorURL:
		return m.GeneratorURL()
	case alert.FieldIncidentID:
		return m.IncidentID()
	case alert.FieldReceivedAt:
		return m.ReceivedAt()
	case alert.FieldCreatedAt:
		return m.CreatedAt()
	case alert.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alert.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case alert.FieldAlertname:
		return m.OldAlertname(ctx)
	case alert.FieldSeverity:
		return m.OldSeverity(ctx)
	case alert.FieldStatus:
		return m.OldStatus(ctx)
	case alert.FieldLabels:
		return m.OldLabels(ctx)
	case alert.FieldAnnotations:
		return m.OldAnnotations(ctx)
	case alert.FieldStartsAt:
		return m.OldStartsAt(ctx)
	case alert.FieldEndsAt:
		return m.OldEndsAt(ctx)
	case alert.FieldGeneratorURL:
		return m.OldGeneratorURL(ctx)
	case alert.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case alert.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case alert.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case alert.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Alert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alert.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case alert.FieldAlertname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertname(v)
		return nil
	case alert.FieldSeverity:
		v, ok := value.(alert.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case alert.FieldStatus:
		v, ok := value.(alert.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case alert.FieldLabels:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabels(v)
		return nil
	case alert.FieldAnnotations:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnnotations(v)
		return nil
	case alert.FieldStartsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartsAt(v)
		return nil
	case alert.FieldEndsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndsAt(v)
		return nil
	case alert.FieldGeneratorURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratorURL(v)
		return nil
	case alert.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case alert.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case alert.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case alert.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Alert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alert.FieldAnnotations) {
		fields = append(fields, alert.FieldAnnotations)
	}
	if m.FieldCleared(alert.FieldEndsAt) {
		fields = append(fields, alert.FieldEndsAt)
	}
	if m.FieldCleared(alert.FieldGeneratorURL) {
		fields = append(fields, alert.FieldGeneratorURL)
	}
	if m.FieldCleared(alert.FieldIncidentID) {
		fields = append(fields, alert.FieldIncidentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertMutation) ClearField(name string) error {
	switch name {
	case alert.FieldAnnotations:
		m.ClearAnnotations()
		return nil
	case alert.FieldEndsAt:
		m.ClearEndsAt()
		return nil
	case alert.FieldGeneratorURL:
		m.ClearGeneratorURL()
		return nil
	case alert.FieldIncidentID:
		m.ClearIncidentID()
		return nil
	}
	return fmt.Errorf("unknown Alert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertMutation) ResetField(name string) error {
	switch name {
	case alert.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case alert.FieldAlertname:
		m.ResetAlertname()
		return nil
	case alert.FieldSeverity:
		m.ResetSeverity()
		return nil
	case alert.FieldStatus:
		m.ResetStatus()
		return nil
	case alert.FieldLabels:
		m.ResetLabels()
		return nil
	case alert.FieldAnnotations:
		m.ResetAnnotations()
		return nil
	case alert.FieldStartsAt:
		m.ResetStartsAt()
		return nil
	case alert.FieldEndsAt:
		m.ResetEndsAt()
		return nil
	case alert.FieldGeneratorURL:
		m.ResetGeneratorURL()
		return nil
	case alert.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case alert.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case alert.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case alert.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.incident != nil {
		edges = append(edges, alert.EdgeIncident)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case alert.EdgeIncident:
		if id := m.incident; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedincident {
		edges = append(edges, alert.EdgeIncident)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertMutation) EdgeCleared(name string) bool {
	switch name {
	case alert.EdgeIncident:
		return m.clearedincident
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertMutation) ClearEdge(name string) error {
	switch name {
	case alert.EdgeIncident:
		m.ClearIncident()
		return nil
	}
	return fmt.Errorf("unknown Alert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertMutation) ResetEdge(name string) error {
	switch name {
	case alert.EdgeIncident:
		m.ResetIncident()
		return nil
	}
	return fmt.Errorf("unknown Alert edge %s", name)
}

// IncidentMutation represents an operation that mutates the Incident nodes in the graph.
type IncidentMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	title                   *string
	status                  *incident.Status
	severity                *incident.Severity
	primary_alert_id        *string
	correlation_reason      *string
	affected_services       *[]string
	appendaffected_services []string
	affected_labels         *map[string]string
	started_at              *time.Time
	resolved_at             *time.Time
	rca_completed_at        *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	alerts                  map[string]struct{}
	removedalerts           map[string]struct{}
	clearedalerts           bool
	rca_report              *string
	clearedrca_report       bool
	done                    bool
	oldValue                func(context.Context) (*Incident, error)
	predicates              []predicate.Incident
}

var _ ent.Mutation = (*IncidentMutation)(nil)

// incidentOption allows management of the mutation configuration using functional options.
type incidentOption func(*IncidentMutation)

// newIncidentMutation creates new mutation for the Incident entity.
func newIncidentMutation(c config, op Op, opts ...incidentOption) *IncidentMutation {
	m := &IncidentMutation{
		config:        c,
		op:            op,
		typ:           TypeIncident,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIncidentID sets the ID field of the mutation.
func withIncidentID(id string) incidentOption {
	return func(m *IncidentMutation) {
		var (
			err   error
			once  sync.Once
			value *Incident
		)
		m.oldValue = func(ctx context.Context) (*Incident, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Incident.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIncident sets the old Incident of the mutation.
func withIncident(node *Incident) incidentOption {
	return func(m *IncidentMutation) {
		m.oldValue = func(context.Context) (*Incident, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IncidentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IncidentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Incident entities.
func (m *IncidentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IncidentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IncidentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Incident.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *IncidentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *IncidentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *IncidentMutation) ResetTitle() {
	m.title = nil
}

// SetStatus sets the "status" field.
func (m *IncidentMutation) SetStatus(i incident.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *IncidentMutation) Status() (r incident.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldStatus(ctx context.Context) (v incident.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IncidentMutation) ResetStatus() {
	m.status = nil
}

// SetSeverity sets the "severity" field.
func (m *IncidentMutation) SetSeverity(i incident.Severity) {
	m.severity = &i
}

// Severity returns the value of the "severity" field in the mutation.
func (m *IncidentMutation) Severity() (r incident.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldSeverity(ctx context.Context) (v incident.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *IncidentMutation) ResetSeverity() {
	m.severity = nil
}

// SetPrimaryAlertID sets the "primary_alert_id" field.
func (m *IncidentMutation) SetPrimaryAlertID(s string) {
	m.primary_alert_id = &s
}

// PrimaryAlertID returns the value of the "primary_alert_id" field in the mutation.
func (m *IncidentMutation) PrimaryAlertID() (r string, exists bool) {
	v := m.primary_alert_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryAlertID returns the old "primary_alert_id" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldPrimaryAlertID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryAlertID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryAlertID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryAlertID: %w", err)
	}
	return oldValue.PrimaryAlertID, nil
}

// ClearPrimaryAlertID clears the value of the "primary_alert_id" field.
func (m *IncidentMutation) ClearPrimaryAlertID() {
	m.primary_alert_id = nil
	m.clearedFields[incident.FieldPrimaryAlertID] = struct{}{}
}

// PrimaryAlertIDCleared returns if the "primary_alert_id" field was cleared in this mutation.
func (m *IncidentMutation) PrimaryAlertIDCleared() bool {
	_, ok := m.clearedFields[incident.FieldPrimaryAlertID]
	return ok
}

// ResetPrimaryAlertID resets all changes to the "primary_alert_id" field.
func (m *IncidentMutation) ResetPrimaryAlertID() {
	m.primary_alert_id = nil
	delete(m.clearedFields, incident.FieldPrimaryAlertID)
}

// SetCorrelationReason sets the "correlation_reason" field.
func (m *IncidentMutation) SetCorrelationReason(s string) {
	m.correlation_reason = &s
}

// CorrelationReason returns the value of the "correlation_reason" field in the mutation.
func (m *IncidentMutation) CorrelationReason() (r string, exists bool) {
	v := m.correlation_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationReason returns the old "correlation_reason" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldCorrelationReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationReason: %w", err)
	}
	return oldValue.CorrelationReason, nil
}

// ClearCorrelationReason clears the value of the "correlation_reason" field.
func (m *IncidentMutation) ClearCorrelationReason() {
	m.correlation_reason = nil
	m.clearedFields[incident.FieldCorrelationReason] = struct{}{}
}

// CorrelationReasonCleared returns if the "correlation_reason" field was cleared in this mutation.
func (m *IncidentMutation) CorrelationReasonCleared() bool {
	_, ok := m.clearedFields[incident.FieldCorrelationReason]
	return ok
}

// ResetCorrelationReason resets all changes to the "correlation_reason" field.
func (m *IncidentMutation) ResetCorrelationReason() {
	m.correlation_reason = nil
	delete(m.clearedFields, incident.FieldCorrelationReason)
}

// SetAffectedServices sets the "affected_services" field.
func (m *IncidentMutation) SetAffectedServices(s []string) {
	m.affected_services = &s
	m.appendaffected_services = nil
}

// AffectedServices returns the value of the "affected_services" field in the mutation.
func (m *IncidentMutation) AffectedServices() (r []string, exists bool) {
	v := m.affected_services
	if v == nil {
		return
	}
	return *v, true
}

// OldAffectedServices returns the old "affected_services" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldAffectedServices(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffectedServices is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffectedServices requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffectedServices: %w", err)
	}
	return oldValue.AffectedServices, nil
}

// AppendAffectedServices adds s to the "affected_services" field.
func (m *IncidentMutation) AppendAffectedServices(s []string) {
	m.appendaffected_services = append(m.appendaffected_services, s...)
}

// AppendedAffectedServices returns the list of values that were appended to the "affected_services" field in this mutation.
func (m *IncidentMutation) AppendedAffectedServices() ([]string, bool) {
	if len(m.appendaffected_services) == 0 {
		return nil, false
	}
	return m.appendaffected_services, true
}

// ResetAffectedServices resets all changes to the "affected_services" field.
func (m *IncidentMutation) ResetAffectedServices() {
	m.affected_services = nil
	m.appendaffected_services = nil
}

// SetAffectedLabels sets the "affected_labels" field.
func (m *IncidentMutation) SetAffectedLabels(value map[string]string) {
	m.affected_labels = &value
}

// AffectedLabels returns the value of the "affected_labels" field in the mutation.
func (m *IncidentMutation) AffectedLabels() (r map[string]string, exists bool) {
	v := m.affected_labels
	if v == nil {
		return
	}
	return *v, true
}

// OldAffectedLabels returns the old "affected_labels" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldAffectedLabels(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffectedLabels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffectedLabels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffectedLabels: %w", err)
	}
	return oldValue.AffectedLabels, nil
}

// ClearAffectedLabels clears the value of the "affected_labels" field.
func (m *IncidentMutation) ClearAffectedLabels() {
	m.affected_labels = nil
	m.clearedFields[incident.FieldAffectedLabels] = struct{}{}
}

// AffectedLabelsCleared returns if the "affected_labels" field was cleared in this mutation.
func (m *IncidentMutation) AffectedLabelsCleared() bool {
	_, ok := m.clearedFields[incident.FieldAffectedLabels]
	return ok
}

// ResetAffectedLabels resets all changes to the "affected_labels" field.
func (m *IncidentMutation) ResetAffectedLabels() {
	m.affected_labels = nil
	delete(m.clearedFields, incident.FieldAffectedLabels)
}

// SetStartedAt sets the "started_at" field.
func (m *IncidentMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *IncidentMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *IncidentMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *IncidentMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *IncidentMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *IncidentMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[incident.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *IncidentMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[incident.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *IncidentMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, incident.FieldResolvedAt)
}

// SetRcaCompletedAt sets the "rca_completed_at" field.
func (m *IncidentMutation) SetRcaCompletedAt(t time.Time) {
	m.rca_completed_at = &t
}

// RcaCompletedAt returns the value of the "rca_completed_at" field in the mutation.
func (m *IncidentMutation) RcaCompletedAt() (r time.Time, exists bool) {
	v := m.rca_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRcaCompletedAt returns the old "rca_completed_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldRcaCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRcaCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRcaCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRcaCompletedAt: %w", err)
	}
	return oldValue.RcaCompletedAt, nil
}

// ClearRcaCompletedAt clears the value of the "rca_completed_at" field.
func (m *IncidentMutation) ClearRcaCompletedAt() {
	m.rca_completed_at = nil
	m.clearedFields[incident.FieldRcaCompletedAt] = struct{}{}
}

// RcaCompletedAtCleared returns if the "rca_completed_at" field was cleared in this mutation.
func (m *IncidentMutation) RcaCompletedAtCleared() bool {
	_, ok := m.clearedFields[incident.FieldRcaCompletedAt]
	return ok
}

// ResetRcaCompletedAt resets all changes to the "rca_completed_at" field.
func (m *IncidentMutation) ResetRcaCompletedAt() {
	m.rca_completed_at = nil
	delete(m.clearedFields, incident.FieldRcaCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *IncidentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IncidentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IncidentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IncidentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IncidentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IncidentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by ids.
func (m *IncidentMutation) AddAlertIDs(ids ...string) {
	if m.alerts == nil {
		m.alerts = make(map[string]struct{})
	}
	for i := range ids {
		m.alerts[ids[i]] = struct{}{}
	}
}

// ClearAlerts clears the "alerts" edge to the Alert entity.
func (m *IncidentMutation) ClearAlerts() {
	m.clearedalerts = true
}

// AlertsCleared reports if the "alerts" edge to the Alert entity was cleared.
func (m *IncidentMutation) AlertsCleared() bool {
	return m.clearedalerts
}

// RemoveAlertIDs removes the "alerts" edge to the Alert entity by IDs.
func (m *IncidentMutation) RemoveAlertIDs(ids ...string) {
	if m.removedalerts == nil {
		m.removedalerts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.alerts, ids[i])
		m.removedalerts[ids[i]] = struct{}{}
	}
}

// RemovedAlerts returns the removed IDs of the "alerts" edge to the Alert entity.
func (m *IncidentMutation) RemovedAlertsIDs() (ids []string) {
	for id := range m.removedalerts {
		ids = append(ids, id)
	}
	return
}

// AlertsIDs returns the "alerts" edge IDs in the mutation.
func (m *IncidentMutation) AlertsIDs() (ids []string) {
	for id := range m.alerts {
		ids = append(ids, id)
	}
	return
}

// ResetAlerts resets all changes to the "alerts" edge.
func (m *IncidentMutation) ResetAlerts() {
	m.alerts = nil
	m.clearedalerts = false
	m.removedalerts = nil
}

// SetRcaReportID sets the "rca_report" edge to the RCAReport entity by id.
func (m *IncidentMutation) SetRcaReportID(id string) {
	m.rca_report = &id
}

// ClearRcaReport clears the "rca_report" edge to the RCAReport entity.
func (m *IncidentMutation) ClearRcaReport() {
	m.clearedrca_report = true
}

// RcaReportCleared reports if the "rca_report" edge to the RCAReport entity was cleared.
func (m *IncidentMutation) RcaReportCleared() bool {
	return m.clearedrca_report
}

// RcaReportID returns the "rca_report" edge ID in the mutation.
func (m *IncidentMutation) RcaReportID() (id string, exists bool) {
	if m.rca_report != nil {
		return *m.rca_report, true
	}
	return
}

// RcaReportIDs returns the "rca_report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RcaReportID instead. It exists only for internal usage by the builders.
func (m *IncidentMutation) RcaReportIDs() (ids []string) {
	if id := m.rca_report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRcaReport resets all changes to the "rca_report" edge.
func (m *IncidentMutation) ResetRcaReport() {
	m.rca_report = nil
	m.clearedrca_report = false
}

// Where appends a list predicates to the IncidentMutation builder.
func (m *IncidentMutation) Where(ps ...predicate.Incident) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IncidentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IncidentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Incident, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IncidentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IncidentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Incident).
func (m *IncidentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IncidentMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.title != nil {
		fields = append(fields, incident.FieldTitle)
	}
	if m.status != nil {
		fields = append(fields, incident.FieldStatus)
	}
	if m.severity != nil {
		fields = append(fields, incident.FieldSeverity)
	}
	if m.primary_alert_id != nil {
		fields = append(fields, incident.FieldPrimaryAlertID)
	}
	if m.correlation_reason != nil {
		fields = append(fields, incident.FieldCorrelationReason)
	}
	if m.affected_services != nil {
		fields = append(fields, incident.FieldAffectedServices)
	}
	if m.affected_labels != nil {
		fields = append(fields, incident.FieldAffectedLabels)
	}
	if m.started_at != nil {
		fields = append(fields, incident.FieldStartedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, incident.FieldResolvedAt)
	}
	if m.rca_completed_at != nil {
		fields = append(fields, incident.FieldRcaCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, incident.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, incident.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IncidentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case incident.FieldTitle:
		return m.Title()
	case incident.FieldStatus:
		return m.Status()
	case incident.FieldSeverity:
		return m.Severity()
	case incident.FieldPrimaryAlertID:
		return m.PrimaryAlertID()
	case incident.FieldCorrelationReason:
		return m.CorrelationReason()
	case incident.FieldAffectedServices:
		return m.AffectedServices()
	case incident.FieldAffectedLabels:
		return m.AffectedLabels()
	case incident.FieldStartedAt:
		return m.StartedAt()
	case incident.FieldResolvedAt:
		return m.ResolvedAt()
	case incident.FieldRcaCompletedAt:
		return m.RcaCompletedAt()
	case incident.FieldCreatedAt:
		return m.CreatedAt()
	case incident.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IncidentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case incident.FieldTitle:
		return m.OldTitle(ctx)
	case incident.FieldStatus:
		return m.OldStatus(ctx)
	case incident.FieldSeverity:
		return m.OldSeverity(ctx)
	case incident.FieldPrimaryAlertID:
		return m.OldPrimaryAlertID(ctx)
	case incident.FieldCorrelationReason:
		return m.OldCorrelationReason(ctx)
	case incident.FieldAffectedServices:
		return m.OldAffectedServices(ctx)
	case incident.FieldAffectedLabels:
		return m.OldAffectedLabels(ctx)
	case incident.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case incident.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case incident.FieldRcaCompletedAt:
		return m.OldRcaCompletedAt(ctx)
	case incident.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case incident.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Incident field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case incident.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case incident.FieldStatus:
		v, ok := value.(incident.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case incident.FieldSeverity:
		v, ok := value.(incident.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case incident.FieldPrimaryAlertID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryAlertID(v)
		return nil
	case incident.FieldCorrelationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationReason(v)
		return nil
	case incident.FieldAffectedServices:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffectedServices(v)
		return nil
	case incident.FieldAffectedLabels:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffectedLabels(v)
		return nil
	case incident.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case incident.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case incident.FieldRcaCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRcaCompletedAt(v)
		return nil
	case incident.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case incident.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Incident field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IncidentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IncidentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Incident numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IncidentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(incident.FieldPrimaryAlertID) {
		fields = append(fields, incident.FieldPrimaryAlertID)
	}
	if m.FieldCleared(incident.FieldCorrelationReason) {
		fields = append(fields, incident.FieldCorrelationReason)
	}
	if m.FieldCleared(incident.FieldAffectedLabels) {
		fields = append(fields, incident.FieldAffectedLabels)
	}
	if m.FieldCleared(incident.FieldResolvedAt) {
		fields = append(fields, incident.FieldResolvedAt)
	}
	if m.FieldCleared(incident.FieldRcaCompletedAt) {
		fields = append(fields, incident.FieldRcaCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IncidentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IncidentMutation) ClearField(name string) error {
	switch name {
	case incident.FieldPrimaryAlertID:
		m.ClearPrimaryAlertID()
		return nil
	case incident.FieldCorrelationReason:
		m.ClearCorrelationReason()
		return nil
	case incident.FieldAffectedLabels:
		m.ClearAffectedLabels()
		return nil
	case incident.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	case incident.FieldRcaCompletedAt:
		m.ClearRcaCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Incident nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IncidentMutation) ResetField(name string) error {
	switch name {
	case incident.FieldTitle:
		m.ResetTitle()
		return nil
	case incident.FieldStatus:
		m.ResetStatus()
		return nil
	case incident.FieldSeverity:
		m.ResetSeverity()
		return nil
	case incident.FieldPrimaryAlertID:
		m.ResetPrimaryAlertID()
		return nil
	case incident.FieldCorrelationReason:
		m.ResetCorrelationReason()
		return nil
	case incident.FieldAffectedServices:
		m.ResetAffectedServices()
		return nil
	case incident.FieldAffectedLabels:
		m.ResetAffectedLabels()
		return nil
	case incident.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case incident.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case incident.FieldRcaCompletedAt:
		m.ResetRcaCompletedAt()
		return nil
	case incident.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case incident.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Incident field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IncidentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.alerts != nil {
		edges = append(edges, incident.EdgeAlerts)
	}
	if m.rca_report != nil {
		edges = append(edges, incident.EdgeRcaReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IncidentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case incident.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.alerts))
		for id := range m.alerts {
			ids = append(ids, id)
		}
		return ids
	case incident.EdgeRcaReport:
		if id := m.rca_report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IncidentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedalerts != nil {
		edges = append(edges, incident.EdgeAlerts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IncidentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case incident.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.removedalerts))
		for id := range m.removedalerts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IncidentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedalerts {
		edges = append(edges, incident.EdgeAlerts)
	}
	if m.clearedrca_report {
		edges = append(edges, incident.EdgeRcaReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IncidentMutation) EdgeCleared(name string) bool {
	switch name {
	case incident.EdgeAlerts:
		return m.clearedalerts
	case incident.EdgeRcaReport:
		return m.clearedrca_report
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IncidentMutation) ClearEdge(name string) error {
	switch name {
	case incident.EdgeRcaReport:
		m.ClearRcaReport()
		return nil
	}
	return fmt.Errorf("unknown Incident unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IncidentMutation) ResetEdge(name string) error {
	switch name {
	case incident.EdgeAlerts:
		m.ResetAlerts()
		return nil
	case incident.EdgeRcaReport:
		m.ResetRcaReport()
		return nil
	}
	return fmt.Errorf("unknown Incident edge %s", name)
}

// RCAReportMutation represents an operation that mutates the RCAReport nodes in the graph.
type RCAReportMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	root_cause              *string
	confidence_score        *int
	addconfidence_score     *int
	summary                 *string
	timeline                *[]map[string]interface{}
	appendtimeline          []map[string]interface{}
	evidence                *map[string]interface{}
	remediation_steps       *[]map[string]interface{}
	appendremediation_steps []map[string]interface{}
	analysis_metadata       *map[string]interface{}
	status                  *rcareport.Status
	error_message           *string
	started_at              *time.Time
	completed_at            *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	incident                *string
	clearedincident         bool
	done                    bool
	oldValue                func(context.Context) (*RCAReport, error)
	predicates              []predicate.RCAReport
}

var _ ent.Mutation = (*RCAReportMutation)(nil)

// rcareportOption allows management of the mutation configuration using functional options.
type rcareportOption func(*RCAReportMutation)

// newRCAReportMutation creates new mutation for the RCAReport entity.
func newRCAReportMutation(c config, op Op, opts ...rcareportOption) *RCAReportMutation {
	m := &RCAReportMutation{
		config:        c,
		op:            op,
		typ:           TypeRCAReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRCAReportID sets the ID field of the mutation.
func withRCAReportID(id string) rcareportOption {
	return func(m *RCAReportMutation) {
		var (
			err   error
			once  sync.Once
			value *RCAReport
		)
		m.oldValue = func(ctx context.Context) (*RCAReport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RCAReport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRCAReport sets the old RCAReport of the mutation.
func withRCAReport(node *RCAReport) rcareportOption {
	return func(m *RCAReportMutation) {
		m.oldValue = func(context.Context) (*RCAReport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RCAReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RCAReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RCAReport entities.
func (m *RCAReportMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RCAReportMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RCAReportMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RCAReport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIncidentID sets the "incident_id" field.
func (m *RCAReportMutation) SetIncidentID(s string) {
	m.incident = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *RCAReportMutation) IncidentID() (r string, exists bool) {
	v := m.incident
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *RCAReportMutation) ResetIncidentID() {
	m.incident = nil
}

// SetRootCause sets the "root_cause" field.
func (m *RCAReportMutation) SetRootCause(s string) {
	m.root_cause = &s
}

// RootCause returns the value of the "root_cause" field in the mutation.
func (m *RCAReportMutation) RootCause() (r string, exists bool) {
	v := m.root_cause
	if v == nil {
		return
	}
	return *v, true
}

// OldRootCause returns the old "root_cause" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldRootCause(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRootCause is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRootCause requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRootCause: %w", err)
	}
	return oldValue.RootCause, nil
}

// ResetRootCause resets all changes to the "root_cause" field.
func (m *RCAReportMutation) ResetRootCause() {
	m.root_cause = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *RCAReportMutation) SetConfidenceScore(i int) {
	m.confidence_score = &i
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *RCAReportMutation) ConfidenceScore() (r int, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldConfidenceScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds i to the "confidence_score" field.
func (m *RCAReportMutation) AddConfidenceScore(i int) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += i
	} else {
		m.addconfidence_score = &i
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *RCAReportMutation) AddedConfidenceScore() (r int, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *RCAReportMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetSummary sets the "summary" field.
func (m *RCAReportMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *RCAReportMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *RCAReportMutation) ResetSummary() {
	m.summary = nil
}

// SetTimeline sets the "timeline" field.
func (m *RCAReportMutation) SetTimeline(value []map[string]interface{}) {
	m.timeline = &value
	m.appendtimeline = nil
}

// Timeline returns the value of the "timeline" field in the mutation.
func (m *RCAReportMutation) Timeline() (r []map[string]interface{}, exists bool) {
	v := m.timeline
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeline returns the old "timeline" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldTimeline(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeline: %w", err)
	}
	return oldValue.Timeline, nil
}

// AppendTimeline adds value to the "timeline" field.
func (m *RCAReportMutation) AppendTimeline(value []map[string]interface{}) {
	m.appendtimeline = append(m.appendtimeline, value...)
}

// AppendedTimeline returns the list of values that were appended to the "timeline" field in this mutation.
func (m *RCAReportMutation) AppendedTimeline() ([]map[string]interface{}, bool) {
	if len(m.appendtimeline) == 0 {
		return nil, false
	}
	return m.appendtimeline, true
}

// ResetTimeline resets all changes to the "timeline" field.
func (m *RCAReportMutation) ResetTimeline() {
	m.timeline = nil
	m.appendtimeline = nil
}

// SetEvidence sets the "evidence" field.
func (m *RCAReportMutation) SetEvidence(value map[string]interface{}) {
	m.evidence = &value
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *RCAReportMutation) Evidence() (r map[string]interface{}, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldEvidence(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *RCAReportMutation) ResetEvidence() {
	m.evidence = nil
}

// SetRemediationSteps sets the "remediation_steps" field.
func (m *RCAReportMutation) SetRemediationSteps(value []map[string]interface{}) {
	m.remediation_steps = &value
	m.appendremediation_steps = nil
}

// RemediationSteps returns the value of the "remediation_steps" field in the mutation.
func (m *RCAReportMutation) RemediationSteps() (r []map[string]interface{}, exists bool) {
	v := m.remediation_steps
	if v == nil {
		return
	}
	return *v, true
}

// OldRemediationSteps returns the old "remediation_steps" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldRemediationSteps(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemediationSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemediationSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemediationSteps: %w", err)
	}
	return oldValue.RemediationSteps, nil
}

// AppendRemediationSteps adds value to the "remediation_steps" field.
func (m *RCAReportMutation) AppendRemediationSteps(value []map[string]interface{}) {
	m.appendremediation_steps = append(m.appendremediation_steps, value...)
}

// AppendedRemediationSteps returns the list of values that were appended to the "remediation_steps" field in this mutation.
func (m *RCAReportMutation) AppendedRemediationSteps() ([]map[string]interface{}, bool) {
	if len(m.appendremediation_steps) == 0 {
		return nil, false
	}
	return m.appendremediation_steps, true
}

// ResetRemediationSteps resets all changes to the "remediation_steps" field.
func (m *RCAReportMutation) ResetRemediationSteps() {
	m.remediation_steps = nil
	m.appendremediation_steps = nil
}

// SetAnalysisMetadata sets the "analysis_metadata" field.
func (m *RCAReportMutation) SetAnalysisMetadata(value map[string]interface{}) {
	m.analysis_metadata = &value
}

// AnalysisMetadata returns the value of the "analysis_metadata" field in the mutation.
func (m *RCAReportMutation) AnalysisMetadata() (r map[string]interface{}, exists bool) {
	v := m.analysis_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisMetadata returns the old "analysis_metadata" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldAnalysisMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisMetadata: %w", err)
	}
	return oldValue.AnalysisMetadata, nil
}

// ClearAnalysisMetadata clears the value of the "analysis_metadata" field.
func (m *RCAReportMutation) ClearAnalysisMetadata() {
	m.analysis_metadata = nil
	m.clearedFields[rcareport.FieldAnalysisMetadata] = struct{}{}
}

// AnalysisMetadataCleared returns if the "analysis_metadata" field was cleared in this mutation.
func (m *RCAReportMutation) AnalysisMetadataCleared() bool {
	_, ok := m.clearedFields[rcareport.FieldAnalysisMetadata]
	return ok
}

// ResetAnalysisMetadata resets all changes to the "analysis_metadata" field.
func (m *RCAReportMutation) ResetAnalysisMetadata() {
	m.analysis_metadata = nil
	delete(m.clearedFields, rcareport.FieldAnalysisMetadata)
}

// SetStatus sets the "status" field.
func (m *RCAReportMutation) SetStatus(r rcareport.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RCAReportMutation) Status() (r rcareport.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldStatus(ctx context.Context) (v rcareport.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RCAReportMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *RCAReportMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RCAReportMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RCAReportMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[rcareport.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RCAReportMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[rcareport.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RCAReportMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, rcareport.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *RCAReportMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RCAReportMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RCAReportMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *RCAReportMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RCAReportMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RCAReportMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[rcareport.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RCAReportMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[rcareport.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RCAReportMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, rcareport.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *RCAReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RCAReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RCAReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RCAReportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RCAReportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RCAReportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (m *RCAReportMutation) ClearIncident() {
	m.clearedincident = true
	m.clearedFields[rcareport.FieldIncidentID] = struct{}{}
}

// IncidentCleared reports if the "incident" edge to the Incident entity was cleared.
func (m *RCAReportMutation) IncidentCleared() bool {
	return m.clearedincident
}

// IncidentIDs returns the "incident" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IncidentID instead. It exists only for internal usage by the builders.
func (m *RCAReportMutation) IncidentIDs() (ids []string) {
	if id := m.incident; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIncident resets all changes to the "incident" edge.
func (m *RCAReportMutation) ResetIncident() {
	m.incident = nil
	m.clearedincident = false
}

// Where appends a list predicates to the RCAReportMutation builder.
func (m *RCAReportMutation) Where(ps ...predicate.RCAReport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RCAReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RCAReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RCAReport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RCAReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RCAReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RCAReport).
func (m *RCAReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RCAReportMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.incident != nil {
		fields = append(fields, rcareport.FieldIncidentID)
	}
	if m.root_cause != nil {
		fields = append(fields, rcareport.FieldRootCause)
	}
	if m.confidence_score != nil {
		fields = append(fields, rcareport.FieldConfidenceScore)
	}
	if m.summary != nil {
		fields = append(fields, rcareport.FieldSummary)
	}
	if m.timeline != nil {
		fields = append(fields, rcareport.FieldTimeline)
	}
	if m.evidence != nil {
		fields = append(fields, rcareport.FieldEvidence)
	}
	if m.remediation_steps != nil {
		fields = append(fields, rcareport.FieldRemediationSteps)
	}
	if m.analysis_metadata != nil {
		fields = append(fields, rcareport.FieldAnalysisMetadata)
	}
	if m.status != nil {
		fields = append(fields, rcareport.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, rcareport.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, rcareport.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, rcareport.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, rcareport.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, rcareport.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RCAReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rcareport.FieldIncidentID:
		return m.IncidentID()
	case rcareport.FieldRootCause:
		return m.RootCause()
	case rcareport.FieldConfidenceScore:
		return m.ConfidenceScore()
	case rcareport.FieldSummary:
		return m.Summary()
	case rcareport.FieldTimeline:
		return m.Timeline()
	case rcareport.FieldEvidence:
		return m.Evidence()
	case rcareport.FieldRemediationSteps:
		return m.RemediationSteps()
	case rcareport.FieldAnalysisMetadata:
		return m.AnalysisMetadata()
	case rcareport.FieldStatus:
		return m.Status()
	case rcareport.FieldErrorMessage:
		return m.ErrorMessage()
	case rcareport.FieldStartedAt:
		return m.StartedAt()
	case rcareport.FieldCompletedAt:
		return m.CompletedAt()
	case rcareport.FieldCreatedAt:
		return m.CreatedAt()
	case rcareport.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RCAReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rcareport.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case rcareport.FieldRootCause:
		return m.OldRootCause(ctx)
	case rcareport.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case rcareport.FieldSummary:
		return m.OldSummary(ctx)
	case rcareport.FieldTimeline:
		return m.OldTimeline(ctx)
	case rcareport.FieldEvidence:
		return m.OldEvidence(ctx)
	case rcareport.FieldRemediationSteps:
		return m.OldRemediationSteps(ctx)
	case rcareport.FieldAnalysisMetadata:
		return m.OldAnalysisMetadata(ctx)
	case rcareport.FieldStatus:
		return m.OldStatus(ctx)
	case rcareport.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case rcareport.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case rcareport.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case rcareport.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case rcareport.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RCAReport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RCAReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rcareport.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case rcareport.FieldRootCause:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRootCause(v)
		return nil
	case rcareport.FieldConfidenceScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case rcareport.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case rcareport.FieldTimeline:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeline(v)
		return nil
	case rcareport.FieldEvidence:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	case rcareport.FieldRemediationSteps:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemediationSteps(v)
		return nil
	case rcareport.FieldAnalysisMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisMetadata(v)
		return nil
	case rcareport.FieldStatus:
		v, ok := value.(rcareport.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case rcareport.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case rcareport.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case rcareport.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case rcareport.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case rcareport.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RCAReport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RCAReportMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, rcareport.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RCAReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rcareport.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RCAReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rcareport.FieldConfidenceScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown RCAReport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RCAReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rcareport.FieldAnalysisMetadata) {
		fields = append(fields, rcareport.FieldAnalysisMetadata)
	}
	if m.FieldCleared(rcareport.FieldErrorMessage) {
		fields = append(fields, rcareport.FieldErrorMessage)
	}
	if m.FieldCleared(rcareport.FieldCompletedAt) {
		fields = append(fields, rcareport.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RCAReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RCAReportMutation) ClearField(name string) error {
	switch name {
	case rcareport.FieldAnalysisMetadata:
		m.ClearAnalysisMetadata()
		return nil
	case rcareport.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case rcareport.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown RCAReport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RCAReportMutation) ResetField(name string) error {
	switch name {
	case rcareport.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case rcareport.FieldRootCause:
		m.ResetRootCause()
		return nil
	case rcareport.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case rcareport.FieldSummary:
		m.ResetSummary()
		return nil
	case rcareport.FieldTimeline:
		m.ResetTimeline()
		return nil
	case rcareport.FieldEvidence:
		m.ResetEvidence()
		return nil
	case rcareport.FieldRemediationSteps:
		m.ResetRemediationSteps()
		return nil
	case rcareport.FieldAnalysisMetadata:
		m.ResetAnalysisMetadata()
		return nil
	case rcareport.FieldStatus:
		m.ResetStatus()
		return nil
	case rcareport.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case rcareport.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case rcareport.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case rcareport.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case rcareport.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RCAReport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RCAReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.incident != nil {
		edges = append(edges, rcareport.EdgeIncident)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RCAReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rcareport.EdgeIncident:
		if id := m.incident; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RCAReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RCAReportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RCAReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedincident {
		edges = append(edges, rcareport.EdgeIncident)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RCAReportMutation) EdgeCleared(name string) bool {
	switch name {
	case rcareport.EdgeIncident:
		return m.clearedincident
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RCAReportMutation) ClearEdge(name string) error {
	switch name {
	case rcareport.EdgeIncident:
		m.ClearIncident()
		return nil
	}
	return fmt.Errorf("unknown RCAReport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RCAReportMutation) ResetEdge(name string) error {
	switch name {
	case rcareport.EdgeIncident:
		m.ResetIncident()
		return nil
	}
	return fmt.Errorf("unknown RCAReport edge %s", name)
}
