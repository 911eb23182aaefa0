// Code generated by ent, DO NOT EDIT.

package incident

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/incident-ops/rcad/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldTitle, v))
}

// PrimaryAlertID applies equality check predicate on the "primary_alert_id" field. It's identical to PrimaryAlertIDEQ.
func PrimaryAlertID(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldPrimaryAlertID, v))
}

// CorrelationReason applies equality check predicate on the "correlation_reason" field. It's identical to CorrelationReasonEQ.
func CorrelationReason(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldCorrelationReason, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldStartedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldResolvedAt, v))
}

// RcaCompletedAt applies equality check predicate on the "rca_completed_at" field. It's identical to RcaCompletedAtEQ.
func RcaCompletedAt(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldRcaCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldTitle, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldStatus, vs...))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldSeverity, vs...))
}

// PrimaryAlertIDEQ applies the EQ predicate on the "primary_alert_id" field.
func PrimaryAlertIDEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldPrimaryAlertID, v))
}

// PrimaryAlertIDNEQ applies the NEQ predicate on the "primary_alert_id" field.
func PrimaryAlertIDNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldPrimaryAlertID, v))
}

// PrimaryAlertIDIn applies the In predicate on the "primary_alert_id" field.
func PrimaryAlertIDIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldPrimaryAlertID, vs...))
}

// PrimaryAlertIDNotIn applies the NotIn predicate on the "primary_alert_id" field.
func PrimaryAlertIDNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldPrimaryAlertID, vs...))
}

// PrimaryAlertIDGT applies the GT predicate on the "primary_alert_id" field.
func PrimaryAlertIDGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldPrimaryAlertID, v))
}

// PrimaryAlertIDGTE applies the GTE predicate on the "primary_alert_id" field.
func PrimaryAlertIDGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldPrimaryAlertID, v))
}

// PrimaryAlertIDLT applies the LT predicate on the "primary_alert_id" field.
func PrimaryAlertIDLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldPrimaryAlertID, v))
}

// PrimaryAlertIDLTE applies the LTE predicate on the "primary_alert_id" field.
func PrimaryAlertIDLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldPrimaryAlertID, v))
}

// PrimaryAlertIDContains applies the Contains predicate on the "primary_alert_id" field.
func PrimaryAlertIDContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldPrimaryAlertID, v))
}

// PrimaryAlertIDHasPrefix applies the HasPrefix predicate on the "primary_alert_id" field.
func PrimaryAlertIDHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldPrimaryAlertID, v))
}

// PrimaryAlertIDHasSuffix applies the HasSuffix predicate on the "primary_alert_id" field.
func PrimaryAlertIDHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldPrimaryAlertID, v))
}

// PrimaryAlertIDIsNil applies the IsNil predicate on the "primary_alert_id" field.
func PrimaryAlertIDIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldPrimaryAlertID))
}

// PrimaryAlertIDNotNil applies the NotNil predicate on the "primary_alert_id" field.
func PrimaryAlertIDNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldPrimaryAlertID))
}

// PrimaryAlertIDEqualFold applies the EqualFold predicate on the "primary_alert_id" field.
func PrimaryAlertIDEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldPrimaryAlertID, v))
}

// PrimaryAlertIDContainsFold applies the ContainsFold predicate on the "primary_alert_id" field.
func PrimaryAlertIDContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldPrimaryAlertID, v))
}

// CorrelationReasonEQ applies the EQ predicate on the "correlation_reason" field.
func CorrelationReasonEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldCorrelationReason, v))
}

// CorrelationReasonNEQ applies the NEQ predicate on the "correlation_reason" field.
func CorrelationReasonNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldCorrelationReason, v))
}

// CorrelationReasonIn applies the In predicate on the "correlation_reason" field.
func CorrelationReasonIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldCorrelationReason, vs...))
}

// CorrelationReasonNotIn applies the NotIn predicate on the "correlation_reason" field.
func CorrelationReasonNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldCorrelationReason, vs...))
}

// CorrelationReasonGT applies the GT predicate on the "correlation_reason" field.
func CorrelationReasonGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldCorrelationReason, v))
}

// CorrelationReasonGTE applies the GTE predicate on the "correlation_reason" field.
func CorrelationReasonGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldCorrelationReason, v))
}

// CorrelationReasonLT applies the LT predicate on the "correlation_reason" field.
func CorrelationReasonLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldCorrelationReason, v))
}

// CorrelationReasonLTE applies the LTE predicate on the "correlation_reason" field.
func CorrelationReasonLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldCorrelationReason, v))
}

// CorrelationReasonContains applies the Contains predicate on the "correlation_reason" field.
func CorrelationReasonContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldCorrelationReason, v))
}

// CorrelationReasonHasPrefix applies the HasPrefix predicate on the "correlation_reason" field.
func CorrelationReasonHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldCorrelationReason, v))
}

// CorrelationReasonHasSuffix applies the HasSuffix predicate on the "correlation_reason" field.
func CorrelationReasonHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldCorrelationReason, v))
}

// CorrelationReasonIsNil applies the IsNil predicate on the "correlation_reason" field.
func CorrelationReasonIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldCorrelationReason))
}

// CorrelationReasonNotNil applies the NotNil predicate on the "correlation_reason" field.
func CorrelationReasonNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldCorrelationReason))
}

// CorrelationReasonEqualFold applies the EqualFold predicate on the "correlation_reason" field.
func CorrelationReasonEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldCorrelationReason, v))
}

// CorrelationReasonContainsFold applies the ContainsFold predicate on the "correlation_reason" field.
func CorrelationReasonContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldCorrelationReason, v))
}

// AffectedLabelsIsNil applies the IsNil predicate on the "affected_labels" field.
func AffectedLabelsIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldAffectedLabels))
}

// AffectedLabelsNotNil applies the NotNil predicate on the "affected_labels" field.
func AffectedLabelsNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldAffectedLabels))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldStartedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldResolvedAt))
}

// RcaCompletedAtEQ applies the EQ predicate on the "rca_completed_at" field.
func RcaCompletedAtEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldRcaCompletedAt, v))
}

// RcaCompletedAtNEQ applies the NEQ predicate on the "rca_completed_at" field.
func RcaCompletedAtNEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldRcaCompletedAt, v))
}

// RcaCompletedAtIn applies the In predicate on the "rca_completed_at" field.
func RcaCompletedAtIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldRcaCompletedAt, vs...))
}

// RcaCompletedAtNotIn applies the NotIn predicate on the "rca_completed_at" field.
func RcaCompletedAtNotIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldRcaCompletedAt, vs...))
}

// RcaCompletedAtGT applies the GT predicate on the "rca_completed_at" field.
func RcaCompletedAtGT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldRcaCompletedAt, v))
}

// RcaCompletedAtGTE applies the GTE predicate on the "rca_completed_at" field.
func RcaCompletedAtGTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldRcaCompletedAt, v))
}

// RcaCompletedAtLT applies the LT predicate on the "rca_completed_at" field.
func RcaCompletedAtLT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldRcaCompletedAt, v))
}

// RcaCompletedAtLTE applies the LTE predicate on the "rca_completed_at" field.
func RcaCompletedAtLTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldRcaCompletedAt, v))
}

// RcaCompletedAtIsNil applies the IsNil predicate on the "rca_completed_at" field.
func RcaCompletedAtIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldRcaCompletedAt))
}

// RcaCompletedAtNotNil applies the NotNil predicate on the "rca_completed_at" field.
func RcaCompletedAtNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldRcaCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAlerts applies the HasEdge predicate on the "alerts" edge.
func HasAlerts() predicate.Incident {
	return predicate.Incident(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AlertsTable, AlertsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAlertsWith applies the HasEdge predicate on the "alerts" edge with a given conditions (other predicates).
func HasAlertsWith(preds ...predicate.Alert) predicate.Incident {
	return predicate.Incident(func(s *sql.Selector) {
		step := newAlertsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRcaReport applies the HasEdge predicate on the "rca_report" edge.
func HasRcaReport() predicate.Incident {
	return predicate.Incident(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, RcaReportTable, RcaReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRcaReportWith applies the HasEdge predicate on the "rca_report" edge with a given conditions (other predicates).
func HasRcaReportWith(preds ...predicate.RCAReport) predicate.Incident {
	return predicate.Incident(func(s *sql.Selector) {
		step := newRcaReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Incident) predicate.Incident {
	return predicate.Incident(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Incident) predicate.Incident {
	return predicate.Incident(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Incident) predicate.Incident {
	return predicate.Incident(sql.NotPredicates(p))
}
