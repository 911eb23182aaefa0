// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/incident-ops/rcad/ent/incident"
	"github.com/incident-ops/rcad/ent/rcareport"
)

// Incident is the model entity for the Incident schema.
type Incident struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Status holds the value of the "status" field.
	Status incident.Status `json:"status,omitempty"`
	// Highest severity across correlated alerts
	Severity incident.Severity `json:"severity,omitempty"`
	// The alert elected as probable root cause
	PrimaryAlertID *string `json:"primary_alert_id,omitempty"`
	// CorrelationReason holds the value of the "correlation_reason" field.
	CorrelationReason *string `json:"correlation_reason,omitempty"`
	// AffectedServices holds the value of the "affected_services" field.
	AffectedServices []string `json:"affected_services,omitempty"`
	// AffectedLabels holds the value of the "affected_labels" field.
	AffectedLabels map[string]string `json:"affected_labels,omitempty"`
	// Earliest alert start time in the group
	StartedAt time.Time `json:"started_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// RcaCompletedAt holds the value of the "rca_completed_at" field.
	RcaCompletedAt *time.Time `json:"rca_completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IncidentQuery when eager-loading is set.
	Edges        IncidentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IncidentEdges holds the relations/edges for other nodes in the graph.
type IncidentEdges struct {
	// Alerts holds the value of the alerts edge.
	Alerts []*Alert `json:"alerts,omitempty"`
	// RcaReport holds the value of the rca_report edge.
	RcaReport *RCAReport `json:"rca_report,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AlertsOrErr returns the Alerts value or an error if the edge
// was not loaded in eager-loading.
func (e IncidentEdges) AlertsOrErr() ([]*Alert, error) {
	if e.loadedTypes[0] {
		return e.Alerts, nil
	}
	return nil, &NotLoadedError{edge: "alerts"}
}

// RcaReportOrErr returns the RcaReport value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IncidentEdges) RcaReportOrErr() (*RCAReport, error) {
	if e.RcaReport != nil {
		return e.RcaReport, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: rcareport.Label}
	}
	return nil, &NotLoadedError{edge: "rca_report"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Incident) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case incident.FieldAffectedServices, incident.FieldAffectedLabels:
			values[i] = new([]byte)
		case incident.FieldID, incident.FieldTitle, incident.FieldStatus, incident.FieldSeverity, incident.FieldPrimaryAlertID, incident.FieldCorrelationReason:
			values[i] = new(sql.NullString)
		case incident.FieldStartedAt, incident.FieldResolvedAt, incident.FieldRcaCompletedAt, incident.FieldCreatedAt, incident.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Incident fields.
func (_m *Incident) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case incident.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case incident.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case incident.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = incident.Status(value.String)
			}
		case incident.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = incident.Severity(value.String)
			}
		case incident.FieldPrimaryAlertID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_alert_id", values[i])
			} else if value.Valid {
				_m.PrimaryAlertID = new(string)
				*_m.PrimaryAlertID = value.String
			}
		case incident.FieldCorrelationReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_reason", values[i])
			} else if value.Valid {
				_m.CorrelationReason = new(string)
				*_m.CorrelationReason = value.String
			}
		case incident.FieldAffectedServices:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field affected_services", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AffectedServices); err != nil {
					return fmt.Errorf("unmarshal field affected_services: %w", err)
				}
			}
		case incident.FieldAffectedLabels:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field affected_labels", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AffectedLabels); err != nil {
					return fmt.Errorf("unmarshal field affected_labels: %w", err)
				}
			}
		case incident.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case incident.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		case incident.FieldRcaCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field rca_completed_at", values[i])
			} else if value.Valid {
				_m.RcaCompletedAt = new(time.Time)
				*_m.RcaCompletedAt = value.Time
			}
		case incident.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case incident.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Incident.
// This includes values selected through modifiers, order, etc.
func (_m *Incident) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAlerts queries the "alerts" edge of the Incident entity.
func (_m *Incident) QueryAlerts() *AlertQuery {
	return NewIncidentClient(_m.config).QueryAlerts(_m)
}

// QueryRcaReport queries the "rca_report" edge of the Incident entity.
func (_m *Incident) QueryRcaReport() *RCAReportQuery {
	return NewIncidentClient(_m.config).QueryRcaReport(_m)
}

// Update returns a builder for updating this Incident.
// Note that you need to call Incident.Unwrap() before calling this method if this Incident
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Incident) Update() *IncidentUpdateOne {
	return NewIncidentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Incident entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Incident) Unwrap() *Incident {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Incident is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Incident) String() string {
	var builder strings.Builder
	builder.WriteString("Incident(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	if v := _m.PrimaryAlertID; v != nil {
		builder.WriteString("primary_alert_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CorrelationReason; v != nil {
		builder.WriteString("correlation_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("affected_services=")
	builder.WriteString(fmt.Sprintf("%v", _m.AffectedServices))
	builder.WriteString(", ")
	builder.WriteString("affected_labels=")
	builder.WriteString(fmt.Sprintf("%v", _m.AffectedLabels))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RcaCompletedAt; v != nil {
		builder.WriteString("rca_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Incidents is a parsable slice of Incident.
type Incidents []*Incident
