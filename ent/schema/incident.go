package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Incident holds the schema definition for the Incident entity — a
// correlated group of related alerts sharing a probable root cause.
type Incident struct {
	ent.Schema
}

// Fields of the Incident.
func (Incident) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("incident_id").
			Unique().
			Immutable(),
		field.String("title").
			MaxLen(500),
		field.Enum("status").
			Values("open", "analyzing", "resolved", "closed").
			Default("open"),
		field.Enum("severity").
			Values("critical", "warning", "info").
			Comment("Highest severity across correlated alerts"),
		field.String("primary_alert_id").
			Optional().
			Nillable().
			Comment("The alert elected as probable root cause"),
		field.Text("correlation_reason").
			Optional().
			Nillable(),
		field.JSON("affected_services", []string{}),
		field.JSON("affected_labels", map[string]string{}).
			Optional(),
		field.Time("started_at").
			Comment("Earliest alert start time in the group"),
		field.Time("resolved_at").
			Optional().
			Nillable(),
		field.Time("rca_completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Incident.
func (Incident) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("alerts", Alert.Type),
		edge.To("rca_report", RCAReport.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Incident.
func (Incident) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("severity"),
		index.Fields("started_at"),
		index.Fields("status", "started_at"),
	}
}
