package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RCAReport holds the schema definition for the RCAReport entity — the
// structured output of one root-cause investigation. One report per incident.
type RCAReport struct {
	ent.Schema
}

// Fields of the RCAReport.
func (RCAReport) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("report_id").
			Unique().
			Immutable(),
		field.String("incident_id").
			Unique().
			Immutable(),
		field.Text("root_cause"),
		field.Int("confidence_score").
			Min(0).
			Max(100),
		field.Text("summary"),
		field.JSON("timeline", []map[string]any{}),
		field.JSON("evidence", map[string]any{}),
		field.JSON("remediation_steps", []map[string]any{}),
		field.JSON("analysis_metadata", map[string]any{}).
			Optional().
			Comment("Provider, model, token usage, duration, tool call count"),
		field.Enum("status").
			Values("pending", "complete", "failed").
			Default("pending"),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Time("started_at"),
		field.Time("completed_at").
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

// Edges of the RCAReport.
func (RCAReport) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("incident", Incident.Type).
			Ref("rca_report").
			Field("incident_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RCAReport.
func (RCAReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("completed_at"),
	}
}
