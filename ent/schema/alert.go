package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Alert holds the schema definition for the Alert entity — a single
// notification received from Alertmanager.
type Alert struct {
	ent.Schema
}

// Fields of the Alert.
func (Alert) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("alert_id").
			Unique().
			Immutable(),
		field.String("fingerprint").
			MaxLen(80).
			Unique().
			Comment("Alertmanager fingerprint used for deduplication"),
		field.String("alertname").
			MaxLen(255),
		field.Enum("severity").
			Values("critical", "warning", "info"),
		field.Enum("status").
			Values("firing", "resolved"),
		field.JSON("labels", map[string]string{}),
		field.JSON("annotations", map[string]string{}).
			Optional(),
		field.Time("starts_at"),
		field.Time("ends_at").
			Optional().
			Nillable(),
		field.Text("generator_url").
			Optional().
			Nillable().
			Comment("Link back to the alerting rule source"),
		field.String("incident_id").
			Optional().
			Nillable(),
		field.Time("received_at").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Alert.
func (Alert) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("incident", Incident.Type).
			Ref("alerts").
			Field("incident_id").
			Unique().
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

// Indexes of the Alert.
func (Alert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fingerprint"),
		index.Fields("starts_at"),
		index.Fields("incident_id"),
		index.Fields("status", "starts_at"),
	}
}
