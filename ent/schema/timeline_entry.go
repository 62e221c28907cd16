package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TimelineEntry holds the schema definition for one append-only audit entry
// on a request's timeline. The (request_id, event_type, occurred_at) unique
// index makes re-delivery of the same event a conflict-ignoring no-op.
type TimelineEntry struct {
	ent.Schema
}

// Mixin of the TimelineEntry.
func (TimelineEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TenantMixin{},
		AuditMixin{},
	}
}

// Fields of the TimelineEntry.
func (TimelineEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("request_id").
			NotEmpty().
			Immutable(),
		field.String("event_type").
			NotEmpty().
			Immutable(),
		field.String("actor_name").
			Optional().
			Immutable(),
		field.String("details").
			Optional().
			MaxLen(2048).
			Immutable(),
		field.Time("occurred_at").
			Immutable(),
	}
}

// Indexes of the TimelineEntry.
func (TimelineEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "event_type", "occurred_at").Unique(),
		index.Fields("tenant_id", "request_id", "occurred_at"),
	}
}
