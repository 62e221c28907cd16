package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PoisonedEvent holds the schema definition for a dead-lettered projection
// event: one a subscriber failed to apply after its full retry budget. The
// cursor advances past it; rows here exist for operator review and manual
// re-drive.
type PoisonedEvent struct {
	ent.Schema
}

// Mixin of the PoisonedEvent.
func (PoisonedEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TenantMixin{},
		AuditMixin{},
	}
}

// Fields of the PoisonedEvent.
func (PoisonedEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("subscriber").
			NotEmpty().
			Immutable(),
		field.Int64("global_sequence").
			Immutable(),
		field.String("event_id").
			NotEmpty().
			Immutable(),
		field.String("event_type").
			NotEmpty().
			Immutable(),
		field.String("aggregate_id").
			NotEmpty().
			Immutable(),
		field.Int("attempts").
			Immutable(),
		field.String("last_error").
			MaxLen(4096).
			Immutable(),
	}
}

// Indexes of the PoisonedEvent.
func (PoisonedEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subscriber", "global_sequence").Unique(),
		index.Fields("tenant_id", "created_at"),
	}
}
