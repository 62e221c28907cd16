package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ProjectionOffset holds the schema definition for one durable subscriber
// cursor: the highest global_sequence the subscriber has fully processed.
// Advanced in the same transaction as the projection writes it covers.
type ProjectionOffset struct {
	ent.Schema
}

// Fields of the ProjectionOffset.
func (ProjectionOffset) Fields() []ent.Field {
	return []ent.Field{
		field.String("subscriber").
			Unique().
			Immutable(),
		field.Int64("position").
			Default(0),
		field.Time("updated_at"),
	}
}
