package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for one in-app inbox entry.
// Written by the notification dispatcher projection; delivery failures
// never block the projection cursor.
type Notification struct {
	ent.Schema
}

// Mixin of the Notification.
func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TenantMixin{},
		AuditMixin{}, // created_at only (notifications are append-only)
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("recipient_id").
			NotEmpty().
			Immutable(),
		field.Enum("type").
			Values(
				"REQUEST_SUBMITTED",
				"REQUEST_APPROVED",
				"REQUEST_REJECTED",
				"VM_READY",
				"PROVISIONING_FAILED",
			),
		field.String("title").
			NotEmpty().
			MaxLen(255),
		field.String("message").
			NotEmpty().
			MaxLen(2048),
		field.String("resource_type").
			Optional(),
		field.String("resource_id").
			Optional(),
		field.Bool("read").
			Default(false),
		field.Time("read_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "recipient_id", "read"),
		index.Fields("tenant_id", "recipient_id", "created_at"),
		index.Fields("created_at"), // retention cleanup
	}
}
