package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RequestProjection holds the schema definition for the denormalized VM
// request list/detail row. One row per VmRequest aggregate, updated by the
// vm_requests projection subscriber; version is the last applied aggregate
// version and doubles as the idempotency discriminator on re-delivery.
type RequestProjection struct {
	ent.Schema
}

// Mixin of the RequestProjection.
func (RequestProjection) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TenantMixin{},
	}
}

// Fields of the RequestProjection.
func (RequestProjection) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("project_id").
			NotEmpty().
			Immutable(),
		field.String("project_name").
			NotEmpty(),
		field.String("requester_id").
			NotEmpty().
			Immutable(),
		field.String("requester_name").
			NotEmpty(),
		field.String("requester_email").
			NotEmpty(),
		field.String("vm_name").
			NotEmpty(),
		field.Enum("size").
			Values("S", "M", "L", "XL"),
		field.Int("cpu_cores"),
		field.Int("memory_gb"),
		field.Int("disk_gb"),
		field.String("justification").
			NotEmpty(),
		field.Enum("status").
			Values("PENDING", "APPROVED", "REJECTED", "CANCELLED", "PROVISIONING", "READY", "FAILED").
			Default("PENDING"),
		field.String("decider_name").
			Optional(),
		field.Time("decided_at").
			Optional().
			Nillable(),
		field.String("rejection_reason").
			Optional().
			MaxLen(500),
		field.String("vm_id").
			Optional(),
		field.String("vmware_vm_id").
			Optional(),
		field.String("ip_address").
			Optional(),
		field.String("hostname").
			Optional(),
		field.Time("created_at").
			Immutable(),
		field.Time("updated_at"),
		field.Int64("version").
			Default(0),
	}
}

// Indexes of the RequestProjection.
func (RequestProjection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "requester_id", "created_at"), // my-requests listing
		index.Fields("tenant_id", "status", "created_at"),       // pending queue
		index.Fields("tenant_id", "project_id"),                 // project filter
		index.Fields("status", "updated_at"),                    // stall sweep (system scope)
	}
}
