package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// VmwareConfig holds the schema definition for the per-tenant vCenter
// connection settings. One row per tenant; password_enc is ciphertext from
// the credential encryptor and is never returned by the API. Version carries
// optimistic locking across concurrent admin updates.
type VmwareConfig struct {
	ent.Schema
}

// Mixin of the VmwareConfig.
func (VmwareConfig) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the VmwareConfig.
func (VmwareConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("tenant_id").
			Unique().
			Immutable(),
		field.String("vcenter_url").
			NotEmpty(),
		field.String("username").
			NotEmpty(),
		field.String("password_enc").
			NotEmpty().
			Sensitive(),
		field.String("datacenter").
			NotEmpty(),
		field.String("cluster").
			NotEmpty(),
		field.String("datastore").
			NotEmpty(),
		field.String("network").
			NotEmpty(),
		field.String("template").
			NotEmpty(),
		field.Time("verified_at").
			Optional().
			Nillable(),
		field.Int64("version").
			Default(0),
	}
}
