package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProvisioningProgress holds the schema definition for the single mutable
// progress row per in-flight provisioning request. The row is deleted once
// the request reaches READY or FAILED.
type ProvisioningProgress struct {
	ent.Schema
}

// Mixin of the ProvisioningProgress.
func (ProvisioningProgress) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TenantMixin{},
	}
}

// Fields of the ProvisioningProgress.
func (ProvisioningProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("request_id").
			Unique().
			Immutable(),
		field.Enum("stage").
			Values("CLONING", "CONFIGURING", "POWERING_ON", "WAITING_FOR_NETWORK", "READY"),
		field.JSON("stage_timestamps", map[string]string{}).
			Comment("stage name -> RFC3339 instant the stage was entered"),
		field.Int("estimated_remaining_seconds"),
		field.Time("updated_at"),
	}
}

// Indexes of the ProvisioningProgress.
func (ProvisioningProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "request_id"),
	}
}
