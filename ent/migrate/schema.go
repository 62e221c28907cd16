// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "recipient_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"REQUEST_SUBMITTED", "REQUEST_APPROVED", "REQUEST_REJECTED", "VM_READY", "PROVISIONING_FAILED"}},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2048},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_tenant_id_recipient_id_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[3], NotificationsColumns[9]},
			},
			{
				Name:    "notification_tenant_id_recipient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[3], NotificationsColumns[2]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2]},
			},
		},
	}
	// PoisonedEventsColumns holds the columns for the "poisoned_events" table.
	PoisonedEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "subscriber", Type: field.TypeString},
		{Name: "global_sequence", Type: field.TypeInt64},
		{Name: "event_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "aggregate_id", Type: field.TypeString},
		{Name: "attempts", Type: field.TypeInt},
		{Name: "last_error", Type: field.TypeString, Size: 4096},
	}
	// PoisonedEventsTable holds the schema information for the "poisoned_events" table.
	PoisonedEventsTable = &schema.Table{
		Name:       "poisoned_events",
		Columns:    PoisonedEventsColumns,
		PrimaryKey: []*schema.Column{PoisonedEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "poisonedevent_subscriber_global_sequence",
				Unique:  true,
				Columns: []*schema.Column{PoisonedEventsColumns[3], PoisonedEventsColumns[4]},
			},
			{
				Name:    "poisonedevent_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PoisonedEventsColumns[1], PoisonedEventsColumns[2]},
			},
		},
	}
	// ProjectionOffsetsColumns holds the columns for the "projection_offsets" table.
	ProjectionOffsetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "subscriber", Type: field.TypeString, Unique: true},
		{Name: "position", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectionOffsetsTable holds the schema information for the "projection_offsets" table.
	ProjectionOffsetsTable = &schema.Table{
		Name:       "projection_offsets",
		Columns:    ProjectionOffsetsColumns,
		PrimaryKey: []*schema.Column{ProjectionOffsetsColumns[0]},
	}
	// ProvisioningProgressesColumns holds the columns for the "provisioning_progresses" table.
	ProvisioningProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "request_id", Type: field.TypeString, Unique: true},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"CLONING", "CONFIGURING", "POWERING_ON", "WAITING_FOR_NETWORK", "READY"}},
		{Name: "stage_timestamps", Type: field.TypeJSON},
		{Name: "estimated_remaining_seconds", Type: field.TypeInt},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProvisioningProgressesTable holds the schema information for the "provisioning_progresses" table.
	ProvisioningProgressesTable = &schema.Table{
		Name:       "provisioning_progresses",
		Columns:    ProvisioningProgressesColumns,
		PrimaryKey: []*schema.Column{ProvisioningProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "provisioningprogress_tenant_id_request_id",
				Unique:  false,
				Columns: []*schema.Column{ProvisioningProgressesColumns[1], ProvisioningProgressesColumns[2]},
			},
		},
	}
	// RequestProjectionsColumns holds the columns for the "request_projections" table.
	RequestProjectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
		{Name: "project_name", Type: field.TypeString},
		{Name: "requester_id", Type: field.TypeString},
		{Name: "requester_name", Type: field.TypeString},
		{Name: "requester_email", Type: field.TypeString},
		{Name: "vm_name", Type: field.TypeString},
		{Name: "size", Type: field.TypeEnum, Enums: []string{"S", "M", "L", "XL"}},
		{Name: "cpu_cores", Type: field.TypeInt},
		{Name: "memory_gb", Type: field.TypeInt},
		{Name: "disk_gb", Type: field.TypeInt},
		{Name: "justification", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "APPROVED", "REJECTED", "CANCELLED", "PROVISIONING", "READY", "FAILED"}, Default: "PENDING"},
		{Name: "decider_name", Type: field.TypeString, Nullable: true},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
		{Name: "rejection_reason", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "vm_id", Type: field.TypeString, Nullable: true},
		{Name: "vmware_vm_id", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "hostname", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "version", Type: field.TypeInt64, Default: 0},
	}
	// RequestProjectionsTable holds the schema information for the "request_projections" table.
	RequestProjectionsTable = &schema.Table{
		Name:       "request_projections",
		Columns:    RequestProjectionsColumns,
		PrimaryKey: []*schema.Column{RequestProjectionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "requestprojection_tenant_id_requester_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RequestProjectionsColumns[1], RequestProjectionsColumns[4], RequestProjectionsColumns[21]},
			},
			{
				Name:    "requestprojection_tenant_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RequestProjectionsColumns[1], RequestProjectionsColumns[13], RequestProjectionsColumns[21]},
			},
			{
				Name:    "requestprojection_tenant_id_project_id",
				Unique:  false,
				Columns: []*schema.Column{RequestProjectionsColumns[1], RequestProjectionsColumns[2]},
			},
			{
				Name:    "requestprojection_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{RequestProjectionsColumns[13], RequestProjectionsColumns[22]},
			},
		},
	}
	// TimelineEntriesColumns holds the columns for the "timeline_entries" table.
	TimelineEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "actor_name", Type: field.TypeString, Nullable: true},
		{Name: "details", Type: field.TypeString, Nullable: true, Size: 2048},
		{Name: "occurred_at", Type: field.TypeTime},
	}
	// TimelineEntriesTable holds the schema information for the "timeline_entries" table.
	TimelineEntriesTable = &schema.Table{
		Name:       "timeline_entries",
		Columns:    TimelineEntriesColumns,
		PrimaryKey: []*schema.Column{TimelineEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "timelineentry_request_id_event_type_occurred_at",
				Unique:  true,
				Columns: []*schema.Column{TimelineEntriesColumns[3], TimelineEntriesColumns[4], TimelineEntriesColumns[7]},
			},
			{
				Name:    "timelineentry_tenant_id_request_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{TimelineEntriesColumns[1], TimelineEntriesColumns[3], TimelineEntriesColumns[7]},
			},
		},
	}
	// VmwareConfigsColumns holds the columns for the "vmware_configs" table.
	VmwareConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString, Unique: true},
		{Name: "vcenter_url", Type: field.TypeString},
		{Name: "username", Type: field.TypeString},
		{Name: "password_enc", Type: field.TypeString},
		{Name: "datacenter", Type: field.TypeString},
		{Name: "cluster", Type: field.TypeString},
		{Name: "datastore", Type: field.TypeString},
		{Name: "network", Type: field.TypeString},
		{Name: "template", Type: field.TypeString},
		{Name: "verified_at", Type: field.TypeTime, Nullable: true},
		{Name: "version", Type: field.TypeInt64, Default: 0},
	}
	// VmwareConfigsTable holds the schema information for the "vmware_configs" table.
	VmwareConfigsTable = &schema.Table{
		Name:       "vmware_configs",
		Columns:    VmwareConfigsColumns,
		PrimaryKey: []*schema.Column{VmwareConfigsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		NotificationsTable,
		PoisonedEventsTable,
		ProjectionOffsetsTable,
		ProvisioningProgressesTable,
		RequestProjectionsTable,
		TimelineEntriesTable,
		VmwareConfigsTable,
	}
)

func init() {
}
