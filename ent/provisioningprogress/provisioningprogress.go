// Code generated by ent, DO NOT EDIT.

package provisioningprogress

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the provisioningprogress type in the database.
	Label = "provisioning_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldStageTimestamps holds the string denoting the stage_timestamps field in the database.
	FieldStageTimestamps = "stage_timestamps"
	// FieldEstimatedRemainingSeconds holds the string denoting the estimated_remaining_seconds field in the database.
	FieldEstimatedRemainingSeconds = "estimated_remaining_seconds"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the provisioningprogress in the database.
	Table = "provisioning_progresses"
)

// Columns holds all SQL columns for provisioningprogress fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldRequestID,
	FieldStage,
	FieldStageTimestamps,
	FieldEstimatedRemainingSeconds,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	TenantIDValidator func(string) error
)

// Stage defines the type for the "stage" enum field.
type Stage string

// Stage values.
const (
	StageCLONING             Stage = "CLONING"
	StageCONFIGURING         Stage = "CONFIGURING"
	StagePOWERING_ON         Stage = "POWERING_ON"
	StageWAITING_FOR_NETWORK Stage = "WAITING_FOR_NETWORK"
	StageREADY               Stage = "READY"
)

func (s Stage) String() string {
	return string(s)
}

// StageValidator is a validator for the "stage" field enum values. It is called by the builders before save.
func StageValidator(s Stage) error {
	switch s {
	case StageCLONING, StageCONFIGURING, StagePOWERING_ON, StageWAITING_FOR_NETWORK, StageREADY:
		return nil
	default:
		return fmt.Errorf("provisioningprogress: invalid enum value for stage field: %q", s)
	}
}

// OrderOption defines the ordering options for the ProvisioningProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByEstimatedRemainingSeconds orders the results by the estimated_remaining_seconds field.
func ByEstimatedRemainingSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedRemainingSeconds, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
