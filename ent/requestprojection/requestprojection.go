// Code generated by ent, DO NOT EDIT.

package requestprojection

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the requestprojection type in the database.
	Label = "request_projection"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldProjectName holds the string denoting the project_name field in the database.
	FieldProjectName = "project_name"
	// FieldRequesterID holds the string denoting the requester_id field in the database.
	FieldRequesterID = "requester_id"
	// FieldRequesterName holds the string denoting the requester_name field in the database.
	FieldRequesterName = "requester_name"
	// FieldRequesterEmail holds the string denoting the requester_email field in the database.
	FieldRequesterEmail = "requester_email"
	// FieldVMName holds the string denoting the vm_name field in the database.
	FieldVMName = "vm_name"
	// FieldSize holds the string denoting the size field in the database.
	FieldSize = "size"
	// FieldCPUCores holds the string denoting the cpu_cores field in the database.
	FieldCPUCores = "cpu_cores"
	// FieldMemoryGB holds the string denoting the memory_gb field in the database.
	FieldMemoryGB = "memory_gb"
	// FieldDiskGB holds the string denoting the disk_gb field in the database.
	FieldDiskGB = "disk_gb"
	// FieldJustification holds the string denoting the justification field in the database.
	FieldJustification = "justification"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDeciderName holds the string denoting the decider_name field in the database.
	FieldDeciderName = "decider_name"
	// FieldDecidedAt holds the string denoting the decided_at field in the database.
	FieldDecidedAt = "decided_at"
	// FieldRejectionReason holds the string denoting the rejection_reason field in the database.
	FieldRejectionReason = "rejection_reason"
	// FieldVMID holds the string denoting the vm_id field in the database.
	FieldVMID = "vm_id"
	// FieldVmwareVMID holds the string denoting the vmware_vm_id field in the database.
	FieldVmwareVMID = "vmware_vm_id"
	// FieldIPAddress holds the string denoting the ip_address field in the database.
	FieldIPAddress = "ip_address"
	// FieldHostname holds the string denoting the hostname field in the database.
	FieldHostname = "hostname"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// Table holds the table name of the requestprojection in the database.
	Table = "request_projections"
)

// Columns holds all SQL columns for requestprojection fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldProjectID,
	FieldProjectName,
	FieldRequesterID,
	FieldRequesterName,
	FieldRequesterEmail,
	FieldVMName,
	FieldSize,
	FieldCPUCores,
	FieldMemoryGB,
	FieldDiskGB,
	FieldJustification,
	FieldStatus,
	FieldDeciderName,
	FieldDecidedAt,
	FieldRejectionReason,
	FieldVMID,
	FieldVmwareVMID,
	FieldIPAddress,
	FieldHostname,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldVersion,
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
	// ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	ProjectIDValidator func(string) error
	// ProjectNameValidator is a validator for the "project_name" field. It is called by the builders before save.
	ProjectNameValidator func(string) error
	// RequesterIDValidator is a validator for the "requester_id" field. It is called by the builders before save.
	RequesterIDValidator func(string) error
	// RequesterNameValidator is a validator for the "requester_name" field. It is called by the builders before save.
	RequesterNameValidator func(string) error
	// RequesterEmailValidator is a validator for the "requester_email" field. It is called by the builders before save.
	RequesterEmailValidator func(string) error
	// VMNameValidator is a validator for the "vm_name" field. It is called by the builders before save.
	VMNameValidator func(string) error
	// JustificationValidator is a validator for the "justification" field. It is called by the builders before save.
	JustificationValidator func(string) error
	// RejectionReasonValidator is a validator for the "rejection_reason" field. It is called by the builders before save.
	RejectionReasonValidator func(string) error
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
)

// Size defines the type for the "size" enum field.
type Size string

// Size values.
const (
	SizeS  Size = "S"
	SizeM  Size = "M"
	SizeL  Size = "L"
	SizeXL Size = "XL"
)

func (s Size) String() string {
	return string(s)
}

// SizeValidator is a validator for the "size" field enum values. It is called by the builders before save.
func SizeValidator(s Size) error {
	switch s {
	case SizeS, SizeM, SizeL, SizeXL:
		return nil
	default:
		return fmt.Errorf("requestprojection: invalid enum value for size field: %q", s)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPENDING is the default value of the Status enum.
const DefaultStatus = StatusPENDING

// Status values.
const (
	StatusPENDING      Status = "PENDING"
	StatusAPPROVED     Status = "APPROVED"
	StatusREJECTED     Status = "REJECTED"
	StatusCANCELLED    Status = "CANCELLED"
	StatusPROVISIONING Status = "PROVISIONING"
	StatusREADY        Status = "READY"
	StatusFAILED       Status = "FAILED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPENDING, StatusAPPROVED, StatusREJECTED, StatusCANCELLED, StatusPROVISIONING, StatusREADY, StatusFAILED:
		return nil
	default:
		return fmt.Errorf("requestprojection: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the RequestProjection queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByProjectName orders the results by the project_name field.
func ByProjectName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectName, opts...).ToFunc()
}

// ByRequesterID orders the results by the requester_id field.
func ByRequesterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequesterID, opts...).ToFunc()
}

// ByRequesterName orders the results by the requester_name field.
func ByRequesterName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequesterName, opts...).ToFunc()
}

// ByRequesterEmail orders the results by the requester_email field.
func ByRequesterEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequesterEmail, opts...).ToFunc()
}

// ByVMName orders the results by the vm_name field.
func ByVMName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVMName, opts...).ToFunc()
}

// BySize orders the results by the size field.
func BySize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSize, opts...).ToFunc()
}

// ByCPUCores orders the results by the cpu_cores field.
func ByCPUCores(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCPUCores, opts...).ToFunc()
}

// ByMemoryGB orders the results by the memory_gb field.
func ByMemoryGB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoryGB, opts...).ToFunc()
}

// ByDiskGB orders the results by the disk_gb field.
func ByDiskGB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiskGB, opts...).ToFunc()
}

// ByJustification orders the results by the justification field.
func ByJustification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJustification, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDeciderName orders the results by the decider_name field.
func ByDeciderName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeciderName, opts...).ToFunc()
}

// ByDecidedAt orders the results by the decided_at field.
func ByDecidedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecidedAt, opts...).ToFunc()
}

// ByRejectionReason orders the results by the rejection_reason field.
func ByRejectionReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectionReason, opts...).ToFunc()
}

// ByVMID orders the results by the vm_id field.
func ByVMID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVMID, opts...).ToFunc()
}

// ByVmwareVMID orders the results by the vmware_vm_id field.
func ByVmwareVMID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVmwareVMID, opts...).ToFunc()
}

// ByIPAddress orders the results by the ip_address field.
func ByIPAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIPAddress, opts...).ToFunc()
}

// ByHostname orders the results by the hostname field.
func ByHostname(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHostname, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}
