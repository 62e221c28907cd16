// Code generated by ent, DO NOT EDIT.

package requestprojection

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"vc-drover.io/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldTenantID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldProjectID, v))
}

// ProjectName applies equality check predicate on the "project_name" field. It's identical to ProjectNameEQ.
func ProjectName(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldProjectName, v))
}

// RequesterID applies equality check predicate on the "requester_id" field. It's identical to RequesterIDEQ.
func RequesterID(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldRequesterID, v))
}

// RequesterName applies equality check predicate on the "requester_name" field. It's identical to RequesterNameEQ.
func RequesterName(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldRequesterName, v))
}

// RequesterEmail applies equality check predicate on the "requester_email" field. It's identical to RequesterEmailEQ.
func RequesterEmail(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldRequesterEmail, v))
}

// VMName applies equality check predicate on the "vm_name" field. It's identical to VMNameEQ.
func VMName(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldVMName, v))
}

// CPUCores applies equality check predicate on the "cpu_cores" field. It's identical to CPUCoresEQ.
func CPUCores(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldCPUCores, v))
}

// MemoryGB applies equality check predicate on the "memory_gb" field. It's identical to MemoryGBEQ.
func MemoryGB(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldMemoryGB, v))
}

// DiskGB applies equality check predicate on the "disk_gb" field. It's identical to DiskGBEQ.
func DiskGB(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldDiskGB, v))
}

// Justification applies equality check predicate on the "justification" field. It's identical to JustificationEQ.
func Justification(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldJustification, v))
}

// DeciderName applies equality check predicate on the "decider_name" field. It's identical to DeciderNameEQ.
func DeciderName(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldDeciderName, v))
}

// DecidedAt applies equality check predicate on the "decided_at" field. It's identical to DecidedAtEQ.
func DecidedAt(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldDecidedAt, v))
}

// RejectionReason applies equality check predicate on the "rejection_reason" field. It's identical to RejectionReasonEQ.
func RejectionReason(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldRejectionReason, v))
}

// VMID applies equality check predicate on the "vm_id" field. It's identical to VMIDEQ.
func VMID(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldVMID, v))
}

// VmwareVMID applies equality check predicate on the "vmware_vm_id" field. It's identical to VmwareVMIDEQ.
func VmwareVMID(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldVmwareVMID, v))
}

// IPAddress applies equality check predicate on the "ip_address" field. It's identical to IPAddressEQ.
func IPAddress(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldIPAddress, v))
}

// Hostname applies equality check predicate on the "hostname" field. It's identical to HostnameEQ.
func Hostname(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldHostname, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldUpdatedAt, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldVersion, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContainsFold(FieldTenantID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContainsFold(FieldProjectID, v))
}

// ProjectNameEQ applies the EQ predicate on the "project_name" field.
func ProjectNameEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldProjectName, v))
}

// ProjectNameNEQ applies the NEQ predicate on the "project_name" field.
func ProjectNameNEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldProjectName, v))
}

// ProjectNameIn applies the In predicate on the "project_name" field.
func ProjectNameIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldProjectName, vs...))
}

// ProjectNameNotIn applies the NotIn predicate on the "project_name" field.
func ProjectNameNotIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldProjectName, vs...))
}

// ProjectNameGT applies the GT predicate on the "project_name" field.
func ProjectNameGT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldProjectName, v))
}

// ProjectNameGTE applies the GTE predicate on the "project_name" field.
func ProjectNameGTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldProjectName, v))
}

// ProjectNameLT applies the LT predicate on the "project_name" field.
func ProjectNameLT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldProjectName, v))
}

// ProjectNameLTE applies the LTE predicate on the "project_name" field.
func ProjectNameLTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldProjectName, v))
}

// ProjectNameContains applies the Contains predicate on the "project_name" field.
func ProjectNameContains(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContains(FieldProjectName, v))
}

// ProjectNameHasPrefix applies the HasPrefix predicate on the "project_name" field.
func ProjectNameHasPrefix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasPrefix(FieldProjectName, v))
}

// ProjectNameHasSuffix applies the HasSuffix predicate on the "project_name" field.
func ProjectNameHasSuffix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasSuffix(FieldProjectName, v))
}

// ProjectNameEqualFold applies the EqualFold predicate on the "project_name" field.
func ProjectNameEqualFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEqualFold(FieldProjectName, v))
}

// ProjectNameContainsFold applies the ContainsFold predicate on the "project_name" field.
func ProjectNameContainsFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContainsFold(FieldProjectName, v))
}

// RequesterIDEQ applies the EQ predicate on the "requester_id" field.
func RequesterIDEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldRequesterID, v))
}

// RequesterIDNEQ applies the NEQ predicate on the "requester_id" field.
func RequesterIDNEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldRequesterID, v))
}

// RequesterIDIn applies the In predicate on the "requester_id" field.
func RequesterIDIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldRequesterID, vs...))
}

// RequesterIDNotIn applies the NotIn predicate on the "requester_id" field.
func RequesterIDNotIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldRequesterID, vs...))
}

// RequesterIDGT applies the GT predicate on the "requester_id" field.
func RequesterIDGT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldRequesterID, v))
}

// RequesterIDGTE applies the GTE predicate on the "requester_id" field.
func RequesterIDGTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldRequesterID, v))
}

// RequesterIDLT applies the LT predicate on the "requester_id" field.
func RequesterIDLT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldRequesterID, v))
}

// RequesterIDLTE applies the LTE predicate on the "requester_id" field.
func RequesterIDLTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldRequesterID, v))
}

// RequesterIDContains applies the Contains predicate on the "requester_id" field.
func RequesterIDContains(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContains(FieldRequesterID, v))
}

// RequesterIDHasPrefix applies the HasPrefix predicate on the "requester_id" field.
func RequesterIDHasPrefix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasPrefix(FieldRequesterID, v))
}

// RequesterIDHasSuffix applies the HasSuffix predicate on the "requester_id" field.
func RequesterIDHasSuffix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasSuffix(FieldRequesterID, v))
}

// RequesterIDEqualFold applies the EqualFold predicate on the "requester_id" field.
func RequesterIDEqualFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEqualFold(FieldRequesterID, v))
}

// RequesterIDContainsFold applies the ContainsFold predicate on the "requester_id" field.
func RequesterIDContainsFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContainsFold(FieldRequesterID, v))
}

// RequesterNameEQ applies the EQ predicate on the "requester_name" field.
func RequesterNameEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldRequesterName, v))
}

// RequesterNameNEQ applies the NEQ predicate on the "requester_name" field.
func RequesterNameNEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldRequesterName, v))
}

// RequesterNameIn applies the In predicate on the "requester_name" field.
func RequesterNameIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldRequesterName, vs...))
}

// RequesterNameNotIn applies the NotIn predicate on the "requester_name" field.
func RequesterNameNotIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldRequesterName, vs...))
}

// RequesterNameGT applies the GT predicate on the "requester_name" field.
func RequesterNameGT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldRequesterName, v))
}

// RequesterNameGTE applies the GTE predicate on the "requester_name" field.
func RequesterNameGTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldRequesterName, v))
}

// RequesterNameLT applies the LT predicate on the "requester_name" field.
func RequesterNameLT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldRequesterName, v))
}

// RequesterNameLTE applies the LTE predicate on the "requester_name" field.
func RequesterNameLTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldRequesterName, v))
}

// RequesterNameContains applies the Contains predicate on the "requester_name" field.
func RequesterNameContains(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContains(FieldRequesterName, v))
}

// RequesterNameHasPrefix applies the HasPrefix predicate on the "requester_name" field.
func RequesterNameHasPrefix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasPrefix(FieldRequesterName, v))
}

// RequesterNameHasSuffix applies the HasSuffix predicate on the "requester_name" field.
func RequesterNameHasSuffix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasSuffix(FieldRequesterName, v))
}

// RequesterNameEqualFold applies the EqualFold predicate on the "requester_name" field.
func RequesterNameEqualFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEqualFold(FieldRequesterName, v))
}

// RequesterNameContainsFold applies the ContainsFold predicate on the "requester_name" field.
func RequesterNameContainsFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContainsFold(FieldRequesterName, v))
}

// RequesterEmailEQ applies the EQ predicate on the "requester_email" field.
func RequesterEmailEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldRequesterEmail, v))
}

// RequesterEmailNEQ applies the NEQ predicate on the "requester_email" field.
func RequesterEmailNEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldRequesterEmail, v))
}

// RequesterEmailIn applies the In predicate on the "requester_email" field.
func RequesterEmailIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldRequesterEmail, vs...))
}

// RequesterEmailNotIn applies the NotIn predicate on the "requester_email" field.
func RequesterEmailNotIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldRequesterEmail, vs...))
}

// RequesterEmailGT applies the GT predicate on the "requester_email" field.
func RequesterEmailGT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldRequesterEmail, v))
}

// RequesterEmailGTE applies the GTE predicate on the "requester_email" field.
func RequesterEmailGTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldRequesterEmail, v))
}

// RequesterEmailLT applies the LT predicate on the "requester_email" field.
func RequesterEmailLT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldRequesterEmail, v))
}

// RequesterEmailLTE applies the LTE predicate on the "requester_email" field.
func RequesterEmailLTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldRequesterEmail, v))
}

// RequesterEmailContains applies the Contains predicate on the "requester_email" field.
func RequesterEmailContains(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContains(FieldRequesterEmail, v))
}

// RequesterEmailHasPrefix applies the HasPrefix predicate on the "requester_email" field.
func RequesterEmailHasPrefix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasPrefix(FieldRequesterEmail, v))
}

// RequesterEmailHasSuffix applies the HasSuffix predicate on the "requester_email" field.
func RequesterEmailHasSuffix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasSuffix(FieldRequesterEmail, v))
}

// RequesterEmailEqualFold applies the EqualFold predicate on the "requester_email" field.
func RequesterEmailEqualFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEqualFold(FieldRequesterEmail, v))
}

// RequesterEmailContainsFold applies the ContainsFold predicate on the "requester_email" field.
func RequesterEmailContainsFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContainsFold(FieldRequesterEmail, v))
}

// VMNameEQ applies the EQ predicate on the "vm_name" field.
func VMNameEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldVMName, v))
}

// VMNameNEQ applies the NEQ predicate on the "vm_name" field.
func VMNameNEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldVMName, v))
}

// VMNameIn applies the In predicate on the "vm_name" field.
func VMNameIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldVMName, vs...))
}

// VMNameNotIn applies the NotIn predicate on the "vm_name" field.
func VMNameNotIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldVMName, vs...))
}

// VMNameGT applies the GT predicate on the "vm_name" field.
func VMNameGT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldVMName, v))
}

// VMNameGTE applies the GTE predicate on the "vm_name" field.
func VMNameGTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldVMName, v))
}

// VMNameLT applies the LT predicate on the "vm_name" field.
func VMNameLT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldVMName, v))
}

// VMNameLTE applies the LTE predicate on the "vm_name" field.
func VMNameLTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldVMName, v))
}

// VMNameContains applies the Contains predicate on the "vm_name" field.
func VMNameContains(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContains(FieldVMName, v))
}

// VMNameHasPrefix applies the HasPrefix predicate on the "vm_name" field.
func VMNameHasPrefix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasPrefix(FieldVMName, v))
}

// VMNameHasSuffix applies the HasSuffix predicate on the "vm_name" field.
func VMNameHasSuffix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasSuffix(FieldVMName, v))
}

// VMNameEqualFold applies the EqualFold predicate on the "vm_name" field.
func VMNameEqualFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEqualFold(FieldVMName, v))
}

// VMNameContainsFold applies the ContainsFold predicate on the "vm_name" field.
func VMNameContainsFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContainsFold(FieldVMName, v))
}

// SizeEQ applies the EQ predicate on the "size" field.
func SizeEQ(v Size) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldSize, v))
}

// SizeNEQ applies the NEQ predicate on the "size" field.
func SizeNEQ(v Size) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldSize, v))
}

// SizeIn applies the In predicate on the "size" field.
func SizeIn(vs ...Size) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldSize, vs...))
}

// SizeNotIn applies the NotIn predicate on the "size" field.
func SizeNotIn(vs ...Size) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldSize, vs...))
}

// CPUCoresEQ applies the EQ predicate on the "cpu_cores" field.
func CPUCoresEQ(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldCPUCores, v))
}

// CPUCoresNEQ applies the NEQ predicate on the "cpu_cores" field.
func CPUCoresNEQ(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldCPUCores, v))
}

// CPUCoresIn applies the In predicate on the "cpu_cores" field.
func CPUCoresIn(vs ...int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldCPUCores, vs...))
}

// CPUCoresNotIn applies the NotIn predicate on the "cpu_cores" field.
func CPUCoresNotIn(vs ...int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldCPUCores, vs...))
}

// CPUCoresGT applies the GT predicate on the "cpu_cores" field.
func CPUCoresGT(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldCPUCores, v))
}

// CPUCoresGTE applies the GTE predicate on the "cpu_cores" field.
func CPUCoresGTE(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldCPUCores, v))
}

// CPUCoresLT applies the LT predicate on the "cpu_cores" field.
func CPUCoresLT(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldCPUCores, v))
}

// CPUCoresLTE applies the LTE predicate on the "cpu_cores" field.
func CPUCoresLTE(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldCPUCores, v))
}

// MemoryGBEQ applies the EQ predicate on the "memory_gb" field.
func MemoryGBEQ(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldMemoryGB, v))
}

// MemoryGBNEQ applies the NEQ predicate on the "memory_gb" field.
func MemoryGBNEQ(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldMemoryGB, v))
}

// MemoryGBIn applies the In predicate on the "memory_gb" field.
func MemoryGBIn(vs ...int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldMemoryGB, vs...))
}

// MemoryGBNotIn applies the NotIn predicate on the "memory_gb" field.
func MemoryGBNotIn(vs ...int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldMemoryGB, vs...))
}

// MemoryGBGT applies the GT predicate on the "memory_gb" field.
func MemoryGBGT(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldMemoryGB, v))
}

// MemoryGBGTE applies the GTE predicate on the "memory_gb" field.
func MemoryGBGTE(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldMemoryGB, v))
}

// MemoryGBLT applies the LT predicate on the "memory_gb" field.
func MemoryGBLT(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldMemoryGB, v))
}

// MemoryGBLTE applies the LTE predicate on the "memory_gb" field.
func MemoryGBLTE(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldMemoryGB, v))
}

// DiskGBEQ applies the EQ predicate on the "disk_gb" field.
func DiskGBEQ(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldDiskGB, v))
}

// DiskGBNEQ applies the NEQ predicate on the "disk_gb" field.
func DiskGBNEQ(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldDiskGB, v))
}

// DiskGBIn applies the In predicate on the "disk_gb" field.
func DiskGBIn(vs ...int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldDiskGB, vs...))
}

// DiskGBNotIn applies the NotIn predicate on the "disk_gb" field.
func DiskGBNotIn(vs ...int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldDiskGB, vs...))
}

// DiskGBGT applies the GT predicate on the "disk_gb" field.
func DiskGBGT(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldDiskGB, v))
}

// DiskGBGTE applies the GTE predicate on the "disk_gb" field.
func DiskGBGTE(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldDiskGB, v))
}

// DiskGBLT applies the LT predicate on the "disk_gb" field.
func DiskGBLT(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldDiskGB, v))
}

// DiskGBLTE applies the LTE predicate on the "disk_gb" field.
func DiskGBLTE(v int) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldDiskGB, v))
}

// JustificationEQ applies the EQ predicate on the "justification" field.
func JustificationEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldJustification, v))
}

// JustificationNEQ applies the NEQ predicate on the "justification" field.
func JustificationNEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldJustification, v))
}

// JustificationIn applies the In predicate on the "justification" field.
func JustificationIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldJustification, vs...))
}

// JustificationNotIn applies the NotIn predicate on the "justification" field.
func JustificationNotIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldJustification, vs...))
}

// JustificationGT applies the GT predicate on the "justification" field.
func JustificationGT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldJustification, v))
}

// JustificationGTE applies the GTE predicate on the "justification" field.
func JustificationGTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldJustification, v))
}

// JustificationLT applies the LT predicate on the "justification" field.
func JustificationLT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldJustification, v))
}

// JustificationLTE applies the LTE predicate on the "justification" field.
func JustificationLTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldJustification, v))
}

// JustificationContains applies the Contains predicate on the "justification" field.
func JustificationContains(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContains(FieldJustification, v))
}

// JustificationHasPrefix applies the HasPrefix predicate on the "justification" field.
func JustificationHasPrefix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasPrefix(FieldJustification, v))
}

// JustificationHasSuffix applies the HasSuffix predicate on the "justification" field.
func JustificationHasSuffix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasSuffix(FieldJustification, v))
}

// JustificationEqualFold applies the EqualFold predicate on the "justification" field.
func JustificationEqualFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEqualFold(FieldJustification, v))
}

// JustificationContainsFold applies the ContainsFold predicate on the "justification" field.
func JustificationContainsFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContainsFold(FieldJustification, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldStatus, vs...))
}

// DeciderNameEQ applies the EQ predicate on the "decider_name" field.
func DeciderNameEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldDeciderName, v))
}

// DeciderNameNEQ applies the NEQ predicate on the "decider_name" field.
func DeciderNameNEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldDeciderName, v))
}

// DeciderNameIn applies the In predicate on the "decider_name" field.
func DeciderNameIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldDeciderName, vs...))
}

// DeciderNameNotIn applies the NotIn predicate on the "decider_name" field.
func DeciderNameNotIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldDeciderName, vs...))
}

// DeciderNameGT applies the GT predicate on the "decider_name" field.
func DeciderNameGT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldDeciderName, v))
}

// DeciderNameGTE applies the GTE predicate on the "decider_name" field.
func DeciderNameGTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldDeciderName, v))
}

// DeciderNameLT applies the LT predicate on the "decider_name" field.
func DeciderNameLT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldDeciderName, v))
}

// DeciderNameLTE applies the LTE predicate on the "decider_name" field.
func DeciderNameLTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldDeciderName, v))
}

// DeciderNameContains applies the Contains predicate on the "decider_name" field.
func DeciderNameContains(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContains(FieldDeciderName, v))
}

// DeciderNameHasPrefix applies the HasPrefix predicate on the "decider_name" field.
func DeciderNameHasPrefix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasPrefix(FieldDeciderName, v))
}

// DeciderNameHasSuffix applies the HasSuffix predicate on the "decider_name" field.
func DeciderNameHasSuffix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasSuffix(FieldDeciderName, v))
}

// DeciderNameIsNil applies the IsNil predicate on the "decider_name" field.
func DeciderNameIsNil() predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIsNull(FieldDeciderName))
}

// DeciderNameNotNil applies the NotNil predicate on the "decider_name" field.
func DeciderNameNotNil() predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotNull(FieldDeciderName))
}

// DeciderNameEqualFold applies the EqualFold predicate on the "decider_name" field.
func DeciderNameEqualFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEqualFold(FieldDeciderName, v))
}

// DeciderNameContainsFold applies the ContainsFold predicate on the "decider_name" field.
func DeciderNameContainsFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContainsFold(FieldDeciderName, v))
}

// DecidedAtEQ applies the EQ predicate on the "decided_at" field.
func DecidedAtEQ(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedAtNEQ applies the NEQ predicate on the "decided_at" field.
func DecidedAtNEQ(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldDecidedAt, v))
}

// DecidedAtIn applies the In predicate on the "decided_at" field.
func DecidedAtIn(vs ...time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldDecidedAt, vs...))
}

// DecidedAtNotIn applies the NotIn predicate on the "decided_at" field.
func DecidedAtNotIn(vs ...time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldDecidedAt, vs...))
}

// DecidedAtGT applies the GT predicate on the "decided_at" field.
func DecidedAtGT(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldDecidedAt, v))
}

// DecidedAtGTE applies the GTE predicate on the "decided_at" field.
func DecidedAtGTE(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldDecidedAt, v))
}

// DecidedAtLT applies the LT predicate on the "decided_at" field.
func DecidedAtLT(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldDecidedAt, v))
}

// DecidedAtLTE applies the LTE predicate on the "decided_at" field.
func DecidedAtLTE(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldDecidedAt, v))
}

// DecidedAtIsNil applies the IsNil predicate on the "decided_at" field.
func DecidedAtIsNil() predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIsNull(FieldDecidedAt))
}

// DecidedAtNotNil applies the NotNil predicate on the "decided_at" field.
func DecidedAtNotNil() predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotNull(FieldDecidedAt))
}

// RejectionReasonEQ applies the EQ predicate on the "rejection_reason" field.
func RejectionReasonEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldRejectionReason, v))
}

// RejectionReasonNEQ applies the NEQ predicate on the "rejection_reason" field.
func RejectionReasonNEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldRejectionReason, v))
}

// RejectionReasonIn applies the In predicate on the "rejection_reason" field.
func RejectionReasonIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldRejectionReason, vs...))
}

// RejectionReasonNotIn applies the NotIn predicate on the "rejection_reason" field.
func RejectionReasonNotIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldRejectionReason, vs...))
}

// RejectionReasonGT applies the GT predicate on the "rejection_reason" field.
func RejectionReasonGT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldRejectionReason, v))
}

// RejectionReasonGTE applies the GTE predicate on the "rejection_reason" field.
func RejectionReasonGTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldRejectionReason, v))
}

// RejectionReasonLT applies the LT predicate on the "rejection_reason" field.
func RejectionReasonLT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldRejectionReason, v))
}

// RejectionReasonLTE applies the LTE predicate on the "rejection_reason" field.
func RejectionReasonLTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldRejectionReason, v))
}

// RejectionReasonContains applies the Contains predicate on the "rejection_reason" field.
func RejectionReasonContains(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContains(FieldRejectionReason, v))
}

// RejectionReasonHasPrefix applies the HasPrefix predicate on the "rejection_reason" field.
func RejectionReasonHasPrefix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasPrefix(FieldRejectionReason, v))
}

// RejectionReasonHasSuffix applies the HasSuffix predicate on the "rejection_reason" field.
func RejectionReasonHasSuffix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasSuffix(FieldRejectionReason, v))
}

// RejectionReasonIsNil applies the IsNil predicate on the "rejection_reason" field.
func RejectionReasonIsNil() predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIsNull(FieldRejectionReason))
}

// RejectionReasonNotNil applies the NotNil predicate on the "rejection_reason" field.
func RejectionReasonNotNil() predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotNull(FieldRejectionReason))
}

// RejectionReasonEqualFold applies the EqualFold predicate on the "rejection_reason" field.
func RejectionReasonEqualFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEqualFold(FieldRejectionReason, v))
}

// RejectionReasonContainsFold applies the ContainsFold predicate on the "rejection_reason" field.
func RejectionReasonContainsFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContainsFold(FieldRejectionReason, v))
}

// VMIDEQ applies the EQ predicate on the "vm_id" field.
func VMIDEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldVMID, v))
}

// VMIDNEQ applies the NEQ predicate on the "vm_id" field.
func VMIDNEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldVMID, v))
}

// VMIDIn applies the In predicate on the "vm_id" field.
func VMIDIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldVMID, vs...))
}

// VMIDNotIn applies the NotIn predicate on the "vm_id" field.
func VMIDNotIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldVMID, vs...))
}

// VMIDGT applies the GT predicate on the "vm_id" field.
func VMIDGT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldVMID, v))
}

// VMIDGTE applies the GTE predicate on the "vm_id" field.
func VMIDGTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldVMID, v))
}

// VMIDLT applies the LT predicate on the "vm_id" field.
func VMIDLT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldVMID, v))
}

// VMIDLTE applies the LTE predicate on the "vm_id" field.
func VMIDLTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldVMID, v))
}

// VMIDContains applies the Contains predicate on the "vm_id" field.
func VMIDContains(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContains(FieldVMID, v))
}

// VMIDHasPrefix applies the HasPrefix predicate on the "vm_id" field.
func VMIDHasPrefix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasPrefix(FieldVMID, v))
}

// VMIDHasSuffix applies the HasSuffix predicate on the "vm_id" field.
func VMIDHasSuffix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasSuffix(FieldVMID, v))
}

// VMIDIsNil applies the IsNil predicate on the "vm_id" field.
func VMIDIsNil() predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIsNull(FieldVMID))
}

// VMIDNotNil applies the NotNil predicate on the "vm_id" field.
func VMIDNotNil() predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotNull(FieldVMID))
}

// VMIDEqualFold applies the EqualFold predicate on the "vm_id" field.
func VMIDEqualFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEqualFold(FieldVMID, v))
}

// VMIDContainsFold applies the ContainsFold predicate on the "vm_id" field.
func VMIDContainsFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContainsFold(FieldVMID, v))
}

// VmwareVMIDEQ applies the EQ predicate on the "vmware_vm_id" field.
func VmwareVMIDEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldVmwareVMID, v))
}

// VmwareVMIDNEQ applies the NEQ predicate on the "vmware_vm_id" field.
func VmwareVMIDNEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldVmwareVMID, v))
}

// VmwareVMIDIn applies the In predicate on the "vmware_vm_id" field.
func VmwareVMIDIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldVmwareVMID, vs...))
}

// VmwareVMIDNotIn applies the NotIn predicate on the "vmware_vm_id" field.
func VmwareVMIDNotIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldVmwareVMID, vs...))
}

// VmwareVMIDGT applies the GT predicate on the "vmware_vm_id" field.
func VmwareVMIDGT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldVmwareVMID, v))
}

// VmwareVMIDGTE applies the GTE predicate on the "vmware_vm_id" field.
func VmwareVMIDGTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldVmwareVMID, v))
}

// VmwareVMIDLT applies the LT predicate on the "vmware_vm_id" field.
func VmwareVMIDLT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldVmwareVMID, v))
}

// VmwareVMIDLTE applies the LTE predicate on the "vmware_vm_id" field.
func VmwareVMIDLTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldVmwareVMID, v))
}

// VmwareVMIDContains applies the Contains predicate on the "vmware_vm_id" field.
func VmwareVMIDContains(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContains(FieldVmwareVMID, v))
}

// VmwareVMIDHasPrefix applies the HasPrefix predicate on the "vmware_vm_id" field.
func VmwareVMIDHasPrefix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasPrefix(FieldVmwareVMID, v))
}

// VmwareVMIDHasSuffix applies the HasSuffix predicate on the "vmware_vm_id" field.
func VmwareVMIDHasSuffix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasSuffix(FieldVmwareVMID, v))
}

// VmwareVMIDIsNil applies the IsNil predicate on the "vmware_vm_id" field.
func VmwareVMIDIsNil() predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIsNull(FieldVmwareVMID))
}

// VmwareVMIDNotNil applies the NotNil predicate on the "vmware_vm_id" field.
func VmwareVMIDNotNil() predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotNull(FieldVmwareVMID))
}

// VmwareVMIDEqualFold applies the EqualFold predicate on the "vmware_vm_id" field.
func VmwareVMIDEqualFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEqualFold(FieldVmwareVMID, v))
}

// VmwareVMIDContainsFold applies the ContainsFold predicate on the "vmware_vm_id" field.
func VmwareVMIDContainsFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContainsFold(FieldVmwareVMID, v))
}

// IPAddressEQ applies the EQ predicate on the "ip_address" field.
func IPAddressEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldIPAddress, v))
}

// IPAddressNEQ applies the NEQ predicate on the "ip_address" field.
func IPAddressNEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldIPAddress, v))
}

// IPAddressIn applies the In predicate on the "ip_address" field.
func IPAddressIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldIPAddress, vs...))
}

// IPAddressNotIn applies the NotIn predicate on the "ip_address" field.
func IPAddressNotIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldIPAddress, vs...))
}

// IPAddressGT applies the GT predicate on the "ip_address" field.
func IPAddressGT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldIPAddress, v))
}

// IPAddressGTE applies the GTE predicate on the "ip_address" field.
func IPAddressGTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldIPAddress, v))
}

// IPAddressLT applies the LT predicate on the "ip_address" field.
func IPAddressLT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldIPAddress, v))
}

// IPAddressLTE applies the LTE predicate on the "ip_address" field.
func IPAddressLTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldIPAddress, v))
}

// IPAddressContains applies the Contains predicate on the "ip_address" field.
func IPAddressContains(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContains(FieldIPAddress, v))
}

// IPAddressHasPrefix applies the HasPrefix predicate on the "ip_address" field.
func IPAddressHasPrefix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasPrefix(FieldIPAddress, v))
}

// IPAddressHasSuffix applies the HasSuffix predicate on the "ip_address" field.
func IPAddressHasSuffix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasSuffix(FieldIPAddress, v))
}

// IPAddressIsNil applies the IsNil predicate on the "ip_address" field.
func IPAddressIsNil() predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIsNull(FieldIPAddress))
}

// IPAddressNotNil applies the NotNil predicate on the "ip_address" field.
func IPAddressNotNil() predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotNull(FieldIPAddress))
}

// IPAddressEqualFold applies the EqualFold predicate on the "ip_address" field.
func IPAddressEqualFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEqualFold(FieldIPAddress, v))
}

// IPAddressContainsFold applies the ContainsFold predicate on the "ip_address" field.
func IPAddressContainsFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContainsFold(FieldIPAddress, v))
}

// HostnameEQ applies the EQ predicate on the "hostname" field.
func HostnameEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldHostname, v))
}

// HostnameNEQ applies the NEQ predicate on the "hostname" field.
func HostnameNEQ(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldHostname, v))
}

// HostnameIn applies the In predicate on the "hostname" field.
func HostnameIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldHostname, vs...))
}

// HostnameNotIn applies the NotIn predicate on the "hostname" field.
func HostnameNotIn(vs ...string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldHostname, vs...))
}

// HostnameGT applies the GT predicate on the "hostname" field.
func HostnameGT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldHostname, v))
}

// HostnameGTE applies the GTE predicate on the "hostname" field.
func HostnameGTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldHostname, v))
}

// HostnameLT applies the LT predicate on the "hostname" field.
func HostnameLT(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldHostname, v))
}

// HostnameLTE applies the LTE predicate on the "hostname" field.
func HostnameLTE(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldHostname, v))
}

// HostnameContains applies the Contains predicate on the "hostname" field.
func HostnameContains(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContains(FieldHostname, v))
}

// HostnameHasPrefix applies the HasPrefix predicate on the "hostname" field.
func HostnameHasPrefix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasPrefix(FieldHostname, v))
}

// HostnameHasSuffix applies the HasSuffix predicate on the "hostname" field.
func HostnameHasSuffix(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldHasSuffix(FieldHostname, v))
}

// HostnameIsNil applies the IsNil predicate on the "hostname" field.
func HostnameIsNil() predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIsNull(FieldHostname))
}

// HostnameNotNil applies the NotNil predicate on the "hostname" field.
func HostnameNotNil() predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotNull(FieldHostname))
}

// HostnameEqualFold applies the EqualFold predicate on the "hostname" field.
func HostnameEqualFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEqualFold(FieldHostname, v))
}

// HostnameContainsFold applies the ContainsFold predicate on the "hostname" field.
func HostnameContainsFold(v string) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldContainsFold(FieldHostname, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldUpdatedAt, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.RequestProjection {
	return predicate.RequestProjection(sql.FieldLTE(FieldVersion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RequestProjection) predicate.RequestProjection {
	return predicate.RequestProjection(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RequestProjection) predicate.RequestProjection {
	return predicate.RequestProjection(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RequestProjection) predicate.RequestProjection {
	return predicate.RequestProjection(sql.NotPredicates(p))
}
