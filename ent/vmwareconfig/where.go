// Code generated by ent, DO NOT EDIT.

package vmwareconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"vc-drover.io/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldTenantID, v))
}

// VcenterURL applies equality check predicate on the "vcenter_url" field. It's identical to VcenterURLEQ.
func VcenterURL(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldVcenterURL, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldUsername, v))
}

// PasswordEnc applies equality check predicate on the "password_enc" field. It's identical to PasswordEncEQ.
func PasswordEnc(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldPasswordEnc, v))
}

// Datacenter applies equality check predicate on the "datacenter" field. It's identical to DatacenterEQ.
func Datacenter(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldDatacenter, v))
}

// Cluster applies equality check predicate on the "cluster" field. It's identical to ClusterEQ.
func Cluster(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldCluster, v))
}

// Datastore applies equality check predicate on the "datastore" field. It's identical to DatastoreEQ.
func Datastore(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldDatastore, v))
}

// Network applies equality check predicate on the "network" field. It's identical to NetworkEQ.
func Network(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldNetwork, v))
}

// Template applies equality check predicate on the "template" field. It's identical to TemplateEQ.
func Template(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldTemplate, v))
}

// VerifiedAt applies equality check predicate on the "verified_at" field. It's identical to VerifiedAtEQ.
func VerifiedAt(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldVerifiedAt, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldContainsFold(FieldTenantID, v))
}

// VcenterURLEQ applies the EQ predicate on the "vcenter_url" field.
func VcenterURLEQ(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldVcenterURL, v))
}

// VcenterURLNEQ applies the NEQ predicate on the "vcenter_url" field.
func VcenterURLNEQ(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNEQ(FieldVcenterURL, v))
}

// VcenterURLIn applies the In predicate on the "vcenter_url" field.
func VcenterURLIn(vs ...string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldIn(FieldVcenterURL, vs...))
}

// VcenterURLNotIn applies the NotIn predicate on the "vcenter_url" field.
func VcenterURLNotIn(vs ...string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNotIn(FieldVcenterURL, vs...))
}

// VcenterURLGT applies the GT predicate on the "vcenter_url" field.
func VcenterURLGT(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGT(FieldVcenterURL, v))
}

// VcenterURLGTE applies the GTE predicate on the "vcenter_url" field.
func VcenterURLGTE(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGTE(FieldVcenterURL, v))
}

// VcenterURLLT applies the LT predicate on the "vcenter_url" field.
func VcenterURLLT(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLT(FieldVcenterURL, v))
}

// VcenterURLLTE applies the LTE predicate on the "vcenter_url" field.
func VcenterURLLTE(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLTE(FieldVcenterURL, v))
}

// VcenterURLContains applies the Contains predicate on the "vcenter_url" field.
func VcenterURLContains(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldContains(FieldVcenterURL, v))
}

// VcenterURLHasPrefix applies the HasPrefix predicate on the "vcenter_url" field.
func VcenterURLHasPrefix(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldHasPrefix(FieldVcenterURL, v))
}

// VcenterURLHasSuffix applies the HasSuffix predicate on the "vcenter_url" field.
func VcenterURLHasSuffix(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldHasSuffix(FieldVcenterURL, v))
}

// VcenterURLEqualFold applies the EqualFold predicate on the "vcenter_url" field.
func VcenterURLEqualFold(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEqualFold(FieldVcenterURL, v))
}

// VcenterURLContainsFold applies the ContainsFold predicate on the "vcenter_url" field.
func VcenterURLContainsFold(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldContainsFold(FieldVcenterURL, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldContainsFold(FieldUsername, v))
}

// PasswordEncEQ applies the EQ predicate on the "password_enc" field.
func PasswordEncEQ(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldPasswordEnc, v))
}

// PasswordEncNEQ applies the NEQ predicate on the "password_enc" field.
func PasswordEncNEQ(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNEQ(FieldPasswordEnc, v))
}

// PasswordEncIn applies the In predicate on the "password_enc" field.
func PasswordEncIn(vs ...string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldIn(FieldPasswordEnc, vs...))
}

// PasswordEncNotIn applies the NotIn predicate on the "password_enc" field.
func PasswordEncNotIn(vs ...string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNotIn(FieldPasswordEnc, vs...))
}

// PasswordEncGT applies the GT predicate on the "password_enc" field.
func PasswordEncGT(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGT(FieldPasswordEnc, v))
}

// PasswordEncGTE applies the GTE predicate on the "password_enc" field.
func PasswordEncGTE(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGTE(FieldPasswordEnc, v))
}

// PasswordEncLT applies the LT predicate on the "password_enc" field.
func PasswordEncLT(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLT(FieldPasswordEnc, v))
}

// PasswordEncLTE applies the LTE predicate on the "password_enc" field.
func PasswordEncLTE(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLTE(FieldPasswordEnc, v))
}

// PasswordEncContains applies the Contains predicate on the "password_enc" field.
func PasswordEncContains(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldContains(FieldPasswordEnc, v))
}

// PasswordEncHasPrefix applies the HasPrefix predicate on the "password_enc" field.
func PasswordEncHasPrefix(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldHasPrefix(FieldPasswordEnc, v))
}

// PasswordEncHasSuffix applies the HasSuffix predicate on the "password_enc" field.
func PasswordEncHasSuffix(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldHasSuffix(FieldPasswordEnc, v))
}

// PasswordEncEqualFold applies the EqualFold predicate on the "password_enc" field.
func PasswordEncEqualFold(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEqualFold(FieldPasswordEnc, v))
}

// PasswordEncContainsFold applies the ContainsFold predicate on the "password_enc" field.
func PasswordEncContainsFold(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldContainsFold(FieldPasswordEnc, v))
}

// DatacenterEQ applies the EQ predicate on the "datacenter" field.
func DatacenterEQ(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldDatacenter, v))
}

// DatacenterNEQ applies the NEQ predicate on the "datacenter" field.
func DatacenterNEQ(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNEQ(FieldDatacenter, v))
}

// DatacenterIn applies the In predicate on the "datacenter" field.
func DatacenterIn(vs ...string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldIn(FieldDatacenter, vs...))
}

// DatacenterNotIn applies the NotIn predicate on the "datacenter" field.
func DatacenterNotIn(vs ...string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNotIn(FieldDatacenter, vs...))
}

// DatacenterGT applies the GT predicate on the "datacenter" field.
func DatacenterGT(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGT(FieldDatacenter, v))
}

// DatacenterGTE applies the GTE predicate on the "datacenter" field.
func DatacenterGTE(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGTE(FieldDatacenter, v))
}

// DatacenterLT applies the LT predicate on the "datacenter" field.
func DatacenterLT(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLT(FieldDatacenter, v))
}

// DatacenterLTE applies the LTE predicate on the "datacenter" field.
func DatacenterLTE(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLTE(FieldDatacenter, v))
}

// DatacenterContains applies the Contains predicate on the "datacenter" field.
func DatacenterContains(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldContains(FieldDatacenter, v))
}

// DatacenterHasPrefix applies the HasPrefix predicate on the "datacenter" field.
func DatacenterHasPrefix(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldHasPrefix(FieldDatacenter, v))
}

// DatacenterHasSuffix applies the HasSuffix predicate on the "datacenter" field.
func DatacenterHasSuffix(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldHasSuffix(FieldDatacenter, v))
}

// DatacenterEqualFold applies the EqualFold predicate on the "datacenter" field.
func DatacenterEqualFold(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEqualFold(FieldDatacenter, v))
}

// DatacenterContainsFold applies the ContainsFold predicate on the "datacenter" field.
func DatacenterContainsFold(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldContainsFold(FieldDatacenter, v))
}

// ClusterEQ applies the EQ predicate on the "cluster" field.
func ClusterEQ(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldCluster, v))
}

// ClusterNEQ applies the NEQ predicate on the "cluster" field.
func ClusterNEQ(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNEQ(FieldCluster, v))
}

// ClusterIn applies the In predicate on the "cluster" field.
func ClusterIn(vs ...string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldIn(FieldCluster, vs...))
}

// ClusterNotIn applies the NotIn predicate on the "cluster" field.
func ClusterNotIn(vs ...string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNotIn(FieldCluster, vs...))
}

// ClusterGT applies the GT predicate on the "cluster" field.
func ClusterGT(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGT(FieldCluster, v))
}

// ClusterGTE applies the GTE predicate on the "cluster" field.
func ClusterGTE(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGTE(FieldCluster, v))
}

// ClusterLT applies the LT predicate on the "cluster" field.
func ClusterLT(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLT(FieldCluster, v))
}

// ClusterLTE applies the LTE predicate on the "cluster" field.
func ClusterLTE(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLTE(FieldCluster, v))
}

// ClusterContains applies the Contains predicate on the "cluster" field.
func ClusterContains(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldContains(FieldCluster, v))
}

// ClusterHasPrefix applies the HasPrefix predicate on the "cluster" field.
func ClusterHasPrefix(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldHasPrefix(FieldCluster, v))
}

// ClusterHasSuffix applies the HasSuffix predicate on the "cluster" field.
func ClusterHasSuffix(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldHasSuffix(FieldCluster, v))
}

// ClusterEqualFold applies the EqualFold predicate on the "cluster" field.
func ClusterEqualFold(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEqualFold(FieldCluster, v))
}

// ClusterContainsFold applies the ContainsFold predicate on the "cluster" field.
func ClusterContainsFold(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldContainsFold(FieldCluster, v))
}

// DatastoreEQ applies the EQ predicate on the "datastore" field.
func DatastoreEQ(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldDatastore, v))
}

// DatastoreNEQ applies the NEQ predicate on the "datastore" field.
func DatastoreNEQ(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNEQ(FieldDatastore, v))
}

// DatastoreIn applies the In predicate on the "datastore" field.
func DatastoreIn(vs ...string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldIn(FieldDatastore, vs...))
}

// DatastoreNotIn applies the NotIn predicate on the "datastore" field.
func DatastoreNotIn(vs ...string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNotIn(FieldDatastore, vs...))
}

// DatastoreGT applies the GT predicate on the "datastore" field.
func DatastoreGT(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGT(FieldDatastore, v))
}

// DatastoreGTE applies the GTE predicate on the "datastore" field.
func DatastoreGTE(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGTE(FieldDatastore, v))
}

// DatastoreLT applies the LT predicate on the "datastore" field.
func DatastoreLT(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLT(FieldDatastore, v))
}

// DatastoreLTE applies the LTE predicate on the "datastore" field.
func DatastoreLTE(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLTE(FieldDatastore, v))
}

// DatastoreContains applies the Contains predicate on the "datastore" field.
func DatastoreContains(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldContains(FieldDatastore, v))
}

// DatastoreHasPrefix applies the HasPrefix predicate on the "datastore" field.
func DatastoreHasPrefix(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldHasPrefix(FieldDatastore, v))
}

// DatastoreHasSuffix applies the HasSuffix predicate on the "datastore" field.
func DatastoreHasSuffix(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldHasSuffix(FieldDatastore, v))
}

// DatastoreEqualFold applies the EqualFold predicate on the "datastore" field.
func DatastoreEqualFold(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEqualFold(FieldDatastore, v))
}

// DatastoreContainsFold applies the ContainsFold predicate on the "datastore" field.
func DatastoreContainsFold(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldContainsFold(FieldDatastore, v))
}

// NetworkEQ applies the EQ predicate on the "network" field.
func NetworkEQ(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldNetwork, v))
}

// NetworkNEQ applies the NEQ predicate on the "network" field.
func NetworkNEQ(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNEQ(FieldNetwork, v))
}

// NetworkIn applies the In predicate on the "network" field.
func NetworkIn(vs ...string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldIn(FieldNetwork, vs...))
}

// NetworkNotIn applies the NotIn predicate on the "network" field.
func NetworkNotIn(vs ...string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNotIn(FieldNetwork, vs...))
}

// NetworkGT applies the GT predicate on the "network" field.
func NetworkGT(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGT(FieldNetwork, v))
}

// NetworkGTE applies the GTE predicate on the "network" field.
func NetworkGTE(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGTE(FieldNetwork, v))
}

// NetworkLT applies the LT predicate on the "network" field.
func NetworkLT(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLT(FieldNetwork, v))
}

// NetworkLTE applies the LTE predicate on the "network" field.
func NetworkLTE(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLTE(FieldNetwork, v))
}

// NetworkContains applies the Contains predicate on the "network" field.
func NetworkContains(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldContains(FieldNetwork, v))
}

// NetworkHasPrefix applies the HasPrefix predicate on the "network" field.
func NetworkHasPrefix(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldHasPrefix(FieldNetwork, v))
}

// NetworkHasSuffix applies the HasSuffix predicate on the "network" field.
func NetworkHasSuffix(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldHasSuffix(FieldNetwork, v))
}

// NetworkEqualFold applies the EqualFold predicate on the "network" field.
func NetworkEqualFold(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEqualFold(FieldNetwork, v))
}

// NetworkContainsFold applies the ContainsFold predicate on the "network" field.
func NetworkContainsFold(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldContainsFold(FieldNetwork, v))
}

// TemplateEQ applies the EQ predicate on the "template" field.
func TemplateEQ(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldTemplate, v))
}

// TemplateNEQ applies the NEQ predicate on the "template" field.
func TemplateNEQ(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNEQ(FieldTemplate, v))
}

// TemplateIn applies the In predicate on the "template" field.
func TemplateIn(vs ...string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldIn(FieldTemplate, vs...))
}

// TemplateNotIn applies the NotIn predicate on the "template" field.
func TemplateNotIn(vs ...string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNotIn(FieldTemplate, vs...))
}

// TemplateGT applies the GT predicate on the "template" field.
func TemplateGT(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGT(FieldTemplate, v))
}

// TemplateGTE applies the GTE predicate on the "template" field.
func TemplateGTE(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGTE(FieldTemplate, v))
}

// TemplateLT applies the LT predicate on the "template" field.
func TemplateLT(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLT(FieldTemplate, v))
}

// TemplateLTE applies the LTE predicate on the "template" field.
func TemplateLTE(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLTE(FieldTemplate, v))
}

// TemplateContains applies the Contains predicate on the "template" field.
func TemplateContains(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldContains(FieldTemplate, v))
}

// TemplateHasPrefix applies the HasPrefix predicate on the "template" field.
func TemplateHasPrefix(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldHasPrefix(FieldTemplate, v))
}

// TemplateHasSuffix applies the HasSuffix predicate on the "template" field.
func TemplateHasSuffix(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldHasSuffix(FieldTemplate, v))
}

// TemplateEqualFold applies the EqualFold predicate on the "template" field.
func TemplateEqualFold(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEqualFold(FieldTemplate, v))
}

// TemplateContainsFold applies the ContainsFold predicate on the "template" field.
func TemplateContainsFold(v string) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldContainsFold(FieldTemplate, v))
}

// VerifiedAtEQ applies the EQ predicate on the "verified_at" field.
func VerifiedAtEQ(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldVerifiedAt, v))
}

// VerifiedAtNEQ applies the NEQ predicate on the "verified_at" field.
func VerifiedAtNEQ(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNEQ(FieldVerifiedAt, v))
}

// VerifiedAtIn applies the In predicate on the "verified_at" field.
func VerifiedAtIn(vs ...time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldIn(FieldVerifiedAt, vs...))
}

// VerifiedAtNotIn applies the NotIn predicate on the "verified_at" field.
func VerifiedAtNotIn(vs ...time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNotIn(FieldVerifiedAt, vs...))
}

// VerifiedAtGT applies the GT predicate on the "verified_at" field.
func VerifiedAtGT(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGT(FieldVerifiedAt, v))
}

// VerifiedAtGTE applies the GTE predicate on the "verified_at" field.
func VerifiedAtGTE(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGTE(FieldVerifiedAt, v))
}

// VerifiedAtLT applies the LT predicate on the "verified_at" field.
func VerifiedAtLT(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLT(FieldVerifiedAt, v))
}

// VerifiedAtLTE applies the LTE predicate on the "verified_at" field.
func VerifiedAtLTE(v time.Time) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLTE(FieldVerifiedAt, v))
}

// VerifiedAtIsNil applies the IsNil predicate on the "verified_at" field.
func VerifiedAtIsNil() predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldIsNull(FieldVerifiedAt))
}

// VerifiedAtNotNil applies the NotNil predicate on the "verified_at" field.
func VerifiedAtNotNil() predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNotNull(FieldVerifiedAt))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.FieldLTE(FieldVersion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VmwareConfig) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VmwareConfig) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VmwareConfig) predicate.VmwareConfig {
	return predicate.VmwareConfig(sql.NotPredicates(p))
}
