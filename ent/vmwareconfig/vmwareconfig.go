// Code generated by ent, DO NOT EDIT.

package vmwareconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the vmwareconfig type in the database.
	Label = "vmware_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldVcenterURL holds the string denoting the vcenter_url field in the database.
	FieldVcenterURL = "vcenter_url"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldPasswordEnc holds the string denoting the password_enc field in the database.
	FieldPasswordEnc = "password_enc"
	// FieldDatacenter holds the string denoting the datacenter field in the database.
	FieldDatacenter = "datacenter"
	// FieldCluster holds the string denoting the cluster field in the database.
	FieldCluster = "cluster"
	// FieldDatastore holds the string denoting the datastore field in the database.
	FieldDatastore = "datastore"
	// FieldNetwork holds the string denoting the network field in the database.
	FieldNetwork = "network"
	// FieldTemplate holds the string denoting the template field in the database.
	FieldTemplate = "template"
	// FieldVerifiedAt holds the string denoting the verified_at field in the database.
	FieldVerifiedAt = "verified_at"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// Table holds the table name of the vmwareconfig in the database.
	Table = "vmware_configs"
)

// Columns holds all SQL columns for vmwareconfig fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTenantID,
	FieldVcenterURL,
	FieldUsername,
	FieldPasswordEnc,
	FieldDatacenter,
	FieldCluster,
	FieldDatastore,
	FieldNetwork,
	FieldTemplate,
	FieldVerifiedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// VcenterURLValidator is a validator for the "vcenter_url" field. It is called by the builders before save.
	VcenterURLValidator func(string) error
	// UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	UsernameValidator func(string) error
	// PasswordEncValidator is a validator for the "password_enc" field. It is called by the builders before save.
	PasswordEncValidator func(string) error
	// DatacenterValidator is a validator for the "datacenter" field. It is called by the builders before save.
	DatacenterValidator func(string) error
	// ClusterValidator is a validator for the "cluster" field. It is called by the builders before save.
	ClusterValidator func(string) error
	// DatastoreValidator is a validator for the "datastore" field. It is called by the builders before save.
	DatastoreValidator func(string) error
	// NetworkValidator is a validator for the "network" field. It is called by the builders before save.
	NetworkValidator func(string) error
	// TemplateValidator is a validator for the "template" field. It is called by the builders before save.
	TemplateValidator func(string) error
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
)

// OrderOption defines the ordering options for the VmwareConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByVcenterURL orders the results by the vcenter_url field.
func ByVcenterURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVcenterURL, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByPasswordEnc orders the results by the password_enc field.
func ByPasswordEnc(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordEnc, opts...).ToFunc()
}

// ByDatacenter orders the results by the datacenter field.
func ByDatacenter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDatacenter, opts...).ToFunc()
}

// ByCluster orders the results by the cluster field.
func ByCluster(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCluster, opts...).ToFunc()
}

// ByDatastore orders the results by the datastore field.
func ByDatastore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDatastore, opts...).ToFunc()
}

// ByNetwork orders the results by the network field.
func ByNetwork(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetwork, opts...).ToFunc()
}

// ByTemplate orders the results by the template field.
func ByTemplate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplate, opts...).ToFunc()
}

// ByVerifiedAt orders the results by the verified_at field.
func ByVerifiedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifiedAt, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}
