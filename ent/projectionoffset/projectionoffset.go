// Code generated by ent, DO NOT EDIT.

package projectionoffset

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the projectionoffset type in the database.
	Label = "projection_offset"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubscriber holds the string denoting the subscriber field in the database.
	FieldSubscriber = "subscriber"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the projectionoffset in the database.
	Table = "projection_offsets"
)

// Columns holds all SQL columns for projectionoffset fields.
var Columns = []string{
	FieldID,
	FieldSubscriber,
	FieldPosition,
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
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int64
)

// OrderOption defines the ordering options for the ProjectionOffset queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubscriber orders the results by the subscriber field.
func BySubscriber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubscriber, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
