// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"vc-drover.io/drover/ent/projectionoffset"
)

// ProjectionOffset is the model entity for the ProjectionOffset schema.
type ProjectionOffset struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Subscriber holds the value of the "subscriber" field.
	Subscriber string `json:"subscriber,omitempty"`
	// Position holds the value of the "position" field.
	Position int64 `json:"position,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProjectionOffset) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case projectionoffset.FieldID, projectionoffset.FieldPosition:
			values[i] = new(sql.NullInt64)
		case projectionoffset.FieldSubscriber:
			values[i] = new(sql.NullString)
		case projectionoffset.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProjectionOffset fields.
func (_m *ProjectionOffset) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case projectionoffset.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case projectionoffset.FieldSubscriber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subscriber", values[i])
			} else if value.Valid {
				_m.Subscriber = value.String
			}
		case projectionoffset.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = value.Int64
			}
		case projectionoffset.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProjectionOffset.
// This includes values selected through modifiers, order, etc.
func (_m *ProjectionOffset) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProjectionOffset.
// Note that you need to call ProjectionOffset.Unwrap() before calling this method if this ProjectionOffset
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProjectionOffset) Update() *ProjectionOffsetUpdateOne {
	return NewProjectionOffsetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProjectionOffset entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProjectionOffset) Unwrap() *ProjectionOffset {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProjectionOffset is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProjectionOffset) String() string {
	var builder strings.Builder
	builder.WriteString("ProjectionOffset(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subscriber=")
	builder.WriteString(_m.Subscriber)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProjectionOffsets is a parsable slice of ProjectionOffset.
type ProjectionOffsets []*ProjectionOffset
