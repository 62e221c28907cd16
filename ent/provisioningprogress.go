// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"vc-drover.io/drover/ent/provisioningprogress"
)

// ProvisioningProgress is the model entity for the ProvisioningProgress schema.
type ProvisioningProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID string `json:"request_id,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage provisioningprogress.Stage `json:"stage,omitempty"`
	// stage name -> RFC3339 instant the stage was entered
	StageTimestamps map[string]string `json:"stage_timestamps,omitempty"`
	// EstimatedRemainingSeconds holds the value of the "estimated_remaining_seconds" field.
	EstimatedRemainingSeconds int `json:"estimated_remaining_seconds,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProvisioningProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case provisioningprogress.FieldStageTimestamps:
			values[i] = new([]byte)
		case provisioningprogress.FieldID, provisioningprogress.FieldEstimatedRemainingSeconds:
			values[i] = new(sql.NullInt64)
		case provisioningprogress.FieldTenantID, provisioningprogress.FieldRequestID, provisioningprogress.FieldStage:
			values[i] = new(sql.NullString)
		case provisioningprogress.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProvisioningProgress fields.
func (_m *ProvisioningProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case provisioningprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case provisioningprogress.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case provisioningprogress.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.String
			}
		case provisioningprogress.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = provisioningprogress.Stage(value.String)
			}
		case provisioningprogress.FieldStageTimestamps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stage_timestamps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StageTimestamps); err != nil {
					return fmt.Errorf("unmarshal field stage_timestamps: %w", err)
				}
			}
		case provisioningprogress.FieldEstimatedRemainingSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_remaining_seconds", values[i])
			} else if value.Valid {
				_m.EstimatedRemainingSeconds = int(value.Int64)
			}
		case provisioningprogress.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ProvisioningProgress.
// This includes values selected through modifiers, order, etc.
func (_m *ProvisioningProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProvisioningProgress.
// Note that you need to call ProvisioningProgress.Unwrap() before calling this method if this ProvisioningProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProvisioningProgress) Update() *ProvisioningProgressUpdateOne {
	return NewProvisioningProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProvisioningProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProvisioningProgress) Unwrap() *ProvisioningProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProvisioningProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProvisioningProgress) String() string {
	var builder strings.Builder
	builder.WriteString("ProvisioningProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("request_id=")
	builder.WriteString(_m.RequestID)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("stage_timestamps=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageTimestamps))
	builder.WriteString(", ")
	builder.WriteString("estimated_remaining_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedRemainingSeconds))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProvisioningProgresses is a parsable slice of ProvisioningProgress.
type ProvisioningProgresses []*ProvisioningProgress
