// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"vc-drover.io/drover/ent/vmwareconfig"
)

// VmwareConfig is the model entity for the VmwareConfig schema.
type VmwareConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// VcenterURL holds the value of the "vcenter_url" field.
	VcenterURL string `json:"vcenter_url,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// PasswordEnc holds the value of the "password_enc" field.
	PasswordEnc string `json:"-"`
	// Datacenter holds the value of the "datacenter" field.
	Datacenter string `json:"datacenter,omitempty"`
	// Cluster holds the value of the "cluster" field.
	Cluster string `json:"cluster,omitempty"`
	// Datastore holds the value of the "datastore" field.
	Datastore string `json:"datastore,omitempty"`
	// Network holds the value of the "network" field.
	Network string `json:"network,omitempty"`
	// Template holds the value of the "template" field.
	Template string `json:"template,omitempty"`
	// VerifiedAt holds the value of the "verified_at" field.
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	// Version holds the value of the "version" field.
	Version      int64 `json:"version,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VmwareConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vmwareconfig.FieldID, vmwareconfig.FieldVersion:
			values[i] = new(sql.NullInt64)
		case vmwareconfig.FieldTenantID, vmwareconfig.FieldVcenterURL, vmwareconfig.FieldUsername, vmwareconfig.FieldPasswordEnc, vmwareconfig.FieldDatacenter, vmwareconfig.FieldCluster, vmwareconfig.FieldDatastore, vmwareconfig.FieldNetwork, vmwareconfig.FieldTemplate:
			values[i] = new(sql.NullString)
		case vmwareconfig.FieldCreatedAt, vmwareconfig.FieldUpdatedAt, vmwareconfig.FieldVerifiedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VmwareConfig fields.
func (_m *VmwareConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vmwareconfig.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case vmwareconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case vmwareconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case vmwareconfig.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case vmwareconfig.FieldVcenterURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vcenter_url", values[i])
			} else if value.Valid {
				_m.VcenterURL = value.String
			}
		case vmwareconfig.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case vmwareconfig.FieldPasswordEnc:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_enc", values[i])
			} else if value.Valid {
				_m.PasswordEnc = value.String
			}
		case vmwareconfig.FieldDatacenter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field datacenter", values[i])
			} else if value.Valid {
				_m.Datacenter = value.String
			}
		case vmwareconfig.FieldCluster:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cluster", values[i])
			} else if value.Valid {
				_m.Cluster = value.String
			}
		case vmwareconfig.FieldDatastore:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field datastore", values[i])
			} else if value.Valid {
				_m.Datastore = value.String
			}
		case vmwareconfig.FieldNetwork:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field network", values[i])
			} else if value.Valid {
				_m.Network = value.String
			}
		case vmwareconfig.FieldTemplate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template", values[i])
			} else if value.Valid {
				_m.Template = value.String
			}
		case vmwareconfig.FieldVerifiedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field verified_at", values[i])
			} else if value.Valid {
				_m.VerifiedAt = new(time.Time)
				*_m.VerifiedAt = value.Time
			}
		case vmwareconfig.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VmwareConfig.
// This includes values selected through modifiers, order, etc.
func (_m *VmwareConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this VmwareConfig.
// Note that you need to call VmwareConfig.Unwrap() before calling this method if this VmwareConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VmwareConfig) Update() *VmwareConfigUpdateOne {
	return NewVmwareConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VmwareConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VmwareConfig) Unwrap() *VmwareConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VmwareConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VmwareConfig) String() string {
	var builder strings.Builder
	builder.WriteString("VmwareConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("vcenter_url=")
	builder.WriteString(_m.VcenterURL)
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("password_enc=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("datacenter=")
	builder.WriteString(_m.Datacenter)
	builder.WriteString(", ")
	builder.WriteString("cluster=")
	builder.WriteString(_m.Cluster)
	builder.WriteString(", ")
	builder.WriteString("datastore=")
	builder.WriteString(_m.Datastore)
	builder.WriteString(", ")
	builder.WriteString("network=")
	builder.WriteString(_m.Network)
	builder.WriteString(", ")
	builder.WriteString("template=")
	builder.WriteString(_m.Template)
	builder.WriteString(", ")
	if v := _m.VerifiedAt; v != nil {
		builder.WriteString("verified_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteByte(')')
	return builder.String()
}

// VmwareConfigs is a parsable slice of VmwareConfig.
type VmwareConfigs []*VmwareConfig
