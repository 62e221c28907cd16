// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"vc-drover.io/drover/ent/requestprojection"
)

// RequestProjection is the model entity for the RequestProjection schema.
type RequestProjection struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// ProjectName holds the value of the "project_name" field.
	ProjectName string `json:"project_name,omitempty"`
	// RequesterID holds the value of the "requester_id" field.
	RequesterID string `json:"requester_id,omitempty"`
	// RequesterName holds the value of the "requester_name" field.
	RequesterName string `json:"requester_name,omitempty"`
	// RequesterEmail holds the value of the "requester_email" field.
	RequesterEmail string `json:"requester_email,omitempty"`
	// VMName holds the value of the "vm_name" field.
	VMName string `json:"vm_name,omitempty"`
	// Size holds the value of the "size" field.
	Size requestprojection.Size `json:"size,omitempty"`
	// CPUCores holds the value of the "cpu_cores" field.
	CPUCores int `json:"cpu_cores,omitempty"`
	// MemoryGB holds the value of the "memory_gb" field.
	MemoryGB int `json:"memory_gb,omitempty"`
	// DiskGB holds the value of the "disk_gb" field.
	DiskGB int `json:"disk_gb,omitempty"`
	// Justification holds the value of the "justification" field.
	Justification string `json:"justification,omitempty"`
	// Status holds the value of the "status" field.
	Status requestprojection.Status `json:"status,omitempty"`
	// DeciderName holds the value of the "decider_name" field.
	DeciderName string `json:"decider_name,omitempty"`
	// DecidedAt holds the value of the "decided_at" field.
	DecidedAt *time.Time `json:"decided_at,omitempty"`
	// RejectionReason holds the value of the "rejection_reason" field.
	RejectionReason string `json:"rejection_reason,omitempty"`
	// VMID holds the value of the "vm_id" field.
	VMID string `json:"vm_id,omitempty"`
	// VmwareVMID holds the value of the "vmware_vm_id" field.
	VmwareVMID string `json:"vmware_vm_id,omitempty"`
	// IPAddress holds the value of the "ip_address" field.
	IPAddress string `json:"ip_address,omitempty"`
	// Hostname holds the value of the "hostname" field.
	Hostname string `json:"hostname,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Version holds the value of the "version" field.
	Version      int64 `json:"version,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RequestProjection) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case requestprojection.FieldCPUCores, requestprojection.FieldMemoryGB, requestprojection.FieldDiskGB, requestprojection.FieldVersion:
			values[i] = new(sql.NullInt64)
		case requestprojection.FieldID, requestprojection.FieldTenantID, requestprojection.FieldProjectID, requestprojection.FieldProjectName, requestprojection.FieldRequesterID, requestprojection.FieldRequesterName, requestprojection.FieldRequesterEmail, requestprojection.FieldVMName, requestprojection.FieldSize, requestprojection.FieldJustification, requestprojection.FieldStatus, requestprojection.FieldDeciderName, requestprojection.FieldRejectionReason, requestprojection.FieldVMID, requestprojection.FieldVmwareVMID, requestprojection.FieldIPAddress, requestprojection.FieldHostname:
			values[i] = new(sql.NullString)
		case requestprojection.FieldDecidedAt, requestprojection.FieldCreatedAt, requestprojection.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RequestProjection fields.
func (_m *RequestProjection) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case requestprojection.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case requestprojection.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case requestprojection.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case requestprojection.FieldProjectName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_name", values[i])
			} else if value.Valid {
				_m.ProjectName = value.String
			}
		case requestprojection.FieldRequesterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requester_id", values[i])
			} else if value.Valid {
				_m.RequesterID = value.String
			}
		case requestprojection.FieldRequesterName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requester_name", values[i])
			} else if value.Valid {
				_m.RequesterName = value.String
			}
		case requestprojection.FieldRequesterEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requester_email", values[i])
			} else if value.Valid {
				_m.RequesterEmail = value.String
			}
		case requestprojection.FieldVMName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vm_name", values[i])
			} else if value.Valid {
				_m.VMName = value.String
			}
		case requestprojection.FieldSize:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field size", values[i])
			} else if value.Valid {
				_m.Size = requestprojection.Size(value.String)
			}
		case requestprojection.FieldCPUCores:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cpu_cores", values[i])
			} else if value.Valid {
				_m.CPUCores = int(value.Int64)
			}
		case requestprojection.FieldMemoryGB:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field memory_gb", values[i])
			} else if value.Valid {
				_m.MemoryGB = int(value.Int64)
			}
		case requestprojection.FieldDiskGB:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field disk_gb", values[i])
			} else if value.Valid {
				_m.DiskGB = int(value.Int64)
			}
		case requestprojection.FieldJustification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field justification", values[i])
			} else if value.Valid {
				_m.Justification = value.String
			}
		case requestprojection.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = requestprojection.Status(value.String)
			}
		case requestprojection.FieldDeciderName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decider_name", values[i])
			} else if value.Valid {
				_m.DeciderName = value.String
			}
		case requestprojection.FieldDecidedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field decided_at", values[i])
			} else if value.Valid {
				_m.DecidedAt = new(time.Time)
				*_m.DecidedAt = value.Time
			}
		case requestprojection.FieldRejectionReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rejection_reason", values[i])
			} else if value.Valid {
				_m.RejectionReason = value.String
			}
		case requestprojection.FieldVMID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vm_id", values[i])
			} else if value.Valid {
				_m.VMID = value.String
			}
		case requestprojection.FieldVmwareVMID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vmware_vm_id", values[i])
			} else if value.Valid {
				_m.VmwareVMID = value.String
			}
		case requestprojection.FieldIPAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip_address", values[i])
			} else if value.Valid {
				_m.IPAddress = value.String
			}
		case requestprojection.FieldHostname:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hostname", values[i])
			} else if value.Valid {
				_m.Hostname = value.String
			}
		case requestprojection.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case requestprojection.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case requestprojection.FieldVersion:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RequestProjection.
// This includes values selected through modifiers, order, etc.
func (_m *RequestProjection) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RequestProjection.
// Note that you need to call RequestProjection.Unwrap() before calling this method if this RequestProjection
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RequestProjection) Update() *RequestProjectionUpdateOne {
	return NewRequestProjectionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RequestProjection entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RequestProjection) Unwrap() *RequestProjection {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RequestProjection is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RequestProjection) String() string {
	var builder strings.Builder
	builder.WriteString("RequestProjection(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("project_name=")
	builder.WriteString(_m.ProjectName)
	builder.WriteString(", ")
	builder.WriteString("requester_id=")
	builder.WriteString(_m.RequesterID)
	builder.WriteString(", ")
	builder.WriteString("requester_name=")
	builder.WriteString(_m.RequesterName)
	builder.WriteString(", ")
	builder.WriteString("requester_email=")
	builder.WriteString(_m.RequesterEmail)
	builder.WriteString(", ")
	builder.WriteString("vm_name=")
	builder.WriteString(_m.VMName)
	builder.WriteString(", ")
	builder.WriteString("size=")
	builder.WriteString(fmt.Sprintf("%v", _m.Size))
	builder.WriteString(", ")
	builder.WriteString("cpu_cores=")
	builder.WriteString(fmt.Sprintf("%v", _m.CPUCores))
	builder.WriteString(", ")
	builder.WriteString("memory_gb=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemoryGB))
	builder.WriteString(", ")
	builder.WriteString("disk_gb=")
	builder.WriteString(fmt.Sprintf("%v", _m.DiskGB))
	builder.WriteString(", ")
	builder.WriteString("justification=")
	builder.WriteString(_m.Justification)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("decider_name=")
	builder.WriteString(_m.DeciderName)
	builder.WriteString(", ")
	if v := _m.DecidedAt; v != nil {
		builder.WriteString("decided_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("rejection_reason=")
	builder.WriteString(_m.RejectionReason)
	builder.WriteString(", ")
	builder.WriteString("vm_id=")
	builder.WriteString(_m.VMID)
	builder.WriteString(", ")
	builder.WriteString("vmware_vm_id=")
	builder.WriteString(_m.VmwareVMID)
	builder.WriteString(", ")
	builder.WriteString("ip_address=")
	builder.WriteString(_m.IPAddress)
	builder.WriteString(", ")
	builder.WriteString("hostname=")
	builder.WriteString(_m.Hostname)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteByte(')')
	return builder.String()
}

// RequestProjections is a parsable slice of RequestProjection.
type RequestProjections []*RequestProjection
