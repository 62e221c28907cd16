// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"vc-drover.io/drover/ent/predicate"
	"vc-drover.io/drover/ent/requestprojection"
)

// RequestProjectionUpdate is the builder for updating RequestProjection entities.
type RequestProjectionUpdate struct {
	config
	hooks    []Hook
	mutation *RequestProjectionMutation
}

// Where appends a list predicates to the RequestProjectionUpdate builder.
func (_u *RequestProjectionUpdate) Where(ps ...predicate.RequestProjection) *RequestProjectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectName sets the "project_name" field.
func (_u *RequestProjectionUpdate) SetProjectName(v string) *RequestProjectionUpdate {
	_u.mutation.SetProjectName(v)
	return _u
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_u *RequestProjectionUpdate) SetNillableProjectName(v *string) *RequestProjectionUpdate {
	if v != nil {
		_u.SetProjectName(*v)
	}
	return _u
}

// SetRequesterName sets the "requester_name" field.
func (_u *RequestProjectionUpdate) SetRequesterName(v string) *RequestProjectionUpdate {
	_u.mutation.SetRequesterName(v)
	return _u
}

// SetNillableRequesterName sets the "requester_name" field if the given value is not nil.
func (_u *RequestProjectionUpdate) SetNillableRequesterName(v *string) *RequestProjectionUpdate {
	if v != nil {
		_u.SetRequesterName(*v)
	}
	return _u
}

// SetRequesterEmail sets the "requester_email" field.
func (_u *RequestProjectionUpdate) SetRequesterEmail(v string) *RequestProjectionUpdate {
	_u.mutation.SetRequesterEmail(v)
	return _u
}

// SetNillableRequesterEmail sets the "requester_email" field if the given value is not nil.
func (_u *RequestProjectionUpdate) SetNillableRequesterEmail(v *string) *RequestProjectionUpdate {
	if v != nil {
		_u.SetRequesterEmail(*v)
	}
	return _u
}

// SetVMName sets the "vm_name" field.
func (_u *RequestProjectionUpdate) SetVMName(v string) *RequestProjectionUpdate {
	_u.mutation.SetVMName(v)
	return _u
}

// SetNillableVMName sets the "vm_name" field if the given value is not nil.
func (_u *RequestProjectionUpdate) SetNillableVMName(v *string) *RequestProjectionUpdate {
	if v != nil {
		_u.SetVMName(*v)
	}
	return _u
}

// SetSize sets the "size" field.
func (_u *RequestProjectionUpdate) SetSize(v requestprojection.Size) *RequestProjectionUpdate {
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *RequestProjectionUpdate) SetNillableSize(v *requestprojection.Size) *RequestProjectionUpdate {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// SetCPUCores sets the "cpu_cores" field.
func (_u *RequestProjectionUpdate) SetCPUCores(v int) *RequestProjectionUpdate {
	_u.mutation.ResetCPUCores()
	_u.mutation.SetCPUCores(v)
	return _u
}

// SetNillableCPUCores sets the "cpu_cores" field if the given value is not nil.
func (_u *RequestProjectionUpdate) SetNillableCPUCores(v *int) *RequestProjectionUpdate {
	if v != nil {
		_u.SetCPUCores(*v)
	}
	return _u
}

// AddCPUCores adds value to the "cpu_cores" field.
func (_u *RequestProjectionUpdate) AddCPUCores(v int) *RequestProjectionUpdate {
	_u.mutation.AddCPUCores(v)
	return _u
}

// SetMemoryGB sets the "memory_gb" field.
func (_u *RequestProjectionUpdate) SetMemoryGB(v int) *RequestProjectionUpdate {
	_u.mutation.ResetMemoryGB()
	_u.mutation.SetMemoryGB(v)
	return _u
}

// SetNillableMemoryGB sets the "memory_gb" field if the given value is not nil.
func (_u *RequestProjectionUpdate) SetNillableMemoryGB(v *int) *RequestProjectionUpdate {
	if v != nil {
		_u.SetMemoryGB(*v)
	}
	return _u
}

// AddMemoryGB adds value to the "memory_gb" field.
func (_u *RequestProjectionUpdate) AddMemoryGB(v int) *RequestProjectionUpdate {
	_u.mutation.AddMemoryGB(v)
	return _u
}

// SetDiskGB sets the "disk_gb" field.
func (_u *RequestProjectionUpdate) SetDiskGB(v int) *RequestProjectionUpdate {
	_u.mutation.ResetDiskGB()
	_u.mutation.SetDiskGB(v)
	return _u
}

// SetNillableDiskGB sets the "disk_gb" field if the given value is not nil.
func (_u *RequestProjectionUpdate) SetNillableDiskGB(v *int) *RequestProjectionUpdate {
	if v != nil {
		_u.SetDiskGB(*v)
	}
	return _u
}

// AddDiskGB adds value to the "disk_gb" field.
func (_u *RequestProjectionUpdate) AddDiskGB(v int) *RequestProjectionUpdate {
	_u.mutation.AddDiskGB(v)
	return _u
}

// SetJustification sets the "justification" field.
func (_u *RequestProjectionUpdate) SetJustification(v string) *RequestProjectionUpdate {
	_u.mutation.SetJustification(v)
	return _u
}

// SetNillableJustification sets the "justification" field if the given value is not nil.
func (_u *RequestProjectionUpdate) SetNillableJustification(v *string) *RequestProjectionUpdate {
	if v != nil {
		_u.SetJustification(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequestProjectionUpdate) SetStatus(v requestprojection.Status) *RequestProjectionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequestProjectionUpdate) SetNillableStatus(v *requestprojection.Status) *RequestProjectionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDeciderName sets the "decider_name" field.
func (_u *RequestProjectionUpdate) SetDeciderName(v string) *RequestProjectionUpdate {
	_u.mutation.SetDeciderName(v)
	return _u
}

// SetNillableDeciderName sets the "decider_name" field if the given value is not nil.
func (_u *RequestProjectionUpdate) SetNillableDeciderName(v *string) *RequestProjectionUpdate {
	if v != nil {
		_u.SetDeciderName(*v)
	}
	return _u
}

// ClearDeciderName clears the value of the "decider_name" field.
func (_u *RequestProjectionUpdate) ClearDeciderName() *RequestProjectionUpdate {
	_u.mutation.ClearDeciderName()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *RequestProjectionUpdate) SetDecidedAt(v time.Time) *RequestProjectionUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *RequestProjectionUpdate) SetNillableDecidedAt(v *time.Time) *RequestProjectionUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *RequestProjectionUpdate) ClearDecidedAt() *RequestProjectionUpdate {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *RequestProjectionUpdate) SetRejectionReason(v string) *RequestProjectionUpdate {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *RequestProjectionUpdate) SetNillableRejectionReason(v *string) *RequestProjectionUpdate {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *RequestProjectionUpdate) ClearRejectionReason() *RequestProjectionUpdate {
	_u.mutation.ClearRejectionReason()
	return _u
}

// SetVMID sets the "vm_id" field.
func (_u *RequestProjectionUpdate) SetVMID(v string) *RequestProjectionUpdate {
	_u.mutation.SetVMID(v)
	return _u
}

// SetNillableVMID sets the "vm_id" field if the given value is not nil.
func (_u *RequestProjectionUpdate) SetNillableVMID(v *string) *RequestProjectionUpdate {
	if v != nil {
		_u.SetVMID(*v)
	}
	return _u
}

// ClearVMID clears the value of the "vm_id" field.
func (_u *RequestProjectionUpdate) ClearVMID() *RequestProjectionUpdate {
	_u.mutation.ClearVMID()
	return _u
}

// SetVmwareVMID sets the "vmware_vm_id" field.
func (_u *RequestProjectionUpdate) SetVmwareVMID(v string) *RequestProjectionUpdate {
	_u.mutation.SetVmwareVMID(v)
	return _u
}

// SetNillableVmwareVMID sets the "vmware_vm_id" field if the given value is not nil.
func (_u *RequestProjectionUpdate) SetNillableVmwareVMID(v *string) *RequestProjectionUpdate {
	if v != nil {
		_u.SetVmwareVMID(*v)
	}
	return _u
}

// ClearVmwareVMID clears the value of the "vmware_vm_id" field.
func (_u *RequestProjectionUpdate) ClearVmwareVMID() *RequestProjectionUpdate {
	_u.mutation.ClearVmwareVMID()
	return _u
}

// SetIPAddress sets the "ip_address" field.
func (_u *RequestProjectionUpdate) SetIPAddress(v string) *RequestProjectionUpdate {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *RequestProjectionUpdate) SetNillableIPAddress(v *string) *RequestProjectionUpdate {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// ClearIPAddress clears the value of the "ip_address" field.
func (_u *RequestProjectionUpdate) ClearIPAddress() *RequestProjectionUpdate {
	_u.mutation.ClearIPAddress()
	return _u
}

// SetHostname sets the "hostname" field.
func (_u *RequestProjectionUpdate) SetHostname(v string) *RequestProjectionUpdate {
	_u.mutation.SetHostname(v)
	return _u
}

// SetNillableHostname sets the "hostname" field if the given value is not nil.
func (_u *RequestProjectionUpdate) SetNillableHostname(v *string) *RequestProjectionUpdate {
	if v != nil {
		_u.SetHostname(*v)
	}
	return _u
}

// ClearHostname clears the value of the "hostname" field.
func (_u *RequestProjectionUpdate) ClearHostname() *RequestProjectionUpdate {
	_u.mutation.ClearHostname()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequestProjectionUpdate) SetUpdatedAt(v time.Time) *RequestProjectionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *RequestProjectionUpdate) SetNillableUpdatedAt(v *time.Time) *RequestProjectionUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *RequestProjectionUpdate) SetVersion(v int64) *RequestProjectionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *RequestProjectionUpdate) SetNillableVersion(v *int64) *RequestProjectionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *RequestProjectionUpdate) AddVersion(v int64) *RequestProjectionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the RequestProjectionMutation object of the builder.
func (_u *RequestProjectionUpdate) Mutation() *RequestProjectionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequestProjectionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestProjectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequestProjectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestProjectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestProjectionUpdate) check() error {
	if v, ok := _u.mutation.ProjectName(); ok {
		if err := requestprojection.ProjectNameValidator(v); err != nil {
			return &ValidationError{Name: "project_name", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.project_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequesterName(); ok {
		if err := requestprojection.RequesterNameValidator(v); err != nil {
			return &ValidationError{Name: "requester_name", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.requester_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequesterEmail(); ok {
		if err := requestprojection.RequesterEmailValidator(v); err != nil {
			return &ValidationError{Name: "requester_email", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.requester_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VMName(); ok {
		if err := requestprojection.VMNameValidator(v); err != nil {
			return &ValidationError{Name: "vm_name", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.vm_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Size(); ok {
		if err := requestprojection.SizeValidator(v); err != nil {
			return &ValidationError{Name: "size", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Justification(); ok {
		if err := requestprojection.JustificationValidator(v); err != nil {
			return &ValidationError{Name: "justification", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.justification": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := requestprojection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RejectionReason(); ok {
		if err := requestprojection.RejectionReasonValidator(v); err != nil {
			return &ValidationError{Name: "rejection_reason", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.rejection_reason": %w`, err)}
		}
	}
	return nil
}

func (_u *RequestProjectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestprojection.Table, requestprojection.Columns, sqlgraph.NewFieldSpec(requestprojection.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectName(); ok {
		_spec.SetField(requestprojection.FieldProjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequesterName(); ok {
		_spec.SetField(requestprojection.FieldRequesterName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequesterEmail(); ok {
		_spec.SetField(requestprojection.FieldRequesterEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.VMName(); ok {
		_spec.SetField(requestprojection.FieldVMName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(requestprojection.FieldSize, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CPUCores(); ok {
		_spec.SetField(requestprojection.FieldCPUCores, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCPUCores(); ok {
		_spec.AddField(requestprojection.FieldCPUCores, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MemoryGB(); ok {
		_spec.SetField(requestprojection.FieldMemoryGB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoryGB(); ok {
		_spec.AddField(requestprojection.FieldMemoryGB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DiskGB(); ok {
		_spec.SetField(requestprojection.FieldDiskGB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDiskGB(); ok {
		_spec.AddField(requestprojection.FieldDiskGB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Justification(); ok {
		_spec.SetField(requestprojection.FieldJustification, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(requestprojection.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeciderName(); ok {
		_spec.SetField(requestprojection.FieldDeciderName, field.TypeString, value)
	}
	if _u.mutation.DeciderNameCleared() {
		_spec.ClearField(requestprojection.FieldDeciderName, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(requestprojection.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(requestprojection.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(requestprojection.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(requestprojection.FieldRejectionReason, field.TypeString)
	}
	if value, ok := _u.mutation.VMID(); ok {
		_spec.SetField(requestprojection.FieldVMID, field.TypeString, value)
	}
	if _u.mutation.VMIDCleared() {
		_spec.ClearField(requestprojection.FieldVMID, field.TypeString)
	}
	if value, ok := _u.mutation.VmwareVMID(); ok {
		_spec.SetField(requestprojection.FieldVmwareVMID, field.TypeString, value)
	}
	if _u.mutation.VmwareVMIDCleared() {
		_spec.ClearField(requestprojection.FieldVmwareVMID, field.TypeString)
	}
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(requestprojection.FieldIPAddress, field.TypeString, value)
	}
	if _u.mutation.IPAddressCleared() {
		_spec.ClearField(requestprojection.FieldIPAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Hostname(); ok {
		_spec.SetField(requestprojection.FieldHostname, field.TypeString, value)
	}
	if _u.mutation.HostnameCleared() {
		_spec.ClearField(requestprojection.FieldHostname, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(requestprojection.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(requestprojection.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(requestprojection.FieldVersion, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestprojection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequestProjectionUpdateOne is the builder for updating a single RequestProjection entity.
type RequestProjectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestProjectionMutation
}

// SetProjectName sets the "project_name" field.
func (_u *RequestProjectionUpdateOne) SetProjectName(v string) *RequestProjectionUpdateOne {
	_u.mutation.SetProjectName(v)
	return _u
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_u *RequestProjectionUpdateOne) SetNillableProjectName(v *string) *RequestProjectionUpdateOne {
	if v != nil {
		_u.SetProjectName(*v)
	}
	return _u
}

// SetRequesterName sets the "requester_name" field.
func (_u *RequestProjectionUpdateOne) SetRequesterName(v string) *RequestProjectionUpdateOne {
	_u.mutation.SetRequesterName(v)
	return _u
}

// SetNillableRequesterName sets the "requester_name" field if the given value is not nil.
func (_u *RequestProjectionUpdateOne) SetNillableRequesterName(v *string) *RequestProjectionUpdateOne {
	if v != nil {
		_u.SetRequesterName(*v)
	}
	return _u
}

// SetRequesterEmail sets the "requester_email" field.
func (_u *RequestProjectionUpdateOne) SetRequesterEmail(v string) *RequestProjectionUpdateOne {
	_u.mutation.SetRequesterEmail(v)
	return _u
}

// SetNillableRequesterEmail sets the "requester_email" field if the given value is not nil.
func (_u *RequestProjectionUpdateOne) SetNillableRequesterEmail(v *string) *RequestProjectionUpdateOne {
	if v != nil {
		_u.SetRequesterEmail(*v)
	}
	return _u
}

// SetVMName sets the "vm_name" field.
func (_u *RequestProjectionUpdateOne) SetVMName(v string) *RequestProjectionUpdateOne {
	_u.mutation.SetVMName(v)
	return _u
}

// SetNillableVMName sets the "vm_name" field if the given value is not nil.
func (_u *RequestProjectionUpdateOne) SetNillableVMName(v *string) *RequestProjectionUpdateOne {
	if v != nil {
		_u.SetVMName(*v)
	}
	return _u
}

// SetSize sets the "size" field.
func (_u *RequestProjectionUpdateOne) SetSize(v requestprojection.Size) *RequestProjectionUpdateOne {
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *RequestProjectionUpdateOne) SetNillableSize(v *requestprojection.Size) *RequestProjectionUpdateOne {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// SetCPUCores sets the "cpu_cores" field.
func (_u *RequestProjectionUpdateOne) SetCPUCores(v int) *RequestProjectionUpdateOne {
	_u.mutation.ResetCPUCores()
	_u.mutation.SetCPUCores(v)
	return _u
}

// SetNillableCPUCores sets the "cpu_cores" field if the given value is not nil.
func (_u *RequestProjectionUpdateOne) SetNillableCPUCores(v *int) *RequestProjectionUpdateOne {
	if v != nil {
		_u.SetCPUCores(*v)
	}
	return _u
}

// AddCPUCores adds value to the "cpu_cores" field.
func (_u *RequestProjectionUpdateOne) AddCPUCores(v int) *RequestProjectionUpdateOne {
	_u.mutation.AddCPUCores(v)
	return _u
}

// SetMemoryGB sets the "memory_gb" field.
func (_u *RequestProjectionUpdateOne) SetMemoryGB(v int) *RequestProjectionUpdateOne {
	_u.mutation.ResetMemoryGB()
	_u.mutation.SetMemoryGB(v)
	return _u
}

// SetNillableMemoryGB sets the "memory_gb" field if the given value is not nil.
func (_u *RequestProjectionUpdateOne) SetNillableMemoryGB(v *int) *RequestProjectionUpdateOne {
	if v != nil {
		_u.SetMemoryGB(*v)
	}
	return _u
}

// AddMemoryGB adds value to the "memory_gb" field.
func (_u *RequestProjectionUpdateOne) AddMemoryGB(v int) *RequestProjectionUpdateOne {
	_u.mutation.AddMemoryGB(v)
	return _u
}

// SetDiskGB sets the "disk_gb" field.
func (_u *RequestProjectionUpdateOne) SetDiskGB(v int) *RequestProjectionUpdateOne {
	_u.mutation.ResetDiskGB()
	_u.mutation.SetDiskGB(v)
	return _u
}

// SetNillableDiskGB sets the "disk_gb" field if the given value is not nil.
func (_u *RequestProjectionUpdateOne) SetNillableDiskGB(v *int) *RequestProjectionUpdateOne {
	if v != nil {
		_u.SetDiskGB(*v)
	}
	return _u
}

// AddDiskGB adds value to the "disk_gb" field.
func (_u *RequestProjectionUpdateOne) AddDiskGB(v int) *RequestProjectionUpdateOne {
	_u.mutation.AddDiskGB(v)
	return _u
}

// SetJustification sets the "justification" field.
func (_u *RequestProjectionUpdateOne) SetJustification(v string) *RequestProjectionUpdateOne {
	_u.mutation.SetJustification(v)
	return _u
}

// SetNillableJustification sets the "justification" field if the given value is not nil.
func (_u *RequestProjectionUpdateOne) SetNillableJustification(v *string) *RequestProjectionUpdateOne {
	if v != nil {
		_u.SetJustification(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequestProjectionUpdateOne) SetStatus(v requestprojection.Status) *RequestProjectionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequestProjectionUpdateOne) SetNillableStatus(v *requestprojection.Status) *RequestProjectionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDeciderName sets the "decider_name" field.
func (_u *RequestProjectionUpdateOne) SetDeciderName(v string) *RequestProjectionUpdateOne {
	_u.mutation.SetDeciderName(v)
	return _u
}

// SetNillableDeciderName sets the "decider_name" field if the given value is not nil.
func (_u *RequestProjectionUpdateOne) SetNillableDeciderName(v *string) *RequestProjectionUpdateOne {
	if v != nil {
		_u.SetDeciderName(*v)
	}
	return _u
}

// ClearDeciderName clears the value of the "decider_name" field.
func (_u *RequestProjectionUpdateOne) ClearDeciderName() *RequestProjectionUpdateOne {
	_u.mutation.ClearDeciderName()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *RequestProjectionUpdateOne) SetDecidedAt(v time.Time) *RequestProjectionUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *RequestProjectionUpdateOne) SetNillableDecidedAt(v *time.Time) *RequestProjectionUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *RequestProjectionUpdateOne) ClearDecidedAt() *RequestProjectionUpdateOne {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *RequestProjectionUpdateOne) SetRejectionReason(v string) *RequestProjectionUpdateOne {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *RequestProjectionUpdateOne) SetNillableRejectionReason(v *string) *RequestProjectionUpdateOne {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *RequestProjectionUpdateOne) ClearRejectionReason() *RequestProjectionUpdateOne {
	_u.mutation.ClearRejectionReason()
	return _u
}

// SetVMID sets the "vm_id" field.
func (_u *RequestProjectionUpdateOne) SetVMID(v string) *RequestProjectionUpdateOne {
	_u.mutation.SetVMID(v)
	return _u
}

// SetNillableVMID sets the "vm_id" field if the given value is not nil.
func (_u *RequestProjectionUpdateOne) SetNillableVMID(v *string) *RequestProjectionUpdateOne {
	if v != nil {
		_u.SetVMID(*v)
	}
	return _u
}

// ClearVMID clears the value of the "vm_id" field.
func (_u *RequestProjectionUpdateOne) ClearVMID() *RequestProjectionUpdateOne {
	_u.mutation.ClearVMID()
	return _u
}

// SetVmwareVMID sets the "vmware_vm_id" field.
func (_u *RequestProjectionUpdateOne) SetVmwareVMID(v string) *RequestProjectionUpdateOne {
	_u.mutation.SetVmwareVMID(v)
	return _u
}

// SetNillableVmwareVMID sets the "vmware_vm_id" field if the given value is not nil.
func (_u *RequestProjectionUpdateOne) SetNillableVmwareVMID(v *string) *RequestProjectionUpdateOne {
	if v != nil {
		_u.SetVmwareVMID(*v)
	}
	return _u
}

// ClearVmwareVMID clears the value of the "vmware_vm_id" field.
func (_u *RequestProjectionUpdateOne) ClearVmwareVMID() *RequestProjectionUpdateOne {
	_u.mutation.ClearVmwareVMID()
	return _u
}

// SetIPAddress sets the "ip_address" field.
func (_u *RequestProjectionUpdateOne) SetIPAddress(v string) *RequestProjectionUpdateOne {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *RequestProjectionUpdateOne) SetNillableIPAddress(v *string) *RequestProjectionUpdateOne {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// ClearIPAddress clears the value of the "ip_address" field.
func (_u *RequestProjectionUpdateOne) ClearIPAddress() *RequestProjectionUpdateOne {
	_u.mutation.ClearIPAddress()
	return _u
}

// SetHostname sets the "hostname" field.
func (_u *RequestProjectionUpdateOne) SetHostname(v string) *RequestProjectionUpdateOne {
	_u.mutation.SetHostname(v)
	return _u
}

// SetNillableHostname sets the "hostname" field if the given value is not nil.
func (_u *RequestProjectionUpdateOne) SetNillableHostname(v *string) *RequestProjectionUpdateOne {
	if v != nil {
		_u.SetHostname(*v)
	}
	return _u
}

// ClearHostname clears the value of the "hostname" field.
func (_u *RequestProjectionUpdateOne) ClearHostname() *RequestProjectionUpdateOne {
	_u.mutation.ClearHostname()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequestProjectionUpdateOne) SetUpdatedAt(v time.Time) *RequestProjectionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *RequestProjectionUpdateOne) SetNillableUpdatedAt(v *time.Time) *RequestProjectionUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *RequestProjectionUpdateOne) SetVersion(v int64) *RequestProjectionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *RequestProjectionUpdateOne) SetNillableVersion(v *int64) *RequestProjectionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *RequestProjectionUpdateOne) AddVersion(v int64) *RequestProjectionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the RequestProjectionMutation object of the builder.
func (_u *RequestProjectionUpdateOne) Mutation() *RequestProjectionMutation {
	return _u.mutation
}

// Where appends a list predicates to the RequestProjectionUpdate builder.
func (_u *RequestProjectionUpdateOne) Where(ps ...predicate.RequestProjection) *RequestProjectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequestProjectionUpdateOne) Select(field string, fields ...string) *RequestProjectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RequestProjection entity.
func (_u *RequestProjectionUpdateOne) Save(ctx context.Context) (*RequestProjection, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestProjectionUpdateOne) SaveX(ctx context.Context) *RequestProjection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequestProjectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestProjectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestProjectionUpdateOne) check() error {
	if v, ok := _u.mutation.ProjectName(); ok {
		if err := requestprojection.ProjectNameValidator(v); err != nil {
			return &ValidationError{Name: "project_name", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.project_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequesterName(); ok {
		if err := requestprojection.RequesterNameValidator(v); err != nil {
			return &ValidationError{Name: "requester_name", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.requester_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequesterEmail(); ok {
		if err := requestprojection.RequesterEmailValidator(v); err != nil {
			return &ValidationError{Name: "requester_email", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.requester_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VMName(); ok {
		if err := requestprojection.VMNameValidator(v); err != nil {
			return &ValidationError{Name: "vm_name", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.vm_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Size(); ok {
		if err := requestprojection.SizeValidator(v); err != nil {
			return &ValidationError{Name: "size", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Justification(); ok {
		if err := requestprojection.JustificationValidator(v); err != nil {
			return &ValidationError{Name: "justification", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.justification": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := requestprojection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RejectionReason(); ok {
		if err := requestprojection.RejectionReasonValidator(v); err != nil {
			return &ValidationError{Name: "rejection_reason", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.rejection_reason": %w`, err)}
		}
	}
	return nil
}

func (_u *RequestProjectionUpdateOne) sqlSave(ctx context.Context) (_node *RequestProjection, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestprojection.Table, requestprojection.Columns, sqlgraph.NewFieldSpec(requestprojection.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RequestProjection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, requestprojection.FieldID)
		for _, f := range fields {
			if !requestprojection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != requestprojection.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectName(); ok {
		_spec.SetField(requestprojection.FieldProjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequesterName(); ok {
		_spec.SetField(requestprojection.FieldRequesterName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequesterEmail(); ok {
		_spec.SetField(requestprojection.FieldRequesterEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.VMName(); ok {
		_spec.SetField(requestprojection.FieldVMName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(requestprojection.FieldSize, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CPUCores(); ok {
		_spec.SetField(requestprojection.FieldCPUCores, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCPUCores(); ok {
		_spec.AddField(requestprojection.FieldCPUCores, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MemoryGB(); ok {
		_spec.SetField(requestprojection.FieldMemoryGB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoryGB(); ok {
		_spec.AddField(requestprojection.FieldMemoryGB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DiskGB(); ok {
		_spec.SetField(requestprojection.FieldDiskGB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDiskGB(); ok {
		_spec.AddField(requestprojection.FieldDiskGB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Justification(); ok {
		_spec.SetField(requestprojection.FieldJustification, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(requestprojection.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeciderName(); ok {
		_spec.SetField(requestprojection.FieldDeciderName, field.TypeString, value)
	}
	if _u.mutation.DeciderNameCleared() {
		_spec.ClearField(requestprojection.FieldDeciderName, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(requestprojection.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(requestprojection.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(requestprojection.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(requestprojection.FieldRejectionReason, field.TypeString)
	}
	if value, ok := _u.mutation.VMID(); ok {
		_spec.SetField(requestprojection.FieldVMID, field.TypeString, value)
	}
	if _u.mutation.VMIDCleared() {
		_spec.ClearField(requestprojection.FieldVMID, field.TypeString)
	}
	if value, ok := _u.mutation.VmwareVMID(); ok {
		_spec.SetField(requestprojection.FieldVmwareVMID, field.TypeString, value)
	}
	if _u.mutation.VmwareVMIDCleared() {
		_spec.ClearField(requestprojection.FieldVmwareVMID, field.TypeString)
	}
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(requestprojection.FieldIPAddress, field.TypeString, value)
	}
	if _u.mutation.IPAddressCleared() {
		_spec.ClearField(requestprojection.FieldIPAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Hostname(); ok {
		_spec.SetField(requestprojection.FieldHostname, field.TypeString, value)
	}
	if _u.mutation.HostnameCleared() {
		_spec.ClearField(requestprojection.FieldHostname, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(requestprojection.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(requestprojection.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(requestprojection.FieldVersion, field.TypeInt64, value)
	}
	_node = &RequestProjection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestprojection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
