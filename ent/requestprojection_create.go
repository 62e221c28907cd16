// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"vc-drover.io/drover/ent/requestprojection"
)

// RequestProjectionCreate is the builder for creating a RequestProjection entity.
type RequestProjectionCreate struct {
	config
	mutation *RequestProjectionMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *RequestProjectionCreate) SetTenantID(v string) *RequestProjectionCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *RequestProjectionCreate) SetProjectID(v string) *RequestProjectionCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetProjectName sets the "project_name" field.
func (_c *RequestProjectionCreate) SetProjectName(v string) *RequestProjectionCreate {
	_c.mutation.SetProjectName(v)
	return _c
}

// SetRequesterID sets the "requester_id" field.
func (_c *RequestProjectionCreate) SetRequesterID(v string) *RequestProjectionCreate {
	_c.mutation.SetRequesterID(v)
	return _c
}

// SetRequesterName sets the "requester_name" field.
func (_c *RequestProjectionCreate) SetRequesterName(v string) *RequestProjectionCreate {
	_c.mutation.SetRequesterName(v)
	return _c
}

// SetRequesterEmail sets the "requester_email" field.
func (_c *RequestProjectionCreate) SetRequesterEmail(v string) *RequestProjectionCreate {
	_c.mutation.SetRequesterEmail(v)
	return _c
}

// SetVMName sets the "vm_name" field.
func (_c *RequestProjectionCreate) SetVMName(v string) *RequestProjectionCreate {
	_c.mutation.SetVMName(v)
	return _c
}

// SetSize sets the "size" field.
func (_c *RequestProjectionCreate) SetSize(v requestprojection.Size) *RequestProjectionCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetCPUCores sets the "cpu_cores" field.
func (_c *RequestProjectionCreate) SetCPUCores(v int) *RequestProjectionCreate {
	_c.mutation.SetCPUCores(v)
	return _c
}

// SetMemoryGB sets the "memory_gb" field.
func (_c *RequestProjectionCreate) SetMemoryGB(v int) *RequestProjectionCreate {
	_c.mutation.SetMemoryGB(v)
	return _c
}

// SetDiskGB sets the "disk_gb" field.
func (_c *RequestProjectionCreate) SetDiskGB(v int) *RequestProjectionCreate {
	_c.mutation.SetDiskGB(v)
	return _c
}

// SetJustification sets the "justification" field.
func (_c *RequestProjectionCreate) SetJustification(v string) *RequestProjectionCreate {
	_c.mutation.SetJustification(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RequestProjectionCreate) SetStatus(v requestprojection.Status) *RequestProjectionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RequestProjectionCreate) SetNillableStatus(v *requestprojection.Status) *RequestProjectionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDeciderName sets the "decider_name" field.
func (_c *RequestProjectionCreate) SetDeciderName(v string) *RequestProjectionCreate {
	_c.mutation.SetDeciderName(v)
	return _c
}

// SetNillableDeciderName sets the "decider_name" field if the given value is not nil.
func (_c *RequestProjectionCreate) SetNillableDeciderName(v *string) *RequestProjectionCreate {
	if v != nil {
		_c.SetDeciderName(*v)
	}
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *RequestProjectionCreate) SetDecidedAt(v time.Time) *RequestProjectionCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *RequestProjectionCreate) SetNillableDecidedAt(v *time.Time) *RequestProjectionCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// SetRejectionReason sets the "rejection_reason" field.
func (_c *RequestProjectionCreate) SetRejectionReason(v string) *RequestProjectionCreate {
	_c.mutation.SetRejectionReason(v)
	return _c
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_c *RequestProjectionCreate) SetNillableRejectionReason(v *string) *RequestProjectionCreate {
	if v != nil {
		_c.SetRejectionReason(*v)
	}
	return _c
}

// SetVMID sets the "vm_id" field.
func (_c *RequestProjectionCreate) SetVMID(v string) *RequestProjectionCreate {
	_c.mutation.SetVMID(v)
	return _c
}

// SetNillableVMID sets the "vm_id" field if the given value is not nil.
func (_c *RequestProjectionCreate) SetNillableVMID(v *string) *RequestProjectionCreate {
	if v != nil {
		_c.SetVMID(*v)
	}
	return _c
}

// SetVmwareVMID sets the "vmware_vm_id" field.
func (_c *RequestProjectionCreate) SetVmwareVMID(v string) *RequestProjectionCreate {
	_c.mutation.SetVmwareVMID(v)
	return _c
}

// SetNillableVmwareVMID sets the "vmware_vm_id" field if the given value is not nil.
func (_c *RequestProjectionCreate) SetNillableVmwareVMID(v *string) *RequestProjectionCreate {
	if v != nil {
		_c.SetVmwareVMID(*v)
	}
	return _c
}

// SetIPAddress sets the "ip_address" field.
func (_c *RequestProjectionCreate) SetIPAddress(v string) *RequestProjectionCreate {
	_c.mutation.SetIPAddress(v)
	return _c
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_c *RequestProjectionCreate) SetNillableIPAddress(v *string) *RequestProjectionCreate {
	if v != nil {
		_c.SetIPAddress(*v)
	}
	return _c
}

// SetHostname sets the "hostname" field.
func (_c *RequestProjectionCreate) SetHostname(v string) *RequestProjectionCreate {
	_c.mutation.SetHostname(v)
	return _c
}

// SetNillableHostname sets the "hostname" field if the given value is not nil.
func (_c *RequestProjectionCreate) SetNillableHostname(v *string) *RequestProjectionCreate {
	if v != nil {
		_c.SetHostname(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RequestProjectionCreate) SetCreatedAt(v time.Time) *RequestProjectionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RequestProjectionCreate) SetUpdatedAt(v time.Time) *RequestProjectionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *RequestProjectionCreate) SetVersion(v int64) *RequestProjectionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *RequestProjectionCreate) SetNillableVersion(v *int64) *RequestProjectionCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RequestProjectionCreate) SetID(v string) *RequestProjectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RequestProjectionMutation object of the builder.
func (_c *RequestProjectionCreate) Mutation() *RequestProjectionMutation {
	return _c.mutation
}

// Save creates the RequestProjection in the database.
func (_c *RequestProjectionCreate) Save(ctx context.Context) (*RequestProjection, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequestProjectionCreate) SaveX(ctx context.Context) *RequestProjection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestProjectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestProjectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequestProjectionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := requestprojection.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := requestprojection.DefaultVersion
		_c.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequestProjectionCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "RequestProjection.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := requestprojection.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "RequestProjection.project_id"`)}
	}
	if v, ok := _c.mutation.ProjectID(); ok {
		if err := requestprojection.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.project_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProjectName(); !ok {
		return &ValidationError{Name: "project_name", err: errors.New(`ent: missing required field "RequestProjection.project_name"`)}
	}
	if v, ok := _c.mutation.ProjectName(); ok {
		if err := requestprojection.ProjectNameValidator(v); err != nil {
			return &ValidationError{Name: "project_name", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.project_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequesterID(); !ok {
		return &ValidationError{Name: "requester_id", err: errors.New(`ent: missing required field "RequestProjection.requester_id"`)}
	}
	if v, ok := _c.mutation.RequesterID(); ok {
		if err := requestprojection.RequesterIDValidator(v); err != nil {
			return &ValidationError{Name: "requester_id", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.requester_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequesterName(); !ok {
		return &ValidationError{Name: "requester_name", err: errors.New(`ent: missing required field "RequestProjection.requester_name"`)}
	}
	if v, ok := _c.mutation.RequesterName(); ok {
		if err := requestprojection.RequesterNameValidator(v); err != nil {
			return &ValidationError{Name: "requester_name", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.requester_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequesterEmail(); !ok {
		return &ValidationError{Name: "requester_email", err: errors.New(`ent: missing required field "RequestProjection.requester_email"`)}
	}
	if v, ok := _c.mutation.RequesterEmail(); ok {
		if err := requestprojection.RequesterEmailValidator(v); err != nil {
			return &ValidationError{Name: "requester_email", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.requester_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VMName(); !ok {
		return &ValidationError{Name: "vm_name", err: errors.New(`ent: missing required field "RequestProjection.vm_name"`)}
	}
	if v, ok := _c.mutation.VMName(); ok {
		if err := requestprojection.VMNameValidator(v); err != nil {
			return &ValidationError{Name: "vm_name", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.vm_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "RequestProjection.size"`)}
	}
	if v, ok := _c.mutation.Size(); ok {
		if err := requestprojection.SizeValidator(v); err != nil {
			return &ValidationError{Name: "size", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CPUCores(); !ok {
		return &ValidationError{Name: "cpu_cores", err: errors.New(`ent: missing required field "RequestProjection.cpu_cores"`)}
	}
	if _, ok := _c.mutation.MemoryGB(); !ok {
		return &ValidationError{Name: "memory_gb", err: errors.New(`ent: missing required field "RequestProjection.memory_gb"`)}
	}
	if _, ok := _c.mutation.DiskGB(); !ok {
		return &ValidationError{Name: "disk_gb", err: errors.New(`ent: missing required field "RequestProjection.disk_gb"`)}
	}
	if _, ok := _c.mutation.Justification(); !ok {
		return &ValidationError{Name: "justification", err: errors.New(`ent: missing required field "RequestProjection.justification"`)}
	}
	if v, ok := _c.mutation.Justification(); ok {
		if err := requestprojection.JustificationValidator(v); err != nil {
			return &ValidationError{Name: "justification", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.justification": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RequestProjection.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := requestprojection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.RejectionReason(); ok {
		if err := requestprojection.RejectionReasonValidator(v); err != nil {
			return &ValidationError{Name: "rejection_reason", err: fmt.Errorf(`ent: validator failed for field "RequestProjection.rejection_reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RequestProjection.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RequestProjection.updated_at"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "RequestProjection.version"`)}
	}
	return nil
}

func (_c *RequestProjectionCreate) sqlSave(ctx context.Context) (*RequestProjection, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected RequestProjection.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RequestProjectionCreate) createSpec() (*RequestProjection, *sqlgraph.CreateSpec) {
	var (
		_node = &RequestProjection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(requestprojection.Table, sqlgraph.NewFieldSpec(requestprojection.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(requestprojection.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(requestprojection.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.ProjectName(); ok {
		_spec.SetField(requestprojection.FieldProjectName, field.TypeString, value)
		_node.ProjectName = value
	}
	if value, ok := _c.mutation.RequesterID(); ok {
		_spec.SetField(requestprojection.FieldRequesterID, field.TypeString, value)
		_node.RequesterID = value
	}
	if value, ok := _c.mutation.RequesterName(); ok {
		_spec.SetField(requestprojection.FieldRequesterName, field.TypeString, value)
		_node.RequesterName = value
	}
	if value, ok := _c.mutation.RequesterEmail(); ok {
		_spec.SetField(requestprojection.FieldRequesterEmail, field.TypeString, value)
		_node.RequesterEmail = value
	}
	if value, ok := _c.mutation.VMName(); ok {
		_spec.SetField(requestprojection.FieldVMName, field.TypeString, value)
		_node.VMName = value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(requestprojection.FieldSize, field.TypeEnum, value)
		_node.Size = value
	}
	if value, ok := _c.mutation.CPUCores(); ok {
		_spec.SetField(requestprojection.FieldCPUCores, field.TypeInt, value)
		_node.CPUCores = value
	}
	if value, ok := _c.mutation.MemoryGB(); ok {
		_spec.SetField(requestprojection.FieldMemoryGB, field.TypeInt, value)
		_node.MemoryGB = value
	}
	if value, ok := _c.mutation.DiskGB(); ok {
		_spec.SetField(requestprojection.FieldDiskGB, field.TypeInt, value)
		_node.DiskGB = value
	}
	if value, ok := _c.mutation.Justification(); ok {
		_spec.SetField(requestprojection.FieldJustification, field.TypeString, value)
		_node.Justification = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(requestprojection.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DeciderName(); ok {
		_spec.SetField(requestprojection.FieldDeciderName, field.TypeString, value)
		_node.DeciderName = value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(requestprojection.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = &value
	}
	if value, ok := _c.mutation.RejectionReason(); ok {
		_spec.SetField(requestprojection.FieldRejectionReason, field.TypeString, value)
		_node.RejectionReason = value
	}
	if value, ok := _c.mutation.VMID(); ok {
		_spec.SetField(requestprojection.FieldVMID, field.TypeString, value)
		_node.VMID = value
	}
	if value, ok := _c.mutation.VmwareVMID(); ok {
		_spec.SetField(requestprojection.FieldVmwareVMID, field.TypeString, value)
		_node.VmwareVMID = value
	}
	if value, ok := _c.mutation.IPAddress(); ok {
		_spec.SetField(requestprojection.FieldIPAddress, field.TypeString, value)
		_node.IPAddress = value
	}
	if value, ok := _c.mutation.Hostname(); ok {
		_spec.SetField(requestprojection.FieldHostname, field.TypeString, value)
		_node.Hostname = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(requestprojection.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(requestprojection.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(requestprojection.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	return _node, _spec
}

// RequestProjectionCreateBulk is the builder for creating many RequestProjection entities in bulk.
type RequestProjectionCreateBulk struct {
	config
	err      error
	builders []*RequestProjectionCreate
}

// Save creates the RequestProjection entities in the database.
func (_c *RequestProjectionCreateBulk) Save(ctx context.Context) ([]*RequestProjection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RequestProjection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequestProjectionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RequestProjectionCreateBulk) SaveX(ctx context.Context) []*RequestProjection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestProjectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestProjectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
