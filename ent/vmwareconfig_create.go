// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"vc-drover.io/drover/ent/vmwareconfig"
)

// VmwareConfigCreate is the builder for creating a VmwareConfig entity.
type VmwareConfigCreate struct {
	config
	mutation *VmwareConfigMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *VmwareConfigCreate) SetCreatedAt(v time.Time) *VmwareConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VmwareConfigCreate) SetNillableCreatedAt(v *time.Time) *VmwareConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VmwareConfigCreate) SetUpdatedAt(v time.Time) *VmwareConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VmwareConfigCreate) SetNillableUpdatedAt(v *time.Time) *VmwareConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *VmwareConfigCreate) SetTenantID(v string) *VmwareConfigCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetVcenterURL sets the "vcenter_url" field.
func (_c *VmwareConfigCreate) SetVcenterURL(v string) *VmwareConfigCreate {
	_c.mutation.SetVcenterURL(v)
	return _c
}

// SetUsername sets the "username" field.
func (_c *VmwareConfigCreate) SetUsername(v string) *VmwareConfigCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetPasswordEnc sets the "password_enc" field.
func (_c *VmwareConfigCreate) SetPasswordEnc(v string) *VmwareConfigCreate {
	_c.mutation.SetPasswordEnc(v)
	return _c
}

// SetDatacenter sets the "datacenter" field.
func (_c *VmwareConfigCreate) SetDatacenter(v string) *VmwareConfigCreate {
	_c.mutation.SetDatacenter(v)
	return _c
}

// SetCluster sets the "cluster" field.
func (_c *VmwareConfigCreate) SetCluster(v string) *VmwareConfigCreate {
	_c.mutation.SetCluster(v)
	return _c
}

// SetDatastore sets the "datastore" field.
func (_c *VmwareConfigCreate) SetDatastore(v string) *VmwareConfigCreate {
	_c.mutation.SetDatastore(v)
	return _c
}

// SetNetwork sets the "network" field.
func (_c *VmwareConfigCreate) SetNetwork(v string) *VmwareConfigCreate {
	_c.mutation.SetNetwork(v)
	return _c
}

// SetTemplate sets the "template" field.
func (_c *VmwareConfigCreate) SetTemplate(v string) *VmwareConfigCreate {
	_c.mutation.SetTemplate(v)
	return _c
}

// SetVerifiedAt sets the "verified_at" field.
func (_c *VmwareConfigCreate) SetVerifiedAt(v time.Time) *VmwareConfigCreate {
	_c.mutation.SetVerifiedAt(v)
	return _c
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_c *VmwareConfigCreate) SetNillableVerifiedAt(v *time.Time) *VmwareConfigCreate {
	if v != nil {
		_c.SetVerifiedAt(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *VmwareConfigCreate) SetVersion(v int64) *VmwareConfigCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *VmwareConfigCreate) SetNillableVersion(v *int64) *VmwareConfigCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// Mutation returns the VmwareConfigMutation object of the builder.
func (_c *VmwareConfigCreate) Mutation() *VmwareConfigMutation {
	return _c.mutation
}

// Save creates the VmwareConfig in the database.
func (_c *VmwareConfigCreate) Save(ctx context.Context) (*VmwareConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VmwareConfigCreate) SaveX(ctx context.Context) *VmwareConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VmwareConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VmwareConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VmwareConfigCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vmwareconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := vmwareconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := vmwareconfig.DefaultVersion
		_c.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VmwareConfigCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VmwareConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "VmwareConfig.updated_at"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "VmwareConfig.tenant_id"`)}
	}
	if _, ok := _c.mutation.VcenterURL(); !ok {
		return &ValidationError{Name: "vcenter_url", err: errors.New(`ent: missing required field "VmwareConfig.vcenter_url"`)}
	}
	if v, ok := _c.mutation.VcenterURL(); ok {
		if err := vmwareconfig.VcenterURLValidator(v); err != nil {
			return &ValidationError{Name: "vcenter_url", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.vcenter_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "VmwareConfig.username"`)}
	}
	if v, ok := _c.mutation.Username(); ok {
		if err := vmwareconfig.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.username": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PasswordEnc(); !ok {
		return &ValidationError{Name: "password_enc", err: errors.New(`ent: missing required field "VmwareConfig.password_enc"`)}
	}
	if v, ok := _c.mutation.PasswordEnc(); ok {
		if err := vmwareconfig.PasswordEncValidator(v); err != nil {
			return &ValidationError{Name: "password_enc", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.password_enc": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Datacenter(); !ok {
		return &ValidationError{Name: "datacenter", err: errors.New(`ent: missing required field "VmwareConfig.datacenter"`)}
	}
	if v, ok := _c.mutation.Datacenter(); ok {
		if err := vmwareconfig.DatacenterValidator(v); err != nil {
			return &ValidationError{Name: "datacenter", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.datacenter": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Cluster(); !ok {
		return &ValidationError{Name: "cluster", err: errors.New(`ent: missing required field "VmwareConfig.cluster"`)}
	}
	if v, ok := _c.mutation.Cluster(); ok {
		if err := vmwareconfig.ClusterValidator(v); err != nil {
			return &ValidationError{Name: "cluster", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.cluster": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Datastore(); !ok {
		return &ValidationError{Name: "datastore", err: errors.New(`ent: missing required field "VmwareConfig.datastore"`)}
	}
	if v, ok := _c.mutation.Datastore(); ok {
		if err := vmwareconfig.DatastoreValidator(v); err != nil {
			return &ValidationError{Name: "datastore", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.datastore": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Network(); !ok {
		return &ValidationError{Name: "network", err: errors.New(`ent: missing required field "VmwareConfig.network"`)}
	}
	if v, ok := _c.mutation.Network(); ok {
		if err := vmwareconfig.NetworkValidator(v); err != nil {
			return &ValidationError{Name: "network", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.network": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Template(); !ok {
		return &ValidationError{Name: "template", err: errors.New(`ent: missing required field "VmwareConfig.template"`)}
	}
	if v, ok := _c.mutation.Template(); ok {
		if err := vmwareconfig.TemplateValidator(v); err != nil {
			return &ValidationError{Name: "template", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.template": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "VmwareConfig.version"`)}
	}
	return nil
}

func (_c *VmwareConfigCreate) sqlSave(ctx context.Context) (*VmwareConfig, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VmwareConfigCreate) createSpec() (*VmwareConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &VmwareConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vmwareconfig.Table, sqlgraph.NewFieldSpec(vmwareconfig.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vmwareconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(vmwareconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(vmwareconfig.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.VcenterURL(); ok {
		_spec.SetField(vmwareconfig.FieldVcenterURL, field.TypeString, value)
		_node.VcenterURL = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(vmwareconfig.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.PasswordEnc(); ok {
		_spec.SetField(vmwareconfig.FieldPasswordEnc, field.TypeString, value)
		_node.PasswordEnc = value
	}
	if value, ok := _c.mutation.Datacenter(); ok {
		_spec.SetField(vmwareconfig.FieldDatacenter, field.TypeString, value)
		_node.Datacenter = value
	}
	if value, ok := _c.mutation.Cluster(); ok {
		_spec.SetField(vmwareconfig.FieldCluster, field.TypeString, value)
		_node.Cluster = value
	}
	if value, ok := _c.mutation.Datastore(); ok {
		_spec.SetField(vmwareconfig.FieldDatastore, field.TypeString, value)
		_node.Datastore = value
	}
	if value, ok := _c.mutation.Network(); ok {
		_spec.SetField(vmwareconfig.FieldNetwork, field.TypeString, value)
		_node.Network = value
	}
	if value, ok := _c.mutation.Template(); ok {
		_spec.SetField(vmwareconfig.FieldTemplate, field.TypeString, value)
		_node.Template = value
	}
	if value, ok := _c.mutation.VerifiedAt(); ok {
		_spec.SetField(vmwareconfig.FieldVerifiedAt, field.TypeTime, value)
		_node.VerifiedAt = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(vmwareconfig.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	return _node, _spec
}

// VmwareConfigCreateBulk is the builder for creating many VmwareConfig entities in bulk.
type VmwareConfigCreateBulk struct {
	config
	err      error
	builders []*VmwareConfigCreate
}

// Save creates the VmwareConfig entities in the database.
func (_c *VmwareConfigCreateBulk) Save(ctx context.Context) ([]*VmwareConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VmwareConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VmwareConfigMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *VmwareConfigCreateBulk) SaveX(ctx context.Context) []*VmwareConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VmwareConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VmwareConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
