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
	"vc-drover.io/drover/ent/vmwareconfig"
)

// VmwareConfigUpdate is the builder for updating VmwareConfig entities.
type VmwareConfigUpdate struct {
	config
	hooks    []Hook
	mutation *VmwareConfigMutation
}

// Where appends a list predicates to the VmwareConfigUpdate builder.
func (_u *VmwareConfigUpdate) Where(ps ...predicate.VmwareConfig) *VmwareConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VmwareConfigUpdate) SetUpdatedAt(v time.Time) *VmwareConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVcenterURL sets the "vcenter_url" field.
func (_u *VmwareConfigUpdate) SetVcenterURL(v string) *VmwareConfigUpdate {
	_u.mutation.SetVcenterURL(v)
	return _u
}

// SetNillableVcenterURL sets the "vcenter_url" field if the given value is not nil.
func (_u *VmwareConfigUpdate) SetNillableVcenterURL(v *string) *VmwareConfigUpdate {
	if v != nil {
		_u.SetVcenterURL(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *VmwareConfigUpdate) SetUsername(v string) *VmwareConfigUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *VmwareConfigUpdate) SetNillableUsername(v *string) *VmwareConfigUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetPasswordEnc sets the "password_enc" field.
func (_u *VmwareConfigUpdate) SetPasswordEnc(v string) *VmwareConfigUpdate {
	_u.mutation.SetPasswordEnc(v)
	return _u
}

// SetNillablePasswordEnc sets the "password_enc" field if the given value is not nil.
func (_u *VmwareConfigUpdate) SetNillablePasswordEnc(v *string) *VmwareConfigUpdate {
	if v != nil {
		_u.SetPasswordEnc(*v)
	}
	return _u
}

// SetDatacenter sets the "datacenter" field.
func (_u *VmwareConfigUpdate) SetDatacenter(v string) *VmwareConfigUpdate {
	_u.mutation.SetDatacenter(v)
	return _u
}

// SetNillableDatacenter sets the "datacenter" field if the given value is not nil.
func (_u *VmwareConfigUpdate) SetNillableDatacenter(v *string) *VmwareConfigUpdate {
	if v != nil {
		_u.SetDatacenter(*v)
	}
	return _u
}

// SetCluster sets the "cluster" field.
func (_u *VmwareConfigUpdate) SetCluster(v string) *VmwareConfigUpdate {
	_u.mutation.SetCluster(v)
	return _u
}

// SetNillableCluster sets the "cluster" field if the given value is not nil.
func (_u *VmwareConfigUpdate) SetNillableCluster(v *string) *VmwareConfigUpdate {
	if v != nil {
		_u.SetCluster(*v)
	}
	return _u
}

// SetDatastore sets the "datastore" field.
func (_u *VmwareConfigUpdate) SetDatastore(v string) *VmwareConfigUpdate {
	_u.mutation.SetDatastore(v)
	return _u
}

// SetNillableDatastore sets the "datastore" field if the given value is not nil.
func (_u *VmwareConfigUpdate) SetNillableDatastore(v *string) *VmwareConfigUpdate {
	if v != nil {
		_u.SetDatastore(*v)
	}
	return _u
}

// SetNetwork sets the "network" field.
func (_u *VmwareConfigUpdate) SetNetwork(v string) *VmwareConfigUpdate {
	_u.mutation.SetNetwork(v)
	return _u
}

// SetNillableNetwork sets the "network" field if the given value is not nil.
func (_u *VmwareConfigUpdate) SetNillableNetwork(v *string) *VmwareConfigUpdate {
	if v != nil {
		_u.SetNetwork(*v)
	}
	return _u
}

// SetTemplate sets the "template" field.
func (_u *VmwareConfigUpdate) SetTemplate(v string) *VmwareConfigUpdate {
	_u.mutation.SetTemplate(v)
	return _u
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_u *VmwareConfigUpdate) SetNillableTemplate(v *string) *VmwareConfigUpdate {
	if v != nil {
		_u.SetTemplate(*v)
	}
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *VmwareConfigUpdate) SetVerifiedAt(v time.Time) *VmwareConfigUpdate {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *VmwareConfigUpdate) SetNillableVerifiedAt(v *time.Time) *VmwareConfigUpdate {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *VmwareConfigUpdate) ClearVerifiedAt() *VmwareConfigUpdate {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// SetVersion sets the "version" field.
func (_u *VmwareConfigUpdate) SetVersion(v int64) *VmwareConfigUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *VmwareConfigUpdate) SetNillableVersion(v *int64) *VmwareConfigUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *VmwareConfigUpdate) AddVersion(v int64) *VmwareConfigUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the VmwareConfigMutation object of the builder.
func (_u *VmwareConfigUpdate) Mutation() *VmwareConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VmwareConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VmwareConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VmwareConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VmwareConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VmwareConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vmwareconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VmwareConfigUpdate) check() error {
	if v, ok := _u.mutation.VcenterURL(); ok {
		if err := vmwareconfig.VcenterURLValidator(v); err != nil {
			return &ValidationError{Name: "vcenter_url", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.vcenter_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Username(); ok {
		if err := vmwareconfig.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PasswordEnc(); ok {
		if err := vmwareconfig.PasswordEncValidator(v); err != nil {
			return &ValidationError{Name: "password_enc", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.password_enc": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Datacenter(); ok {
		if err := vmwareconfig.DatacenterValidator(v); err != nil {
			return &ValidationError{Name: "datacenter", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.datacenter": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Cluster(); ok {
		if err := vmwareconfig.ClusterValidator(v); err != nil {
			return &ValidationError{Name: "cluster", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.cluster": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Datastore(); ok {
		if err := vmwareconfig.DatastoreValidator(v); err != nil {
			return &ValidationError{Name: "datastore", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.datastore": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Network(); ok {
		if err := vmwareconfig.NetworkValidator(v); err != nil {
			return &ValidationError{Name: "network", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.network": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Template(); ok {
		if err := vmwareconfig.TemplateValidator(v); err != nil {
			return &ValidationError{Name: "template", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.template": %w`, err)}
		}
	}
	return nil
}

func (_u *VmwareConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vmwareconfig.Table, vmwareconfig.Columns, sqlgraph.NewFieldSpec(vmwareconfig.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vmwareconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VcenterURL(); ok {
		_spec.SetField(vmwareconfig.FieldVcenterURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(vmwareconfig.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordEnc(); ok {
		_spec.SetField(vmwareconfig.FieldPasswordEnc, field.TypeString, value)
	}
	if value, ok := _u.mutation.Datacenter(); ok {
		_spec.SetField(vmwareconfig.FieldDatacenter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cluster(); ok {
		_spec.SetField(vmwareconfig.FieldCluster, field.TypeString, value)
	}
	if value, ok := _u.mutation.Datastore(); ok {
		_spec.SetField(vmwareconfig.FieldDatastore, field.TypeString, value)
	}
	if value, ok := _u.mutation.Network(); ok {
		_spec.SetField(vmwareconfig.FieldNetwork, field.TypeString, value)
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(vmwareconfig.FieldTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(vmwareconfig.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(vmwareconfig.FieldVerifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(vmwareconfig.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(vmwareconfig.FieldVersion, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vmwareconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VmwareConfigUpdateOne is the builder for updating a single VmwareConfig entity.
type VmwareConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VmwareConfigMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VmwareConfigUpdateOne) SetUpdatedAt(v time.Time) *VmwareConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVcenterURL sets the "vcenter_url" field.
func (_u *VmwareConfigUpdateOne) SetVcenterURL(v string) *VmwareConfigUpdateOne {
	_u.mutation.SetVcenterURL(v)
	return _u
}

// SetNillableVcenterURL sets the "vcenter_url" field if the given value is not nil.
func (_u *VmwareConfigUpdateOne) SetNillableVcenterURL(v *string) *VmwareConfigUpdateOne {
	if v != nil {
		_u.SetVcenterURL(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *VmwareConfigUpdateOne) SetUsername(v string) *VmwareConfigUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *VmwareConfigUpdateOne) SetNillableUsername(v *string) *VmwareConfigUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetPasswordEnc sets the "password_enc" field.
func (_u *VmwareConfigUpdateOne) SetPasswordEnc(v string) *VmwareConfigUpdateOne {
	_u.mutation.SetPasswordEnc(v)
	return _u
}

// SetNillablePasswordEnc sets the "password_enc" field if the given value is not nil.
func (_u *VmwareConfigUpdateOne) SetNillablePasswordEnc(v *string) *VmwareConfigUpdateOne {
	if v != nil {
		_u.SetPasswordEnc(*v)
	}
	return _u
}

// SetDatacenter sets the "datacenter" field.
func (_u *VmwareConfigUpdateOne) SetDatacenter(v string) *VmwareConfigUpdateOne {
	_u.mutation.SetDatacenter(v)
	return _u
}

// SetNillableDatacenter sets the "datacenter" field if the given value is not nil.
func (_u *VmwareConfigUpdateOne) SetNillableDatacenter(v *string) *VmwareConfigUpdateOne {
	if v != nil {
		_u.SetDatacenter(*v)
	}
	return _u
}

// SetCluster sets the "cluster" field.
func (_u *VmwareConfigUpdateOne) SetCluster(v string) *VmwareConfigUpdateOne {
	_u.mutation.SetCluster(v)
	return _u
}

// SetNillableCluster sets the "cluster" field if the given value is not nil.
func (_u *VmwareConfigUpdateOne) SetNillableCluster(v *string) *VmwareConfigUpdateOne {
	if v != nil {
		_u.SetCluster(*v)
	}
	return _u
}

// SetDatastore sets the "datastore" field.
func (_u *VmwareConfigUpdateOne) SetDatastore(v string) *VmwareConfigUpdateOne {
	_u.mutation.SetDatastore(v)
	return _u
}

// SetNillableDatastore sets the "datastore" field if the given value is not nil.
func (_u *VmwareConfigUpdateOne) SetNillableDatastore(v *string) *VmwareConfigUpdateOne {
	if v != nil {
		_u.SetDatastore(*v)
	}
	return _u
}

// SetNetwork sets the "network" field.
func (_u *VmwareConfigUpdateOne) SetNetwork(v string) *VmwareConfigUpdateOne {
	_u.mutation.SetNetwork(v)
	return _u
}

// SetNillableNetwork sets the "network" field if the given value is not nil.
func (_u *VmwareConfigUpdateOne) SetNillableNetwork(v *string) *VmwareConfigUpdateOne {
	if v != nil {
		_u.SetNetwork(*v)
	}
	return _u
}

// SetTemplate sets the "template" field.
func (_u *VmwareConfigUpdateOne) SetTemplate(v string) *VmwareConfigUpdateOne {
	_u.mutation.SetTemplate(v)
	return _u
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_u *VmwareConfigUpdateOne) SetNillableTemplate(v *string) *VmwareConfigUpdateOne {
	if v != nil {
		_u.SetTemplate(*v)
	}
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *VmwareConfigUpdateOne) SetVerifiedAt(v time.Time) *VmwareConfigUpdateOne {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *VmwareConfigUpdateOne) SetNillableVerifiedAt(v *time.Time) *VmwareConfigUpdateOne {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *VmwareConfigUpdateOne) ClearVerifiedAt() *VmwareConfigUpdateOne {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// SetVersion sets the "version" field.
func (_u *VmwareConfigUpdateOne) SetVersion(v int64) *VmwareConfigUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *VmwareConfigUpdateOne) SetNillableVersion(v *int64) *VmwareConfigUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *VmwareConfigUpdateOne) AddVersion(v int64) *VmwareConfigUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the VmwareConfigMutation object of the builder.
func (_u *VmwareConfigUpdateOne) Mutation() *VmwareConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the VmwareConfigUpdate builder.
func (_u *VmwareConfigUpdateOne) Where(ps ...predicate.VmwareConfig) *VmwareConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VmwareConfigUpdateOne) Select(field string, fields ...string) *VmwareConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VmwareConfig entity.
func (_u *VmwareConfigUpdateOne) Save(ctx context.Context) (*VmwareConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VmwareConfigUpdateOne) SaveX(ctx context.Context) *VmwareConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VmwareConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VmwareConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VmwareConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vmwareconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VmwareConfigUpdateOne) check() error {
	if v, ok := _u.mutation.VcenterURL(); ok {
		if err := vmwareconfig.VcenterURLValidator(v); err != nil {
			return &ValidationError{Name: "vcenter_url", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.vcenter_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Username(); ok {
		if err := vmwareconfig.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PasswordEnc(); ok {
		if err := vmwareconfig.PasswordEncValidator(v); err != nil {
			return &ValidationError{Name: "password_enc", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.password_enc": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Datacenter(); ok {
		if err := vmwareconfig.DatacenterValidator(v); err != nil {
			return &ValidationError{Name: "datacenter", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.datacenter": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Cluster(); ok {
		if err := vmwareconfig.ClusterValidator(v); err != nil {
			return &ValidationError{Name: "cluster", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.cluster": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Datastore(); ok {
		if err := vmwareconfig.DatastoreValidator(v); err != nil {
			return &ValidationError{Name: "datastore", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.datastore": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Network(); ok {
		if err := vmwareconfig.NetworkValidator(v); err != nil {
			return &ValidationError{Name: "network", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.network": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Template(); ok {
		if err := vmwareconfig.TemplateValidator(v); err != nil {
			return &ValidationError{Name: "template", err: fmt.Errorf(`ent: validator failed for field "VmwareConfig.template": %w`, err)}
		}
	}
	return nil
}

func (_u *VmwareConfigUpdateOne) sqlSave(ctx context.Context) (_node *VmwareConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vmwareconfig.Table, vmwareconfig.Columns, sqlgraph.NewFieldSpec(vmwareconfig.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VmwareConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vmwareconfig.FieldID)
		for _, f := range fields {
			if !vmwareconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vmwareconfig.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vmwareconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VcenterURL(); ok {
		_spec.SetField(vmwareconfig.FieldVcenterURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(vmwareconfig.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordEnc(); ok {
		_spec.SetField(vmwareconfig.FieldPasswordEnc, field.TypeString, value)
	}
	if value, ok := _u.mutation.Datacenter(); ok {
		_spec.SetField(vmwareconfig.FieldDatacenter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cluster(); ok {
		_spec.SetField(vmwareconfig.FieldCluster, field.TypeString, value)
	}
	if value, ok := _u.mutation.Datastore(); ok {
		_spec.SetField(vmwareconfig.FieldDatastore, field.TypeString, value)
	}
	if value, ok := _u.mutation.Network(); ok {
		_spec.SetField(vmwareconfig.FieldNetwork, field.TypeString, value)
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(vmwareconfig.FieldTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(vmwareconfig.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(vmwareconfig.FieldVerifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(vmwareconfig.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(vmwareconfig.FieldVersion, field.TypeInt64, value)
	}
	_node = &VmwareConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vmwareconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
