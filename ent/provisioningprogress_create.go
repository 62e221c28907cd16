// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"vc-drover.io/drover/ent/provisioningprogress"
)

// ProvisioningProgressCreate is the builder for creating a ProvisioningProgress entity.
type ProvisioningProgressCreate struct {
	config
	mutation *ProvisioningProgressMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ProvisioningProgressCreate) SetTenantID(v string) *ProvisioningProgressCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *ProvisioningProgressCreate) SetRequestID(v string) *ProvisioningProgressCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *ProvisioningProgressCreate) SetStage(v provisioningprogress.Stage) *ProvisioningProgressCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetStageTimestamps sets the "stage_timestamps" field.
func (_c *ProvisioningProgressCreate) SetStageTimestamps(v map[string]string) *ProvisioningProgressCreate {
	_c.mutation.SetStageTimestamps(v)
	return _c
}

// SetEstimatedRemainingSeconds sets the "estimated_remaining_seconds" field.
func (_c *ProvisioningProgressCreate) SetEstimatedRemainingSeconds(v int) *ProvisioningProgressCreate {
	_c.mutation.SetEstimatedRemainingSeconds(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProvisioningProgressCreate) SetUpdatedAt(v time.Time) *ProvisioningProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// Mutation returns the ProvisioningProgressMutation object of the builder.
func (_c *ProvisioningProgressCreate) Mutation() *ProvisioningProgressMutation {
	return _c.mutation
}

// Save creates the ProvisioningProgress in the database.
func (_c *ProvisioningProgressCreate) Save(ctx context.Context) (*ProvisioningProgress, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProvisioningProgressCreate) SaveX(ctx context.Context) *ProvisioningProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProvisioningProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProvisioningProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProvisioningProgressCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ProvisioningProgress.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := provisioningprogress.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "ProvisioningProgress.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "ProvisioningProgress.request_id"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "ProvisioningProgress.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := provisioningprogress.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "ProvisioningProgress.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StageTimestamps(); !ok {
		return &ValidationError{Name: "stage_timestamps", err: errors.New(`ent: missing required field "ProvisioningProgress.stage_timestamps"`)}
	}
	if _, ok := _c.mutation.EstimatedRemainingSeconds(); !ok {
		return &ValidationError{Name: "estimated_remaining_seconds", err: errors.New(`ent: missing required field "ProvisioningProgress.estimated_remaining_seconds"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProvisioningProgress.updated_at"`)}
	}
	return nil
}

func (_c *ProvisioningProgressCreate) sqlSave(ctx context.Context) (*ProvisioningProgress, error) {
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

func (_c *ProvisioningProgressCreate) createSpec() (*ProvisioningProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &ProvisioningProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(provisioningprogress.Table, sqlgraph.NewFieldSpec(provisioningprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(provisioningprogress.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(provisioningprogress.FieldRequestID, field.TypeString, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(provisioningprogress.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.StageTimestamps(); ok {
		_spec.SetField(provisioningprogress.FieldStageTimestamps, field.TypeJSON, value)
		_node.StageTimestamps = value
	}
	if value, ok := _c.mutation.EstimatedRemainingSeconds(); ok {
		_spec.SetField(provisioningprogress.FieldEstimatedRemainingSeconds, field.TypeInt, value)
		_node.EstimatedRemainingSeconds = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(provisioningprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProvisioningProgressCreateBulk is the builder for creating many ProvisioningProgress entities in bulk.
type ProvisioningProgressCreateBulk struct {
	config
	err      error
	builders []*ProvisioningProgressCreate
}

// Save creates the ProvisioningProgress entities in the database.
func (_c *ProvisioningProgressCreateBulk) Save(ctx context.Context) ([]*ProvisioningProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProvisioningProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProvisioningProgressMutation)
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
func (_c *ProvisioningProgressCreateBulk) SaveX(ctx context.Context) []*ProvisioningProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProvisioningProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProvisioningProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
