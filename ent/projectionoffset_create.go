// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"vc-drover.io/drover/ent/projectionoffset"
)

// ProjectionOffsetCreate is the builder for creating a ProjectionOffset entity.
type ProjectionOffsetCreate struct {
	config
	mutation *ProjectionOffsetMutation
	hooks    []Hook
}

// SetSubscriber sets the "subscriber" field.
func (_c *ProjectionOffsetCreate) SetSubscriber(v string) *ProjectionOffsetCreate {
	_c.mutation.SetSubscriber(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *ProjectionOffsetCreate) SetPosition(v int64) *ProjectionOffsetCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *ProjectionOffsetCreate) SetNillablePosition(v *int64) *ProjectionOffsetCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProjectionOffsetCreate) SetUpdatedAt(v time.Time) *ProjectionOffsetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// Mutation returns the ProjectionOffsetMutation object of the builder.
func (_c *ProjectionOffsetCreate) Mutation() *ProjectionOffsetMutation {
	return _c.mutation
}

// Save creates the ProjectionOffset in the database.
func (_c *ProjectionOffsetCreate) Save(ctx context.Context) (*ProjectionOffset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectionOffsetCreate) SaveX(ctx context.Context) *ProjectionOffset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectionOffsetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectionOffsetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectionOffsetCreate) defaults() {
	if _, ok := _c.mutation.Position(); !ok {
		v := projectionoffset.DefaultPosition
		_c.mutation.SetPosition(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectionOffsetCreate) check() error {
	if _, ok := _c.mutation.Subscriber(); !ok {
		return &ValidationError{Name: "subscriber", err: errors.New(`ent: missing required field "ProjectionOffset.subscriber"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "ProjectionOffset.position"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProjectionOffset.updated_at"`)}
	}
	return nil
}

func (_c *ProjectionOffsetCreate) sqlSave(ctx context.Context) (*ProjectionOffset, error) {
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

func (_c *ProjectionOffsetCreate) createSpec() (*ProjectionOffset, *sqlgraph.CreateSpec) {
	var (
		_node = &ProjectionOffset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(projectionoffset.Table, sqlgraph.NewFieldSpec(projectionoffset.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Subscriber(); ok {
		_spec.SetField(projectionoffset.FieldSubscriber, field.TypeString, value)
		_node.Subscriber = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(projectionoffset.FieldPosition, field.TypeInt64, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(projectionoffset.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProjectionOffsetCreateBulk is the builder for creating many ProjectionOffset entities in bulk.
type ProjectionOffsetCreateBulk struct {
	config
	err      error
	builders []*ProjectionOffsetCreate
}

// Save creates the ProjectionOffset entities in the database.
func (_c *ProjectionOffsetCreateBulk) Save(ctx context.Context) ([]*ProjectionOffset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProjectionOffset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectionOffsetMutation)
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
func (_c *ProjectionOffsetCreateBulk) SaveX(ctx context.Context) []*ProjectionOffset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectionOffsetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectionOffsetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
