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
	"vc-drover.io/drover/ent/projectionoffset"
)

// ProjectionOffsetUpdate is the builder for updating ProjectionOffset entities.
type ProjectionOffsetUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectionOffsetMutation
}

// Where appends a list predicates to the ProjectionOffsetUpdate builder.
func (_u *ProjectionOffsetUpdate) Where(ps ...predicate.ProjectionOffset) *ProjectionOffsetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPosition sets the "position" field.
func (_u *ProjectionOffsetUpdate) SetPosition(v int64) *ProjectionOffsetUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ProjectionOffsetUpdate) SetNillablePosition(v *int64) *ProjectionOffsetUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ProjectionOffsetUpdate) AddPosition(v int64) *ProjectionOffsetUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectionOffsetUpdate) SetUpdatedAt(v time.Time) *ProjectionOffsetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ProjectionOffsetUpdate) SetNillableUpdatedAt(v *time.Time) *ProjectionOffsetUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ProjectionOffsetMutation object of the builder.
func (_u *ProjectionOffsetUpdate) Mutation() *ProjectionOffsetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectionOffsetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectionOffsetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectionOffsetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectionOffsetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProjectionOffsetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(projectionoffset.Table, projectionoffset.Columns, sqlgraph.NewFieldSpec(projectionoffset.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(projectionoffset.FieldPosition, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(projectionoffset.FieldPosition, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(projectionoffset.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectionoffset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectionOffsetUpdateOne is the builder for updating a single ProjectionOffset entity.
type ProjectionOffsetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectionOffsetMutation
}

// SetPosition sets the "position" field.
func (_u *ProjectionOffsetUpdateOne) SetPosition(v int64) *ProjectionOffsetUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ProjectionOffsetUpdateOne) SetNillablePosition(v *int64) *ProjectionOffsetUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ProjectionOffsetUpdateOne) AddPosition(v int64) *ProjectionOffsetUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectionOffsetUpdateOne) SetUpdatedAt(v time.Time) *ProjectionOffsetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ProjectionOffsetUpdateOne) SetNillableUpdatedAt(v *time.Time) *ProjectionOffsetUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ProjectionOffsetMutation object of the builder.
func (_u *ProjectionOffsetUpdateOne) Mutation() *ProjectionOffsetMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProjectionOffsetUpdate builder.
func (_u *ProjectionOffsetUpdateOne) Where(ps ...predicate.ProjectionOffset) *ProjectionOffsetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectionOffsetUpdateOne) Select(field string, fields ...string) *ProjectionOffsetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProjectionOffset entity.
func (_u *ProjectionOffsetUpdateOne) Save(ctx context.Context) (*ProjectionOffset, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectionOffsetUpdateOne) SaveX(ctx context.Context) *ProjectionOffset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectionOffsetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectionOffsetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProjectionOffsetUpdateOne) sqlSave(ctx context.Context) (_node *ProjectionOffset, err error) {
	_spec := sqlgraph.NewUpdateSpec(projectionoffset.Table, projectionoffset.Columns, sqlgraph.NewFieldSpec(projectionoffset.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProjectionOffset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, projectionoffset.FieldID)
		for _, f := range fields {
			if !projectionoffset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != projectionoffset.FieldID {
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
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(projectionoffset.FieldPosition, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(projectionoffset.FieldPosition, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(projectionoffset.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProjectionOffset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectionoffset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
