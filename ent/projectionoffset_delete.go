// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"vc-drover.io/drover/ent/predicate"
	"vc-drover.io/drover/ent/projectionoffset"
)

// ProjectionOffsetDelete is the builder for deleting a ProjectionOffset entity.
type ProjectionOffsetDelete struct {
	config
	hooks    []Hook
	mutation *ProjectionOffsetMutation
}

// Where appends a list predicates to the ProjectionOffsetDelete builder.
func (_d *ProjectionOffsetDelete) Where(ps ...predicate.ProjectionOffset) *ProjectionOffsetDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProjectionOffsetDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProjectionOffsetDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProjectionOffsetDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(projectionoffset.Table, sqlgraph.NewFieldSpec(projectionoffset.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ProjectionOffsetDeleteOne is the builder for deleting a single ProjectionOffset entity.
type ProjectionOffsetDeleteOne struct {
	_d *ProjectionOffsetDelete
}

// Where appends a list predicates to the ProjectionOffsetDelete builder.
func (_d *ProjectionOffsetDeleteOne) Where(ps ...predicate.ProjectionOffset) *ProjectionOffsetDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProjectionOffsetDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{projectionoffset.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProjectionOffsetDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
