// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"vc-drover.io/drover/ent/predicate"
	"vc-drover.io/drover/ent/provisioningprogress"
)

// ProvisioningProgressDelete is the builder for deleting a ProvisioningProgress entity.
type ProvisioningProgressDelete struct {
	config
	hooks    []Hook
	mutation *ProvisioningProgressMutation
}

// Where appends a list predicates to the ProvisioningProgressDelete builder.
func (_d *ProvisioningProgressDelete) Where(ps ...predicate.ProvisioningProgress) *ProvisioningProgressDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProvisioningProgressDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProvisioningProgressDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProvisioningProgressDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(provisioningprogress.Table, sqlgraph.NewFieldSpec(provisioningprogress.FieldID, field.TypeInt))
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

// ProvisioningProgressDeleteOne is the builder for deleting a single ProvisioningProgress entity.
type ProvisioningProgressDeleteOne struct {
	_d *ProvisioningProgressDelete
}

// Where appends a list predicates to the ProvisioningProgressDelete builder.
func (_d *ProvisioningProgressDeleteOne) Where(ps ...predicate.ProvisioningProgress) *ProvisioningProgressDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProvisioningProgressDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{provisioningprogress.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProvisioningProgressDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
