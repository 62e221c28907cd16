// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"vc-drover.io/drover/ent/poisonedevent"
	"vc-drover.io/drover/ent/predicate"
)

// PoisonedEventUpdate is the builder for updating PoisonedEvent entities.
type PoisonedEventUpdate struct {
	config
	hooks    []Hook
	mutation *PoisonedEventMutation
}

// Where appends a list predicates to the PoisonedEventUpdate builder.
func (_u *PoisonedEventUpdate) Where(ps ...predicate.PoisonedEvent) *PoisonedEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the PoisonedEventMutation object of the builder.
func (_u *PoisonedEventUpdate) Mutation() *PoisonedEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PoisonedEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PoisonedEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PoisonedEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PoisonedEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PoisonedEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(poisonedevent.Table, poisonedevent.Columns, sqlgraph.NewFieldSpec(poisonedevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{poisonedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PoisonedEventUpdateOne is the builder for updating a single PoisonedEvent entity.
type PoisonedEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PoisonedEventMutation
}

// Mutation returns the PoisonedEventMutation object of the builder.
func (_u *PoisonedEventUpdateOne) Mutation() *PoisonedEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PoisonedEventUpdate builder.
func (_u *PoisonedEventUpdateOne) Where(ps ...predicate.PoisonedEvent) *PoisonedEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PoisonedEventUpdateOne) Select(field string, fields ...string) *PoisonedEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PoisonedEvent entity.
func (_u *PoisonedEventUpdateOne) Save(ctx context.Context) (*PoisonedEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PoisonedEventUpdateOne) SaveX(ctx context.Context) *PoisonedEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PoisonedEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PoisonedEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PoisonedEventUpdateOne) sqlSave(ctx context.Context) (_node *PoisonedEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(poisonedevent.Table, poisonedevent.Columns, sqlgraph.NewFieldSpec(poisonedevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PoisonedEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, poisonedevent.FieldID)
		for _, f := range fields {
			if !poisonedevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != poisonedevent.FieldID {
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
	_node = &PoisonedEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{poisonedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
