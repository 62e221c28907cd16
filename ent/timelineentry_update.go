// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"vc-drover.io/drover/ent/predicate"
	"vc-drover.io/drover/ent/timelineentry"
)

// TimelineEntryUpdate is the builder for updating TimelineEntry entities.
type TimelineEntryUpdate struct {
	config
	hooks    []Hook
	mutation *TimelineEntryMutation
}

// Where appends a list predicates to the TimelineEntryUpdate builder.
func (_u *TimelineEntryUpdate) Where(ps ...predicate.TimelineEntry) *TimelineEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the TimelineEntryMutation object of the builder.
func (_u *TimelineEntryUpdate) Mutation() *TimelineEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TimelineEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TimelineEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TimelineEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TimelineEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TimelineEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(timelineentry.Table, timelineentry.Columns, sqlgraph.NewFieldSpec(timelineentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ActorNameCleared() {
		_spec.ClearField(timelineentry.FieldActorName, field.TypeString)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(timelineentry.FieldDetails, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timelineentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TimelineEntryUpdateOne is the builder for updating a single TimelineEntry entity.
type TimelineEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TimelineEntryMutation
}

// Mutation returns the TimelineEntryMutation object of the builder.
func (_u *TimelineEntryUpdateOne) Mutation() *TimelineEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the TimelineEntryUpdate builder.
func (_u *TimelineEntryUpdateOne) Where(ps ...predicate.TimelineEntry) *TimelineEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TimelineEntryUpdateOne) Select(field string, fields ...string) *TimelineEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TimelineEntry entity.
func (_u *TimelineEntryUpdateOne) Save(ctx context.Context) (*TimelineEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TimelineEntryUpdateOne) SaveX(ctx context.Context) *TimelineEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TimelineEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TimelineEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TimelineEntryUpdateOne) sqlSave(ctx context.Context) (_node *TimelineEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(timelineentry.Table, timelineentry.Columns, sqlgraph.NewFieldSpec(timelineentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TimelineEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, timelineentry.FieldID)
		for _, f := range fields {
			if !timelineentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != timelineentry.FieldID {
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
	if _u.mutation.ActorNameCleared() {
		_spec.ClearField(timelineentry.FieldActorName, field.TypeString)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(timelineentry.FieldDetails, field.TypeString)
	}
	_node = &TimelineEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timelineentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
