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
	"vc-drover.io/drover/ent/provisioningprogress"
)

// ProvisioningProgressUpdate is the builder for updating ProvisioningProgress entities.
type ProvisioningProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ProvisioningProgressMutation
}

// Where appends a list predicates to the ProvisioningProgressUpdate builder.
func (_u *ProvisioningProgressUpdate) Where(ps ...predicate.ProvisioningProgress) *ProvisioningProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStage sets the "stage" field.
func (_u *ProvisioningProgressUpdate) SetStage(v provisioningprogress.Stage) *ProvisioningProgressUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ProvisioningProgressUpdate) SetNillableStage(v *provisioningprogress.Stage) *ProvisioningProgressUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStageTimestamps sets the "stage_timestamps" field.
func (_u *ProvisioningProgressUpdate) SetStageTimestamps(v map[string]string) *ProvisioningProgressUpdate {
	_u.mutation.SetStageTimestamps(v)
	return _u
}

// SetEstimatedRemainingSeconds sets the "estimated_remaining_seconds" field.
func (_u *ProvisioningProgressUpdate) SetEstimatedRemainingSeconds(v int) *ProvisioningProgressUpdate {
	_u.mutation.ResetEstimatedRemainingSeconds()
	_u.mutation.SetEstimatedRemainingSeconds(v)
	return _u
}

// SetNillableEstimatedRemainingSeconds sets the "estimated_remaining_seconds" field if the given value is not nil.
func (_u *ProvisioningProgressUpdate) SetNillableEstimatedRemainingSeconds(v *int) *ProvisioningProgressUpdate {
	if v != nil {
		_u.SetEstimatedRemainingSeconds(*v)
	}
	return _u
}

// AddEstimatedRemainingSeconds adds value to the "estimated_remaining_seconds" field.
func (_u *ProvisioningProgressUpdate) AddEstimatedRemainingSeconds(v int) *ProvisioningProgressUpdate {
	_u.mutation.AddEstimatedRemainingSeconds(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProvisioningProgressUpdate) SetUpdatedAt(v time.Time) *ProvisioningProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ProvisioningProgressUpdate) SetNillableUpdatedAt(v *time.Time) *ProvisioningProgressUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ProvisioningProgressMutation object of the builder.
func (_u *ProvisioningProgressUpdate) Mutation() *ProvisioningProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProvisioningProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProvisioningProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProvisioningProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProvisioningProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProvisioningProgressUpdate) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := provisioningprogress.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "ProvisioningProgress.stage": %w`, err)}
		}
	}
	return nil
}

func (_u *ProvisioningProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(provisioningprogress.Table, provisioningprogress.Columns, sqlgraph.NewFieldSpec(provisioningprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(provisioningprogress.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StageTimestamps(); ok {
		_spec.SetField(provisioningprogress.FieldStageTimestamps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.EstimatedRemainingSeconds(); ok {
		_spec.SetField(provisioningprogress.FieldEstimatedRemainingSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedRemainingSeconds(); ok {
		_spec.AddField(provisioningprogress.FieldEstimatedRemainingSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(provisioningprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{provisioningprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProvisioningProgressUpdateOne is the builder for updating a single ProvisioningProgress entity.
type ProvisioningProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProvisioningProgressMutation
}

// SetStage sets the "stage" field.
func (_u *ProvisioningProgressUpdateOne) SetStage(v provisioningprogress.Stage) *ProvisioningProgressUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ProvisioningProgressUpdateOne) SetNillableStage(v *provisioningprogress.Stage) *ProvisioningProgressUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStageTimestamps sets the "stage_timestamps" field.
func (_u *ProvisioningProgressUpdateOne) SetStageTimestamps(v map[string]string) *ProvisioningProgressUpdateOne {
	_u.mutation.SetStageTimestamps(v)
	return _u
}

// SetEstimatedRemainingSeconds sets the "estimated_remaining_seconds" field.
func (_u *ProvisioningProgressUpdateOne) SetEstimatedRemainingSeconds(v int) *ProvisioningProgressUpdateOne {
	_u.mutation.ResetEstimatedRemainingSeconds()
	_u.mutation.SetEstimatedRemainingSeconds(v)
	return _u
}

// SetNillableEstimatedRemainingSeconds sets the "estimated_remaining_seconds" field if the given value is not nil.
func (_u *ProvisioningProgressUpdateOne) SetNillableEstimatedRemainingSeconds(v *int) *ProvisioningProgressUpdateOne {
	if v != nil {
		_u.SetEstimatedRemainingSeconds(*v)
	}
	return _u
}

// AddEstimatedRemainingSeconds adds value to the "estimated_remaining_seconds" field.
func (_u *ProvisioningProgressUpdateOne) AddEstimatedRemainingSeconds(v int) *ProvisioningProgressUpdateOne {
	_u.mutation.AddEstimatedRemainingSeconds(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProvisioningProgressUpdateOne) SetUpdatedAt(v time.Time) *ProvisioningProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ProvisioningProgressUpdateOne) SetNillableUpdatedAt(v *time.Time) *ProvisioningProgressUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ProvisioningProgressMutation object of the builder.
func (_u *ProvisioningProgressUpdateOne) Mutation() *ProvisioningProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProvisioningProgressUpdate builder.
func (_u *ProvisioningProgressUpdateOne) Where(ps ...predicate.ProvisioningProgress) *ProvisioningProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProvisioningProgressUpdateOne) Select(field string, fields ...string) *ProvisioningProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProvisioningProgress entity.
func (_u *ProvisioningProgressUpdateOne) Save(ctx context.Context) (*ProvisioningProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProvisioningProgressUpdateOne) SaveX(ctx context.Context) *ProvisioningProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProvisioningProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProvisioningProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProvisioningProgressUpdateOne) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := provisioningprogress.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "ProvisioningProgress.stage": %w`, err)}
		}
	}
	return nil
}

func (_u *ProvisioningProgressUpdateOne) sqlSave(ctx context.Context) (_node *ProvisioningProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(provisioningprogress.Table, provisioningprogress.Columns, sqlgraph.NewFieldSpec(provisioningprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProvisioningProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, provisioningprogress.FieldID)
		for _, f := range fields {
			if !provisioningprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != provisioningprogress.FieldID {
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
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(provisioningprogress.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StageTimestamps(); ok {
		_spec.SetField(provisioningprogress.FieldStageTimestamps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.EstimatedRemainingSeconds(); ok {
		_spec.SetField(provisioningprogress.FieldEstimatedRemainingSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedRemainingSeconds(); ok {
		_spec.AddField(provisioningprogress.FieldEstimatedRemainingSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(provisioningprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProvisioningProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{provisioningprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
