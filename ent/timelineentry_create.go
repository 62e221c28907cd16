// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"vc-drover.io/drover/ent/timelineentry"
)

// TimelineEntryCreate is the builder for creating a TimelineEntry entity.
type TimelineEntryCreate struct {
	config
	mutation *TimelineEntryMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *TimelineEntryCreate) SetTenantID(v string) *TimelineEntryCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TimelineEntryCreate) SetCreatedAt(v time.Time) *TimelineEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TimelineEntryCreate) SetNillableCreatedAt(v *time.Time) *TimelineEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *TimelineEntryCreate) SetRequestID(v string) *TimelineEntryCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *TimelineEntryCreate) SetEventType(v string) *TimelineEntryCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetActorName sets the "actor_name" field.
func (_c *TimelineEntryCreate) SetActorName(v string) *TimelineEntryCreate {
	_c.mutation.SetActorName(v)
	return _c
}

// SetNillableActorName sets the "actor_name" field if the given value is not nil.
func (_c *TimelineEntryCreate) SetNillableActorName(v *string) *TimelineEntryCreate {
	if v != nil {
		_c.SetActorName(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *TimelineEntryCreate) SetDetails(v string) *TimelineEntryCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_c *TimelineEntryCreate) SetNillableDetails(v *string) *TimelineEntryCreate {
	if v != nil {
		_c.SetDetails(*v)
	}
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *TimelineEntryCreate) SetOccurredAt(v time.Time) *TimelineEntryCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// Mutation returns the TimelineEntryMutation object of the builder.
func (_c *TimelineEntryCreate) Mutation() *TimelineEntryMutation {
	return _c.mutation
}

// Save creates the TimelineEntry in the database.
func (_c *TimelineEntryCreate) Save(ctx context.Context) (*TimelineEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TimelineEntryCreate) SaveX(ctx context.Context) *TimelineEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimelineEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimelineEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TimelineEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := timelineentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TimelineEntryCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "TimelineEntry.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := timelineentry.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "TimelineEntry.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TimelineEntry.created_at"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "TimelineEntry.request_id"`)}
	}
	if v, ok := _c.mutation.RequestID(); ok {
		if err := timelineentry.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "TimelineEntry.request_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "TimelineEntry.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := timelineentry.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "TimelineEntry.event_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Details(); ok {
		if err := timelineentry.DetailsValidator(v); err != nil {
			return &ValidationError{Name: "details", err: fmt.Errorf(`ent: validator failed for field "TimelineEntry.details": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "TimelineEntry.occurred_at"`)}
	}
	return nil
}

func (_c *TimelineEntryCreate) sqlSave(ctx context.Context) (*TimelineEntry, error) {
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

func (_c *TimelineEntryCreate) createSpec() (*TimelineEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &TimelineEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(timelineentry.Table, sqlgraph.NewFieldSpec(timelineentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(timelineentry.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(timelineentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(timelineentry.FieldRequestID, field.TypeString, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(timelineentry.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.ActorName(); ok {
		_spec.SetField(timelineentry.FieldActorName, field.TypeString, value)
		_node.ActorName = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(timelineentry.FieldDetails, field.TypeString, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(timelineentry.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	return _node, _spec
}

// TimelineEntryCreateBulk is the builder for creating many TimelineEntry entities in bulk.
type TimelineEntryCreateBulk struct {
	config
	err      error
	builders []*TimelineEntryCreate
}

// Save creates the TimelineEntry entities in the database.
func (_c *TimelineEntryCreateBulk) Save(ctx context.Context) ([]*TimelineEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TimelineEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TimelineEntryMutation)
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
func (_c *TimelineEntryCreateBulk) SaveX(ctx context.Context) []*TimelineEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimelineEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimelineEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
