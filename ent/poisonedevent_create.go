// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"vc-drover.io/drover/ent/poisonedevent"
)

// PoisonedEventCreate is the builder for creating a PoisonedEvent entity.
type PoisonedEventCreate struct {
	config
	mutation *PoisonedEventMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *PoisonedEventCreate) SetTenantID(v string) *PoisonedEventCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PoisonedEventCreate) SetCreatedAt(v time.Time) *PoisonedEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PoisonedEventCreate) SetNillableCreatedAt(v *time.Time) *PoisonedEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSubscriber sets the "subscriber" field.
func (_c *PoisonedEventCreate) SetSubscriber(v string) *PoisonedEventCreate {
	_c.mutation.SetSubscriber(v)
	return _c
}

// SetGlobalSequence sets the "global_sequence" field.
func (_c *PoisonedEventCreate) SetGlobalSequence(v int64) *PoisonedEventCreate {
	_c.mutation.SetGlobalSequence(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *PoisonedEventCreate) SetEventID(v string) *PoisonedEventCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *PoisonedEventCreate) SetEventType(v string) *PoisonedEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetAggregateID sets the "aggregate_id" field.
func (_c *PoisonedEventCreate) SetAggregateID(v string) *PoisonedEventCreate {
	_c.mutation.SetAggregateID(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *PoisonedEventCreate) SetAttempts(v int) *PoisonedEventCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *PoisonedEventCreate) SetLastError(v string) *PoisonedEventCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PoisonedEventCreate) SetID(v string) *PoisonedEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PoisonedEventMutation object of the builder.
func (_c *PoisonedEventCreate) Mutation() *PoisonedEventMutation {
	return _c.mutation
}

// Save creates the PoisonedEvent in the database.
func (_c *PoisonedEventCreate) Save(ctx context.Context) (*PoisonedEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PoisonedEventCreate) SaveX(ctx context.Context) *PoisonedEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PoisonedEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PoisonedEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PoisonedEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := poisonedevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PoisonedEventCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "PoisonedEvent.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := poisonedevent.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "PoisonedEvent.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PoisonedEvent.created_at"`)}
	}
	if _, ok := _c.mutation.Subscriber(); !ok {
		return &ValidationError{Name: "subscriber", err: errors.New(`ent: missing required field "PoisonedEvent.subscriber"`)}
	}
	if v, ok := _c.mutation.Subscriber(); ok {
		if err := poisonedevent.SubscriberValidator(v); err != nil {
			return &ValidationError{Name: "subscriber", err: fmt.Errorf(`ent: validator failed for field "PoisonedEvent.subscriber": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GlobalSequence(); !ok {
		return &ValidationError{Name: "global_sequence", err: errors.New(`ent: missing required field "PoisonedEvent.global_sequence"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "PoisonedEvent.event_id"`)}
	}
	if v, ok := _c.mutation.EventID(); ok {
		if err := poisonedevent.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "PoisonedEvent.event_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "PoisonedEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := poisonedevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "PoisonedEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AggregateID(); !ok {
		return &ValidationError{Name: "aggregate_id", err: errors.New(`ent: missing required field "PoisonedEvent.aggregate_id"`)}
	}
	if v, ok := _c.mutation.AggregateID(); ok {
		if err := poisonedevent.AggregateIDValidator(v); err != nil {
			return &ValidationError{Name: "aggregate_id", err: fmt.Errorf(`ent: validator failed for field "PoisonedEvent.aggregate_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "PoisonedEvent.attempts"`)}
	}
	if _, ok := _c.mutation.LastError(); !ok {
		return &ValidationError{Name: "last_error", err: errors.New(`ent: missing required field "PoisonedEvent.last_error"`)}
	}
	if v, ok := _c.mutation.LastError(); ok {
		if err := poisonedevent.LastErrorValidator(v); err != nil {
			return &ValidationError{Name: "last_error", err: fmt.Errorf(`ent: validator failed for field "PoisonedEvent.last_error": %w`, err)}
		}
	}
	return nil
}

func (_c *PoisonedEventCreate) sqlSave(ctx context.Context) (*PoisonedEvent, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PoisonedEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PoisonedEventCreate) createSpec() (*PoisonedEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PoisonedEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(poisonedevent.Table, sqlgraph.NewFieldSpec(poisonedevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(poisonedevent.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(poisonedevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Subscriber(); ok {
		_spec.SetField(poisonedevent.FieldSubscriber, field.TypeString, value)
		_node.Subscriber = value
	}
	if value, ok := _c.mutation.GlobalSequence(); ok {
		_spec.SetField(poisonedevent.FieldGlobalSequence, field.TypeInt64, value)
		_node.GlobalSequence = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(poisonedevent.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(poisonedevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.AggregateID(); ok {
		_spec.SetField(poisonedevent.FieldAggregateID, field.TypeString, value)
		_node.AggregateID = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(poisonedevent.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(poisonedevent.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	return _node, _spec
}

// PoisonedEventCreateBulk is the builder for creating many PoisonedEvent entities in bulk.
type PoisonedEventCreateBulk struct {
	config
	err      error
	builders []*PoisonedEventCreate
}

// Save creates the PoisonedEvent entities in the database.
func (_c *PoisonedEventCreateBulk) Save(ctx context.Context) ([]*PoisonedEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PoisonedEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PoisonedEventMutation)
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
func (_c *PoisonedEventCreateBulk) SaveX(ctx context.Context) []*PoisonedEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PoisonedEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PoisonedEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
