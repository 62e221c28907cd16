// Code generated by ent, DO NOT EDIT.

package poisonedevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"vc-drover.io/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldTenantID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// Subscriber applies equality check predicate on the "subscriber" field. It's identical to SubscriberEQ.
func Subscriber(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldSubscriber, v))
}

// GlobalSequence applies equality check predicate on the "global_sequence" field. It's identical to GlobalSequenceEQ.
func GlobalSequence(v int64) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldGlobalSequence, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldEventID, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldEventType, v))
}

// AggregateID applies equality check predicate on the "aggregate_id" field. It's identical to AggregateIDEQ.
func AggregateID(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldAggregateID, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldAttempts, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldLastError, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldContainsFold(FieldTenantID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// SubscriberEQ applies the EQ predicate on the "subscriber" field.
func SubscriberEQ(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldSubscriber, v))
}

// SubscriberNEQ applies the NEQ predicate on the "subscriber" field.
func SubscriberNEQ(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNEQ(FieldSubscriber, v))
}

// SubscriberIn applies the In predicate on the "subscriber" field.
func SubscriberIn(vs ...string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldIn(FieldSubscriber, vs...))
}

// SubscriberNotIn applies the NotIn predicate on the "subscriber" field.
func SubscriberNotIn(vs ...string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNotIn(FieldSubscriber, vs...))
}

// SubscriberGT applies the GT predicate on the "subscriber" field.
func SubscriberGT(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGT(FieldSubscriber, v))
}

// SubscriberGTE applies the GTE predicate on the "subscriber" field.
func SubscriberGTE(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGTE(FieldSubscriber, v))
}

// SubscriberLT applies the LT predicate on the "subscriber" field.
func SubscriberLT(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLT(FieldSubscriber, v))
}

// SubscriberLTE applies the LTE predicate on the "subscriber" field.
func SubscriberLTE(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLTE(FieldSubscriber, v))
}

// SubscriberContains applies the Contains predicate on the "subscriber" field.
func SubscriberContains(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldContains(FieldSubscriber, v))
}

// SubscriberHasPrefix applies the HasPrefix predicate on the "subscriber" field.
func SubscriberHasPrefix(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldHasPrefix(FieldSubscriber, v))
}

// SubscriberHasSuffix applies the HasSuffix predicate on the "subscriber" field.
func SubscriberHasSuffix(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldHasSuffix(FieldSubscriber, v))
}

// SubscriberEqualFold applies the EqualFold predicate on the "subscriber" field.
func SubscriberEqualFold(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEqualFold(FieldSubscriber, v))
}

// SubscriberContainsFold applies the ContainsFold predicate on the "subscriber" field.
func SubscriberContainsFold(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldContainsFold(FieldSubscriber, v))
}

// GlobalSequenceEQ applies the EQ predicate on the "global_sequence" field.
func GlobalSequenceEQ(v int64) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldGlobalSequence, v))
}

// GlobalSequenceNEQ applies the NEQ predicate on the "global_sequence" field.
func GlobalSequenceNEQ(v int64) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNEQ(FieldGlobalSequence, v))
}

// GlobalSequenceIn applies the In predicate on the "global_sequence" field.
func GlobalSequenceIn(vs ...int64) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldIn(FieldGlobalSequence, vs...))
}

// GlobalSequenceNotIn applies the NotIn predicate on the "global_sequence" field.
func GlobalSequenceNotIn(vs ...int64) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNotIn(FieldGlobalSequence, vs...))
}

// GlobalSequenceGT applies the GT predicate on the "global_sequence" field.
func GlobalSequenceGT(v int64) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGT(FieldGlobalSequence, v))
}

// GlobalSequenceGTE applies the GTE predicate on the "global_sequence" field.
func GlobalSequenceGTE(v int64) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGTE(FieldGlobalSequence, v))
}

// GlobalSequenceLT applies the LT predicate on the "global_sequence" field.
func GlobalSequenceLT(v int64) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLT(FieldGlobalSequence, v))
}

// GlobalSequenceLTE applies the LTE predicate on the "global_sequence" field.
func GlobalSequenceLTE(v int64) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLTE(FieldGlobalSequence, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldContainsFold(FieldEventID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldContainsFold(FieldEventType, v))
}

// AggregateIDEQ applies the EQ predicate on the "aggregate_id" field.
func AggregateIDEQ(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldAggregateID, v))
}

// AggregateIDNEQ applies the NEQ predicate on the "aggregate_id" field.
func AggregateIDNEQ(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNEQ(FieldAggregateID, v))
}

// AggregateIDIn applies the In predicate on the "aggregate_id" field.
func AggregateIDIn(vs ...string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldIn(FieldAggregateID, vs...))
}

// AggregateIDNotIn applies the NotIn predicate on the "aggregate_id" field.
func AggregateIDNotIn(vs ...string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNotIn(FieldAggregateID, vs...))
}

// AggregateIDGT applies the GT predicate on the "aggregate_id" field.
func AggregateIDGT(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGT(FieldAggregateID, v))
}

// AggregateIDGTE applies the GTE predicate on the "aggregate_id" field.
func AggregateIDGTE(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGTE(FieldAggregateID, v))
}

// AggregateIDLT applies the LT predicate on the "aggregate_id" field.
func AggregateIDLT(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLT(FieldAggregateID, v))
}

// AggregateIDLTE applies the LTE predicate on the "aggregate_id" field.
func AggregateIDLTE(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLTE(FieldAggregateID, v))
}

// AggregateIDContains applies the Contains predicate on the "aggregate_id" field.
func AggregateIDContains(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldContains(FieldAggregateID, v))
}

// AggregateIDHasPrefix applies the HasPrefix predicate on the "aggregate_id" field.
func AggregateIDHasPrefix(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldHasPrefix(FieldAggregateID, v))
}

// AggregateIDHasSuffix applies the HasSuffix predicate on the "aggregate_id" field.
func AggregateIDHasSuffix(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldHasSuffix(FieldAggregateID, v))
}

// AggregateIDEqualFold applies the EqualFold predicate on the "aggregate_id" field.
func AggregateIDEqualFold(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEqualFold(FieldAggregateID, v))
}

// AggregateIDContainsFold applies the ContainsFold predicate on the "aggregate_id" field.
func AggregateIDContainsFold(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldContainsFold(FieldAggregateID, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLTE(FieldAttempts, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.FieldContainsFold(FieldLastError, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PoisonedEvent) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PoisonedEvent) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PoisonedEvent) predicate.PoisonedEvent {
	return predicate.PoisonedEvent(sql.NotPredicates(p))
}
