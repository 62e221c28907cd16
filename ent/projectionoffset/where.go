// Code generated by ent, DO NOT EDIT.

package projectionoffset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"vc-drover.io/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldLTE(FieldID, id))
}

// Subscriber applies equality check predicate on the "subscriber" field. It's identical to SubscriberEQ.
func Subscriber(v string) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldEQ(FieldSubscriber, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int64) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldEQ(FieldPosition, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldEQ(FieldUpdatedAt, v))
}

// SubscriberEQ applies the EQ predicate on the "subscriber" field.
func SubscriberEQ(v string) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldEQ(FieldSubscriber, v))
}

// SubscriberNEQ applies the NEQ predicate on the "subscriber" field.
func SubscriberNEQ(v string) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldNEQ(FieldSubscriber, v))
}

// SubscriberIn applies the In predicate on the "subscriber" field.
func SubscriberIn(vs ...string) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldIn(FieldSubscriber, vs...))
}

// SubscriberNotIn applies the NotIn predicate on the "subscriber" field.
func SubscriberNotIn(vs ...string) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldNotIn(FieldSubscriber, vs...))
}

// SubscriberGT applies the GT predicate on the "subscriber" field.
func SubscriberGT(v string) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldGT(FieldSubscriber, v))
}

// SubscriberGTE applies the GTE predicate on the "subscriber" field.
func SubscriberGTE(v string) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldGTE(FieldSubscriber, v))
}

// SubscriberLT applies the LT predicate on the "subscriber" field.
func SubscriberLT(v string) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldLT(FieldSubscriber, v))
}

// SubscriberLTE applies the LTE predicate on the "subscriber" field.
func SubscriberLTE(v string) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldLTE(FieldSubscriber, v))
}

// SubscriberContains applies the Contains predicate on the "subscriber" field.
func SubscriberContains(v string) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldContains(FieldSubscriber, v))
}

// SubscriberHasPrefix applies the HasPrefix predicate on the "subscriber" field.
func SubscriberHasPrefix(v string) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldHasPrefix(FieldSubscriber, v))
}

// SubscriberHasSuffix applies the HasSuffix predicate on the "subscriber" field.
func SubscriberHasSuffix(v string) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldHasSuffix(FieldSubscriber, v))
}

// SubscriberEqualFold applies the EqualFold predicate on the "subscriber" field.
func SubscriberEqualFold(v string) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldEqualFold(FieldSubscriber, v))
}

// SubscriberContainsFold applies the ContainsFold predicate on the "subscriber" field.
func SubscriberContainsFold(v string) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldContainsFold(FieldSubscriber, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int64) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int64) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int64) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int64) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int64) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int64) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int64) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int64) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldLTE(FieldPosition, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProjectionOffset) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProjectionOffset) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProjectionOffset) predicate.ProjectionOffset {
	return predicate.ProjectionOffset(sql.NotPredicates(p))
}
