// Code generated by ent, DO NOT EDIT.

package provisioningprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"vc-drover.io/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldEQ(FieldTenantID, v))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldEQ(FieldRequestID, v))
}

// EstimatedRemainingSeconds applies equality check predicate on the "estimated_remaining_seconds" field. It's identical to EstimatedRemainingSecondsEQ.
func EstimatedRemainingSeconds(v int) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldEQ(FieldEstimatedRemainingSeconds, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldContainsFold(FieldTenantID, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldContainsFold(FieldRequestID, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v Stage) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v Stage) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...Stage) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...Stage) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldNotIn(FieldStage, vs...))
}

// EstimatedRemainingSecondsEQ applies the EQ predicate on the "estimated_remaining_seconds" field.
func EstimatedRemainingSecondsEQ(v int) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldEQ(FieldEstimatedRemainingSeconds, v))
}

// EstimatedRemainingSecondsNEQ applies the NEQ predicate on the "estimated_remaining_seconds" field.
func EstimatedRemainingSecondsNEQ(v int) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldNEQ(FieldEstimatedRemainingSeconds, v))
}

// EstimatedRemainingSecondsIn applies the In predicate on the "estimated_remaining_seconds" field.
func EstimatedRemainingSecondsIn(vs ...int) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldIn(FieldEstimatedRemainingSeconds, vs...))
}

// EstimatedRemainingSecondsNotIn applies the NotIn predicate on the "estimated_remaining_seconds" field.
func EstimatedRemainingSecondsNotIn(vs ...int) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldNotIn(FieldEstimatedRemainingSeconds, vs...))
}

// EstimatedRemainingSecondsGT applies the GT predicate on the "estimated_remaining_seconds" field.
func EstimatedRemainingSecondsGT(v int) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldGT(FieldEstimatedRemainingSeconds, v))
}

// EstimatedRemainingSecondsGTE applies the GTE predicate on the "estimated_remaining_seconds" field.
func EstimatedRemainingSecondsGTE(v int) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldGTE(FieldEstimatedRemainingSeconds, v))
}

// EstimatedRemainingSecondsLT applies the LT predicate on the "estimated_remaining_seconds" field.
func EstimatedRemainingSecondsLT(v int) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldLT(FieldEstimatedRemainingSeconds, v))
}

// EstimatedRemainingSecondsLTE applies the LTE predicate on the "estimated_remaining_seconds" field.
func EstimatedRemainingSecondsLTE(v int) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldLTE(FieldEstimatedRemainingSeconds, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProvisioningProgress) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProvisioningProgress) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProvisioningProgress) predicate.ProvisioningProgress {
	return predicate.ProvisioningProgress(sql.NotPredicates(p))
}
