// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// PoisonedEvent is the predicate function for poisonedevent builders.
type PoisonedEvent func(*sql.Selector)

// ProjectionOffset is the predicate function for projectionoffset builders.
type ProjectionOffset func(*sql.Selector)

// ProvisioningProgress is the predicate function for provisioningprogress builders.
type ProvisioningProgress func(*sql.Selector)

// RequestProjection is the predicate function for requestprojection builders.
type RequestProjection func(*sql.Selector)

// TimelineEntry is the predicate function for timelineentry builders.
type TimelineEntry func(*sql.Selector)

// VmwareConfig is the predicate function for vmwareconfig builders.
type VmwareConfig func(*sql.Selector)
