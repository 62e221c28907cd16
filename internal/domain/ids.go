// Package domain holds the event-sourced core of Drover: identifiers, event
// definitions, the codec registry and the aggregate state machines.
//
// Everything in this package is pure: no I/O, no clocks other than values
// passed in, so replay is deterministic.
package domain

import "github.com/google/uuid"

// Typed identifiers. All identities are opaque 128-bit values rendered as
// canonical UUID strings; equal values are bitwise equal across serialization.
type (
	TenantID      string
	UserID        string
	ProjectID     string
	RequestID     string
	VMID          string
	CorrelationID string
)

func (id TenantID) String() string      { return string(id) }
func (id UserID) String() string        { return string(id) }
func (id ProjectID) String() string     { return string(id) }
func (id RequestID) String() string     { return string(id) }
func (id VMID) String() string          { return string(id) }
func (id CorrelationID) String() string { return string(id) }

func (id TenantID) IsZero() bool  { return id == "" }
func (id UserID) IsZero() bool    { return id == "" }
func (id RequestID) IsZero() bool { return id == "" }
func (id VMID) IsZero() bool      { return id == "" }

// newID generates a UUID v7 (time-ordered, K-sortable).
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails (should never happen).
		return uuid.New().String()
	}
	return id.String()
}

// NewRequestID generates a new VmRequest aggregate id.
func NewRequestID() RequestID { return RequestID(newID()) }

// NewVMID generates a new Vm aggregate id.
func NewVMID() VMID { return VMID(newID()) }

// NewCorrelationID generates a new correlation id.
func NewCorrelationID() CorrelationID { return CorrelationID(newID()) }

// NewEventID generates a new event id.
func NewEventID() string { return newID() }

// ParseID validates that raw is a canonical UUID and returns it.
func ParseID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
