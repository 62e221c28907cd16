package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Codec is the registry mapping event type names to payload encoders and
// decoders. It is the only place that knows the payload wire format; the
// store treats payloads as opaque bytes.
//
// Registration happens once at startup; the registry is read-only afterwards.
type Codec struct {
	mu       sync.RWMutex
	decoders map[EventType]func([]byte) (Payload, error)
	sealed   bool
}

// NewCodec creates an empty codec registry.
func NewCodec() *Codec {
	return &Codec{decoders: make(map[EventType]func([]byte) (Payload, error))}
}

// RegisterPayload registers the decoder for payload type P under its event
// type. Duplicate or post-seal registration panics: registration is a wiring
// error, not a runtime condition.
func RegisterPayload[P Payload](c *Codec) {
	var zero P
	eventType := zero.EventType()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sealed {
		panic(fmt.Sprintf("codec: register %q after seal", eventType))
	}
	if _, dup := c.decoders[eventType]; dup {
		panic(fmt.Sprintf("codec: duplicate registration for %q", eventType))
	}
	c.decoders[eventType] = func(data []byte) (Payload, error) {
		var p P
		// Unknown fields are ignored for forward compatibility.
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode %s: %w", eventType, err)
		}
		return p, nil
	}
}

// Seal marks registration complete; the registry is read-only from here on.
func (c *Codec) Seal() *Codec {
	c.mu.Lock()
	c.sealed = true
	c.mu.Unlock()
	return c
}

// Encode serializes a payload. Encoding is deterministic: the same payload
// always yields the same bytes.
func (c *Codec) Encode(payload Payload) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", payload.EventType(), err)
	}
	return data, nil
}

// Decode deserializes a payload. Unknown event types fail fast.
func (c *Codec) Decode(eventType EventType, data []byte) (Payload, error) {
	c.mu.RLock()
	decode, ok := c.decoders[eventType]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown event type %q", eventType)
	}
	return decode(data)
}

// Known reports whether the event type has a registered decoder.
func (c *Codec) Known(eventType EventType) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.decoders[eventType]
	return ok
}

// Types returns the registered event types, sorted.
func (c *Codec) Types() []EventType {
	c.mu.RLock()
	defer c.mu.RUnlock()
	types := make([]EventType, 0, len(c.decoders))
	for t := range c.decoders {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// NewDefaultCodec returns a sealed codec with every Drover event registered.
func NewDefaultCodec() *Codec {
	c := NewCodec()
	RegisterPayload[VmRequestCreated](c)
	RegisterPayload[VmRequestApproved](c)
	RegisterPayload[VmRequestRejected](c)
	RegisterPayload[VmRequestCancelled](c)
	RegisterPayload[VmRequestProvisioningStarted](c)
	RegisterPayload[VmRequestReady](c)
	RegisterPayload[VmRequestFailed](c)
	RegisterPayload[VmProvisioningStarted](c)
	RegisterPayload[VmProvisioningProgressUpdated](c)
	RegisterPayload[VmProvisioned](c)
	RegisterPayload[VmProvisioningFailed](c)
	RegisterPayload[VmStatusSynced](c)
	return c.Seal()
}
