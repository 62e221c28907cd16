// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"vc-drover.io/drover/ent/notification"
	"vc-drover.io/drover/ent/poisonedevent"
	"vc-drover.io/drover/ent/predicate"
	"vc-drover.io/drover/ent/projectionoffset"
	"vc-drover.io/drover/ent/provisioningprogress"
	"vc-drover.io/drover/ent/requestprojection"
	"vc-drover.io/drover/ent/timelineentry"
	"vc-drover.io/drover/ent/vmwareconfig"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeNotification         = "Notification"
	TypePoisonedEvent        = "PoisonedEvent"
	TypeProjectionOffset     = "ProjectionOffset"
	TypeProvisioningProgress = "ProvisioningProgress"
	TypeRequestProjection    = "RequestProjection"
	TypeTimelineEntry        = "TimelineEntry"
	TypeVmwareConfig         = "VmwareConfig"
)

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	created_at    *time.Time
	recipient_id  *string
	_type         *notification.Type
	title         *string
	message       *string
	resource_type *string
	resource_id   *string
	read          *bool
	read_at       *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Notification, error)
	predicates    []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id string) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *NotificationMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *NotificationMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *NotificationMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRecipientID sets the "recipient_id" field.
func (m *NotificationMutation) SetRecipientID(s string) {
	m.recipient_id = &s
}

// RecipientID returns the value of the "recipient_id" field in the mutation.
func (m *NotificationMutation) RecipientID() (r string, exists bool) {
	v := m.recipient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientID returns the old "recipient_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRecipientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientID: %w", err)
	}
	return oldValue.RecipientID, nil
}

// ResetRecipientID resets all changes to the "recipient_id" field.
func (m *NotificationMutation) ResetRecipientID() {
	m.recipient_id = nil
}

// SetType sets the "type" field.
func (m *NotificationMutation) SetType(n notification.Type) {
	m._type = &n
}

// GetType returns the value of the "type" field in the mutation.
func (m *NotificationMutation) GetType() (r notification.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldType(ctx context.Context) (v notification.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *NotificationMutation) ResetType() {
	m._type = nil
}

// SetTitle sets the "title" field.
func (m *NotificationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NotificationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NotificationMutation) ResetTitle() {
	m.title = nil
}

// SetMessage sets the "message" field.
func (m *NotificationMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *NotificationMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *NotificationMutation) ResetMessage() {
	m.message = nil
}

// SetResourceType sets the "resource_type" field.
func (m *NotificationMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *NotificationMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ClearResourceType clears the value of the "resource_type" field.
func (m *NotificationMutation) ClearResourceType() {
	m.resource_type = nil
	m.clearedFields[notification.FieldResourceType] = struct{}{}
}

// ResourceTypeCleared returns if the "resource_type" field was cleared in this mutation.
func (m *NotificationMutation) ResourceTypeCleared() bool {
	_, ok := m.clearedFields[notification.FieldResourceType]
	return ok
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *NotificationMutation) ResetResourceType() {
	m.resource_type = nil
	delete(m.clearedFields, notification.FieldResourceType)
}

// SetResourceID sets the "resource_id" field.
func (m *NotificationMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *NotificationMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ClearResourceID clears the value of the "resource_id" field.
func (m *NotificationMutation) ClearResourceID() {
	m.resource_id = nil
	m.clearedFields[notification.FieldResourceID] = struct{}{}
}

// ResourceIDCleared returns if the "resource_id" field was cleared in this mutation.
func (m *NotificationMutation) ResourceIDCleared() bool {
	_, ok := m.clearedFields[notification.FieldResourceID]
	return ok
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *NotificationMutation) ResetResourceID() {
	m.resource_id = nil
	delete(m.clearedFields, notification.FieldResourceID)
}

// SetRead sets the "read" field.
func (m *NotificationMutation) SetRead(b bool) {
	m.read = &b
}

// Read returns the value of the "read" field in the mutation.
func (m *NotificationMutation) Read() (r bool, exists bool) {
	v := m.read
	if v == nil {
		return
	}
	return *v, true
}

// OldRead returns the old "read" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRead: %w", err)
	}
	return oldValue.Read, nil
}

// ResetRead resets all changes to the "read" field.
func (m *NotificationMutation) ResetRead() {
	m.read = nil
}

// SetReadAt sets the "read_at" field.
func (m *NotificationMutation) SetReadAt(t time.Time) {
	m.read_at = &t
}

// ReadAt returns the value of the "read_at" field in the mutation.
func (m *NotificationMutation) ReadAt() (r time.Time, exists bool) {
	v := m.read_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReadAt returns the old "read_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldReadAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadAt: %w", err)
	}
	return oldValue.ReadAt, nil
}

// ClearReadAt clears the value of the "read_at" field.
func (m *NotificationMutation) ClearReadAt() {
	m.read_at = nil
	m.clearedFields[notification.FieldReadAt] = struct{}{}
}

// ReadAtCleared returns if the "read_at" field was cleared in this mutation.
func (m *NotificationMutation) ReadAtCleared() bool {
	_, ok := m.clearedFields[notification.FieldReadAt]
	return ok
}

// ResetReadAt resets all changes to the "read_at" field.
func (m *NotificationMutation) ResetReadAt() {
	m.read_at = nil
	delete(m.clearedFields, notification.FieldReadAt)
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.tenant_id != nil {
		fields = append(fields, notification.FieldTenantID)
	}
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	if m.recipient_id != nil {
		fields = append(fields, notification.FieldRecipientID)
	}
	if m._type != nil {
		fields = append(fields, notification.FieldType)
	}
	if m.title != nil {
		fields = append(fields, notification.FieldTitle)
	}
	if m.message != nil {
		fields = append(fields, notification.FieldMessage)
	}
	if m.resource_type != nil {
		fields = append(fields, notification.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, notification.FieldResourceID)
	}
	if m.read != nil {
		fields = append(fields, notification.FieldRead)
	}
	if m.read_at != nil {
		fields = append(fields, notification.FieldReadAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldTenantID:
		return m.TenantID()
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	case notification.FieldRecipientID:
		return m.RecipientID()
	case notification.FieldType:
		return m.GetType()
	case notification.FieldTitle:
		return m.Title()
	case notification.FieldMessage:
		return m.Message()
	case notification.FieldResourceType:
		return m.ResourceType()
	case notification.FieldResourceID:
		return m.ResourceID()
	case notification.FieldRead:
		return m.Read()
	case notification.FieldReadAt:
		return m.ReadAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldTenantID:
		return m.OldTenantID(ctx)
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notification.FieldRecipientID:
		return m.OldRecipientID(ctx)
	case notification.FieldType:
		return m.OldType(ctx)
	case notification.FieldTitle:
		return m.OldTitle(ctx)
	case notification.FieldMessage:
		return m.OldMessage(ctx)
	case notification.FieldResourceType:
		return m.OldResourceType(ctx)
	case notification.FieldResourceID:
		return m.OldResourceID(ctx)
	case notification.FieldRead:
		return m.OldRead(ctx)
	case notification.FieldReadAt:
		return m.OldReadAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notification.FieldRecipientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientID(v)
		return nil
	case notification.FieldType:
		v, ok := value.(notification.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case notification.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case notification.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case notification.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case notification.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case notification.FieldRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRead(v)
		return nil
	case notification.FieldReadAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldResourceType) {
		fields = append(fields, notification.FieldResourceType)
	}
	if m.FieldCleared(notification.FieldResourceID) {
		fields = append(fields, notification.FieldResourceID)
	}
	if m.FieldCleared(notification.FieldReadAt) {
		fields = append(fields, notification.FieldReadAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldResourceType:
		m.ClearResourceType()
		return nil
	case notification.FieldResourceID:
		m.ClearResourceID()
		return nil
	case notification.FieldReadAt:
		m.ClearReadAt()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldTenantID:
		m.ResetTenantID()
		return nil
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notification.FieldRecipientID:
		m.ResetRecipientID()
		return nil
	case notification.FieldType:
		m.ResetType()
		return nil
	case notification.FieldTitle:
		m.ResetTitle()
		return nil
	case notification.FieldMessage:
		m.ResetMessage()
		return nil
	case notification.FieldResourceType:
		m.ResetResourceType()
		return nil
	case notification.FieldResourceID:
		m.ResetResourceID()
		return nil
	case notification.FieldRead:
		m.ResetRead()
		return nil
	case notification.FieldReadAt:
		m.ResetReadAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Notification edge %s", name)
}

// PoisonedEventMutation represents an operation that mutates the PoisonedEvent nodes in the graph.
type PoisonedEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	tenant_id          *string
	created_at         *time.Time
	subscriber         *string
	global_sequence    *int64
	addglobal_sequence *int64
	event_id           *string
	event_type         *string
	aggregate_id       *string
	attempts           *int
	addattempts        *int
	last_error         *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*PoisonedEvent, error)
	predicates         []predicate.PoisonedEvent
}

var _ ent.Mutation = (*PoisonedEventMutation)(nil)

// poisonedeventOption allows management of the mutation configuration using functional options.
type poisonedeventOption func(*PoisonedEventMutation)

// newPoisonedEventMutation creates new mutation for the PoisonedEvent entity.
func newPoisonedEventMutation(c config, op Op, opts ...poisonedeventOption) *PoisonedEventMutation {
	m := &PoisonedEventMutation{
		config:        c,
		op:            op,
		typ:           TypePoisonedEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPoisonedEventID sets the ID field of the mutation.
func withPoisonedEventID(id string) poisonedeventOption {
	return func(m *PoisonedEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PoisonedEvent
		)
		m.oldValue = func(ctx context.Context) (*PoisonedEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PoisonedEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPoisonedEvent sets the old PoisonedEvent of the mutation.
func withPoisonedEvent(node *PoisonedEvent) poisonedeventOption {
	return func(m *PoisonedEventMutation) {
		m.oldValue = func(context.Context) (*PoisonedEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PoisonedEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PoisonedEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PoisonedEvent entities.
func (m *PoisonedEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PoisonedEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PoisonedEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PoisonedEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *PoisonedEventMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *PoisonedEventMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the PoisonedEvent entity.
// If the PoisonedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoisonedEventMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *PoisonedEventMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PoisonedEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PoisonedEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PoisonedEvent entity.
// If the PoisonedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoisonedEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PoisonedEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSubscriber sets the "subscriber" field.
func (m *PoisonedEventMutation) SetSubscriber(s string) {
	m.subscriber = &s
}

// Subscriber returns the value of the "subscriber" field in the mutation.
func (m *PoisonedEventMutation) Subscriber() (r string, exists bool) {
	v := m.subscriber
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscriber returns the old "subscriber" field's value of the PoisonedEvent entity.
// If the PoisonedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoisonedEventMutation) OldSubscriber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscriber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscriber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscriber: %w", err)
	}
	return oldValue.Subscriber, nil
}

// ResetSubscriber resets all changes to the "subscriber" field.
func (m *PoisonedEventMutation) ResetSubscriber() {
	m.subscriber = nil
}

// SetGlobalSequence sets the "global_sequence" field.
func (m *PoisonedEventMutation) SetGlobalSequence(i int64) {
	m.global_sequence = &i
	m.addglobal_sequence = nil
}

// GlobalSequence returns the value of the "global_sequence" field in the mutation.
func (m *PoisonedEventMutation) GlobalSequence() (r int64, exists bool) {
	v := m.global_sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldGlobalSequence returns the old "global_sequence" field's value of the PoisonedEvent entity.
// If the PoisonedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoisonedEventMutation) OldGlobalSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGlobalSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGlobalSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGlobalSequence: %w", err)
	}
	return oldValue.GlobalSequence, nil
}

// AddGlobalSequence adds i to the "global_sequence" field.
func (m *PoisonedEventMutation) AddGlobalSequence(i int64) {
	if m.addglobal_sequence != nil {
		*m.addglobal_sequence += i
	} else {
		m.addglobal_sequence = &i
	}
}

// AddedGlobalSequence returns the value that was added to the "global_sequence" field in this mutation.
func (m *PoisonedEventMutation) AddedGlobalSequence() (r int64, exists bool) {
	v := m.addglobal_sequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetGlobalSequence resets all changes to the "global_sequence" field.
func (m *PoisonedEventMutation) ResetGlobalSequence() {
	m.global_sequence = nil
	m.addglobal_sequence = nil
}

// SetEventID sets the "event_id" field.
func (m *PoisonedEventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *PoisonedEventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the PoisonedEvent entity.
// If the PoisonedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoisonedEventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *PoisonedEventMutation) ResetEventID() {
	m.event_id = nil
}

// SetEventType sets the "event_type" field.
func (m *PoisonedEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *PoisonedEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the PoisonedEvent entity.
// If the PoisonedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoisonedEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *PoisonedEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetAggregateID sets the "aggregate_id" field.
func (m *PoisonedEventMutation) SetAggregateID(s string) {
	m.aggregate_id = &s
}

// AggregateID returns the value of the "aggregate_id" field in the mutation.
func (m *PoisonedEventMutation) AggregateID() (r string, exists bool) {
	v := m.aggregate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAggregateID returns the old "aggregate_id" field's value of the PoisonedEvent entity.
// If the PoisonedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoisonedEventMutation) OldAggregateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAggregateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAggregateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAggregateID: %w", err)
	}
	return oldValue.AggregateID, nil
}

// ResetAggregateID resets all changes to the "aggregate_id" field.
func (m *PoisonedEventMutation) ResetAggregateID() {
	m.aggregate_id = nil
}

// SetAttempts sets the "attempts" field.
func (m *PoisonedEventMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *PoisonedEventMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the PoisonedEvent entity.
// If the PoisonedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoisonedEventMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *PoisonedEventMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *PoisonedEventMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *PoisonedEventMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetLastError sets the "last_error" field.
func (m *PoisonedEventMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *PoisonedEventMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the PoisonedEvent entity.
// If the PoisonedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoisonedEventMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ResetLastError resets all changes to the "last_error" field.
func (m *PoisonedEventMutation) ResetLastError() {
	m.last_error = nil
}

// Where appends a list predicates to the PoisonedEventMutation builder.
func (m *PoisonedEventMutation) Where(ps ...predicate.PoisonedEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PoisonedEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PoisonedEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PoisonedEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PoisonedEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PoisonedEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PoisonedEvent).
func (m *PoisonedEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PoisonedEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.tenant_id != nil {
		fields = append(fields, poisonedevent.FieldTenantID)
	}
	if m.created_at != nil {
		fields = append(fields, poisonedevent.FieldCreatedAt)
	}
	if m.subscriber != nil {
		fields = append(fields, poisonedevent.FieldSubscriber)
	}
	if m.global_sequence != nil {
		fields = append(fields, poisonedevent.FieldGlobalSequence)
	}
	if m.event_id != nil {
		fields = append(fields, poisonedevent.FieldEventID)
	}
	if m.event_type != nil {
		fields = append(fields, poisonedevent.FieldEventType)
	}
	if m.aggregate_id != nil {
		fields = append(fields, poisonedevent.FieldAggregateID)
	}
	if m.attempts != nil {
		fields = append(fields, poisonedevent.FieldAttempts)
	}
	if m.last_error != nil {
		fields = append(fields, poisonedevent.FieldLastError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PoisonedEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case poisonedevent.FieldTenantID:
		return m.TenantID()
	case poisonedevent.FieldCreatedAt:
		return m.CreatedAt()
	case poisonedevent.FieldSubscriber:
		return m.Subscriber()
	case poisonedevent.FieldGlobalSequence:
		return m.GlobalSequence()
	case poisonedevent.FieldEventID:
		return m.EventID()
	case poisonedevent.FieldEventType:
		return m.EventType()
	case poisonedevent.FieldAggregateID:
		return m.AggregateID()
	case poisonedevent.FieldAttempts:
		return m.Attempts()
	case poisonedevent.FieldLastError:
		return m.LastError()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PoisonedEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case poisonedevent.FieldTenantID:
		return m.OldTenantID(ctx)
	case poisonedevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case poisonedevent.FieldSubscriber:
		return m.OldSubscriber(ctx)
	case poisonedevent.FieldGlobalSequence:
		return m.OldGlobalSequence(ctx)
	case poisonedevent.FieldEventID:
		return m.OldEventID(ctx)
	case poisonedevent.FieldEventType:
		return m.OldEventType(ctx)
	case poisonedevent.FieldAggregateID:
		return m.OldAggregateID(ctx)
	case poisonedevent.FieldAttempts:
		return m.OldAttempts(ctx)
	case poisonedevent.FieldLastError:
		return m.OldLastError(ctx)
	}
	return nil, fmt.Errorf("unknown PoisonedEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PoisonedEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case poisonedevent.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case poisonedevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case poisonedevent.FieldSubscriber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscriber(v)
		return nil
	case poisonedevent.FieldGlobalSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGlobalSequence(v)
		return nil
	case poisonedevent.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case poisonedevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case poisonedevent.FieldAggregateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAggregateID(v)
		return nil
	case poisonedevent.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case poisonedevent.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	}
	return fmt.Errorf("unknown PoisonedEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PoisonedEventMutation) AddedFields() []string {
	var fields []string
	if m.addglobal_sequence != nil {
		fields = append(fields, poisonedevent.FieldGlobalSequence)
	}
	if m.addattempts != nil {
		fields = append(fields, poisonedevent.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PoisonedEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case poisonedevent.FieldGlobalSequence:
		return m.AddedGlobalSequence()
	case poisonedevent.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PoisonedEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case poisonedevent.FieldGlobalSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGlobalSequence(v)
		return nil
	case poisonedevent.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown PoisonedEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PoisonedEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PoisonedEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PoisonedEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PoisonedEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PoisonedEventMutation) ResetField(name string) error {
	switch name {
	case poisonedevent.FieldTenantID:
		m.ResetTenantID()
		return nil
	case poisonedevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case poisonedevent.FieldSubscriber:
		m.ResetSubscriber()
		return nil
	case poisonedevent.FieldGlobalSequence:
		m.ResetGlobalSequence()
		return nil
	case poisonedevent.FieldEventID:
		m.ResetEventID()
		return nil
	case poisonedevent.FieldEventType:
		m.ResetEventType()
		return nil
	case poisonedevent.FieldAggregateID:
		m.ResetAggregateID()
		return nil
	case poisonedevent.FieldAttempts:
		m.ResetAttempts()
		return nil
	case poisonedevent.FieldLastError:
		m.ResetLastError()
		return nil
	}
	return fmt.Errorf("unknown PoisonedEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PoisonedEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PoisonedEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PoisonedEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PoisonedEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PoisonedEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PoisonedEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PoisonedEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PoisonedEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PoisonedEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PoisonedEvent edge %s", name)
}

// ProjectionOffsetMutation represents an operation that mutates the ProjectionOffset nodes in the graph.
type ProjectionOffsetMutation struct {
	config
	op            Op
	typ           string
	id            *int
	subscriber    *string
	position      *int64
	addposition   *int64
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProjectionOffset, error)
	predicates    []predicate.ProjectionOffset
}

var _ ent.Mutation = (*ProjectionOffsetMutation)(nil)

// projectionoffsetOption allows management of the mutation configuration using functional options.
type projectionoffsetOption func(*ProjectionOffsetMutation)

// newProjectionOffsetMutation creates new mutation for the ProjectionOffset entity.
func newProjectionOffsetMutation(c config, op Op, opts ...projectionoffsetOption) *ProjectionOffsetMutation {
	m := &ProjectionOffsetMutation{
		config:        c,
		op:            op,
		typ:           TypeProjectionOffset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectionOffsetID sets the ID field of the mutation.
func withProjectionOffsetID(id int) projectionoffsetOption {
	return func(m *ProjectionOffsetMutation) {
		var (
			err   error
			once  sync.Once
			value *ProjectionOffset
		)
		m.oldValue = func(ctx context.Context) (*ProjectionOffset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProjectionOffset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProjectionOffset sets the old ProjectionOffset of the mutation.
func withProjectionOffset(node *ProjectionOffset) projectionoffsetOption {
	return func(m *ProjectionOffsetMutation) {
		m.oldValue = func(context.Context) (*ProjectionOffset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectionOffsetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectionOffsetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectionOffsetMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectionOffsetMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProjectionOffset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubscriber sets the "subscriber" field.
func (m *ProjectionOffsetMutation) SetSubscriber(s string) {
	m.subscriber = &s
}

// Subscriber returns the value of the "subscriber" field in the mutation.
func (m *ProjectionOffsetMutation) Subscriber() (r string, exists bool) {
	v := m.subscriber
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscriber returns the old "subscriber" field's value of the ProjectionOffset entity.
// If the ProjectionOffset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectionOffsetMutation) OldSubscriber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscriber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscriber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscriber: %w", err)
	}
	return oldValue.Subscriber, nil
}

// ResetSubscriber resets all changes to the "subscriber" field.
func (m *ProjectionOffsetMutation) ResetSubscriber() {
	m.subscriber = nil
}

// SetPosition sets the "position" field.
func (m *ProjectionOffsetMutation) SetPosition(i int64) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *ProjectionOffsetMutation) Position() (r int64, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the ProjectionOffset entity.
// If the ProjectionOffset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectionOffsetMutation) OldPosition(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *ProjectionOffsetMutation) AddPosition(i int64) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *ProjectionOffsetMutation) AddedPosition() (r int64, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *ProjectionOffsetMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectionOffsetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectionOffsetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProjectionOffset entity.
// If the ProjectionOffset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectionOffsetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectionOffsetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProjectionOffsetMutation builder.
func (m *ProjectionOffsetMutation) Where(ps ...predicate.ProjectionOffset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectionOffsetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectionOffsetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProjectionOffset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectionOffsetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectionOffsetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProjectionOffset).
func (m *ProjectionOffsetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectionOffsetMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.subscriber != nil {
		fields = append(fields, projectionoffset.FieldSubscriber)
	}
	if m.position != nil {
		fields = append(fields, projectionoffset.FieldPosition)
	}
	if m.updated_at != nil {
		fields = append(fields, projectionoffset.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectionOffsetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case projectionoffset.FieldSubscriber:
		return m.Subscriber()
	case projectionoffset.FieldPosition:
		return m.Position()
	case projectionoffset.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectionOffsetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case projectionoffset.FieldSubscriber:
		return m.OldSubscriber(ctx)
	case projectionoffset.FieldPosition:
		return m.OldPosition(ctx)
	case projectionoffset.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProjectionOffset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectionOffsetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case projectionoffset.FieldSubscriber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscriber(v)
		return nil
	case projectionoffset.FieldPosition:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case projectionoffset.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectionOffset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectionOffsetMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, projectionoffset.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectionOffsetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case projectionoffset.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectionOffsetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case projectionoffset.FieldPosition:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectionOffset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectionOffsetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectionOffsetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectionOffsetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProjectionOffset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectionOffsetMutation) ResetField(name string) error {
	switch name {
	case projectionoffset.FieldSubscriber:
		m.ResetSubscriber()
		return nil
	case projectionoffset.FieldPosition:
		m.ResetPosition()
		return nil
	case projectionoffset.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProjectionOffset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectionOffsetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectionOffsetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectionOffsetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectionOffsetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectionOffsetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectionOffsetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectionOffsetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProjectionOffset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectionOffsetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProjectionOffset edge %s", name)
}

// ProvisioningProgressMutation represents an operation that mutates the ProvisioningProgress nodes in the graph.
type ProvisioningProgressMutation struct {
	config
	op                             Op
	typ                            string
	id                             *int
	tenant_id                      *string
	request_id                     *string
	stage                          *provisioningprogress.Stage
	stage_timestamps               *map[string]string
	estimated_remaining_seconds    *int
	addestimated_remaining_seconds *int
	updated_at                     *time.Time
	clearedFields                  map[string]struct{}
	done                           bool
	oldValue                       func(context.Context) (*ProvisioningProgress, error)
	predicates                     []predicate.ProvisioningProgress
}

var _ ent.Mutation = (*ProvisioningProgressMutation)(nil)

// provisioningprogressOption allows management of the mutation configuration using functional options.
type provisioningprogressOption func(*ProvisioningProgressMutation)

// newProvisioningProgressMutation creates new mutation for the ProvisioningProgress entity.
func newProvisioningProgressMutation(c config, op Op, opts ...provisioningprogressOption) *ProvisioningProgressMutation {
	m := &ProvisioningProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeProvisioningProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProvisioningProgressID sets the ID field of the mutation.
func withProvisioningProgressID(id int) provisioningprogressOption {
	return func(m *ProvisioningProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *ProvisioningProgress
		)
		m.oldValue = func(ctx context.Context) (*ProvisioningProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProvisioningProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProvisioningProgress sets the old ProvisioningProgress of the mutation.
func withProvisioningProgress(node *ProvisioningProgress) provisioningprogressOption {
	return func(m *ProvisioningProgressMutation) {
		m.oldValue = func(context.Context) (*ProvisioningProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProvisioningProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProvisioningProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProvisioningProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProvisioningProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProvisioningProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ProvisioningProgressMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ProvisioningProgressMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ProvisioningProgress entity.
// If the ProvisioningProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProvisioningProgressMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ProvisioningProgressMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetRequestID sets the "request_id" field.
func (m *ProvisioningProgressMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *ProvisioningProgressMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the ProvisioningProgress entity.
// If the ProvisioningProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProvisioningProgressMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *ProvisioningProgressMutation) ResetRequestID() {
	m.request_id = nil
}

// SetStage sets the "stage" field.
func (m *ProvisioningProgressMutation) SetStage(pr provisioningprogress.Stage) {
	m.stage = &pr
}

// Stage returns the value of the "stage" field in the mutation.
func (m *ProvisioningProgressMutation) Stage() (r provisioningprogress.Stage, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the ProvisioningProgress entity.
// If the ProvisioningProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProvisioningProgressMutation) OldStage(ctx context.Context) (v provisioningprogress.Stage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *ProvisioningProgressMutation) ResetStage() {
	m.stage = nil
}

// SetStageTimestamps sets the "stage_timestamps" field.
func (m *ProvisioningProgressMutation) SetStageTimestamps(value map[string]string) {
	m.stage_timestamps = &value
}

// StageTimestamps returns the value of the "stage_timestamps" field in the mutation.
func (m *ProvisioningProgressMutation) StageTimestamps() (r map[string]string, exists bool) {
	v := m.stage_timestamps
	if v == nil {
		return
	}
	return *v, true
}

// OldStageTimestamps returns the old "stage_timestamps" field's value of the ProvisioningProgress entity.
// If the ProvisioningProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProvisioningProgressMutation) OldStageTimestamps(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageTimestamps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageTimestamps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageTimestamps: %w", err)
	}
	return oldValue.StageTimestamps, nil
}

// ResetStageTimestamps resets all changes to the "stage_timestamps" field.
func (m *ProvisioningProgressMutation) ResetStageTimestamps() {
	m.stage_timestamps = nil
}

// SetEstimatedRemainingSeconds sets the "estimated_remaining_seconds" field.
func (m *ProvisioningProgressMutation) SetEstimatedRemainingSeconds(i int) {
	m.estimated_remaining_seconds = &i
	m.addestimated_remaining_seconds = nil
}

// EstimatedRemainingSeconds returns the value of the "estimated_remaining_seconds" field in the mutation.
func (m *ProvisioningProgressMutation) EstimatedRemainingSeconds() (r int, exists bool) {
	v := m.estimated_remaining_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedRemainingSeconds returns the old "estimated_remaining_seconds" field's value of the ProvisioningProgress entity.
// If the ProvisioningProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProvisioningProgressMutation) OldEstimatedRemainingSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedRemainingSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedRemainingSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedRemainingSeconds: %w", err)
	}
	return oldValue.EstimatedRemainingSeconds, nil
}

// AddEstimatedRemainingSeconds adds i to the "estimated_remaining_seconds" field.
func (m *ProvisioningProgressMutation) AddEstimatedRemainingSeconds(i int) {
	if m.addestimated_remaining_seconds != nil {
		*m.addestimated_remaining_seconds += i
	} else {
		m.addestimated_remaining_seconds = &i
	}
}

// AddedEstimatedRemainingSeconds returns the value that was added to the "estimated_remaining_seconds" field in this mutation.
func (m *ProvisioningProgressMutation) AddedEstimatedRemainingSeconds() (r int, exists bool) {
	v := m.addestimated_remaining_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedRemainingSeconds resets all changes to the "estimated_remaining_seconds" field.
func (m *ProvisioningProgressMutation) ResetEstimatedRemainingSeconds() {
	m.estimated_remaining_seconds = nil
	m.addestimated_remaining_seconds = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProvisioningProgressMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProvisioningProgressMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProvisioningProgress entity.
// If the ProvisioningProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProvisioningProgressMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProvisioningProgressMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProvisioningProgressMutation builder.
func (m *ProvisioningProgressMutation) Where(ps ...predicate.ProvisioningProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProvisioningProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProvisioningProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProvisioningProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProvisioningProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProvisioningProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProvisioningProgress).
func (m *ProvisioningProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProvisioningProgressMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant_id != nil {
		fields = append(fields, provisioningprogress.FieldTenantID)
	}
	if m.request_id != nil {
		fields = append(fields, provisioningprogress.FieldRequestID)
	}
	if m.stage != nil {
		fields = append(fields, provisioningprogress.FieldStage)
	}
	if m.stage_timestamps != nil {
		fields = append(fields, provisioningprogress.FieldStageTimestamps)
	}
	if m.estimated_remaining_seconds != nil {
		fields = append(fields, provisioningprogress.FieldEstimatedRemainingSeconds)
	}
	if m.updated_at != nil {
		fields = append(fields, provisioningprogress.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProvisioningProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case provisioningprogress.FieldTenantID:
		return m.TenantID()
	case provisioningprogress.FieldRequestID:
		return m.RequestID()
	case provisioningprogress.FieldStage:
		return m.Stage()
	case provisioningprogress.FieldStageTimestamps:
		return m.StageTimestamps()
	case provisioningprogress.FieldEstimatedRemainingSeconds:
		return m.EstimatedRemainingSeconds()
	case provisioningprogress.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProvisioningProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case provisioningprogress.FieldTenantID:
		return m.OldTenantID(ctx)
	case provisioningprogress.FieldRequestID:
		return m.OldRequestID(ctx)
	case provisioningprogress.FieldStage:
		return m.OldStage(ctx)
	case provisioningprogress.FieldStageTimestamps:
		return m.OldStageTimestamps(ctx)
	case provisioningprogress.FieldEstimatedRemainingSeconds:
		return m.OldEstimatedRemainingSeconds(ctx)
	case provisioningprogress.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProvisioningProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProvisioningProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case provisioningprogress.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case provisioningprogress.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case provisioningprogress.FieldStage:
		v, ok := value.(provisioningprogress.Stage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case provisioningprogress.FieldStageTimestamps:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageTimestamps(v)
		return nil
	case provisioningprogress.FieldEstimatedRemainingSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedRemainingSeconds(v)
		return nil
	case provisioningprogress.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProvisioningProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProvisioningProgressMutation) AddedFields() []string {
	var fields []string
	if m.addestimated_remaining_seconds != nil {
		fields = append(fields, provisioningprogress.FieldEstimatedRemainingSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProvisioningProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case provisioningprogress.FieldEstimatedRemainingSeconds:
		return m.AddedEstimatedRemainingSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProvisioningProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case provisioningprogress.FieldEstimatedRemainingSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedRemainingSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown ProvisioningProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProvisioningProgressMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProvisioningProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProvisioningProgressMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProvisioningProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProvisioningProgressMutation) ResetField(name string) error {
	switch name {
	case provisioningprogress.FieldTenantID:
		m.ResetTenantID()
		return nil
	case provisioningprogress.FieldRequestID:
		m.ResetRequestID()
		return nil
	case provisioningprogress.FieldStage:
		m.ResetStage()
		return nil
	case provisioningprogress.FieldStageTimestamps:
		m.ResetStageTimestamps()
		return nil
	case provisioningprogress.FieldEstimatedRemainingSeconds:
		m.ResetEstimatedRemainingSeconds()
		return nil
	case provisioningprogress.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProvisioningProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProvisioningProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProvisioningProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProvisioningProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProvisioningProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProvisioningProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProvisioningProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProvisioningProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProvisioningProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProvisioningProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProvisioningProgress edge %s", name)
}

// RequestProjectionMutation represents an operation that mutates the RequestProjection nodes in the graph.
type RequestProjectionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tenant_id        *string
	project_id       *string
	project_name     *string
	requester_id     *string
	requester_name   *string
	requester_email  *string
	vm_name          *string
	size             *requestprojection.Size
	cpu_cores        *int
	addcpu_cores     *int
	memory_gb        *int
	addmemory_gb     *int
	disk_gb          *int
	adddisk_gb       *int
	justification    *string
	status           *requestprojection.Status
	decider_name     *string
	decided_at       *time.Time
	rejection_reason *string
	vm_id            *string
	vmware_vm_id     *string
	ip_address       *string
	hostname         *string
	created_at       *time.Time
	updated_at       *time.Time
	version          *int64
	addversion       *int64
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*RequestProjection, error)
	predicates       []predicate.RequestProjection
}

var _ ent.Mutation = (*RequestProjectionMutation)(nil)

// requestprojectionOption allows management of the mutation configuration using functional options.
type requestprojectionOption func(*RequestProjectionMutation)

// newRequestProjectionMutation creates new mutation for the RequestProjection entity.
func newRequestProjectionMutation(c config, op Op, opts ...requestprojectionOption) *RequestProjectionMutation {
	m := &RequestProjectionMutation{
		config:        c,
		op:            op,
		typ:           TypeRequestProjection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequestProjectionID sets the ID field of the mutation.
func withRequestProjectionID(id string) requestprojectionOption {
	return func(m *RequestProjectionMutation) {
		var (
			err   error
			once  sync.Once
			value *RequestProjection
		)
		m.oldValue = func(ctx context.Context) (*RequestProjection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RequestProjection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequestProjection sets the old RequestProjection of the mutation.
func withRequestProjection(node *RequestProjection) requestprojectionOption {
	return func(m *RequestProjectionMutation) {
		m.oldValue = func(context.Context) (*RequestProjection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequestProjectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequestProjectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RequestProjection entities.
func (m *RequestProjectionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequestProjectionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequestProjectionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RequestProjection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *RequestProjectionMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *RequestProjectionMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *RequestProjectionMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *RequestProjectionMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *RequestProjectionMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *RequestProjectionMutation) ResetProjectID() {
	m.project_id = nil
}

// SetProjectName sets the "project_name" field.
func (m *RequestProjectionMutation) SetProjectName(s string) {
	m.project_name = &s
}

// ProjectName returns the value of the "project_name" field in the mutation.
func (m *RequestProjectionMutation) ProjectName() (r string, exists bool) {
	v := m.project_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectName returns the old "project_name" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldProjectName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectName: %w", err)
	}
	return oldValue.ProjectName, nil
}

// ResetProjectName resets all changes to the "project_name" field.
func (m *RequestProjectionMutation) ResetProjectName() {
	m.project_name = nil
}

// SetRequesterID sets the "requester_id" field.
func (m *RequestProjectionMutation) SetRequesterID(s string) {
	m.requester_id = &s
}

// RequesterID returns the value of the "requester_id" field in the mutation.
func (m *RequestProjectionMutation) RequesterID() (r string, exists bool) {
	v := m.requester_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequesterID returns the old "requester_id" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldRequesterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequesterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequesterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequesterID: %w", err)
	}
	return oldValue.RequesterID, nil
}

// ResetRequesterID resets all changes to the "requester_id" field.
func (m *RequestProjectionMutation) ResetRequesterID() {
	m.requester_id = nil
}

// SetRequesterName sets the "requester_name" field.
func (m *RequestProjectionMutation) SetRequesterName(s string) {
	m.requester_name = &s
}

// RequesterName returns the value of the "requester_name" field in the mutation.
func (m *RequestProjectionMutation) RequesterName() (r string, exists bool) {
	v := m.requester_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRequesterName returns the old "requester_name" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldRequesterName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequesterName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequesterName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequesterName: %w", err)
	}
	return oldValue.RequesterName, nil
}

// ResetRequesterName resets all changes to the "requester_name" field.
func (m *RequestProjectionMutation) ResetRequesterName() {
	m.requester_name = nil
}

// SetRequesterEmail sets the "requester_email" field.
func (m *RequestProjectionMutation) SetRequesterEmail(s string) {
	m.requester_email = &s
}

// RequesterEmail returns the value of the "requester_email" field in the mutation.
func (m *RequestProjectionMutation) RequesterEmail() (r string, exists bool) {
	v := m.requester_email
	if v == nil {
		return
	}
	return *v, true
}

// OldRequesterEmail returns the old "requester_email" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldRequesterEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequesterEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequesterEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequesterEmail: %w", err)
	}
	return oldValue.RequesterEmail, nil
}

// ResetRequesterEmail resets all changes to the "requester_email" field.
func (m *RequestProjectionMutation) ResetRequesterEmail() {
	m.requester_email = nil
}

// SetVMName sets the "vm_name" field.
func (m *RequestProjectionMutation) SetVMName(s string) {
	m.vm_name = &s
}

// VMName returns the value of the "vm_name" field in the mutation.
func (m *RequestProjectionMutation) VMName() (r string, exists bool) {
	v := m.vm_name
	if v == nil {
		return
	}
	return *v, true
}

// OldVMName returns the old "vm_name" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldVMName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVMName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVMName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVMName: %w", err)
	}
	return oldValue.VMName, nil
}

// ResetVMName resets all changes to the "vm_name" field.
func (m *RequestProjectionMutation) ResetVMName() {
	m.vm_name = nil
}

// SetSize sets the "size" field.
func (m *RequestProjectionMutation) SetSize(r requestprojection.Size) {
	m.size = &r
}

// Size returns the value of the "size" field in the mutation.
func (m *RequestProjectionMutation) Size() (r requestprojection.Size, exists bool) {
	v := m.size
	if v == nil {
		return
	}
	return *v, true
}

// OldSize returns the old "size" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldSize(ctx context.Context) (v requestprojection.Size, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSize: %w", err)
	}
	return oldValue.Size, nil
}

// ResetSize resets all changes to the "size" field.
func (m *RequestProjectionMutation) ResetSize() {
	m.size = nil
}

// SetCPUCores sets the "cpu_cores" field.
func (m *RequestProjectionMutation) SetCPUCores(i int) {
	m.cpu_cores = &i
	m.addcpu_cores = nil
}

// CPUCores returns the value of the "cpu_cores" field in the mutation.
func (m *RequestProjectionMutation) CPUCores() (r int, exists bool) {
	v := m.cpu_cores
	if v == nil {
		return
	}
	return *v, true
}

// OldCPUCores returns the old "cpu_cores" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldCPUCores(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCPUCores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCPUCores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCPUCores: %w", err)
	}
	return oldValue.CPUCores, nil
}

// AddCPUCores adds i to the "cpu_cores" field.
func (m *RequestProjectionMutation) AddCPUCores(i int) {
	if m.addcpu_cores != nil {
		*m.addcpu_cores += i
	} else {
		m.addcpu_cores = &i
	}
}

// AddedCPUCores returns the value that was added to the "cpu_cores" field in this mutation.
func (m *RequestProjectionMutation) AddedCPUCores() (r int, exists bool) {
	v := m.addcpu_cores
	if v == nil {
		return
	}
	return *v, true
}

// ResetCPUCores resets all changes to the "cpu_cores" field.
func (m *RequestProjectionMutation) ResetCPUCores() {
	m.cpu_cores = nil
	m.addcpu_cores = nil
}

// SetMemoryGB sets the "memory_gb" field.
func (m *RequestProjectionMutation) SetMemoryGB(i int) {
	m.memory_gb = &i
	m.addmemory_gb = nil
}

// MemoryGB returns the value of the "memory_gb" field in the mutation.
func (m *RequestProjectionMutation) MemoryGB() (r int, exists bool) {
	v := m.memory_gb
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoryGB returns the old "memory_gb" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldMemoryGB(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoryGB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoryGB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoryGB: %w", err)
	}
	return oldValue.MemoryGB, nil
}

// AddMemoryGB adds i to the "memory_gb" field.
func (m *RequestProjectionMutation) AddMemoryGB(i int) {
	if m.addmemory_gb != nil {
		*m.addmemory_gb += i
	} else {
		m.addmemory_gb = &i
	}
}

// AddedMemoryGB returns the value that was added to the "memory_gb" field in this mutation.
func (m *RequestProjectionMutation) AddedMemoryGB() (r int, exists bool) {
	v := m.addmemory_gb
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemoryGB resets all changes to the "memory_gb" field.
func (m *RequestProjectionMutation) ResetMemoryGB() {
	m.memory_gb = nil
	m.addmemory_gb = nil
}

// SetDiskGB sets the "disk_gb" field.
func (m *RequestProjectionMutation) SetDiskGB(i int) {
	m.disk_gb = &i
	m.adddisk_gb = nil
}

// DiskGB returns the value of the "disk_gb" field in the mutation.
func (m *RequestProjectionMutation) DiskGB() (r int, exists bool) {
	v := m.disk_gb
	if v == nil {
		return
	}
	return *v, true
}

// OldDiskGB returns the old "disk_gb" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldDiskGB(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiskGB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiskGB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiskGB: %w", err)
	}
	return oldValue.DiskGB, nil
}

// AddDiskGB adds i to the "disk_gb" field.
func (m *RequestProjectionMutation) AddDiskGB(i int) {
	if m.adddisk_gb != nil {
		*m.adddisk_gb += i
	} else {
		m.adddisk_gb = &i
	}
}

// AddedDiskGB returns the value that was added to the "disk_gb" field in this mutation.
func (m *RequestProjectionMutation) AddedDiskGB() (r int, exists bool) {
	v := m.adddisk_gb
	if v == nil {
		return
	}
	return *v, true
}

// ResetDiskGB resets all changes to the "disk_gb" field.
func (m *RequestProjectionMutation) ResetDiskGB() {
	m.disk_gb = nil
	m.adddisk_gb = nil
}

// SetJustification sets the "justification" field.
func (m *RequestProjectionMutation) SetJustification(s string) {
	m.justification = &s
}

// Justification returns the value of the "justification" field in the mutation.
func (m *RequestProjectionMutation) Justification() (r string, exists bool) {
	v := m.justification
	if v == nil {
		return
	}
	return *v, true
}

// OldJustification returns the old "justification" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldJustification(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJustification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJustification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJustification: %w", err)
	}
	return oldValue.Justification, nil
}

// ResetJustification resets all changes to the "justification" field.
func (m *RequestProjectionMutation) ResetJustification() {
	m.justification = nil
}

// SetStatus sets the "status" field.
func (m *RequestProjectionMutation) SetStatus(r requestprojection.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RequestProjectionMutation) Status() (r requestprojection.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldStatus(ctx context.Context) (v requestprojection.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RequestProjectionMutation) ResetStatus() {
	m.status = nil
}

// SetDeciderName sets the "decider_name" field.
func (m *RequestProjectionMutation) SetDeciderName(s string) {
	m.decider_name = &s
}

// DeciderName returns the value of the "decider_name" field in the mutation.
func (m *RequestProjectionMutation) DeciderName() (r string, exists bool) {
	v := m.decider_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDeciderName returns the old "decider_name" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldDeciderName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeciderName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeciderName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeciderName: %w", err)
	}
	return oldValue.DeciderName, nil
}

// ClearDeciderName clears the value of the "decider_name" field.
func (m *RequestProjectionMutation) ClearDeciderName() {
	m.decider_name = nil
	m.clearedFields[requestprojection.FieldDeciderName] = struct{}{}
}

// DeciderNameCleared returns if the "decider_name" field was cleared in this mutation.
func (m *RequestProjectionMutation) DeciderNameCleared() bool {
	_, ok := m.clearedFields[requestprojection.FieldDeciderName]
	return ok
}

// ResetDeciderName resets all changes to the "decider_name" field.
func (m *RequestProjectionMutation) ResetDeciderName() {
	m.decider_name = nil
	delete(m.clearedFields, requestprojection.FieldDeciderName)
}

// SetDecidedAt sets the "decided_at" field.
func (m *RequestProjectionMutation) SetDecidedAt(t time.Time) {
	m.decided_at = &t
}

// DecidedAt returns the value of the "decided_at" field in the mutation.
func (m *RequestProjectionMutation) DecidedAt() (r time.Time, exists bool) {
	v := m.decided_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedAt returns the old "decided_at" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldDecidedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedAt: %w", err)
	}
	return oldValue.DecidedAt, nil
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (m *RequestProjectionMutation) ClearDecidedAt() {
	m.decided_at = nil
	m.clearedFields[requestprojection.FieldDecidedAt] = struct{}{}
}

// DecidedAtCleared returns if the "decided_at" field was cleared in this mutation.
func (m *RequestProjectionMutation) DecidedAtCleared() bool {
	_, ok := m.clearedFields[requestprojection.FieldDecidedAt]
	return ok
}

// ResetDecidedAt resets all changes to the "decided_at" field.
func (m *RequestProjectionMutation) ResetDecidedAt() {
	m.decided_at = nil
	delete(m.clearedFields, requestprojection.FieldDecidedAt)
}

// SetRejectionReason sets the "rejection_reason" field.
func (m *RequestProjectionMutation) SetRejectionReason(s string) {
	m.rejection_reason = &s
}

// RejectionReason returns the value of the "rejection_reason" field in the mutation.
func (m *RequestProjectionMutation) RejectionReason() (r string, exists bool) {
	v := m.rejection_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectionReason returns the old "rejection_reason" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldRejectionReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectionReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectionReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectionReason: %w", err)
	}
	return oldValue.RejectionReason, nil
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (m *RequestProjectionMutation) ClearRejectionReason() {
	m.rejection_reason = nil
	m.clearedFields[requestprojection.FieldRejectionReason] = struct{}{}
}

// RejectionReasonCleared returns if the "rejection_reason" field was cleared in this mutation.
func (m *RequestProjectionMutation) RejectionReasonCleared() bool {
	_, ok := m.clearedFields[requestprojection.FieldRejectionReason]
	return ok
}

// ResetRejectionReason resets all changes to the "rejection_reason" field.
func (m *RequestProjectionMutation) ResetRejectionReason() {
	m.rejection_reason = nil
	delete(m.clearedFields, requestprojection.FieldRejectionReason)
}

// SetVMID sets the "vm_id" field.
func (m *RequestProjectionMutation) SetVMID(s string) {
	m.vm_id = &s
}

// VMID returns the value of the "vm_id" field in the mutation.
func (m *RequestProjectionMutation) VMID() (r string, exists bool) {
	v := m.vm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVMID returns the old "vm_id" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldVMID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVMID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVMID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVMID: %w", err)
	}
	return oldValue.VMID, nil
}

// ClearVMID clears the value of the "vm_id" field.
func (m *RequestProjectionMutation) ClearVMID() {
	m.vm_id = nil
	m.clearedFields[requestprojection.FieldVMID] = struct{}{}
}

// VMIDCleared returns if the "vm_id" field was cleared in this mutation.
func (m *RequestProjectionMutation) VMIDCleared() bool {
	_, ok := m.clearedFields[requestprojection.FieldVMID]
	return ok
}

// ResetVMID resets all changes to the "vm_id" field.
func (m *RequestProjectionMutation) ResetVMID() {
	m.vm_id = nil
	delete(m.clearedFields, requestprojection.FieldVMID)
}

// SetVmwareVMID sets the "vmware_vm_id" field.
func (m *RequestProjectionMutation) SetVmwareVMID(s string) {
	m.vmware_vm_id = &s
}

// VmwareVMID returns the value of the "vmware_vm_id" field in the mutation.
func (m *RequestProjectionMutation) VmwareVMID() (r string, exists bool) {
	v := m.vmware_vm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVmwareVMID returns the old "vmware_vm_id" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldVmwareVMID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVmwareVMID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVmwareVMID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVmwareVMID: %w", err)
	}
	return oldValue.VmwareVMID, nil
}

// ClearVmwareVMID clears the value of the "vmware_vm_id" field.
func (m *RequestProjectionMutation) ClearVmwareVMID() {
	m.vmware_vm_id = nil
	m.clearedFields[requestprojection.FieldVmwareVMID] = struct{}{}
}

// VmwareVMIDCleared returns if the "vmware_vm_id" field was cleared in this mutation.
func (m *RequestProjectionMutation) VmwareVMIDCleared() bool {
	_, ok := m.clearedFields[requestprojection.FieldVmwareVMID]
	return ok
}

// ResetVmwareVMID resets all changes to the "vmware_vm_id" field.
func (m *RequestProjectionMutation) ResetVmwareVMID() {
	m.vmware_vm_id = nil
	delete(m.clearedFields, requestprojection.FieldVmwareVMID)
}

// SetIPAddress sets the "ip_address" field.
func (m *RequestProjectionMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *RequestProjectionMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldIPAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *RequestProjectionMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[requestprojection.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *RequestProjectionMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[requestprojection.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *RequestProjectionMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, requestprojection.FieldIPAddress)
}

// SetHostname sets the "hostname" field.
func (m *RequestProjectionMutation) SetHostname(s string) {
	m.hostname = &s
}

// Hostname returns the value of the "hostname" field in the mutation.
func (m *RequestProjectionMutation) Hostname() (r string, exists bool) {
	v := m.hostname
	if v == nil {
		return
	}
	return *v, true
}

// OldHostname returns the old "hostname" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldHostname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHostname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHostname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHostname: %w", err)
	}
	return oldValue.Hostname, nil
}

// ClearHostname clears the value of the "hostname" field.
func (m *RequestProjectionMutation) ClearHostname() {
	m.hostname = nil
	m.clearedFields[requestprojection.FieldHostname] = struct{}{}
}

// HostnameCleared returns if the "hostname" field was cleared in this mutation.
func (m *RequestProjectionMutation) HostnameCleared() bool {
	_, ok := m.clearedFields[requestprojection.FieldHostname]
	return ok
}

// ResetHostname resets all changes to the "hostname" field.
func (m *RequestProjectionMutation) ResetHostname() {
	m.hostname = nil
	delete(m.clearedFields, requestprojection.FieldHostname)
}

// SetCreatedAt sets the "created_at" field.
func (m *RequestProjectionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RequestProjectionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RequestProjectionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RequestProjectionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RequestProjectionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RequestProjectionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetVersion sets the "version" field.
func (m *RequestProjectionMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *RequestProjectionMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the RequestProjection entity.
// If the RequestProjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestProjectionMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *RequestProjectionMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *RequestProjectionMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *RequestProjectionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// Where appends a list predicates to the RequestProjectionMutation builder.
func (m *RequestProjectionMutation) Where(ps ...predicate.RequestProjection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequestProjectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequestProjectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RequestProjection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequestProjectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequestProjectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RequestProjection).
func (m *RequestProjectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequestProjectionMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.tenant_id != nil {
		fields = append(fields, requestprojection.FieldTenantID)
	}
	if m.project_id != nil {
		fields = append(fields, requestprojection.FieldProjectID)
	}
	if m.project_name != nil {
		fields = append(fields, requestprojection.FieldProjectName)
	}
	if m.requester_id != nil {
		fields = append(fields, requestprojection.FieldRequesterID)
	}
	if m.requester_name != nil {
		fields = append(fields, requestprojection.FieldRequesterName)
	}
	if m.requester_email != nil {
		fields = append(fields, requestprojection.FieldRequesterEmail)
	}
	if m.vm_name != nil {
		fields = append(fields, requestprojection.FieldVMName)
	}
	if m.size != nil {
		fields = append(fields, requestprojection.FieldSize)
	}
	if m.cpu_cores != nil {
		fields = append(fields, requestprojection.FieldCPUCores)
	}
	if m.memory_gb != nil {
		fields = append(fields, requestprojection.FieldMemoryGB)
	}
	if m.disk_gb != nil {
		fields = append(fields, requestprojection.FieldDiskGB)
	}
	if m.justification != nil {
		fields = append(fields, requestprojection.FieldJustification)
	}
	if m.status != nil {
		fields = append(fields, requestprojection.FieldStatus)
	}
	if m.decider_name != nil {
		fields = append(fields, requestprojection.FieldDeciderName)
	}
	if m.decided_at != nil {
		fields = append(fields, requestprojection.FieldDecidedAt)
	}
	if m.rejection_reason != nil {
		fields = append(fields, requestprojection.FieldRejectionReason)
	}
	if m.vm_id != nil {
		fields = append(fields, requestprojection.FieldVMID)
	}
	if m.vmware_vm_id != nil {
		fields = append(fields, requestprojection.FieldVmwareVMID)
	}
	if m.ip_address != nil {
		fields = append(fields, requestprojection.FieldIPAddress)
	}
	if m.hostname != nil {
		fields = append(fields, requestprojection.FieldHostname)
	}
	if m.created_at != nil {
		fields = append(fields, requestprojection.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, requestprojection.FieldUpdatedAt)
	}
	if m.version != nil {
		fields = append(fields, requestprojection.FieldVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequestProjectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case requestprojection.FieldTenantID:
		return m.TenantID()
	case requestprojection.FieldProjectID:
		return m.ProjectID()
	case requestprojection.FieldProjectName:
		return m.ProjectName()
	case requestprojection.FieldRequesterID:
		return m.RequesterID()
	case requestprojection.FieldRequesterName:
		return m.RequesterName()
	case requestprojection.FieldRequesterEmail:
		return m.RequesterEmail()
	case requestprojection.FieldVMName:
		return m.VMName()
	case requestprojection.FieldSize:
		return m.Size()
	case requestprojection.FieldCPUCores:
		return m.CPUCores()
	case requestprojection.FieldMemoryGB:
		return m.MemoryGB()
	case requestprojection.FieldDiskGB:
		return m.DiskGB()
	case requestprojection.FieldJustification:
		return m.Justification()
	case requestprojection.FieldStatus:
		return m.Status()
	case requestprojection.FieldDeciderName:
		return m.DeciderName()
	case requestprojection.FieldDecidedAt:
		return m.DecidedAt()
	case requestprojection.FieldRejectionReason:
		return m.RejectionReason()
	case requestprojection.FieldVMID:
		return m.VMID()
	case requestprojection.FieldVmwareVMID:
		return m.VmwareVMID()
	case requestprojection.FieldIPAddress:
		return m.IPAddress()
	case requestprojection.FieldHostname:
		return m.Hostname()
	case requestprojection.FieldCreatedAt:
		return m.CreatedAt()
	case requestprojection.FieldUpdatedAt:
		return m.UpdatedAt()
	case requestprojection.FieldVersion:
		return m.Version()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequestProjectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case requestprojection.FieldTenantID:
		return m.OldTenantID(ctx)
	case requestprojection.FieldProjectID:
		return m.OldProjectID(ctx)
	case requestprojection.FieldProjectName:
		return m.OldProjectName(ctx)
	case requestprojection.FieldRequesterID:
		return m.OldRequesterID(ctx)
	case requestprojection.FieldRequesterName:
		return m.OldRequesterName(ctx)
	case requestprojection.FieldRequesterEmail:
		return m.OldRequesterEmail(ctx)
	case requestprojection.FieldVMName:
		return m.OldVMName(ctx)
	case requestprojection.FieldSize:
		return m.OldSize(ctx)
	case requestprojection.FieldCPUCores:
		return m.OldCPUCores(ctx)
	case requestprojection.FieldMemoryGB:
		return m.OldMemoryGB(ctx)
	case requestprojection.FieldDiskGB:
		return m.OldDiskGB(ctx)
	case requestprojection.FieldJustification:
		return m.OldJustification(ctx)
	case requestprojection.FieldStatus:
		return m.OldStatus(ctx)
	case requestprojection.FieldDeciderName:
		return m.OldDeciderName(ctx)
	case requestprojection.FieldDecidedAt:
		return m.OldDecidedAt(ctx)
	case requestprojection.FieldRejectionReason:
		return m.OldRejectionReason(ctx)
	case requestprojection.FieldVMID:
		return m.OldVMID(ctx)
	case requestprojection.FieldVmwareVMID:
		return m.OldVmwareVMID(ctx)
	case requestprojection.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case requestprojection.FieldHostname:
		return m.OldHostname(ctx)
	case requestprojection.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case requestprojection.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case requestprojection.FieldVersion:
		return m.OldVersion(ctx)
	}
	return nil, fmt.Errorf("unknown RequestProjection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestProjectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case requestprojection.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case requestprojection.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case requestprojection.FieldProjectName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectName(v)
		return nil
	case requestprojection.FieldRequesterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequesterID(v)
		return nil
	case requestprojection.FieldRequesterName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequesterName(v)
		return nil
	case requestprojection.FieldRequesterEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequesterEmail(v)
		return nil
	case requestprojection.FieldVMName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVMName(v)
		return nil
	case requestprojection.FieldSize:
		v, ok := value.(requestprojection.Size)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSize(v)
		return nil
	case requestprojection.FieldCPUCores:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCPUCores(v)
		return nil
	case requestprojection.FieldMemoryGB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoryGB(v)
		return nil
	case requestprojection.FieldDiskGB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiskGB(v)
		return nil
	case requestprojection.FieldJustification:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJustification(v)
		return nil
	case requestprojection.FieldStatus:
		v, ok := value.(requestprojection.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case requestprojection.FieldDeciderName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeciderName(v)
		return nil
	case requestprojection.FieldDecidedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedAt(v)
		return nil
	case requestprojection.FieldRejectionReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectionReason(v)
		return nil
	case requestprojection.FieldVMID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVMID(v)
		return nil
	case requestprojection.FieldVmwareVMID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVmwareVMID(v)
		return nil
	case requestprojection.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case requestprojection.FieldHostname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHostname(v)
		return nil
	case requestprojection.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case requestprojection.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case requestprojection.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	}
	return fmt.Errorf("unknown RequestProjection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequestProjectionMutation) AddedFields() []string {
	var fields []string
	if m.addcpu_cores != nil {
		fields = append(fields, requestprojection.FieldCPUCores)
	}
	if m.addmemory_gb != nil {
		fields = append(fields, requestprojection.FieldMemoryGB)
	}
	if m.adddisk_gb != nil {
		fields = append(fields, requestprojection.FieldDiskGB)
	}
	if m.addversion != nil {
		fields = append(fields, requestprojection.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequestProjectionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case requestprojection.FieldCPUCores:
		return m.AddedCPUCores()
	case requestprojection.FieldMemoryGB:
		return m.AddedMemoryGB()
	case requestprojection.FieldDiskGB:
		return m.AddedDiskGB()
	case requestprojection.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestProjectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case requestprojection.FieldCPUCores:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCPUCores(v)
		return nil
	case requestprojection.FieldMemoryGB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemoryGB(v)
		return nil
	case requestprojection.FieldDiskGB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDiskGB(v)
		return nil
	case requestprojection.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown RequestProjection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequestProjectionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(requestprojection.FieldDeciderName) {
		fields = append(fields, requestprojection.FieldDeciderName)
	}
	if m.FieldCleared(requestprojection.FieldDecidedAt) {
		fields = append(fields, requestprojection.FieldDecidedAt)
	}
	if m.FieldCleared(requestprojection.FieldRejectionReason) {
		fields = append(fields, requestprojection.FieldRejectionReason)
	}
	if m.FieldCleared(requestprojection.FieldVMID) {
		fields = append(fields, requestprojection.FieldVMID)
	}
	if m.FieldCleared(requestprojection.FieldVmwareVMID) {
		fields = append(fields, requestprojection.FieldVmwareVMID)
	}
	if m.FieldCleared(requestprojection.FieldIPAddress) {
		fields = append(fields, requestprojection.FieldIPAddress)
	}
	if m.FieldCleared(requestprojection.FieldHostname) {
		fields = append(fields, requestprojection.FieldHostname)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequestProjectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequestProjectionMutation) ClearField(name string) error {
	switch name {
	case requestprojection.FieldDeciderName:
		m.ClearDeciderName()
		return nil
	case requestprojection.FieldDecidedAt:
		m.ClearDecidedAt()
		return nil
	case requestprojection.FieldRejectionReason:
		m.ClearRejectionReason()
		return nil
	case requestprojection.FieldVMID:
		m.ClearVMID()
		return nil
	case requestprojection.FieldVmwareVMID:
		m.ClearVmwareVMID()
		return nil
	case requestprojection.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	case requestprojection.FieldHostname:
		m.ClearHostname()
		return nil
	}
	return fmt.Errorf("unknown RequestProjection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequestProjectionMutation) ResetField(name string) error {
	switch name {
	case requestprojection.FieldTenantID:
		m.ResetTenantID()
		return nil
	case requestprojection.FieldProjectID:
		m.ResetProjectID()
		return nil
	case requestprojection.FieldProjectName:
		m.ResetProjectName()
		return nil
	case requestprojection.FieldRequesterID:
		m.ResetRequesterID()
		return nil
	case requestprojection.FieldRequesterName:
		m.ResetRequesterName()
		return nil
	case requestprojection.FieldRequesterEmail:
		m.ResetRequesterEmail()
		return nil
	case requestprojection.FieldVMName:
		m.ResetVMName()
		return nil
	case requestprojection.FieldSize:
		m.ResetSize()
		return nil
	case requestprojection.FieldCPUCores:
		m.ResetCPUCores()
		return nil
	case requestprojection.FieldMemoryGB:
		m.ResetMemoryGB()
		return nil
	case requestprojection.FieldDiskGB:
		m.ResetDiskGB()
		return nil
	case requestprojection.FieldJustification:
		m.ResetJustification()
		return nil
	case requestprojection.FieldStatus:
		m.ResetStatus()
		return nil
	case requestprojection.FieldDeciderName:
		m.ResetDeciderName()
		return nil
	case requestprojection.FieldDecidedAt:
		m.ResetDecidedAt()
		return nil
	case requestprojection.FieldRejectionReason:
		m.ResetRejectionReason()
		return nil
	case requestprojection.FieldVMID:
		m.ResetVMID()
		return nil
	case requestprojection.FieldVmwareVMID:
		m.ResetVmwareVMID()
		return nil
	case requestprojection.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case requestprojection.FieldHostname:
		m.ResetHostname()
		return nil
	case requestprojection.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case requestprojection.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case requestprojection.FieldVersion:
		m.ResetVersion()
		return nil
	}
	return fmt.Errorf("unknown RequestProjection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequestProjectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequestProjectionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequestProjectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequestProjectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequestProjectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequestProjectionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequestProjectionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RequestProjection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequestProjectionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RequestProjection edge %s", name)
}

// TimelineEntryMutation represents an operation that mutates the TimelineEntry nodes in the graph.
type TimelineEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	tenant_id     *string
	created_at    *time.Time
	request_id    *string
	event_type    *string
	actor_name    *string
	details       *string
	occurred_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TimelineEntry, error)
	predicates    []predicate.TimelineEntry
}

var _ ent.Mutation = (*TimelineEntryMutation)(nil)

// timelineentryOption allows management of the mutation configuration using functional options.
type timelineentryOption func(*TimelineEntryMutation)

// newTimelineEntryMutation creates new mutation for the TimelineEntry entity.
func newTimelineEntryMutation(c config, op Op, opts ...timelineentryOption) *TimelineEntryMutation {
	m := &TimelineEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeTimelineEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTimelineEntryID sets the ID field of the mutation.
func withTimelineEntryID(id int) timelineentryOption {
	return func(m *TimelineEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *TimelineEntry
		)
		m.oldValue = func(ctx context.Context) (*TimelineEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TimelineEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTimelineEntry sets the old TimelineEntry of the mutation.
func withTimelineEntry(node *TimelineEntry) timelineentryOption {
	return func(m *TimelineEntryMutation) {
		m.oldValue = func(context.Context) (*TimelineEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TimelineEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TimelineEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TimelineEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TimelineEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TimelineEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *TimelineEntryMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *TimelineEntryMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the TimelineEntry entity.
// If the TimelineEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEntryMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *TimelineEntryMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TimelineEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TimelineEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TimelineEntry entity.
// If the TimelineEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TimelineEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRequestID sets the "request_id" field.
func (m *TimelineEntryMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *TimelineEntryMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the TimelineEntry entity.
// If the TimelineEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEntryMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *TimelineEntryMutation) ResetRequestID() {
	m.request_id = nil
}

// SetEventType sets the "event_type" field.
func (m *TimelineEntryMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *TimelineEntryMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the TimelineEntry entity.
// If the TimelineEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEntryMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *TimelineEntryMutation) ResetEventType() {
	m.event_type = nil
}

// SetActorName sets the "actor_name" field.
func (m *TimelineEntryMutation) SetActorName(s string) {
	m.actor_name = &s
}

// ActorName returns the value of the "actor_name" field in the mutation.
func (m *TimelineEntryMutation) ActorName() (r string, exists bool) {
	v := m.actor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldActorName returns the old "actor_name" field's value of the TimelineEntry entity.
// If the TimelineEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEntryMutation) OldActorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorName: %w", err)
	}
	return oldValue.ActorName, nil
}

// ClearActorName clears the value of the "actor_name" field.
func (m *TimelineEntryMutation) ClearActorName() {
	m.actor_name = nil
	m.clearedFields[timelineentry.FieldActorName] = struct{}{}
}

// ActorNameCleared returns if the "actor_name" field was cleared in this mutation.
func (m *TimelineEntryMutation) ActorNameCleared() bool {
	_, ok := m.clearedFields[timelineentry.FieldActorName]
	return ok
}

// ResetActorName resets all changes to the "actor_name" field.
func (m *TimelineEntryMutation) ResetActorName() {
	m.actor_name = nil
	delete(m.clearedFields, timelineentry.FieldActorName)
}

// SetDetails sets the "details" field.
func (m *TimelineEntryMutation) SetDetails(s string) {
	m.details = &s
}

// Details returns the value of the "details" field in the mutation.
func (m *TimelineEntryMutation) Details() (r string, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the TimelineEntry entity.
// If the TimelineEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEntryMutation) OldDetails(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *TimelineEntryMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[timelineentry.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *TimelineEntryMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[timelineentry.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *TimelineEntryMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, timelineentry.FieldDetails)
}

// SetOccurredAt sets the "occurred_at" field.
func (m *TimelineEntryMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *TimelineEntryMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the TimelineEntry entity.
// If the TimelineEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEntryMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *TimelineEntryMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// Where appends a list predicates to the TimelineEntryMutation builder.
func (m *TimelineEntryMutation) Where(ps ...predicate.TimelineEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TimelineEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TimelineEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TimelineEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TimelineEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TimelineEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TimelineEntry).
func (m *TimelineEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TimelineEntryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant_id != nil {
		fields = append(fields, timelineentry.FieldTenantID)
	}
	if m.created_at != nil {
		fields = append(fields, timelineentry.FieldCreatedAt)
	}
	if m.request_id != nil {
		fields = append(fields, timelineentry.FieldRequestID)
	}
	if m.event_type != nil {
		fields = append(fields, timelineentry.FieldEventType)
	}
	if m.actor_name != nil {
		fields = append(fields, timelineentry.FieldActorName)
	}
	if m.details != nil {
		fields = append(fields, timelineentry.FieldDetails)
	}
	if m.occurred_at != nil {
		fields = append(fields, timelineentry.FieldOccurredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TimelineEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case timelineentry.FieldTenantID:
		return m.TenantID()
	case timelineentry.FieldCreatedAt:
		return m.CreatedAt()
	case timelineentry.FieldRequestID:
		return m.RequestID()
	case timelineentry.FieldEventType:
		return m.EventType()
	case timelineentry.FieldActorName:
		return m.ActorName()
	case timelineentry.FieldDetails:
		return m.Details()
	case timelineentry.FieldOccurredAt:
		return m.OccurredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TimelineEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case timelineentry.FieldTenantID:
		return m.OldTenantID(ctx)
	case timelineentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case timelineentry.FieldRequestID:
		return m.OldRequestID(ctx)
	case timelineentry.FieldEventType:
		return m.OldEventType(ctx)
	case timelineentry.FieldActorName:
		return m.OldActorName(ctx)
	case timelineentry.FieldDetails:
		return m.OldDetails(ctx)
	case timelineentry.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	}
	return nil, fmt.Errorf("unknown TimelineEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimelineEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case timelineentry.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case timelineentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case timelineentry.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case timelineentry.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case timelineentry.FieldActorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorName(v)
		return nil
	case timelineentry.FieldDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case timelineentry.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	}
	return fmt.Errorf("unknown TimelineEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TimelineEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TimelineEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimelineEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TimelineEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TimelineEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(timelineentry.FieldActorName) {
		fields = append(fields, timelineentry.FieldActorName)
	}
	if m.FieldCleared(timelineentry.FieldDetails) {
		fields = append(fields, timelineentry.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TimelineEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TimelineEntryMutation) ClearField(name string) error {
	switch name {
	case timelineentry.FieldActorName:
		m.ClearActorName()
		return nil
	case timelineentry.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown TimelineEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TimelineEntryMutation) ResetField(name string) error {
	switch name {
	case timelineentry.FieldTenantID:
		m.ResetTenantID()
		return nil
	case timelineentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case timelineentry.FieldRequestID:
		m.ResetRequestID()
		return nil
	case timelineentry.FieldEventType:
		m.ResetEventType()
		return nil
	case timelineentry.FieldActorName:
		m.ResetActorName()
		return nil
	case timelineentry.FieldDetails:
		m.ResetDetails()
		return nil
	case timelineentry.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	}
	return fmt.Errorf("unknown TimelineEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TimelineEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TimelineEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TimelineEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TimelineEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TimelineEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TimelineEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TimelineEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TimelineEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TimelineEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TimelineEntry edge %s", name)
}

// VmwareConfigMutation represents an operation that mutates the VmwareConfig nodes in the graph.
type VmwareConfigMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	updated_at    *time.Time
	tenant_id     *string
	vcenter_url   *string
	username      *string
	password_enc  *string
	datacenter    *string
	cluster       *string
	datastore     *string
	network       *string
	template      *string
	verified_at   *time.Time
	version       *int64
	addversion    *int64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*VmwareConfig, error)
	predicates    []predicate.VmwareConfig
}

var _ ent.Mutation = (*VmwareConfigMutation)(nil)

// vmwareconfigOption allows management of the mutation configuration using functional options.
type vmwareconfigOption func(*VmwareConfigMutation)

// newVmwareConfigMutation creates new mutation for the VmwareConfig entity.
func newVmwareConfigMutation(c config, op Op, opts ...vmwareconfigOption) *VmwareConfigMutation {
	m := &VmwareConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeVmwareConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVmwareConfigID sets the ID field of the mutation.
func withVmwareConfigID(id int) vmwareconfigOption {
	return func(m *VmwareConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *VmwareConfig
		)
		m.oldValue = func(ctx context.Context) (*VmwareConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VmwareConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVmwareConfig sets the old VmwareConfig of the mutation.
func withVmwareConfig(node *VmwareConfig) vmwareconfigOption {
	return func(m *VmwareConfigMutation) {
		m.oldValue = func(context.Context) (*VmwareConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VmwareConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VmwareConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VmwareConfigMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VmwareConfigMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VmwareConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *VmwareConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VmwareConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VmwareConfig entity.
// If the VmwareConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VmwareConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VmwareConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VmwareConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VmwareConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the VmwareConfig entity.
// If the VmwareConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VmwareConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VmwareConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *VmwareConfigMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *VmwareConfigMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the VmwareConfig entity.
// If the VmwareConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VmwareConfigMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *VmwareConfigMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetVcenterURL sets the "vcenter_url" field.
func (m *VmwareConfigMutation) SetVcenterURL(s string) {
	m.vcenter_url = &s
}

// VcenterURL returns the value of the "vcenter_url" field in the mutation.
func (m *VmwareConfigMutation) VcenterURL() (r string, exists bool) {
	v := m.vcenter_url
	if v == nil {
		return
	}
	return *v, true
}

// OldVcenterURL returns the old "vcenter_url" field's value of the VmwareConfig entity.
// If the VmwareConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VmwareConfigMutation) OldVcenterURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVcenterURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVcenterURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVcenterURL: %w", err)
	}
	return oldValue.VcenterURL, nil
}

// ResetVcenterURL resets all changes to the "vcenter_url" field.
func (m *VmwareConfigMutation) ResetVcenterURL() {
	m.vcenter_url = nil
}

// SetUsername sets the "username" field.
func (m *VmwareConfigMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *VmwareConfigMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the VmwareConfig entity.
// If the VmwareConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VmwareConfigMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *VmwareConfigMutation) ResetUsername() {
	m.username = nil
}

// SetPasswordEnc sets the "password_enc" field.
func (m *VmwareConfigMutation) SetPasswordEnc(s string) {
	m.password_enc = &s
}

// PasswordEnc returns the value of the "password_enc" field in the mutation.
func (m *VmwareConfigMutation) PasswordEnc() (r string, exists bool) {
	v := m.password_enc
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordEnc returns the old "password_enc" field's value of the VmwareConfig entity.
// If the VmwareConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VmwareConfigMutation) OldPasswordEnc(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordEnc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordEnc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordEnc: %w", err)
	}
	return oldValue.PasswordEnc, nil
}

// ResetPasswordEnc resets all changes to the "password_enc" field.
func (m *VmwareConfigMutation) ResetPasswordEnc() {
	m.password_enc = nil
}

// SetDatacenter sets the "datacenter" field.
func (m *VmwareConfigMutation) SetDatacenter(s string) {
	m.datacenter = &s
}

// Datacenter returns the value of the "datacenter" field in the mutation.
func (m *VmwareConfigMutation) Datacenter() (r string, exists bool) {
	v := m.datacenter
	if v == nil {
		return
	}
	return *v, true
}

// OldDatacenter returns the old "datacenter" field's value of the VmwareConfig entity.
// If the VmwareConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VmwareConfigMutation) OldDatacenter(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatacenter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatacenter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatacenter: %w", err)
	}
	return oldValue.Datacenter, nil
}

// ResetDatacenter resets all changes to the "datacenter" field.
func (m *VmwareConfigMutation) ResetDatacenter() {
	m.datacenter = nil
}

// SetCluster sets the "cluster" field.
func (m *VmwareConfigMutation) SetCluster(s string) {
	m.cluster = &s
}

// Cluster returns the value of the "cluster" field in the mutation.
func (m *VmwareConfigMutation) Cluster() (r string, exists bool) {
	v := m.cluster
	if v == nil {
		return
	}
	return *v, true
}

// OldCluster returns the old "cluster" field's value of the VmwareConfig entity.
// If the VmwareConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VmwareConfigMutation) OldCluster(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCluster is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCluster requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCluster: %w", err)
	}
	return oldValue.Cluster, nil
}

// ResetCluster resets all changes to the "cluster" field.
func (m *VmwareConfigMutation) ResetCluster() {
	m.cluster = nil
}

// SetDatastore sets the "datastore" field.
func (m *VmwareConfigMutation) SetDatastore(s string) {
	m.datastore = &s
}

// Datastore returns the value of the "datastore" field in the mutation.
func (m *VmwareConfigMutation) Datastore() (r string, exists bool) {
	v := m.datastore
	if v == nil {
		return
	}
	return *v, true
}

// OldDatastore returns the old "datastore" field's value of the VmwareConfig entity.
// If the VmwareConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VmwareConfigMutation) OldDatastore(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatastore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatastore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatastore: %w", err)
	}
	return oldValue.Datastore, nil
}

// ResetDatastore resets all changes to the "datastore" field.
func (m *VmwareConfigMutation) ResetDatastore() {
	m.datastore = nil
}

// SetNetwork sets the "network" field.
func (m *VmwareConfigMutation) SetNetwork(s string) {
	m.network = &s
}

// Network returns the value of the "network" field in the mutation.
func (m *VmwareConfigMutation) Network() (r string, exists bool) {
	v := m.network
	if v == nil {
		return
	}
	return *v, true
}

// OldNetwork returns the old "network" field's value of the VmwareConfig entity.
// If the VmwareConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VmwareConfigMutation) OldNetwork(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetwork is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetwork requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetwork: %w", err)
	}
	return oldValue.Network, nil
}

// ResetNetwork resets all changes to the "network" field.
func (m *VmwareConfigMutation) ResetNetwork() {
	m.network = nil
}

// SetTemplate sets the "template" field.
func (m *VmwareConfigMutation) SetTemplate(s string) {
	m.template = &s
}

// Template returns the value of the "template" field in the mutation.
func (m *VmwareConfigMutation) Template() (r string, exists bool) {
	v := m.template
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplate returns the old "template" field's value of the VmwareConfig entity.
// If the VmwareConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VmwareConfigMutation) OldTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplate: %w", err)
	}
	return oldValue.Template, nil
}

// ResetTemplate resets all changes to the "template" field.
func (m *VmwareConfigMutation) ResetTemplate() {
	m.template = nil
}

// SetVerifiedAt sets the "verified_at" field.
func (m *VmwareConfigMutation) SetVerifiedAt(t time.Time) {
	m.verified_at = &t
}

// VerifiedAt returns the value of the "verified_at" field in the mutation.
func (m *VmwareConfigMutation) VerifiedAt() (r time.Time, exists bool) {
	v := m.verified_at
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedAt returns the old "verified_at" field's value of the VmwareConfig entity.
// If the VmwareConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VmwareConfigMutation) OldVerifiedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedAt: %w", err)
	}
	return oldValue.VerifiedAt, nil
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (m *VmwareConfigMutation) ClearVerifiedAt() {
	m.verified_at = nil
	m.clearedFields[vmwareconfig.FieldVerifiedAt] = struct{}{}
}

// VerifiedAtCleared returns if the "verified_at" field was cleared in this mutation.
func (m *VmwareConfigMutation) VerifiedAtCleared() bool {
	_, ok := m.clearedFields[vmwareconfig.FieldVerifiedAt]
	return ok
}

// ResetVerifiedAt resets all changes to the "verified_at" field.
func (m *VmwareConfigMutation) ResetVerifiedAt() {
	m.verified_at = nil
	delete(m.clearedFields, vmwareconfig.FieldVerifiedAt)
}

// SetVersion sets the "version" field.
func (m *VmwareConfigMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *VmwareConfigMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the VmwareConfig entity.
// If the VmwareConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VmwareConfigMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *VmwareConfigMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *VmwareConfigMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *VmwareConfigMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// Where appends a list predicates to the VmwareConfigMutation builder.
func (m *VmwareConfigMutation) Where(ps ...predicate.VmwareConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VmwareConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VmwareConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VmwareConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VmwareConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VmwareConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VmwareConfig).
func (m *VmwareConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VmwareConfigMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, vmwareconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, vmwareconfig.FieldUpdatedAt)
	}
	if m.tenant_id != nil {
		fields = append(fields, vmwareconfig.FieldTenantID)
	}
	if m.vcenter_url != nil {
		fields = append(fields, vmwareconfig.FieldVcenterURL)
	}
	if m.username != nil {
		fields = append(fields, vmwareconfig.FieldUsername)
	}
	if m.password_enc != nil {
		fields = append(fields, vmwareconfig.FieldPasswordEnc)
	}
	if m.datacenter != nil {
		fields = append(fields, vmwareconfig.FieldDatacenter)
	}
	if m.cluster != nil {
		fields = append(fields, vmwareconfig.FieldCluster)
	}
	if m.datastore != nil {
		fields = append(fields, vmwareconfig.FieldDatastore)
	}
	if m.network != nil {
		fields = append(fields, vmwareconfig.FieldNetwork)
	}
	if m.template != nil {
		fields = append(fields, vmwareconfig.FieldTemplate)
	}
	if m.verified_at != nil {
		fields = append(fields, vmwareconfig.FieldVerifiedAt)
	}
	if m.version != nil {
		fields = append(fields, vmwareconfig.FieldVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VmwareConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vmwareconfig.FieldCreatedAt:
		return m.CreatedAt()
	case vmwareconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	case vmwareconfig.FieldTenantID:
		return m.TenantID()
	case vmwareconfig.FieldVcenterURL:
		return m.VcenterURL()
	case vmwareconfig.FieldUsername:
		return m.Username()
	case vmwareconfig.FieldPasswordEnc:
		return m.PasswordEnc()
	case vmwareconfig.FieldDatacenter:
		return m.Datacenter()
	case vmwareconfig.FieldCluster:
		return m.Cluster()
	case vmwareconfig.FieldDatastore:
		return m.Datastore()
	case vmwareconfig.FieldNetwork:
		return m.Network()
	case vmwareconfig.FieldTemplate:
		return m.Template()
	case vmwareconfig.FieldVerifiedAt:
		return m.VerifiedAt()
	case vmwareconfig.FieldVersion:
		return m.Version()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VmwareConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vmwareconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case vmwareconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case vmwareconfig.FieldTenantID:
		return m.OldTenantID(ctx)
	case vmwareconfig.FieldVcenterURL:
		return m.OldVcenterURL(ctx)
	case vmwareconfig.FieldUsername:
		return m.OldUsername(ctx)
	case vmwareconfig.FieldPasswordEnc:
		return m.OldPasswordEnc(ctx)
	case vmwareconfig.FieldDatacenter:
		return m.OldDatacenter(ctx)
	case vmwareconfig.FieldCluster:
		return m.OldCluster(ctx)
	case vmwareconfig.FieldDatastore:
		return m.OldDatastore(ctx)
	case vmwareconfig.FieldNetwork:
		return m.OldNetwork(ctx)
	case vmwareconfig.FieldTemplate:
		return m.OldTemplate(ctx)
	case vmwareconfig.FieldVerifiedAt:
		return m.OldVerifiedAt(ctx)
	case vmwareconfig.FieldVersion:
		return m.OldVersion(ctx)
	}
	return nil, fmt.Errorf("unknown VmwareConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VmwareConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vmwareconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case vmwareconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case vmwareconfig.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case vmwareconfig.FieldVcenterURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVcenterURL(v)
		return nil
	case vmwareconfig.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case vmwareconfig.FieldPasswordEnc:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordEnc(v)
		return nil
	case vmwareconfig.FieldDatacenter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatacenter(v)
		return nil
	case vmwareconfig.FieldCluster:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCluster(v)
		return nil
	case vmwareconfig.FieldDatastore:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatastore(v)
		return nil
	case vmwareconfig.FieldNetwork:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetwork(v)
		return nil
	case vmwareconfig.FieldTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplate(v)
		return nil
	case vmwareconfig.FieldVerifiedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedAt(v)
		return nil
	case vmwareconfig.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	}
	return fmt.Errorf("unknown VmwareConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VmwareConfigMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, vmwareconfig.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VmwareConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case vmwareconfig.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VmwareConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case vmwareconfig.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown VmwareConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VmwareConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vmwareconfig.FieldVerifiedAt) {
		fields = append(fields, vmwareconfig.FieldVerifiedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VmwareConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VmwareConfigMutation) ClearField(name string) error {
	switch name {
	case vmwareconfig.FieldVerifiedAt:
		m.ClearVerifiedAt()
		return nil
	}
	return fmt.Errorf("unknown VmwareConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VmwareConfigMutation) ResetField(name string) error {
	switch name {
	case vmwareconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case vmwareconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case vmwareconfig.FieldTenantID:
		m.ResetTenantID()
		return nil
	case vmwareconfig.FieldVcenterURL:
		m.ResetVcenterURL()
		return nil
	case vmwareconfig.FieldUsername:
		m.ResetUsername()
		return nil
	case vmwareconfig.FieldPasswordEnc:
		m.ResetPasswordEnc()
		return nil
	case vmwareconfig.FieldDatacenter:
		m.ResetDatacenter()
		return nil
	case vmwareconfig.FieldCluster:
		m.ResetCluster()
		return nil
	case vmwareconfig.FieldDatastore:
		m.ResetDatastore()
		return nil
	case vmwareconfig.FieldNetwork:
		m.ResetNetwork()
		return nil
	case vmwareconfig.FieldTemplate:
		m.ResetTemplate()
		return nil
	case vmwareconfig.FieldVerifiedAt:
		m.ResetVerifiedAt()
		return nil
	case vmwareconfig.FieldVersion:
		m.ResetVersion()
		return nil
	}
	return fmt.Errorf("unknown VmwareConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VmwareConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VmwareConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VmwareConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VmwareConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VmwareConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VmwareConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VmwareConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VmwareConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VmwareConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VmwareConfig edge %s", name)
}
