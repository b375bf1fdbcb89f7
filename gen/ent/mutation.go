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
	"github.com/Zoli1212/awsflow/gen/ent/billing"
	"github.com/Zoli1212/awsflow/gen/ent/history"
	"github.com/Zoli1212/awsflow/gen/ent/offer"
	"github.com/Zoli1212/awsflow/gen/ent/predicate"
	"github.com/Zoli1212/awsflow/gen/ent/pricelist"
	"github.com/Zoli1212/awsflow/gen/ent/requirement"
	"github.com/Zoli1212/awsflow/gen/ent/tenantpricelist"
	"github.com/Zoli1212/awsflow/gen/ent/user"
	"github.com/Zoli1212/awsflow/gen/ent/work"
	"github.com/Zoli1212/awsflow/internal/entity"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBilling         = "Billing"
	TypeHistory         = "History"
	TypeOffer           = "Offer"
	TypePriceList       = "PriceList"
	TypeRequirement     = "Requirement"
	TypeTenantPriceList = "TenantPriceList"
	TypeUser            = "User"
	TypeWork            = "Work"
)

// BillingMutation represents an operation that mutates the Billing nodes in the graph.
type BillingMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	tenant_email  *string
	title         *string
	amount        *float64
	addamount     *float64
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Billing, error)
	predicates    []predicate.Billing
}

var _ ent.Mutation = (*BillingMutation)(nil)

// billingOption allows management of the mutation configuration using functional options.
type billingOption func(*BillingMutation)

// newBillingMutation creates new mutation for the Billing entity.
func newBillingMutation(c config, op Op, opts ...billingOption) *BillingMutation {
	m := &BillingMutation{
		config:        c,
		op:            op,
		typ:           TypeBilling,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBillingID sets the ID field of the mutation.
func withBillingID(id uuid.UUID) billingOption {
	return func(m *BillingMutation) {
		var (
			err   error
			once  sync.Once
			value *Billing
		)
		m.oldValue = func(ctx context.Context) (*Billing, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Billing.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBilling sets the old Billing of the mutation.
func withBilling(node *Billing) billingOption {
	return func(m *BillingMutation) {
		m.oldValue = func(context.Context) (*Billing, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BillingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BillingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Billing entities.
func (m *BillingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BillingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BillingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Billing.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantEmail sets the "tenant_email" field.
func (m *BillingMutation) SetTenantEmail(s string) {
	m.tenant_email = &s
}

// TenantEmail returns the value of the "tenant_email" field in the mutation.
func (m *BillingMutation) TenantEmail() (r string, exists bool) {
	v := m.tenant_email
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantEmail returns the old "tenant_email" field's value of the Billing entity.
// If the Billing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingMutation) OldTenantEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantEmail: %w", err)
	}
	return oldValue.TenantEmail, nil
}

// ResetTenantEmail resets all changes to the "tenant_email" field.
func (m *BillingMutation) ResetTenantEmail() {
	m.tenant_email = nil
}

// SetTitle sets the "title" field.
func (m *BillingMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *BillingMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Billing entity.
// If the Billing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *BillingMutation) ResetTitle() {
	m.title = nil
}

// SetAmount sets the "amount" field.
func (m *BillingMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *BillingMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Billing entity.
// If the Billing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *BillingMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *BillingMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *BillingMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BillingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BillingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Billing entity.
// If the Billing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *BillingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BillingMutation builder.
func (m *BillingMutation) Where(ps ...predicate.Billing) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BillingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BillingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Billing, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BillingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BillingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Billing).
func (m *BillingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BillingMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.tenant_email != nil {
		fields = append(fields, billing.FieldTenantEmail)
	}
	if m.title != nil {
		fields = append(fields, billing.FieldTitle)
	}
	if m.amount != nil {
		fields = append(fields, billing.FieldAmount)
	}
	if m.created_at != nil {
		fields = append(fields, billing.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BillingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case billing.FieldTenantEmail:
		return m.TenantEmail()
	case billing.FieldTitle:
		return m.Title()
	case billing.FieldAmount:
		return m.Amount()
	case billing.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BillingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case billing.FieldTenantEmail:
		return m.OldTenantEmail(ctx)
	case billing.FieldTitle:
		return m.OldTitle(ctx)
	case billing.FieldAmount:
		return m.OldAmount(ctx)
	case billing.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Billing field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case billing.FieldTenantEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantEmail(v)
		return nil
	case billing.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case billing.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case billing.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Billing field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BillingMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, billing.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BillingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case billing.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case billing.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Billing numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BillingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BillingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BillingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Billing nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BillingMutation) ResetField(name string) error {
	switch name {
	case billing.FieldTenantEmail:
		m.ResetTenantEmail()
		return nil
	case billing.FieldTitle:
		m.ResetTitle()
		return nil
	case billing.FieldAmount:
		m.ResetAmount()
		return nil
	case billing.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Billing field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BillingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BillingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BillingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BillingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BillingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BillingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BillingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Billing unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BillingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Billing edge %s", name)
}

// HistoryMutation represents an operation that mutates the History nodes in the graph.
type HistoryMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	user_email    *string
	tenant_email  *string
	content       *string
	ai_agent_type *string
	file_type     *string
	file_name     *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*History, error)
	predicates    []predicate.History
}

var _ ent.Mutation = (*HistoryMutation)(nil)

// historyOption allows management of the mutation configuration using functional options.
type historyOption func(*HistoryMutation)

// newHistoryMutation creates new mutation for the History entity.
func newHistoryMutation(c config, op Op, opts ...historyOption) *HistoryMutation {
	m := &HistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHistoryID sets the ID field of the mutation.
func withHistoryID(id uuid.UUID) historyOption {
	return func(m *HistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *History
		)
		m.oldValue = func(ctx context.Context) (*History, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().History.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHistory sets the old History of the mutation.
func withHistory(node *History) historyOption {
	return func(m *HistoryMutation) {
		m.oldValue = func(context.Context) (*History, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of History entities.
func (m *HistoryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HistoryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HistoryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().History.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserEmail sets the "user_email" field.
func (m *HistoryMutation) SetUserEmail(s string) {
	m.user_email = &s
}

// UserEmail returns the value of the "user_email" field in the mutation.
func (m *HistoryMutation) UserEmail() (r string, exists bool) {
	v := m.user_email
	if v == nil {
		return
	}
	return *v, true
}

// OldUserEmail returns the old "user_email" field's value of the History entity.
// If the History object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HistoryMutation) OldUserEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserEmail: %w", err)
	}
	return oldValue.UserEmail, nil
}

// ResetUserEmail resets all changes to the "user_email" field.
func (m *HistoryMutation) ResetUserEmail() {
	m.user_email = nil
}

// SetTenantEmail sets the "tenant_email" field.
func (m *HistoryMutation) SetTenantEmail(s string) {
	m.tenant_email = &s
}

// TenantEmail returns the value of the "tenant_email" field in the mutation.
func (m *HistoryMutation) TenantEmail() (r string, exists bool) {
	v := m.tenant_email
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantEmail returns the old "tenant_email" field's value of the History entity.
// If the History object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HistoryMutation) OldTenantEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantEmail: %w", err)
	}
	return oldValue.TenantEmail, nil
}

// ResetTenantEmail resets all changes to the "tenant_email" field.
func (m *HistoryMutation) ResetTenantEmail() {
	m.tenant_email = nil
}

// SetContent sets the "content" field.
func (m *HistoryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *HistoryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the History entity.
// If the History object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HistoryMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *HistoryMutation) ResetContent() {
	m.content = nil
}

// SetAiAgentType sets the "ai_agent_type" field.
func (m *HistoryMutation) SetAiAgentType(s string) {
	m.ai_agent_type = &s
}

// AiAgentType returns the value of the "ai_agent_type" field in the mutation.
func (m *HistoryMutation) AiAgentType() (r string, exists bool) {
	v := m.ai_agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAiAgentType returns the old "ai_agent_type" field's value of the History entity.
// If the History object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HistoryMutation) OldAiAgentType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiAgentType: %w", err)
	}
	return oldValue.AiAgentType, nil
}

// ClearAiAgentType clears the value of the "ai_agent_type" field.
func (m *HistoryMutation) ClearAiAgentType() {
	m.ai_agent_type = nil
	m.clearedFields[history.FieldAiAgentType] = struct{}{}
}

// AiAgentTypeCleared returns if the "ai_agent_type" field was cleared in this mutation.
func (m *HistoryMutation) AiAgentTypeCleared() bool {
	_, ok := m.clearedFields[history.FieldAiAgentType]
	return ok
}

// ResetAiAgentType resets all changes to the "ai_agent_type" field.
func (m *HistoryMutation) ResetAiAgentType() {
	m.ai_agent_type = nil
	delete(m.clearedFields, history.FieldAiAgentType)
}

// SetFileType sets the "file_type" field.
func (m *HistoryMutation) SetFileType(s string) {
	m.file_type = &s
}

// FileType returns the value of the "file_type" field in the mutation.
func (m *HistoryMutation) FileType() (r string, exists bool) {
	v := m.file_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFileType returns the old "file_type" field's value of the History entity.
// If the History object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HistoryMutation) OldFileType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileType: %w", err)
	}
	return oldValue.FileType, nil
}

// ClearFileType clears the value of the "file_type" field.
func (m *HistoryMutation) ClearFileType() {
	m.file_type = nil
	m.clearedFields[history.FieldFileType] = struct{}{}
}

// FileTypeCleared returns if the "file_type" field was cleared in this mutation.
func (m *HistoryMutation) FileTypeCleared() bool {
	_, ok := m.clearedFields[history.FieldFileType]
	return ok
}

// ResetFileType resets all changes to the "file_type" field.
func (m *HistoryMutation) ResetFileType() {
	m.file_type = nil
	delete(m.clearedFields, history.FieldFileType)
}

// SetFileName sets the "file_name" field.
func (m *HistoryMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *HistoryMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the History entity.
// If the History object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HistoryMutation) OldFileName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ClearFileName clears the value of the "file_name" field.
func (m *HistoryMutation) ClearFileName() {
	m.file_name = nil
	m.clearedFields[history.FieldFileName] = struct{}{}
}

// FileNameCleared returns if the "file_name" field was cleared in this mutation.
func (m *HistoryMutation) FileNameCleared() bool {
	_, ok := m.clearedFields[history.FieldFileName]
	return ok
}

// ResetFileName resets all changes to the "file_name" field.
func (m *HistoryMutation) ResetFileName() {
	m.file_name = nil
	delete(m.clearedFields, history.FieldFileName)
}

// SetCreatedAt sets the "created_at" field.
func (m *HistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the History entity.
// If the History object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *HistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the HistoryMutation builder.
func (m *HistoryMutation) Where(ps ...predicate.History) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.History, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (History).
func (m *HistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HistoryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_email != nil {
		fields = append(fields, history.FieldUserEmail)
	}
	if m.tenant_email != nil {
		fields = append(fields, history.FieldTenantEmail)
	}
	if m.content != nil {
		fields = append(fields, history.FieldContent)
	}
	if m.ai_agent_type != nil {
		fields = append(fields, history.FieldAiAgentType)
	}
	if m.file_type != nil {
		fields = append(fields, history.FieldFileType)
	}
	if m.file_name != nil {
		fields = append(fields, history.FieldFileName)
	}
	if m.created_at != nil {
		fields = append(fields, history.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case history.FieldUserEmail:
		return m.UserEmail()
	case history.FieldTenantEmail:
		return m.TenantEmail()
	case history.FieldContent:
		return m.Content()
	case history.FieldAiAgentType:
		return m.AiAgentType()
	case history.FieldFileType:
		return m.FileType()
	case history.FieldFileName:
		return m.FileName()
	case history.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case history.FieldUserEmail:
		return m.OldUserEmail(ctx)
	case history.FieldTenantEmail:
		return m.OldTenantEmail(ctx)
	case history.FieldContent:
		return m.OldContent(ctx)
	case history.FieldAiAgentType:
		return m.OldAiAgentType(ctx)
	case history.FieldFileType:
		return m.OldFileType(ctx)
	case history.FieldFileName:
		return m.OldFileName(ctx)
	case history.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown History field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case history.FieldUserEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserEmail(v)
		return nil
	case history.FieldTenantEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantEmail(v)
		return nil
	case history.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case history.FieldAiAgentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiAgentType(v)
		return nil
	case history.FieldFileType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileType(v)
		return nil
	case history.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case history.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown History field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HistoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HistoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown History numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(history.FieldAiAgentType) {
		fields = append(fields, history.FieldAiAgentType)
	}
	if m.FieldCleared(history.FieldFileType) {
		fields = append(fields, history.FieldFileType)
	}
	if m.FieldCleared(history.FieldFileName) {
		fields = append(fields, history.FieldFileName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HistoryMutation) ClearField(name string) error {
	switch name {
	case history.FieldAiAgentType:
		m.ClearAiAgentType()
		return nil
	case history.FieldFileType:
		m.ClearFileType()
		return nil
	case history.FieldFileName:
		m.ClearFileName()
		return nil
	}
	return fmt.Errorf("unknown History nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HistoryMutation) ResetField(name string) error {
	switch name {
	case history.FieldUserEmail:
		m.ResetUserEmail()
		return nil
	case history.FieldTenantEmail:
		m.ResetTenantEmail()
		return nil
	case history.FieldContent:
		m.ResetContent()
		return nil
	case history.FieldAiAgentType:
		m.ResetAiAgentType()
		return nil
	case history.FieldFileType:
		m.ResetFileType()
		return nil
	case history.FieldFileName:
		m.ResetFileName()
		return nil
	case history.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown History field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HistoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HistoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HistoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown History unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HistoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown History edge %s", name)
}

// OfferMutation represents an operation that mutates the Offer nodes in the graph.
type OfferMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	record_id                  *string
	title                      *string
	status                     *string
	description                *string
	location                   *string
	total_price                *float64
	addtotal_price             *float64
	material_total             *float64
	addmaterial_total          *float64
	work_total                 *float64
	addwork_total              *float64
	items                      *[]entity.OfferItem
	appenditems                []entity.OfferItem
	notes                      *string
	offer_summary              *string
	estimated_duration         *string
	valid_until                *time.Time
	is_converted_from_existing *bool
	tenant_email               *string
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	requirement                *uuid.UUID
	clearedrequirement         bool
	done                       bool
	oldValue                   func(context.Context) (*Offer, error)
	predicates                 []predicate.Offer
}

var _ ent.Mutation = (*OfferMutation)(nil)

// offerOption allows management of the mutation configuration using functional options.
type offerOption func(*OfferMutation)

// newOfferMutation creates new mutation for the Offer entity.
func newOfferMutation(c config, op Op, opts ...offerOption) *OfferMutation {
	m := &OfferMutation{
		config:        c,
		op:            op,
		typ:           TypeOffer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOfferID sets the ID field of the mutation.
func withOfferID(id uuid.UUID) offerOption {
	return func(m *OfferMutation) {
		var (
			err   error
			once  sync.Once
			value *Offer
		)
		m.oldValue = func(ctx context.Context) (*Offer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Offer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOffer sets the old Offer of the mutation.
func withOffer(node *Offer) offerOption {
	return func(m *OfferMutation) {
		m.oldValue = func(context.Context) (*Offer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OfferMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OfferMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Offer entities.
func (m *OfferMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OfferMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OfferMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Offer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequirementID sets the "requirement_id" field.
func (m *OfferMutation) SetRequirementID(u uuid.UUID) {
	m.requirement = &u
}

// RequirementID returns the value of the "requirement_id" field in the mutation.
func (m *OfferMutation) RequirementID() (r uuid.UUID, exists bool) {
	v := m.requirement
	if v == nil {
		return
	}
	return *v, true
}

// OldRequirementID returns the old "requirement_id" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldRequirementID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequirementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequirementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequirementID: %w", err)
	}
	return oldValue.RequirementID, nil
}

// ResetRequirementID resets all changes to the "requirement_id" field.
func (m *OfferMutation) ResetRequirementID() {
	m.requirement = nil
}

// SetRecordID sets the "record_id" field.
func (m *OfferMutation) SetRecordID(s string) {
	m.record_id = &s
}

// RecordID returns the value of the "record_id" field in the mutation.
func (m *OfferMutation) RecordID() (r string, exists bool) {
	v := m.record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordID returns the old "record_id" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldRecordID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordID: %w", err)
	}
	return oldValue.RecordID, nil
}

// ResetRecordID resets all changes to the "record_id" field.
func (m *OfferMutation) ResetRecordID() {
	m.record_id = nil
}

// SetTitle sets the "title" field.
func (m *OfferMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *OfferMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *OfferMutation) ResetTitle() {
	m.title = nil
}

// SetStatus sets the "status" field.
func (m *OfferMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *OfferMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *OfferMutation) ResetStatus() {
	m.status = nil
}

// SetDescription sets the "description" field.
func (m *OfferMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *OfferMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *OfferMutation) ResetDescription() {
	m.description = nil
}

// SetLocation sets the "location" field.
func (m *OfferMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *OfferMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ResetLocation resets all changes to the "location" field.
func (m *OfferMutation) ResetLocation() {
	m.location = nil
}

// SetTotalPrice sets the "total_price" field.
func (m *OfferMutation) SetTotalPrice(f float64) {
	m.total_price = &f
	m.addtotal_price = nil
}

// TotalPrice returns the value of the "total_price" field in the mutation.
func (m *OfferMutation) TotalPrice() (r float64, exists bool) {
	v := m.total_price
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPrice returns the old "total_price" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldTotalPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPrice: %w", err)
	}
	return oldValue.TotalPrice, nil
}

// AddTotalPrice adds f to the "total_price" field.
func (m *OfferMutation) AddTotalPrice(f float64) {
	if m.addtotal_price != nil {
		*m.addtotal_price += f
	} else {
		m.addtotal_price = &f
	}
}

// AddedTotalPrice returns the value that was added to the "total_price" field in this mutation.
func (m *OfferMutation) AddedTotalPrice() (r float64, exists bool) {
	v := m.addtotal_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPrice resets all changes to the "total_price" field.
func (m *OfferMutation) ResetTotalPrice() {
	m.total_price = nil
	m.addtotal_price = nil
}

// SetMaterialTotal sets the "material_total" field.
func (m *OfferMutation) SetMaterialTotal(f float64) {
	m.material_total = &f
	m.addmaterial_total = nil
}

// MaterialTotal returns the value of the "material_total" field in the mutation.
func (m *OfferMutation) MaterialTotal() (r float64, exists bool) {
	v := m.material_total
	if v == nil {
		return
	}
	return *v, true
}

// OldMaterialTotal returns the old "material_total" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldMaterialTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaterialTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaterialTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaterialTotal: %w", err)
	}
	return oldValue.MaterialTotal, nil
}

// AddMaterialTotal adds f to the "material_total" field.
func (m *OfferMutation) AddMaterialTotal(f float64) {
	if m.addmaterial_total != nil {
		*m.addmaterial_total += f
	} else {
		m.addmaterial_total = &f
	}
}

// AddedMaterialTotal returns the value that was added to the "material_total" field in this mutation.
func (m *OfferMutation) AddedMaterialTotal() (r float64, exists bool) {
	v := m.addmaterial_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaterialTotal resets all changes to the "material_total" field.
func (m *OfferMutation) ResetMaterialTotal() {
	m.material_total = nil
	m.addmaterial_total = nil
}

// SetWorkTotal sets the "work_total" field.
func (m *OfferMutation) SetWorkTotal(f float64) {
	m.work_total = &f
	m.addwork_total = nil
}

// WorkTotal returns the value of the "work_total" field in the mutation.
func (m *OfferMutation) WorkTotal() (r float64, exists bool) {
	v := m.work_total
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkTotal returns the old "work_total" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldWorkTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkTotal: %w", err)
	}
	return oldValue.WorkTotal, nil
}

// AddWorkTotal adds f to the "work_total" field.
func (m *OfferMutation) AddWorkTotal(f float64) {
	if m.addwork_total != nil {
		*m.addwork_total += f
	} else {
		m.addwork_total = &f
	}
}

// AddedWorkTotal returns the value that was added to the "work_total" field in this mutation.
func (m *OfferMutation) AddedWorkTotal() (r float64, exists bool) {
	v := m.addwork_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetWorkTotal resets all changes to the "work_total" field.
func (m *OfferMutation) ResetWorkTotal() {
	m.work_total = nil
	m.addwork_total = nil
}

// SetItems sets the "items" field.
func (m *OfferMutation) SetItems(ei []entity.OfferItem) {
	m.items = &ei
	m.appenditems = nil
}

// Items returns the value of the "items" field in the mutation.
func (m *OfferMutation) Items() (r []entity.OfferItem, exists bool) {
	v := m.items
	if v == nil {
		return
	}
	return *v, true
}

// OldItems returns the old "items" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldItems(ctx context.Context) (v []entity.OfferItem, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItems: %w", err)
	}
	return oldValue.Items, nil
}

// AppendItems adds ei to the "items" field.
func (m *OfferMutation) AppendItems(ei []entity.OfferItem) {
	m.appenditems = append(m.appenditems, ei...)
}

// AppendedItems returns the list of values that were appended to the "items" field in this mutation.
func (m *OfferMutation) AppendedItems() ([]entity.OfferItem, bool) {
	if len(m.appenditems) == 0 {
		return nil, false
	}
	return m.appenditems, true
}

// ResetItems resets all changes to the "items" field.
func (m *OfferMutation) ResetItems() {
	m.items = nil
	m.appenditems = nil
}

// SetNotes sets the "notes" field.
func (m *OfferMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *OfferMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *OfferMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[offer.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *OfferMutation) NotesCleared() bool {
	_, ok := m.clearedFields[offer.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *OfferMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, offer.FieldNotes)
}

// SetOfferSummary sets the "offer_summary" field.
func (m *OfferMutation) SetOfferSummary(s string) {
	m.offer_summary = &s
}

// OfferSummary returns the value of the "offer_summary" field in the mutation.
func (m *OfferMutation) OfferSummary() (r string, exists bool) {
	v := m.offer_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldOfferSummary returns the old "offer_summary" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldOfferSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOfferSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOfferSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOfferSummary: %w", err)
	}
	return oldValue.OfferSummary, nil
}

// ClearOfferSummary clears the value of the "offer_summary" field.
func (m *OfferMutation) ClearOfferSummary() {
	m.offer_summary = nil
	m.clearedFields[offer.FieldOfferSummary] = struct{}{}
}

// OfferSummaryCleared returns if the "offer_summary" field was cleared in this mutation.
func (m *OfferMutation) OfferSummaryCleared() bool {
	_, ok := m.clearedFields[offer.FieldOfferSummary]
	return ok
}

// ResetOfferSummary resets all changes to the "offer_summary" field.
func (m *OfferMutation) ResetOfferSummary() {
	m.offer_summary = nil
	delete(m.clearedFields, offer.FieldOfferSummary)
}

// SetEstimatedDuration sets the "estimated_duration" field.
func (m *OfferMutation) SetEstimatedDuration(s string) {
	m.estimated_duration = &s
}

// EstimatedDuration returns the value of the "estimated_duration" field in the mutation.
func (m *OfferMutation) EstimatedDuration() (r string, exists bool) {
	v := m.estimated_duration
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedDuration returns the old "estimated_duration" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldEstimatedDuration(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedDuration: %w", err)
	}
	return oldValue.EstimatedDuration, nil
}

// ResetEstimatedDuration resets all changes to the "estimated_duration" field.
func (m *OfferMutation) ResetEstimatedDuration() {
	m.estimated_duration = nil
}

// SetValidUntil sets the "valid_until" field.
func (m *OfferMutation) SetValidUntil(t time.Time) {
	m.valid_until = &t
}

// ValidUntil returns the value of the "valid_until" field in the mutation.
func (m *OfferMutation) ValidUntil() (r time.Time, exists bool) {
	v := m.valid_until
	if v == nil {
		return
	}
	return *v, true
}

// OldValidUntil returns the old "valid_until" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldValidUntil(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidUntil: %w", err)
	}
	return oldValue.ValidUntil, nil
}

// ClearValidUntil clears the value of the "valid_until" field.
func (m *OfferMutation) ClearValidUntil() {
	m.valid_until = nil
	m.clearedFields[offer.FieldValidUntil] = struct{}{}
}

// ValidUntilCleared returns if the "valid_until" field was cleared in this mutation.
func (m *OfferMutation) ValidUntilCleared() bool {
	_, ok := m.clearedFields[offer.FieldValidUntil]
	return ok
}

// ResetValidUntil resets all changes to the "valid_until" field.
func (m *OfferMutation) ResetValidUntil() {
	m.valid_until = nil
	delete(m.clearedFields, offer.FieldValidUntil)
}

// SetIsConvertedFromExisting sets the "is_converted_from_existing" field.
func (m *OfferMutation) SetIsConvertedFromExisting(b bool) {
	m.is_converted_from_existing = &b
}

// IsConvertedFromExisting returns the value of the "is_converted_from_existing" field in the mutation.
func (m *OfferMutation) IsConvertedFromExisting() (r bool, exists bool) {
	v := m.is_converted_from_existing
	if v == nil {
		return
	}
	return *v, true
}

// OldIsConvertedFromExisting returns the old "is_converted_from_existing" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldIsConvertedFromExisting(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsConvertedFromExisting is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsConvertedFromExisting requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsConvertedFromExisting: %w", err)
	}
	return oldValue.IsConvertedFromExisting, nil
}

// ResetIsConvertedFromExisting resets all changes to the "is_converted_from_existing" field.
func (m *OfferMutation) ResetIsConvertedFromExisting() {
	m.is_converted_from_existing = nil
}

// SetTenantEmail sets the "tenant_email" field.
func (m *OfferMutation) SetTenantEmail(s string) {
	m.tenant_email = &s
}

// TenantEmail returns the value of the "tenant_email" field in the mutation.
func (m *OfferMutation) TenantEmail() (r string, exists bool) {
	v := m.tenant_email
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantEmail returns the old "tenant_email" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldTenantEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantEmail: %w", err)
	}
	return oldValue.TenantEmail, nil
}

// ResetTenantEmail resets all changes to the "tenant_email" field.
func (m *OfferMutation) ResetTenantEmail() {
	m.tenant_email = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OfferMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OfferMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *OfferMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OfferMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OfferMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *OfferMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRequirement clears the "requirement" edge to the Requirement entity.
func (m *OfferMutation) ClearRequirement() {
	m.clearedrequirement = true
	m.clearedFields[offer.FieldRequirementID] = struct{}{}
}

// RequirementCleared reports if the "requirement" edge to the Requirement entity was cleared.
func (m *OfferMutation) RequirementCleared() bool {
	return m.clearedrequirement
}

// RequirementIDs returns the "requirement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequirementID instead. It exists only for internal usage by the builders.
func (m *OfferMutation) RequirementIDs() (ids []uuid.UUID) {
	if id := m.requirement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequirement resets all changes to the "requirement" edge.
func (m *OfferMutation) ResetRequirement() {
	m.requirement = nil
	m.clearedrequirement = false
}

// Where appends a list predicates to the OfferMutation builder.
func (m *OfferMutation) Where(ps ...predicate.Offer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OfferMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OfferMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Offer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OfferMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OfferMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Offer).
func (m *OfferMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OfferMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.requirement != nil {
		fields = append(fields, offer.FieldRequirementID)
	}
	if m.record_id != nil {
		fields = append(fields, offer.FieldRecordID)
	}
	if m.title != nil {
		fields = append(fields, offer.FieldTitle)
	}
	if m.status != nil {
		fields = append(fields, offer.FieldStatus)
	}
	if m.description != nil {
		fields = append(fields, offer.FieldDescription)
	}
	if m.location != nil {
		fields = append(fields, offer.FieldLocation)
	}
	if m.total_price != nil {
		fields = append(fields, offer.FieldTotalPrice)
	}
	if m.material_total != nil {
		fields = append(fields, offer.FieldMaterialTotal)
	}
	if m.work_total != nil {
		fields = append(fields, offer.FieldWorkTotal)
	}
	if m.items != nil {
		fields = append(fields, offer.FieldItems)
	}
	if m.notes != nil {
		fields = append(fields, offer.FieldNotes)
	}
	if m.offer_summary != nil {
		fields = append(fields, offer.FieldOfferSummary)
	}
	if m.estimated_duration != nil {
		fields = append(fields, offer.FieldEstimatedDuration)
	}
	if m.valid_until != nil {
		fields = append(fields, offer.FieldValidUntil)
	}
	if m.is_converted_from_existing != nil {
		fields = append(fields, offer.FieldIsConvertedFromExisting)
	}
	if m.tenant_email != nil {
		fields = append(fields, offer.FieldTenantEmail)
	}
	if m.created_at != nil {
		fields = append(fields, offer.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, offer.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OfferMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case offer.FieldRequirementID:
		return m.RequirementID()
	case offer.FieldRecordID:
		return m.RecordID()
	case offer.FieldTitle:
		return m.Title()
	case offer.FieldStatus:
		return m.Status()
	case offer.FieldDescription:
		return m.Description()
	case offer.FieldLocation:
		return m.Location()
	case offer.FieldTotalPrice:
		return m.TotalPrice()
	case offer.FieldMaterialTotal:
		return m.MaterialTotal()
	case offer.FieldWorkTotal:
		return m.WorkTotal()
	case offer.FieldItems:
		return m.Items()
	case offer.FieldNotes:
		return m.Notes()
	case offer.FieldOfferSummary:
		return m.OfferSummary()
	case offer.FieldEstimatedDuration:
		return m.EstimatedDuration()
	case offer.FieldValidUntil:
		return m.ValidUntil()
	case offer.FieldIsConvertedFromExisting:
		return m.IsConvertedFromExisting()
	case offer.FieldTenantEmail:
		return m.TenantEmail()
	case offer.FieldCreatedAt:
		return m.CreatedAt()
	case offer.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OfferMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case offer.FieldRequirementID:
		return m.OldRequirementID(ctx)
	case offer.FieldRecordID:
		return m.OldRecordID(ctx)
	case offer.FieldTitle:
		return m.OldTitle(ctx)
	case offer.FieldStatus:
		return m.OldStatus(ctx)
	case offer.FieldDescription:
		return m.OldDescription(ctx)
	case offer.FieldLocation:
		return m.OldLocation(ctx)
	case offer.FieldTotalPrice:
		return m.OldTotalPrice(ctx)
	case offer.FieldMaterialTotal:
		return m.OldMaterialTotal(ctx)
	case offer.FieldWorkTotal:
		return m.OldWorkTotal(ctx)
	case offer.FieldItems:
		return m.OldItems(ctx)
	case offer.FieldNotes:
		return m.OldNotes(ctx)
	case offer.FieldOfferSummary:
		return m.OldOfferSummary(ctx)
	case offer.FieldEstimatedDuration:
		return m.OldEstimatedDuration(ctx)
	case offer.FieldValidUntil:
		return m.OldValidUntil(ctx)
	case offer.FieldIsConvertedFromExisting:
		return m.OldIsConvertedFromExisting(ctx)
	case offer.FieldTenantEmail:
		return m.OldTenantEmail(ctx)
	case offer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case offer.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Offer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OfferMutation) SetField(name string, value ent.Value) error {
	switch name {
	case offer.FieldRequirementID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequirementID(v)
		return nil
	case offer.FieldRecordID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordID(v)
		return nil
	case offer.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case offer.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case offer.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case offer.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case offer.FieldTotalPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPrice(v)
		return nil
	case offer.FieldMaterialTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaterialTotal(v)
		return nil
	case offer.FieldWorkTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkTotal(v)
		return nil
	case offer.FieldItems:
		v, ok := value.([]entity.OfferItem)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItems(v)
		return nil
	case offer.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case offer.FieldOfferSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOfferSummary(v)
		return nil
	case offer.FieldEstimatedDuration:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedDuration(v)
		return nil
	case offer.FieldValidUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidUntil(v)
		return nil
	case offer.FieldIsConvertedFromExisting:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsConvertedFromExisting(v)
		return nil
	case offer.FieldTenantEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantEmail(v)
		return nil
	case offer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case offer.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Offer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OfferMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_price != nil {
		fields = append(fields, offer.FieldTotalPrice)
	}
	if m.addmaterial_total != nil {
		fields = append(fields, offer.FieldMaterialTotal)
	}
	if m.addwork_total != nil {
		fields = append(fields, offer.FieldWorkTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OfferMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case offer.FieldTotalPrice:
		return m.AddedTotalPrice()
	case offer.FieldMaterialTotal:
		return m.AddedMaterialTotal()
	case offer.FieldWorkTotal:
		return m.AddedWorkTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OfferMutation) AddField(name string, value ent.Value) error {
	switch name {
	case offer.FieldTotalPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPrice(v)
		return nil
	case offer.FieldMaterialTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaterialTotal(v)
		return nil
	case offer.FieldWorkTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWorkTotal(v)
		return nil
	}
	return fmt.Errorf("unknown Offer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OfferMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(offer.FieldNotes) {
		fields = append(fields, offer.FieldNotes)
	}
	if m.FieldCleared(offer.FieldOfferSummary) {
		fields = append(fields, offer.FieldOfferSummary)
	}
	if m.FieldCleared(offer.FieldValidUntil) {
		fields = append(fields, offer.FieldValidUntil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OfferMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OfferMutation) ClearField(name string) error {
	switch name {
	case offer.FieldNotes:
		m.ClearNotes()
		return nil
	case offer.FieldOfferSummary:
		m.ClearOfferSummary()
		return nil
	case offer.FieldValidUntil:
		m.ClearValidUntil()
		return nil
	}
	return fmt.Errorf("unknown Offer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OfferMutation) ResetField(name string) error {
	switch name {
	case offer.FieldRequirementID:
		m.ResetRequirementID()
		return nil
	case offer.FieldRecordID:
		m.ResetRecordID()
		return nil
	case offer.FieldTitle:
		m.ResetTitle()
		return nil
	case offer.FieldStatus:
		m.ResetStatus()
		return nil
	case offer.FieldDescription:
		m.ResetDescription()
		return nil
	case offer.FieldLocation:
		m.ResetLocation()
		return nil
	case offer.FieldTotalPrice:
		m.ResetTotalPrice()
		return nil
	case offer.FieldMaterialTotal:
		m.ResetMaterialTotal()
		return nil
	case offer.FieldWorkTotal:
		m.ResetWorkTotal()
		return nil
	case offer.FieldItems:
		m.ResetItems()
		return nil
	case offer.FieldNotes:
		m.ResetNotes()
		return nil
	case offer.FieldOfferSummary:
		m.ResetOfferSummary()
		return nil
	case offer.FieldEstimatedDuration:
		m.ResetEstimatedDuration()
		return nil
	case offer.FieldValidUntil:
		m.ResetValidUntil()
		return nil
	case offer.FieldIsConvertedFromExisting:
		m.ResetIsConvertedFromExisting()
		return nil
	case offer.FieldTenantEmail:
		m.ResetTenantEmail()
		return nil
	case offer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case offer.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Offer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OfferMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.requirement != nil {
		edges = append(edges, offer.EdgeRequirement)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OfferMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case offer.EdgeRequirement:
		if id := m.requirement; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OfferMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OfferMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OfferMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequirement {
		edges = append(edges, offer.EdgeRequirement)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OfferMutation) EdgeCleared(name string) bool {
	switch name {
	case offer.EdgeRequirement:
		return m.clearedrequirement
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OfferMutation) ClearEdge(name string) error {
	switch name {
	case offer.EdgeRequirement:
		m.ClearRequirement()
		return nil
	}
	return fmt.Errorf("unknown Offer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OfferMutation) ResetEdge(name string) error {
	switch name {
	case offer.EdgeRequirement:
		m.ResetRequirement()
		return nil
	}
	return fmt.Errorf("unknown Offer edge %s", name)
}

// PriceListMutation represents an operation that mutates the PriceList nodes in the graph.
type PriceListMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	category         *string
	task             *string
	unit             *string
	labor_cost       *float64
	addlabor_cost    *float64
	material_cost    *float64
	addmaterial_cost *float64
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*PriceList, error)
	predicates       []predicate.PriceList
}

var _ ent.Mutation = (*PriceListMutation)(nil)

// pricelistOption allows management of the mutation configuration using functional options.
type pricelistOption func(*PriceListMutation)

// newPriceListMutation creates new mutation for the PriceList entity.
func newPriceListMutation(c config, op Op, opts ...pricelistOption) *PriceListMutation {
	m := &PriceListMutation{
		config:        c,
		op:            op,
		typ:           TypePriceList,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPriceListID sets the ID field of the mutation.
func withPriceListID(id uuid.UUID) pricelistOption {
	return func(m *PriceListMutation) {
		var (
			err   error
			once  sync.Once
			value *PriceList
		)
		m.oldValue = func(ctx context.Context) (*PriceList, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PriceList.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPriceList sets the old PriceList of the mutation.
func withPriceList(node *PriceList) pricelistOption {
	return func(m *PriceListMutation) {
		m.oldValue = func(context.Context) (*PriceList, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PriceListMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PriceListMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PriceList entities.
func (m *PriceListMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PriceListMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PriceListMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PriceList.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCategory sets the "category" field.
func (m *PriceListMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *PriceListMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the PriceList entity.
// If the PriceList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceListMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *PriceListMutation) ResetCategory() {
	m.category = nil
}

// SetTask sets the "task" field.
func (m *PriceListMutation) SetTask(s string) {
	m.task = &s
}

// Task returns the value of the "task" field in the mutation.
func (m *PriceListMutation) Task() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTask returns the old "task" field's value of the PriceList entity.
// If the PriceList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceListMutation) OldTask(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTask is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTask requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTask: %w", err)
	}
	return oldValue.Task, nil
}

// ResetTask resets all changes to the "task" field.
func (m *PriceListMutation) ResetTask() {
	m.task = nil
}

// SetUnit sets the "unit" field.
func (m *PriceListMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *PriceListMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the PriceList entity.
// If the PriceList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceListMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ResetUnit resets all changes to the "unit" field.
func (m *PriceListMutation) ResetUnit() {
	m.unit = nil
}

// SetLaborCost sets the "labor_cost" field.
func (m *PriceListMutation) SetLaborCost(f float64) {
	m.labor_cost = &f
	m.addlabor_cost = nil
}

// LaborCost returns the value of the "labor_cost" field in the mutation.
func (m *PriceListMutation) LaborCost() (r float64, exists bool) {
	v := m.labor_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldLaborCost returns the old "labor_cost" field's value of the PriceList entity.
// If the PriceList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceListMutation) OldLaborCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLaborCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLaborCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLaborCost: %w", err)
	}
	return oldValue.LaborCost, nil
}

// AddLaborCost adds f to the "labor_cost" field.
func (m *PriceListMutation) AddLaborCost(f float64) {
	if m.addlabor_cost != nil {
		*m.addlabor_cost += f
	} else {
		m.addlabor_cost = &f
	}
}

// AddedLaborCost returns the value that was added to the "labor_cost" field in this mutation.
func (m *PriceListMutation) AddedLaborCost() (r float64, exists bool) {
	v := m.addlabor_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetLaborCost resets all changes to the "labor_cost" field.
func (m *PriceListMutation) ResetLaborCost() {
	m.labor_cost = nil
	m.addlabor_cost = nil
}

// SetMaterialCost sets the "material_cost" field.
func (m *PriceListMutation) SetMaterialCost(f float64) {
	m.material_cost = &f
	m.addmaterial_cost = nil
}

// MaterialCost returns the value of the "material_cost" field in the mutation.
func (m *PriceListMutation) MaterialCost() (r float64, exists bool) {
	v := m.material_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldMaterialCost returns the old "material_cost" field's value of the PriceList entity.
// If the PriceList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceListMutation) OldMaterialCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaterialCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaterialCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaterialCost: %w", err)
	}
	return oldValue.MaterialCost, nil
}

// AddMaterialCost adds f to the "material_cost" field.
func (m *PriceListMutation) AddMaterialCost(f float64) {
	if m.addmaterial_cost != nil {
		*m.addmaterial_cost += f
	} else {
		m.addmaterial_cost = &f
	}
}

// AddedMaterialCost returns the value that was added to the "material_cost" field in this mutation.
func (m *PriceListMutation) AddedMaterialCost() (r float64, exists bool) {
	v := m.addmaterial_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaterialCost resets all changes to the "material_cost" field.
func (m *PriceListMutation) ResetMaterialCost() {
	m.material_cost = nil
	m.addmaterial_cost = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PriceListMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PriceListMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PriceList entity.
// If the PriceList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceListMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PriceListMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PriceListMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PriceListMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PriceList entity.
// If the PriceList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceListMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PriceListMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PriceListMutation builder.
func (m *PriceListMutation) Where(ps ...predicate.PriceList) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PriceListMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PriceListMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PriceList, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PriceListMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PriceListMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PriceList).
func (m *PriceListMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PriceListMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.category != nil {
		fields = append(fields, pricelist.FieldCategory)
	}
	if m.task != nil {
		fields = append(fields, pricelist.FieldTask)
	}
	if m.unit != nil {
		fields = append(fields, pricelist.FieldUnit)
	}
	if m.labor_cost != nil {
		fields = append(fields, pricelist.FieldLaborCost)
	}
	if m.material_cost != nil {
		fields = append(fields, pricelist.FieldMaterialCost)
	}
	if m.created_at != nil {
		fields = append(fields, pricelist.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pricelist.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PriceListMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pricelist.FieldCategory:
		return m.Category()
	case pricelist.FieldTask:
		return m.Task()
	case pricelist.FieldUnit:
		return m.Unit()
	case pricelist.FieldLaborCost:
		return m.LaborCost()
	case pricelist.FieldMaterialCost:
		return m.MaterialCost()
	case pricelist.FieldCreatedAt:
		return m.CreatedAt()
	case pricelist.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PriceListMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pricelist.FieldCategory:
		return m.OldCategory(ctx)
	case pricelist.FieldTask:
		return m.OldTask(ctx)
	case pricelist.FieldUnit:
		return m.OldUnit(ctx)
	case pricelist.FieldLaborCost:
		return m.OldLaborCost(ctx)
	case pricelist.FieldMaterialCost:
		return m.OldMaterialCost(ctx)
	case pricelist.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pricelist.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PriceList field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PriceListMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pricelist.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case pricelist.FieldTask:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTask(v)
		return nil
	case pricelist.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case pricelist.FieldLaborCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLaborCost(v)
		return nil
	case pricelist.FieldMaterialCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaterialCost(v)
		return nil
	case pricelist.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pricelist.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PriceList field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PriceListMutation) AddedFields() []string {
	var fields []string
	if m.addlabor_cost != nil {
		fields = append(fields, pricelist.FieldLaborCost)
	}
	if m.addmaterial_cost != nil {
		fields = append(fields, pricelist.FieldMaterialCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PriceListMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pricelist.FieldLaborCost:
		return m.AddedLaborCost()
	case pricelist.FieldMaterialCost:
		return m.AddedMaterialCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PriceListMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pricelist.FieldLaborCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLaborCost(v)
		return nil
	case pricelist.FieldMaterialCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaterialCost(v)
		return nil
	}
	return fmt.Errorf("unknown PriceList numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PriceListMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PriceListMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PriceListMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PriceList nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PriceListMutation) ResetField(name string) error {
	switch name {
	case pricelist.FieldCategory:
		m.ResetCategory()
		return nil
	case pricelist.FieldTask:
		m.ResetTask()
		return nil
	case pricelist.FieldUnit:
		m.ResetUnit()
		return nil
	case pricelist.FieldLaborCost:
		m.ResetLaborCost()
		return nil
	case pricelist.FieldMaterialCost:
		m.ResetMaterialCost()
		return nil
	case pricelist.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pricelist.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PriceList field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PriceListMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PriceListMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PriceListMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PriceListMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PriceListMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PriceListMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PriceListMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PriceList unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PriceListMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PriceList edge %s", name)
}

// RequirementMutation represents an operation that mutates the Requirement nodes in the graph.
type RequirementMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	title             *string
	description       *string
	version_number    *int
	addversion_number *int
	update_count      *int
	addupdate_count   *int
	question_count    *int
	addquestion_count *int
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	work              *uuid.UUID
	clearedwork       bool
	offers            map[uuid.UUID]struct{}
	removedoffers     map[uuid.UUID]struct{}
	clearedoffers     bool
	done              bool
	oldValue          func(context.Context) (*Requirement, error)
	predicates        []predicate.Requirement
}

var _ ent.Mutation = (*RequirementMutation)(nil)

// requirementOption allows management of the mutation configuration using functional options.
type requirementOption func(*RequirementMutation)

// newRequirementMutation creates new mutation for the Requirement entity.
func newRequirementMutation(c config, op Op, opts ...requirementOption) *RequirementMutation {
	m := &RequirementMutation{
		config:        c,
		op:            op,
		typ:           TypeRequirement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequirementID sets the ID field of the mutation.
func withRequirementID(id uuid.UUID) requirementOption {
	return func(m *RequirementMutation) {
		var (
			err   error
			once  sync.Once
			value *Requirement
		)
		m.oldValue = func(ctx context.Context) (*Requirement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Requirement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequirement sets the old Requirement of the mutation.
func withRequirement(node *Requirement) requirementOption {
	return func(m *RequirementMutation) {
		m.oldValue = func(context.Context) (*Requirement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequirementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequirementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Requirement entities.
func (m *RequirementMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequirementMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequirementMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Requirement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkID sets the "work_id" field.
func (m *RequirementMutation) SetWorkID(u uuid.UUID) {
	m.work = &u
}

// WorkID returns the value of the "work_id" field in the mutation.
func (m *RequirementMutation) WorkID() (r uuid.UUID, exists bool) {
	v := m.work
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkID returns the old "work_id" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldWorkID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkID: %w", err)
	}
	return oldValue.WorkID, nil
}

// ResetWorkID resets all changes to the "work_id" field.
func (m *RequirementMutation) ResetWorkID() {
	m.work = nil
}

// SetTitle sets the "title" field.
func (m *RequirementMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RequirementMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *RequirementMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *RequirementMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RequirementMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *RequirementMutation) ResetDescription() {
	m.description = nil
}

// SetVersionNumber sets the "version_number" field.
func (m *RequirementMutation) SetVersionNumber(i int) {
	m.version_number = &i
	m.addversion_number = nil
}

// VersionNumber returns the value of the "version_number" field in the mutation.
func (m *RequirementMutation) VersionNumber() (r int, exists bool) {
	v := m.version_number
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionNumber returns the old "version_number" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldVersionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionNumber: %w", err)
	}
	return oldValue.VersionNumber, nil
}

// AddVersionNumber adds i to the "version_number" field.
func (m *RequirementMutation) AddVersionNumber(i int) {
	if m.addversion_number != nil {
		*m.addversion_number += i
	} else {
		m.addversion_number = &i
	}
}

// AddedVersionNumber returns the value that was added to the "version_number" field in this mutation.
func (m *RequirementMutation) AddedVersionNumber() (r int, exists bool) {
	v := m.addversion_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersionNumber resets all changes to the "version_number" field.
func (m *RequirementMutation) ResetVersionNumber() {
	m.version_number = nil
	m.addversion_number = nil
}

// SetUpdateCount sets the "update_count" field.
func (m *RequirementMutation) SetUpdateCount(i int) {
	m.update_count = &i
	m.addupdate_count = nil
}

// UpdateCount returns the value of the "update_count" field in the mutation.
func (m *RequirementMutation) UpdateCount() (r int, exists bool) {
	v := m.update_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateCount returns the old "update_count" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldUpdateCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateCount: %w", err)
	}
	return oldValue.UpdateCount, nil
}

// AddUpdateCount adds i to the "update_count" field.
func (m *RequirementMutation) AddUpdateCount(i int) {
	if m.addupdate_count != nil {
		*m.addupdate_count += i
	} else {
		m.addupdate_count = &i
	}
}

// AddedUpdateCount returns the value that was added to the "update_count" field in this mutation.
func (m *RequirementMutation) AddedUpdateCount() (r int, exists bool) {
	v := m.addupdate_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdateCount resets all changes to the "update_count" field.
func (m *RequirementMutation) ResetUpdateCount() {
	m.update_count = nil
	m.addupdate_count = nil
}

// SetQuestionCount sets the "question_count" field.
func (m *RequirementMutation) SetQuestionCount(i int) {
	m.question_count = &i
	m.addquestion_count = nil
}

// QuestionCount returns the value of the "question_count" field in the mutation.
func (m *RequirementMutation) QuestionCount() (r int, exists bool) {
	v := m.question_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionCount returns the old "question_count" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldQuestionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionCount: %w", err)
	}
	return oldValue.QuestionCount, nil
}

// AddQuestionCount adds i to the "question_count" field.
func (m *RequirementMutation) AddQuestionCount(i int) {
	if m.addquestion_count != nil {
		*m.addquestion_count += i
	} else {
		m.addquestion_count = &i
	}
}

// AddedQuestionCount returns the value that was added to the "question_count" field in this mutation.
func (m *RequirementMutation) AddedQuestionCount() (r int, exists bool) {
	v := m.addquestion_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionCount resets all changes to the "question_count" field.
func (m *RequirementMutation) ResetQuestionCount() {
	m.question_count = nil
	m.addquestion_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RequirementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RequirementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RequirementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RequirementMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RequirementMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Requirement entity.
// If the Requirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequirementMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RequirementMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWork clears the "work" edge to the Work entity.
func (m *RequirementMutation) ClearWork() {
	m.clearedwork = true
	m.clearedFields[requirement.FieldWorkID] = struct{}{}
}

// WorkCleared reports if the "work" edge to the Work entity was cleared.
func (m *RequirementMutation) WorkCleared() bool {
	return m.clearedwork
}

// WorkIDs returns the "work" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkID instead. It exists only for internal usage by the builders.
func (m *RequirementMutation) WorkIDs() (ids []uuid.UUID) {
	if id := m.work; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWork resets all changes to the "work" edge.
func (m *RequirementMutation) ResetWork() {
	m.work = nil
	m.clearedwork = false
}

// AddOfferIDs adds the "offers" edge to the Offer entity by ids.
func (m *RequirementMutation) AddOfferIDs(ids ...uuid.UUID) {
	if m.offers == nil {
		m.offers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.offers[ids[i]] = struct{}{}
	}
}

// ClearOffers clears the "offers" edge to the Offer entity.
func (m *RequirementMutation) ClearOffers() {
	m.clearedoffers = true
}

// OffersCleared reports if the "offers" edge to the Offer entity was cleared.
func (m *RequirementMutation) OffersCleared() bool {
	return m.clearedoffers
}

// RemoveOfferIDs removes the "offers" edge to the Offer entity by IDs.
func (m *RequirementMutation) RemoveOfferIDs(ids ...uuid.UUID) {
	if m.removedoffers == nil {
		m.removedoffers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.offers, ids[i])
		m.removedoffers[ids[i]] = struct{}{}
	}
}

// RemovedOffers returns the removed IDs of the "offers" edge to the Offer entity.
func (m *RequirementMutation) RemovedOffersIDs() (ids []uuid.UUID) {
	for id := range m.removedoffers {
		ids = append(ids, id)
	}
	return
}

// OffersIDs returns the "offers" edge IDs in the mutation.
func (m *RequirementMutation) OffersIDs() (ids []uuid.UUID) {
	for id := range m.offers {
		ids = append(ids, id)
	}
	return
}

// ResetOffers resets all changes to the "offers" edge.
func (m *RequirementMutation) ResetOffers() {
	m.offers = nil
	m.clearedoffers = false
	m.removedoffers = nil
}

// Where appends a list predicates to the RequirementMutation builder.
func (m *RequirementMutation) Where(ps ...predicate.Requirement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequirementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequirementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Requirement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequirementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequirementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Requirement).
func (m *RequirementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequirementMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.work != nil {
		fields = append(fields, requirement.FieldWorkID)
	}
	if m.title != nil {
		fields = append(fields, requirement.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, requirement.FieldDescription)
	}
	if m.version_number != nil {
		fields = append(fields, requirement.FieldVersionNumber)
	}
	if m.update_count != nil {
		fields = append(fields, requirement.FieldUpdateCount)
	}
	if m.question_count != nil {
		fields = append(fields, requirement.FieldQuestionCount)
	}
	if m.created_at != nil {
		fields = append(fields, requirement.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, requirement.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequirementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case requirement.FieldWorkID:
		return m.WorkID()
	case requirement.FieldTitle:
		return m.Title()
	case requirement.FieldDescription:
		return m.Description()
	case requirement.FieldVersionNumber:
		return m.VersionNumber()
	case requirement.FieldUpdateCount:
		return m.UpdateCount()
	case requirement.FieldQuestionCount:
		return m.QuestionCount()
	case requirement.FieldCreatedAt:
		return m.CreatedAt()
	case requirement.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequirementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case requirement.FieldWorkID:
		return m.OldWorkID(ctx)
	case requirement.FieldTitle:
		return m.OldTitle(ctx)
	case requirement.FieldDescription:
		return m.OldDescription(ctx)
	case requirement.FieldVersionNumber:
		return m.OldVersionNumber(ctx)
	case requirement.FieldUpdateCount:
		return m.OldUpdateCount(ctx)
	case requirement.FieldQuestionCount:
		return m.OldQuestionCount(ctx)
	case requirement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case requirement.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Requirement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequirementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case requirement.FieldWorkID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkID(v)
		return nil
	case requirement.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case requirement.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case requirement.FieldVersionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionNumber(v)
		return nil
	case requirement.FieldUpdateCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateCount(v)
		return nil
	case requirement.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionCount(v)
		return nil
	case requirement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case requirement.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Requirement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequirementMutation) AddedFields() []string {
	var fields []string
	if m.addversion_number != nil {
		fields = append(fields, requirement.FieldVersionNumber)
	}
	if m.addupdate_count != nil {
		fields = append(fields, requirement.FieldUpdateCount)
	}
	if m.addquestion_count != nil {
		fields = append(fields, requirement.FieldQuestionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequirementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case requirement.FieldVersionNumber:
		return m.AddedVersionNumber()
	case requirement.FieldUpdateCount:
		return m.AddedUpdateCount()
	case requirement.FieldQuestionCount:
		return m.AddedQuestionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequirementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case requirement.FieldVersionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersionNumber(v)
		return nil
	case requirement.FieldUpdateCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdateCount(v)
		return nil
	case requirement.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionCount(v)
		return nil
	}
	return fmt.Errorf("unknown Requirement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequirementMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequirementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequirementMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Requirement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequirementMutation) ResetField(name string) error {
	switch name {
	case requirement.FieldWorkID:
		m.ResetWorkID()
		return nil
	case requirement.FieldTitle:
		m.ResetTitle()
		return nil
	case requirement.FieldDescription:
		m.ResetDescription()
		return nil
	case requirement.FieldVersionNumber:
		m.ResetVersionNumber()
		return nil
	case requirement.FieldUpdateCount:
		m.ResetUpdateCount()
		return nil
	case requirement.FieldQuestionCount:
		m.ResetQuestionCount()
		return nil
	case requirement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case requirement.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Requirement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequirementMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.work != nil {
		edges = append(edges, requirement.EdgeWork)
	}
	if m.offers != nil {
		edges = append(edges, requirement.EdgeOffers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequirementMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case requirement.EdgeWork:
		if id := m.work; id != nil {
			return []ent.Value{*id}
		}
	case requirement.EdgeOffers:
		ids := make([]ent.Value, 0, len(m.offers))
		for id := range m.offers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequirementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedoffers != nil {
		edges = append(edges, requirement.EdgeOffers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequirementMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case requirement.EdgeOffers:
		ids := make([]ent.Value, 0, len(m.removedoffers))
		for id := range m.removedoffers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequirementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedwork {
		edges = append(edges, requirement.EdgeWork)
	}
	if m.clearedoffers {
		edges = append(edges, requirement.EdgeOffers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequirementMutation) EdgeCleared(name string) bool {
	switch name {
	case requirement.EdgeWork:
		return m.clearedwork
	case requirement.EdgeOffers:
		return m.clearedoffers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequirementMutation) ClearEdge(name string) error {
	switch name {
	case requirement.EdgeWork:
		m.ClearWork()
		return nil
	}
	return fmt.Errorf("unknown Requirement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequirementMutation) ResetEdge(name string) error {
	switch name {
	case requirement.EdgeWork:
		m.ResetWork()
		return nil
	case requirement.EdgeOffers:
		m.ResetOffers()
		return nil
	}
	return fmt.Errorf("unknown Requirement edge %s", name)
}

// TenantPriceListMutation represents an operation that mutates the TenantPriceList nodes in the graph.
type TenantPriceListMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	tenant_email     *string
	category         *string
	task             *string
	unit             *string
	labor_cost       *float64
	addlabor_cost    *float64
	material_cost    *float64
	addmaterial_cost *float64
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*TenantPriceList, error)
	predicates       []predicate.TenantPriceList
}

var _ ent.Mutation = (*TenantPriceListMutation)(nil)

// tenantpricelistOption allows management of the mutation configuration using functional options.
type tenantpricelistOption func(*TenantPriceListMutation)

// newTenantPriceListMutation creates new mutation for the TenantPriceList entity.
func newTenantPriceListMutation(c config, op Op, opts ...tenantpricelistOption) *TenantPriceListMutation {
	m := &TenantPriceListMutation{
		config:        c,
		op:            op,
		typ:           TypeTenantPriceList,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantPriceListID sets the ID field of the mutation.
func withTenantPriceListID(id uuid.UUID) tenantpricelistOption {
	return func(m *TenantPriceListMutation) {
		var (
			err   error
			once  sync.Once
			value *TenantPriceList
		)
		m.oldValue = func(ctx context.Context) (*TenantPriceList, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TenantPriceList.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenantPriceList sets the old TenantPriceList of the mutation.
func withTenantPriceList(node *TenantPriceList) tenantpricelistOption {
	return func(m *TenantPriceListMutation) {
		m.oldValue = func(context.Context) (*TenantPriceList, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantPriceListMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantPriceListMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TenantPriceList entities.
func (m *TenantPriceListMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantPriceListMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantPriceListMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TenantPriceList.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantEmail sets the "tenant_email" field.
func (m *TenantPriceListMutation) SetTenantEmail(s string) {
	m.tenant_email = &s
}

// TenantEmail returns the value of the "tenant_email" field in the mutation.
func (m *TenantPriceListMutation) TenantEmail() (r string, exists bool) {
	v := m.tenant_email
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantEmail returns the old "tenant_email" field's value of the TenantPriceList entity.
// If the TenantPriceList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantPriceListMutation) OldTenantEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantEmail: %w", err)
	}
	return oldValue.TenantEmail, nil
}

// ResetTenantEmail resets all changes to the "tenant_email" field.
func (m *TenantPriceListMutation) ResetTenantEmail() {
	m.tenant_email = nil
}

// SetCategory sets the "category" field.
func (m *TenantPriceListMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *TenantPriceListMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the TenantPriceList entity.
// If the TenantPriceList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantPriceListMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *TenantPriceListMutation) ResetCategory() {
	m.category = nil
}

// SetTask sets the "task" field.
func (m *TenantPriceListMutation) SetTask(s string) {
	m.task = &s
}

// Task returns the value of the "task" field in the mutation.
func (m *TenantPriceListMutation) Task() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTask returns the old "task" field's value of the TenantPriceList entity.
// If the TenantPriceList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantPriceListMutation) OldTask(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTask is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTask requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTask: %w", err)
	}
	return oldValue.Task, nil
}

// ResetTask resets all changes to the "task" field.
func (m *TenantPriceListMutation) ResetTask() {
	m.task = nil
}

// SetUnit sets the "unit" field.
func (m *TenantPriceListMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *TenantPriceListMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the TenantPriceList entity.
// If the TenantPriceList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantPriceListMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ResetUnit resets all changes to the "unit" field.
func (m *TenantPriceListMutation) ResetUnit() {
	m.unit = nil
}

// SetLaborCost sets the "labor_cost" field.
func (m *TenantPriceListMutation) SetLaborCost(f float64) {
	m.labor_cost = &f
	m.addlabor_cost = nil
}

// LaborCost returns the value of the "labor_cost" field in the mutation.
func (m *TenantPriceListMutation) LaborCost() (r float64, exists bool) {
	v := m.labor_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldLaborCost returns the old "labor_cost" field's value of the TenantPriceList entity.
// If the TenantPriceList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantPriceListMutation) OldLaborCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLaborCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLaborCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLaborCost: %w", err)
	}
	return oldValue.LaborCost, nil
}

// AddLaborCost adds f to the "labor_cost" field.
func (m *TenantPriceListMutation) AddLaborCost(f float64) {
	if m.addlabor_cost != nil {
		*m.addlabor_cost += f
	} else {
		m.addlabor_cost = &f
	}
}

// AddedLaborCost returns the value that was added to the "labor_cost" field in this mutation.
func (m *TenantPriceListMutation) AddedLaborCost() (r float64, exists bool) {
	v := m.addlabor_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetLaborCost resets all changes to the "labor_cost" field.
func (m *TenantPriceListMutation) ResetLaborCost() {
	m.labor_cost = nil
	m.addlabor_cost = nil
}

// SetMaterialCost sets the "material_cost" field.
func (m *TenantPriceListMutation) SetMaterialCost(f float64) {
	m.material_cost = &f
	m.addmaterial_cost = nil
}

// MaterialCost returns the value of the "material_cost" field in the mutation.
func (m *TenantPriceListMutation) MaterialCost() (r float64, exists bool) {
	v := m.material_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldMaterialCost returns the old "material_cost" field's value of the TenantPriceList entity.
// If the TenantPriceList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantPriceListMutation) OldMaterialCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaterialCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaterialCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaterialCost: %w", err)
	}
	return oldValue.MaterialCost, nil
}

// AddMaterialCost adds f to the "material_cost" field.
func (m *TenantPriceListMutation) AddMaterialCost(f float64) {
	if m.addmaterial_cost != nil {
		*m.addmaterial_cost += f
	} else {
		m.addmaterial_cost = &f
	}
}

// AddedMaterialCost returns the value that was added to the "material_cost" field in this mutation.
func (m *TenantPriceListMutation) AddedMaterialCost() (r float64, exists bool) {
	v := m.addmaterial_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaterialCost resets all changes to the "material_cost" field.
func (m *TenantPriceListMutation) ResetMaterialCost() {
	m.material_cost = nil
	m.addmaterial_cost = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantPriceListMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantPriceListMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TenantPriceList entity.
// If the TenantPriceList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantPriceListMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TenantPriceListMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TenantPriceListMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TenantPriceListMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TenantPriceList entity.
// If the TenantPriceList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantPriceListMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TenantPriceListMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TenantPriceListMutation builder.
func (m *TenantPriceListMutation) Where(ps ...predicate.TenantPriceList) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantPriceListMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantPriceListMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TenantPriceList, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantPriceListMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantPriceListMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TenantPriceList).
func (m *TenantPriceListMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantPriceListMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant_email != nil {
		fields = append(fields, tenantpricelist.FieldTenantEmail)
	}
	if m.category != nil {
		fields = append(fields, tenantpricelist.FieldCategory)
	}
	if m.task != nil {
		fields = append(fields, tenantpricelist.FieldTask)
	}
	if m.unit != nil {
		fields = append(fields, tenantpricelist.FieldUnit)
	}
	if m.labor_cost != nil {
		fields = append(fields, tenantpricelist.FieldLaborCost)
	}
	if m.material_cost != nil {
		fields = append(fields, tenantpricelist.FieldMaterialCost)
	}
	if m.created_at != nil {
		fields = append(fields, tenantpricelist.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tenantpricelist.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantPriceListMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenantpricelist.FieldTenantEmail:
		return m.TenantEmail()
	case tenantpricelist.FieldCategory:
		return m.Category()
	case tenantpricelist.FieldTask:
		return m.Task()
	case tenantpricelist.FieldUnit:
		return m.Unit()
	case tenantpricelist.FieldLaborCost:
		return m.LaborCost()
	case tenantpricelist.FieldMaterialCost:
		return m.MaterialCost()
	case tenantpricelist.FieldCreatedAt:
		return m.CreatedAt()
	case tenantpricelist.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantPriceListMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenantpricelist.FieldTenantEmail:
		return m.OldTenantEmail(ctx)
	case tenantpricelist.FieldCategory:
		return m.OldCategory(ctx)
	case tenantpricelist.FieldTask:
		return m.OldTask(ctx)
	case tenantpricelist.FieldUnit:
		return m.OldUnit(ctx)
	case tenantpricelist.FieldLaborCost:
		return m.OldLaborCost(ctx)
	case tenantpricelist.FieldMaterialCost:
		return m.OldMaterialCost(ctx)
	case tenantpricelist.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tenantpricelist.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TenantPriceList field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantPriceListMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenantpricelist.FieldTenantEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantEmail(v)
		return nil
	case tenantpricelist.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case tenantpricelist.FieldTask:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTask(v)
		return nil
	case tenantpricelist.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case tenantpricelist.FieldLaborCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLaborCost(v)
		return nil
	case tenantpricelist.FieldMaterialCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaterialCost(v)
		return nil
	case tenantpricelist.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tenantpricelist.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TenantPriceList field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantPriceListMutation) AddedFields() []string {
	var fields []string
	if m.addlabor_cost != nil {
		fields = append(fields, tenantpricelist.FieldLaborCost)
	}
	if m.addmaterial_cost != nil {
		fields = append(fields, tenantpricelist.FieldMaterialCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantPriceListMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tenantpricelist.FieldLaborCost:
		return m.AddedLaborCost()
	case tenantpricelist.FieldMaterialCost:
		return m.AddedMaterialCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantPriceListMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tenantpricelist.FieldLaborCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLaborCost(v)
		return nil
	case tenantpricelist.FieldMaterialCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaterialCost(v)
		return nil
	}
	return fmt.Errorf("unknown TenantPriceList numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantPriceListMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantPriceListMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantPriceListMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TenantPriceList nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantPriceListMutation) ResetField(name string) error {
	switch name {
	case tenantpricelist.FieldTenantEmail:
		m.ResetTenantEmail()
		return nil
	case tenantpricelist.FieldCategory:
		m.ResetCategory()
		return nil
	case tenantpricelist.FieldTask:
		m.ResetTask()
		return nil
	case tenantpricelist.FieldUnit:
		m.ResetUnit()
		return nil
	case tenantpricelist.FieldLaborCost:
		m.ResetLaborCost()
		return nil
	case tenantpricelist.FieldMaterialCost:
		m.ResetMaterialCost()
		return nil
	case tenantpricelist.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tenantpricelist.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TenantPriceList field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantPriceListMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantPriceListMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantPriceListMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantPriceListMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantPriceListMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantPriceListMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantPriceListMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TenantPriceList unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantPriceListMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TenantPriceList edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	email         *string
	role          *string
	is_super_user *bool
	is_tenant     *bool
	invited_by    *string
	trial_ends_at *time.Time
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetIsSuperUser sets the "is_super_user" field.
func (m *UserMutation) SetIsSuperUser(b bool) {
	m.is_super_user = &b
}

// IsSuperUser returns the value of the "is_super_user" field in the mutation.
func (m *UserMutation) IsSuperUser() (r bool, exists bool) {
	v := m.is_super_user
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSuperUser returns the old "is_super_user" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsSuperUser(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSuperUser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSuperUser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSuperUser: %w", err)
	}
	return oldValue.IsSuperUser, nil
}

// ResetIsSuperUser resets all changes to the "is_super_user" field.
func (m *UserMutation) ResetIsSuperUser() {
	m.is_super_user = nil
}

// SetIsTenant sets the "is_tenant" field.
func (m *UserMutation) SetIsTenant(b bool) {
	m.is_tenant = &b
}

// IsTenant returns the value of the "is_tenant" field in the mutation.
func (m *UserMutation) IsTenant() (r bool, exists bool) {
	v := m.is_tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldIsTenant returns the old "is_tenant" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsTenant(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsTenant: %w", err)
	}
	return oldValue.IsTenant, nil
}

// ResetIsTenant resets all changes to the "is_tenant" field.
func (m *UserMutation) ResetIsTenant() {
	m.is_tenant = nil
}

// SetInvitedBy sets the "invited_by" field.
func (m *UserMutation) SetInvitedBy(s string) {
	m.invited_by = &s
}

// InvitedBy returns the value of the "invited_by" field in the mutation.
func (m *UserMutation) InvitedBy() (r string, exists bool) {
	v := m.invited_by
	if v == nil {
		return
	}
	return *v, true
}

// OldInvitedBy returns the old "invited_by" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldInvitedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvitedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvitedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvitedBy: %w", err)
	}
	return oldValue.InvitedBy, nil
}

// ClearInvitedBy clears the value of the "invited_by" field.
func (m *UserMutation) ClearInvitedBy() {
	m.invited_by = nil
	m.clearedFields[user.FieldInvitedBy] = struct{}{}
}

// InvitedByCleared returns if the "invited_by" field was cleared in this mutation.
func (m *UserMutation) InvitedByCleared() bool {
	_, ok := m.clearedFields[user.FieldInvitedBy]
	return ok
}

// ResetInvitedBy resets all changes to the "invited_by" field.
func (m *UserMutation) ResetInvitedBy() {
	m.invited_by = nil
	delete(m.clearedFields, user.FieldInvitedBy)
}

// SetTrialEndsAt sets the "trial_ends_at" field.
func (m *UserMutation) SetTrialEndsAt(t time.Time) {
	m.trial_ends_at = &t
}

// TrialEndsAt returns the value of the "trial_ends_at" field in the mutation.
func (m *UserMutation) TrialEndsAt() (r time.Time, exists bool) {
	v := m.trial_ends_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTrialEndsAt returns the old "trial_ends_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTrialEndsAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrialEndsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrialEndsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrialEndsAt: %w", err)
	}
	return oldValue.TrialEndsAt, nil
}

// ClearTrialEndsAt clears the value of the "trial_ends_at" field.
func (m *UserMutation) ClearTrialEndsAt() {
	m.trial_ends_at = nil
	m.clearedFields[user.FieldTrialEndsAt] = struct{}{}
}

// TrialEndsAtCleared returns if the "trial_ends_at" field was cleared in this mutation.
func (m *UserMutation) TrialEndsAtCleared() bool {
	_, ok := m.clearedFields[user.FieldTrialEndsAt]
	return ok
}

// ResetTrialEndsAt resets all changes to the "trial_ends_at" field.
func (m *UserMutation) ResetTrialEndsAt() {
	m.trial_ends_at = nil
	delete(m.clearedFields, user.FieldTrialEndsAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.is_super_user != nil {
		fields = append(fields, user.FieldIsSuperUser)
	}
	if m.is_tenant != nil {
		fields = append(fields, user.FieldIsTenant)
	}
	if m.invited_by != nil {
		fields = append(fields, user.FieldInvitedBy)
	}
	if m.trial_ends_at != nil {
		fields = append(fields, user.FieldTrialEndsAt)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldName:
		return m.Name()
	case user.FieldEmail:
		return m.Email()
	case user.FieldRole:
		return m.Role()
	case user.FieldIsSuperUser:
		return m.IsSuperUser()
	case user.FieldIsTenant:
		return m.IsTenant()
	case user.FieldInvitedBy:
		return m.InvitedBy()
	case user.FieldTrialEndsAt:
		return m.TrialEndsAt()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldIsSuperUser:
		return m.OldIsSuperUser(ctx)
	case user.FieldIsTenant:
		return m.OldIsTenant(ctx)
	case user.FieldInvitedBy:
		return m.OldInvitedBy(ctx)
	case user.FieldTrialEndsAt:
		return m.OldTrialEndsAt(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldIsSuperUser:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSuperUser(v)
		return nil
	case user.FieldIsTenant:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsTenant(v)
		return nil
	case user.FieldInvitedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvitedBy(v)
		return nil
	case user.FieldTrialEndsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrialEndsAt(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldInvitedBy) {
		fields = append(fields, user.FieldInvitedBy)
	}
	if m.FieldCleared(user.FieldTrialEndsAt) {
		fields = append(fields, user.FieldTrialEndsAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldInvitedBy:
		m.ClearInvitedBy()
		return nil
	case user.FieldTrialEndsAt:
		m.ClearTrialEndsAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldIsSuperUser:
		m.ResetIsSuperUser()
		return nil
	case user.FieldIsTenant:
		m.ResetIsTenant()
		return nil
	case user.FieldInvitedBy:
		m.ResetInvitedBy()
		return nil
	case user.FieldTrialEndsAt:
		m.ResetTrialEndsAt()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}

// WorkMutation represents an operation that mutates the Work nodes in the graph.
type WorkMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	title               *string
	location            *string
	customer_name       *string
	date                *time.Time
	time                *string
	total_price         *float64
	addtotal_price      *float64
	tenant_email        *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	requirements        map[uuid.UUID]struct{}
	removedrequirements map[uuid.UUID]struct{}
	clearedrequirements bool
	done                bool
	oldValue            func(context.Context) (*Work, error)
	predicates          []predicate.Work
}

var _ ent.Mutation = (*WorkMutation)(nil)

// workOption allows management of the mutation configuration using functional options.
type workOption func(*WorkMutation)

// newWorkMutation creates new mutation for the Work entity.
func newWorkMutation(c config, op Op, opts ...workOption) *WorkMutation {
	m := &WorkMutation{
		config:        c,
		op:            op,
		typ:           TypeWork,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkID sets the ID field of the mutation.
func withWorkID(id uuid.UUID) workOption {
	return func(m *WorkMutation) {
		var (
			err   error
			once  sync.Once
			value *Work
		)
		m.oldValue = func(ctx context.Context) (*Work, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Work.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWork sets the old Work of the mutation.
func withWork(node *Work) workOption {
	return func(m *WorkMutation) {
		m.oldValue = func(context.Context) (*Work, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Work entities.
func (m *WorkMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Work.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *WorkMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *WorkMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Work entity.
// If the Work object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *WorkMutation) ResetTitle() {
	m.title = nil
}

// SetLocation sets the "location" field.
func (m *WorkMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *WorkMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Work entity.
// If the Work object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ResetLocation resets all changes to the "location" field.
func (m *WorkMutation) ResetLocation() {
	m.location = nil
}

// SetCustomerName sets the "customer_name" field.
func (m *WorkMutation) SetCustomerName(s string) {
	m.customer_name = &s
}

// CustomerName returns the value of the "customer_name" field in the mutation.
func (m *WorkMutation) CustomerName() (r string, exists bool) {
	v := m.customer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerName returns the old "customer_name" field's value of the Work entity.
// If the Work object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkMutation) OldCustomerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerName: %w", err)
	}
	return oldValue.CustomerName, nil
}

// ResetCustomerName resets all changes to the "customer_name" field.
func (m *WorkMutation) ResetCustomerName() {
	m.customer_name = nil
}

// SetDate sets the "date" field.
func (m *WorkMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *WorkMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Work entity.
// If the Work object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *WorkMutation) ResetDate() {
	m.date = nil
}

// SetTime sets the "time" field.
func (m *WorkMutation) SetTime(s string) {
	m.time = &s
}

// Time returns the value of the "time" field in the mutation.
func (m *WorkMutation) Time() (r string, exists bool) {
	v := m.time
	if v == nil {
		return
	}
	return *v, true
}

// OldTime returns the old "time" field's value of the Work entity.
// If the Work object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkMutation) OldTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTime: %w", err)
	}
	return oldValue.Time, nil
}

// ResetTime resets all changes to the "time" field.
func (m *WorkMutation) ResetTime() {
	m.time = nil
}

// SetTotalPrice sets the "total_price" field.
func (m *WorkMutation) SetTotalPrice(f float64) {
	m.total_price = &f
	m.addtotal_price = nil
}

// TotalPrice returns the value of the "total_price" field in the mutation.
func (m *WorkMutation) TotalPrice() (r float64, exists bool) {
	v := m.total_price
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPrice returns the old "total_price" field's value of the Work entity.
// If the Work object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkMutation) OldTotalPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPrice: %w", err)
	}
	return oldValue.TotalPrice, nil
}

// AddTotalPrice adds f to the "total_price" field.
func (m *WorkMutation) AddTotalPrice(f float64) {
	if m.addtotal_price != nil {
		*m.addtotal_price += f
	} else {
		m.addtotal_price = &f
	}
}

// AddedTotalPrice returns the value that was added to the "total_price" field in this mutation.
func (m *WorkMutation) AddedTotalPrice() (r float64, exists bool) {
	v := m.addtotal_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPrice resets all changes to the "total_price" field.
func (m *WorkMutation) ResetTotalPrice() {
	m.total_price = nil
	m.addtotal_price = nil
}

// SetTenantEmail sets the "tenant_email" field.
func (m *WorkMutation) SetTenantEmail(s string) {
	m.tenant_email = &s
}

// TenantEmail returns the value of the "tenant_email" field in the mutation.
func (m *WorkMutation) TenantEmail() (r string, exists bool) {
	v := m.tenant_email
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantEmail returns the old "tenant_email" field's value of the Work entity.
// If the Work object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkMutation) OldTenantEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantEmail: %w", err)
	}
	return oldValue.TenantEmail, nil
}

// ResetTenantEmail resets all changes to the "tenant_email" field.
func (m *WorkMutation) ResetTenantEmail() {
	m.tenant_email = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Work entity.
// If the Work object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *WorkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Work entity.
// If the Work object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *WorkMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRequirementIDs adds the "requirements" edge to the Requirement entity by ids.
func (m *WorkMutation) AddRequirementIDs(ids ...uuid.UUID) {
	if m.requirements == nil {
		m.requirements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.requirements[ids[i]] = struct{}{}
	}
}

// ClearRequirements clears the "requirements" edge to the Requirement entity.
func (m *WorkMutation) ClearRequirements() {
	m.clearedrequirements = true
}

// RequirementsCleared reports if the "requirements" edge to the Requirement entity was cleared.
func (m *WorkMutation) RequirementsCleared() bool {
	return m.clearedrequirements
}

// RemoveRequirementIDs removes the "requirements" edge to the Requirement entity by IDs.
func (m *WorkMutation) RemoveRequirementIDs(ids ...uuid.UUID) {
	if m.removedrequirements == nil {
		m.removedrequirements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.requirements, ids[i])
		m.removedrequirements[ids[i]] = struct{}{}
	}
}

// RemovedRequirements returns the removed IDs of the "requirements" edge to the Requirement entity.
func (m *WorkMutation) RemovedRequirementsIDs() (ids []uuid.UUID) {
	for id := range m.removedrequirements {
		ids = append(ids, id)
	}
	return
}

// RequirementsIDs returns the "requirements" edge IDs in the mutation.
func (m *WorkMutation) RequirementsIDs() (ids []uuid.UUID) {
	for id := range m.requirements {
		ids = append(ids, id)
	}
	return
}

// ResetRequirements resets all changes to the "requirements" edge.
func (m *WorkMutation) ResetRequirements() {
	m.requirements = nil
	m.clearedrequirements = false
	m.removedrequirements = nil
}

// Where appends a list predicates to the WorkMutation builder.
func (m *WorkMutation) Where(ps ...predicate.Work) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Work, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Work).
func (m *WorkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.title != nil {
		fields = append(fields, work.FieldTitle)
	}
	if m.location != nil {
		fields = append(fields, work.FieldLocation)
	}
	if m.customer_name != nil {
		fields = append(fields, work.FieldCustomerName)
	}
	if m.date != nil {
		fields = append(fields, work.FieldDate)
	}
	if m.time != nil {
		fields = append(fields, work.FieldTime)
	}
	if m.total_price != nil {
		fields = append(fields, work.FieldTotalPrice)
	}
	if m.tenant_email != nil {
		fields = append(fields, work.FieldTenantEmail)
	}
	if m.created_at != nil {
		fields = append(fields, work.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, work.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case work.FieldTitle:
		return m.Title()
	case work.FieldLocation:
		return m.Location()
	case work.FieldCustomerName:
		return m.CustomerName()
	case work.FieldDate:
		return m.Date()
	case work.FieldTime:
		return m.Time()
	case work.FieldTotalPrice:
		return m.TotalPrice()
	case work.FieldTenantEmail:
		return m.TenantEmail()
	case work.FieldCreatedAt:
		return m.CreatedAt()
	case work.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case work.FieldTitle:
		return m.OldTitle(ctx)
	case work.FieldLocation:
		return m.OldLocation(ctx)
	case work.FieldCustomerName:
		return m.OldCustomerName(ctx)
	case work.FieldDate:
		return m.OldDate(ctx)
	case work.FieldTime:
		return m.OldTime(ctx)
	case work.FieldTotalPrice:
		return m.OldTotalPrice(ctx)
	case work.FieldTenantEmail:
		return m.OldTenantEmail(ctx)
	case work.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case work.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Work field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case work.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case work.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case work.FieldCustomerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerName(v)
		return nil
	case work.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case work.FieldTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTime(v)
		return nil
	case work.FieldTotalPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPrice(v)
		return nil
	case work.FieldTenantEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantEmail(v)
		return nil
	case work.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case work.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Work field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_price != nil {
		fields = append(fields, work.FieldTotalPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case work.FieldTotalPrice:
		return m.AddedTotalPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case work.FieldTotalPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPrice(v)
		return nil
	}
	return fmt.Errorf("unknown Work numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Work nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkMutation) ResetField(name string) error {
	switch name {
	case work.FieldTitle:
		m.ResetTitle()
		return nil
	case work.FieldLocation:
		m.ResetLocation()
		return nil
	case work.FieldCustomerName:
		m.ResetCustomerName()
		return nil
	case work.FieldDate:
		m.ResetDate()
		return nil
	case work.FieldTime:
		m.ResetTime()
		return nil
	case work.FieldTotalPrice:
		m.ResetTotalPrice()
		return nil
	case work.FieldTenantEmail:
		m.ResetTenantEmail()
		return nil
	case work.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case work.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Work field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.requirements != nil {
		edges = append(edges, work.EdgeRequirements)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case work.EdgeRequirements:
		ids := make([]ent.Value, 0, len(m.requirements))
		for id := range m.requirements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedrequirements != nil {
		edges = append(edges, work.EdgeRequirements)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case work.EdgeRequirements:
		ids := make([]ent.Value, 0, len(m.removedrequirements))
		for id := range m.removedrequirements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequirements {
		edges = append(edges, work.EdgeRequirements)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkMutation) EdgeCleared(name string) bool {
	switch name {
	case work.EdgeRequirements:
		return m.clearedrequirements
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Work unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkMutation) ResetEdge(name string) error {
	switch name {
	case work.EdgeRequirements:
		m.ResetRequirements()
		return nil
	}
	return fmt.Errorf("unknown Work edge %s", name)
}
