// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Zoli1212/awsflow/gen/ent/billing"
	"github.com/google/uuid"
)

// BillingCreate is the builder for creating a Billing entity.
type BillingCreate struct {
	config
	mutation *BillingMutation
	hooks    []Hook
}

// SetTenantEmail sets the "tenant_email" field.
func (_c *BillingCreate) SetTenantEmail(v string) *BillingCreate {
	_c.mutation.SetTenantEmail(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *BillingCreate) SetTitle(v string) *BillingCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *BillingCreate) SetNillableTitle(v *string) *BillingCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *BillingCreate) SetAmount(v float64) *BillingCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *BillingCreate) SetNillableAmount(v *float64) *BillingCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BillingCreate) SetCreatedAt(v time.Time) *BillingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BillingCreate) SetNillableCreatedAt(v *time.Time) *BillingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BillingCreate) SetID(v uuid.UUID) *BillingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BillingCreate) SetNillableID(v *uuid.UUID) *BillingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BillingMutation object of the builder.
func (_c *BillingCreate) Mutation() *BillingMutation {
	return _c.mutation
}

// Save creates the Billing in the database.
func (_c *BillingCreate) Save(ctx context.Context) (*Billing, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BillingCreate) SaveX(ctx context.Context) *Billing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BillingCreate) defaults() {
	if _, ok := _c.mutation.Title(); !ok {
		v := billing.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.Amount(); !ok {
		v := billing.DefaultAmount
		_c.mutation.SetAmount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := billing.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := billing.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BillingCreate) check() error {
	if _, ok := _c.mutation.TenantEmail(); !ok {
		return &ValidationError{Name: "tenant_email", err: errors.New(`ent: missing required field "Billing.tenant_email"`)}
	}
	if v, ok := _c.mutation.TenantEmail(); ok {
		if err := billing.TenantEmailValidator(v); err != nil {
			return &ValidationError{Name: "tenant_email", err: fmt.Errorf(`ent: validator failed for field "Billing.tenant_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Billing.title"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Billing.amount"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Billing.created_at"`)}
	}
	return nil
}

func (_c *BillingCreate) sqlSave(ctx context.Context) (*Billing, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BillingCreate) createSpec() (*Billing, *sqlgraph.CreateSpec) {
	var (
		_node = &Billing{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(billing.Table, sqlgraph.NewFieldSpec(billing.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TenantEmail(); ok {
		_spec.SetField(billing.FieldTenantEmail, field.TypeString, value)
		_node.TenantEmail = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(billing.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(billing.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(billing.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BillingCreateBulk is the builder for creating many Billing entities in bulk.
type BillingCreateBulk struct {
	config
	err      error
	builders []*BillingCreate
}

// Save creates the Billing entities in the database.
func (_c *BillingCreateBulk) Save(ctx context.Context) ([]*Billing, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Billing, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillingMutation)
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
func (_c *BillingCreateBulk) SaveX(ctx context.Context) []*Billing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
