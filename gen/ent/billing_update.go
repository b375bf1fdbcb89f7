// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Zoli1212/awsflow/gen/ent/billing"
	"github.com/Zoli1212/awsflow/gen/ent/predicate"
)

// BillingUpdate is the builder for updating Billing entities.
type BillingUpdate struct {
	config
	hooks    []Hook
	mutation *BillingMutation
}

// Where appends a list predicates to the BillingUpdate builder.
func (_u *BillingUpdate) Where(ps ...predicate.Billing) *BillingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantEmail sets the "tenant_email" field.
func (_u *BillingUpdate) SetTenantEmail(v string) *BillingUpdate {
	_u.mutation.SetTenantEmail(v)
	return _u
}

// SetNillableTenantEmail sets the "tenant_email" field if the given value is not nil.
func (_u *BillingUpdate) SetNillableTenantEmail(v *string) *BillingUpdate {
	if v != nil {
		_u.SetTenantEmail(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *BillingUpdate) SetTitle(v string) *BillingUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BillingUpdate) SetNillableTitle(v *string) *BillingUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BillingUpdate) SetAmount(v float64) *BillingUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BillingUpdate) SetNillableAmount(v *float64) *BillingUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BillingUpdate) AddAmount(v float64) *BillingUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BillingUpdate) SetCreatedAt(v time.Time) *BillingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BillingUpdate) SetNillableCreatedAt(v *time.Time) *BillingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the BillingMutation object of the builder.
func (_u *BillingUpdate) Mutation() *BillingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BillingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BillingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillingUpdate) check() error {
	if v, ok := _u.mutation.TenantEmail(); ok {
		if err := billing.TenantEmailValidator(v); err != nil {
			return &ValidationError{Name: "tenant_email", err: fmt.Errorf(`ent: validator failed for field "Billing.tenant_email": %w`, err)}
		}
	}
	return nil
}

func (_u *BillingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(billing.Table, billing.Columns, sqlgraph.NewFieldSpec(billing.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantEmail(); ok {
		_spec.SetField(billing.FieldTenantEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(billing.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(billing.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(billing.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(billing.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BillingUpdateOne is the builder for updating a single Billing entity.
type BillingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillingMutation
}

// SetTenantEmail sets the "tenant_email" field.
func (_u *BillingUpdateOne) SetTenantEmail(v string) *BillingUpdateOne {
	_u.mutation.SetTenantEmail(v)
	return _u
}

// SetNillableTenantEmail sets the "tenant_email" field if the given value is not nil.
func (_u *BillingUpdateOne) SetNillableTenantEmail(v *string) *BillingUpdateOne {
	if v != nil {
		_u.SetTenantEmail(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *BillingUpdateOne) SetTitle(v string) *BillingUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BillingUpdateOne) SetNillableTitle(v *string) *BillingUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BillingUpdateOne) SetAmount(v float64) *BillingUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BillingUpdateOne) SetNillableAmount(v *float64) *BillingUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BillingUpdateOne) AddAmount(v float64) *BillingUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BillingUpdateOne) SetCreatedAt(v time.Time) *BillingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BillingUpdateOne) SetNillableCreatedAt(v *time.Time) *BillingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the BillingMutation object of the builder.
func (_u *BillingUpdateOne) Mutation() *BillingMutation {
	return _u.mutation
}

// Where appends a list predicates to the BillingUpdate builder.
func (_u *BillingUpdateOne) Where(ps ...predicate.Billing) *BillingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BillingUpdateOne) Select(field string, fields ...string) *BillingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Billing entity.
func (_u *BillingUpdateOne) Save(ctx context.Context) (*Billing, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillingUpdateOne) SaveX(ctx context.Context) *Billing {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BillingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillingUpdateOne) check() error {
	if v, ok := _u.mutation.TenantEmail(); ok {
		if err := billing.TenantEmailValidator(v); err != nil {
			return &ValidationError{Name: "tenant_email", err: fmt.Errorf(`ent: validator failed for field "Billing.tenant_email": %w`, err)}
		}
	}
	return nil
}

func (_u *BillingUpdateOne) sqlSave(ctx context.Context) (_node *Billing, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(billing.Table, billing.Columns, sqlgraph.NewFieldSpec(billing.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Billing.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, billing.FieldID)
		for _, f := range fields {
			if !billing.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != billing.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantEmail(); ok {
		_spec.SetField(billing.FieldTenantEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(billing.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(billing.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(billing.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(billing.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Billing{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
