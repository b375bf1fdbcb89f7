// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Zoli1212/awsflow/gen/ent/requirement"
	"github.com/Zoli1212/awsflow/gen/ent/work"
	"github.com/google/uuid"
)

// WorkCreate is the builder for creating a Work entity.
type WorkCreate struct {
	config
	mutation *WorkMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *WorkCreate) SetTitle(v string) *WorkCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *WorkCreate) SetLocation(v string) *WorkCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *WorkCreate) SetNillableLocation(v *string) *WorkCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetCustomerName sets the "customer_name" field.
func (_c *WorkCreate) SetCustomerName(v string) *WorkCreate {
	_c.mutation.SetCustomerName(v)
	return _c
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_c *WorkCreate) SetNillableCustomerName(v *string) *WorkCreate {
	if v != nil {
		_c.SetCustomerName(*v)
	}
	return _c
}

// SetDate sets the "date" field.
func (_c *WorkCreate) SetDate(v time.Time) *WorkCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetTime sets the "time" field.
func (_c *WorkCreate) SetTime(v string) *WorkCreate {
	_c.mutation.SetTime(v)
	return _c
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (_c *WorkCreate) SetNillableTime(v *string) *WorkCreate {
	if v != nil {
		_c.SetTime(*v)
	}
	return _c
}

// SetTotalPrice sets the "total_price" field.
func (_c *WorkCreate) SetTotalPrice(v float64) *WorkCreate {
	_c.mutation.SetTotalPrice(v)
	return _c
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_c *WorkCreate) SetNillableTotalPrice(v *float64) *WorkCreate {
	if v != nil {
		_c.SetTotalPrice(*v)
	}
	return _c
}

// SetTenantEmail sets the "tenant_email" field.
func (_c *WorkCreate) SetTenantEmail(v string) *WorkCreate {
	_c.mutation.SetTenantEmail(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkCreate) SetCreatedAt(v time.Time) *WorkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkCreate) SetNillableCreatedAt(v *time.Time) *WorkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkCreate) SetUpdatedAt(v time.Time) *WorkCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkCreate) SetNillableUpdatedAt(v *time.Time) *WorkCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkCreate) SetID(v uuid.UUID) *WorkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WorkCreate) SetNillableID(v *uuid.UUID) *WorkCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddRequirementIDs adds the "requirements" edge to the Requirement entity by IDs.
func (_c *WorkCreate) AddRequirementIDs(ids ...uuid.UUID) *WorkCreate {
	_c.mutation.AddRequirementIDs(ids...)
	return _c
}

// AddRequirements adds the "requirements" edges to the Requirement entity.
func (_c *WorkCreate) AddRequirements(v ...*Requirement) *WorkCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRequirementIDs(ids...)
}

// Mutation returns the WorkMutation object of the builder.
func (_c *WorkCreate) Mutation() *WorkMutation {
	return _c.mutation
}

// Save creates the Work in the database.
func (_c *WorkCreate) Save(ctx context.Context) (*Work, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkCreate) SaveX(ctx context.Context) *Work {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkCreate) defaults() {
	if _, ok := _c.mutation.Location(); !ok {
		v := work.DefaultLocation
		_c.mutation.SetLocation(v)
	}
	if _, ok := _c.mutation.CustomerName(); !ok {
		v := work.DefaultCustomerName
		_c.mutation.SetCustomerName(v)
	}
	if _, ok := _c.mutation.Time(); !ok {
		v := work.DefaultTime
		_c.mutation.SetTime(v)
	}
	if _, ok := _c.mutation.TotalPrice(); !ok {
		v := work.DefaultTotalPrice
		_c.mutation.SetTotalPrice(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := work.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := work.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := work.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Work.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := work.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Work.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Location(); !ok {
		return &ValidationError{Name: "location", err: errors.New(`ent: missing required field "Work.location"`)}
	}
	if _, ok := _c.mutation.CustomerName(); !ok {
		return &ValidationError{Name: "customer_name", err: errors.New(`ent: missing required field "Work.customer_name"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "Work.date"`)}
	}
	if _, ok := _c.mutation.Time(); !ok {
		return &ValidationError{Name: "time", err: errors.New(`ent: missing required field "Work.time"`)}
	}
	if _, ok := _c.mutation.TotalPrice(); !ok {
		return &ValidationError{Name: "total_price", err: errors.New(`ent: missing required field "Work.total_price"`)}
	}
	if _, ok := _c.mutation.TenantEmail(); !ok {
		return &ValidationError{Name: "tenant_email", err: errors.New(`ent: missing required field "Work.tenant_email"`)}
	}
	if v, ok := _c.mutation.TenantEmail(); ok {
		if err := work.TenantEmailValidator(v); err != nil {
			return &ValidationError{Name: "tenant_email", err: fmt.Errorf(`ent: validator failed for field "Work.tenant_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Work.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Work.updated_at"`)}
	}
	return nil
}

func (_c *WorkCreate) sqlSave(ctx context.Context) (*Work, error) {
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

func (_c *WorkCreate) createSpec() (*Work, *sqlgraph.CreateSpec) {
	var (
		_node = &Work{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(work.Table, sqlgraph.NewFieldSpec(work.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(work.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(work.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.CustomerName(); ok {
		_spec.SetField(work.FieldCustomerName, field.TypeString, value)
		_node.CustomerName = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(work.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Time(); ok {
		_spec.SetField(work.FieldTime, field.TypeString, value)
		_node.Time = value
	}
	if value, ok := _c.mutation.TotalPrice(); ok {
		_spec.SetField(work.FieldTotalPrice, field.TypeFloat64, value)
		_node.TotalPrice = value
	}
	if value, ok := _c.mutation.TenantEmail(); ok {
		_spec.SetField(work.FieldTenantEmail, field.TypeString, value)
		_node.TenantEmail = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(work.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(work.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RequirementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   work.RequirementsTable,
			Columns: []string{work.RequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkCreateBulk is the builder for creating many Work entities in bulk.
type WorkCreateBulk struct {
	config
	err      error
	builders []*WorkCreate
}

// Save creates the Work entities in the database.
func (_c *WorkCreateBulk) Save(ctx context.Context) ([]*Work, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Work, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkMutation)
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
func (_c *WorkCreateBulk) SaveX(ctx context.Context) []*Work {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
