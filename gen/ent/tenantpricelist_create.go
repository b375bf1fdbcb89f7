// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Zoli1212/awsflow/gen/ent/tenantpricelist"
	"github.com/google/uuid"
)

// TenantPriceListCreate is the builder for creating a TenantPriceList entity.
type TenantPriceListCreate struct {
	config
	mutation *TenantPriceListMutation
	hooks    []Hook
}

// SetTenantEmail sets the "tenant_email" field.
func (_c *TenantPriceListCreate) SetTenantEmail(v string) *TenantPriceListCreate {
	_c.mutation.SetTenantEmail(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *TenantPriceListCreate) SetCategory(v string) *TenantPriceListCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetTask sets the "task" field.
func (_c *TenantPriceListCreate) SetTask(v string) *TenantPriceListCreate {
	_c.mutation.SetTask(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *TenantPriceListCreate) SetUnit(v string) *TenantPriceListCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *TenantPriceListCreate) SetNillableUnit(v *string) *TenantPriceListCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetLaborCost sets the "labor_cost" field.
func (_c *TenantPriceListCreate) SetLaborCost(v float64) *TenantPriceListCreate {
	_c.mutation.SetLaborCost(v)
	return _c
}

// SetNillableLaborCost sets the "labor_cost" field if the given value is not nil.
func (_c *TenantPriceListCreate) SetNillableLaborCost(v *float64) *TenantPriceListCreate {
	if v != nil {
		_c.SetLaborCost(*v)
	}
	return _c
}

// SetMaterialCost sets the "material_cost" field.
func (_c *TenantPriceListCreate) SetMaterialCost(v float64) *TenantPriceListCreate {
	_c.mutation.SetMaterialCost(v)
	return _c
}

// SetNillableMaterialCost sets the "material_cost" field if the given value is not nil.
func (_c *TenantPriceListCreate) SetNillableMaterialCost(v *float64) *TenantPriceListCreate {
	if v != nil {
		_c.SetMaterialCost(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TenantPriceListCreate) SetCreatedAt(v time.Time) *TenantPriceListCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TenantPriceListCreate) SetNillableCreatedAt(v *time.Time) *TenantPriceListCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TenantPriceListCreate) SetUpdatedAt(v time.Time) *TenantPriceListCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TenantPriceListCreate) SetNillableUpdatedAt(v *time.Time) *TenantPriceListCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TenantPriceListCreate) SetID(v uuid.UUID) *TenantPriceListCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TenantPriceListCreate) SetNillableID(v *uuid.UUID) *TenantPriceListCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TenantPriceListMutation object of the builder.
func (_c *TenantPriceListCreate) Mutation() *TenantPriceListMutation {
	return _c.mutation
}

// Save creates the TenantPriceList in the database.
func (_c *TenantPriceListCreate) Save(ctx context.Context) (*TenantPriceList, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TenantPriceListCreate) SaveX(ctx context.Context) *TenantPriceList {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TenantPriceListCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TenantPriceListCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TenantPriceListCreate) defaults() {
	if _, ok := _c.mutation.Unit(); !ok {
		v := tenantpricelist.DefaultUnit
		_c.mutation.SetUnit(v)
	}
	if _, ok := _c.mutation.LaborCost(); !ok {
		v := tenantpricelist.DefaultLaborCost
		_c.mutation.SetLaborCost(v)
	}
	if _, ok := _c.mutation.MaterialCost(); !ok {
		v := tenantpricelist.DefaultMaterialCost
		_c.mutation.SetMaterialCost(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tenantpricelist.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tenantpricelist.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tenantpricelist.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TenantPriceListCreate) check() error {
	if _, ok := _c.mutation.TenantEmail(); !ok {
		return &ValidationError{Name: "tenant_email", err: errors.New(`ent: missing required field "TenantPriceList.tenant_email"`)}
	}
	if v, ok := _c.mutation.TenantEmail(); ok {
		if err := tenantpricelist.TenantEmailValidator(v); err != nil {
			return &ValidationError{Name: "tenant_email", err: fmt.Errorf(`ent: validator failed for field "TenantPriceList.tenant_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "TenantPriceList.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := tenantpricelist.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "TenantPriceList.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Task(); !ok {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required field "TenantPriceList.task"`)}
	}
	if v, ok := _c.mutation.Task(); ok {
		if err := tenantpricelist.TaskValidator(v); err != nil {
			return &ValidationError{Name: "task", err: fmt.Errorf(`ent: validator failed for field "TenantPriceList.task": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required field "TenantPriceList.unit"`)}
	}
	if _, ok := _c.mutation.LaborCost(); !ok {
		return &ValidationError{Name: "labor_cost", err: errors.New(`ent: missing required field "TenantPriceList.labor_cost"`)}
	}
	if _, ok := _c.mutation.MaterialCost(); !ok {
		return &ValidationError{Name: "material_cost", err: errors.New(`ent: missing required field "TenantPriceList.material_cost"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TenantPriceList.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TenantPriceList.updated_at"`)}
	}
	return nil
}

func (_c *TenantPriceListCreate) sqlSave(ctx context.Context) (*TenantPriceList, error) {
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

func (_c *TenantPriceListCreate) createSpec() (*TenantPriceList, *sqlgraph.CreateSpec) {
	var (
		_node = &TenantPriceList{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tenantpricelist.Table, sqlgraph.NewFieldSpec(tenantpricelist.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TenantEmail(); ok {
		_spec.SetField(tenantpricelist.FieldTenantEmail, field.TypeString, value)
		_node.TenantEmail = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(tenantpricelist.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Task(); ok {
		_spec.SetField(tenantpricelist.FieldTask, field.TypeString, value)
		_node.Task = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(tenantpricelist.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.LaborCost(); ok {
		_spec.SetField(tenantpricelist.FieldLaborCost, field.TypeFloat64, value)
		_node.LaborCost = value
	}
	if value, ok := _c.mutation.MaterialCost(); ok {
		_spec.SetField(tenantpricelist.FieldMaterialCost, field.TypeFloat64, value)
		_node.MaterialCost = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tenantpricelist.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantpricelist.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TenantPriceListCreateBulk is the builder for creating many TenantPriceList entities in bulk.
type TenantPriceListCreateBulk struct {
	config
	err      error
	builders []*TenantPriceListCreate
}

// Save creates the TenantPriceList entities in the database.
func (_c *TenantPriceListCreateBulk) Save(ctx context.Context) ([]*TenantPriceList, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TenantPriceList, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TenantPriceListMutation)
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
func (_c *TenantPriceListCreateBulk) SaveX(ctx context.Context) []*TenantPriceList {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TenantPriceListCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TenantPriceListCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
