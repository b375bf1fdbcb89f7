// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Zoli1212/awsflow/gen/ent/pricelist"
	"github.com/google/uuid"
)

// PriceListCreate is the builder for creating a PriceList entity.
type PriceListCreate struct {
	config
	mutation *PriceListMutation
	hooks    []Hook
}

// SetCategory sets the "category" field.
func (_c *PriceListCreate) SetCategory(v string) *PriceListCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetTask sets the "task" field.
func (_c *PriceListCreate) SetTask(v string) *PriceListCreate {
	_c.mutation.SetTask(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *PriceListCreate) SetUnit(v string) *PriceListCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *PriceListCreate) SetNillableUnit(v *string) *PriceListCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetLaborCost sets the "labor_cost" field.
func (_c *PriceListCreate) SetLaborCost(v float64) *PriceListCreate {
	_c.mutation.SetLaborCost(v)
	return _c
}

// SetNillableLaborCost sets the "labor_cost" field if the given value is not nil.
func (_c *PriceListCreate) SetNillableLaborCost(v *float64) *PriceListCreate {
	if v != nil {
		_c.SetLaborCost(*v)
	}
	return _c
}

// SetMaterialCost sets the "material_cost" field.
func (_c *PriceListCreate) SetMaterialCost(v float64) *PriceListCreate {
	_c.mutation.SetMaterialCost(v)
	return _c
}

// SetNillableMaterialCost sets the "material_cost" field if the given value is not nil.
func (_c *PriceListCreate) SetNillableMaterialCost(v *float64) *PriceListCreate {
	if v != nil {
		_c.SetMaterialCost(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PriceListCreate) SetCreatedAt(v time.Time) *PriceListCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PriceListCreate) SetNillableCreatedAt(v *time.Time) *PriceListCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PriceListCreate) SetUpdatedAt(v time.Time) *PriceListCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PriceListCreate) SetNillableUpdatedAt(v *time.Time) *PriceListCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PriceListCreate) SetID(v uuid.UUID) *PriceListCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PriceListCreate) SetNillableID(v *uuid.UUID) *PriceListCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PriceListMutation object of the builder.
func (_c *PriceListCreate) Mutation() *PriceListMutation {
	return _c.mutation
}

// Save creates the PriceList in the database.
func (_c *PriceListCreate) Save(ctx context.Context) (*PriceList, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PriceListCreate) SaveX(ctx context.Context) *PriceList {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PriceListCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PriceListCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PriceListCreate) defaults() {
	if _, ok := _c.mutation.Unit(); !ok {
		v := pricelist.DefaultUnit
		_c.mutation.SetUnit(v)
	}
	if _, ok := _c.mutation.LaborCost(); !ok {
		v := pricelist.DefaultLaborCost
		_c.mutation.SetLaborCost(v)
	}
	if _, ok := _c.mutation.MaterialCost(); !ok {
		v := pricelist.DefaultMaterialCost
		_c.mutation.SetMaterialCost(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pricelist.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pricelist.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pricelist.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PriceListCreate) check() error {
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "PriceList.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := pricelist.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PriceList.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Task(); !ok {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required field "PriceList.task"`)}
	}
	if v, ok := _c.mutation.Task(); ok {
		if err := pricelist.TaskValidator(v); err != nil {
			return &ValidationError{Name: "task", err: fmt.Errorf(`ent: validator failed for field "PriceList.task": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required field "PriceList.unit"`)}
	}
	if _, ok := _c.mutation.LaborCost(); !ok {
		return &ValidationError{Name: "labor_cost", err: errors.New(`ent: missing required field "PriceList.labor_cost"`)}
	}
	if _, ok := _c.mutation.MaterialCost(); !ok {
		return &ValidationError{Name: "material_cost", err: errors.New(`ent: missing required field "PriceList.material_cost"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PriceList.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PriceList.updated_at"`)}
	}
	return nil
}

func (_c *PriceListCreate) sqlSave(ctx context.Context) (*PriceList, error) {
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

func (_c *PriceListCreate) createSpec() (*PriceList, *sqlgraph.CreateSpec) {
	var (
		_node = &PriceList{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pricelist.Table, sqlgraph.NewFieldSpec(pricelist.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(pricelist.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Task(); ok {
		_spec.SetField(pricelist.FieldTask, field.TypeString, value)
		_node.Task = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(pricelist.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.LaborCost(); ok {
		_spec.SetField(pricelist.FieldLaborCost, field.TypeFloat64, value)
		_node.LaborCost = value
	}
	if value, ok := _c.mutation.MaterialCost(); ok {
		_spec.SetField(pricelist.FieldMaterialCost, field.TypeFloat64, value)
		_node.MaterialCost = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pricelist.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pricelist.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PriceListCreateBulk is the builder for creating many PriceList entities in bulk.
type PriceListCreateBulk struct {
	config
	err      error
	builders []*PriceListCreate
}

// Save creates the PriceList entities in the database.
func (_c *PriceListCreateBulk) Save(ctx context.Context) ([]*PriceList, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PriceList, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PriceListMutation)
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
func (_c *PriceListCreateBulk) SaveX(ctx context.Context) []*PriceList {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PriceListCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PriceListCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
