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
	"github.com/Zoli1212/awsflow/gen/ent/predicate"
	"github.com/Zoli1212/awsflow/gen/ent/pricelist"
)

// PriceListUpdate is the builder for updating PriceList entities.
type PriceListUpdate struct {
	config
	hooks    []Hook
	mutation *PriceListMutation
}

// Where appends a list predicates to the PriceListUpdate builder.
func (_u *PriceListUpdate) Where(ps ...predicate.PriceList) *PriceListUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategory sets the "category" field.
func (_u *PriceListUpdate) SetCategory(v string) *PriceListUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PriceListUpdate) SetNillableCategory(v *string) *PriceListUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTask sets the "task" field.
func (_u *PriceListUpdate) SetTask(v string) *PriceListUpdate {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *PriceListUpdate) SetNillableTask(v *string) *PriceListUpdate {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *PriceListUpdate) SetUnit(v string) *PriceListUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *PriceListUpdate) SetNillableUnit(v *string) *PriceListUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetLaborCost sets the "labor_cost" field.
func (_u *PriceListUpdate) SetLaborCost(v float64) *PriceListUpdate {
	_u.mutation.ResetLaborCost()
	_u.mutation.SetLaborCost(v)
	return _u
}

// SetNillableLaborCost sets the "labor_cost" field if the given value is not nil.
func (_u *PriceListUpdate) SetNillableLaborCost(v *float64) *PriceListUpdate {
	if v != nil {
		_u.SetLaborCost(*v)
	}
	return _u
}

// AddLaborCost adds value to the "labor_cost" field.
func (_u *PriceListUpdate) AddLaborCost(v float64) *PriceListUpdate {
	_u.mutation.AddLaborCost(v)
	return _u
}

// SetMaterialCost sets the "material_cost" field.
func (_u *PriceListUpdate) SetMaterialCost(v float64) *PriceListUpdate {
	_u.mutation.ResetMaterialCost()
	_u.mutation.SetMaterialCost(v)
	return _u
}

// SetNillableMaterialCost sets the "material_cost" field if the given value is not nil.
func (_u *PriceListUpdate) SetNillableMaterialCost(v *float64) *PriceListUpdate {
	if v != nil {
		_u.SetMaterialCost(*v)
	}
	return _u
}

// AddMaterialCost adds value to the "material_cost" field.
func (_u *PriceListUpdate) AddMaterialCost(v float64) *PriceListUpdate {
	_u.mutation.AddMaterialCost(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PriceListUpdate) SetCreatedAt(v time.Time) *PriceListUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PriceListUpdate) SetNillableCreatedAt(v *time.Time) *PriceListUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PriceListUpdate) SetUpdatedAt(v time.Time) *PriceListUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PriceListMutation object of the builder.
func (_u *PriceListUpdate) Mutation() *PriceListMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PriceListUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PriceListUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PriceListUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PriceListUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PriceListUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pricelist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PriceListUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := pricelist.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PriceList.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Task(); ok {
		if err := pricelist.TaskValidator(v); err != nil {
			return &ValidationError{Name: "task", err: fmt.Errorf(`ent: validator failed for field "PriceList.task": %w`, err)}
		}
	}
	return nil
}

func (_u *PriceListUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pricelist.Table, pricelist.Columns, sqlgraph.NewFieldSpec(pricelist.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(pricelist.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(pricelist.FieldTask, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(pricelist.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.LaborCost(); ok {
		_spec.SetField(pricelist.FieldLaborCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLaborCost(); ok {
		_spec.AddField(pricelist.FieldLaborCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaterialCost(); ok {
		_spec.SetField(pricelist.FieldMaterialCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaterialCost(); ok {
		_spec.AddField(pricelist.FieldMaterialCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pricelist.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pricelist.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pricelist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PriceListUpdateOne is the builder for updating a single PriceList entity.
type PriceListUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PriceListMutation
}

// SetCategory sets the "category" field.
func (_u *PriceListUpdateOne) SetCategory(v string) *PriceListUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PriceListUpdateOne) SetNillableCategory(v *string) *PriceListUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTask sets the "task" field.
func (_u *PriceListUpdateOne) SetTask(v string) *PriceListUpdateOne {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *PriceListUpdateOne) SetNillableTask(v *string) *PriceListUpdateOne {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *PriceListUpdateOne) SetUnit(v string) *PriceListUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *PriceListUpdateOne) SetNillableUnit(v *string) *PriceListUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetLaborCost sets the "labor_cost" field.
func (_u *PriceListUpdateOne) SetLaborCost(v float64) *PriceListUpdateOne {
	_u.mutation.ResetLaborCost()
	_u.mutation.SetLaborCost(v)
	return _u
}

// SetNillableLaborCost sets the "labor_cost" field if the given value is not nil.
func (_u *PriceListUpdateOne) SetNillableLaborCost(v *float64) *PriceListUpdateOne {
	if v != nil {
		_u.SetLaborCost(*v)
	}
	return _u
}

// AddLaborCost adds value to the "labor_cost" field.
func (_u *PriceListUpdateOne) AddLaborCost(v float64) *PriceListUpdateOne {
	_u.mutation.AddLaborCost(v)
	return _u
}

// SetMaterialCost sets the "material_cost" field.
func (_u *PriceListUpdateOne) SetMaterialCost(v float64) *PriceListUpdateOne {
	_u.mutation.ResetMaterialCost()
	_u.mutation.SetMaterialCost(v)
	return _u
}

// SetNillableMaterialCost sets the "material_cost" field if the given value is not nil.
func (_u *PriceListUpdateOne) SetNillableMaterialCost(v *float64) *PriceListUpdateOne {
	if v != nil {
		_u.SetMaterialCost(*v)
	}
	return _u
}

// AddMaterialCost adds value to the "material_cost" field.
func (_u *PriceListUpdateOne) AddMaterialCost(v float64) *PriceListUpdateOne {
	_u.mutation.AddMaterialCost(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PriceListUpdateOne) SetCreatedAt(v time.Time) *PriceListUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PriceListUpdateOne) SetNillableCreatedAt(v *time.Time) *PriceListUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PriceListUpdateOne) SetUpdatedAt(v time.Time) *PriceListUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PriceListMutation object of the builder.
func (_u *PriceListUpdateOne) Mutation() *PriceListMutation {
	return _u.mutation
}

// Where appends a list predicates to the PriceListUpdate builder.
func (_u *PriceListUpdateOne) Where(ps ...predicate.PriceList) *PriceListUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PriceListUpdateOne) Select(field string, fields ...string) *PriceListUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PriceList entity.
func (_u *PriceListUpdateOne) Save(ctx context.Context) (*PriceList, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PriceListUpdateOne) SaveX(ctx context.Context) *PriceList {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PriceListUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PriceListUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PriceListUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pricelist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PriceListUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := pricelist.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PriceList.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Task(); ok {
		if err := pricelist.TaskValidator(v); err != nil {
			return &ValidationError{Name: "task", err: fmt.Errorf(`ent: validator failed for field "PriceList.task": %w`, err)}
		}
	}
	return nil
}

func (_u *PriceListUpdateOne) sqlSave(ctx context.Context) (_node *PriceList, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pricelist.Table, pricelist.Columns, sqlgraph.NewFieldSpec(pricelist.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PriceList.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pricelist.FieldID)
		for _, f := range fields {
			if !pricelist.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pricelist.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(pricelist.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(pricelist.FieldTask, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(pricelist.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.LaborCost(); ok {
		_spec.SetField(pricelist.FieldLaborCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLaborCost(); ok {
		_spec.AddField(pricelist.FieldLaborCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaterialCost(); ok {
		_spec.SetField(pricelist.FieldMaterialCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaterialCost(); ok {
		_spec.AddField(pricelist.FieldMaterialCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pricelist.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pricelist.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PriceList{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pricelist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
