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
	"github.com/Zoli1212/awsflow/gen/ent/tenantpricelist"
)

// TenantPriceListUpdate is the builder for updating TenantPriceList entities.
type TenantPriceListUpdate struct {
	config
	hooks    []Hook
	mutation *TenantPriceListMutation
}

// Where appends a list predicates to the TenantPriceListUpdate builder.
func (_u *TenantPriceListUpdate) Where(ps ...predicate.TenantPriceList) *TenantPriceListUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantEmail sets the "tenant_email" field.
func (_u *TenantPriceListUpdate) SetTenantEmail(v string) *TenantPriceListUpdate {
	_u.mutation.SetTenantEmail(v)
	return _u
}

// SetNillableTenantEmail sets the "tenant_email" field if the given value is not nil.
func (_u *TenantPriceListUpdate) SetNillableTenantEmail(v *string) *TenantPriceListUpdate {
	if v != nil {
		_u.SetTenantEmail(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *TenantPriceListUpdate) SetCategory(v string) *TenantPriceListUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TenantPriceListUpdate) SetNillableCategory(v *string) *TenantPriceListUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTask sets the "task" field.
func (_u *TenantPriceListUpdate) SetTask(v string) *TenantPriceListUpdate {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *TenantPriceListUpdate) SetNillableTask(v *string) *TenantPriceListUpdate {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *TenantPriceListUpdate) SetUnit(v string) *TenantPriceListUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *TenantPriceListUpdate) SetNillableUnit(v *string) *TenantPriceListUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetLaborCost sets the "labor_cost" field.
func (_u *TenantPriceListUpdate) SetLaborCost(v float64) *TenantPriceListUpdate {
	_u.mutation.ResetLaborCost()
	_u.mutation.SetLaborCost(v)
	return _u
}

// SetNillableLaborCost sets the "labor_cost" field if the given value is not nil.
func (_u *TenantPriceListUpdate) SetNillableLaborCost(v *float64) *TenantPriceListUpdate {
	if v != nil {
		_u.SetLaborCost(*v)
	}
	return _u
}

// AddLaborCost adds value to the "labor_cost" field.
func (_u *TenantPriceListUpdate) AddLaborCost(v float64) *TenantPriceListUpdate {
	_u.mutation.AddLaborCost(v)
	return _u
}

// SetMaterialCost sets the "material_cost" field.
func (_u *TenantPriceListUpdate) SetMaterialCost(v float64) *TenantPriceListUpdate {
	_u.mutation.ResetMaterialCost()
	_u.mutation.SetMaterialCost(v)
	return _u
}

// SetNillableMaterialCost sets the "material_cost" field if the given value is not nil.
func (_u *TenantPriceListUpdate) SetNillableMaterialCost(v *float64) *TenantPriceListUpdate {
	if v != nil {
		_u.SetMaterialCost(*v)
	}
	return _u
}

// AddMaterialCost adds value to the "material_cost" field.
func (_u *TenantPriceListUpdate) AddMaterialCost(v float64) *TenantPriceListUpdate {
	_u.mutation.AddMaterialCost(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TenantPriceListUpdate) SetCreatedAt(v time.Time) *TenantPriceListUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TenantPriceListUpdate) SetNillableCreatedAt(v *time.Time) *TenantPriceListUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantPriceListUpdate) SetUpdatedAt(v time.Time) *TenantPriceListUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TenantPriceListMutation object of the builder.
func (_u *TenantPriceListUpdate) Mutation() *TenantPriceListMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TenantPriceListUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantPriceListUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TenantPriceListUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantPriceListUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantPriceListUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenantpricelist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TenantPriceListUpdate) check() error {
	if v, ok := _u.mutation.TenantEmail(); ok {
		if err := tenantpricelist.TenantEmailValidator(v); err != nil {
			return &ValidationError{Name: "tenant_email", err: fmt.Errorf(`ent: validator failed for field "TenantPriceList.tenant_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := tenantpricelist.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "TenantPriceList.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Task(); ok {
		if err := tenantpricelist.TaskValidator(v); err != nil {
			return &ValidationError{Name: "task", err: fmt.Errorf(`ent: validator failed for field "TenantPriceList.task": %w`, err)}
		}
	}
	return nil
}

func (_u *TenantPriceListUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenantpricelist.Table, tenantpricelist.Columns, sqlgraph.NewFieldSpec(tenantpricelist.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantEmail(); ok {
		_spec.SetField(tenantpricelist.FieldTenantEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(tenantpricelist.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(tenantpricelist.FieldTask, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(tenantpricelist.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.LaborCost(); ok {
		_spec.SetField(tenantpricelist.FieldLaborCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLaborCost(); ok {
		_spec.AddField(tenantpricelist.FieldLaborCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaterialCost(); ok {
		_spec.SetField(tenantpricelist.FieldMaterialCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaterialCost(); ok {
		_spec.AddField(tenantpricelist.FieldMaterialCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(tenantpricelist.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantpricelist.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenantpricelist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TenantPriceListUpdateOne is the builder for updating a single TenantPriceList entity.
type TenantPriceListUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TenantPriceListMutation
}

// SetTenantEmail sets the "tenant_email" field.
func (_u *TenantPriceListUpdateOne) SetTenantEmail(v string) *TenantPriceListUpdateOne {
	_u.mutation.SetTenantEmail(v)
	return _u
}

// SetNillableTenantEmail sets the "tenant_email" field if the given value is not nil.
func (_u *TenantPriceListUpdateOne) SetNillableTenantEmail(v *string) *TenantPriceListUpdateOne {
	if v != nil {
		_u.SetTenantEmail(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *TenantPriceListUpdateOne) SetCategory(v string) *TenantPriceListUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TenantPriceListUpdateOne) SetNillableCategory(v *string) *TenantPriceListUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTask sets the "task" field.
func (_u *TenantPriceListUpdateOne) SetTask(v string) *TenantPriceListUpdateOne {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *TenantPriceListUpdateOne) SetNillableTask(v *string) *TenantPriceListUpdateOne {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *TenantPriceListUpdateOne) SetUnit(v string) *TenantPriceListUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *TenantPriceListUpdateOne) SetNillableUnit(v *string) *TenantPriceListUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetLaborCost sets the "labor_cost" field.
func (_u *TenantPriceListUpdateOne) SetLaborCost(v float64) *TenantPriceListUpdateOne {
	_u.mutation.ResetLaborCost()
	_u.mutation.SetLaborCost(v)
	return _u
}

// SetNillableLaborCost sets the "labor_cost" field if the given value is not nil.
func (_u *TenantPriceListUpdateOne) SetNillableLaborCost(v *float64) *TenantPriceListUpdateOne {
	if v != nil {
		_u.SetLaborCost(*v)
	}
	return _u
}

// AddLaborCost adds value to the "labor_cost" field.
func (_u *TenantPriceListUpdateOne) AddLaborCost(v float64) *TenantPriceListUpdateOne {
	_u.mutation.AddLaborCost(v)
	return _u
}

// SetMaterialCost sets the "material_cost" field.
func (_u *TenantPriceListUpdateOne) SetMaterialCost(v float64) *TenantPriceListUpdateOne {
	_u.mutation.ResetMaterialCost()
	_u.mutation.SetMaterialCost(v)
	return _u
}

// SetNillableMaterialCost sets the "material_cost" field if the given value is not nil.
func (_u *TenantPriceListUpdateOne) SetNillableMaterialCost(v *float64) *TenantPriceListUpdateOne {
	if v != nil {
		_u.SetMaterialCost(*v)
	}
	return _u
}

// AddMaterialCost adds value to the "material_cost" field.
func (_u *TenantPriceListUpdateOne) AddMaterialCost(v float64) *TenantPriceListUpdateOne {
	_u.mutation.AddMaterialCost(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TenantPriceListUpdateOne) SetCreatedAt(v time.Time) *TenantPriceListUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TenantPriceListUpdateOne) SetNillableCreatedAt(v *time.Time) *TenantPriceListUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantPriceListUpdateOne) SetUpdatedAt(v time.Time) *TenantPriceListUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TenantPriceListMutation object of the builder.
func (_u *TenantPriceListUpdateOne) Mutation() *TenantPriceListMutation {
	return _u.mutation
}

// Where appends a list predicates to the TenantPriceListUpdate builder.
func (_u *TenantPriceListUpdateOne) Where(ps ...predicate.TenantPriceList) *TenantPriceListUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TenantPriceListUpdateOne) Select(field string, fields ...string) *TenantPriceListUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TenantPriceList entity.
func (_u *TenantPriceListUpdateOne) Save(ctx context.Context) (*TenantPriceList, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantPriceListUpdateOne) SaveX(ctx context.Context) *TenantPriceList {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TenantPriceListUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantPriceListUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantPriceListUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenantpricelist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TenantPriceListUpdateOne) check() error {
	if v, ok := _u.mutation.TenantEmail(); ok {
		if err := tenantpricelist.TenantEmailValidator(v); err != nil {
			return &ValidationError{Name: "tenant_email", err: fmt.Errorf(`ent: validator failed for field "TenantPriceList.tenant_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := tenantpricelist.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "TenantPriceList.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Task(); ok {
		if err := tenantpricelist.TaskValidator(v); err != nil {
			return &ValidationError{Name: "task", err: fmt.Errorf(`ent: validator failed for field "TenantPriceList.task": %w`, err)}
		}
	}
	return nil
}

func (_u *TenantPriceListUpdateOne) sqlSave(ctx context.Context) (_node *TenantPriceList, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenantpricelist.Table, tenantpricelist.Columns, sqlgraph.NewFieldSpec(tenantpricelist.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TenantPriceList.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tenantpricelist.FieldID)
		for _, f := range fields {
			if !tenantpricelist.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tenantpricelist.FieldID {
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
		_spec.SetField(tenantpricelist.FieldTenantEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(tenantpricelist.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(tenantpricelist.FieldTask, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(tenantpricelist.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.LaborCost(); ok {
		_spec.SetField(tenantpricelist.FieldLaborCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLaborCost(); ok {
		_spec.AddField(tenantpricelist.FieldLaborCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaterialCost(); ok {
		_spec.SetField(tenantpricelist.FieldMaterialCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaterialCost(); ok {
		_spec.AddField(tenantpricelist.FieldMaterialCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(tenantpricelist.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantpricelist.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TenantPriceList{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenantpricelist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
