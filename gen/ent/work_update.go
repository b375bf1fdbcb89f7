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
	"github.com/Zoli1212/awsflow/gen/ent/requirement"
	"github.com/Zoli1212/awsflow/gen/ent/work"
	"github.com/google/uuid"
)

// WorkUpdate is the builder for updating Work entities.
type WorkUpdate struct {
	config
	hooks    []Hook
	mutation *WorkMutation
}

// Where appends a list predicates to the WorkUpdate builder.
func (_u *WorkUpdate) Where(ps ...predicate.Work) *WorkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *WorkUpdate) SetTitle(v string) *WorkUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *WorkUpdate) SetNillableTitle(v *string) *WorkUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *WorkUpdate) SetLocation(v string) *WorkUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *WorkUpdate) SetNillableLocation(v *string) *WorkUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *WorkUpdate) SetCustomerName(v string) *WorkUpdate {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *WorkUpdate) SetNillableCustomerName(v *string) *WorkUpdate {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *WorkUpdate) SetDate(v time.Time) *WorkUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *WorkUpdate) SetNillableDate(v *time.Time) *WorkUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTime sets the "time" field.
func (_u *WorkUpdate) SetTime(v string) *WorkUpdate {
	_u.mutation.SetTime(v)
	return _u
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (_u *WorkUpdate) SetNillableTime(v *string) *WorkUpdate {
	if v != nil {
		_u.SetTime(*v)
	}
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *WorkUpdate) SetTotalPrice(v float64) *WorkUpdate {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *WorkUpdate) SetNillableTotalPrice(v *float64) *WorkUpdate {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *WorkUpdate) AddTotalPrice(v float64) *WorkUpdate {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// SetTenantEmail sets the "tenant_email" field.
func (_u *WorkUpdate) SetTenantEmail(v string) *WorkUpdate {
	_u.mutation.SetTenantEmail(v)
	return _u
}

// SetNillableTenantEmail sets the "tenant_email" field if the given value is not nil.
func (_u *WorkUpdate) SetNillableTenantEmail(v *string) *WorkUpdate {
	if v != nil {
		_u.SetTenantEmail(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkUpdate) SetCreatedAt(v time.Time) *WorkUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkUpdate) SetNillableCreatedAt(v *time.Time) *WorkUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkUpdate) SetUpdatedAt(v time.Time) *WorkUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRequirementIDs adds the "requirements" edge to the Requirement entity by IDs.
func (_u *WorkUpdate) AddRequirementIDs(ids ...uuid.UUID) *WorkUpdate {
	_u.mutation.AddRequirementIDs(ids...)
	return _u
}

// AddRequirements adds the "requirements" edges to the Requirement entity.
func (_u *WorkUpdate) AddRequirements(v ...*Requirement) *WorkUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRequirementIDs(ids...)
}

// Mutation returns the WorkMutation object of the builder.
func (_u *WorkUpdate) Mutation() *WorkMutation {
	return _u.mutation
}

// ClearRequirements clears all "requirements" edges to the Requirement entity.
func (_u *WorkUpdate) ClearRequirements() *WorkUpdate {
	_u.mutation.ClearRequirements()
	return _u
}

// RemoveRequirementIDs removes the "requirements" edge to Requirement entities by IDs.
func (_u *WorkUpdate) RemoveRequirementIDs(ids ...uuid.UUID) *WorkUpdate {
	_u.mutation.RemoveRequirementIDs(ids...)
	return _u
}

// RemoveRequirements removes "requirements" edges to Requirement entities.
func (_u *WorkUpdate) RemoveRequirements(v ...*Requirement) *WorkUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRequirementIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := work.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := work.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Work.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TenantEmail(); ok {
		if err := work.TenantEmailValidator(v); err != nil {
			return &ValidationError{Name: "tenant_email", err: fmt.Errorf(`ent: validator failed for field "Work.tenant_email": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(work.Table, work.Columns, sqlgraph.NewFieldSpec(work.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(work.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(work.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(work.FieldCustomerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(work.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Time(); ok {
		_spec.SetField(work.FieldTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(work.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(work.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TenantEmail(); ok {
		_spec.SetField(work.FieldTenantEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(work.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(work.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RequirementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRequirementsIDs(); len(nodes) > 0 && !_u.mutation.RequirementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequirementsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{work.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkUpdateOne is the builder for updating a single Work entity.
type WorkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkMutation
}

// SetTitle sets the "title" field.
func (_u *WorkUpdateOne) SetTitle(v string) *WorkUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *WorkUpdateOne) SetNillableTitle(v *string) *WorkUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *WorkUpdateOne) SetLocation(v string) *WorkUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *WorkUpdateOne) SetNillableLocation(v *string) *WorkUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *WorkUpdateOne) SetCustomerName(v string) *WorkUpdateOne {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *WorkUpdateOne) SetNillableCustomerName(v *string) *WorkUpdateOne {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *WorkUpdateOne) SetDate(v time.Time) *WorkUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *WorkUpdateOne) SetNillableDate(v *time.Time) *WorkUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTime sets the "time" field.
func (_u *WorkUpdateOne) SetTime(v string) *WorkUpdateOne {
	_u.mutation.SetTime(v)
	return _u
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (_u *WorkUpdateOne) SetNillableTime(v *string) *WorkUpdateOne {
	if v != nil {
		_u.SetTime(*v)
	}
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *WorkUpdateOne) SetTotalPrice(v float64) *WorkUpdateOne {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *WorkUpdateOne) SetNillableTotalPrice(v *float64) *WorkUpdateOne {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *WorkUpdateOne) AddTotalPrice(v float64) *WorkUpdateOne {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// SetTenantEmail sets the "tenant_email" field.
func (_u *WorkUpdateOne) SetTenantEmail(v string) *WorkUpdateOne {
	_u.mutation.SetTenantEmail(v)
	return _u
}

// SetNillableTenantEmail sets the "tenant_email" field if the given value is not nil.
func (_u *WorkUpdateOne) SetNillableTenantEmail(v *string) *WorkUpdateOne {
	if v != nil {
		_u.SetTenantEmail(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkUpdateOne) SetCreatedAt(v time.Time) *WorkUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkUpdateOne) SetNillableCreatedAt(v *time.Time) *WorkUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkUpdateOne) SetUpdatedAt(v time.Time) *WorkUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRequirementIDs adds the "requirements" edge to the Requirement entity by IDs.
func (_u *WorkUpdateOne) AddRequirementIDs(ids ...uuid.UUID) *WorkUpdateOne {
	_u.mutation.AddRequirementIDs(ids...)
	return _u
}

// AddRequirements adds the "requirements" edges to the Requirement entity.
func (_u *WorkUpdateOne) AddRequirements(v ...*Requirement) *WorkUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRequirementIDs(ids...)
}

// Mutation returns the WorkMutation object of the builder.
func (_u *WorkUpdateOne) Mutation() *WorkMutation {
	return _u.mutation
}

// ClearRequirements clears all "requirements" edges to the Requirement entity.
func (_u *WorkUpdateOne) ClearRequirements() *WorkUpdateOne {
	_u.mutation.ClearRequirements()
	return _u
}

// RemoveRequirementIDs removes the "requirements" edge to Requirement entities by IDs.
func (_u *WorkUpdateOne) RemoveRequirementIDs(ids ...uuid.UUID) *WorkUpdateOne {
	_u.mutation.RemoveRequirementIDs(ids...)
	return _u
}

// RemoveRequirements removes "requirements" edges to Requirement entities.
func (_u *WorkUpdateOne) RemoveRequirements(v ...*Requirement) *WorkUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRequirementIDs(ids...)
}

// Where appends a list predicates to the WorkUpdate builder.
func (_u *WorkUpdateOne) Where(ps ...predicate.Work) *WorkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkUpdateOne) Select(field string, fields ...string) *WorkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Work entity.
func (_u *WorkUpdateOne) Save(ctx context.Context) (*Work, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkUpdateOne) SaveX(ctx context.Context) *Work {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := work.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := work.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Work.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TenantEmail(); ok {
		if err := work.TenantEmailValidator(v); err != nil {
			return &ValidationError{Name: "tenant_email", err: fmt.Errorf(`ent: validator failed for field "Work.tenant_email": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkUpdateOne) sqlSave(ctx context.Context) (_node *Work, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(work.Table, work.Columns, sqlgraph.NewFieldSpec(work.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Work.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, work.FieldID)
		for _, f := range fields {
			if !work.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != work.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(work.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(work.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(work.FieldCustomerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(work.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Time(); ok {
		_spec.SetField(work.FieldTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(work.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(work.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TenantEmail(); ok {
		_spec.SetField(work.FieldTenantEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(work.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(work.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RequirementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRequirementsIDs(); len(nodes) > 0 && !_u.mutation.RequirementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequirementsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Work{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{work.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
