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
	"github.com/Zoli1212/awsflow/gen/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdate) SetName(v string) *UserUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableName(v *string) *UserUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdate) SetRole(v string) *UserUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdate) SetNillableRole(v *string) *UserUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetIsSuperUser sets the "is_super_user" field.
func (_u *UserUpdate) SetIsSuperUser(v bool) *UserUpdate {
	_u.mutation.SetIsSuperUser(v)
	return _u
}

// SetNillableIsSuperUser sets the "is_super_user" field if the given value is not nil.
func (_u *UserUpdate) SetNillableIsSuperUser(v *bool) *UserUpdate {
	if v != nil {
		_u.SetIsSuperUser(*v)
	}
	return _u
}

// SetIsTenant sets the "is_tenant" field.
func (_u *UserUpdate) SetIsTenant(v bool) *UserUpdate {
	_u.mutation.SetIsTenant(v)
	return _u
}

// SetNillableIsTenant sets the "is_tenant" field if the given value is not nil.
func (_u *UserUpdate) SetNillableIsTenant(v *bool) *UserUpdate {
	if v != nil {
		_u.SetIsTenant(*v)
	}
	return _u
}

// SetInvitedBy sets the "invited_by" field.
func (_u *UserUpdate) SetInvitedBy(v string) *UserUpdate {
	_u.mutation.SetInvitedBy(v)
	return _u
}

// SetNillableInvitedBy sets the "invited_by" field if the given value is not nil.
func (_u *UserUpdate) SetNillableInvitedBy(v *string) *UserUpdate {
	if v != nil {
		_u.SetInvitedBy(*v)
	}
	return _u
}

// ClearInvitedBy clears the value of the "invited_by" field.
func (_u *UserUpdate) ClearInvitedBy() *UserUpdate {
	_u.mutation.ClearInvitedBy()
	return _u
}

// SetTrialEndsAt sets the "trial_ends_at" field.
func (_u *UserUpdate) SetTrialEndsAt(v time.Time) *UserUpdate {
	_u.mutation.SetTrialEndsAt(v)
	return _u
}

// SetNillableTrialEndsAt sets the "trial_ends_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableTrialEndsAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetTrialEndsAt(*v)
	}
	return _u
}

// ClearTrialEndsAt clears the value of the "trial_ends_at" field.
func (_u *UserUpdate) ClearTrialEndsAt() *UserUpdate {
	_u.mutation.ClearTrialEndsAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UserUpdate) SetCreatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableCreatedAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsSuperUser(); ok {
		_spec.SetField(user.FieldIsSuperUser, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsTenant(); ok {
		_spec.SetField(user.FieldIsTenant, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InvitedBy(); ok {
		_spec.SetField(user.FieldInvitedBy, field.TypeString, value)
	}
	if _u.mutation.InvitedByCleared() {
		_spec.ClearField(user.FieldInvitedBy, field.TypeString)
	}
	if value, ok := _u.mutation.TrialEndsAt(); ok {
		_spec.SetField(user.FieldTrialEndsAt, field.TypeTime, value)
	}
	if _u.mutation.TrialEndsAtCleared() {
		_spec.ClearField(user.FieldTrialEndsAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(user.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetName sets the "name" field.
func (_u *UserUpdateOne) SetName(v string) *UserUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdateOne) SetRole(v string) *UserUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableRole(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetIsSuperUser sets the "is_super_user" field.
func (_u *UserUpdateOne) SetIsSuperUser(v bool) *UserUpdateOne {
	_u.mutation.SetIsSuperUser(v)
	return _u
}

// SetNillableIsSuperUser sets the "is_super_user" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableIsSuperUser(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetIsSuperUser(*v)
	}
	return _u
}

// SetIsTenant sets the "is_tenant" field.
func (_u *UserUpdateOne) SetIsTenant(v bool) *UserUpdateOne {
	_u.mutation.SetIsTenant(v)
	return _u
}

// SetNillableIsTenant sets the "is_tenant" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableIsTenant(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetIsTenant(*v)
	}
	return _u
}

// SetInvitedBy sets the "invited_by" field.
func (_u *UserUpdateOne) SetInvitedBy(v string) *UserUpdateOne {
	_u.mutation.SetInvitedBy(v)
	return _u
}

// SetNillableInvitedBy sets the "invited_by" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableInvitedBy(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetInvitedBy(*v)
	}
	return _u
}

// ClearInvitedBy clears the value of the "invited_by" field.
func (_u *UserUpdateOne) ClearInvitedBy() *UserUpdateOne {
	_u.mutation.ClearInvitedBy()
	return _u
}

// SetTrialEndsAt sets the "trial_ends_at" field.
func (_u *UserUpdateOne) SetTrialEndsAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetTrialEndsAt(v)
	return _u
}

// SetNillableTrialEndsAt sets the "trial_ends_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableTrialEndsAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetTrialEndsAt(*v)
	}
	return _u
}

// ClearTrialEndsAt clears the value of the "trial_ends_at" field.
func (_u *UserUpdateOne) ClearTrialEndsAt() *UserUpdateOne {
	_u.mutation.ClearTrialEndsAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UserUpdateOne) SetCreatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableCreatedAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsSuperUser(); ok {
		_spec.SetField(user.FieldIsSuperUser, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsTenant(); ok {
		_spec.SetField(user.FieldIsTenant, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InvitedBy(); ok {
		_spec.SetField(user.FieldInvitedBy, field.TypeString, value)
	}
	if _u.mutation.InvitedByCleared() {
		_spec.ClearField(user.FieldInvitedBy, field.TypeString)
	}
	if value, ok := _u.mutation.TrialEndsAt(); ok {
		_spec.SetField(user.FieldTrialEndsAt, field.TypeTime, value)
	}
	if _u.mutation.TrialEndsAtCleared() {
		_spec.ClearField(user.FieldTrialEndsAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(user.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
