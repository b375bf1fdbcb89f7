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
	"github.com/Zoli1212/awsflow/gen/ent/history"
	"github.com/Zoli1212/awsflow/gen/ent/predicate"
)

// HistoryUpdate is the builder for updating History entities.
type HistoryUpdate struct {
	config
	hooks    []Hook
	mutation *HistoryMutation
}

// Where appends a list predicates to the HistoryUpdate builder.
func (_u *HistoryUpdate) Where(ps ...predicate.History) *HistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserEmail sets the "user_email" field.
func (_u *HistoryUpdate) SetUserEmail(v string) *HistoryUpdate {
	_u.mutation.SetUserEmail(v)
	return _u
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_u *HistoryUpdate) SetNillableUserEmail(v *string) *HistoryUpdate {
	if v != nil {
		_u.SetUserEmail(*v)
	}
	return _u
}

// SetTenantEmail sets the "tenant_email" field.
func (_u *HistoryUpdate) SetTenantEmail(v string) *HistoryUpdate {
	_u.mutation.SetTenantEmail(v)
	return _u
}

// SetNillableTenantEmail sets the "tenant_email" field if the given value is not nil.
func (_u *HistoryUpdate) SetNillableTenantEmail(v *string) *HistoryUpdate {
	if v != nil {
		_u.SetTenantEmail(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *HistoryUpdate) SetContent(v string) *HistoryUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *HistoryUpdate) SetNillableContent(v *string) *HistoryUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetAiAgentType sets the "ai_agent_type" field.
func (_u *HistoryUpdate) SetAiAgentType(v string) *HistoryUpdate {
	_u.mutation.SetAiAgentType(v)
	return _u
}

// SetNillableAiAgentType sets the "ai_agent_type" field if the given value is not nil.
func (_u *HistoryUpdate) SetNillableAiAgentType(v *string) *HistoryUpdate {
	if v != nil {
		_u.SetAiAgentType(*v)
	}
	return _u
}

// ClearAiAgentType clears the value of the "ai_agent_type" field.
func (_u *HistoryUpdate) ClearAiAgentType() *HistoryUpdate {
	_u.mutation.ClearAiAgentType()
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *HistoryUpdate) SetFileType(v string) *HistoryUpdate {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *HistoryUpdate) SetNillableFileType(v *string) *HistoryUpdate {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// ClearFileType clears the value of the "file_type" field.
func (_u *HistoryUpdate) ClearFileType() *HistoryUpdate {
	_u.mutation.ClearFileType()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *HistoryUpdate) SetFileName(v string) *HistoryUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *HistoryUpdate) SetNillableFileName(v *string) *HistoryUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *HistoryUpdate) ClearFileName() *HistoryUpdate {
	_u.mutation.ClearFileName()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *HistoryUpdate) SetCreatedAt(v time.Time) *HistoryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *HistoryUpdate) SetNillableCreatedAt(v *time.Time) *HistoryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the HistoryMutation object of the builder.
func (_u *HistoryUpdate) Mutation() *HistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(history.Table, history.Columns, sqlgraph.NewFieldSpec(history.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserEmail(); ok {
		_spec.SetField(history.FieldUserEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.TenantEmail(); ok {
		_spec.SetField(history.FieldTenantEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(history.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiAgentType(); ok {
		_spec.SetField(history.FieldAiAgentType, field.TypeString, value)
	}
	if _u.mutation.AiAgentTypeCleared() {
		_spec.ClearField(history.FieldAiAgentType, field.TypeString)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(history.FieldFileType, field.TypeString, value)
	}
	if _u.mutation.FileTypeCleared() {
		_spec.ClearField(history.FieldFileType, field.TypeString)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(history.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(history.FieldFileName, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(history.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{history.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HistoryUpdateOne is the builder for updating a single History entity.
type HistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HistoryMutation
}

// SetUserEmail sets the "user_email" field.
func (_u *HistoryUpdateOne) SetUserEmail(v string) *HistoryUpdateOne {
	_u.mutation.SetUserEmail(v)
	return _u
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_u *HistoryUpdateOne) SetNillableUserEmail(v *string) *HistoryUpdateOne {
	if v != nil {
		_u.SetUserEmail(*v)
	}
	return _u
}

// SetTenantEmail sets the "tenant_email" field.
func (_u *HistoryUpdateOne) SetTenantEmail(v string) *HistoryUpdateOne {
	_u.mutation.SetTenantEmail(v)
	return _u
}

// SetNillableTenantEmail sets the "tenant_email" field if the given value is not nil.
func (_u *HistoryUpdateOne) SetNillableTenantEmail(v *string) *HistoryUpdateOne {
	if v != nil {
		_u.SetTenantEmail(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *HistoryUpdateOne) SetContent(v string) *HistoryUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *HistoryUpdateOne) SetNillableContent(v *string) *HistoryUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetAiAgentType sets the "ai_agent_type" field.
func (_u *HistoryUpdateOne) SetAiAgentType(v string) *HistoryUpdateOne {
	_u.mutation.SetAiAgentType(v)
	return _u
}

// SetNillableAiAgentType sets the "ai_agent_type" field if the given value is not nil.
func (_u *HistoryUpdateOne) SetNillableAiAgentType(v *string) *HistoryUpdateOne {
	if v != nil {
		_u.SetAiAgentType(*v)
	}
	return _u
}

// ClearAiAgentType clears the value of the "ai_agent_type" field.
func (_u *HistoryUpdateOne) ClearAiAgentType() *HistoryUpdateOne {
	_u.mutation.ClearAiAgentType()
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *HistoryUpdateOne) SetFileType(v string) *HistoryUpdateOne {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *HistoryUpdateOne) SetNillableFileType(v *string) *HistoryUpdateOne {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// ClearFileType clears the value of the "file_type" field.
func (_u *HistoryUpdateOne) ClearFileType() *HistoryUpdateOne {
	_u.mutation.ClearFileType()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *HistoryUpdateOne) SetFileName(v string) *HistoryUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *HistoryUpdateOne) SetNillableFileName(v *string) *HistoryUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *HistoryUpdateOne) ClearFileName() *HistoryUpdateOne {
	_u.mutation.ClearFileName()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *HistoryUpdateOne) SetCreatedAt(v time.Time) *HistoryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *HistoryUpdateOne) SetNillableCreatedAt(v *time.Time) *HistoryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the HistoryMutation object of the builder.
func (_u *HistoryUpdateOne) Mutation() *HistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the HistoryUpdate builder.
func (_u *HistoryUpdateOne) Where(ps ...predicate.History) *HistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HistoryUpdateOne) Select(field string, fields ...string) *HistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated History entity.
func (_u *HistoryUpdateOne) Save(ctx context.Context) (*History, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryUpdateOne) SaveX(ctx context.Context) *History {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HistoryUpdateOne) sqlSave(ctx context.Context) (_node *History, err error) {
	_spec := sqlgraph.NewUpdateSpec(history.Table, history.Columns, sqlgraph.NewFieldSpec(history.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "History.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, history.FieldID)
		for _, f := range fields {
			if !history.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != history.FieldID {
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
	if value, ok := _u.mutation.UserEmail(); ok {
		_spec.SetField(history.FieldUserEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.TenantEmail(); ok {
		_spec.SetField(history.FieldTenantEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(history.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiAgentType(); ok {
		_spec.SetField(history.FieldAiAgentType, field.TypeString, value)
	}
	if _u.mutation.AiAgentTypeCleared() {
		_spec.ClearField(history.FieldAiAgentType, field.TypeString)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(history.FieldFileType, field.TypeString, value)
	}
	if _u.mutation.FileTypeCleared() {
		_spec.ClearField(history.FieldFileType, field.TypeString)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(history.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(history.FieldFileName, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(history.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &History{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{history.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
