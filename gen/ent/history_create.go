// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Zoli1212/awsflow/gen/ent/history"
	"github.com/google/uuid"
)

// HistoryCreate is the builder for creating a History entity.
type HistoryCreate struct {
	config
	mutation *HistoryMutation
	hooks    []Hook
}

// SetUserEmail sets the "user_email" field.
func (_c *HistoryCreate) SetUserEmail(v string) *HistoryCreate {
	_c.mutation.SetUserEmail(v)
	return _c
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_c *HistoryCreate) SetNillableUserEmail(v *string) *HistoryCreate {
	if v != nil {
		_c.SetUserEmail(*v)
	}
	return _c
}

// SetTenantEmail sets the "tenant_email" field.
func (_c *HistoryCreate) SetTenantEmail(v string) *HistoryCreate {
	_c.mutation.SetTenantEmail(v)
	return _c
}

// SetNillableTenantEmail sets the "tenant_email" field if the given value is not nil.
func (_c *HistoryCreate) SetNillableTenantEmail(v *string) *HistoryCreate {
	if v != nil {
		_c.SetTenantEmail(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *HistoryCreate) SetContent(v string) *HistoryCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *HistoryCreate) SetNillableContent(v *string) *HistoryCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetAiAgentType sets the "ai_agent_type" field.
func (_c *HistoryCreate) SetAiAgentType(v string) *HistoryCreate {
	_c.mutation.SetAiAgentType(v)
	return _c
}

// SetNillableAiAgentType sets the "ai_agent_type" field if the given value is not nil.
func (_c *HistoryCreate) SetNillableAiAgentType(v *string) *HistoryCreate {
	if v != nil {
		_c.SetAiAgentType(*v)
	}
	return _c
}

// SetFileType sets the "file_type" field.
func (_c *HistoryCreate) SetFileType(v string) *HistoryCreate {
	_c.mutation.SetFileType(v)
	return _c
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_c *HistoryCreate) SetNillableFileType(v *string) *HistoryCreate {
	if v != nil {
		_c.SetFileType(*v)
	}
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *HistoryCreate) SetFileName(v string) *HistoryCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_c *HistoryCreate) SetNillableFileName(v *string) *HistoryCreate {
	if v != nil {
		_c.SetFileName(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HistoryCreate) SetCreatedAt(v time.Time) *HistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HistoryCreate) SetNillableCreatedAt(v *time.Time) *HistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HistoryCreate) SetID(v uuid.UUID) *HistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *HistoryCreate) SetNillableID(v *uuid.UUID) *HistoryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the HistoryMutation object of the builder.
func (_c *HistoryCreate) Mutation() *HistoryMutation {
	return _c.mutation
}

// Save creates the History in the database.
func (_c *HistoryCreate) Save(ctx context.Context) (*History, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HistoryCreate) SaveX(ctx context.Context) *History {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HistoryCreate) defaults() {
	if _, ok := _c.mutation.UserEmail(); !ok {
		v := history.DefaultUserEmail
		_c.mutation.SetUserEmail(v)
	}
	if _, ok := _c.mutation.TenantEmail(); !ok {
		v := history.DefaultTenantEmail
		_c.mutation.SetTenantEmail(v)
	}
	if _, ok := _c.mutation.Content(); !ok {
		v := history.DefaultContent
		_c.mutation.SetContent(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := history.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := history.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HistoryCreate) check() error {
	if _, ok := _c.mutation.UserEmail(); !ok {
		return &ValidationError{Name: "user_email", err: errors.New(`ent: missing required field "History.user_email"`)}
	}
	if _, ok := _c.mutation.TenantEmail(); !ok {
		return &ValidationError{Name: "tenant_email", err: errors.New(`ent: missing required field "History.tenant_email"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "History.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "History.created_at"`)}
	}
	return nil
}

func (_c *HistoryCreate) sqlSave(ctx context.Context) (*History, error) {
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

func (_c *HistoryCreate) createSpec() (*History, *sqlgraph.CreateSpec) {
	var (
		_node = &History{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(history.Table, sqlgraph.NewFieldSpec(history.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserEmail(); ok {
		_spec.SetField(history.FieldUserEmail, field.TypeString, value)
		_node.UserEmail = value
	}
	if value, ok := _c.mutation.TenantEmail(); ok {
		_spec.SetField(history.FieldTenantEmail, field.TypeString, value)
		_node.TenantEmail = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(history.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.AiAgentType(); ok {
		_spec.SetField(history.FieldAiAgentType, field.TypeString, value)
		_node.AiAgentType = &value
	}
	if value, ok := _c.mutation.FileType(); ok {
		_spec.SetField(history.FieldFileType, field.TypeString, value)
		_node.FileType = &value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(history.FieldFileName, field.TypeString, value)
		_node.FileName = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(history.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// HistoryCreateBulk is the builder for creating many History entities in bulk.
type HistoryCreateBulk struct {
	config
	err      error
	builders []*HistoryCreate
}

// Save creates the History entities in the database.
func (_c *HistoryCreateBulk) Save(ctx context.Context) ([]*History, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*History, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HistoryMutation)
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
func (_c *HistoryCreateBulk) SaveX(ctx context.Context) []*History {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
