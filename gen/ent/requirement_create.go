// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Zoli1212/awsflow/gen/ent/offer"
	"github.com/Zoli1212/awsflow/gen/ent/requirement"
	"github.com/Zoli1212/awsflow/gen/ent/work"
	"github.com/google/uuid"
)

// RequirementCreate is the builder for creating a Requirement entity.
type RequirementCreate struct {
	config
	mutation *RequirementMutation
	hooks    []Hook
}

// SetWorkID sets the "work_id" field.
func (_c *RequirementCreate) SetWorkID(v uuid.UUID) *RequirementCreate {
	_c.mutation.SetWorkID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *RequirementCreate) SetTitle(v string) *RequirementCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RequirementCreate) SetDescription(v string) *RequirementCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableDescription(v *string) *RequirementCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetVersionNumber sets the "version_number" field.
func (_c *RequirementCreate) SetVersionNumber(v int) *RequirementCreate {
	_c.mutation.SetVersionNumber(v)
	return _c
}

// SetNillableVersionNumber sets the "version_number" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableVersionNumber(v *int) *RequirementCreate {
	if v != nil {
		_c.SetVersionNumber(*v)
	}
	return _c
}

// SetUpdateCount sets the "update_count" field.
func (_c *RequirementCreate) SetUpdateCount(v int) *RequirementCreate {
	_c.mutation.SetUpdateCount(v)
	return _c
}

// SetNillableUpdateCount sets the "update_count" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableUpdateCount(v *int) *RequirementCreate {
	if v != nil {
		_c.SetUpdateCount(*v)
	}
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *RequirementCreate) SetQuestionCount(v int) *RequirementCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableQuestionCount(v *int) *RequirementCreate {
	if v != nil {
		_c.SetQuestionCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RequirementCreate) SetCreatedAt(v time.Time) *RequirementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableCreatedAt(v *time.Time) *RequirementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RequirementCreate) SetUpdatedAt(v time.Time) *RequirementCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableUpdatedAt(v *time.Time) *RequirementCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RequirementCreate) SetID(v uuid.UUID) *RequirementCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RequirementCreate) SetNillableID(v *uuid.UUID) *RequirementCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetWork sets the "work" edge to the Work entity.
func (_c *RequirementCreate) SetWork(v *Work) *RequirementCreate {
	return _c.SetWorkID(v.ID)
}

// AddOfferIDs adds the "offers" edge to the Offer entity by IDs.
func (_c *RequirementCreate) AddOfferIDs(ids ...uuid.UUID) *RequirementCreate {
	_c.mutation.AddOfferIDs(ids...)
	return _c
}

// AddOffers adds the "offers" edges to the Offer entity.
func (_c *RequirementCreate) AddOffers(v ...*Offer) *RequirementCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOfferIDs(ids...)
}

// Mutation returns the RequirementMutation object of the builder.
func (_c *RequirementCreate) Mutation() *RequirementMutation {
	return _c.mutation
}

// Save creates the Requirement in the database.
func (_c *RequirementCreate) Save(ctx context.Context) (*Requirement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequirementCreate) SaveX(ctx context.Context) *Requirement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequirementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequirementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequirementCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := requirement.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.VersionNumber(); !ok {
		v := requirement.DefaultVersionNumber
		_c.mutation.SetVersionNumber(v)
	}
	if _, ok := _c.mutation.UpdateCount(); !ok {
		v := requirement.DefaultUpdateCount
		_c.mutation.SetUpdateCount(v)
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		v := requirement.DefaultQuestionCount
		_c.mutation.SetQuestionCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := requirement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := requirement.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := requirement.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequirementCreate) check() error {
	if _, ok := _c.mutation.WorkID(); !ok {
		return &ValidationError{Name: "work_id", err: errors.New(`ent: missing required field "Requirement.work_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Requirement.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := requirement.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Requirement.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Requirement.description"`)}
	}
	if _, ok := _c.mutation.VersionNumber(); !ok {
		return &ValidationError{Name: "version_number", err: errors.New(`ent: missing required field "Requirement.version_number"`)}
	}
	if _, ok := _c.mutation.UpdateCount(); !ok {
		return &ValidationError{Name: "update_count", err: errors.New(`ent: missing required field "Requirement.update_count"`)}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "Requirement.question_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Requirement.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Requirement.updated_at"`)}
	}
	if len(_c.mutation.WorkIDs()) == 0 {
		return &ValidationError{Name: "work", err: errors.New(`ent: missing required edge "Requirement.work"`)}
	}
	return nil
}

func (_c *RequirementCreate) sqlSave(ctx context.Context) (*Requirement, error) {
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

func (_c *RequirementCreate) createSpec() (*Requirement, *sqlgraph.CreateSpec) {
	var (
		_node = &Requirement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(requirement.Table, sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(requirement.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(requirement.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.VersionNumber(); ok {
		_spec.SetField(requirement.FieldVersionNumber, field.TypeInt, value)
		_node.VersionNumber = value
	}
	if value, ok := _c.mutation.UpdateCount(); ok {
		_spec.SetField(requirement.FieldUpdateCount, field.TypeInt, value)
		_node.UpdateCount = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(requirement.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(requirement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(requirement.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   requirement.WorkTable,
			Columns: []string{requirement.WorkColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(work.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OffersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   requirement.OffersTable,
			Columns: []string{requirement.OffersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(offer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RequirementCreateBulk is the builder for creating many Requirement entities in bulk.
type RequirementCreateBulk struct {
	config
	err      error
	builders []*RequirementCreate
}

// Save creates the Requirement entities in the database.
func (_c *RequirementCreateBulk) Save(ctx context.Context) ([]*Requirement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Requirement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequirementMutation)
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
func (_c *RequirementCreateBulk) SaveX(ctx context.Context) []*Requirement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequirementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequirementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
