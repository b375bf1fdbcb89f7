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
	"github.com/Zoli1212/awsflow/gen/ent/offer"
	"github.com/Zoli1212/awsflow/gen/ent/predicate"
	"github.com/Zoli1212/awsflow/gen/ent/requirement"
	"github.com/Zoli1212/awsflow/gen/ent/work"
	"github.com/google/uuid"
)

// RequirementUpdate is the builder for updating Requirement entities.
type RequirementUpdate struct {
	config
	hooks    []Hook
	mutation *RequirementMutation
}

// Where appends a list predicates to the RequirementUpdate builder.
func (_u *RequirementUpdate) Where(ps ...predicate.Requirement) *RequirementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkID sets the "work_id" field.
func (_u *RequirementUpdate) SetWorkID(v uuid.UUID) *RequirementUpdate {
	_u.mutation.SetWorkID(v)
	return _u
}

// SetNillableWorkID sets the "work_id" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableWorkID(v *uuid.UUID) *RequirementUpdate {
	if v != nil {
		_u.SetWorkID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RequirementUpdate) SetTitle(v string) *RequirementUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableTitle(v *string) *RequirementUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RequirementUpdate) SetDescription(v string) *RequirementUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableDescription(v *string) *RequirementUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetVersionNumber sets the "version_number" field.
func (_u *RequirementUpdate) SetVersionNumber(v int) *RequirementUpdate {
	_u.mutation.ResetVersionNumber()
	_u.mutation.SetVersionNumber(v)
	return _u
}

// SetNillableVersionNumber sets the "version_number" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableVersionNumber(v *int) *RequirementUpdate {
	if v != nil {
		_u.SetVersionNumber(*v)
	}
	return _u
}

// AddVersionNumber adds value to the "version_number" field.
func (_u *RequirementUpdate) AddVersionNumber(v int) *RequirementUpdate {
	_u.mutation.AddVersionNumber(v)
	return _u
}

// SetUpdateCount sets the "update_count" field.
func (_u *RequirementUpdate) SetUpdateCount(v int) *RequirementUpdate {
	_u.mutation.ResetUpdateCount()
	_u.mutation.SetUpdateCount(v)
	return _u
}

// SetNillableUpdateCount sets the "update_count" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableUpdateCount(v *int) *RequirementUpdate {
	if v != nil {
		_u.SetUpdateCount(*v)
	}
	return _u
}

// AddUpdateCount adds value to the "update_count" field.
func (_u *RequirementUpdate) AddUpdateCount(v int) *RequirementUpdate {
	_u.mutation.AddUpdateCount(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *RequirementUpdate) SetQuestionCount(v int) *RequirementUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableQuestionCount(v *int) *RequirementUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *RequirementUpdate) AddQuestionCount(v int) *RequirementUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RequirementUpdate) SetCreatedAt(v time.Time) *RequirementUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RequirementUpdate) SetNillableCreatedAt(v *time.Time) *RequirementUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequirementUpdate) SetUpdatedAt(v time.Time) *RequirementUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWork sets the "work" edge to the Work entity.
func (_u *RequirementUpdate) SetWork(v *Work) *RequirementUpdate {
	return _u.SetWorkID(v.ID)
}

// AddOfferIDs adds the "offers" edge to the Offer entity by IDs.
func (_u *RequirementUpdate) AddOfferIDs(ids ...uuid.UUID) *RequirementUpdate {
	_u.mutation.AddOfferIDs(ids...)
	return _u
}

// AddOffers adds the "offers" edges to the Offer entity.
func (_u *RequirementUpdate) AddOffers(v ...*Offer) *RequirementUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOfferIDs(ids...)
}

// Mutation returns the RequirementMutation object of the builder.
func (_u *RequirementUpdate) Mutation() *RequirementMutation {
	return _u.mutation
}

// ClearWork clears the "work" edge to the Work entity.
func (_u *RequirementUpdate) ClearWork() *RequirementUpdate {
	_u.mutation.ClearWork()
	return _u
}

// ClearOffers clears all "offers" edges to the Offer entity.
func (_u *RequirementUpdate) ClearOffers() *RequirementUpdate {
	_u.mutation.ClearOffers()
	return _u
}

// RemoveOfferIDs removes the "offers" edge to Offer entities by IDs.
func (_u *RequirementUpdate) RemoveOfferIDs(ids ...uuid.UUID) *RequirementUpdate {
	_u.mutation.RemoveOfferIDs(ids...)
	return _u
}

// RemoveOffers removes "offers" edges to Offer entities.
func (_u *RequirementUpdate) RemoveOffers(v ...*Offer) *RequirementUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOfferIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequirementUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequirementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequirementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequirementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequirementUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := requirement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequirementUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := requirement.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Requirement.title": %w`, err)}
		}
	}
	if _u.mutation.WorkCleared() && len(_u.mutation.WorkIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Requirement.work"`)
	}
	return nil
}

func (_u *RequirementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requirement.Table, requirement.Columns, sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(requirement.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(requirement.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.VersionNumber(); ok {
		_spec.SetField(requirement.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersionNumber(); ok {
		_spec.AddField(requirement.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdateCount(); ok {
		_spec.SetField(requirement.FieldUpdateCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpdateCount(); ok {
		_spec.AddField(requirement.FieldUpdateCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(requirement.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(requirement.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(requirement.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(requirement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OffersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOffersIDs(); len(nodes) > 0 && !_u.mutation.OffersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OffersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requirement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequirementUpdateOne is the builder for updating a single Requirement entity.
type RequirementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequirementMutation
}

// SetWorkID sets the "work_id" field.
func (_u *RequirementUpdateOne) SetWorkID(v uuid.UUID) *RequirementUpdateOne {
	_u.mutation.SetWorkID(v)
	return _u
}

// SetNillableWorkID sets the "work_id" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableWorkID(v *uuid.UUID) *RequirementUpdateOne {
	if v != nil {
		_u.SetWorkID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RequirementUpdateOne) SetTitle(v string) *RequirementUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableTitle(v *string) *RequirementUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RequirementUpdateOne) SetDescription(v string) *RequirementUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableDescription(v *string) *RequirementUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetVersionNumber sets the "version_number" field.
func (_u *RequirementUpdateOne) SetVersionNumber(v int) *RequirementUpdateOne {
	_u.mutation.ResetVersionNumber()
	_u.mutation.SetVersionNumber(v)
	return _u
}

// SetNillableVersionNumber sets the "version_number" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableVersionNumber(v *int) *RequirementUpdateOne {
	if v != nil {
		_u.SetVersionNumber(*v)
	}
	return _u
}

// AddVersionNumber adds value to the "version_number" field.
func (_u *RequirementUpdateOne) AddVersionNumber(v int) *RequirementUpdateOne {
	_u.mutation.AddVersionNumber(v)
	return _u
}

// SetUpdateCount sets the "update_count" field.
func (_u *RequirementUpdateOne) SetUpdateCount(v int) *RequirementUpdateOne {
	_u.mutation.ResetUpdateCount()
	_u.mutation.SetUpdateCount(v)
	return _u
}

// SetNillableUpdateCount sets the "update_count" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableUpdateCount(v *int) *RequirementUpdateOne {
	if v != nil {
		_u.SetUpdateCount(*v)
	}
	return _u
}

// AddUpdateCount adds value to the "update_count" field.
func (_u *RequirementUpdateOne) AddUpdateCount(v int) *RequirementUpdateOne {
	_u.mutation.AddUpdateCount(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *RequirementUpdateOne) SetQuestionCount(v int) *RequirementUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableQuestionCount(v *int) *RequirementUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *RequirementUpdateOne) AddQuestionCount(v int) *RequirementUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RequirementUpdateOne) SetCreatedAt(v time.Time) *RequirementUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RequirementUpdateOne) SetNillableCreatedAt(v *time.Time) *RequirementUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequirementUpdateOne) SetUpdatedAt(v time.Time) *RequirementUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWork sets the "work" edge to the Work entity.
func (_u *RequirementUpdateOne) SetWork(v *Work) *RequirementUpdateOne {
	return _u.SetWorkID(v.ID)
}

// AddOfferIDs adds the "offers" edge to the Offer entity by IDs.
func (_u *RequirementUpdateOne) AddOfferIDs(ids ...uuid.UUID) *RequirementUpdateOne {
	_u.mutation.AddOfferIDs(ids...)
	return _u
}

// AddOffers adds the "offers" edges to the Offer entity.
func (_u *RequirementUpdateOne) AddOffers(v ...*Offer) *RequirementUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOfferIDs(ids...)
}

// Mutation returns the RequirementMutation object of the builder.
func (_u *RequirementUpdateOne) Mutation() *RequirementMutation {
	return _u.mutation
}

// ClearWork clears the "work" edge to the Work entity.
func (_u *RequirementUpdateOne) ClearWork() *RequirementUpdateOne {
	_u.mutation.ClearWork()
	return _u
}

// ClearOffers clears all "offers" edges to the Offer entity.
func (_u *RequirementUpdateOne) ClearOffers() *RequirementUpdateOne {
	_u.mutation.ClearOffers()
	return _u
}

// RemoveOfferIDs removes the "offers" edge to Offer entities by IDs.
func (_u *RequirementUpdateOne) RemoveOfferIDs(ids ...uuid.UUID) *RequirementUpdateOne {
	_u.mutation.RemoveOfferIDs(ids...)
	return _u
}

// RemoveOffers removes "offers" edges to Offer entities.
func (_u *RequirementUpdateOne) RemoveOffers(v ...*Offer) *RequirementUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOfferIDs(ids...)
}

// Where appends a list predicates to the RequirementUpdate builder.
func (_u *RequirementUpdateOne) Where(ps ...predicate.Requirement) *RequirementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequirementUpdateOne) Select(field string, fields ...string) *RequirementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Requirement entity.
func (_u *RequirementUpdateOne) Save(ctx context.Context) (*Requirement, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequirementUpdateOne) SaveX(ctx context.Context) *Requirement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequirementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequirementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequirementUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := requirement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequirementUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := requirement.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Requirement.title": %w`, err)}
		}
	}
	if _u.mutation.WorkCleared() && len(_u.mutation.WorkIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Requirement.work"`)
	}
	return nil
}

func (_u *RequirementUpdateOne) sqlSave(ctx context.Context) (_node *Requirement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requirement.Table, requirement.Columns, sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Requirement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, requirement.FieldID)
		for _, f := range fields {
			if !requirement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != requirement.FieldID {
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
		_spec.SetField(requirement.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(requirement.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.VersionNumber(); ok {
		_spec.SetField(requirement.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersionNumber(); ok {
		_spec.AddField(requirement.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdateCount(); ok {
		_spec.SetField(requirement.FieldUpdateCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpdateCount(); ok {
		_spec.AddField(requirement.FieldUpdateCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(requirement.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(requirement.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(requirement.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(requirement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OffersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOffersIDs(); len(nodes) > 0 && !_u.mutation.OffersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OffersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Requirement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requirement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
