// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Zoli1212/awsflow/gen/ent/offer"
	"github.com/Zoli1212/awsflow/gen/ent/predicate"
	"github.com/Zoli1212/awsflow/gen/ent/requirement"
	"github.com/Zoli1212/awsflow/internal/entity"
	"github.com/google/uuid"
)

// OfferUpdate is the builder for updating Offer entities.
type OfferUpdate struct {
	config
	hooks    []Hook
	mutation *OfferMutation
}

// Where appends a list predicates to the OfferUpdate builder.
func (_u *OfferUpdate) Where(ps ...predicate.Offer) *OfferUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequirementID sets the "requirement_id" field.
func (_u *OfferUpdate) SetRequirementID(v uuid.UUID) *OfferUpdate {
	_u.mutation.SetRequirementID(v)
	return _u
}

// SetNillableRequirementID sets the "requirement_id" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableRequirementID(v *uuid.UUID) *OfferUpdate {
	if v != nil {
		_u.SetRequirementID(*v)
	}
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *OfferUpdate) SetRecordID(v string) *OfferUpdate {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableRecordID(v *string) *OfferUpdate {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *OfferUpdate) SetTitle(v string) *OfferUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableTitle(v *string) *OfferUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OfferUpdate) SetStatus(v string) *OfferUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableStatus(v *string) *OfferUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *OfferUpdate) SetDescription(v string) *OfferUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableDescription(v *string) *OfferUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *OfferUpdate) SetLocation(v string) *OfferUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableLocation(v *string) *OfferUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *OfferUpdate) SetTotalPrice(v float64) *OfferUpdate {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableTotalPrice(v *float64) *OfferUpdate {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *OfferUpdate) AddTotalPrice(v float64) *OfferUpdate {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// SetMaterialTotal sets the "material_total" field.
func (_u *OfferUpdate) SetMaterialTotal(v float64) *OfferUpdate {
	_u.mutation.ResetMaterialTotal()
	_u.mutation.SetMaterialTotal(v)
	return _u
}

// SetNillableMaterialTotal sets the "material_total" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableMaterialTotal(v *float64) *OfferUpdate {
	if v != nil {
		_u.SetMaterialTotal(*v)
	}
	return _u
}

// AddMaterialTotal adds value to the "material_total" field.
func (_u *OfferUpdate) AddMaterialTotal(v float64) *OfferUpdate {
	_u.mutation.AddMaterialTotal(v)
	return _u
}

// SetWorkTotal sets the "work_total" field.
func (_u *OfferUpdate) SetWorkTotal(v float64) *OfferUpdate {
	_u.mutation.ResetWorkTotal()
	_u.mutation.SetWorkTotal(v)
	return _u
}

// SetNillableWorkTotal sets the "work_total" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableWorkTotal(v *float64) *OfferUpdate {
	if v != nil {
		_u.SetWorkTotal(*v)
	}
	return _u
}

// AddWorkTotal adds value to the "work_total" field.
func (_u *OfferUpdate) AddWorkTotal(v float64) *OfferUpdate {
	_u.mutation.AddWorkTotal(v)
	return _u
}

// SetItems sets the "items" field.
func (_u *OfferUpdate) SetItems(v []entity.OfferItem) *OfferUpdate {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *OfferUpdate) AppendItems(v []entity.OfferItem) *OfferUpdate {
	_u.mutation.AppendItems(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *OfferUpdate) SetNotes(v string) *OfferUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableNotes(v *string) *OfferUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *OfferUpdate) ClearNotes() *OfferUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetOfferSummary sets the "offer_summary" field.
func (_u *OfferUpdate) SetOfferSummary(v string) *OfferUpdate {
	_u.mutation.SetOfferSummary(v)
	return _u
}

// SetNillableOfferSummary sets the "offer_summary" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableOfferSummary(v *string) *OfferUpdate {
	if v != nil {
		_u.SetOfferSummary(*v)
	}
	return _u
}

// ClearOfferSummary clears the value of the "offer_summary" field.
func (_u *OfferUpdate) ClearOfferSummary() *OfferUpdate {
	_u.mutation.ClearOfferSummary()
	return _u
}

// SetEstimatedDuration sets the "estimated_duration" field.
func (_u *OfferUpdate) SetEstimatedDuration(v string) *OfferUpdate {
	_u.mutation.SetEstimatedDuration(v)
	return _u
}

// SetNillableEstimatedDuration sets the "estimated_duration" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableEstimatedDuration(v *string) *OfferUpdate {
	if v != nil {
		_u.SetEstimatedDuration(*v)
	}
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *OfferUpdate) SetValidUntil(v time.Time) *OfferUpdate {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableValidUntil(v *time.Time) *OfferUpdate {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (_u *OfferUpdate) ClearValidUntil() *OfferUpdate {
	_u.mutation.ClearValidUntil()
	return _u
}

// SetIsConvertedFromExisting sets the "is_converted_from_existing" field.
func (_u *OfferUpdate) SetIsConvertedFromExisting(v bool) *OfferUpdate {
	_u.mutation.SetIsConvertedFromExisting(v)
	return _u
}

// SetNillableIsConvertedFromExisting sets the "is_converted_from_existing" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableIsConvertedFromExisting(v *bool) *OfferUpdate {
	if v != nil {
		_u.SetIsConvertedFromExisting(*v)
	}
	return _u
}

// SetTenantEmail sets the "tenant_email" field.
func (_u *OfferUpdate) SetTenantEmail(v string) *OfferUpdate {
	_u.mutation.SetTenantEmail(v)
	return _u
}

// SetNillableTenantEmail sets the "tenant_email" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableTenantEmail(v *string) *OfferUpdate {
	if v != nil {
		_u.SetTenantEmail(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OfferUpdate) SetCreatedAt(v time.Time) *OfferUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableCreatedAt(v *time.Time) *OfferUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OfferUpdate) SetUpdatedAt(v time.Time) *OfferUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRequirement sets the "requirement" edge to the Requirement entity.
func (_u *OfferUpdate) SetRequirement(v *Requirement) *OfferUpdate {
	return _u.SetRequirementID(v.ID)
}

// Mutation returns the OfferMutation object of the builder.
func (_u *OfferUpdate) Mutation() *OfferMutation {
	return _u.mutation
}

// ClearRequirement clears the "requirement" edge to the Requirement entity.
func (_u *OfferUpdate) ClearRequirement() *OfferUpdate {
	_u.mutation.ClearRequirement()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OfferUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OfferUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OfferUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OfferUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OfferUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := offer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OfferUpdate) check() error {
	if v, ok := _u.mutation.RecordID(); ok {
		if err := offer.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "Offer.record_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := offer.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Offer.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := offer.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Offer.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TenantEmail(); ok {
		if err := offer.TenantEmailValidator(v); err != nil {
			return &ValidationError{Name: "tenant_email", err: fmt.Errorf(`ent: validator failed for field "Offer.tenant_email": %w`, err)}
		}
	}
	if _u.mutation.RequirementCleared() && len(_u.mutation.RequirementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Offer.requirement"`)
	}
	return nil
}

func (_u *OfferUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(offer.Table, offer.Columns, sqlgraph.NewFieldSpec(offer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(offer.FieldRecordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(offer.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(offer.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(offer.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(offer.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(offer.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(offer.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaterialTotal(); ok {
		_spec.SetField(offer.FieldMaterialTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaterialTotal(); ok {
		_spec.AddField(offer.FieldMaterialTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WorkTotal(); ok {
		_spec.SetField(offer.FieldWorkTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWorkTotal(); ok {
		_spec.AddField(offer.FieldWorkTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(offer.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, offer.FieldItems, value)
		})
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(offer.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(offer.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.OfferSummary(); ok {
		_spec.SetField(offer.FieldOfferSummary, field.TypeString, value)
	}
	if _u.mutation.OfferSummaryCleared() {
		_spec.ClearField(offer.FieldOfferSummary, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedDuration(); ok {
		_spec.SetField(offer.FieldEstimatedDuration, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(offer.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.ValidUntilCleared() {
		_spec.ClearField(offer.FieldValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.IsConvertedFromExisting(); ok {
		_spec.SetField(offer.FieldIsConvertedFromExisting, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TenantEmail(); ok {
		_spec.SetField(offer.FieldTenantEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(offer.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(offer.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RequirementCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   offer.RequirementTable,
			Columns: []string{offer.RequirementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequirementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   offer.RequirementTable,
			Columns: []string{offer.RequirementColumn},
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
			err = &NotFoundError{offer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OfferUpdateOne is the builder for updating a single Offer entity.
type OfferUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OfferMutation
}

// SetRequirementID sets the "requirement_id" field.
func (_u *OfferUpdateOne) SetRequirementID(v uuid.UUID) *OfferUpdateOne {
	_u.mutation.SetRequirementID(v)
	return _u
}

// SetNillableRequirementID sets the "requirement_id" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableRequirementID(v *uuid.UUID) *OfferUpdateOne {
	if v != nil {
		_u.SetRequirementID(*v)
	}
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *OfferUpdateOne) SetRecordID(v string) *OfferUpdateOne {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableRecordID(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *OfferUpdateOne) SetTitle(v string) *OfferUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableTitle(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OfferUpdateOne) SetStatus(v string) *OfferUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableStatus(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *OfferUpdateOne) SetDescription(v string) *OfferUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableDescription(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *OfferUpdateOne) SetLocation(v string) *OfferUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableLocation(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *OfferUpdateOne) SetTotalPrice(v float64) *OfferUpdateOne {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableTotalPrice(v *float64) *OfferUpdateOne {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *OfferUpdateOne) AddTotalPrice(v float64) *OfferUpdateOne {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// SetMaterialTotal sets the "material_total" field.
func (_u *OfferUpdateOne) SetMaterialTotal(v float64) *OfferUpdateOne {
	_u.mutation.ResetMaterialTotal()
	_u.mutation.SetMaterialTotal(v)
	return _u
}

// SetNillableMaterialTotal sets the "material_total" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableMaterialTotal(v *float64) *OfferUpdateOne {
	if v != nil {
		_u.SetMaterialTotal(*v)
	}
	return _u
}

// AddMaterialTotal adds value to the "material_total" field.
func (_u *OfferUpdateOne) AddMaterialTotal(v float64) *OfferUpdateOne {
	_u.mutation.AddMaterialTotal(v)
	return _u
}

// SetWorkTotal sets the "work_total" field.
func (_u *OfferUpdateOne) SetWorkTotal(v float64) *OfferUpdateOne {
	_u.mutation.ResetWorkTotal()
	_u.mutation.SetWorkTotal(v)
	return _u
}

// SetNillableWorkTotal sets the "work_total" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableWorkTotal(v *float64) *OfferUpdateOne {
	if v != nil {
		_u.SetWorkTotal(*v)
	}
	return _u
}

// AddWorkTotal adds value to the "work_total" field.
func (_u *OfferUpdateOne) AddWorkTotal(v float64) *OfferUpdateOne {
	_u.mutation.AddWorkTotal(v)
	return _u
}

// SetItems sets the "items" field.
func (_u *OfferUpdateOne) SetItems(v []entity.OfferItem) *OfferUpdateOne {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *OfferUpdateOne) AppendItems(v []entity.OfferItem) *OfferUpdateOne {
	_u.mutation.AppendItems(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *OfferUpdateOne) SetNotes(v string) *OfferUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableNotes(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *OfferUpdateOne) ClearNotes() *OfferUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetOfferSummary sets the "offer_summary" field.
func (_u *OfferUpdateOne) SetOfferSummary(v string) *OfferUpdateOne {
	_u.mutation.SetOfferSummary(v)
	return _u
}

// SetNillableOfferSummary sets the "offer_summary" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableOfferSummary(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetOfferSummary(*v)
	}
	return _u
}

// ClearOfferSummary clears the value of the "offer_summary" field.
func (_u *OfferUpdateOne) ClearOfferSummary() *OfferUpdateOne {
	_u.mutation.ClearOfferSummary()
	return _u
}

// SetEstimatedDuration sets the "estimated_duration" field.
func (_u *OfferUpdateOne) SetEstimatedDuration(v string) *OfferUpdateOne {
	_u.mutation.SetEstimatedDuration(v)
	return _u
}

// SetNillableEstimatedDuration sets the "estimated_duration" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableEstimatedDuration(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetEstimatedDuration(*v)
	}
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *OfferUpdateOne) SetValidUntil(v time.Time) *OfferUpdateOne {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableValidUntil(v *time.Time) *OfferUpdateOne {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (_u *OfferUpdateOne) ClearValidUntil() *OfferUpdateOne {
	_u.mutation.ClearValidUntil()
	return _u
}

// SetIsConvertedFromExisting sets the "is_converted_from_existing" field.
func (_u *OfferUpdateOne) SetIsConvertedFromExisting(v bool) *OfferUpdateOne {
	_u.mutation.SetIsConvertedFromExisting(v)
	return _u
}

// SetNillableIsConvertedFromExisting sets the "is_converted_from_existing" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableIsConvertedFromExisting(v *bool) *OfferUpdateOne {
	if v != nil {
		_u.SetIsConvertedFromExisting(*v)
	}
	return _u
}

// SetTenantEmail sets the "tenant_email" field.
func (_u *OfferUpdateOne) SetTenantEmail(v string) *OfferUpdateOne {
	_u.mutation.SetTenantEmail(v)
	return _u
}

// SetNillableTenantEmail sets the "tenant_email" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableTenantEmail(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetTenantEmail(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OfferUpdateOne) SetCreatedAt(v time.Time) *OfferUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableCreatedAt(v *time.Time) *OfferUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OfferUpdateOne) SetUpdatedAt(v time.Time) *OfferUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRequirement sets the "requirement" edge to the Requirement entity.
func (_u *OfferUpdateOne) SetRequirement(v *Requirement) *OfferUpdateOne {
	return _u.SetRequirementID(v.ID)
}

// Mutation returns the OfferMutation object of the builder.
func (_u *OfferUpdateOne) Mutation() *OfferMutation {
	return _u.mutation
}

// ClearRequirement clears the "requirement" edge to the Requirement entity.
func (_u *OfferUpdateOne) ClearRequirement() *OfferUpdateOne {
	_u.mutation.ClearRequirement()
	return _u
}

// Where appends a list predicates to the OfferUpdate builder.
func (_u *OfferUpdateOne) Where(ps ...predicate.Offer) *OfferUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OfferUpdateOne) Select(field string, fields ...string) *OfferUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Offer entity.
func (_u *OfferUpdateOne) Save(ctx context.Context) (*Offer, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OfferUpdateOne) SaveX(ctx context.Context) *Offer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OfferUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OfferUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OfferUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := offer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OfferUpdateOne) check() error {
	if v, ok := _u.mutation.RecordID(); ok {
		if err := offer.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "Offer.record_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := offer.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Offer.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := offer.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Offer.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TenantEmail(); ok {
		if err := offer.TenantEmailValidator(v); err != nil {
			return &ValidationError{Name: "tenant_email", err: fmt.Errorf(`ent: validator failed for field "Offer.tenant_email": %w`, err)}
		}
	}
	if _u.mutation.RequirementCleared() && len(_u.mutation.RequirementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Offer.requirement"`)
	}
	return nil
}

func (_u *OfferUpdateOne) sqlSave(ctx context.Context) (_node *Offer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(offer.Table, offer.Columns, sqlgraph.NewFieldSpec(offer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Offer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, offer.FieldID)
		for _, f := range fields {
			if !offer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != offer.FieldID {
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
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(offer.FieldRecordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(offer.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(offer.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(offer.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(offer.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(offer.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(offer.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaterialTotal(); ok {
		_spec.SetField(offer.FieldMaterialTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaterialTotal(); ok {
		_spec.AddField(offer.FieldMaterialTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WorkTotal(); ok {
		_spec.SetField(offer.FieldWorkTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWorkTotal(); ok {
		_spec.AddField(offer.FieldWorkTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(offer.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, offer.FieldItems, value)
		})
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(offer.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(offer.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.OfferSummary(); ok {
		_spec.SetField(offer.FieldOfferSummary, field.TypeString, value)
	}
	if _u.mutation.OfferSummaryCleared() {
		_spec.ClearField(offer.FieldOfferSummary, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedDuration(); ok {
		_spec.SetField(offer.FieldEstimatedDuration, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(offer.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.ValidUntilCleared() {
		_spec.ClearField(offer.FieldValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.IsConvertedFromExisting(); ok {
		_spec.SetField(offer.FieldIsConvertedFromExisting, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TenantEmail(); ok {
		_spec.SetField(offer.FieldTenantEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(offer.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(offer.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RequirementCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   offer.RequirementTable,
			Columns: []string{offer.RequirementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequirementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   offer.RequirementTable,
			Columns: []string{offer.RequirementColumn},
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
	_node = &Offer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{offer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
