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
	"github.com/Zoli1212/awsflow/internal/entity"
	"github.com/google/uuid"
)

// OfferCreate is the builder for creating a Offer entity.
type OfferCreate struct {
	config
	mutation *OfferMutation
	hooks    []Hook
}

// SetRequirementID sets the "requirement_id" field.
func (_c *OfferCreate) SetRequirementID(v uuid.UUID) *OfferCreate {
	_c.mutation.SetRequirementID(v)
	return _c
}

// SetRecordID sets the "record_id" field.
func (_c *OfferCreate) SetRecordID(v string) *OfferCreate {
	_c.mutation.SetRecordID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *OfferCreate) SetTitle(v string) *OfferCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *OfferCreate) SetStatus(v string) *OfferCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OfferCreate) SetNillableStatus(v *string) *OfferCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *OfferCreate) SetDescription(v string) *OfferCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *OfferCreate) SetNillableDescription(v *string) *OfferCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *OfferCreate) SetLocation(v string) *OfferCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *OfferCreate) SetNillableLocation(v *string) *OfferCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetTotalPrice sets the "total_price" field.
func (_c *OfferCreate) SetTotalPrice(v float64) *OfferCreate {
	_c.mutation.SetTotalPrice(v)
	return _c
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_c *OfferCreate) SetNillableTotalPrice(v *float64) *OfferCreate {
	if v != nil {
		_c.SetTotalPrice(*v)
	}
	return _c
}

// SetMaterialTotal sets the "material_total" field.
func (_c *OfferCreate) SetMaterialTotal(v float64) *OfferCreate {
	_c.mutation.SetMaterialTotal(v)
	return _c
}

// SetNillableMaterialTotal sets the "material_total" field if the given value is not nil.
func (_c *OfferCreate) SetNillableMaterialTotal(v *float64) *OfferCreate {
	if v != nil {
		_c.SetMaterialTotal(*v)
	}
	return _c
}

// SetWorkTotal sets the "work_total" field.
func (_c *OfferCreate) SetWorkTotal(v float64) *OfferCreate {
	_c.mutation.SetWorkTotal(v)
	return _c
}

// SetNillableWorkTotal sets the "work_total" field if the given value is not nil.
func (_c *OfferCreate) SetNillableWorkTotal(v *float64) *OfferCreate {
	if v != nil {
		_c.SetWorkTotal(*v)
	}
	return _c
}

// SetItems sets the "items" field.
func (_c *OfferCreate) SetItems(v []entity.OfferItem) *OfferCreate {
	_c.mutation.SetItems(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *OfferCreate) SetNotes(v string) *OfferCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *OfferCreate) SetNillableNotes(v *string) *OfferCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetOfferSummary sets the "offer_summary" field.
func (_c *OfferCreate) SetOfferSummary(v string) *OfferCreate {
	_c.mutation.SetOfferSummary(v)
	return _c
}

// SetNillableOfferSummary sets the "offer_summary" field if the given value is not nil.
func (_c *OfferCreate) SetNillableOfferSummary(v *string) *OfferCreate {
	if v != nil {
		_c.SetOfferSummary(*v)
	}
	return _c
}

// SetEstimatedDuration sets the "estimated_duration" field.
func (_c *OfferCreate) SetEstimatedDuration(v string) *OfferCreate {
	_c.mutation.SetEstimatedDuration(v)
	return _c
}

// SetNillableEstimatedDuration sets the "estimated_duration" field if the given value is not nil.
func (_c *OfferCreate) SetNillableEstimatedDuration(v *string) *OfferCreate {
	if v != nil {
		_c.SetEstimatedDuration(*v)
	}
	return _c
}

// SetValidUntil sets the "valid_until" field.
func (_c *OfferCreate) SetValidUntil(v time.Time) *OfferCreate {
	_c.mutation.SetValidUntil(v)
	return _c
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_c *OfferCreate) SetNillableValidUntil(v *time.Time) *OfferCreate {
	if v != nil {
		_c.SetValidUntil(*v)
	}
	return _c
}

// SetIsConvertedFromExisting sets the "is_converted_from_existing" field.
func (_c *OfferCreate) SetIsConvertedFromExisting(v bool) *OfferCreate {
	_c.mutation.SetIsConvertedFromExisting(v)
	return _c
}

// SetNillableIsConvertedFromExisting sets the "is_converted_from_existing" field if the given value is not nil.
func (_c *OfferCreate) SetNillableIsConvertedFromExisting(v *bool) *OfferCreate {
	if v != nil {
		_c.SetIsConvertedFromExisting(*v)
	}
	return _c
}

// SetTenantEmail sets the "tenant_email" field.
func (_c *OfferCreate) SetTenantEmail(v string) *OfferCreate {
	_c.mutation.SetTenantEmail(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OfferCreate) SetCreatedAt(v time.Time) *OfferCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OfferCreate) SetNillableCreatedAt(v *time.Time) *OfferCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OfferCreate) SetUpdatedAt(v time.Time) *OfferCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OfferCreate) SetNillableUpdatedAt(v *time.Time) *OfferCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OfferCreate) SetID(v uuid.UUID) *OfferCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OfferCreate) SetNillableID(v *uuid.UUID) *OfferCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRequirement sets the "requirement" edge to the Requirement entity.
func (_c *OfferCreate) SetRequirement(v *Requirement) *OfferCreate {
	return _c.SetRequirementID(v.ID)
}

// Mutation returns the OfferMutation object of the builder.
func (_c *OfferCreate) Mutation() *OfferMutation {
	return _c.mutation
}

// Save creates the Offer in the database.
func (_c *OfferCreate) Save(ctx context.Context) (*Offer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OfferCreate) SaveX(ctx context.Context) *Offer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OfferCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OfferCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OfferCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := offer.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := offer.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Location(); !ok {
		v := offer.DefaultLocation
		_c.mutation.SetLocation(v)
	}
	if _, ok := _c.mutation.TotalPrice(); !ok {
		v := offer.DefaultTotalPrice
		_c.mutation.SetTotalPrice(v)
	}
	if _, ok := _c.mutation.MaterialTotal(); !ok {
		v := offer.DefaultMaterialTotal
		_c.mutation.SetMaterialTotal(v)
	}
	if _, ok := _c.mutation.WorkTotal(); !ok {
		v := offer.DefaultWorkTotal
		_c.mutation.SetWorkTotal(v)
	}
	if _, ok := _c.mutation.EstimatedDuration(); !ok {
		v := offer.DefaultEstimatedDuration
		_c.mutation.SetEstimatedDuration(v)
	}
	if _, ok := _c.mutation.IsConvertedFromExisting(); !ok {
		v := offer.DefaultIsConvertedFromExisting
		_c.mutation.SetIsConvertedFromExisting(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := offer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := offer.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := offer.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OfferCreate) check() error {
	if _, ok := _c.mutation.RequirementID(); !ok {
		return &ValidationError{Name: "requirement_id", err: errors.New(`ent: missing required field "Offer.requirement_id"`)}
	}
	if _, ok := _c.mutation.RecordID(); !ok {
		return &ValidationError{Name: "record_id", err: errors.New(`ent: missing required field "Offer.record_id"`)}
	}
	if v, ok := _c.mutation.RecordID(); ok {
		if err := offer.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "Offer.record_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Offer.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := offer.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Offer.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Offer.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := offer.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Offer.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Offer.description"`)}
	}
	if _, ok := _c.mutation.Location(); !ok {
		return &ValidationError{Name: "location", err: errors.New(`ent: missing required field "Offer.location"`)}
	}
	if _, ok := _c.mutation.TotalPrice(); !ok {
		return &ValidationError{Name: "total_price", err: errors.New(`ent: missing required field "Offer.total_price"`)}
	}
	if _, ok := _c.mutation.MaterialTotal(); !ok {
		return &ValidationError{Name: "material_total", err: errors.New(`ent: missing required field "Offer.material_total"`)}
	}
	if _, ok := _c.mutation.WorkTotal(); !ok {
		return &ValidationError{Name: "work_total", err: errors.New(`ent: missing required field "Offer.work_total"`)}
	}
	if _, ok := _c.mutation.Items(); !ok {
		return &ValidationError{Name: "items", err: errors.New(`ent: missing required field "Offer.items"`)}
	}
	if _, ok := _c.mutation.EstimatedDuration(); !ok {
		return &ValidationError{Name: "estimated_duration", err: errors.New(`ent: missing required field "Offer.estimated_duration"`)}
	}
	if _, ok := _c.mutation.IsConvertedFromExisting(); !ok {
		return &ValidationError{Name: "is_converted_from_existing", err: errors.New(`ent: missing required field "Offer.is_converted_from_existing"`)}
	}
	if _, ok := _c.mutation.TenantEmail(); !ok {
		return &ValidationError{Name: "tenant_email", err: errors.New(`ent: missing required field "Offer.tenant_email"`)}
	}
	if v, ok := _c.mutation.TenantEmail(); ok {
		if err := offer.TenantEmailValidator(v); err != nil {
			return &ValidationError{Name: "tenant_email", err: fmt.Errorf(`ent: validator failed for field "Offer.tenant_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Offer.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Offer.updated_at"`)}
	}
	if len(_c.mutation.RequirementIDs()) == 0 {
		return &ValidationError{Name: "requirement", err: errors.New(`ent: missing required edge "Offer.requirement"`)}
	}
	return nil
}

func (_c *OfferCreate) sqlSave(ctx context.Context) (*Offer, error) {
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

func (_c *OfferCreate) createSpec() (*Offer, *sqlgraph.CreateSpec) {
	var (
		_node = &Offer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(offer.Table, sqlgraph.NewFieldSpec(offer.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RecordID(); ok {
		_spec.SetField(offer.FieldRecordID, field.TypeString, value)
		_node.RecordID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(offer.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(offer.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(offer.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(offer.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.TotalPrice(); ok {
		_spec.SetField(offer.FieldTotalPrice, field.TypeFloat64, value)
		_node.TotalPrice = value
	}
	if value, ok := _c.mutation.MaterialTotal(); ok {
		_spec.SetField(offer.FieldMaterialTotal, field.TypeFloat64, value)
		_node.MaterialTotal = value
	}
	if value, ok := _c.mutation.WorkTotal(); ok {
		_spec.SetField(offer.FieldWorkTotal, field.TypeFloat64, value)
		_node.WorkTotal = value
	}
	if value, ok := _c.mutation.Items(); ok {
		_spec.SetField(offer.FieldItems, field.TypeJSON, value)
		_node.Items = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(offer.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.OfferSummary(); ok {
		_spec.SetField(offer.FieldOfferSummary, field.TypeString, value)
		_node.OfferSummary = &value
	}
	if value, ok := _c.mutation.EstimatedDuration(); ok {
		_spec.SetField(offer.FieldEstimatedDuration, field.TypeString, value)
		_node.EstimatedDuration = value
	}
	if value, ok := _c.mutation.ValidUntil(); ok {
		_spec.SetField(offer.FieldValidUntil, field.TypeTime, value)
		_node.ValidUntil = value
	}
	if value, ok := _c.mutation.IsConvertedFromExisting(); ok {
		_spec.SetField(offer.FieldIsConvertedFromExisting, field.TypeBool, value)
		_node.IsConvertedFromExisting = value
	}
	if value, ok := _c.mutation.TenantEmail(); ok {
		_spec.SetField(offer.FieldTenantEmail, field.TypeString, value)
		_node.TenantEmail = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(offer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(offer.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RequirementIDs(); len(nodes) > 0 {
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
		_node.RequirementID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OfferCreateBulk is the builder for creating many Offer entities in bulk.
type OfferCreateBulk struct {
	config
	err      error
	builders []*OfferCreate
}

// Save creates the Offer entities in the database.
func (_c *OfferCreateBulk) Save(ctx context.Context) ([]*Offer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Offer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OfferMutation)
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
func (_c *OfferCreateBulk) SaveX(ctx context.Context) []*Offer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OfferCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OfferCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
