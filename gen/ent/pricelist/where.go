// Code generated by ent, DO NOT EDIT.

package pricelist

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Zoli1212/awsflow/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PriceList {
	return predicate.PriceList(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PriceList {
	return predicate.PriceList(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PriceList {
	return predicate.PriceList(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PriceList {
	return predicate.PriceList(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PriceList {
	return predicate.PriceList(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PriceList {
	return predicate.PriceList(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PriceList {
	return predicate.PriceList(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PriceList {
	return predicate.PriceList(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PriceList {
	return predicate.PriceList(sql.FieldLTE(FieldID, id))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldEQ(FieldCategory, v))
}

// Task applies equality check predicate on the "task" field. It's identical to TaskEQ.
func Task(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldEQ(FieldTask, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldEQ(FieldUnit, v))
}

// LaborCost applies equality check predicate on the "labor_cost" field. It's identical to LaborCostEQ.
func LaborCost(v float64) predicate.PriceList {
	return predicate.PriceList(sql.FieldEQ(FieldLaborCost, v))
}

// MaterialCost applies equality check predicate on the "material_cost" field. It's identical to MaterialCostEQ.
func MaterialCost(v float64) predicate.PriceList {
	return predicate.PriceList(sql.FieldEQ(FieldMaterialCost, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PriceList {
	return predicate.PriceList(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PriceList {
	return predicate.PriceList(sql.FieldEQ(FieldUpdatedAt, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.PriceList {
	return predicate.PriceList(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.PriceList {
	return predicate.PriceList(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldContainsFold(FieldCategory, v))
}

// TaskEQ applies the EQ predicate on the "task" field.
func TaskEQ(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldEQ(FieldTask, v))
}

// TaskNEQ applies the NEQ predicate on the "task" field.
func TaskNEQ(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldNEQ(FieldTask, v))
}

// TaskIn applies the In predicate on the "task" field.
func TaskIn(vs ...string) predicate.PriceList {
	return predicate.PriceList(sql.FieldIn(FieldTask, vs...))
}

// TaskNotIn applies the NotIn predicate on the "task" field.
func TaskNotIn(vs ...string) predicate.PriceList {
	return predicate.PriceList(sql.FieldNotIn(FieldTask, vs...))
}

// TaskGT applies the GT predicate on the "task" field.
func TaskGT(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldGT(FieldTask, v))
}

// TaskGTE applies the GTE predicate on the "task" field.
func TaskGTE(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldGTE(FieldTask, v))
}

// TaskLT applies the LT predicate on the "task" field.
func TaskLT(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldLT(FieldTask, v))
}

// TaskLTE applies the LTE predicate on the "task" field.
func TaskLTE(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldLTE(FieldTask, v))
}

// TaskContains applies the Contains predicate on the "task" field.
func TaskContains(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldContains(FieldTask, v))
}

// TaskHasPrefix applies the HasPrefix predicate on the "task" field.
func TaskHasPrefix(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldHasPrefix(FieldTask, v))
}

// TaskHasSuffix applies the HasSuffix predicate on the "task" field.
func TaskHasSuffix(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldHasSuffix(FieldTask, v))
}

// TaskEqualFold applies the EqualFold predicate on the "task" field.
func TaskEqualFold(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldEqualFold(FieldTask, v))
}

// TaskContainsFold applies the ContainsFold predicate on the "task" field.
func TaskContainsFold(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldContainsFold(FieldTask, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.PriceList {
	return predicate.PriceList(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.PriceList {
	return predicate.PriceList(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.PriceList {
	return predicate.PriceList(sql.FieldContainsFold(FieldUnit, v))
}

// LaborCostEQ applies the EQ predicate on the "labor_cost" field.
func LaborCostEQ(v float64) predicate.PriceList {
	return predicate.PriceList(sql.FieldEQ(FieldLaborCost, v))
}

// LaborCostNEQ applies the NEQ predicate on the "labor_cost" field.
func LaborCostNEQ(v float64) predicate.PriceList {
	return predicate.PriceList(sql.FieldNEQ(FieldLaborCost, v))
}

// LaborCostIn applies the In predicate on the "labor_cost" field.
func LaborCostIn(vs ...float64) predicate.PriceList {
	return predicate.PriceList(sql.FieldIn(FieldLaborCost, vs...))
}

// LaborCostNotIn applies the NotIn predicate on the "labor_cost" field.
func LaborCostNotIn(vs ...float64) predicate.PriceList {
	return predicate.PriceList(sql.FieldNotIn(FieldLaborCost, vs...))
}

// LaborCostGT applies the GT predicate on the "labor_cost" field.
func LaborCostGT(v float64) predicate.PriceList {
	return predicate.PriceList(sql.FieldGT(FieldLaborCost, v))
}

// LaborCostGTE applies the GTE predicate on the "labor_cost" field.
func LaborCostGTE(v float64) predicate.PriceList {
	return predicate.PriceList(sql.FieldGTE(FieldLaborCost, v))
}

// LaborCostLT applies the LT predicate on the "labor_cost" field.
func LaborCostLT(v float64) predicate.PriceList {
	return predicate.PriceList(sql.FieldLT(FieldLaborCost, v))
}

// LaborCostLTE applies the LTE predicate on the "labor_cost" field.
func LaborCostLTE(v float64) predicate.PriceList {
	return predicate.PriceList(sql.FieldLTE(FieldLaborCost, v))
}

// MaterialCostEQ applies the EQ predicate on the "material_cost" field.
func MaterialCostEQ(v float64) predicate.PriceList {
	return predicate.PriceList(sql.FieldEQ(FieldMaterialCost, v))
}

// MaterialCostNEQ applies the NEQ predicate on the "material_cost" field.
func MaterialCostNEQ(v float64) predicate.PriceList {
	return predicate.PriceList(sql.FieldNEQ(FieldMaterialCost, v))
}

// MaterialCostIn applies the In predicate on the "material_cost" field.
func MaterialCostIn(vs ...float64) predicate.PriceList {
	return predicate.PriceList(sql.FieldIn(FieldMaterialCost, vs...))
}

// MaterialCostNotIn applies the NotIn predicate on the "material_cost" field.
func MaterialCostNotIn(vs ...float64) predicate.PriceList {
	return predicate.PriceList(sql.FieldNotIn(FieldMaterialCost, vs...))
}

// MaterialCostGT applies the GT predicate on the "material_cost" field.
func MaterialCostGT(v float64) predicate.PriceList {
	return predicate.PriceList(sql.FieldGT(FieldMaterialCost, v))
}

// MaterialCostGTE applies the GTE predicate on the "material_cost" field.
func MaterialCostGTE(v float64) predicate.PriceList {
	return predicate.PriceList(sql.FieldGTE(FieldMaterialCost, v))
}

// MaterialCostLT applies the LT predicate on the "material_cost" field.
func MaterialCostLT(v float64) predicate.PriceList {
	return predicate.PriceList(sql.FieldLT(FieldMaterialCost, v))
}

// MaterialCostLTE applies the LTE predicate on the "material_cost" field.
func MaterialCostLTE(v float64) predicate.PriceList {
	return predicate.PriceList(sql.FieldLTE(FieldMaterialCost, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PriceList {
	return predicate.PriceList(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PriceList {
	return predicate.PriceList(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PriceList {
	return predicate.PriceList(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PriceList {
	return predicate.PriceList(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PriceList {
	return predicate.PriceList(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PriceList {
	return predicate.PriceList(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PriceList {
	return predicate.PriceList(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PriceList {
	return predicate.PriceList(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PriceList {
	return predicate.PriceList(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PriceList {
	return predicate.PriceList(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PriceList {
	return predicate.PriceList(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PriceList {
	return predicate.PriceList(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PriceList {
	return predicate.PriceList(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PriceList {
	return predicate.PriceList(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PriceList {
	return predicate.PriceList(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PriceList {
	return predicate.PriceList(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PriceList) predicate.PriceList {
	return predicate.PriceList(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PriceList) predicate.PriceList {
	return predicate.PriceList(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PriceList) predicate.PriceList {
	return predicate.PriceList(sql.NotPredicates(p))
}
