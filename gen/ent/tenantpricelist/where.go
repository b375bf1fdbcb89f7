// Code generated by ent, DO NOT EDIT.

package tenantpricelist

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Zoli1212/awsflow/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldLTE(FieldID, id))
}

// TenantEmail applies equality check predicate on the "tenant_email" field. It's identical to TenantEmailEQ.
func TenantEmail(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEQ(FieldTenantEmail, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEQ(FieldCategory, v))
}

// Task applies equality check predicate on the "task" field. It's identical to TaskEQ.
func Task(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEQ(FieldTask, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEQ(FieldUnit, v))
}

// LaborCost applies equality check predicate on the "labor_cost" field. It's identical to LaborCostEQ.
func LaborCost(v float64) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEQ(FieldLaborCost, v))
}

// MaterialCost applies equality check predicate on the "material_cost" field. It's identical to MaterialCostEQ.
func MaterialCost(v float64) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEQ(FieldMaterialCost, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantEmailEQ applies the EQ predicate on the "tenant_email" field.
func TenantEmailEQ(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEQ(FieldTenantEmail, v))
}

// TenantEmailNEQ applies the NEQ predicate on the "tenant_email" field.
func TenantEmailNEQ(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldNEQ(FieldTenantEmail, v))
}

// TenantEmailIn applies the In predicate on the "tenant_email" field.
func TenantEmailIn(vs ...string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldIn(FieldTenantEmail, vs...))
}

// TenantEmailNotIn applies the NotIn predicate on the "tenant_email" field.
func TenantEmailNotIn(vs ...string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldNotIn(FieldTenantEmail, vs...))
}

// TenantEmailGT applies the GT predicate on the "tenant_email" field.
func TenantEmailGT(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldGT(FieldTenantEmail, v))
}

// TenantEmailGTE applies the GTE predicate on the "tenant_email" field.
func TenantEmailGTE(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldGTE(FieldTenantEmail, v))
}

// TenantEmailLT applies the LT predicate on the "tenant_email" field.
func TenantEmailLT(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldLT(FieldTenantEmail, v))
}

// TenantEmailLTE applies the LTE predicate on the "tenant_email" field.
func TenantEmailLTE(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldLTE(FieldTenantEmail, v))
}

// TenantEmailContains applies the Contains predicate on the "tenant_email" field.
func TenantEmailContains(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldContains(FieldTenantEmail, v))
}

// TenantEmailHasPrefix applies the HasPrefix predicate on the "tenant_email" field.
func TenantEmailHasPrefix(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldHasPrefix(FieldTenantEmail, v))
}

// TenantEmailHasSuffix applies the HasSuffix predicate on the "tenant_email" field.
func TenantEmailHasSuffix(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldHasSuffix(FieldTenantEmail, v))
}

// TenantEmailEqualFold applies the EqualFold predicate on the "tenant_email" field.
func TenantEmailEqualFold(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEqualFold(FieldTenantEmail, v))
}

// TenantEmailContainsFold applies the ContainsFold predicate on the "tenant_email" field.
func TenantEmailContainsFold(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldContainsFold(FieldTenantEmail, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldContainsFold(FieldCategory, v))
}

// TaskEQ applies the EQ predicate on the "task" field.
func TaskEQ(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEQ(FieldTask, v))
}

// TaskNEQ applies the NEQ predicate on the "task" field.
func TaskNEQ(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldNEQ(FieldTask, v))
}

// TaskIn applies the In predicate on the "task" field.
func TaskIn(vs ...string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldIn(FieldTask, vs...))
}

// TaskNotIn applies the NotIn predicate on the "task" field.
func TaskNotIn(vs ...string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldNotIn(FieldTask, vs...))
}

// TaskGT applies the GT predicate on the "task" field.
func TaskGT(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldGT(FieldTask, v))
}

// TaskGTE applies the GTE predicate on the "task" field.
func TaskGTE(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldGTE(FieldTask, v))
}

// TaskLT applies the LT predicate on the "task" field.
func TaskLT(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldLT(FieldTask, v))
}

// TaskLTE applies the LTE predicate on the "task" field.
func TaskLTE(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldLTE(FieldTask, v))
}

// TaskContains applies the Contains predicate on the "task" field.
func TaskContains(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldContains(FieldTask, v))
}

// TaskHasPrefix applies the HasPrefix predicate on the "task" field.
func TaskHasPrefix(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldHasPrefix(FieldTask, v))
}

// TaskHasSuffix applies the HasSuffix predicate on the "task" field.
func TaskHasSuffix(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldHasSuffix(FieldTask, v))
}

// TaskEqualFold applies the EqualFold predicate on the "task" field.
func TaskEqualFold(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEqualFold(FieldTask, v))
}

// TaskContainsFold applies the ContainsFold predicate on the "task" field.
func TaskContainsFold(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldContainsFold(FieldTask, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldContainsFold(FieldUnit, v))
}

// LaborCostEQ applies the EQ predicate on the "labor_cost" field.
func LaborCostEQ(v float64) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEQ(FieldLaborCost, v))
}

// LaborCostNEQ applies the NEQ predicate on the "labor_cost" field.
func LaborCostNEQ(v float64) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldNEQ(FieldLaborCost, v))
}

// LaborCostIn applies the In predicate on the "labor_cost" field.
func LaborCostIn(vs ...float64) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldIn(FieldLaborCost, vs...))
}

// LaborCostNotIn applies the NotIn predicate on the "labor_cost" field.
func LaborCostNotIn(vs ...float64) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldNotIn(FieldLaborCost, vs...))
}

// LaborCostGT applies the GT predicate on the "labor_cost" field.
func LaborCostGT(v float64) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldGT(FieldLaborCost, v))
}

// LaborCostGTE applies the GTE predicate on the "labor_cost" field.
func LaborCostGTE(v float64) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldGTE(FieldLaborCost, v))
}

// LaborCostLT applies the LT predicate on the "labor_cost" field.
func LaborCostLT(v float64) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldLT(FieldLaborCost, v))
}

// LaborCostLTE applies the LTE predicate on the "labor_cost" field.
func LaborCostLTE(v float64) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldLTE(FieldLaborCost, v))
}

// MaterialCostEQ applies the EQ predicate on the "material_cost" field.
func MaterialCostEQ(v float64) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEQ(FieldMaterialCost, v))
}

// MaterialCostNEQ applies the NEQ predicate on the "material_cost" field.
func MaterialCostNEQ(v float64) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldNEQ(FieldMaterialCost, v))
}

// MaterialCostIn applies the In predicate on the "material_cost" field.
func MaterialCostIn(vs ...float64) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldIn(FieldMaterialCost, vs...))
}

// MaterialCostNotIn applies the NotIn predicate on the "material_cost" field.
func MaterialCostNotIn(vs ...float64) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldNotIn(FieldMaterialCost, vs...))
}

// MaterialCostGT applies the GT predicate on the "material_cost" field.
func MaterialCostGT(v float64) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldGT(FieldMaterialCost, v))
}

// MaterialCostGTE applies the GTE predicate on the "material_cost" field.
func MaterialCostGTE(v float64) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldGTE(FieldMaterialCost, v))
}

// MaterialCostLT applies the LT predicate on the "material_cost" field.
func MaterialCostLT(v float64) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldLT(FieldMaterialCost, v))
}

// MaterialCostLTE applies the LTE predicate on the "material_cost" field.
func MaterialCostLTE(v float64) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldLTE(FieldMaterialCost, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TenantPriceList) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TenantPriceList) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TenantPriceList) predicate.TenantPriceList {
	return predicate.TenantPriceList(sql.NotPredicates(p))
}
