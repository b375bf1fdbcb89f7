// Code generated by ent, DO NOT EDIT.

package offer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Zoli1212/awsflow/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldID, id))
}

// RequirementID applies equality check predicate on the "requirement_id" field. It's identical to RequirementIDEQ.
func RequirementID(v uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldRequirementID, v))
}

// RecordID applies equality check predicate on the "record_id" field. It's identical to RecordIDEQ.
func RecordID(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldRecordID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldTitle, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldStatus, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldDescription, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldLocation, v))
}

// TotalPrice applies equality check predicate on the "total_price" field. It's identical to TotalPriceEQ.
func TotalPrice(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldTotalPrice, v))
}

// MaterialTotal applies equality check predicate on the "material_total" field. It's identical to MaterialTotalEQ.
func MaterialTotal(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldMaterialTotal, v))
}

// WorkTotal applies equality check predicate on the "work_total" field. It's identical to WorkTotalEQ.
func WorkTotal(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldWorkTotal, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldNotes, v))
}

// OfferSummary applies equality check predicate on the "offer_summary" field. It's identical to OfferSummaryEQ.
func OfferSummary(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldOfferSummary, v))
}

// EstimatedDuration applies equality check predicate on the "estimated_duration" field. It's identical to EstimatedDurationEQ.
func EstimatedDuration(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldEstimatedDuration, v))
}

// ValidUntil applies equality check predicate on the "valid_until" field. It's identical to ValidUntilEQ.
func ValidUntil(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldValidUntil, v))
}

// IsConvertedFromExisting applies equality check predicate on the "is_converted_from_existing" field. It's identical to IsConvertedFromExistingEQ.
func IsConvertedFromExisting(v bool) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldIsConvertedFromExisting, v))
}

// TenantEmail applies equality check predicate on the "tenant_email" field. It's identical to TenantEmailEQ.
func TenantEmail(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldTenantEmail, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldUpdatedAt, v))
}

// RequirementIDEQ applies the EQ predicate on the "requirement_id" field.
func RequirementIDEQ(v uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldRequirementID, v))
}

// RequirementIDNEQ applies the NEQ predicate on the "requirement_id" field.
func RequirementIDNEQ(v uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldRequirementID, v))
}

// RequirementIDIn applies the In predicate on the "requirement_id" field.
func RequirementIDIn(vs ...uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldRequirementID, vs...))
}

// RequirementIDNotIn applies the NotIn predicate on the "requirement_id" field.
func RequirementIDNotIn(vs ...uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldRequirementID, vs...))
}

// RecordIDEQ applies the EQ predicate on the "record_id" field.
func RecordIDEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldRecordID, v))
}

// RecordIDNEQ applies the NEQ predicate on the "record_id" field.
func RecordIDNEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldRecordID, v))
}

// RecordIDIn applies the In predicate on the "record_id" field.
func RecordIDIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldRecordID, vs...))
}

// RecordIDNotIn applies the NotIn predicate on the "record_id" field.
func RecordIDNotIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldRecordID, vs...))
}

// RecordIDGT applies the GT predicate on the "record_id" field.
func RecordIDGT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldRecordID, v))
}

// RecordIDGTE applies the GTE predicate on the "record_id" field.
func RecordIDGTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldRecordID, v))
}

// RecordIDLT applies the LT predicate on the "record_id" field.
func RecordIDLT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldRecordID, v))
}

// RecordIDLTE applies the LTE predicate on the "record_id" field.
func RecordIDLTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldRecordID, v))
}

// RecordIDContains applies the Contains predicate on the "record_id" field.
func RecordIDContains(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContains(FieldRecordID, v))
}

// RecordIDHasPrefix applies the HasPrefix predicate on the "record_id" field.
func RecordIDHasPrefix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasPrefix(FieldRecordID, v))
}

// RecordIDHasSuffix applies the HasSuffix predicate on the "record_id" field.
func RecordIDHasSuffix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasSuffix(FieldRecordID, v))
}

// RecordIDEqualFold applies the EqualFold predicate on the "record_id" field.
func RecordIDEqualFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEqualFold(FieldRecordID, v))
}

// RecordIDContainsFold applies the ContainsFold predicate on the "record_id" field.
func RecordIDContainsFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContainsFold(FieldRecordID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContainsFold(FieldTitle, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContainsFold(FieldStatus, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContainsFold(FieldDescription, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContainsFold(FieldLocation, v))
}

// TotalPriceEQ applies the EQ predicate on the "total_price" field.
func TotalPriceEQ(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldTotalPrice, v))
}

// TotalPriceNEQ applies the NEQ predicate on the "total_price" field.
func TotalPriceNEQ(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldTotalPrice, v))
}

// TotalPriceIn applies the In predicate on the "total_price" field.
func TotalPriceIn(vs ...float64) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldTotalPrice, vs...))
}

// TotalPriceNotIn applies the NotIn predicate on the "total_price" field.
func TotalPriceNotIn(vs ...float64) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldTotalPrice, vs...))
}

// TotalPriceGT applies the GT predicate on the "total_price" field.
func TotalPriceGT(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldTotalPrice, v))
}

// TotalPriceGTE applies the GTE predicate on the "total_price" field.
func TotalPriceGTE(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldTotalPrice, v))
}

// TotalPriceLT applies the LT predicate on the "total_price" field.
func TotalPriceLT(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldTotalPrice, v))
}

// TotalPriceLTE applies the LTE predicate on the "total_price" field.
func TotalPriceLTE(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldTotalPrice, v))
}

// MaterialTotalEQ applies the EQ predicate on the "material_total" field.
func MaterialTotalEQ(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldMaterialTotal, v))
}

// MaterialTotalNEQ applies the NEQ predicate on the "material_total" field.
func MaterialTotalNEQ(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldMaterialTotal, v))
}

// MaterialTotalIn applies the In predicate on the "material_total" field.
func MaterialTotalIn(vs ...float64) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldMaterialTotal, vs...))
}

// MaterialTotalNotIn applies the NotIn predicate on the "material_total" field.
func MaterialTotalNotIn(vs ...float64) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldMaterialTotal, vs...))
}

// MaterialTotalGT applies the GT predicate on the "material_total" field.
func MaterialTotalGT(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldMaterialTotal, v))
}

// MaterialTotalGTE applies the GTE predicate on the "material_total" field.
func MaterialTotalGTE(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldMaterialTotal, v))
}

// MaterialTotalLT applies the LT predicate on the "material_total" field.
func MaterialTotalLT(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldMaterialTotal, v))
}

// MaterialTotalLTE applies the LTE predicate on the "material_total" field.
func MaterialTotalLTE(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldMaterialTotal, v))
}

// WorkTotalEQ applies the EQ predicate on the "work_total" field.
func WorkTotalEQ(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldWorkTotal, v))
}

// WorkTotalNEQ applies the NEQ predicate on the "work_total" field.
func WorkTotalNEQ(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldWorkTotal, v))
}

// WorkTotalIn applies the In predicate on the "work_total" field.
func WorkTotalIn(vs ...float64) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldWorkTotal, vs...))
}

// WorkTotalNotIn applies the NotIn predicate on the "work_total" field.
func WorkTotalNotIn(vs ...float64) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldWorkTotal, vs...))
}

// WorkTotalGT applies the GT predicate on the "work_total" field.
func WorkTotalGT(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldWorkTotal, v))
}

// WorkTotalGTE applies the GTE predicate on the "work_total" field.
func WorkTotalGTE(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldWorkTotal, v))
}

// WorkTotalLT applies the LT predicate on the "work_total" field.
func WorkTotalLT(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldWorkTotal, v))
}

// WorkTotalLTE applies the LTE predicate on the "work_total" field.
func WorkTotalLTE(v float64) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldWorkTotal, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Offer {
	return predicate.Offer(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Offer {
	return predicate.Offer(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContainsFold(FieldNotes, v))
}

// OfferSummaryEQ applies the EQ predicate on the "offer_summary" field.
func OfferSummaryEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldOfferSummary, v))
}

// OfferSummaryNEQ applies the NEQ predicate on the "offer_summary" field.
func OfferSummaryNEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldOfferSummary, v))
}

// OfferSummaryIn applies the In predicate on the "offer_summary" field.
func OfferSummaryIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldOfferSummary, vs...))
}

// OfferSummaryNotIn applies the NotIn predicate on the "offer_summary" field.
func OfferSummaryNotIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldOfferSummary, vs...))
}

// OfferSummaryGT applies the GT predicate on the "offer_summary" field.
func OfferSummaryGT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldOfferSummary, v))
}

// OfferSummaryGTE applies the GTE predicate on the "offer_summary" field.
func OfferSummaryGTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldOfferSummary, v))
}

// OfferSummaryLT applies the LT predicate on the "offer_summary" field.
func OfferSummaryLT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldOfferSummary, v))
}

// OfferSummaryLTE applies the LTE predicate on the "offer_summary" field.
func OfferSummaryLTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldOfferSummary, v))
}

// OfferSummaryContains applies the Contains predicate on the "offer_summary" field.
func OfferSummaryContains(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContains(FieldOfferSummary, v))
}

// OfferSummaryHasPrefix applies the HasPrefix predicate on the "offer_summary" field.
func OfferSummaryHasPrefix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasPrefix(FieldOfferSummary, v))
}

// OfferSummaryHasSuffix applies the HasSuffix predicate on the "offer_summary" field.
func OfferSummaryHasSuffix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasSuffix(FieldOfferSummary, v))
}

// OfferSummaryIsNil applies the IsNil predicate on the "offer_summary" field.
func OfferSummaryIsNil() predicate.Offer {
	return predicate.Offer(sql.FieldIsNull(FieldOfferSummary))
}

// OfferSummaryNotNil applies the NotNil predicate on the "offer_summary" field.
func OfferSummaryNotNil() predicate.Offer {
	return predicate.Offer(sql.FieldNotNull(FieldOfferSummary))
}

// OfferSummaryEqualFold applies the EqualFold predicate on the "offer_summary" field.
func OfferSummaryEqualFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEqualFold(FieldOfferSummary, v))
}

// OfferSummaryContainsFold applies the ContainsFold predicate on the "offer_summary" field.
func OfferSummaryContainsFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContainsFold(FieldOfferSummary, v))
}

// EstimatedDurationEQ applies the EQ predicate on the "estimated_duration" field.
func EstimatedDurationEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldEstimatedDuration, v))
}

// EstimatedDurationNEQ applies the NEQ predicate on the "estimated_duration" field.
func EstimatedDurationNEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldEstimatedDuration, v))
}

// EstimatedDurationIn applies the In predicate on the "estimated_duration" field.
func EstimatedDurationIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldEstimatedDuration, vs...))
}

// EstimatedDurationNotIn applies the NotIn predicate on the "estimated_duration" field.
func EstimatedDurationNotIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldEstimatedDuration, vs...))
}

// EstimatedDurationGT applies the GT predicate on the "estimated_duration" field.
func EstimatedDurationGT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldEstimatedDuration, v))
}

// EstimatedDurationGTE applies the GTE predicate on the "estimated_duration" field.
func EstimatedDurationGTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldEstimatedDuration, v))
}

// EstimatedDurationLT applies the LT predicate on the "estimated_duration" field.
func EstimatedDurationLT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldEstimatedDuration, v))
}

// EstimatedDurationLTE applies the LTE predicate on the "estimated_duration" field.
func EstimatedDurationLTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldEstimatedDuration, v))
}

// EstimatedDurationContains applies the Contains predicate on the "estimated_duration" field.
func EstimatedDurationContains(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContains(FieldEstimatedDuration, v))
}

// EstimatedDurationHasPrefix applies the HasPrefix predicate on the "estimated_duration" field.
func EstimatedDurationHasPrefix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasPrefix(FieldEstimatedDuration, v))
}

// EstimatedDurationHasSuffix applies the HasSuffix predicate on the "estimated_duration" field.
func EstimatedDurationHasSuffix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasSuffix(FieldEstimatedDuration, v))
}

// EstimatedDurationEqualFold applies the EqualFold predicate on the "estimated_duration" field.
func EstimatedDurationEqualFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEqualFold(FieldEstimatedDuration, v))
}

// EstimatedDurationContainsFold applies the ContainsFold predicate on the "estimated_duration" field.
func EstimatedDurationContainsFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContainsFold(FieldEstimatedDuration, v))
}

// ValidUntilEQ applies the EQ predicate on the "valid_until" field.
func ValidUntilEQ(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldValidUntil, v))
}

// ValidUntilNEQ applies the NEQ predicate on the "valid_until" field.
func ValidUntilNEQ(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldValidUntil, v))
}

// ValidUntilIn applies the In predicate on the "valid_until" field.
func ValidUntilIn(vs ...time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldValidUntil, vs...))
}

// ValidUntilNotIn applies the NotIn predicate on the "valid_until" field.
func ValidUntilNotIn(vs ...time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldValidUntil, vs...))
}

// ValidUntilGT applies the GT predicate on the "valid_until" field.
func ValidUntilGT(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldValidUntil, v))
}

// ValidUntilGTE applies the GTE predicate on the "valid_until" field.
func ValidUntilGTE(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldValidUntil, v))
}

// ValidUntilLT applies the LT predicate on the "valid_until" field.
func ValidUntilLT(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldValidUntil, v))
}

// ValidUntilLTE applies the LTE predicate on the "valid_until" field.
func ValidUntilLTE(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldValidUntil, v))
}

// ValidUntilIsNil applies the IsNil predicate on the "valid_until" field.
func ValidUntilIsNil() predicate.Offer {
	return predicate.Offer(sql.FieldIsNull(FieldValidUntil))
}

// ValidUntilNotNil applies the NotNil predicate on the "valid_until" field.
func ValidUntilNotNil() predicate.Offer {
	return predicate.Offer(sql.FieldNotNull(FieldValidUntil))
}

// IsConvertedFromExistingEQ applies the EQ predicate on the "is_converted_from_existing" field.
func IsConvertedFromExistingEQ(v bool) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldIsConvertedFromExisting, v))
}

// IsConvertedFromExistingNEQ applies the NEQ predicate on the "is_converted_from_existing" field.
func IsConvertedFromExistingNEQ(v bool) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldIsConvertedFromExisting, v))
}

// TenantEmailEQ applies the EQ predicate on the "tenant_email" field.
func TenantEmailEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldTenantEmail, v))
}

// TenantEmailNEQ applies the NEQ predicate on the "tenant_email" field.
func TenantEmailNEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldTenantEmail, v))
}

// TenantEmailIn applies the In predicate on the "tenant_email" field.
func TenantEmailIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldTenantEmail, vs...))
}

// TenantEmailNotIn applies the NotIn predicate on the "tenant_email" field.
func TenantEmailNotIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldTenantEmail, vs...))
}

// TenantEmailGT applies the GT predicate on the "tenant_email" field.
func TenantEmailGT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldTenantEmail, v))
}

// TenantEmailGTE applies the GTE predicate on the "tenant_email" field.
func TenantEmailGTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldTenantEmail, v))
}

// TenantEmailLT applies the LT predicate on the "tenant_email" field.
func TenantEmailLT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldTenantEmail, v))
}

// TenantEmailLTE applies the LTE predicate on the "tenant_email" field.
func TenantEmailLTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldTenantEmail, v))
}

// TenantEmailContains applies the Contains predicate on the "tenant_email" field.
func TenantEmailContains(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContains(FieldTenantEmail, v))
}

// TenantEmailHasPrefix applies the HasPrefix predicate on the "tenant_email" field.
func TenantEmailHasPrefix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasPrefix(FieldTenantEmail, v))
}

// TenantEmailHasSuffix applies the HasSuffix predicate on the "tenant_email" field.
func TenantEmailHasSuffix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasSuffix(FieldTenantEmail, v))
}

// TenantEmailEqualFold applies the EqualFold predicate on the "tenant_email" field.
func TenantEmailEqualFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEqualFold(FieldTenantEmail, v))
}

// TenantEmailContainsFold applies the ContainsFold predicate on the "tenant_email" field.
func TenantEmailContainsFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContainsFold(FieldTenantEmail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRequirement applies the HasEdge predicate on the "requirement" edge.
func HasRequirement() predicate.Offer {
	return predicate.Offer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequirementTable, RequirementColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequirementWith applies the HasEdge predicate on the "requirement" edge with a given conditions (other predicates).
func HasRequirementWith(preds ...predicate.Requirement) predicate.Offer {
	return predicate.Offer(func(s *sql.Selector) {
		step := newRequirementStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Offer) predicate.Offer {
	return predicate.Offer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Offer) predicate.Offer {
	return predicate.Offer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Offer) predicate.Offer {
	return predicate.Offer(sql.NotPredicates(p))
}
