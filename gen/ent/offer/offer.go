// Code generated by ent, DO NOT EDIT.

package offer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the offer type in the database.
	Label = "offer"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRequirementID holds the string denoting the requirement_id field in the database.
	FieldRequirementID = "requirement_id"
	// FieldRecordID holds the string denoting the record_id field in the database.
	FieldRecordID = "record_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldTotalPrice holds the string denoting the total_price field in the database.
	FieldTotalPrice = "total_price"
	// FieldMaterialTotal holds the string denoting the material_total field in the database.
	FieldMaterialTotal = "material_total"
	// FieldWorkTotal holds the string denoting the work_total field in the database.
	FieldWorkTotal = "work_total"
	// FieldItems holds the string denoting the items field in the database.
	FieldItems = "items"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldOfferSummary holds the string denoting the offer_summary field in the database.
	FieldOfferSummary = "offer_summary"
	// FieldEstimatedDuration holds the string denoting the estimated_duration field in the database.
	FieldEstimatedDuration = "estimated_duration"
	// FieldValidUntil holds the string denoting the valid_until field in the database.
	FieldValidUntil = "valid_until"
	// FieldIsConvertedFromExisting holds the string denoting the is_converted_from_existing field in the database.
	FieldIsConvertedFromExisting = "is_converted_from_existing"
	// FieldTenantEmail holds the string denoting the tenant_email field in the database.
	FieldTenantEmail = "tenant_email"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRequirement holds the string denoting the requirement edge name in mutations.
	EdgeRequirement = "requirement"
	// Table holds the table name of the offer in the database.
	Table = "offers"
	// RequirementTable is the table that holds the requirement relation/edge.
	RequirementTable = "offers"
	// RequirementInverseTable is the table name for the Requirement entity.
	// It exists in this package in order to avoid circular dependency with the "requirement" package.
	RequirementInverseTable = "requirements"
	// RequirementColumn is the table column denoting the requirement relation/edge.
	RequirementColumn = "requirement_id"
)

// Columns holds all SQL columns for offer fields.
var Columns = []string{
	FieldID,
	FieldRequirementID,
	FieldRecordID,
	FieldTitle,
	FieldStatus,
	FieldDescription,
	FieldLocation,
	FieldTotalPrice,
	FieldMaterialTotal,
	FieldWorkTotal,
	FieldItems,
	FieldNotes,
	FieldOfferSummary,
	FieldEstimatedDuration,
	FieldValidUntil,
	FieldIsConvertedFromExisting,
	FieldTenantEmail,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// RecordIDValidator is a validator for the "record_id" field. It is called by the builders before save.
	RecordIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultLocation holds the default value on creation for the "location" field.
	DefaultLocation string
	// DefaultTotalPrice holds the default value on creation for the "total_price" field.
	DefaultTotalPrice float64
	// DefaultMaterialTotal holds the default value on creation for the "material_total" field.
	DefaultMaterialTotal float64
	// DefaultWorkTotal holds the default value on creation for the "work_total" field.
	DefaultWorkTotal float64
	// DefaultEstimatedDuration holds the default value on creation for the "estimated_duration" field.
	DefaultEstimatedDuration string
	// DefaultIsConvertedFromExisting holds the default value on creation for the "is_converted_from_existing" field.
	DefaultIsConvertedFromExisting bool
	// TenantEmailValidator is a validator for the "tenant_email" field. It is called by the builders before save.
	TenantEmailValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Offer queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequirementID orders the results by the requirement_id field.
func ByRequirementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequirementID, opts...).ToFunc()
}

// ByRecordID orders the results by the record_id field.
func ByRecordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// ByTotalPrice orders the results by the total_price field.
func ByTotalPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPrice, opts...).ToFunc()
}

// ByMaterialTotal orders the results by the material_total field.
func ByMaterialTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaterialTotal, opts...).ToFunc()
}

// ByWorkTotal orders the results by the work_total field.
func ByWorkTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkTotal, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByOfferSummary orders the results by the offer_summary field.
func ByOfferSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOfferSummary, opts...).ToFunc()
}

// ByEstimatedDuration orders the results by the estimated_duration field.
func ByEstimatedDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedDuration, opts...).ToFunc()
}

// ByValidUntil orders the results by the valid_until field.
func ByValidUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidUntil, opts...).ToFunc()
}

// ByIsConvertedFromExisting orders the results by the is_converted_from_existing field.
func ByIsConvertedFromExisting(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsConvertedFromExisting, opts...).ToFunc()
}

// ByTenantEmail orders the results by the tenant_email field.
func ByTenantEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantEmail, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRequirementField orders the results by requirement field.
func ByRequirementField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRequirementStep(), sql.OrderByField(field, opts...))
	}
}
func newRequirementStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RequirementInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RequirementTable, RequirementColumn),
	)
}
