// Code generated by ent, DO NOT EDIT.

package tenantpricelist

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the tenantpricelist type in the database.
	Label = "tenant_price_list"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantEmail holds the string denoting the tenant_email field in the database.
	FieldTenantEmail = "tenant_email"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldTask holds the string denoting the task field in the database.
	FieldTask = "task"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldLaborCost holds the string denoting the labor_cost field in the database.
	FieldLaborCost = "labor_cost"
	// FieldMaterialCost holds the string denoting the material_cost field in the database.
	FieldMaterialCost = "material_cost"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the tenantpricelist in the database.
	Table = "tenant_price_lists"
)

// Columns holds all SQL columns for tenantpricelist fields.
var Columns = []string{
	FieldID,
	FieldTenantEmail,
	FieldCategory,
	FieldTask,
	FieldUnit,
	FieldLaborCost,
	FieldMaterialCost,
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
	// TenantEmailValidator is a validator for the "tenant_email" field. It is called by the builders before save.
	TenantEmailValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// TaskValidator is a validator for the "task" field. It is called by the builders before save.
	TaskValidator func(string) error
	// DefaultUnit holds the default value on creation for the "unit" field.
	DefaultUnit string
	// DefaultLaborCost holds the default value on creation for the "labor_cost" field.
	DefaultLaborCost float64
	// DefaultMaterialCost holds the default value on creation for the "material_cost" field.
	DefaultMaterialCost float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the TenantPriceList queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantEmail orders the results by the tenant_email field.
func ByTenantEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantEmail, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByTask orders the results by the task field.
func ByTask(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTask, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// ByLaborCost orders the results by the labor_cost field.
func ByLaborCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLaborCost, opts...).ToFunc()
}

// ByMaterialCost orders the results by the material_cost field.
func ByMaterialCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaterialCost, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
