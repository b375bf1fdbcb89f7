// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Zoli1212/awsflow/gen/ent/tenantpricelist"
	"github.com/google/uuid"
)

// TenantPriceList is the model entity for the TenantPriceList schema.
type TenantPriceList struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TenantEmail holds the value of the "tenant_email" field.
	TenantEmail string `json:"tenant_email,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Task holds the value of the "task" field.
	Task string `json:"task,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// LaborCost holds the value of the "labor_cost" field.
	LaborCost float64 `json:"labor_cost,omitempty"`
	// MaterialCost holds the value of the "material_cost" field.
	MaterialCost float64 `json:"material_cost,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TenantPriceList) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tenantpricelist.FieldLaborCost, tenantpricelist.FieldMaterialCost:
			values[i] = new(sql.NullFloat64)
		case tenantpricelist.FieldTenantEmail, tenantpricelist.FieldCategory, tenantpricelist.FieldTask, tenantpricelist.FieldUnit:
			values[i] = new(sql.NullString)
		case tenantpricelist.FieldCreatedAt, tenantpricelist.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case tenantpricelist.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TenantPriceList fields.
func (_m *TenantPriceList) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tenantpricelist.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tenantpricelist.FieldTenantEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_email", values[i])
			} else if value.Valid {
				_m.TenantEmail = value.String
			}
		case tenantpricelist.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case tenantpricelist.FieldTask:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task", values[i])
			} else if value.Valid {
				_m.Task = value.String
			}
		case tenantpricelist.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case tenantpricelist.FieldLaborCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field labor_cost", values[i])
			} else if value.Valid {
				_m.LaborCost = value.Float64
			}
		case tenantpricelist.FieldMaterialCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field material_cost", values[i])
			} else if value.Valid {
				_m.MaterialCost = value.Float64
			}
		case tenantpricelist.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tenantpricelist.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TenantPriceList.
// This includes values selected through modifiers, order, etc.
func (_m *TenantPriceList) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TenantPriceList.
// Note that you need to call TenantPriceList.Unwrap() before calling this method if this TenantPriceList
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TenantPriceList) Update() *TenantPriceListUpdateOne {
	return NewTenantPriceListClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TenantPriceList entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TenantPriceList) Unwrap() *TenantPriceList {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TenantPriceList is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TenantPriceList) String() string {
	var builder strings.Builder
	builder.WriteString("TenantPriceList(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_email=")
	builder.WriteString(_m.TenantEmail)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("task=")
	builder.WriteString(_m.Task)
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteString(", ")
	builder.WriteString("labor_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.LaborCost))
	builder.WriteString(", ")
	builder.WriteString("material_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaterialCost))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TenantPriceLists is a parsable slice of TenantPriceList.
type TenantPriceLists []*TenantPriceList
