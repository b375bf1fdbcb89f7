// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Zoli1212/awsflow/gen/ent/offer"
	"github.com/Zoli1212/awsflow/gen/ent/requirement"
	"github.com/Zoli1212/awsflow/internal/entity"
	"github.com/google/uuid"
)

// Offer is the model entity for the Offer schema.
type Offer struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RequirementID holds the value of the "requirement_id" field.
	RequirementID uuid.UUID `json:"requirement_id,omitempty"`
	// RecordID holds the value of the "record_id" field.
	RecordID string `json:"record_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// TotalPrice holds the value of the "total_price" field.
	TotalPrice float64 `json:"total_price,omitempty"`
	// MaterialTotal holds the value of the "material_total" field.
	MaterialTotal float64 `json:"material_total,omitempty"`
	// WorkTotal holds the value of the "work_total" field.
	WorkTotal float64 `json:"work_total,omitempty"`
	// Items holds the value of the "items" field.
	Items []entity.OfferItem `json:"items,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// OfferSummary holds the value of the "offer_summary" field.
	OfferSummary *string `json:"offer_summary,omitempty"`
	// EstimatedDuration holds the value of the "estimated_duration" field.
	EstimatedDuration string `json:"estimated_duration,omitempty"`
	// ValidUntil holds the value of the "valid_until" field.
	ValidUntil time.Time `json:"valid_until,omitempty"`
	// IsConvertedFromExisting holds the value of the "is_converted_from_existing" field.
	IsConvertedFromExisting bool `json:"is_converted_from_existing,omitempty"`
	// TenantEmail holds the value of the "tenant_email" field.
	TenantEmail string `json:"tenant_email,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OfferQuery when eager-loading is set.
	Edges        OfferEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OfferEdges holds the relations/edges for other nodes in the graph.
type OfferEdges struct {
	// Requirement holds the value of the requirement edge.
	Requirement *Requirement `json:"requirement,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RequirementOrErr returns the Requirement value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OfferEdges) RequirementOrErr() (*Requirement, error) {
	if e.Requirement != nil {
		return e.Requirement, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: requirement.Label}
	}
	return nil, &NotLoadedError{edge: "requirement"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Offer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case offer.FieldItems:
			values[i] = new([]byte)
		case offer.FieldIsConvertedFromExisting:
			values[i] = new(sql.NullBool)
		case offer.FieldTotalPrice, offer.FieldMaterialTotal, offer.FieldWorkTotal:
			values[i] = new(sql.NullFloat64)
		case offer.FieldRecordID, offer.FieldTitle, offer.FieldStatus, offer.FieldDescription, offer.FieldLocation, offer.FieldNotes, offer.FieldOfferSummary, offer.FieldEstimatedDuration, offer.FieldTenantEmail:
			values[i] = new(sql.NullString)
		case offer.FieldValidUntil, offer.FieldCreatedAt, offer.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case offer.FieldID, offer.FieldRequirementID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Offer fields.
func (_m *Offer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case offer.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case offer.FieldRequirementID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field requirement_id", values[i])
			} else if value != nil {
				_m.RequirementID = *value
			}
		case offer.FieldRecordID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field record_id", values[i])
			} else if value.Valid {
				_m.RecordID = value.String
			}
		case offer.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case offer.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case offer.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case offer.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case offer.FieldTotalPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_price", values[i])
			} else if value.Valid {
				_m.TotalPrice = value.Float64
			}
		case offer.FieldMaterialTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field material_total", values[i])
			} else if value.Valid {
				_m.MaterialTotal = value.Float64
			}
		case offer.FieldWorkTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field work_total", values[i])
			} else if value.Valid {
				_m.WorkTotal = value.Float64
			}
		case offer.FieldItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Items); err != nil {
					return fmt.Errorf("unmarshal field items: %w", err)
				}
			}
		case offer.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case offer.FieldOfferSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field offer_summary", values[i])
			} else if value.Valid {
				_m.OfferSummary = new(string)
				*_m.OfferSummary = value.String
			}
		case offer.FieldEstimatedDuration:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_duration", values[i])
			} else if value.Valid {
				_m.EstimatedDuration = value.String
			}
		case offer.FieldValidUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field valid_until", values[i])
			} else if value.Valid {
				_m.ValidUntil = value.Time
			}
		case offer.FieldIsConvertedFromExisting:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_converted_from_existing", values[i])
			} else if value.Valid {
				_m.IsConvertedFromExisting = value.Bool
			}
		case offer.FieldTenantEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_email", values[i])
			} else if value.Valid {
				_m.TenantEmail = value.String
			}
		case offer.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case offer.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Offer.
// This includes values selected through modifiers, order, etc.
func (_m *Offer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequirement queries the "requirement" edge of the Offer entity.
func (_m *Offer) QueryRequirement() *RequirementQuery {
	return NewOfferClient(_m.config).QueryRequirement(_m)
}

// Update returns a builder for updating this Offer.
// Note that you need to call Offer.Unwrap() before calling this method if this Offer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Offer) Update() *OfferUpdateOne {
	return NewOfferClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Offer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Offer) Unwrap() *Offer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Offer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Offer) String() string {
	var builder strings.Builder
	builder.WriteString("Offer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("requirement_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequirementID))
	builder.WriteString(", ")
	builder.WriteString("record_id=")
	builder.WriteString(_m.RecordID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	builder.WriteString("total_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPrice))
	builder.WriteString(", ")
	builder.WriteString("material_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaterialTotal))
	builder.WriteString(", ")
	builder.WriteString("work_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkTotal))
	builder.WriteString(", ")
	builder.WriteString("items=")
	builder.WriteString(fmt.Sprintf("%v", _m.Items))
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OfferSummary; v != nil {
		builder.WriteString("offer_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("estimated_duration=")
	builder.WriteString(_m.EstimatedDuration)
	builder.WriteString(", ")
	builder.WriteString("valid_until=")
	builder.WriteString(_m.ValidUntil.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_converted_from_existing=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsConvertedFromExisting))
	builder.WriteString(", ")
	builder.WriteString("tenant_email=")
	builder.WriteString(_m.TenantEmail)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Offers is a parsable slice of Offer.
type Offers []*Offer
