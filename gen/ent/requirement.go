// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Zoli1212/awsflow/gen/ent/requirement"
	"github.com/Zoli1212/awsflow/gen/ent/work"
	"github.com/google/uuid"
)

// Requirement is the model entity for the Requirement schema.
type Requirement struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// WorkID holds the value of the "work_id" field.
	WorkID uuid.UUID `json:"work_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// VersionNumber holds the value of the "version_number" field.
	VersionNumber int `json:"version_number,omitempty"`
	// UpdateCount holds the value of the "update_count" field.
	UpdateCount int `json:"update_count,omitempty"`
	// QuestionCount holds the value of the "question_count" field.
	QuestionCount int `json:"question_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RequirementQuery when eager-loading is set.
	Edges        RequirementEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RequirementEdges holds the relations/edges for other nodes in the graph.
type RequirementEdges struct {
	// Work holds the value of the work edge.
	Work *Work `json:"work,omitempty"`
	// Offers holds the value of the offers edge.
	Offers []*Offer `json:"offers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// WorkOrErr returns the Work value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RequirementEdges) WorkOrErr() (*Work, error) {
	if e.Work != nil {
		return e.Work, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: work.Label}
	}
	return nil, &NotLoadedError{edge: "work"}
}

// OffersOrErr returns the Offers value or an error if the edge
// was not loaded in eager-loading.
func (e RequirementEdges) OffersOrErr() ([]*Offer, error) {
	if e.loadedTypes[1] {
		return e.Offers, nil
	}
	return nil, &NotLoadedError{edge: "offers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Requirement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case requirement.FieldVersionNumber, requirement.FieldUpdateCount, requirement.FieldQuestionCount:
			values[i] = new(sql.NullInt64)
		case requirement.FieldTitle, requirement.FieldDescription:
			values[i] = new(sql.NullString)
		case requirement.FieldCreatedAt, requirement.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case requirement.FieldID, requirement.FieldWorkID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Requirement fields.
func (_m *Requirement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case requirement.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case requirement.FieldWorkID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field work_id", values[i])
			} else if value != nil {
				_m.WorkID = *value
			}
		case requirement.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case requirement.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case requirement.FieldVersionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version_number", values[i])
			} else if value.Valid {
				_m.VersionNumber = int(value.Int64)
			}
		case requirement.FieldUpdateCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field update_count", values[i])
			} else if value.Valid {
				_m.UpdateCount = int(value.Int64)
			}
		case requirement.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				_m.QuestionCount = int(value.Int64)
			}
		case requirement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case requirement.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Requirement.
// This includes values selected through modifiers, order, etc.
func (_m *Requirement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWork queries the "work" edge of the Requirement entity.
func (_m *Requirement) QueryWork() *WorkQuery {
	return NewRequirementClient(_m.config).QueryWork(_m)
}

// QueryOffers queries the "offers" edge of the Requirement entity.
func (_m *Requirement) QueryOffers() *OfferQuery {
	return NewRequirementClient(_m.config).QueryOffers(_m)
}

// Update returns a builder for updating this Requirement.
// Note that you need to call Requirement.Unwrap() before calling this method if this Requirement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Requirement) Update() *RequirementUpdateOne {
	return NewRequirementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Requirement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Requirement) Unwrap() *Requirement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Requirement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Requirement) String() string {
	var builder strings.Builder
	builder.WriteString("Requirement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("work_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("version_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.VersionNumber))
	builder.WriteString(", ")
	builder.WriteString("update_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UpdateCount))
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Requirements is a parsable slice of Requirement.
type Requirements []*Requirement
