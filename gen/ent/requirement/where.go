// Code generated by ent, DO NOT EDIT.

package requirement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Zoli1212/awsflow/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldID, id))
}

// WorkID applies equality check predicate on the "work_id" field. It's identical to WorkIDEQ.
func WorkID(v uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldWorkID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldDescription, v))
}

// VersionNumber applies equality check predicate on the "version_number" field. It's identical to VersionNumberEQ.
func VersionNumber(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldVersionNumber, v))
}

// UpdateCount applies equality check predicate on the "update_count" field. It's identical to UpdateCountEQ.
func UpdateCount(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldUpdateCount, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldQuestionCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkIDEQ applies the EQ predicate on the "work_id" field.
func WorkIDEQ(v uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldWorkID, v))
}

// WorkIDNEQ applies the NEQ predicate on the "work_id" field.
func WorkIDNEQ(v uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldWorkID, v))
}

// WorkIDIn applies the In predicate on the "work_id" field.
func WorkIDIn(vs ...uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldWorkID, vs...))
}

// WorkIDNotIn applies the NotIn predicate on the "work_id" field.
func WorkIDNotIn(vs ...uuid.UUID) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldWorkID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Requirement {
	return predicate.Requirement(sql.FieldContainsFold(FieldDescription, v))
}

// VersionNumberEQ applies the EQ predicate on the "version_number" field.
func VersionNumberEQ(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldVersionNumber, v))
}

// VersionNumberNEQ applies the NEQ predicate on the "version_number" field.
func VersionNumberNEQ(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldVersionNumber, v))
}

// VersionNumberIn applies the In predicate on the "version_number" field.
func VersionNumberIn(vs ...int) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldVersionNumber, vs...))
}

// VersionNumberNotIn applies the NotIn predicate on the "version_number" field.
func VersionNumberNotIn(vs ...int) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldVersionNumber, vs...))
}

// VersionNumberGT applies the GT predicate on the "version_number" field.
func VersionNumberGT(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldVersionNumber, v))
}

// VersionNumberGTE applies the GTE predicate on the "version_number" field.
func VersionNumberGTE(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldVersionNumber, v))
}

// VersionNumberLT applies the LT predicate on the "version_number" field.
func VersionNumberLT(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldVersionNumber, v))
}

// VersionNumberLTE applies the LTE predicate on the "version_number" field.
func VersionNumberLTE(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldVersionNumber, v))
}

// UpdateCountEQ applies the EQ predicate on the "update_count" field.
func UpdateCountEQ(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldUpdateCount, v))
}

// UpdateCountNEQ applies the NEQ predicate on the "update_count" field.
func UpdateCountNEQ(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldUpdateCount, v))
}

// UpdateCountIn applies the In predicate on the "update_count" field.
func UpdateCountIn(vs ...int) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldUpdateCount, vs...))
}

// UpdateCountNotIn applies the NotIn predicate on the "update_count" field.
func UpdateCountNotIn(vs ...int) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldUpdateCount, vs...))
}

// UpdateCountGT applies the GT predicate on the "update_count" field.
func UpdateCountGT(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldUpdateCount, v))
}

// UpdateCountGTE applies the GTE predicate on the "update_count" field.
func UpdateCountGTE(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldUpdateCount, v))
}

// UpdateCountLT applies the LT predicate on the "update_count" field.
func UpdateCountLT(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldUpdateCount, v))
}

// UpdateCountLTE applies the LTE predicate on the "update_count" field.
func UpdateCountLTE(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldUpdateCount, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldQuestionCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Requirement {
	return predicate.Requirement(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWork applies the HasEdge predicate on the "work" edge.
func HasWork() predicate.Requirement {
	return predicate.Requirement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkTable, WorkColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkWith applies the HasEdge predicate on the "work" edge with a given conditions (other predicates).
func HasWorkWith(preds ...predicate.Work) predicate.Requirement {
	return predicate.Requirement(func(s *sql.Selector) {
		step := newWorkStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOffers applies the HasEdge predicate on the "offers" edge.
func HasOffers() predicate.Requirement {
	return predicate.Requirement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OffersTable, OffersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOffersWith applies the HasEdge predicate on the "offers" edge with a given conditions (other predicates).
func HasOffersWith(preds ...predicate.Offer) predicate.Requirement {
	return predicate.Requirement(func(s *sql.Selector) {
		step := newOffersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Requirement) predicate.Requirement {
	return predicate.Requirement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Requirement) predicate.Requirement {
	return predicate.Requirement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Requirement) predicate.Requirement {
	return predicate.Requirement(sql.NotPredicates(p))
}
