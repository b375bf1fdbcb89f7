// Code generated by ent, DO NOT EDIT.

package billing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Zoli1212/awsflow/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Billing {
	return predicate.Billing(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Billing {
	return predicate.Billing(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Billing {
	return predicate.Billing(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Billing {
	return predicate.Billing(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Billing {
	return predicate.Billing(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Billing {
	return predicate.Billing(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Billing {
	return predicate.Billing(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Billing {
	return predicate.Billing(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Billing {
	return predicate.Billing(sql.FieldLTE(FieldID, id))
}

// TenantEmail applies equality check predicate on the "tenant_email" field. It's identical to TenantEmailEQ.
func TenantEmail(v string) predicate.Billing {
	return predicate.Billing(sql.FieldEQ(FieldTenantEmail, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Billing {
	return predicate.Billing(sql.FieldEQ(FieldTitle, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.Billing {
	return predicate.Billing(sql.FieldEQ(FieldAmount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Billing {
	return predicate.Billing(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantEmailEQ applies the EQ predicate on the "tenant_email" field.
func TenantEmailEQ(v string) predicate.Billing {
	return predicate.Billing(sql.FieldEQ(FieldTenantEmail, v))
}

// TenantEmailNEQ applies the NEQ predicate on the "tenant_email" field.
func TenantEmailNEQ(v string) predicate.Billing {
	return predicate.Billing(sql.FieldNEQ(FieldTenantEmail, v))
}

// TenantEmailIn applies the In predicate on the "tenant_email" field.
func TenantEmailIn(vs ...string) predicate.Billing {
	return predicate.Billing(sql.FieldIn(FieldTenantEmail, vs...))
}

// TenantEmailNotIn applies the NotIn predicate on the "tenant_email" field.
func TenantEmailNotIn(vs ...string) predicate.Billing {
	return predicate.Billing(sql.FieldNotIn(FieldTenantEmail, vs...))
}

// TenantEmailGT applies the GT predicate on the "tenant_email" field.
func TenantEmailGT(v string) predicate.Billing {
	return predicate.Billing(sql.FieldGT(FieldTenantEmail, v))
}

// TenantEmailGTE applies the GTE predicate on the "tenant_email" field.
func TenantEmailGTE(v string) predicate.Billing {
	return predicate.Billing(sql.FieldGTE(FieldTenantEmail, v))
}

// TenantEmailLT applies the LT predicate on the "tenant_email" field.
func TenantEmailLT(v string) predicate.Billing {
	return predicate.Billing(sql.FieldLT(FieldTenantEmail, v))
}

// TenantEmailLTE applies the LTE predicate on the "tenant_email" field.
func TenantEmailLTE(v string) predicate.Billing {
	return predicate.Billing(sql.FieldLTE(FieldTenantEmail, v))
}

// TenantEmailContains applies the Contains predicate on the "tenant_email" field.
func TenantEmailContains(v string) predicate.Billing {
	return predicate.Billing(sql.FieldContains(FieldTenantEmail, v))
}

// TenantEmailHasPrefix applies the HasPrefix predicate on the "tenant_email" field.
func TenantEmailHasPrefix(v string) predicate.Billing {
	return predicate.Billing(sql.FieldHasPrefix(FieldTenantEmail, v))
}

// TenantEmailHasSuffix applies the HasSuffix predicate on the "tenant_email" field.
func TenantEmailHasSuffix(v string) predicate.Billing {
	return predicate.Billing(sql.FieldHasSuffix(FieldTenantEmail, v))
}

// TenantEmailEqualFold applies the EqualFold predicate on the "tenant_email" field.
func TenantEmailEqualFold(v string) predicate.Billing {
	return predicate.Billing(sql.FieldEqualFold(FieldTenantEmail, v))
}

// TenantEmailContainsFold applies the ContainsFold predicate on the "tenant_email" field.
func TenantEmailContainsFold(v string) predicate.Billing {
	return predicate.Billing(sql.FieldContainsFold(FieldTenantEmail, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Billing {
	return predicate.Billing(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Billing {
	return predicate.Billing(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Billing {
	return predicate.Billing(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Billing {
	return predicate.Billing(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Billing {
	return predicate.Billing(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Billing {
	return predicate.Billing(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Billing {
	return predicate.Billing(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Billing {
	return predicate.Billing(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Billing {
	return predicate.Billing(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Billing {
	return predicate.Billing(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Billing {
	return predicate.Billing(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Billing {
	return predicate.Billing(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Billing {
	return predicate.Billing(sql.FieldContainsFold(FieldTitle, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.Billing {
	return predicate.Billing(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.Billing {
	return predicate.Billing(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.Billing {
	return predicate.Billing(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.Billing {
	return predicate.Billing(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.Billing {
	return predicate.Billing(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.Billing {
	return predicate.Billing(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.Billing {
	return predicate.Billing(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.Billing {
	return predicate.Billing(sql.FieldLTE(FieldAmount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Billing {
	return predicate.Billing(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Billing {
	return predicate.Billing(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Billing {
	return predicate.Billing(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Billing {
	return predicate.Billing(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Billing {
	return predicate.Billing(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Billing {
	return predicate.Billing(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Billing {
	return predicate.Billing(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Billing {
	return predicate.Billing(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Billing) predicate.Billing {
	return predicate.Billing(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Billing) predicate.Billing {
	return predicate.Billing(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Billing) predicate.Billing {
	return predicate.Billing(sql.NotPredicates(p))
}
