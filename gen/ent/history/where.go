// Code generated by ent, DO NOT EDIT.

package history

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Zoli1212/awsflow/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.History {
	return predicate.History(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.History {
	return predicate.History(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.History {
	return predicate.History(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.History {
	return predicate.History(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.History {
	return predicate.History(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.History {
	return predicate.History(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.History {
	return predicate.History(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.History {
	return predicate.History(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.History {
	return predicate.History(sql.FieldLTE(FieldID, id))
}

// UserEmail applies equality check predicate on the "user_email" field. It's identical to UserEmailEQ.
func UserEmail(v string) predicate.History {
	return predicate.History(sql.FieldEQ(FieldUserEmail, v))
}

// TenantEmail applies equality check predicate on the "tenant_email" field. It's identical to TenantEmailEQ.
func TenantEmail(v string) predicate.History {
	return predicate.History(sql.FieldEQ(FieldTenantEmail, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.History {
	return predicate.History(sql.FieldEQ(FieldContent, v))
}

// AiAgentType applies equality check predicate on the "ai_agent_type" field. It's identical to AiAgentTypeEQ.
func AiAgentType(v string) predicate.History {
	return predicate.History(sql.FieldEQ(FieldAiAgentType, v))
}

// FileType applies equality check predicate on the "file_type" field. It's identical to FileTypeEQ.
func FileType(v string) predicate.History {
	return predicate.History(sql.FieldEQ(FieldFileType, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.History {
	return predicate.History(sql.FieldEQ(FieldFileName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.History {
	return predicate.History(sql.FieldEQ(FieldCreatedAt, v))
}

// UserEmailEQ applies the EQ predicate on the "user_email" field.
func UserEmailEQ(v string) predicate.History {
	return predicate.History(sql.FieldEQ(FieldUserEmail, v))
}

// UserEmailNEQ applies the NEQ predicate on the "user_email" field.
func UserEmailNEQ(v string) predicate.History {
	return predicate.History(sql.FieldNEQ(FieldUserEmail, v))
}

// UserEmailIn applies the In predicate on the "user_email" field.
func UserEmailIn(vs ...string) predicate.History {
	return predicate.History(sql.FieldIn(FieldUserEmail, vs...))
}

// UserEmailNotIn applies the NotIn predicate on the "user_email" field.
func UserEmailNotIn(vs ...string) predicate.History {
	return predicate.History(sql.FieldNotIn(FieldUserEmail, vs...))
}

// UserEmailGT applies the GT predicate on the "user_email" field.
func UserEmailGT(v string) predicate.History {
	return predicate.History(sql.FieldGT(FieldUserEmail, v))
}

// UserEmailGTE applies the GTE predicate on the "user_email" field.
func UserEmailGTE(v string) predicate.History {
	return predicate.History(sql.FieldGTE(FieldUserEmail, v))
}

// UserEmailLT applies the LT predicate on the "user_email" field.
func UserEmailLT(v string) predicate.History {
	return predicate.History(sql.FieldLT(FieldUserEmail, v))
}

// UserEmailLTE applies the LTE predicate on the "user_email" field.
func UserEmailLTE(v string) predicate.History {
	return predicate.History(sql.FieldLTE(FieldUserEmail, v))
}

// UserEmailContains applies the Contains predicate on the "user_email" field.
func UserEmailContains(v string) predicate.History {
	return predicate.History(sql.FieldContains(FieldUserEmail, v))
}

// UserEmailHasPrefix applies the HasPrefix predicate on the "user_email" field.
func UserEmailHasPrefix(v string) predicate.History {
	return predicate.History(sql.FieldHasPrefix(FieldUserEmail, v))
}

// UserEmailHasSuffix applies the HasSuffix predicate on the "user_email" field.
func UserEmailHasSuffix(v string) predicate.History {
	return predicate.History(sql.FieldHasSuffix(FieldUserEmail, v))
}

// UserEmailEqualFold applies the EqualFold predicate on the "user_email" field.
func UserEmailEqualFold(v string) predicate.History {
	return predicate.History(sql.FieldEqualFold(FieldUserEmail, v))
}

// UserEmailContainsFold applies the ContainsFold predicate on the "user_email" field.
func UserEmailContainsFold(v string) predicate.History {
	return predicate.History(sql.FieldContainsFold(FieldUserEmail, v))
}

// TenantEmailEQ applies the EQ predicate on the "tenant_email" field.
func TenantEmailEQ(v string) predicate.History {
	return predicate.History(sql.FieldEQ(FieldTenantEmail, v))
}

// TenantEmailNEQ applies the NEQ predicate on the "tenant_email" field.
func TenantEmailNEQ(v string) predicate.History {
	return predicate.History(sql.FieldNEQ(FieldTenantEmail, v))
}

// TenantEmailIn applies the In predicate on the "tenant_email" field.
func TenantEmailIn(vs ...string) predicate.History {
	return predicate.History(sql.FieldIn(FieldTenantEmail, vs...))
}

// TenantEmailNotIn applies the NotIn predicate on the "tenant_email" field.
func TenantEmailNotIn(vs ...string) predicate.History {
	return predicate.History(sql.FieldNotIn(FieldTenantEmail, vs...))
}

// TenantEmailGT applies the GT predicate on the "tenant_email" field.
func TenantEmailGT(v string) predicate.History {
	return predicate.History(sql.FieldGT(FieldTenantEmail, v))
}

// TenantEmailGTE applies the GTE predicate on the "tenant_email" field.
func TenantEmailGTE(v string) predicate.History {
	return predicate.History(sql.FieldGTE(FieldTenantEmail, v))
}

// TenantEmailLT applies the LT predicate on the "tenant_email" field.
func TenantEmailLT(v string) predicate.History {
	return predicate.History(sql.FieldLT(FieldTenantEmail, v))
}

// TenantEmailLTE applies the LTE predicate on the "tenant_email" field.
func TenantEmailLTE(v string) predicate.History {
	return predicate.History(sql.FieldLTE(FieldTenantEmail, v))
}

// TenantEmailContains applies the Contains predicate on the "tenant_email" field.
func TenantEmailContains(v string) predicate.History {
	return predicate.History(sql.FieldContains(FieldTenantEmail, v))
}

// TenantEmailHasPrefix applies the HasPrefix predicate on the "tenant_email" field.
func TenantEmailHasPrefix(v string) predicate.History {
	return predicate.History(sql.FieldHasPrefix(FieldTenantEmail, v))
}

// TenantEmailHasSuffix applies the HasSuffix predicate on the "tenant_email" field.
func TenantEmailHasSuffix(v string) predicate.History {
	return predicate.History(sql.FieldHasSuffix(FieldTenantEmail, v))
}

// TenantEmailEqualFold applies the EqualFold predicate on the "tenant_email" field.
func TenantEmailEqualFold(v string) predicate.History {
	return predicate.History(sql.FieldEqualFold(FieldTenantEmail, v))
}

// TenantEmailContainsFold applies the ContainsFold predicate on the "tenant_email" field.
func TenantEmailContainsFold(v string) predicate.History {
	return predicate.History(sql.FieldContainsFold(FieldTenantEmail, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.History {
	return predicate.History(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.History {
	return predicate.History(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.History {
	return predicate.History(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.History {
	return predicate.History(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.History {
	return predicate.History(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.History {
	return predicate.History(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.History {
	return predicate.History(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.History {
	return predicate.History(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.History {
	return predicate.History(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.History {
	return predicate.History(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.History {
	return predicate.History(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.History {
	return predicate.History(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.History {
	return predicate.History(sql.FieldContainsFold(FieldContent, v))
}

// AiAgentTypeEQ applies the EQ predicate on the "ai_agent_type" field.
func AiAgentTypeEQ(v string) predicate.History {
	return predicate.History(sql.FieldEQ(FieldAiAgentType, v))
}

// AiAgentTypeNEQ applies the NEQ predicate on the "ai_agent_type" field.
func AiAgentTypeNEQ(v string) predicate.History {
	return predicate.History(sql.FieldNEQ(FieldAiAgentType, v))
}

// AiAgentTypeIn applies the In predicate on the "ai_agent_type" field.
func AiAgentTypeIn(vs ...string) predicate.History {
	return predicate.History(sql.FieldIn(FieldAiAgentType, vs...))
}

// AiAgentTypeNotIn applies the NotIn predicate on the "ai_agent_type" field.
func AiAgentTypeNotIn(vs ...string) predicate.History {
	return predicate.History(sql.FieldNotIn(FieldAiAgentType, vs...))
}

// AiAgentTypeGT applies the GT predicate on the "ai_agent_type" field.
func AiAgentTypeGT(v string) predicate.History {
	return predicate.History(sql.FieldGT(FieldAiAgentType, v))
}

// AiAgentTypeGTE applies the GTE predicate on the "ai_agent_type" field.
func AiAgentTypeGTE(v string) predicate.History {
	return predicate.History(sql.FieldGTE(FieldAiAgentType, v))
}

// AiAgentTypeLT applies the LT predicate on the "ai_agent_type" field.
func AiAgentTypeLT(v string) predicate.History {
	return predicate.History(sql.FieldLT(FieldAiAgentType, v))
}

// AiAgentTypeLTE applies the LTE predicate on the "ai_agent_type" field.
func AiAgentTypeLTE(v string) predicate.History {
	return predicate.History(sql.FieldLTE(FieldAiAgentType, v))
}

// AiAgentTypeContains applies the Contains predicate on the "ai_agent_type" field.
func AiAgentTypeContains(v string) predicate.History {
	return predicate.History(sql.FieldContains(FieldAiAgentType, v))
}

// AiAgentTypeHasPrefix applies the HasPrefix predicate on the "ai_agent_type" field.
func AiAgentTypeHasPrefix(v string) predicate.History {
	return predicate.History(sql.FieldHasPrefix(FieldAiAgentType, v))
}

// AiAgentTypeHasSuffix applies the HasSuffix predicate on the "ai_agent_type" field.
func AiAgentTypeHasSuffix(v string) predicate.History {
	return predicate.History(sql.FieldHasSuffix(FieldAiAgentType, v))
}

// AiAgentTypeIsNil applies the IsNil predicate on the "ai_agent_type" field.
func AiAgentTypeIsNil() predicate.History {
	return predicate.History(sql.FieldIsNull(FieldAiAgentType))
}

// AiAgentTypeNotNil applies the NotNil predicate on the "ai_agent_type" field.
func AiAgentTypeNotNil() predicate.History {
	return predicate.History(sql.FieldNotNull(FieldAiAgentType))
}

// AiAgentTypeEqualFold applies the EqualFold predicate on the "ai_agent_type" field.
func AiAgentTypeEqualFold(v string) predicate.History {
	return predicate.History(sql.FieldEqualFold(FieldAiAgentType, v))
}

// AiAgentTypeContainsFold applies the ContainsFold predicate on the "ai_agent_type" field.
func AiAgentTypeContainsFold(v string) predicate.History {
	return predicate.History(sql.FieldContainsFold(FieldAiAgentType, v))
}

// FileTypeEQ applies the EQ predicate on the "file_type" field.
func FileTypeEQ(v string) predicate.History {
	return predicate.History(sql.FieldEQ(FieldFileType, v))
}

// FileTypeNEQ applies the NEQ predicate on the "file_type" field.
func FileTypeNEQ(v string) predicate.History {
	return predicate.History(sql.FieldNEQ(FieldFileType, v))
}

// FileTypeIn applies the In predicate on the "file_type" field.
func FileTypeIn(vs ...string) predicate.History {
	return predicate.History(sql.FieldIn(FieldFileType, vs...))
}

// FileTypeNotIn applies the NotIn predicate on the "file_type" field.
func FileTypeNotIn(vs ...string) predicate.History {
	return predicate.History(sql.FieldNotIn(FieldFileType, vs...))
}

// FileTypeGT applies the GT predicate on the "file_type" field.
func FileTypeGT(v string) predicate.History {
	return predicate.History(sql.FieldGT(FieldFileType, v))
}

// FileTypeGTE applies the GTE predicate on the "file_type" field.
func FileTypeGTE(v string) predicate.History {
	return predicate.History(sql.FieldGTE(FieldFileType, v))
}

// FileTypeLT applies the LT predicate on the "file_type" field.
func FileTypeLT(v string) predicate.History {
	return predicate.History(sql.FieldLT(FieldFileType, v))
}

// FileTypeLTE applies the LTE predicate on the "file_type" field.
func FileTypeLTE(v string) predicate.History {
	return predicate.History(sql.FieldLTE(FieldFileType, v))
}

// FileTypeContains applies the Contains predicate on the "file_type" field.
func FileTypeContains(v string) predicate.History {
	return predicate.History(sql.FieldContains(FieldFileType, v))
}

// FileTypeHasPrefix applies the HasPrefix predicate on the "file_type" field.
func FileTypeHasPrefix(v string) predicate.History {
	return predicate.History(sql.FieldHasPrefix(FieldFileType, v))
}

// FileTypeHasSuffix applies the HasSuffix predicate on the "file_type" field.
func FileTypeHasSuffix(v string) predicate.History {
	return predicate.History(sql.FieldHasSuffix(FieldFileType, v))
}

// FileTypeIsNil applies the IsNil predicate on the "file_type" field.
func FileTypeIsNil() predicate.History {
	return predicate.History(sql.FieldIsNull(FieldFileType))
}

// FileTypeNotNil applies the NotNil predicate on the "file_type" field.
func FileTypeNotNil() predicate.History {
	return predicate.History(sql.FieldNotNull(FieldFileType))
}

// FileTypeEqualFold applies the EqualFold predicate on the "file_type" field.
func FileTypeEqualFold(v string) predicate.History {
	return predicate.History(sql.FieldEqualFold(FieldFileType, v))
}

// FileTypeContainsFold applies the ContainsFold predicate on the "file_type" field.
func FileTypeContainsFold(v string) predicate.History {
	return predicate.History(sql.FieldContainsFold(FieldFileType, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.History {
	return predicate.History(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.History {
	return predicate.History(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.History {
	return predicate.History(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.History {
	return predicate.History(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.History {
	return predicate.History(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.History {
	return predicate.History(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.History {
	return predicate.History(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.History {
	return predicate.History(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.History {
	return predicate.History(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.History {
	return predicate.History(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.History {
	return predicate.History(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameIsNil applies the IsNil predicate on the "file_name" field.
func FileNameIsNil() predicate.History {
	return predicate.History(sql.FieldIsNull(FieldFileName))
}

// FileNameNotNil applies the NotNil predicate on the "file_name" field.
func FileNameNotNil() predicate.History {
	return predicate.History(sql.FieldNotNull(FieldFileName))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.History {
	return predicate.History(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.History {
	return predicate.History(sql.FieldContainsFold(FieldFileName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.History {
	return predicate.History(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.History {
	return predicate.History(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.History {
	return predicate.History(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.History {
	return predicate.History(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.History {
	return predicate.History(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.History {
	return predicate.History(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.History {
	return predicate.History(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.History {
	return predicate.History(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.History) predicate.History {
	return predicate.History(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.History) predicate.History {
	return predicate.History(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.History) predicate.History {
	return predicate.History(sql.NotPredicates(p))
}
