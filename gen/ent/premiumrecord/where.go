// Code generated by ent, DO NOT EDIT.

package premiumrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/rsubramani/policy-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldID, id))
}

// PolicyID applies equality check predicate on the "policy_id" field. It's identical to PolicyIDEQ.
func PolicyID(v uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldPolicyID, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldDueDate, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldAmount, v))
}

// Tax applies equality check predicate on the "tax" field. It's identical to TaxEQ.
func Tax(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldTax, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldTotal, v))
}

// DueCount applies equality check predicate on the "due_count" field. It's identical to DueCountEQ.
func DueCount(v int) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldDueCount, v))
}

// AgentCode applies equality check predicate on the "agent_code" field. It's identical to AgentCodeEQ.
func AgentCode(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldAgentCode, v))
}

// SourceDocument applies equality check predicate on the "source_document" field. It's identical to SourceDocumentEQ.
func SourceDocument(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldSourceDocument, v))
}

// PaymentDate applies equality check predicate on the "payment_date" field. It's identical to PaymentDateEQ.
func PaymentDate(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldPaymentDate, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldProcessedAt, v))
}

// PolicyIDEQ applies the EQ predicate on the "policy_id" field.
func PolicyIDEQ(v uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldPolicyID, v))
}

// PolicyIDNEQ applies the NEQ predicate on the "policy_id" field.
func PolicyIDNEQ(v uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldPolicyID, v))
}

// PolicyIDIn applies the In predicate on the "policy_id" field.
func PolicyIDIn(vs ...uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldPolicyID, vs...))
}

// PolicyIDNotIn applies the NotIn predicate on the "policy_id" field.
func PolicyIDNotIn(vs ...uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldPolicyID, vs...))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldDueDate, v))
}

// DueDateIsNil applies the IsNil predicate on the "due_date" field.
func DueDateIsNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIsNull(FieldDueDate))
}

// DueDateNotNil applies the NotNil predicate on the "due_date" field.
func DueDateNotNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotNull(FieldDueDate))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldAmount, v))
}

// AmountIsNil applies the IsNil predicate on the "amount" field.
func AmountIsNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIsNull(FieldAmount))
}

// AmountNotNil applies the NotNil predicate on the "amount" field.
func AmountNotNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotNull(FieldAmount))
}

// TaxEQ applies the EQ predicate on the "tax" field.
func TaxEQ(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldTax, v))
}

// TaxNEQ applies the NEQ predicate on the "tax" field.
func TaxNEQ(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldTax, v))
}

// TaxIn applies the In predicate on the "tax" field.
func TaxIn(vs ...float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldTax, vs...))
}

// TaxNotIn applies the NotIn predicate on the "tax" field.
func TaxNotIn(vs ...float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldTax, vs...))
}

// TaxGT applies the GT predicate on the "tax" field.
func TaxGT(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldTax, v))
}

// TaxGTE applies the GTE predicate on the "tax" field.
func TaxGTE(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldTax, v))
}

// TaxLT applies the LT predicate on the "tax" field.
func TaxLT(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldTax, v))
}

// TaxLTE applies the LTE predicate on the "tax" field.
func TaxLTE(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldTax, v))
}

// TaxIsNil applies the IsNil predicate on the "tax" field.
func TaxIsNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIsNull(FieldTax))
}

// TaxNotNil applies the NotNil predicate on the "tax" field.
func TaxNotNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotNull(FieldTax))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldTotal, v))
}

// TotalIsNil applies the IsNil predicate on the "total" field.
func TotalIsNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIsNull(FieldTotal))
}

// TotalNotNil applies the NotNil predicate on the "total" field.
func TotalNotNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotNull(FieldTotal))
}

// DueCountEQ applies the EQ predicate on the "due_count" field.
func DueCountEQ(v int) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldDueCount, v))
}

// DueCountNEQ applies the NEQ predicate on the "due_count" field.
func DueCountNEQ(v int) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldDueCount, v))
}

// DueCountIn applies the In predicate on the "due_count" field.
func DueCountIn(vs ...int) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldDueCount, vs...))
}

// DueCountNotIn applies the NotIn predicate on the "due_count" field.
func DueCountNotIn(vs ...int) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldDueCount, vs...))
}

// DueCountGT applies the GT predicate on the "due_count" field.
func DueCountGT(v int) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldDueCount, v))
}

// DueCountGTE applies the GTE predicate on the "due_count" field.
func DueCountGTE(v int) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldDueCount, v))
}

// DueCountLT applies the LT predicate on the "due_count" field.
func DueCountLT(v int) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldDueCount, v))
}

// DueCountLTE applies the LTE predicate on the "due_count" field.
func DueCountLTE(v int) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldDueCount, v))
}

// DueCountIsNil applies the IsNil predicate on the "due_count" field.
func DueCountIsNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIsNull(FieldDueCount))
}

// DueCountNotNil applies the NotNil predicate on the "due_count" field.
func DueCountNotNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotNull(FieldDueCount))
}

// AgentCodeEQ applies the EQ predicate on the "agent_code" field.
func AgentCodeEQ(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldAgentCode, v))
}

// AgentCodeNEQ applies the NEQ predicate on the "agent_code" field.
func AgentCodeNEQ(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldAgentCode, v))
}

// AgentCodeIn applies the In predicate on the "agent_code" field.
func AgentCodeIn(vs ...string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldAgentCode, vs...))
}

// AgentCodeNotIn applies the NotIn predicate on the "agent_code" field.
func AgentCodeNotIn(vs ...string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldAgentCode, vs...))
}

// AgentCodeGT applies the GT predicate on the "agent_code" field.
func AgentCodeGT(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldAgentCode, v))
}

// AgentCodeGTE applies the GTE predicate on the "agent_code" field.
func AgentCodeGTE(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldAgentCode, v))
}

// AgentCodeLT applies the LT predicate on the "agent_code" field.
func AgentCodeLT(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldAgentCode, v))
}

// AgentCodeLTE applies the LTE predicate on the "agent_code" field.
func AgentCodeLTE(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldAgentCode, v))
}

// AgentCodeContains applies the Contains predicate on the "agent_code" field.
func AgentCodeContains(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldContains(FieldAgentCode, v))
}

// AgentCodeHasPrefix applies the HasPrefix predicate on the "agent_code" field.
func AgentCodeHasPrefix(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldHasPrefix(FieldAgentCode, v))
}

// AgentCodeHasSuffix applies the HasSuffix predicate on the "agent_code" field.
func AgentCodeHasSuffix(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldHasSuffix(FieldAgentCode, v))
}

// AgentCodeIsNil applies the IsNil predicate on the "agent_code" field.
func AgentCodeIsNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIsNull(FieldAgentCode))
}

// AgentCodeNotNil applies the NotNil predicate on the "agent_code" field.
func AgentCodeNotNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotNull(FieldAgentCode))
}

// AgentCodeEqualFold applies the EqualFold predicate on the "agent_code" field.
func AgentCodeEqualFold(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEqualFold(FieldAgentCode, v))
}

// AgentCodeContainsFold applies the ContainsFold predicate on the "agent_code" field.
func AgentCodeContainsFold(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldContainsFold(FieldAgentCode, v))
}

// SourceDocumentEQ applies the EQ predicate on the "source_document" field.
func SourceDocumentEQ(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldSourceDocument, v))
}

// SourceDocumentNEQ applies the NEQ predicate on the "source_document" field.
func SourceDocumentNEQ(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldSourceDocument, v))
}

// SourceDocumentIn applies the In predicate on the "source_document" field.
func SourceDocumentIn(vs ...string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldSourceDocument, vs...))
}

// SourceDocumentNotIn applies the NotIn predicate on the "source_document" field.
func SourceDocumentNotIn(vs ...string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldSourceDocument, vs...))
}

// SourceDocumentGT applies the GT predicate on the "source_document" field.
func SourceDocumentGT(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldSourceDocument, v))
}

// SourceDocumentGTE applies the GTE predicate on the "source_document" field.
func SourceDocumentGTE(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldSourceDocument, v))
}

// SourceDocumentLT applies the LT predicate on the "source_document" field.
func SourceDocumentLT(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldSourceDocument, v))
}

// SourceDocumentLTE applies the LTE predicate on the "source_document" field.
func SourceDocumentLTE(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldSourceDocument, v))
}

// SourceDocumentContains applies the Contains predicate on the "source_document" field.
func SourceDocumentContains(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldContains(FieldSourceDocument, v))
}

// SourceDocumentHasPrefix applies the HasPrefix predicate on the "source_document" field.
func SourceDocumentHasPrefix(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldHasPrefix(FieldSourceDocument, v))
}

// SourceDocumentHasSuffix applies the HasSuffix predicate on the "source_document" field.
func SourceDocumentHasSuffix(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldHasSuffix(FieldSourceDocument, v))
}

// SourceDocumentEqualFold applies the EqualFold predicate on the "source_document" field.
func SourceDocumentEqualFold(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEqualFold(FieldSourceDocument, v))
}

// SourceDocumentContainsFold applies the ContainsFold predicate on the "source_document" field.
func SourceDocumentContainsFold(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldContainsFold(FieldSourceDocument, v))
}

// PaymentDateEQ applies the EQ predicate on the "payment_date" field.
func PaymentDateEQ(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldPaymentDate, v))
}

// PaymentDateNEQ applies the NEQ predicate on the "payment_date" field.
func PaymentDateNEQ(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldPaymentDate, v))
}

// PaymentDateIn applies the In predicate on the "payment_date" field.
func PaymentDateIn(vs ...time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldPaymentDate, vs...))
}

// PaymentDateNotIn applies the NotIn predicate on the "payment_date" field.
func PaymentDateNotIn(vs ...time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldPaymentDate, vs...))
}

// PaymentDateGT applies the GT predicate on the "payment_date" field.
func PaymentDateGT(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldPaymentDate, v))
}

// PaymentDateGTE applies the GTE predicate on the "payment_date" field.
func PaymentDateGTE(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldPaymentDate, v))
}

// PaymentDateLT applies the LT predicate on the "payment_date" field.
func PaymentDateLT(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldPaymentDate, v))
}

// PaymentDateLTE applies the LTE predicate on the "payment_date" field.
func PaymentDateLTE(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldPaymentDate, v))
}

// PaymentDateIsNil applies the IsNil predicate on the "payment_date" field.
func PaymentDateIsNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIsNull(FieldPaymentDate))
}

// PaymentDateNotNil applies the NotNil predicate on the "payment_date" field.
func PaymentDateNotNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotNull(FieldPaymentDate))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldProcessedAt, v))
}

// HasPolicy applies the HasEdge predicate on the "policy" edge.
func HasPolicy() predicate.PremiumRecord {
	return predicate.PremiumRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PolicyTable, PolicyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPolicyWith applies the HasEdge predicate on the "policy" edge with a given conditions (other predicates).
func HasPolicyWith(preds ...predicate.InsurancePolicy) predicate.PremiumRecord {
	return predicate.PremiumRecord(func(s *sql.Selector) {
		step := newPolicyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PremiumRecord) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PremiumRecord) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PremiumRecord) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.NotPredicates(p))
}
