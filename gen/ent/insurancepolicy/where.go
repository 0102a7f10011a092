// Code generated by ent, DO NOT EDIT.

package insurancepolicy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/rsubramani/policy-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldID, id))
}

// PolicyNumber applies equality check predicate on the "policy_number" field. It's identical to PolicyNumberEQ.
func PolicyNumber(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPolicyNumber, v))
}

// CustomerID applies equality check predicate on the "customer_id" field. It's identical to CustomerIDEQ.
func CustomerID(v uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldCustomerID, v))
}

// AgentCode applies equality check predicate on the "agent_code" field. It's identical to AgentCodeEQ.
func AgentCode(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldAgentCode, v))
}

// PlanType applies equality check predicate on the "plan_type" field. It's identical to PlanTypeEQ.
func PlanType(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPlanType, v))
}

// PlanName applies equality check predicate on the "plan_name" field. It's identical to PlanNameEQ.
func PlanName(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPlanName, v))
}

// CommencementDate applies equality check predicate on the "commencement_date" field. It's identical to CommencementDateEQ.
func CommencementDate(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldCommencementDate, v))
}

// PaymentMode applies equality check predicate on the "payment_mode" field. It's identical to PaymentModeEQ.
func PaymentMode(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPaymentMode, v))
}

// FupDueDate applies equality check predicate on the "fup_due_date" field. It's identical to FupDueDateEQ.
func FupDueDate(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldFupDueDate, v))
}

// SumAssured applies equality check predicate on the "sum_assured" field. It's identical to SumAssuredEQ.
func SumAssured(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldSumAssured, v))
}

// PremiumAmount applies equality check predicate on the "premium_amount" field. It's identical to PremiumAmountEQ.
func PremiumAmount(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPremiumAmount, v))
}

// PolicyTerm applies equality check predicate on the "policy_term" field. It's identical to PolicyTermEQ.
func PolicyTerm(v int) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPolicyTerm, v))
}

// PremiumPayingTerm applies equality check predicate on the "premium_paying_term" field. It's identical to PremiumPayingTermEQ.
func PremiumPayingTerm(v int) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPremiumPayingTerm, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldStatus, v))
}

// ExtractionMethod applies equality check predicate on the "extraction_method" field. It's identical to ExtractionMethodEQ.
func ExtractionMethod(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldExtractionMethod, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// PolicyNumberEQ applies the EQ predicate on the "policy_number" field.
func PolicyNumberEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPolicyNumber, v))
}

// PolicyNumberNEQ applies the NEQ predicate on the "policy_number" field.
func PolicyNumberNEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldPolicyNumber, v))
}

// PolicyNumberIn applies the In predicate on the "policy_number" field.
func PolicyNumberIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldPolicyNumber, vs...))
}

// PolicyNumberNotIn applies the NotIn predicate on the "policy_number" field.
func PolicyNumberNotIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldPolicyNumber, vs...))
}

// PolicyNumberGT applies the GT predicate on the "policy_number" field.
func PolicyNumberGT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldPolicyNumber, v))
}

// PolicyNumberGTE applies the GTE predicate on the "policy_number" field.
func PolicyNumberGTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldPolicyNumber, v))
}

// PolicyNumberLT applies the LT predicate on the "policy_number" field.
func PolicyNumberLT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldPolicyNumber, v))
}

// PolicyNumberLTE applies the LTE predicate on the "policy_number" field.
func PolicyNumberLTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldPolicyNumber, v))
}

// PolicyNumberContains applies the Contains predicate on the "policy_number" field.
func PolicyNumberContains(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContains(FieldPolicyNumber, v))
}

// PolicyNumberHasPrefix applies the HasPrefix predicate on the "policy_number" field.
func PolicyNumberHasPrefix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasPrefix(FieldPolicyNumber, v))
}

// PolicyNumberHasSuffix applies the HasSuffix predicate on the "policy_number" field.
func PolicyNumberHasSuffix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasSuffix(FieldPolicyNumber, v))
}

// PolicyNumberEqualFold applies the EqualFold predicate on the "policy_number" field.
func PolicyNumberEqualFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEqualFold(FieldPolicyNumber, v))
}

// PolicyNumberContainsFold applies the ContainsFold predicate on the "policy_number" field.
func PolicyNumberContainsFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContainsFold(FieldPolicyNumber, v))
}

// CustomerIDEQ applies the EQ predicate on the "customer_id" field.
func CustomerIDEQ(v uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldCustomerID, v))
}

// CustomerIDNEQ applies the NEQ predicate on the "customer_id" field.
func CustomerIDNEQ(v uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldCustomerID, v))
}

// CustomerIDIn applies the In predicate on the "customer_id" field.
func CustomerIDIn(vs ...uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldCustomerID, vs...))
}

// CustomerIDNotIn applies the NotIn predicate on the "customer_id" field.
func CustomerIDNotIn(vs ...uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldCustomerID, vs...))
}

// AgentCodeEQ applies the EQ predicate on the "agent_code" field.
func AgentCodeEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldAgentCode, v))
}

// AgentCodeNEQ applies the NEQ predicate on the "agent_code" field.
func AgentCodeNEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldAgentCode, v))
}

// AgentCodeIn applies the In predicate on the "agent_code" field.
func AgentCodeIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldAgentCode, vs...))
}

// AgentCodeNotIn applies the NotIn predicate on the "agent_code" field.
func AgentCodeNotIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldAgentCode, vs...))
}

// AgentCodeGT applies the GT predicate on the "agent_code" field.
func AgentCodeGT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldAgentCode, v))
}

// AgentCodeGTE applies the GTE predicate on the "agent_code" field.
func AgentCodeGTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldAgentCode, v))
}

// AgentCodeLT applies the LT predicate on the "agent_code" field.
func AgentCodeLT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldAgentCode, v))
}

// AgentCodeLTE applies the LTE predicate on the "agent_code" field.
func AgentCodeLTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldAgentCode, v))
}

// AgentCodeContains applies the Contains predicate on the "agent_code" field.
func AgentCodeContains(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContains(FieldAgentCode, v))
}

// AgentCodeHasPrefix applies the HasPrefix predicate on the "agent_code" field.
func AgentCodeHasPrefix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasPrefix(FieldAgentCode, v))
}

// AgentCodeHasSuffix applies the HasSuffix predicate on the "agent_code" field.
func AgentCodeHasSuffix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasSuffix(FieldAgentCode, v))
}

// AgentCodeIsNil applies the IsNil predicate on the "agent_code" field.
func AgentCodeIsNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIsNull(FieldAgentCode))
}

// AgentCodeNotNil applies the NotNil predicate on the "agent_code" field.
func AgentCodeNotNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotNull(FieldAgentCode))
}

// AgentCodeEqualFold applies the EqualFold predicate on the "agent_code" field.
func AgentCodeEqualFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEqualFold(FieldAgentCode, v))
}

// AgentCodeContainsFold applies the ContainsFold predicate on the "agent_code" field.
func AgentCodeContainsFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContainsFold(FieldAgentCode, v))
}

// PlanTypeEQ applies the EQ predicate on the "plan_type" field.
func PlanTypeEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPlanType, v))
}

// PlanTypeNEQ applies the NEQ predicate on the "plan_type" field.
func PlanTypeNEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldPlanType, v))
}

// PlanTypeIn applies the In predicate on the "plan_type" field.
func PlanTypeIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldPlanType, vs...))
}

// PlanTypeNotIn applies the NotIn predicate on the "plan_type" field.
func PlanTypeNotIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldPlanType, vs...))
}

// PlanTypeGT applies the GT predicate on the "plan_type" field.
func PlanTypeGT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldPlanType, v))
}

// PlanTypeGTE applies the GTE predicate on the "plan_type" field.
func PlanTypeGTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldPlanType, v))
}

// PlanTypeLT applies the LT predicate on the "plan_type" field.
func PlanTypeLT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldPlanType, v))
}

// PlanTypeLTE applies the LTE predicate on the "plan_type" field.
func PlanTypeLTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldPlanType, v))
}

// PlanTypeContains applies the Contains predicate on the "plan_type" field.
func PlanTypeContains(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContains(FieldPlanType, v))
}

// PlanTypeHasPrefix applies the HasPrefix predicate on the "plan_type" field.
func PlanTypeHasPrefix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasPrefix(FieldPlanType, v))
}

// PlanTypeHasSuffix applies the HasSuffix predicate on the "plan_type" field.
func PlanTypeHasSuffix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasSuffix(FieldPlanType, v))
}

// PlanTypeIsNil applies the IsNil predicate on the "plan_type" field.
func PlanTypeIsNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIsNull(FieldPlanType))
}

// PlanTypeNotNil applies the NotNil predicate on the "plan_type" field.
func PlanTypeNotNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotNull(FieldPlanType))
}

// PlanTypeEqualFold applies the EqualFold predicate on the "plan_type" field.
func PlanTypeEqualFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEqualFold(FieldPlanType, v))
}

// PlanTypeContainsFold applies the ContainsFold predicate on the "plan_type" field.
func PlanTypeContainsFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContainsFold(FieldPlanType, v))
}

// PlanNameEQ applies the EQ predicate on the "plan_name" field.
func PlanNameEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPlanName, v))
}

// PlanNameNEQ applies the NEQ predicate on the "plan_name" field.
func PlanNameNEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldPlanName, v))
}

// PlanNameIn applies the In predicate on the "plan_name" field.
func PlanNameIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldPlanName, vs...))
}

// PlanNameNotIn applies the NotIn predicate on the "plan_name" field.
func PlanNameNotIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldPlanName, vs...))
}

// PlanNameGT applies the GT predicate on the "plan_name" field.
func PlanNameGT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldPlanName, v))
}

// PlanNameGTE applies the GTE predicate on the "plan_name" field.
func PlanNameGTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldPlanName, v))
}

// PlanNameLT applies the LT predicate on the "plan_name" field.
func PlanNameLT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldPlanName, v))
}

// PlanNameLTE applies the LTE predicate on the "plan_name" field.
func PlanNameLTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldPlanName, v))
}

// PlanNameContains applies the Contains predicate on the "plan_name" field.
func PlanNameContains(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContains(FieldPlanName, v))
}

// PlanNameHasPrefix applies the HasPrefix predicate on the "plan_name" field.
func PlanNameHasPrefix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasPrefix(FieldPlanName, v))
}

// PlanNameHasSuffix applies the HasSuffix predicate on the "plan_name" field.
func PlanNameHasSuffix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasSuffix(FieldPlanName, v))
}

// PlanNameIsNil applies the IsNil predicate on the "plan_name" field.
func PlanNameIsNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIsNull(FieldPlanName))
}

// PlanNameNotNil applies the NotNil predicate on the "plan_name" field.
func PlanNameNotNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotNull(FieldPlanName))
}

// PlanNameEqualFold applies the EqualFold predicate on the "plan_name" field.
func PlanNameEqualFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEqualFold(FieldPlanName, v))
}

// PlanNameContainsFold applies the ContainsFold predicate on the "plan_name" field.
func PlanNameContainsFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContainsFold(FieldPlanName, v))
}

// CommencementDateEQ applies the EQ predicate on the "commencement_date" field.
func CommencementDateEQ(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldCommencementDate, v))
}

// CommencementDateNEQ applies the NEQ predicate on the "commencement_date" field.
func CommencementDateNEQ(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldCommencementDate, v))
}

// CommencementDateIn applies the In predicate on the "commencement_date" field.
func CommencementDateIn(vs ...time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldCommencementDate, vs...))
}

// CommencementDateNotIn applies the NotIn predicate on the "commencement_date" field.
func CommencementDateNotIn(vs ...time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldCommencementDate, vs...))
}

// CommencementDateGT applies the GT predicate on the "commencement_date" field.
func CommencementDateGT(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldCommencementDate, v))
}

// CommencementDateGTE applies the GTE predicate on the "commencement_date" field.
func CommencementDateGTE(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldCommencementDate, v))
}

// CommencementDateLT applies the LT predicate on the "commencement_date" field.
func CommencementDateLT(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldCommencementDate, v))
}

// CommencementDateLTE applies the LTE predicate on the "commencement_date" field.
func CommencementDateLTE(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldCommencementDate, v))
}

// CommencementDateIsNil applies the IsNil predicate on the "commencement_date" field.
func CommencementDateIsNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIsNull(FieldCommencementDate))
}

// CommencementDateNotNil applies the NotNil predicate on the "commencement_date" field.
func CommencementDateNotNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotNull(FieldCommencementDate))
}

// PaymentModeEQ applies the EQ predicate on the "payment_mode" field.
func PaymentModeEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPaymentMode, v))
}

// PaymentModeNEQ applies the NEQ predicate on the "payment_mode" field.
func PaymentModeNEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldPaymentMode, v))
}

// PaymentModeIn applies the In predicate on the "payment_mode" field.
func PaymentModeIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldPaymentMode, vs...))
}

// PaymentModeNotIn applies the NotIn predicate on the "payment_mode" field.
func PaymentModeNotIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldPaymentMode, vs...))
}

// PaymentModeGT applies the GT predicate on the "payment_mode" field.
func PaymentModeGT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldPaymentMode, v))
}

// PaymentModeGTE applies the GTE predicate on the "payment_mode" field.
func PaymentModeGTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldPaymentMode, v))
}

// PaymentModeLT applies the LT predicate on the "payment_mode" field.
func PaymentModeLT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldPaymentMode, v))
}

// PaymentModeLTE applies the LTE predicate on the "payment_mode" field.
func PaymentModeLTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldPaymentMode, v))
}

// PaymentModeContains applies the Contains predicate on the "payment_mode" field.
func PaymentModeContains(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContains(FieldPaymentMode, v))
}

// PaymentModeHasPrefix applies the HasPrefix predicate on the "payment_mode" field.
func PaymentModeHasPrefix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasPrefix(FieldPaymentMode, v))
}

// PaymentModeHasSuffix applies the HasSuffix predicate on the "payment_mode" field.
func PaymentModeHasSuffix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasSuffix(FieldPaymentMode, v))
}

// PaymentModeIsNil applies the IsNil predicate on the "payment_mode" field.
func PaymentModeIsNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIsNull(FieldPaymentMode))
}

// PaymentModeNotNil applies the NotNil predicate on the "payment_mode" field.
func PaymentModeNotNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotNull(FieldPaymentMode))
}

// PaymentModeEqualFold applies the EqualFold predicate on the "payment_mode" field.
func PaymentModeEqualFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEqualFold(FieldPaymentMode, v))
}

// PaymentModeContainsFold applies the ContainsFold predicate on the "payment_mode" field.
func PaymentModeContainsFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContainsFold(FieldPaymentMode, v))
}

// FupDueDateEQ applies the EQ predicate on the "fup_due_date" field.
func FupDueDateEQ(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldFupDueDate, v))
}

// FupDueDateNEQ applies the NEQ predicate on the "fup_due_date" field.
func FupDueDateNEQ(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldFupDueDate, v))
}

// FupDueDateIn applies the In predicate on the "fup_due_date" field.
func FupDueDateIn(vs ...time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldFupDueDate, vs...))
}

// FupDueDateNotIn applies the NotIn predicate on the "fup_due_date" field.
func FupDueDateNotIn(vs ...time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldFupDueDate, vs...))
}

// FupDueDateGT applies the GT predicate on the "fup_due_date" field.
func FupDueDateGT(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldFupDueDate, v))
}

// FupDueDateGTE applies the GTE predicate on the "fup_due_date" field.
func FupDueDateGTE(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldFupDueDate, v))
}

// FupDueDateLT applies the LT predicate on the "fup_due_date" field.
func FupDueDateLT(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldFupDueDate, v))
}

// FupDueDateLTE applies the LTE predicate on the "fup_due_date" field.
func FupDueDateLTE(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldFupDueDate, v))
}

// FupDueDateIsNil applies the IsNil predicate on the "fup_due_date" field.
func FupDueDateIsNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIsNull(FieldFupDueDate))
}

// FupDueDateNotNil applies the NotNil predicate on the "fup_due_date" field.
func FupDueDateNotNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotNull(FieldFupDueDate))
}

// SumAssuredEQ applies the EQ predicate on the "sum_assured" field.
func SumAssuredEQ(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldSumAssured, v))
}

// SumAssuredNEQ applies the NEQ predicate on the "sum_assured" field.
func SumAssuredNEQ(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldSumAssured, v))
}

// SumAssuredIn applies the In predicate on the "sum_assured" field.
func SumAssuredIn(vs ...float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldSumAssured, vs...))
}

// SumAssuredNotIn applies the NotIn predicate on the "sum_assured" field.
func SumAssuredNotIn(vs ...float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldSumAssured, vs...))
}

// SumAssuredGT applies the GT predicate on the "sum_assured" field.
func SumAssuredGT(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldSumAssured, v))
}

// SumAssuredGTE applies the GTE predicate on the "sum_assured" field.
func SumAssuredGTE(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldSumAssured, v))
}

// SumAssuredLT applies the LT predicate on the "sum_assured" field.
func SumAssuredLT(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldSumAssured, v))
}

// SumAssuredLTE applies the LTE predicate on the "sum_assured" field.
func SumAssuredLTE(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldSumAssured, v))
}

// SumAssuredIsNil applies the IsNil predicate on the "sum_assured" field.
func SumAssuredIsNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIsNull(FieldSumAssured))
}

// SumAssuredNotNil applies the NotNil predicate on the "sum_assured" field.
func SumAssuredNotNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotNull(FieldSumAssured))
}

// PremiumAmountEQ applies the EQ predicate on the "premium_amount" field.
func PremiumAmountEQ(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPremiumAmount, v))
}

// PremiumAmountNEQ applies the NEQ predicate on the "premium_amount" field.
func PremiumAmountNEQ(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldPremiumAmount, v))
}

// PremiumAmountIn applies the In predicate on the "premium_amount" field.
func PremiumAmountIn(vs ...float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldPremiumAmount, vs...))
}

// PremiumAmountNotIn applies the NotIn predicate on the "premium_amount" field.
func PremiumAmountNotIn(vs ...float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldPremiumAmount, vs...))
}

// PremiumAmountGT applies the GT predicate on the "premium_amount" field.
func PremiumAmountGT(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldPremiumAmount, v))
}

// PremiumAmountGTE applies the GTE predicate on the "premium_amount" field.
func PremiumAmountGTE(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldPremiumAmount, v))
}

// PremiumAmountLT applies the LT predicate on the "premium_amount" field.
func PremiumAmountLT(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldPremiumAmount, v))
}

// PremiumAmountLTE applies the LTE predicate on the "premium_amount" field.
func PremiumAmountLTE(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldPremiumAmount, v))
}

// PremiumAmountIsNil applies the IsNil predicate on the "premium_amount" field.
func PremiumAmountIsNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIsNull(FieldPremiumAmount))
}

// PremiumAmountNotNil applies the NotNil predicate on the "premium_amount" field.
func PremiumAmountNotNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotNull(FieldPremiumAmount))
}

// PolicyTermEQ applies the EQ predicate on the "policy_term" field.
func PolicyTermEQ(v int) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPolicyTerm, v))
}

// PolicyTermNEQ applies the NEQ predicate on the "policy_term" field.
func PolicyTermNEQ(v int) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldPolicyTerm, v))
}

// PolicyTermIn applies the In predicate on the "policy_term" field.
func PolicyTermIn(vs ...int) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldPolicyTerm, vs...))
}

// PolicyTermNotIn applies the NotIn predicate on the "policy_term" field.
func PolicyTermNotIn(vs ...int) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldPolicyTerm, vs...))
}

// PolicyTermGT applies the GT predicate on the "policy_term" field.
func PolicyTermGT(v int) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldPolicyTerm, v))
}

// PolicyTermGTE applies the GTE predicate on the "policy_term" field.
func PolicyTermGTE(v int) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldPolicyTerm, v))
}

// PolicyTermLT applies the LT predicate on the "policy_term" field.
func PolicyTermLT(v int) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldPolicyTerm, v))
}

// PolicyTermLTE applies the LTE predicate on the "policy_term" field.
func PolicyTermLTE(v int) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldPolicyTerm, v))
}

// PolicyTermIsNil applies the IsNil predicate on the "policy_term" field.
func PolicyTermIsNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIsNull(FieldPolicyTerm))
}

// PolicyTermNotNil applies the NotNil predicate on the "policy_term" field.
func PolicyTermNotNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotNull(FieldPolicyTerm))
}

// PremiumPayingTermEQ applies the EQ predicate on the "premium_paying_term" field.
func PremiumPayingTermEQ(v int) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPremiumPayingTerm, v))
}

// PremiumPayingTermNEQ applies the NEQ predicate on the "premium_paying_term" field.
func PremiumPayingTermNEQ(v int) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldPremiumPayingTerm, v))
}

// PremiumPayingTermIn applies the In predicate on the "premium_paying_term" field.
func PremiumPayingTermIn(vs ...int) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldPremiumPayingTerm, vs...))
}

// PremiumPayingTermNotIn applies the NotIn predicate on the "premium_paying_term" field.
func PremiumPayingTermNotIn(vs ...int) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldPremiumPayingTerm, vs...))
}

// PremiumPayingTermGT applies the GT predicate on the "premium_paying_term" field.
func PremiumPayingTermGT(v int) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldPremiumPayingTerm, v))
}

// PremiumPayingTermGTE applies the GTE predicate on the "premium_paying_term" field.
func PremiumPayingTermGTE(v int) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldPremiumPayingTerm, v))
}

// PremiumPayingTermLT applies the LT predicate on the "premium_paying_term" field.
func PremiumPayingTermLT(v int) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldPremiumPayingTerm, v))
}

// PremiumPayingTermLTE applies the LTE predicate on the "premium_paying_term" field.
func PremiumPayingTermLTE(v int) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldPremiumPayingTerm, v))
}

// PremiumPayingTermIsNil applies the IsNil predicate on the "premium_paying_term" field.
func PremiumPayingTermIsNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIsNull(FieldPremiumPayingTerm))
}

// PremiumPayingTermNotNil applies the NotNil predicate on the "premium_paying_term" field.
func PremiumPayingTermNotNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotNull(FieldPremiumPayingTerm))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContainsFold(FieldStatus, v))
}

// ExtractionMethodEQ applies the EQ predicate on the "extraction_method" field.
func ExtractionMethodEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldExtractionMethod, v))
}

// ExtractionMethodNEQ applies the NEQ predicate on the "extraction_method" field.
func ExtractionMethodNEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldExtractionMethod, v))
}

// ExtractionMethodIn applies the In predicate on the "extraction_method" field.
func ExtractionMethodIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldExtractionMethod, vs...))
}

// ExtractionMethodNotIn applies the NotIn predicate on the "extraction_method" field.
func ExtractionMethodNotIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldExtractionMethod, vs...))
}

// ExtractionMethodGT applies the GT predicate on the "extraction_method" field.
func ExtractionMethodGT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldExtractionMethod, v))
}

// ExtractionMethodGTE applies the GTE predicate on the "extraction_method" field.
func ExtractionMethodGTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldExtractionMethod, v))
}

// ExtractionMethodLT applies the LT predicate on the "extraction_method" field.
func ExtractionMethodLT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldExtractionMethod, v))
}

// ExtractionMethodLTE applies the LTE predicate on the "extraction_method" field.
func ExtractionMethodLTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldExtractionMethod, v))
}

// ExtractionMethodContains applies the Contains predicate on the "extraction_method" field.
func ExtractionMethodContains(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContains(FieldExtractionMethod, v))
}

// ExtractionMethodHasPrefix applies the HasPrefix predicate on the "extraction_method" field.
func ExtractionMethodHasPrefix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasPrefix(FieldExtractionMethod, v))
}

// ExtractionMethodHasSuffix applies the HasSuffix predicate on the "extraction_method" field.
func ExtractionMethodHasSuffix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasSuffix(FieldExtractionMethod, v))
}

// ExtractionMethodEqualFold applies the EqualFold predicate on the "extraction_method" field.
func ExtractionMethodEqualFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEqualFold(FieldExtractionMethod, v))
}

// ExtractionMethodContainsFold applies the ContainsFold predicate on the "extraction_method" field.
func ExtractionMethodContainsFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContainsFold(FieldExtractionMethod, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCustomer applies the HasEdge predicate on the "customer" edge.
func HasCustomer() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CustomerTable, CustomerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCustomerWith applies the HasEdge predicate on the "customer" edge with a given conditions (other predicates).
func HasCustomerWith(preds ...predicate.Customer) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(func(s *sql.Selector) {
		step := newCustomerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPremiumRecords applies the HasEdge predicate on the "premium_records" edge.
func HasPremiumRecords() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PremiumRecordsTable, PremiumRecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPremiumRecordsWith applies the HasEdge predicate on the "premium_records" edge with a given conditions (other predicates).
func HasPremiumRecordsWith(preds ...predicate.PremiumRecord) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(func(s *sql.Selector) {
		step := newPremiumRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InsurancePolicy) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InsurancePolicy) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InsurancePolicy) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.NotPredicates(p))
}
