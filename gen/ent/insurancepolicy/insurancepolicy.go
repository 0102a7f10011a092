// Code generated by ent, DO NOT EDIT.

package insurancepolicy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the insurancepolicy type in the database.
	Label = "insurance_policy"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPolicyNumber holds the string denoting the policy_number field in the database.
	FieldPolicyNumber = "policy_number"
	// FieldCustomerID holds the string denoting the customer_id field in the database.
	FieldCustomerID = "customer_id"
	// FieldAgentCode holds the string denoting the agent_code field in the database.
	FieldAgentCode = "agent_code"
	// FieldPlanType holds the string denoting the plan_type field in the database.
	FieldPlanType = "plan_type"
	// FieldPlanName holds the string denoting the plan_name field in the database.
	FieldPlanName = "plan_name"
	// FieldCommencementDate holds the string denoting the commencement_date field in the database.
	FieldCommencementDate = "commencement_date"
	// FieldPaymentMode holds the string denoting the payment_mode field in the database.
	FieldPaymentMode = "payment_mode"
	// FieldFupDueDate holds the string denoting the fup_due_date field in the database.
	FieldFupDueDate = "fup_due_date"
	// FieldSumAssured holds the string denoting the sum_assured field in the database.
	FieldSumAssured = "sum_assured"
	// FieldPremiumAmount holds the string denoting the premium_amount field in the database.
	FieldPremiumAmount = "premium_amount"
	// FieldPolicyTerm holds the string denoting the policy_term field in the database.
	FieldPolicyTerm = "policy_term"
	// FieldPremiumPayingTerm holds the string denoting the premium_paying_term field in the database.
	FieldPremiumPayingTerm = "premium_paying_term"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExtractionMethod holds the string denoting the extraction_method field in the database.
	FieldExtractionMethod = "extraction_method"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCustomer holds the string denoting the customer edge name in mutations.
	EdgeCustomer = "customer"
	// EdgePremiumRecords holds the string denoting the premium_records edge name in mutations.
	EdgePremiumRecords = "premium_records"
	// Table holds the table name of the insurancepolicy in the database.
	Table = "policies"
	// CustomerTable is the table that holds the customer relation/edge.
	CustomerTable = "policies"
	// CustomerInverseTable is the table name for the Customer entity.
	// It exists in this package in order to avoid circular dependency with the "customer" package.
	CustomerInverseTable = "customers"
	// CustomerColumn is the table column denoting the customer relation/edge.
	CustomerColumn = "customer_id"
	// PremiumRecordsTable is the table that holds the premium_records relation/edge.
	PremiumRecordsTable = "premium_records"
	// PremiumRecordsInverseTable is the table name for the PremiumRecord entity.
	// It exists in this package in order to avoid circular dependency with the "premiumrecord" package.
	PremiumRecordsInverseTable = "premium_records"
	// PremiumRecordsColumn is the table column denoting the premium_records relation/edge.
	PremiumRecordsColumn = "policy_id"
)

// Columns holds all SQL columns for insurancepolicy fields.
var Columns = []string{
	FieldID,
	FieldPolicyNumber,
	FieldCustomerID,
	FieldAgentCode,
	FieldPlanType,
	FieldPlanName,
	FieldCommencementDate,
	FieldPaymentMode,
	FieldFupDueDate,
	FieldSumAssured,
	FieldPremiumAmount,
	FieldPolicyTerm,
	FieldPremiumPayingTerm,
	FieldStatus,
	FieldExtractionMethod,
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
	// PolicyNumberValidator is a validator for the "policy_number" field. It is called by the builders before save.
	PolicyNumberValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultExtractionMethod holds the default value on creation for the "extraction_method" field.
	DefaultExtractionMethod string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the InsurancePolicy queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPolicyNumber orders the results by the policy_number field.
func ByPolicyNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPolicyNumber, opts...).ToFunc()
}

// ByCustomerID orders the results by the customer_id field.
func ByCustomerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerID, opts...).ToFunc()
}

// ByAgentCode orders the results by the agent_code field.
func ByAgentCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentCode, opts...).ToFunc()
}

// ByPlanType orders the results by the plan_type field.
func ByPlanType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanType, opts...).ToFunc()
}

// ByPlanName orders the results by the plan_name field.
func ByPlanName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanName, opts...).ToFunc()
}

// ByCommencementDate orders the results by the commencement_date field.
func ByCommencementDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommencementDate, opts...).ToFunc()
}

// ByPaymentMode orders the results by the payment_mode field.
func ByPaymentMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentMode, opts...).ToFunc()
}

// ByFupDueDate orders the results by the fup_due_date field.
func ByFupDueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFupDueDate, opts...).ToFunc()
}

// BySumAssured orders the results by the sum_assured field.
func BySumAssured(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSumAssured, opts...).ToFunc()
}

// ByPremiumAmount orders the results by the premium_amount field.
func ByPremiumAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPremiumAmount, opts...).ToFunc()
}

// ByPolicyTerm orders the results by the policy_term field.
func ByPolicyTerm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPolicyTerm, opts...).ToFunc()
}

// ByPremiumPayingTerm orders the results by the premium_paying_term field.
func ByPremiumPayingTerm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPremiumPayingTerm, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByExtractionMethod orders the results by the extraction_method field.
func ByExtractionMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionMethod, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCustomerField orders the results by customer field.
func ByCustomerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCustomerStep(), sql.OrderByField(field, opts...))
	}
}

// ByPremiumRecordsCount orders the results by premium_records count.
func ByPremiumRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPremiumRecordsStep(), opts...)
	}
}

// ByPremiumRecords orders the results by premium_records terms.
func ByPremiumRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPremiumRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCustomerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CustomerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CustomerTable, CustomerColumn),
	)
}
func newPremiumRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PremiumRecordsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PremiumRecordsTable, PremiumRecordsColumn),
	)
}
