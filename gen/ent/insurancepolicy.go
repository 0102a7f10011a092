// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/rsubramani/policy-tracker/gen/ent/customer"
	"github.com/rsubramani/policy-tracker/gen/ent/insurancepolicy"
)

// InsurancePolicy is the model entity for the InsurancePolicy schema.
type InsurancePolicy struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PolicyNumber holds the value of the "policy_number" field.
	PolicyNumber string `json:"policy_number,omitempty"`
	// CustomerID holds the value of the "customer_id" field.
	CustomerID uuid.UUID `json:"customer_id,omitempty"`
	// AgentCode holds the value of the "agent_code" field.
	AgentCode *string `json:"agent_code,omitempty"`
	// PlanType holds the value of the "plan_type" field.
	PlanType *string `json:"plan_type,omitempty"`
	// PlanName holds the value of the "plan_name" field.
	PlanName *string `json:"plan_name,omitempty"`
	// CommencementDate holds the value of the "commencement_date" field.
	CommencementDate *time.Time `json:"commencement_date,omitempty"`
	// PaymentMode holds the value of the "payment_mode" field.
	PaymentMode *string `json:"payment_mode,omitempty"`
	// FupDueDate holds the value of the "fup_due_date" field.
	FupDueDate *time.Time `json:"fup_due_date,omitempty"`
	// SumAssured holds the value of the "sum_assured" field.
	SumAssured *float64 `json:"sum_assured,omitempty"`
	// PremiumAmount holds the value of the "premium_amount" field.
	PremiumAmount *float64 `json:"premium_amount,omitempty"`
	// PolicyTerm holds the value of the "policy_term" field.
	PolicyTerm *int `json:"policy_term,omitempty"`
	// PremiumPayingTerm holds the value of the "premium_paying_term" field.
	PremiumPayingTerm *int `json:"premium_paying_term,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ExtractionMethod holds the value of the "extraction_method" field.
	ExtractionMethod string `json:"extraction_method,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InsurancePolicyQuery when eager-loading is set.
	Edges        InsurancePolicyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InsurancePolicyEdges holds the relations/edges for other nodes in the graph.
type InsurancePolicyEdges struct {
	// Customer holds the value of the customer edge.
	Customer *Customer `json:"customer,omitempty"`
	// PremiumRecords holds the value of the premium_records edge.
	PremiumRecords []*PremiumRecord `json:"premium_records,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CustomerOrErr returns the Customer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InsurancePolicyEdges) CustomerOrErr() (*Customer, error) {
	if e.Customer != nil {
		return e.Customer, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: customer.Label}
	}
	return nil, &NotLoadedError{edge: "customer"}
}

// PremiumRecordsOrErr returns the PremiumRecords value or an error if the edge
// was not loaded in eager-loading.
func (e InsurancePolicyEdges) PremiumRecordsOrErr() ([]*PremiumRecord, error) {
	if e.loadedTypes[1] {
		return e.PremiumRecords, nil
	}
	return nil, &NotLoadedError{edge: "premium_records"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InsurancePolicy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case insurancepolicy.FieldSumAssured, insurancepolicy.FieldPremiumAmount:
			values[i] = new(sql.NullFloat64)
		case insurancepolicy.FieldPolicyTerm, insurancepolicy.FieldPremiumPayingTerm:
			values[i] = new(sql.NullInt64)
		case insurancepolicy.FieldPolicyNumber, insurancepolicy.FieldAgentCode, insurancepolicy.FieldPlanType, insurancepolicy.FieldPlanName, insurancepolicy.FieldPaymentMode, insurancepolicy.FieldStatus, insurancepolicy.FieldExtractionMethod:
			values[i] = new(sql.NullString)
		case insurancepolicy.FieldCommencementDate, insurancepolicy.FieldFupDueDate, insurancepolicy.FieldCreatedAt, insurancepolicy.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case insurancepolicy.FieldID, insurancepolicy.FieldCustomerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InsurancePolicy fields.
func (_m *InsurancePolicy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case insurancepolicy.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case insurancepolicy.FieldPolicyNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field policy_number", values[i])
			} else if value.Valid {
				_m.PolicyNumber = value.String
			}
		case insurancepolicy.FieldCustomerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field customer_id", values[i])
			} else if value != nil {
				_m.CustomerID = *value
			}
		case insurancepolicy.FieldAgentCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_code", values[i])
			} else if value.Valid {
				_m.AgentCode = new(string)
				*_m.AgentCode = value.String
			}
		case insurancepolicy.FieldPlanType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_type", values[i])
			} else if value.Valid {
				_m.PlanType = new(string)
				*_m.PlanType = value.String
			}
		case insurancepolicy.FieldPlanName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_name", values[i])
			} else if value.Valid {
				_m.PlanName = new(string)
				*_m.PlanName = value.String
			}
		case insurancepolicy.FieldCommencementDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field commencement_date", values[i])
			} else if value.Valid {
				_m.CommencementDate = new(time.Time)
				*_m.CommencementDate = value.Time
			}
		case insurancepolicy.FieldPaymentMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_mode", values[i])
			} else if value.Valid {
				_m.PaymentMode = new(string)
				*_m.PaymentMode = value.String
			}
		case insurancepolicy.FieldFupDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fup_due_date", values[i])
			} else if value.Valid {
				_m.FupDueDate = new(time.Time)
				*_m.FupDueDate = value.Time
			}
		case insurancepolicy.FieldSumAssured:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sum_assured", values[i])
			} else if value.Valid {
				_m.SumAssured = new(float64)
				*_m.SumAssured = value.Float64
			}
		case insurancepolicy.FieldPremiumAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field premium_amount", values[i])
			} else if value.Valid {
				_m.PremiumAmount = new(float64)
				*_m.PremiumAmount = value.Float64
			}
		case insurancepolicy.FieldPolicyTerm:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field policy_term", values[i])
			} else if value.Valid {
				_m.PolicyTerm = new(int)
				*_m.PolicyTerm = int(value.Int64)
			}
		case insurancepolicy.FieldPremiumPayingTerm:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field premium_paying_term", values[i])
			} else if value.Valid {
				_m.PremiumPayingTerm = new(int)
				*_m.PremiumPayingTerm = int(value.Int64)
			}
		case insurancepolicy.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case insurancepolicy.FieldExtractionMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_method", values[i])
			} else if value.Valid {
				_m.ExtractionMethod = value.String
			}
		case insurancepolicy.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case insurancepolicy.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the InsurancePolicy.
// This includes values selected through modifiers, order, etc.
func (_m *InsurancePolicy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCustomer queries the "customer" edge of the InsurancePolicy entity.
func (_m *InsurancePolicy) QueryCustomer() *CustomerQuery {
	return NewInsurancePolicyClient(_m.config).QueryCustomer(_m)
}

// QueryPremiumRecords queries the "premium_records" edge of the InsurancePolicy entity.
func (_m *InsurancePolicy) QueryPremiumRecords() *PremiumRecordQuery {
	return NewInsurancePolicyClient(_m.config).QueryPremiumRecords(_m)
}

// Update returns a builder for updating this InsurancePolicy.
// Note that you need to call InsurancePolicy.Unwrap() before calling this method if this InsurancePolicy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InsurancePolicy) Update() *InsurancePolicyUpdateOne {
	return NewInsurancePolicyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InsurancePolicy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InsurancePolicy) Unwrap() *InsurancePolicy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InsurancePolicy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InsurancePolicy) String() string {
	var builder strings.Builder
	builder.WriteString("InsurancePolicy(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("policy_number=")
	builder.WriteString(_m.PolicyNumber)
	builder.WriteString(", ")
	builder.WriteString("customer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CustomerID))
	builder.WriteString(", ")
	if v := _m.AgentCode; v != nil {
		builder.WriteString("agent_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PlanType; v != nil {
		builder.WriteString("plan_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PlanName; v != nil {
		builder.WriteString("plan_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CommencementDate; v != nil {
		builder.WriteString("commencement_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PaymentMode; v != nil {
		builder.WriteString("payment_mode=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FupDueDate; v != nil {
		builder.WriteString("fup_due_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SumAssured; v != nil {
		builder.WriteString("sum_assured=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PremiumAmount; v != nil {
		builder.WriteString("premium_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PolicyTerm; v != nil {
		builder.WriteString("policy_term=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PremiumPayingTerm; v != nil {
		builder.WriteString("premium_paying_term=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("extraction_method=")
	builder.WriteString(_m.ExtractionMethod)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InsurancePolicies is a parsable slice of InsurancePolicy.
type InsurancePolicies []*InsurancePolicy
