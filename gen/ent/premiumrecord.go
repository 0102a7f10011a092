// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/rsubramani/policy-tracker/gen/ent/insurancepolicy"
	"github.com/rsubramani/policy-tracker/gen/ent/premiumrecord"
)

// PremiumRecord is the model entity for the PremiumRecord schema.
type PremiumRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PolicyID holds the value of the "policy_id" field.
	PolicyID uuid.UUID `json:"policy_id,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate *time.Time `json:"due_date,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount *float64 `json:"amount,omitempty"`
	// Tax holds the value of the "tax" field.
	Tax *float64 `json:"tax,omitempty"`
	// Total holds the value of the "total" field.
	Total *float64 `json:"total,omitempty"`
	// DueCount holds the value of the "due_count" field.
	DueCount *int `json:"due_count,omitempty"`
	// AgentCode holds the value of the "agent_code" field.
	AgentCode *string `json:"agent_code,omitempty"`
	// SourceDocument holds the value of the "source_document" field.
	SourceDocument string `json:"source_document,omitempty"`
	// PaymentDate holds the value of the "payment_date" field.
	PaymentDate *time.Time `json:"payment_date,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt time.Time `json:"processed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PremiumRecordQuery when eager-loading is set.
	Edges        PremiumRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PremiumRecordEdges holds the relations/edges for other nodes in the graph.
type PremiumRecordEdges struct {
	// Policy holds the value of the policy edge.
	Policy *InsurancePolicy `json:"policy,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PolicyOrErr returns the Policy value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PremiumRecordEdges) PolicyOrErr() (*InsurancePolicy, error) {
	if e.Policy != nil {
		return e.Policy, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: insurancepolicy.Label}
	}
	return nil, &NotLoadedError{edge: "policy"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PremiumRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case premiumrecord.FieldAmount, premiumrecord.FieldTax, premiumrecord.FieldTotal:
			values[i] = new(sql.NullFloat64)
		case premiumrecord.FieldDueCount:
			values[i] = new(sql.NullInt64)
		case premiumrecord.FieldAgentCode, premiumrecord.FieldSourceDocument:
			values[i] = new(sql.NullString)
		case premiumrecord.FieldDueDate, premiumrecord.FieldPaymentDate, premiumrecord.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		case premiumrecord.FieldID, premiumrecord.FieldPolicyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PremiumRecord fields.
func (_m *PremiumRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case premiumrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case premiumrecord.FieldPolicyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field policy_id", values[i])
			} else if value != nil {
				_m.PolicyID = *value
			}
		case premiumrecord.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = new(time.Time)
				*_m.DueDate = value.Time
			}
		case premiumrecord.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = new(float64)
				*_m.Amount = value.Float64
			}
		case premiumrecord.FieldTax:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tax", values[i])
			} else if value.Valid {
				_m.Tax = new(float64)
				*_m.Tax = value.Float64
			}
		case premiumrecord.FieldTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = new(float64)
				*_m.Total = value.Float64
			}
		case premiumrecord.FieldDueCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field due_count", values[i])
			} else if value.Valid {
				_m.DueCount = new(int)
				*_m.DueCount = int(value.Int64)
			}
		case premiumrecord.FieldAgentCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_code", values[i])
			} else if value.Valid {
				_m.AgentCode = new(string)
				*_m.AgentCode = value.String
			}
		case premiumrecord.FieldSourceDocument:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_document", values[i])
			} else if value.Valid {
				_m.SourceDocument = value.String
			}
		case premiumrecord.FieldPaymentDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field payment_date", values[i])
			} else if value.Valid {
				_m.PaymentDate = new(time.Time)
				*_m.PaymentDate = value.Time
			}
		case premiumrecord.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PremiumRecord.
// This includes values selected through modifiers, order, etc.
func (_m *PremiumRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPolicy queries the "policy" edge of the PremiumRecord entity.
func (_m *PremiumRecord) QueryPolicy() *InsurancePolicyQuery {
	return NewPremiumRecordClient(_m.config).QueryPolicy(_m)
}

// Update returns a builder for updating this PremiumRecord.
// Note that you need to call PremiumRecord.Unwrap() before calling this method if this PremiumRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PremiumRecord) Update() *PremiumRecordUpdateOne {
	return NewPremiumRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PremiumRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PremiumRecord) Unwrap() *PremiumRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PremiumRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PremiumRecord) String() string {
	var builder strings.Builder
	builder.WriteString("PremiumRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("policy_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PolicyID))
	builder.WriteString(", ")
	if v := _m.DueDate; v != nil {
		builder.WriteString("due_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Amount; v != nil {
		builder.WriteString("amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Tax; v != nil {
		builder.WriteString("tax=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Total; v != nil {
		builder.WriteString("total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DueCount; v != nil {
		builder.WriteString("due_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AgentCode; v != nil {
		builder.WriteString("agent_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("source_document=")
	builder.WriteString(_m.SourceDocument)
	builder.WriteString(", ")
	if v := _m.PaymentDate; v != nil {
		builder.WriteString("payment_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("processed_at=")
	builder.WriteString(_m.ProcessedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PremiumRecords is a parsable slice of PremiumRecord.
type PremiumRecords []*PremiumRecord
