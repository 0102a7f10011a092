// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/rsubramani/policy-tracker/gen/ent/documentlog"
)

// DocumentLog is the model entity for the DocumentLog schema.
type DocumentLog struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// LookupKey holds the value of the "lookup_key" field.
	LookupKey string `json:"lookup_key,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType string `json:"document_type,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash *string `json:"content_hash,omitempty"`
	// HashAlgo holds the value of the "hash_algo" field.
	HashAlgo *string `json:"hash_algo,omitempty"`
	// HashPrefixLen holds the value of the "hash_prefix_len" field.
	HashPrefixLen *int `json:"hash_prefix_len,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt  time.Time `json:"processed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documentlog.FieldHashPrefixLen:
			values[i] = new(sql.NullInt64)
		case documentlog.FieldLookupKey, documentlog.FieldFilename, documentlog.FieldDocumentType, documentlog.FieldContentHash, documentlog.FieldHashAlgo:
			values[i] = new(sql.NullString)
		case documentlog.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		case documentlog.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentLog fields.
func (_m *DocumentLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documentlog.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case documentlog.FieldLookupKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lookup_key", values[i])
			} else if value.Valid {
				_m.LookupKey = value.String
			}
		case documentlog.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case documentlog.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = value.String
			}
		case documentlog.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = new(string)
				*_m.ContentHash = value.String
			}
		case documentlog.FieldHashAlgo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hash_algo", values[i])
			} else if value.Valid {
				_m.HashAlgo = new(string)
				*_m.HashAlgo = value.String
			}
		case documentlog.FieldHashPrefixLen:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hash_prefix_len", values[i])
			} else if value.Valid {
				_m.HashPrefixLen = new(int)
				*_m.HashPrefixLen = int(value.Int64)
			}
		case documentlog.FieldProcessedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentLog.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DocumentLog.
// Note that you need to call DocumentLog.Unwrap() before calling this method if this DocumentLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentLog) Update() *DocumentLogUpdateOne {
	return NewDocumentLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentLog) Unwrap() *DocumentLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentLog) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("lookup_key=")
	builder.WriteString(_m.LookupKey)
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(_m.DocumentType)
	builder.WriteString(", ")
	if v := _m.ContentHash; v != nil {
		builder.WriteString("content_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HashAlgo; v != nil {
		builder.WriteString("hash_algo=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HashPrefixLen; v != nil {
		builder.WriteString("hash_prefix_len=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("processed_at=")
	builder.WriteString(_m.ProcessedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DocumentLogs is a parsable slice of DocumentLog.
type DocumentLogs []*DocumentLog
