// Code generated by ent, DO NOT EDIT.

package documentlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the documentlog type in the database.
	Label = "document_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLookupKey holds the string denoting the lookup_key field in the database.
	FieldLookupKey = "lookup_key"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldHashAlgo holds the string denoting the hash_algo field in the database.
	FieldHashAlgo = "hash_algo"
	// FieldHashPrefixLen holds the string denoting the hash_prefix_len field in the database.
	FieldHashPrefixLen = "hash_prefix_len"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// Table holds the table name of the documentlog in the database.
	Table = "documents"
)

// Columns holds all SQL columns for documentlog fields.
var Columns = []string{
	FieldID,
	FieldLookupKey,
	FieldFilename,
	FieldDocumentType,
	FieldContentHash,
	FieldHashAlgo,
	FieldHashPrefixLen,
	FieldProcessedAt,
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
	// LookupKeyValidator is a validator for the "lookup_key" field. It is called by the builders before save.
	LookupKeyValidator func(string) error
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	DocumentTypeValidator func(string) error
	// DefaultProcessedAt holds the default value on creation for the "processed_at" field.
	DefaultProcessedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DocumentLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLookupKey orders the results by the lookup_key field.
func ByLookupKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLookupKey, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByHashAlgo orders the results by the hash_algo field.
func ByHashAlgo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHashAlgo, opts...).ToFunc()
}

// ByHashPrefixLen orders the results by the hash_prefix_len field.
func ByHashPrefixLen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHashPrefixLen, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}
