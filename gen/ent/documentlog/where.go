// Code generated by ent, DO NOT EDIT.

package documentlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/rsubramani/policy-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldLTE(FieldID, id))
}

// LookupKey applies equality check predicate on the "lookup_key" field. It's identical to LookupKeyEQ.
func LookupKey(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEQ(FieldLookupKey, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEQ(FieldFilename, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEQ(FieldDocumentType, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEQ(FieldContentHash, v))
}

// HashAlgo applies equality check predicate on the "hash_algo" field. It's identical to HashAlgoEQ.
func HashAlgo(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEQ(FieldHashAlgo, v))
}

// HashPrefixLen applies equality check predicate on the "hash_prefix_len" field. It's identical to HashPrefixLenEQ.
func HashPrefixLen(v int) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEQ(FieldHashPrefixLen, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEQ(FieldProcessedAt, v))
}

// LookupKeyEQ applies the EQ predicate on the "lookup_key" field.
func LookupKeyEQ(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEQ(FieldLookupKey, v))
}

// LookupKeyNEQ applies the NEQ predicate on the "lookup_key" field.
func LookupKeyNEQ(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldNEQ(FieldLookupKey, v))
}

// LookupKeyIn applies the In predicate on the "lookup_key" field.
func LookupKeyIn(vs ...string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldIn(FieldLookupKey, vs...))
}

// LookupKeyNotIn applies the NotIn predicate on the "lookup_key" field.
func LookupKeyNotIn(vs ...string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldNotIn(FieldLookupKey, vs...))
}

// LookupKeyGT applies the GT predicate on the "lookup_key" field.
func LookupKeyGT(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldGT(FieldLookupKey, v))
}

// LookupKeyGTE applies the GTE predicate on the "lookup_key" field.
func LookupKeyGTE(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldGTE(FieldLookupKey, v))
}

// LookupKeyLT applies the LT predicate on the "lookup_key" field.
func LookupKeyLT(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldLT(FieldLookupKey, v))
}

// LookupKeyLTE applies the LTE predicate on the "lookup_key" field.
func LookupKeyLTE(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldLTE(FieldLookupKey, v))
}

// LookupKeyContains applies the Contains predicate on the "lookup_key" field.
func LookupKeyContains(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldContains(FieldLookupKey, v))
}

// LookupKeyHasPrefix applies the HasPrefix predicate on the "lookup_key" field.
func LookupKeyHasPrefix(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldHasPrefix(FieldLookupKey, v))
}

// LookupKeyHasSuffix applies the HasSuffix predicate on the "lookup_key" field.
func LookupKeyHasSuffix(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldHasSuffix(FieldLookupKey, v))
}

// LookupKeyEqualFold applies the EqualFold predicate on the "lookup_key" field.
func LookupKeyEqualFold(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEqualFold(FieldLookupKey, v))
}

// LookupKeyContainsFold applies the ContainsFold predicate on the "lookup_key" field.
func LookupKeyContainsFold(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldContainsFold(FieldLookupKey, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldContainsFold(FieldFilename, v))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldContainsFold(FieldDocumentType, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashIsNil applies the IsNil predicate on the "content_hash" field.
func ContentHashIsNil() predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldIsNull(FieldContentHash))
}

// ContentHashNotNil applies the NotNil predicate on the "content_hash" field.
func ContentHashNotNil() predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldNotNull(FieldContentHash))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldContainsFold(FieldContentHash, v))
}

// HashAlgoEQ applies the EQ predicate on the "hash_algo" field.
func HashAlgoEQ(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEQ(FieldHashAlgo, v))
}

// HashAlgoNEQ applies the NEQ predicate on the "hash_algo" field.
func HashAlgoNEQ(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldNEQ(FieldHashAlgo, v))
}

// HashAlgoIn applies the In predicate on the "hash_algo" field.
func HashAlgoIn(vs ...string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldIn(FieldHashAlgo, vs...))
}

// HashAlgoNotIn applies the NotIn predicate on the "hash_algo" field.
func HashAlgoNotIn(vs ...string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldNotIn(FieldHashAlgo, vs...))
}

// HashAlgoGT applies the GT predicate on the "hash_algo" field.
func HashAlgoGT(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldGT(FieldHashAlgo, v))
}

// HashAlgoGTE applies the GTE predicate on the "hash_algo" field.
func HashAlgoGTE(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldGTE(FieldHashAlgo, v))
}

// HashAlgoLT applies the LT predicate on the "hash_algo" field.
func HashAlgoLT(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldLT(FieldHashAlgo, v))
}

// HashAlgoLTE applies the LTE predicate on the "hash_algo" field.
func HashAlgoLTE(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldLTE(FieldHashAlgo, v))
}

// HashAlgoContains applies the Contains predicate on the "hash_algo" field.
func HashAlgoContains(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldContains(FieldHashAlgo, v))
}

// HashAlgoHasPrefix applies the HasPrefix predicate on the "hash_algo" field.
func HashAlgoHasPrefix(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldHasPrefix(FieldHashAlgo, v))
}

// HashAlgoHasSuffix applies the HasSuffix predicate on the "hash_algo" field.
func HashAlgoHasSuffix(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldHasSuffix(FieldHashAlgo, v))
}

// HashAlgoIsNil applies the IsNil predicate on the "hash_algo" field.
func HashAlgoIsNil() predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldIsNull(FieldHashAlgo))
}

// HashAlgoNotNil applies the NotNil predicate on the "hash_algo" field.
func HashAlgoNotNil() predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldNotNull(FieldHashAlgo))
}

// HashAlgoEqualFold applies the EqualFold predicate on the "hash_algo" field.
func HashAlgoEqualFold(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEqualFold(FieldHashAlgo, v))
}

// HashAlgoContainsFold applies the ContainsFold predicate on the "hash_algo" field.
func HashAlgoContainsFold(v string) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldContainsFold(FieldHashAlgo, v))
}

// HashPrefixLenEQ applies the EQ predicate on the "hash_prefix_len" field.
func HashPrefixLenEQ(v int) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEQ(FieldHashPrefixLen, v))
}

// HashPrefixLenNEQ applies the NEQ predicate on the "hash_prefix_len" field.
func HashPrefixLenNEQ(v int) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldNEQ(FieldHashPrefixLen, v))
}

// HashPrefixLenIn applies the In predicate on the "hash_prefix_len" field.
func HashPrefixLenIn(vs ...int) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldIn(FieldHashPrefixLen, vs...))
}

// HashPrefixLenNotIn applies the NotIn predicate on the "hash_prefix_len" field.
func HashPrefixLenNotIn(vs ...int) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldNotIn(FieldHashPrefixLen, vs...))
}

// HashPrefixLenGT applies the GT predicate on the "hash_prefix_len" field.
func HashPrefixLenGT(v int) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldGT(FieldHashPrefixLen, v))
}

// HashPrefixLenGTE applies the GTE predicate on the "hash_prefix_len" field.
func HashPrefixLenGTE(v int) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldGTE(FieldHashPrefixLen, v))
}

// HashPrefixLenLT applies the LT predicate on the "hash_prefix_len" field.
func HashPrefixLenLT(v int) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldLT(FieldHashPrefixLen, v))
}

// HashPrefixLenLTE applies the LTE predicate on the "hash_prefix_len" field.
func HashPrefixLenLTE(v int) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldLTE(FieldHashPrefixLen, v))
}

// HashPrefixLenIsNil applies the IsNil predicate on the "hash_prefix_len" field.
func HashPrefixLenIsNil() predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldIsNull(FieldHashPrefixLen))
}

// HashPrefixLenNotNil applies the NotNil predicate on the "hash_prefix_len" field.
func HashPrefixLenNotNil() predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldNotNull(FieldHashPrefixLen))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.DocumentLog {
	return predicate.DocumentLog(sql.FieldLTE(FieldProcessedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentLog) predicate.DocumentLog {
	return predicate.DocumentLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentLog) predicate.DocumentLog {
	return predicate.DocumentLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentLog) predicate.DocumentLog {
	return predicate.DocumentLog(sql.NotPredicates(p))
}
