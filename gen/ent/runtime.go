// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/rsubramani/policy-tracker/db/ent/schema"
	"github.com/rsubramani/policy-tracker/gen/ent/agent"
	"github.com/rsubramani/policy-tracker/gen/ent/customer"
	"github.com/rsubramani/policy-tracker/gen/ent/documentlog"
	"github.com/rsubramani/policy-tracker/gen/ent/insurancepolicy"
	"github.com/rsubramani/policy-tracker/gen/ent/premiumrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescCode is the schema descriptor for code field.
	agentDescCode := agentFields[0].Descriptor()
	// agent.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	agent.CodeValidator = agentDescCode.Validators[0].(func(string) error)
	// agentDescName is the schema descriptor for name field.
	agentDescName := agentFields[1].Descriptor()
	// agent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	agent.NameValidator = agentDescName.Validators[0].(func(string) error)
	// agentDescActive is the schema descriptor for active field.
	agentDescActive := agentFields[6].Descriptor()
	// agent.DefaultActive holds the default value on creation for the active field.
	agent.DefaultActive = agentDescActive.Default.(bool)
	customerFields := schema.Customer{}.Fields()
	_ = customerFields
	// customerDescName is the schema descriptor for name field.
	customerDescName := customerFields[1].Descriptor()
	// customer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	customer.NameValidator = customerDescName.Validators[0].(func(string) error)
	// customerDescExtractionMethod is the schema descriptor for extraction_method field.
	customerDescExtractionMethod := customerFields[9].Descriptor()
	// customer.DefaultExtractionMethod holds the default value on creation for the extraction_method field.
	customer.DefaultExtractionMethod = customerDescExtractionMethod.Default.(string)
	// customerDescCreatedAt is the schema descriptor for created_at field.
	customerDescCreatedAt := customerFields[10].Descriptor()
	// customer.DefaultCreatedAt holds the default value on creation for the created_at field.
	customer.DefaultCreatedAt = customerDescCreatedAt.Default.(func() time.Time)
	// customerDescUpdatedAt is the schema descriptor for updated_at field.
	customerDescUpdatedAt := customerFields[11].Descriptor()
	// customer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customer.DefaultUpdatedAt = customerDescUpdatedAt.Default.(func() time.Time)
	// customer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customer.UpdateDefaultUpdatedAt = customerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// customerDescID is the schema descriptor for id field.
	customerDescID := customerFields[0].Descriptor()
	// customer.DefaultID holds the default value on creation for the id field.
	customer.DefaultID = customerDescID.Default.(func() uuid.UUID)
	documentlogFields := schema.DocumentLog{}.Fields()
	_ = documentlogFields
	// documentlogDescLookupKey is the schema descriptor for lookup_key field.
	documentlogDescLookupKey := documentlogFields[1].Descriptor()
	// documentlog.LookupKeyValidator is a validator for the "lookup_key" field. It is called by the builders before save.
	documentlog.LookupKeyValidator = documentlogDescLookupKey.Validators[0].(func(string) error)
	// documentlogDescFilename is the schema descriptor for filename field.
	documentlogDescFilename := documentlogFields[2].Descriptor()
	// documentlog.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	documentlog.FilenameValidator = documentlogDescFilename.Validators[0].(func(string) error)
	// documentlogDescDocumentType is the schema descriptor for document_type field.
	documentlogDescDocumentType := documentlogFields[3].Descriptor()
	// documentlog.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	documentlog.DocumentTypeValidator = documentlogDescDocumentType.Validators[0].(func(string) error)
	// documentlogDescProcessedAt is the schema descriptor for processed_at field.
	documentlogDescProcessedAt := documentlogFields[7].Descriptor()
	// documentlog.DefaultProcessedAt holds the default value on creation for the processed_at field.
	documentlog.DefaultProcessedAt = documentlogDescProcessedAt.Default.(func() time.Time)
	// documentlogDescID is the schema descriptor for id field.
	documentlogDescID := documentlogFields[0].Descriptor()
	// documentlog.DefaultID holds the default value on creation for the id field.
	documentlog.DefaultID = documentlogDescID.Default.(func() uuid.UUID)
	insurancepolicyFields := schema.InsurancePolicy{}.Fields()
	_ = insurancepolicyFields
	// insurancepolicyDescPolicyNumber is the schema descriptor for policy_number field.
	insurancepolicyDescPolicyNumber := insurancepolicyFields[1].Descriptor()
	// insurancepolicy.PolicyNumberValidator is a validator for the "policy_number" field. It is called by the builders before save.
	insurancepolicy.PolicyNumberValidator = func() func(string) error {
		validators := insurancepolicyDescPolicyNumber.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(policy_number string) error {
			for _, fn := range fns {
				if err := fn(policy_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// insurancepolicyDescStatus is the schema descriptor for status field.
	insurancepolicyDescStatus := insurancepolicyFields[13].Descriptor()
	// insurancepolicy.DefaultStatus holds the default value on creation for the status field.
	insurancepolicy.DefaultStatus = insurancepolicyDescStatus.Default.(string)
	// insurancepolicy.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	insurancepolicy.StatusValidator = insurancepolicyDescStatus.Validators[0].(func(string) error)
	// insurancepolicyDescExtractionMethod is the schema descriptor for extraction_method field.
	insurancepolicyDescExtractionMethod := insurancepolicyFields[14].Descriptor()
	// insurancepolicy.DefaultExtractionMethod holds the default value on creation for the extraction_method field.
	insurancepolicy.DefaultExtractionMethod = insurancepolicyDescExtractionMethod.Default.(string)
	// insurancepolicyDescCreatedAt is the schema descriptor for created_at field.
	insurancepolicyDescCreatedAt := insurancepolicyFields[15].Descriptor()
	// insurancepolicy.DefaultCreatedAt holds the default value on creation for the created_at field.
	insurancepolicy.DefaultCreatedAt = insurancepolicyDescCreatedAt.Default.(func() time.Time)
	// insurancepolicyDescUpdatedAt is the schema descriptor for updated_at field.
	insurancepolicyDescUpdatedAt := insurancepolicyFields[16].Descriptor()
	// insurancepolicy.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	insurancepolicy.DefaultUpdatedAt = insurancepolicyDescUpdatedAt.Default.(func() time.Time)
	// insurancepolicy.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	insurancepolicy.UpdateDefaultUpdatedAt = insurancepolicyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// insurancepolicyDescID is the schema descriptor for id field.
	insurancepolicyDescID := insurancepolicyFields[0].Descriptor()
	// insurancepolicy.DefaultID holds the default value on creation for the id field.
	insurancepolicy.DefaultID = insurancepolicyDescID.Default.(func() uuid.UUID)
	premiumrecordFields := schema.PremiumRecord{}.Fields()
	_ = premiumrecordFields
	// premiumrecordDescSourceDocument is the schema descriptor for source_document field.
	premiumrecordDescSourceDocument := premiumrecordFields[8].Descriptor()
	// premiumrecord.SourceDocumentValidator is a validator for the "source_document" field. It is called by the builders before save.
	premiumrecord.SourceDocumentValidator = premiumrecordDescSourceDocument.Validators[0].(func(string) error)
	// premiumrecordDescProcessedAt is the schema descriptor for processed_at field.
	premiumrecordDescProcessedAt := premiumrecordFields[10].Descriptor()
	// premiumrecord.DefaultProcessedAt holds the default value on creation for the processed_at field.
	premiumrecord.DefaultProcessedAt = premiumrecordDescProcessedAt.Default.(func() time.Time)
	// premiumrecordDescID is the schema descriptor for id field.
	premiumrecordDescID := premiumrecordFields[0].Descriptor()
	// premiumrecord.DefaultID holds the default value on creation for the id field.
	premiumrecord.DefaultID = premiumrecordDescID.Default.(func() uuid.UUID)
}
