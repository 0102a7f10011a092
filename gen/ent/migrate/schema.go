// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "code", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "branch_code", Type: field.TypeString, Nullable: true},
		{Name: "relationship", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_code",
				Unique:  true,
				Columns: []*schema.Column{AgentsColumns[1]},
			},
		},
	}
	// CustomersColumns holds the columns for the "customers" table.
	CustomersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "alt_phone", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "national_id", Type: field.TypeString, Nullable: true},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "extraction_method", Type: field.TypeString, Default: "unknown"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CustomersTable holds the schema information for the "customers" table.
	CustomersTable = &schema.Table{
		Name:       "customers",
		Columns:    CustomersColumns,
		PrimaryKey: []*schema.Column{CustomersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "customer_name",
				Unique:  false,
				Columns: []*schema.Column{CustomersColumns[1]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "lookup_key", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeString, Nullable: true},
		{Name: "hash_algo", Type: field.TypeString, Nullable: true},
		{Name: "hash_prefix_len", Type: field.TypeInt, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "documentlog_lookup_key",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[1]},
			},
			{
				Name:    "documentlog_filename",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[2]},
			},
		},
	}
	// PoliciesColumns holds the columns for the "policies" table.
	PoliciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "policy_number", Type: field.TypeString},
		{Name: "agent_code", Type: field.TypeString, Nullable: true},
		{Name: "plan_type", Type: field.TypeString, Nullable: true},
		{Name: "plan_name", Type: field.TypeString, Nullable: true},
		{Name: "commencement_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "payment_mode", Type: field.TypeString, Nullable: true},
		{Name: "fup_due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "sum_assured", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "premium_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "policy_term", Type: field.TypeInt, Nullable: true},
		{Name: "premium_paying_term", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "Active"},
		{Name: "extraction_method", Type: field.TypeString, Default: "unknown"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "customer_id", Type: field.TypeUUID},
	}
	// PoliciesTable holds the schema information for the "policies" table.
	PoliciesTable = &schema.Table{
		Name:       "policies",
		Columns:    PoliciesColumns,
		PrimaryKey: []*schema.Column{PoliciesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "policies_customers_policies",
				Columns:    []*schema.Column{PoliciesColumns[16]},
				RefColumns: []*schema.Column{CustomersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "insurancepolicy_policy_number",
				Unique:  true,
				Columns: []*schema.Column{PoliciesColumns[1]},
			},
			{
				Name:    "insurancepolicy_customer_id",
				Unique:  false,
				Columns: []*schema.Column{PoliciesColumns[16]},
			},
			{
				Name:    "insurancepolicy_agent_code",
				Unique:  false,
				Columns: []*schema.Column{PoliciesColumns[2]},
			},
		},
	}
	// PremiumRecordsColumns holds the columns for the "premium_records" table.
	PremiumRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "due_count", Type: field.TypeInt, Nullable: true},
		{Name: "agent_code", Type: field.TypeString, Nullable: true},
		{Name: "source_document", Type: field.TypeString},
		{Name: "payment_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "processed_at", Type: field.TypeTime},
		{Name: "policy_id", Type: field.TypeUUID},
	}
	// PremiumRecordsTable holds the schema information for the "premium_records" table.
	PremiumRecordsTable = &schema.Table{
		Name:       "premium_records",
		Columns:    PremiumRecordsColumns,
		PrimaryKey: []*schema.Column{PremiumRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "premium_records_policies_premium_records",
				Columns:    []*schema.Column{PremiumRecordsColumns[10]},
				RefColumns: []*schema.Column{PoliciesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "premiumrecord_policy_id_due_date",
				Unique:  false,
				Columns: []*schema.Column{PremiumRecordsColumns[10], PremiumRecordsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		CustomersTable,
		DocumentsTable,
		PoliciesTable,
		PremiumRecordsTable,
	}
)

func init() {
	AgentsTable.Annotation = &entsql.Annotation{
		Table: "agents",
	}
	CustomersTable.Annotation = &entsql.Annotation{
		Table: "customers",
	}
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	PoliciesTable.ForeignKeys[0].RefTable = CustomersTable
	PoliciesTable.Annotation = &entsql.Annotation{
		Table: "policies",
	}
	PremiumRecordsTable.ForeignKeys[0].RefTable = PoliciesTable
	PremiumRecordsTable.Annotation = &entsql.Annotation{
		Table: "premium_records",
	}
}
