package schema

import (
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/rsubramani/policy-tracker/db/ent/schema/utils"
)

var rePolicyNumber = regexp.MustCompile(`^[0-9]{9}$`)

// ent predeclares the identifier "Policy" for privacy rules, so the schema
// carries the domain prefix; the table name stays "policies".
type InsurancePolicy struct{ ent.Schema }

func (InsurancePolicy) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "policies"},
	}
}

func (InsurancePolicy) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// stable external identifier; uniquely determines the policy
		field.String("policy_number").NotEmpty().
			Match(rePolicyNumber).
			Immutable(),
		// explicit FK so we can index on it
		field.UUID("customer_id", uuid.UUID{}),
		field.String("agent_code").Optional().Nillable(),
		field.String("plan_type").Optional().Nillable(),
		field.String("plan_name").Optional().Nillable(),
		field.Time("commencement_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("payment_mode").Optional().Nillable(),
		field.Time("fup_due_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("sum_assured").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("premium_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Int("policy_term").Optional().Nillable(),
		field.Int("premium_paying_term").Optional().Nillable(),
		field.String("status").Default("Active").
			Validate(utils.EnumValidator("Active", "Lapsed", "Matured", "Surrendered")),
		field.String("extraction_method").Default("unknown"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (InsurancePolicy) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY policies -> ONE customer
		edge.From("customer", Customer.Type).
			Ref("policies").
			Field("customer_id").
			Required().
			Unique(),
		// ONE policy -> MANY premium records
		edge.To("premium_records", PremiumRecord.Type),
	}
}

func (InsurancePolicy) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("policy_number").Unique(),
		index.Fields("customer_id"),
		index.Fields("agent_code"),
	}
}
