package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PremiumRecord is an append-only observation of a due/paid premium.
// Rows are never updated in place; every document occurrence is a distinct
// observation even when the values repeat.
type PremiumRecord struct{ ent.Schema }

func (PremiumRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "premium_records"},
	}
}

func (PremiumRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("policy_id", uuid.UUID{}),
		field.Time("due_date").Optional().Nillable().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("amount").Optional().Nillable().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tax").Optional().Nillable().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total").Optional().Nillable().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Int("due_count").Optional().Nillable().Immutable(),
		field.String("agent_code").Optional().Nillable().Immutable(),
		field.String("source_document").NotEmpty().Immutable(),
		field.Time("payment_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("processed_at").Default(time.Now).Immutable(),
	}
}

func (PremiumRecord) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY records -> ONE policy
		edge.From("policy", InsurancePolicy.Type).
			Ref("premium_records").
			Field("policy_id").
			Required().
			Unique(),
	}
}

func (PremiumRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("policy_id", "due_date"),
	}
}
