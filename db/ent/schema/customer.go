package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Customer struct{ ent.Schema }

func (Customer) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "customers"},
	}
}

func (Customer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.String("phone").Optional().Nillable(),
		field.String("alt_phone").Optional().Nillable(),
		field.String("email").Optional().Nillable(),
		field.String("national_id").Optional().Nillable(),
		field.Time("date_of_birth").Optional().Nillable(),
		field.String("address").Optional().Nillable(),
		field.String("notes").Optional().Nillable(),
		field.String("extraction_method").Default("unknown"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Customer) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE customer -> MANY policies
		edge.To("policies", InsurancePolicy.Type),
	}
}

func (Customer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
