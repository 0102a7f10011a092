package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent rows are provisioned from config; the engine only reads them.
type Agent struct{ ent.Schema }

func (Agent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "agents"},
	}
}

func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("code").NotEmpty().Unique().Immutable(),
		field.String("name").NotEmpty(),
		field.String("branch_code").Optional().Nillable(),
		field.String("relationship").Optional().Nillable(),
		field.String("phone").Optional().Nillable(),
		field.String("email").Optional().Nillable(),
		field.Bool("active").Default(true),
	}
}

func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("code").Unique(),
	}
}
