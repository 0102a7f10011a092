package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DocumentLog is the durable memory of the duplicate detector. One row per
// successfully routed document (processed or duplicate), never for errors.
type DocumentLog struct{ ent.Schema }

func (DocumentLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (DocumentLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// filename for specific-name documents, content-hash hex for generic ones
		field.String("lookup_key").NotEmpty().Immutable(),
		field.String("filename").NotEmpty().Immutable(),
		field.String("document_type").NotEmpty().Immutable(),
		field.String("content_hash").Optional().Nillable().Immutable(),
		field.String("hash_algo").Optional().Nillable().Immutable(),
		field.Int("hash_prefix_len").Optional().Nillable().Immutable(),
		field.Time("processed_at").Default(time.Now).Immutable(),
	}
}

func (DocumentLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lookup_key").Unique(),
		index.Fields("filename"),
	}
}
