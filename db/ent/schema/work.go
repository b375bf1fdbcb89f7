package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Work struct{ ent.Schema }

func (Work) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "works"},
	}
}

func (Work) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("title").NotEmpty(),
		field.String("location").Default(""),
		field.String("customer_name").Default(""),
		field.Time("date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		// Human-readable duration like "3-5 nap".
		field.String("time").Default(""),
		field.Float("total_price").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("tenant_email").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Work) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("requirements", Requirement.Type),
	}
}
