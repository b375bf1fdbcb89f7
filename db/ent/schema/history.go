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

// History records one user action; the statistics dashboard aggregates it.
type History struct{ ent.Schema }

func (History) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "histories"},
	}
}

func (History) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("user_email").Default(""),
		field.String("tenant_email").Default(""),
		field.Text("content").Default(""),
		field.String("ai_agent_type").Optional().Nillable(),
		field.String("file_type").Optional().Nillable(),
		field.String("file_name").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (History) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_email", "created_at"),
		index.Fields("tenant_email", "created_at"),
	}
}
