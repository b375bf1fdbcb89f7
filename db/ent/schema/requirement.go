package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Requirement struct{ ent.Schema }

func (Requirement) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "requirements"},
	}
}

func (Requirement) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("work_id", uuid.UUID{}),
		field.String("title").NotEmpty(),
		field.Text("description").Default(""),
		field.Int("version_number").Default(1),
		field.Int("update_count").Default(1),
		field.Int("question_count").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Requirement) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY requirements -> ONE work (FK: requirements.work_id)
		edge.From("work", Work.Type).
			Ref("requirements").
			Field("work_id").
			Required().
			Unique(),
		edge.To("offers", Offer.Type),
	}
}
