package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PriceList maps the global price catalog shared by every tenant.
type PriceList struct{ ent.Schema }

func (PriceList) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "price_lists"},
	}
}

func (PriceList) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("category").NotEmpty(),
		field.String("task").NotEmpty(),
		field.String("unit").Default(""),
		field.Float("labor_cost").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("material_cost").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (PriceList) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category", "task").Unique(),
	}
}
