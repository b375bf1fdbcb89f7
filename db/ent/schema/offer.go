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

	"github.com/Zoli1212/awsflow/db/ent/schema/utils"
	"github.com/Zoli1212/awsflow/internal/entity"
)

type Offer struct{ ent.Schema }

func (Offer) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "offers"},
	}
}

func (Offer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("requirement_id", uuid.UUID{}),
		field.String("record_id").NotEmpty().Unique(),
		field.String("title").NotEmpty(),
		field.String("status").Default("draft").
			Validate(utils.EnumValidator("draft", "sent", "accepted", "rejected")),
		field.Text("description").Default(""),
		field.String("location").Default(""),
		field.Float("total_price").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("material_total").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("work_total").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.JSON("items", []entity.OfferItem{}).
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Text("notes").Optional().Nillable(),
		field.Text("offer_summary").Optional().Nillable(),
		field.String("estimated_duration").Default(""),
		field.Time("valid_until").Optional(),
		field.Bool("is_converted_from_existing").Default(false),
		field.String("tenant_email").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Offer) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY offers -> ONE requirement (FK: offers.requirement_id)
		edge.From("requirement", Requirement.Type).
			Ref("offers").
			Field("requirement_id").
			Required().
			Unique(),
	}
}
