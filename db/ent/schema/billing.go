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

// Billing is an invoice record; statistics only count these per tenant.
type Billing struct{ ent.Schema }

func (Billing) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "billings"},
	}
}

func (Billing) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("tenant_email").NotEmpty(),
		field.String("title").Default(""),
		field.Float("amount").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (Billing) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_email"),
	}
}
