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

// TenantPriceList is the tenant-private price catalog. Rows here override
// global PriceList rows sharing the same (category, task) key.
type TenantPriceList struct{ ent.Schema }

func (TenantPriceList) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tenant_price_lists"},
	}
}

func (TenantPriceList) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("tenant_email").NotEmpty(),
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

func (TenantPriceList) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_email", "task").Unique(),
		index.Fields("tenant_email", "category"),
	}
}
