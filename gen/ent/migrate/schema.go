// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BillingsColumns holds the columns for the "billings" table.
	BillingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tenant_email", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "amount", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BillingsTable holds the schema information for the "billings" table.
	BillingsTable = &schema.Table{
		Name:       "billings",
		Columns:    BillingsColumns,
		PrimaryKey: []*schema.Column{BillingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "billing_tenant_email",
				Unique:  false,
				Columns: []*schema.Column{BillingsColumns[1]},
			},
		},
	}
	// HistoriesColumns holds the columns for the "histories" table.
	HistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_email", Type: field.TypeString, Default: ""},
		{Name: "tenant_email", Type: field.TypeString, Default: ""},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "ai_agent_type", Type: field.TypeString, Nullable: true},
		{Name: "file_type", Type: field.TypeString, Nullable: true},
		{Name: "file_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// HistoriesTable holds the schema information for the "histories" table.
	HistoriesTable = &schema.Table{
		Name:       "histories",
		Columns:    HistoriesColumns,
		PrimaryKey: []*schema.Column{HistoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "history_user_email_created_at",
				Unique:  false,
				Columns: []*schema.Column{HistoriesColumns[1], HistoriesColumns[7]},
			},
			{
				Name:    "history_tenant_email_created_at",
				Unique:  false,
				Columns: []*schema.Column{HistoriesColumns[2], HistoriesColumns[7]},
			},
		},
	}
	// OffersColumns holds the columns for the "offers" table.
	OffersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "draft"},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "location", Type: field.TypeString, Default: ""},
		{Name: "total_price", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "material_total", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "work_total", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "items", Type: field.TypeJSON, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "offer_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "estimated_duration", Type: field.TypeString, Default: ""},
		{Name: "valid_until", Type: field.TypeTime, Nullable: true},
		{Name: "is_converted_from_existing", Type: field.TypeBool, Default: false},
		{Name: "tenant_email", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "requirement_id", Type: field.TypeUUID},
	}
	// OffersTable holds the schema information for the "offers" table.
	OffersTable = &schema.Table{
		Name:       "offers",
		Columns:    OffersColumns,
		PrimaryKey: []*schema.Column{OffersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "offers_requirements_offers",
				Columns:    []*schema.Column{OffersColumns[18]},
				RefColumns: []*schema.Column{RequirementsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// PriceListsColumns holds the columns for the "price_lists" table.
	PriceListsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "category", Type: field.TypeString},
		{Name: "task", Type: field.TypeString},
		{Name: "unit", Type: field.TypeString, Default: ""},
		{Name: "labor_cost", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "material_cost", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PriceListsTable holds the schema information for the "price_lists" table.
	PriceListsTable = &schema.Table{
		Name:       "price_lists",
		Columns:    PriceListsColumns,
		PrimaryKey: []*schema.Column{PriceListsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pricelist_category_task",
				Unique:  true,
				Columns: []*schema.Column{PriceListsColumns[1], PriceListsColumns[2]},
			},
		},
	}
	// RequirementsColumns holds the columns for the "requirements" table.
	RequirementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "version_number", Type: field.TypeInt, Default: 1},
		{Name: "update_count", Type: field.TypeInt, Default: 1},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "work_id", Type: field.TypeUUID},
	}
	// RequirementsTable holds the schema information for the "requirements" table.
	RequirementsTable = &schema.Table{
		Name:       "requirements",
		Columns:    RequirementsColumns,
		PrimaryKey: []*schema.Column{RequirementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "requirements_works_requirements",
				Columns:    []*schema.Column{RequirementsColumns[8]},
				RefColumns: []*schema.Column{WorksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// TenantPriceListsColumns holds the columns for the "tenant_price_lists" table.
	TenantPriceListsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tenant_email", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "task", Type: field.TypeString},
		{Name: "unit", Type: field.TypeString, Default: ""},
		{Name: "labor_cost", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "material_cost", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TenantPriceListsTable holds the schema information for the "tenant_price_lists" table.
	TenantPriceListsTable = &schema.Table{
		Name:       "tenant_price_lists",
		Columns:    TenantPriceListsColumns,
		PrimaryKey: []*schema.Column{TenantPriceListsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tenantpricelist_tenant_email_task",
				Unique:  true,
				Columns: []*schema.Column{TenantPriceListsColumns[1], TenantPriceListsColumns[3]},
			},
			{
				Name:    "tenantpricelist_tenant_email_category",
				Unique:  false,
				Columns: []*schema.Column{TenantPriceListsColumns[1], TenantPriceListsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeString, Default: "tenant"},
		{Name: "is_super_user", Type: field.TypeBool, Default: false},
		{Name: "is_tenant", Type: field.TypeBool, Default: true},
		{Name: "invited_by", Type: field.TypeString, Nullable: true},
		{Name: "trial_ends_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// WorksColumns holds the columns for the "works" table.
	WorksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "location", Type: field.TypeString, Default: ""},
		{Name: "customer_name", Type: field.TypeString, Default: ""},
		{Name: "date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "time", Type: field.TypeString, Default: ""},
		{Name: "total_price", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "tenant_email", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorksTable holds the schema information for the "works" table.
	WorksTable = &schema.Table{
		Name:       "works",
		Columns:    WorksColumns,
		PrimaryKey: []*schema.Column{WorksColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BillingsTable,
		HistoriesTable,
		OffersTable,
		PriceListsTable,
		RequirementsTable,
		TenantPriceListsTable,
		UsersTable,
		WorksTable,
	}
)

func init() {
	BillingsTable.Annotation = &entsql.Annotation{
		Table: "billings",
	}
	HistoriesTable.Annotation = &entsql.Annotation{
		Table: "histories",
	}
	OffersTable.ForeignKeys[0].RefTable = RequirementsTable
	OffersTable.Annotation = &entsql.Annotation{
		Table: "offers",
	}
	PriceListsTable.Annotation = &entsql.Annotation{
		Table: "price_lists",
	}
	RequirementsTable.ForeignKeys[0].RefTable = WorksTable
	RequirementsTable.Annotation = &entsql.Annotation{
		Table: "requirements",
	}
	TenantPriceListsTable.Annotation = &entsql.Annotation{
		Table: "tenant_price_lists",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
	WorksTable.Annotation = &entsql.Annotation{
		Table: "works",
	}
}
