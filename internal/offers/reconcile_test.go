package offers

import (
	"testing"

	"github.com/Zoli1212/awsflow/internal/catalog"
	"github.com/Zoli1212/awsflow/internal/entity"
	"github.com/Zoli1212/awsflow/internal/llm"
)

func pricedCatalog() catalog.PricedCatalog {
	return catalog.PricedCatalog{
		Tenant: catalog.NewPriceMap([]entity.PriceEntry{
			{Category: "Festés", Task: "Falfestés", Unit: "m2", LaborCost: 5000, MaterialCost: 1000},
		}),
		Global: catalog.NewPriceMap([]entity.PriceEntry{
			{Category: "Festés", Task: "Falfestés", Unit: "m2", LaborCost: 4000, MaterialCost: 800},
			{Category: "Festés", Task: "Glettelés", Unit: "m2", LaborCost: 2500, MaterialCost: 500},
		}),
	}
}

func TestReconcileTenantMatch(t *testing.T) {
	rec := Reconcile([]llm.ProposedItem{
		{Task: "Falfestés", Category: "Festés", Unit: "m2", Quantity: 10, Source: "tenant"},
	}, pricedCatalog())

	if len(rec.Lines) != 1 || len(rec.Unmatched) != 0 {
		t.Fatalf("lines=%d unmatched=%d", len(rec.Lines), len(rec.Unmatched))
	}
	line := rec.Lines[0]
	if line.UnitPrice != 5000 || line.MaterialUnitPrice != 1000 {
		t.Errorf("tenant prices not used: %+v", line)
	}
	if line.WorkTotal != 50000 || line.MaterialTotal != 10000 || line.TotalPrice != 60000 {
		t.Errorf("totals = %+v", line)
	}
	if line.Source != "tenant" || line.New {
		t.Errorf("flags = source %q new %v", line.Source, line.New)
	}
}

func TestReconcileTenantFallsBackToGlobal(t *testing.T) {
	rec := Reconcile([]llm.ProposedItem{
		{Task: "Glettelés", Category: "Festés", Unit: "m2", Quantity: 4, Source: "tenant"},
	}, pricedCatalog())

	if len(rec.Lines) != 1 {
		t.Fatalf("expected the global fallback to match, unmatched=%d", len(rec.Unmatched))
	}
	if rec.Lines[0].UnitPrice != 2500 {
		t.Errorf("unit price = %v, want the global labor cost", rec.Lines[0].UnitPrice)
	}
	// The claimed tier is preserved even when the global row priced it.
	if rec.Lines[0].Source != "tenant" {
		t.Errorf("source = %q, want tenant", rec.Lines[0].Source)
	}
}

func TestReconcileGlobalDoesNotUseTenant(t *testing.T) {
	pc := catalog.PricedCatalog{
		Tenant: catalog.NewPriceMap([]entity.PriceEntry{
			{Category: "Festés", Task: "Falfestés", LaborCost: 5000},
		}),
		Global: catalog.NewPriceMap(nil),
	}
	rec := Reconcile([]llm.ProposedItem{
		{Task: "Falfestés", Category: "Festés", Quantity: 1, Source: "global"},
	}, pc)

	if len(rec.Unmatched) != 1 {
		t.Error("a global-sourced item must only match the global catalog")
	}
}

func TestReconcileCustomSkipsLookup(t *testing.T) {
	rec := Reconcile([]llm.ProposedItem{
		{Task: "Falfestés", Category: "Festés", Quantity: 1, Source: "custom"},
		{Task: "Egyedi munka", Category: "Egyéb", Quantity: 2},
	}, pricedCatalog())

	if len(rec.Lines) != 0 || len(rec.Unmatched) != 2 {
		t.Errorf("lines=%d unmatched=%d, custom and unset sources defer", len(rec.Lines), len(rec.Unmatched))
	}
}

func TestReconcileStripsTaskMarkup(t *testing.T) {
	rec := Reconcile([]llm.ProposedItem{
		{Task: "* Falfestés", Category: "Festés", Quantity: 1, Source: "tenant"},
	}, pricedCatalog())

	if len(rec.Lines) != 1 {
		t.Fatal("marked-up task name must still match after cleaning")
	}
	if rec.Lines[0].Name != "Falfestés" {
		t.Errorf("name = %q, want the cleaned task", rec.Lines[0].Name)
	}
}

func TestReconcileUnitFallback(t *testing.T) {
	rec := Reconcile([]llm.ProposedItem{
		{Task: "Falfestés", Category: "Festés", Quantity: 1, Source: "tenant"},
	}, pricedCatalog())
	if rec.Lines[0].Unit != "m2" {
		t.Errorf("unit = %q, want the catalog unit when the model omits it", rec.Lines[0].Unit)
	}
}

func TestApplyEstimates(t *testing.T) {
	rec := Reconcile([]llm.ProposedItem{
		{Task: "Zuhanyzó", Category: "Egyéb", Unit: "db", Quantity: 1, Source: "custom"},
		{Task: "Ismeretlen", Category: "Egyéb", Quantity: 3, Source: "custom"},
	}, pricedCatalog())

	rec.ApplyEstimates([]llm.PriceEstimate{
		{Task: "Zuhanyzó", LaborCost: 0, MaterialCost: 150000},
	})

	if len(rec.Lines) != 1 {
		t.Fatalf("lines = %d, items without an estimate row must drop", len(rec.Lines))
	}
	line := rec.Lines[0]
	if !line.New || line.Source != "custom" {
		t.Errorf("estimated line flags = %+v", line)
	}
	if line.MaterialTotal != 150000 || line.WorkTotal != 0 {
		t.Errorf("estimated line totals = %+v", line)
	}
}

func TestReconcileRoundingPerLineAndAggregate(t *testing.T) {
	pc := catalog.PricedCatalog{
		Tenant: catalog.NewPriceMap([]entity.PriceEntry{
			{Category: "Festés", Task: "A", LaborCost: 10.4},
			{Category: "Festés", Task: "B", LaborCost: 10.4},
		}),
		Global: catalog.NewPriceMap(nil),
	}
	rec := Reconcile([]llm.ProposedItem{
		{Task: "A", Category: "Festés", Quantity: 1, Source: "tenant"},
		{Task: "B", Category: "Festés", Quantity: 1, Source: "tenant"},
	}, pc)

	// Line fields round independently; the offer totals round the unrounded sum.
	if rec.Lines[0].WorkTotal != 10 || rec.Lines[1].WorkTotal != 10 {
		t.Errorf("line work totals = %v, %v, want 10 each", rec.Lines[0].WorkTotal, rec.Lines[1].WorkTotal)
	}
	if got := rec.RoundedWorkTotal(); got != 21 {
		t.Errorf("offer work total = %v, want 21 (round of 20.8)", got)
	}
	if got := rec.TotalPrice(); got != 21 {
		t.Errorf("offer total = %v, want 21", got)
	}
}
