package catalog

import (
	"testing"

	"github.com/Zoli1212/awsflow/internal/entity"
)

func TestMergeTenantWinsWholesale(t *testing.T) {
	tenant := []entity.PriceEntry{
		{Category: "Festés", Task: "Falfestés", Unit: "m2", LaborCost: 5000, MaterialCost: 1000},
	}
	global := []entity.PriceEntry{
		{Category: "Festés", Task: "Falfestés", Unit: "nm", LaborCost: 4000, MaterialCost: 800},
		{Category: "Festés", Task: "Glettelés", Unit: "m2", LaborCost: 2500, MaterialCost: 500},
	}

	merged := Merge(tenant, global)
	if len(merged) != 2 {
		t.Fatalf("merged size = %d, want 2", len(merged))
	}

	e, ok := merged.Lookup("Festés", "Falfestés")
	if !ok {
		t.Fatal("expected a match for (Festés, Falfestés)")
	}
	// The tenant row replaces the global row in full, not field by field.
	if e.LaborCost != 5000 || e.MaterialCost != 1000 || e.Unit != "m2" {
		t.Errorf("merged entry = %+v, want the tenant row in full", e)
	}

	e, ok = merged.Lookup("Festés", "Glettelés")
	if !ok || e.LaborCost != 2500 {
		t.Errorf("global-only entry = %+v ok=%v, want the global row", e, ok)
	}
}

func TestMergeEmptyInputs(t *testing.T) {
	merged := Merge(nil, nil)
	if len(merged) != 0 {
		t.Fatalf("merged size = %d, want 0", len(merged))
	}
	if _, ok := merged.Lookup("Festés", "Falfestés"); ok {
		t.Error("lookup on empty map must miss")
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	m := NewPriceMap([]entity.PriceEntry{
		{Category: "Burkolás", Task: "Csempézés", LaborCost: 7000},
	})
	if _, ok := m.Lookup("burkolás", "Csempézés"); ok {
		t.Error("category match must be case-sensitive")
	}
	if _, ok := m.Lookup("Burkolás", "csempézés"); ok {
		t.Error("task match must be case-sensitive")
	}
	if _, ok := m.Lookup("Burkolás", "Csempézés"); !ok {
		t.Error("exact key must match")
	}
}

func TestCleanTaskName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"* Falfestés", "Falfestés"},
		{"**Glettelés", "Glettelés"},
		{"  Csempézés  ", "Csempézés"},
		{"Falfestés", "Falfestés"},
		{"*", ""},
		{"Bel*ső munka", "Bel*ső munka"},
	}
	for _, c := range cases {
		if got := CleanTaskName(c.in); got != c.want {
			t.Errorf("CleanTaskName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
