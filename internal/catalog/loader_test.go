package catalog

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/Zoli1212/awsflow/internal/entity"
	"github.com/Zoli1212/awsflow/internal/repository/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTaskCatalogUsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPriceListRepository(ctrl)
	loader := NewLoader(repo, NewCache(time.Minute), discardLogger())

	tenantRows := []entity.PriceEntry{{Category: "Festés", Task: "Falfestés", Unit: "m2"}}
	globalRows := []entity.PriceEntry{{Category: "Burkolás", Task: "Csempézés", Unit: "m2"}}

	repo.EXPECT().ListTenantEntries(gomock.Any(), "t@x.hu", gomock.Nil()).Return(tenantRows, nil).Times(1)
	repo.EXPECT().ListGlobalEntries(gomock.Any(), gomock.Nil()).Return(globalRows, nil).Times(1)

	for range 3 {
		tc, err := loader.TaskCatalog(context.Background(), "t@x.hu")
		if err != nil {
			t.Fatalf("TaskCatalog: %v", err)
		}
		if len(tc.Tenant) != 1 || len(tc.Global) != 1 {
			t.Fatalf("catalog sizes = %d/%d, want 1/1", len(tc.Tenant), len(tc.Global))
		}
		if tc.Tenant[0].Source != "tenant" || tc.Global[0].Source != "global" {
			t.Errorf("sources = %q/%q, want tenant/global", tc.Tenant[0].Source, tc.Global[0].Source)
		}
	}
}

func TestPricedCatalogBypassesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPriceListRepository(ctrl)
	loader := NewLoader(repo, NewCache(time.Minute), discardLogger())

	categories := []string{"Festés"}
	repo.EXPECT().ListTenantEntries(gomock.Any(), "t@x.hu", categories).
		Return([]entity.PriceEntry{{Category: "Festés", Task: "Falfestés", LaborCost: 5000}}, nil).
		Times(2)
	repo.EXPECT().ListGlobalEntries(gomock.Any(), categories).
		Return([]entity.PriceEntry{{Category: "Festés", Task: "Falfestés", LaborCost: 4000}}, nil).
		Times(2)

	for range 2 {
		pc, err := loader.PricedCatalog(context.Background(), "t@x.hu", categories)
		if err != nil {
			t.Fatalf("PricedCatalog: %v", err)
		}
		if e, ok := pc.Tenant.Lookup("Festés", "Falfestés"); !ok || e.LaborCost != 5000 {
			t.Errorf("tenant lookup = %+v ok=%v", e, ok)
		}
	}
}

func TestPricedCatalogEmptyCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPriceListRepository(ctrl)
	loader := NewLoader(repo, NewCache(time.Minute), discardLogger())

	// An empty (non-nil) category set queries nothing and yields empty maps.
	repo.EXPECT().ListTenantEntries(gomock.Any(), "t@x.hu", []string{}).Return(nil, nil)
	repo.EXPECT().ListGlobalEntries(gomock.Any(), []string{}).Return(nil, nil)

	pc, err := loader.PricedCatalog(context.Background(), "t@x.hu", nil)
	if err != nil {
		t.Fatalf("PricedCatalog: %v", err)
	}
	if len(pc.Tenant) != 0 || len(pc.Global) != 0 {
		t.Errorf("maps = %d/%d entries, want empty", len(pc.Tenant), len(pc.Global))
	}
}

func TestMergedLayersTenantOverGlobal(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPriceListRepository(ctrl)
	loader := NewLoader(repo, NewCache(time.Minute), discardLogger())

	categories := []string{"Festés"}
	repo.EXPECT().ListTenantEntries(gomock.Any(), "t@x.hu", categories).
		Return([]entity.PriceEntry{{Category: "Festés", Task: "Falfestés", LaborCost: 5000, MaterialCost: 1000}}, nil)
	repo.EXPECT().ListGlobalEntries(gomock.Any(), categories).
		Return([]entity.PriceEntry{
			{Category: "Festés", Task: "Falfestés", LaborCost: 4000, MaterialCost: 800},
			{Category: "Festés", Task: "Glettelés", LaborCost: 2500},
		}, nil)

	merged, err := loader.Merged(context.Background(), "t@x.hu", categories)
	if err != nil {
		t.Fatalf("Merged: %v", err)
	}
	e, _ := merged.Lookup("Festés", "Falfestés")
	if e.LaborCost != 5000 || e.MaterialCost != 1000 {
		t.Errorf("merged entry = %+v, want the tenant row", e)
	}
	if _, ok := merged.Lookup("Festés", "Glettelés"); !ok {
		t.Error("global-only row must survive the merge")
	}
}
