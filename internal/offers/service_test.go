package offers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/Zoli1212/awsflow/internal/catalog"
	"github.com/Zoli1212/awsflow/internal/entity"
	"github.com/Zoli1212/awsflow/internal/llm"
	llmmocks "github.com/Zoli1212/awsflow/internal/llm/mocks"
	"github.com/Zoli1212/awsflow/internal/rag"
	"github.com/Zoli1212/awsflow/internal/repository"
	"github.com/Zoli1212/awsflow/internal/repository/mocks"
)

const tenantEmail = "mester@pelda.hu"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type pipelineMocks struct {
	priceLists *mocks.MockPriceListRepository
	works      *mocks.MockWorkRepository
	generator  *llmmocks.MockOfferGenerator
}

func newPipeline(t *testing.T) (*Service, pipelineMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := pipelineMocks{
		priceLists: mocks.NewMockPriceListRepository(ctrl),
		works:      mocks.NewMockWorkRepository(ctrl),
		generator:  llmmocks.NewMockOfferGenerator(ctrl),
	}
	loader := catalog.NewLoader(m.priceLists, catalog.NewCache(time.Minute), testLogger())
	svc := NewService(loader, m.generator, m.works, m.priceLists, rag.Noop{}, false, testLogger())
	return svc, m
}

func bundleResult() *repository.OfferBundleResult {
	return &repository.OfferBundleResult{
		Work:        &entity.Work{ID: uuid.New()},
		Requirement: &entity.Requirement{ID: uuid.New()},
		Offer:       &entity.Offer{ID: uuid.New()},
	}
}

func TestGenerateHappyPath(t *testing.T) {
	svc, m := newPipeline(t)

	// Prompt catalog load (uncategorized, cached).
	m.priceLists.EXPECT().ListTenantEntries(gomock.Any(), tenantEmail, gomock.Nil()).
		Return([]entity.PriceEntry{{Category: "Festés", Task: "Falfestés", Unit: "m2", LaborCost: 5000, MaterialCost: 1000}}, nil)
	m.priceLists.EXPECT().ListGlobalEntries(gomock.Any(), gomock.Nil()).
		Return(nil, nil)

	draft := llm.OfferDraft{
		Title:         "Fürdő felújítás",
		Location:      "Budapest",
		CustomerName:  "Kiss Béla",
		EstimatedTime: "3-5 nap",
		OfferSummary:  "Négy mondat.",
		Items: []llm.ProposedItem{
			{Task: "Falfestés", Category: "Festés", Unit: "m2", Quantity: 10, Source: "tenant"},
			{Task: "Zuhanyzó", Category: "Egyéb", Unit: "db", Quantity: 1, Source: "custom", CustomTask: true, CustomReason: "anyag"},
		},
		Questions: []string{"Milyen színű legyen?"},
	}
	m.generator.EXPECT().GenerateOffer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req llm.GenerateRequest) (llm.OfferDraft, []byte, error) {
			if !strings.Contains(req.UserInput, "===TASK KATALÓGUS PRIORITÁSI SORRENDBEN===") {
				t.Error("prompt must carry the catalog section")
			}
			if !strings.HasPrefix(req.UserInput, "fürdőszoba felújítás") {
				t.Error("prompt must open with the requirement text")
			}
			return draft, nil, nil
		})

	// Priced reload scoped to the categories the model used.
	m.priceLists.EXPECT().ListTenantEntries(gomock.Any(), tenantEmail, []string{"Festés", "Egyéb"}).
		Return([]entity.PriceEntry{{Category: "Festés", Task: "Falfestés", Unit: "m2", LaborCost: 5000, MaterialCost: 1000}}, nil)
	m.priceLists.EXPECT().ListGlobalEntries(gomock.Any(), []string{"Festés", "Egyéb"}).
		Return(nil, nil)

	m.generator.EXPECT().EstimatePrices(gomock.Any(), gomock.Len(1)).
		Return([]llm.PriceEstimate{{Task: "Zuhanyzó", LaborCost: 0, MaterialCost: 150000}}, nil)

	var captured *repository.OfferBundle
	m.works.EXPECT().CreateOfferBundle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *repository.OfferBundle) (*repository.OfferBundleResult, error) {
			captured = b
			return bundleResult(), nil
		})

	result := svc.Generate(context.Background(), GenerateRequest{
		TenantEmail: tenantEmail,
		UserInput:   "fürdőszoba felújítás",
	})

	if !result.Success {
		t.Fatalf("result = %+v", result)
	}
	if result.WorkID == "" || result.OfferID == "" {
		t.Error("created record ids missing from the envelope")
	}
	if captured == nil {
		t.Fatal("bundle not persisted")
	}
	if captured.WorkTitle != "Fürdő felújítás" || captured.CustomerName != "Kiss Béla" {
		t.Errorf("work fields = %+v", captured)
	}
	if captured.RequirementTitle != "Követelmény - Fürdő felújítás" {
		t.Errorf("requirement title = %q", captured.RequirementTitle)
	}
	if captured.RequirementDescription != "fürdőszoba felújítás" {
		t.Errorf("requirement description = %q", captured.RequirementDescription)
	}
	if captured.QuestionCount != 1 {
		t.Errorf("question count = %d", captured.QuestionCount)
	}
	if len(captured.Items) != 2 {
		t.Fatalf("items = %d, want matched + estimated", len(captured.Items))
	}
	// 10×5000 labor + 10×1000 material + 150000 estimated material.
	if captured.WorkTotal != 50000 || captured.MaterialTotal != 160000 || captured.TotalPrice != 210000 {
		t.Errorf("totals = work %v material %v total %v", captured.WorkTotal, captured.MaterialTotal, captured.TotalPrice)
	}
	if captured.Notes == nil || !strings.Contains(*captured.Notes, "Zuhanyzó (egyedi tétel)") {
		t.Error("notes must list the custom item")
	}
	if until := time.Until(captured.ValidUntil); until < 29*24*time.Hour || until > 31*24*time.Hour {
		t.Errorf("validUntil = %v, want ~30 days out", captured.ValidUntil)
	}
	if captured.IsConvertedFromExisting {
		t.Error("generated offers are not conversions")
	}
}

func TestGenerateValidatesInput(t *testing.T) {
	svc, _ := newPipeline(t)

	result := svc.Generate(context.Background(), GenerateRequest{TenantEmail: "", UserInput: "x"})
	if result.Success || result.Error == "" {
		t.Errorf("result = %+v, want a validation failure", result)
	}

	result = svc.Generate(context.Background(), GenerateRequest{TenantEmail: tenantEmail, UserInput: "  "})
	if result.Success {
		t.Error("blank user input must fail validation")
	}
}

func TestGenerateModelFailureIsReportedInBand(t *testing.T) {
	svc, m := newPipeline(t)

	m.priceLists.EXPECT().ListTenantEntries(gomock.Any(), tenantEmail, gomock.Nil()).Return(nil, nil)
	m.priceLists.EXPECT().ListGlobalEntries(gomock.Any(), gomock.Nil()).Return(nil, nil)
	m.generator.EXPECT().GenerateOffer(gomock.Any(), gomock.Any()).
		Return(llm.OfferDraft{}, nil, errors.New("model unavailable"))

	result := svc.Generate(context.Background(), GenerateRequest{TenantEmail: tenantEmail, UserInput: "festés"})
	if result.Success {
		t.Fatal("expected an in-band failure")
	}
	if !strings.Contains(result.Error, "model unavailable") {
		t.Errorf("error = %q", result.Error)
	}
}

func TestGenerateEstimationFailureDropsItems(t *testing.T) {
	svc, m := newPipeline(t)

	m.priceLists.EXPECT().ListTenantEntries(gomock.Any(), tenantEmail, gomock.Nil()).Return(nil, nil)
	m.priceLists.EXPECT().ListGlobalEntries(gomock.Any(), gomock.Nil()).Return(nil, nil)

	draft := llm.OfferDraft{
		Title: "Ajánlat", Location: "Budapest", CustomerName: "X", EstimatedTime: "1-2 nap",
		Items: []llm.ProposedItem{
			{Task: "Csempézés", Category: "Burkolás", Quantity: 10, Source: "custom"},
		},
	}
	m.generator.EXPECT().GenerateOffer(gomock.Any(), gomock.Any()).Return(draft, nil, nil)
	m.priceLists.EXPECT().ListTenantEntries(gomock.Any(), tenantEmail, []string{"Burkolás"}).Return(nil, nil)
	m.priceLists.EXPECT().ListGlobalEntries(gomock.Any(), []string{"Burkolás"}).Return(nil, nil)
	m.generator.EXPECT().EstimatePrices(gomock.Any(), gomock.Any()).Return(nil, errors.New("rate limited"))

	var captured *repository.OfferBundle
	m.works.EXPECT().CreateOfferBundle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *repository.OfferBundle) (*repository.OfferBundleResult, error) {
			captured = b
			return bundleResult(), nil
		})

	result := svc.Generate(context.Background(), GenerateRequest{TenantEmail: tenantEmail, UserInput: "burkolás"})
	if !result.Success {
		t.Fatalf("estimation failure must not fail the pipeline: %+v", result)
	}
	if len(captured.Items) != 0 {
		t.Errorf("items = %d, unpriced items must be absent", len(captured.Items))
	}
	if captured.TotalPrice != 0 {
		t.Errorf("total = %v, dropped items must not contribute", captured.TotalPrice)
	}
	// The custom item still shows up in the notes.
	if captured.Notes == nil || !strings.Contains(*captured.Notes, "Csempézés (egyedi tétel)") {
		t.Error("notes must still list the dropped custom item")
	}
}

func TestGeneratePersistFailureIsReportedInBand(t *testing.T) {
	svc, m := newPipeline(t)

	m.priceLists.EXPECT().ListTenantEntries(gomock.Any(), tenantEmail, gomock.Nil()).Return(nil, nil)
	m.priceLists.EXPECT().ListGlobalEntries(gomock.Any(), gomock.Nil()).Return(nil, nil)
	m.generator.EXPECT().GenerateOffer(gomock.Any(), gomock.Any()).
		Return(llm.OfferDraft{Title: "T", Location: "L", CustomerName: "C", EstimatedTime: "1-2 nap"}, nil, nil)
	m.priceLists.EXPECT().ListTenantEntries(gomock.Any(), tenantEmail, []string{}).Return(nil, nil)
	m.priceLists.EXPECT().ListGlobalEntries(gomock.Any(), []string{}).Return(nil, nil)
	m.works.EXPECT().CreateOfferBundle(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("constraint violation"))

	result := svc.Generate(context.Background(), GenerateRequest{TenantEmail: tenantEmail, UserInput: "festés"})
	if result.Success {
		t.Fatal("persist failure must surface in the envelope")
	}
	if !strings.Contains(result.Error, "constraint violation") {
		t.Errorf("error = %q", result.Error)
	}
}
