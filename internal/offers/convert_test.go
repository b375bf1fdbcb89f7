package offers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Zoli1212/awsflow/internal/repository"
)

func TestConvertKnownAndNewItems(t *testing.T) {
	svc, m := newPipeline(t)

	m.priceLists.EXPECT().TenantTaskExists(gomock.Any(), tenantEmail, "Falfestés").Return(true, nil)
	m.priceLists.EXPECT().TenantTaskExists(gomock.Any(), tenantEmail, "Zuhanykabin beépítés").Return(false, nil)

	var captured *repository.OfferBundle
	m.works.EXPECT().CreateOfferBundle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *repository.OfferBundle) (*repository.OfferBundleResult, error) {
			captured = b
			return bundleResult(), nil
		})

	result, err := svc.Convert(context.Background(), ConvertRequest{
		TenantEmail: tenantEmail,
		Title:       "Fürdő felújítás",
		Location:    "Budapest",
		Description: "Régi ajánlat szövege.",
		TotalPrice:  100000.6,
		Items: []ConvertItem{
			{Name: "** Falfestés", Quantity: 10, Unit: "m2", UnitPrice: 5000.4, WorkTotal: 50004.4, TotalPrice: 50004.4},
			{Name: "Zuhanykabin beépítés", Quantity: 1, Unit: "db", UnitPrice: 30000, MaterialUnitPrice: 20000.5, WorkTotal: 30000, MaterialTotal: 20000.5, TotalPrice: 50000.5},
		},
		Notes: []string{"korábbi megjegyzés"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.WorkID == "" || result.RequirementID == "" || result.OfferID == "" {
		t.Errorf("result = %+v", result)
	}

	if len(captured.Items) != 2 {
		t.Fatalf("items = %d", len(captured.Items))
	}
	// A cleaned name that matches the tenant price list keeps its original
	// name and is not flagged as new.
	known := captured.Items[0]
	if known.Name != "** Falfestés" || known.New {
		t.Errorf("known item = %+v", known)
	}
	if known.UnitPrice != 5000 || known.WorkTotal != 50004 || known.TotalPrice != 50004 {
		t.Errorf("known item rounding = %+v", known)
	}
	// A missing one is renamed to the cleaned form and flagged.
	added := captured.Items[1]
	if added.Name != "Zuhanykabin beépítés" || !added.New {
		t.Errorf("new item = %+v", added)
	}
	if added.MaterialUnitPrice != 20001 || added.MaterialTotal != 20001 || added.TotalPrice != 50001 {
		t.Errorf("new item rounding = %+v", added)
	}

	// Aggregates sum the rounded per-item values; the offer total comes from
	// the request, rounded.
	if captured.WorkTotal != 80004 || captured.MaterialTotal != 20001 {
		t.Errorf("aggregates = work %v material %v", captured.WorkTotal, captured.MaterialTotal)
	}
	if captured.TotalPrice != 100001 {
		t.Errorf("total = %v", captured.TotalPrice)
	}

	if captured.WorkTitle != "Fürdő felújítás - Budapest" {
		t.Errorf("work title = %q", captured.WorkTitle)
	}
	if captured.CustomerName != "Új ügyfél" || captured.Duration != "1-2 nap" {
		t.Errorf("defaults = %q / %q", captured.CustomerName, captured.Duration)
	}
	if captured.RequirementDescription != "Meglévő ajánlatból konvertálva.\n\nRégi ajánlat szövege." {
		t.Errorf("requirement description = %q", captured.RequirementDescription)
	}
	if captured.QuestionCount != 0 {
		t.Errorf("question count = %d", captured.QuestionCount)
	}
	if !captured.IsConvertedFromExisting {
		t.Error("conversion flag not set")
	}
	if !captured.ValidUntil.IsZero() {
		t.Errorf("validUntil = %v, conversions carry no expiry", captured.ValidUntil)
	}
	if captured.Notes == nil ||
		!strings.Contains(*captured.Notes, "=== Új tételek (még nincsenek a vállalkozói árlistában) ===") ||
		!strings.Contains(*captured.Notes, "- Zuhanykabin beépítés") {
		t.Errorf("notes = %v", captured.Notes)
	}
}

func TestConvertWithoutLocationKeepsTitle(t *testing.T) {
	svc, m := newPipeline(t)

	var captured *repository.OfferBundle
	m.works.EXPECT().CreateOfferBundle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *repository.OfferBundle) (*repository.OfferBundleResult, error) {
			captured = b
			return bundleResult(), nil
		})

	_, err := svc.Convert(context.Background(), ConvertRequest{
		TenantEmail:   tenantEmail,
		Title:         "Festés",
		CustomerName:  "Nagy Anna",
		EstimatedTime: "3-5 nap",
	})
	if err != nil {
		t.Fatal(err)
	}
	if captured.WorkTitle != "Festés" {
		t.Errorf("work title = %q", captured.WorkTitle)
	}
	if captured.CustomerName != "Nagy Anna" || captured.Duration != "3-5 nap" {
		t.Errorf("provided values overridden: %q / %q", captured.CustomerName, captured.Duration)
	}
	if captured.Notes != nil {
		t.Errorf("notes = %q, want none for an empty conversion", *captured.Notes)
	}
}

func TestConvertValidatesInput(t *testing.T) {
	svc, _ := newPipeline(t)

	_, err := svc.Convert(context.Background(), ConvertRequest{TenantEmail: "nem-email", Title: "x"})
	if err == nil {
		t.Fatal("invalid email must be rejected")
	}
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("err = %v, want InvalidArgument", err)
	}

	_, err = svc.Convert(context.Background(), ConvertRequest{TenantEmail: tenantEmail})
	if err == nil {
		t.Fatal("missing title must be rejected")
	}
}

func TestConvertPropagatesFailures(t *testing.T) {
	svc, m := newPipeline(t)

	m.priceLists.EXPECT().TenantTaskExists(gomock.Any(), tenantEmail, "Falfestés").
		Return(false, errors.New("connection reset"))

	_, err := svc.Convert(context.Background(), ConvertRequest{
		TenantEmail: tenantEmail,
		Title:       "Festés",
		Items:       []ConvertItem{{Name: "Falfestés", Quantity: 1}},
	})
	if err == nil || !strings.Contains(err.Error(), "connection reset") {
		t.Errorf("err = %v", err)
	}

	m.works.EXPECT().CreateOfferBundle(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("tx aborted"))
	_, err = svc.Convert(context.Background(), ConvertRequest{TenantEmail: tenantEmail, Title: "Festés"})
	if err == nil || !strings.Contains(err.Error(), "tx aborted") {
		t.Errorf("err = %v", err)
	}
}
