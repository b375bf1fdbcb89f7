package llm

import (
	"strings"
	"testing"

	"github.com/Zoli1212/awsflow/internal/entity"
)

func TestComposeUserInput(t *testing.T) {
	if got := ComposeUserInput("fürdő felújítás", nil); got != "fürdő felújítás" {
		t.Errorf("without existing items the input must pass through, got %q", got)
	}

	items := []entity.OfferItem{{Name: "Falfestés", Quantity: 10, Unit: "m2"}}
	got := ComposeUserInput("fürdő felújítás", items)
	if !strings.HasPrefix(got, "fürdő felújítás") {
		t.Error("requirement text must come first")
	}
	if !strings.Contains(got, "Meglévő tételek (ne vegyél fel ismétlődést):") {
		t.Error("existing-items instruction missing")
	}
	if !strings.Contains(got, "Falfestés") {
		t.Error("existing item list missing")
	}
}

func TestAppendCatalogSectionPriorityOrder(t *testing.T) {
	tenant := []entity.TaskRef{{Category: "Festés", Task: "Falfestés", Unit: "m2", Source: "tenant"}}
	global := []entity.TaskRef{{Category: "Burkolás", Task: "Csempézés", Unit: "m2", Source: "global"}}

	got := AppendCatalogSection("input", tenant, global)
	if !strings.Contains(got, "===TASK KATALÓGUS PRIORITÁSI SORRENDBEN===") {
		t.Fatal("catalog marker missing")
	}

	tenantIdx := strings.Index(got, "1. PRIORITÁS - TENANT SAJÁT TÉTELEK")
	globalIdx := strings.Index(got, "2. PRIORITÁS - GLOBÁLIS TÉTELEK")
	customIdx := strings.Index(got, "3. PRIORITÁS - EGYEDI TÉTEL")
	if tenantIdx < 0 || globalIdx < 0 || customIdx < 0 {
		t.Fatal("one of the priority blocks is missing")
	}
	if !(tenantIdx < globalIdx && globalIdx < customIdx) {
		t.Error("priority blocks out of order")
	}
	if strings.Index(got, "Falfestés") > globalIdx {
		t.Error("tenant tasks must be listed in the tenant block")
	}
}

func TestAppendCatalogSectionEmpty(t *testing.T) {
	got := AppendCatalogSection("input", nil, nil)
	if !strings.Contains(got, "===NINCS TASK KATALÓGUS===") {
		t.Error("free-invention marker missing for an empty catalog")
	}
	if strings.Contains(got, "PRIORITÁS") {
		t.Error("priority blocks must not appear without catalog rows")
	}
}

func TestBuildPriceEstimationPromptForwardsFields(t *testing.T) {
	items := []ProposedItem{
		{Task: "Zuhanyzó 150000", Unit: "db", Quantity: 1, CustomReason: "anyagár a szövegben"},
	}
	got := BuildPriceEstimationPrompt(items)
	for _, want := range []string{`"Zuhanyzó 150000"`, `"db"`, "anyagár a szövegben", `"prices"`, "FONTOS SZABÁLYOK"} {
		if !strings.Contains(got, want) {
			t.Errorf("estimation prompt missing %q", want)
		}
	}
}

func TestOfferSystemPromptContract(t *testing.T) {
	got := BuildOfferSystemPrompt()
	for _, want := range []string{
		"**KRITIKUS SZABÁLYOK:**",
		"offerSummary",
		"questions",
		"tenant|global|custom",
		"===NINCS TASK KATALÓGUS===",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}
