package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Zoli1212/awsflow/internal/entity"
)

// BuildOfferSystemPrompt fixes the output contract for the generation call:
// always a complete JSON offer, never a refusal, a mandatory four-sentence
// summary, and the tenant > global > custom catalog priority.
func BuildOfferSystemPrompt() string {
	return `Te egy felújítási ajánlatkészítő szakértő vagy. A felhasználó igényei alapján KÖTELEZŐEN egy teljes, részletes JSON formátumú ajánlatot készítesz.

**KRITIKUS SZABÁLYOK:**
1. MINDIG adj vissza TELJES ajánlatot, még ha hiányos az információ is
2. Ha valami nem tisztázott, adj vissza becslést ÉS add hozzá a "questions" részhez
3. SOHA ne add vissza: "További információ szükséges" - helyette MINDIG generálj ajánlatot a rendelkezésre álló adatok alapján
4. A "questions" rész KÖTELEZŐ, ha bármilyen információ hiányzik
5. Az "offerSummary" KÖTELEZŐ - pontosan 4 mondat magyarul

**TASK KATALÓGUS HASZNÁLATA - PRIORITÁSI SORREND:**
6. Ha van "===TASK KATALÓGUS PRIORITÁSI SORRENDBEN===" akkor KÖTELEZŐ ez a sorrend:
   a) ELŐSZÖR a "1. PRIORITÁS - TENANT SAJÁT TÉTELEK" listából válassz (source: "tenant")
   b) HA nincs megfelelő tenant tétel, AKKOR a "2. PRIORITÁS - GLOBÁLIS TÉTELEK" listából (source: "global")
   c) CSAK HA egyik listában sincs megfelelő, AKKOR használj egyedi tételt (customTask: true)
   - A válaszban add meg a "source" mezőt is: "tenant", "global", vagy "custom"
7. Ha "===NINCS TASK KATALÓGUS===" üzenet látható:
   - Szabadon generálhatsz task-okat a követelmények alapján
   - Adj meg reális kategóriákat, task neveket és egységeket
   - Minden task legyen "customTask": true, source: "custom"
   - Használj standard felújítási kategóriákat (pl. "Burkolás", "Festés", "Villanyszerelés", stb.)

**ANYAGÁRAK KEZELÉSE:**
8. Ha a követelményben szerepelnek anyagárak (pl. "Zuhanyzó 150000 Ft"), akkor KÖTELEZŐEN:
   - Hozz létre KÜLÖN tételeket az ANYAGOKRA (pl. "Zuhanyzó", "WC", "Kád") - ezek legyenek customTask: true
   - Hozz létre KÜLÖN tételeket a MUNKÁKRA (pl. "Zuhanyzó felszerelése") - ezeket a katalógusból válaszd
9. Ha "ügyfél által biztosított" szerepel, akkor azt az anyagot NEM kell beletenni az ajánlatba
10. Csempék esetén is hozz létre külön tételeket az anyagra és a ragasztásra

**IDŐBECSLÉS SZABÁLYOK:**
11. Az "estimatedTime" értéket a munka TÉNYLEGES mennyisége alapján becsüld meg:
    - Kis munka (1-5 m2 burkolás, 1-2 ajtó): "1-2 nap"
    - Közepes munka (10-20 m2 burkolás, 1 fürdőszoba): "3-5 nap"
    - Nagyobb munka (30-50 m2 burkolás, komplett fürdőszoba): "7-10 nap"
    - Nagy munka (teljes lakás felújítás, 60+ m2): "14-21 nap"
    - Számítsd bele a szárítási, száradási időket is!
12. NE használj fix "10 nap" értéket minden munkára - MINDIG a munka mennyiségét vedd figyelembe!

**VÁLASZ FORMÁTUM (szigorúan JSON):**
{
  "offer": {
    "title": "Rövid összefoglaló cím",
    "location": "Helyszín",
    "customerName": "Ügyfél neve (ha van)",
    "estimatedTime": "Becsült idő napokban (pl. '3-5 nap', '7-10 nap', '14-21 nap')",
    "offerSummary": "4 mondatos összefoglaló",
    "items": [
      {
        "task": "Pontos task név a katalógusból",
        "category": "Kategória",
        "unit": "egység",
        "quantity": 0,
        "source": "tenant|global|custom",
        "customTask": false,
        "customReason": "Indoklás ha customTask=true"
      }
    ],
    "questions": [
      "Tisztázandó kérdés 1?",
      "Tisztázandó kérdés 2?"
    ]
  }
}

Válaszolj CSAK érvényes JSON-nal, semmi mással!`
}

// ComposeUserInput prefixes the raw requirement text and, when a prior item
// list exists, appends it with a no-duplicates instruction.
func ComposeUserInput(userInput string, existingItems []entity.OfferItem) string {
	if len(existingItems) == 0 {
		return userInput
	}
	b, err := json.MarshalIndent(existingItems, "", "  ")
	if err != nil {
		return userInput
	}
	return fmt.Sprintf("%s\n\nMeglévő tételek (ne vegyél fel ismétlődést):\n%s", userInput, string(b))
}

// AppendCatalogSection attaches the priority-ordered task catalog to the
// composed input, or the free-invention marker when both tiers are empty.
func AppendCatalogSection(input string, tenant, global []entity.TaskRef) string {
	if len(tenant) == 0 && len(global) == 0 {
		return input + "\n\n===NINCS TASK KATALÓGUS===\nSzabadon generálhatsz task-okat a követelmények alapján. Adj meg reális kategóriákat, task neveket és egységeket."
	}

	var b strings.Builder
	b.WriteString(input)
	b.WriteString("\n\n===TASK KATALÓGUS PRIORITÁSI SORRENDBEN===\n")
	b.WriteString("FONTOS: Válassz az alábbi sorrendben:\n")
	b.WriteString("1. PRIORITÁS - TENANT SAJÁT TÉTELEK (ezeket preferáld!):\n")
	if len(tenant) > 0 {
		b.WriteString(mustIndentJSON(tenant))
	} else {
		b.WriteString("(nincs tenant-specifikus tétel)\n")
	}
	b.WriteString("\n\n2. PRIORITÁS - GLOBÁLIS TÉTELEK (ha nincs megfelelő tenant tétel):\n")
	if len(global) > 0 {
		b.WriteString(mustIndentJSON(global))
	} else {
		b.WriteString("(nincs globális tétel)\n")
	}
	b.WriteString("\n\n3. PRIORITÁS - EGYEDI TÉTEL (customTask: true) - CSAK ha sem tenant, sem global listában nincs megfelelő!")
	return b.String()
}

// EstimationSystemPrompt is the system message for the price-estimation call.
const EstimationSystemPrompt = "Te egy felújítási árbecslő szakértő vagy. Adj meg reális aktuális budapesti árakat."

// BuildPriceEstimationPrompt asks the cheaper model to price the items that
// had no catalog match. Quantity, unit and reasoning are forwarded verbatim.
func BuildPriceEstimationPrompt(items []ProposedItem) string {
	type estimateItem struct {
		Task     string  `json:"task"`
		Unit     string  `json:"unit"`
		Quantity float64 `json:"quantity"`
		Reason   string  `json:"reason,omitempty"`
	}
	rows := make([]estimateItem, len(items))
	for i, it := range items {
		rows[i] = estimateItem{
			Task:     it.Task,
			Unit:     it.Unit,
			Quantity: it.Quantity,
			Reason:   it.CustomReason,
		}
	}

	return fmt.Sprintf(`Adj meg reális budapesti felújítási árakat az alábbi egyedi tételekhez. Válaszolj CSAK JSON formátumban:

%s

FONTOS SZABÁLYOK:
1. Ha a task nevében szerepel ár (pl. "Zuhanyzó 150000", "WC 50000"), akkor:
   - A materialCost legyen a megadott ár
   - A laborCost legyen 0 (mivel ez csak az anyag beszerzése)
2. Ha a task egy anyag (pl. "Zuhanyzó", "WC", "Kád", "Csempe") és nincs ár megadva:
   - Becsüld meg a materialCost-ot
   - A laborCost legyen 0
3. Egyéb custom tételek esetén adj meg reális munkadíjat és anyagköltséget

Válasz formátum:
{
  "prices": [
    {
      "task": "Feladat neve",
      "laborCost": 0,
      "materialCost": 0
    }
  ]
}`, mustIndentJSON(rows))
}

func mustIndentJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(b)
}
