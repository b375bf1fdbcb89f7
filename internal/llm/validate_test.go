package llm

import "testing"

func TestOfferSchemaAcceptsNormalizedPayload(t *testing.T) {
	payload := []byte(`{
		"title": "Fürdő felújítás",
		"estimatedTime": "3-5 nap",
		"items": [
			{"task": "Falfestés", "category": "Festés", "unit": "m2", "quantity": 12, "source": "tenant", "customTask": false}
		],
		"questions": ["Milyen színű legyen?"]
	}`)
	if err := ValidateJSONAgainstSchema(BuildOfferJSONSchema(), payload); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
}

func TestOfferSchemaRejections(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"missing items", `{"title":"T"}`},
		{"item without task", `{"items":[{"category":"Festés"}]}`},
		{"bad source", `{"items":[{"task":"A","source":"vendor"}]}`},
		{"unknown top-level key", `{"items":[],"confidence":0.9}`},
		{"negative quantity", `{"items":[{"task":"A","quantity":-1}]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := ValidateJSONAgainstSchema(BuildOfferJSONSchema(), []byte(c.payload)); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestPriceListSchema(t *testing.T) {
	ok := []byte(`{"prices":[{"task":"Zuhanyzó","laborCost":0,"materialCost":150000}]}`)
	if err := ValidateJSONAgainstSchema(BuildPriceListJSONSchema(), ok); err != nil {
		t.Errorf("valid prices payload rejected: %v", err)
	}
	bad := []byte(`{"prices":[{"laborCost":1000}]}`)
	if err := ValidateJSONAgainstSchema(BuildPriceListJSONSchema(), bad); err == nil {
		t.Error("row without task must be rejected")
	}
}
