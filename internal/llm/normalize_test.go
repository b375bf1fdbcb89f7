package llm

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func normalize(t *testing.T, in string) map[string]any {
	t.Helper()
	out, _, err := NormalizeOfferPayload([]byte(in), testLogger())
	if err != nil {
		t.Fatalf("NormalizeOfferPayload: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal normalized payload: %v", err)
	}
	return m
}

func TestNormalizeUnwrapsOfferEnvelope(t *testing.T) {
	m := normalize(t, `{"offer":{"title":"Fürdő felújítás","items":[]}}`)
	if m["title"] != "Fürdő felújítás" {
		t.Errorf("title = %v, want the unwrapped value", m["title"])
	}
	if _, ok := m["offer"]; ok {
		t.Error("envelope key must not survive")
	}
}

func TestNormalizeEstimatedTime(t *testing.T) {
	m := normalize(t, `{"estimatedTime":3,"items":[]}`)
	if m["estimatedTime"] != "3 nap" {
		t.Errorf("numeric estimatedTime = %v, want \"3 nap\"", m["estimatedTime"])
	}

	m = normalize(t, `{"estimatedTime":"  7-10 nap ","items":[]}`)
	if m["estimatedTime"] != "7-10 nap" {
		t.Errorf("string estimatedTime = %v, want trimmed", m["estimatedTime"])
	}

	m = normalize(t, `{"estimatedTime":null,"items":[]}`)
	if _, ok := m["estimatedTime"]; ok {
		t.Error("null estimatedTime must be dropped")
	}
}

func TestNormalizeItemQuantityString(t *testing.T) {
	m := normalize(t, `{"items":[{"task":"Falfestés","quantity":"12.5"}]}`)
	items := m["items"].([]any)
	item := items[0].(map[string]any)
	if item["quantity"] != 12.5 {
		t.Errorf("quantity = %v (%T), want 12.5", item["quantity"], item["quantity"])
	}
}

func TestNormalizeItemSourceDefaulting(t *testing.T) {
	m := normalize(t, `{"items":[
		{"task":"A","source":"tenant"},
		{"task":"B","customTask":true},
		{"task":"C","source":"bogus"}
	]}`)
	items := m["items"].([]any)

	if src := items[0].(map[string]any)["source"]; src != "tenant" {
		t.Errorf("valid source = %v, want tenant", src)
	}
	if src := items[1].(map[string]any)["source"]; src != "custom" {
		t.Errorf("customTask item source = %v, want custom", src)
	}
	if _, ok := items[2].(map[string]any)["source"]; ok {
		t.Error("invalid source on a non-custom item must be dropped")
	}
}

func TestNormalizeStripsUnknownKeys(t *testing.T) {
	out, dropped, err := NormalizeOfferPayload([]byte(
		`{"title":"T","confidence":0.9,"items":[{"task":"A","price":100}]}`,
	), testLogger())
	if err != nil {
		t.Fatalf("NormalizeOfferPayload: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["confidence"]; ok {
		t.Error("unknown top-level key must be removed")
	}
	item := m["items"].([]any)[0].(map[string]any)
	if _, ok := item["price"]; ok {
		t.Error("unknown item key must be removed")
	}
	if len(dropped) != 2 {
		t.Errorf("dropped = %v, want two entries", dropped)
	}
}

func TestNormalizeMissingItemsDefaultsToEmpty(t *testing.T) {
	m := normalize(t, `{"title":"T"}`)
	items, ok := m["items"].([]any)
	if !ok || len(items) != 0 {
		t.Errorf("items = %v, want an empty array", m["items"])
	}
}

func TestNormalizeQuestionsFiltered(t *testing.T) {
	m := normalize(t, `{"items":[],"questions":["Milyen csempe?",""," ",42]}`)
	qs := m["questions"].([]any)
	if len(qs) != 1 || qs[0] != "Milyen csempe?" {
		t.Errorf("questions = %v, want a single valid question", qs)
	}
}

func TestNormalizeRejectsNonJSON(t *testing.T) {
	if _, _, err := NormalizeOfferPayload([]byte("not json"), testLogger()); err == nil {
		t.Error("expected an error for a non-JSON payload")
	}
}

func TestApplyOfferDefaults(t *testing.T) {
	var d OfferDraft
	ApplyOfferDefaults(&d)
	if d.Title != "Új ajánlat" || d.Location != "Helyszín nincs megadva" ||
		d.CustomerName != "Új ügyfél" || d.EstimatedTime != "1-2 nap" {
		t.Errorf("defaults = %+v", d)
	}

	d = OfferDraft{Title: "Meglévő", Location: "Budapest", CustomerName: "Kiss Béla", EstimatedTime: "5 nap"}
	ApplyOfferDefaults(&d)
	if d.Title != "Meglévő" || d.Location != "Budapest" || d.CustomerName != "Kiss Béla" || d.EstimatedTime != "5 nap" {
		t.Errorf("populated fields must be preserved: %+v", d)
	}
}
