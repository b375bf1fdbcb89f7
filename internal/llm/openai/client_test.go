package openai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Zoli1212/awsflow/internal/llm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func chatReply(t *testing.T, w http.ResponseWriter, content string) {
	t.Helper()
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		t.Fatalf("encode reply: %v", err)
	}
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Backoff: FixedDelay(2, time.Millisecond),
	}, testLogger())
}

func TestGenerateOfferParsesFencedEnvelope(t *testing.T) {
	content := "```json\n" + `{
		"offer": {
			"title": "Fürdő felújítás",
			"estimatedTime": 4,
			"items": [
				{"task": "Falfestés", "category": "Festés", "unit": "m2", "quantity": "12", "source": "tenant"}
			],
			"questions": ["Milyen csempe?"]
		}
	}` + "\n```"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		chatReply(t, w, content)
	}))
	defer srv.Close()

	draft, raw, err := newTestClient(srv.URL).GenerateOffer(context.Background(), llm.GenerateRequest{UserInput: "fürdő"})
	if err != nil {
		t.Fatalf("GenerateOffer: %v", err)
	}
	if draft.Title != "Fürdő felújítás" {
		t.Errorf("title = %q", draft.Title)
	}
	if draft.EstimatedTime != "4 nap" {
		t.Errorf("estimated time = %q, want \"4 nap\"", draft.EstimatedTime)
	}
	if draft.Location != "Helyszín nincs megadva" || draft.CustomerName != "Új ügyfél" {
		t.Errorf("defaults not applied: %+v", draft)
	}
	if len(draft.Items) != 1 || draft.Items[0].Quantity != 12 || draft.Items[0].Source != "tenant" {
		t.Errorf("items = %+v", draft.Items)
	}
	if len(raw) == 0 {
		t.Error("raw normalized payload missing")
	}
}

func TestGenerateOfferRetriesOnRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		chatReply(t, w, `{"items":[]}`)
	}))
	defer srv.Close()

	draft, _, err := newTestClient(srv.URL).GenerateOffer(context.Background(), llm.GenerateRequest{UserInput: "x"})
	if err != nil {
		t.Fatalf("GenerateOffer: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
	if draft.Title != "Új ajánlat" {
		t.Errorf("title = %q", draft.Title)
	}
}

func TestGenerateOfferRateLimitExhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).GenerateOffer(context.Background(), llm.GenerateRequest{UserInput: "x"})
	if err == nil {
		t.Fatal("expected an error after exhausting retries")
	}
	if !llm.IsRateLimited(err) {
		t.Errorf("error = %v, want a rate-limit error", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want exactly the configured attempts", got)
	}
}

func TestGenerateOfferNoRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).GenerateOffer(context.Background(), llm.GenerateRequest{UserInput: "x"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, a non-429 failure must not be retried", got)
	}
}

func TestGenerateOfferRejectsInvalidPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		chatReply(t, w, `{"items":[{"category":"Festés"}]}`)
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).GenerateOffer(context.Background(), llm.GenerateRequest{UserInput: "x"})
	if err == nil {
		t.Fatal("an item without a task must fail schema validation")
	}
}

func TestEstimatePrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		chatReply(t, w, "```json\n"+`{"prices":[{"task":"Zuhanyzó","laborCost":0,"materialCost":150000}]}`+"\n```")
	}))
	defer srv.Close()

	prices, err := newTestClient(srv.URL).EstimatePrices(context.Background(), []llm.ProposedItem{{Task: "Zuhanyzó"}})
	if err != nil {
		t.Fatalf("EstimatePrices: %v", err)
	}
	if len(prices) != 1 || prices[0].MaterialCost != 150000 || prices[0].LaborCost != 0 {
		t.Errorf("prices = %+v", prices)
	}
}

func TestEstimatePricesNoRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).EstimatePrices(context.Background(), []llm.ProposedItem{{Task: "X"}}); err == nil {
		t.Fatal("expected an error")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, estimation must not retry", got)
	}
}
