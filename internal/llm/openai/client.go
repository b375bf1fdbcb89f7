package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Zoli1212/awsflow/internal/llm"
)

const (
	generationMaxTokens = 4000
	estimationMaxTokens = 1000
)

var _ llm.OfferGenerator = (*Client)(nil)

// GenerateOffer implements llm.OfferGenerator using chat/completions.
// Rate-limited attempts are retried per the configured backoff policy;
// any other failure aborts the call.
func (c *Client) GenerateOffer(ctx context.Context, req llm.GenerateRequest) (llm.OfferDraft, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.generate.start",
		"req_id", rid,
		"model", c.cfg.GenerationModel,
		"temp", c.cfg.Temperature,
		"input_len", len(req.UserInput),
	)

	body := map[string]any{
		"model": c.cfg.GenerationModel,
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildOfferSystemPrompt()},
			{"role": "user", "content": req.UserInput},
		},
		"max_tokens":  generationMaxTokens,
		"temperature": c.cfg.Temperature,
	}

	content, err := c.completeWithRetry(ctx, rid, body)
	if err != nil {
		c.log.Error("llm.generate.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.OfferDraft{}, nil, err
	}

	cleaned := []byte(llm.StripFences(content))

	normalized, _, err := llm.NormalizeOfferPayload(cleaned, c.log)
	if err != nil {
		c.log.Error("llm.generate.parse_error",
			"req_id", rid, "error", err, "content_len", len(cleaned),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.OfferDraft{}, cleaned, fmt.Errorf("parse model response: %w", err)
	}

	if err := llm.ValidateJSONAgainstSchema(llm.BuildOfferJSONSchema(), normalized); err != nil {
		c.log.Error("llm.generate.schema_validation_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.OfferDraft{}, normalized, fmt.Errorf("schema validation failed: %w", err)
	}

	var out llm.OfferDraft
	if err := json.Unmarshal(normalized, &out); err != nil {
		return llm.OfferDraft{}, normalized, fmt.Errorf("unmarshal draft: %w", err)
	}
	llm.ApplyOfferDefaults(&out)

	c.log.Info("llm.generate.ok",
		"req_id", rid,
		"items", len(out.Items),
		"questions", len(out.Questions),
		"has_summary", out.OfferSummary != "",
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, normalized, nil
}

// EstimatePrices prices catalog misses with the cheaper model. No retry:
// the caller degrades gracefully when this fails.
func (c *Client) EstimatePrices(ctx context.Context, items []llm.ProposedItem) ([]llm.PriceEstimate, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.estimate.start",
		"req_id", rid,
		"model", c.cfg.EstimationModel,
		"items", len(items),
	)

	body := map[string]any{
		"model": c.cfg.EstimationModel,
		"messages": []map[string]any{
			{"role": "system", "content": llm.EstimationSystemPrompt},
			{"role": "user", "content": llm.BuildPriceEstimationPrompt(items)},
		},
		"max_tokens":  estimationMaxTokens,
		"temperature": c.cfg.Temperature,
	}

	content, err := c.complete(ctx, body)
	if err != nil {
		c.log.Warn("llm.estimate.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	cleaned := []byte(llm.StripFences(content))
	if err := llm.ValidateJSONAgainstSchema(llm.BuildPriceListJSONSchema(), cleaned); err != nil {
		c.log.Warn("llm.estimate.schema_validation_failed", "req_id", rid, "error", err)
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var parsed struct {
		Prices []llm.PriceEstimate `json:"prices"`
	}
	if err := json.Unmarshal(cleaned, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal prices: %w", err)
	}

	c.log.Info("llm.estimate.ok",
		"req_id", rid,
		"prices", len(parsed.Prices),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return parsed.Prices, nil
}

// completeWithRetry wraps complete with the 429 retry policy.
func (c *Client) completeWithRetry(ctx context.Context, rid string, body map[string]any) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= c.cfg.Backoff.Attempts; attempt++ {
		content, err := c.complete(ctx, body)
		if err == nil {
			return content, nil
		}
		lastErr = err

		if !llm.IsRateLimited(err) || attempt == c.cfg.Backoff.Attempts {
			return "", err
		}

		delay := c.cfg.Backoff.Delay(attempt)
		c.log.Warn("llm.generate.rate_limited",
			"req_id", rid,
			"attempt", attempt,
			"retry_in", delay.String(),
		)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}
	return "", lastErr
}

// complete runs one chat/completions call and extracts the message content.
func (c *Client) complete(ctx context.Context, body map[string]any) (string, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{
		"Authorization": "Bearer " + c.cfg.APIKey,
	}

	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.log)
	if err != nil {
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no choices in openai response")
	}
	return strings.TrimSpace(cc.Choices[0].Message.Content), nil
}
