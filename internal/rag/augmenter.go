package rag

import (
	"context"
	"log/slog"
)

// Augmenter enriches the composed instruction with retrieved context before
// it is sent to the model. Implementations live outside this repository;
// the pipeline only depends on the interface.
type Augmenter interface {
	// Augment receives the composed instruction and the raw user input and
	// returns the augmented instruction.
	Augment(ctx context.Context, composed, raw string) (string, error)
}

// Enhance applies the augmenter when the feature flag is on. An augmenter
// failure falls back to the un-augmented input; the pipeline never fails
// because retrieval did.
func Enhance(ctx context.Context, aug Augmenter, enabled bool, composed, raw string, logger *slog.Logger) string {
	if !enabled || aug == nil {
		return composed
	}
	out, err := aug.Augment(ctx, composed, raw)
	if err != nil {
		logger.Warn("rag.enhance_failed", "error", err)
		return composed
	}
	return out
}

// Noop passes the instruction through unchanged.
type Noop struct{}

func (Noop) Augment(_ context.Context, composed, _ string) (string, error) {
	return composed, nil
}
