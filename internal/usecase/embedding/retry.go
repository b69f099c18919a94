// Package embedding layers retry, normalization, and backoff policy over a
// raw embedding provider.
package embedding

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/streamhound/discovery/internal/domain"
	"github.com/streamhound/discovery/internal/domain/vector"
	"github.com/streamhound/discovery/internal/metrics"
)

// Retry policy. One initial attempt plus two retries, with the delay
// doubling after each failure.
const (
	MaxAttempts    = 3
	InitialBackoff = 100 * time.Millisecond
)

// Backoff returns the delay to wait after the given failed 1-based attempt:
// 100ms after the first, 200ms after the second. Pure, so the schedule is
// testable without real waiting.
func Backoff(attempt int) time.Duration {
	if attempt < 1 {
		return InitialBackoff
	}
	return InitialBackoff << (attempt - 1)
}

// Sleeper waits for the given duration or until the context is cancelled.
// Injected so tests can run the retry loop without real delays.
type Sleeper func(ctx context.Context, d time.Duration) error

// DefaultSleeper waits with time.After, honoring context cancellation.
func DefaultSleeper(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// RetryingEmbedder wraps a provider with bounded exponential-backoff retry
// and L2-normalizes successful results. Failures never reach the cache
// layer above it, so nothing partial is ever cached.
type RetryingEmbedder struct {
	inner  domain.Embedder
	model  string
	sleep  Sleeper
	logger *zap.Logger
}

// NewRetryingEmbedder creates the retry decorator. A nil sleeper uses
// DefaultSleeper.
func NewRetryingEmbedder(inner domain.Embedder, model string, sleep Sleeper, logger *zap.Logger) *RetryingEmbedder {
	if sleep == nil {
		sleep = DefaultSleeper
	}
	return &RetryingEmbedder{inner: inner, model: model, sleep: sleep, logger: logger}
}

// Embed calls the provider up to MaxAttempts times. A success
// short-circuits remaining retries and returns the unit-normalized vector
// (a zero vector passes through unchanged). Exhausted retries surface
// domain.ErrEmbeddingUnavailable carrying the last underlying error.
func (r *RetryingEmbedder) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	var lastErr error

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		result, err := r.inner.Embed(ctx, text)
		if err == nil {
			result.Embedding = vector.Normalize(result.Embedding)
			return result, nil
		}
		lastErr = err

		// A cancelled request must not keep hammering the provider.
		if ctx.Err() != nil {
			return domain.EmbeddingResult{}, fmt.Errorf("%w: %w", domain.ErrEmbeddingUnavailable, ctx.Err())
		}

		if attempt < MaxAttempts {
			delay := Backoff(attempt)
			r.logger.Warn("Embedding attempt failed, retrying",
				zap.String("model", r.model),
				zap.Int("attempt", attempt),
				zap.Duration("backoff", delay),
				zap.Error(err),
			)
			metrics.EmbeddingRetriesTotal.WithLabelValues(r.model).Inc()

			if err := r.sleep(ctx, delay); err != nil {
				return domain.EmbeddingResult{}, fmt.Errorf("%w: %w", domain.ErrEmbeddingUnavailable, err)
			}
		}
	}

	return domain.EmbeddingResult{}, fmt.Errorf("%w: after %d attempts: %w",
		domain.ErrEmbeddingUnavailable, MaxAttempts, lastErr)
}
