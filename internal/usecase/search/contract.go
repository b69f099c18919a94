package search

import (
	"context"

	"github.com/streamhound/discovery/internal/domain/intent"
	"github.com/streamhound/discovery/internal/domain/search/filter"
	"github.com/streamhound/discovery/internal/domain/search/result"
)

// Retriever is a single retrieval backend: query plus optional filters in,
// ranked hits out. Vector and keyword search both satisfy it; their raw
// scores are not comparable across implementations.
type Retriever interface {
	Search(ctx context.Context, query string, f filter.Filters, topK int) ([]result.Hit, error)
}

// IntentParser turns free text into a structured intent. It never fails;
// the deterministic fallback makes the operation total.
type IntentParser interface {
	Parse(ctx context.Context, query string) intent.Parsed
}
