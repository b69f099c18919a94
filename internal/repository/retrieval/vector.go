// Package retrieval adapts the index store to the search orchestrator's
// backend contracts. Both adapters honor the filter selectivity estimate:
// selective filters are pushed into the index query, unselective ones are
// applied to the retrieved candidate set.
package retrieval

import (
	"context"
	"fmt"

	"github.com/streamhound/discovery/internal/db"
	"github.com/streamhound/discovery/internal/domain"
	"github.com/streamhound/discovery/internal/domain/search/filter"
	"github.com/streamhound/discovery/internal/domain/search/result"
)

// contentKeyPrefix prefixes content document keys in the index.
const contentKeyPrefix = "content:"

// VectorSearcher retrieves content by dense-vector similarity. It embeds
// the query text through the cached embedding chain, then runs KNN search.
type VectorSearcher struct {
	store db.Searcher
	embed domain.Embedder
	index string
}

// NewVectorSearcher creates a vector retrieval backend.
func NewVectorSearcher(store db.Searcher, embed domain.Embedder, index string) *VectorSearcher {
	return &VectorSearcher{store: store, embed: embed, index: index}
}

// Search returns content ranked by cosine similarity to the query.
func (s *VectorSearcher) Search(
	ctx context.Context, query string, f filter.Filters, topK int,
) ([]result.Hit, error) {
	embRes, err := s.embed.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("vectorize query: %w", err)
	}

	preFilter := f.ShouldPreFilter()
	res, err := s.store.SearchKNN(ctx, &db.KNNQuery{
		Index:        s.index,
		Vector:       embRes.Embedding,
		Filters:      f,
		PreFilter:    preFilter,
		K:            topK,
		ReturnFields: filterFields(f, preFilter),
	})
	if err != nil {
		return nil, fmt.Errorf("search knn: %w", err)
	}

	return entriesToHits(res.Entries, f, preFilter), nil
}
