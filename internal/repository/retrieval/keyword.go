package retrieval

import (
	"context"
	"fmt"

	"github.com/streamhound/discovery/internal/db"
	"github.com/streamhound/discovery/internal/domain/search/filter"
	"github.com/streamhound/discovery/internal/domain/search/result"
)

// KeywordSearcher retrieves content by lexical (BM25) relevance over title
// and overview text.
type KeywordSearcher struct {
	store db.Searcher
	index string
}

// NewKeywordSearcher creates a keyword retrieval backend.
func NewKeywordSearcher(store db.Searcher, index string) *KeywordSearcher {
	return &KeywordSearcher{store: store, index: index}
}

// Search returns content ranked by the backend's lexical score.
func (s *KeywordSearcher) Search(
	ctx context.Context, query string, f filter.Filters, topK int,
) ([]result.Hit, error) {
	preFilter := f.ShouldPreFilter()
	res, err := s.store.SearchBM25(ctx, &db.TextQuery{
		Index:        s.index,
		Query:        query,
		Filters:      f,
		PreFilter:    preFilter,
		TopK:         topK,
		ReturnFields: filterFields(f, preFilter),
	})
	if err != nil {
		return nil, fmt.Errorf("search bm25: %w", err)
	}

	return entriesToHits(res.Entries, f, preFilter), nil
}
