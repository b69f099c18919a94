package retrieval

import (
	"context"

	"github.com/streamhound/discovery/internal/db"
	"github.com/streamhound/discovery/internal/domain"
)

type mockStore struct {
	knnResult  *db.SearchResult
	knnErr     error
	bm25Result *db.SearchResult
	bm25Err    error
	lastKNN    *db.KNNQuery
	lastText   *db.TextQuery
}

func (m *mockStore) SearchKNN(_ context.Context, q *db.KNNQuery) (*db.SearchResult, error) {
	m.lastKNN = q
	if m.knnErr != nil {
		return nil, m.knnErr
	}
	if m.knnResult == nil {
		return &db.SearchResult{}, nil
	}
	return m.knnResult, nil
}

func (m *mockStore) SearchBM25(_ context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	m.lastText = q
	if m.bm25Err != nil {
		return nil, m.bm25Err
	}
	if m.bm25Result == nil {
		return &db.SearchResult{}, nil
	}
	return m.bm25Result, nil
}

type mockEmbedder struct {
	vec []float32
	err error
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	return domain.EmbeddingResult{Embedding: m.vec}, nil
}
