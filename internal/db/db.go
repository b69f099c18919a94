// Package db defines the narrow storage contract the retrieval backends
// and the shared embedding cache are built on.
package db

import (
	"context"
	"time"

	"github.com/streamhound/discovery/internal/domain/search/filter"
)

// Content index field names. The ingestion pipeline (out of scope here)
// writes documents with this schema.
const (
	FieldTitle     = "title"
	FieldOverview  = "overview"
	FieldGenres    = "genres"
	FieldPlatforms = "platforms"
	FieldYear      = "year"
	FieldRating    = "rating"
	FieldVector    = "vector"
)

// KV is the key-value contract used by the embedding cache.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Searcher is the full-text/vector index contract.
type Searcher interface {
	SearchKNN(ctx context.Context, q *KNNQuery) (*SearchResult, error)
	SearchBM25(ctx context.Context, q *TextQuery) (*SearchResult, error)
}

// Store is the complete storage contract.
type Store interface {
	KV
	Searcher
	Ping(ctx context.Context) error
	WaitForReady(ctx context.Context, timeout time.Duration) error
	Close()
}

// KNNQuery is a vector similarity search request. Filters are compiled
// into the index query only when PreFilter is set.
type KNNQuery struct {
	Index        string
	Vector       []float32
	Filters      filter.Filters
	PreFilter    bool
	K            int
	ReturnFields []string
}

// TextQuery is a lexical search request. Filters are compiled into the
// index query only when PreFilter is set.
type TextQuery struct {
	Index        string
	Query        string
	Filters      filter.Filters
	PreFilter    bool
	TopK         int
	ReturnFields []string
}

// SearchEntry is a single index hit with its backend-native score and any
// requested fields.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}

// SearchResult is an ordered index response.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}
