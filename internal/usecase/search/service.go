// Package search orchestrates hybrid retrieval: intent parsing, concurrent
// vector and keyword fan-out, weighted Reciprocal Rank Fusion, pagination.
package search

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/streamhound/discovery/internal/domain"
	"github.com/streamhound/discovery/internal/domain/intent"
	"github.com/streamhound/discovery/internal/domain/search/request"
	"github.com/streamhound/discovery/internal/domain/search/result"
	"github.com/streamhound/discovery/internal/logger"
	"github.com/streamhound/discovery/internal/metrics"
)

// DefaultCandidateLimit is how many candidates each backend is asked for
// before fusion.
const DefaultCandidateLimit = 100

// Response is the assembled search outcome: one page of fused results plus
// the provenance a client needs to explain the ranking.
type Response struct {
	Results      []result.Result
	TotalCount   int
	Page         int
	PageSize     int
	QueryParsed  intent.Parsed
	SearchTimeMS int64
}

// Service is the hybrid search orchestrator.
type Service struct {
	intents        IntentParser
	vector         Retriever
	keyword        Retriever
	fusion         FusionConfig
	candidateLimit int
}

// New creates a hybrid search service. candidateLimit <= 0 takes the
// default.
func New(
	intents IntentParser, vector, keyword Retriever,
	fusion FusionConfig, candidateLimit int,
) *Service {
	if candidateLimit <= 0 {
		candidateLimit = DefaultCandidateLimit
	}
	return &Service{
		intents:        intents,
		vector:         vector,
		keyword:        keyword,
		fusion:         fusion,
		candidateLimit: candidateLimit,
	}
}

// Search runs the full hybrid pipeline for an already-validated request.
// Both backends run concurrently; either failing aborts the search with a
// RetrievalError naming the backend. Zero fused results is a valid empty
// response, and a page past the end yields an empty slice.
func (s *Service) Search(ctx context.Context, req *request.Request) (*Response, error) {
	started := time.Now()

	parsed := s.intents.Parse(ctx, req.Query())

	var vectorHits, keywordHits []result.Hit

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hits, err := s.vector.Search(gctx, req.Query(), req.Filters(), s.candidateLimit)
		if err != nil {
			metrics.BackendErrorsTotal.WithLabelValues(domain.BackendVector).Inc()
			return domain.NewRetrievalError(domain.BackendVector, err)
		}
		vectorHits = hits
		return nil
	})
	g.Go(func() error {
		hits, err := s.keyword.Search(gctx, req.Query(), req.Filters(), s.candidateLimit)
		if err != nil {
			metrics.BackendErrorsTotal.WithLabelValues(domain.BackendKeyword).Inc()
			return domain.NewRetrievalError(domain.BackendKeyword, err)
		}
		keywordHits = hits
		return nil
	})
	if err := g.Wait(); err != nil {
		metrics.SearchDuration.WithLabelValues("error").Observe(time.Since(started).Seconds())
		return nil, err
	}

	ranked := fuseRRF(vectorHits, keywordHits, s.fusion)
	total := len(ranked)

	page := paginate(ranked, req.Page(), req.PageSize())

	elapsed := time.Since(started)
	metrics.SearchDuration.WithLabelValues("ok").Observe(elapsed.Seconds())
	metrics.SearchResultsTotal.Observe(float64(total))

	logger.FromContext(ctx).Debug("hybrid search complete",
		zap.Int("vector_hits", len(vectorHits)),
		zap.Int("keyword_hits", len(keywordHits)),
		zap.Int("fused_total", total),
		zap.Float64("intent_confidence", parsed.Confidence()),
		zap.Duration("elapsed", elapsed),
	)

	return &Response{
		Results:      page,
		TotalCount:   total,
		Page:         req.Page(),
		PageSize:     req.PageSize(),
		QueryParsed:  parsed,
		SearchTimeMS: elapsed.Milliseconds(),
	}, nil
}

// paginate slices one 1-based page out of the ranked list. Pages past the
// end are empty, not an error.
func paginate(ranked []result.Result, page, pageSize int) []result.Result {
	start := (page - 1) * pageSize
	if start >= len(ranked) {
		return []result.Result{}
	}
	end := start + pageSize
	if end > len(ranked) {
		end = len(ranked)
	}
	return ranked[start:end]
}
