package search

import (
	"context"

	"github.com/streamhound/discovery/internal/domain/intent"
	"github.com/streamhound/discovery/internal/domain/search/filter"
	"github.com/streamhound/discovery/internal/domain/search/result"
)

type mockRetriever struct {
	hits     []result.Hit
	err      error
	calls    int
	gotQuery string
	gotTopK  int
}

func (m *mockRetriever) Search(
	_ context.Context, query string, _ filter.Filters, topK int,
) ([]result.Hit, error) {
	m.calls++
	m.gotQuery = query
	m.gotTopK = topK
	if m.err != nil {
		return nil, m.err
	}
	return m.hits, nil
}

// mockParser echoes the query as the fallback query unless an override is
// set, mirroring the real parser's total-fallback behavior.
type mockParser struct {
	fallbackQuery string
}

func (m *mockParser) Parse(_ context.Context, query string) intent.Parsed {
	fq := m.fallbackQuery
	if fq == "" {
		fq = query
	}
	parsed, err := intent.New(nil, nil, nil, intent.Filters{}, fq, intent.FallbackConfidence)
	if err != nil {
		panic(err)
	}
	return parsed
}

func newTestService(vector, keyword *mockRetriever, parser IntentParser) *Service {
	if parser == nil {
		parser = &mockParser{}
	}
	return New(parser, vector, keyword, DefaultFusionConfig(), 0)
}

func hits(ids ...string) []result.Hit {
	out := make([]result.Hit, 0, len(ids))
	for i, id := range ids {
		out = append(out, result.Hit{ID: id, Score: 1.0 - float64(i)*0.1})
	}
	return out
}
