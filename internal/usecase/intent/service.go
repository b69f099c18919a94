// Package intent turns free-text queries into structured search intent:
// a best-effort remote extraction with a deterministic local fallback.
package intent

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	domintent "github.com/streamhound/discovery/internal/domain/intent"
)

// Title reference patterns, matched against the original (non-lowercased)
// query so the capitalized-title heuristic holds.
var (
	likePattern      = regexp.MustCompile(`like\s+([A-Z][a-zA-Z0-9\s]+)`)
	similarToPattern = regexp.MustCompile(`similar to\s+([A-Z][a-zA-Z0-9\s]+)`)
)

// Service parses queries. Parse never fails: a remote extraction failure
// of any kind degrades to the local keyword heuristic.
type Service struct {
	extractor Extractor
	vocab     Vocabulary
	logger    *zap.Logger
}

// New creates an intent parsing service. extractor may be nil, in which
// case every query takes the fallback path.
func New(extractor Extractor, vocab Vocabulary, logger *zap.Logger) *Service {
	return &Service{extractor: extractor, vocab: vocab, logger: logger}
}

// Parse extracts structured intent from the query. The remote path is
// attempted first; network errors, malformed JSON, and out-of-range
// confidence all fall back to deterministic local parsing, so the returned
// intent is always usable.
func (s *Service) Parse(ctx context.Context, query string) domintent.Parsed {
	if s.extractor != nil {
		parsed, err := s.extractor.Extract(ctx, query)
		if err == nil {
			return parsed
		}
		s.logger.Warn("Remote intent extraction failed, using fallback",
			zap.String("query", query),
			zap.Error(err),
		)
	}
	return s.fallbackParse(query)
}

// fallbackParse is the total local path: keyword-table matching plus title
// reference patterns. It cannot fail.
func (s *Service) fallbackParse(query string) domintent.Parsed {
	tokens := strings.Fields(strings.ToLower(query))

	filters := domintent.Filters{
		Genres:    matchTokens(tokens, s.vocab.Genres),
		Platforms: matchTokens(tokens, s.vocab.Platforms),
	}

	parsed, err := domintent.New(
		nil, nil,
		extractReferences(query),
		filters,
		query,
		domintent.FallbackConfidence,
	)
	if err != nil {
		// Only reachable with an empty query, which request validation
		// rejects upstream. Degrade to a bare intent rather than fail.
		parsed, _ = domintent.New(nil, nil, nil, domintent.Filters{}, " ", domintent.FallbackConfidence)
	}
	return parsed
}

// matchTokens maps query tokens through a keyword table, preserving query
// order.
func matchTokens(tokens []string, table map[string]string) []string {
	var out []string
	for _, token := range tokens {
		if canonical, ok := table[token]; ok {
			out = append(out, canonical)
		}
	}
	return out
}

// extractReferences pulls referenced titles from "like X" and
// "similar to X" phrasings.
func extractReferences(query string) []string {
	var refs []string
	for _, re := range []*regexp.Regexp{likePattern, similarToPattern} {
		if m := re.FindStringSubmatch(query); m != nil {
			refs = append(refs, strings.TrimSpace(m[1]))
		}
	}
	return refs
}
