package search

import (
	"sort"

	"github.com/streamhound/discovery/internal/domain/search/result"
)

// DefaultRRFK is the Reciprocal Rank Fusion constant (standard value from
// Cormack et al. 2009).
const DefaultRRFK = 60

// Default per-backend fusion weights.
const (
	DefaultVectorWeight  = 1.0
	DefaultKeywordWeight = 1.0
)

// FusionConfig tunes rank fusion. K and both weights must be positive;
// config validation enforces that at startup.
type FusionConfig struct {
	K             int
	VectorWeight  float64
	KeywordWeight float64
}

// DefaultFusionConfig returns the standard RRF parameters.
func DefaultFusionConfig() FusionConfig {
	return FusionConfig{
		K:             DefaultRRFK,
		VectorWeight:  DefaultVectorWeight,
		KeywordWeight: DefaultKeywordWeight,
	}
}

const (
	reasonVector  = "semantic similarity to query"
	reasonKeyword = "keyword match on title or overview"
)

type fused struct {
	id           string
	score        float64
	matchReasons []string
	vectorScore  *float64
	keywordScore *float64
}

// fuseRRF merges the two ranked lists via weighted Reciprocal Rank Fusion:
// each backend contributes weight/(k+rank) per item, rank 1-based, summed
// per content id. Raw backend scores ride along untouched for
// explainability. Ties keep first-seen order (vector list first), so the
// fused output is deterministic given its inputs.
func fuseRRF(vector, keyword []result.Hit, cfg FusionConfig) []result.Result {
	byID := make(map[string]*fused, len(vector)+len(keyword))
	order := make([]*fused, 0, len(vector)+len(keyword))

	for rank, hit := range vector {
		contribution := cfg.VectorWeight / float64(cfg.K+rank+1)
		score := hit.Score
		f, ok := byID[hit.ID]
		if !ok {
			f = &fused{id: hit.ID}
			byID[hit.ID] = f
			order = append(order, f)
		}
		f.score += contribution
		f.matchReasons = append(f.matchReasons, reasonVector)
		f.vectorScore = &score
	}

	for rank, hit := range keyword {
		contribution := cfg.KeywordWeight / float64(cfg.K+rank+1)
		score := hit.Score
		f, ok := byID[hit.ID]
		if !ok {
			f = &fused{id: hit.ID}
			byID[hit.ID] = f
			order = append(order, f)
		}
		f.score += contribution
		f.matchReasons = append(f.matchReasons, reasonKeyword)
		f.keywordScore = &score
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].score > order[j].score
	})

	results := make([]result.Result, 0, len(order))
	for _, f := range order {
		results = append(results, result.New(
			f.id, f.score, f.matchReasons, f.vectorScore, f.keywordScore,
		))
	}
	return results
}
