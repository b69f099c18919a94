// Package result holds the ranked retrieval and fusion output types.
package result

// Hit is a single backend-native ranked item: a content identifier and the
// backend's own score. Scores from different backends are not comparable.
type Hit struct {
	ID    string
	Score float64
}

// Result is a fused search hit with provenance. The raw per-backend scores
// are kept for explainability and never recomputed after fusion.
type Result struct {
	id           string
	score        float64
	matchReasons []string
	vectorScore  *float64
	keywordScore *float64
}

// New creates a fused result. vectorScore and keywordScore are nil when the
// corresponding backend did not return the item.
func New(id string, score float64, matchReasons []string, vectorScore, keywordScore *float64) Result {
	return Result{
		id:           id,
		score:        score,
		matchReasons: matchReasons,
		vectorScore:  vectorScore,
		keywordScore: keywordScore,
	}
}

// ID returns the content identifier.
func (r *Result) ID() string { return r.id }

// Score returns the fused, backend-agnostic relevance score.
func (r *Result) Score() float64 { return r.score }

// MatchReasons returns the ordered human-readable match explanations.
func (r *Result) MatchReasons() []string { return r.matchReasons }

// VectorScore returns the raw vector similarity, or nil.
func (r *Result) VectorScore() *float64 { return r.vectorScore }

// KeywordScore returns the raw keyword relevance score, or nil.
func (r *Result) KeywordScore() *float64 { return r.keywordScore }
