package search

import (
	"math"
	"testing"

	"github.com/streamhound/discovery/internal/domain/search/result"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestFuseRRF_CrossBackendBoost(t *testing.T) {
	vector := []result.Hit{{ID: "A", Score: 0.9}, {ID: "B", Score: 0.8}}
	keyword := []result.Hit{{ID: "B", Score: 12.5}}

	fusedResults := fuseRRF(vector, keyword, DefaultFusionConfig())

	if len(fusedResults) != 2 {
		t.Fatalf("expected 2 fused results, got %d", len(fusedResults))
	}

	// B appears in both lists and must outrank A.
	if fusedResults[0].ID() != "B" || fusedResults[1].ID() != "A" {
		t.Fatalf("order: got [%s, %s], want [B, A]", fusedResults[0].ID(), fusedResults[1].ID())
	}

	wantB := 1.0/62.0 + 1.0/61.0
	wantA := 1.0 / 61.0
	if !almostEqual(fusedResults[0].Score(), wantB) {
		t.Errorf("B score: got %v, want %v", fusedResults[0].Score(), wantB)
	}
	if !almostEqual(fusedResults[1].Score(), wantA) {
		t.Errorf("A score: got %v, want %v", fusedResults[1].Score(), wantA)
	}
}

func TestFuseRRF_RawScoresPreserved(t *testing.T) {
	vector := []result.Hit{{ID: "A", Score: 0.9}}
	keyword := []result.Hit{{ID: "A", Score: 12.5}, {ID: "B", Score: 3.0}}

	fusedResults := fuseRRF(vector, keyword, DefaultFusionConfig())

	a := fusedResults[0]
	if a.ID() != "A" {
		t.Fatalf("expected A first, got %s", a.ID())
	}
	if a.VectorScore() == nil || *a.VectorScore() != 0.9 {
		t.Errorf("A vector score: got %v", a.VectorScore())
	}
	if a.KeywordScore() == nil || *a.KeywordScore() != 12.5 {
		t.Errorf("A keyword score: got %v", a.KeywordScore())
	}
	if len(a.MatchReasons()) != 2 {
		t.Errorf("A match reasons: got %v", a.MatchReasons())
	}

	b := fusedResults[1]
	if b.VectorScore() != nil {
		t.Errorf("B must have no vector score, got %v", *b.VectorScore())
	}
	if b.KeywordScore() == nil || *b.KeywordScore() != 3.0 {
		t.Errorf("B keyword score: got %v", b.KeywordScore())
	}
}

func TestFuseRRF_Weights(t *testing.T) {
	cfg := FusionConfig{K: 60, VectorWeight: 1.0, KeywordWeight: 3.0}

	vector := []result.Hit{{ID: "A", Score: 0.9}}
	keyword := []result.Hit{{ID: "B", Score: 5.0}}

	fusedResults := fuseRRF(vector, keyword, cfg)

	// Same rank, but the keyword backend carries triple weight.
	if fusedResults[0].ID() != "B" {
		t.Fatalf("expected weighted keyword hit first, got %s", fusedResults[0].ID())
	}
	if !almostEqual(fusedResults[0].Score(), 3.0/61.0) {
		t.Errorf("B score: got %v, want %v", fusedResults[0].Score(), 3.0/61.0)
	}
}

func TestFuseRRF_StableTieBreak(t *testing.T) {
	// A and B tie exactly (rank 1 in one list each, equal weights).
	// First-seen order wins: the vector list is processed first.
	vector := []result.Hit{{ID: "A", Score: 0.9}}
	keyword := []result.Hit{{ID: "B", Score: 5.0}}

	fusedResults := fuseRRF(vector, keyword, DefaultFusionConfig())

	if fusedResults[0].ID() != "A" || fusedResults[1].ID() != "B" {
		t.Errorf("tie break: got [%s, %s], want [A, B]",
			fusedResults[0].ID(), fusedResults[1].ID())
	}
}

func TestFuseRRF_EmptyInputs(t *testing.T) {
	if got := fuseRRF(nil, nil, DefaultFusionConfig()); len(got) != 0 {
		t.Errorf("expected empty fusion, got %d results", len(got))
	}

	one := fuseRRF([]result.Hit{{ID: "A", Score: 0.5}}, nil, DefaultFusionConfig())
	if len(one) != 1 || one[0].ID() != "A" {
		t.Errorf("single-list fusion: got %v", one)
	}
	if one[0].KeywordScore() != nil {
		t.Errorf("A must have no keyword score")
	}
}
