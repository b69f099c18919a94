package retrieval

import (
	"testing"

	"github.com/streamhound/discovery/internal/db"
	"github.com/streamhound/discovery/internal/domain/search/filter"
)

func mustFilters(t *testing.T, genres, platforms []string, yr *filter.YearRange, rr *filter.RatingRange) filter.Filters {
	t.Helper()
	f, err := filter.New(genres, platforms, yr, rr)
	if err != nil {
		t.Fatalf("filter.New: %v", err)
	}
	return f
}

func TestFilterFields(t *testing.T) {
	f := mustFilters(t, []string{"action"}, nil, &filter.YearRange{Min: 2000, Max: 2020}, nil)

	fields := filterFields(f, false)
	if len(fields) != 2 || fields[0] != db.FieldGenres || fields[1] != db.FieldYear {
		t.Errorf("fields: got %v", fields)
	}

	// Pushed-down filters need nothing returned.
	if got := filterFields(f, true); got != nil {
		t.Errorf("pre-filtered: got %v, want nil", got)
	}
	if got := filterFields(filter.Filters{}, false); got != nil {
		t.Errorf("empty filters: got %v, want nil", got)
	}
}

func TestEntriesToHits_StripsKeyPrefix(t *testing.T) {
	entries := []db.SearchEntry{
		{Key: "content:abc", Score: 0.9},
		{Key: "content:def", Score: 0.7},
	}

	hits := entriesToHits(entries, filter.Filters{}, false)
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].ID != "abc" || hits[1].ID != "def" {
		t.Errorf("ids: got %v", hits)
	}
	if hits[0].Score != 0.9 {
		t.Errorf("score: got %v", hits[0].Score)
	}
}

func TestEntriesToHits_PostFilters(t *testing.T) {
	f := mustFilters(t, []string{"action"}, nil, &filter.YearRange{Min: 2015, Max: 2024}, nil)

	entries := []db.SearchEntry{
		{Key: "content:keep", Score: 0.9, Fields: map[string]string{
			db.FieldGenres: "action,thriller",
			db.FieldYear:   "2020",
		}},
		{Key: "content:wrong-genre", Score: 0.8, Fields: map[string]string{
			db.FieldGenres: "comedy",
			db.FieldYear:   "2020",
		}},
		{Key: "content:too-old", Score: 0.7, Fields: map[string]string{
			db.FieldGenres: "action",
			db.FieldYear:   "2001",
		}},
	}

	hits := entriesToHits(entries, f, false)
	if len(hits) != 1 || hits[0].ID != "keep" {
		t.Errorf("post-filter: got %v", hits)
	}

	// With push-down the entries come back already filtered.
	all := entriesToHits(entries, f, true)
	if len(all) != 3 {
		t.Errorf("pre-filtered entries must pass through, got %d", len(all))
	}
}

func TestMatchesFilters_RatingRange(t *testing.T) {
	f := mustFilters(t, nil, nil, nil, &filter.RatingRange{Min: 7.0, Max: 10.0})

	tests := []struct {
		rating string
		want   bool
	}{
		{"8.4", true},
		{"7.0", true},
		{"6.9", false},
		{"not-a-number", false},
	}
	for _, tt := range tests {
		got := matchesFilters(map[string]string{db.FieldRating: tt.rating}, f)
		if got != tt.want {
			t.Errorf("rating %q: got %v, want %v", tt.rating, got, tt.want)
		}
	}
}

func TestMatchesTag_ORWithinFilter(t *testing.T) {
	if !matchesTag("action, thriller", []string{"thriller", "drama"}) {
		t.Error("expected OR semantics across wanted tags")
	}
	if matchesTag("comedy", []string{"thriller"}) {
		t.Error("non-matching tag must fail")
	}
	if !matchesTag("", nil) {
		t.Error("no wanted tags must always pass")
	}
}
