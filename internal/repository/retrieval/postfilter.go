package retrieval

import (
	"strconv"
	"strings"

	"github.com/streamhound/discovery/internal/db"
	"github.com/streamhound/discovery/internal/domain/search/filter"
	"github.com/streamhound/discovery/internal/domain/search/result"
)

// filterFields returns the fields the backend must return so unselective
// filters can be applied to the candidate set afterwards. Pre-filtered and
// unfiltered queries need no fields back.
func filterFields(f filter.Filters, preFiltered bool) []string {
	if preFiltered || f.IsEmpty() {
		return nil
	}
	var fields []string
	if len(f.Genres()) > 0 {
		fields = append(fields, db.FieldGenres)
	}
	if len(f.Platforms()) > 0 {
		fields = append(fields, db.FieldPlatforms)
	}
	if f.YearRange() != nil {
		fields = append(fields, db.FieldYear)
	}
	if f.RatingRange() != nil {
		fields = append(fields, db.FieldRating)
	}
	return fields
}

// entriesToHits converts index entries to ranked hits, post-filtering when
// the filters were not pushed down.
func entriesToHits(entries []db.SearchEntry, f filter.Filters, preFiltered bool) []result.Hit {
	postFilter := !preFiltered && !f.IsEmpty()

	hits := make([]result.Hit, 0, len(entries))
	for _, e := range entries {
		if postFilter && !matchesFilters(e.Fields, f) {
			continue
		}
		hits = append(hits, result.Hit{
			ID:    strings.TrimPrefix(e.Key, contentKeyPrefix),
			Score: e.Score,
		})
	}
	return hits
}

// matchesFilters checks a candidate's returned fields against the filter
// set. Tag fields are stored comma-separated; OR semantics within a filter,
// AND across filters.
func matchesFilters(fields map[string]string, f filter.Filters) bool {
	if !matchesTag(fields[db.FieldGenres], f.Genres()) {
		return false
	}
	if !matchesTag(fields[db.FieldPlatforms], f.Platforms()) {
		return false
	}
	if yr := f.YearRange(); yr != nil {
		year, err := strconv.Atoi(fields[db.FieldYear])
		if err != nil || year < yr.Min || year > yr.Max {
			return false
		}
	}
	if rr := f.RatingRange(); rr != nil {
		rating, err := strconv.ParseFloat(fields[db.FieldRating], 64)
		if err != nil || rating < rr.Min || rating > rr.Max {
			return false
		}
	}
	return true
}

func matchesTag(stored string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, tag := range strings.Split(stored, ",") {
		tag = strings.TrimSpace(tag)
		for _, w := range wanted {
			if tag == w {
				return true
			}
		}
	}
	return false
}
