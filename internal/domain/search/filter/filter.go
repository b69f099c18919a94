// Package filter holds the user-supplied retrieval constraints and the
// selectivity model that decides pre- versus post-filtering.
package filter

import "fmt"

// Rating bounds for the rating range filter.
const (
	MinRating = 0.0
	MaxRating = 10.0
)

// PreFilterThreshold: selectivity below this value signals that a backend
// should apply filters before retrieval. Advisory only.
const PreFilterThreshold = 0.1

// catalogYearSpan approximates the catalog's release-year coverage for the
// year-range selectivity estimate.
const catalogYearSpan = 100.0

// YearRange is an inclusive release-year interval.
type YearRange struct {
	Min int
	Max int
}

// RatingRange is an inclusive rating interval within [0,10].
type RatingRange struct {
	Min float64
	Max float64
}

// Filters is an immutable set of retrieval constraints.
type Filters struct {
	genres      []string
	platforms   []string
	yearRange   *YearRange
	ratingRange *RatingRange
}

// New validates and creates a filter set. Ranges must be inclusive with
// min ≤ max; ratings must lie within [0,10].
func New(
	genres, platforms []string,
	yearRange *YearRange,
	ratingRange *RatingRange,
) (Filters, error) {
	if yearRange != nil && yearRange.Min > yearRange.Max {
		return Filters{}, fmt.Errorf("year range min %d > max %d", yearRange.Min, yearRange.Max)
	}
	if ratingRange != nil {
		if ratingRange.Min > ratingRange.Max {
			return Filters{}, fmt.Errorf("rating range min %g > max %g",
				ratingRange.Min, ratingRange.Max)
		}
		if ratingRange.Min < MinRating || ratingRange.Max > MaxRating {
			return Filters{}, fmt.Errorf("rating range [%g,%g] outside [%g,%g]",
				ratingRange.Min, ratingRange.Max, MinRating, MaxRating)
		}
	}
	return Filters{
		genres:      genres,
		platforms:   platforms,
		yearRange:   yearRange,
		ratingRange: ratingRange,
	}, nil
}

// Genres returns the genre constraints (OR semantics).
func (f Filters) Genres() []string { return f.genres }

// Platforms returns the platform-availability constraints (OR semantics).
func (f Filters) Platforms() []string { return f.platforms }

// YearRange returns the inclusive release-year interval, or nil.
func (f Filters) YearRange() *YearRange { return f.yearRange }

// RatingRange returns the inclusive rating interval, or nil.
func (f Filters) RatingRange() *RatingRange { return f.ratingRange }

// IsEmpty reports whether every optional field is unset.
func (f Filters) IsEmpty() bool {
	return len(f.genres) == 0 && len(f.platforms) == 0 &&
		f.yearRange == nil && f.ratingRange == nil
}

// EstimateSelectivity returns the estimated fraction of the catalog the
// filter set retains, in (0,1]. Active filters compound multiplicatively;
// independence between filters is an assumed approximation, not exact
// cardinality estimation.
func (f Filters) EstimateSelectivity() float64 {
	selectivity := 1.0

	if len(f.genres) > 0 {
		selectivity *= 0.3
	}
	if len(f.platforms) > 0 {
		selectivity *= 0.4
	}
	if f.yearRange != nil {
		span := float64(f.yearRange.Max - f.yearRange.Min)
		selectivity *= min(span/catalogYearSpan, 1.0)
	}
	if f.ratingRange != nil {
		selectivity *= 0.5
	}

	return selectivity
}

// ShouldPreFilter reports whether filters are selective enough to apply
// before retrieval. Backends decide how to honor it.
func (f Filters) ShouldPreFilter() bool {
	return f.EstimateSelectivity() < PreFilterThreshold
}
