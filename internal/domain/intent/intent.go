// Package intent holds the structured interpretation of a free-text query.
package intent

import "fmt"

// FallbackConfidence is the fixed score assigned by the deterministic
// keyword fallback, signalling a low-confidence heuristic extraction.
const FallbackConfidence = 0.5

// YearRange is an inclusive release-year interval.
type YearRange struct {
	Min int
	Max int
}

// Filters are the coarse constraints extracted from the query text.
// They explain what the parser understood; retrieval applies the
// request's own filters.
type Filters struct {
	Genres    []string
	Platforms []string
	YearRange *YearRange
}

// IsEmpty reports whether no filter was extracted.
func (f Filters) IsEmpty() bool {
	return len(f.Genres) == 0 && len(f.Platforms) == 0 && f.YearRange == nil
}

// Parsed is a validated search intent. Created fresh per request and
// never persisted.
type Parsed struct {
	mood          []string
	themes        []string
	references    []string
	filters       Filters
	fallbackQuery string
	confidence    float64
}

// New validates and creates a parsed intent.
// A confidence outside [0,1] invalidates the whole intent; the fallback
// query must always be populated.
func New(
	mood, themes, references []string,
	filters Filters,
	fallbackQuery string,
	confidence float64,
) (Parsed, error) {
	if confidence < 0 || confidence > 1 {
		return Parsed{}, fmt.Errorf("confidence %g outside [0,1]", confidence)
	}
	if fallbackQuery == "" {
		return Parsed{}, fmt.Errorf("fallback query is required")
	}
	if filters.YearRange != nil && filters.YearRange.Min > filters.YearRange.Max {
		return Parsed{}, fmt.Errorf("year range min %d > max %d",
			filters.YearRange.Min, filters.YearRange.Max)
	}
	return Parsed{
		mood:          mood,
		themes:        themes,
		references:    references,
		filters:       filters,
		fallbackQuery: fallbackQuery,
		confidence:    confidence,
	}, nil
}

// Mood returns the emotional-tone keywords.
func (p *Parsed) Mood() []string { return p.mood }

// Themes returns the theme keywords.
func (p *Parsed) Themes() []string { return p.themes }

// References returns titles mentioned in "like X" / "similar to X" queries.
func (p *Parsed) References() []string { return p.references }

// Filters returns the extracted coarse filters.
func (p *Parsed) Filters() Filters { return p.filters }

// FallbackQuery returns the simplified query string. Always populated.
func (p *Parsed) FallbackQuery() string { return p.fallbackQuery }

// Confidence returns the extraction confidence in [0,1].
func (p *Parsed) Confidence() float64 { return p.confidence }
