package filter

import (
	"math"
	"testing"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		year    *YearRange
		rating  *RatingRange
		wantErr bool
	}{
		{"empty", nil, nil, false},
		{"valid ranges", &YearRange{2020, 2024}, &RatingRange{7.0, 10.0}, false},
		{"inverted year range", &YearRange{2024, 2020}, nil, true},
		{"inverted rating range", nil, &RatingRange{8.0, 7.0}, true},
		{"rating above bounds", nil, &RatingRange{5.0, 10.5}, true},
		{"rating below bounds", nil, &RatingRange{-1.0, 5.0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(nil, nil, tt.year, tt.rating)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	empty, _ := New(nil, nil, nil, nil)
	if !empty.IsEmpty() {
		t.Error("expected empty")
	}
	genre, _ := New([]string{"action"}, nil, nil, nil)
	if genre.IsEmpty() {
		t.Error("genre filter must not be empty")
	}
}

func TestEstimateSelectivity(t *testing.T) {
	f, err := New([]string{"action"}, nil, &YearRange{2020, 2024}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// 0.3 (genre) * 4/100 (year span) = 0.012
	got := f.EstimateSelectivity()
	if math.Abs(got-0.012) > 1e-9 {
		t.Errorf("selectivity: expected 0.012, got %g", got)
	}
	if !f.ShouldPreFilter() {
		t.Error("selectivity 0.012 must trigger pre-filtering")
	}
}

func TestEstimateSelectivity_Compound(t *testing.T) {
	f, _ := New([]string{"action"}, []string{"netflix"}, nil, &RatingRange{7, 10})
	// 0.3 * 0.4 * 0.5 = 0.06
	if got := f.EstimateSelectivity(); math.Abs(got-0.06) > 1e-9 {
		t.Errorf("expected 0.06, got %g", got)
	}
}

func TestEstimateSelectivity_WideYearSpanClamped(t *testing.T) {
	f, _ := New(nil, nil, &YearRange{1800, 2024}, nil)
	if got := f.EstimateSelectivity(); got != 1.0 {
		t.Errorf("span beyond catalog must clamp to 1.0, got %g", got)
	}
	if f.ShouldPreFilter() {
		t.Error("non-selective filter must not pre-filter")
	}
}

func TestEstimateSelectivity_Empty(t *testing.T) {
	f, _ := New(nil, nil, nil, nil)
	if got := f.EstimateSelectivity(); got != 1.0 {
		t.Errorf("empty filters: expected 1.0, got %g", got)
	}
	if f.ShouldPreFilter() {
		t.Error("empty filters must not pre-filter")
	}
}
