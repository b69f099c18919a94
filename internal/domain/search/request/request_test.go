package request

import (
	"errors"
	"strings"
	"testing"

	"github.com/streamhound/discovery/internal/domain"
	"github.com/streamhound/discovery/internal/domain/search/filter"
)

func TestNew_Defaults(t *testing.T) {
	r, err := New("dark thrillers", filter.Filters{}, 0, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Page() != DefaultPage {
		t.Errorf("page: got %d", r.Page())
	}
	if r.PageSize() != DefaultPageSize {
		t.Errorf("page_size: got %d", r.PageSize())
	}
}

func TestNew_TrimsQuery(t *testing.T) {
	r, err := New("  heist movies  ", filter.Filters{}, 1, 10, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Query() != "heist movies" {
		t.Errorf("query not trimmed: %q", r.Query())
	}
}

func TestNew_EmptyQueryRejected(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		_, err := New(q, filter.Filters{}, 1, 10, nil)
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("query %q: expected ErrInvalidRequest, got %v", q, err)
		}
	}
}

func TestNew_QueryTooLong(t *testing.T) {
	_, err := New(strings.Repeat("a", MaxQueryLength+1), filter.Filters{}, 1, 10, nil)
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestNew_PageSizeBounds(t *testing.T) {
	for size := MinPageSize; size <= MaxPageSize; size++ {
		if _, err := New("q", filter.Filters{}, 1, size, nil); err != nil {
			t.Fatalf("page_size %d must be accepted: %v", size, err)
		}
	}
	for _, size := range []int{-1, 101, 1000} {
		_, err := New("q", filter.Filters{}, 1, size, nil)
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("page_size %d: expected ErrInvalidRequest, got %v", size, err)
		}
	}
}

func TestNew_NegativePage(t *testing.T) {
	_, err := New("q", filter.Filters{}, -2, 10, nil)
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
}
