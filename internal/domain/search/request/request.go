// Package request holds the validated search request.
package request

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/streamhound/discovery/internal/domain"
	"github.com/streamhound/discovery/internal/domain/search/filter"
)

// Search parameter limits.
const (
	MaxQueryLength  = 500
	MinPageSize     = 1
	MaxPageSize     = 100
	DefaultPage     = 1
	DefaultPageSize = 20
)

// Request is a validated search query. It is owned by the call and dies
// with it.
type Request struct {
	query    string
	filters  filter.Filters
	page     int
	pageSize int
	userID   *uuid.UUID
}

// New validates and normalizes search parameters. The query is trimmed and
// must be 1–500 characters; page is 1-based; page size must lie in [1,100].
// Zero page/pageSize take defaults. Violations wrap domain.ErrInvalidRequest
// and are rejected before any backend call.
func New(query string, filters filter.Filters, page, pageSize int, userID *uuid.UUID) (Request, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Request{}, fmt.Errorf("%w: query is required", domain.ErrInvalidRequest)
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)",
			domain.ErrInvalidRequest, MaxQueryLength)
	}
	if page == 0 {
		page = DefaultPage
	}
	if page < 1 {
		return Request{}, fmt.Errorf("%w: page must be >= 1, got %d", domain.ErrInvalidRequest, page)
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize < MinPageSize || pageSize > MaxPageSize {
		return Request{}, fmt.Errorf("%w: page_size must be between %d and %d, got %d",
			domain.ErrInvalidRequest, MinPageSize, MaxPageSize, pageSize)
	}

	return Request{
		query:    query,
		filters:  filters,
		page:     page,
		pageSize: pageSize,
		userID:   userID,
	}, nil
}

// Query returns the trimmed query text.
func (r *Request) Query() string { return r.query }

// Filters returns the retrieval constraints.
func (r *Request) Filters() filter.Filters { return r.filters }

// Page returns the 1-based page number.
func (r *Request) Page() int { return r.page }

// PageSize returns the page size in [1,100].
func (r *Request) PageSize() int { return r.pageSize }

// UserID returns the optional caller identity, passed through for
// downstream personalization. The fusion logic does not use it.
func (r *Request) UserID() *uuid.UUID { return r.userID }
