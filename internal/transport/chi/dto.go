package chi

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/streamhound/discovery/internal/domain/intent"
	"github.com/streamhound/discovery/internal/domain/search/filter"
	"github.com/streamhound/discovery/internal/domain/search/request"
	"github.com/streamhound/discovery/internal/domain/search/result"
	searchuc "github.com/streamhound/discovery/internal/usecase/search"
)

// Error codes returned to clients.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeRetrievalFailed  = "retrieval_failed"
	codeInternalError    = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type yearRangeDTO struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type ratingRangeDTO struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type filtersDTO struct {
	Genres      []string        `json:"genres,omitempty"`
	Platforms   []string        `json:"platforms,omitempty"`
	YearRange   *yearRangeDTO   `json:"year_range,omitempty"`
	RatingRange *ratingRangeDTO `json:"rating_range,omitempty"`
}

type searchRequestDTO struct {
	Query    string      `json:"query"`
	Filters  *filtersDTO `json:"filters,omitempty"`
	Page     int         `json:"page,omitempty"`
	PageSize int         `json:"page_size,omitempty"`
	UserID   *string     `json:"user_id,omitempty"`
}

type resultDTO struct {
	ID           string   `json:"id"`
	Score        float64  `json:"score"`
	MatchReasons []string `json:"match_reasons,omitempty"`
	VectorScore  *float64 `json:"vector_score,omitempty"`
	KeywordScore *float64 `json:"keyword_score,omitempty"`
}

type intentFiltersDTO struct {
	Genres    []string      `json:"genres,omitempty"`
	Platforms []string      `json:"platforms,omitempty"`
	YearRange *yearRangeDTO `json:"year_range,omitempty"`
}

type intentDTO struct {
	Mood          []string         `json:"mood,omitempty"`
	Themes        []string         `json:"themes,omitempty"`
	References    []string         `json:"references,omitempty"`
	Filters       intentFiltersDTO `json:"filters"`
	FallbackQuery string           `json:"fallback_query"`
	Confidence    float64          `json:"confidence"`
}

type searchResponseDTO struct {
	Results      []resultDTO `json:"results"`
	TotalCount   int         `json:"total_count"`
	Page         int         `json:"page"`
	PageSize     int         `json:"page_size"`
	QueryParsed  intentDTO   `json:"query_parsed"`
	SearchTimeMS int64       `json:"search_time_ms"`
}

func searchRequestFromDTO(dto searchRequestDTO) (request.Request, error) {
	filters, err := filtersFromDTO(dto.Filters)
	if err != nil {
		return request.Request{}, fmt.Errorf("parse filters: %w", err)
	}

	var userID *uuid.UUID
	if dto.UserID != nil && *dto.UserID != "" {
		id, err := uuid.Parse(*dto.UserID)
		if err != nil {
			return request.Request{}, fmt.Errorf("parse user_id: %w", err)
		}
		userID = &id
	}

	return request.New(dto.Query, filters, dto.Page, dto.PageSize, userID)
}

func filtersFromDTO(dto *filtersDTO) (filter.Filters, error) {
	if dto == nil {
		return filter.Filters{}, nil
	}

	var yearRange *filter.YearRange
	if dto.YearRange != nil {
		yearRange = &filter.YearRange{Min: dto.YearRange.Min, Max: dto.YearRange.Max}
	}
	var ratingRange *filter.RatingRange
	if dto.RatingRange != nil {
		ratingRange = &filter.RatingRange{Min: dto.RatingRange.Min, Max: dto.RatingRange.Max}
	}

	return filter.New(dto.Genres, dto.Platforms, yearRange, ratingRange)
}

func responseToDTO(resp *searchuc.Response) searchResponseDTO {
	results := make([]resultDTO, len(resp.Results))
	for i := range resp.Results {
		results[i] = resultToDTO(&resp.Results[i])
	}

	return searchResponseDTO{
		Results:      results,
		TotalCount:   resp.TotalCount,
		Page:         resp.Page,
		PageSize:     resp.PageSize,
		QueryParsed:  intentToDTO(&resp.QueryParsed),
		SearchTimeMS: resp.SearchTimeMS,
	}
}

func resultToDTO(r *result.Result) resultDTO {
	return resultDTO{
		ID:           r.ID(),
		Score:        r.Score(),
		MatchReasons: r.MatchReasons(),
		VectorScore:  r.VectorScore(),
		KeywordScore: r.KeywordScore(),
	}
}

func intentToDTO(p *intent.Parsed) intentDTO {
	f := p.Filters()
	dto := intentDTO{
		Mood:          p.Mood(),
		Themes:        p.Themes(),
		References:    p.References(),
		FallbackQuery: p.FallbackQuery(),
		Confidence:    p.Confidence(),
		Filters: intentFiltersDTO{
			Genres:    f.Genres,
			Platforms: f.Platforms,
		},
	}
	if f.YearRange != nil {
		dto.Filters.YearRange = &yearRangeDTO{Min: f.YearRange.Min, Max: f.YearRange.Max}
	}
	return dto
}
