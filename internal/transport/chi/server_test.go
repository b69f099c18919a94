package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/streamhound/discovery/internal/domain"
	"github.com/streamhound/discovery/internal/domain/intent"
	"github.com/streamhound/discovery/internal/domain/search/request"
	"github.com/streamhound/discovery/internal/domain/search/result"
	searchuc "github.com/streamhound/discovery/internal/usecase/search"
)

type mockSearcher struct {
	resp *searchuc.Response
	err  error
	got  *request.Request
}

func (m *mockSearcher) Search(_ context.Context, req *request.Request) (*searchuc.Response, error) {
	m.got = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

func testResponse(t *testing.T) *searchuc.Response {
	t.Helper()
	parsed, err := intent.New(
		[]string{"dark"}, nil, nil, intent.Filters{}, "heist films", 0.8,
	)
	if err != nil {
		t.Fatalf("intent.New: %v", err)
	}
	score := 0.92
	return &searchuc.Response{
		Results: []result.Result{
			result.New("abc123", 1.0/61.0, []string{"semantic similarity to query"}, &score, nil),
		},
		TotalCount:   1,
		Page:         1,
		PageSize:     20,
		QueryParsed:  parsed,
		SearchTimeMS: 12,
	}
}

func TestSearchContent_OK(t *testing.T) {
	searcher := &mockSearcher{resp: testResponse(t)}
	srv := NewServer(searcher, &mockPinger{}, zap.NewNop())

	body := `{"query": "dark heist films", "page": 1, "page_size": 20,
		"filters": {"genres": ["thriller"], "year_range": {"min": 2010, "max": 2024}}}`
	req := httptest.NewRequest("POST", "/api/v1/search", strings.NewReader(body))
	rr := httptest.NewRecorder()
	srv.SearchContent(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rr.Code, rr.Body.String())
	}

	var resp searchResponseDTO
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TotalCount != 1 || len(resp.Results) != 1 {
		t.Errorf("results: total %d, page len %d", resp.TotalCount, len(resp.Results))
	}
	if resp.Results[0].ID != "abc123" {
		t.Errorf("result id: got %q", resp.Results[0].ID)
	}
	if resp.Results[0].VectorScore == nil || *resp.Results[0].VectorScore != 0.92 {
		t.Errorf("vector score: got %v", resp.Results[0].VectorScore)
	}
	if resp.QueryParsed.FallbackQuery != "heist films" {
		t.Errorf("query_parsed: got %q", resp.QueryParsed.FallbackQuery)
	}

	if searcher.got.Query() != "dark heist films" {
		t.Errorf("forwarded query: got %q", searcher.got.Query())
	}
	f := searcher.got.Filters()
	if len(f.Genres()) != 1 || f.Genres()[0] != "thriller" {
		t.Errorf("forwarded genres: got %v", f.Genres())
	}
	if f.YearRange() == nil || f.YearRange().Min != 2010 {
		t.Errorf("forwarded year range: got %v", f.YearRange())
	}
}

func TestSearchContent_InvalidBody_400(t *testing.T) {
	srv := NewServer(&mockSearcher{}, &mockPinger{}, zap.NewNop())

	req := httptest.NewRequest("POST", "/api/v1/search", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	srv.SearchContent(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestSearchContent_EmptyQuery_400(t *testing.T) {
	srv := NewServer(&mockSearcher{}, &mockPinger{}, zap.NewNop())

	req := httptest.NewRequest("POST", "/api/v1/search", strings.NewReader(`{"query": "   "}`))
	rr := httptest.NewRecorder()
	srv.SearchContent(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}

	var errResp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if errResp.Code != codeValidationFailed {
		t.Errorf("error code: got %s", errResp.Code)
	}
}

func TestSearchContent_InvalidPageSize_400(t *testing.T) {
	srv := NewServer(&mockSearcher{}, &mockPinger{}, zap.NewNop())

	req := httptest.NewRequest("POST", "/api/v1/search",
		strings.NewReader(`{"query": "q", "page_size": 500}`))
	rr := httptest.NewRecorder()
	srv.SearchContent(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestSearchContent_RetrievalFailure_502(t *testing.T) {
	searcher := &mockSearcher{
		err: domain.NewRetrievalError(domain.BackendVector, errors.New("index down")),
	}
	srv := NewServer(searcher, &mockPinger{}, zap.NewNop())

	req := httptest.NewRequest("POST", "/api/v1/search", strings.NewReader(`{"query": "q"}`))
	rr := httptest.NewRecorder()
	srv.SearchContent(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadGateway)
	}

	var errResp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if errResp.Code != codeRetrievalFailed {
		t.Errorf("error code: got %s", errResp.Code)
	}
	// The failing backend is named; internals are not leaked.
	if errResp.Message != "vector retrieval failed" {
		t.Errorf("message: got %q", errResp.Message)
	}
}

func TestSearchContent_UnknownError_500(t *testing.T) {
	searcher := &mockSearcher{err: errors.New("boom")}
	srv := NewServer(searcher, &mockPinger{}, zap.NewNop())

	req := httptest.NewRequest("POST", "/api/v1/search", strings.NewReader(`{"query": "q"}`))
	rr := httptest.NewRecorder()
	srv.SearchContent(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rr.Body.String(), "boom") {
		t.Errorf("internal detail leaked: %s", rr.Body.String())
	}
}

func TestHealthCheck(t *testing.T) {
	srv := NewServer(&mockSearcher{}, &mockPinger{}, zap.NewNop())

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	rr := httptest.NewRecorder()
	srv.HealthCheck(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("healthy: got %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestHealthCheck_Unhealthy_503(t *testing.T) {
	srv := NewServer(&mockSearcher{}, &mockPinger{err: errors.New("connection refused")}, zap.NewNop())

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	rr := httptest.NewRecorder()
	srv.HealthCheck(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("unhealthy: got %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}
