// Package chi exposes the discovery API over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/streamhound/discovery/internal/domain"
	"github.com/streamhound/discovery/internal/domain/search/request"
	searchuc "github.com/streamhound/discovery/internal/usecase/search"
)

// Pinger checks backing store liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Searcher runs a hybrid search for a validated request.
type Searcher interface {
	Search(ctx context.Context, req *request.Request) (*searchuc.Response, error)
}

// Server is the HTTP API server.
type Server struct {
	search Searcher
	store  Pinger
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search Searcher, store Pinger, logger *zap.Logger) *Server {
	return &Server{search: search, store: store, logger: logger}
}

// Mount registers all routes on the given router.
func (s *Server) Mount(r chi.Router) {
	r.Post("/api/v1/search", s.SearchContent)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// SearchContent handles POST /api/v1/search.
func (s *Server) SearchContent(w http.ResponseWriter, r *http.Request) {
	var dto searchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	req, err := searchRequestFromDTO(dto)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	resp, err := s.search.Search(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responseToDTO(resp))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"database": "ok"}
	status := "healthy"
	httpStatus := http.StatusOK

	if err := s.store.Ping(r.Context()); err != nil {
		s.logger.Warn("health check failed", zap.Error(err))
		checks["database"] = "unreachable"
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": status,
		"checks": checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))

	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
	case errors.Is(err, domain.ErrRetrievalFailed):
		writeError(w, http.StatusBadGateway, codeRetrievalFailed, safeDomainMessage(err))
	case errors.Is(err, domain.ErrEmbeddingUnavailable),
		errors.Is(err, domain.ErrEmbeddingProviderError):
		writeError(w, http.StatusBadGateway, codeRetrievalFailed, safeDomainMessage(err))
	default:
		s.logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	var retErr *domain.RetrievalError
	if errors.As(err, &retErr) {
		return retErr.Backend + " retrieval failed"
	}
	sentinels := []error{
		domain.ErrRetrievalFailed,
		domain.ErrEmbeddingUnavailable,
		domain.ErrEmbeddingProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
