package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest signals a malformed search request.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrEmbeddingUnavailable signals an exhausted embedding retry budget.
	ErrEmbeddingUnavailable = errors.New("embedding unavailable")
	// ErrEmbeddingProviderError signals a single failed embedding provider call.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrRetrievalFailed signals a failed retrieval backend call.
	ErrRetrievalFailed = errors.New("retrieval failed")
	// ErrVectorDimMismatch signals a vector dimension mismatch.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
)

// Backend names used in retrieval errors and logs.
const (
	BackendVector  = "vector"
	BackendKeyword = "keyword"
)

// RetrievalError wraps ErrRetrievalFailed with the backend that failed.
type RetrievalError struct {
	Backend string
	Err     error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("%s backend: %s: %s", e.Backend, ErrRetrievalFailed.Error(), e.Err.Error())
}

// Unwrap exposes both the sentinel and the cause, so errors.Is matches
// ErrRetrievalFailed as well as whatever the backend actually returned.
func (e *RetrievalError) Unwrap() []error { return []error{ErrRetrievalFailed, e.Err} }

// NewRetrievalError creates a retrieval error for the given backend.
func NewRetrievalError(backend string, err error) error {
	return &RetrievalError{Backend: backend, Err: err}
}
