package intent

import (
	"context"

	domintent "github.com/streamhound/discovery/internal/domain/intent"
)

// Extractor is the remote structured-extraction contract. Implementations
// fail on transport errors, malformed output, or invalid confidence; the
// service absorbs every failure with the deterministic fallback.
type Extractor interface {
	Extract(ctx context.Context, query string) (domintent.Parsed, error)
}
