package driven

import (
	"context"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
)

// OriginRequest is one call against an allowed origins collection.
type OriginRequest struct {
	// Method is GET, POST or DELETE.
	Method string

	// Credentials select the collection and authenticate the call.
	Credentials domain.Credentials

	// OriginID targets a single entry. Set for DELETE only.
	OriginID string

	// Body is JSON-encoded when non-nil.
	Body map[string]string
}

// OriginResponse is the raw answer to an OriginRequest.
type OriginResponse struct {
	StatusCode int
	Body       []byte
}

// AllowedOriginsClient talks to the Adyen Management API allowed origins endpoint.
type AllowedOriginsClient interface {
	// Do sends the request. Any HTTP status, including errors, is returned as a
	// response. A request that never produced a status returns *domain.TransportError.
	Do(ctx context.Context, req OriginRequest) (*OriginResponse, error)
}
