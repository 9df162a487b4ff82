package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
	"github.com/custodia-labs/allowlist-cli/internal/core/ports/driven"
	"github.com/custodia-labs/allowlist-cli/internal/logger"
)

// ListResult is the outcome of fetching the allowed origins.
// OK is true only for a 200 response with a readable body.
type ListResult struct {
	Origins []domain.RemoteOrigin
	Outcome domain.Outcome
	OK      bool
}

// listResponse is the allowed origins list body.
// Fields are pointers so records without a domain can be told apart.
type listResponse struct {
	Data []struct {
		ID     *string `json:"id"`
		Domain *string `json:"domain"`
	} `json:"data"`
}

// OriginLister fetches the allowed origins for the default scope.
type OriginLister struct {
	client      driven.AllowedOriginsClient
	credentials CredentialResolver
}

// NewOriginLister creates a new origin lister.
func NewOriginLister(client driven.AllowedOriginsClient, credentials CredentialResolver) *OriginLister {
	return &OriginLister{
		client:      client,
		credentials: credentials,
	}
}

// List fetches and decodes the allowed origins.
func (l *OriginLister) List(ctx context.Context) ListResult {
	creds, err := l.credentials.Resolve("")
	if err != nil {
		return ListResult{
			Outcome: domain.NewFailureOutcome(domain.OperationList, domain.CategoryConfigFailure, err, "", ""),
		}
	}

	resp, err := l.client.Do(ctx, driven.OriginRequest{
		Method:      http.MethodGet,
		Credentials: creds,
	})
	if err != nil {
		return ListResult{
			Outcome: domain.NewFailureOutcome(domain.OperationList, domain.CategoryTransportFailure, err, "", ""),
		}
	}

	outcome := domain.NewStatusOutcome(domain.OperationList, resp.StatusCode, "", "")
	if resp.StatusCode != http.StatusOK {
		logger.Warn("list allowed origins returned %d", resp.StatusCode)
		return ListResult{Outcome: outcome}
	}

	origins, err := decodeOrigins(resp.Body)
	if err != nil {
		return ListResult{
			Outcome: domain.NewFailureOutcome(domain.OperationList, domain.CategoryParseFailure, err, "", ""),
		}
	}

	logger.Debug("listed %d allowed origins", len(origins))
	return ListResult{Origins: origins, Outcome: outcome, OK: true}
}

// decodeOrigins parses a list body. Missing and empty data both yield no origins.
func decodeOrigins(body []byte) ([]domain.RemoteOrigin, error) {
	var parsed listResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}

	origins := make([]domain.RemoteOrigin, 0, len(parsed.Data))
	for _, rec := range parsed.Data {
		if rec.Domain == nil {
			continue
		}
		origin := domain.RemoteOrigin{Domain: *rec.Domain}
		if rec.ID != nil {
			origin.ID = *rec.ID
		}
		origins = append(origins, origin)
	}
	return origins, nil
}
