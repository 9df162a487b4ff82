package services

import (
	"context"
	"net/http"
	"time"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
	"github.com/custodia-labs/allowlist-cli/internal/core/ports/driven"
	"github.com/custodia-labs/allowlist-cli/internal/logger"
)

// Reconciler applies a whitelist mode to the remote allowed origins.
// Calls are issued one at a time in a deterministic order.
type Reconciler struct {
	client      driven.AllowedOriginsClient
	credentials CredentialResolver
	lister      *OriginLister
}

// NewReconciler creates a new reconciler.
func NewReconciler(client driven.AllowedOriginsClient, credentials CredentialResolver) *Reconciler {
	return &Reconciler{
		client:      client,
		credentials: credentials,
		lister:      NewOriginLister(client, credentials),
	}
}

// Reconcile runs mode against desired and reports every remote call in order.
func (r *Reconciler) Reconcile(ctx context.Context, mode domain.Mode, desired []domain.LocalOrigin) *domain.Report {
	logger.Section("Whitelist " + mode.String())
	defer logger.Elapsed("whitelist "+mode.String(), time.Now())
	logger.Debug("%d desired origins", len(desired))

	report := domain.NewReport(mode)
	switch mode {
	case domain.ModeAdd:
		r.add(ctx, report, desired)
	case domain.ModeRemove:
		r.remove(ctx, report, desired)
	case domain.ModeList:
		r.list(ctx, report)
	default:
		// ParseMode rejects unknown modes before any caller gets here.
		logger.Warn("%v: %q", domain.ErrInvalidMode, mode)
	}

	logger.Info("%s finished: %d outcomes, %d failed", mode, len(report.Outcomes()), report.FailureCount())
	return report
}

// add posts every desired origin under its own store scope.
func (r *Reconciler) add(ctx context.Context, report *domain.Report, desired []domain.LocalOrigin) {
	for _, origin := range desired {
		outcome := r.send(ctx, domain.OperationAdd, http.MethodPost, origin, "", map[string]string{
			"domain": origin.URL,
		})
		report.AddOutcome(outcome)
	}
}

// remove deletes every remote origin that a desired origin owns.
// Remote entries with no local owner are left alone.
func (r *Reconciler) remove(ctx context.Context, report *domain.Report, desired []domain.LocalOrigin) {
	listed := r.lister.List(ctx)
	if !listed.OK {
		report.AddOutcome(listed.Outcome)
		return
	}

	index := domain.NewOriginIndex(desired)
	for _, remote := range listed.Origins {
		owner, ok := index.Lookup(remote.Domain)
		if !ok {
			logger.Debug("skipping %s: no active store owns it", remote.Domain)
			continue
		}
		outcome := r.send(ctx, domain.OperationRemove, http.MethodDelete, owner, remote.ID, nil)
		report.AddOutcome(outcome)
	}
}

// list reports the fetch outcome followed by each allowed domain.
func (r *Reconciler) list(ctx context.Context, report *domain.Report) {
	listed := r.lister.List(ctx)
	report.AddOutcome(listed.Outcome)
	if !listed.OK {
		return
	}

	if len(listed.Origins) == 0 {
		report.AddNotice(domain.NoOriginsNotice)
		return
	}
	for _, o := range listed.Origins {
		report.AddOrigin(o.Domain)
	}
}

// send issues one call under origin's store scope and classifies the answer.
func (r *Reconciler) send(
	ctx context.Context,
	op domain.Operation,
	method string,
	origin domain.LocalOrigin,
	originID string,
	body map[string]string,
) domain.Outcome {
	creds, err := r.credentials.Resolve(origin.StoreID)
	if err != nil {
		logger.Warn("store %s: %v", origin.StoreID, err)
		return domain.NewFailureOutcome(op, domain.CategoryConfigFailure, err, origin.URL, origin.StoreID)
	}

	resp, err := r.client.Do(ctx, driven.OriginRequest{
		Method:      method,
		Credentials: creds,
		OriginID:    originID,
		Body:        body,
	})
	if err != nil {
		return domain.NewFailureOutcome(op, domain.CategoryTransportFailure, err, origin.URL, origin.StoreID)
	}

	return domain.NewStatusOutcome(op, resp.StatusCode, origin.URL, origin.StoreID)
}
