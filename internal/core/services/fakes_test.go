package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
	"github.com/custodia-labs/allowlist-cli/internal/core/ports/driven"
)

// fakeClient records every request and answers from a responder function.
type fakeClient struct {
	mu        sync.Mutex
	requests  []driven.OriginRequest
	responder func(req driven.OriginRequest) (*driven.OriginResponse, error)
}

var _ driven.AllowedOriginsClient = (*fakeClient)(nil)

func (c *fakeClient) Do(_ context.Context, req driven.OriginRequest) (*driven.OriginResponse, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req)
	c.mu.Unlock()
	if c.responder == nil {
		return &driven.OriginResponse{StatusCode: http.StatusOK}, nil
	}
	return c.responder(req)
}

func (c *fakeClient) methods() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.requests))
	for _, r := range c.requests {
		out = append(out, r.Method)
	}
	return out
}

func (c *fakeClient) byMethod(method string) []driven.OriginRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []driven.OriginRequest
	for _, r := range c.requests {
		if r.Method == method {
			out = append(out, r)
		}
	}
	return out
}

// listThen answers GET with listStatus/listBody and everything else with status.
func listThen(listStatus int, listBody string, status int) func(driven.OriginRequest) (*driven.OriginResponse, error) {
	return func(req driven.OriginRequest) (*driven.OriginResponse, error) {
		if req.Method == http.MethodGet {
			return &driven.OriginResponse{StatusCode: listStatus, Body: []byte(listBody)}, nil
		}
		return &driven.OriginResponse{StatusCode: status}, nil
	}
}

// fakeResolver hands out credentials per scope. Scopes listed in fail error out.
type fakeResolver struct {
	fail map[string]bool
}

func (r *fakeResolver) Resolve(scope string) (domain.Credentials, error) {
	if r != nil && r.fail[scope] {
		return domain.Credentials{}, domain.ErrMissingConfig
	}
	account := "DefaultAccount"
	if scope != "" {
		account = "Account-" + scope
	}
	return domain.Credentials{
		APIType:      domain.APITypeMerchants,
		AccountID:    account,
		CredentialID: "S2-" + scope,
		APIKey:       "key-" + scope,
	}, nil
}

// plainBox seals by prefixing. It fails to open anything it did not seal.
type plainBox struct {
	encryptErr error
}

var _ driven.SecretBox = (*plainBox)(nil)

func (b *plainBox) Encrypt(plaintext string) (string, error) {
	if b.encryptErr != nil {
		return "", b.encryptErr
	}
	return "sealed:" + plaintext, nil
}

func (b *plainBox) Decrypt(sealed string) (string, error) {
	plain, ok := strings.CutPrefix(sealed, "sealed:")
	if !ok {
		return "", domain.ErrDecrypt
	}
	return plain, nil
}

var errBoom = errors.New("boom")

// failingStores fails every call.
type failingStores struct{}

var _ driven.StoreRepository = failingStores{}

func (failingStores) ListActive(context.Context) ([]domain.Store, error) { return nil, errBoom }
func (failingStores) List(context.Context) ([]domain.Store, error) { return nil, errBoom }
func (failingStores) Get(context.Context, string) (*domain.Store, error) { return nil, errBoom }
func (failingStores) Save(context.Context, domain.Store) error { return errBoom }
func (failingStores) SetActive(context.Context, string, bool) error { return errBoom }

func origins(pairs ...string) []domain.LocalOrigin {
	out := make([]domain.LocalOrigin, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.LocalOrigin{StoreID: pairs[i], URL: pairs[i+1]})
	}
	return out
}

func transportErr(req driven.OriginRequest) error {
	return &domain.TransportError{Op: req.Method, URL: "http://adyen.invalid", Err: errors.New("connection refused")}
}
