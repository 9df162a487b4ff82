package services

import (
	"fmt"
	"slices"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
	"github.com/custodia-labs/allowlist-cli/internal/core/ports/driven"
	"github.com/custodia-labs/allowlist-cli/internal/core/ports/driving"
	"github.com/custodia-labs/allowlist-cli/internal/logger"
)

// Ensure CredentialService implements the interface.
var _ driving.CredentialService = (*CredentialService)(nil)

// CredentialResolver resolves credentials for a store scope.
type CredentialResolver interface {
	Resolve(scope string) (domain.Credentials, error)
}

// CredentialService reads Adyen credentials from scoped configuration.
type CredentialService struct {
	config driven.ScopedConfig
	box    driven.SecretBox
}

// NewCredentialService creates a new credential service.
func NewCredentialService(config driven.ScopedConfig, box driven.SecretBox) *CredentialService {
	return &CredentialService{
		config: config,
		box:    box,
	}
}

// Resolve returns complete, decrypted credentials for scope.
func (s *CredentialService) Resolve(scope string) (domain.Credentials, error) {
	if s.config == nil || s.box == nil {
		return domain.Credentials{}, domain.ErrNotImplemented
	}

	apiTypeValue, _ := s.config.Value(driving.KeyAPIType, scope)
	apiType := domain.ParseAPIType(apiTypeValue)

	accountKey := driving.KeyMerchantAccount
	if apiType == domain.APITypeCompanies {
		accountKey = driving.KeyCompanyAccount
	}

	account, err := s.require(accountKey, scope)
	if err != nil {
		return domain.Credentials{}, err
	}
	credentialID, err := s.require(driving.KeyCredentialID, scope)
	if err != nil {
		return domain.Credentials{}, err
	}
	sealed, err := s.require(driving.KeyAPIKey, scope)
	if err != nil {
		return domain.Credentials{}, err
	}

	apiKey, err := s.box.Decrypt(sealed)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("api key for %s: %w", scopeName(scope), err)
	}
	logger.Redact(apiKey)

	return domain.Credentials{
		APIType:      apiType,
		AccountID:    account,
		CredentialID: credentialID,
		APIKey:       apiKey,
	}, nil
}

func (s *CredentialService) require(key, scope string) (string, error) {
	v, ok := s.config.Value(key, scope)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s for %s", domain.ErrMissingConfig, key, scopeName(scope))
	}
	return v, nil
}

// Set writes a plain setting at scope.
func (s *CredentialService) Set(key, value, scope string) error {
	if s.config == nil {
		return domain.ErrNotImplemented
	}
	if !slices.Contains(driving.SettableKeys(), key) {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if key == driving.KeyAPIType && !domain.APIType(value).IsValid() {
		return fmt.Errorf("%w: api type must be %q or %q",
			domain.ErrInvalidInput, domain.APITypeMerchants, domain.APITypeCompanies)
	}
	if err := s.config.SetValue(key, scope, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// SetAPIKey encrypts and stores the API key at scope.
func (s *CredentialService) SetAPIKey(plaintext, scope string) error {
	if s.config == nil || s.box == nil {
		return domain.ErrNotImplemented
	}
	if plaintext == "" {
		return fmt.Errorf("%w: api key is empty", domain.ErrInvalidInput)
	}
	sealed, err := s.box.Encrypt(plaintext)
	if err != nil {
		return fmt.Errorf("encrypt api key: %w", err)
	}
	if err := s.config.SetValue(driving.KeyAPIKey, scope, sealed); err != nil {
		return fmt.Errorf("save api key: %w", err)
	}
	return nil
}

func scopeName(scope string) string {
	if scope == "" {
		return "default scope"
	}
	return "store " + scope
}
