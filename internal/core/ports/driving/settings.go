package driving

import "github.com/custodia-labs/allowlist-cli/internal/core/domain"

// Config keys understood by the credential resolver, relative to a scope.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyAPIType         = "adyen.api_type"
	KeyMerchantAccount = "adyen.merchant_account"
	KeyCompanyAccount  = "adyen.company_account"
	KeyCredentialID    = "adyen.credential_id"
	KeyAPIKey          = "adyen.api_key"
)

// SettableKeys lists the keys that `config set` accepts.
func SettableKeys() []string {
	return []string{KeyAPIType, KeyMerchantAccount, KeyCompanyAccount, KeyCredentialID}
}

// CredentialService resolves and updates Adyen credentials per store scope.
type CredentialService interface {
	// Resolve returns complete, decrypted credentials for scope.
	// An empty scope reads the default scope.
	Resolve(scope string) (domain.Credentials, error)

	// Set writes a plain setting at scope.
	Set(key, value, scope string) error

	// SetAPIKey encrypts and stores the API key at scope.
	SetAPIKey(plaintext, scope string) error
}
