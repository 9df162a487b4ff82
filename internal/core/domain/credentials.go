package domain

import "strings"

// APIType selects whether the allowed origins belong to a merchant or a company account.
type APIType string

// Available API types. The type picks which configured account id is used.
const (
	APITypeMerchants APIType = "merchants"
	APITypeCompanies APIType = "companies"
)

// ParseAPIType returns the API type for a configured value.
// Unknown or empty values fall back to merchants.
func ParseAPIType(s string) APIType {
	if APIType(strings.ToLower(strings.TrimSpace(s))) == APITypeCompanies {
		return APITypeCompanies
	}
	return APITypeMerchants
}

// IsValid returns true if the API type is recognised.
func (t APIType) IsValid() bool {
	return t == APITypeMerchants || t == APITypeCompanies
}

// String returns the string representation.
func (t APIType) String() string {
	return string(t)
}

// Description returns a human-readable label.
func (t APIType) Description() string {
	switch t {
	case APITypeMerchants:
		return "Merchant"
	case APITypeCompanies:
		return "Company"
	default:
		return "Unknown"
	}
}

// Credentials identify one Adyen API credential and the account it lives under.
type Credentials struct {
	// APIType records which account setting AccountID was read from.
	APIType APIType

	// AccountID is the merchant account or company account, matching APIType.
	AccountID string

	// CredentialID names the API credential whose allowed origins are managed.
	CredentialID string

	// APIKey is the decrypted X-API-Key value.
	APIKey string
}

// IsComplete returns true if every field needed for a request is set.
func (c Credentials) IsComplete() bool {
	return c.APIType.IsValid() && c.AccountID != "" && c.CredentialID != "" && c.APIKey != ""
}

// MaskAPIKey hides all but the last four characters of a key.
func MaskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
