package domain

import "time"

// Environment selects which Adyen Management API host is used.
type Environment string

// Available environments.
const (
	EnvironmentTest Environment = "test"
	EnvironmentLive Environment = "live"
)

// Management API base URLs per environment.
const (
	TestBaseURL = "https://management-test.adyen.com/"
	LiveBaseURL = "https://management-live.adyen.com/"
)

// IsValid returns true if the environment is recognised.
func (e Environment) IsValid() bool {
	return e == EnvironmentTest || e == EnvironmentLive
}

// BaseURL returns the Management API base URL for the environment.
func (e Environment) BaseURL() string {
	if e == EnvironmentLive {
		return LiveBaseURL
	}
	return TestBaseURL
}

// String returns the string representation.
func (e Environment) String() string {
	return string(e)
}

// APISettings holds Management API connection configuration.
type APISettings struct {
	// Environment picks the default base URL.
	Environment Environment

	// BaseURL overrides the environment URL when set.
	BaseURL string

	// Timeout bounds each request.
	Timeout time.Duration

	// RequestsPerSecond paces outgoing requests.
	RequestsPerSecond float64
}

// ResolvedBaseURL returns the explicit base URL, or the environment default.
// The result always ends with a slash.
func (a APISettings) ResolvedBaseURL() string {
	u := a.BaseURL
	if u == "" {
		u = a.Environment.BaseURL()
	}
	if u[len(u)-1] != '/' {
		u += "/"
	}
	return u
}

// StorageSettings holds local storage configuration.
type StorageSettings struct {
	// DataDir holds the store database.
	DataDir string
}

// CryptSettings holds the secret box key configuration.
type CryptSettings struct {
	// Key is a hex-encoded key; takes precedence over KeyFile.
	Key string

	// KeyFile is where the key is stored when Key is empty.
	KeyFile string
}

// AppSettings holds the complete application configuration.
type AppSettings struct {
	API     APISettings
	Storage StorageSettings
	Crypt   CryptSettings
}

// DefaultAppSettings returns the default configuration.
// Paths are left empty; the settings loader fills them relative to the config directory.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			Environment:       EnvironmentTest,
			Timeout:           30 * time.Second,
			RequestsPerSecond: 5,
		},
	}
}
