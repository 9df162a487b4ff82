package driven

// ConfigStore provides access to the persisted configuration file.
// Keys use dot notation (e.g., "stores.2.adyen.credential_id").
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// Keys returns every key that starts with prefix, sorted.
	Keys(prefix string) []string

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Delete removes a key. Missing keys are not an error.
	Delete(key string) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}

// ScopedConfig resolves configuration values for a store scope.
// An empty scope reads the default scope only.
type ScopedConfig interface {
	// Value returns the value at path for scope, falling back to the default scope.
	Value(path, scope string) (string, bool)

	// SetValue writes path at exactly the given scope.
	SetValue(path, scope, value string) error
}
