// Package settings loads application settings from config.toml and
// ALLOWLIST_* environment variables.
//
// Environment variables override the file: api.base_url is read from
// ALLOWLIST_API_BASE_URL, crypt.key from ALLOWLIST_CRYPT_KEY, and so on.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "ALLOWLIST"

// Setting keys.
const (
	KeyEnvironment       = "api.environment"
	KeyBaseURL           = "api.base_url"
	KeyTimeout           = "api.timeout"
	KeyRequestsPerSecond = "api.requests_per_second"
	KeyDataDir           = "storage.data_dir"
	KeyCryptKey          = "crypt.key"
	KeyCryptKeyFile      = "crypt.key_file"
)

// Loader reads settings for one config directory.
type Loader struct {
	viper     *viper.Viper
	configDir string
}

// NewLoader creates a loader for configDir/config.toml.
func NewLoader(configDir string) *Loader {
	v := viper.New()
	v.SetConfigFile(filepath.Join(configDir, "config.toml"))
	v.SetConfigType("toml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	l := &Loader{viper: v, configDir: configDir}
	l.setDefaults()
	return l
}

func (l *Loader) setDefaults() {
	defaults := domain.DefaultAppSettings()
	l.viper.SetDefault(KeyEnvironment, defaults.API.Environment.String())
	l.viper.SetDefault(KeyBaseURL, "")
	l.viper.SetDefault(KeyTimeout, defaults.API.Timeout)
	l.viper.SetDefault(KeyRequestsPerSecond, defaults.API.RequestsPerSecond)
	l.viper.SetDefault(KeyDataDir, filepath.Join(l.configDir, "data"))
	l.viper.SetDefault(KeyCryptKey, "")
	l.viper.SetDefault(KeyCryptKeyFile, filepath.Join(l.configDir, "crypt.key"))
}

// Load reads the config file, if any, and returns validated settings.
func (l *Loader) Load() (domain.AppSettings, error) {
	if err := l.viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return domain.AppSettings{}, fmt.Errorf(
			"failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions",
			l.viper.ConfigFileUsed(), err)
	}

	s := domain.AppSettings{
		API: domain.APISettings{
			Environment:       domain.Environment(strings.ToLower(l.viper.GetString(KeyEnvironment))),
			BaseURL:           l.viper.GetString(KeyBaseURL),
			Timeout:           l.viper.GetDuration(KeyTimeout),
			RequestsPerSecond: l.viper.GetFloat64(KeyRequestsPerSecond),
		},
		Storage: domain.StorageSettings{
			DataDir: l.viper.GetString(KeyDataDir),
		},
		Crypt: domain.CryptSettings{
			Key:     l.viper.GetString(KeyCryptKey),
			KeyFile: l.viper.GetString(KeyCryptKeyFile),
		},
	}

	if err := validate(s); err != nil {
		return domain.AppSettings{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return s, nil
}

func validate(s domain.AppSettings) error {
	if !s.API.Environment.IsValid() {
		return fmt.Errorf("%w: %s must be %q or %q, got %q", domain.ErrInvalidInput,
			KeyEnvironment, domain.EnvironmentTest, domain.EnvironmentLive, s.API.Environment)
	}
	if s.API.Timeout <= 0 {
		return fmt.Errorf("%w: %s must be positive", domain.ErrInvalidInput, KeyTimeout)
	}
	if s.API.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: %s must be positive", domain.ErrInvalidInput, KeyRequestsPerSecond)
	}
	return nil
}

// Load is a convenience wrapper around NewLoader(configDir).Load().
func Load(configDir string) (domain.AppSettings, error) {
	if _, err := os.Stat(configDir); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return domain.AppSettings{}, err
	}
	return NewLoader(configDir).Load()
}
