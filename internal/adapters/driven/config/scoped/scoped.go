// Package scoped resolves store-scoped configuration on top of a ConfigStore.
//
// Values live under two prefixes:
//
//	default.<path>            applies to every store
//	stores.<store-id>.<path>  overrides the default for one store
//
// A lookup for a store reads its own key first and falls back to the default.
package scoped

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
	"github.com/custodia-labs/allowlist-cli/internal/core/ports/driven"
)

// Ensure Config implements the interface.
var _ driven.ScopedConfig = (*Config)(nil)

const (
	defaultPrefix = "default"
	storesPrefix  = "stores"
)

// Config is a driven.ScopedConfig backed by a ConfigStore.
type Config struct {
	store driven.ConfigStore
}

// New wraps a config store.
func New(store driven.ConfigStore) *Config {
	return &Config{store: store}
}

// Key returns the flat key for path at scope.
func Key(path, scope string) string {
	if scope == "" {
		return defaultPrefix + "." + path
	}
	return storesPrefix + "." + scope + "." + path
}

// Value returns the value at path for scope, falling back to the default scope.
func (c *Config) Value(path, scope string) (string, bool) {
	if scope != "" {
		if v, ok := c.lookup(Key(path, scope)); ok {
			return v, true
		}
	}
	return c.lookup(Key(path, ""))
}

func (c *Config) lookup(key string) (string, bool) {
	raw, ok := c.store.Get(key)
	if !ok {
		return "", false
	}
	switch v := raw.(type) {
	case string:
		return v, true
	case int64, int, float64, bool:
		// TOML lets users write numeric ids unquoted.
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}

// SetValue writes path at exactly the given scope.
func (c *Config) SetValue(path, scope, value string) error {
	if path == "" || strings.Contains(scope, ".") {
		return fmt.Errorf("%w: invalid key %q for scope %q", domain.ErrInvalidInput, path, scope)
	}
	return c.store.Set(Key(path, scope), value)
}

// Scopes returns the store ids that have at least one override, sorted.
func (c *Config) Scopes() []string {
	seen := make(map[string]bool)
	var scopes []string
	for _, k := range c.store.Keys(storesPrefix + ".") {
		rest := strings.TrimPrefix(k, storesPrefix+".")
		id, _, ok := strings.Cut(rest, ".")
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		scopes = append(scopes, id)
	}
	return scopes
}
