package scoped

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/allowlist-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "default.adyen.credential_id", Key("adyen.credential_id", ""))
	assert.Equal(t, "stores.2.adyen.credential_id", Key("adyen.credential_id", "2"))
}

func TestConfig_Value_StoreOverridesDefault(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("default.adyen.merchant_account", "AcmeECOM")
	_ = store.Set("stores.2.adyen.merchant_account", "AcmeUK")
	cfg := New(store)

	v, ok := cfg.Value("adyen.merchant_account", "2")
	require.True(t, ok)
	assert.Equal(t, "AcmeUK", v)

	v, ok = cfg.Value("adyen.merchant_account", "1")
	require.True(t, ok)
	assert.Equal(t, "AcmeECOM", v)

	v, ok = cfg.Value("adyen.merchant_account", "")
	require.True(t, ok)
	assert.Equal(t, "AcmeECOM", v)
}

func TestConfig_Value_Missing(t *testing.T) {
	cfg := New(memory.NewConfigStore())

	_, ok := cfg.Value("adyen.credential_id", "1")

	assert.False(t, ok)
}

func TestConfig_Value_NumericValue(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("default.adyen.credential_id", int64(12345))
	cfg := New(store)

	v, ok := cfg.Value("adyen.credential_id", "")

	require.True(t, ok)
	assert.Equal(t, "12345", v)
}

func TestConfig_Value_UnsupportedType(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("default.adyen.credential_id", []string{"a"})
	cfg := New(store)

	_, ok := cfg.Value("adyen.credential_id", "")

	assert.False(t, ok)
}

func TestConfig_SetValue(t *testing.T) {
	store := memory.NewConfigStore()
	cfg := New(store)

	require.NoError(t, cfg.SetValue("adyen.api_type", "", "companies"))
	require.NoError(t, cfg.SetValue("adyen.api_type", "3", "merchants"))

	assert.Equal(t, "companies", store.GetString("default.adyen.api_type"))
	assert.Equal(t, "merchants", store.GetString("stores.3.adyen.api_type"))
}

func TestConfig_SetValue_InvalidScope(t *testing.T) {
	cfg := New(memory.NewConfigStore())

	assert.ErrorIs(t, cfg.SetValue("adyen.api_type", "a.b", "x"), domain.ErrInvalidInput)
	assert.ErrorIs(t, cfg.SetValue("", "1", "x"), domain.ErrInvalidInput)
}

func TestConfig_Scopes(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("default.adyen.api_type", "merchants")
	_ = store.Set("stores.2.adyen.credential_id", "a")
	_ = store.Set("stores.2.adyen.api_key", "b")
	_ = store.Set("stores.1.adyen.credential_id", "c")
	cfg := New(store)

	assert.Equal(t, []string{"1", "2"}, cfg.Scopes())
}
