package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCmd_Show(t *testing.T) {
	setupTestServices(t, okHandler)

	out, _, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Environment: test")
	assert.Contains(t, out, "[Adyen: default]")
	assert.Contains(t, out, "Account: AcmeECOM")
	assert.Contains(t, out, "Credential: S2-123")
	assert.Contains(t, out, "API key: ********-key")
	assert.NotContains(t, out, "AQE-test-key")
	assert.Contains(t, out, "Status: configured")
}

func TestConfigCmd_Show_NotConfigured(t *testing.T) {
	env := setupTestServices(t, okHandler)
	require.NoError(t, env.config.Delete("default.adyen.credential_id"))

	out, _, err := execute(t, "config", "show", "--store", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "[Adyen: store 2]")
	assert.Contains(t, out, "Status: not configured")
	assert.Contains(t, out, "adyen.credential_id")
}

func TestConfigCmd_Set(t *testing.T) {
	env := setupTestServices(t, okHandler)

	out, _, err := execute(t, "config", "set", "adyen.credential_id", "S2-uk", "--store", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "Set adyen.credential_id = S2-uk")
	assert.Equal(t, "S2-uk", env.config.GetString("stores.2.adyen.credential_id"))
	assert.Equal(t, "S2-123", env.config.GetString("default.adyen.credential_id"))
}

func TestConfigCmd_Set_Rejects(t *testing.T) {
	setupTestServices(t, okHandler)

	_, _, err := execute(t, "config", "set", "adyen.api_key", "plain")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set-api-key")

	_, _, err = execute(t, "config", "set", "adyen.api_type", "partners")
	assert.Error(t, err)
}

func TestConfigCmd_SetAPIKey(t *testing.T) {
	env := setupTestServices(t, okHandler)
	original := readSecret
	readSecret = func(*cobra.Command, string) (string, error) { return "  AQE-new-store-key \n", nil }
	defer func() { readSecret = original }()

	out, _, err := execute(t, "config", "set-api-key", "--store", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "API key saved (")
	assert.NotContains(t, out, "AQE-new-store-key")
	sealed := env.config.GetString("stores.2.adyen.api_key")
	assert.True(t, strings.HasPrefix(sealed, "v1:"))

	out, _, err = execute(t, "config", "show", "--store", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "API key: *************-key")
}

func TestConfigCmd_SetAPIKey_Empty(t *testing.T) {
	setupTestServices(t, okHandler)
	original := readSecret
	readSecret = func(*cobra.Command, string) (string, error) { return "   ", nil }
	defer func() { readSecret = original }()

	_, _, err := execute(t, "config", "set-api-key")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestReadLine(t *testing.T) {
	got, err := readLine(strings.NewReader("secret\r\nignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "secret", got)

	got, err = readLine(strings.NewReader("no-newline"))
	require.NoError(t, err)
	assert.Equal(t, "no-newline", got)
}
