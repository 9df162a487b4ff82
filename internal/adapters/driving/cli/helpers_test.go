package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/allowlist-cli/internal/adapters/driven/adyen"
	"github.com/custodia-labs/allowlist-cli/internal/adapters/driven/config/scoped"
	"github.com/custodia-labs/allowlist-cli/internal/adapters/driven/crypto"
	"github.com/custodia-labs/allowlist-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
	"github.com/custodia-labs/allowlist-cli/internal/core/services"
)

// testEnv is a fully wired service stack against a fake Adyen server.
type testEnv struct {
	server *httptest.Server
	stores *memory.StoreRepository
	config *memory.ConfigStore

	mu    sync.Mutex
	calls []string
}

// Calls returns the requests the fake server received, as "METHOD path".
func (e *testEnv) Calls() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.calls...)
}

// setupTestServices wires real services to an httptest server answering with handler.
func setupTestServices(t *testing.T, handler http.HandlerFunc) *testEnv {
	t.Helper()

	env := &testEnv{}
	env.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.mu.Lock()
		env.calls = append(env.calls, r.Method+" "+r.URL.Path)
		env.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(env.server.Close)

	box, err := crypto.NewBox(bytes.Repeat([]byte{0x11}, crypto.KeySize))
	require.NoError(t, err)

	env.config = memory.NewConfigStore()
	sealed, err := box.Encrypt("AQE-test-key")
	require.NoError(t, err)
	require.NoError(t, env.config.Set("default.adyen.merchant_account", "AcmeECOM"))
	require.NoError(t, env.config.Set("default.adyen.credential_id", "S2-123"))
	require.NoError(t, env.config.Set("default.adyen.api_key", sealed))

	env.stores = memory.NewStoreRepository(
		domain.Store{ID: "1", Code: "default", Name: "Main", BaseURL: "https://a.example/", Active: true},
		domain.Store{ID: "2", Code: "en_gb", BaseURL: "https://b.example", Active: true},
		domain.Store{ID: "3", Code: "old", BaseURL: "https://old.example", Active: false},
	)

	client, err := adyen.NewClient(adyen.Config{
		BaseURL:           env.server.URL,
		Timeout:           5 * time.Second,
		RequestsPerSecond: 1000,
	})
	require.NoError(t, err)

	credentials := services.NewCredentialService(scoped.New(env.config), box)
	settings := domain.DefaultAppSettings()
	settings.API.BaseURL = env.server.URL

	SetServices(&Services{
		Allowlist:   services.NewAllowlistService(env.stores, services.NewReconciler(client, credentials)),
		Stores:      services.NewStoreService(env.stores),
		Credentials: credentials,
		Settings:    settings,
	})
	t.Cleanup(func() {
		SetServices(nil)
		resetFlags()
	})
	return env
}

// resetFlags clears flag values that cobra keeps between Execute calls.
func resetFlags() {
	verbose = false
	whitelistMode = ""
	configStore = ""
	storesActiveOnly = false
	storeAddName = ""
	storeAddCode = ""
	storeAddSortOrder = 0
	storeAddInactive = false
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
