// Command allowlist keeps Adyen allowed origins in step with storefront URLs.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/allowlist-cli/internal/adapters/driven/adyen"
	"github.com/custodia-labs/allowlist-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/allowlist-cli/internal/adapters/driven/config/scoped"
	"github.com/custodia-labs/allowlist-cli/internal/adapters/driven/config/settings"
	"github.com/custodia-labs/allowlist-cli/internal/adapters/driven/crypto"
	"github.com/custodia-labs/allowlist-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/allowlist-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/allowlist-cli/internal/core/services"
)

// Build information set via ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	if err := cli.Execute(ctx, wire); err != nil {
		stop()
		os.Exit(1)
	}
}

// wire builds the service stack for configDir.
func wire(configDir string) (*cli.Services, func() error, error) {
	if configDir == "" {
		dir, err := file.DefaultConfigDir()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve config dir: %w", err)
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open config: %w", err)
	}

	appSettings, err := settings.Load(configDir)
	if err != nil {
		return nil, nil, err
	}

	box, err := crypto.NewBoxFromSettings(appSettings.Crypt)
	if err != nil {
		return nil, nil, fmt.Errorf("crypt key: %w", err)
	}

	db, err := sqlite.NewStore(appSettings.Storage.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open store database: %w", err)
	}

	client, err := adyen.NewClient(adyen.Config{
		BaseURL:           appSettings.API.ResolvedBaseURL(),
		Timeout:           appSettings.API.Timeout,
		RequestsPerSecond: appSettings.API.RequestsPerSecond,
		UserAgent:         "allowlist/" + version,
	})
	if err != nil {
		return nil, nil, errors.Join(err, db.Close())
	}

	stores := db.StoreRepository()
	credentials := services.NewCredentialService(scoped.New(configStore), box)
	reconciler := services.NewReconciler(client, credentials)

	return &cli.Services{
		Allowlist:   services.NewAllowlistService(stores, reconciler),
		Stores:      services.NewStoreService(stores),
		Credentials: credentials,
		Settings:    appSettings,
	}, db.Close, nil
}
