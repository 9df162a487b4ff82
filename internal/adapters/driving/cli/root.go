// Package cli implements the allowlist command line interface with cobra.
//
// Commands talk to core services through the driving ports only. Services
// are built lazily by a Bootstrap function once global flags are parsed, so
// --config-dir and --verbose apply to everything the command touches.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
	"github.com/custodia-labs/allowlist-cli/internal/core/ports/driving"
	"github.com/custodia-labs/allowlist-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
)

// Services bundles what the commands need.
type Services struct {
	Allowlist   driving.AllowlistService
	Stores      driving.StoreService
	Credentials driving.CredentialService
	Settings    domain.AppSettings
}

// Bootstrap builds services for a config directory. The returned close
// function releases whatever the services hold open.
type Bootstrap func(configDir string) (*Services, func() error, error)

// Services used by the commands. Tests set these directly.
var (
	allowlistService  driving.AllowlistService
	storeService      driving.StoreService
	credentialService driving.CredentialService
	appSettings       = domain.DefaultAppSettings()
)

var (
	bootstrap     Bootstrap
	closeServices func() error
)

// ErrNoMode is returned when whitelist runs without a recognised mode.
var ErrNoMode = errors.New("Please specify mode: 'add', 'remove', 'list'.") //nolint:revive,stylecheck // user-facing text

var rootCmd = &cobra.Command{
	Use:   "allowlist",
	Short: "Manage Adyen allowed origins for your storefronts",
	Long: `allowlist keeps the allowed origins of an Adyen API credential in step
with the base URLs of your active storefronts.

Run 'allowlist whitelist --mode add' after adding a store, 'remove' before
retiring one, and 'list' to see what Adyen currently allows.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if cmd.Annotations[annotationNoServices] == "true" {
			return nil
		}
		return startServices()
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return stopServices()
	},
}

// annotationNoServices marks commands that run without services.
const annotationNoServices = "no-services"

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print each call made to Adyen")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.allowlist)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices installs services directly, bypassing Bootstrap.
func SetServices(s *Services) {
	if s == nil {
		allowlistService, storeService, credentialService = nil, nil, nil
		appSettings = domain.DefaultAppSettings()
		return
	}
	allowlistService = s.Allowlist
	storeService = s.Stores
	credentialService = s.Credentials
	appSettings = s.Settings
}

func startServices() error {
	if bootstrap == nil || allowlistService != nil {
		return nil
	}
	s, closer, err := bootstrap(configDir)
	if err != nil {
		return err
	}
	SetServices(s)
	closeServices = closer
	return nil
}

func stopServices() error {
	if closeServices == nil {
		return nil
	}
	err := closeServices()
	closeServices = nil
	return err
}

// Execute runs the root command. boot is called once flags are parsed.
func Execute(ctx context.Context, boot Bootstrap) error {
	bootstrap = boot
	defer func() { _ = stopServices() }()
	return rootCmd.ExecuteContext(ctx)
}
