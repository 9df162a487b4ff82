package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
	"github.com/custodia-labs/allowlist-cli/internal/core/ports/driving"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change Adyen credentials",
	Long: `View and change the Adyen credentials used for each store.

Values are read from the store's scope first and fall back to the default
scope. Use --store to target a store; omit it for the default scope.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resolved credentials and API settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a credential value",
	Long: fmt.Sprintf(`Set a credential value for a scope.

Keys:
  %s`, strings.Join(driving.SettableKeys(), "\n  ")),
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configSetAPIKeyCmd = &cobra.Command{
	Use:   "set-api-key",
	Short: "Store an encrypted API key",
	Long: `Prompt for an Adyen API key and store it encrypted.

The key is read without echo when stdin is a terminal, otherwise from the
first line of stdin.`,
	Args: cobra.NoArgs,
	RunE: runConfigSetAPIKey,
}

var configStore string

// readSecret reads a secret from the user. Replaced in tests.
var readSecret = readSecretFromStdin

func init() {
	configCmd.PersistentFlags().StringVar(&configStore, "store", "", "store id (default scope when empty)")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSetAPIKeyCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if credentialService == nil {
		return errors.New("credential service not configured")
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[API]")
	cmd.Printf("  Environment: %s\n", appSettings.API.Environment)
	cmd.Printf("  Base URL: %s\n", appSettings.API.ResolvedBaseURL())
	cmd.Printf("  Timeout: %s\n", appSettings.API.Timeout)
	cmd.Printf("  Requests/sec: %g\n", appSettings.API.RequestsPerSecond)
	cmd.Println()

	scope := "default"
	if configStore != "" {
		scope = "store " + configStore
	}
	cmd.Printf("[Adyen: %s]\n", scope)

	creds, err := credentialService.Resolve(configStore)
	if err != nil {
		cmd.Printf("  Status: not configured (%v)\n", err)
		return nil
	}
	cmd.Printf("  API type: %s\n", creds.APIType.Description())
	cmd.Printf("  Account: %s\n", creds.AccountID)
	cmd.Printf("  Credential: %s\n", creds.CredentialID)
	cmd.Printf("  API key: %s\n", domain.MaskAPIKey(creds.APIKey))
	cmd.Println("  Status: configured")
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if credentialService == nil {
		return errors.New("credential service not configured")
	}

	key, value := args[0], args[1]
	if key == driving.KeyAPIKey {
		return errors.New("use 'allowlist config set-api-key' to store the API key")
	}
	if err := credentialService.Set(key, value, configStore); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runConfigSetAPIKey(cmd *cobra.Command, _ []string) error {
	if credentialService == nil {
		return errors.New("credential service not configured")
	}

	key, err := readSecret(cmd, "Adyen API key: ")
	if err != nil {
		return fmt.Errorf("failed to read API key: %w", err)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("API key is empty")
	}

	if err := credentialService.SetAPIKey(key, configStore); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}

	cmd.Printf("API key saved (%s).\n", domain.MaskAPIKey(key))
	return nil
}

func readSecretFromStdin(cmd *cobra.Command, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		cmd.Print(prompt)
		data, err := term.ReadPassword(fd)
		cmd.Println()
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return readLine(cmd.InOrStdin())
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
