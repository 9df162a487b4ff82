package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
)

var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "Manage the storefronts whose origins are whitelisted",
	RunE:  runStoresList,
}

var storesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stores and their origins",
	RunE:  runStoresList,
}

var storesAddCmd = &cobra.Command{
	Use:   "add <id> <base-url>",
	Short: "Add a store",
	Long: `Add a store whose base URL should be allowed to call Adyen.

The id is also the configuration scope for per-store credentials:
values under [stores.<id>.adyen] in config.toml override [default.adyen].`,
	Args: cobra.ExactArgs(2),
	RunE: runStoresAdd,
}

var storesDisableCmd = &cobra.Command{
	Use:   "disable <id>",
	Short: "Stop managing a store's origin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStoreActive(cmd, args[0], false)
	},
}

var storesEnableCmd = &cobra.Command{
	Use:   "enable <id>",
	Short: "Manage a store's origin again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStoreActive(cmd, args[0], true)
	},
}

var (
	storeAddName      string
	storeAddCode      string
	storeAddSortOrder int
	storeAddInactive  bool
	storesActiveOnly  bool
)

func init() {
	storesListCmd.Flags().BoolVar(&storesActiveOnly, "active", false, "only show the origins that whitelist would manage")

	storesAddCmd.Flags().StringVar(&storeAddName, "name", "", "display name")
	storesAddCmd.Flags().StringVar(&storeAddCode, "code", "", "short store code")
	storesAddCmd.Flags().IntVar(&storeAddSortOrder, "sort-order", 0, "enumeration order; ties keep insertion order")
	storesAddCmd.Flags().BoolVar(&storeAddInactive, "inactive", false, "add the store disabled")

	storesCmd.AddCommand(storesListCmd)
	storesCmd.AddCommand(storesAddCmd)
	storesCmd.AddCommand(storesDisableCmd)
	storesCmd.AddCommand(storesEnableCmd)
	rootCmd.AddCommand(storesCmd)
}

func runStoresList(cmd *cobra.Command, _ []string) error {
	if storesActiveOnly {
		return runStoresListActive(cmd)
	}
	if storeService == nil {
		return errors.New("store service not configured")
	}

	stores, err := storeService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list stores: %w", err)
	}

	if len(stores) == 0 {
		cmd.Println("No stores configured.")
		cmd.Println("Add one with: allowlist stores add <id> <base-url>")
		return nil
	}

	cmd.Println("Stores:")
	cmd.Println()
	for _, s := range stores {
		status := "active"
		if !s.Active {
			status = "inactive"
		}
		cmd.Printf("  %s  %s (%s)\n", s.ID, domain.NormalizeOrigin(s.BaseURL), status)
		if s.Name != "" || s.Code != "" {
			cmd.Printf("      %s %s\n", s.Code, s.Name)
		}
	}
	return nil
}

func runStoresListActive(cmd *cobra.Command) error {
	if allowlistService == nil {
		return errors.New("allowlist service not configured")
	}

	origins, err := allowlistService.DesiredOrigins(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list stores: %w", err)
	}
	for _, o := range origins {
		cmd.Printf("%s\t%s\n", o.StoreID, o.URL)
	}
	return nil
}

func runStoresAdd(cmd *cobra.Command, args []string) error {
	if storeService == nil {
		return errors.New("store service not configured")
	}

	store := domain.Store{
		ID:        args[0],
		BaseURL:   args[1],
		Name:      storeAddName,
		Code:      storeAddCode,
		SortOrder: storeAddSortOrder,
		Active:    !storeAddInactive,
	}

	if err := storeService.Add(cmd.Context(), store); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return fmt.Errorf("store %s already exists", store.ID)
		}
		return fmt.Errorf("failed to add store: %w", err)
	}

	cmd.Printf("Added store %s: %s\n", store.ID, domain.NormalizeOrigin(store.BaseURL))
	return nil
}

func setStoreActive(cmd *cobra.Command, id string, active bool) error {
	if storeService == nil {
		return errors.New("store service not configured")
	}

	if err := storeService.SetActive(cmd.Context(), id, active); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("store %s not found", id)
		}
		return fmt.Errorf("failed to update store: %w", err)
	}

	state := "disabled"
	if active {
		state = "enabled"
	}
	cmd.Printf("Store %s %s.\n", id, state)
	return nil
}
