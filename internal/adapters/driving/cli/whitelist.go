package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/allowlist-cli/internal/adapters/driving/cli/styles"
	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
)

var whitelistMode string

var whitelistCmd = &cobra.Command{
	Use:     "whitelist",
	Aliases: []string{"sync"},
	Short:   "Add, remove or list the allowed origins of your stores",
	Long: `Update or list the Adyen allowed origins for the active stores.

Modes:
  add     - POST the base URL of every active store
  remove  - DELETE the allowed origins that belong to an active store
  list    - print the allowed origins Adyen currently holds

Each call prints one line. Failures for one store do not stop the others.`,
	Example: `  allowlist whitelist --mode add
  allowlist whitelist --mode list -v`,
	RunE: runWhitelist,
}

func init() {
	whitelistCmd.Flags().StringVar(&whitelistMode, "mode", "", "one of add, remove, list")
	rootCmd.AddCommand(whitelistCmd)
}

func runWhitelist(cmd *cobra.Command, _ []string) error {
	if allowlistService == nil {
		return errors.New("allowlist service not configured")
	}

	report, err := allowlistService.Run(cmd.Context(), whitelistMode)
	if errors.Is(err, domain.ErrInvalidMode) {
		return ErrNoMode
	}
	if err != nil {
		return fmt.Errorf("whitelist %s: %w", whitelistMode, err)
	}

	renderReport(cmd.OutOrStdout(), report)
	return nil
}

// renderReport prints report lines in order.
func renderReport(w io.Writer, report *domain.Report) {
	st := styles.DefaultStyles(w)
	for _, line := range report.Lines {
		switch line.Kind {
		case domain.LineOutcome:
			text := formatOutcome(*line.Outcome)
			if line.Outcome.Succeeded() {
				fmt.Fprintln(w, st.Success.Render(text))
			} else {
				fmt.Fprintln(w, st.Error.Render(text))
			}
		case domain.LineNotice:
			fmt.Fprintln(w, st.Warning.Render(line.Text))
		default:
			fmt.Fprintln(w, line.Text)
		}
	}
}

// formatOutcome renders "CODE: message" for HTTP outcomes and
// "message: error" for failures that never got a status.
func formatOutcome(o domain.Outcome) string {
	var b strings.Builder
	if o.Category.HasStatus() {
		fmt.Fprintf(&b, "%d: %s", o.StatusCode, o.Message)
	} else {
		b.WriteString(o.Message)
	}
	if o.Subject != "" {
		fmt.Fprintf(&b, " [%s]", o.Subject)
	}
	if o.Err != nil && !o.Category.HasStatus() {
		fmt.Fprintf(&b, ": %v", o.Err)
	}
	return b.String()
}
