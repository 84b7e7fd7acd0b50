// Package cli wires the portfolio commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `portfolio serves a single-page personal portfolio: a hero, an about block
and a list of project cards.

Settings are read from the environment (and a .env file if present):
  PORT             listen port (default 8080)
  GIN_MODE         debug, release or test (default release)
  SITE_EXPORT_DIR  output directory for export (default dist)`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
