package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sheharyar/portfolio/internal/config"
	"github.com/sheharyar/portfolio/internal/portfolio"
	"github.com/sheharyar/portfolio/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the page as static files",
	Long: `Render index.html and copy the stylesheet into an output directory,
ready to be hosted without the Go server.

Examples:
  portfolio export              # Write to $SITE_EXPORT_DIR or ./dist
  portfolio export --out public # Write to ./public`,
	RunE: runExport,
}

var exportDir string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "", "Output directory (overrides SITE_EXPORT_DIR)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("out") {
		cfg.ExportDir = exportDir
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if err := site.Export(cfg.ExportDir, portfolio.Owner, portfolio.Projects); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d projects to %s\n", len(portfolio.Projects), cfg.ExportDir)
	return nil
}
