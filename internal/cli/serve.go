package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sheharyar/portfolio/internal/config"
	"github.com/sheharyar/portfolio/internal/portfolio"
	"github.com/sheharyar/portfolio/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Serve the portfolio page.

Examples:
  portfolio serve              # Start on $PORT or 8080
  portfolio serve --port 3000  # Start on port 3000`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine := site.New(site.Options{
		Mode:     cfg.Mode,
		Site:     portfolio.Owner,
		Projects: portfolio.Projects,
	})
	fmt.Fprintf(cmd.OutOrStdout(), "Serving portfolio on http://localhost:%d\n", cfg.Port)
	return site.Serve(ctx, cfg.Addr(), engine)
}
