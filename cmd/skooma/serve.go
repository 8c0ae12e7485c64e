package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/skooma-dev/skooma/internal/config"
	"github.com/skooma-dev/skooma/internal/dev"
)

func serveCmd() *cobra.Command {
	var (
		port     int
		host     string
		noReload bool
	)

	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Preview tree documents with live reload",
		Long: `Start the preview server.

Every tree document in the configured directory is served as a page at
/view/{name}. Browsers reload when a document changes and show an error
overlay when it no longer builds. Metrics are served at /metrics.

Settings are read from skooma.json in dir (default: current directory).

Examples:
  skooma serve
  skooma serve site --port=8080
  skooma serve --host=0.0.0.0 --no-reload`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			cfg, err := config.LoadOrDefault(dir)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Dev.Port = port
			}
			if host != "" {
				cfg.Dev.Host = host
			}
			if noReload {
				cfg.Dev.HotReload = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runServe(cmd, cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from skooma.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from skooma.json)")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")

	return cmd
}

func runServe(cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()

	server := dev.NewServer(dev.ServerOptions{
		Config: cfg,
		Logger: slog.Default(),
		OnBuildComplete: func(result dev.BuildResult) {
			if result.Err == nil {
				success(out, "Built %s in %s", result.Document, result.Duration.Round(time.Microsecond))
			}
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	info(out, "Serving %s at %s", cfg.TreesPath(), cfg.DevURL())
	return server.Start(ctx)
}
