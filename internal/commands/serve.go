package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gaborage/paramspec"
	"github.com/gaborage/paramspec/contract"
	"github.com/gaborage/paramspec/server"
)

// ServeOptions holds options for the serve command
type ServeOptions struct {
	ContractsDir     string
	DescriptionsRoot string
	Port             int
}

// NewServeCommand creates the serve command
func NewServeCommand(global *GlobalOptions) *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve contract schemas and params over HTTP",
		Long: `Loads every contract in the contracts directory and serves:

  GET /health
  GET /contracts
  GET /contracts/{name}/schema
  GET /contracts/{name}/params?adapter=grape|rails&param_type=body&format=json|yaml

The server stops gracefully on SIGINT or SIGTERM.`,
		Example: `  paramspec serve --config paramspec.yaml
  paramspec serve --contracts-dir api/contracts --port 9090`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, global, opts, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.ContractsDir, "contracts-dir", "", "Contracts directory (default from config)")
	cmd.Flags().StringVar(&opts.DescriptionsRoot, "descriptions-root", "", "Root searched for annotated contract sources")
	cmd.Flags().IntVarP(&opts.Port, "port", "p", 0, "Listen port (default from config)")

	return cmd
}

func runServe(ctx context.Context, global *GlobalOptions, opts *ServeOptions, stderr io.Writer) error {
	cfg, err := loadConfig(global, opts.DescriptionsRoot)
	if err != nil {
		return err
	}
	if opts.ContractsDir != "" {
		cfg.Contracts.Dir = opts.ContractsDir
	}
	if opts.Port != 0 {
		cfg.Server.Port = opts.Port
	}

	log := newLogger(stderr, cfg)

	registry, err := contract.LoadDir(cfg.Contracts.Dir)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, log, paramspec.NewFromConfig(cfg, log), registry)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		log.Info().Msg("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout.Shutdown)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		log.Info().Msg("Server stopped")
		return nil
	})

	return g.Wait()
}
