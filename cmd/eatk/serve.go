package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/substat-optimizer/internal/server"
	"github.com/iwvelando/substat-optimizer/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type serveOptions struct {
	serverConfigPath string
	address          string
	maxBodySize      string
}

func (o *serveOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&o.address, "address", "", "listen address override (e.g. :8080)")
	cmd.Flags().StringVar(&o.maxBodySize, "max-body-size", "", "request body limit override (e.g. 64K, 1M)")
}

// apply copies the flags that were set on the command line into cfg.
func (o *serveOptions) apply(cmd *cobra.Command, cfg *server.Config) error {
	if cmd.Flags().Changed("address") {
		cfg.Address = o.address
	}
	if cmd.Flags().Changed("max-body-size") {
		size, err := server.ParseSize(o.maxBodySize)
		if err != nil {
			return fmt.Errorf("invalid --max-body-size: %w", err)
		}
		if size <= 0 {
			return fmt.Errorf("invalid --max-body-size: %s must be positive", o.maxBodySize)
		}
		cfg.SetBodySizeBytes(size)
	}
	return nil
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	serve := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the evaluate and optimize HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig(serve.serverConfigPath)
			if err != nil {
				return fmt.Errorf("failed to load server configuration at %s: %w", serve.serverConfigPath, err)
			}
			if err := serve.apply(cmd, cfg); err != nil {
				return err
			}

			logger, err := initializeLogger(cfg.Logging, opts.logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			ln, err := net.Listen("tcp", cfg.Address)
			if err != nil {
				logger.Error("failed to listen", zap.String("op", "main.serve"), zap.String("address", cfg.Address), zap.Error(err))
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, logger, cfg, ln)
		},
	}
	serve.register(cmd)
	return cmd
}

// runServer serves the API on ln until ctx is done, then shuts down gracefully.
func runServer(ctx context.Context, logger *zap.Logger, cfg *server.Config, ln net.Listener) error {
	srv := &http.Server{
		Handler: server.NewHandler(logger, server.Options{
			MaxBodySize:   cfg.BodySizeBytes(),
			MaxIterations: cfg.MaxIterations,
			Version:       version,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server",
			zap.String("op", "main.serve"),
			zap.String("address", ln.Addr().String()),
			zap.Int64("maxBodySize", cfg.BodySizeBytes()),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		logger.Info("server stopped", zap.String("op", "main.serve"))
		return nil
	})

	return g.Wait()
}
