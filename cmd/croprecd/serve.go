package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"croprecd/internal/config"
	"croprecd/internal/httpapi"
	"croprecd/internal/predict"
	"croprecd/internal/registry"
)

func (c *cli) serveCmd() *cobra.Command {
	def := config.Defaults()
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Load the artifacts and serve the HTTP API",
		Example: "  croprecd serve --addr :8000 --artifacts-dir dist\n  croprecd serve --api-revision 2 --log-format console",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, c.cfg, nil)
		},
	}
	f := cmd.Flags()
	f.String("addr", def.Addr, "HTTP listen address (CROPRECD_ADDR)")
	f.Int("cache-size", def.CacheSize, "Prediction LRU cache entries, 0 disables (CROPRECD_CACHE_SIZE)")
	f.Int("batch-workers", def.BatchWorkers, "Concurrent predictions within one batch (CROPRECD_BATCH_WORKERS)")
	f.Int64("max-body-bytes", def.MaxBodyBytes, "Maximum JSON request body size (CROPRECD_MAX_BODY_BYTES)")
	f.Int64("request-timeout", def.RequestTimeoutSeconds, "Per-prediction timeout in seconds, 0 disables (CROPRECD_REQUEST_TIMEOUT_SECONDS)")
	f.Int64("shutdown-timeout", def.ShutdownTimeoutSeconds, "Graceful shutdown timeout in seconds")
	f.Float64("rate-limit", def.RateLimit, "Requests per second across all clients, 0 disables (CROPRECD_RATE_LIMIT)")
	f.Int("rate-limit-burst", def.RateLimitBurst, "Rate limiter burst, defaults to the rate")
	f.Bool("cors", *def.CORSEnabled, "Enable CORS (CROPRECD_CORS_ENABLED)")
	f.String("cors-origins", "*", "Comma-separated allowed origins (CROPRECD_CORS_ALLOWED_ORIGINS)")
	f.String("cors-methods", "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS", "Comma-separated allowed methods")
	f.String("cors-headers", "*", "Comma-separated allowed headers")
	return cmd
}

// configureHTTP applies cfg to the httpapi package settings.
func configureHTTP(cfg config.Config) {
	httpapi.SetLogger(log.Logger)
	httpapi.SetDefaultLogLevel(cfg.LogLevel)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetPredictTimeout(time.Duration(cfg.RequestTimeoutSeconds) * time.Second)
	httpapi.SetRateLimit(cfg.RateLimit, cfg.RateLimitBurst)
	enabled := cfg.CORSEnabled == nil || *cfg.CORSEnabled
	httpapi.SetCORSOptions(enabled, cfg.CORSAllowedOrigins, cfg.CORSAllowedMethods, cfg.CORSAllowedHeaders)
}

// newService loads the registry and wraps it. Loading completes before any
// listener exists.
func newService(cfg config.Config) *predict.Service {
	reg := registry.Load(registry.Options{Dir: cfg.ArtifactsDir, Revision: registry.Revision(cfg.APIRevision)})
	return predict.New(reg, predict.Config{CacheSize: cfg.CacheSize, BatchWorkers: cfg.BatchWorkers})
}

// serve runs the API until ctx is canceled. When ln is nil it listens on
// cfg.Addr.
func serve(ctx context.Context, cfg config.Config, ln net.Listener) error {
	svc := newService(cfg)
	configureHTTP(cfg)

	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)
	defer httpapi.SetBaseContext(nil)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewMux(svc),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", cfg.Addr); err != nil {
			return err
		}
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", ln.Addr().String()).
			Int("api_revision", int(svc.Revision())).
			Bool("models_loaded", svc.Ready()).
			Msg("croprecd listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := time.Duration(cfg.ShutdownTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	log.Info().Dur("timeout", timeout).Msg("shutting down")
	err := srv.Shutdown(shutdownCtx)
	cancelBase()
	if err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
		return err
	}
	return nil
}
