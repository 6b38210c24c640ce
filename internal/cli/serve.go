package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"focuspad/internal/config"
	router "focuspad/internal/http"
	"focuspad/internal/http/handlers"
	"focuspad/internal/logging"
	"focuspad/internal/service"
	"focuspad/internal/store/memory"
	"focuspad/internal/tracing"
)

type serveOptions struct {
	configPath string
	host       string
	port       int
	logLevel   string
	logFormat  string
	tracing    string
}

func newServeCmd() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}

			ln, err := net.Listen("tcp", cfg.Addr())
			if err != nil {
				return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, logger, ln, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&opts.host, "host", "", "interface to bind (overrides config and "+config.EnvHost+")")
	cmd.Flags().IntVar(&opts.port, "port", 0, "port to bind (overrides config and "+config.EnvPort+")")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "auto, text or json")
	cmd.Flags().StringVar(&opts.tracing, "trace-exporter", "", "none or stdout")

	return cmd
}

// resolveConfig applies explicitly set flags on top of the loaded config.
func resolveConfig(cmd *cobra.Command, opts serveOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.HTTP.Host = opts.host
	}
	if flags.Changed("port") {
		cfg.HTTP.Port = opts.port
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}
	if flags.Changed("trace-exporter") {
		cfg.Tracing.Exporter = opts.tracing
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// serve runs the API on ln until ctx is cancelled, then shuts down gracefully.
// Exported spans go to traceOut when the stdout exporter is configured.
func serve(ctx context.Context, cfg config.Config, logger *slog.Logger, ln net.Listener, traceOut io.Writer) (err error) {
	tp, err := tracing.NewProvider(cfg.Tracing, traceOut)
	if err != nil {
		return err
	}
	tracing.Install(tp)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if tpErr := tp.Shutdown(shutdownCtx); tpErr != nil {
			err = errors.Join(err, fmt.Errorf("tracer shutdown: %w", tpErr))
		}
	}()

	svc, err := service.New(memory.NewTaskStore(), memory.NewSessionStore())
	if err != nil {
		return fmt.Errorf("service initiation failed: %w", err)
	}

	origins, err := cfg.OriginPattern()
	if err != nil {
		return err
	}

	handler := handlers.New(svc, logger)
	server := &http.Server{
		Handler: router.New(handler, router.Options{
			Logger:         logger,
			AllowedOrigins: origins,
			TracerProvider: tp,
		}),
		ErrorLog: slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("listening", slog.String("addr", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shut down signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}

		logger.Info("shut down gracefully")
		return nil
	})

	return g.Wait()
}
