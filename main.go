package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wagecalc/config"
	"wagecalc/handlers"
	"wagecalc/logging"
	"wagecalc/templates"
	"wagecalc/tui"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const appVersion = "0.1.0"

func main() {
	// Load .env for local development; absent files are fine
	_ = godotenv.Load()

	cfg := config.Load()

	root := &cobra.Command{
		Use:           "wagecalc",
		Short:         "Employee wage calculator (web or terminal UI)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg)
		},
	}
	root.Version = appVersion
	root.SetVersionTemplate("wagecalc v{{.Version}}\n")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg)
		},
	}
	serveCmd.Flags().StringVar(&cfg.ServerPort, "port", cfg.ServerPort, "HTTP port")
	root.Flags().AddFlagSet(serveCmd.Flags())

	var logFile string
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the calculator in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.Discard()
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				logger = logging.New(f, cfg.LogLevel, cfg.LogFormat)
			}
			return tui.Run(logger)
		},
	}
	tuiCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file")

	root.AddCommand(serveCmd, tuiCmd)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	appLogger := logging.WithComponent(logger, logging.ComponentApp)

	if cfg.UsesDevSecret() {
		appLogger.Warn("SESSION_SECRET not set, using development secret")
	}

	tpls, err := templates.Parse()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           handlers.NewRouter(cfg, tpls, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("Server starting", "port", cfg.ServerPort, "version", appVersion)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		appLogger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	appLogger.Info("Server stopped gracefully")
	return nil
}
