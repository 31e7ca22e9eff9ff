// Command server runs the Polyglot web application: an authenticated
// chat-style translator backed by an external identity provider and an
// external generative model.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/mohitbakre/polyglot/auth"
	"github.com/mohitbakre/polyglot/config"
	"github.com/mohitbakre/polyglot/di"
	"github.com/mohitbakre/polyglot/translation"
)

func main() {
	app := &cli.App{
		Name:  "polyglot-server",
		Usage: "authenticated AI translation chat",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "secrets",
				Usage: "path to a TOML secrets file overlaying the API keys",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cctx *cli.Context) error {
	// Configuration errors are fatal before any listener is bound.
	cfg, err := config.Load(cctx.String("secrets"))
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	authenticator, err := auth.NewIdentityClient(auth.IdentityConfig{
		APIKey:  cfg.FirebaseAPIKey,
		BaseURL: cfg.AuthBaseURL,
	})
	if err != nil {
		return err
	}

	translator, err := translation.NewGeminiTranslator(translation.GeminiConfig{
		APIKey: cfg.GoogleAPIKey,
		Model:  cfg.GeminiModel,
	})
	if err != nil {
		return err
	}

	container := di.NewContainer(
		di.WithAuthenticator(authenticator),
		di.WithTranslator(translator),
	)

	app := newApplication(container, logger)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           newRouter(app),
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logger.Infow("server listening", "addr", cfg.ListenAddr, "model", cfg.GeminiModel)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-shutdown:
		logger.Infow("shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorw("graceful shutdown failed", "error", err)
		if closeErr := server.Close(); closeErr != nil {
			logger.Errorw("forced close failed", "error", closeErr)
		}
	}

	return nil
}

func newLogger(level string) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()

	switch level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	case "warn", "warning":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger.Sugar()
}
