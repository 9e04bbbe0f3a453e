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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/xid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/valeconecta/conecta/internal/alerts"
	"github.com/valeconecta/conecta/internal/assistant"
	"github.com/valeconecta/conecta/internal/auth"
	"github.com/valeconecta/conecta/internal/config"
	"github.com/valeconecta/conecta/internal/db"
	"github.com/valeconecta/conecta/internal/logger"
	mware "github.com/valeconecta/conecta/internal/middleware"
	"github.com/valeconecta/conecta/internal/payment"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	warnings, err := cfg.Validate()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	for _, w := range warnings {
		log.Warn("config", zap.String("warning", w))
	}

	seed, err := loadSeed(cfg.SeedFile)
	if err != nil {
		return err
	}
	store := db.New(seed, db.Options{
		CreditPackSize: cfg.CreditPackSize,
	})

	inbox := alerts.NewInbox()
	notify := alerts.NewNotifier(inbox, log.Named("alerts"))
	notify.Start()
	defer notify.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var gen assistant.Generator
	if cfg.GeminiAPIKey != "" {
		g, err := assistant.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn("assistant disabled", zap.Error(err))
		} else {
			gen = g
		}
	}

	deps := serverDeps{
		store:     store,
		inbox:     inbox,
		notify:    notify,
		gateway:   payment.NewMockGateway(cfg.PaymentDelay),
		assistant: assistant.NewService(gen, log.Named("assistant")),
		tokens:    auth.NewTokens(cfg.Secret(), cfg.TokenTTL),
		log:       log,
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = mware.NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return xid.New().String() },
	}))
	e.Use(mware.RequestLogger(log.Named("http")))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.BodyLimit("1M"))
	if cfg.RateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))))
	}

	registerRoutes(e, deps)

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func loadSeed(path string) (*db.Seed, error) {
	if path == "" {
		return db.DefaultSeed()
	}
	return db.LoadSeedFile(path)
}
