package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"tweet-tipping/internal/adapters/web"
	"tweet-tipping/internal/app"
	"tweet-tipping/internal/config"
	"tweet-tipping/internal/telemetry"
	"tweet-tipping/pkg/log"
	"tweet-tipping/pkg/log/transporters"
)

func main() {
	cfg, err := config.Load(config.Path(""))
	if err != nil {
		log.GlobalError("failed to load config", "error", err)
		os.Exit(1)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.GlobalWarn("unknown log level, using info", "log_level", cfg.LogLevel)
	}
	logger := log.New(level, transporters.NewStdout())
	log.SetDefault(logger)
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		ServiceName: cfg.Tracing.ServiceName,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		logger.Error("failed to set up tracing", "error", err)
		return
	}
	defer shutdownTracing(context.Background())

	services, err := app.New(ctx, cfg, logger, app.Options{})
	if err != nil {
		logger.Error("failed to start services", "error", err)
		return
	}
	defer services.Close()

	handlers := web.NewHandlers(web.HandlersConfig{
		Session:        services.Session,
		Resolver:       services.Resolver,
		Tip:            services.Tip,
		Claim:          services.Claim,
		Preview:        services.Preview,
		AllowedHosts:   cfg.Tweets.AllowedHosts,
		RequestTimeout: cfg.Server.RequestTimeout,
	})
	rateLimiter := web.NewRateLimiter(cfg.Server.TipRateLimit, cfg.Server.RateWindow)
	defer rateLimiter.Close()

	fiberApp := fiber.New(fiber.Config{
		AppName:      "Tweet Tipping",
		WriteTimeout: cfg.Server.RequestTimeout + 10*time.Second,
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(web.BaseContextMiddleware(ctx))
	fiberApp.Use(requestid.New(web.RequestIDConfig()))
	fiberApp.Use(web.RequestIDToContextMiddleware())
	fiberApp.Use(web.TracingMiddleware())
	fiberApp.Use(web.RequestLoggerMiddleware())

	web.SetupRoutes(fiberApp, handlers, rateLimiter)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		if err := fiberApp.ShutdownWithTimeout(30 * time.Second); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting tweet tipping", "addr", addr, "wallets", services.Session.Wallets())
	if err := fiberApp.Listen(addr); err != nil {
		logger.Error("server stopped", "error", err)
	}
}
