package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/console-service/internal/access"
	httptransport "github.com/spec-kit/console-service/internal/api/http"
	"github.com/spec-kit/console-service/internal/api/http/handlers"
	"github.com/spec-kit/console-service/internal/auth"
	"github.com/spec-kit/console-service/internal/config"
	"github.com/spec-kit/console-service/internal/events"
	"github.com/spec-kit/console-service/internal/gateway"
	"github.com/spec-kit/console-service/internal/observability"
	"github.com/spec-kit/console-service/internal/persistence"
	"github.com/spec-kit/console-service/internal/registry"
	"github.com/spec-kit/console-service/internal/repository"
	"github.com/spec-kit/console-service/internal/service"
	"github.com/spec-kit/console-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg, err := registry.New(registry.DefaultFeatures())
	if err != nil {
		logger.Fatal("invalid feature catalog", zap.Error(err))
	}
	gate := access.NewGate(reg)

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	clientRepo := repository.NewMemoryClientRepository(repository.SeedClients())
	ticketRepo := repository.NewMemoryTicketRepository(repository.SeedTickets())
	recordRepo := repository.NewMemoryRecordRepository(repository.SeedRecords())
	sessionRepo := repository.NewRedisSessionRepository(redis, cfg.App.Name)

	credentials, err := auth.NewCredentialTable(cfg.Auth, cfg.Portal.DemoClientID)
	if err != nil {
		logger.Fatal("failed to build credential table", zap.Error(err))
	}
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authMiddleware := auth.NewMiddleware(tokens)

	sessionService := service.NewSessionService(sessionRepo, logger)
	if err := sessionService.Rehydrate(ctx); err != nil {
		logger.Warn("session rehydration failed, using defaults", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher(logger)
	clientService := service.NewClientService(clientRepo, dispatcher, logger)
	ticketService := service.NewTicketService(ticketRepo, clientRepo, dispatcher, logger)
	recordService := service.NewRecordService(recordRepo, clientRepo, dispatcher, logger, cfg.Portal.PricePerRecord)

	generator, err := gateway.NewGeminiClient(ctx, cfg.Gateway, logger)
	if err != nil {
		logger.Fatal("failed to init generative-text client", zap.Error(err))
	}
	gatewayService := service.NewGatewayService(generator, sessionService, cfg.Gateway.Timeout(), logger)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis),
		Session:        handlers.NewSessionHandler(credentials, tokens, sessionService),
		AdminClients:   handlers.NewAdminClientsHandler(clientService),
		AdminTickets:   handlers.NewAdminTicketsHandler(ticketService),
		Portal:         handlers.NewPortalHandler(clientService, ticketService, reg),
		Records:        handlers.NewRecordsHandler(recordService),
		Gateway:        handlers.NewGatewayHandler(gatewayService),
		AuthMiddleware: authMiddleware,
		Gate:           gate,
		Registry:       reg,
		Clients:        clientService,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
