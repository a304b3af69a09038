package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/greytg/bridge/internal/pkg/config"
	"github.com/greytg/bridge/internal/pkg/database"
	"github.com/greytg/bridge/internal/pkg/health"
	"github.com/greytg/bridge/internal/pkg/logger"
	"github.com/greytg/bridge/internal/pkg/middleware"
	natspkg "github.com/greytg/bridge/internal/pkg/nats"
	"github.com/greytg/bridge/internal/pkg/server"
	"github.com/greytg/bridge/internal/pkg/sessioncrypto"
	"github.com/greytg/bridge/services/telegram/dispatcher"
	"github.com/greytg/bridge/services/telegram/gateway"
	"github.com/greytg/bridge/services/telegram/gateway/telegramgw"
	"github.com/greytg/bridge/services/telegram/handler"
	"github.com/greytg/bridge/services/telegram/handler/devreceiver"
	httpHandler "github.com/greytg/bridge/services/telegram/handler/http"
	"github.com/greytg/bridge/services/telegram/repository"
	"github.com/greytg/bridge/services/telegram/usecase"
)

func main() {
	appName := "telegram-bridge"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/bridge.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Session blobs are encrypted at rest; the key is mandatory.
	box, err := sessioncrypto.NewBox(configs.Telegram.SessionEncKey)
	if err != nil {
		zapLogger.Fatal("Invalid session encryption key", zap.Error(err))
	}

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(postgresClient.GetDB())
	deliveryRepo := repository.NewDeliveryRepository(redisClient)

	// Initialize gateways
	networkGW := telegramgw.NewGateway(configs.Telegram, zapLogger.Logger)
	webhookGW := gateway.NewWebhookGateway(configs.Callback, deliveryRepo)
	eventsGW := gateway.NewEventsGateway(natsClient)

	// Connection supervisor keeps one live connection per authorized tenant
	supervisor := dispatcher.NewConnectionSupervisor(tenantRepo, networkGW, webhookGW, eventsGW, box)

	// Initialize UseCase
	telegramUC := usecase.NewTelegramUC(configs, tenantRepo, deliveryRepo, networkGW, webhookGW, eventsGW, supervisor, box)

	// Handlers for HTTP
	tenantHandler := httpHandler.NewTenantHandler(telegramUC)
	authHandler := httpHandler.NewAuthHandler(telegramUC)
	messageHandler := httpHandler.NewMessageHandler(telegramUC)

	var devRecv *devreceiver.Receiver
	if configs.Callback.DevReceiver {
		devRecv = devreceiver.NewReceiver()
	}

	// Initialize handlers
	h := handler.NewHandler(tenantHandler, authHandler, messageHandler, devRecv, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, map[string]health.HealthChecker{
		"postgres": health.NewPostgresHealthChecker(postgresClient),
		"redis":    health.NewRedisHealthChecker(redisClient),
	})

	// Register service routes
	h.RegisterRoutes(e)

	// Reconnect tenants that were authorized before the last restart
	if err := supervisor.StartAll(context.Background()); err != nil {
		zapLogger.Error("Failed to restore tenant connections", zap.Error(err))
	}

	// Start server and block until shutdown signal
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", zap.Error(err))
	}

	// Stop tenant connections so sessions are persisted before exit
	supervisor.StopAll()

	zapLogger.Info("Application stopped", zap.String("app", appName))
}
