package main

import (
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/rescuerush/rescuerush/internal/pkg/config"
	"github.com/rescuerush/rescuerush/internal/pkg/database"
	"github.com/rescuerush/rescuerush/internal/pkg/health"
	"github.com/rescuerush/rescuerush/internal/pkg/logger"
	"github.com/rescuerush/rescuerush/internal/pkg/middleware"
	nrpkg "github.com/rescuerush/rescuerush/internal/pkg/newrelic"
	"github.com/rescuerush/rescuerush/internal/pkg/server"
	"github.com/rescuerush/rescuerush/internal/pkg/storage"
	wspkg "github.com/rescuerush/rescuerush/internal/pkg/websocket"
	"github.com/rescuerush/rescuerush/services/emergency"
	emergencyGateway "github.com/rescuerush/rescuerush/services/emergency/gateway"
	emergencyHandler "github.com/rescuerush/rescuerush/services/emergency/handler"
	emergencyHTTP "github.com/rescuerush/rescuerush/services/emergency/handler/http"
	emergencyWS "github.com/rescuerush/rescuerush/services/emergency/handler/websocket"
	emergencyRepo "github.com/rescuerush/rescuerush/services/emergency/repository"
	emergencyUsecase "github.com/rescuerush/rescuerush/services/emergency/usecase"
	usersHandler "github.com/rescuerush/rescuerush/services/users/handler"
	usersHTTP "github.com/rescuerush/rescuerush/services/users/handler/http"
	usersRepo "github.com/rescuerush/rescuerush/services/users/repository"
	usersUsecase "github.com/rescuerush/rescuerush/services/users/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "rescuerush-api"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	mongoClient, err := database.NewMongoClient(configs.Mongo)
	if err != nil {
		zapLogger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Close()

	// Redis backs the auth rate limiter only; absence disables it.
	var redisClient *database.RedisClient
	if configs.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Warn("Failed to connect to Redis, auth rate limiting disabled", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	// Evidence bytes go to the object store when one is configured,
	// inline data URIs otherwise.
	var evidenceStore storage.EvidenceStore = storage.NewDataURIStore()
	if configs.Storage.Endpoint != "" {
		minioStore, err := storage.NewMinioStore(configs.Storage)
		if err != nil {
			zapLogger.Fatal("Failed to connect to evidence object store", zap.Error(err))
		}
		evidenceStore = minioStore
	}

	// Repositories
	userRepository := usersRepo.NewUserRepository(configs, mongoClient)
	alertRepository := emergencyRepo.NewAlertRepository(configs, mongoClient)

	// Realtime hub
	wsManager := wspkg.NewManager(configs.JWT)

	// Notification channels: email always, SMS and push only when their
	// gateways are configured.
	channels := []emergency.NotificationChannel{
		emergencyGateway.NewEmailChannel(configs.Email),
	}
	if smsSender := emergencyGateway.NewHTTPSMSSender(configs.SMS); smsSender != nil {
		channels = append(channels,
			emergencyGateway.NewSMSChannel(configs.SMS, smsSender, emergencyGateway.LogFallback))
	}
	if pushChannel := emergencyGateway.NewPushChannel(configs.Push, userRepository); pushChannel != nil {
		channels = append(channels, pushChannel)
	}
	dispatcher := emergencyGateway.NewDispatcher(channels)

	// Usecases
	userUC := usersUsecase.NewUserUC(userRepository, configs)
	emergencyUC := emergencyUsecase.NewEmergencyUC(
		alertRepository, userRepository, dispatcher, wsManager, evidenceStore, configs)

	// Handlers
	authHandler := usersHTTP.NewAuthHandler(userUC)
	contactHandler := usersHTTP.NewContactHandler(userUC)
	locationHandler := usersHTTP.NewLocationHandler(userUC)

	alertHandler := emergencyHTTP.NewEmergencyHandler(emergencyUC)
	evidenceHandler := emergencyHTTP.NewEvidenceHandler(emergencyUC, configs)
	socketHandler := emergencyWS.NewHandler(wsManager)

	var redisConn *redis.Client
	if redisClient != nil {
		redisConn = redisClient.GetClient()
	}
	usersRoutes := usersHandler.NewHandler(authHandler, contactHandler, locationHandler, configs, redisConn)
	emergencyRoutes := emergencyHandler.NewHandler(alertHandler, evidenceHandler, socketHandler, configs)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	e.GET("/health", health.NewHealthHandler(mongoClient, configs))
	e.GET("/ping", health.NewPingHandler(appName))

	api := e.Group("/api")
	usersRoutes.RegisterRoutes(api)
	emergencyRoutes.RegisterRoutes(e, api)

	if err := server.NewGracefulServer(e, configs.Server.Port).Start(); err != nil {
		zapLogger.Fatal("Server exited with error", zap.Error(err))
	}
}
