package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"intake-service/internal/app/config"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/delivery/http/controllers"
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/app/delivery/http/routers"
	"intake-service/internal/app/drivers/database"
	"intake-service/internal/app/drivers/logger"
	"intake-service/internal/app/drivers/messaging"
	intakeSessions "intake-service/internal/app/services/core/intake_sessions"
	"intake-service/internal/app/services/shared/enrichment"
	"intake-service/internal/app/services/shared/locker"
	"intake-service/internal/app/services/shared/redis"
	"intake-service/internal/app/services/shared/sessionstore"
	"intake-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if internalConfig.App.SessionStore == constvars.SessionStoreRedis {
		bootstrap.Redis, err = database.NewRedisClient(driverConfig)
		if err != nil {
			zapLogger.Fatal("Error connecting to Redis", zap.Error(err))
		}
		zapLogger.Info("Successfully connected to Redis")
	}

	if internalConfig.Enrichment.Enabled {
		bootstrap.RabbitMQ, err = messaging.NewRabbitMQ(driverConfig)
		if err != nil {
			zapLogger.Fatal("Error connecting to RabbitMQ", zap.Error(err))
		}
		zapLogger.Info("Successfully connected to RabbitMQ")
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		zapLogger.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error releasing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	// Session store and locks
	var sessionStore contracts.IntakeSessionStore
	var lockerService contracts.LockerService
	if bootstrap.Redis != nil {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		sessionStore = sessionstore.NewRedisStore(redisRepository)
		lockerService = locker.NewRedisLockService(redisRepository, bootstrap.Logger)
	} else {
		sessionStore = sessionstore.NewMemoryStore(time.Now)
		lockerService = locker.NewMemoryLockService(time.Now)
	}

	// Enrichment hand-off
	publisher := enrichment.NewLogPublisher(bootstrap.Logger)
	if bootstrap.RabbitMQ != nil {
		rabbitMQPublisher, err := enrichment.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.Enrichment.Queue, bootstrap.Logger)
		if err != nil {
			return err
		}
		publisher = rabbitMQPublisher
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Intake sessions
	intakeSessionUsecase := intakeSessions.NewIntakeSessionUsecase(
		sessionStore,
		lockerService,
		publisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	intakeSessionController := controllers.NewIntakeSessionController(bootstrap.Logger, intakeSessionUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, intakeSessionController)
	return nil
}
