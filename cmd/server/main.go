package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"healthtrack-backend-go/internal/api"
	"healthtrack-backend-go/internal/config"
	"healthtrack-backend-go/internal/core"
	"healthtrack-backend-go/internal/db"
	"healthtrack-backend-go/internal/middleware"
	"healthtrack-backend-go/internal/models"
	"healthtrack-backend-go/pkg/cache"
	"healthtrack-backend-go/pkg/messagequeue"
)

// probeAttempts bounds the connectivity check against Firestore before
// the server gives up and falls back to the synthetic store.
const probeAttempts = 3

// demoIdentity is the fixed identity every request assumes in
// synthetic mode.
var demoIdentity = &models.Identity{
	ID:          "demo-user",
	Email:       "demo@healthtrack.app",
	DisplayName: "Demo User",
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()

	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("failed to load configuration", zap.Error(err))
	}

	store, authMW, clients := buildStore(appConfig, zapLogger)
	if clients != nil {
		defer clients.Close()
	}

	appCache := buildCache(appConfig, zapLogger)
	publisher := buildPublisher(appConfig, zapLogger)
	defer publisher.Close()

	services := api.Services{
		Vitals:  core.NewVitalService(store.Vitals, appCache, zapLogger),
		Reports: core.NewReportService(store.Reports, store.Blobs, zapLogger),
		Media:   core.NewMediaService(store.Documents, store.Photos, store.Blobs, zapLogger),
		Family:  core.NewFamilyService(store.Family, publisher, appConfig.InviteQueueName, zapLogger),
		Users:   core.NewUserService(store.Profiles),
		Goals:   core.NewGoalService(store.Goals),
		Export:  core.NewExportService(store.Vitals, store.Reports, store.Profiles, store.Goals),
	}

	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS middleware skipped: CLIENT_URL is not configured")
	}

	api.SetupRoutes(router, authMW, services, store.Mode, zapLogger)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Port),
		Handler: router,
	}

	zapLogger.Info("starting HTTP server",
		zap.String("address", httpServer.Addr),
		zap.String("mode", string(store.Mode)))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("server exited")
}

// buildStore decides the storage mode once at startup. A configured
// Firebase project is probed with bounded retries; any failure falls
// back to the synthetic in-memory store rather than refusing to boot.
// There is no later upgrade from synthetic back to live.
func buildStore(cfg *config.Config, logger *zap.Logger) (*db.Store, *middleware.AuthMiddleware, *db.FirebaseClients) {
	if cfg.LiveConfigured() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		clients, err := db.NewFirebaseClients(ctx, cfg, logger)
		if err != nil {
			logger.Warn("firebase initialization failed, falling back to synthetic store", zap.Error(err))
		} else {
			backoff := time.Second
			for attempt := 1; attempt <= probeAttempts; attempt++ {
				if err = clients.Probe(ctx); err == nil {
					logger.Info("connected to Firestore", zap.String("project", cfg.FirebaseProjectID))
					return db.NewLiveStore(clients),
						middleware.NewAuthMiddleware(clients.Auth, logger),
						clients
				}
				logger.Warn("firestore probe failed",
					zap.Int("attempt", attempt),
					zap.Duration("backoff", backoff),
					zap.Error(err))
				if attempt < probeAttempts {
					time.Sleep(backoff)
					backoff *= 2
				}
			}
			clients.Close()
			logger.Warn("firestore unreachable, falling back to synthetic store", zap.Error(err))
		}
	}

	logger.Info("running in synthetic mode with seeded demo data",
		zap.String("user", demoIdentity.ID))
	return db.NewSyntheticStore(demoIdentity),
		middleware.NewDemoAuthMiddleware(demoIdentity, logger),
		nil
}

func buildCache(cfg *config.Config, logger *zap.Logger) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryCache()
	}
	redisCache, err := cache.NewRedisCache(cache.NewRedisCacheConfig{
		Address:  cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		logger.Warn("redis unavailable, using in-memory cache", zap.Error(err))
		return cache.NewMemoryCache()
	}
	logger.Info("connected to Redis", zap.String("addr", cfg.RedisAddr))
	return redisCache
}

func buildPublisher(cfg *config.Config, logger *zap.Logger) messagequeue.MessageQueue {
	if cfg.AMQPURL == "" {
		return messagequeue.NoopQueue{}
	}
	mq, err := messagequeue.NewRabbitMQService(messagequeue.NewRabbitMQServiceConfig{URL: cfg.AMQPURL})
	if err != nil {
		logger.Warn("rabbitmq unavailable, invite events disabled", zap.Error(err))
		return messagequeue.NoopQueue{}
	}
	logger.Info("connected to RabbitMQ")
	return mq
}
