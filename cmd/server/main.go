package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ml-classroom-service/internal/adapters/primary/http/handlers"
	"ml-classroom-service/internal/adapters/primary/http/middleware"
	"ml-classroom-service/internal/adapters/secondary/filestore"
	"ml-classroom-service/internal/adapters/secondary/mlservice"
	"ml-classroom-service/internal/adapters/secondary/postgres"
	"ml-classroom-service/internal/config"
	"ml-classroom-service/internal/core/services"
	"ml-classroom-service/internal/pkg/emoticons"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	pool, err := postgres.NewPool(context.Background(), cfg.Database)
	if err != nil {
		log.Fatalf("create db pool: %v", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapters (Output Ports - Repositories)
	projectRepo := postgres.NewProjectRepository(pool)
	trainingRepo := postgres.NewTrainingRepository(pool)
	scratchKeyRepo := postgres.NewScratchKeyRepository(pool)
	credentialsRepo := postgres.NewCredentialsRepository(pool)
	knownErrorRepo := postgres.NewKnownErrorRepository(pool)

	soundStore, err := filestore.NewSoundStore(cfg.Sounds.Dir)
	if err != nil {
		log.Fatalf("create sound store: %v", err)
	}

	mlClient := mlservice.NewClient(&cfg.MLService)
	if cfg.MLService.Enabled {
		log.Info("ML service client initialized")
	} else {
		log.Info("ML service integration disabled, untrained projects only")
	}

	lib := emoticons.Default()
	if cfg.Emoticons.File != "" {
		lib, err = emoticons.LoadFile(cfg.Emoticons.File)
		if err != nil {
			log.Fatalf("load emoticons: %v", err)
		}
	}
	log.Infof("loaded %d emoticons", lib.Len())

	// Core Services (Application Layer)
	trainingSvc := services.NewTrainingService(projectRepo, trainingRepo)
	ngramSvc := services.NewNgramService(projectRepo, trainingRepo, lib, cfg.Ngrams.MaxResults)
	scratchSvc := services.NewScratchService(projectRepo, scratchKeyRepo, knownErrorRepo, credentialsRepo, mlClient, nil, cfg.Scratch.PublicURL)
	soundSvc := services.NewSoundService(projectRepo, trainingRepo, soundStore, cfg.Sounds.MaxBytes)
	credentialsSvc := services.NewCredentialsService(credentialsRepo, knownErrorRepo, mlClient, services.CheckOptions{
		Concurrency: cfg.Credentials.CheckConcurrency,
		Rate:        cfg.Credentials.CheckRate,
	})

	// Scheduled credentials check (Optional - based on config)
	var scheduler *services.CredentialsCheckScheduler
	if cfg.Credentials.CheckSchedule != "" {
		scheduler, err = services.NewCredentialsCheckScheduler(cfg.Credentials.CheckSchedule, credentialsSvc)
		if err != nil {
			log.Fatalf("credentials check schedule: %v", err)
		}
		scheduler.Start()
		log.Infof("credentials check scheduled: %s", cfg.Credentials.CheckSchedule)
	} else {
		log.Info("scheduled credentials check disabled")
	}

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(trainingSvc, ngramSvc, scratchSvc, soundSvc, version)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api")
	h.RegisterRoutes(api)

	// Health check with DB ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if scheduler != nil {
		scheduler.Stop(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
