package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/VeritasAI/TrustScope/pkg/app/verification"
	"github.com/VeritasAI/TrustScope/pkg/config"
	"github.com/VeritasAI/TrustScope/pkg/detectoriface"
	"github.com/VeritasAI/TrustScope/pkg/detectors"
	infraCache "github.com/VeritasAI/TrustScope/pkg/infra/cache"
	"github.com/VeritasAI/TrustScope/pkg/infra/database"
	"github.com/VeritasAI/TrustScope/pkg/infra/httpx"
	infraLogger "github.com/VeritasAI/TrustScope/pkg/infra/logger"
	"github.com/VeritasAI/TrustScope/pkg/infra/providers/ollama"
	"github.com/VeritasAI/TrustScope/pkg/infra/repository"
	"github.com/VeritasAI/TrustScope/pkg/middleware"
	"github.com/VeritasAI/TrustScope/pkg/pipeline"
	"github.com/VeritasAI/TrustScope/pkg/server"

	handlers "github.com/VeritasAI/TrustScope/pkg/handlers/http"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	cfg, err := config.Load("./config")
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := repository.Migrate(db.DB); err != nil {
		logger.Fatalf("failed to run migrations: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	certificateCache := infraCache.NewCertificateCache(redisClient, cfg.Redis.TTL(), logger)
	certificateRepository := repository.NewCertificateRepository(db.DB, logger)

	detectorSettings := make(map[string]detectoriface.Settings, len(cfg.Detectors))
	for name, settings := range cfg.Detectors {
		detectorSettings[name] = detectoriface.Settings(settings)
	}
	detectorSet, err := detectors.NewRegistry(logger, detectorSettings)
	if err != nil {
		logger.Fatalf("failed to build detectors: %v", err)
	}

	verificationPipeline, err := pipeline.New(detectorSet, cfg.PipelineOptions(), logger)
	if err != nil {
		logger.Fatalf("failed to build pipeline: %v", err)
	}

	breaker := httpx.NewCircuitBreaker("ollama", cfg.Generator.Timeout(), cfg.Generator.MaxFailures)
	generator := ollama.NewClient(
		cfg.Generator.BaseURL,
		cfg.Generator.Model,
		cfg.Generator.Timeout(),
		breaker,
		logger,
	)

	verifyService := verification.NewVerifyResponse(
		verificationPipeline, certificateRepository, certificateCache, logger,
	)

	middlewareTransport := middleware.Transport{
		MetricsMiddleware:      middleware.NewMetricsMiddleware(logger),
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
	}

	handlerTransport := handlers.HandlerTransport{
		VerifyHandler:           handlers.NewVerifyHandler(logger, verifyService),
		ChatHandler:             handlers.NewChatHandler(logger, generator, verifyService),
		GetCertificateHandler:   handlers.NewGetCertificateHandler(logger, certificateRepository, certificateCache),
		ListCertificatesHandler: handlers.NewListCertificatesHandler(logger, certificateRepository),
		GetStatisticsHandler:    handlers.NewGetStatisticsHandler(logger, certificateRepository),
		GetVersionHandler:       handlers.NewGetVersionHandler(logger),
	}

	srv := server.NewApiServer(server.ApiServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("failed to shut down server")
	}
}
