package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vansh1703/cars/internal/api"
	"github.com/vansh1703/cars/internal/auth"
	"github.com/vansh1703/cars/internal/cache"
	"github.com/vansh1703/cars/internal/config"
	"github.com/vansh1703/cars/internal/repository/postgres"
	"github.com/vansh1703/cars/internal/service"
	"github.com/vansh1703/cars/internal/storage"
	"github.com/vansh1703/cars/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	carRepo := postgres.NewCarRepository(db)
	manualSaleRepo := postgres.NewManualSaleRepository(db)
	summaryRepo := postgres.NewSummaryRepository(db)
	enquiryRepo := postgres.NewEnquiryRepository(db)
	messageRepo := postgres.NewMessageRepository(db)

	dashboardCache, err := cache.NewDashboardCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("cache unavailable, dashboard will recompute on every load")
		dashboardCache = cache.NewNoopDashboardCache()
	}

	sessions, err := auth.NewSessionManager(cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize sessions: %v", err)
	}

	loc := cfg.Business.Location()
	dashboardService := service.NewDashboardService(carRepo, manualSaleRepo, summaryRepo, dashboardCache, loc)
	carService := service.NewCarService(carRepo, dashboardService, loc)
	enquiryService := service.NewEnquiryService(enquiryRepo, messageRepo)

	var objectStorage storage.ObjectStorage
	if cfg.Storage.Endpoint != "" {
		client, err := storage.NewMinioClient(cfg.Storage)
		if err != nil {
			logger.Log.Warn().Err(err).Msg("object storage unavailable, image uploads disabled")
		} else {
			objectStorage = client
		}
	}

	router := api.NewRouter(&api.Services{
		Cars:      carService,
		Dashboard: dashboardService,
		Enquiries: enquiryService,
		Sessions:  sessions,
		Storage:   objectStorage,
	}, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
