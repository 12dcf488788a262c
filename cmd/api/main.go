package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-cvbuilder-backend/config"
	v1 "go-cvbuilder-backend/internal/delivery/http/v1"
	"go-cvbuilder-backend/internal/repository/redisstore"
	"go-cvbuilder-backend/internal/state"
	"go-cvbuilder-backend/internal/usecase"
	"go-cvbuilder-backend/pkg/logger"
	"go-cvbuilder-backend/pkg/printer"
	redisclient "go-cvbuilder-backend/pkg/redis"
	"go-cvbuilder-backend/pkg/share"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting cv builder backend", "port", cfg.Port)

	ctx := context.Background()

	// 3. Setup Redis
	client, err := redisclient.NewClient(ctx, redisclient.Config{
		URL:      cfg.RedisURL,
		Password: cfg.RedisPassword,
	})
	if err != nil {
		logger.Log.Error("Failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	// 4. Setup Repositories
	kv := redisstore.NewKV(client)
	cvRepo := redisstore.NewCVRepository(kv)
	portfolioRepo := redisstore.NewPortfolioRepository(kv)
	maintenanceRepo := redisstore.NewMaintenanceRepository(kv)

	// 5. Setup UseCases
	validate := validator.New()
	cvUC := usecase.NewCVUsecase(state.NewCVStore(), cvRepo, validate)
	portfolioUC := usecase.NewPortfolioUsecase(state.NewPortfolioStore(), portfolioRepo, validate)

	// 6. Hydrate in-memory state from storage
	if _, err := cvUC.Load(ctx); err != nil {
		logger.Log.Error("Failed to load CVs", "error", err)
		os.Exit(1)
	}
	if _, err := portfolioUC.Load(ctx); err != nil {
		logger.Log.Error("Failed to load portfolios", "error", err)
		os.Exit(1)
	}

	// 7. Setup Export pipeline
	for _, dir := range []string{cfg.ExportDir, cfg.ImageDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Log.Error("Failed to create directory", "dir", dir, "error", err)
			os.Exit(1)
		}
	}

	pdfPrinter, err := printer.NewWkhtmltopdf(cfg.WkhtmltopdfPath, cfg.ExportDir)
	if err != nil {
		logger.Log.Error("Failed to set up PDF printer", "error", err)
		os.Exit(1)
	}

	sharer := newSharer(ctx, cfg)
	exportUC := usecase.NewExportUsecase(pdfPrinter, sharer, cfg.ExportDir)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CVUC:            cvUC,
		PortfolioUC:     portfolioUC,
		ExportUC:        exportUC,
		MaintenanceRepo: maintenanceRepo,
		Config:          cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// newSharer picks the share backend from config. A misconfigured
// backend degrades to the unavailable sharer instead of failing boot:
// exports still work, only sharing reports 503.
func newSharer(ctx context.Context, cfg *config.Config) share.Sharer {
	switch cfg.ShareBackend {
	case "s3":
		s, err := share.NewS3(ctx, share.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			PresignExpiry:   time.Duration(cfg.S3PresignExpiryHours) * time.Hour,
		})
		if err != nil {
			logger.Log.Warn("S3 sharing unavailable", "error", err)
			return share.NewUnavailable()
		}
		return s
	case "local":
		s, err := share.NewLocal(cfg.ShareDir)
		if err != nil {
			logger.Log.Warn("Local sharing unavailable", "error", err)
			return share.NewUnavailable()
		}
		return s
	default:
		logger.Log.Warn("Unknown share backend, sharing disabled", "backend", cfg.ShareBackend)
		return share.NewUnavailable()
	}
}
