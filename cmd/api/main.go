package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nilkanthplet/BP-1.0/internal/application/service"
	"github.com/nilkanthplet/BP-1.0/internal/config"
	"github.com/nilkanthplet/BP-1.0/internal/domain/repository"
	"github.com/nilkanthplet/BP-1.0/internal/infrastructure/database"
	"github.com/nilkanthplet/BP-1.0/internal/infrastructure/logger"
	infraRepo "github.com/nilkanthplet/BP-1.0/internal/infrastructure/repository"
	"github.com/nilkanthplet/BP-1.0/internal/presentation/http/handler"
	"github.com/nilkanthplet/BP-1.0/internal/presentation/http/routes"
	"github.com/nilkanthplet/BP-1.0/pkg/printer"
	"github.com/nilkanthplet/BP-1.0/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log := logger.New(logger.ConfigForEnvironment(cfg.App.Env, cfg.Log.Level, cfg.Log.Format))
	defer func() { _ = log.Sync() }()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database, log, cfg.App.Debug)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.AutoMigrate(db, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Repositories
	userRepo := infraRepo.NewUserRepository(db)
	receiptRepo := infraRepo.NewReturnReceiptRepository(db)
	inventoryRepo := infraRepo.NewInventoryRepository(db)
	billRepo := infraRepo.NewBillRepository(db)
	sequenceRepo := infraRepo.NewSequenceRepository(db)
	idempotencyRepo := infraRepo.NewIdempotencyRepository(db)

	// Services
	ids := service.NewIdentifierGenerator(sequenceRepo)
	userService := service.NewUserService(userRepo, log)
	receiptService := service.NewReturnReceiptService(receiptRepo, ids, log)
	inventoryService := service.NewInventoryService(inventoryRepo, cfg.Inventory, log)
	billService := service.NewBillService(billRepo, ids, log)

	thermalPrinter, err := printer.New(printer.Config{
		Type:    cfg.Printer.Type,
		USBPath: cfg.Printer.USBPath,
		Address: cfg.Printer.Address,
	})
	if err != nil {
		log.Warn("printer disabled", zap.Error(err))
		thermalPrinter = printer.Discard()
	}
	defer thermalPrinter.Close()

	printerService := service.NewPrinterService(thermalPrinter, receiptRepo, billRepo, service.PrinterOptions{
		Type:      cfg.Printer.Type,
		StoreName: cfg.Printer.StoreName,
		CharWidth: cfg.Printer.CharWidth,
	}, log)

	handlers := &routes.Handlers{
		User:       handler.NewUserHandler(userService),
		ReturnItem: handler.NewReturnItemHandler(receiptService),
		Inventory:  handler.NewInventoryHandler(inventoryService),
		Bill:       handler.NewBillHandler(billService),
		Printer:    handler.NewPrinterHandler(printerService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		Logger:          log,
		HealthCheck: func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Ping()
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go purgeIdempotencyKeys(ctx, idempotencyRepo, log)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server",
			zap.String("service", cfg.App.Name),
			zap.String("port", cfg.App.Port),
			zap.String("env", cfg.App.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

// purgeIdempotencyKeys drops expired replay entries once an hour
func purgeIdempotencyKeys(ctx context.Context, repo repository.IdempotencyRepository, log *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.DeleteExpired(ctx)
			if err != nil {
				log.Warn("failed to purge idempotency keys", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Debug("purged idempotency keys", zap.Int64("count", n))
			}
		}
	}
}
