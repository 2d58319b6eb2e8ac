package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/razasalaar/workshop-manager/config"
	"github.com/razasalaar/workshop-manager/internal/auth"
	"github.com/razasalaar/workshop-manager/internal/migrations"
	"github.com/razasalaar/workshop-manager/internal/pkg/broker"
	"github.com/razasalaar/workshop-manager/internal/pkg/cache"
	pgdb "github.com/razasalaar/workshop-manager/internal/pkg/database/postgres"
	"github.com/razasalaar/workshop-manager/internal/pkg/logger"
	"github.com/razasalaar/workshop-manager/internal/pkg/search"
	"github.com/razasalaar/workshop-manager/internal/server"

	productrepo "github.com/razasalaar/workshop-manager/internal/product/repository"
	reportrepo "github.com/razasalaar/workshop-manager/internal/report/repository"
	salerepo "github.com/razasalaar/workshop-manager/internal/sale/repository"
	userrepo "github.com/razasalaar/workshop-manager/internal/user/repository"
	workshoprepo "github.com/razasalaar/workshop-manager/internal/workshop/repository"

	productuc "github.com/razasalaar/workshop-manager/internal/product/usecase"
	reportuc "github.com/razasalaar/workshop-manager/internal/report/usecase"
	saleuc "github.com/razasalaar/workshop-manager/internal/sale/usecase"
	useruc "github.com/razasalaar/workshop-manager/internal/user/usecase"
	workshopuc "github.com/razasalaar/workshop-manager/internal/workshop/usecase"

	producthandler "github.com/razasalaar/workshop-manager/internal/product/handler"
	reporthandler "github.com/razasalaar/workshop-manager/internal/report/handler"
	salehandler "github.com/razasalaar/workshop-manager/internal/sale/handler"
	userhandler "github.com/razasalaar/workshop-manager/internal/user/handler"
	workshophandler "github.com/razasalaar/workshop-manager/internal/workshop/handler"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.LoadEnv()

	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.Server.AppEnv == "development",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer appLogger.Sync()

	appLogger.Info("starting workshop-manager",
		zap.String("app_env", cfg.Server.AppEnv),
		zap.String("http_port", cfg.Server.HTTPPort),
	)

	db, err := pgdb.NewPostgres(postgresConfig(cfg))
	if err != nil {
		appLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("postgres connected")

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	if err := migrations.Run(migrateCtx, db); err != nil {
		cancelMigrate()
		appLogger.Fatal("migrations failed", zap.Error(err))
	}
	cancelMigrate()
	appLogger.Info("migrations applied")

	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("redis connection failed", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("redis connected")

	publisher := broker.NewPublisher(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer publisher.Close()

	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("elasticsearch unavailable, search falls back to the database", zap.Error(err))
		esClient = nil
	}

	tokens := auth.NewTokenManager(cfg.JWT.SecretKey)

	userRepo := userrepo.NewPGRepository(db)
	workshopRepo := workshoprepo.NewPGRepository(db)
	productRepo := productrepo.NewPGRepository(db)
	saleRepo := salerepo.NewPGRepository(db)
	reportRepo := reportrepo.NewPGRepository(db)

	userUC := useruc.NewUserUseCase(userRepo, tokens, appLogger)
	workshopUC := workshopuc.NewWorkshopUseCase(workshopRepo, redisClient, appLogger)
	productUC := productuc.NewProductUseCase(productRepo, workshopRepo, redisClient, esClient, appLogger)
	saleUC := saleuc.NewSaleUseCase(saleRepo, redisClient, publisher, appLogger)
	reportUC := reportuc.NewReportUseCase(reportRepo, redisClient, appLogger)

	router := server.NewRouter(server.Handlers{
		User:     userhandler.NewUserHandler(userUC, appLogger),
		Workshop: workshophandler.NewWorkshopHandler(workshopUC, appLogger),
		Product:  producthandler.NewProductHandler(productUC, appLogger),
		Sale:     salehandler.NewSaleHandler(saleUC, appLogger),
		Report:   reporthandler.NewReportHandler(reportUC, appLogger),
	}, tokens)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("graceful shutdown failed", zap.Error(err))
	}
	appLogger.Info("server stopped")
}

// postgresConfig maps the env config onto the pool config. Lifetime values
// arrive as whole seconds.
func postgresConfig(cfg *config.Config) *pgdb.Config {
	return &pgdb.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	}
}
