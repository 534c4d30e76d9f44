package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fekuna/omnipos-backoffice/config"
	"github.com/fekuna/omnipos-backoffice/internal/database"
	"github.com/fekuna/omnipos-backoffice/internal/httpapi"
	"github.com/fekuna/omnipos-backoffice/internal/order"
	"github.com/fekuna/omnipos-backoffice/internal/product"
	"github.com/fekuna/omnipos-backoffice/migrations"
	"github.com/fekuna/omnipos-backoffice/pkg/broker"
	"github.com/fekuna/omnipos-backoffice/pkg/cache"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/fekuna/omnipos-backoffice/pkg/postgres"
	"github.com/fekuna/omnipos-backoffice/pkg/telemetry"

	catH "github.com/fekuna/omnipos-backoffice/internal/category/handler"
	catRepoPkg "github.com/fekuna/omnipos-backoffice/internal/category/repository"
	catUCPkg "github.com/fekuna/omnipos-backoffice/internal/category/usecase"

	supH "github.com/fekuna/omnipos-backoffice/internal/supplier/handler"
	supRepoPkg "github.com/fekuna/omnipos-backoffice/internal/supplier/repository"
	supUCPkg "github.com/fekuna/omnipos-backoffice/internal/supplier/usecase"

	custH "github.com/fekuna/omnipos-backoffice/internal/customer/handler"
	custRepoPkg "github.com/fekuna/omnipos-backoffice/internal/customer/repository"
	custUCPkg "github.com/fekuna/omnipos-backoffice/internal/customer/usecase"

	empH "github.com/fekuna/omnipos-backoffice/internal/employee/handler"
	empRepoPkg "github.com/fekuna/omnipos-backoffice/internal/employee/repository"
	empUCPkg "github.com/fekuna/omnipos-backoffice/internal/employee/usecase"

	shipH "github.com/fekuna/omnipos-backoffice/internal/shipper/handler"
	shipRepoPkg "github.com/fekuna/omnipos-backoffice/internal/shipper/repository"
	shipUCPkg "github.com/fekuna/omnipos-backoffice/internal/shipper/usecase"

	prodH "github.com/fekuna/omnipos-backoffice/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-backoffice/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-backoffice/internal/product/usecase"

	invH "github.com/fekuna/omnipos-backoffice/internal/inventory/handler"
	invRepoPkg "github.com/fekuna/omnipos-backoffice/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-backoffice/internal/inventory/usecase"

	ordH "github.com/fekuna/omnipos-backoffice/internal/order/handler"
	ordRepoPkg "github.com/fekuna/omnipos-backoffice/internal/order/repository"
	ordUCPkg "github.com/fekuna/omnipos-backoffice/internal/order/usecase"

	odH "github.com/fekuna/omnipos-backoffice/internal/orderdetail/handler"
	odUCPkg "github.com/fekuna/omnipos-backoffice/internal/orderdetail/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.IsDevelopment() {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	if err := cfg.Validate(); err != nil {
		appLogger.Fatal("Invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Initialize Telemetry
	if cfg.Telemetry.OTLPEndpoint != "" {
		telCfg := &telemetry.Config{
			Endpoint:       cfg.Telemetry.OTLPEndpoint,
			ServiceName:    cfg.Telemetry.ServiceName,
			ServiceVersion: cfg.Telemetry.ServiceVersion,
		}
		tp, err := telemetry.InitTracer(ctx, telCfg)
		if err != nil {
			appLogger.Fatal("Could not initialize tracer", zap.Error(err))
		}
		defer shutdown(appLogger, cfg, "tracer", tp.Shutdown)

		mp, err := telemetry.InitMetrics(ctx, telCfg)
		if err != nil {
			appLogger.Fatal("Could not initialize metrics", zap.Error(err))
		}
		defer shutdown(appLogger, cfg, "meter", mp.Shutdown)
		appLogger.Info("Telemetry enabled", zap.String("endpoint", cfg.Telemetry.OTLPEndpoint))
	}

	// 4. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Postgres.ConnMaxIdleTime,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	if cfg.Postgres.AutoMigrate {
		if err := postgres.ApplySchema(ctx, db, migrations.Init); err != nil {
			appLogger.Fatal("Could not apply schema", zap.Error(err))
		}
		appLogger.Info("Database schema applied")
	}

	// 5. Initialize Redis and Kafka (both optional)
	var listCache product.ListCache
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		listCache = redisClient
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	var publisher order.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer := broker.NewProducer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		defer producer.Close()
		publisher = producer
		appLogger.Info("Kafka producer ready", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	// 6. Initialize Repositories
	catRepo := catRepoPkg.NewPGRepository(db)
	supRepo := supRepoPkg.NewPGRepository(db)
	custRepo := custRepoPkg.NewPGRepository(db)
	empRepo := empRepoPkg.NewPGRepository(db)
	shipRepo := shipRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	invRepo := invRepoPkg.NewPGRepository(db)
	ordRepo := ordRepoPkg.NewPGRepository(db)
	transactor := database.NewSQLTransactor(db)

	// 7. Initialize UseCases
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	supUC := supUCPkg.NewSupplierUseCase(supRepo, appLogger)
	custUC := custUCPkg.NewCustomerUseCase(custRepo, appLogger)
	empUC := empUCPkg.NewEmployeeUseCase(empRepo, appLogger)
	shipUC := shipUCPkg.NewShipperUseCase(shipRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, listCache, cfg.Redis.CacheTTL, appLogger)
	ledger := invUCPkg.NewLedger(invRepo, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, ledger, transactor, prodUC, appLogger)
	ordUC := ordUCPkg.NewOrderUseCase(ordRepo, ledger, transactor, prodUC, publisher, appLogger)
	odUC := odUCPkg.NewOrderDetailUseCase(ordRepo, ordUC, appLogger)

	// 8. Initialize Handlers and HTTP Server
	router := httpapi.NewRouter(httpapi.RouterConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Debug:       cfg.IsDevelopment(),
	}, appLogger, db,
		catH.NewCategoryHandler(catUC, appLogger),
		supH.NewSupplierHandler(supUC, appLogger),
		custH.NewCustomerHandler(custUC, appLogger),
		empH.NewEmployeeHandler(empUC, appLogger),
		shipH.NewShipperHandler(shipUC, appLogger),
		prodH.NewProductHandler(prodUC, appLogger),
		invH.NewInventoryHandler(invUC, appLogger),
		ordH.NewOrderHandler(ordUC, appLogger),
		odH.NewOrderDetailHandler(odUC, appLogger),
	)

	httpServer := &http.Server{
		Addr:         normalizePort(cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve HTTP", zap.Error(err))
		}
	}()

	// 9. Start gRPC Health Server
	lis, err := net.Listen("tcp", normalizePort(cfg.Server.GRPCPort))
	if err != nil {
		appLogger.Fatal("failed to listen", zap.Error(err))
	}

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthServer.SetServingStatus(cfg.Telemetry.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	go func() {
		appLogger.Info("Starting gRPC server", zap.String("port", lis.Addr().String()))
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve gRPC", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	appLogger.Info("Shutting down server...")
	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}

func normalizePort(port string) string {
	if !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}

func shutdown(log logger.ZapLogger, cfg *config.Config, name string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		log.Warn("telemetry shutdown failed", zap.String("provider", name), zap.Error(err))
	}
}
