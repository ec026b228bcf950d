package main

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	discountgrpc "github.com/deb240485/Ecommerce-Microservices/internal/discount/grpc"
	"github.com/deb240485/Ecommerce-Microservices/internal/discount/repository"
	"github.com/deb240485/Ecommerce-Microservices/pkg/discountpb"
	"github.com/deb240485/Ecommerce-Microservices/pkg/logging"
	"github.com/deb240485/Ecommerce-Microservices/pkg/metrics"
)

type Config struct {
	GRPCPort       string
	MetricsPort    string
	PostgresHost   string
	PostgresPort   int
	PostgresUser   string
	PostgresPass   string
	PostgresDB     string
	MigrationsPath string
	Environment    string
}

func loadConfig() *Config {
	port, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		log.Fatalf("invalid POSTGRES_PORT: %v", err)
	}
	return &Config{
		GRPCPort:       getEnv("GRPC_PORT", "50051"),
		MetricsPort:    getEnv("METRICS_PORT", "8082"),
		PostgresHost:   getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:   port,
		PostgresUser:   getEnv("POSTGRES_USER", "postgres"),
		PostgresPass:   getEnv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:     getEnv("POSTGRES_DB", "discountdb"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./internal/discount/repository/migrations"),
		Environment:    getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	logger, err := logging.New("discount-service", cfg.Environment)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	cred := &repository.Credentials{
		Host:              cfg.PostgresHost,
		Port:              cfg.PostgresPort,
		User:              cfg.PostgresUser,
		Password:          cfg.PostgresPass,
		DBName:            cfg.PostgresDB,
		MigrationsDirPath: cfg.MigrationsPath,
	}

	repo, err := repository.NewPostgresRepository(cred)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer repo.Close()
	if err := repo.RunMigrations(cred); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("connected to postgres", zap.String("db", cfg.PostgresDB))

	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.GRPCPort))
	if err != nil {
		logger.Fatal("failed to listen", zap.Error(err))
	}

	grpcServer := grpc.NewServer()
	discountpb.RegisterDiscountServiceServer(grpcServer, discountgrpc.NewDiscountHandler(repo, logger))

	// Enable reflection for grpcurl/grpcui
	reflection.Register(grpcServer)

	metricsSrv := &http.Server{
		Addr:    ":" + cfg.MetricsPort,
		Handler: metricsMux(),
	}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", zap.Error(err))
		}
	}()

	go func() {
		logger.Info("discount service listening", zap.String("port", cfg.GRPCPort))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down discount service")
	grpcServer.GracefulStop()
	_ = metricsSrv.Close()
	logger.Info("discount service stopped")
}

func metricsMux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	mux.Handle("/metrics", metrics.Handler())
	return mux
}
