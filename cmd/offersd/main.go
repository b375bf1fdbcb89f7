package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	offersv1 "github.com/Zoli1212/awsflow/gen/proto/offers/v1"
	statsv1 "github.com/Zoli1212/awsflow/gen/proto/stats/v1"
	"github.com/Zoli1212/awsflow/internal/auth"
	"github.com/Zoli1212/awsflow/internal/catalog"
	"github.com/Zoli1212/awsflow/internal/common"
	"github.com/Zoli1212/awsflow/internal/llm/openai"
	"github.com/Zoli1212/awsflow/internal/offers"
	"github.com/Zoli1212/awsflow/internal/rag"
	repo "github.com/Zoli1212/awsflow/internal/repository"
	svc "github.com/Zoli1212/awsflow/internal/server"
	"github.com/Zoli1212/awsflow/internal/stats"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}

	priceListRepo := repo.NewPriceListRepository(entc, logger)
	workRepo := repo.NewWorkRepository(entc, logger)
	userRepo := repo.NewUserRepository(entc, logger)
	activityRepo := repo.NewActivityRepository(entc, logger)

	cache := catalog.NewCache(cfg.Catalog.CacheTTL)
	loader := catalog.NewLoader(priceListRepo, cache, logger)

	generator := openai.NewClient(openai.Config{
		APIKey:          cfg.LLM.APIKey,
		BaseURL:         cfg.LLM.BaseURL,
		GenerationModel: cfg.LLM.GenerationModel,
		EstimationModel: cfg.LLM.EstimationModel,
		Temperature:     cfg.LLM.Temperature,
		Timeout:         cfg.LLM.Timeout,
		Backoff:         openai.FixedDelay(cfg.LLM.RetryAttempts, cfg.LLM.RetryDelay),
	}, logger)

	identity := auth.ContextResolver{}
	offerSvc := offers.NewService(loader, generator, workRepo, priceListRepo, rag.Noop{}, cfg.RAG.Enabled, logger)
	statsSvc := stats.NewService(userRepo, activityRepo, identity, logger)

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(svc.IdentityInterceptor(logger)),
	)
	offersv1.RegisterOffersServiceServer(grpcServer, svc.NewOffersService(offerSvc, identity, logger))
	statsv1.RegisterStatsServiceServer(grpcServer, svc.NewStatsService(statsSvc, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("offersd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
