// API server entry point for the estate planning service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zainulabideendev/estateplan/internal/application/estate"
	"github.com/zainulabideendev/estateplan/internal/config"
	"github.com/zainulabideendev/estateplan/internal/domain/asset"
	"github.com/zainulabideendev/estateplan/internal/domain/beneficiary"
	"github.com/zainulabideendev/estateplan/internal/domain/plan"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/database/postgres"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/database/postgres/repositories"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/database/redis"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/messaging/kafka"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/monitoring/logging"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/monitoring/prometheus"
	httpserver "github.com/zainulabideendev/estateplan/internal/interfaces/http"
	"github.com/zainulabideendev/estateplan/internal/interfaces/http/handlers"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	skipMigrations := flag.Bool("skip-migrations", false, "do not run schema migrations on startup")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	logger, err := logging.NewLogger(logging.LogConfig{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		OutputPaths: []string{cfg.Log.Output},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting estate planning api server",
		logging.Int("port", cfg.Server.Port),
		logging.String("mode", cfg.Server.Mode),
	)

	if err := run(cfg, logger, *skipMigrations); err != nil {
		logger.Error("server exited with error", logging.Err(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger logging.Logger, skipMigrations bool) error {
	// Database.
	conn, err := postgres.NewConnection(cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("postgres connection: %w", err)
	}
	defer conn.Close()

	if !skipMigrations {
		sourceURL := "file://" + cfg.Database.MigrationPath
		if err := postgres.RunMigrations(cfg.Database.DSN(), sourceURL); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		logger.Info("schema migrations applied")
	}

	profileRepo := repositories.NewPostgresProfileRepo(conn, logger)
	beneficiaryRepo := repositories.NewPostgresBeneficiaryRepo(conn, logger)
	allocationRepo := repositories.NewPostgresAllocationRepo(conn, logger)
	assetRepo := repositories.NewPostgresAssetRepo(conn, logger)

	// Metrics.
	metrics := prometheus.NewMetrics()

	// Optional Redis cache.
	var cache estate.Cache
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.NewClient(cfg.Redis, logger)
		if err != nil {
			return fmt.Errorf("redis connection: %w", err)
		}
		defer redisClient.Close()
		cache = redis.NewCache(redisClient, logger,
			redis.WithPrefix(cfg.Redis.KeyPrefix+":"),
			redis.WithDefaultTTL(cfg.Redis.DefaultTTL),
		)
		logger.Info("redis cache enabled")
	}

	// Optional Kafka downstream plus the in-process broadcaster.
	var downstream plan.Publisher
	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(cfg.Kafka, logger)
		defer producer.Close()
		downstream = producer
		logger.Info("kafka producer enabled", logging.String("topic", cfg.Kafka.Topic))
	}
	broadcaster := plan.NewBroadcaster(downstream)
	broadcaster.Subscribe(func(e plan.Event) {
		metrics.RecordPlanEvent(string(e.Kind))
	})

	// Domain and application services.
	benSvc := beneficiary.NewService(beneficiaryRepo, allocationRepo, logger)
	assetDomainSvc := asset.NewService(assetRepo, logger)

	rosterSvc := estate.NewRosterService(profileRepo, benSvc, cache, broadcaster, metrics, logger)
	allocSvc := estate.NewAllocationService(profileRepo, beneficiaryRepo, allocationRepo, broadcaster, metrics, logger)
	profileSvc := estate.NewProfileService(profileRepo, cache, broadcaster, logger)
	assetSvc := estate.NewAssetService(assetDomainSvc, broadcaster, logger)
	progressSvc := estate.NewProgressService(profileRepo, logger)
	progressSvc.WatchMutations(broadcaster)

	// Health checks.
	health := handlers.NewHealthHandler()
	health.AddCheckFunc("postgres", conn.HealthCheck)
	if redisClient != nil {
		health.AddCheckFunc("redis", redisClient.Ping)
	}

	router := httpserver.NewRouter(httpserver.RouterConfig{
		ProfileHandler:     handlers.NewProfileHandler(profileSvc),
		BeneficiaryHandler: handlers.NewBeneficiaryHandler(rosterSvc),
		AllocationHandler:  handlers.NewAllocationHandler(allocSvc),
		AssetHandler:       handlers.NewAssetHandler(assetSvc),
		ProgressHandler:    handlers.NewProgressHandler(progressSvc),
		HealthHandler:      health,
		MetricsHandler:     metrics.Handler(),
		RequestMetrics:     metrics,
		Mode:               cfg.Server.Mode,
		Logger:             logger,
	})

	server := httpserver.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutdown signal received", logging.String("signal", sig.String()))
	}

	return server.Stop(context.Background())
}

// loadConfig reads the config file when present and falls back to
// environment variables alone otherwise.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "config file %s not found, using environment\n", path)
		return config.LoadFromEnv()
	}
	return config.Load(path)
}
