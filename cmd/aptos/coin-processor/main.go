package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/decoder"
	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/repository/postgres"
	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/service/ingester"
	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/service/processor"
	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/source"
	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/logging"
	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/metrics"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	PostgresDSN   string        `long:"postgres-dsn" env:"APTOS_COIN_POSTGRES_DSN" description:"Postgres DSN" required:"true"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"APTOS_COIN_CLICKHOUSE_DSN" description:"ClickHouse DSN for the coin activity mirror; empty disables it"`
	Network       string        `long:"network" env:"APTOS_COIN_NETWORK" description:"network name used in metrics" default:"mainnet"`
	NodeURL       string        `long:"node-url" env:"APTOS_COIN_NODE_URL" description:"Aptos fullnode REST URL" default:"https://fullnode.mainnet.aptoslabs.com"`
	NodeRPS       int           `long:"node-rps" env:"APTOS_COIN_NODE_RPS" description:"max node requests per second, 0 for unlimited" default:"20"`
	HTTPTimeout   time.Duration `long:"http-timeout" env:"APTOS_COIN_HTTP_TIMEOUT" description:"HTTP timeout for node requests" default:"30s"`
	AnsAddress    string        `long:"ans-address" env:"APTOS_COIN_ANS_ADDRESS" description:"account publishing name service events" default:"0xdbf606fea404cb26efe68d00f8f4fff8e4b9ce69f903818f8acf81473a32430a"`
	StartVersion  int64         `long:"start-version" env:"APTOS_COIN_START_VERSION" description:"first version to process when ahead of stored progress" default:"0"`
	RangeSize     int64         `long:"range-size" env:"APTOS_COIN_RANGE_SIZE" description:"versions per processed range" default:"500"`
	Concurrency   int           `long:"concurrency" env:"APTOS_COIN_CONCURRENCY" description:"ranges processed concurrently" default:"4"`
	MaxParameters int           `long:"max-parameters" env:"APTOS_COIN_MAX_PARAMETERS" description:"bind parameter limit per statement" default:"65535"`
	MetricsAddr   string        `long:"metrics-addr" env:"APTOS_COIN_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	LogLevel      string        `long:"log-level" env:"APTOS_COIN_LOG_LEVEL" description:"log level" default:"info"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, "")
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("aptos coin processor failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := postgres.NewRepository(ctx, cfg.PostgresDSN, cfg.MaxParameters, metrics.NewPostgresRepository(cfg.Network), logger)
	if err != nil {
		return fmt.Errorf("init postgres repository: %w", err)
	}
	defer repo.Close()

	node, err := source.NewClient(source.Options{
		BaseURL: cfg.NodeURL,
		Timeout: cfg.HTTPTimeout,
		RPS:     cfg.NodeRPS,
	}, metrics.NewNodeClient(cfg.Network))
	if err != nil {
		return fmt.Errorf("init node client: %w", err)
	}

	var (
		writer ingester.RangeWriter = repo
		mirror ingester.Mirror
	)
	ingesterMetrics := metrics.NewIngester(processor.Name, cfg.Network)
	if cfg.ClickhouseDSN != "" {
		chRepo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository(cfg.Network))
		if err != nil {
			return fmt.Errorf("init clickhouse repository: %w", err)
		}
		defer func() {
			if err := chRepo.Close(); err != nil {
				logger.Error("close clickhouse repository", zap.Error(err))
			}
		}()
		activityMirror := ingester.NewActivityMirror(chRepo, ingesterMetrics, logger)
		writer = activityMirror.Wrap(repo)
		mirror = activityMirror
	} else {
		logger.Info("clickhouse dsn not set; coin activity mirror disabled")
	}

	proc, err := processor.New(
		decoder.New(cfg.AnsAddress),
		writer,
		clock.System{},
		metrics.NewProcessor(processor.Name, cfg.Network),
		logger,
	)
	if err != nil {
		return fmt.Errorf("init processor: %w", err)
	}

	svc, err := ingester.NewService(
		ingester.Config{
			StartVersion: cfg.StartVersion,
			RangeSize:    cfg.RangeSize,
			Workers:      cfg.Concurrency,
		},
		node,
		proc,
		repo,
		mirror,
		ingesterMetrics,
		logger,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
