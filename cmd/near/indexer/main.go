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

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/metrics"
	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/cache"
	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/contracts"
	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/lake"
	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/normalizer"
	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/repository/clickhouse"
	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/repository/postgres"
	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/resolver"
	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/service/ingester"
	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/writer"
	"github.com/goodnatureofminers/nearinsight-indexer/pkg/retry"
)

type config struct {
	Store         string `long:"store" env:"NEAR_INDEXER_STORE" description:"relational store backend" choice:"postgres" choice:"clickhouse" default:"postgres"`
	PostgresDSN   string `long:"postgres-dsn" env:"NEAR_INDEXER_POSTGRES_DSN" description:"PostgreSQL DSN"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"NEAR_INDEXER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`

	RedisAddr    string `long:"redis-addr" env:"NEAR_INDEXER_REDIS_ADDR" description:"shared reference cache address, empty disables it"`
	RedisPrefix  string `long:"redis-prefix" env:"NEAR_INDEXER_REDIS_PREFIX" description:"key prefix of the shared reference cache"`
	LocalCacheMB int    `long:"local-cache-mb" env:"NEAR_INDEXER_LOCAL_CACHE_MB" description:"in-process reference cache size" default:"256"`

	LakeEndpoint      string        `long:"lake-endpoint" env:"NEAR_INDEXER_LAKE_ENDPOINT" description:"S3 endpoint of the block lake" default:"s3.eu-central-1.amazonaws.com"`
	LakeBucket        string        `long:"lake-bucket" env:"NEAR_INDEXER_LAKE_BUCKET" description:"lake bucket, defaults to the network bucket"`
	LakeRegion        string        `long:"lake-region" env:"NEAR_INDEXER_LAKE_REGION" description:"lake bucket region" default:"eu-central-1"`
	LakeAccessKey     string        `long:"lake-access-key" env:"NEAR_INDEXER_LAKE_ACCESS_KEY" description:"lake access key"`
	LakeSecretKey     string        `long:"lake-secret-key" env:"NEAR_INDEXER_LAKE_SECRET_KEY" description:"lake secret key"`
	LakeSecure        bool          `long:"lake-secure" env:"NEAR_INDEXER_LAKE_SECURE" description:"use TLS for the lake endpoint"`
	LakeRequesterPays bool          `long:"lake-requester-pays" env:"NEAR_INDEXER_LAKE_REQUESTER_PAYS" description:"send the requester-pays header"`
	LakePollInterval  time.Duration `long:"lake-poll-interval" env:"NEAR_INDEXER_LAKE_POLL_INTERVAL" description:"wait between lake listings at the chain head" default:"2s"`

	Network     string `long:"network" env:"NEAR_INDEXER_NETWORK" description:"network name" choice:"mainnet" choice:"testnet" default:"mainnet"`
	StartHeight uint64 `long:"start-height" env:"NEAR_INDEXER_START_HEIGHT" description:"first height when no cursor is saved"`
	EndHeight   uint64 `long:"end-height" env:"NEAR_INDEXER_END_HEIGHT" description:"last height to index, 0 follows the chain"`
	CursorName  string `long:"cursor-name" env:"NEAR_INDEXER_CURSOR_NAME" description:"name of the persisted cursor" default:"near-indexer"`
	Workers     int    `long:"workers" env:"NEAR_INDEXER_WORKERS" description:"chunk normalization and decode workers" default:"4"`
	FlushSize   int    `long:"flush-size" env:"NEAR_INDEXER_FLUSH_SIZE" description:"blocks per store write" default:"50"`

	MetricsAddr string `long:"metrics-addr" env:"NEAR_INDEXER_METRICS_ADDR" description:"prometheus listen address, empty disables it" default:":9100"`
}

var lakeBuckets = map[model.Network]string{
	model.Mainnet: "near-lake-data-mainnet",
	model.Testnet: "near-lake-data-testnet",
}

// store is implemented by both relational backends.
type store interface {
	writer.Repository
	resolver.Repository
	ingester.CursorStore
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, cfg.MetricsAddr, logger)
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("near indexer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	network := model.Network(cfg.Network)
	policy := retry.DefaultPolicy()

	repo, closeRepo, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	var remote cache.RemoteCache
	if cfg.RedisAddr != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			return fmt.Errorf("init redis: %w", err)
		}
		defer func() {
			_ = client.Close()
		}()
		remote = client
	}
	txCache := cache.New(cfg.LocalCacheMB, remote, cfg.RedisPrefix, metrics.NewCache())

	res := resolver.New(logger.Named("resolver"), metrics.NewResolver(),
		resolver.DefaultTiers(txCache, repo, policy, logger.Named("resolver"))...)

	registry, err := contracts.ForNetwork(network)
	if err != nil {
		return err
	}
	runner := contracts.NewRunner(registry, cfg.Workers, metrics.NewDecoder(), logger.Named("contracts"))

	bucket := cfg.LakeBucket
	if bucket == "" {
		bucket = lakeBuckets[network]
	}
	objects, err := lake.NewS3Store(lake.S3Config{
		Endpoint:      cfg.LakeEndpoint,
		Bucket:        bucket,
		Region:        cfg.LakeRegion,
		AccessKey:     cfg.LakeAccessKey,
		SecretKey:     cfg.LakeSecretKey,
		Secure:        cfg.LakeSecure,
		RequesterPays: cfg.LakeRequesterPays,
	}, metrics.NewLakeClient(network))
	if err != nil {
		return fmt.Errorf("init lake store: %w", err)
	}
	source := lake.NewSource(objects, policy, cfg.LakePollInterval, logger.Named("lake"))

	svc, err := ingester.NewService(
		ingester.Config{
			CursorName:  cfg.CursorName,
			StartHeight: cfg.StartHeight,
			EndHeight:   cfg.EndHeight,
			FlushSize:   cfg.FlushSize,
		},
		source,
		normalizer.New(res, cfg.Workers),
		runner,
		res,
		txCache,
		writer.New(repo, policy, logger.Named("writer")),
		repo,
		metrics.NewIngester(network),
		logger.Named("ingester"),
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func openStore(ctx context.Context, cfg config) (store, func(), error) {
	switch cfg.Store {
	case "clickhouse":
		if cfg.ClickhouseDSN == "" {
			return nil, nil, errors.New("ClickHouse DSN is required")
		}
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewRepository("clickhouse"))
		if err != nil {
			return nil, nil, fmt.Errorf("init clickhouse repository: %w", err)
		}
		return repo, func() { _ = repo.Close() }, nil
	default:
		if cfg.PostgresDSN == "" {
			return nil, nil, errors.New("PostgreSQL DSN is required")
		}
		repo, err := postgres.NewRepository(ctx, cfg.PostgresDSN, metrics.NewRepository("postgres"))
		if err != nil {
			return nil, nil, fmt.Errorf("init postgres repository: %w", err)
		}
		return repo, repo.Close, nil
	}
}

func serveMetrics(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		<-ctx.Done()
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()

	logger.Info("starting metrics server", zap.String("addr", addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("metrics server failed", zap.Error(err))
	}
}
