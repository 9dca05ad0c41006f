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

	"github.com/goodnatureofminers/nulsinsight-backend/internal/metrics"
	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/chain"
	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/ipfs"
	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/ledger"
	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/nuls"
	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/repository/clickhouse"
	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/repository/memory"
	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/service/ingester"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	Store         string        `long:"store" env:"NULS_INGESTER_STORE" choice:"clickhouse" choice:"memory" default:"clickhouse" description:"ledger store"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"NULS_INGESTER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Network       model.Network `long:"network" env:"NULS_INGESTER_NETWORK" description:"network name" default:"mainnet"`
	NodeURL       string        `long:"node-url" env:"NULS_INGESTER_NODE_URL" description:"NULS node API URL" default:"http://127.0.0.1:8001/api/"`
	HTTPTimeout   time.Duration `long:"http-timeout" env:"NULS_INGESTER_HTTP_TIMEOUT" description:"HTTP timeout for node requests" default:"30s"`
	StartHeight   uint64        `long:"start-height" env:"NULS_INGESTER_START_HEIGHT" description:"first height to ingest into an empty ledger"`
	Window        uint64        `long:"window" env:"NULS_INGESTER_WINDOW" description:"blocks fetched per iteration" default:"100"`
	Workers       int           `long:"workers" env:"NULS_INGESTER_WORKERS" description:"parallel block fetchers" default:"8"`
	CacheSize     int           `long:"resolver-cache-size" env:"NULS_INGESTER_RESOLVER_CACHE_SIZE" description:"transactions kept in the resolver cache" default:"100000"`
	MetricsAddr   string        `long:"metrics-addr" env:"NULS_INGESTER_METRICS_ADDR" description:"address for metrics server" default:":2112"`

	IPFS struct {
		URL       string        `long:"url" env:"URL" description:"IPFS HTTP API URL; enrichment is disabled when empty"`
		Timeout   time.Duration `long:"timeout" env:"TIMEOUT" description:"per fetch timeout" default:"10s"`
		RPS       int           `long:"rps" env:"RPS" description:"fetches per second" default:"20"`
		CacheTTL  time.Duration `long:"cache-ttl" env:"CACHE_TTL" description:"lifetime of resolved content" default:"10m"`
		CacheSize uint64        `long:"cache-size" env:"CACHE_SIZE" description:"resolved references kept in memory" default:"10000"`
	} `group:"ipfs" namespace:"ipfs" env-namespace:"NULS_INGESTER_IPFS"`
}

// store is what the pipeline needs from a ledger backend.
type store interface {
	ledger.Store
	ingester.Repository
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

	if cfg.Store == "clickhouse" && cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("nuls ingester failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	st, closeStore, err := newStore(cfg)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer closeStore()

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	node, err := nuls.NewNodeClient(cfg.NodeURL, httpClient, metrics.NewNodeClient(cfg.Network))
	if err != nil {
		return fmt.Errorf("init node client: %w", err)
	}
	source := nuls.NewBlockSource(node, cfg.Network)

	enricher, closeEnricher, err := newEnricher(cfg, logger)
	if err != nil {
		return fmt.Errorf("init enricher: %w", err)
	}
	defer closeEnricher()

	resolver := chain.NewTransactionResolver(st, cfg.CacheSize)
	reconciler, err := ledger.NewReconciler(st, resolver, metrics.NewReconciler(cfg.Network), logger)
	if err != nil {
		return fmt.Errorf("init reconciler: %w", err)
	}

	svc, err := ingester.NewIngesterService(
		st,
		source,
		reconciler,
		enricher,
		metrics.NewIngester(cfg.Network),
		cfg.Network,
		ingester.Config{StartHeight: cfg.StartHeight, Window: cfg.Window, Workers: cfg.Workers},
		logger,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func newStore(cfg config) (store, func(), error) {
	if cfg.Store == "memory" {
		return memory.NewStore(cfg.Network), func() {}, nil
	}
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, cfg.Network, metrics.NewClickhouseRepository())
	if err != nil {
		return nil, nil, err
	}
	return repo, func() { _ = repo.Close() }, nil
}

func newEnricher(cfg config, logger *zap.Logger) (*ipfs.Enricher, func(), error) {
	if cfg.IPFS.URL == "" {
		return ipfs.NewEnricher(nil, logger), func() {}, nil
	}
	client, err := ipfs.NewClient(ipfs.Config{
		BaseURL:   cfg.IPFS.URL,
		Timeout:   cfg.IPFS.Timeout,
		RPS:       cfg.IPFS.RPS,
		CacheTTL:  cfg.IPFS.CacheTTL,
		CacheSize: cfg.IPFS.CacheSize,
	}, nil, metrics.NewIPFSClient())
	if err != nil {
		return nil, nil, err
	}
	return ipfs.NewEnricher(client, logger), client.Close, nil
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
