// Package ingester drives the NULS ledger forward block by block.
package ingester

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/clock"
	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/ledger"
	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
	"go.uber.org/zap"
)

// Config tunes the ingestion loop. Zero values fall back to defaults.
type Config struct {
	StartHeight uint64
	Window      uint64
	Workers     int
}

// IngesterService follows the node tip, reconciling each new block into the ledger.
type IngesterService struct {
	logger            *zap.Logger
	network           model.Network
	metrics           IngesterMetrics
	sleep             func(context.Context, time.Duration) error
	backoff           clock.Backoff
	idleSleepDuration time.Duration
	longSleepDuration time.Duration
	heightFetcher     HeightFetcher
	blockProcessor    BlockProcessor
}

// NewIngesterService builds an IngesterService with dependencies. enricher may be nil.
func NewIngesterService(
	repo Repository,
	source BlockSource,
	reconciler Reconciler,
	enricher Enricher,
	metrics IngesterMetrics,
	network model.Network,
	cfg Config,
	logger *zap.Logger,
) (*IngesterService, error) {
	if repo == nil {
		return nil, errors.New("ingester repository is required")
	}
	if source == nil {
		return nil, errors.New("ingester block source is required")
	}
	if reconciler == nil {
		return nil, errors.New("ingester reconciler is required")
	}
	if metrics == nil {
		return nil, errors.New("ingester metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("network", string(network)))

	window := cfg.Window
	if window == 0 {
		window = defaultWindow
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkerCount
	}

	return &IngesterService{
		logger:            logger,
		network:           network,
		metrics:           metrics,
		sleep:             clock.SleepWithContext,
		backoff:           clock.Backoff{Initial: initialBackoff, Max: maxBackoff},
		idleSleepDuration: idleSleepDuration,
		longSleepDuration: longSleepDuration,
		heightFetcher: &windowHeightFetcher{
			source:      source,
			repository:  repo,
			startHeight: cfg.StartHeight,
			window:      window,
		},
		blockProcessor: &orderedBlockProcessor{
			workerCount: workers,
			source:      source,
			enricher:    enricher,
			reconciler:  reconciler,
			metrics:     metrics,
			logger:      logger.Named("blockProcessor"),
		},
	}, nil
}

// Run starts the ingestion loop until the context is canceled.
func (s *IngesterService) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := s.run(ctx)
		if err == nil {
			s.backoff.Reset()
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		d := s.longSleepDuration
		if ledger.Retryable(err) {
			d = s.backoff.Next()
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", d))
		} else {
			s.logger.Error("run iteration failed with permanent error", zap.Error(err), zap.Duration("sleep", d))
		}
		if sleepErr := s.sleep(ctx, d); sleepErr != nil {
			return sleepErr
		}
	}
}

func (s *IngesterService) run(ctx context.Context) error {
	started := time.Now()
	heights, err := s.heightFetcher.Fetch(ctx)
	s.metrics.ObserveFetchHeights(err, started)
	if err != nil {
		s.logger.Error("fetch heights failed", zap.Error(err))
		return err
	}

	if len(heights) == 0 {
		s.logger.Debug("no new heights discovered; sleeping", zap.Duration("sleep", s.idleSleepDuration))
		return s.sleep(ctx, s.idleSleepDuration)
	}

	s.logger.Info("processing blocks",
		zap.Uint64("from", heights[0]),
		zap.Uint64("to", heights[len(heights)-1]),
	)
	started = time.Now()
	err = s.blockProcessor.Process(ctx, heights)
	s.metrics.ObserveProcessBatch(err, len(heights), started)
	return err
}
