// Package ingester follows the node and feeds consecutive version ranges to the processor.
package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-aptos/pkg/workerpool"
	"go.uber.org/zap"
)

// Config tunes how far ahead of the stored status the service works.
type Config struct {
	// StartVersion is the first version to process when it is ahead of the stored status.
	StartVersion int64
	// RangeSize is the number of versions handed to one Process call.
	RangeSize int64
	// Workers is the number of ranges processed concurrently.
	Workers int
}

// Service orchestrates range ingestion and records progress in processor_status.
type Service struct {
	logger            *zap.Logger
	source            Source
	processor         Processor
	status            StatusRepository
	mirror            Mirror
	metrics           Metrics
	clock             clock.Clock
	sleep             func(context.Context, time.Duration) error
	sleepDuration     time.Duration
	longSleepDuration time.Duration
	startVersion      int64
	rangeSize         int64
	workerCount       int
}

// NewService builds a Service. mirror may be nil when no analytics mirror is configured.
func NewService(
	cfg Config,
	source Source,
	processor Processor,
	status StatusRepository,
	mirror Mirror,
	metrics Metrics,
	logger *zap.Logger,
) (*Service, error) {
	switch {
	case source == nil:
		return nil, errors.New("ingester source is required")
	case processor == nil:
		return nil, errors.New("ingester processor is required")
	case status == nil:
		return nil, errors.New("ingester status repository is required")
	case metrics == nil:
		return nil, errors.New("ingester metrics is required")
	case cfg.StartVersion < 0:
		return nil, fmt.Errorf("invalid start version %d", cfg.StartVersion)
	}
	if cfg.RangeSize <= 0 {
		cfg.RangeSize = defaultRangeSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkerCount
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		logger:            logger.Named("ingester").With(zap.String("processor", processor.Name())),
		source:            source,
		processor:         processor,
		status:            status,
		mirror:            mirror,
		metrics:           metrics,
		clock:             clock.System{},
		sleep:             clock.SleepWithContext,
		sleepDuration:     sleepDuration,
		longSleepDuration: longSleepDuration,
		startVersion:      cfg.StartVersion,
		rangeSize:         cfg.RangeSize,
		workerCount:       cfg.Workers,
	}, nil
}

// Run starts the ingestion loop until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	if s.mirror != nil {
		mirrorCtx, mirrorCancel := context.WithCancel(ctx)
		s.mirror.Start(mirrorCtx)
		defer func() {
			mirrorCancel()
			s.mirror.Stop()
		}()
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.sleepDuration))
			if sleepErr := s.sleep(ctx, s.sleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *Service) run(ctx context.Context) error {
	next, err := s.nextVersion(ctx)
	if err != nil {
		return err
	}

	latest, err := s.source.LatestVersion(ctx)
	if err != nil {
		s.logger.Error("fetch latest version failed", zap.Error(err))
		return fmt.Errorf("fetch latest version: %w", err)
	}

	if latest < next {
		s.logger.Debug("no new versions; sleeping",
			zap.Int64("next", next),
			zap.Int64("latest", latest),
			zap.Duration("sleep", s.longSleepDuration),
		)
		return s.sleep(ctx, s.longSleepDuration)
	}

	ranges := s.plan(next, latest)
	s.logger.Info("processing batch",
		zap.Int("ranges", len(ranges)),
		zap.Int64("from", ranges[0].Start),
		zap.Int64("to", ranges[len(ranges)-1].End),
	)

	started := time.Now()
	results, err := workerpool.Map(ctx, s.workerCount, ranges, s.processRange)
	s.metrics.ObserveBatch(err, len(ranges), started)
	if err != nil {
		s.logger.Error("process batch failed", zap.Int64("from", next), zap.Error(err))
		return fmt.Errorf("process ranges from %d: %w", next, err)
	}

	last := ranges[len(ranges)-1].End
	if err = s.status.UpdateLastSuccessVersion(ctx, s.processor.Name(), last, s.clock.Now()); err != nil {
		s.logger.Error("update processor status failed", zap.Int64("version", last), zap.Error(err))
		return fmt.Errorf("update last success version %d: %w", last, err)
	}
	s.metrics.SetLastSuccessVersion(last)

	total := summarize(results)
	s.logger.Info("batch committed",
		zap.Int64("last_success_version", last),
		zap.Int("coin_infos", total.CoinInfos),
		zap.Int("coin_activities", total.CoinActivities),
		zap.Int("ans_lookups", total.AnsLookups),
	)

	if last < latest {
		return nil
	}
	return s.sleep(ctx, s.sleepDuration)
}

func (s *Service) nextVersion(ctx context.Context) (int64, error) {
	last, ok, err := s.status.LastSuccessVersion(ctx, s.processor.Name())
	if err != nil {
		s.logger.Error("read processor status failed", zap.Error(err))
		return 0, fmt.Errorf("read last success version: %w", err)
	}
	if !ok || last+1 < s.startVersion {
		return s.startVersion, nil
	}
	return last + 1, nil
}

// plan cuts the versions the next batch covers into ranges of rangeSize.
func (s *Service) plan(next, latest int64) []model.VersionRange {
	end := next + s.rangeSize*int64(s.workerCount) - 1
	if end > latest {
		end = latest
	}
	return model.SplitRange(model.VersionRange{Start: next, End: end}, s.rangeSize)
}

func (s *Service) processRange(ctx context.Context, vr model.VersionRange) (model.ProcessingResult, error) {
	txs, err := s.source.FetchRange(ctx, vr)
	if err != nil {
		return model.ProcessingResult{}, fmt.Errorf("fetch range %s: %w", vr, err)
	}
	return s.processor.Process(ctx, vr, txs)
}

func summarize(results []model.ProcessingResult) model.ProcessingResult {
	var total model.ProcessingResult
	for _, r := range results {
		total.CoinInfos += r.CoinInfos
		total.CoinActivities += r.CoinActivities
		total.AnsLookups += r.AnsLookups
	}
	return total
}
