// Package processor turns a contiguous range of transactions into committed coin and name-service state.
package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/reducer"
	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/clock"
	"go.uber.org/zap"
)

// Name identifies the processor in processor_status and in metrics.
const Name = "coin_processor"

// Processor drives decoding, reduction and persistence for one range at a time.
// Process may be called concurrently for disjoint ranges.
type Processor struct {
	decoder Decoder
	repo    Repository
	clock   clock.Clock
	metrics Metrics
	logger  *zap.Logger
}

func New(decoder Decoder, repo Repository, clk clock.Clock, metrics Metrics, logger *zap.Logger) (*Processor, error) {
	if decoder == nil {
		return nil, errors.New("processor decoder is required")
	}
	if repo == nil {
		return nil, errors.New("processor repository is required")
	}
	if metrics == nil {
		return nil, errors.New("processor metrics is required")
	}
	if clk == nil {
		clk = clock.System{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		decoder: decoder,
		repo:    repo,
		clock:   clk,
		metrics: metrics,
		logger:  logger.Named("processor").With(zap.String("processor", Name)),
	}, nil
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process commits the rows derived from txs, which must cover vr exactly and in order.
// A failure leaves no partial state behind and is returned as *ProcessingError.
func (p *Processor) Process(ctx context.Context, vr model.VersionRange, txs []model.Transaction) (res model.ProcessingResult, err error) {
	started := time.Now()
	stage := StageValidating
	defer func() {
		p.metrics.ObserveRange(string(stage), err, len(txs), started)
	}()

	fail := func(cause error) error {
		p.logger.Error("process range failed",
			zap.Stringer("range", vr),
			zap.String("stage", string(stage)),
			zap.Error(cause),
		)
		return &ProcessingError{Processor: Name, Range: vr, Stage: stage, Err: cause}
	}

	if err = validateRange(vr, txs); err != nil {
		return model.ProcessingResult{}, fail(err)
	}

	stage = StageDecoding
	insertedAt := p.clock.Now()
	versions := make([]int64, len(txs))
	decoded := make([]model.TransactionRows, len(txs))
	for i, tx := range txs {
		rows, decodeErr := p.decoder.Decode(tx, insertedAt)
		if decodeErr != nil {
			err = fail(decodeErr)
			return model.ProcessingResult{}, err
		}
		versions[i] = tx.Version
		decoded[i] = rows
	}

	stage = StageReducing
	rows, err := reducer.Reduce(versions, decoded)
	if err != nil {
		err = fail(err)
		return model.ProcessingResult{}, err
	}

	stage = StagePersisting
	if err = p.repo.WriteRange(ctx, vr, rows); err != nil {
		err = fail(err)
		return model.ProcessingResult{}, err
	}

	stage = StageDone
	res = model.ProcessingResult{
		Processor:      Name,
		Range:          vr,
		CoinInfos:      len(rows.CoinInfos),
		CoinActivities: len(rows.CoinActivities),
		AnsLookups:     len(rows.AnsLookups),
	}
	p.logger.Debug("range processed",
		zap.Stringer("range", vr),
		zap.Int("coin_infos", res.CoinInfos),
		zap.Int("coin_activities", res.CoinActivities),
		zap.Int("ans_lookups", res.AnsLookups),
	)
	return res, nil
}

func validateRange(vr model.VersionRange, txs []model.Transaction) error {
	if !vr.Valid() {
		return fmt.Errorf("invalid range %s", vr)
	}
	if int64(len(txs)) != vr.Len() {
		return fmt.Errorf("got %d transactions for %d versions", len(txs), vr.Len())
	}
	for i, tx := range txs {
		if want := vr.Start + int64(i); tx.Version != want {
			return fmt.Errorf("transaction %d has version %d, want %d", i, tx.Version, want)
		}
	}
	return nil
}
