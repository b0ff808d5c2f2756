package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
	"go.uber.org/zap"
)

// WriteRange persists the reduced rows of vr in one transaction. A failed attempt is retried once
// with cleaned rows; a second failure is returned with the range attached.
// Once an attempt has started it runs to completion even if ctx is cancelled.
func (r *Repository) WriteRange(ctx context.Context, vr model.VersionRange, rows model.RangeRows) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("write_range", err, start)
	}()

	if err = ctx.Err(); err != nil {
		return fmt.Errorf("write range %s: %w", vr, err)
	}
	if rows.Empty() {
		return nil
	}

	unitCtx := context.WithoutCancel(ctx)

	firstErr := r.writeRows(unitCtx, vr, rows)
	if firstErr == nil {
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		err = fmt.Errorf("write range %s: %w", vr, errors.Join(firstErr, ctxErr))
		return err
	}

	r.logger.Warn("write range failed, retrying with cleaned rows",
		zap.Stringer("range", vr),
		zap.Error(firstErr),
	)

	if retryErr := r.writeDegraded(unitCtx, vr, rows); retryErr != nil {
		err = fmt.Errorf("write range %s after degraded retry: %w", vr, errors.Join(firstErr, retryErr))
		return err
	}
	return nil
}

func (r *Repository) writeDegraded(ctx context.Context, vr model.VersionRange, rows model.RangeRows) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("write_range_degraded", err, start)
	}()

	err = r.writeRows(ctx, vr, clean(rows))
	return err
}

func (r *Repository) writeRows(ctx context.Context, vr model.VersionRange, rows model.RangeRows) error {
	return r.db.InTx(ctx, func(ctx context.Context, exec Executor) error {
		infos, err := r.upsertCoinInfos(ctx, exec, rows.CoinInfos)
		if err != nil {
			return fmt.Errorf("upsert coin infos: %w", err)
		}
		activities, err := r.insertCoinActivities(ctx, exec, rows.CoinActivities)
		if err != nil {
			return fmt.Errorf("insert coin activities: %w", err)
		}
		lookups, err := r.upsertCurrentAnsLookups(ctx, exec, rows.AnsLookups)
		if err != nil {
			return fmt.Errorf("upsert current ans lookups: %w", err)
		}

		r.logger.Debug("range rows written",
			zap.Stringer("range", vr),
			zap.Int64("coin_infos", infos),
			zap.Int64("coin_activities", activities),
			zap.Int64("ans_lookups", lookups),
		)
		return nil
	})
}
