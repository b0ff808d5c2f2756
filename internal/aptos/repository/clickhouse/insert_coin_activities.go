package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
)

// InsertCoinActivities copies activity rows into ClickHouse. The table deduplicates on the primary key,
// so repeated copies of a range are harmless.
func (r *Repository) InsertCoinActivities(ctx context.Context, activities []model.CoinActivity) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_coin_activities", err, start)
	}()

	if len(activities) == 0 {
		return nil
	}

	const query = `
INSERT INTO coin_activities (
	transaction_version,
	event_account_address,
	event_creation_number,
	event_sequence_number,
	owner_address,
	coin_type,
	amount,
	activity_type,
	is_gas_fee,
	is_transaction_success,
	entry_function_id_str,
	inserted_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare coin activities batch: %w", err)
	}

	for _, a := range activities {
		if err = batch.Append(
			a.TransactionVersion,
			a.EventAccountAddress,
			a.EventCreationNumber,
			a.EventSequenceNumber,
			a.OwnerAddress,
			a.CoinType,
			a.Amount,
			a.ActivityType,
			a.IsGasFee,
			a.IsTransactionSuccess,
			a.EntryFunctionID,
			a.InsertedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append coin activity: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert coin activities: %w", err)
	}
	return nil
}
