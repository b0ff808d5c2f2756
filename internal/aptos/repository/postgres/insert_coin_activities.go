package postgres

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
)

var coinActivitiesStatement = insertStatement{
	table: "coin_activities",
	columns: []string{
		"transaction_version",
		"event_account_address",
		"event_creation_number",
		"event_sequence_number",
		"owner_address",
		"coin_type",
		"amount",
		"activity_type",
		"is_gas_fee",
		"is_transaction_success",
		"entry_function_id_str",
		"inserted_at",
	},
	conflict: "ON CONFLICT (transaction_version, event_account_address, event_creation_number, event_sequence_number) DO NOTHING",
}

func (r *Repository) insertCoinActivities(ctx context.Context, exec Executor, activities []model.CoinActivity) (int64, error) {
	return execChunked(ctx, exec, coinActivitiesStatement, r.maxParameters, activities, func(a model.CoinActivity) []any {
		return []any{
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
		}
	})
}
