package postgres

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
)

// Ranges may commit out of order, so a row from an earlier version replaces one from a later version.
// Equal or later versions keep the stored row.
var coinInfosStatement = insertStatement{
	table: "coin_infos",
	columns: []string{
		"coin_type",
		"transaction_version_created",
		"creator_address",
		"name",
		"symbol",
		"decimals",
		"supply",
		"inserted_at",
	},
	conflict: `ON CONFLICT (coin_type) DO UPDATE SET ` +
		`transaction_version_created = EXCLUDED.transaction_version_created, ` +
		`creator_address = EXCLUDED.creator_address, ` +
		`name = EXCLUDED.name, ` +
		`symbol = EXCLUDED.symbol, ` +
		`decimals = EXCLUDED.decimals, ` +
		`supply = EXCLUDED.supply, ` +
		`inserted_at = EXCLUDED.inserted_at ` +
		`WHERE coin_infos.transaction_version_created > EXCLUDED.transaction_version_created`,
}

// upsertCoinInfos keeps the row with the lowest creation version for a coin type.
func (r *Repository) upsertCoinInfos(ctx context.Context, exec Executor, infos []model.CoinInfo) (int64, error) {
	return execChunked(ctx, exec, coinInfosStatement, r.maxParameters, infos, func(info model.CoinInfo) []any {
		return []any{
			info.CoinType,
			info.TransactionVersionCreated,
			info.CreatorAddress,
			info.Name,
			info.Symbol,
			info.Decimals,
			info.Supply,
			info.InsertedAt,
		}
	})
}
