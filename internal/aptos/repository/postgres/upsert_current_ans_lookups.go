package postgres

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
)

// An older range never overwrites a row written by a newer one.
var currentAnsLookupsStatement = insertStatement{
	table: "current_ans_lookup",
	columns: []string{
		"domain",
		"subdomain",
		"registered_address",
		"last_transaction_version",
		"expiration_timestamp",
		"inserted_at",
	},
	conflict: `ON CONFLICT (domain, subdomain) DO UPDATE SET ` +
		`registered_address = EXCLUDED.registered_address, ` +
		`last_transaction_version = EXCLUDED.last_transaction_version, ` +
		`expiration_timestamp = EXCLUDED.expiration_timestamp, ` +
		`inserted_at = EXCLUDED.inserted_at ` +
		`WHERE current_ans_lookup.last_transaction_version <= EXCLUDED.last_transaction_version`,
}

// upsertCurrentAnsLookups expects at most one row per key.
func (r *Repository) upsertCurrentAnsLookups(ctx context.Context, exec Executor, lookups []model.CurrentAnsLookup) (int64, error) {
	return execChunked(ctx, exec, currentAnsLookupsStatement, r.maxParameters, lookups, func(l model.CurrentAnsLookup) []any {
		return []any{
			l.Domain,
			l.Subdomain,
			l.RegisteredAddress,
			l.LastTransactionVersion,
			l.ExpirationTimestamp,
			l.InsertedAt,
		}
	})
}
