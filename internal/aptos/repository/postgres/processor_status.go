package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// LastSuccessVersion returns the last version processor committed. ok is false when it has not committed yet.
func (r *Repository) LastSuccessVersion(ctx context.Context, processor string) (version int64, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("last_success_version", err, start)
	}()

	const query = `SELECT last_success_version FROM processor_status WHERE processor = $1`

	err = r.db.QueryRow(ctx, query, processor).Scan(&version)
	if errors.Is(err, pgx.ErrNoRows) {
		err = nil
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("select processor status: %w", err)
	}
	return version, true, nil
}

// UpdateLastSuccessVersion records version for processor. The stored version never moves backwards.
func (r *Repository) UpdateLastSuccessVersion(ctx context.Context, processor string, version int64, updatedAt time.Time) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("update_last_success_version", err, start)
	}()

	const query = `
INSERT INTO processor_status (processor, last_success_version, last_updated)
VALUES ($1, $2, $3)
ON CONFLICT (processor) DO UPDATE SET
	last_success_version = EXCLUDED.last_success_version,
	last_updated = EXCLUDED.last_updated
WHERE processor_status.last_success_version <= EXCLUDED.last_success_version`

	if _, err = r.db.Exec(ctx, query, processor, version, updatedAt); err != nil {
		return fmt.Errorf("upsert processor status: %w", err)
	}
	return nil
}
