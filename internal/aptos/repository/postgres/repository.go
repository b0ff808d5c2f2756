package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// DefaultMaxParameters is the bind parameter limit of a single Postgres statement.
const DefaultMaxParameters = 65535

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Executor runs a statement. Both the pool and a transaction satisfy it.
	Executor interface {
		Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	}

	DB interface {
		Executor
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		// InTx runs fn in one transaction, committing when fn returns nil.
		InTx(ctx context.Context, fn func(ctx context.Context, exec Executor) error) error
	}
)

type Repository struct {
	db            DB
	metrics       Metrics
	logger        *zap.Logger
	maxParameters int
	close         func()
}

// NewRepository connects a pool to dsn. maxParameters bounds the bind parameters of every
// multi-row statement; values below one select DefaultMaxParameters.
func NewRepository(ctx context.Context, dsn string, maxParameters int, metrics Metrics, logger *zap.Logger) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	r := newRepository(poolDB{Pool: pool}, maxParameters, metrics, logger)
	r.close = pool.Close
	return r, nil
}

func newRepository(db DB, maxParameters int, metrics Metrics, logger *zap.Logger) *Repository {
	if maxParameters < 1 {
		maxParameters = DefaultMaxParameters
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{
		db:            db,
		metrics:       metrics,
		logger:        logger.Named("postgres_repository"),
		maxParameters: maxParameters,
	}
}

// Close releases the pool.
func (r *Repository) Close() {
	if r.close != nil {
		r.close()
	}
}

type poolDB struct {
	*pgxpool.Pool
}

func (p poolDB) InTx(ctx context.Context, fn func(ctx context.Context, exec Executor) error) error {
	return pgx.BeginTxFunc(ctx, p.Pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		return fn(ctx, tx)
	})
}
