package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Source interface {
		LatestVersion(ctx context.Context) (int64, error)
		FetchRange(ctx context.Context, vr model.VersionRange) ([]model.Transaction, error)
	}
	Processor interface {
		Name() string
		Process(ctx context.Context, vr model.VersionRange, txs []model.Transaction) (model.ProcessingResult, error)
	}
	StatusRepository interface {
		LastSuccessVersion(ctx context.Context, processor string) (int64, bool, error)
		UpdateLastSuccessVersion(ctx context.Context, processor string, version int64, updatedAt time.Time) error
	}
	RangeWriter interface {
		WriteRange(ctx context.Context, vr model.VersionRange, rows model.RangeRows) error
	}
	ActivitySink interface {
		InsertCoinActivities(ctx context.Context, activities []model.CoinActivity) error
	}
	Mirror interface {
		Start(ctx context.Context)
		Stop()
	}
	Metrics interface {
		ObserveBatch(err error, ranges int, started time.Time)
		SetLastSuccessVersion(version int64)
	}
	MirrorMetrics interface {
		ObserveMirrorFlush(err error, activities int, started time.Time)
		ObserveMirrorDropped(activities int)
	}
)
