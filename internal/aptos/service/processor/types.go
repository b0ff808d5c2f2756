package processor

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Decoder interface {
		Decode(tx model.Transaction, insertedAt time.Time) (model.TransactionRows, error)
	}
	Repository interface {
		WriteRange(ctx context.Context, vr model.VersionRange, rows model.RangeRows) error
	}
	Metrics interface {
		ObserveRange(stage string, err error, transactions int, started time.Time)
	}
)
