package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
	"github.com/shopspring/decimal"
)

func (s *RepositorySuite) TestInsertCoinActivities() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	activities := []model.CoinActivity{
		{
			TransactionVersion:   20,
			EventAccountAddress:  "0xa11ce",
			EventCreationNumber:  3,
			EventSequenceNumber:  0,
			OwnerAddress:         "0xa11ce",
			CoinType:             "0x1::aptos_coin::AptosCoin",
			Amount:               decimal.NewFromInt(-250),
			ActivityType:         "0x1::coin::WithdrawEvent",
			IsTransactionSuccess: true,
			EntryFunctionID:      "0x1::coin::transfer",
			InsertedAt:           now,
		},
		{
			TransactionVersion:   20,
			EventAccountAddress:  "0xa11ce",
			EventCreationNumber:  -1,
			EventSequenceNumber:  4,
			OwnerAddress:         "0xa11ce",
			CoinType:             "0x1::aptos_coin::AptosCoin",
			Amount:               decimal.NewFromInt(-1000),
			ActivityType:         "0x1::aptos_coin::GasFeeEvent",
			IsGasFee:             true,
			IsTransactionSuccess: true,
			EntryFunctionID:      "0x1::coin::transfer",
			InsertedAt:           now,
		},
	}

	s.metrics.EXPECT().Observe("insert_coin_activities", gomock.Nil(), gomock.Any()).Times(2)

	s.Require().NoError(s.repo.InsertCoinActivities(s.testCtx, activities))
	s.Require().NoError(s.repo.InsertCoinActivities(s.testCtx, activities))
	s.Equal(uint64(len(activities)), s.countRows("coin_activities"))
}
