package decoder

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
	"github.com/shopspring/decimal"
)

type coinAmountEvent struct {
	Amount *decimal.Decimal `json:"amount"`
}

func parseCoinActivity(kind EventKind, tx model.Transaction, event model.Event, stores coinStoreIndex, insertedAt time.Time) (model.CoinActivity, error) {
	var data coinAmountEvent
	if err := json.Unmarshal(event.Data, &data); err != nil {
		return model.CoinActivity{}, newDecodeError(tx.Version, event.Type, event.Data, err)
	}
	if data.Amount == nil {
		return model.CoinActivity{}, newDecodeError(tx.Version, event.Type, event.Data, errors.New("missing amount"))
	}

	coinType, ok := stores.coinType(event.AccountAddress, event.CreationNumber)
	if !ok {
		return model.CoinActivity{}, newDecodeError(tx.Version, event.Type, event.Data,
			fmt.Errorf("no coin store for event handle %s/%d", event.AccountAddress, event.CreationNumber))
	}

	amount := *data.Amount
	if kind == WithdrawEvent {
		amount = amount.Neg()
	}

	return model.CoinActivity{
		TransactionVersion:   tx.Version,
		EventAccountAddress:  event.AccountAddress,
		EventCreationNumber:  event.CreationNumber,
		EventSequenceNumber:  event.SequenceNumber,
		OwnerAddress:         event.AccountAddress,
		CoinType:             model.Truncate(coinType, model.CoinTypeMaxLength),
		Amount:               amount,
		ActivityType:         event.Type,
		IsGasFee:             false,
		IsTransactionSuccess: tx.Success,
		EntryFunctionID:      model.Truncate(tx.EntryFunctionID, model.EntryFunctionIDMaxLength),
		InsertedAt:           insertedAt,
	}, nil
}

func gasFeeActivity(tx model.Transaction, insertedAt time.Time) (model.CoinActivity, error) {
	if tx.Sender == "" {
		return model.CoinActivity{}, newDecodeError(tx.Version, GasFeeActivityType, nil, errors.New("user transaction without sender"))
	}
	fee := decimal.NewFromInt(tx.GasUsed).Mul(decimal.NewFromInt(tx.GasUnitPrice))

	return model.CoinActivity{
		TransactionVersion:   tx.Version,
		EventAccountAddress:  tx.Sender,
		EventCreationNumber:  GasFeeCreationNumber,
		EventSequenceNumber:  tx.SequenceNumber,
		OwnerAddress:         tx.Sender,
		CoinType:             GasFeeCoinType,
		Amount:               fee.Neg(),
		ActivityType:         GasFeeActivityType,
		IsGasFee:             true,
		IsTransactionSuccess: tx.Success,
		EntryFunctionID:      model.Truncate(tx.EntryFunctionID, model.EntryFunctionIDMaxLength),
		InsertedAt:           insertedAt,
	}, nil
}
