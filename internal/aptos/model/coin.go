package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CoinTypeMaxLength        = 256
	CoinNameMaxLength        = 32
	CoinSymbolMaxLength      = 10
	AddressMaxLength         = 66
	EntryFunctionIDMaxLength = 100
	ActivityTypeMaxLength    = 200
)

// CoinInfo is a row of coin_infos. The first row written for a coin type is kept forever.
type CoinInfo struct {
	CoinType                  string
	TransactionVersionCreated int64
	CreatorAddress            string
	Name                      string
	Symbol                    string
	Decimals                  int32
	Supply                    decimal.NullDecimal
	InsertedAt                time.Time
}

// CoinActivity is an append-only row of coin_activities.
type CoinActivity struct {
	TransactionVersion   int64
	EventAccountAddress  string
	EventCreationNumber  int64
	EventSequenceNumber  int64
	OwnerAddress         string
	CoinType             string
	Amount               decimal.Decimal
	ActivityType         string
	IsGasFee             bool
	IsTransactionSuccess bool
	EntryFunctionID      string
	InsertedAt           time.Time
}

// CoinActivityKey is the primary key of coin_activities.
type CoinActivityKey struct {
	TransactionVersion  int64
	EventAccountAddress string
	EventCreationNumber int64
	EventSequenceNumber int64
}

// Key returns the primary key of the row.
func (a CoinActivity) Key() CoinActivityKey {
	return CoinActivityKey{
		TransactionVersion:  a.TransactionVersion,
		EventAccountAddress: a.EventAccountAddress,
		EventCreationNumber: a.EventCreationNumber,
		EventSequenceNumber: a.EventSequenceNumber,
	}
}
