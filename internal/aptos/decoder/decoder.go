// Package decoder turns Aptos transactions into coin and name-service rows.
package decoder

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/move"
	"github.com/shopspring/decimal"
)

// Decoder classifies write set changes and events by type tag and builds rows for the supported ones.
type Decoder struct {
	eventKinds map[string]EventKind
}

// New returns a Decoder matching name-service events published by ansAddress.
// An empty ansAddress selects AnsAddressV1.
func New(ansAddress string) *Decoder {
	if ansAddress == "" {
		ansAddress = AnsAddressV1
	}
	return &Decoder{eventKinds: eventKinds(ansAddress)}
}

// ClassifyEvent maps an event type string to its kind. Unknown types are UnsupportedEvent.
func (d *Decoder) ClassifyEvent(typ string) EventKind {
	return d.eventKinds[move.BaseName(typ)]
}

// Decode builds the rows of one transaction. insertedAt is stamped onto every row.
// Unsupported resources and events are skipped; a malformed payload for a supported tag is a *DecodeError.
func (d *Decoder) Decode(tx model.Transaction, insertedAt time.Time) (model.TransactionRows, error) {
	var rows model.TransactionRows

	aggregators := aggregatorSnapshot(tx.Changes)
	stores := make(coinStoreIndex)

	for _, change := range tx.Changes {
		if change.Kind != model.WriteResource {
			continue
		}
		kind := ClassifyResource(change.Type)
		if kind == UnsupportedResource {
			continue
		}

		switch kind {
		case CoinInfoResource:
			info, err := parseCoinInfo(tx.Version, change, aggregators, insertedAt)
			if err != nil {
				return model.TransactionRows{}, err
			}
			rows.CoinInfos = append(rows.CoinInfos, info)
		default:
			if err := parseResource(kind, tx.Version, change, stores); err != nil {
				return model.TransactionRows{}, err
			}
		}
	}

	for _, event := range tx.Events {
		kind := d.ClassifyEvent(event.Type)
		if kind == UnsupportedEvent {
			continue
		}

		switch kind {
		case WithdrawEvent, DepositEvent:
			activity, err := parseCoinActivity(kind, tx, event, stores, insertedAt)
			if err != nil {
				return model.TransactionRows{}, err
			}
			rows.CoinActivities = append(rows.CoinActivities, activity)
		default:
			lookup, err := parseAnsEvent(kind, tx.Version, event, insertedAt)
			if err != nil {
				return model.TransactionRows{}, err
			}
			rows.AnsLookups = append(rows.AnsLookups, lookup)
		}
	}

	if tx.Kind == model.UserTransaction {
		fee, err := gasFeeActivity(tx, insertedAt)
		if err != nil {
			return model.TransactionRows{}, err
		}
		rows.CoinActivities = append(rows.CoinActivities, fee)
	}

	return rows, nil
}

// parseResource handles resources that feed decoder state rather than rows.
func parseResource(kind ResourceKind, version int64, change model.WriteSetChange, stores coinStoreIndex) error {
	switch kind {
	case CoinStoreResource:
		return stores.add(version, change)
	default:
		return fmt.Errorf("%w: resource %s (%s) at version %d", ErrUnsupportedTag, change.Type, kind, version)
	}
}

// aggregatorSnapshot collects numeric table item values written by the transaction. Aggregator
// values are stored as plain u128 table items, so anything that does not decode as a number is not one.
func aggregatorSnapshot(changes []model.WriteSetChange) move.AggregatorValues {
	var values move.AggregatorValues
	for _, change := range changes {
		if change.Kind != model.WriteTableItem || len(change.Data) == 0 {
			continue
		}
		var value decimal.Decimal
		if err := json.Unmarshal(change.Data, &value); err != nil {
			continue
		}
		if values == nil {
			values = make(move.AggregatorValues)
		}
		values[move.NewAggregatorKey(change.Handle, change.Key)] = value
	}
	return values
}
