package decoder

import (
	"encoding/json"
	"errors"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/move"
	"github.com/goodnatureofminers/blockinsight7000-aptos/pkg/safe"
)

type eventHandle struct {
	GUID *struct {
		ID struct {
			Addr        string `json:"addr"`
			CreationNum string `json:"creation_num"`
		} `json:"id"`
	} `json:"guid"`
}

type coinStoreResource struct {
	DepositEvents  *eventHandle `json:"deposit_events"`
	WithdrawEvents *eventHandle `json:"withdraw_events"`
}

type eventKey struct {
	account        string
	creationNumber int64
}

func newEventKey(account string, creationNumber int64) eventKey {
	return eventKey{account: move.NormalizeAddress(account), creationNumber: creationNumber}
}

// coinStoreIndex maps a CoinStore's event handle guids to the coin type of the store.
type coinStoreIndex map[eventKey]string

func (idx coinStoreIndex) add(version int64, change model.WriteSetChange) error {
	coinType, err := CoinTypeOf(change.Type)
	if err != nil {
		return newDecodeError(version, change.Type, change.Data, err)
	}

	var store coinStoreResource
	if err := json.Unmarshal(change.Data, &store); err != nil {
		return newDecodeError(version, change.Type, change.Data, err)
	}

	for _, handle := range []*eventHandle{store.DepositEvents, store.WithdrawEvents} {
		if handle == nil || handle.GUID == nil {
			return newDecodeError(version, change.Type, change.Data, errors.New("missing event handle guid"))
		}
		creationNumber, err := safe.ParseInt64(handle.GUID.ID.CreationNum)
		if err != nil {
			return newDecodeError(version, change.Type, change.Data, err)
		}
		idx[newEventKey(handle.GUID.ID.Addr, creationNumber)] = coinType.CoinType
	}
	return nil
}

func (idx coinStoreIndex) coinType(account string, creationNumber int64) (string, bool) {
	coinType, ok := idx[newEventKey(account, creationNumber)]
	return coinType, ok
}
