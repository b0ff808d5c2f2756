package decoder

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/move"
)

type coinInfoResource struct {
	Name     *string                               `json:"name"`
	Symbol   *string                               `json:"symbol"`
	Decimals *int32                                `json:"decimals"`
	Supply   *move.Option[move.OptionalAggregator] `json:"supply"`
}

func (r coinInfoResource) validate() error {
	switch {
	case r.Name == nil:
		return errors.New("missing name")
	case r.Symbol == nil:
		return errors.New("missing symbol")
	case r.Decimals == nil:
		return errors.New("missing decimals")
	case r.Supply == nil:
		return errors.New("missing supply")
	}
	return nil
}

// CoinType describes the coin a CoinInfo<T> or CoinStore<T> is generic over.
type CoinType struct {
	CoinType       string
	CreatorAddress string
	Module         string
	Name           string
}

// CoinTypeOf extracts the coin type from the first type parameter of a coin resource type.
func CoinTypeOf(resourceType string) (CoinType, error) {
	tag, err := move.ParseStructTag(resourceType)
	if err != nil {
		return CoinType{}, err
	}
	if len(tag.TypeParams) == 0 {
		return CoinType{}, fmt.Errorf("resource %s has no coin type parameter", resourceType)
	}
	coin, err := move.ParseStructTag(tag.TypeParams[0])
	if err != nil {
		return CoinType{}, fmt.Errorf("coin type parameter: %w", err)
	}
	return CoinType{
		CoinType:       tag.TypeParams[0],
		CreatorAddress: coin.Address,
		Module:         coin.Module,
		Name:           coin.Name,
	}, nil
}

func parseCoinInfo(version int64, change model.WriteSetChange, aggregators move.AggregatorValues, insertedAt time.Time) (model.CoinInfo, error) {
	coinType, err := CoinTypeOf(change.Type)
	if err != nil {
		return model.CoinInfo{}, newDecodeError(version, change.Type, change.Data, err)
	}

	var resource coinInfoResource
	if err := json.Unmarshal(change.Data, &resource); err != nil {
		return model.CoinInfo{}, newDecodeError(version, change.Type, change.Data, err)
	}
	if err := resource.validate(); err != nil {
		return model.CoinInfo{}, newDecodeError(version, change.Type, change.Data, err)
	}

	return model.CoinInfo{
		CoinType:                  model.Truncate(coinType.CoinType, model.CoinTypeMaxLength),
		TransactionVersionCreated: version,
		CreatorAddress:            coinType.CreatorAddress,
		Name:                      model.Truncate(*resource.Name, model.CoinNameMaxLength),
		Symbol:                    model.Truncate(*resource.Symbol, model.CoinSymbolMaxLength),
		Decimals:                  *resource.Decimals,
		Supply:                    move.ResolveOptional(*resource.Supply, aggregators),
		InsertedAt:                insertedAt,
	}, nil
}
