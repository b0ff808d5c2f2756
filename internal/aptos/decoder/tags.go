package decoder

import "github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/move"

// AnsAddressV1 is the account that publishes the v1 name service events.
const AnsAddressV1 = "0xdbf606fea404cb26efe68d00f8f4fff8e4b9ce69f903818f8acf81473a32430a"

const (
	coinInfoTag  = "0x1::coin::CoinInfo"
	coinStoreTag = "0x1::coin::CoinStore"
	withdrawTag  = "0x1::coin::WithdrawEvent"
	depositTag   = "0x1::coin::DepositEvent"

	// GasFeeActivityType is recorded for the fee every user transaction pays.
	GasFeeActivityType = "0x1::aptos_coin::GasFeeEvent"
	// GasFeeCoinType is the coin gas is paid in.
	GasFeeCoinType = "0x1::aptos_coin::AptosCoin"
	// GasFeeCreationNumber marks gas fee rows, which have no event guid of their own.
	GasFeeCreationNumber int64 = -1
)

// ResourceKind is the closed set of resource types the decoder understands.
type ResourceKind uint8

const (
	UnsupportedResource ResourceKind = iota
	CoinInfoResource
	CoinStoreResource
)

var resourceKinds = map[string]ResourceKind{
	coinInfoTag:  CoinInfoResource,
	coinStoreTag: CoinStoreResource,
}

// ClassifyResource maps a resource type string to its kind. Unknown types are UnsupportedResource.
func ClassifyResource(typ string) ResourceKind {
	return resourceKinds[move.BaseName(typ)]
}

func (k ResourceKind) String() string {
	switch k {
	case CoinInfoResource:
		return "coin_info"
	case CoinStoreResource:
		return "coin_store"
	default:
		return "unsupported"
	}
}

// EventKind is the closed set of event types the decoder understands.
type EventKind uint8

const (
	UnsupportedEvent EventKind = iota
	WithdrawEvent
	DepositEvent
	RegisterNameEvent
	SetNameAddressEvent
)

func (k EventKind) String() string {
	switch k {
	case WithdrawEvent:
		return "withdraw"
	case DepositEvent:
		return "deposit"
	case RegisterNameEvent:
		return "register_name"
	case SetNameAddressEvent:
		return "set_name_address"
	default:
		return "unsupported"
	}
}

func eventKinds(ansAddress string) map[string]EventKind {
	ans := move.NormalizeAddress(ansAddress)
	kinds := map[string]EventKind{
		withdrawTag: WithdrawEvent,
		depositTag:  DepositEvent,
	}
	kinds[ans+"::events::RegisterNameEventV1"] = RegisterNameEvent
	kinds[ans+"::events::SetNameAddressEventV1"] = SetNameAddressEvent
	return kinds
}
