package move

import (
	"github.com/shopspring/decimal"
)

// OptionalAggregator mirrors 0x1::optional_aggregator::OptionalAggregator: a counter tracked either
// inline as an integer or behind an aggregator stored as a table item.
type OptionalAggregator struct {
	Aggregator Option[AggregatorRef] `json:"aggregator"`
	Integer    Option[Integer]       `json:"integer"`
}

// AggregatorRef points at the table item holding an aggregator value.
type AggregatorRef struct {
	Handle string          `json:"handle"`
	Key    string          `json:"key"`
	Limit  decimal.Decimal `json:"limit"`
}

// Integer is the inline form of an optional aggregator.
type Integer struct {
	Value decimal.Decimal `json:"value"`
	Limit decimal.Decimal `json:"limit"`
}

// AggregatorKey addresses an aggregator value by table handle and key.
type AggregatorKey struct {
	Handle string
	Key    string
}

// NewAggregatorKey builds a key with normalized handle and key addresses.
func NewAggregatorKey(handle, key string) AggregatorKey {
	return AggregatorKey{Handle: NormalizeAddress(handle), Key: NormalizeAddress(key)}
}

// AggregatorValues is a snapshot of aggregator values written by a transaction.
type AggregatorValues map[AggregatorKey]decimal.Decimal

// Lookup returns the value stored for ref, if the snapshot has one.
func (v AggregatorValues) Lookup(ref AggregatorRef) (decimal.Decimal, bool) {
	if v == nil {
		return decimal.Decimal{}, false
	}
	value, ok := v[NewAggregatorKey(ref.Handle, ref.Key)]
	return value, ok
}

// Resolve returns the counter value. The inline integer wins; the aggregator is consulted only when
// the integer is absent. The result is null when neither yields a value.
func (o OptionalAggregator) Resolve(values AggregatorValues) decimal.NullDecimal {
	if integer, ok := o.Integer.Get(); ok {
		return decimal.NewNullDecimal(integer.Value)
	}
	if ref, ok := o.Aggregator.Get(); ok {
		if value, found := values.Lookup(ref); found {
			return decimal.NewNullDecimal(value)
		}
	}
	return decimal.NullDecimal{}
}

// ResolveOptional resolves an optional optional aggregator, as used by CoinInfo.supply.
func ResolveOptional(o Option[OptionalAggregator], values AggregatorValues) decimal.NullDecimal {
	inner, ok := o.Get()
	if !ok {
		return decimal.NullDecimal{}
	}
	return inner.Resolve(values)
}
