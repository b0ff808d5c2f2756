package decoder

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/move"
)

// maxTimestampSecs is 9999-12-31T23:59:59Z, the last second a Postgres TIMESTAMP column stores.
const maxTimestampSecs int64 = 253402300799

type registerNameEventV1 struct {
	SubdomainName      move.Option[string] `json:"subdomain_name"`
	DomainName         *string             `json:"domain_name"`
	ExpirationTimeSecs *json.Number        `json:"expiration_time_secs"`
}

type setNameAddressEventV1 struct {
	SubdomainName      move.Option[string] `json:"subdomain_name"`
	DomainName         *string             `json:"domain_name"`
	NewAddress         move.Option[string] `json:"new_address"`
	ExpirationTimeSecs *json.Number        `json:"expiration_time_secs"`
}

func parseAnsEvent(kind EventKind, version int64, event model.Event, insertedAt time.Time) (model.CurrentAnsLookup, error) {
	var (
		domain     *string
		subdomain  move.Option[string]
		address    move.Option[string]
		expiration *json.Number
	)

	switch kind {
	case RegisterNameEvent:
		var e registerNameEventV1
		if err := json.Unmarshal(event.Data, &e); err != nil {
			return model.CurrentAnsLookup{}, newDecodeError(version, event.Type, event.Data, err)
		}
		domain, subdomain, expiration = e.DomainName, e.SubdomainName, e.ExpirationTimeSecs
	case SetNameAddressEvent:
		var e setNameAddressEventV1
		if err := json.Unmarshal(event.Data, &e); err != nil {
			return model.CurrentAnsLookup{}, newDecodeError(version, event.Type, event.Data, err)
		}
		domain, subdomain, address, expiration = e.DomainName, e.SubdomainName, e.NewAddress, e.ExpirationTimeSecs
	default:
		return model.CurrentAnsLookup{}, fmt.Errorf("%w: event %s (%s) at version %d", ErrUnsupportedTag, event.Type, kind, version)
	}

	if domain == nil {
		return model.CurrentAnsLookup{}, newDecodeError(version, event.Type, event.Data, errors.New("missing domain_name"))
	}
	if expiration == nil {
		return model.CurrentAnsLookup{}, newDecodeError(version, event.Type, event.Data, errors.New("missing expiration_time_secs"))
	}
	secs, err := strconv.ParseUint(expiration.String(), 10, 64)
	if err != nil {
		return model.CurrentAnsLookup{}, newDecodeError(version, event.Type, event.Data, fmt.Errorf("expiration_time_secs: %w", err))
	}

	return model.CurrentAnsLookup{
		Domain:                 *domain,
		Subdomain:              subdomain.OrZero(),
		RegisteredAddress:      address.Ptr(),
		LastTransactionVersion: version,
		ExpirationTimestamp:    timestampSecs(secs),
		InsertedAt:             insertedAt,
	}, nil
}

// timestampSecs converts Unix seconds to UTC, clamped to maxTimestampSecs.
func timestampSecs(secs uint64) time.Time {
	return time.Unix(int64(min(secs, uint64(maxTimestampSecs))), 0).UTC()
}
