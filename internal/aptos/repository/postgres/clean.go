package postgres

import (
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
)

// clean prepares rows for the degraded retry. NUL bytes are removed, strings are cut to their column
// widths and keys that became equal are collapsed again: coin infos keep the first row, name lookups
// keep the last one and activities keep the first.
func clean(rows model.RangeRows) model.RangeRows {
	return model.RangeRows{
		CoinInfos:      cleanCoinInfos(rows.CoinInfos),
		CoinActivities: cleanCoinActivities(rows.CoinActivities),
		AnsLookups:     cleanAnsLookups(rows.AnsLookups),
	}
}

func sanitize(s string, width int) string {
	return model.Truncate(strings.ReplaceAll(s, "\x00", ""), width)
}

func cleanCoinInfos(infos []model.CoinInfo) []model.CoinInfo {
	out := make([]model.CoinInfo, 0, len(infos))
	seen := make(map[string]struct{}, len(infos))
	for _, info := range infos {
		info.CoinType = sanitize(info.CoinType, model.CoinTypeMaxLength)
		info.CreatorAddress = sanitize(info.CreatorAddress, model.AddressMaxLength)
		info.Name = sanitize(info.Name, model.CoinNameMaxLength)
		info.Symbol = sanitize(info.Symbol, model.CoinSymbolMaxLength)

		if _, ok := seen[info.CoinType]; ok {
			continue
		}
		seen[info.CoinType] = struct{}{}
		out = append(out, info)
	}
	return out
}

func cleanCoinActivities(activities []model.CoinActivity) []model.CoinActivity {
	out := make([]model.CoinActivity, 0, len(activities))
	seen := make(map[model.CoinActivityKey]struct{}, len(activities))
	for _, a := range activities {
		a.EventAccountAddress = sanitize(a.EventAccountAddress, model.AddressMaxLength)
		a.OwnerAddress = sanitize(a.OwnerAddress, model.AddressMaxLength)
		a.CoinType = sanitize(a.CoinType, model.CoinTypeMaxLength)
		a.ActivityType = sanitize(a.ActivityType, model.ActivityTypeMaxLength)
		a.EntryFunctionID = sanitize(a.EntryFunctionID, model.EntryFunctionIDMaxLength)

		if _, ok := seen[a.Key()]; ok {
			continue
		}
		seen[a.Key()] = struct{}{}
		out = append(out, a)
	}
	return out
}

func cleanAnsLookups(lookups []model.CurrentAnsLookup) []model.CurrentAnsLookup {
	out := make([]model.CurrentAnsLookup, 0, len(lookups))
	index := make(map[model.AnsLookupKey]int, len(lookups))
	for _, l := range lookups {
		l.Domain = sanitize(l.Domain, model.DomainMaxLength)
		l.Subdomain = sanitize(l.Subdomain, model.SubdomainMaxLength)
		if l.RegisteredAddress != nil {
			addr := sanitize(*l.RegisteredAddress, model.AddressMaxLength)
			l.RegisteredAddress = &addr
		}

		if i, ok := index[l.Key()]; ok {
			out[i] = l
			continue
		}
		index[l.Key()] = len(out)
		out = append(out, l)
	}
	return out
}
