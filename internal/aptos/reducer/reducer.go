// Package reducer folds the rows of a version range into current state.
package reducer

import (
	"fmt"
	"sort"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
)

// Reducer accumulates decoded rows in ascending version order.
// It is not safe for concurrent use; each range gets its own Reducer.
type Reducer struct {
	lastVersion int64
	started     bool

	coinInfos      map[string]model.CoinInfo
	coinActivities []model.CoinActivity
	ansLookups     map[model.AnsLookupKey]model.CurrentAnsLookup
}

// New returns an empty Reducer.
func New() *Reducer {
	return &Reducer{
		coinInfos:  make(map[string]model.CoinInfo),
		ansLookups: make(map[model.AnsLookupKey]model.CurrentAnsLookup),
	}
}

// Add folds the rows of the transaction at version into the state.
// Versions must be strictly increasing across calls.
func (r *Reducer) Add(version int64, rows model.TransactionRows) error {
	if r.started && version <= r.lastVersion {
		return fmt.Errorf("add version %d: not after previous version %d", version, r.lastVersion)
	}
	r.started = true
	r.lastVersion = version

	for _, info := range rows.CoinInfos {
		if _, ok := r.coinInfos[info.CoinType]; ok {
			continue
		}
		r.coinInfos[info.CoinType] = info
	}

	r.coinActivities = append(r.coinActivities, rows.CoinActivities...)

	for _, lookup := range rows.AnsLookups {
		r.ansLookups[lookup.Key()] = lookup
	}
	return nil
}

// Rows returns the reduced state. Current-state rows are sorted by primary key;
// activities keep the order they were added in.
func (r *Reducer) Rows() model.RangeRows {
	out := model.RangeRows{
		CoinInfos:      make([]model.CoinInfo, 0, len(r.coinInfos)),
		CoinActivities: make([]model.CoinActivity, len(r.coinActivities)),
		AnsLookups:     make([]model.CurrentAnsLookup, 0, len(r.ansLookups)),
	}

	for _, info := range r.coinInfos {
		out.CoinInfos = append(out.CoinInfos, info)
	}
	sort.Slice(out.CoinInfos, func(i, j int) bool {
		return out.CoinInfos[i].CoinType < out.CoinInfos[j].CoinType
	})

	copy(out.CoinActivities, r.coinActivities)

	for _, lookup := range r.ansLookups {
		out.AnsLookups = append(out.AnsLookups, lookup)
	}
	sort.Slice(out.AnsLookups, func(i, j int) bool {
		return lessAnsKey(out.AnsLookups[i].Key(), out.AnsLookups[j].Key())
	})

	return out
}

func lessAnsKey(a, b model.AnsLookupKey) bool {
	if a.Domain != b.Domain {
		return a.Domain < b.Domain
	}
	return a.Subdomain < b.Subdomain
}

// Reduce is a convenience over New, Add and Rows for rows already paired with their versions.
func Reduce(versions []int64, rows []model.TransactionRows) (model.RangeRows, error) {
	if len(versions) != len(rows) {
		return model.RangeRows{}, fmt.Errorf("reduce: %d versions for %d row sets", len(versions), len(rows))
	}
	r := New()
	for i := range rows {
		if err := r.Add(versions[i], rows[i]); err != nil {
			return model.RangeRows{}, fmt.Errorf("reduce: %w", err)
		}
	}
	return r.Rows(), nil
}
