package model

import "fmt"

// TransactionRows groups the rows decoded from a single transaction, in emitted order.
type TransactionRows struct {
	CoinInfos      []CoinInfo
	CoinActivities []CoinActivity
	AnsLookups     []CurrentAnsLookup
}

// RangeRows is the reduced output of a version range ready for persistence.
type RangeRows struct {
	CoinInfos      []CoinInfo
	CoinActivities []CoinActivity
	AnsLookups     []CurrentAnsLookup
}

// Empty reports whether there is nothing to persist.
func (r RangeRows) Empty() bool {
	return len(r.CoinInfos) == 0 && len(r.CoinActivities) == 0 && len(r.AnsLookups) == 0
}

// VersionRange is an inclusive range of transaction versions.
type VersionRange struct {
	Start int64
	End   int64
}

// Len returns the number of versions in the range.
func (r VersionRange) Len() int64 {
	return r.End - r.Start + 1
}

// Valid reports whether the range is non-empty and non-negative.
func (r VersionRange) Valid() bool {
	return r.Start >= 0 && r.End >= r.Start
}

func (r VersionRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Start, r.End)
}

// SplitRange cuts r into consecutive ranges of at most size versions.
func SplitRange(r VersionRange, size int64) []VersionRange {
	if !r.Valid() {
		return nil
	}
	if size < 1 {
		size = 1
	}
	ranges := make([]VersionRange, 0, (r.End-r.Start)/size+1)
	for start := r.Start; ; start += size {
		// Compared as a distance so ranges ending near math.MaxInt64 never overflow.
		if r.End-start < size {
			return append(ranges, VersionRange{Start: start, End: r.End})
		}
		ranges = append(ranges, VersionRange{Start: start, End: start + size - 1})
	}
}

// ProcessingResult reports a successfully processed range.
type ProcessingResult struct {
	Processor      string
	Range          VersionRange
	CoinInfos      int
	CoinActivities int
	AnsLookups     int
}
