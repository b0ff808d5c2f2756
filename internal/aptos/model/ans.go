package model

import "time"

const (
	DomainMaxLength    = 64
	SubdomainMaxLength = 64
)

// CurrentAnsLookup is a row of current_ans_lookup, overwritten by newer versions.
type CurrentAnsLookup struct {
	Domain                 string
	Subdomain              string
	RegisteredAddress      *string
	LastTransactionVersion int64
	ExpirationTimestamp    time.Time
	InsertedAt             time.Time
}

// AnsLookupKey is the primary key of current_ans_lookup.
type AnsLookupKey struct {
	Domain    string
	Subdomain string
}

// Key returns the primary key of the row.
func (l CurrentAnsLookup) Key() AnsLookupKey {
	return AnsLookupKey{Domain: l.Domain, Subdomain: l.Subdomain}
}
