// Package model defines domain models for Aptos coin and name-service processing.
package model

import (
	"encoding/json"
	"time"
)

// TransactionKind is the node's transaction type discriminator.
type TransactionKind string

var (
	GenesisTransaction         TransactionKind = "genesis_transaction"
	UserTransaction            TransactionKind = "user_transaction"
	BlockMetadataTransaction   TransactionKind = "block_metadata_transaction"
	StateCheckpointTransaction TransactionKind = "state_checkpoint_transaction"
)

// ChangeKind is the write set change discriminator.
type ChangeKind string

var (
	WriteResource   ChangeKind = "write_resource"
	DeleteResource  ChangeKind = "delete_resource"
	WriteTableItem  ChangeKind = "write_table_item"
	DeleteTableItem ChangeKind = "delete_table_item"
	WriteModule     ChangeKind = "write_module"
	DeleteModule    ChangeKind = "delete_module"
)

// Transaction is one committed transaction as handed to the processor.
type Transaction struct {
	Version         int64
	Kind            TransactionKind
	Success         bool
	Timestamp       time.Time
	Sender          string
	SequenceNumber  int64
	GasUsed         int64
	GasUnitPrice    int64
	EntryFunctionID string
	Changes         []WriteSetChange
	Events          []Event
}

// WriteSetChange is a resource or table item mutation.
//
// Resource changes carry Address, Type and Data. Table item changes carry Handle, Key and Data.
// Key is the hex of the key's BCS encoding as the node reports it; Data is the decoded value
// when the node provides one.
type WriteSetChange struct {
	Kind    ChangeKind
	Address string
	Type    string
	Handle  string
	Key     string
	Data    json.RawMessage
}

// Event is an emitted event in on-chain order.
type Event struct {
	Type           string
	AccountAddress string
	CreationNumber int64
	SequenceNumber int64
	Data           json.RawMessage
}
