package source

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
	"github.com/goodnatureofminers/blockinsight7000-aptos/pkg/safe"
)

type ledgerInfo struct {
	ChainID       int    `json:"chain_id"`
	LedgerVersion string `json:"ledger_version"`
}

type apiError struct {
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
}

type transactionDTO struct {
	Type           string      `json:"type"`
	Version        string      `json:"version"`
	Success        bool        `json:"success"`
	Timestamp      string      `json:"timestamp"`
	Sender         string      `json:"sender"`
	SequenceNumber string      `json:"sequence_number"`
	GasUsed        string      `json:"gas_used"`
	GasUnitPrice   string      `json:"gas_unit_price"`
	Payload        *payloadDTO `json:"payload"`
	Changes        []changeDTO `json:"changes"`
	Events         []eventDTO  `json:"events"`
}

type payloadDTO struct {
	Type     string `json:"type"`
	Function string `json:"function"`
}

type changeDTO struct {
	Type     string          `json:"type"`
	Address  string          `json:"address"`
	Resource string          `json:"resource"`
	Handle   string          `json:"handle"`
	Key      string          `json:"key"`
	Data     json.RawMessage `json:"data"`
}

// resourceDataDTO is the data of a write_resource change.
type resourceDataDTO struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// tableItemDataDTO is the decoded data of a write_table_item change.
type tableItemDataDTO struct {
	Key       json.RawMessage `json:"key"`
	KeyType   string          `json:"key_type"`
	Value     json.RawMessage `json:"value"`
	ValueType string          `json:"value_type"`
}

type eventDTO struct {
	GUID struct {
		CreationNumber string `json:"creation_number"`
		AccountAddress string `json:"account_address"`
	} `json:"guid"`
	SequenceNumber string          `json:"sequence_number"`
	Type           string          `json:"type"`
	Data           json.RawMessage `json:"data"`
}

func (d transactionDTO) toModel() (model.Transaction, error) {
	version, err := safe.ParseInt64(d.Version)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("version: %w", err)
	}

	tx := model.Transaction{
		Version: version,
		Kind:    model.TransactionKind(d.Type),
		Success: d.Success,
		Sender:  d.Sender,
	}

	if d.Timestamp != "" {
		micros, err := safe.ParseInt64(d.Timestamp)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("timestamp: %w", err)
		}
		tx.Timestamp = time.UnixMicro(micros).UTC()
	}

	if tx.Kind == model.UserTransaction {
		if tx.SequenceNumber, err = parseOptional(d.SequenceNumber); err != nil {
			return model.Transaction{}, fmt.Errorf("sequence_number: %w", err)
		}
		if tx.GasUsed, err = parseOptional(d.GasUsed); err != nil {
			return model.Transaction{}, fmt.Errorf("gas_used: %w", err)
		}
		if tx.GasUnitPrice, err = parseOptional(d.GasUnitPrice); err != nil {
			return model.Transaction{}, fmt.Errorf("gas_unit_price: %w", err)
		}
		if d.Payload != nil && d.Payload.Type == "entry_function_payload" {
			tx.EntryFunctionID = d.Payload.Function
		}
	}

	for i, c := range d.Changes {
		change, err := c.toModel()
		if err != nil {
			return model.Transaction{}, fmt.Errorf("change %d: %w", i, err)
		}
		tx.Changes = append(tx.Changes, change)
	}

	for i, e := range d.Events {
		event, err := e.toModel()
		if err != nil {
			return model.Transaction{}, fmt.Errorf("event %d: %w", i, err)
		}
		tx.Events = append(tx.Events, event)
	}
	return tx, nil
}

func (c changeDTO) toModel() (model.WriteSetChange, error) {
	change := model.WriteSetChange{
		Kind:    model.ChangeKind(c.Type),
		Address: c.Address,
		Handle:  c.Handle,
		Key:     c.Key,
	}

	switch change.Kind {
	case model.WriteResource:
		var data resourceDataDTO
		if err := json.Unmarshal(c.Data, &data); err != nil {
			return model.WriteSetChange{}, fmt.Errorf("write_resource data: %w", err)
		}
		change.Type = data.Type
		change.Data = data.Data
	case model.DeleteResource:
		change.Type = c.Resource
	case model.WriteTableItem:
		if len(c.Data) == 0 || string(c.Data) == "null" {
			break
		}
		var data tableItemDataDTO
		if err := json.Unmarshal(c.Data, &data); err != nil {
			return model.WriteSetChange{}, fmt.Errorf("write_table_item data: %w", err)
		}
		change.Type = data.ValueType
		change.Data = data.Value
	}
	return change, nil
}

func (e eventDTO) toModel() (model.Event, error) {
	creationNumber, err := safe.ParseInt64(e.GUID.CreationNumber)
	if err != nil {
		return model.Event{}, fmt.Errorf("creation_number: %w", err)
	}
	sequenceNumber, err := safe.ParseInt64(e.SequenceNumber)
	if err != nil {
		return model.Event{}, fmt.Errorf("sequence_number: %w", err)
	}
	return model.Event{
		Type:           e.Type,
		AccountAddress: e.GUID.AccountAddress,
		CreationNumber: creationNumber,
		SequenceNumber: sequenceNumber,
		Data:           e.Data,
	}, nil
}

func parseOptional(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return safe.ParseInt64(s)
}
