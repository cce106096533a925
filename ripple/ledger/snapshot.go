package ledger

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/anyswap/ripple-ledger-core/ripple/data"
)

// Snapshot is a full ledger: header, transactions with their metadata and
// every account state entry.
type Snapshot struct {
	Header       *Header
	Transactions []map[string]interface{}
	AccountState []map[string]interface{}
}

// ParseSnapshot decodes ledger JSON as returned by the ledger command with
// expanded transactions and accounts. The {"ledger": {...}} envelope is
// optional.
func ParseSnapshot(r io.Reader) (*Snapshot, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var obj map[string]interface{}
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("decode ledger json: %w", err)
	}
	if inner, ok := obj["ledger"].(map[string]interface{}); ok {
		obj = inner
	}
	return NewSnapshot(obj)
}

// NewSnapshot builds a Snapshot from an already decoded ledger object.
func NewSnapshot(obj map[string]interface{}) (*Snapshot, error) {
	header, err := ParseHeader(obj)
	if err != nil {
		return nil, fmt.Errorf("ledger header: %w", err)
	}
	s := &Snapshot{Header: header}
	if s.Transactions, err = objects(obj, "transactions"); err != nil {
		return nil, err
	}
	if s.AccountState, err = objects(obj, "accountState"); err != nil {
		return nil, err
	}
	return s, nil
}

func objects(obj map[string]interface{}, name string) ([]map[string]interface{}, error) {
	v, ok := obj[name]
	if !ok || v == nil {
		return nil, nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s is not an array", name)
	}
	result := make([]map[string]interface{}, len(list))
	for i, item := range list {
		if result[i], ok = item.(map[string]interface{}); !ok {
			return nil, fmt.Errorf("%s %d is not expanded", name, i)
		}
	}
	return result, nil
}

// entryIndex returns the key an account state entry is stored under.
func entryIndex(le map[string]interface{}) (data.Hash256, error) {
	v, ok := le["index"].(string)
	if !ok {
		return data.Hash256{}, fmt.Errorf("missing index")
	}
	h, err := data.NewHash256(v)
	if err != nil {
		return data.Hash256{}, err
	}
	return *h, nil
}

// transactionMeta returns the metadata embedded in a transaction.
func transactionMeta(tx map[string]interface{}) (map[string]interface{}, error) {
	v, ok := field(tx, "metaData", "meta")
	if !ok {
		return nil, fmt.Errorf("missing metaData")
	}
	meta, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("metaData is not an object")
	}
	return meta, nil
}
