// Package ledger recomputes the hashes that commit a ledger: the
// transaction tree, the account state tree and the ledger header.
package ledger

import (
	"bytes"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/anyswap/ripple-ledger-core/log"
	"github.com/anyswap/ripple-ledger-core/params"
	"github.com/anyswap/ripple-ledger-core/ripple/data"
	"github.com/anyswap/ripple-ledger-core/ripple/shamap"
)

// Hasher builds the hash trees of a snapshot.
type Hasher struct {
	parallelism int
	sanityCheck bool
	store       shamap.NodeWriter
}

type Option func(*Hasher)

// WithNodeStore exports every tree node and the header into w after
// hashing.
func WithNodeStore(w shamap.NodeWriter) Option {
	return func(h *Hasher) {
		h.store = w
	}
}

// NewHasher creates a hasher. A nil config selects serial hashing without
// sanity check.
func NewHasher(config *params.HasherConfig, opts ...Option) *Hasher {
	h := &Hasher{}
	if config != nil {
		h.parallelism = config.Parallelism
		h.sanityCheck = config.SanityCheck
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SanityCheck reports whether Hash checks account state entries.
func (h *Hasher) SanityCheck() bool { return h.sanityCheck }

func (h *Hasher) newTree(kind shamap.Kind) *shamap.SHAMap {
	return shamap.New(kind, shamap.WithParallelism(h.parallelism))
}

// TransactionTree builds the transaction tree: each leaf is keyed by the
// transaction id and holds VL(transaction) followed by VL(metadata).
func (h *Hasher) TransactionTree(s *Snapshot) (*shamap.SHAMap, error) {
	tree := h.newTree(shamap.TransactionWithMeta)
	for i, tx := range s.Transactions {
		if err := addTransaction(tree, tx); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
	}
	return tree, nil
}

func addTransaction(tree *shamap.SHAMap, tx map[string]interface{}) error {
	meta, err := transactionMeta(tx)
	if err != nil {
		return err
	}
	txBytes, err := data.EncodeObject(tx, false)
	if err != nil {
		return err
	}
	metaBytes, err := data.EncodeObject(meta, false)
	if err != nil {
		return fmt.Errorf("metaData: %w", err)
	}
	payload := data.NewSerializer()
	if err := payload.AppendVariableLength(txBytes); err != nil {
		return err
	}
	if err := payload.AppendVariableLength(metaBytes); err != nil {
		return err
	}
	id := data.HashWithPrefix(data.HP_TRANSACTION_ID, txBytes)
	return tree.Add(id, payload.Bytes(), shamap.TransactionWithMeta)
}

// TransactionSetHash returns the root of the transaction tree.
func (h *Hasher) TransactionSetHash(s *Snapshot) (data.Hash256, error) {
	tree, err := h.TransactionTree(s)
	if err != nil {
		return data.Hash256{}, err
	}
	return tree.Hash(), nil
}

// AccountStateTree builds the account state tree keyed by each entry's
// index. With sanityCheck every entry must also survive a decode and
// re-encode unchanged; failures are logged and reported together once the
// pass is over as an AggregateSanityCheckError. Encoding failures abort
// at once.
func (h *Hasher) AccountStateTree(s *Snapshot, sanityCheck bool) (*shamap.SHAMap, error) {
	tree := h.newTree(shamap.AccountState)
	var failures *multierror.Error
	for i, le := range s.AccountState {
		index, err := entryIndex(le)
		if err != nil {
			return nil, fmt.Errorf("account state %d: %w", i, err)
		}
		b, err := data.EncodeObject(le, false)
		if err != nil {
			return nil, fmt.Errorf("account state %v: %w", index, err)
		}
		if sanityCheck {
			if err := checkEntry(b); err != nil {
				log.Warn("account state sanity check failed", "index", index, "entry", le, "err", err)
				failures = multierror.Append(failures, &SanityCheckError{Index: index, Err: err})
			}
		}
		if err := tree.Add(index, b, shamap.AccountState); err != nil {
			return nil, err
		}
	}
	if failures != nil {
		return nil, &AggregateSanityCheckError{Errors: failures}
	}
	return tree, nil
}

var checkEntry = roundTrip

func roundTrip(b []byte) error {
	obj, err := data.DecodeObject(b)
	if err != nil {
		return err
	}
	again, err := data.EncodeObject(obj, false)
	if err != nil {
		return err
	}
	if !bytes.Equal(b, again) {
		return fmt.Errorf("re-encoding differs: %X", again)
	}
	return nil
}

// AccountStateHash returns the root of the account state tree.
func (h *Hasher) AccountStateHash(s *Snapshot, sanityCheck bool) (data.Hash256, error) {
	tree, err := h.AccountStateTree(s, sanityCheck)
	if err != nil {
		return data.Hash256{}, err
	}
	return tree.Hash(), nil
}

// Result holds the recomputed hashes of a snapshot.
type Result struct {
	LedgerSequence  uint32
	LedgerHash      data.Hash256
	TransactionHash data.Hash256
	AccountHash     data.Hash256
	Transactions    int
	Entries         int
	NodesExported   int
}

// Hash recomputes both tree roots and the ledger hash over a header
// carrying those roots. The header of s is not modified.
func (h *Hasher) Hash(s *Snapshot) (*Result, error) {
	txTree, err := h.TransactionTree(s)
	if err != nil {
		return nil, err
	}
	stateTree, err := h.AccountStateTree(s, h.sanityCheck)
	if err != nil {
		return nil, err
	}
	header := *s.Header
	header.TransactionHash = txTree.Hash()
	header.AccountHash = stateTree.Hash()
	hs, err := header.serialize()
	if err != nil {
		return nil, err
	}
	result := &Result{
		LedgerSequence:  header.LedgerSequence,
		LedgerHash:      hs.Hash(data.HP_LEDGER_MASTER),
		TransactionHash: header.TransactionHash,
		AccountHash:     header.AccountHash,
		Transactions:    txTree.Len(),
		Entries:         stateTree.Len(),
	}
	log.Debug("ledger hashed", "ledger", result.LedgerSequence, "transactions", result.Transactions,
		"entries", result.Entries, "hash", result.LedgerHash)

	if h.store != nil {
		if result.NodesExported, err = h.export(result, hs.Bytes(), txTree, stateTree); err != nil {
			return nil, fmt.Errorf("export nodes: %w", err)
		}
	}
	return result, nil
}

func (h *Hasher) export(result *Result, header []byte, trees ...*shamap.SHAMap) (int, error) {
	var total int
	for _, tree := range trees {
		count, err := tree.Export(h.store, result.LedgerSequence)
		total += count
		if err != nil {
			return total, err
		}
	}
	node := &shamap.Node{
		Hash:     result.LedgerHash,
		NodeType: data.NT_LEDGER,
		Prefix:   data.HP_LEDGER_MASTER,
		Raw:      header,
	}
	if err := h.store.Put(node.Hash[:], node.Value(result.LedgerSequence)); err != nil {
		return total, err
	}
	total++
	log.Debug("ledger nodes exported", "ledger", result.LedgerSequence, "nodes", total)
	return total, nil
}

// Verify hashes s and compares the result with its header. The first
// disagreeing field is reported as a HashMismatchError; the ledger hash is
// only compared when the source declared one.
func (h *Hasher) Verify(s *Snapshot) (*Result, error) {
	result, err := h.Hash(s)
	if err != nil {
		return nil, err
	}
	header := s.Header
	switch {
	case result.TransactionHash != header.TransactionHash:
		return result, &HashMismatchError{Field: "transaction_hash", Expected: header.TransactionHash, Actual: result.TransactionHash}
	case result.AccountHash != header.AccountHash:
		return result, &HashMismatchError{Field: "account_hash", Expected: header.AccountHash, Actual: result.AccountHash}
	case header.Hash != nil && result.LedgerHash != *header.Hash:
		return result, &HashMismatchError{Field: "ledger_hash", Expected: *header.Hash, Actual: result.LedgerHash}
	}
	log.Info("ledger verified", "ledger", result.LedgerSequence, "hash", result.LedgerHash)
	return result, nil
}
