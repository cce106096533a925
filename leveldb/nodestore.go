package leveldb

import (
	"encoding/binary"
	"fmt"

	"github.com/anyswap/ripple-ledger-core/log"
	"github.com/anyswap/ripple-ledger-core/params"
	"github.com/anyswap/ripple-ledger-core/ripple/data"
)

// nodeHeaderLen covers LedgerSequence:LedgerSequence:NodeType:Prefix.
const nodeHeaderLen = 13

// StoredNode is a decoded node store value.
type StoredNode struct {
	LedgerSequence uint32
	NodeType       data.NodeType
	Prefix         data.HashPrefix
	Raw            []byte
}

// DecodeNode splits a node store value into its parts.
func DecodeNode(value []byte) (*StoredNode, error) {
	if len(value) < nodeHeaderLen {
		return nil, fmt.Errorf("node value too short: %d bytes", len(value))
	}
	return &StoredNode{
		LedgerSequence: binary.BigEndian.Uint32(value[0:4]),
		NodeType:       data.NodeType(value[8]),
		Prefix:         data.HashPrefix(binary.BigEndian.Uint32(value[9:13])),
		Raw:            value[nodeHeaderLen:],
	}, nil
}

// Hash returns the hash the node is stored under.
func (n *StoredNode) Hash() data.Hash256 {
	return data.HashWithPrefix(n.Prefix, n.Raw)
}

// NodeStore buffers exported nodes in batches of about IdealBatchSize
// bytes. It is not safe for concurrent use.
type NodeStore struct {
	db      KeyValueStore
	batch   Batch
	written int
}

// OpenNodeStore opens or creates the leveldb database named by config.
func OpenNodeStore(config *params.NodeStoreConfig) (*NodeStore, error) {
	db, err := New(config.DataDir, config.Cache, config.Handles, false)
	if err != nil {
		return nil, fmt.Errorf("open node store %v: %w", config.DataDir, err)
	}
	return NewNodeStore(db), nil
}

func NewNodeStore(db KeyValueStore) *NodeStore {
	return &NodeStore{
		db:    db,
		batch: db.NewBatch(),
	}
}

// Put queues a node and writes the batch once it is large enough.
func (s *NodeStore) Put(key []byte, value []byte) error {
	if err := s.batch.Put(key, value); err != nil {
		return err
	}
	s.written++
	if s.batch.ValueSize() >= IdealBatchSize {
		return s.Flush()
	}
	return nil
}

// Flush writes any queued nodes.
func (s *NodeStore) Flush() error {
	if s.batch.ValueSize() == 0 {
		return nil
	}
	if err := s.batch.Write(); err != nil {
		return err
	}
	log.Trace("node store batch written", "size", s.batch.ValueSize(), "total", s.written)
	s.batch.Reset()
	return nil
}

// Written returns the number of nodes passed to Put.
func (s *NodeStore) Written() int { return s.written }

// Node loads the node stored under hash.
func (s *NodeStore) Node(hash data.Hash256) (*StoredNode, error) {
	value, err := s.db.Get(hash[:])
	if err != nil {
		return nil, err
	}
	return DecodeNode(value)
}

// Count iterates the whole store and returns the number of nodes in it.
func (s *NodeStore) Count() (int, error) {
	it := s.db.NewIterator(nil, nil)
	defer it.Release()
	var count int
	for it.Next() {
		count++
	}
	return count, it.Error()
}

// Close flushes queued nodes and closes the database.
func (s *NodeStore) Close() error {
	if err := s.Flush(); err != nil {
		s.db.Close()
		return err
	}
	return s.db.Close()
}
