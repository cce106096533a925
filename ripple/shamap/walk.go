package shamap

import (
	"encoding/binary"

	"github.com/anyswap/ripple-ledger-core/ripple/data"
)

// Node is a read only view of a tree node passed to Walk.
type Node struct {
	Hash     data.Hash256
	Depth    int
	NodeType data.NodeType
	Prefix   data.HashPrefix
	// Raw is the node body without prefix: 16 child hashes for inner
	// nodes, payload followed by key for leaves.
	Raw  []byte
	Leaf bool
	Key  data.Hash256
}

// Value returns the node store encoding of n:
// LedgerSequence:LedgerSequence:NodeType:Prefix:Raw
func (n *Node) Value(ledgerSequence uint32) []byte {
	b := make([]byte, 13, 13+len(n.Raw))
	binary.BigEndian.PutUint32(b[0:], ledgerSequence)
	binary.BigEndian.PutUint32(b[4:], ledgerSequence)
	b[8] = uint8(n.NodeType)
	binary.BigEndian.PutUint32(b[9:], uint32(n.Prefix))
	return append(b, n.Raw...)
}

type WalkFunc func(n *Node) error

// Walk hashes the tree and visits every node, parents before children and
// children in slot order. An empty tree has no nodes. Walk stops at the
// first error returned by fn.
func (m *SHAMap) Walk(fn WalkFunc) error {
	m.Hash()
	if m.root.isEmpty() {
		return nil
	}
	return m.walk(m.root, fn)
}

func (m *SHAMap) walk(n *innerNode, fn WalkFunc) error {
	if err := fn(&Node{
		Hash:     n.id,
		Depth:    n.depth,
		NodeType: m.kind.NodeType(),
		Prefix:   data.HP_INNER_NODE,
		Raw:      n.raw(),
	}); err != nil {
		return err
	}
	for i, e := n.branches.NextSet(0); e; i, e = n.branches.NextSet(i + 1) {
		switch child := n.children[i].(type) {
		case *innerNode:
			if err := m.walk(child, fn); err != nil {
				return err
			}
		case *leafNode:
			if err := fn(&Node{
				Hash:     child.id,
				Depth:    n.depth + 1,
				NodeType: child.kind.NodeType(),
				Prefix:   child.kind.Prefix(),
				Raw:      child.raw(),
				Leaf:     true,
				Key:      child.key,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// NodeWriter stores exported nodes. leveldb.Database and leveldb.Batch
// satisfy it.
type NodeWriter interface {
	Put(key []byte, value []byte) error
}

// Export writes every node into w keyed by its hash and returns the number
// of nodes written.
func (m *SHAMap) Export(w NodeWriter, ledgerSequence uint32) (int, error) {
	var count int
	err := m.Walk(func(n *Node) error {
		if err := w.Put(n.Hash[:], n.Value(ledgerSequence)); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}
