package shamap

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/anyswap/ripple-ledger-core/ripple/data"
)

// Kind selects the leaf hash prefix and node store type of a tree.
type Kind uint8

const (
	TransactionWithMeta Kind = iota + 1
	AccountState
)

func (k Kind) Prefix() data.HashPrefix {
	switch k {
	case TransactionWithMeta:
		return data.HP_TRANSACTION_NODE
	default:
		return data.HP_LEAF_NODE
	}
}

func (k Kind) NodeType() data.NodeType {
	switch k {
	case TransactionWithMeta:
		return data.NT_TRANSACTION_NODE
	default:
		return data.NT_ACCOUNT_NODE
	}
}

func (k Kind) IsValid() bool {
	return k == TransactionWithMeta || k == AccountState
}

func (k Kind) String() string {
	switch k {
	case TransactionWithMeta:
		return "TransactionWithMeta"
	case AccountState:
		return "AccountState"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

type node interface {
	hash() data.Hash256
}

type leafNode struct {
	key     data.Hash256
	payload []byte
	kind    Kind
	id      data.Hash256
}

func newLeaf(key data.Hash256, payload []byte, kind Kind) *leafNode {
	leaf := &leafNode{
		key:     key,
		payload: append([]byte(nil), payload...),
		kind:    kind,
	}
	leaf.id = data.HashWithPrefix(kind.Prefix(), leaf.payload, key[:])
	return leaf
}

func (l *leafNode) hash() data.Hash256 { return l.id }

// raw is the node body as stored: payload followed by key.
func (l *leafNode) raw() []byte {
	b := make([]byte, 0, len(l.payload)+len(l.key))
	return append(append(b, l.payload...), l.key[:]...)
}

type innerNode struct {
	depth    int
	children [16]node
	branches *bitset.BitSet
	id       data.Hash256
	dirty    bool
}

func newInner(depth int) *innerNode {
	return &innerNode{
		depth:    depth,
		branches: bitset.New(16),
		dirty:    true,
	}
}

func (n *innerNode) setChild(pos int, child node) {
	n.children[pos] = child
	n.branches.Set(uint(pos))
	n.dirty = true
}

func (n *innerNode) isEmpty() bool {
	return n.branches.None()
}

func (n *innerNode) hash() data.Hash256 { return n.id }

// update refreshes the cached hash of n and every dirty node below it.
func (n *innerNode) update() data.Hash256 {
	if !n.dirty {
		return n.id
	}
	for i, e := n.branches.NextSet(0); e; i, e = n.branches.NextSet(i + 1) {
		if inner, ok := n.children[i].(*innerNode); ok {
			inner.update()
		}
	}
	n.rehash()
	return n.id
}

// rehash recomputes n from its children's cached hashes.
func (n *innerNode) rehash() {
	n.dirty = false
	if n.isEmpty() {
		n.id = data.Hash256{}
		return
	}
	n.id = data.HashWithPrefix(data.HP_INNER_NODE, n.raw())
}

// raw is the node body: 16 child hashes, zero for empty slots.
func (n *innerNode) raw() []byte {
	b := make([]byte, 16*32)
	for i, e := n.branches.NextSet(0); e; i, e = n.branches.NextSet(i + 1) {
		h := n.children[i].hash()
		copy(b[i*32:], h[:])
	}
	return b
}
