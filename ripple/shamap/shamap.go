// Package shamap implements the radix-16 Merkle tree whose root hashes commit
// a ledger's transactions and account state.
package shamap

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/anyswap/ripple-ledger-core/log"
	"github.com/anyswap/ripple-ledger-core/ripple/data"
)

// SHAMap is not safe for concurrent use.
type SHAMap struct {
	kind        Kind
	root        *innerNode
	leaves      int
	parallelism int
}

type Option func(*SHAMap)

// WithParallelism hashes the subtrees below the root on up to n goroutines.
// Values below 2 hash serially.
func WithParallelism(n int) Option {
	return func(m *SHAMap) {
		m.parallelism = n
	}
}

func New(kind Kind, opts ...Option) *SHAMap {
	m := &SHAMap{
		kind: kind,
		root: newInner(0),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *SHAMap) Kind() Kind { return m.kind }

// Len returns the number of leaves.
func (m *SHAMap) Len() int { return m.leaves }

// Add inserts payload under key, replacing any leaf already there. Every
// inner node on the path is marked for rehashing.
func (m *SHAMap) Add(key data.Hash256, payload []byte, kind Kind) error {
	if kind != m.kind {
		return fmt.Errorf("shamap: %s leaf added to %s tree", kind, m.kind)
	}
	leaf := newLeaf(key, payload, kind)
	n := m.root
	for {
		pos := key.Nibble(n.depth)
		switch child := n.children[pos].(type) {
		case nil:
			n.setChild(pos, leaf)
			m.leaves++
			return nil
		case *innerNode:
			n.dirty = true
			n = child
		case *leafNode:
			if child.key == key {
				n.setChild(pos, leaf)
				return nil
			}
			inner := newInner(n.depth + 1)
			inner.setChild(child.key.Nibble(inner.depth), child)
			n.setChild(pos, inner)
			n = inner
		}
	}
}

// Hash returns the root hash. The empty tree hashes to zero.
func (m *SHAMap) Hash() data.Hash256 {
	if m.parallelism < 2 || !m.root.dirty {
		return m.root.update()
	}
	var g errgroup.Group
	g.SetLimit(m.parallelism)
	for i, e := m.root.branches.NextSet(0); e; i, e = m.root.branches.NextSet(i + 1) {
		if inner, ok := m.root.children[i].(*innerNode); ok && inner.dirty {
			g.Go(func() error {
				inner.update()
				return nil
			})
		}
	}
	_ = g.Wait()
	m.root.rehash()
	log.Trace("shamap hashed in parallel", "kind", m.kind, "leaves", m.leaves, "hash", m.root.id)
	return m.root.id
}
