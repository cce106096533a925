package leveldb

import "github.com/syndtr/goleveldb/leveldb/iterator"

// IdealBatchSize defines the size of the data batches should ideally add in one
// write.
const IdealBatchSize = 100 * 1024

// KeyValueReader wraps the Has and Get method of a backing data store.
type KeyValueReader interface {
	Has(key []byte) (bool, error)
	Get(key []byte) ([]byte, error)
}

// KeyValueWriter wraps the Put and Delete methods of a backing data store.
type KeyValueWriter interface {
	Put(key []byte, value []byte) error
	Delete(key []byte) error
}

// Batch is a write-only store that commits changes to its host store when
// Write is called.
type Batch interface {
	KeyValueWriter
	ValueSize() int
	Write() error
	Reset()
}

// Iterator iterates over key/value pairs in key order.
type Iterator = iterator.Iterator

// KeyValueStore is the set of methods the node store needs from its
// backend.
type KeyValueStore interface {
	KeyValueReader
	KeyValueWriter
	NewBatch() Batch
	NewIterator(prefix []byte, start []byte) Iterator
	Close() error
}
