/*
Package data provides the canonical binary codec, entity keys and hashing
primitives used to reproduce the hashes of a Ripple ledger.

Objects

Transactions, ledger entries and metadata travel as JSON objects. EncodeObject
writes their fields in field table order, each preceded by a header naming its
type and field code, so that equal objects always produce equal bytes.
DecodeObject reads them back. Keys starting with a lower case letter are
local annotations and are never serialized.

Keys and hashes

Keys and hashes are always 32 bytes: the first half of a SHA512 digest. Every
hash is taken over a four byte prefix followed by the payload, so that bytes
hashed for one purpose can never collide with bytes hashed for another.

Ledger entries are keyed by SHA512Half of a zero byte, a namespace byte and a
type specific list of fields. The Indexer builds those keys.

LedgerHeader

This is the root of the two trees for a single ledger.

	Node:	Simple big-endian binary encoding of LedgerHeader
	Hash:	SHA512Half of HP_LEDGER_MASTER:Node

	Key:	Hash
	Value:	LedgerSequence:LedgerSequence:NT_LEDGER:HP_LEDGER_MASTER:Node

Inner Node

Up to 16 hashes of other nodes, the position of each being one 4 bit nibble of
the keys below it. Empty positions hold zero.

	Node:	16 x 32 byte hashes
	Hash:	SHA512Half of HP_INNER_NODE:Node

	Key:	Hash
	Value:	LedgerSequence:LedgerSequence:NT_ACCOUNT_NODE or NT_TRANSACTION_NODE:HP_INNER_NODE:Node

Transaction Node

A transaction together with the metadata describing what it changed. VL is a
variable length marker.

	Index:	SHA512Half of HP_TRANSACTION_ID:Transaction
	Hash:	SHA512Half of HP_TRANSACTION_NODE:VL:Transaction:VL:Metadata:Index

	Key:	Hash
	Value:	LedgerSequence:LedgerSequence:NT_TRANSACTION_NODE:HP_TRANSACTION_NODE:VL:Transaction:VL:Metadata:Index

LedgerEntry Node

The state of one ledger entry.

	Index:	SHA512Half of namespace and a type-specific rule
	Hash:	SHA512Half of HP_LEAF_NODE:Entry:Index

	Key:	Hash
	Value:	LedgerSequence:LedgerSequence:NT_ACCOUNT_NODE:HP_LEAF_NODE:Entry:Index

*/
package data
