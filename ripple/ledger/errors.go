package ledger

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/anyswap/ripple-ledger-core/ripple/data"
)

var (
	// ErrSanityCheck matches AggregateSanityCheckError.
	ErrSanityCheck = errors.New("sanity check failed")
	// ErrHashMismatch matches HashMismatchError.
	ErrHashMismatch = errors.New("hash mismatch")
)

// SanityCheckError is the failure of one account state entry to survive
// an encode, decode and encode cycle unchanged.
type SanityCheckError struct {
	Index data.Hash256
	Err   error
}

func (e *SanityCheckError) Error() string {
	return fmt.Sprintf("account state %v: %v", e.Index, e.Err)
}

func (e *SanityCheckError) Unwrap() error { return e.Err }

// AggregateSanityCheckError collects every entry failure of one pass.
type AggregateSanityCheckError struct {
	Errors *multierror.Error
}

func (e *AggregateSanityCheckError) Error() string {
	return fmt.Sprintf("there were %d errors with sanity check: %v", e.Len(), e.Errors)
}

func (e *AggregateSanityCheckError) Len() int { return e.Errors.Len() }

func (e *AggregateSanityCheckError) Unwrap() error { return e.Errors }

func (e *AggregateSanityCheckError) Is(target error) bool { return target == ErrSanityCheck }

// HashMismatchError names the header field that disagrees with the
// recomputed value.
type HashMismatchError struct {
	Field    string
	Expected data.Hash256
	Actual   data.Hash256
}

func (e *HashMismatchError) Error() string {
	return fmt.Sprintf("%s mismatch: header has %v, computed %v", e.Field, e.Expected, e.Actual)
}

func (e *HashMismatchError) Is(target error) bool { return target == ErrHashMismatch }
