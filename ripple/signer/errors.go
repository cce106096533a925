package signer

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches ValidationError.
	ErrValidation = errors.New("validation error")
	// ErrBadSignature is returned by Verify when the signature does not
	// match the signing public key.
	ErrBadSignature = errors.New("signature verification failed")
)

// ValidationError rejects an input before any cryptographic work is done.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(field string, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Err: fmt.Errorf(format, args...)}
}
