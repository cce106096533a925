package data

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIdentifier matches InvalidAccountError and InvalidCurrencyError.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrSerialization matches SerializationError.
	ErrSerialization = errors.New("serialization error")
)

type InvalidAccountError struct {
	Input string
	Err   error
}

func (e *InvalidAccountError) Error() string {
	return fmt.Sprintf("invalid account %q: %v", e.Input, e.Err)
}

func (e *InvalidAccountError) Unwrap() error { return e.Err }

func (e *InvalidAccountError) Is(target error) bool { return target == ErrInvalidIdentifier }

type InvalidCurrencyError struct {
	Input string
	Err   error
}

func (e *InvalidCurrencyError) Error() string {
	return fmt.Sprintf("invalid currency %q: %v", e.Input, e.Err)
}

func (e *InvalidCurrencyError) Unwrap() error { return e.Err }

func (e *InvalidCurrencyError) Is(target error) bool { return target == ErrInvalidIdentifier }

// SerializationError names the field path that could not be encoded or decoded.
type SerializationError struct {
	Field string
	Err   error
}

func (e *SerializationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("serialization: %v", e.Err)
	}
	return fmt.Sprintf("serialization of %s: %v", e.Field, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

func (e *SerializationError) Is(target error) bool { return target == ErrSerialization }

// fieldError attaches name to err, extending the path of a nested failure.
func fieldError(name string, err error) error {
	var se *SerializationError
	if errors.As(err, &se) {
		if name == "" {
			return se
		}
		if se.Field == "" {
			return &SerializationError{Field: name, Err: se.Err}
		}
		return &SerializationError{Field: name + "." + se.Field, Err: se.Err}
	}
	return &SerializationError{Field: name, Err: err}
}
