package data

import (
	"bytes"
	"crypto/sha512"
	"fmt"
	"math/big"
	"strconv"
)

// Serializer is an append-only canonical byte buffer. It enforces no schema:
// callers append in the order the protocol defines.
type Serializer struct {
	buf bytes.Buffer
}

func NewSerializer() *Serializer {
	return new(Serializer)
}

func (s *Serializer) Append(b ...byte) *Serializer {
	s.buf.Write(b)
	return s
}

func (s *Serializer) AppendUint8(v uint8) *Serializer {
	return s.Append(v)
}

func (s *Serializer) AppendUint16(v uint16) *Serializer {
	_ = write(&s.buf, v)
	return s
}

func (s *Serializer) AppendUint32(v uint32) *Serializer {
	_ = write(&s.buf, v)
	return s
}

func (s *Serializer) AppendUint64(v uint64) *Serializer {
	_ = write(&s.buf, v)
	return s
}

func (s *Serializer) AppendHash256(h Hash256) *Serializer {
	return s.Append(h[:]...)
}

// AppendHexHash256 appends a 32 byte hash given as 64 hex characters.
func (s *Serializer) AppendHexHash256(hash string) error {
	h, err := NewHash256(hash)
	if err != nil {
		return &SerializationError{Err: err}
	}
	s.AppendHash256(*h)
	return nil
}

// AppendBigUint64 appends a non-negative integer of at most 64 bits.
func (s *Serializer) AppendBigUint64(v *big.Int) error {
	if v == nil || v.Sign() < 0 || v.BitLen() > 64 {
		return &SerializationError{Err: fmt.Errorf("value %v out of range for 64 bits", v)}
	}
	s.AppendUint64(v.Uint64())
	return nil
}

// AppendHexUint64 appends a 64 bit value given as a hex magnitude string.
func (s *Serializer) AppendHexUint64(hexValue string) error {
	u, err := toUint64(hexValue)
	if err != nil {
		return &SerializationError{Err: err}
	}
	s.AppendUint64(u)
	return nil
}

// AppendVariableLength appends b behind its length prefix.
func (s *Serializer) AppendVariableLength(b []byte) error {
	if err := writeVariableLength(&s.buf, b); err != nil {
		return &SerializationError{Err: err}
	}
	return nil
}

// AppendField appends a field header and value using the field table.
func (s *Serializer) AppendField(name string, value interface{}) error {
	b, err := EncodeField(name, value)
	if err != nil {
		return err
	}
	s.Append(b...)
	return nil
}

// AppendObject appends the canonical encoding of a whole object.
func (s *Serializer) AppendObject(obj map[string]interface{}, signingOnly bool) error {
	return encodeFields(&s.buf, obj, signingOnly)
}

func (s *Serializer) Len() int {
	return s.buf.Len()
}

func (s *Serializer) Bytes() []byte {
	return s.buf.Bytes()
}

func (s *Serializer) Hex() string {
	return string(b2h(s.buf.Bytes()))
}

// Hash returns SHA512Half(prefix || contents).
func (s *Serializer) Hash(prefix HashPrefix) Hash256 {
	return HashWithPrefix(prefix, s.buf.Bytes())
}

// Sum returns SHA512Half(contents) with no prefix.
func (s *Serializer) Sum() Hash256 {
	var hash Hash256
	sum := sha512.Sum512(s.buf.Bytes())
	copy(hash[:], sum[:32])
	return hash
}

// HashWithPrefix returns SHA512Half(prefix || payload).
func HashWithPrefix(prefix HashPrefix, payload ...[]byte) Hash256 {
	hasher := sha512.New()
	hasher.Write(prefix.Bytes())
	for _, p := range payload {
		hasher.Write(p)
	}
	var hash Hash256
	copy(hash[:], hasher.Sum(nil))
	return hash
}

// ParseUint32 accepts the forms a JSON number may arrive in.
func ParseUint32(v interface{}) (uint32, error) {
	if s, ok := v.(string); ok {
		u, err := strconv.ParseUint(s, 10, 32)
		return uint32(u), err
	}
	u, err := toUint(v, 32)
	return uint32(u), err
}

// ParseUint8 accepts the forms a JSON number may arrive in.
func ParseUint8(v interface{}) (uint8, error) {
	if s, ok := v.(string); ok {
		u, err := strconv.ParseUint(s, 10, 8)
		return uint8(u), err
	}
	u, err := toUint(v, 8)
	return uint8(u), err
}
