package crypto

import (
	"bytes"
	"fmt"
	"math/big"
)

// First byte is the version
// Remaining bytes are the payload
type hash []byte

func NewRippleHash(s string) (Hash, error) {
	// Special case which will deal short addresses
	switch s {
	case "0":
		return newHashFromString(ACCOUNT_ZERO)
	case "1":
		return newHashFromString(ACCOUNT_ONE)
	default:
		return newHashFromString(s)
	}
}

// NewRippleHashCheck decodes s and checks the version and payload size.
func NewRippleHashCheck(s string, version HashVersion) (Hash, error) {
	hash, err := NewRippleHash(s)
	if err != nil {
		return nil, err
	}
	if hash.Version() != version {
		return nil, fmt.Errorf("Bad version for: %s expected: %s got: %s", s, describe(version), describe(hash.Version()))
	}
	if n := hashTypes[version].Payload; len(hash.Payload()) != n {
		return nil, fmt.Errorf("Bad payload length for: %s expected: %d got: %d", s, n, len(hash.Payload()))
	}
	return hash, nil
}

func NewAccountId(b []byte) (Hash, error) {
	return newHash(b, RIPPLE_ACCOUNT_ID)
}

func NewAccountPublicKey(b []byte) (Hash, error) {
	return newHash(b, RIPPLE_ACCOUNT_PUBLIC)
}

func NewAccountPrivateKey(b []byte) (Hash, error) {
	return newHash(b, RIPPLE_ACCOUNT_PRIVATE)
}

func NewNodePublicKey(b []byte) (Hash, error) {
	return newHash(b, RIPPLE_NODE_PUBLIC)
}

func NewNodePrivateKey(b []byte) (Hash, error) {
	return newHash(b, RIPPLE_NODE_PRIVATE)
}

func NewFamilySeed(b []byte) (Hash, error) {
	return newHash(b, RIPPLE_FAMILY_SEED)
}

func AccountId(key Key, sequence *uint32) (Hash, error) {
	return NewAccountId(key.Id(sequence))
}

func AccountPublicKey(key Key, sequence *uint32) (Hash, error) {
	return NewAccountPublicKey(key.Public(sequence))
}

func AccountPrivateKey(key Key, sequence *uint32) (Hash, error) {
	return NewAccountPrivateKey(key.Private(sequence))
}

func NodePublicKey(key Key) (Hash, error) {
	return NewNodePublicKey(key.Public(nil))
}

func NodePrivateKey(key Key) (Hash, error) {
	return NewNodePrivateKey(key.Private(nil))
}

func GenerateFamilySeed(password string) (Hash, error) {
	return NewFamilySeed(Sha512Quarter([]byte(password)))
}

// EncodeEd25519Seed renders 16 bytes of entropy as an "sEd..." seed.
func EncodeEd25519Seed(entropy []byte) (string, error) {
	if len(entropy) != 16 {
		return "", fmt.Errorf("Seed is wrong size, expected: 16 got: %d", len(entropy))
	}
	return Base58Encode(append(append([]byte(nil), ed25519SeedPrefix...), entropy...), ALPHABET), nil
}

// ParseSeed decodes a secret in either the secp256k1 family seed form ("s...")
// or the ed25519 form ("sEd...") and returns its entropy.
func ParseSeed(s string) (entropy []byte, ed bool, err error) {
	decoded, err := Base58Decode(s, ALPHABET)
	if err != nil {
		return nil, false, err
	}
	payload := decoded[:len(decoded)-4]
	switch {
	case len(payload) == 3+16 && bytes.HasPrefix(payload, ed25519SeedPrefix):
		return payload[3:], true, nil
	case len(payload) == 1+16 && HashVersion(payload[0]) == RIPPLE_FAMILY_SEED:
		return payload[1:], false, nil
	default:
		return nil, false, fmt.Errorf("Bad seed: %s", s)
	}
}

// NewKeyFromSeed derives the deterministic key pair for a secret.
func NewKeyFromSeed(s string) (Key, error) {
	entropy, ed, err := ParseSeed(s)
	if err != nil {
		return nil, err
	}
	if ed {
		return NewEd25519Key(entropy)
	}
	return NewECDSAKey(entropy)
}

func newHash(b []byte, version HashVersion) (Hash, error) {
	n := hashTypes[version].Payload
	if len(b) > n {
		return nil, fmt.Errorf("Hash is wrong size, expected: %d got: %d", n, len(b))
	}
	return append(hash{byte(version)}, b...), nil
}

func newHashFromString(s string) (Hash, error) {
	decoded, err := Base58Decode(s, ALPHABET)
	if err != nil {
		return nil, err
	}
	return hash(decoded[:len(decoded)-4]), nil
}

func (h hash) String() string {
	b := append(hash{byte(h.Version())}, h.Payload()...)
	return Base58Encode(b, ALPHABET)
}

func (h hash) Version() HashVersion {
	return HashVersion(h[0])
}

func (h hash) Payload() []byte {
	return h[1:]
}

// Return a slice of the payload with leading zeroes omitted
func (h hash) PayloadTrimmed() []byte {
	payload := h.Payload()
	for i := range payload {
		if payload[i] != 0 {
			return payload[i:]
		}
	}
	return payload[len(payload)-1:]
}

func (h hash) Value() *big.Int {
	return big.NewInt(0).SetBytes(h.Payload())
}

func (h hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h hash) Clone() Hash {
	c := make(hash, len(h))
	copy(c, h)
	return c
}
