package data

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/anyswap/ripple-ledger-core/ripple/crypto"
)

type Hash128 [16]byte
type Hash160 [20]byte
type Hash256 [32]byte
type Vector256 []Hash256
type VariableLength []byte
type PublicKey [33]byte
type Account [20]byte

var zero256 Hash256
var zeroAccount Account
var zeroPublicKey PublicKey

func decodeFixedHex(dest []byte, s, name string) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("%s: %s", name, err.Error())
	}
	if len(b) != len(dest) {
		return fmt.Errorf("%s: wrong length %d expected: %d", name, len(b), len(dest))
	}
	copy(dest, b)
	return nil
}

// Accepts either a hex string or a byte slice of length 32
func NewHash256(value interface{}) (*Hash256, error) {
	var h Hash256
	switch v := value.(type) {
	case []byte:
		if len(v) != 32 {
			return nil, fmt.Errorf("NewHash256: Wrong length %X", value)
		}
		copy(h[:], v)
	case string:
		if err := decodeFixedHex(h[:], v, "Hash256"); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("NewHash256: Wrong type %+v", v)
	}
	return &h, nil
}

func (h *Hash128) Bytes() []byte {
	if h == nil {
		return nil
	}
	return h[:]
}

func (h Hash128) String() string {
	return string(b2h(h[:]))
}

func (h *Hash160) Bytes() []byte {
	if h == nil {
		return nil
	}
	return h[:]
}

func (h Hash160) String() string {
	return string(b2h(h[:]))
}

func (h Hash256) IsZero() bool {
	return h == zero256
}

func (h Hash256) Compare(x Hash256) int {
	return bytes.Compare(h[:], x[:])
}

func (h *Hash256) Bytes() []byte {
	if h == nil {
		return nil
	}
	return h[:]
}

func (h Hash256) String() string {
	return string(b2h(h[:]))
}

// Nibble returns the 4 bit value at depth, counting from the most significant.
func (h Hash256) Nibble(depth int) int {
	b := h[depth/2]
	if depth%2 == 0 {
		return int(b >> 4)
	}
	return int(b & 0x0F)
}

func (v Vector256) String() string {
	var s []string
	for _, h := range v {
		s = append(s, h.String())
	}
	return fmt.Sprintf("[%s]", strings.Join(s, ","))
}

func (v VariableLength) String() string {
	return string(b2h(v))
}

func (v *VariableLength) Bytes() []byte {
	if v != nil {
		return []byte(*v)
	}
	return []byte(nil)
}

func (p PublicKey) String() string {
	return string(b2h(p[:]))
}

func (p PublicKey) IsZero() bool {
	return p == zeroPublicKey
}

func (p *PublicKey) Bytes() []byte {
	if p != nil {
		return p[:]
	}
	return []byte(nil)
}

// AccountId returns the account derived from the public key.
func (p PublicKey) AccountId() Account {
	var a Account
	copy(a[:], crypto.Sha256RipeMD160(p[:]))
	return a
}

// Expects address in base58 form
func NewAccountFromAddress(s string) (*Account, error) {
	hash, err := crypto.NewRippleHashCheck(s, crypto.RIPPLE_ACCOUNT_ID)
	if err != nil {
		return nil, &InvalidAccountError{Input: s, Err: err}
	}
	var account Account
	copy(account[:], hash.Payload())
	return &account, nil
}

// NewAccount accepts a base58 address or 40 hex characters.
func NewAccount(s string) (*Account, error) {
	if len(s) == 40 {
		var account Account
		if err := decodeFixedHex(account[:], s, "Account"); err == nil {
			return &account, nil
		}
	}
	return NewAccountFromAddress(s)
}

func (a Account) Hash() (crypto.Hash, error) {
	return crypto.NewAccountId(a[:])
}

func (a Account) String() string {
	address, err := a.Hash()
	if err != nil {
		return fmt.Sprintf("Bad Address: %s", b2h(a[:]))
	}
	return address.String()
}

func (a Account) IsZero() bool {
	return a == zeroAccount
}

func (a *Account) Bytes() []byte {
	if a != nil {
		return a[:]
	}
	return []byte(nil)
}

func (a Account) Compare(b Account) int {
	return bytes.Compare(a[:], b[:])
}

func (a Account) Less(b Account) bool {
	return a.Compare(b) < 0
}

func (a Account) Equals(b Account) bool {
	return a == b
}
