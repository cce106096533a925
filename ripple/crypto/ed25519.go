package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
)

type ed25519key struct {
	priv ed25519.PrivateKey
}

func (e *ed25519key) Id(seq *uint32) []byte {
	return Sha256RipeMD160(e.Public(seq))
}

// Public ignores seq; ed25519 keys have no account families.
func (e *ed25519key) Public(seq *uint32) []byte {
	return append([]byte{0xED}, e.priv[32:]...)
}

func (e *ed25519key) Private(seq *uint32) []byte {
	return e.priv[:]
}

// NewEd25519Key derives the key from SHA512Half(seed). A nil seed draws
// random entropy.
func NewEd25519Key(seed []byte) (*ed25519key, error) {
	if seed == nil {
		seed = make([]byte, 16)
		if _, err := rand.Read(seed); err != nil {
			return nil, err
		}
	}
	return &ed25519key{priv: ed25519.NewKeyFromSeed(Sha512Half(seed))}, nil
}
