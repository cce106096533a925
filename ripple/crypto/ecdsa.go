package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
)

var (
	order = btcec.S256().N
	zero  = big.NewInt(0)
)

type ecdsaKey struct {
	*btcec.PrivateKey
}

// newKey hashes seed||counter until the result is a valid scalar.
func newKey(seed []byte) *btcec.PrivateKey {
	buf := make([]byte, len(seed)+4)
	copy(buf, seed)
	key := big.NewInt(0)
	for counter := uint32(0); ; counter++ {
		binary.BigEndian.PutUint32(buf[len(seed):], counter)
		key.SetBytes(Sha512Half(buf))
		if key.Cmp(zero) > 0 && key.Cmp(order) < 0 {
			privKey, _ := btcec.PrivKeyFromBytes(btcec.S256(), key.Bytes())
			return privKey
		}
	}
}

// If seed is nil, generate a random one
func NewECDSAKey(seed []byte) (*ecdsaKey, error) {
	if seed == nil {
		seed = make([]byte, 16)
		if _, err := rand.Read(seed); err != nil {
			return nil, err
		}
	}
	return &ecdsaKey{newKey(seed)}, nil
}

// NewECDSAKeyFromPrivKeyBytes wraps an existing secp256k1 scalar.
func NewECDSAKeyFromPrivKeyBytes(priv []byte) *ecdsaKey {
	privKey, _ := btcec.PrivKeyFromBytes(btcec.S256(), priv)
	return &ecdsaKey{privKey}
}

func (k *ecdsaKey) generateKey(sequence uint32) *btcec.PrivateKey {
	seed := make([]byte, btcec.PubKeyBytesLenCompressed+4)
	copy(seed, k.PubKey().SerializeCompressed())
	binary.BigEndian.PutUint32(seed[btcec.PubKeyBytesLenCompressed:], sequence)
	key := newKey(seed)
	d := new(big.Int).Add(key.D, k.D)
	d.Mod(d, order)
	privKey, _ := btcec.PrivKeyFromBytes(btcec.S256(), d.Bytes())
	return privKey
}

func (k *ecdsaKey) Id(sequence *uint32) []byte {
	return Sha256RipeMD160(k.Public(sequence))
}

func (k *ecdsaKey) Private(sequence *uint32) []byte {
	if sequence == nil {
		return paddedScalar(k.D)
	}
	return paddedScalar(k.generateKey(*sequence).D)
}

func (k *ecdsaKey) Public(sequence *uint32) []byte {
	if sequence == nil {
		return k.PubKey().SerializeCompressed()
	}
	return k.generateKey(*sequence).PubKey().SerializeCompressed()
}

func paddedScalar(d *big.Int) []byte {
	b := make([]byte, 32)
	db := d.Bytes()
	copy(b[32-len(db):], db)
	return b
}
