package crypto

import (
	"crypto/ed25519"
	"fmt"

	"github.com/btcsuite/btcd/btcec"
)

// IsEd25519PublicKey reports whether pub is a 0xED prefixed ed25519 key.
func IsEd25519PublicKey(pub []byte) bool {
	return len(pub) == ed25519.PublicKeySize+1 && pub[0] == 0xED
}

// Sign signs hash with an ECDSA private key, or msg with an ed25519 private key.
// ECDSA signatures are RFC6979 deterministic, low-S and DER encoded.
func Sign(privateKey, hash, msg []byte) ([]byte, error) {
	switch len(privateKey) {
	case ed25519.PrivateKeySize:
		return ed25519.Sign(ed25519.PrivateKey(privateKey), msg), nil
	case btcec.PrivKeyBytesLen:
		priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), privateKey)
		sig, err := priv.Sign(hash)
		if err != nil {
			return nil, err
		}
		return sig.Serialize(), nil
	default:
		return nil, fmt.Errorf("Unknown private key format")
	}
}

// Verify checks signature against hash (ECDSA) or msg (ed25519).
func Verify(publicKey, hash, msg, signature []byte) (bool, error) {
	if IsEd25519PublicKey(publicKey) {
		return ed25519.Verify(ed25519.PublicKey(publicKey[1:]), msg, signature), nil
	}
	pub, err := btcec.ParsePubKey(publicKey, btcec.S256())
	if err != nil {
		return false, err
	}
	sig, err := btcec.ParseDERSignature(signature, btcec.S256())
	if err != nil {
		return false, err
	}
	return sig.Verify(hash, pub), nil
}
