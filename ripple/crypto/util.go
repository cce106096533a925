package crypto

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160"
)

// Sha512Half returns the first 32 bytes of the SHA-512 digest of b.
func Sha512Half(b []byte) []byte {
	hasher := sha512.New()
	hasher.Write(b)
	return hasher.Sum(nil)[:32]
}

// Sha512Quarter returns the first 16 bytes of the SHA-512 digest of b.
func Sha512Quarter(b []byte) []byte {
	hasher := sha512.New()
	hasher.Write(b)
	return hasher.Sum(nil)[:16]
}

// DoubleSha256 is used for base58 checksums.
func DoubleSha256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Sha256RipeMD160 derives an account id from a public key.
func Sha256RipeMD160(b []byte) []byte {
	sha := sha256.Sum256(b)
	ripe := ripemd160.New()
	ripe.Write(sha[:])
	return ripe.Sum(nil)
}
