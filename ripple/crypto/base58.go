package crypto

import (
	"bytes"
	"fmt"
	"math/big"
)

var bigRadix = big.NewInt(58)

// Base58Decode decodes a checksummed base58 string using the given alphabet.
// The returned slice still carries the 4 checksum bytes.
func Base58Decode(b, alphabet string) ([]byte, error) {
	answer := big.NewInt(0)
	j := big.NewInt(1)

	for i := len(b) - 1; i >= 0; i-- {
		tmp := bytes.IndexByte([]byte(alphabet), b[i])
		if tmp == -1 {
			return nil, fmt.Errorf("Bad Base58 string: %s", b)
		}
		idx := big.NewInt(int64(tmp))
		tmp1 := new(big.Int).Mul(j, idx)
		answer.Add(answer, tmp1)
		j.Mul(j, bigRadix)
	}

	tmpval := answer.Bytes()

	var numZeros int
	for numZeros = 0; numZeros < len(b); numZeros++ {
		if b[numZeros] != alphabet[0] {
			break
		}
	}
	flen := numZeros + len(tmpval)
	val := make([]byte, flen)
	copy(val[numZeros:], tmpval)

	if len(val) < 5 {
		return nil, fmt.Errorf("Bad Base58 string: %s", b)
	}
	checksum := DoubleSha256(val[:len(val)-4])
	if !bytes.Equal(checksum[:4], val[len(val)-4:]) {
		return nil, fmt.Errorf("Bad Base58 checksum: %v expected %v", checksum[:4], val[len(val)-4:])
	}
	return val, nil
}

// Base58Encode appends a 4 byte checksum to b and encodes the result.
func Base58Encode(b []byte, alphabet string) string {
	checksum := DoubleSha256(b)
	b = append(append([]byte(nil), b...), checksum[:4]...)
	x := new(big.Int).SetBytes(b)

	answer := make([]byte, 0, len(b)*136/100)
	mod := new(big.Int)
	for x.Sign() > 0 {
		x.DivMod(x, bigRadix, mod)
		answer = append(answer, alphabet[mod.Int64()])
	}

	// leading zero bytes
	for _, i := range b {
		if i != 0 {
			break
		}
		answer = append(answer, alphabet[0])
	}

	// reverse
	alen := len(answer)
	for i := 0; i < alen/2; i++ {
		answer[i], answer[alen-1-i] = answer[alen-1-i], answer[i]
	}

	return string(answer)
}
