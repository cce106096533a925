package common

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Common big integers often used
var (
	Big0 = big.NewInt(0)
	Big1 = big.NewInt(1)

	BigMaxUint64 = new(big.Int).SetUint64(^uint64(0))
)

// ParseBig256 parses s as a 256 bit integer in decimal or hexadecimal syntax.
// Leading zeros are accepted. The empty string parses as zero.
func ParseBig256(s string) (*big.Int, bool) {
	if s == "" {
		return new(big.Int), true
	}
	var bigint *big.Int
	var ok bool
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		bigint, ok = new(big.Int).SetString(s[2:], 16)
	} else {
		bigint, ok = new(big.Int).SetString(s, 10)
	}
	if ok && bigint.BitLen() > 256 {
		bigint, ok = nil, false
	}
	return bigint, ok
}

// GetBigIntFromStr parses a non-negative integer of at most 256 bits.
func GetBigIntFromStr(str string) (*big.Int, error) {
	bi, ok := ParseBig256(strings.TrimSpace(str))
	if !ok {
		return nil, errors.New("invalid 256 bit integer: " + str)
	}
	if bi.Sign() < 0 {
		return nil, errors.New("negative integer: " + str)
	}
	return bi, nil
}

// GetUint64FromBig checks that bi fits in 64 bits.
func GetUint64FromBig(bi *big.Int) (uint64, error) {
	if bi == nil || bi.Sign() < 0 || bi.Cmp(BigMaxUint64) > 0 {
		return 0, fmt.Errorf("integer %v out of range for 64 bits", bi)
	}
	return bi.Uint64(), nil
}
