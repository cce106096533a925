package data

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

const (
	minOffset        int64  = -96
	maxOffset        int64  = 80
	minValue         uint64 = 1000000000000000
	maxValue         uint64 = 9999999999999999
	maxNative        uint64 = 9000000000000000000
	maxNativeNetwork uint64 = 100000000000000000
	notNative        uint64 = 0x8000000000000000
	positive         uint64 = 0x4000000000000000
	xrpPrecision     uint64 = 1000000
)

// Value is the numeric type in Ripple. It can store numbers in two different
// representations: native and non-native.
// Non-native numbers are stored as a mantissa (Num) in the range [1e15,1e16)
// plus an exponent (Offset) in the range [-96,80].
// Native values are stored as an integer number of "drops" each representing
// 1/1000000 XRP.
type Value struct {
	native   bool
	negative bool
	num      uint64
	offset   int64
}

func newValue(native, negative bool, num uint64, offset int64) *Value {
	return &Value{
		native:   native,
		negative: negative,
		num:      num,
		offset:   offset,
	}
}

// NewNativeValue returns a Value with n drops.
// If the value is impossible an error is returned.
func NewNativeValue(n int64) (*Value, error) {
	v := newValue(true, n < 0, abs(n), 0)
	return v, v.canonicalise()
}

// NewNonNativeValue returns a Value of n*10^offset.
func NewNonNativeValue(n int64, offset int64) (*Value, error) {
	v := newValue(false, n < 0, abs(n), offset)
	return v, v.canonicalise()
}

// Match fields:
// 0 = whole input
// 1 = sign
// 2 = integer portion
// 3 = whole fraction (with '.')
// 4 = fraction (without '.')
// 5 = whole exponent (with 'e')
// 6 = exponent sign
// 7 = exponent number
var valueRegex = regexp.MustCompile(`^([+-]?)(\d*)(\.(\d*))?([eE]([+-]?)(\d+))?$`)

// NewValue accepts a string representation of a value and a flag to indicate if it
// should be stored as native. If the native flag is set AND a decimal is used, the
// number is interpreted as XRP. If no decimal is used, it is interpreted as drops.
func NewValue(s string, native bool) (*Value, error) {
	var err error
	v := Value{
		native: native,
	}
	matches := valueRegex.FindStringSubmatch(s)
	if matches == nil {
		return nil, fmt.Errorf("Invalid Number: %s", s)
	}
	if len(matches[2])+len(matches[4]) > 32 {
		return nil, fmt.Errorf("Overlong Number: %s", s)
	}
	if matches[1] == "-" {
		v.negative = true
	}
	if len(matches[4]) == 0 {
		if v.num, err = strconv.ParseUint(matches[2], 10, 64); err != nil {
			return nil, fmt.Errorf("Invalid Number: %s Reason: %s", s, err.Error())
		}
		v.offset = 0
	} else {
		if v.num, err = strconv.ParseUint(matches[2]+matches[4], 10, 64); err != nil {
			return nil, fmt.Errorf("Invalid Number: %s Reason: %s", s, err.Error())
		}
		v.offset = -int64(len(matches[4]))
	}
	if len(matches[5]) > 0 {
		exp, err := strconv.ParseInt(matches[7], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("Invalid Number: %s %s", s, err.Error())
		}
		if matches[6] == "-" {
			v.offset -= exp
		} else {
			v.offset += exp
		}
	}
	if v.IsNative() && len(matches[3]) > 0 {
		v.offset += 6
	}
	return &v, v.canonicalise()
}

func (v *Value) canonicalise() error {
	if v.IsNative() {
		if v.num == 0 {
			v.offset = 0
			v.negative = false
		} else {
			for v.offset < 0 {
				v.num /= 10
				v.offset++
			}
			for v.offset > 0 {
				if v.num > maxNative/10 {
					return fmt.Errorf("Native amount out of range: %s", v.debug())
				}
				v.num *= 10
				v.offset--
			}
			if v.num > maxNative {
				return fmt.Errorf("Native amount out of range: %s", v.debug())
			}
		}
	} else {
		if v.num == 0 {
			v.offset = -100
			v.negative = false
		} else {
			for v.num < minValue && v.offset > minOffset {
				v.num *= 10
				v.offset--
			}
			for v.num > maxValue {
				if v.offset >= maxOffset {
					return fmt.Errorf("Value overflow: %s", v.debug())
				}
				v.num /= 10
				v.offset++
			}
			if v.offset < minOffset || v.num < minValue {
				v.num = 0
				v.offset = 0
				v.negative = false
			}
			if v.offset > maxOffset {
				return fmt.Errorf("Value overflow: %s", v.debug())
			}
		}
	}
	return nil
}

// Clone returns a Value which is a copy of v.
func (v Value) Clone() *Value {
	return newValue(v.native, v.negative, v.num, v.offset)
}

func (a Value) Equals(b Value) bool {
	return a.Compare(b) == 0
}

// Compare returns an integer comparing two Values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func (a Value) Compare(b Value) int {
	return a.Rat().Cmp(b.Rat())
}

// isScientific indicates when the value should be String()ed in scientific notation.
func (v Value) isScientific() bool {
	return v.offset != 0 && (v.offset < -25 || v.offset > -5)
}

func (v Value) IsNative() bool {
	return v.native
}

func (v Value) IsNegative() bool {
	return v.negative
}

func (v Value) IsZero() bool {
	return v.num == 0
}

func (v *Value) Bytes() []byte {
	if v == nil {
		return nil
	}
	var u uint64
	if !v.negative && (v.num > 0 || v.IsNative()) {
		u |= positive
	}
	if v.IsNative() {
		u |= v.num & (positive - 1)
	} else {
		u |= notNative
		u |= v.num & ((1 << 54) - 1)
		if v.num > 0 {
			u |= uint64(v.offset+97) << 54
		}
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], u)
	return b[:]
}

func (v *Value) Unmarshal(r Reader) error {
	var u uint64
	if err := binary.Read(r, binary.BigEndian, &u); err != nil {
		return err
	}
	v.native = u&notNative == 0
	v.negative = u&positive == 0
	if v.IsNative() {
		v.num = u & (positive - 1)
		v.offset = 0
		if v.num == 0 {
			v.negative = false
		}
	} else {
		v.num = u & ((1 << 54) - 1)
		v.offset = int64((u>>54)&((1<<8)-1)) - 97
		if v.num == 0 {
			v.offset = -100
			v.negative = false
		}
	}
	return nil
}

func (v *Value) Marshal(w io.Writer) error {
	_, err := w.Write(v.Bytes())
	return err
}

// Rat returns the value as a big.Rat.
func (v Value) Rat() *big.Rat {
	n := new(big.Int).SetUint64(v.num)
	if v.negative {
		n.Neg(n)
	}

	d := big.NewInt(1)
	if v.offset < 0 {
		d.Exp(big.NewInt(10), big.NewInt(-v.offset), nil)
	} else if v.offset > 0 {
		mult := big.NewInt(1)
		mult.Exp(big.NewInt(10), big.NewInt(v.offset), nil)
		n.Mul(n, mult)
	}

	res := big.NewRat(0, 1)
	res.SetFrac(n, d)
	return res
}

// Drops returns a native value as its integer number of drops.
func (v Value) Drops() string {
	if v.negative && v.num > 0 {
		return "-" + strconv.FormatUint(v.num, 10)
	}
	return strconv.FormatUint(v.num, 10)
}

// String returns the Value as a string for human consumption. Native values are
// represented as decimal XRP rather than drops.
func (v Value) String() string {
	if v.IsZero() {
		return "0"
	}
	if !v.IsNative() && v.isScientific() {
		value := strconv.FormatUint(v.num, 10)
		origLen := len(value)
		value = strings.TrimRight(value, "0")
		offset := strconv.FormatInt(v.offset+int64(origLen-len(value)), 10)
		if v.negative {
			return "-" + value + "e" + offset
		}
		return value + "e" + offset
	}
	rat := v.Rat()
	if v.IsNative() {
		rat.Quo(rat, big.NewRat(int64(xrpPrecision), 1))
	}
	left := rat.FloatString(0)
	if rat.IsInt() {
		return left
	}
	length := len(left)
	if v.negative {
		length -= 1
	}
	return strings.TrimRight(rat.FloatString(32-length), "0")
}

func (v Value) debug() string {
	return fmt.Sprintf("Native: %t Negative: %t Value: %d Offset: %d", v.native, v.negative, v.num, v.offset)
}
