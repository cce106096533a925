package data

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// EncodeObject returns the canonical binary form of a transaction, ledger
// entry or metadata object. Fields are written in field table order whatever
// the order of the map. Lower case keys are skipped, unknown upper case keys
// fail. With signingOnly the fields excluded from signing are left out.
func EncodeObject(obj map[string]interface{}, signingOnly bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeFields(&buf, obj, signingOnly); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeField returns the field header followed by the encoded value.
func EncodeField(name string, value interface{}) ([]byte, error) {
	e, ok := reverseEncodings[name]
	if !ok {
		return nil, &SerializationError{Field: name, Err: fmt.Errorf("unknown field")}
	}
	var buf bytes.Buffer
	if err := writeField(&buf, e, name, value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type field struct {
	encoding enc
	name     string
	value    interface{}
}

type fieldSlice []field

func (s fieldSlice) Len() int           { return len(s) }
func (s fieldSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s fieldSlice) Less(i, j int) bool { return s[i].encoding.Priority() < s[j].encoding.Priority() }

func getFields(obj map[string]interface{}, signingOnly bool) (fieldSlice, error) {
	fields := make(fieldSlice, 0, len(obj))
	for name, value := range obj {
		if !IsSerializedField(name) {
			continue
		}
		e, ok := reverseEncodings[name]
		if !ok {
			return nil, &SerializationError{Field: name, Err: fmt.Errorf("unknown field")}
		}
		if e == endOfObject || e == endOfArray {
			return nil, &SerializationError{Field: name, Err: fmt.Errorf("marker is not a field")}
		}
		if signingOnly && IsSigningField(name) {
			continue
		}
		fields = append(fields, field{e, name, value})
	}
	sort.Sort(fields)
	return fields, nil
}

func encodeFields(w io.Writer, obj map[string]interface{}, signingOnly bool) error {
	fields, err := getFields(obj, signingOnly)
	if err != nil {
		return err
	}
	for _, f := range fields {
		if err := writeField(w, f.encoding, f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

func writeField(w io.Writer, e enc, name string, value interface{}) error {
	if err := writeEncoding(w, e); err != nil {
		return fieldError(name, err)
	}
	if err := writeValue(w, e, name, value); err != nil {
		return fieldError(name, err)
	}
	return nil
}

func writeValue(w io.Writer, e enc, name string, value interface{}) error {
	switch e.typ {
	case ST_UINT8:
		u, err := toUint8(name, value)
		if err != nil {
			return err
		}
		return write(w, u)
	case ST_UINT16:
		u, err := toUint16(name, value)
		if err != nil {
			return err
		}
		return write(w, u)
	case ST_UINT32:
		u, err := toUint(value, 32)
		if err != nil {
			return err
		}
		return write(w, uint32(u))
	case ST_UINT64:
		u, err := toUint64(value)
		if err != nil {
			return err
		}
		return write(w, u)
	case ST_HASH128:
		return writeHex(w, value, 16)
	case ST_HASH160:
		return writeHex(w, value, 20)
	case ST_HASH256:
		return writeHex(w, value, 32)
	case ST_AMOUNT:
		amount, err := NewAmount(value)
		if err != nil {
			return err
		}
		return amount.Marshal(w)
	case ST_VL:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected hex string got %T", value)
		}
		b, err := hex.DecodeString(s)
		if err != nil {
			return err
		}
		return writeVariableLength(w, b)
	case ST_ACCOUNT:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected address got %T", value)
		}
		account, err := NewAccount(s)
		if err != nil {
			return err
		}
		return writeVariableLength(w, account.Bytes())
	case ST_OBJECT:
		obj, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("expected object got %T", value)
		}
		if err := encodeFields(w, obj, false); err != nil {
			return err
		}
		return writeEncoding(w, endOfObject)
	case ST_ARRAY:
		return writeArray(w, value)
	case ST_PATHSET:
		paths, err := NewPathSet(value)
		if err != nil {
			return err
		}
		return paths.Marshal(w)
	case ST_VECTOR256:
		list, ok := value.([]interface{})
		if !ok {
			return fmt.Errorf("expected list got %T", value)
		}
		b := make([]byte, 0, 32*len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("expected hex string got %T", item)
			}
			h, err := NewHash256(s)
			if err != nil {
				return err
			}
			b = append(b, h[:]...)
		}
		return writeVariableLength(w, b)
	default:
		return fmt.Errorf("unsupported type %d", e.typ)
	}
}

// Array elements are single key objects naming their wrapper field.
func writeArray(w io.Writer, value interface{}) error {
	list, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("expected list got %T", value)
	}
	for i, item := range list {
		wrapper, ok := item.(map[string]interface{})
		if !ok || len(wrapper) != 1 {
			return &SerializationError{Field: strconv.Itoa(i), Err: fmt.Errorf("expected single key object")}
		}
		for name, inner := range wrapper {
			e, ok := reverseEncodings[name]
			if !ok || e.typ != ST_OBJECT || e == endOfObject {
				return &SerializationError{Field: strconv.Itoa(i), Err: fmt.Errorf("unknown array element %s", name)}
			}
			if err := writeField(w, e, name, inner); err != nil {
				return fieldError(strconv.Itoa(i), err)
			}
		}
	}
	return writeEncoding(w, endOfArray)
}

func writeHex(w io.Writer, value interface{}, length int) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected hex string got %T", value)
	}
	b := make([]byte, length)
	if err := decodeFixedHex(b, s, fmt.Sprintf("Hash%d", length*8)); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func toUint8(name string, value interface{}) (uint8, error) {
	if s, ok := value.(string); ok && name == "TransactionResult" {
		r, ok := GetTransactionResult(s)
		if !ok {
			return 0, fmt.Errorf("unknown transaction result %s", s)
		}
		return uint8(r), nil
	}
	u, err := toUint(value, 8)
	return uint8(u), err
}

func toUint16(name string, value interface{}) (uint16, error) {
	if s, ok := value.(string); ok {
		switch name {
		case "TransactionType":
			if t, ok := GetTransactionType(s); ok {
				return uint16(t), nil
			}
			return 0, fmt.Errorf("unknown transaction type %s", s)
		case "LedgerEntryType":
			if t, ok := GetLedgerEntryType(s); ok {
				return uint16(t), nil
			}
			return 0, fmt.Errorf("unknown ledger entry type %s", s)
		}
	}
	u, err := toUint(value, 16)
	return uint16(u), err
}

// toUint accepts the numeric forms produced by encoding/json and Go callers
// and checks the value fits in bits.
func toUint(value interface{}, bits uint) (uint64, error) {
	max := uint64(math.MaxUint64) >> (64 - bits)
	var u uint64
	switch n := value.(type) {
	case json.Number:
		s := string(n)
		if strings.HasPrefix(s, "-") {
			return 0, fmt.Errorf("negative value %s", s)
		}
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("bad integer %s", s)
		}
		u = v
	case float64:
		if n < 0 || n != math.Trunc(n) || n >= math.MaxUint64 {
			return 0, fmt.Errorf("bad integer %v", n)
		}
		u = uint64(n)
	case int:
		if n < 0 {
			return 0, fmt.Errorf("negative value %d", n)
		}
		u = uint64(n)
	case int64:
		if n < 0 {
			return 0, fmt.Errorf("negative value %d", n)
		}
		u = uint64(n)
	case int32:
		if n < 0 {
			return 0, fmt.Errorf("negative value %d", n)
		}
		u = uint64(n)
	case uint:
		u = uint64(n)
	case uint8:
		u = uint64(n)
	case uint16:
		u = uint64(n)
	case uint32:
		u = uint64(n)
	case uint64:
		u = n
	default:
		return 0, fmt.Errorf("expected integer got %T", value)
	}
	if u > max {
		return 0, fmt.Errorf("value %d out of range for %d bits", u, bits)
	}
	return u, nil
}

// toUint64 accepts the protocol's hex string form as well as numbers.
func toUint64(value interface{}) (uint64, error) {
	switch n := value.(type) {
	case string:
		if len(n) == 0 || len(n) > 16 {
			return 0, fmt.Errorf("bad hex UInt64 %q", n)
		}
		return strconv.ParseUint(n, 16, 64)
	case *big.Int:
		if n.Sign() < 0 || n.BitLen() > 64 {
			return 0, fmt.Errorf("value %s out of range for 64 bits", n.String())
		}
		return n.Uint64(), nil
	default:
		return toUint(value, 64)
	}
}
