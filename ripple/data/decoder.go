package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// DecodeObject parses a canonical binary object back into its JSON form.
// Re-encoding the result with EncodeObject reproduces b.
func DecodeObject(b []byte) (map[string]interface{}, error) {
	r := bytes.NewReader(b)
	obj, err := readObject(r, false)
	if err != nil {
		return nil, fieldError("", err)
	}
	return obj, nil
}

// DecodeTransactionNode splits a transaction tree leaf payload,
// VL(transaction) followed by VL(metadata), into its two objects.
func DecodeTransactionNode(payload []byte) (tx, meta map[string]interface{}, err error) {
	r := bytes.NewReader(payload)
	var parts [2]map[string]interface{}
	for i := range parts {
		vr, err := NewVariableByteReader(r)
		if err != nil {
			return nil, nil, &SerializationError{Err: err}
		}
		b := make([]byte, vr.Len())
		if err := unmarshalSlice(b, vr, "TransactionNode"); err != nil {
			return nil, nil, &SerializationError{Err: err}
		}
		if parts[i], err = DecodeObject(b); err != nil {
			return nil, nil, err
		}
	}
	if r.Len() != 0 {
		return nil, nil, &SerializationError{Err: fmt.Errorf("%d trailing bytes", r.Len())}
	}
	return parts[0], parts[1], nil
}

func readObject(r Reader, inner bool) (map[string]interface{}, error) {
	obj := make(map[string]interface{})
	for {
		if !inner && r.Len() == 0 {
			return obj, nil
		}
		e, err := readEncoding(r)
		if err != nil {
			return nil, err
		}
		if *e == endOfObject {
			if !inner {
				return nil, fmt.Errorf("unexpected end of object")
			}
			return obj, nil
		}
		name, ok := encodings[*e]
		if !ok || *e == endOfArray {
			return nil, fmt.Errorf("unknown field %s", e.String())
		}
		value, err := readValue(r, *e, name)
		if err != nil {
			return nil, fieldError(name, err)
		}
		obj[name] = value
	}
}

func readValue(r Reader, e enc, name string) (interface{}, error) {
	switch e.typ {
	case ST_UINT8:
		var u uint8
		if err := read(r, &u); err != nil {
			return nil, err
		}
		if name == "TransactionResult" {
			if s, ok := resultNames[TransactionResult(u)]; ok {
				return s, nil
			}
		}
		return number(uint64(u)), nil
	case ST_UINT16:
		var u uint16
		if err := read(r, &u); err != nil {
			return nil, err
		}
		switch name {
		case "TransactionType":
			if s, ok := txNames[TransactionType(u)]; ok {
				return s, nil
			}
		case "LedgerEntryType":
			if s, ok := ledgerEntryNames[LedgerEntryType(u)]; ok {
				return s, nil
			}
		}
		return number(uint64(u)), nil
	case ST_UINT32:
		var u uint32
		if err := read(r, &u); err != nil {
			return nil, err
		}
		return number(uint64(u)), nil
	case ST_UINT64:
		var u uint64
		if err := read(r, &u); err != nil {
			return nil, err
		}
		return fmt.Sprintf("%016X", u), nil
	case ST_HASH128:
		var h Hash128
		if err := unmarshalSlice(h[:], r, "Hash128"); err != nil {
			return nil, err
		}
		return h.String(), nil
	case ST_HASH160:
		var h Hash160
		if err := unmarshalSlice(h[:], r, "Hash160"); err != nil {
			return nil, err
		}
		return h.String(), nil
	case ST_HASH256:
		var h Hash256
		if err := unmarshalSlice(h[:], r, "Hash256"); err != nil {
			return nil, err
		}
		return h.String(), nil
	case ST_AMOUNT:
		var a Amount
		if err := a.Unmarshal(r); err != nil {
			return nil, err
		}
		return a.JSON(), nil
	case ST_VL:
		b, err := readVariable(r)
		if err != nil {
			return nil, err
		}
		return VariableLength(b).String(), nil
	case ST_ACCOUNT:
		b, err := readVariable(r)
		if err != nil {
			return nil, err
		}
		var a Account
		if len(b) != len(a) {
			return nil, fmt.Errorf("Account: wrong length %d expected: %d", len(b), len(a))
		}
		copy(a[:], b)
		return a.String(), nil
	case ST_OBJECT:
		return readObject(r, true)
	case ST_ARRAY:
		return readArray(r)
	case ST_PATHSET:
		var p PathSet
		if err := p.Unmarshal(r); err != nil {
			return nil, err
		}
		return p.JSON(), nil
	case ST_VECTOR256:
		b, err := readVariable(r)
		if err != nil {
			return nil, err
		}
		if len(b)%32 != 0 {
			return nil, fmt.Errorf("Vector256: length %d is not a multiple of 32", len(b))
		}
		list := make([]interface{}, 0, len(b)/32)
		for i := 0; i < len(b); i += 32 {
			var h Hash256
			copy(h[:], b[i:i+32])
			list = append(list, h.String())
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unsupported type %d", e.typ)
	}
}

func readArray(r Reader) ([]interface{}, error) {
	list := make([]interface{}, 0)
	for i := 0; ; i++ {
		e, err := readEncoding(r)
		if err != nil {
			return nil, err
		}
		if *e == endOfArray {
			return list, nil
		}
		name, ok := encodings[*e]
		if !ok || e.typ != ST_OBJECT || *e == endOfObject {
			return nil, fmt.Errorf("unknown array element %s", e.String())
		}
		inner, err := readObject(r, true)
		if err != nil {
			return nil, fieldError(strconv.Itoa(i)+"."+name, err)
		}
		list = append(list, map[string]interface{}{name: inner})
	}
}

func readVariable(r Reader) ([]byte, error) {
	vr, err := NewVariableByteReader(r)
	if err != nil {
		return nil, err
	}
	b := make([]byte, vr.Len())
	return b, unmarshalSlice(b, vr, "VariableLength")
}

func number(u uint64) json.Number {
	return json.Number(strconv.FormatUint(u, 10))
}
