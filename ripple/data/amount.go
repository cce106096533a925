package data

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

type Amount struct {
	*Value
	Currency Currency
	Issuer   Account
}

func newAmount(value *Value, currency Currency, issuer Account) *Amount {
	return &Amount{
		Value:    value,
		Currency: currency,
		Issuer:   issuer,
	}
}

// NewAmount accepts the JSON forms of an amount: a string of drops, a
// {currency, issuer, value} object, or the "value/currency/issuer" shorthand.
func NewAmount(v interface{}) (*Amount, error) {
	switch n := v.(type) {
	case int64:
		value, err := NewNativeValue(n)
		if err != nil {
			return nil, err
		}
		return &Amount{Value: value}, nil
	case json.Number:
		return NewAmount(string(n))
	case map[string]interface{}:
		return newIssuedAmount(n)
	case string:
		var err error
		amount := new(Amount)
		parts := strings.Split(strings.TrimSpace(n), "/")
		native := false
		switch {
		case len(parts) == 1:
			native = true
		case len(parts) > 1 && parts[1] == "XRP":
			native = true
			if !strings.Contains(parts[0], ".") {
				parts[0] = parts[0] + "."
			}
		}
		if amount.Value, err = NewValue(parts[0], native); err != nil {
			return nil, err
		}
		if len(parts) > 1 && !native {
			if amount.Currency, err = NewCurrency(parts[1]); err != nil {
				return nil, err
			}
		}
		if len(parts) > 2 {
			issuer, err := NewAccountFromAddress(parts[2])
			if err != nil {
				return nil, err
			}
			amount.Issuer = *issuer
		}
		return amount, nil
	default:
		return nil, fmt.Errorf("Bad type: %+v", v)
	}
}

func newIssuedAmount(m map[string]interface{}) (*Amount, error) {
	var fields [3]string
	for i, name := range []string{"value", "currency", "issuer"} {
		s, ok := m[name].(string)
		if !ok {
			if num, isNum := m[name].(json.Number); isNum && name == "value" {
				s = string(num)
			} else {
				return nil, fmt.Errorf("Amount: missing %s", name)
			}
		}
		fields[i] = s
	}
	value, err := NewValue(fields[0], false)
	if err != nil {
		return nil, err
	}
	currency, err := NewCurrency(fields[1])
	if err != nil {
		return nil, err
	}
	if currency.IsNative() {
		return nil, fmt.Errorf("Amount: issued amount with native currency")
	}
	issuer, err := NewAccount(fields[2])
	if err != nil {
		return nil, err
	}
	return newAmount(value, currency, *issuer), nil
}

func (a Amount) Equals(b Amount) bool {
	return a.Value.Equals(*b.Value) &&
		a.Currency == b.Currency &&
		a.Issuer == b.Issuer
}

func (a Amount) Clone() *Amount {
	return newAmount(a.Value.Clone(), a.Currency, a.Issuer)
}

func (a Amount) Bytes() []byte {
	if a.IsNative() {
		return a.Value.Bytes()
	}
	return append(a.Value.Bytes(), append(a.Currency.Bytes(), a.Issuer.Bytes()...)...)
}

func (a *Amount) Unmarshal(r Reader) error {
	a.Value = new(Value)
	if err := a.Value.Unmarshal(r); err != nil {
		return err
	}
	if a.Value.IsNative() {
		return nil
	}
	if err := unmarshalSlice(a.Currency[:], r, "Currency"); err != nil {
		return err
	}
	return unmarshalSlice(a.Issuer[:], r, "Issuer")
}

func (a *Amount) Marshal(w io.Writer) error {
	if a.IsNative() && a.num > maxNativeNetwork {
		return fmt.Errorf("Native amount out of range: %s", a.debug())
	}
	_, err := w.Write(a.Bytes())
	return err
}

// JSON returns the amount in the protocol's JSON form.
func (a Amount) JSON() interface{} {
	if a.IsNative() {
		return a.Value.Drops()
	}
	return map[string]interface{}{
		"value":    a.Value.String(),
		"currency": a.Currency.Machine(),
		"issuer":   a.Issuer.String(),
	}
}

// Amount in computer parsable form
func (a Amount) Machine() string {
	switch {
	case a.IsNative():
		return a.Value.String() + "/XRP"
	case a.Issuer.IsZero():
		return a.Value.String() + "/" + a.Currency.Machine()
	default:
		return a.Value.String() + "/" + a.Currency.Machine() + "/" + a.Issuer.String()
	}
}

func (a Amount) String() string {
	return a.Machine()
}
