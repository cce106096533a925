package data

import (
	"encoding/hex"
	"fmt"
	"regexp"
)

type CurrencyType uint8

const (
	CT_XRP      CurrencyType = 0
	CT_STANDARD CurrencyType = 1
	CT_HEX      CurrencyType = 2
)

// Currency is the 160 bit currency code. A three character code sits at
// bytes 12..14, every other byte zero. The all zero code is XRP.
type Currency [20]byte

var zeroCurrency Currency

var currencyRegex = regexp.MustCompile(`^[A-Za-z0-9?!@#$%^&*<>(){}\[\]|]{3}$`)

// NewCurrency accepts a three character code or 40 hex characters.
// "XRP" maps to the native currency.
func NewCurrency(s string) (Currency, error) {
	var currency Currency
	switch {
	case s == "XRP" || s == "":
		return currency, nil
	case len(s) == 3:
		if !currencyRegex.MatchString(s) {
			return currency, &InvalidCurrencyError{Input: s, Err: fmt.Errorf("bad currency code")}
		}
		copy(currency[12:], []byte(s))
		return currency, nil
	case len(s) == 40:
		b, err := hex.DecodeString(s)
		if err != nil {
			return currency, &InvalidCurrencyError{Input: s, Err: err}
		}
		copy(currency[:], b)
		return currency, nil
	default:
		return currency, &InvalidCurrencyError{Input: s, Err: fmt.Errorf("bad currency length %d", len(s))}
	}
}

func (c Currency) Type() CurrencyType {
	if c.IsNative() {
		return CT_XRP
	}
	for i := range c {
		if (i < 12 || i > 14) && c[i] != 0 {
			return CT_HEX
		}
	}
	return CT_STANDARD
}

func (c Currency) IsNative() bool {
	return c == zeroCurrency
}

// IsValid is false for the native currency, which never names a trust line.
func (c Currency) IsValid() bool {
	return !c.IsNative()
}

func (c *Currency) Bytes() []byte {
	if c != nil {
		return c[:]
	}
	return []byte(nil)
}

// Machine returns the currency in a form NewCurrency parses back.
func (c Currency) Machine() string {
	switch {
	case c.IsNative():
		return "XRP"
	case c.Type() == CT_STANDARD && currencyRegex.Match(c[12:15]) && string(c[12:15]) != "XRP":
		return string(c[12:15])
	default:
		return string(b2h(c[:]))
	}
}

func (c Currency) String() string {
	return c.Machine()
}
