package data

import (
	"encoding/json"
	"errors"

	. "gopkg.in/check.v1"
)

type CurrencySuite struct{}

var _ = Suite(&CurrencySuite{})

func (s *CurrencySuite) TestCurrencyTypes(c *C) {
	xrp, err := NewCurrency("XRP")
	c.Assert(err, IsNil)
	c.Assert(xrp.Machine(), Equals, "XRP")
	c.Assert(xrp.Type(), Equals, CT_XRP)
	c.Assert(xrp.IsNative(), Equals, true)
	c.Assert(xrp.IsValid(), Equals, false)

	usd, err := NewCurrency("USD")
	c.Assert(err, IsNil)
	c.Assert(usd.Machine(), Equals, "USD")
	c.Assert(usd.String(), Equals, "USD")
	c.Assert(usd.Type(), Equals, CT_STANDARD)
	c.Assert(string(b2h(usd[:])), Equals, "0000000000000000000000005553440000000000")

	hex, err := NewCurrency("815841551A748AD2C1F76FF6ECB0CCCD00000000")
	c.Assert(err, IsNil)
	c.Assert(hex.Machine(), Equals, "815841551A748AD2C1F76FF6ECB0CCCD00000000")
	c.Assert(hex.Type(), Equals, CT_HEX)

	// Unprintable
	wtf, err := NewCurrency("0000000000000000000000007F80010000000000")
	c.Assert(err, IsNil)
	c.Assert(wtf.Machine(), Equals, "0000000000000000000000007F80010000000000")
	c.Assert(wtf.Type(), Equals, CT_STANDARD)

	// XRP spelled out in the standard slot is not the native currency
	fake, err := NewCurrency("0000000000000000000000005852500000000000")
	c.Assert(err, IsNil)
	c.Assert(fake.IsNative(), Equals, false)
	c.Assert(fake.Machine(), Equals, "0000000000000000000000005852500000000000")
}

func (s *CurrencySuite) TestBadCurrency(c *C) {
	for _, input := range []string{"US", "USDX", "U D", "ZZ0000000000000000000000005553440000000000", "G000000000000000000000005553440000000000"} {
		_, err := NewCurrency(input)
		c.Check(err, NotNil, Commentf("%q", input))
		c.Check(errors.Is(err, ErrInvalidIdentifier), Equals, true, Commentf("%q", input))
	}
}

type AmountSuite struct{}

var _ = Suite(&AmountSuite{})

const (
	testIssuer      = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	testDestination = "rPMh7Pi9ct699iZUTWaytJUoHcJ7cgyziK"
)

func (s *AmountSuite) TestNative(c *C) {
	for _, input := range []interface{}{"1000000", json.Number("1000000"), int64(1000000)} {
		a, err := NewAmount(input)
		c.Assert(err, IsNil, Commentf("%v", input))
		c.Check(a.IsNative(), Equals, true)
		c.Check(a.JSON(), Equals, "1000000")
		c.Check(string(b2h(a.Bytes())), Equals, "40000000000F4240")
	}
}

func (s *AmountSuite) TestIssued(c *C) {
	a, err := NewAmount(map[string]interface{}{
		"value":    "-1.5",
		"currency": "USD",
		"issuer":   testIssuer,
	})
	c.Assert(err, IsNil)
	c.Check(a.IsNative(), Equals, false)
	c.Check(len(a.Bytes()), Equals, 48)
	c.Check(a.JSON(), DeepEquals, map[string]interface{}{
		"value":    "-1.5",
		"currency": "USD",
		"issuer":   testIssuer,
	})
	c.Check(a.Machine(), Equals, "-1.5/USD/"+testIssuer)

	short, err := NewAmount("-1.5/USD/" + testIssuer)
	c.Assert(err, IsNil)
	c.Check(short.Equals(*a), Equals, true)
}

func (s *AmountSuite) TestBadAmounts(c *C) {
	_, err := NewAmount(map[string]interface{}{"value": "1", "currency": "XRP", "issuer": testIssuer})
	c.Check(err, ErrorMatches, ".*native currency.*")
	_, err = NewAmount(map[string]interface{}{"value": "1", "currency": "USD"})
	c.Check(err, ErrorMatches, "Amount: missing issuer")
	_, err = NewAmount(map[string]interface{}{"value": "1", "currency": "USD", "issuer": "rBad"})
	c.Check(errors.Is(err, ErrInvalidIdentifier), Equals, true)
	_, err = NewAmount(1.5)
	c.Check(err, ErrorMatches, "Bad type: .*")
	_, err = NewAmount("abc")
	c.Check(err, ErrorMatches, "Invalid Number: .*")
}
