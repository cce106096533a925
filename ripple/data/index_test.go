package data

import (
	"encoding/json"
	"errors"
	"math/big"

	. "gopkg.in/check.v1"
)

type IndexSuite struct{}

var _ = Suite(&IndexSuite{})

func mustAccount(c *C, address string) Account {
	a, err := NewAccountFromAddress(address)
	c.Assert(err, IsNil)
	return *a
}

func checkKey(c *C, key Hash256, err error, expected string) {
	c.Assert(err, IsNil)
	c.Check(key.String(), Equals, expected)
}

func (s *IndexSuite) TestSingletons(c *C) {
	key, err := DefaultIndexer.AmendmentsKey()
	checkKey(c, key, err, "7DB0788C020F02780A673DC74757F23823FA3014C1866E72CC4CD8B226CD6EF4")
	key, err = DefaultIndexer.FeeSettingsKey()
	checkKey(c, key, err, "4BC50C9B0D8515D3EAAE1E74B29A95804346C491EE1A95BF25E4AAB854A6A651")
	key, err = DefaultIndexer.SkipListKey()
	checkKey(c, key, err, "B4979A36CDC7F3D3D5C31A4EAE2AC7D7209DDA877588B9AFC66799692AB0D66B")
	key, err = DefaultIndexer.NegativeUNLKey()
	checkKey(c, key, err, "2E8A59AA9D3B5B186B0B9E0F62E6C02587CA74A4D778938E957B6357D364B244")
	key, err = DefaultIndexer.SkipListPageKey(70000)
	checkKey(c, key, err, "80FF75BFB4F671EBB41858C316EAF264462435E67D571AEC8C4E26FEB053C13B")
}

func (s *IndexSuite) TestAccountKeys(c *C) {
	key, err := DefaultIndexer.AccountRootKeyFromAddress("rf1BiGeXwwQoi8Z2ueFYTEXSwuJYfV2Jpn")
	checkKey(c, key, err, "13F1A95D7AAB7108D5CE7EEAF504B2894B8C674E6D68499076441C4837282BF8")

	account := mustAccount(c, testIssuer)
	key, err = DefaultIndexer.AccountRootKey(account)
	checkKey(c, key, err, "2B6AC232AA4C4BE41BF49D2459FA4A0347E1B543A4C92FCEE0821C0201E2E9A8")
	key, err = DefaultIndexer.OfferKeyFromAddress(testIssuer, 1)
	checkKey(c, key, err, "4A2D047691A7AE22AA3FF2B46344A31BF01EF24E642D97CE2E6B3ACC20362164")
	key, err = DefaultIndexer.TicketKey(account, 5)
	checkKey(c, key, err, "EE418FDC986F49CF6486E88AC61F4ED64607F134F03B7A525828213AAC066AE2")
	key, err = DefaultIndexer.SignerListKey(account)
	checkKey(c, key, err, "778365D5180F5DF3016817D1F318527AD7410D83F8636CF48C43E8AF72AB49BF")

	root, err := DefaultIndexer.OwnerDirKey(account)
	checkKey(c, root, err, "D8120FC732737A2CF2E9968FDF3797A43B457F2A81AA06D2653171A1EA635204")
	key, err = DefaultIndexer.DirNodeKey(root, 0)
	checkKey(c, key, err, root.String())
	key, err = DefaultIndexer.DirNodeKey(root, 1)
	checkKey(c, key, err, "B001E91B2C4405A56F0BD0F6770A0B3230832C472667DFE9754933CA7F49A4F7")

	escrow, err := DefaultIndexer.EscrowKey(account, 1)
	c.Assert(err, IsNil)
	check, err := DefaultIndexer.CheckKey(account, 1)
	c.Assert(err, IsNil)
	offer, err := DefaultIndexer.OfferKey(account, 1)
	c.Assert(err, IsNil)
	c.Check(escrow == check || escrow == offer || check == offer, Equals, false)
}

func (s *IndexSuite) TestTrustLineKey(c *C) {
	key, err := DefaultIndexer.TrustLineKeyFromAddresses("r3kmLJN5D28dHuH8vZNUZpMC43pEHpaocV", "rMwjYedjc7qqtKYVLiAccJSmCwih4LnE2q", "USD")
	checkKey(c, key, err, "1A842CA909943753BD4EC8BA948D4D9D63AD53ADFCB4518768DAA84A2183D2F0")

	swapped, err := DefaultIndexer.TrustLineKeyFromAddresses("rMwjYedjc7qqtKYVLiAccJSmCwih4LnE2q", "r3kmLJN5D28dHuH8vZNUZpMC43pEHpaocV", "USD")
	checkKey(c, swapped, err, key.String())

	eur, err := DefaultIndexer.TrustLineKeyFromAddresses("r3kmLJN5D28dHuH8vZNUZpMC43pEHpaocV", "rMwjYedjc7qqtKYVLiAccJSmCwih4LnE2q", "EUR")
	c.Assert(err, IsNil)
	c.Check(eur, Not(Equals), key)
}

func (s *IndexSuite) TestInvalidInputs(c *C) {
	_, err := DefaultIndexer.TrustLineKeyFromAddresses(testIssuer, testDestination, "XRP")
	c.Check(errors.Is(err, ErrInvalidIdentifier), Equals, true)
	var ce *InvalidCurrencyError
	c.Check(errors.As(err, &ce), Equals, true)

	_, err = DefaultIndexer.TrustLineKeyFromAddresses(testIssuer, "rNotAnAddress", "USD")
	c.Check(errors.Is(err, ErrInvalidIdentifier), Equals, true)
	var ae *InvalidAccountError
	c.Check(errors.As(err, &ae), Equals, true)

	_, err = DefaultIndexer.AccountRootKeyFromAddress("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTi")
	c.Check(errors.Is(err, ErrInvalidIdentifier), Equals, true)

	_, err = DefaultIndexer.OfferKeyFromAddress("", 1)
	c.Check(errors.Is(err, ErrInvalidIdentifier), Equals, true)
}

func (s *IndexSuite) TestCustomNamespaces(c *C) {
	spaces := map[string]byte{"account": 'a'}
	indexer := NewIndexer(NewNamespaces(spaces))
	spaces["account"] = 'z'

	account := mustAccount(c, testIssuer)
	key, err := indexer.AccountRootKey(account)
	checkKey(c, key, err, "2B6AC232AA4C4BE41BF49D2459FA4A0347E1B543A4C92FCEE0821C0201E2E9A8")

	_, err = indexer.OfferKey(account, 1)
	c.Check(err, ErrorMatches, "unknown ledger namespace: offer")

	space, ok := DefaultNamespaces().Space("rippleState")
	c.Check(ok, Equals, true)
	c.Check(space, Equals, byte('r'))
}

type SerializerSuite struct{}

var _ = Suite(&SerializerSuite{})

func (s *SerializerSuite) TestAppend(c *C) {
	ser := NewSerializer().
		AppendUint8(1).
		AppendUint16(2).
		AppendUint32(3).
		AppendUint64(4)
	c.Check(ser.Hex(), Equals, "010002000000030000000000000004")
	c.Check(ser.Len(), Equals, 15)
	c.Check(ser.Hash(HP_LEDGER_MASTER), Equals, HashWithPrefix(HP_LEDGER_MASTER, ser.Bytes()))
}

func (s *SerializerSuite) TestAppendObject(c *C) {
	ser := NewSerializer()
	c.Assert(ser.AppendObject(parseJSON(c, paymentJSON), false), IsNil)
	c.Check(ser.Hex(), Equals, paymentBlob)
	c.Check(ser.Hash(HP_TRANSACTION_ID).String(), Equals, paymentID)

	ser = NewSerializer()
	c.Assert(ser.AppendObject(parseJSON(c, paymentJSON), true), IsNil)
	c.Check(ser.Hash(HP_TRANSACTION_SIGN).String(), Equals, paymentSigning)

	err := NewSerializer().AppendObject(map[string]interface{}{"Sequence": "x"}, false)
	c.Check(errors.Is(err, ErrSerialization), Equals, true)
}

func (s *SerializerSuite) TestAppendErrors(c *C) {
	ser := NewSerializer()
	c.Check(ser.AppendHexUint64("FFFFFFFFFFFFFFFF"), IsNil)
	c.Check(ser.AppendHexUint64("10000000000000000"), NotNil)
	c.Check(ser.AppendHexHash256("ABCD"), NotNil)
	c.Check(ser.AppendBigUint64(big.NewInt(-1)), NotNil)
	c.Check(ser.AppendVariableLength(make([]byte, maxVariableLength+1)), NotNil)
	c.Check(ser.Hex(), Equals, "FFFFFFFFFFFFFFFF")

	err := ser.AppendField("Sequence", json.Number("-5"))
	c.Check(errors.Is(err, ErrSerialization), Equals, true)
	c.Check(ser.AppendField("Sequence", 5), IsNil)
	c.Check(ser.Hex(), Equals, "FFFFFFFFFFFFFFFF2400000005")
}

func (s *SerializerSuite) TestParseNumbers(c *C) {
	u, err := ParseUint32(json.Number("4294967295"))
	c.Assert(err, IsNil)
	c.Check(u, Equals, uint32(4294967295))
	_, err = ParseUint32("4294967296")
	c.Check(err, NotNil)
	b, err := ParseUint8(float64(10))
	c.Assert(err, IsNil)
	c.Check(b, Equals, uint8(10))
	_, err = ParseUint8(256)
	c.Check(err, NotNil)
}
