package data

import (
	"bytes"

	. "gopkg.in/check.v1"
)

type FormatSuite struct{}

var _ = Suite(&FormatSuite{})

func (s *FormatSuite) TestVariableLength(c *C) {
	for _, test := range []struct {
		length int
		prefix string
	}{
		{0, "00"},
		{192, "C0"},
		{193, "C100"},
		{12480, "F0FF"},
		{12481, "F10000"},
		{918744, "FED417"},
	} {
		var buf bytes.Buffer
		c.Assert(writeVariableLength(&buf, make([]byte, test.length)), IsNil)
		prefixLength := len(test.prefix) / 2
		c.Check(string(b2h(buf.Bytes()[:prefixLength])), Equals, test.prefix, Commentf("%d", test.length))
		c.Check(buf.Len(), Equals, prefixLength+test.length)

		n, err := readVariableLength(bytes.NewReader(buf.Bytes()))
		c.Assert(err, IsNil)
		c.Check(n, Equals, test.length)
	}

	var buf bytes.Buffer
	c.Check(writeVariableLength(&buf, make([]byte, 918745)), ErrorMatches, "Unsupported Variable Length encoding: 918745")
	_, err := readVariableLength(bytes.NewReader([]byte{0xFF}))
	c.Check(err, ErrorMatches, "Unsupported Variable Length encoding")
	_, err = readVariableLength(bytes.NewReader([]byte{0xC1}))
	c.Check(err, NotNil)
}

func (s *FormatSuite) TestFieldHeaders(c *C) {
	for _, test := range []struct {
		e      enc
		header string
	}{
		{enc{ST_UINT16, 2}, "12"},
		{enc{ST_UINT32, 27}, "201B"},
		{enc{ST_UINT8, 3}, "0310"},
		{enc{ST_UINT8, 16}, "001010"},
		{endOfObject, "E1"},
		{endOfArray, "F1"},
	} {
		var buf bytes.Buffer
		c.Assert(writeEncoding(&buf, test.e), IsNil)
		c.Check(string(b2h(buf.Bytes())), Equals, test.header, Commentf("%s", test.e))

		e, err := readEncoding(bytes.NewReader(buf.Bytes()))
		c.Assert(err, IsNil)
		c.Check(*e, Equals, test.e)
	}
}

func (s *FormatSuite) TestFieldOrder(c *C) {
	c.Check(reverseEncodings["TransactionType"].Priority() < reverseEncodings["Flags"].Priority(), Equals, true)
	c.Check(reverseEncodings["Fee"].Priority() < reverseEncodings["SigningPubKey"].Priority(), Equals, true)
	c.Check(reverseEncodings["Destination"].Priority() < reverseEncodings["TransactionResult"].Priority(), Equals, true)
	c.Check(IsSigningField("TxnSignature"), Equals, true)
	c.Check(IsSigningField("SigningPubKey"), Equals, false)
	c.Check(IsKnownField("Paths"), Equals, true)
	c.Check(IsKnownField("hash"), Equals, false)
}

func (s *FormatSuite) TestHashPrefixes(c *C) {
	c.Check(HP_TRANSACTION_ID.String(), Equals, "TXN")
	c.Check(HP_INNER_NODE.String(), Equals, "MIN")
	c.Check(string(b2h(HP_LEDGER_MASTER.Bytes())), Equals, "4C575200")
	c.Check(NT_ACCOUNT_NODE.String(), Equals, "Account Node")
	c.Check(NodeType(9).String(), Equals, "Unknown")
}

func (s *FormatSuite) TestLimitByteReader(c *C) {
	r := bytes.NewReader([]byte{3, 'a', 'b', 'c', 'd'})
	vr, err := NewVariableByteReader(r)
	c.Assert(err, IsNil)
	c.Check(vr.Len(), Equals, 3)
	b, err := vr.ReadByte()
	c.Assert(err, IsNil)
	c.Check(b, Equals, byte('a'))
	c.Assert(vr.UnreadByte(), IsNil)
	c.Check(vr.Len(), Equals, 3)
	rest := make([]byte, 3)
	c.Assert(unmarshalSlice(rest, vr, "test"), IsNil)
	c.Check(string(rest), Equals, "abc")
	_, err = vr.ReadByte()
	c.Check(err, NotNil)

	_, err = NewVariableByteReader(bytes.NewReader([]byte{5, 'a'}))
	c.Check(err, NotNil)
}
