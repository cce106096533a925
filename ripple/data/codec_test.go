package data

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"

	. "gopkg.in/check.v1"
)

type CodecSuite struct{}

var _ = Suite(&CodecSuite{})

const (
	paymentJSON = `{
	"TransactionType": "Payment",
	"Account": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
	"Destination": "rPMh7Pi9ct699iZUTWaytJUoHcJ7cgyziK",
	"Amount": "1000000",
	"Fee": "12",
	"Sequence": 1,
	"Flags": 2147483648,
	"SigningPubKey": "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020",
	"TxnSignature": "30450221009080D77D184C800E0E0156A52205A43D28080FD44AB10C40BCD9FB068CBC5BE90220134DADA439A60181F7E79E8D42CE777785649A18A1B6F6B57243D5C982B3594F",
	"hash": "ignored"
}`
	paymentBlob    = "120000228000000024000000016140000000000F424068400000000000000C73210330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020744730450221009080D77D184C800E0E0156A52205A43D28080FD44AB10C40BCD9FB068CBC5BE90220134DADA439A60181F7E79E8D42CE777785649A18A1B6F6B57243D5C982B3594F8114B5F762798A53D543A014CAF8B297CFF8F2F937E88314F51DFC2A09D62CBBA1DFBDD4691DAC96AD98B90F"
	paymentID      = "0E608D626CD0B70106276DF00F24B2D38653A98BFB73FD6CE329B347A6E4A5AF"
	paymentSigning = "2B7BE44C6C718D5750AC6E5A80C781DAE3188AF38059AA9BD5A166F192A0F6CA"
)

func parseJSON(c *C, s string) map[string]interface{} {
	d := json.NewDecoder(strings.NewReader(s))
	d.UseNumber()
	var obj map[string]interface{}
	c.Assert(d.Decode(&obj), IsNil)
	return obj
}

func (s *CodecSuite) TestPaymentFixture(c *C) {
	tx := parseJSON(c, paymentJSON)
	blob, err := EncodeObject(tx, false)
	c.Assert(err, IsNil)
	c.Check(string(b2h(blob)), Equals, paymentBlob)
	c.Check(HashWithPrefix(HP_TRANSACTION_ID, blob).String(), Equals, paymentID)

	signing, err := EncodeObject(tx, true)
	c.Assert(err, IsNil)
	c.Check(len(signing), Equals, len(blob)-2-71)
	c.Check(HashWithPrefix(HP_TRANSACTION_SIGN, signing).String(), Equals, paymentSigning)
}

func (s *CodecSuite) TestPaymentDecode(c *C) {
	blob, err := hex.DecodeString(paymentBlob)
	c.Assert(err, IsNil)
	obj, err := DecodeObject(blob)
	c.Assert(err, IsNil)
	c.Check(obj["TransactionType"], Equals, "Payment")
	c.Check(obj["Flags"], Equals, json.Number("2147483648"))
	c.Check(obj["Sequence"], Equals, json.Number("1"))
	c.Check(obj["Amount"], Equals, "1000000")
	c.Check(obj["Fee"], Equals, "12")
	c.Check(obj["Account"], Equals, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
	c.Check(obj["Destination"], Equals, "rPMh7Pi9ct699iZUTWaytJUoHcJ7cgyziK")

	again, err := EncodeObject(obj, false)
	c.Assert(err, IsNil)
	c.Check(again, DeepEquals, blob)
}

// OfferCreate 73734B61... as published on mainnet.
const (
	offerJSON = `{
	"Account": "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys",
	"Expiration": 595640108,
	"Fee": "10",
	"Flags": 524288,
	"OfferSequence": 1752791,
	"Sequence": 1752792,
	"SigningPubKey": "03EE83BB432547885C219634A1BC407A9DB0474145D69737D09CCDC63E1DEE7FE3",
	"TakerGets": "15000000000",
	"TakerPays": {"currency": "USD", "issuer": "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B", "value": "7072.8"},
	"TransactionType": "OfferCreate",
	"TxnSignature": "30440220143759437C04F7B61F012563AFE90D8DAFC46E86035E1D965A9CED282C97D4CE02204CFD241E86F17E011298FC1A39B63386C74306A5DE047E213B0F29EFA4571C2C"
}`
	offerBlob    = "120007220008000024001ABED82A2380BF2C2019001ABED764D55920AC9391400000000000000000000000000055534400000000000A20B3C85F482532A9578DBB3950B85CA06594D165400000037E11D60068400000000000000A732103EE83BB432547885C219634A1BC407A9DB0474145D69737D09CCDC63E1DEE7FE3744630440220143759437C04F7B61F012563AFE90D8DAFC46E86035E1D965A9CED282C97D4CE02204CFD241E86F17E011298FC1A39B63386C74306A5DE047E213B0F29EFA4571C2C8114DD76483FACDEE26E60D8A586BB58D09F27045C46"
	offerID      = "73734B611DDA23D3F5F62E20A173B78AB8406AC5015094DA53F53D39B9EDB06C"
	offerSigning = "1FB30303CC3F925422785D985D588F043C4D8C4E3896B95329B44B80626E1A81"
)

func (s *CodecSuite) TestOfferCreateFromNetwork(c *C) {
	tx := parseJSON(c, offerJSON)
	blob, err := EncodeObject(tx, false)
	c.Assert(err, IsNil)
	c.Check(string(b2h(blob)), Equals, offerBlob)
	c.Check(HashWithPrefix(HP_TRANSACTION_ID, blob).String(), Equals, offerID)

	signing, err := EncodeObject(tx, true)
	c.Assert(err, IsNil)
	c.Check(HashWithPrefix(HP_TRANSACTION_SIGN, signing).String(), Equals, offerSigning)

	obj, err := DecodeObject(blob)
	c.Assert(err, IsNil)
	c.Check(obj["TransactionType"], Equals, "OfferCreate")
	c.Check(obj["Account"], Equals, "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys")
	c.Check(obj["TakerGets"], Equals, "15000000000")
	again, err := EncodeObject(obj, false)
	c.Assert(err, IsNil)
	c.Check(again, DeepEquals, blob)
}

const metadataJSON = `{
	"TransactionIndex": 4,
	"TransactionResult": "tesSUCCESS",
	"DeliveredAmount": {"value": "0.0001", "currency": "USD", "issuer": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"},
	"AffectedNodes": [
		{"ModifiedNode": {
			"LedgerEntryType": "RippleState",
			"LedgerIndex": "1A842CA909943753BD4EC8BA948D4D9D63AD53ADFCB4518768DAA84A2183D2F0",
			"PreviousTxnID": "0E608D626CD0B70106276DF00F24B2D38653A98BFB73FD6CE329B347A6E4A5AF",
			"PreviousTxnLgrSeq": 70000,
			"FinalFields": {
				"Balance": {"value": "-12.5e-20", "currency": "USD", "issuer": "rrrrrrrrrrrrrrrrrrrrBZbvji"},
				"Flags": 131072,
				"LowNode": "0000000000000000",
				"HighNode": "00000000000000A1"
			},
			"PreviousFields": {
				"Balance": {"value": "0", "currency": "USD", "issuer": "rrrrrrrrrrrrrrrrrrrrBZbvji"}
			}
		}},
		{"CreatedNode": {
			"LedgerEntryType": "DirectoryNode",
			"LedgerIndex": "D8120FC732737A2CF2E9968FDF3797A43B457F2A81AA06D2653171A1EA635204",
			"NewFields": {
				"Owner": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
				"RootIndex": "D8120FC732737A2CF2E9968FDF3797A43B457F2A81AA06D2653171A1EA635204",
				"Indexes": [
					"1A842CA909943753BD4EC8BA948D4D9D63AD53ADFCB4518768DAA84A2183D2F0",
					"0E608D626CD0B70106276DF00F24B2D38653A98BFB73FD6CE329B347A6E4A5AF"
				]
			}
		}}
	]
}`

func (s *CodecSuite) TestMetadataRoundTrip(c *C) {
	meta := parseJSON(c, metadataJSON)
	blob, err := EncodeObject(meta, false)
	c.Assert(err, IsNil)

	decoded, err := DecodeObject(blob)
	c.Assert(err, IsNil)
	c.Check(decoded["TransactionResult"], Equals, "tesSUCCESS")
	c.Check(decoded["TransactionIndex"], Equals, json.Number("4"))
	nodes, ok := decoded["AffectedNodes"].([]interface{})
	c.Assert(ok, Equals, true)
	c.Assert(nodes, HasLen, 2)
	modified := nodes[0].(map[string]interface{})["ModifiedNode"].(map[string]interface{})
	c.Check(modified["LedgerEntryType"], Equals, "RippleState")
	c.Check(modified["FinalFields"].(map[string]interface{})["HighNode"], Equals, "00000000000000A1")

	again, err := EncodeObject(decoded, false)
	c.Assert(err, IsNil)
	c.Check(again, DeepEquals, blob)
}

func (s *CodecSuite) TestPathsRoundTrip(c *C) {
	tx := parseJSON(c, `{
		"TransactionType": "Payment",
		"Account": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		"Destination": "rPMh7Pi9ct699iZUTWaytJUoHcJ7cgyziK",
		"Amount": {"value": "1", "currency": "USD", "issuer": "rPMh7Pi9ct699iZUTWaytJUoHcJ7cgyziK"},
		"SendMax": "1200000",
		"Paths": [
			[{"currency": "USD", "issuer": "rPMh7Pi9ct699iZUTWaytJUoHcJ7cgyziK"}],
			[{"account": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"}, {"currency": "EUR"}]
		],
		"Memos": [{"Memo": {"MemoType": "6E6F7465", "MemoData": ""}}]
	}`)
	blob, err := EncodeObject(tx, false)
	c.Assert(err, IsNil)
	decoded, err := DecodeObject(blob)
	c.Assert(err, IsNil)
	paths := decoded["Paths"].([]interface{})
	c.Assert(paths, HasLen, 2)
	c.Check(paths[1].([]interface{})[1], DeepEquals, map[string]interface{}{"currency": "EUR"})
	c.Check(decoded["SendMax"], Equals, "1200000")

	again, err := EncodeObject(decoded, false)
	c.Assert(err, IsNil)
	c.Check(again, DeepEquals, blob)
}

func (s *CodecSuite) TestFieldOrderIndependent(c *C) {
	a, err := EncodeObject(map[string]interface{}{"Sequence": 1, "Fee": "10", "TransactionType": "AccountSet"}, false)
	c.Assert(err, IsNil)
	b, err := EncodeObject(map[string]interface{}{"TransactionType": "AccountSet", "Sequence": 1, "Fee": "10"}, false)
	c.Assert(err, IsNil)
	c.Check(a, DeepEquals, b)
	c.Check(string(b2h(a)), Equals, "120003240000000168400000000000000A")
}

func (s *CodecSuite) TestVariableLengthFields(c *C) {
	for _, length := range []int{0, 1, 192, 193, 12480, 12481} {
		value := strings.Repeat("AB", length)
		b, err := EncodeField("Domain", value)
		c.Assert(err, IsNil, Commentf("%d", length))
		obj, err := DecodeObject(b)
		c.Assert(err, IsNil, Commentf("%d", length))
		c.Check(obj["Domain"], Equals, value, Commentf("%d", length))
	}
	_, err := EncodeField("Domain", strings.Repeat("AB", maxVariableLength+1))
	c.Check(errors.Is(err, ErrSerialization), Equals, true)
}

func checkSerializationError(c *C, err error, field string) {
	c.Assert(err, NotNil)
	c.Check(errors.Is(err, ErrSerialization), Equals, true, Commentf("%v", err))
	var se *SerializationError
	c.Assert(errors.As(err, &se), Equals, true)
	c.Check(se.Field, Equals, field)
}

func (s *CodecSuite) TestEncodeErrors(c *C) {
	_, err := EncodeObject(map[string]interface{}{"Foo": "1"}, false)
	checkSerializationError(c, err, "Foo")

	_, err = EncodeObject(map[string]interface{}{"Sequence": json.Number("-1")}, false)
	checkSerializationError(c, err, "Sequence")

	_, err = EncodeObject(map[string]interface{}{"Sequence": json.Number("4294967296")}, false)
	checkSerializationError(c, err, "Sequence")

	_, err = EncodeObject(map[string]interface{}{"Flags": -1}, false)
	checkSerializationError(c, err, "Flags")

	_, err = EncodeObject(map[string]interface{}{"Amount": "100000000000000001"}, false)
	checkSerializationError(c, err, "Amount")

	_, err = EncodeObject(map[string]interface{}{"Account": "rBad"}, false)
	checkSerializationError(c, err, "Account")
	c.Check(errors.Is(err, ErrInvalidIdentifier), Equals, true)

	_, err = EncodeObject(map[string]interface{}{"TransactionType": "Teleport"}, false)
	checkSerializationError(c, err, "TransactionType")

	_, err = EncodeObject(map[string]interface{}{"Memos": []interface{}{
		map[string]interface{}{"Memo": map[string]interface{}{"MemoType": "XYZ"}},
	}}, false)
	checkSerializationError(c, err, "Memos.0.Memo.MemoType")

	_, err = EncodeObject(map[string]interface{}{"IndexNext": "12345678901234567"}, false)
	checkSerializationError(c, err, "IndexNext")
}

func (s *CodecSuite) TestLimits(c *C) {
	max, err := EncodeObject(map[string]interface{}{"Amount": "100000000000000000", "Sequence": json.Number("4294967295")}, false)
	c.Assert(err, IsNil)
	c.Check(string(b2h(max)), Equals, "24FFFFFFFF61416345785D8A0000")

	obj, err := DecodeObject(max)
	c.Assert(err, IsNil)
	c.Check(obj["Amount"], Equals, "100000000000000000")
	c.Check(obj["Sequence"], Equals, json.Number("4294967295"))
}

func (s *CodecSuite) TestDecodeErrors(c *C) {
	blob, err := hex.DecodeString(paymentBlob)
	c.Assert(err, IsNil)
	_, err = DecodeObject(blob[:len(blob)-3])
	c.Check(errors.Is(err, ErrSerialization), Equals, true)

	_, err = DecodeObject([]byte{0xE1})
	c.Check(errors.Is(err, ErrSerialization), Equals, true)

	_, err = DecodeObject([]byte{0x2F, 0, 0, 0, 1})
	c.Check(err, ErrorMatches, ".*unknown field.*")
}

func (s *CodecSuite) TestTransactionNode(c *C) {
	blob, err := hex.DecodeString(paymentBlob)
	c.Assert(err, IsNil)
	meta, err := EncodeObject(map[string]interface{}{"TransactionIndex": 0, "TransactionResult": "tesSUCCESS"}, false)
	c.Assert(err, IsNil)

	var payload bytes.Buffer
	c.Assert(writeVariableLength(&payload, blob), IsNil)
	c.Assert(writeVariableLength(&payload, meta), IsNil)

	tx, m, err := DecodeTransactionNode(payload.Bytes())
	c.Assert(err, IsNil)
	c.Check(tx["TransactionType"], Equals, "Payment")
	c.Check(m["TransactionResult"], Equals, "tesSUCCESS")

	_, _, err = DecodeTransactionNode(append(payload.Bytes(), 0))
	c.Check(errors.Is(err, ErrSerialization), Equals, true)
}
