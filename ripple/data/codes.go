package data

import "fmt"

// Look up tables for the enumerated fields that appear by name in JSON.

type LedgerEntryType uint16
type TransactionType uint16
type TransactionResult uint8

const (
	// LedgerEntryType values come from rippled's "LedgerFormats.h"
	NFTOKEN_OFFER    LedgerEntryType = 0x37 // '7'
	CHECK            LedgerEntryType = 0x43 // 'C'
	NEGATIVE_UNL     LedgerEntryType = 0x4e // 'N'
	NFTOKEN_PAGE     LedgerEntryType = 0x50 // 'P'
	SIGNER_LIST      LedgerEntryType = 0x53 // 'S'
	TICKET           LedgerEntryType = 0x54 // 'T'
	ACCOUNT_ROOT     LedgerEntryType = 0x61 // 'a'
	DIRECTORY        LedgerEntryType = 0x64 // 'd'
	AMENDMENTS       LedgerEntryType = 0x66 // 'f'
	LEDGER_HASHES    LedgerEntryType = 0x68 // 'h'
	OFFER            LedgerEntryType = 0x6f // 'o'
	DEPOSIT_PRE_AUTH LedgerEntryType = 0x70 // 'p'
	RIPPLE_STATE     LedgerEntryType = 0x72 // 'r'
	FEE_SETTINGS     LedgerEntryType = 0x73 // 's'
	ESCROW           LedgerEntryType = 0x75 // 'u'
	PAY_CHANNEL      LedgerEntryType = 0x78 // 'x'

	// TransactionType values come from rippled's "TxFormats.h"
	PAYMENT         TransactionType = 0
	ESCROW_CREATE   TransactionType = 1
	ESCROW_FINISH   TransactionType = 2
	ACCOUNT_SET     TransactionType = 3
	ESCROW_CANCEL   TransactionType = 4
	SET_REGULAR_KEY TransactionType = 5
	NICKNAME_SET    TransactionType = 6
	OFFER_CREATE    TransactionType = 7
	OFFER_CANCEL    TransactionType = 8
	CONTRACT        TransactionType = 9
	TICKET_CREATE   TransactionType = 10
	TICKET_CANCEL   TransactionType = 11
	SIGNER_LIST_SET TransactionType = 12
	PAYCHAN_CREATE  TransactionType = 13
	PAYCHAN_FUND    TransactionType = 14
	PAYCHAN_CLAIM   TransactionType = 15
	CHECK_CREATE    TransactionType = 16
	CHECK_CASH      TransactionType = 17
	CHECK_CANCEL    TransactionType = 18
	DEPOSIT_PREAUTH TransactionType = 19
	TRUST_SET       TransactionType = 20
	ACCOUNT_DELETE  TransactionType = 21
	AMENDMENT       TransactionType = 100
	SET_FEE         TransactionType = 101
	UNL_MODIFY      TransactionType = 102
)

var ledgerEntryNames = map[LedgerEntryType]string{
	ACCOUNT_ROOT:     "AccountRoot",
	DIRECTORY:        "DirectoryNode",
	AMENDMENTS:       "Amendments",
	LEDGER_HASHES:    "LedgerHashes",
	OFFER:            "Offer",
	RIPPLE_STATE:     "RippleState",
	FEE_SETTINGS:     "FeeSettings",
	ESCROW:           "Escrow",
	SIGNER_LIST:      "SignerList",
	TICKET:           "Ticket",
	PAY_CHANNEL:      "PayChannel",
	CHECK:            "Check",
	DEPOSIT_PRE_AUTH: "DepositPreauth",
	NEGATIVE_UNL:     "NegativeUNL",
	NFTOKEN_PAGE:     "NFTokenPage",
	NFTOKEN_OFFER:    "NFTokenOffer",
}

var txNames = map[TransactionType]string{
	PAYMENT:         "Payment",
	ESCROW_CREATE:   "EscrowCreate",
	ESCROW_FINISH:   "EscrowFinish",
	ACCOUNT_SET:     "AccountSet",
	ESCROW_CANCEL:   "EscrowCancel",
	SET_REGULAR_KEY: "SetRegularKey",
	NICKNAME_SET:    "NickNameSet",
	OFFER_CREATE:    "OfferCreate",
	OFFER_CANCEL:    "OfferCancel",
	CONTRACT:        "Contract",
	TICKET_CREATE:   "TicketCreate",
	TICKET_CANCEL:   "TicketCancel",
	SIGNER_LIST_SET: "SignerListSet",
	PAYCHAN_CREATE:  "PaymentChannelCreate",
	PAYCHAN_FUND:    "PaymentChannelFund",
	PAYCHAN_CLAIM:   "PaymentChannelClaim",
	CHECK_CREATE:    "CheckCreate",
	CHECK_CASH:      "CheckCash",
	CHECK_CANCEL:    "CheckCancel",
	DEPOSIT_PREAUTH: "DepositPreauth",
	TRUST_SET:       "TrustSet",
	ACCOUNT_DELETE:  "AccountDelete",
	AMENDMENT:       "EnableAmendment",
	SET_FEE:         "SetFee",
	UNL_MODIFY:      "UNLModify",
}

// DO NOT CHANGE THESE NUMBERS: They appear in ledger meta data.
var resultNames = map[TransactionResult]string{
	0:   "tesSUCCESS",
	100: "tecCLAIM",
	101: "tecPATH_PARTIAL",
	102: "tecUNFUNDED_ADD",
	103: "tecUNFUNDED_OFFER",
	104: "tecUNFUNDED_PAYMENT",
	105: "tecFAILED_PROCESSING",
	121: "tecDIR_FULL",
	122: "tecINSUF_RESERVE_LINE",
	123: "tecINSUF_RESERVE_OFFER",
	124: "tecNO_DST",
	125: "tecNO_DST_INSUF_XRP",
	126: "tecNO_LINE_INSUF_RESERVE",
	127: "tecNO_LINE_REDUNDANT",
	128: "tecPATH_DRY",
	129: "tecUNFUNDED",
	130: "tecNO_ALTERNATIVE_KEY",
	131: "tecNO_REGULAR_KEY",
	132: "tecOWNERS",
	133: "tecNO_ISSUER",
	134: "tecNO_AUTH",
	135: "tecNO_LINE",
	136: "tecINSUFF_FEE",
	137: "tecFROZEN",
	138: "tecNO_TARGET",
	139: "tecNO_PERMISSION",
	140: "tecNO_ENTRY",
	141: "tecINSUFFICIENT_RESERVE",
	142: "tecNEED_MASTER_KEY",
	143: "tecDST_TAG_NEEDED",
	144: "tecINTERNAL",
	145: "tecOVERSIZE",
	146: "tecCRYPTOCONDITION_ERROR",
	147: "tecINVARIANT_FAILED",
	148: "tecEXPIRED",
	149: "tecDUPLICATE",
	150: "tecKILLED",
	151: "tecHAS_OBLIGATIONS",
	152: "tecTOO_SOON",
}

var (
	ledgerEntryTypes   = make(map[string]LedgerEntryType)
	transactionTypes   = make(map[string]TransactionType)
	transactionResults = make(map[string]TransactionResult)
)

func init() {
	for t, name := range ledgerEntryNames {
		ledgerEntryTypes[name] = t
	}
	for t, name := range txNames {
		transactionTypes[name] = t
	}
	for r, name := range resultNames {
		transactionResults[name] = r
	}
}

func (t LedgerEntryType) String() string {
	if name, ok := ledgerEntryNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", t)
}

func (t TransactionType) String() string {
	if name, ok := txNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", t)
}

func (r TransactionResult) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", r)
}

// GetTransactionType looks up a transaction type by its JSON name.
func GetTransactionType(name string) (TransactionType, bool) {
	t, ok := transactionTypes[name]
	return t, ok
}

// GetLedgerEntryType looks up a ledger entry type by its JSON name.
func GetLedgerEntryType(name string) (LedgerEntryType, bool) {
	t, ok := ledgerEntryTypes[name]
	return t, ok
}

// GetTransactionResult looks up a result code by its JSON name.
func GetTransactionResult(name string) (TransactionResult, bool) {
	r, ok := transactionResults[name]
	return r, ok
}
