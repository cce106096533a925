package ledger

import (
	"fmt"
	"math/big"

	"github.com/anyswap/ripple-ledger-core/common"
	"github.com/anyswap/ripple-ledger-core/ripple/data"
)

// Header is the part of a ledger committed to by its hash.
type Header struct {
	LedgerSequence      uint32
	TotalCoins          *big.Int
	ParentHash          data.Hash256
	TransactionHash     data.Hash256
	AccountHash         data.Hash256
	ParentCloseTime     uint32
	CloseTime           uint32
	CloseTimeResolution uint8
	CloseFlags          uint8

	// Hash is the ledger hash claimed by the source, nil if it had none.
	Hash *data.Hash256
}

// field looks name up under each of its spellings.
func field(obj map[string]interface{}, names ...string) (interface{}, bool) {
	for _, name := range names {
		if v, ok := obj[name]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func parseHash(obj map[string]interface{}, names ...string) (data.Hash256, error) {
	v, ok := field(obj, names...)
	if !ok {
		return data.Hash256{}, fmt.Errorf("missing %s", names[0])
	}
	s, ok := v.(string)
	if !ok {
		return data.Hash256{}, fmt.Errorf("%s is not a hex string", names[0])
	}
	h, err := data.NewHash256(s)
	if err != nil {
		return data.Hash256{}, fmt.Errorf("%s: %w", names[0], err)
	}
	return *h, nil
}

func parseUint32(obj map[string]interface{}, names ...string) (uint32, error) {
	v, ok := field(obj, names...)
	if !ok {
		return 0, fmt.Errorf("missing %s", names[0])
	}
	u, err := data.ParseUint32(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", names[0], err)
	}
	return u, nil
}

func parseUint8(obj map[string]interface{}, name string, required bool) (uint8, error) {
	v, ok := field(obj, name)
	if !ok {
		if required {
			return 0, fmt.Errorf("missing %s", name)
		}
		return 0, nil
	}
	u, err := data.ParseUint8(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return u, nil
}

// ParseHeader reads the header fields of a ledger JSON object. close_flags
// defaults to zero when absent.
func ParseHeader(obj map[string]interface{}) (*Header, error) {
	var (
		h   Header
		err error
	)
	if h.LedgerSequence, err = parseUint32(obj, "ledger_index", "seqNum"); err != nil {
		return nil, err
	}
	coins, ok := field(obj, "total_coins", "totalCoins")
	if !ok {
		return nil, fmt.Errorf("missing total_coins")
	}
	if h.TotalCoins, err = common.GetBigIntFromStr(fmt.Sprint(coins)); err != nil {
		return nil, fmt.Errorf("total_coins: %w", err)
	}
	if h.TotalCoins.BitLen() > 64 {
		return nil, fmt.Errorf("total_coins %v overflows 64 bits", h.TotalCoins)
	}
	if h.ParentHash, err = parseHash(obj, "parent_hash"); err != nil {
		return nil, err
	}
	if h.TransactionHash, err = parseHash(obj, "transaction_hash"); err != nil {
		return nil, err
	}
	if h.AccountHash, err = parseHash(obj, "account_hash"); err != nil {
		return nil, err
	}
	if h.ParentCloseTime, err = parseUint32(obj, "parent_close_time"); err != nil {
		return nil, err
	}
	if h.CloseTime, err = parseUint32(obj, "close_time"); err != nil {
		return nil, err
	}
	if h.CloseTimeResolution, err = parseUint8(obj, "close_time_resolution", true); err != nil {
		return nil, err
	}
	if h.CloseFlags, err = parseUint8(obj, "close_flags", false); err != nil {
		return nil, err
	}
	if _, ok := field(obj, "hash", "ledger_hash"); ok {
		declared, err := parseHash(obj, "hash", "ledger_hash")
		if err != nil {
			return nil, err
		}
		h.Hash = &declared
	}
	return &h, nil
}

func (h *Header) serialize() (*data.Serializer, error) {
	s := data.NewSerializer().AppendUint32(h.LedgerSequence)
	if err := s.AppendBigUint64(h.TotalCoins); err != nil {
		return nil, fmt.Errorf("total_coins: %w", err)
	}
	s.AppendHash256(h.ParentHash).
		AppendHash256(h.TransactionHash).
		AppendHash256(h.AccountHash).
		AppendUint32(h.ParentCloseTime).
		AppendUint32(h.CloseTime).
		AppendUint8(h.CloseTimeResolution).
		AppendUint8(h.CloseFlags)
	return s, nil
}

// LedgerHash returns SHA512Half(LWR || header fields) in canonical order.
func LedgerHash(h *Header) (data.Hash256, error) {
	s, err := h.serialize()
	if err != nil {
		return data.Hash256{}, err
	}
	return s.Hash(data.HP_LEDGER_MASTER), nil
}
