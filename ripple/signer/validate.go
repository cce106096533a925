package signer

import (
	"encoding/hex"
	"errors"
	"sort"

	mapset "github.com/deckarep/golang-set"

	"github.com/anyswap/ripple-ledger-core/ripple/crypto"
	"github.com/anyswap/ripple-ledger-core/ripple/data"
)

var requiredFields = mapset.NewSet("TransactionType", "Account")

func validateTransaction(tx map[string]interface{}) error {
	present := mapset.NewSet()
	for name := range tx {
		present.Add(name)
	}
	if missing := requiredFields.Difference(present); missing.Cardinality() > 0 {
		names := make([]string, 0, missing.Cardinality())
		for name := range missing.Iter() {
			names = append(names, name.(string))
		}
		sort.Strings(names)
		return invalid("transaction", "missing required fields %v", names)
	}

	unknown := make([]string, 0)
	for name := range tx {
		if data.IsSerializedField(name) && !data.IsKnownField(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return invalid("transaction", "unknown fields %v", unknown)
	}

	txType, ok := tx["TransactionType"].(string)
	if !ok {
		return invalid("TransactionType", "expected string got %T", tx["TransactionType"])
	}
	if _, ok := data.GetTransactionType(txType); !ok {
		return invalid("TransactionType", "unknown transaction type %s", txType)
	}

	address, ok := tx["Account"].(string)
	if !ok {
		return invalid("Account", "expected address got %T", tx["Account"])
	}
	if _, err := data.NewAccountFromAddress(address); err != nil {
		return &ValidationError{Field: "Account", Err: err}
	}

	if fee, ok := tx["Fee"]; ok {
		amount, err := data.NewAmount(fee)
		if err != nil {
			return &ValidationError{Field: "Fee", Err: err}
		}
		if !amount.IsNative() || amount.IsNegative() {
			return invalid("Fee", "%v is not a positive amount of drops", fee)
		}
	}

	if pub, ok := tx["SigningPubKey"]; ok {
		s, ok := pub.(string)
		if !ok {
			return invalid("SigningPubKey", "expected hex string got %T", pub)
		}
		if _, err := hex.DecodeString(s); err != nil {
			return &ValidationError{Field: "SigningPubKey", Err: err}
		}
	}

	// every remaining field must have a canonical encoding
	if _, err := data.EncodeObject(tx, true); err != nil {
		field := "transaction"
		var se *data.SerializationError
		if errors.As(err, &se) && se.Field != "" {
			field = se.Field
		}
		return &ValidationError{Field: field, Err: err}
	}
	return nil
}

func parseSecret(secret string) (crypto.Key, error) {
	key, err := crypto.NewKeyFromSeed(secret)
	if err != nil {
		return nil, &ValidationError{Field: "secret", Err: err}
	}
	return key, nil
}
