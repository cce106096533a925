// Package signer signs transactions with keys derived from a secret and
// verifies signed transaction blobs.
package signer

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anyswap/ripple-ledger-core/log"
	"github.com/anyswap/ripple-ledger-core/ripple/crypto"
	"github.com/anyswap/ripple-ledger-core/ripple/data"
)

// SignedTransaction is the submittable blob and its transaction id, both
// upper case hex.
type SignedTransaction struct {
	SignedTransaction string `json:"signedTransaction"`
	Id                string `json:"id"`
}

// Wallet is the account a secret controls.
type Wallet struct {
	Address   string `json:"address"`
	PublicKey string `json:"publicKey"`
}

// secp256k1 accounts sign with the first key of the family.
var accountSequence uint32

// Sign parses txJSON and signs it with the key derived from secret.
func Sign(txJSON string, secret string) (*SignedTransaction, error) {
	dec := json.NewDecoder(strings.NewReader(txJSON))
	dec.UseNumber()
	var tx map[string]interface{}
	if err := dec.Decode(&tx); err != nil {
		return nil, &ValidationError{Field: "txJSON", Err: err}
	}
	if tx == nil {
		return nil, invalid("txJSON", "not an object")
	}
	return SignObject(tx, secret)
}

// SignObject signs a parsed transaction. tx itself is not modified. A
// SigningPubKey already present is kept.
func SignObject(tx map[string]interface{}, secret string) (*SignedTransaction, error) {
	if err := validateTransaction(tx); err != nil {
		return nil, err
	}
	key, err := parseSecret(secret)
	if err != nil {
		return nil, err
	}

	signed := make(map[string]interface{}, len(tx)+2)
	for k, v := range tx {
		signed[k] = v
	}
	if _, ok := signed["SigningPubKey"]; !ok {
		signed["SigningPubKey"] = strings.ToUpper(hex.EncodeToString(key.Public(&accountSequence)))
	}

	signing, err := data.EncodeObject(signed, true)
	if err != nil {
		return nil, fmt.Errorf("encode signing data: %w", err)
	}
	hash := data.HashWithPrefix(data.HP_TRANSACTION_SIGN, signing)
	msg := append(data.HP_TRANSACTION_SIGN.Bytes(), signing...)
	signature, err := crypto.Sign(key.Private(&accountSequence), hash[:], msg)
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	signed["TxnSignature"] = strings.ToUpper(hex.EncodeToString(signature))

	blob, err := data.EncodeObject(signed, false)
	if err != nil {
		return nil, fmt.Errorf("encode signed transaction: %w", err)
	}
	id := data.HashWithPrefix(data.HP_TRANSACTION_ID, blob)
	log.Debug("transaction signed", "account", signed["Account"], "type", signed["TransactionType"], "id", id)
	return &SignedTransaction{
		SignedTransaction: strings.ToUpper(hex.EncodeToString(blob)),
		Id:                id.String(),
	}, nil
}

// SigningHash returns the hash a signature over tx commits to.
func SigningHash(tx map[string]interface{}) (data.Hash256, error) {
	signing, err := data.EncodeObject(tx, true)
	if err != nil {
		return data.Hash256{}, err
	}
	return data.HashWithPrefix(data.HP_TRANSACTION_SIGN, signing), nil
}

// Verify decodes a signed blob and checks its TxnSignature against its
// SigningPubKey. The decoded transaction is returned with a hash field.
func Verify(blob string) (map[string]interface{}, error) {
	b, err := hex.DecodeString(blob)
	if err != nil {
		return nil, &ValidationError{Field: "blob", Err: err}
	}
	tx, err := data.DecodeObject(b)
	if err != nil {
		return nil, err
	}
	pub, err := hexField(tx, "SigningPubKey")
	if err != nil {
		return nil, err
	}
	signature, err := hexField(tx, "TxnSignature")
	if err != nil {
		return nil, err
	}
	signing, err := data.EncodeObject(tx, true)
	if err != nil {
		return nil, err
	}
	hash := data.HashWithPrefix(data.HP_TRANSACTION_SIGN, signing)
	msg := append(data.HP_TRANSACTION_SIGN.Bytes(), signing...)
	ok, err := crypto.Verify(pub, hash[:], msg, signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSignature, err)
	}
	if !ok {
		return nil, ErrBadSignature
	}
	if again, err := data.EncodeObject(tx, false); err != nil || !bytes.Equal(again, b) {
		return nil, invalid("blob", "not in canonical form")
	}
	tx["hash"] = data.HashWithPrefix(data.HP_TRANSACTION_ID, b).String()
	return tx, nil
}

func hexField(tx map[string]interface{}, name string) ([]byte, error) {
	s, ok := tx[name].(string)
	if !ok || s == "" {
		return nil, invalid("blob", "missing %s", name)
	}
	return hex.DecodeString(s)
}

// DeriveWallet returns the address and public key secret controls.
func DeriveWallet(secret string) (*Wallet, error) {
	key, err := parseSecret(secret)
	if err != nil {
		return nil, err
	}
	id, err := crypto.AccountId(key, &accountSequence)
	if err != nil {
		return nil, err
	}
	return &Wallet{
		Address:   id.String(),
		PublicKey: strings.ToUpper(hex.EncodeToString(key.Public(&accountSequence))),
	}, nil
}
