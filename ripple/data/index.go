package data

import (
	"fmt"
)

// Namespaces maps ledger entity names to the space byte that keeps their
// keys apart. The table is copied on construction and never changes.
type Namespaces struct {
	spaces map[string]byte
}

var defaultSpaces = map[string]byte{
	"account":        'a',
	"dirNode":        'd',
	"generatorMap":   'g',
	"rippleState":    'r',
	"offer":          'o', // Entry for an offer
	"ownerDir":       'O', // Directory of things owned by an account
	"bookDir":        'B', // Directory of order books
	"contract":       'c',
	"skipList":       's',
	"amendment":      'f',
	"feeSettings":    'e',
	"escrow":         'u',
	"ticket":         'T',
	"signerList":     'S',
	"paychan":        'x',
	"check":          'C',
	"depositPreauth": 'p',
	"negativeUNL":    'N',
}

// DefaultNamespaces returns the protocol's namespace table.
func DefaultNamespaces() Namespaces {
	return NewNamespaces(defaultSpaces)
}

func NewNamespaces(spaces map[string]byte) Namespaces {
	copied := make(map[string]byte, len(spaces))
	for name, space := range spaces {
		copied[name] = space
	}
	return Namespaces{spaces: copied}
}

func (n Namespaces) Space(name string) (byte, bool) {
	space, ok := n.spaces[name]
	return space, ok
}

// Indexer derives ledger entity keys: SHA512Half(0x00 || space || fields).
type Indexer struct {
	namespaces Namespaces
}

func NewIndexer(namespaces Namespaces) *Indexer {
	return &Indexer{namespaces: namespaces}
}

var DefaultIndexer = NewIndexer(DefaultNamespaces())

func (i *Indexer) serializer(namespace string) (*Serializer, error) {
	space, ok := i.namespaces.Space(namespace)
	if !ok {
		return nil, fmt.Errorf("unknown ledger namespace: %s", namespace)
	}
	return NewSerializer().Append(0, space), nil
}

func (i *Indexer) build(namespace string, items ...[]byte) (Hash256, error) {
	s, err := i.serializer(namespace)
	if err != nil {
		return zero256, err
	}
	for _, item := range items {
		s.Append(item...)
	}
	return s.Sum(), nil
}

func (i *Indexer) withSequence(namespace string, account Account, sequence uint32) (Hash256, error) {
	s, err := i.serializer(namespace)
	if err != nil {
		return zero256, err
	}
	return s.Append(account[:]...).AppendUint32(sequence).Sum(), nil
}

func (i *Indexer) AccountRootKey(account Account) (Hash256, error) {
	return i.build("account", account[:])
}

func (i *Indexer) OfferKey(account Account, sequence uint32) (Hash256, error) {
	return i.withSequence("offer", account, sequence)
}

// TrustLineKey is symmetric in a and b: the accounts are hashed low then high.
func (i *Indexer) TrustLineKey(a, b Account, currency Currency) (Hash256, error) {
	if !currency.IsValid() {
		return zero256, &InvalidCurrencyError{Input: currency.Machine(), Err: fmt.Errorf("native currency has no trust lines")}
	}
	if a.Compare(b) > 0 {
		a, b = b, a
	}
	return i.build("rippleState", a[:], b[:], currency[:])
}

func (i *Indexer) OwnerDirKey(account Account) (Hash256, error) {
	return i.build("ownerDir", account[:])
}

// DirNodeKey returns the key of page of the directory rooted at root.
// Page 0 is the root itself.
func (i *Indexer) DirNodeKey(root Hash256, page uint64) (Hash256, error) {
	if page == 0 {
		return root, nil
	}
	s, err := i.serializer("dirNode")
	if err != nil {
		return zero256, err
	}
	return s.AppendHash256(root).AppendUint64(page).Sum(), nil
}

// SkipListKey is the key of the table of the last 256 ledger hashes.
func (i *Indexer) SkipListKey() (Hash256, error) {
	return i.build("skipList")
}

// SkipListPageKey is the key of the long skip list page holding sequence.
func (i *Indexer) SkipListPageKey(sequence uint32) (Hash256, error) {
	s, err := i.serializer("skipList")
	if err != nil {
		return zero256, err
	}
	return s.AppendUint32(sequence >> 16).Sum(), nil
}

func (i *Indexer) AmendmentsKey() (Hash256, error) {
	return i.build("amendment")
}

func (i *Indexer) FeeSettingsKey() (Hash256, error) {
	return i.build("feeSettings")
}

func (i *Indexer) NegativeUNLKey() (Hash256, error) {
	return i.build("negativeUNL")
}

func (i *Indexer) TicketKey(account Account, sequence uint32) (Hash256, error) {
	return i.withSequence("ticket", account, sequence)
}

func (i *Indexer) EscrowKey(account Account, sequence uint32) (Hash256, error) {
	return i.withSequence("escrow", account, sequence)
}

func (i *Indexer) CheckKey(account Account, sequence uint32) (Hash256, error) {
	return i.withSequence("check", account, sequence)
}

// SignerListKey uses the fixed signer list id 0.
func (i *Indexer) SignerListKey(account Account) (Hash256, error) {
	return i.withSequence("signerList", account, 0)
}

// The FromAddress helpers parse their inputs first and never hash invalid ones.

func (i *Indexer) AccountRootKeyFromAddress(address string) (Hash256, error) {
	account, err := NewAccountFromAddress(address)
	if err != nil {
		return zero256, err
	}
	return i.AccountRootKey(*account)
}

func (i *Indexer) OfferKeyFromAddress(address string, sequence uint32) (Hash256, error) {
	account, err := NewAccountFromAddress(address)
	if err != nil {
		return zero256, err
	}
	return i.OfferKey(*account, sequence)
}

func (i *Indexer) TrustLineKeyFromAddresses(a, b, currency string) (Hash256, error) {
	first, err := NewAccountFromAddress(a)
	if err != nil {
		return zero256, err
	}
	second, err := NewAccountFromAddress(b)
	if err != nil {
		return zero256, err
	}
	c, err := NewCurrency(currency)
	if err != nil {
		return zero256, err
	}
	return i.TrustLineKey(*first, *second, c)
}
