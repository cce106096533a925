package data

import (
	"fmt"
	"io"
)

type pathEntry uint8

const (
	PATH_BOUNDARY pathEntry = 0xFF
	PATH_END      pathEntry = 0x00

	PATH_ACCOUNT  pathEntry = 0x01
	PATH_CURRENCY pathEntry = 0x10
	PATH_ISSUER   pathEntry = 0x20
)

type PathElem struct {
	Account  *Account
	Currency *Currency
	Issuer   *Account
}

type Path []PathElem

type PathSet []Path

func (p PathElem) pathEntry() pathEntry {
	var entry pathEntry
	if p.Account != nil {
		entry |= PATH_ACCOUNT
	}
	if p.Currency != nil {
		entry |= PATH_CURRENCY
	}
	if p.Issuer != nil {
		entry |= PATH_ISSUER
	}
	return entry
}

// NewPathSet parses the JSON form: a list of paths, each a list of steps
// with optional account, currency and issuer keys.
func NewPathSet(v interface{}) (PathSet, error) {
	paths, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("PathSet: expected list got %T", v)
	}
	var set PathSet
	for _, p := range paths {
		steps, ok := p.([]interface{})
		if !ok {
			return nil, fmt.Errorf("PathSet: expected path list got %T", p)
		}
		var path Path
		for _, s := range steps {
			step, ok := s.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("PathSet: expected step object got %T", s)
			}
			var pe PathElem
			if account, ok := step["account"].(string); ok {
				a, err := NewAccount(account)
				if err != nil {
					return nil, err
				}
				pe.Account = a
			}
			if currency, ok := step["currency"].(string); ok {
				c, err := NewCurrency(currency)
				if err != nil {
					return nil, err
				}
				pe.Currency = &c
			}
			if issuer, ok := step["issuer"].(string); ok {
				i, err := NewAccount(issuer)
				if err != nil {
					return nil, err
				}
				pe.Issuer = i
			}
			if pe.pathEntry() == 0 {
				return nil, fmt.Errorf("PathSet: empty path step")
			}
			path = append(path, pe)
		}
		set = append(set, path)
	}
	return set, nil
}

// JSON returns the path set in the protocol's JSON form.
func (p PathSet) JSON() []interface{} {
	paths := make([]interface{}, 0, len(p))
	for _, path := range p {
		steps := make([]interface{}, 0, len(path))
		for _, pe := range path {
			step := make(map[string]interface{})
			if pe.Account != nil {
				step["account"] = pe.Account.String()
			}
			if pe.Currency != nil {
				step["currency"] = pe.Currency.Machine()
			}
			if pe.Issuer != nil {
				step["issuer"] = pe.Issuer.String()
			}
			steps = append(steps, step)
		}
		paths = append(paths, steps)
	}
	return paths
}

func (p *PathSet) Unmarshal(r Reader) error {
	var path Path
	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		entry := pathEntry(b)
		switch entry {
		case PATH_BOUNDARY:
			*p = append(*p, path)
			path = nil
			continue
		case PATH_END:
			*p = append(*p, path)
			return nil
		}
		if entry&^(PATH_ACCOUNT|PATH_CURRENCY|PATH_ISSUER) != 0 {
			return fmt.Errorf("PathSet: unknown path entry type %d", b)
		}
		var pe PathElem
		if entry&PATH_ACCOUNT > 0 {
			pe.Account = new(Account)
			if err := unmarshalSlice(pe.Account[:], r, "PathSet Account"); err != nil {
				return err
			}
		}
		if entry&PATH_CURRENCY > 0 {
			pe.Currency = new(Currency)
			if err := unmarshalSlice(pe.Currency[:], r, "PathSet Currency"); err != nil {
				return err
			}
		}
		if entry&PATH_ISSUER > 0 {
			pe.Issuer = new(Account)
			if err := unmarshalSlice(pe.Issuer[:], r, "PathSet Issuer"); err != nil {
				return err
			}
		}
		path = append(path, pe)
	}
}

func (p *PathSet) Marshal(w io.Writer) error {
	if len(*p) == 0 {
		return write(w, uint8(PATH_END))
	}
	for i, path := range *p {
		for _, entry := range path {
			if err := write(w, uint8(entry.pathEntry())); err != nil {
				return err
			}
			for _, b := range [][]byte{entry.Account.Bytes(), entry.Currency.Bytes(), entry.Issuer.Bytes()} {
				if _, err := w.Write(b); err != nil {
					return err
				}
			}
		}
		var err error
		if i < len(*p)-1 {
			err = write(w, uint8(PATH_BOUNDARY))
		} else {
			err = write(w, uint8(PATH_END))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
