package common

import "fmt"

// StorageSize is a wrapper around a float value that supports user friendly
// formatting.
type StorageSize float64

// String implements the stringer interface.
func (s StorageSize) String() string {
	switch {
	case s > 1099511627776:
		return fmt.Sprintf("%.2f TiB", s/1099511627776)
	case s > 1073741824:
		return fmt.Sprintf("%.2f GiB", s/1073741824)
	case s > 1048576:
		return fmt.Sprintf("%.2f MiB", s/1048576)
	case s > 1024:
		return fmt.Sprintf("%.2f KiB", s/1024)
	default:
		return fmt.Sprintf("%.2f B", s)
	}
}
