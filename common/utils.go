package common

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// IsHexString reports whether s is an even length run of hex digits.
func IsHexString(s string) bool {
	if len(s)%2 != 0 {
		return false
	}
	for _, c := range []byte(s) {
		if !isHexCharacter(c) {
			return false
		}
	}
	return true
}

func isHexCharacter(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// FromHex decodes s with or without a 0x prefix.
func FromHex(s string) ([]byte, error) {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	if !IsHexString(s) {
		return nil, errors.New("invalid hex string")
	}
	return hex.DecodeString(s)
}

// ToHex encodes b as upper case hex, the form the ledger protocol prints.
func ToHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// FileExist checks if a file exists at filePath.
func FileExist(filePath string) bool {
	_, err := os.Stat(filePath)
	if err != nil && os.IsNotExist(err) {
		return false
	}
	return true
}

// AbsolutePath returns datadir + filename, or filename if it is absolute.
func AbsolutePath(datadir, filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(datadir, filename)
}

// ExecuteDir returns the directory of the running binary.
func ExecuteDir() (string, error) {
	return filepath.Abs(filepath.Dir(os.Args[0]))
}
