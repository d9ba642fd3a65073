package smt

import (
	"encoding/hex"
	"errors"
	"strings"
)

// Errors returned by DecodeHex32. Decoding never yields a partial result.
var (
	ErrHexTooShort         = errors.New("hex string is not exactly 64 characters")
	ErrHexInvalidCharacter = errors.New("invalid hex character")
)

// DecodeHex32 decodes a 64-character hex string into a Hash256. An optional
// 0x prefix is stripped first; after that the string must be exactly 64 hex
// characters.
func DecodeHex32(s string) (Hash256, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s) != 2*HashSize {
		return Hash256{}, ErrHexTooShort
	}

	var h Hash256
	for i := 0; i < HashSize; i++ {
		hi, ok := hexNibble(s[2*i])
		if !ok {
			return Hash256{}, ErrHexInvalidCharacter
		}
		lo, ok := hexNibble(s[2*i+1])
		if !ok {
			return Hash256{}, ErrHexInvalidCharacter
		}
		h[i] = hi<<4 | lo
	}
	return h, nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// EncodeHex32 renders h as 64 lowercase hex characters without a prefix.
func EncodeHex32(h Hash256) string {
	return hex.EncodeToString(h[:])
}
