package smt

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeHex32RoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		var h Hash256
		_, err := rand.Read(h[:])
		require.NoError(t, err)

		got, err := DecodeHex32(EncodeHex32(h))
		require.NoError(t, err)
		require.Equal(t, h, got)
	}
}

func TestDecodeHex32Prefix(t *testing.T) {
	h := HashPathKey("pkg:golang/example@1.0.0")

	bare, err := DecodeHex32(EncodeHex32(h))
	require.NoError(t, err)
	prefixed, err := DecodeHex32("0x" + EncodeHex32(h))
	require.NoError(t, err)

	require.Equal(t, bare, prefixed)
}

func TestDecodeHex32Uppercase(t *testing.T) {
	h := HashPathKey("x")
	got, err := DecodeHex32(strings.ToUpper(EncodeHex32(h)))
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestDecodeHex32Length(t *testing.T) {
	valid := EncodeHex32(Hash256{})

	for _, s := range []string{"", "ab", valid[:63], valid + "00", "0x" + valid[:62]} {
		_, err := DecodeHex32(s)
		require.ErrorIs(t, err, ErrHexTooShort, "input %q", s)
	}
}

func TestDecodeHex32InvalidCharacter(t *testing.T) {
	bad := "zz" + EncodeHex32(Hash256{})[2:]
	_, err := DecodeHex32(bad)
	require.ErrorIs(t, err, ErrHexInvalidCharacter)

	// A stray character anywhere in the string is rejected.
	mid := EncodeHex32(Hash256{})[:40] + "g" + EncodeHex32(Hash256{})[41:]
	_, err = DecodeHex32(mid)
	require.ErrorIs(t, err, ErrHexInvalidCharacter)
}
