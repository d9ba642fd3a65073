package smt

import "math/bits"

// The byte and bit indexing in this file is a wire-level contract shared
// with the proving program. Both sides must agree on it exactly: a mismatch
// does not produce a decodable error, only wrong roots.

// BitmapBit reports whether the proof carries an explicit sibling at depth
// d. Bitmap bits are packed LSB-first within each byte.
func BitmapBit(bitmap Hash256, d int) byte {
	return (bitmap[d/8] >> (d % 8)) & 1
}

// PathBit returns the branch direction at depth d. The key is read as a
// big-endian 256-bit integer and bit d counts from its least significant
// bit, so bit 0 lives in the last byte. 0 means the current node is the
// left child, 1 the right.
func PathBit(key Hash256, d int) byte {
	return (key[HashSize-1-d/8] >> (d % 8)) & 1
}

// CountBits returns the number of set bits in bitmap, which must equal the
// number of explicit siblings a compact proof carries.
func CountBits(bitmap Hash256) int {
	n := 0
	for _, b := range bitmap {
		n += bits.OnesCount8(b)
	}
	return n
}
