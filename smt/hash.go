// Package smt implements non-membership proof verification for a depth-256
// sparse Merkle tree keyed by package URLs. The same hashing and bit-order
// conventions are re-executed inside the proving program, so everything here
// sticks to fixed-width byte operations with no environment-dependent
// behavior.
package smt

import (
	"crypto/sha256"
	"strconv"
)

// HashSize is the byte length of every hash in the tree.
const HashSize = 32

// TreeDepth is the only supported tree depth.
const TreeDepth = 256

// Hash256 is a SHA-256 digest, the only hash type in the system.
type Hash256 [HashSize]byte

// HashLeaf hashes a leaf value given as a decimal string. The value is
// right-aligned into a 32-byte big-endian buffer before hashing. Non-numeric
// input hashes as value 0; callers asserting non-membership must still check
// the value string itself.
func HashLeaf(value string) Hash256 {
	var padded [HashSize]byte
	if v, err := strconv.ParseUint(value, 10, 64); err == nil {
		for i := 0; i < 8; i++ {
			padded[HashSize-1-i] = byte(v >> (8 * i))
		}
	}
	return sha256.Sum256(padded[:])
}

// HashPair hashes two child hashes into their parent. The left/right order
// is part of the tree protocol and must never be swapped.
func HashPair(left, right Hash256) Hash256 {
	h := sha256.New()
	h.Write(left[:])
	h.Write(right[:])
	var out Hash256
	h.Sum(out[:0])
	return out
}

// HashPathKey maps an identifier (a purl) to its leaf path: the SHA-256 of
// its raw UTF-8 bytes.
func HashPathKey(identifier string) Hash256 {
	return sha256.Sum256([]byte(identifier))
}
