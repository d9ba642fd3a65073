package smt

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
)

// VerifyProof recomputes the root committed by a single compact proof and
// compares it against root. The climb starts at the leaf hash and walks all
// 256 levels, taking the sibling from the proof where the bitmap marks a
// depth and from the default table everywhere else.
//
// The two failure classes are kept apart: (false, non-nil) is a structural
// rejection and no climb ran; (false, nil) is a valid negative result, i.e.
// a well-formed proof that does not prove non-membership under root.
func VerifyProof(p *CompactProof, root Hash256) (bool, error) {
	if p == nil {
		return false, &StructuralError{Reason: "missing proof object"}
	}

	// Non-membership means the leaf, if present, carries value 0. Any other
	// value is a negative result, not an error.
	if p.Value != "0" {
		return false, nil
	}

	parsed, err := parseProof(p)
	if err != nil {
		return false, err
	}

	current := HashLeaf(p.Value)
	next := 0
	for d := 0; d < TreeDepth; d++ {
		var sibling Hash256
		if BitmapBit(parsed.bitmap, d) == 1 {
			sibling = parsed.siblings[next]
			next++
		} else {
			sibling = DefaultHash(d)
		}

		if PathBit(parsed.pathKey, d) == 0 {
			current = HashPair(current, sibling)
		} else {
			current = HashPair(sibling, current)
		}
	}

	return current == root, nil
}

// VerifyBatch folds per-proof verification into one compliance verdict
// against a single shared root. The walk short-circuits on the first proof
// that fails for any reason, structural or semantic; verifiedCount reflects
// the proofs accepted strictly before it.
func VerifyBatch(proofs []*CompactProof, root Hash256) (compliant bool, verifiedCount int) {
	for _, p := range proofs {
		ok, err := VerifyProof(p, root)
		if err != nil || !ok {
			return false, verifiedCount
		}
		verifiedCount++
	}
	return true, verifiedCount
}

// BannedListHash commits to the exact identifier list a compliance verdict
// covers: the SHA-256 of the canonical JSON array serialization. The
// serialization must byte-match the one used inside the proving program, so
// HTML escaping is off and no trailing newline is hashed. A nil list hashes
// as the empty array.
func BannedListHash(identifiers []string) Hash256 {
	if identifiers == nil {
		identifiers = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(identifiers); err != nil {
		return sha256.Sum256([]byte("[]"))
	}

	return sha256.Sum256(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
