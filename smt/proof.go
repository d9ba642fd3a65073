package smt

import "fmt"

// CompactProof is a non-membership proof with default-valued siblings
// elided. Siblings holds only the non-default levels in ascending depth
// order; Bitmap records which depths they cover. LeafIndex is the hex form
// of the path key and must equal the hash of Purl. A proof is an immutable
// value object once constructed.
type CompactProof struct {
	Purl      string   `json:"purl"`
	Value     string   `json:"value"`
	LeafIndex string   `json:"leaf_index"`
	Siblings  []string `json:"siblings"`
	Bitmap    string   `json:"bitmap"`
}

// StructuralError reports a malformed proof, rejected before any hashing
// climb runs. It is a different class from a negative verification result.
type StructuralError struct {
	Purl   string
	Reason string
	Err    error
}

func (e *StructuralError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("proof for %q: %s: %v", e.Purl, e.Reason, e.Err)
	}
	return fmt.Sprintf("proof for %q: %s", e.Purl, e.Reason)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// parsedProof holds the decoded fields of a structurally valid proof.
type parsedProof struct {
	pathKey  Hash256
	bitmap   Hash256
	siblings []Hash256
}

func structural(p *CompactProof, reason string, err error) *StructuralError {
	return &StructuralError{Purl: p.Purl, Reason: reason, Err: err}
}

// parseProof decodes and structurally validates p. Checks run cheapest
// first: bitmap shape, sibling count, path-key binding, then the per-depth
// sibling decode with the canonical-encoding rule (a provided sibling that
// equals the default at its depth must have been elided instead).
func parseProof(p *CompactProof) (*parsedProof, error) {
	if p == nil {
		return nil, &StructuralError{Reason: "missing proof object"}
	}

	bitmap, err := DecodeHex32(p.Bitmap)
	if err != nil {
		return nil, structural(p, "bad bitmap", err)
	}

	if want := CountBits(bitmap); want != len(p.Siblings) {
		return nil, structural(p, fmt.Sprintf("bitmap expects %d siblings, got %d", want, len(p.Siblings)), nil)
	}

	pathKey, err := DecodeHex32(p.LeafIndex)
	if err != nil {
		return nil, structural(p, "bad leaf index", err)
	}
	if pathKey != HashPathKey(p.Purl) {
		return nil, structural(p, "leaf index does not match purl hash", nil)
	}

	siblings := make([]Hash256, 0, len(p.Siblings))
	next := 0
	for d := 0; d < TreeDepth; d++ {
		if BitmapBit(bitmap, d) == 0 {
			continue
		}
		s, err := DecodeHex32(p.Siblings[next])
		if err != nil {
			return nil, structural(p, fmt.Sprintf("bad sibling at depth %d", d), err)
		}
		if s == DefaultHash(d) {
			return nil, structural(p, fmt.Sprintf("sibling at depth %d equals the default and must be elided", d), nil)
		}
		siblings = append(siblings, s)
		next++
	}

	return &parsedProof{pathKey: pathKey, bitmap: bitmap, siblings: siblings}, nil
}

// ValidateCompactProof runs every structural check on p without hashing a
// climb. A nil return means p is well formed; it says nothing about whether
// p verifies against any root.
func ValidateCompactProof(p *CompactProof) error {
	_, err := parseProof(p)
	return err
}
