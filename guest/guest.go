// Package guest contains the batch evaluation exactly as the proving
// program runs it. This execution context cannot propagate errors outward:
// whatever the input looks like, it commits a well-formed journal.
package guest

import (
	"encoding/json"

	"proof-verification-service/smt"
)

// Execute evaluates a serialized proof batch against root and returns the
// journal to commit. Undecodable input yields a journal over the empty
// identifier list with compliant set to false. A null batch element counts
// as undecodable: there is no proof object to evaluate.
func Execute(proofsJSON []byte, root smt.Hash256, timestamp uint64) Journal {
	negative := Journal{
		Timestamp:      timestamp,
		RootHash:       root,
		BannedListHash: smt.BannedListHash(nil),
	}

	var proofs []*smt.CompactProof
	if err := json.Unmarshal(proofsJSON, &proofs); err != nil {
		return negative
	}
	for _, p := range proofs {
		if p == nil {
			return negative
		}
	}

	identifiers := make([]string, len(proofs))
	for i, p := range proofs {
		identifiers[i] = p.Purl
	}

	compliant, _ := smt.VerifyBatch(proofs, root)
	return Journal{
		Timestamp:      timestamp,
		RootHash:       root,
		BannedListHash: smt.BannedListHash(identifiers),
		Compliant:      compliant,
	}
}
