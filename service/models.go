package service

import "proof-verification-service/smt"

// BatchRequest is the canonical wire form of a compact proof batch: a
// claimed root plus one non-membership proof per banned-candidate purl.
type BatchRequest struct {
	Depth        int                 `json:"depth"`
	Root         string              `json:"root"`
	MerkleProofs []*smt.CompactProof `json:"merkle_proofs"`
}

// VerifyResult is the outcome of host-side verification without the proving
// runtime involved.
type VerifyResult struct {
	RootHash       string `json:"root_hash"`
	BannedListHash string `json:"banned_list_hash"`
	Compliant      bool   `json:"compliant"`
	VerifiedCount  int    `json:"verified_count"`
}

// AttestationRecord is the persisted and returned outcome of an attestation
// run: the journal fields plus the proof artifact and the identity of the
// program that produced it.
type AttestationRecord struct {
	ID               string   `json:"id"`
	Timestamp        uint64   `json:"timestamp"`
	RootHash         string   `json:"root_hash"`
	BannedListHash   string   `json:"banned_list_hash"`
	Compliant        bool     `json:"compliant"`
	VerifiedCount    int      `json:"verified_count"`
	ImageID          []string `json:"image_id"`
	Proof            string   `json:"proof"`
	GenerationTimeMS int64    `json:"generation_duration_ms"`
}

// ReceiptCheckRequest asks for an already-issued proof artifact to be
// re-verified and cross-checked against the claims alongside it.
type ReceiptCheckRequest struct {
	Proof          string   `json:"proof"`
	ImageID        []string `json:"image_id"`
	RootHash       string   `json:"root_hash"`
	BannedListHash string   `json:"banned_list_hash"`
	Compliant      bool     `json:"compliant"`
	Timestamp      uint64   `json:"timestamp"`
}

// ReceiptCheckResult reports a successful receipt verification.
type ReceiptCheckResult struct {
	ProofVerified  bool     `json:"proof_verified"`
	RootHash       string   `json:"root_hash"`
	BannedListHash string   `json:"banned_list_hash"`
	Compliant      bool     `json:"compliant"`
	Timestamp      uint64   `json:"timestamp"`
	ImageID        []string `json:"image_id"`
}
