package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/CycloneDX/cyclonedx-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"proof-verification-service/guest"
	"proof-verification-service/prover"
	"proof-verification-service/smt"
)

// RequestError marks a failure caused by the caller's input: wrong depth,
// undecodable hex, a structurally malformed proof, mismatched claims.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string { return e.Err.Error() }
func (e *RequestError) Unwrap() error { return e.Err }

func badRequest(format string, args ...any) error {
	return &RequestError{Err: fmt.Errorf(format, args...)}
}

// Service wires the verification core to the proving runtime and the
// attestation store.
type Service struct {
	storage  *Storage
	prover   prover.Prover
	verifier prover.Verifier
	image    prover.ImageID
	log      zerolog.Logger
}

func New(storage *Storage, p prover.Prover, v prover.Verifier, image prover.ImageID, log zerolog.Logger) *Service {
	return &Service{storage: storage, prover: p, verifier: v, image: image, log: log}
}

// validateBatch runs every pre-proving check on req and returns the decoded
// root. Structural rejection here keeps garbage away from the proving
// runtime, whose time is the expensive part.
func (s *Service) validateBatch(req *BatchRequest) (smt.Hash256, error) {
	if req.Depth != smt.TreeDepth {
		return smt.Hash256{}, badRequest("invalid depth: expected %d, got %d", smt.TreeDepth, req.Depth)
	}
	if len(req.MerkleProofs) == 0 {
		return smt.Hash256{}, badRequest("at least one merkle proof is required")
	}

	root, err := smt.DecodeHex32(req.Root)
	if err != nil {
		return smt.Hash256{}, badRequest("invalid root hash %q: %w", req.Root, err)
	}

	for i, p := range req.MerkleProofs {
		if err := smt.ValidateCompactProof(p); err != nil {
			return smt.Hash256{}, &RequestError{Err: fmt.Errorf("proof %d: %w", i, err)}
		}
	}
	return root, nil
}

func (s *Service) purls(req *BatchRequest) []string {
	purls := make([]string, len(req.MerkleProofs))
	for i, p := range req.MerkleProofs {
		purls[i] = p.Purl
	}
	return purls
}

// VerifyBatch runs the verification engine host-side, without involving the
// proving runtime. A negative verdict is a successful result, not an error.
func (s *Service) VerifyBatch(req *BatchRequest) (*VerifyResult, error) {
	root, err := s.validateBatch(req)
	if err != nil {
		return nil, err
	}

	compliant, count := smt.VerifyBatch(req.MerkleProofs, root)
	s.log.Info().
		Str("root", req.Root).
		Bool("compliant", compliant).
		Int("verified", count).
		Int("proofs", len(req.MerkleProofs)).
		Msg("batch verified")

	return &VerifyResult{
		RootHash:       smt.EncodeHex32(root),
		BannedListHash: smt.EncodeHex32(smt.BannedListHash(s.purls(req))),
		Compliant:      compliant,
		VerifiedCount:  count,
	}, nil
}

// Attest runs the full flow: structural validation, guest execution in the
// proving runtime, receipt verification against the configured program
// identity, then persistence of the attestation record.
func (s *Service) Attest(ctx context.Context, req *BatchRequest) (*AttestationRecord, error) {
	root, err := s.validateBatch(req)
	if err != nil {
		return nil, err
	}

	proofsJSON, err := json.Marshal(req.MerkleProofs)
	if err != nil {
		return nil, badRequest("cannot serialize proofs: %w", err)
	}

	timestamp := uint64(time.Now().Unix())
	s.log.Info().
		Str("root", req.Root).
		Int("proofs", len(req.MerkleProofs)).
		Uint64("timestamp", timestamp).
		Msg("starting proof generation")

	proveStart := time.Now()
	receipt, err := s.prover.Prove(ctx, prover.Input{
		ProofsJSON: proofsJSON,
		Root:       root,
		Timestamp:  timestamp,
	})
	if err != nil {
		return nil, err
	}
	generationMS := time.Since(proveStart).Milliseconds()

	if err := s.verifier.Verify(ctx, receipt, s.image); err != nil {
		return nil, fmt.Errorf("generated receipt did not verify: %w", err)
	}

	journal, err := guest.DecodeJournal(receipt.Journal)
	if err != nil {
		return nil, fmt.Errorf("bad receipt journal: %w", err)
	}

	// The journal holds the verdict; the count is recomputed host-side for
	// the record.
	_, count := smt.VerifyBatch(req.MerkleProofs, root)

	record := &AttestationRecord{
		ID:               uuid.NewString(),
		Timestamp:        journal.Timestamp,
		RootHash:         smt.EncodeHex32(journal.RootHash),
		BannedListHash:   smt.EncodeHex32(journal.BannedListHash),
		Compliant:        journal.Compliant,
		VerifiedCount:    count,
		ImageID:          s.image.Strings(),
		Proof:            prover.EncodeReceipt(receipt),
		GenerationTimeMS: generationMS,
	}

	// Persistence failure degrades to a warning; the record still goes back
	// to the caller.
	if err := s.storage.PutAttestation(record); err != nil {
		s.log.Warn().Err(err).Str("id", record.ID).Msg("attestation not persisted")
	}

	s.log.Info().
		Str("id", record.ID).
		Bool("compliant", record.Compliant).
		Int64("generation_ms", generationMS).
		Msg("attestation complete")
	return record, nil
}

// VerifyReceipt re-verifies a previously issued proof artifact and
// cross-checks the caller's claims against the journal inside it.
func (s *Service) VerifyReceipt(ctx context.Context, req *ReceiptCheckRequest) (*ReceiptCheckResult, error) {
	image, err := prover.ParseImageID(req.ImageID)
	if err != nil {
		return nil, badRequest("invalid image id: %w", err)
	}

	receipt, err := prover.DecodeReceipt(req.Proof)
	if err != nil {
		return nil, badRequest("invalid proof: %w", err)
	}

	if err := s.verifier.Verify(ctx, receipt, image); err != nil {
		return nil, err
	}

	journal, err := guest.DecodeJournal(receipt.Journal)
	if err != nil {
		return nil, badRequest("bad receipt journal: %w", err)
	}

	rootHash := smt.EncodeHex32(journal.RootHash)
	if req.RootHash != rootHash {
		return nil, badRequest("root hash mismatch: request has %s, proof contains %s", req.RootHash, rootHash)
	}
	bannedHash := smt.EncodeHex32(journal.BannedListHash)
	if req.BannedListHash != bannedHash {
		return nil, badRequest("banned list hash mismatch: request has %s, proof contains %s", req.BannedListHash, bannedHash)
	}
	if req.Compliant != journal.Compliant {
		return nil, badRequest("compliant flag mismatch: request has %t, proof contains %t", req.Compliant, journal.Compliant)
	}
	if req.Timestamp != journal.Timestamp {
		return nil, badRequest("timestamp mismatch: request has %d, proof contains %d", req.Timestamp, journal.Timestamp)
	}

	s.log.Info().Bool("compliant", journal.Compliant).Msg("receipt verified")
	return &ReceiptCheckResult{
		ProofVerified:  true,
		RootHash:       rootHash,
		BannedListHash: bannedHash,
		Compliant:      journal.Compliant,
		Timestamp:      journal.Timestamp,
		ImageID:        req.ImageID,
	}, nil
}

// GetAttestation loads a persisted attestation record by ID.
func (s *Service) GetAttestation(id string) (*AttestationRecord, error) {
	return s.storage.GetAttestation(id)
}

// AttestSBOM binds an attestation to a concrete SBOM: the proof batch must
// cover exactly the purls of the SBOM's components before the normal
// attestation flow runs.
func (s *Service) AttestSBOM(ctx context.Context, bom *cyclonedx.BOM, req *BatchRequest) (*AttestationRecord, error) {
	components := ExtractPurls(bom)
	if len(components) == 0 {
		return nil, badRequest("sbom has no components with a purl")
	}

	covered := make(map[string]bool, len(req.MerkleProofs))
	for _, p := range req.MerkleProofs {
		if p == nil {
			continue
		}
		covered[p.Purl] = true
	}
	for _, purl := range components {
		if !covered[purl] {
			return nil, badRequest("no proof covers sbom component %q", purl)
		}
	}
	if len(covered) != len(components) {
		return nil, badRequest("proof batch covers %d purls but sbom has %d", len(covered), len(components))
	}

	return s.Attest(ctx, req)
}

// ErrNotFound reports a missing attestation record.
var ErrNotFound = errors.New("attestation not found")
