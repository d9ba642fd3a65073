package service

import (
	"context"
	"crypto/rand"
	"path/filepath"
	"testing"

	"github.com/CycloneDX/cyclonedx-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"proof-verification-service/prover"
	"proof-verification-service/smt"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	storage, err := NewStorage(filepath.Join(t.TempDir(), "attestations.db"))
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })

	local := prover.NewLocal()
	return New(storage, local, local, prover.LocalImageID, zerolog.Nop())
}

// testBatch builds a single-proof batch with an explicit sibling at every
// depth, so its root needs no tree.
func testBatch(t *testing.T, purl string) *BatchRequest {
	t.Helper()
	key := smt.HashPathKey(purl)

	var bitmap smt.Hash256
	for i := range bitmap {
		bitmap[i] = 0xff
	}

	current := smt.HashLeaf("0")
	siblings := make([]string, 0, smt.TreeDepth)
	for d := 0; d < smt.TreeDepth; d++ {
		var sibling smt.Hash256
		_, err := rand.Read(sibling[:])
		require.NoError(t, err)
		siblings = append(siblings, smt.EncodeHex32(sibling))

		if smt.PathBit(key, d) == 0 {
			current = smt.HashPair(current, sibling)
		} else {
			current = smt.HashPair(sibling, current)
		}
	}

	return &BatchRequest{
		Depth: smt.TreeDepth,
		Root:  smt.EncodeHex32(current),
		MerkleProofs: []*smt.CompactProof{{
			Purl:      purl,
			Value:     "0",
			LeafIndex: smt.EncodeHex32(key),
			Siblings:  siblings,
			Bitmap:    smt.EncodeHex32(bitmap),
		}},
	}
}

func TestVerifyBatchCompliant(t *testing.T) {
	svc := newTestService(t)
	req := testBatch(t, "pkg:npm/clean@1.0.0")

	result, err := svc.VerifyBatch(req)
	require.NoError(t, err)
	require.True(t, result.Compliant)
	require.Equal(t, 1, result.VerifiedCount)
	require.Equal(t, req.Root, result.RootHash)
	require.Equal(t, smt.EncodeHex32(smt.BannedListHash([]string{"pkg:npm/clean@1.0.0"})), result.BannedListHash)
}

func TestVerifyBatchNegativeVerdictIsNotAnError(t *testing.T) {
	svc := newTestService(t)
	req := testBatch(t, "pkg:npm/clean@1.0.0")
	req.Root = smt.EncodeHex32(smt.HashPathKey("some other root"))

	result, err := svc.VerifyBatch(req)
	require.NoError(t, err)
	require.False(t, result.Compliant)
	require.Zero(t, result.VerifiedCount)
}

func TestVerifyBatchRejectsWrongDepth(t *testing.T) {
	svc := newTestService(t)
	req := testBatch(t, "pkg:npm/clean@1.0.0")
	req.Depth = 255

	var reqErr *RequestError
	_, err := svc.VerifyBatch(req)
	require.ErrorAs(t, err, &reqErr)
}

func TestVerifyBatchRejectsEmptyBatch(t *testing.T) {
	svc := newTestService(t)
	req := &BatchRequest{Depth: smt.TreeDepth, Root: smt.EncodeHex32(smt.Hash256{})}

	var reqErr *RequestError
	_, err := svc.VerifyBatch(req)
	require.ErrorAs(t, err, &reqErr)
}

func TestVerifyBatchRejectsStructurallyBrokenProof(t *testing.T) {
	svc := newTestService(t)
	req := testBatch(t, "pkg:npm/clean@1.0.0")
	req.MerkleProofs[0].Siblings = req.MerkleProofs[0].Siblings[1:]

	var reqErr *RequestError
	_, err := svc.VerifyBatch(req)
	require.ErrorAs(t, err, &reqErr)

	var structErr *smt.StructuralError
	require.ErrorAs(t, err, &structErr)
}

// A JSON null in merkle_proofs decodes to a nil entry; validation must turn
// it into a request error, not a crash.
func TestVerifyBatchRejectsNullProofEntry(t *testing.T) {
	svc := newTestService(t)
	req := testBatch(t, "pkg:npm/clean@1.0.0")
	req.MerkleProofs = append(req.MerkleProofs, nil)

	var reqErr *RequestError
	_, err := svc.VerifyBatch(req)
	require.ErrorAs(t, err, &reqErr)

	_, err = svc.Attest(context.Background(), req)
	require.ErrorAs(t, err, &reqErr)
}

func TestAttestPersistsRecord(t *testing.T) {
	svc := newTestService(t)
	req := testBatch(t, "pkg:npm/clean@1.0.0")

	record, err := svc.Attest(context.Background(), req)
	require.NoError(t, err)
	require.True(t, record.Compliant)
	require.Equal(t, 1, record.VerifiedCount)
	require.Equal(t, req.Root, record.RootHash)
	require.Equal(t, prover.LocalImageID.Strings(), record.ImageID)
	require.NotEmpty(t, record.Proof)
	require.NotZero(t, record.Timestamp)

	stored, err := svc.GetAttestation(record.ID)
	require.NoError(t, err)
	require.Equal(t, record, stored)
}

func TestGetAttestationMissing(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.GetAttestation("no-such-id")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestVerifyReceiptRoundTrip(t *testing.T) {
	svc := newTestService(t)
	record, err := svc.Attest(context.Background(), testBatch(t, "pkg:npm/clean@1.0.0"))
	require.NoError(t, err)

	check := &ReceiptCheckRequest{
		Proof:          record.Proof,
		ImageID:        record.ImageID,
		RootHash:       record.RootHash,
		BannedListHash: record.BannedListHash,
		Compliant:      record.Compliant,
		Timestamp:      record.Timestamp,
	}

	result, err := svc.VerifyReceipt(context.Background(), check)
	require.NoError(t, err)
	require.True(t, result.ProofVerified)
	require.Equal(t, record.RootHash, result.RootHash)

	// A claim that disagrees with the journal must not pass.
	lied := *check
	lied.Compliant = !record.Compliant
	var reqErr *RequestError
	_, err = svc.VerifyReceipt(context.Background(), &lied)
	require.ErrorAs(t, err, &reqErr)
}

func TestVerifyReceiptRejectsWrongImage(t *testing.T) {
	svc := newTestService(t)
	record, err := svc.Attest(context.Background(), testBatch(t, "pkg:npm/clean@1.0.0"))
	require.NoError(t, err)

	other := prover.LocalImageID
	other[0]++
	_, err = svc.VerifyReceipt(context.Background(), &ReceiptCheckRequest{
		Proof:          record.Proof,
		ImageID:        other.Strings(),
		RootHash:       record.RootHash,
		BannedListHash: record.BannedListHash,
		Compliant:      record.Compliant,
		Timestamp:      record.Timestamp,
	})
	require.ErrorIs(t, err, prover.ErrVerificationFailed)
}

func sbomWith(purls ...string) *cyclonedx.BOM {
	components := make([]cyclonedx.Component, len(purls))
	for i, purl := range purls {
		components[i] = cyclonedx.Component{Name: purl, PackageURL: purl}
	}
	bom := cyclonedx.NewBOM()
	bom.Components = &components
	return bom
}

func TestAttestSBOM(t *testing.T) {
	svc := newTestService(t)
	req := testBatch(t, "pkg:npm/clean@1.0.0")

	record, err := svc.AttestSBOM(context.Background(), sbomWith("pkg:npm/clean@1.0.0"), req)
	require.NoError(t, err)
	require.True(t, record.Compliant)
}

func TestAttestSBOMRequiresCoverage(t *testing.T) {
	svc := newTestService(t)
	req := testBatch(t, "pkg:npm/clean@1.0.0")

	var reqErr *RequestError
	_, err := svc.AttestSBOM(context.Background(), sbomWith("pkg:npm/clean@1.0.0", "pkg:npm/uncovered@2.0.0"), req)
	require.ErrorAs(t, err, &reqErr)
}

func TestExtractPurls(t *testing.T) {
	bom := sbomWith("pkg:npm/a@1.0.0", "pkg:npm/b@1.0.0", "pkg:npm/a@1.0.0")
	noPurl := cyclonedx.Component{Name: "anonymous"}
	*bom.Components = append(*bom.Components, noPurl)

	require.Equal(t, []string{"pkg:npm/a@1.0.0", "pkg:npm/b@1.0.0"}, ExtractPurls(bom))
	require.Nil(t, ExtractPurls(nil))
}
