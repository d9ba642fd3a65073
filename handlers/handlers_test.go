package handlers

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"proof-verification-service/prover"
	"proof-verification-service/service"
	"proof-verification-service/smt"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storage, err := service.NewStorage(filepath.Join(t.TempDir(), "attestations.db"))
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })

	local := prover.NewLocal()
	svc := service.New(storage, local, local, prover.LocalImageID, zerolog.Nop())
	h := NewHandler(svc, zerolog.Nop())

	router := gin.New()
	router.GET("/health", h.Health)
	router.POST("/verify", h.VerifyBatch)
	router.POST("/attest", h.Attest)
	router.POST("/attest-sbom", h.AttestSBOM)
	router.POST("/verify-receipt", h.VerifyReceipt)
	router.GET("/attestations/:id", h.GetAttestation)
	return router
}

func testBatch(t *testing.T, purl string) *service.BatchRequest {
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

	return &service.BatchRequest{
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

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestVerifyEndpoint(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/verify", testBatch(t, "pkg:npm/clean@1.0.0"))
	require.Equal(t, http.StatusOK, w.Code)

	var result service.VerifyResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.True(t, result.Compliant)
	require.Equal(t, 1, result.VerifiedCount)
}

func TestVerifyEndpointRejectsWrongDepth(t *testing.T) {
	router := newTestRouter(t)
	req := testBatch(t, "pkg:npm/clean@1.0.0")
	req.Depth = 128

	w := doJSON(t, router, http.MethodPost, "/verify", req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyEndpointRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/verify", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyEndpointRejectsNullProofEntry(t *testing.T) {
	router := newTestRouter(t)
	req := testBatch(t, "pkg:npm/clean@1.0.0")
	body := map[string]any{
		"depth":         req.Depth,
		"root":          req.Root,
		"merkle_proofs": []any{req.MerkleProofs[0], nil},
	}

	w := doJSON(t, router, http.MethodPost, "/verify", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttestAndFetch(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/attest", testBatch(t, "pkg:npm/clean@1.0.0"))
	require.Equal(t, http.StatusOK, w.Code)

	var record service.AttestationRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	require.True(t, record.Compliant)
	require.NotEmpty(t, record.Proof)

	w = doJSON(t, router, http.MethodGet, "/attestations/"+record.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/attestations/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyReceiptEndpoint(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/attest", testBatch(t, "pkg:npm/clean@1.0.0"))
	require.Equal(t, http.StatusOK, w.Code)

	var record service.AttestationRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))

	check := service.ReceiptCheckRequest{
		Proof:          record.Proof,
		ImageID:        record.ImageID,
		RootHash:       record.RootHash,
		BannedListHash: record.BannedListHash,
		Compliant:      record.Compliant,
		Timestamp:      record.Timestamp,
	}
	w = doJSON(t, router, http.MethodPost, "/verify-receipt", check)
	require.Equal(t, http.StatusOK, w.Code)

	check.Timestamp++
	w = doJSON(t, router, http.MethodPost, "/verify-receipt", check)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttestSBOMEndpoint(t *testing.T) {
	router := newTestRouter(t)
	batch := testBatch(t, "pkg:npm/clean@1.0.0")

	components := []map[string]string{{"name": "clean", "purl": "pkg:npm/clean@1.0.0"}}
	body := map[string]any{
		"sbom":          map[string]any{"bomFormat": "CycloneDX", "specVersion": "1.5", "components": components},
		"depth":         batch.Depth,
		"root":          batch.Root,
		"merkle_proofs": batch.MerkleProofs,
	}
	w := doJSON(t, router, http.MethodPost, "/attest-sbom", body)
	require.Equal(t, http.StatusOK, w.Code)

	// An SBOM component with no covering proof is a caller error.
	components = append(components, map[string]string{"name": "other", "purl": "pkg:npm/other@1.0.0"})
	body["sbom"] = map[string]any{"bomFormat": "CycloneDX", "specVersion": "1.5", "components": components}
	w = doJSON(t, router, http.MethodPost, "/attest-sbom", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
