package handlers

import (
	"github.com/CycloneDX/cyclonedx-go"

	"proof-verification-service/service"
)

// AttestSBOMRequest pairs a proof batch with the SBOM whose components it
// must cover.
type AttestSBOMRequest struct {
	SBOM cyclonedx.BOM `json:"sbom"`
	service.BatchRequest
}

type ErrorResponse struct {
	Error string `json:"error"`
}
