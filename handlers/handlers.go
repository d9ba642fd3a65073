package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"proof-verification-service/prover"
	"proof-verification-service/service"
)

type Handler struct {
	svc *service.Service
	log zerolog.Logger
}

func NewHandler(svc *service.Service, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// VerifyBatch checks a compact proof batch host-side. A non-compliant
// verdict is still a 200: it is a successful verification with a negative
// answer.
func (h *Handler) VerifyBatch(c *gin.Context) {
	var req service.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.svc.VerifyBatch(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Attest runs the proving flow and returns the persisted attestation
// record.
func (h *Handler) Attest(c *gin.Context) {
	var req service.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	record, err := h.svc.Attest(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// AttestSBOM is Attest with the proof batch bound to a CycloneDX SBOM: the
// batch must cover exactly the SBOM's component purls.
func (h *Handler) AttestSBOM(c *gin.Context) {
	var req AttestSBOMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	record, err := h.svc.AttestSBOM(c.Request.Context(), &req.SBOM, &req.BatchRequest)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// VerifyReceipt re-verifies a previously issued proof artifact.
func (h *Handler) VerifyReceipt(c *gin.Context) {
	var req service.ReceiptCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.svc.VerifyReceipt(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetAttestation(c *gin.Context) {
	record, err := h.svc.GetAttestation(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "attestation not found"})
			return
		}
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// respondError maps the error taxonomy onto status codes: caller mistakes
// are 400, proving-runtime failures 502, failed receipt verification 422,
// anything else 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	var reqErr *service.RequestError
	var rtErr *prover.RuntimeError

	switch {
	case errors.As(err, &reqErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.As(err, &rtErr):
		h.log.Error().Err(err).Msg("proving runtime failure")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	case errors.Is(err, prover.ErrVerificationFailed):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
