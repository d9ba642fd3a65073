package prover

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"proof-verification-service/smt"
)

// Client talks to a remote proving runtime over HTTP. The transport
// protocol belongs to the runtime; only the journal payload inside the
// receipt is ours.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type proveRequest struct {
	Proofs    json.RawMessage `json:"proofs"`
	Root      string          `json:"root"`
	Timestamp uint64          `json:"timestamp"`
}

type proveResponse struct {
	Journal string `json:"journal"`
	Seal    string `json:"seal"`
}

type verifyRequest struct {
	Journal string   `json:"journal"`
	Seal    string   `json:"seal"`
	ImageID []string `json:"image_id"`
}

type verifyResponse struct {
	Verified bool   `json:"verified"`
	Error    string `json:"error"`
}

func (c *Client) Prove(ctx context.Context, in Input) (*Receipt, error) {
	body := proveRequest{
		Proofs:    json.RawMessage(in.ProofsJSON),
		Root:      smt.EncodeHex32(in.Root),
		Timestamp: in.Timestamp,
	}

	var out proveResponse
	if err := c.post(ctx, "/prove", body, &out); err != nil {
		return nil, &RuntimeError{Op: "prove", Err: err}
	}

	journal, err := base64.StdEncoding.DecodeString(out.Journal)
	if err != nil {
		return nil, &RuntimeError{Op: "prove", Err: fmt.Errorf("invalid journal encoding: %w", err)}
	}
	seal, err := DecodeSeal(out.Seal)
	if err != nil {
		return nil, &RuntimeError{Op: "prove", Err: fmt.Errorf("invalid seal encoding: %w", err)}
	}

	return &Receipt{Journal: journal, Seal: seal}, nil
}

func (c *Client) Verify(ctx context.Context, r *Receipt, image ImageID) error {
	body := verifyRequest{
		Journal: base64.StdEncoding.EncodeToString(r.Journal),
		Seal:    EncodeSeal(r.Seal),
		ImageID: image.Strings(),
	}

	var out verifyResponse
	if err := c.post(ctx, "/verify", body, &out); err != nil {
		return &RuntimeError{Op: "verify", Err: err}
	}
	if !out.Verified {
		if out.Error != "" {
			return fmt.Errorf("%w: %s", ErrVerificationFailed, out.Error)
		}
		return ErrVerificationFailed
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, bytes.TrimSpace(msg))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
