// Package prover models the external proving runtime: an opaque service
// that executes the guest program over a proof batch and returns a receipt,
// and that can verify a receipt against the identity of the program that
// produced it.
package prover

import (
	"context"
	"fmt"

	"proof-verification-service/smt"
)

// Input is what crosses into the proving runtime: the serialized proof
// batch plus the public values the program commits over.
type Input struct {
	ProofsJSON []byte
	Root       smt.Hash256
	Timestamp  uint64
}

// Prover produces a receipt for one guest execution.
type Prover interface {
	Prove(ctx context.Context, in Input) (*Receipt, error)
}

// Verifier checks a receipt against an expected program identity.
type Verifier interface {
	Verify(ctx context.Context, r *Receipt, image ImageID) error
}

// RuntimeError reports a failure of the proving runtime itself. A failed
// proof attempt is a different thing from a successful proof of
// non-compliance, and callers must never collapse the two.
type RuntimeError struct {
	Op  string
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("proving runtime: %s: %v", e.Op, e.Err)
}

func (e *RuntimeError) Unwrap() error { return e.Err }
