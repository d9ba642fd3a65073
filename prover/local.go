package prover

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"proof-verification-service/guest"
)

// ErrVerificationFailed reports a receipt that does not check out against
// the expected program identity.
var ErrVerificationFailed = errors.New("receipt verification failed")

// LocalImageID identifies the in-process guest program.
var LocalImageID = ImageID{762784988, 708971587, 875085636, 889233355, 2952098016, 2925763534, 776266038, 2520316811}

// Local executes the guest program in-process and seals receipts with a
// recomputable digest. It stands in for the proving runtime in development
// and tests; its receipts carry no cryptographic weight.
type Local struct{}

func NewLocal() *Local { return &Local{} }

func (l *Local) Prove(ctx context.Context, in Input) (*Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, &RuntimeError{Op: "prove", Err: err}
	}

	journal := guest.Execute(in.ProofsJSON, in.Root, in.Timestamp).Encode()
	return &Receipt{Journal: journal, Seal: devSeal(LocalImageID, journal)}, nil
}

func (l *Local) Verify(ctx context.Context, r *Receipt, image ImageID) error {
	if err := ctx.Err(); err != nil {
		return &RuntimeError{Op: "verify", Err: err}
	}

	want := devSeal(image, r.Journal)
	if len(r.Seal) != len(want) {
		return ErrVerificationFailed
	}
	for i := range want {
		if r.Seal[i] != want[i] {
			return ErrVerificationFailed
		}
	}
	return nil
}

func devSeal(image ImageID, journal []byte) []uint32 {
	h := sha256.New()
	var word [4]byte
	for _, w := range image {
		binary.LittleEndian.PutUint32(word[:], w)
		h.Write(word[:])
	}
	h.Write(journal)

	sum := h.Sum(nil)
	seal := make([]uint32, 8)
	for i := range seal {
		seal[i] = binary.LittleEndian.Uint32(sum[4*i:])
	}
	return seal
}
