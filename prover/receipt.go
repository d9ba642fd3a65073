package prover

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

// Receipt is the artifact returned by the proving runtime: the committed
// journal bytes plus an opaque seal attesting that the identified program
// produced them.
type Receipt struct {
	Journal []byte
	Seal    []uint32
}

// EncodeReceipt serializes r as base64 over a little-endian u32 word
// stream: one word holding the journal byte length, the journal padded to
// word alignment, then the seal words.
func EncodeReceipt(r *Receipt) string {
	journalWords := (len(r.Journal) + 3) / 4
	buf := make([]byte, 4+4*journalWords+4*len(r.Seal))

	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(r.Journal)))
	copy(buf[4:], r.Journal)
	for i, w := range r.Seal {
		binary.LittleEndian.PutUint32(buf[4+4*journalWords+4*i:], w)
	}
	return base64.StdEncoding.EncodeToString(buf)
}

// EncodeSeal renders seal words alone as base64 of their little-endian
// byte stream.
func EncodeSeal(seal []uint32) string {
	buf := make([]byte, 4*len(seal))
	for i, w := range seal {
		binary.LittleEndian.PutUint32(buf[4*i:], w)
	}
	return base64.StdEncoding.EncodeToString(buf)
}

// DecodeSeal parses the base64 form of a bare seal word stream.
func DecodeSeal(s string) ([]uint32, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 seal: %w", err)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("seal length %d is not a multiple of 4", len(raw))
	}
	seal := make([]uint32, len(raw)/4)
	for i := range seal {
		seal[i] = binary.LittleEndian.Uint32(raw[4*i:])
	}
	return seal, nil
}

// DecodeReceipt parses the base64 word-stream form. The decoded byte length
// must be 4-byte aligned; anything else is a format error.
func DecodeReceipt(s string) (*Receipt, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 proof: %w", err)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("proof length %d is not a multiple of 4", len(raw))
	}
	if len(raw) < 4 {
		return nil, fmt.Errorf("proof is too short to hold a journal")
	}

	// The length word is untrusted; bound-check it in 64-bit space so an
	// oversized value cannot wrap a native int.
	journalLen := binary.LittleEndian.Uint32(raw[0:4])
	journalWords := (uint64(journalLen) + 3) / 4
	if 4+4*journalWords > uint64(len(raw)) {
		return nil, fmt.Errorf("proof journal length %d exceeds payload", journalLen)
	}

	journal := make([]byte, journalLen)
	copy(journal, raw[4:4+journalLen])

	sealBytes := raw[4+4*journalWords:]
	seal := make([]uint32, len(sealBytes)/4)
	for i := range seal {
		seal[i] = binary.LittleEndian.Uint32(sealBytes[4*i:])
	}

	return &Receipt{Journal: journal, Seal: seal}, nil
}
