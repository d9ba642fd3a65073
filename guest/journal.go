package guest

import (
	"encoding/binary"
	"fmt"

	"proof-verification-service/smt"
)

// Journal is the payload committed by the proving program and the only
// information that leaves its boundary.
type Journal struct {
	Timestamp      uint64
	RootHash       smt.Hash256
	BannedListHash smt.Hash256
	Compliant      bool
}

// Journal wire layout, little-endian, 4-byte aligned:
//
//	[0:8)    timestamp u64
//	[8:40)   root hash
//	[40:72)  banned list hash
//	[72:76)  compliant as u32, 0 or 1
const journalSize = 76

// Encode serializes j into its fixed binary form.
func (j Journal) Encode() []byte {
	buf := make([]byte, journalSize)
	binary.LittleEndian.PutUint64(buf[0:8], j.Timestamp)
	copy(buf[8:40], j.RootHash[:])
	copy(buf[40:72], j.BannedListHash[:])
	if j.Compliant {
		binary.LittleEndian.PutUint32(buf[72:76], 1)
	}
	return buf
}

// DecodeJournal parses the fixed binary form. Any length other than the
// exact journal size is a format error, as is a compliant word that is not
// 0 or 1.
func DecodeJournal(b []byte) (Journal, error) {
	if len(b) != journalSize {
		return Journal{}, fmt.Errorf("journal must be %d bytes, got %d", journalSize, len(b))
	}

	var j Journal
	j.Timestamp = binary.LittleEndian.Uint64(b[0:8])
	copy(j.RootHash[:], b[8:40])
	copy(j.BannedListHash[:], b[40:72])

	switch binary.LittleEndian.Uint32(b[72:76]) {
	case 0:
	case 1:
		j.Compliant = true
	default:
		return Journal{}, fmt.Errorf("journal compliant flag must be 0 or 1")
	}
	return j, nil
}
