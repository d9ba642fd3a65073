package prover

import (
	"fmt"
	"strconv"
)

// ImageID identifies the exact program a receipt attests to, as eight u32
// words (the proving runtime's convention).
type ImageID [8]uint32

// ParseImageID converts the wire form, eight decimal strings, into an
// ImageID.
func ParseImageID(words []string) (ImageID, error) {
	if len(words) != 8 {
		return ImageID{}, fmt.Errorf("image id must have 8 words, got %d", len(words))
	}

	var id ImageID
	for i, w := range words {
		v, err := strconv.ParseUint(w, 10, 32)
		if err != nil {
			return ImageID{}, fmt.Errorf("image id word %d: %w", i, err)
		}
		id[i] = uint32(v)
	}
	return id, nil
}

// Strings renders the wire form of id.
func (id ImageID) Strings() []string {
	out := make([]string, len(id))
	for i, w := range id {
		out[i] = strconv.FormatUint(uint64(w), 10)
	}
	return out
}
