package smt

import (
	"math/big"
	"sort"
)

// testTree is a minimal sparse Merkle tree used to produce real roots and
// compact proofs for the tests below. It mirrors the builder on the
// proof-generating side: members are inserted with leaf value 1, everything
// else is implicitly an empty leaf.
type testTree struct {
	nodes map[Hash256][2]Hash256
	root  Hash256
}

type treeItem struct {
	path  *big.Int
	value string
}

func buildTestTree(members []string) *testTree {
	t := &testTree{nodes: make(map[Hash256][2]Hash256)}

	items := make([]treeItem, 0, len(members))
	for _, purl := range members {
		key := HashPathKey(purl)
		items = append(items, treeItem{path: new(big.Int).SetBytes(key[:]), value: "1"})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].path.Cmp(items[j].path) < 0
	})

	t.root = t.build(0, items)
	return t
}

// build descends from the root; level counts levels below the root, so the
// branch bit at a given level is TreeDepth-1-level.
func (t *testTree) build(level int, items []treeItem) Hash256 {
	if len(items) == 0 {
		return DefaultHash(TreeDepth - level)
	}
	if level == TreeDepth {
		return HashLeaf(items[0].value)
	}

	bitIndex := TreeDepth - 1 - level
	split := sort.Search(len(items), func(i int) bool {
		return items[i].path.Bit(bitIndex) == 1
	})

	left := t.build(level+1, items[:split])
	right := t.build(level+1, items[split:])
	parent := HashPair(left, right)
	t.nodes[parent] = [2]Hash256{left, right}
	return parent
}

// proofFor builds the compact non-membership proof for a purl that is not a
// member of the tree.
func (t *testTree) proofFor(purl string) *CompactProof {
	key := HashPathKey(purl)
	path := new(big.Int).SetBytes(key[:])

	siblings := make([]Hash256, TreeDepth)
	current := t.root
	for d := TreeDepth - 1; d >= 0; d-- {
		children, ok := t.nodes[current]
		if !ok {
			// Inside an empty subtree: both children are defaults.
			siblings[d] = DefaultHash(d)
			current = DefaultHash(d)
			continue
		}
		if path.Bit(d) == 0 {
			siblings[d] = children[1]
			current = children[0]
		} else {
			siblings[d] = children[0]
			current = children[1]
		}
	}

	var bitmap Hash256
	var provided []string
	for d := 0; d < TreeDepth; d++ {
		if siblings[d] == DefaultHash(d) {
			continue
		}
		bitmap[d/8] |= 1 << (d % 8)
		provided = append(provided, EncodeHex32(siblings[d]))
	}

	return &CompactProof{
		Purl:      purl,
		Value:     "0",
		LeafIndex: EncodeHex32(key),
		Siblings:  provided,
		Bitmap:    EncodeHex32(bitmap),
	}
}
