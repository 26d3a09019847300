package exodus

import (
	"fmt"
	"sort"
)

// BlockIndex partitions the global element id space over the element
// blocks: block i (1-based ordinal, file order) owns the 1-based global ids
// (start[i-1], start[i-1]+count[i-1]], with start computed by prefix sum.
// The table is built once at open and never mutated.
type BlockIndex struct {
	names    []string
	ordinals map[string]int
	counts   []int
	starts   []int
}

func NewBlockIndex(names []string, counts []int) (bi *BlockIndex) {
	bi = &BlockIndex{
		names:    names,
		ordinals: make(map[string]int, len(names)),
		counts:   counts,
		starts:   make([]int, len(counts)),
	}
	for i, name := range names {
		bi.ordinals[name] = i + 1
	}
	for i := 1; i < len(counts); i++ {
		bi.starts[i] = bi.starts[i-1] + counts[i-1]
	}
	return
}

// Ordinal returns the 1-based position of a block. Callers must lowercase
// the name first; lookups are exact.
func (bi *BlockIndex) Ordinal(name string) (ord int, err error) {
	ord, ok := bi.ordinals[name]
	if !ok {
		return 0, fmt.Errorf("%w: no block named %q", ErrUnknownName, name)
	}
	return ord, nil
}

// ElementCount returns the element count of the block at 1-based ordinal.
func (bi *BlockIndex) ElementCount(ord int) int { return bi.counts[ord-1] }

// StartOffset returns the 0-based global id of the first element of the
// block at 1-based ordinal.
func (bi *BlockIndex) StartOffset(ord int) int { return bi.starts[ord-1] }

// TotalElements returns the element count summed over all blocks.
func (bi *BlockIndex) TotalElements() (total int) {
	for _, count := range bi.counts {
		total += count
	}
	return
}

// LocateBlock returns the ordinal of the block owning a 1-based global
// element id, by floor binary search over the start offsets. Ids outside
// every block's range fail with ErrOutOfRange.
func (bi *BlockIndex) LocateBlock(elemID int) (ord int, err error) {
	if elemID < 1 || elemID > bi.TotalElements() {
		return 0, fmt.Errorf("%w: element id %d not in [1, %d]",
			ErrOutOfRange, elemID, bi.TotalElements())
	}
	// counts the blocks whose start offset lies below elemID
	ord = sort.SearchInts(bi.starts, elemID)
	return ord, nil
}
