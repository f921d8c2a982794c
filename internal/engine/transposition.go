package engine

import "github.com/riftgg/junglesearch/internal/board"

// Bound classifies how a stored score relates to the window it was
// searched with, matching HashFlag in ai_engine.h.
type Bound int8

const (
	Exact Bound = iota
	LowerBound
	UpperBound
)

// TTEntry is one transposition table slot. BestMoveValid reports whether
// BestMove holds a real move; it is false in an empty slot and in an entry
// stored without a best move.
type TTEntry struct {
	Hash          uint64
	Score         int
	Depth         int
	Bound         Bound
	BestMove      board.Move
	BestMoveValid bool
}

// TranspositionTable is a flat, fixed-size, always-replace hash table —
// deliberately simpler than the teacher's age-based replacement scheme,
// matching the original engine's TT exactly: every Store overwrites
// whatever was in the slot, with no depth-or-age comparison gating it.
type TranspositionTable struct {
	entries []TTEntry
	mask    uint64
}

// NewTranspositionTable allocates a table with the given number of entries,
// rounded down to a power of two so indexing can use a bitmask.
func NewTranspositionTable(entries int) *TranspositionTable {
	size := roundDownPow2(entries)
	return &TranspositionTable{
		entries: make([]TTEntry, size),
		mask:    uint64(size - 1),
	}
}

func roundDownPow2(n int) int {
	if n < 1 {
		return 1
	}
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}

func (tt *TranspositionTable) index(hash uint64) uint64 {
	return hash & tt.mask
}

// Probe returns the entry stored at hash's slot and whether its hash field
// actually matches (a table this small collides constantly; a mismatch is
// an ordinary, expected miss, not an error).
func (tt *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	e := tt.entries[tt.index(hash)]
	if e.Hash != hash {
		return TTEntry{}, false
	}
	return e, true
}

// Store always overwrites the slot's previous contents, matching the
// original engine's unconditional assignment into the fixed array.
func (tt *TranspositionTable) Store(hash uint64, depth, score int, bound Bound, best board.Move, bestValid bool) {
	tt.entries[tt.index(hash)] = TTEntry{
		Hash:          hash,
		Score:         score,
		Depth:         depth,
		Bound:         bound,
		BestMove:      best,
		BestMoveValid: bestValid,
	}
}

// Clear wipes every slot, used at the start of each top-level search call
// so stale entries from a previous, unrelated position never leak in.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
}

func (tt *TranspositionTable) Len() int {
	return len(tt.entries)
}
