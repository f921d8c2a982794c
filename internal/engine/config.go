// Package engine implements the evaluator, transposition table, move
// orderer, and iterative-deepening search core that sit on top of
// internal/board's rules and move generation.
package engine

// Config holds the tunable limits the original engine fixed as #defines.
// They are exposed here as ordinary values — not because any of them is
// expected to change at runtime, but so a host embedding this engine can
// size tables for its own memory budget without a recompile, the same way
// the teacher externalises search limits through its Difficulty settings.
type Config struct {
	// TranspositionTableEntries is rounded down to the nearest power of two.
	TranspositionTableEntries int
	MaxQuiescenceDepth        int
	MaxPlyForKillers          int
	NullMoveReduction         int
	LMRReductionBase          int
	LMRMovesTriedThreshold    int
	LMRMinDepth               int
	NodesPerTimeCheck         uint64
}

// DefaultConfig mirrors ai_engine.h's constants exactly.
func DefaultConfig() Config {
	return Config{
		TranspositionTableEntries: 1 << 20,
		MaxQuiescenceDepth:        4,
		MaxPlyForKillers:          30,
		NullMoveReduction:         3,
		LMRReductionBase:          1,
		LMRMovesTriedThreshold:    4,
		LMRMinDepth:               3,
		NodesPerTimeCheck:         2048,
	}
}

const (
	WinScore  = 20000
	LoseScore = -20000
	DrawScore = 0

	// mateHorizon bounds how much ply adjustment a mate score can carry:
	// twice the killer-table ply ceiling, comfortably past any reachable
	// search depth.
	mateHorizon = 60
)

// isMateScore reports whether score lies in the win/loss band reserved for
// ply-adjusted terminal outcomes rather than ordinary evaluations.
func isMateScore(score int) bool {
	return score >= WinScore-mateHorizon || score <= LoseScore+mateHorizon
}
