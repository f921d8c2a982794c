package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/riftgg/junglesearch/internal/board"
)

// Result is the engine's answer to one FindBestMove call: the chosen move
// plus the diagnostics the external interface's flat result vector carries.
type Result struct {
	Found        bool
	FromRow      int
	FromCol      int
	ToRow        int
	ToCol        int
	PieceType    board.PieceType
	DepthReached int
	Nodes        uint64
	Score        int
	Status       int // 0 ok, 1 no legal move, 2 no move & generator empty
}

const (
	StatusOK                 = 0
	StatusNoLegalMove        = 1
	StatusGeneratorExhausted = 2
)

// Engine owns the long-lived transposition table and move orderer. Every
// FindBestMove call clears both and allocates a fresh Searcher, matching
// findBestMoveWasm's "every cold-start call discards prior session state"
// lifecycle — Engine itself only survives to avoid reallocating the (large)
// TT array between calls.
type Engine struct {
	cfg     Config
	tt      *TranspositionTable
	orderer *MoveOrderer
}

// NewEngine allocates the transposition table and move-ordering tables
// once, the Go equivalent of initialize_engine().
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:     cfg,
		tt:      NewTranspositionTable(cfg.TranspositionTableEntries),
		orderer: NewMoveOrderer(cfg),
	}
}

// FindBestMove runs one iterative-deepening search for Player1 — the AI
// side is always Player1, matching the original's hard-coded convention
// (spec.md §9). b is mutated and restored in place during the search but is
// left in its original state once FindBestMove returns.
func (e *Engine) FindBestMove(b *board.Board, maxDepth int, timeLimit time.Duration) Result {
	e.tt.Clear()
	e.orderer.Reset()

	// A position that is already decided (den captured, or one side wiped
	// out) is reported as terminal before any search node is touched, the
	// same short-circuit the recursive core applies to every node below
	// the root.
	if board.Status(b) != board.Ongoing {
		return Result{Found: false, Status: StatusNoLegalMove}
	}

	// An ongoing position where every Player1 piece is boxed in gets the
	// distinct generator-exhausted status so the caller can tell it apart
	// from an already-decided game.
	var rootMoves board.MoveList
	board.GenerateMoves(b, board.Player1, false, &rootMoves)
	if rootMoves.Len() == 0 {
		return Result{Found: false, Status: StatusGeneratorExhausted}
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeLimit)
	defer cancel()

	start := time.Now()
	searcher := NewSearcher(e.cfg, e.tt, e.orderer)

	bestMove := rootMoves.Get(0)
	bestScore := 0
	bestDepth := 0

	for depth := 1; depth <= maxDepth; depth++ {
		if ctx.Err() != nil {
			break
		}

		rootHash := board.ComputeHash(b, board.Player1)

		var ttMove board.Move
		ttMoveValid := false
		if entry, ok := e.tt.Probe(rootHash); ok && entry.BestMoveValid {
			ttMove = entry.BestMove
			ttMoveValid = true
		}
		e.orderer.ScoreMoves(&rootMoves, ttMove, ttMoveValid, -1)

		iterBestScore := -Infinity
		iterBestMove := rootMoves.Get(0)
		timedOut := false

		for i := 0; i < rootMoves.Len(); i++ {
			m := PickMove(&rootMoves, i)

			undo := b.MakeMove(m)
			childHash := board.MakeMoveHash(rootHash, m, board.Player1)

			score, aborted := searcher.Search(ctx, b, childHash, depth-1, 0, -Infinity, Infinity, board.Player0, true)

			b.UnmakeMove(undo)

			if aborted {
				timedOut = true
				break
			}
			score = -score

			if score > iterBestScore {
				iterBestScore = score
				iterBestMove = m
			}
		}

		if timedOut {
			break
		}

		bestScore = iterBestScore
		bestMove = iterBestMove
		bestDepth = depth

		log.Debug().
			Int("depth", depth).
			Int("score", bestScore).
			Uint64("nodes", searcher.Nodes()).
			Dur("elapsed", time.Since(start)).
			Msg("iterative deepening")

		// A forced mate within the search horizon cannot be improved on by
		// a deeper iteration; stop early.
		if isMateScore(bestScore) {
			break
		}
	}

	log.Info().
		Int("depth", bestDepth).
		Int("score", bestScore).
		Uint64("nodes", searcher.Nodes()).
		Dur("elapsed", time.Since(start)).
		Msg("search complete")

	return Result{
		Found:        true,
		FromRow:      int(bestMove.FromRow),
		FromCol:      int(bestMove.FromCol),
		ToRow:        int(bestMove.ToRow),
		ToCol:        int(bestMove.ToCol),
		PieceType:    bestMove.PieceType,
		DepthReached: bestDepth,
		Nodes:        searcher.Nodes(),
		Score:        bestScore,
		Status:       StatusOK,
	}
}
