package engine

import (
	"context"

	"github.com/riftgg/junglesearch/internal/board"
)

// Infinity bounds the alpha-beta window at the root; it is well clear of
// WinScore/LoseScore so mate-distance adjustments never overflow past it.
const Infinity = 1 << 30

// Searcher owns the per-top-level-call scratch state the negamax core
// reaches into on every node: the node counter and the repetition path
// stack. The transposition table and move orderer are shared in from the
// Engine instead, matching the teacher's split between a long-lived Engine
// and a Searcher that is fresh per search.
type Searcher struct {
	cfg     Config
	tt      *TranspositionTable
	orderer *MoveOrderer

	nodes      uint64
	pathHashes []uint64
}

// NewSearcher creates a Searcher for one top-level FindBestMove call. tt and
// orderer are expected to already have been cleared by the caller.
func NewSearcher(cfg Config, tt *TranspositionTable, orderer *MoveOrderer) *Searcher {
	return &Searcher{
		cfg:        cfg,
		tt:         tt,
		orderer:    orderer,
		pathHashes: make([]uint64, 0, 64),
	}
}

func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

func (s *Searcher) timeUp(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// repeated reports whether hash already occurs at least twice among the
// ancestors currently on the path stack — the third visit to a position
// (two prior occurrences plus this one) is treated as a drawn repetition.
func (s *Searcher) repeated(hash uint64) bool {
	count := 0
	for _, h := range s.pathHashes {
		if h == hash {
			count++
		}
	}
	return count >= 2
}

// negamaxTerminalScore adjusts a decided GameStatus into a score relative to
// toMove, shrinking toward zero as ply grows so the search prefers faster
// wins and slower losses regardless of which side is asking.
func negamaxTerminalScore(status board.GameStatus, toMove board.Player, ply int) int {
	switch status {
	case board.Player1Wins:
		if toMove == board.Player1 {
			return WinScore - ply
		}
		return -(WinScore - ply)
	case board.Player0Wins:
		if toMove == board.Player1 {
			return LoseScore + ply
		}
		return -(LoseScore + ply)
	default:
		return DrawScore
	}
}

// evalFor returns Evaluate(b) — which is always expressed as
// Player1-minus-Player0 — flipped to toMove's point of view.
func evalFor(toMove board.Player, b *board.Board) int {
	e := Evaluate(b)
	if toMove == board.Player1 {
		return e
	}
	return -e
}

// Search runs negamax alpha-beta from a node where toMove is on the move.
// It returns (score, aborted); aborted is true iff the time budget expired
// somewhere in this subtree, in which case score is meaningless and the
// caller must not store anything derived from it.
func (s *Searcher) Search(ctx context.Context, b *board.Board, hash uint64, depth, ply int, alpha, beta int, toMove board.Player, allowNull bool) (int, bool) {
	s.nodes++
	if s.nodes%s.cfg.NodesPerTimeCheck == 0 && s.timeUp(ctx) {
		return 0, true
	}

	if ply > 0 && s.repeated(hash) {
		return DrawScore, false
	}
	s.pathHashes = append(s.pathHashes, hash)
	defer func() { s.pathHashes = s.pathHashes[:len(s.pathHashes)-1] }()

	var ttMove board.Move
	ttMoveValid := false
	if ply > 0 {
		if entry, ok := s.tt.Probe(hash); ok {
			ttMove = entry.BestMove
			ttMoveValid = entry.BestMoveValid
			if entry.Depth >= depth {
				switch entry.Bound {
				case Exact:
					return entry.Score, false
				case LowerBound:
					if entry.Score > alpha {
						alpha = entry.Score
					}
				case UpperBound:
					if entry.Score < beta {
						beta = entry.Score
					}
				}
				if alpha >= beta {
					return entry.Score, false
				}
			}
		}
	}

	if status := board.Status(b); status != board.Ongoing {
		return negamaxTerminalScore(status, toMove, ply), false
	}

	if depth <= 0 {
		return s.quiescence(ctx, b, hash, alpha, beta, toMove, 0)
	}

	if allowNull && depth >= s.cfg.NullMoveReduction+1 && ply > 0 {
		nullHash := board.NullMoveHash(hash)
		score, aborted := s.Search(ctx, b, nullHash, depth-1-s.cfg.NullMoveReduction, ply+1, -beta, -beta+1, toMove.Opponent(), false)
		if aborted {
			return 0, true
		}
		// A fail-high backed by a mate-range score is not trusted at the
		// reduced depth; fall through to the full search instead of pruning.
		if -score >= beta && !isMateScore(-score) {
			return beta, false
		}
	}

	var moves board.MoveList
	board.GenerateMoves(b, toMove, false, &moves)
	if moves.Len() == 0 {
		return LoseScore + ply, false
	}

	s.orderer.ScoreMoves(&moves, ttMove, ttMoveValid, ply)

	origAlpha := alpha
	bestScore := -Infinity
	bestMove := board.NoMove
	bestMoveValid := false
	searched := 0

	for i := 0; i < moves.Len(); i++ {
		m := PickMove(&moves, i)

		undo := b.MakeMove(m)
		childHash := board.MakeMoveHash(hash, m, toMove)

		childDepth := depth - 1
		reduced := depth >= s.cfg.LMRMinDepth && searched >= s.cfg.LMRMovesTriedThreshold && !m.IsCapture() && ply > 0
		if reduced {
			childDepth = depth - 1 - s.cfg.LMRReductionBase
		}

		score, aborted := s.Search(ctx, b, childHash, childDepth, ply+1, -beta, -alpha, toMove.Opponent(), true)
		if aborted {
			b.UnmakeMove(undo)
			return 0, true
		}
		score = -score

		if reduced && score > alpha {
			score, aborted = s.Search(ctx, b, childHash, depth-1, ply+1, -beta, -alpha, toMove.Opponent(), true)
			if aborted {
				b.UnmakeMove(undo)
				return 0, true
			}
			score = -score
		}

		b.UnmakeMove(undo)
		searched++

		if score > bestScore {
			bestScore = score
			bestMove = m
			bestMoveValid = true
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if !m.IsCapture() {
				s.orderer.UpdateKillers(ply, m)
				s.orderer.UpdateHistory(m, depth)
			}
			break
		}
	}

	bound := Exact
	switch {
	case bestScore <= origAlpha:
		bound = UpperBound
	case bestScore >= beta:
		bound = LowerBound
	}
	s.tt.Store(hash, depth, bestScore, bound, bestMove, bestMoveValid)

	return bestScore, false
}

// quiescence resolves capture sequences beyond the nominal horizon so a
// side is never evaluated mid-exchange. It never touches the repetition
// path stack or the transposition table — captures terminate quickly on
// their own and the original engine never consulted either there.
func (s *Searcher) quiescence(ctx context.Context, b *board.Board, hash uint64, alpha, beta int, toMove board.Player, qDepth int) (int, bool) {
	s.nodes++
	if s.nodes%s.cfg.NodesPerTimeCheck == 0 && s.timeUp(ctx) {
		return 0, true
	}

	standPat := evalFor(toMove, b)
	if qDepth >= s.cfg.MaxQuiescenceDepth {
		return standPat, false
	}
	if standPat >= beta {
		return beta, false
	}
	if standPat > alpha {
		alpha = standPat
	}

	var moves board.MoveList
	board.GenerateMoves(b, toMove, true, &moves)
	s.orderer.ScoreMoves(&moves, board.NoMove, false, -1)

	for i := 0; i < moves.Len(); i++ {
		m := PickMove(&moves, i)

		undo := b.MakeMove(m)
		childHash := board.MakeMoveHash(hash, m, toMove)
		score, aborted := s.quiescence(ctx, b, childHash, -beta, -alpha, toMove.Opponent(), qDepth+1)
		b.UnmakeMove(undo)

		if aborted {
			return 0, true
		}
		score = -score

		if score >= beta {
			return beta, false
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha, false
}
