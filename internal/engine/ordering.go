package engine

import "github.com/riftgg/junglesearch/internal/board"

// Move ordering score bands, in descending priority: the transposition
// table's remembered best move goes first, then captures ranked by
// MVV-LVA, then the two killer moves recorded for this ply, then whatever
// the history table has accumulated for this piece/destination pair.
const (
	ttMoveScore     = 200000
	goodCaptureBase = 100000
	killerScore1    = 90000
	killerScore2    = 80000
)

// MoveOrderer holds the per-search killer and history tables used to sort
// moves before alpha-beta visits them. It is reset once per top-level
// search call (see Engine.FindBestMove), matching the original engine's
// "every cold-start call discards prior session state" lifecycle.
type MoveOrderer struct {
	killers [][2]board.Move
	history []int
	maxPly  int
}

func NewMoveOrderer(cfg Config) *MoveOrderer {
	killers := make([][2]board.Move, cfg.MaxPlyForKillers)
	for i := range killers {
		killers[i] = [2]board.Move{board.NoMove, board.NoMove}
	}
	return &MoveOrderer{
		killers: killers,
		history: make([]int, int(board.NumPieceTypes)*board.Rows*board.Cols),
		maxPly:  cfg.MaxPlyForKillers,
	}
}

func (mo *MoveOrderer) Reset() {
	for i := range mo.killers {
		mo.killers[i] = [2]board.Move{board.NoMove, board.NoMove}
	}
	for i := range mo.history {
		mo.history[i] = 0
	}
}

func historyIndex(pt board.PieceType, toR, toC int) int {
	return int(pt)*(board.Rows*board.Cols) + toR*board.Cols + toC
}

// ScoreMoves fills in OrderScore for every move in ml, using ttMove (which
// may be board.NoMove) as the hinted best move for this node.
func (mo *MoveOrderer) ScoreMoves(ml *board.MoveList, ttMove board.Move, ttMoveValid bool, ply int) {
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		m.OrderScore = int32(mo.scoreMove(m, ttMove, ttMoveValid, ply))
		ml.Set(i, m)
	}
}

func (mo *MoveOrderer) scoreMove(m board.Move, ttMove board.Move, ttMoveValid bool, ply int) int {
	if ttMoveValid && m.Equals(ttMove) {
		return ttMoveScore
	}
	if m.IsCapture() {
		victimValue := board.PieceInfo[m.CapturedType].Value
		attackerValue := board.PieceInfo[m.PieceType].Value
		return goodCaptureBase + victimValue*100 - attackerValue
	}
	if ply >= 0 && ply < mo.maxPly {
		if mo.killers[ply][0].Equals(m) {
			return killerScore1
		}
		if mo.killers[ply][1].Equals(m) {
			return killerScore2
		}
	}
	return mo.history[historyIndex(m.PieceType, int(m.ToRow), int(m.ToCol))]
}

// PickMove does a lazy selection sort: it finds the best-scoring move among
// ml.Moves[from:] and swaps it into position from, leaving the rest
// unsorted until needed. This avoids fully sorting moves that a beta cutoff
// will make the search never look at, while guaranteeing the same move
// order a full descending sort would produce.
func PickMove(ml *board.MoveList, from int) board.Move {
	best := from
	for i := from + 1; i < ml.Len(); i++ {
		if ml.Get(i).OrderScore > ml.Get(best).OrderScore {
			best = i
		}
	}
	ml.Swap(from, best)
	return ml.Get(from)
}

// UpdateKillers records a quiet move that caused a beta cutoff at ply,
// shifting the previous first killer down to second, the same
// shift-don't-overwrite-if-equal scheme as record_killer_move.
func (mo *MoveOrderer) UpdateKillers(ply int, m board.Move) {
	if ply < 0 || ply >= mo.maxPly {
		return
	}
	if mo.killers[ply][0].Equals(m) {
		return
	}
	mo.killers[ply][1] = mo.killers[ply][0]
	mo.killers[ply][0] = m
}

// UpdateHistory rewards a quiet cutoff move proportionally to depth
// squared, halving the whole table if any entry threatens to overflow —
// the same aging scheme ordering.go's UpdateHistory uses.
func (mo *MoveOrderer) UpdateHistory(m board.Move, depth int) {
	idx := historyIndex(m.PieceType, int(m.ToRow), int(m.ToCol))
	mo.history[idx] += depth * depth
	if mo.history[idx] >= 400000 {
		for i := range mo.history {
			mo.history[i] /= 2
		}
	}
}
