package engine

import "github.com/riftgg/junglesearch/internal/board"

// Evaluation term weights, carried over from evaluate_board_internal
// verbatim. They are expressed relative to AI (Player1) minus opponent
// (Player0), regardless of which side is actually to move — search.go
// flips the sign at the call site for the side not to move.
const (
	materialW                    = 1.0
	advancementW                 = 0.2
	advancementValueScaleDivisor = 150.0
	defensePenaltyW              = -0.7
	defensePenaltyStartRowOffset = 3
	trappedPenaltyW              = -3.0
	keySquareW                   = 0.3
	denProximityW                = 6.0
	denProximityMaxDistance      = 15
	attackThreatW                = 1.5
	generalValueScaleDivisor     = 100.0
)

var evalOrthoDR = [4]int{-1, 1, 0, 0}
var evalOrthoDC = [4]int{0, 0, -1, 1}

// Evaluate scores a board from Player1 (AI)'s perspective: positive favours
// Player1, negative favours Player0. Terminal positions short-circuit to
// the fixed win/lose/draw scores before any term is accumulated.
func Evaluate(b *board.Board) int {
	switch board.Status(b) {
	case board.Player1Wins:
		return WinScore
	case board.Player0Wins:
		return LoseScore
	case board.Draw:
		return DrawScore
	}

	var aiScore, oppScore float64
	var pieces [2]int

	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			p := b.PieceAt(r, c)
			if p.IsNone() {
				continue
			}
			pieces[p.Owner]++
			score := evaluatePiece(b, p, r, c)
			if p.Owner == board.Player1 {
				aiScore += score
			} else {
				oppScore += score
			}
		}
	}

	if pieces[board.Player1] == 0 {
		return LoseScore
	}
	if pieces[board.Player0] == 0 {
		return WinScore
	}

	return int(aiScore - oppScore)
}

// evaluatePiece accumulates every positional term for a single piece,
// always expressed as a positive-is-good contribution toward that piece's
// own owner.
func evaluatePiece(b *board.Board, p board.Piece, r, c int) float64 {
	value := float64(p.Value())
	var score float64

	score += value * materialW

	adv := advancement(p.Owner, r)
	score += float64(adv) * advancementW * (value / advancementValueScaleDivisor)

	if p.Type != board.Rat {
		score += defensePenalty(p.Owner, r, value)
	}

	if board.EffectiveRank(p, r, c) == 0 && b.At(r, c).Terrain == board.Trap {
		score += trappedPenaltyW * (value / generalValueScaleDivisor)
	}

	if isKeySquare(p.Owner, r, c) {
		score += keySquareW * (value / generalValueScaleDivisor)
	}

	score += denProximityBonus(p.Owner, r, c, value)
	score += attackThreatBonus(b, p, r, c)

	return score
}

// advancement is how many rows the piece has travelled from its own back
// rank toward the enemy den.
func advancement(owner board.Player, r int) int {
	if owner == board.Player1 {
		return r
	}
	return board.Rows - 1 - r
}

// defensePenalty reproduces the original's literal sign: for a Player1
// piece still in rows 0..2, (r-3)*-0.7 is positive and largest at r=0,
// shrinking toward zero at r=2 — despite the name, the term rewards
// staying deep rather than penalising it. Preserved exactly rather than
// corrected; see DESIGN.md Open Questions.
func defensePenalty(owner board.Player, r int, value float64) float64 {
	if owner == board.Player1 && r < defensePenaltyStartRowOffset {
		return float64(r-defensePenaltyStartRowOffset) * defensePenaltyW * (value / generalValueScaleDivisor)
	}
	if owner == board.Player0 && r > (board.Rows-1-defensePenaltyStartRowOffset) {
		return float64((board.Rows-1-r)-defensePenaltyStartRowOffset) * defensePenaltyW * (value / generalValueScaleDivisor)
	}
	return 0
}

func isKeySquare(owner board.Player, r, c int) bool {
	if owner == board.Player1 {
		return board.IsKeySquareP1(r, c)
	}
	return board.IsKeySquareP0(r, c)
}

// denProximityBonus rewards closing the Manhattan distance to the enemy
// den, scaled down to a tenth while the piece is still on its own half of
// the board (it only starts mattering once the piece has crossed over).
func denProximityBonus(owner board.Player, r, c int, value float64) float64 {
	denR, denC := enemyDen(owner)
	dist := abs(r-denR) + abs(c-denC)
	proximity := denProximityMaxDistance - dist
	if proximity < 0 {
		proximity = 0
	}

	advanceFactor := 1.0
	if (owner == board.Player1 && r < board.Rows/2) || (owner == board.Player0 && r > board.Rows/2) {
		advanceFactor = 0.1
	}

	return float64(proximity) * denProximityW * (value / generalValueScaleDivisor) * advanceFactor
}

func enemyDen(owner board.Player) (int, int) {
	if owner == board.Player1 {
		return board.Player0DenRow, board.Player0DenCol
	}
	return board.Player1DenRow, board.Player1DenCol
}

// attackThreatBonus rewards a piece for each adjacent enemy it could
// capture on its next turn.
func attackThreatBonus(b *board.Board, p board.Piece, r, c int) float64 {
	var bonus float64
	for d := 0; d < 4; d++ {
		tr, tc := r+evalOrthoDR[d], c+evalOrthoDC[d]
		if !board.InBounds(tr, tc) {
			continue
		}
		target := b.PieceAt(tr, tc)
		if target.IsNone() || target.Owner == p.Owner {
			continue
		}
		if board.CanCapture(p, r, c, target, tr, tc) {
			bonus += float64(target.Value()) * attackThreatW / generalValueScaleDivisor
		}
	}
	return bonus
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
