package board

import "strings"

// Square is one cell of the board: its fixed terrain plus whatever piece
// currently occupies it.
type Square struct {
	Terrain Terrain
	Piece   Piece
}

// Board is the full 9x7 Jungle board. It is a plain value type — copying a
// Board (see Clone) copies every square. The search core does not copy it
// per ply; it applies and reverts moves in place with MakeMove/UnmakeMove.
type Board struct {
	Squares [Rows][Cols]Square
}

// NewEmptyBoard returns a board with correct terrain and no pieces.
func NewEmptyBoard() *Board {
	b := &Board{}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			b.Squares[r][c] = Square{Terrain: terrainAt(r, c), Piece: NoPiece}
		}
	}
	return b
}

// Clone returns a deep (by value) copy of b. Mirrors the teacher's
// Position.Copy name even though Go's value semantics make it a plain
// dereference-and-return.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// InBounds reports whether (r, c) lies on the board.
func InBounds(r, c int) bool {
	return r >= 0 && r < Rows && c >= 0 && c < Cols
}

func (b *Board) At(r, c int) Square {
	return b.Squares[r][c]
}

func (b *Board) PieceAt(r, c int) Piece {
	return b.Squares[r][c].Piece
}

func (b *Board) SetPiece(r, c int, p Piece) {
	b.Squares[r][c].Piece = p
}

// IsOwnDen reports whether (r, c) is the den belonging to owner.
func IsOwnDen(owner Player, r, c int) bool {
	t := terrainAt(r, c)
	if owner == Player0 {
		return t == Player0Den
	}
	return t == Player1Den
}

// IsEnemyDen reports whether (r, c) is the den belonging to owner's
// opponent — occupying it is an immediate win.
func IsEnemyDen(owner Player, r, c int) bool {
	return IsOwnDen(owner.Opponent(), r, c)
}

// isOwnTrap reports whether (r, c) is a trap cell belonging to owner (traps
// have no effect on their own owner's pieces).
func isOwnTrap(owner Player, r, c int) bool {
	if owner == Player0 {
		return isPlayer0Trap(r, c)
	}
	return isPlayer1Trap(r, c)
}

// EffectiveRank returns p's capture rank at (r, c): zero if p is standing on
// a trap belonging to its opponent (traps neutralise rank only for the
// owner they don't belong to), otherwise p's ordinary rank.
func EffectiveRank(p Piece, r, c int) int {
	if p.IsNone() {
		return 0
	}
	if terrainAt(r, c) == Trap && !isOwnTrap(p.Owner, r, c) {
		return 0
	}
	return p.Rank()
}

// CanCapture reports whether attacker, standing at (ar, ac), may capture
// defender. Preserves every water/rat/elephant exception from the source
// rules exactly.
func CanCapture(attacker Piece, ar, ac int, defender Piece, dr, dc int) bool {
	if attacker.IsNone() || defender.IsNone() {
		return false
	}
	if attacker.Owner == defender.Owner {
		return false
	}

	attackerInWater := terrainAt(ar, ac) == Water
	defenderInWater := terrainAt(dr, dc) == Water

	if attackerInWater && attacker.Type != Rat {
		return false
	}
	if attackerInWater && !defenderInWater {
		return defender.Type == Elephant
	}

	if attacker.Type == Rat && defender.Type == Elephant {
		return !attackerInWater
	}
	if attacker.Type == Elephant && defender.Type == Rat {
		return false
	}

	return EffectiveRank(attacker, ar, ac) >= EffectiveRank(defender, dr, dc)
}

// String renders the board as a 9-row grid, one character column per cell,
// for debugging and test failure output.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := b.Squares[r][c].Piece
			if p.IsNone() {
				sb.WriteByte('.')
			} else if p.Owner == Player1 {
				sb.WriteByte("RCDWPTLE"[p.Type])
			} else {
				sb.WriteByte("rcdwptle"[p.Type])
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
