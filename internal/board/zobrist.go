package board

import "sync"

// lcgState implements the exact 64-bit linear congruential generator the
// deterministic hashing contract requires. It is not a general-purpose PRNG
// — it exists solely to produce a reproducible Zobrist key table across
// processes and languages, so the multiplier, increment, and seed below
// must not change.
type lcgState struct {
	state uint64
}

const (
	lcgMultiplier = 6364136223846793005
	lcgIncrement  = 1442695040888963407
	lcgSeed       = 1234567890123456789
)

func newLCG() *lcgState {
	return &lcgState{state: lcgSeed}
}

func (g *lcgState) next() uint64 {
	g.state = g.state*lcgMultiplier + lcgIncrement
	return g.state
}

var (
	zobristPiece      [NumPieceTypes][2][Rows][Cols]uint64
	zobristSideToMove uint64
	zobristOnce       sync.Once
)

// initZobrist fills the key table in the same (pieceType, owner, row, col)
// nesting order the original engine uses when consuming its RNG stream, so
// that re-deriving the table twice in the same process always yields the
// same keys.
func initZobrist() {
	zobristOnce.Do(func() {
		g := newLCG()
		for pt := PieceType(0); pt < NumPieceTypes; pt++ {
			for owner := 0; owner < 2; owner++ {
				for r := 0; r < Rows; r++ {
					for c := 0; c < Cols; c++ {
						zobristPiece[pt][owner][r][c] = g.next()
					}
				}
			}
		}
		zobristSideToMove = g.next()
	})
}

// ComputeHash derives the full Zobrist hash for b with sideToMove about to
// move, by XORing every occupied square's key plus the side-to-move key
// when it is Player1's turn. Used once at the root of each search; every
// descendant node updates incrementally instead (see MakeMoveHash).
func ComputeHash(b *Board, sideToMove Player) uint64 {
	initZobrist()
	var h uint64
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := b.Squares[r][c].Piece
			if p.IsNone() {
				continue
			}
			h ^= zobristPiece[p.Type][p.Owner][r][c]
		}
	}
	if sideToMove == Player1 {
		h ^= zobristSideToMove
	}
	return h
}

// MakeMoveHash incrementally updates hash for the move about to be applied
// via Board.MakeMove: XOR out the moving piece at its origin, XOR out a
// captured piece at the destination (if any), XOR the moving piece back in
// at the destination, then flip the side-to-move key.
func MakeMoveHash(hash uint64, m Move, mover Player) uint64 {
	hash ^= zobristPiece[m.PieceType][mover][m.FromRow][m.FromCol]
	if m.CapturedType != NoPieceType {
		hash ^= zobristPiece[m.CapturedType][mover.Opponent()][m.ToRow][m.ToCol]
	}
	hash ^= zobristPiece[m.PieceType][mover][m.ToRow][m.ToCol]
	hash ^= zobristSideToMove
	return hash
}

// NullMoveHash flips only the side-to-move key, used by null-move pruning.
func NullMoveHash(hash uint64) uint64 {
	return hash ^ zobristSideToMove
}
