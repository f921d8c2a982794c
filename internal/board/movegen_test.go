package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genMoves(b *Board, player Player, capturesOnly bool) *MoveList {
	ml := &MoveList{}
	GenerateMoves(b, player, capturesOnly, ml)
	return ml
}

func containsMove(ml *MoveList, fr, fc, tr, tc int) bool {
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if int(m.FromRow) == fr && int(m.FromCol) == fc && int(m.ToRow) == tr && int(m.ToCol) == tc {
			return true
		}
	}
	return false
}

func TestGenerateMoves_OrthogonalQuiet(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(1, 1, Piece{Type: Dog, Owner: Player1})

	ml := genMoves(b, Player1, false)
	require.Equal(t, 4, ml.Len(), "a Dog with four clear orthogonal neighbours should have exactly 4 moves")
	assert.True(t, containsMove(ml, 1, 1, 0, 1))
	assert.True(t, containsMove(ml, 1, 1, 2, 1))
	assert.True(t, containsMove(ml, 1, 1, 1, 0))
	assert.True(t, containsMove(ml, 1, 1, 1, 2))
}

func TestGenerateMoves_NonRatCannotEnterWater(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(2, 1, Piece{Type: Dog, Owner: Player1})

	ml := genMoves(b, Player1, false)
	assert.False(t, containsMove(ml, 2, 1, 3, 1), "a Dog must not be able to step into a river cell")
}

func TestGenerateMoves_RatCanEnterWater(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(2, 1, Piece{Type: Rat, Owner: Player1})

	ml := genMoves(b, Player1, false)
	assert.True(t, containsMove(ml, 2, 1, 3, 1), "a Rat should be able to step into a river cell")
}

func TestGenerateMoves_CannotEnterOwnDen(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(Player1DenRow+1, Player1DenCol, Piece{Type: Rat, Owner: Player1})

	ml := genMoves(b, Player1, false)
	assert.False(t, containsMove(ml, Player1DenRow+1, Player1DenCol, Player1DenRow, Player1DenCol))
}

func TestGenerateMoves_LionVerticalRiverJump(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(2, 1, Piece{Type: Lion, Owner: Player1})

	ml := genMoves(b, Player1, false)
	assert.True(t, containsMove(ml, 2, 1, 6, 1), "Lion should be able to jump the river vertically")
}

func TestGenerateMoves_TigerVerticalRiverJump(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(6, 4, Piece{Type: Tiger, Owner: Player0})

	ml := genMoves(b, Player0, false)
	assert.True(t, containsMove(ml, 6, 4, 2, 4), "Tiger should also be able to jump the river vertically")
}

func TestGenerateMoves_LionHorizontalRiverJump(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(4, 0, Piece{Type: Lion, Owner: Player1})

	ml := genMoves(b, Player1, false)
	assert.True(t, containsMove(ml, 4, 0, 4, 3), "Lion should be able to jump horizontally across a lake")
}

func TestGenerateMoves_TigerCannotJumpHorizontally(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(4, 0, Piece{Type: Tiger, Owner: Player1})

	ml := genMoves(b, Player1, false)
	assert.False(t, containsMove(ml, 4, 0, 4, 3), "only the Lion may jump horizontally")
}

func TestGenerateMoves_JumpBlockedByAnyPieceInRiver(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(2, 1, Piece{Type: Lion, Owner: Player1})
	b.SetPiece(4, 1, Piece{Type: Rat, Owner: Player0}) // a Rat mid-river still blocks the jump

	ml := genMoves(b, Player1, false)
	assert.False(t, containsMove(ml, 2, 1, 6, 1), "any piece in the river path should block the jump, including a Rat")
}

func TestGenerateMoves_JumpCanLandOnCapture(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(2, 1, Piece{Type: Lion, Owner: Player1})
	b.SetPiece(6, 1, Piece{Type: Cat, Owner: Player0})

	ml := genMoves(b, Player1, false)
	assert.True(t, containsMove(ml, 2, 1, 6, 1), "Lion should be able to jump and capture a weaker piece at landing")
}

func TestGenerateMoves_CapturesOnlyFiltersQuietMoves(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(2, 0, Piece{Type: Dog, Owner: Player1})
	b.SetPiece(2, 1, Piece{Type: Cat, Owner: Player0})

	ml := genMoves(b, Player1, true)
	require.Equal(t, 1, ml.Len())
	assert.True(t, containsMove(ml, 2, 0, 2, 1))
}
