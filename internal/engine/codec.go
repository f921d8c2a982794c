package engine

import (
	"fmt"

	"github.com/riftgg/junglesearch/internal/board"
)

const (
	flatBoardHeaderLen = 2
	flatCellFields     = 3
	flatResultLen      = 10
)

// DecodeBoard parses the flat board vector the external interface defines:
// [rows, cols, (terrain, pieceType, owner) * rows * cols] in row-major
// order. The board's terrain is fixed geography (see internal/board.terrainAt),
// so the wire terrain field is consumed but not trusted — only piece type
// and owner are applied.
func DecodeBoard(flat []int) (*board.Board, error) {
	if len(flat) < flatBoardHeaderLen {
		return nil, fmt.Errorf("engine: flat board vector too short: got %d ints", len(flat))
	}

	rows, cols := flat[0], flat[1]
	if rows != board.Rows || cols != board.Cols {
		return nil, fmt.Errorf("engine: unexpected board shape %dx%d, want %dx%d", rows, cols, board.Rows, board.Cols)
	}

	want := flatBoardHeaderLen + rows*cols*flatCellFields
	if len(flat) < want {
		return nil, fmt.Errorf("engine: flat board vector has %d ints, want %d", len(flat), want)
	}

	b := board.NewEmptyBoard()
	k := flatBoardHeaderLen
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pt := board.PieceType(flat[k+1])
			owner := board.Player(flat[k+2])
			k += flatCellFields

			if pt >= 0 && pt < board.NumPieceTypes {
				if owner != board.Player0 && owner != board.Player1 {
					return nil, fmt.Errorf("engine: piece %v at (%d,%d) has invalid owner %d", pt, r, c, owner)
				}
				b.SetPiece(r, c, board.Piece{Type: pt, Owner: owner})
			}
		}
	}
	return b, nil
}

// EncodeResult packs a Result into the fixed 10-int flat vector the
// external interface's result contract defines. A not-found result only
// sets index 0 (found flag) and 9 (status); every other index stays zero.
func EncodeResult(res Result) []int {
	out := make([]int, flatResultLen)
	if !res.Found {
		out[9] = res.Status
		return out
	}

	out[0] = 1
	out[1] = res.FromRow
	out[2] = res.FromCol
	out[3] = res.ToRow
	out[4] = res.ToCol
	out[5] = int(res.PieceType)
	out[6] = res.DepthReached
	out[7] = int(res.Nodes)
	out[8] = res.Score
	out[9] = res.Status
	return out
}
