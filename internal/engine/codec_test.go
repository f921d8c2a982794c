package engine

import (
	"testing"

	"github.com/riftgg/junglesearch/internal/board"
)

func flatFromBoard(b *board.Board) []int {
	flat := make([]int, 0, flatBoardHeaderLen+board.Rows*board.Cols*flatCellFields)
	flat = append(flat, board.Rows, board.Cols)
	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			p := b.PieceAt(r, c)
			terrain := int(b.At(r, c).Terrain)
			if p.IsNone() {
				flat = append(flat, terrain, int(board.NoPieceType), int(board.NoPlayer))
				continue
			}
			flat = append(flat, terrain, int(p.Type), int(p.Owner))
		}
	}
	return flat
}

func TestDecodeBoard_RoundTrip(t *testing.T) {
	want := board.NewEmptyBoard()
	want.SetPiece(2, 3, board.Piece{Type: board.Lion, Owner: board.Player1})
	want.SetPiece(6, 3, board.Piece{Type: board.Elephant, Owner: board.Player0})

	got, err := DecodeBoard(flatFromBoard(want))
	if err != nil {
		t.Fatalf("DecodeBoard returned error: %v", err)
	}

	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			wp := want.PieceAt(r, c)
			gp := got.PieceAt(r, c)
			if wp != gp {
				t.Fatalf("piece mismatch at (%d,%d): want %v, got %v", r, c, wp, gp)
			}
		}
	}
}

func TestDecodeBoard_IgnoresWireTerrainField(t *testing.T) {
	flat := flatFromBoard(board.NewEmptyBoard())
	// Corrupt every terrain field; DecodeBoard must still derive terrain from
	// fixed geography rather than trusting the wire value.
	for i := flatBoardHeaderLen; i < len(flat); i += flatCellFields {
		flat[i] = int(board.Water)
	}

	got, err := DecodeBoard(flat)
	if err != nil {
		t.Fatalf("DecodeBoard returned error: %v", err)
	}
	if got.At(board.Player0DenRow, board.Player0DenCol).Terrain != board.Player0Den {
		t.Fatalf("expected den terrain to come from fixed geography, not the wire vector")
	}
}

func TestDecodeBoard_RejectsShortVector(t *testing.T) {
	if _, err := DecodeBoard([]int{board.Rows, board.Cols, 0, 0}); err == nil {
		t.Fatalf("expected an error for a truncated flat board vector")
	}
}

func TestDecodeBoard_RejectsPieceWithoutOwner(t *testing.T) {
	b := board.NewEmptyBoard()
	b.SetPiece(4, 3, board.Piece{Type: board.Dog, Owner: board.Player1})
	flat := flatFromBoard(b)
	// Clobber the owner field of the occupied cell with the no-owner sentinel.
	idx := flatBoardHeaderLen + (4*board.Cols+3)*flatCellFields
	flat[idx+2] = int(board.NoPlayer)

	if _, err := DecodeBoard(flat); err == nil {
		t.Fatalf("expected an error for a real piece with an invalid owner")
	}
}

func TestDecodeBoard_RejectsWrongShape(t *testing.T) {
	if _, err := DecodeBoard([]int{8, 7}); err == nil {
		t.Fatalf("expected an error for a board shape other than 9x7")
	}
}

func TestEncodeResult_Found(t *testing.T) {
	res := Result{
		Found:        true,
		FromRow:      2,
		FromCol:      3,
		ToRow:        6,
		ToCol:        3,
		PieceType:    board.Lion,
		DepthReached: 5,
		Nodes:        12345,
		Score:        800,
		Status:       StatusOK,
	}
	out := EncodeResult(res)
	if len(out) != flatResultLen {
		t.Fatalf("expected a %d-int result vector, got %d", flatResultLen, len(out))
	}
	want := []int{1, 2, 3, 6, 3, int(board.Lion), 5, 12345, 800, StatusOK}
	for i, v := range want {
		if out[i] != v {
			t.Fatalf("result[%d] = %d, want %d", i, out[i], v)
		}
	}
}

func TestEncodeResult_NotFound(t *testing.T) {
	out := EncodeResult(Result{Found: false, Status: StatusNoLegalMove})
	if out[0] != 0 {
		t.Fatalf("expected found flag 0, got %d", out[0])
	}
	if out[9] != StatusNoLegalMove {
		t.Fatalf("expected status %d, got %d", StatusNoLegalMove, out[9])
	}
	for i := 1; i < 9; i++ {
		if out[i] != 0 {
			t.Fatalf("expected result[%d] == 0 for a not-found result, got %d", i, out[i])
		}
	}
}
