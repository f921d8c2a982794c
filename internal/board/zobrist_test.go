package board

import "testing"

func TestComputeHash_DeterministicAcrossCalls(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(4, 3, Piece{Type: Elephant, Owner: Player1})
	b.SetPiece(5, 3, Piece{Type: Rat, Owner: Player0})

	h1 := ComputeHash(b, Player0)
	h2 := ComputeHash(b, Player0)
	if h1 != h2 {
		t.Fatalf("ComputeHash is not deterministic: %x vs %x", h1, h2)
	}
}

func TestComputeHash_SideToMoveAffectsHash(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(4, 3, Piece{Type: Elephant, Owner: Player1})

	h0 := ComputeHash(b, Player0)
	h1 := ComputeHash(b, Player1)
	if h0 == h1 {
		t.Fatalf("hash must differ when side to move differs")
	}
}

func TestMakeMoveHash_MatchesFullRecompute(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(4, 3, Piece{Type: Dog, Owner: Player1})
	b.SetPiece(5, 3, Piece{Type: Rat, Owner: Player0})

	hash := ComputeHash(b, Player1)

	m := Move{FromRow: 4, FromCol: 3, ToRow: 5, ToCol: 3, PieceType: Dog, CapturedType: Rat}
	undo := b.MakeMove(m)
	incrementalHash := MakeMoveHash(hash, m, Player1)

	fullHash := ComputeHash(b, Player0)
	if incrementalHash != fullHash {
		t.Fatalf("incremental hash %x does not match full recompute %x", incrementalHash, fullHash)
	}

	b.UnmakeMove(undo)
	if restored := ComputeHash(b, Player1); restored != hash {
		t.Fatalf("board did not restore to original hash after UnmakeMove")
	}
}

func TestNullMoveHash_OnlyFlipsSideToMove(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(0, 0, Piece{Type: Rat, Owner: Player1})

	h := ComputeHash(b, Player0)
	nh := NullMoveHash(h)
	back := NullMoveHash(nh)
	if back != h {
		t.Fatalf("applying NullMoveHash twice should restore the original hash")
	}
	if nh != ComputeHash(b, Player1) {
		t.Fatalf("NullMoveHash should equal recomputing with the opposite side to move")
	}
}
