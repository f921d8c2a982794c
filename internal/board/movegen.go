package board

var orthoDR = [4]int{-1, 1, 0, 0}
var orthoDC = [4]int{0, 0, -1, 1}

// GenerateMoves appends every legal move for player into out. When
// capturesOnly is set, only moves that capture an enemy piece are
// generated — used by quiescence search. Row-major board order is
// preserved so move order is deterministic given the same board.
func GenerateMoves(b *Board, player Player, capturesOnly bool, out *MoveList) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := b.Squares[r][c].Piece
			if p.IsNone() || p.Owner != player {
				continue
			}
			generateForPiece(b, p, r, c, capturesOnly, out)
		}
	}
}

func generateForPiece(b *Board, p Piece, r, c int, capturesOnly bool, out *MoveList) {
	generateOrthogonal(b, p, r, c, capturesOnly, out)
	if p.Type == Tiger || p.Type == Lion {
		generateRiverJumps(b, p, r, c, capturesOnly, out)
	}
}

func generateOrthogonal(b *Board, p Piece, r, c int, capturesOnly bool, out *MoveList) {
	for d := 0; d < 4; d++ {
		tr, tc := r+orthoDR[d], c+orthoDC[d]
		if !InBounds(tr, tc) {
			continue
		}
		if IsOwnDen(p.Owner, tr, tc) {
			continue
		}
		if terrainAt(tr, tc) == Water && p.Type != Rat {
			continue
		}

		target := b.Squares[tr][tc].Piece
		if target.IsNone() {
			if capturesOnly {
				continue
			}
			out.Add(Move{
				FromRow: int8(r), FromCol: int8(c),
				ToRow: int8(tr), ToCol: int8(tc),
				PieceType: p.Type, CapturedType: NoPieceType,
			})
			continue
		}
		if target.Owner == p.Owner {
			continue
		}
		if !CanCapture(p, r, c, target, tr, tc) {
			continue
		}
		out.Add(Move{
			FromRow: int8(r), FromCol: int8(c),
			ToRow: int8(tr), ToCol: int8(tc),
			PieceType: p.Type, CapturedType: target.Type,
		})
	}
}

// riverCellsClear reports whether every given cell is free of any piece —
// the original engine's jump-blocking check never looks at piece type, so
// a lone Rat sitting mid-river blocks a Lion's jump exactly as an Elephant
// would. This quirk is deliberately preserved rather than "fixed" to the
// classical Rat-only blocking rule.
func riverCellsClear(b *Board, cells [][2]int) bool {
	for _, cell := range cells {
		if !b.Squares[cell[0]][cell[1]].Piece.IsNone() {
			return false
		}
	}
	return true
}

func isRiverJumpColumn(c int) bool {
	return c == 1 || c == 2 || c == 4 || c == 5
}

func isRiverRow(r int) bool {
	return r == 3 || r == 4 || r == 5
}

// generateRiverJumps generates the Lion/Tiger river-crossing jumps: both
// pieces may jump vertically across either lake, and the Lion alone may
// also jump horizontally across a lake along a river row.
func generateRiverJumps(b *Board, p Piece, r, c int, capturesOnly bool, out *MoveList) {
	if isRiverJumpColumn(c) {
		if r == 2 {
			tryJump(b, p, r, c, 6, c, [][2]int{{3, c}, {4, c}, {5, c}}, capturesOnly, out)
		}
		if r == 6 {
			tryJump(b, p, r, c, 2, c, [][2]int{{3, c}, {4, c}, {5, c}}, capturesOnly, out)
		}
	}

	if p.Type != Lion {
		return
	}
	if !isRiverRow(r) {
		return
	}
	switch c {
	case 0:
		tryJump(b, p, r, c, r, 3, [][2]int{{r, 1}, {r, 2}}, capturesOnly, out)
	case 3:
		tryJump(b, p, r, c, r, 0, [][2]int{{r, 1}, {r, 2}}, capturesOnly, out)
		tryJump(b, p, r, c, r, 6, [][2]int{{r, 4}, {r, 5}}, capturesOnly, out)
	case 6:
		tryJump(b, p, r, c, r, 3, [][2]int{{r, 4}, {r, 5}}, capturesOnly, out)
	}
}

func tryJump(b *Board, p Piece, fr, fc, tr, tc int, path [][2]int, capturesOnly bool, out *MoveList) {
	if !riverCellsClear(b, path) {
		return
	}
	if IsOwnDen(p.Owner, tr, tc) {
		return
	}
	target := b.Squares[tr][tc].Piece
	if target.IsNone() {
		if capturesOnly {
			return
		}
		out.Add(Move{
			FromRow: int8(fr), FromCol: int8(fc),
			ToRow: int8(tr), ToCol: int8(tc),
			PieceType: p.Type, CapturedType: NoPieceType,
		})
		return
	}
	if target.Owner == p.Owner {
		return
	}
	if !CanCapture(p, fr, fc, target, tr, tc) {
		return
	}
	out.Add(Move{
		FromRow: int8(fr), FromCol: int8(fc),
		ToRow: int8(tr), ToCol: int8(tc),
		PieceType: p.Type, CapturedType: target.Type,
	})
}
