package board

// Move is a single from/to step or jump. CapturedType is NoPieceType for a
// quiet move. OrderScore is scratch space the move orderer writes into and
// reads back during selection-sort picking — it carries no meaning outside
// a single search node.
type Move struct {
	FromRow, FromCol int8
	ToRow, ToCol     int8
	PieceType        PieceType
	CapturedType     PieceType
	OrderScore       int32
}

// NoMove is the sentinel meaning "no move available": both piece types are
// NoPieceType and the coordinates are zero.
var NoMove = Move{PieceType: NoPieceType, CapturedType: NoPieceType}

func (m Move) IsCapture() bool {
	return m.CapturedType != NoPieceType
}

func (m Move) Equals(o Move) bool {
	return m.FromRow == o.FromRow && m.FromCol == o.FromCol &&
		m.ToRow == o.ToRow && m.ToCol == o.ToCol
}

// MaxMovesPerNode bounds the fixed move buffer. Sixteen pieces times at most
// four orthogonal steps plus the rare Lion double-jump comfortably fit
// under 9*7*8 = 504, the bound the original engine sizes its move array to.
const MaxMovesPerNode = 504

// MoveList is a fixed-capacity, non-allocating move buffer, the same shape
// as the teacher's board.MoveList: an array plus a live count, reused node
// to node rather than growing a slice.
type MoveList struct {
	Moves [MaxMovesPerNode]Move
	Count int
}

func (ml *MoveList) Add(m Move) {
	ml.Moves[ml.Count] = m
	ml.Count++
}

func (ml *MoveList) Reset() {
	ml.Count = 0
}

func (ml *MoveList) Len() int {
	return ml.Count
}

func (ml *MoveList) Get(i int) Move {
	return ml.Moves[i]
}

func (ml *MoveList) Set(i int, m Move) {
	ml.Moves[i] = m
}

func (ml *MoveList) Swap(i, j int) {
	ml.Moves[i], ml.Moves[j] = ml.Moves[j], ml.Moves[i]
}

// UndoInfo captures what MakeMove overwrote, so UnmakeMove can restore the
// board exactly. Board.MakeMove/UnmakeMove never allocate: the caller owns
// the UndoInfo value (the search core keeps it in a local variable for the
// duration of each move's recursion).
type UndoInfo struct {
	Move          Move
	CapturedPiece Piece
	PrevHash      uint64
}

// MakeMove applies m to the board, returning the UndoInfo needed to reverse
// it. It does not validate legality — callers only ever pass moves that
// came out of GenerateMoves.
func (b *Board) MakeMove(m Move) UndoInfo {
	captured := b.Squares[m.ToRow][m.ToCol].Piece
	moving := b.Squares[m.FromRow][m.FromCol].Piece

	b.Squares[m.FromRow][m.FromCol].Piece = NoPiece
	b.Squares[m.ToRow][m.ToCol].Piece = moving

	return UndoInfo{Move: m, CapturedPiece: captured}
}

// UnmakeMove reverses a previous MakeMove using the UndoInfo it returned.
func (b *Board) UnmakeMove(undo UndoInfo) {
	m := undo.Move
	moving := b.Squares[m.ToRow][m.ToCol].Piece

	b.Squares[m.FromRow][m.FromCol].Piece = moving
	b.Squares[m.ToRow][m.ToCol].Piece = undo.CapturedPiece
}
