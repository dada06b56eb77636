package chess

// CastleRights tracks which castling moves remain available to each side.
type CastleRights uint8

const (
	// CastleWhiteKingside permits white to castle with the h1 rook.
	CastleWhiteKingside CastleRights = 1 << iota
	// CastleWhiteQueenside permits white to castle with the a1 rook.
	CastleWhiteQueenside
	// CastleBlackKingside permits black to castle with the h8 rook.
	CastleBlackKingside
	// CastleBlackQueenside permits black to castle with the a8 rook.
	CastleBlackQueenside

	// CastleAll is the full set of castling rights.
	CastleAll = CastleWhiteKingside | CastleWhiteQueenside |
		CastleBlackKingside | CastleBlackQueenside
)

// A Board holds the placement of all pieces together with the state a
// square mapping alone cannot carry: remaining castle rights and the
// current en passant target square (NoSquare when absent).
type Board struct {
	squares  [numSquares]Piece
	castling CastleRights
	epSquare Square
}

// StartingPosition returns a board with all pieces on their initial
// squares, full castling rights and no en passant target.
func StartingPosition() Board {
	b := Board{castling: CastleAll, epSquare: NoSquare}
	back := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, t := range back {
		b.squares[NewSquare(file, 0)] = NewPiece(t, White)
		b.squares[NewSquare(file, 1)] = NewPiece(Pawn, White)
		b.squares[NewSquare(file, 6)] = NewPiece(Pawn, Black)
		b.squares[NewSquare(file, 7)] = NewPiece(t, Black)
	}
	return b
}

// NewBoard returns an empty board suitable for constructing positions
// piece by piece.
func NewBoard() Board {
	return Board{epSquare: NoSquare}
}

// Piece returns the piece on the given square, or NoPiece.
func (b *Board) Piece(s Square) Piece {
	if !s.Valid() {
		return NoPiece
	}
	return b.squares[s]
}

// SetPiece places a piece on the given square, replacing any occupant.
func (b *Board) SetPiece(s Square, p Piece) {
	if s.Valid() {
		b.squares[s] = p
	}
}

// CastleRights returns the remaining castling rights.
func (b *Board) CastleRights() CastleRights {
	return b.castling
}

// SetCastleRights replaces the castling rights, used when restoring a
// board from persisted state.
func (b *Board) SetCastleRights(r CastleRights) {
	b.castling = r & CastleAll
}

// EnPassant returns the current en passant target square or NoSquare.
func (b *Board) EnPassant() Square {
	return b.epSquare
}

// SetEnPassant replaces the en passant target square, used when restoring
// a board from persisted state.
func (b *Board) SetEnPassant(s Square) {
	if !s.Valid() {
		s = NoSquare
	}
	b.epSquare = s
}

// kingSquare locates the king of the given color, or NoSquare if the
// position has none (only possible for hand-built boards).
func (b *Board) kingSquare(c Color) Square {
	target := NewPiece(King, c)
	for s := Square(0); s < numSquares; s++ {
		if b.squares[s] == target {
			return s
		}
	}
	return NoSquare
}

// Apply commits a move for the given color, including the side effects of
// special moves: capture removal, en passant capture, castling rook
// relocation and queen promotion. The move must already have been
// validated with LegalMove; Apply performs no legality checking.
func (b *Board) Apply(c Color, m Move) {
	p := b.squares[m.From]

	// en passant captures remove the passed pawn, which is not on the
	// destination square
	if p.Type() == Pawn && m.To == b.epSquare && m.From.File() != m.To.File() {
		b.squares[NewSquare(m.To.File(), m.From.Rank())] = NoPiece
	}

	// a double step opens an en passant target for one reply only
	b.epSquare = NoSquare
	if p.Type() == Pawn && (m.To-m.From == 16 || m.From-m.To == 16) {
		b.epSquare = (m.From + m.To) / 2
	}

	// castling relocates the rook as well
	if p.Type() == King {
		switch {
		case m.To-m.From == 2:
			rook := NewSquare(7, m.From.Rank())
			b.squares[m.To-1], b.squares[rook] = b.squares[rook], NoPiece
		case m.From-m.To == 2:
			rook := NewSquare(0, m.From.Rank())
			b.squares[m.To+1], b.squares[rook] = b.squares[rook], NoPiece
		}
	}

	b.squares[m.To], b.squares[m.From] = p, NoPiece

	// promotion is fixed to queen
	if p.Type() == Pawn && (m.To.Rank() == 0 || m.To.Rank() == 7) {
		b.squares[m.To] = NewPiece(Queen, c)
	}

	b.degradeCastleRights(m)
}

// degradeCastleRights removes castling rights when a king or rook leaves
// its home square, or when a rook's home square is captured onto.
func (b *Board) degradeCastleRights(m Move) {
	for _, s := range [2]Square{m.From, m.To} {
		switch s {
		case Sq("e1"):
			b.castling &^= CastleWhiteKingside | CastleWhiteQueenside
		case Sq("h1"):
			b.castling &^= CastleWhiteKingside
		case Sq("a1"):
			b.castling &^= CastleWhiteQueenside
		case Sq("e8"):
			b.castling &^= CastleBlackKingside | CastleBlackQueenside
		case Sq("h8"):
			b.castling &^= CastleBlackKingside
		case Sq("a8"):
			b.castling &^= CastleBlackQueenside
		}
	}
}

// Equal reports whether two boards have identical square contents,
// castling rights and en passant target.
func (b *Board) Equal(o *Board) bool {
	return b.squares == o.squares &&
		b.castling == o.castling &&
		b.epSquare == o.epSquare
}
