package chess

// A Color is the color of a piece or player.
type Color uint8

const (
	// White is the color of the player who moves first.
	White Color = iota
	// Black is the color of the player who moves second.
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// String implements the fmt.Stringer interface.
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// Name returns a display name for the color.
func (c Color) Name() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// A PieceType is the type of a piece.
type PieceType uint8

const (
	// NoPieceType represents the absence of a piece.
	NoPieceType PieceType = iota
	// Pawn represents a pawn.
	Pawn
	// Knight represents a knight.
	Knight
	// Bishop represents a bishop.
	Bishop
	// Rook represents a rook.
	Rook
	// Queen represents a queen.
	Queen
	// King represents a king.
	King
)

// String implements the fmt.Stringer interface.
func (p PieceType) String() string {
	switch p {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	}
	return ""
}

// A Piece is a piece type with a color, packed into a single byte.
// White pieces use the raw type value, black pieces set the fourth bit.
// The zero value is NoPiece.
type Piece uint8

// NoPiece represents an empty square.
const NoPiece Piece = 0

const blackBit Piece = 8

// NewPiece returns the piece for the given type and color.
func NewPiece(t PieceType, c Color) Piece {
	if t == NoPieceType {
		return NoPiece
	}
	p := Piece(t)
	if c == Black {
		p |= blackBit
	}
	return p
}

// Type returns the piece's type.
func (p Piece) Type() PieceType {
	return PieceType(p &^ blackBit)
}

// Color returns the piece's color. The result is meaningless for NoPiece.
func (p Piece) Color() Color {
	if p&blackBit != 0 {
		return Black
	}
	return White
}

// String implements the fmt.Stringer interface and returns the piece's
// FEN letter (uppercase for white, lowercase for black).
func (p Piece) String() string {
	if p == NoPiece {
		return " "
	}
	s := p.Type().String()
	if p.Color() == White {
		return string(s[0] &^ 0x20)
	}
	return s
}

var pieceGlyphs = map[Piece]rune{
	NewPiece(King, White):   '♔',
	NewPiece(Queen, White):  '♕',
	NewPiece(Rook, White):   '♖',
	NewPiece(Bishop, White): '♗',
	NewPiece(Knight, White): '♘',
	NewPiece(Pawn, White):   '♙',
	NewPiece(King, Black):   '♚',
	NewPiece(Queen, Black):  '♛',
	NewPiece(Rook, Black):   '♜',
	NewPiece(Bishop, Black): '♝',
	NewPiece(Knight, Black): '♞',
	NewPiece(Pawn, Black):   '♟',
}

// Glyph returns the unicode figurine for the piece, or a space for NoPiece.
func (p Piece) Glyph() rune {
	if g, ok := pieceGlyphs[p]; ok {
		return g
	}
	return ' '
}
