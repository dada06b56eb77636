package chess

import "github.com/holiman/uint256"

// A Word is a single 256-bit integer holding an entire board: 64 squares
// of 4 bits each, square 0 (a1) in the least significant nibble. Nibble
// values 1-6 are white pawn through king, 9-14 the black pieces, 0 an
// empty square. The unused values 7, 8 and 15 decode to an empty square.
type Word = uint256.Int

const (
	nibbleBits     = 4
	squaresPerLimb = 64 / nibbleBits
)

// squareCode returns the 4-bit storage code for a piece.
func squareCode(p Piece) uint64 {
	if p.Type() == NoPieceType {
		return 0
	}
	c := uint64(p.Type())
	if p.Color() == Black {
		c |= 8
	}
	return c
}

// pieceFromCode is the inverse of squareCode. Codes that squareCode never
// produces decode to NoPiece rather than an invalid piece.
func pieceFromCode(c uint64) Piece {
	t := PieceType(c & 7)
	if t == NoPieceType || t > King {
		return NoPiece
	}
	color := White
	if c&8 != 0 {
		color = Black
	}
	return NewPiece(t, color)
}

// Encode packs the board's square mapping into a Word. Castle rights and
// the en passant target are not part of the word; they are persisted
// alongside it by the session layer.
func (b *Board) Encode() Word {
	var w Word
	for s := Square(0); s < numSquares; s++ {
		code := squareCode(b.squares[s])
		w[int(s)/squaresPerLimb] |= code << (uint(s) % squaresPerLimb * nibbleBits)
	}
	return w
}

// DecodeBoard unpacks a Word produced by Encode. It is total: any 256-bit
// value yields a board, with unknown square codes treated as empty.
func DecodeBoard(w Word) Board {
	b := NewBoard()
	for s := Square(0); s < numSquares; s++ {
		code := w[int(s)/squaresPerLimb] >> (uint(s) % squaresPerLimb * nibbleBits) & 0xf
		b.squares[s] = pieceFromCode(code)
	}
	return b
}
