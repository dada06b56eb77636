package chess

import "fmt"

// A Square is one of the 64 positions on the board, numbered rank-major
// from a1 (0) to h8 (63).
type Square int8

// NoSquare is the absence of a square, used for en passant bookkeeping.
const NoSquare Square = -1

const numSquares = 64

// NewSquare returns the square at the given file (column) and rank (row).
// Both range from 0 to 7.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the square's column, ranging from 0 (a-file) to 7 (h-file).
func (s Square) File() int {
	return int(s & 7)
}

// Rank returns the square's row, ranging from 0 (rank 1) to 7 (rank 8).
func (s Square) Rank() int {
	return int(s >> 3)
}

// Valid reports whether the square is on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < numSquares
}

// String implements the fmt.Stringer interface using algebraic notation.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(s.File()), '1'+byte(s.Rank()))
}

// Sq parses an algebraic square name such as "e4". It panics on malformed
// input and is intended for fixed positions in tests and tooling.
func Sq(v string) Square {
	if len(v) != 2 || v[0] < 'a' || v[0] > 'h' || v[1] < '1' || v[1] > '8' {
		panic("chess: invalid square " + v)
	}
	return NewSquare(int(v[0]-'a'), int(v[1]-'1'))
}

// A Move is a proposed relocation of a piece. Promotions always yield a
// queen, so no promotion selector is carried.
type Move struct {
	From Square
	To   Square
}

// String implements the fmt.Stringer interface.
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
