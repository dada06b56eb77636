package chess

// LegalMove reports whether the given color may move a piece from one
// square to another in this position. The checks run in order: the mover
// must own the origin square, the piece's movement pattern must permit the
// travel (including castling and en passant), sliding paths must be clear,
// the destination must not hold the mover's own piece, and the move must
// not leave the mover's king attacked. The self-check test runs against a
// scratch copy; the receiver is never mutated.
func (b *Board) LegalMove(c Color, from, to Square) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	p := b.squares[from]
	if p == NoPiece || p.Color() != c {
		return false
	}

	if p.Type() == King && from.Rank() == to.Rank() && absInt(from.File()-to.File()) == 2 {
		return b.legalCastle(c, from, to)
	}

	if !b.pseudoLegal(from, to) {
		return false
	}

	scratch := *b
	scratch.Apply(c, Move{From: from, To: to})
	return !scratch.inCheck(c)
}

// InCheck reports whether the given color's king is attacked.
func (b *Board) InCheck(c Color) bool {
	return b.inCheck(c)
}

func (b *Board) inCheck(c Color) bool {
	ks := b.kingSquare(c)
	if ks == NoSquare {
		return false
	}
	return b.attacked(ks, c.Other())
}

// attacked reports whether any piece of the given color attacks the
// square. En passant is irrelevant here: it can only capture a pawn, never
// cover a square.
func (b *Board) attacked(sq Square, by Color) bool {
	for s := Square(0); s < numSquares; s++ {
		p := b.squares[s]
		if p != NoPiece && p.Color() == by && b.attacks(s, sq) {
			return true
		}
	}
	return false
}

// attacks reports whether the piece on from covers the square to,
// considering movement geometry and path blocking but not the occupant of
// the destination. Pawn forward steps are moves, not attacks.
func (b *Board) attacks(from, to Square) bool {
	p := b.squares[from]
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()

	switch p.Type() {
	case Pawn:
		dir := 1
		if p.Color() == Black {
			dir = -1
		}
		return dr == dir && absInt(df) == 1
	case Knight:
		return absInt(df)*absInt(dr) == 2
	case Bishop:
		return absInt(df) == absInt(dr) && b.pathClear(from, to)
	case Rook:
		return (df == 0 || dr == 0) && b.pathClear(from, to)
	case Queen:
		return (df == 0 || dr == 0 || absInt(df) == absInt(dr)) && b.pathClear(from, to)
	case King:
		return absInt(df) <= 1 && absInt(dr) <= 1
	}
	return false
}

// pseudoLegal reports whether a move obeys movement geometry, path
// clearance and destination occupancy, ignoring the self-check rule.
func (b *Board) pseudoLegal(from, to Square) bool {
	p := b.squares[from]
	victim := b.squares[to]
	if victim != NoPiece && victim.Color() == p.Color() {
		return false
	}

	if p.Type() != Pawn {
		return b.attacks(from, to)
	}

	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()
	dir, start := 1, 1
	if p.Color() == Black {
		dir, start = -1, 6
	}

	switch {
	case df == 0 && dr == dir:
		return victim == NoPiece
	case df == 0 && dr == 2*dir:
		mid := NewSquare(from.File(), from.Rank()+dir)
		return from.Rank() == start && victim == NoPiece && b.squares[mid] == NoPiece
	case absInt(df) == 1 && dr == dir:
		if victim != NoPiece {
			return true // occupancy by own color was rejected above
		}
		return to == b.epSquare
	}
	return false
}

// pathClear reports whether every square strictly between from and to is
// empty. The squares must share a rank, file or diagonal.
func (b *Board) pathClear(from, to Square) bool {
	df := signInt(to.File() - from.File())
	dr := signInt(to.Rank() - from.Rank())
	for f, r := from.File()+df, from.Rank()+dr; f != to.File() || r != to.Rank(); f, r = f+df, r+dr {
		if b.squares[NewSquare(f, r)] != NoPiece {
			return false
		}
	}
	return true
}

// legalCastle validates a two-square king move as castling: the matching
// right must remain, the rook must sit on its home square, the squares
// between king and rook must be empty, and the king may not pass through
// or land on an attacked square, nor castle out of check.
func (b *Board) legalCastle(c Color, from, to Square) bool {
	rank := 0
	right := CastleWhiteKingside
	if c == Black {
		rank = 7
		right = CastleBlackKingside
	}
	kingside := to > from
	if !kingside {
		right <<= 1
	}
	if from != NewSquare(4, rank) || b.castling&right == 0 {
		return false
	}

	rookFile, emptyFiles := 7, []int{5, 6}
	if !kingside {
		rookFile, emptyFiles = 0, []int{1, 2, 3}
	}
	if b.squares[NewSquare(rookFile, rank)] != NewPiece(Rook, c) {
		return false
	}
	for _, f := range emptyFiles {
		if b.squares[NewSquare(f, rank)] != NoPiece {
			return false
		}
	}

	// the king's path: current square, transit square, destination
	step := 1
	if !kingside {
		step = -1
	}
	opp := c.Other()
	for i := 0; i <= 2; i++ {
		if b.attacked(NewSquare(4+i*step, rank), opp) {
			return false
		}
	}
	return true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func signInt(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
