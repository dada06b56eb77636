package chess

// A Method classifies a position for the side to move.
type Method uint8

const (
	// NoMethod indicates the side to move has at least one legal move.
	NoMethod Method = iota
	// Checkmate indicates the side to move has no legal move and is in check.
	Checkmate
	// Stalemate indicates the side to move has no legal move and is not in check.
	Stalemate
)

// String implements the fmt.Stringer interface.
func (m Method) String() string {
	switch m {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// Status classifies the position for the given side to move. It probes
// LegalMove for every piece of that side against every destination, so
// classification can never disagree with move validation.
func (b *Board) Status(side Color) Method {
	for from := Square(0); from < numSquares; from++ {
		p := b.squares[from]
		if p == NoPiece || p.Color() != side {
			continue
		}
		for to := Square(0); to < numSquares; to++ {
			if b.LegalMove(side, from, to) {
				return NoMethod
			}
		}
	}
	if b.inCheck(side) {
		return Checkmate
	}
	return Stalemate
}
