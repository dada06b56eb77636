package chess

import "testing"

func legalFromFEN(t *testing.T, fen string, from, to string) bool {
	t.Helper()
	b, turn, err := ParseFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return b.LegalMove(turn, Sq(from), Sq(to))
}

func TestPawnMoves(t *testing.T) {
	start := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	cases := []struct {
		from, to string
		want     bool
	}{
		{"e2", "e3", true},
		{"e2", "e4", true},
		{"e2", "e5", false}, // three squares forward is never a pawn move
		{"e2", "d3", false}, // no capture available
		{"e2", "e1", false},
		{"e7", "e5", false}, // not white's piece
	}
	for _, c := range cases {
		if got := legalFromFEN(t, start, c.from, c.to); got != c.want {
			t.Errorf("%s-%s legal = %v, want %v", c.from, c.to, got, c.want)
		}
	}

	// double step only from the home rank, and never through a blocker
	if legalFromFEN(t, "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1", "e3", "e5") {
		t.Error("double step from e3 should be illegal")
	}
	if legalFromFEN(t, "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", "e2", "e4") {
		t.Error("double step through a blocker should be illegal")
	}
	// diagonal capture
	if !legalFromFEN(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4", "d5") {
		t.Error("pawn capture e4xd5 should be legal")
	}
}

func TestEnPassantLegality(t *testing.T) {
	fen := "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1"
	if !legalFromFEN(t, fen, "e5", "d6") {
		t.Error("en passant capture should be legal with the target set")
	}
	noEP := "4k3/8/8/3pP3/8/8/8/4K3 w - - 0 1"
	if legalFromFEN(t, noEP, "e5", "d6") {
		t.Error("diagonal move to an empty square without an en passant target should be illegal")
	}
}

func TestKnightMoves(t *testing.T) {
	start := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	if !legalFromFEN(t, start, "g1", "f3") {
		t.Error("Ng1-f3 should be legal")
	}
	if legalFromFEN(t, start, "g1", "g3") {
		t.Error("Ng1-g3 is not a knight move")
	}
	// knights jump over blockers
	if !legalFromFEN(t, "4k3/8/8/8/8/8/PPP5/N3K3 w - - 0 1", "a1", "b3") {
		t.Error("knight should jump over the pawn wall")
	}
}

func TestSlidingPieces(t *testing.T) {
	start := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	// everything slides into friendly pawns from the back rank
	for _, c := range []struct{ from, to string }{
		{"a1", "a3"}, {"c1", "e3"}, {"d1", "d3"}, {"d1", "h5"},
	} {
		if legalFromFEN(t, start, c.from, c.to) {
			t.Errorf("%s-%s should be blocked in the starting position", c.from, c.to)
		}
	}

	open := "4k3/8/8/8/3R4/8/8/4K3 w - - 0 1"
	for _, c := range []struct {
		from, to string
		want     bool
	}{
		{"d4", "d8", true},
		{"d4", "a4", true},
		{"d4", "h8", false}, // rooks do not slide diagonally
	} {
		if got := legalFromFEN(t, open, c.from, c.to); got != c.want {
			t.Errorf("%s-%s legal = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestCannotCaptureOwnPiece(t *testing.T) {
	start := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	if legalFromFEN(t, start, "a1", "a2") {
		t.Error("capturing one's own pawn should be illegal")
	}
}

func TestSelfCheckSafety(t *testing.T) {
	// the e-file knight is pinned against the king by the rook
	pinned := "4k3/8/8/8/4r3/8/4N3/4K3 w - - 0 1"
	if legalFromFEN(t, pinned, "e2", "c3") {
		t.Error("moving a pinned piece should be illegal")
	}
	// capturing along the pin stays legal
	if !legalFromFEN(t, "4k3/8/8/8/8/4r3/4R3/4K3 w - - 0 1", "e2", "e3") {
		t.Error("capturing the checking rook along the file should be legal")
	}
	// the king may not step into an attacked square
	if legalFromFEN(t, "4k3/8/8/8/8/8/5r2/4K3 w - - 0 1", "e1", "f1") {
		t.Error("king may not step onto an attacked square")
	}
}

func TestCastlingLegality(t *testing.T) {
	free := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	if !legalFromFEN(t, free, "e1", "g1") {
		t.Error("white kingside castle should be legal")
	}
	if !legalFromFEN(t, free, "e1", "c1") {
		t.Error("white queenside castle should be legal")
	}

	// no castling without the right
	noRights := "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1"
	if legalFromFEN(t, noRights, "e1", "g1") {
		t.Error("castling without the right should be illegal")
	}

	// no castling through an occupied square
	blocked := "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1"
	if legalFromFEN(t, blocked, "e1", "g1") {
		t.Error("castling through a blocker should be illegal")
	}

	// no castling out of, through, or into check
	throughCheck := "r3k2r/8/8/8/8/5r2/8/R3K2R w KQkq - 0 1"
	if legalFromFEN(t, throughCheck, "e1", "g1") {
		t.Error("castling through an attacked square should be illegal")
	}
	inCheck := "r3k2r/8/8/8/4r3/8/8/R3K2R w KQkq - 0 1"
	if legalFromFEN(t, inCheck, "e1", "c1") {
		t.Error("castling out of check should be illegal")
	}
}

func TestLegalMoveRejectsOffBoardAndEmpty(t *testing.T) {
	b := StartingPosition()
	if b.LegalMove(White, Sq("e4"), Sq("e5")) {
		t.Error("moving from an empty square should be illegal")
	}
	if b.LegalMove(White, Square(-3), Sq("e4")) {
		t.Error("off-board origin should be illegal")
	}
	if b.LegalMove(White, Sq("e2"), Square(70)) {
		t.Error("off-board destination should be illegal")
	}
	if b.LegalMove(White, Sq("e2"), Sq("e2")) {
		t.Error("a null move should be illegal")
	}
}
