package chess

import (
	"errors"
	"fmt"
	"strings"
)

// ParseFEN builds a board and side to move from a FEN record. The halfmove
// and fullmove counters are accepted but discarded: the engine keeps no
// clocks. Only the first four fields influence the result.
func ParseFEN(fen string) (Board, Color, error) {
	b := NewBoard()
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return b, White, errors.New("chess: FEN requires at least 4 fields")
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return b, White, errors.New("chess: FEN placement requires 8 ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, r := range rankStr {
			switch {
			case r >= '1' && r <= '8':
				file += int(r - '0')
			default:
				p, ok := pieceFromFENLetter(r)
				if !ok || file > 7 {
					return b, White, fmt.Errorf("chess: invalid FEN rank %q", rankStr)
				}
				b.SetPiece(NewSquare(file, rank), p)
				file++
			}
		}
		if file != 8 {
			return b, White, fmt.Errorf("chess: invalid FEN rank %q", rankStr)
		}
	}

	var turn Color
	switch fields[1] {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return b, White, fmt.Errorf("chess: invalid FEN side %q", fields[1])
	}

	if fields[2] != "-" {
		var rights CastleRights
		for _, r := range fields[2] {
			switch r {
			case 'K':
				rights |= CastleWhiteKingside
			case 'Q':
				rights |= CastleWhiteQueenside
			case 'k':
				rights |= CastleBlackKingside
			case 'q':
				rights |= CastleBlackQueenside
			default:
				return b, White, fmt.Errorf("chess: invalid FEN castling %q", fields[2])
			}
		}
		b.SetCastleRights(rights)
	}

	if fields[3] != "-" {
		ep := fields[3]
		if len(ep) != 2 || ep[0] < 'a' || ep[0] > 'h' || (ep[1] != '3' && ep[1] != '6') {
			return b, White, fmt.Errorf("chess: invalid FEN en passant %q", fields[3])
		}
		b.SetEnPassant(Sq(ep))
	}

	return b, turn, nil
}

func pieceFromFENLetter(r rune) (Piece, bool) {
	color := White
	if r >= 'a' && r <= 'z' {
		color = Black
		r -= 'a' - 'A'
	}
	switch r {
	case 'P':
		return NewPiece(Pawn, color), true
	case 'N':
		return NewPiece(Knight, color), true
	case 'B':
		return NewPiece(Bishop, color), true
	case 'R':
		return NewPiece(Rook, color), true
	case 'Q':
		return NewPiece(Queen, color), true
	case 'K':
		return NewPiece(King, color), true
	}
	return NoPiece, false
}

// FEN returns the full FEN record for the position with the given side to
// move. Clock fields are emitted as "0 1" since the engine keeps neither.
func (b *Board) FEN(turn Color) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[NewSquare(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(turn.String())
	sb.WriteByte(' ')

	if b.castling == 0 {
		sb.WriteByte('-')
	} else {
		for _, f := range [4]struct {
			right  CastleRights
			letter byte
		}{
			{CastleWhiteKingside, 'K'},
			{CastleWhiteQueenside, 'Q'},
			{CastleBlackKingside, 'k'},
			{CastleBlackQueenside, 'q'},
		} {
			if b.castling&f.right != 0 {
				sb.WriteByte(f.letter)
			}
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.epSquare.String())
	sb.WriteString(" 0 1")
	return sb.String()
}

// String implements the fmt.Stringer interface and draws the board as an
// ASCII diagram, useful for debugging output in tests.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			p := b.squares[NewSquare(file, rank)]
			if p == NoPiece {
				sb.WriteByte('.')
			} else {
				sb.WriteString(p.String())
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
