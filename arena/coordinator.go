package arena

import "github.com/OffchainLabs/stylus-chess"

// PlayMove attempts one move on a game: it authorizes the caller,
// validates legality, applies the move, classifies the resulting position
// and flips the turn, committing everything as one unit.
//
// Hard failures (unknown game, inactive game, wrong mover, off-board
// coordinates) abort before any write. An illegal but well-formed move is
// not an error: it returns IllegalMove and leaves the stored board, turn
// and status untouched. A committed move returns Continuing, or
// OutcomeStalemate / OutcomeVictory when it ends the game, after which
// the game is immutable.
func (m *Manager) PlayMove(caller PlayerID, id uint64, fromRow, fromCol, toRow, toCol int) (MoveOutcome, error) {
	g, err := m.Get(id)
	if err != nil {
		return 0, err
	}
	if g.Status != StatusActive {
		return 0, ErrGameNotActive
	}
	if caller != g.Player(g.Turn) {
		return 0, ErrNotYourTurn
	}
	for _, v := range [4]int{fromRow, fromCol, toRow, toCol} {
		if v < 0 || v > 7 {
			return 0, ErrInvalidSquare
		}
	}

	move := chess.Move{
		From: chess.NewSquare(fromCol, fromRow),
		To:   chess.NewSquare(toCol, toRow),
	}
	if !g.Board.LegalMove(g.Turn, move.From, move.To) {
		return IllegalMove, nil
	}

	mover := g.Turn
	g.Board.Apply(mover, move)
	g.Turn = mover.Other()

	outcome := Continuing
	switch g.Board.Status(g.Turn) {
	case chess.Checkmate:
		g.Status = StatusVictory
		g.Victor = mover
		outcome = OutcomeVictory
	case chess.Stalemate:
		g.Status = StatusStalemate
		outcome = OutcomeStalemate
	}

	m.putGame(g)
	return outcome, nil
}
