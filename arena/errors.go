package arena

import "errors"

var (
	// ErrUnknownGame is returned for a game id outside the allocated range.
	ErrUnknownGame = errors.New("arena: unknown game")
	// ErrGameNotActive is returned when a move is attempted on a pending
	// or finished game.
	ErrGameNotActive = errors.New("arena: game is not active")
	// ErrNotYourTurn is returned when the caller is not the player whose
	// color matches the game's current turn.
	ErrNotYourTurn = errors.New("arena: not your turn")
	// ErrInvalidParticipant is returned when a caller tries to join their
	// own pending game, or presents an empty identity.
	ErrInvalidParticipant = errors.New("arena: invalid participant")
	// ErrInvalidSquare is returned for move coordinates outside the board.
	ErrInvalidSquare = errors.New("arena: square out of range")
)
