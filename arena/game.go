/*
Package arena tracks any number of independent chess sessions on top of a
key-value store. It pairs players into games, enforces turn order and move
legality through the chess package, detects terminal outcomes and persists
each game's board as a single 256-bit word.

Every operation runs to completion as one atomic unit of work; the arena
takes no locks and relies on its host executing state-mutating calls one
at a time. A call either commits its whole effect or fails before any
record is written.
*/
package arena

import (
	"github.com/OffchainLabs/stylus-chess"
)

// A PlayerID is an opaque external identity. The arena only ever compares
// it for equality.
type PlayerID string

// NoPlayer is the absent player, used for the black seat of a pending game.
const NoPlayer PlayerID = ""

// A GameStatus is a game's lifecycle state: pending until a second player
// joins, active while moves are accepted, and stalemate or victory once
// the game is decided. The numeric values are part of the record format.
type GameStatus uint8

const (
	// StatusPending marks a game awaiting its second player.
	StatusPending GameStatus = iota
	// StatusActive marks a game accepting moves.
	StatusActive
	// StatusStalemate marks a finished drawn game.
	StatusStalemate
	// StatusVictory marks a finished won game; Victor names the winner.
	StatusVictory
)

// Finished reports whether the game can no longer accept moves.
func (s GameStatus) Finished() bool {
	return s == StatusStalemate || s == StatusVictory
}

// String implements the fmt.Stringer interface.
func (s GameStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusActive:
		return "active"
	case StatusStalemate:
		return "stalemate"
	case StatusVictory:
		return "victory"
	}
	return "unknown"
}

// A MoveOutcome is the status code a move attempt returns to the caller.
// IllegalMove is the one code that signals no state change happened.
type MoveOutcome uint8

const (
	// Continuing reports a committed move with the game still running.
	Continuing MoveOutcome = 1
	// IllegalMove reports a rejected move; board, turn and status are
	// unchanged.
	IllegalMove MoveOutcome = 2
	// OutcomeStalemate reports a committed move that stalemated the
	// opponent, finishing the game.
	OutcomeStalemate MoveOutcome = 3
	// OutcomeVictory reports a committed move that checkmated the
	// opponent; the mover wins.
	OutcomeVictory MoveOutcome = 4
)

// A Game is one chess session. Games are owned by the Manager, identified
// by ID and never deleted; the ID space only grows.
type Game struct {
	ID     uint64
	Board  chess.Board
	Turn   chess.Color
	White  PlayerID
	Black  PlayerID
	Status GameStatus
	// Victor is meaningful only when Status is StatusVictory.
	Victor chess.Color
}

// Player returns the player seated as the given color.
func (g *Game) Player(c chess.Color) PlayerID {
	if c == chess.White {
		return g.White
	}
	return g.Black
}
