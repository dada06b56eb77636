package arena

import (
	"fmt"

	"github.com/OffchainLabs/stylus-chess"
)

// A Manager owns the collection of games and the single-slot matchmaking
// queue. All game state lives in its Store; the Manager itself is
// stateless between calls.
type Manager struct {
	store Store
}

// NewManager returns a Manager persisting through the given store. A
// fresh store means zero games and no pending game; no other
// initialization is required.
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Total returns the count of games ever created.
func (m *Manager) Total() uint64 {
	return readU64(m.store, counterKey)
}

// Get loads the game with the given id. Ids start at 1 and grow densely,
// so anything outside (0, Total] is unknown.
func (m *Manager) Get(id uint64) (*Game, error) {
	if id == 0 || id > m.Total() {
		return nil, ErrUnknownGame
	}
	data, ok := m.store.Get(gameKey(id))
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGame, id)
	}
	return decodeGame(id, data)
}

// CreateOrJoin pairs the caller into a game. If a pending game exists and
// the caller did not create it, the caller takes the black seat and the
// game becomes active. Otherwise a new game is created with the caller as
// white, a standard starting board and white to move, and it waits for an
// opponent. The queue holds at most one pending game. Returns the id of
// the game the caller now sits in.
func (m *Manager) CreateOrJoin(caller PlayerID) (uint64, error) {
	if caller == NoPlayer {
		return 0, ErrInvalidParticipant
	}

	if pending := readU64(m.store, pendingKey); pending != 0 {
		g, err := m.Get(pending)
		if err != nil {
			return 0, err
		}
		if g.White == caller {
			return 0, fmt.Errorf("%w: cannot join own game", ErrInvalidParticipant)
		}
		g.Black = caller
		g.Status = StatusActive
		m.putGame(g)
		writeU64(m.store, pendingKey, 0)
		return g.ID, nil
	}

	id := m.Total() + 1
	g := &Game{
		ID:     id,
		Board:  chess.StartingPosition(),
		Turn:   chess.White,
		White:  caller,
		Status: StatusPending,
	}
	m.putGame(g)
	writeU64(m.store, counterKey, id)
	writeU64(m.store, pendingKey, id)
	return id, nil
}

// TurnColor returns 0 when white is to move and 1 when black is.
func (m *Manager) TurnColor(id uint64) (uint8, error) {
	g, err := m.Get(id)
	if err != nil {
		return 0, err
	}
	return uint8(g.Turn), nil
}

// CurrentPlayer returns the identity of the player whose turn it is.
func (m *Manager) CurrentPlayer(id uint64) (PlayerID, error) {
	g, err := m.Get(id)
	if err != nil {
		return NoPlayer, err
	}
	return g.Player(g.Turn), nil
}

// BoardState returns the game's board encoded as a single 256-bit word.
func (m *Manager) BoardState(id uint64) (chess.Word, error) {
	g, err := m.Get(id)
	if err != nil {
		return chess.Word{}, err
	}
	return g.Board.Encode(), nil
}

func (m *Manager) putGame(g *Game) {
	m.store.Set(gameKey(g.ID), encodeGame(g))
}
