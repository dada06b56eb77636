package arena

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"

	"github.com/OffchainLabs/stylus-chess"
)

// recordVersion increments when the storage encoding changes, so stale
// records are detected instead of misread.
const recordVersion uint8 = 1

const (
	counterKey = "g:count"
	pendingKey = "g:pending"
)

// gameKey is the store key for one game record.
func gameKey(id uint64) string {
	return "g:" + strconv.FormatUint(id, 10)
}

const noEPByte = 0xff

// encodeGame serializes a game into its persisted record.
//
// Layout, all big-endian:
//
//	version | status | turn | victor | castling | ep | white | black | board word
//
// where victor is 0 for none, 1 for white, 2 for black, ep is 0xff when
// no en passant target exists, the player ids are length-prefixed with a
// uint16, and the board word is 32 bytes.
func encodeGame(g *Game) []byte {
	out := make([]byte, 0, 6+2+len(g.White)+2+len(g.Black)+32)

	victor := byte(0)
	if g.Status == StatusVictory {
		victor = byte(g.Victor) + 1
	}
	ep := byte(noEPByte)
	if s := g.Board.EnPassant(); s != chess.NoSquare {
		ep = byte(s)
	}

	out = append(out, recordVersion, byte(g.Status), byte(g.Turn), victor,
		byte(g.Board.CastleRights()), ep)

	writeStr := func(s PlayerID) {
		var tmp [2]byte
		binary.BigEndian.PutUint16(tmp[:], uint16(len(s)))
		out = append(out, tmp[:]...)
		out = append(out, s...)
	}
	writeStr(g.White)
	writeStr(g.Black)

	word := g.Board.Encode()
	b32 := word.Bytes32()
	out = append(out, b32[:]...)
	return out
}

// decodeGame reconstructs a game from its persisted record, verifying the
// version and that no trailing bytes remain.
func decodeGame(id uint64, data []byte) (*Game, error) {
	r := &reader{b: data}
	if v := r.u8(); r.err == nil && v != recordVersion {
		return nil, fmt.Errorf("arena: game %d: unsupported record version %d", id, v)
	}

	g := &Game{ID: id}
	g.Status = GameStatus(r.u8())
	g.Turn = chess.Color(r.u8())
	victor := r.u8()
	castling := r.u8()
	ep := r.u8()
	g.White = PlayerID(r.str())
	g.Black = PlayerID(r.str())

	var word chess.Word
	word.SetBytes(r.bytes(32))

	if err := r.end(); err != nil {
		return nil, fmt.Errorf("arena: game %d: %w", id, err)
	}

	g.Board = chess.DecodeBoard(word)
	g.Board.SetCastleRights(chess.CastleRights(castling))
	if ep == noEPByte {
		g.Board.SetEnPassant(chess.NoSquare)
	} else {
		g.Board.SetEnPassant(chess.Square(ep))
	}
	if victor > 0 {
		g.Victor = chess.Color(victor - 1)
	}
	return g, nil
}

// reader walks a record with a sticky error, so decoding reads linearly
// and checks once at the end.
type reader struct {
	b   []byte
	i   int
	err error
}

func (r *reader) need(n int) bool {
	if r.err != nil {
		return false
	}
	if r.i+n > len(r.b) {
		r.err = errors.New("record truncated")
		return false
	}
	return true
}

func (r *reader) u8() byte {
	if !r.need(1) {
		return 0
	}
	v := r.b[r.i]
	r.i++
	return v
}

func (r *reader) u16() uint16 {
	if !r.need(2) {
		return 0
	}
	v := binary.BigEndian.Uint16(r.b[r.i : r.i+2])
	r.i += 2
	return v
}

func (r *reader) bytes(n int) []byte {
	if !r.need(n) {
		return nil
	}
	v := r.b[r.i : r.i+n]
	r.i += n
	return v
}

func (r *reader) str() string {
	n := int(r.u16())
	return string(r.bytes(n))
}

func (r *reader) end() error {
	if r.err != nil {
		return r.err
	}
	if r.i != len(r.b) {
		return errors.New("record has trailing bytes")
	}
	return nil
}

// readU64 reads an 8-byte big-endian counter value, defaulting to zero
// when the key has never been written.
func readU64(s Store, key string) uint64 {
	v, ok := s.Get(key)
	if !ok || len(v) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(v)
}

// writeU64 stores an 8-byte big-endian counter value.
func writeU64(s Store, key string, v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	s.Set(key, tmp[:])
}
