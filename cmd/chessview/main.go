// Command chessview draws a chess position in the terminal for local
// debugging. It takes an optional FEN argument and shows the starting
// position when invoked without one.
//
// Usage:
//
//	chessview ["rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"]
//
// Press q or escape to exit.
package main

import (
	"log"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/OffchainLabs/stylus-chess"
)

func main() {
	board := chess.StartingPosition()
	turn := chess.White
	if len(os.Args) > 1 {
		var err error
		board, turn, err = chess.ParseFEN(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
	}

	if err := termbox.Init(); err != nil {
		log.Fatal(err)
	}
	defer termbox.Close()

	draw(&board, turn)
	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventKey && (ev.Key == termbox.KeyEsc || ev.Ch == 'q') {
			return
		}
		draw(&board, turn)
	}
}

func draw(b *chess.Board, turn chess.Color) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	for rank := 7; rank >= 0; rank-- {
		y := 7 - rank
		printText(0, y, string('1'+rune(rank)), termbox.ColorYellow)

		x := 2
		for file := 0; file < 8; file++ {
			p := b.Piece(chess.NewSquare(file, rank))
			ch := '·'
			fg := termbox.ColorDefault
			if p != chess.NoPiece {
				ch = p.Glyph()
				fg = termbox.ColorWhite
				if p.Color() == chess.Black {
					fg = termbox.ColorRed
				}
			}
			termbox.SetCell(x, y, ch, fg, termbox.ColorDefault)
			x += runewidth.RuneWidth(ch) + 1
		}
	}
	printText(2, 8, "a b c d e f g h", termbox.ColorYellow)
	printText(0, 10, turn.Name()+" to move (q to quit)", termbox.ColorDefault)

	termbox.Flush()
}

func printText(x, y int, s string, fg termbox.Attribute) {
	for _, r := range s {
		termbox.SetCell(x, y, r, fg, termbox.ColorDefault)
		x += runewidth.RuneWidth(r)
	}
}
