// Package image renders a chess board as an SVG diagram for diagnostics.
package image

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/OffchainLabs/stylus-chess"
)

const (
	squareSize = 45
	boardSize  = squareSize * 8
)

const (
	lightFill = "fill:#ebecd0"
	darkFill  = "fill:#779556"
	textStyle = "font-size:32px;text-anchor:middle;dominant-baseline:central"
)

// SVG writes an SVG rendering of the board with rank 8 at the top, the
// conventional orientation for white. Pieces are drawn as unicode
// figurines.
func SVG(w io.Writer, b chess.Board) {
	canvas := svg.New(w)
	canvas.Start(boardSize, boardSize)

	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			x := file * squareSize
			y := (7 - rank) * squareSize
			fill := darkFill
			if (file+rank)%2 == 1 {
				fill = lightFill
			}
			canvas.Rect(x, y, squareSize, squareSize, fill)

			p := b.Piece(chess.NewSquare(file, rank))
			if p == chess.NoPiece {
				continue
			}
			canvas.Text(x+squareSize/2, y+squareSize/2, string(p.Glyph()), textStyle)
		}
	}

	canvas.End()
}
