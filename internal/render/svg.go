package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/chesscore/chesscore/internal/model"
)

const squareSize = 45

var svgSymbols = map[model.PieceType]map[model.Color]string{
	model.King:   {model.White: "♔", model.Black: "♚"},
	model.Queen:  {model.White: "♕", model.Black: "♛"},
	model.Rook:   {model.White: "♖", model.Black: "♜"},
	model.Bishop: {model.White: "♗", model.Black: "♝"},
	model.Knight: {model.White: "♘", model.Black: "♞"},
	model.Pawn:   {model.White: "♙", model.Black: "♟"},
}

// BoardSVG writes the position as an SVG image, white at the bottom.
func BoardSVG(w io.Writer, b *model.Board) {
	canvas := svg.New(w)
	canvas.Start(8*squareSize, 8*squareSize)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			fill := "#ffce9e"
			if (x+y)%2 == 1 {
				fill = "#d18b47"
			}
			canvas.Rect(x*squareSize, y*squareSize, squareSize, squareSize, "fill:"+fill)
			piece := b.Grid[y][x]
			if piece == nil {
				continue
			}
			canvas.Text(
				x*squareSize+squareSize/2,
				y*squareSize+squareSize*3/4,
				svgSymbols[piece.Type][piece.Color],
				"text-anchor:middle;font-size:36px;fill:black",
			)
		}
	}
	canvas.End()
}
