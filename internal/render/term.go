// Package render draws board snapshots: colored unicode for terminals
// and SVG for clients that want an image.
package render

import (
	"strings"

	"github.com/fatih/color"

	"github.com/chesscore/chesscore/internal/model"
)

var pieceSymbols = map[model.PieceType]string{
	model.King:   "♚",
	model.Queen:  "♛",
	model.Rook:   "♜",
	model.Bishop: "♝",
	model.Knight: "♞",
	model.Pawn:   "♟",
}

var (
	whiteOnDark  = color.New(color.FgBlue, color.BgWhite)
	whiteOnLight = color.New(color.FgBlue)
	blackOnDark  = color.New(color.FgRed, color.BgWhite)
	blackOnLight = color.New(color.FgRed)
	emptyDark    = color.New(color.BgWhite)
)

// Board renders the position as text, white at the bottom.
func Board(b *model.Board) string {
	var sb strings.Builder
	sb.WriteString("    a  b  c  d  e  f  g  h\n")
	for y := 0; y < 8; y++ {
		sb.WriteString(" ")
		sb.WriteByte(byte('8' - y))
		sb.WriteString(" ")
		for x := 0; x < 8; x++ {
			dark := (x+y)%2 == 1
			piece := b.Grid[y][x]
			if piece == nil {
				if dark {
					sb.WriteString(emptyDark.Sprint("   "))
				} else {
					sb.WriteString("   ")
				}
				continue
			}
			cell := " " + pieceSymbols[piece.Type] + " "
			switch {
			case piece.Color == model.White && dark:
				sb.WriteString(whiteOnDark.Sprint(cell))
			case piece.Color == model.White:
				sb.WriteString(whiteOnLight.Sprint(cell))
			case dark:
				sb.WriteString(blackOnDark.Sprint(cell))
			default:
				sb.WriteString(blackOnLight.Sprint(cell))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
