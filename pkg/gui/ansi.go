package gui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Terminals without 256 colors get the closest of the 16 basic ones.
var ansiBlocks = map[mino.Block]*color.Color{
	mino.BlockCyan:    color.New(color.FgCyan),
	mino.BlockBlue:    color.New(color.FgBlue),
	mino.BlockOrange:  color.New(color.FgHiRed),
	mino.BlockYellow:  color.New(color.FgYellow),
	mino.BlockGreen:   color.New(color.FgGreen),
	mino.BlockMagenta: color.New(color.FgMagenta),
	mino.BlockRed:     color.New(color.FgRed),
}

// WriteANSI prints the visible part of the matrix with the falling piece
// and a one line summary. When plain is set every block is written as its
// color index instead of a colored square.
func WriteANSI(w io.Writer, s *game.Snapshot, plain bool) error {
	hline := strings.Repeat(string(renderHLine), s.W*BlockWidth)
	if _, err := fmt.Fprintf(w, "%s%s%s\n", renderULCorner, hline, renderURCorner); err != nil {
		return err
	}

	solid := strings.Repeat(string(renderBlockRune), BlockWidth)
	for y := s.Hidden; y < s.H; y++ {
		if _, err := w.Write(renderVLine); err != nil {
			return err
		}

		for x := 0; x < s.W; x++ {
			b := s.Cell(x, y)

			var err error
			switch {
			case b == mino.BlockNone:
				_, err = w.Write(renderEmpty)
			case plain:
				_, err = io.WriteString(w, strings.Repeat(string(b.Rune()), BlockWidth))
			default:
				_, err = ansiBlocks[b].Fprint(w, solid)
			}
			if err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "%s\n", renderVLine); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "%s%s%s\n", renderLLCorner, hline, renderLRCorner); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Score %d  Lines %d  Best %d  Game %d\n", s.Score, s.Lines, s.Best, s.Games)
	return err
}
