package gui

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// BlockWidth is the number of terminal columns a single cell takes up.
const BlockWidth = 2

// PreviewRows is the height reserved for the next piece.
const PreviewRows = 4

var (
	renderHLine    = []byte(string(tcell.RuneHLine))
	renderVLine    = []byte(string(tcell.RuneVLine))
	renderULCorner = []byte(string(tcell.RuneULCorner))
	renderURCorner = []byte(string(tcell.RuneURCorner))
	renderLLCorner = []byte(string(tcell.RuneLLCorner))
	renderLRCorner = []byte(string(tcell.RuneLRCorner))

	renderBlockRune = tcell.RuneBlock
	renderEmpty     = bytes.Repeat([]byte(" "), BlockWidth)
)

// colorTag returns the tview dynamic color tag for c. Colors without an RGB
// value reset to the default foreground.
func colorTag(c tcell.Color) string {
	if v := c.Hex(); v >= 0 {
		return fmt.Sprintf("[#%06x]", v)
	}
	return "[-]"
}

// Renderer turns snapshots into text for tview TextViews with dynamic colors
// enabled. One renderer may be shared by several goroutines.
type Renderer struct {
	Theme Theme

	blocks [mino.BlockCount][]byte
	buf    bytes.Buffer

	*sync.Mutex
}

func NewRenderer(t Theme) *Renderer {
	r := &Renderer{Theme: t, Mutex: new(sync.Mutex)}

	solid := strings.Repeat(string(renderBlockRune), BlockWidth)
	for b := mino.BlockNone + 1; b < mino.BlockCount; b++ {
		r.blocks[b] = []byte(colorTag(t.Block(b)) + solid + "[-]")
	}
	r.blocks[mino.BlockNone] = renderEmpty

	return r
}

func (r *Renderer) writeBlock(b mino.Block) {
	if !b.Valid() {
		panic(fmt.Sprintf("failed to render block %d", int(b)))
	}
	r.buf.Write(r.blocks[b])
}

func (r *Renderer) writeHLine(left []byte, right []byte, w int) {
	r.buf.Write(left)
	for x := 0; x < w*BlockWidth; x++ {
		r.buf.Write(renderHLine)
	}
	r.buf.Write(right)
}

// bytes returns a copy of the buffer, which is reused by the next render.
func (r *Renderer) bytes() []byte {
	return append([]byte(nil), r.buf.Bytes()...)
}

// RenderMatrix draws the visible rows of the matrix inside a border. The
// falling piece is drawn over the matrix only while it is in play.
func (r *Renderer) RenderMatrix(s *game.Snapshot) []byte {
	r.Lock()
	defer r.Unlock()

	r.buf.Reset()
	if s == nil {
		return nil
	}

	border := colorTag(r.Theme.Border)

	r.buf.WriteString(border)
	r.writeHLine(renderULCorner, renderURCorner, s.W)
	r.buf.WriteString("[-]\n")

	for y := s.Hidden; y < s.H; y++ {
		r.buf.WriteString(border)
		r.buf.Write(renderVLine)
		r.buf.WriteString("[-]")

		for x := 0; x < s.W; x++ {
			r.writeBlock(s.Cell(x, y))
		}

		r.buf.WriteString(border)
		r.buf.Write(renderVLine)
		r.buf.WriteString("[-]\n")
	}

	r.buf.WriteString(border)
	r.writeHLine(renderLLCorner, renderLRCorner, s.W)
	r.buf.WriteString("[-]")

	return r.bytes()
}

// RenderPreview draws the next piece. It always takes up PreviewRows lines
// so the panel below it does not move.
func (r *Renderer) RenderPreview(s *game.Snapshot) []byte {
	r.Lock()
	defer r.Unlock()

	r.buf.Reset()
	if s == nil {
		return nil
	}

	r.buf.WriteString(colorTag(r.Theme.Label) + "Next[-]\n")

	var rows int
	if s.Next != nil {
		for _, row := range s.Next.Shape {
			r.buf.WriteRune(' ')
			for _, filled := range row {
				if filled {
					r.writeBlock(s.Next.Solid)
				} else {
					r.writeBlock(mino.BlockNone)
				}
			}
			r.buf.WriteRune('\n')
			rows++
		}
	}
	for ; rows < PreviewRows; rows++ {
		r.buf.WriteRune('\n')
	}

	return r.bytes()
}

// Details is what the side panel shows besides the snapshot itself.
type Details struct {
	Name    string
	Elapsed string
}

func (r *Renderer) writeField(label string, value interface{}) {
	fmt.Fprintf(&r.buf, "\n%s%s[-]\n%s  %v[-]\n", colorTag(r.Theme.Label), label, colorTag(r.Theme.Value), value)
}

// RenderDetails draws the score panel.
func (r *Renderer) RenderDetails(s *game.Snapshot, d Details) []byte {
	r.Lock()
	defer r.Unlock()

	r.buf.Reset()
	if s == nil {
		return nil
	}

	r.writeField("Score", s.Score)
	r.writeField("Lines", s.Lines)
	r.writeField("Best", s.Best)
	r.writeField("Game", s.Games)
	if d.Elapsed != "" {
		r.writeField("Time", d.Elapsed)
	}
	if d.Name != "" {
		fmt.Fprintf(&r.buf, "\n%s%s[-]\n", colorTag(r.Theme.Label), d.Name)
	}

	if s.Paused {
		fmt.Fprintf(&r.buf, "\n%sPAUSED[-]\n", colorTag(r.Theme.Msg))
	}

	return r.bytes()
}
