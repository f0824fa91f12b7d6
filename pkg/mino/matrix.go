package mino

import (
	"fmt"
	"strings"
)

const (
	// Width and Height are the dimensions of the standard matrix. Height
	// includes the hidden spawn rows at the top.
	Width  = 10
	Height = 22

	// HiddenRows are the rows above the visible playfield where pieces spawn.
	HiddenRows = 2
)

// Matrix is the grid of locked blocks. Row 0 is the top row. Cells are kept
// row-major with a stride of W.
//
// A Matrix has no lock of its own; the game that owns it serializes access.
type Matrix struct {
	W int // Width
	H int // Height
	B int // Hidden buffer rows at the top

	M []Block
}

func I(x int, y int, w int) int {
	return (y * w) + x
}

func NewMatrix(w int, h int, b int) *Matrix {
	if w <= 0 || h <= 0 || b < 0 || b > h {
		panic(fmt.Sprintf("invalid matrix dimensions %dx%d with %d hidden rows", w, h, b))
	}

	return &Matrix{W: w, H: h, B: b, M: make([]Block, w*h)}
}

// NewStandardMatrix returns an empty 10x22 matrix with two hidden rows.
func NewStandardMatrix() *Matrix {
	return NewMatrix(Width, Height, HiddenRows)
}

func (m *Matrix) inBounds(x int, y int) bool {
	return x >= 0 && x < m.W && y >= 0 && y < m.H
}

func (m *Matrix) mustInBounds(x int, y int) {
	if !m.inBounds(x, y) {
		panic(fmt.Sprintf("matrix access out of bounds at (%d,%d) in %dx%d matrix", x, y, m.W, m.H))
	}
}

func (m *Matrix) Block(x int, y int) Block {
	m.mustInBounds(x, y)

	return m.M[I(x, y, m.W)]
}

func (m *Matrix) SetBlock(x int, y int, block Block) {
	m.mustInBounds(x, y)
	if !block.Valid() {
		panic(fmt.Sprintf("invalid block %d at (%d,%d)", int(block), x, y))
	}

	m.M[I(x, y, m.W)] = block
}

func (m *Matrix) Empty(loc Point) bool {
	return m.Block(loc.X, loc.Y) == BlockNone
}

// CanPlace reports whether every occupied cell of p, shifted by dx and dy,
// lies inside the matrix on an empty cell.
func (m *Matrix) CanPlace(p *Piece, dx int, dy int) bool {
	if p == nil {
		return false
	}

	var x, y int
	for row := range p.Shape {
		for col, filled := range p.Shape[row] {
			if !filled {
				continue
			}

			x = p.X + col + dx
			y = p.Y + row + dy

			if !m.inBounds(x, y) {
				return false
			}

			if m.M[I(x, y, m.W)] != BlockNone {
				return false
			}
		}
	}

	return true
}

// Lock writes the colour of p into every cell it occupies. Filled lines are
// left in place.
func (m *Matrix) Lock(p *Piece) {
	for _, c := range p.Cells(0, 0) {
		m.SetBlock(c.X, c.Y, p.Solid)
	}
}

func (m *Matrix) LineFilled(y int) bool {
	for x := 0; x < m.W; x++ {
		if m.M[I(x, y, m.W)] == BlockNone {
			return false
		}
	}

	return true
}

func (m *Matrix) LineEmpty(y int) bool {
	for x := 0; x < m.W; x++ {
		if m.M[I(x, y, m.W)] != BlockNone {
			return false
		}
	}

	return true
}

// removeLine shifts every row above y down by one and empties the top row.
func (m *Matrix) removeLine(y int) {
	for my := y; my > 0; my-- {
		copy(m.M[I(0, my, m.W):I(0, my+1, m.W)], m.M[I(0, my-1, m.W):I(0, my, m.W)])
	}

	for mx := 0; mx < m.W; mx++ {
		m.M[I(mx, 0, m.W)] = BlockNone
	}
}

// ClearFilled removes every filled line, scanning from the bottom up, and
// returns how many were removed. A row is checked again after removal since
// the row above has dropped into it.
func (m *Matrix) ClearFilled() int {
	cleared := 0

	for y := m.H - 1; y >= 0; y-- {
		for m.LineFilled(y) {
			m.removeLine(y)
			cleared++
		}
	}

	return cleared
}

// CollapseEmpty removes every fully empty row, scanning from the top down,
// by dropping the rows above it. Empty rows can only appear below filled
// ones after a piece was locked in mid air.
func (m *Matrix) CollapseEmpty() {
	for y := 0; y < m.H; y++ {
		if m.LineEmpty(y) {
			m.removeLine(y)
		}
	}
}

// Filled is the number of non-empty cells.
func (m *Matrix) Filled() int {
	n := 0
	for _, b := range m.M {
		if b != BlockNone {
			n++
		}
	}

	return n
}

func (m *Matrix) Clear() {
	for i := range m.M {
		m.M[i] = BlockNone
	}
}

// Blocks returns a copy of the cells.
func (m *Matrix) Blocks() []Block {
	blocks := make([]Block, len(m.M))
	copy(blocks, m.M)

	return blocks
}

func (m *Matrix) Clone() *Matrix {
	c := *m
	c.M = m.Blocks()

	return &c
}

// Render dumps the matrix as text, one line per row from the top.
func (m *Matrix) Render() string {
	var b strings.Builder

	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			b.WriteRune(m.M[I(x, y, m.W)].Rune())
		}

		if y == m.H-1 {
			break
		}

		b.WriteRune('\n')
	}

	return b.String()
}
