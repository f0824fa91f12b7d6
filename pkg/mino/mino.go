package mino

import (
	"errors"
	"fmt"
	"strings"
)

// Shape is a square matrix of occupied flags, indexed [row][col] with row 0
// at the top.
type Shape [][]bool

const (
	TetrominoI = "1111/0000/0000/0000"
	TetrominoZ = "110/011/000"
	TetrominoS = "011/110/000"
	TetrominoO = "11/11"
	TetrominoT = "111/010/000"
	TetrominoL = "110/100/100"
	TetrominoJ = "110/010/010"
)

// ParseShape reads a shape written as rows of 0 and 1 separated by slashes.
func ParseShape(s string) (Shape, error) {
	rows := strings.Split(s, "/")
	size := len(rows)
	if size == 0 || s == "" {
		return nil, errors.New("empty shape")
	}

	shape := NewShape(size)
	for r, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("shape %q: row %d has %d columns, want %d", s, r, len(row), size)
		}

		for c, ch := range row {
			switch ch {
			case '0':
			case '1':
				shape[r][c] = true
			default:
				return nil, fmt.Errorf("shape %q: invalid character %q", s, ch)
			}
		}
	}

	return shape, nil
}

func mustParseShape(s string) Shape {
	shape, err := ParseShape(s)
	if err != nil {
		panic(err)
	}

	return shape
}

func NewShape(size int) Shape {
	s := make(Shape, size)
	for i := range s {
		s[i] = make([]bool, size)
	}

	return s
}

func (s Shape) Size() int { return len(s) }

func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for i := range s {
		c[i] = make([]bool, len(s[i]))
		copy(c[i], s[i])
	}

	return c
}

// RotateCW returns the shape turned 90 degrees clockwise: cell (row, col)
// moves to (col, size-1-row).
func (s Shape) RotateCW() Shape {
	size := len(s)
	rotated := NewShape(size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			rotated[col][size-1-row] = s[row][col]
		}
	}

	return rotated
}

// RotateCCW is the exact inverse of RotateCW.
func (s Shape) RotateCCW() Shape {
	size := len(s)
	rotated := NewShape(size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			rotated[row][col] = s[col][size-1-row]
		}
	}

	return rotated
}

func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}

	for r := range s {
		if len(s[r]) != len(other[r]) {
			return false
		}
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}

	return true
}

// Len is the number of occupied cells.
func (s Shape) Len() int {
	var n int
	for r := range s {
		for c := range s[r] {
			if s[r][c] {
				n++
			}
		}
	}

	return n
}

func (s Shape) String() string {
	var b strings.Builder
	for r := range s {
		if r > 0 {
			b.WriteRune('/')
		}
		for c := range s[r] {
			if s[r][c] {
				b.WriteRune('1')
			} else {
				b.WriteRune('0')
			}
		}
	}

	return b.String()
}
