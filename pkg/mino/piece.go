package mino

import (
	"fmt"
	"math/rand"
)

// Piece is a falling tetromino. Its shape changes on rotation, its position
// is the top-left corner of the shape in matrix coordinates. A piece does not
// check its own bounds; the matrix decides what is legal.
type Piece struct {
	Point
	Shape
	Type  PieceType
	Solid Block
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s%s %s", p.Type, p.Point, p.Shape)
}

func NewPiece(t PieceType) *Piece {
	if !t.Valid() {
		panic(fmt.Sprintf("invalid piece type %d", int(t)))
	}

	return &Piece{Shape: t.Template(), Type: t, Solid: t.Block()}
}

// RandomPiece picks one of the seven kinds uniformly. The location is left
// at the origin for the caller to set.
func RandomPiece(r *rand.Rand) *Piece {
	return NewPiece(PieceType(r.Intn(PieceTypes)))
}

func (p *Piece) RotateCW() {
	p.Shape = p.Shape.RotateCW()
}

func (p *Piece) RotateCCW() {
	p.Shape = p.Shape.RotateCCW()
}

func (p *Piece) SetLocation(x int, y int) {
	p.X = x
	p.Y = y
}

// Cells returns the matrix coordinates of every occupied cell, offset by dx, dy.
func (p *Piece) Cells(dx, dy int) []Point {
	cells := make([]Point, 0, 4)
	for row := range p.Shape {
		for col, filled := range p.Shape[row] {
			if filled {
				cells = append(cells, p.Point.Add(col+dx, row+dy))
			}
		}
	}

	return cells
}

func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}

	c := *p
	c.Shape = p.Shape.Clone()
	return &c
}
