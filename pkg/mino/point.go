package mino

import (
	"strconv"
	"strings"
)

type Point struct {
	X, Y int
}

func (p Point) Add(dx, dy int) Point { return Point{p.X + dx, p.Y + dy} }

func (p Point) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(p.X))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(p.Y))
	b.WriteRune(')')

	return b.String()
}
