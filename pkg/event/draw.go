package event

type DrawObject int

const (
	DrawAll DrawObject = iota
	DrawMatrix
	DrawSide
	DrawMessages
)
