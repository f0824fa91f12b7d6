package mino

type PieceType int

// Piece kinds, in palette order. The colour of a kind is Block(kind + 1).
const (
	PieceI PieceType = iota
	PieceZ
	PieceS
	PieceO
	PieceT
	PieceL
	PieceJ

	PieceTypes = 7
)

var templates = [PieceTypes]Shape{
	PieceI: mustParseShape(TetrominoI),
	PieceZ: mustParseShape(TetrominoZ),
	PieceS: mustParseShape(TetrominoS),
	PieceO: mustParseShape(TetrominoO),
	PieceT: mustParseShape(TetrominoT),
	PieceL: mustParseShape(TetrominoL),
	PieceJ: mustParseShape(TetrominoJ),
}

func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceZ:
		return "Z"
	case PieceS:
		return "S"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceL:
		return "L"
	case PieceJ:
		return "J"
	default:
		return "?"
	}
}

func (t PieceType) Valid() bool { return t >= 0 && t < PieceTypes }

func (t PieceType) Block() Block { return Block(t) + 1 }

// Template returns a copy of the spawn shape for the kind.
func (t PieceType) Template() Shape { return templates[t].Clone() }
