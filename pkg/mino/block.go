package mino

import "fmt"

// Block is the colour index stored in a matrix cell. BlockNone is an empty
// cell, every other value is the colour of the piece kind that was locked there.
type Block int

const (
	BlockNone Block = iota
	BlockCyan
	BlockBlue
	BlockOrange
	BlockYellow
	BlockGreen
	BlockMagenta
	BlockRed

	BlockCount = 8
)

func (b Block) Valid() bool {
	return b >= BlockNone && b < BlockCount
}

func (b Block) String() string {
	switch b {
	case BlockNone:
		return "none"
	case BlockCyan:
		return "cyan"
	case BlockBlue:
		return "blue"
	case BlockOrange:
		return "orange"
	case BlockYellow:
		return "yellow"
	case BlockGreen:
		return "green"
	case BlockMagenta:
		return "magenta"
	case BlockRed:
		return "red"
	default:
		return fmt.Sprintf("block(%d)", int(b))
	}
}

// Rune is the character used for plain text dumps of a matrix.
func (b Block) Rune() rune {
	switch {
	case b == BlockNone:
		return '.'
	case b.Valid():
		return rune('0' + b)
	default:
		return '?'
	}
}
