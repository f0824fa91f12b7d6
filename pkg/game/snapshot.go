package game

import "github.com/qnkhuat/tetristerm/pkg/mino"

// Snapshot is a copy of everything a renderer needs. It shares no memory with
// the game it was taken from.
type Snapshot struct {
	W, H   int
	Hidden int
	Blocks []mino.Block

	Piece        *mino.Piece
	PieceVisible bool
	Next         *mino.Piece

	Score     int
	Lines     int
	Best      int
	Games     int
	LastScore int
	Seed      int64

	Paused   bool
	GameOver bool
}

func (g *Game) Snapshot() *Snapshot {
	g.Lock()
	defer g.Unlock()

	return g.SnapshotL()
}

func (g *Game) SnapshotL() *Snapshot {
	return &Snapshot{
		W:            g.Matrix.W,
		H:            g.Matrix.H,
		Hidden:       g.Matrix.B,
		Blocks:       g.Matrix.Blocks(),
		Piece:        g.P.Clone(),
		PieceVisible: g.activeL(),
		Next:         g.Next.Clone(),
		Score:        g.Score,
		Lines:        g.Lines,
		Best:         g.Best,
		Games:        g.Games,
		LastScore:    g.LastScore,
		Seed:         g.Generator.Seed,
		Paused:       g.Paused,
		GameOver:     g.GameOver,
	}
}

// Block returns the locked block at x, y.
func (s *Snapshot) Block(x int, y int) mino.Block {
	return s.Blocks[mino.I(x, y, s.W)]
}

// Cell returns the block shown at x, y, with the falling piece drawn over
// the matrix when it is visible.
func (s *Snapshot) Cell(x int, y int) mino.Block {
	if s.PieceVisible && s.Piece != nil {
		col, row := x-s.Piece.X, y-s.Piece.Y
		if row >= 0 && row < s.Piece.Size() && col >= 0 && col < s.Piece.Size() && s.Piece.Shape[row][col] {
			return s.Piece.Solid
		}
	}

	return s.Block(x, y)
}
