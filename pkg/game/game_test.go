package game

import (
	"math/rand"
	"testing"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGame returns a game on an empty matrix whose falling piece is of
// type first.
func newTestGame(t *testing.T, first mino.PieceType) *Game {
	t.Helper()

	g := NewGame(1, nil)
	g.ResetL()
	g.Next = mino.NewPiece(first)
	require.True(t, g.spawnL())
	require.Equal(t, first, g.P.Type)

	return g
}

func drainEvents(g *Game) []interface{} {
	var events []interface{}
	for {
		select {
		case e := <-g.Event:
			events = append(events, e)
		default:
			return events
		}
	}
}

func fillRow(m *mino.Matrix, y int, b mino.Block, except ...int) {
	skip := make(map[int]bool)
	for _, x := range except {
		skip[x] = true
	}

	for x := 0; x < m.W; x++ {
		if !skip[x] {
			m.SetBlock(x, y, b)
		}
	}
}

// verticalI returns an I piece turned upright so that it occupies column x,
// rows y to y+3.
func verticalI(x int, y int) *mino.Piece {
	p := mino.NewPiece(mino.PieceI)
	p.RotateCW()
	p.SetLocation(x-3, y)

	return p
}

func TestNewGame(t *testing.T) {
	g := NewGame(7, nil)

	require.NotNil(t, g.P)
	require.NotNil(t, g.Next)
	assert.Equal(t, 1, g.Games)
	assert.Equal(t, 0, g.Score)
	assert.Equal(t, 0, g.Matrix.Filled())
	assert.Equal(t, mino.Width/2-g.P.Size()/2, g.P.X)
	assert.Equal(t, 0, g.P.Y)
	assert.False(t, g.Paused)
	assert.False(t, g.GameOver)
	assert.Equal(t, 2, g.Generator.Taken())
}

func TestSpawnCentered(t *testing.T) {
	for pt := mino.PieceType(0); pt < mino.PieceTypes; pt++ {
		g := newTestGame(t, pt)
		assert.Equal(t, mino.Width/2-g.P.Size()/2, g.P.X, "piece %s", pt)
		assert.Equal(t, 0, g.P.Y, "piece %s", pt)
	}

	g := newTestGame(t, mino.PieceO)
	assert.Equal(t, mino.Point{X: 4, Y: 0}, g.P.Point)
	assert.Equal(t, mino.BlockYellow, g.P.Solid)
}

func TestSpawnPromotesNext(t *testing.T) {
	g := NewGame(3, nil)
	next := g.Next

	dropPiece(t, g, 0)

	assert.True(t, next == g.P, "next piece should become the falling piece")
	assert.NotNil(t, g.Next)
}

// dropPiece shifts the falling piece by dx and soft drops it until it lands.
func dropPiece(t *testing.T, g *Game, dx int) {
	t.Helper()

	step := 1
	if dx < 0 {
		step, dx = -1, -dx
	}
	for i := 0; i < dx; i++ {
		require.True(t, g.MovePiece(step))
	}

	p := g.P
	for g.P == p {
		g.SoftDrop()
	}
}

func TestGravityLandsOPiece(t *testing.T) {
	g := newTestGame(t, mino.PieceO)
	o := g.P

	for i := 0; i < 20; i++ {
		g.Tick()
		require.True(t, o == g.P, "piece locked early on tick %d", i+1)
	}
	assert.Equal(t, mino.Point{X: 4, Y: 20}, g.P.Point)
	assert.Equal(t, 0, g.Matrix.Filled())

	g.Tick()
	assert.False(t, o == g.P, "piece should lock when it cannot fall")
	assert.Equal(t, 4, g.Matrix.Filled())
	for _, c := range []mino.Point{{X: 4, Y: 20}, {X: 5, Y: 20}, {X: 4, Y: 21}, {X: 5, Y: 21}} {
		assert.Equal(t, mino.BlockYellow, g.Matrix.Block(c.X, c.Y))
	}
	assert.Equal(t, 0, g.P.Y)
	assert.Equal(t, 0, g.Score)
}

func TestHardLockClearsLine(t *testing.T) {
	g := newTestGame(t, mino.PieceT)
	fillRow(g.Matrix, 21, mino.BlockRed, 5)
	g.Matrix.SetBlock(0, 20, mino.BlockGreen)
	g.P = verticalI(5, 18)
	require.True(t, g.Matrix.CanPlace(g.P, 0, 0))

	g.HardLock()

	assert.Equal(t, 100, g.Score)
	assert.Equal(t, 1, g.Lines)
	// The I piece's upper cells and the marker drop by one row.
	assert.Equal(t, mino.BlockGreen, g.Matrix.Block(0, 21))
	assert.Equal(t, mino.BlockNone, g.Matrix.Block(0, 20))
	for y := 19; y <= 21; y++ {
		assert.Equal(t, mino.BlockCyan, g.Matrix.Block(5, y), "row %d", y)
	}
	assert.Equal(t, mino.BlockNone, g.Matrix.Block(5, 18))
	assert.Equal(t, 4, g.Matrix.Filled())
	assert.False(t, g.Matrix.LineFilled(21))

	require.NotNil(t, g.P, "hard lock spawns the next piece")
	assert.Equal(t, 0, g.P.Y)

	var scored bool
	for _, e := range drainEvents(g) {
		if ev, ok := e.(*event.ScoreEvent); ok {
			scored = true
			assert.Equal(t, 1, ev.Lines)
			assert.Equal(t, 100, ev.Score)
		}
	}
	assert.True(t, scored)
}

func TestClearTwoLines(t *testing.T) {
	g := newTestGame(t, mino.PieceT)
	fillRow(g.Matrix, 21, mino.BlockRed, 0)
	fillRow(g.Matrix, 20, mino.BlockBlue, 0)
	g.P = verticalI(0, 16)

	dropPiece(t, g, 0)

	assert.Equal(t, 200, g.Score)
	assert.Equal(t, 2, g.Lines)
	assert.Equal(t, 2, g.Matrix.Filled())
	assert.Equal(t, mino.BlockCyan, g.Matrix.Block(0, 21))
	assert.Equal(t, mino.BlockCyan, g.Matrix.Block(0, 20))
	assert.True(t, g.Matrix.LineEmpty(0))
	assert.True(t, g.Matrix.LineEmpty(1))
}

func TestMovePiece(t *testing.T) {
	g := newTestGame(t, mino.PieceO)

	for i := 0; i < 4; i++ {
		assert.True(t, g.MoveLeft(), "move %d", i)
	}
	assert.False(t, g.MoveLeft())
	assert.Equal(t, 0, g.P.X)

	for i := 0; i < 8; i++ {
		assert.True(t, g.MoveRight(), "move %d", i)
	}
	assert.False(t, g.MoveRight())
	assert.Equal(t, 8, g.P.X)

	g.Matrix.SetBlock(7, 1, mino.BlockRed)
	assert.False(t, g.MoveLeft())
	assert.Equal(t, 8, g.P.X)
	assert.False(t, g.MovePiece(0))
}

func TestRotate(t *testing.T) {
	g := newTestGame(t, mino.PieceI)
	require.Equal(t, mino.Point{X: 3, Y: 0}, g.P.Point)

	assert.True(t, g.Rotate())
	assert.Equal(t, "0001/0001/0001/0001", g.P.Shape.String())
	assert.Equal(t, mino.Point{X: 3, Y: 0}, g.P.Point, "rotation never moves the piece")

	g.Matrix.SetBlock(3, 3, mino.BlockRed)
	assert.False(t, g.Rotate(), "rotation into a filled cell is undone")
	assert.Equal(t, "0001/0001/0001/0001", g.P.Shape.String())

	// Against the left wall the upright I cannot turn flat.
	g.Matrix.Clear()
	for g.MoveLeft() {
	}
	assert.Equal(t, -3, g.P.X)
	assert.False(t, g.Rotate())
	assert.Equal(t, "0001/0001/0001/0001", g.P.Shape.String())
}

func TestPause(t *testing.T) {
	g := newTestGame(t, mino.PieceT)
	before := g.P.Clone()

	g.TogglePause()
	require.True(t, g.Paused)

	g.Tick()
	g.SoftDrop()
	g.HardLock()
	assert.False(t, g.MoveLeft())
	assert.False(t, g.MoveRight())
	assert.False(t, g.Rotate())
	assert.Equal(t, before.Point, g.P.Point)
	assert.True(t, before.Shape.Equal(g.P.Shape))
	assert.Equal(t, 0, g.Matrix.Filled())
	assert.False(t, g.Snapshot().PieceVisible)

	g.TogglePause()
	require.False(t, g.Paused)
	g.Tick()
	assert.Equal(t, 1, g.P.Y)
	assert.True(t, g.Snapshot().PieceVisible)

	var pauses []bool
	for _, e := range drainEvents(g) {
		if ev, ok := e.(*event.PauseEvent); ok {
			pauses = append(pauses, ev.Paused)
		}
	}
	assert.Equal(t, []bool{true, false}, pauses)
}

func TestResetWhilePaused(t *testing.T) {
	g := newTestGame(t, mino.PieceT)
	g.TogglePause()
	drainEvents(g)
	games := g.Games

	g.ProcessAction(event.ActionReset)

	assert.False(t, g.Paused)
	assert.Equal(t, games+1, g.Games)
	assert.Equal(t, 0, g.Finished(), "a reset does not count as a game over")

	var resumed *event.PauseEvent
	for _, e := range drainEvents(g) {
		if ev, ok := e.(*event.PauseEvent); ok {
			resumed = ev
		}
	}
	require.NotNil(t, resumed, "clearing the pause is reported")
	assert.False(t, resumed.Paused)
	assert.Equal(t, games+1, resumed.Game)

	g.Start()
	for _, e := range drainEvents(g) {
		_, ok := e.(*event.PauseEvent)
		assert.False(t, ok, "no pause event when nothing was paused")
	}
}

func TestGameOverResets(t *testing.T) {
	g := newTestGame(t, mino.PieceO)
	g.Score = 500
	g.Lines = 5
	g.Paused = true
	drainEvents(g)

	fillRow(g.Matrix, 0, mino.BlockRed, 0)
	fillRow(g.Matrix, 21, mino.BlockRed, 0)
	games := g.Games

	assert.False(t, g.spawnL(), "spawn into a filled row ends the game")

	assert.Equal(t, 0, g.Matrix.Filled())
	assert.Equal(t, 0, g.Score)
	assert.Equal(t, 0, g.Lines)
	assert.Equal(t, 500, g.LastScore)
	assert.Equal(t, 500, g.Best)
	assert.Equal(t, games+1, g.Games)
	assert.Equal(t, 1, g.Finished())
	assert.False(t, g.Paused)
	assert.False(t, g.GameOver)
	require.NotNil(t, g.P)
	assert.Equal(t, mino.Width/2-g.P.Size()/2, g.P.X)
	assert.Equal(t, 0, g.P.Y)

	var over *event.GameOverEvent
	for _, e := range drainEvents(g) {
		if ev, ok := e.(*event.GameOverEvent); ok {
			over = ev
		}
	}
	require.NotNil(t, over)
	assert.Equal(t, 500, over.Score)
	assert.Equal(t, 5, over.Lines)
	assert.Equal(t, games, over.Game)
}

func TestLockAtTopEndsGame(t *testing.T) {
	g := newTestGame(t, mino.PieceO)
	g.Score = 300

	g.HardLock()

	assert.Equal(t, 0, g.Matrix.Filled())
	assert.Equal(t, 300, g.LastScore)
	assert.Equal(t, 2, g.Games)
}

func TestSpawnCollapsesFloatingRows(t *testing.T) {
	g := newTestGame(t, mino.PieceO)
	for i := 0; i < 5; i++ {
		g.SoftDrop()
	}
	require.Equal(t, 5, g.P.Y)

	g.HardLock()

	assert.Equal(t, 4, g.Matrix.Filled())
	for _, c := range []mino.Point{{X: 4, Y: 20}, {X: 5, Y: 20}, {X: 4, Y: 21}, {X: 5, Y: 21}} {
		assert.Equal(t, mino.BlockYellow, g.Matrix.Block(c.X, c.Y))
	}
}

func TestProcessAction(t *testing.T) {
	g := newTestGame(t, mino.PieceT)

	g.ProcessAction(event.ActionMoveLeft)
	assert.Equal(t, 3, g.P.X)
	g.ProcessAction(event.ActionMoveRight)
	g.ProcessAction(event.ActionMoveRight)
	assert.Equal(t, 5, g.P.X)
	g.ProcessAction(event.ActionSoftDrop)
	assert.Equal(t, 1, g.P.Y)
	g.ProcessAction(event.ActionRotate)
	assert.Equal(t, "001/011/001", g.P.Shape.String())
	g.ProcessAction(event.ActionTogglePause)
	assert.True(t, g.Paused)
	g.ProcessAction(event.ActionTogglePause)
	g.ProcessAction(event.ActionHardLock)
	assert.Equal(t, 4, g.Matrix.Filled())
	g.ProcessAction(event.ActionUnknown)

	g.ProcessAction(event.ActionReset)
	assert.Equal(t, 0, g.Matrix.Filled())
	assert.Equal(t, 2, g.Games)
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, mino.PieceO)
	g.Matrix.SetBlock(0, 21, mino.BlockRed)

	s := g.Snapshot()
	assert.Equal(t, mino.Width, s.W)
	assert.Equal(t, mino.Height, s.H)
	assert.Equal(t, mino.HiddenRows, s.Hidden)
	assert.True(t, s.PieceVisible)
	assert.Equal(t, mino.BlockRed, s.Block(0, 21))
	assert.Equal(t, mino.BlockYellow, s.Cell(4, 0))
	assert.Equal(t, mino.BlockNone, s.Block(4, 0))
	assert.Equal(t, mino.BlockNone, s.Cell(3, 0))
	assert.Equal(t, int64(1), s.Seed)

	s.Blocks[0] = mino.BlockCyan
	s.Piece.X = 0
	assert.Equal(t, mino.BlockNone, g.Matrix.Block(0, 0))
	assert.Equal(t, 4, g.P.X)
}

// TestRandomPlay drives a seeded game with random input and checks the
// engine invariants after every step.
func TestRandomPlay(t *testing.T) {
	g := NewGame(99, nil)
	r := rand.New(rand.NewSource(99))

	actions := []event.GameAction{
		event.ActionMoveLeft, event.ActionMoveRight, event.ActionRotate,
		event.ActionSoftDrop, event.ActionSoftDrop, event.ActionHardLock,
	}

	games := g.Games
	lastScore := 0
	for step := 0; step < 20000; step++ {
		if r.Intn(3) == 0 {
			g.Tick()
		} else {
			g.ProcessAction(actions[r.Intn(len(actions))])
		}

		if g.Games != games {
			games = g.Games
			lastScore = 0
		}

		require.GreaterOrEqual(t, g.Score, lastScore, "score decreased on step %d", step)
		require.Equal(t, LineScore*g.Lines, g.Score)
		lastScore = g.Score

		require.NotNil(t, g.P)
		require.True(t, g.Matrix.CanPlace(g.P, 0, 0), "falling piece overlaps on step %d\n%s", step, g.Matrix.Render())
		for _, b := range g.Matrix.M {
			require.True(t, b.Valid())
		}
		for y := 0; y < g.Matrix.H; y++ {
			require.False(t, g.Matrix.LineFilled(y), "row %d left filled on step %d", y, step)
		}
	}
}
