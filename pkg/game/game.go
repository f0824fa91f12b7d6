package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// FallTime is the interval between gravity ticks.
const FallTime = 500 * time.Millisecond

// LineScore is awarded for every cleared line.
const LineScore = 100

const (
	EventQueueSize = 10
	LogQueueSize   = 10
)

const (
	LogStandard = iota
	LogDebug
	LogVerbose
)

// Game is the state machine of a single player game. It owns the matrix,
// the falling piece and the next piece. Every exported method takes the
// game lock; methods ending in L expect the caller to hold it.
//
// A game moves from spawning to falling, then through locking and line
// clearing back to spawning. Paused only stops gravity and input. Game over
// is reported on Event and immediately followed by a fresh game.
type Game struct {
	Matrix    *mino.Matrix
	Generator *mino.Generator

	P    *mino.Piece // Falling piece
	Next *mino.Piece

	Score     int
	Lines     int
	Best      int // Best final or running score this session
	Games     int // Games started, including the current one
	LastScore int // Final score of the previous game
	Ended     int // Games that ran into a game over

	Paused   bool
	GameOver bool

	Event chan interface{}

	logger   chan string
	LogLevel int

	*sync.Mutex
}

// NewGame returns a started game whose pieces come from a generator seeded
// with seed. Engine messages are sent to logger when it is not nil.
func NewGame(seed int64, logger chan string) *Game {
	g := &Game{
		Matrix:    mino.NewStandardMatrix(),
		Generator: mino.NewGenerator(seed),
		Event:     make(chan interface{}, EventQueueSize),
		logger:    logger,
		Mutex:     new(sync.Mutex),
	}

	g.StartL()

	return g
}

func (g *Game) Log(level int, a ...interface{}) {
	if g.logger == nil || level > g.LogLevel {
		return
	}

	select {
	case g.logger <- fmt.Sprint(a...):
	default:
	}
}

func (g *Game) Logf(level int, format string, a ...interface{}) {
	if g.logger == nil || level > g.LogLevel {
		return
	}

	select {
	case g.logger <- fmt.Sprintf(format, a...):
	default:
	}
}

// emit publishes e without blocking. Events nobody has room for are dropped.
func (g *Game) emit(e interface{}) {
	if g.Event == nil {
		return
	}

	select {
	case g.Event <- e:
	default:
		g.Logf(LogVerbose, "dropped event %T", e)
	}
}

// Start discards the current game and begins a new one.
func (g *Game) Start() {
	g.Lock()
	defer g.Unlock()

	g.StartL()
}

func (g *Game) StartL() {
	paused := g.Paused

	g.ResetL()
	g.Games++

	g.Logf(LogDebug, "Game %d started", g.Games)

	if paused {
		g.emit(&event.PauseEvent{Event: event.Event{Game: g.Games}, Paused: false})
	}

	g.spawnL()
}

// ResetL clears the matrix, the score and both pieces.
func (g *Game) ResetL() {
	g.Matrix.Clear()

	g.P = nil
	g.Next = nil
	g.Score = 0
	g.Lines = 0
	g.Paused = false
	g.GameOver = false
}

// spawnL promotes the next piece, draws a new next piece and places the
// falling piece centered at the top. It reports false when the piece does
// not fit, in which case the game is over.
func (g *Game) spawnL() bool {
	if g.Next != nil {
		g.P = g.Next
	} else {
		g.P = g.Generator.Take()
	}
	g.Next = g.Generator.Take()

	g.P.SetLocation(g.Matrix.W/2-g.P.Size()/2, 0)

	if !g.Matrix.CanPlace(g.P, 0, 0) {
		g.gameOverL()
		return false
	}

	g.Matrix.CollapseEmpty()

	g.Logf(LogVerbose, "Spawned %s, next %s", g.P.Type, g.Next.Type)
	g.emit(&event.SpawnEvent{Event: event.Event{Game: g.Games}, Piece: g.P.Type.String(), Next: g.Next.Type.String()})

	return true
}

// gameOverL reports the final score and starts over.
func (g *Game) gameOverL() {
	g.GameOver = true
	g.Ended++
	g.LastScore = g.Score
	if g.Score > g.Best {
		g.Best = g.Score
	}

	g.Logf(LogStandard, "Game %d over with score %d (%d lines)", g.Games, g.Score, g.Lines)
	g.emit(&event.GameOverEvent{
		Event: event.Event{Game: g.Games, Message: fmt.Sprintf("Game over! Your score: %d", g.Score)},
		Score: g.Score,
		Lines: g.Lines,
	})

	g.StartL()
}

// Finished returns the number of games that ended in a game over. A reset
// starts a new game without finishing the current one.
func (g *Game) Finished() int {
	g.Lock()
	defer g.Unlock()

	return g.Ended
}

func (g *Game) activeL() bool {
	return !g.Paused && !g.GameOver && g.P != nil
}

// Tick applies one step of gravity. It is ignored while paused.
func (g *Game) Tick() {
	g.Lock()
	defer g.Unlock()

	if !g.activeL() {
		return
	}

	g.lowerPieceL()
}

// SoftDrop moves the falling piece down one row, landing it when it cannot
// move, exactly like a gravity tick.
func (g *Game) SoftDrop() {
	g.Lock()
	defer g.Unlock()

	if !g.activeL() {
		return
	}

	g.lowerPieceL()
}

func (g *Game) lowerPieceL() {
	if g.Matrix.CanPlace(g.P, 0, 1) {
		g.P.Y++
		return
	}

	g.landPieceL()
}

// landPieceL locks the falling piece where it is, clears filled lines and
// spawns the next piece.
func (g *Game) landPieceL() {
	g.Matrix.Lock(g.P)
	g.P = nil

	cleared := g.Matrix.ClearFilled()
	if cleared > 0 {
		g.Lines += cleared
		g.Score += LineScore * cleared
		if g.Score > g.Best {
			g.Best = g.Score
		}

		g.Logf(LogDebug, "Cleared %d lines, score %d", cleared, g.Score)
		g.emit(&event.ScoreEvent{Event: event.Event{Game: g.Games}, Lines: cleared, Score: g.Score})
	}

	g.spawnL()
}

func (g *Game) MoveLeft() bool {
	return g.MovePiece(-1)
}

func (g *Game) MoveRight() bool {
	return g.MovePiece(1)
}

// MovePiece shifts the falling piece horizontally by dx when the target
// position is free.
func (g *Game) MovePiece(dx int) bool {
	g.Lock()
	defer g.Unlock()

	if !g.activeL() || dx == 0 || !g.Matrix.CanPlace(g.P, dx, 0) {
		return false
	}

	g.P.X += dx
	return true
}

// Rotate turns the falling piece clockwise in place. When the rotated piece
// does not fit the rotation is undone.
func (g *Game) Rotate() bool {
	g.Lock()
	defer g.Unlock()

	if !g.activeL() {
		return false
	}

	g.P.RotateCW()
	if !g.Matrix.CanPlace(g.P, 0, 0) {
		g.P.RotateCCW()
		return false
	}

	return true
}

// HardLock locks the falling piece at its current position, clears lines and
// spawns the next piece.
func (g *Game) HardLock() {
	g.Lock()
	defer g.Unlock()

	if !g.activeL() {
		return
	}

	g.landPieceL()
}

func (g *Game) TogglePause() {
	g.Lock()
	defer g.Unlock()

	if g.GameOver {
		return
	}

	g.Paused = !g.Paused

	g.Logf(LogDebug, "Paused: %t", g.Paused)
	g.emit(&event.PauseEvent{Event: event.Event{Game: g.Games}, Paused: g.Paused})
}

func (g *Game) ProcessAction(a event.GameAction) {
	switch a {
	case event.ActionRotate:
		g.Rotate()
	case event.ActionMoveLeft:
		g.MoveLeft()
	case event.ActionMoveRight:
		g.MoveRight()
	case event.ActionSoftDrop:
		g.SoftDrop()
	case event.ActionHardLock:
		g.HardLock()
	case event.ActionTogglePause:
		g.TogglePause()
	case event.ActionReset:
		g.Start()
	default:
		g.Logf(LogVerbose, "Ignored action %s", a)
	}
}
