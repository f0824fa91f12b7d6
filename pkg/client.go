package pkg

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
	"github.com/qnkhuat/tetristerm/pkg/mino"
	"github.com/rivo/tview"
)

const (
	DrawQueueSize = 10

	LogTimeFormat = "3:04:05"

	DefaultStatusText = "Arrows or HJKL to move and drop, Up/K/X to rotate, Space to lock, P to pause, Q to quit"

	pageGame     = "game"
	pageGameOver = "gameover"
)

// Client runs a game in the terminal. The engine is driven by the gravity
// clock and by key presses, and redrawn whenever either changes it.
type Client struct {
	Game  *game.Game
	Clock *Clock
	Name  string

	App      *tview.Application
	Matrix   *tview.TextView
	Side     *tview.TextView
	Messages *tview.TextView
	Layout   *tview.Grid
	Pages    *tview.Pages
	Modal    *tview.Modal

	renderer *gui.Renderer
	draw     chan event.DrawObject
	logger   chan string

	// Set while a finished game waits on the dialog. Read and written
	// atomically, from the clock and the tview event loop.
	gameOver int32

	// Only touched from handleEvents.
	games int
}

func newTextView() *tview.TextView {
	tv := tview.NewTextView().
		SetScrollable(false).
		SetTextAlign(tview.AlignLeft).
		SetWrap(false).
		SetWordWrap(false)

	tv.SetDynamicColors(true)

	return tv
}

// NewClient builds the UI for g. Engine log messages are read from logger,
// which should be the channel g was created with.
func NewClient(g *game.Game, logger chan string, theme gui.Theme, name string) *Client {
	cl := &Client{
		Game:     g,
		Name:     name,
		App:      tview.NewApplication(),
		Matrix:   newTextView(),
		Side:     newTextView(),
		renderer: gui.NewRenderer(theme),
		draw:     make(chan event.DrawObject, DrawQueueSize),
		logger:   logger,
	}

	cl.Clock = NewClock(game.FallTime, func() {
		ended := cl.Game.Finished()
		cl.Game.Tick()
		if cl.Game.Finished() != ended {
			cl.holdGameOver()
		}
		cl.queueDraw(event.DrawAll)
	})

	cl.Messages = tview.NewTextView().
		SetScrollable(true).
		SetTextAlign(tview.AlignLeft).
		SetWrap(true).
		SetWordWrap(true).
		SetText(DefaultStatusText)

	cl.Layout = tview.NewGrid().
		SetRows(2+mino.Height-mino.HiddenRows, -1).
		SetColumns(2+mino.Width*gui.BlockWidth, 20, -1).
		AddItem(cl.Matrix, 0, 0, 1, 1, 0, 0, false).
		AddItem(cl.Side, 0, 1, 1, 1, 0, 0, false).
		AddItem(tview.NewBox(), 0, 2, 1, 1, 0, 0, false).
		AddItem(cl.Messages, 1, 0, 1, 3, 0, 0, false)

	cl.Modal = tview.NewModal().
		AddButtons([]string{"New game", "Quit"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonLabel == "Quit" {
				cl.App.Stop()
				return
			}
			cl.closeGameOver()
		})

	cl.Pages = tview.NewPages().
		AddPage(pageGame, cl.Layout, true, true).
		AddPage(pageGameOver, cl.Modal, false, false)

	cl.App.SetRoot(cl.Pages, true).SetInputCapture(cl.handleKeypress)

	return cl
}

// Run shows the UI until the player quits or ctx is done.
func (cl *Client) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go cl.Clock.Run(ctx)
	go cl.handleDraw(ctx)
	go cl.handleEvents(ctx)
	go cl.handleLog(ctx)
	go func() {
		<-ctx.Done()
		cl.App.Stop()
	}()

	log.Printf("Session %s started with seed %d", cl.Name, cl.Game.Generator.Seed)

	cl.queueDraw(event.DrawAll)
	if err := cl.App.Run(); err != nil {
		return fmt.Errorf("failed to run application: %w", err)
	}

	return nil
}

func (cl *Client) queueDraw(o event.DrawObject) {
	select {
	case cl.draw <- o:
	default:
	}
}

func (cl *Client) isGameOver() bool {
	return atomic.LoadInt32(&cl.gameOver) == 1
}

// holdGameOver stops gravity and input as soon as a game ends, before the
// dialog is up.
func (cl *Client) holdGameOver() {
	atomic.StoreInt32(&cl.gameOver, 1)
	cl.Clock.Pause()
}

func (cl *Client) handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	if cl.isGameOver() {
		return ev
	}

	if isQuit(ev) {
		cl.App.Stop()
		return nil
	}

	a := ActionFor(ev)
	if a == event.ActionUnknown {
		return ev
	}

	ended := cl.Game.Finished()
	cl.Game.ProcessAction(a)
	if cl.Game.Finished() != ended {
		cl.holdGameOver()
	}

	switch a {
	case event.ActionMoveLeft, event.ActionMoveRight, event.ActionRotate:
		cl.queueDraw(event.DrawMatrix)
	default:
		cl.queueDraw(event.DrawAll)
	}

	return nil
}

func (cl *Client) handleDraw(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case o := <-cl.draw:
			switch o {
			case event.DrawMatrix:
				cl.App.QueueUpdateDraw(cl.drawMatrix)
			case event.DrawSide:
				cl.App.QueueUpdateDraw(cl.drawSide)
			case event.DrawMessages:
				cl.App.QueueUpdateDraw(func() {})
			default:
				cl.App.QueueUpdateDraw(cl.drawAll)
			}
		}
	}
}

func (cl *Client) drawAll() {
	s := cl.Game.Snapshot()

	cl.renderMatrix(s)
	cl.renderSide(s)
}

func (cl *Client) drawMatrix() {
	cl.renderMatrix(cl.Game.Snapshot())
}

func (cl *Client) drawSide() {
	cl.renderSide(cl.Game.Snapshot())
}

func (cl *Client) renderMatrix(s *game.Snapshot) {
	cl.Matrix.Clear()
	cl.Matrix.Write(cl.renderer.RenderMatrix(s))
}

func (cl *Client) renderSide(s *game.Snapshot) {
	cl.Side.Clear()
	cl.Side.Write(cl.renderer.RenderPreview(s))
	cl.Side.Write(cl.renderer.RenderDetails(s, gui.Details{Name: cl.Name, Elapsed: cl.Clock.String()}))
}

func (cl *Client) handleEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-cl.Game.Event:
			cl.handleEvent(e)
		}
	}
}

func (cl *Client) handleEvent(e interface{}) {
	switch e := e.(type) {
	case *event.GameOverEvent:
		log.Printf("Game %d over: score %d, %d lines", e.Game, e.Score, e.Lines)

		// Gravity waits for the player to close the dialog.
		cl.holdGameOver()
		cl.App.QueueUpdateDraw(func() {
			cl.showGameOver(e)
		})
	case *event.ScoreEvent:
		log.Printf("Game %d: cleared %d lines, score %d", e.Game, e.Lines, e.Score)
		cl.queueDraw(event.DrawSide)
	case *event.PauseEvent:
		if e.Paused {
			cl.Clock.Pause()
		} else if !cl.isGameOver() {
			cl.Clock.Resume()
		}
		cl.queueDraw(event.DrawSide)
	case *event.SpawnEvent:
		if e.Game != cl.games {
			cl.games = e.Game
			cl.Clock.Reset()
		}
		cl.queueDraw(event.DrawSide)
	default:
		log.Printf("Unknown event %T", e)
	}
}

func (cl *Client) showGameOver(e *event.GameOverEvent) {
	cl.holdGameOver()

	cl.Modal.SetText(fmt.Sprintf("%s\n\n%d lines", e.Message, e.Lines))
	cl.Pages.ShowPage(pageGameOver)
	cl.App.SetFocus(cl.Modal)
}

func (cl *Client) closeGameOver() {
	atomic.StoreInt32(&cl.gameOver, 0)

	cl.Pages.HidePage(pageGameOver)
	cl.App.SetFocus(cl.Layout)
	cl.Clock.Resume()
	cl.queueDraw(event.DrawAll)
}

func (cl *Client) handleLog(ctx context.Context) {
	var wrote bool
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-cl.logger:
			log.Println(msg)

			prefix := "\n"
			if !wrote {
				cl.Messages.Clear()
				prefix = ""
				wrote = true
			}
			fmt.Fprint(cl.Messages, prefix+time.Now().Format(LogTimeFormat)+" "+msg)
			cl.Messages.ScrollToEnd()

			cl.queueDraw(event.DrawMessages)
		}
	}
}
