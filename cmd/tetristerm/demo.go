package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
)

var demoActions = []event.GameAction{
	event.ActionRotate,
	event.ActionMoveLeft,
	event.ActionMoveRight,
	event.ActionSoftDrop,
	event.ActionSoftDrop,
	event.ActionHardLock,
}

// runDemo plays moves random actions, each followed by a gravity tick, and
// prints every finished game and the final board to w.
func runDemo(w io.Writer, seed int64, moves int, plain bool) error {
	g := game.NewGame(seed, nil)
	r := rand.New(rand.NewSource(seed))

	for i := 0; i < moves; i++ {
		g.ProcessAction(demoActions[r.Intn(len(demoActions))])
		g.Tick()

		for drained := false; !drained; {
			select {
			case e := <-g.Event:
				if over, ok := e.(*event.GameOverEvent); ok {
					if _, err := fmt.Fprintf(w, "Game %d over: score %d, %d lines\n", over.Game, over.Score, over.Lines); err != nil {
						return err
					}
				}
			default:
				drained = true
			}
		}
	}

	return gui.WriteANSI(w, g.Snapshot(), plain)
}
