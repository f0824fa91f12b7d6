package pkg

import (
	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/tetristerm/pkg/event"
)

type Keybinding struct {
	k tcell.Key
	r rune
	m tcell.ModMask

	a event.GameAction
}

var keybindings = []*Keybinding{
	{k: tcell.KeyUp, a: event.ActionRotate},
	{r: 'k', a: event.ActionRotate},
	{r: 'K', a: event.ActionRotate},
	{r: 'x', a: event.ActionRotate},
	{r: 'X', a: event.ActionRotate},
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{r: 'H', a: event.ActionMoveLeft},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{r: 'L', a: event.ActionMoveRight},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{r: 'J', a: event.ActionSoftDrop},
	{r: ' ', a: event.ActionHardLock},
	{r: 'p', a: event.ActionTogglePause},
	{r: 'P', a: event.ActionTogglePause},
	{k: tcell.KeyF2, a: event.ActionReset},
}

func (b *Keybinding) matches(ev *tcell.EventKey) bool {
	if b.k != 0 && b.k != ev.Key() {
		return false
	}
	if b.r != 0 && (ev.Key() != tcell.KeyRune || b.r != ev.Rune()) {
		return false
	}
	return b.m == 0 || b.m == ev.Modifiers()
}

// ActionFor returns the game action bound to a key press, or
// event.ActionUnknown when the key is not bound.
func ActionFor(ev *tcell.EventKey) event.GameAction {
	for _, bind := range keybindings {
		if bind.matches(ev) {
			return bind.a
		}
	}

	return event.ActionUnknown
}

// isQuit reports whether the key press closes the game.
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}

	return false
}
