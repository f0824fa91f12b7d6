package event

type GameAction int

const (
	ActionUnknown GameAction = iota
	ActionRotate
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardLock
	ActionTogglePause
	ActionReset
)

func (a GameAction) String() string {
	switch a {
	case ActionRotate:
		return "rotate"
	case ActionMoveLeft:
		return "move left"
	case ActionMoveRight:
		return "move right"
	case ActionSoftDrop:
		return "soft drop"
	case ActionHardLock:
		return "hard lock"
	case ActionTogglePause:
		return "pause"
	case ActionReset:
		return "reset"
	default:
		return "unknown"
	}
}
