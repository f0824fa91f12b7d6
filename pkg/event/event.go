package event

// Event is the base of everything a game publishes on its event channel.
type Event struct {
	Game    int
	Message string
}

// GameOverEvent is sent when a new piece cannot be placed. Score is the final
// score of the game that just ended; the game has already been reset when the
// event is received.
type GameOverEvent struct {
	Event
	Score int
	Lines int
}

// ScoreEvent is sent after a lock that cleared at least one line.
type ScoreEvent struct {
	Event
	Lines int
	Score int
}

type SpawnEvent struct {
	Event
	Piece string
	Next  string
}

type PauseEvent struct {
	Event
	Paused bool
}
