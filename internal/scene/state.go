package scene

import "errors"

// State of a game session.
type State int

const (
	Playing State = iota
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// Direction of a scale command.
type Direction int

const (
	ScaleUp Direction = iota
	ScaleDown
)

func (d Direction) String() string {
	if d == ScaleUp {
		return "up"
	}
	return "down"
}

var (
	ErrNotGameOver   = errors.New("scene: restart is only allowed after game over")
	ErrObstacleWidth = errors.New("scene: obstacle width out of range")
	ErrNoSpawnLane   = errors.New("scene: no vertical room outside the safe band")
)

// Haptics emits a short pulse on collision. Errors are logged and otherwise ignored.
type Haptics interface {
	Pulse() error
}

// Prompter shows the game-over prompt; onConfirm restarts the session.
type Prompter interface {
	PresentRestartPrompt(onConfirm func())
}

type nopHaptics struct{}

func (nopHaptics) Pulse() error { return nil }

type nopPrompter struct{}

func (nopPrompter) PresentRestartPrompt(func()) {}

// Stats are in-memory counters; nothing is persisted.
type Stats struct {
	Sessions int
	Spawned  int
	Dodged   int
	Hits     int
}
