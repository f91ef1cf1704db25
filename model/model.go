package model

import "fmt"

// Cell is a grid coordinate.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add offsets the cell by one step in direction d.
func (c Cell) Add(d Direction) Cell {
	off := offsets[d]
	return Cell{X: c.X + off.X, Y: c.Y + off.Y}
}

type Direction int

const (
	UP Direction = iota
	DOWN
	LEFT
	RIGHT
)

var offsets = [4]Cell{
	UP:    {X: 0, Y: -1},
	DOWN:  {X: 0, Y: 1},
	LEFT:  {X: -1, Y: 0},
	RIGHT: {X: 1, Y: 0},
}

func (d Direction) Name() string {
	switch d {
	case UP:
		return "UP"
	case DOWN:
		return "DOWN"
	case LEFT:
		return "LEFT"
	case RIGHT:
		return "RIGHT"
	default:
		return fmt.Sprintf("N/A(%d)", d)
	}
}

// Intent is what the input side asks the game to do.
type Intent int

const (
	NONE Intent = iota
	MOVE_UP
	MOVE_DOWN
	MOVE_LEFT
	MOVE_RIGHT
	RESTART
)

// Direction reports the movement direction of a move intent.
func (i Intent) Direction() (Direction, bool) {
	switch i {
	case MOVE_UP:
		return UP, true
	case MOVE_DOWN:
		return DOWN, true
	case MOVE_LEFT:
		return LEFT, true
	case MOVE_RIGHT:
		return RIGHT, true
	default:
		return 0, false
	}
}

func (i Intent) Name() string {
	switch i {
	case NONE:
		return "NONE"
	case MOVE_UP:
		return "MOVE_UP"
	case MOVE_DOWN:
		return "MOVE_DOWN"
	case MOVE_LEFT:
		return "MOVE_LEFT"
	case MOVE_RIGHT:
		return "MOVE_RIGHT"
	case RESTART:
		return "RESTART"
	default:
		return fmt.Sprintf("N/A(%d)", i)
	}
}

type Status int

const (
	PLAYING Status = iota + 1
	GAME_OVER
)

func (s Status) Name() string {
	switch s {
	case PLAYING:
		return "PLAYING"
	case GAME_OVER:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

const GameOverMessage = "Game over! Press R to restart"

// Snapshot is a read-only copy of everything needed to draw a frame.
type Snapshot struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Blocked  []Cell `json:"blocked"`
	Player   Cell   `json:"player"`
	Pursuers []Cell `json:"pursuers"`
	Status   Status `json:"status"`
	Turn     int    `json:"turn"`
	Message  string `json:"message,omitempty"`
}
