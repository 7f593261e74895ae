package systems

import "dungeon-crawl/geom"

// TurnState is the phase of the game clock
type TurnState int

const (
	AwaitingInput TurnState = iota
	PlayerTurn
	MonsterTurn
	GameOver
	Victory
)

func (s TurnState) String() string {
	switch s {
	case AwaitingInput:
		return "AwaitingInput"
	case PlayerTurn:
		return "PlayerTurn"
	case MonsterTurn:
		return "MonsterTurn"
	case GameOver:
		return "GameOver"
	case Victory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// Terminal reports whether only a reset can leave this state
func (s TurnState) Terminal() bool {
	return s == GameOver || s == Victory
}

// next is the state that follows s when nobody has died or won
func (s TurnState) next() TurnState {
	switch s {
	case AwaitingInput:
		return PlayerTurn
	case PlayerTurn:
		return MonsterTurn
	case MonsterTurn:
		return AwaitingInput
	default:
		return s
	}
}

// Key is the input the driver supplies for a tick
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyConfirm
	KeyOther
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyConfirm:
		return "confirm"
	case KeyOther:
		return "other"
	default:
		return "none"
	}
}

// Delta maps a directional key to a unit step; anything else is zero
func (k Key) Delta() geom.Point {
	switch k {
	case KeyLeft:
		return geom.Left
	case KeyRight:
		return geom.Right
	case KeyUp:
		return geom.Up
	case KeyDown:
		return geom.Down
	default:
		return geom.Zero
	}
}
