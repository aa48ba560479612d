package component

type GameState int

const (
	GamePlaying GameState = iota
	GameLost
	GameWon
)

func (s GameState) String() string {
	switch s {
	case GamePlaying:
		return "playing"
	case GameLost:
		return "lost"
	case GameWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether input should no longer move the player.
func (s GameState) Terminal() bool {
	return s == GameLost || s == GameWon
}

// Status is the world singleton holding the game state.
type Status struct {
	State GameState
}

var StatusComponent = NewComponent[Status]()
