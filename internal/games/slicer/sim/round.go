package sim

import "errors"

// State is the game state machine's position.
type State int

const (
	StateStart State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// EndReason tells why a round ended.
type EndReason int

const (
	EndNone EndReason = iota
	EndHazard
	EndOutOfLives
)

func (r EndReason) String() string {
	switch r {
	case EndHazard:
		return "hazard"
	case EndOutOfLives:
		return "out of lives"
	default:
		return "none"
	}
}

// ErrInvalidTransition is returned when a command does not apply to the current state.
var ErrInvalidTransition = errors.New("sim: invalid state transition")

// HighScoreStore is the persistence contract for the single best score.
type HighScoreStore interface {
	HighScore() (int, error)
	SetHighScore(score int) error
}

// Hooks are optional callbacks into the host.
type Hooks struct {
	// OnGameOver runs once per round with the frozen final score.
	OnGameOver func(finalScore int)
}

// Round holds the per-round counters. It is replaced wholesale on restart.
type Round struct {
	Score        int
	Lives        int
	Tick         int
	Level        float64 // Difficulty scalar in [0, 1], monotonic in score
	HighScore    int     // Read from the store at round start
	NewHighScore bool
	Reason       EndReason
}

func newRound(lives, highScore int, level float64) Round {
	return Round{
		Lives:     lives,
		HighScore: highScore,
		Level:     level,
	}
}

// award adds points for a cut.
func (r *Round) award(points int) {
	if points > 0 {
		r.Score += points
	}
}

// loseLife removes one life and reports whether the round is out of lives.
func (r *Round) loseLife() bool {
	if r.Lives > 0 {
		r.Lives--
	}
	return r.Lives == 0
}
