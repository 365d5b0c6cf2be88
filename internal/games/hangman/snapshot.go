package hangman

import "github.com/vovakirdan/tui-hangman/internal/core"

// State represents the lifecycle state of a session.
type State string

const (
	StateUninitialized State = "uninitialized"
	StatePlaying       State = "playing"
	StateWon           State = "won"
	StateLost          State = "lost"
)

// Terminal reports whether the game has ended.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Snapshot captures the complete session state for tests and API responses.
type Snapshot struct {
	Word       string
	Difficulty core.Difficulty
	Guessed    []string // Alphabetical
	WrongCount int
	State      State
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Word:       s.word,
		Difficulty: s.difficulty,
		Guessed:    s.GuessedLetters(),
		WrongCount: s.wrong,
		State:      s.state,
	}
}
