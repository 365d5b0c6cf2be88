// Package hangman implements the hangman state machine: one secret word,
// letter guesses, six wrong guesses to lose. Sessions are plain values owned
// by their caller and hold no references to any front end.
package hangman

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

// MaxWrong is the number of wrong guesses that loses the game.
const MaxWrong = 6

// Guess rejections. The frame returned with them carries the user-facing message.
var (
	ErrNoGame         = errors.New("hangman: no game in progress")
	ErrGameOver       = errors.New("hangman: game is over")
	ErrInvalidGuess   = errors.New("hangman: guess must be a single letter")
	ErrAlreadyGuessed = errors.New("hangman: letter already guessed")
)

// WordSource supplies secret words. Implementations must not fail.
type WordSource interface {
	FetchWord(ctx context.Context, d core.Difficulty) string
}

// WordSourceFunc adapts a function to the WordSource interface.
type WordSourceFunc func(ctx context.Context, d core.Difficulty) string

// FetchWord calls f(ctx, d).
func (f WordSourceFunc) FetchWord(ctx context.Context, d core.Difficulty) string {
	return f(ctx, d)
}

// Frame is what a front end shows after every action.
type Frame struct {
	Display  string // Word with unguessed letters masked, e.g. "c _ t"
	Drawing  string // Gallows stage for the current wrong count
	Message  string // Outcome of the last action
	Progress string // "Guessed letters: a, c" or empty before the first guess
}

// Session is the complete state of one game.
type Session struct {
	source     WordSource
	difficulty core.Difficulty
	word       string
	guessed    map[rune]bool
	wrong      int
	state      State
}

// NewSession creates a session that draws its words from source.
func NewSession(source WordSource) *Session {
	return &Session{
		source:  source,
		guessed: make(map[rune]bool),
		state:   StateUninitialized,
	}
}

// Start begins a new game, discarding any game in progress.
func (s *Session) Start(ctx context.Context, d core.Difficulty) Frame {
	word := strings.ToLower(s.source.FetchWord(ctx, d))
	return s.begin(d, word)
}

// begin resets the session around a known word.
func (s *Session) begin(d core.Difficulty, word string) Frame {
	s.difficulty = d
	s.word = word
	s.guessed = make(map[rune]bool)
	s.wrong = 0
	s.state = StatePlaying

	msg := fmt.Sprintf("New %s game started! Word has %d letters.", d, len(s.word))
	return Frame{
		Display:  s.Display(),
		Drawing:  Stage(0),
		Message:  msg,
		Progress: "",
	}
}

// Guess applies one letter guess. Rejected guesses leave the session
// untouched and return the current frame with an explanatory message and
// one of the Err* values.
func (s *Session) Guess(input string) (Frame, error) {
	switch s.state {
	case StateUninitialized:
		return s.frame("No game in progress. Start a new game."), ErrNoGame
	case StateWon, StateLost:
		return s.frame("Game is over! Start a new game."), ErrGameOver
	}

	letter, ok := normalizeGuess(input)
	if !ok {
		return s.frame("Please enter a single letter."), ErrInvalidGuess
	}
	if s.guessed[letter] {
		return s.frame(fmt.Sprintf("You already guessed '%c'. Try a different letter.", letter)), ErrAlreadyGuessed
	}

	s.guessed[letter] = true

	var msg string
	if strings.ContainsRune(s.word, letter) {
		if s.allRevealed() {
			s.state = StateWon
			msg = fmt.Sprintf("Congratulations! You guessed the word '%s'!", s.word)
		} else {
			msg = fmt.Sprintf("Good guess! '%c' is in the word.", letter)
		}
	} else {
		s.wrong++
		if s.wrong >= MaxWrong {
			s.state = StateLost
			msg = fmt.Sprintf("Game Over! The word was '%s'. Try again!", s.word)
		} else {
			msg = fmt.Sprintf("Sorry, '%c' is not in the word. %d guesses remaining.", letter, MaxWrong-s.wrong)
		}
	}

	return s.frame(msg), nil
}

// normalizeGuess trims and lowercases input and accepts exactly one letter a-z.
func normalizeGuess(input string) (rune, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	if len(in) != 1 {
		return 0, false
	}
	r := rune(in[0])
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return r, true
}

// allRevealed reports whether every distinct letter of the word was guessed.
func (s *Session) allRevealed() bool {
	for _, r := range s.word {
		if !s.guessed[r] {
			return false
		}
	}
	return true
}

// frame renders the current state with a message.
func (s *Session) frame(msg string) Frame {
	return Frame{
		Display:  s.Display(),
		Drawing:  s.Drawing(),
		Message:  msg,
		Progress: s.Progress(),
	}
}

// Current returns the frame for the current state with the given message.
func (s *Session) Current(msg string) Frame {
	return s.frame(msg)
}

// State returns the session state.
func (s *Session) State() State {
	return s.state
}

// Difficulty returns the difficulty of the current game.
func (s *Session) Difficulty() core.Difficulty {
	return s.difficulty
}

// WrongCount returns the number of wrong guesses so far.
func (s *Session) WrongCount() int {
	return s.wrong
}

// Remaining returns how many wrong guesses are left.
func (s *Session) Remaining() int {
	return MaxWrong - s.wrong
}
