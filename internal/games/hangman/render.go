package hangman

import (
	"sort"
	"strings"
)

// Placeholder masks letters that have not been guessed yet.
const Placeholder = "_"

// progressLabel prefixes the guessed-letter list.
const progressLabel = "Guessed letters: "

// Display returns the word with unguessed letters masked, positions
// separated by single spaces.
func (s *Session) Display() string {
	var b strings.Builder
	for _, r := range s.word {
		if s.guessed[r] {
			b.WriteRune(r)
		} else {
			b.WriteString(Placeholder)
		}
		b.WriteByte(' ')
	}
	return strings.TrimRight(b.String(), " ")
}

// Drawing returns the gallows stage for the current wrong count.
func (s *Session) Drawing() string {
	return Stage(s.wrong)
}

// Progress lists the guessed letters alphabetically, or returns an empty
// string when nothing has been guessed.
func (s *Session) Progress() string {
	letters := s.GuessedLetters()
	if len(letters) == 0 {
		return ""
	}
	return progressLabel + strings.Join(letters, ", ")
}

// GuessedLetters returns the guessed letters in alphabetical order.
func (s *Session) GuessedLetters() []string {
	out := make([]string, 0, len(s.guessed))
	for r := range s.guessed {
		out = append(out, string(r))
	}
	sort.Strings(out)
	return out
}
