// Package core provides fundamental types shared by the hangman game, the word
// provider and the platform layers. It has no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

import "strings"

// Difficulty names a word difficulty tier. It is a hint for the word provider
// and is not enforced on the word that comes back.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultDifficulty is the tier preselected by the front ends.
const DefaultDifficulty = DifficultyMedium

// Difficulties returns the known tiers in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty normalizes s and reports whether it names a known tier.
// Unknown names are returned normalized so callers may still pass them on.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	return d, d.Known()
}

// Known reports whether d is one of the predefined tiers.
func (d Difficulty) Known() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Next returns the tier after d, wrapping around. Unknown tiers map to the default.
func (d Difficulty) Next() Difficulty {
	all := Difficulties()
	for i, x := range all {
		if x == d {
			return all[(i+1)%len(all)]
		}
	}
	return DefaultDifficulty
}

// Prev returns the tier before d, wrapping around. Unknown tiers map to the default.
func (d Difficulty) Prev() Difficulty {
	all := Difficulties()
	for i, x := range all {
		if x == d {
			return all[(i+len(all)-1)%len(all)]
		}
	}
	return DefaultDifficulty
}

func (d Difficulty) String() string {
	return string(d)
}

// Band is an inclusive word-length range associated with a difficulty.
type Band struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Contains reports whether n lies inside the band.
func (b Band) Contains(n int) bool {
	return n >= b.Min && n <= b.Max
}
