package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

// Band returns the word-length band for a difficulty.
func (c HangmanConfig) Band(d core.Difficulty) (core.Band, bool) {
	b, ok := c.Difficulties[d]
	return b, ok
}

// DescribeBands renders the known bands one per line, in tier order:
//
//	- Easy: 4-6 letters
func (c HangmanConfig) DescribeBands() string {
	var lines []string
	for _, d := range core.Difficulties() {
		b, ok := c.Difficulties[d]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %d-%d letters", titleCase(string(d)), b.Min, b.Max))
	}
	return strings.Join(lines, "\n")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
