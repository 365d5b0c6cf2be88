package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

//go:embed defaults/hangman.yaml
var defaultHangmanYAML []byte

const defaultSystemPrompt = `You are a hangman game assistant. Your job is to provide a single word for the hangman game.

Rules:
1. Return ONLY the word, nothing else
2. Word must be a common English word
3. No proper nouns, abbreviations, or hyphenated words
4. Word length based on difficulty:
{bands}
5. Choose words that are challenging but fair
6. Avoid overly obscure words

Return only the word in lowercase.
`

// DefaultHangmanConfig returns the default hangman configuration.
func DefaultHangmanConfig() HangmanConfig {
	return HangmanConfig{
		Provider: ProviderConfig{
			Model:          "gpt-4o-mini",
			MaxTokens:      10,
			Temperature:    0.8,
			RequestTimeout: 20 * time.Second,
			SystemPrompt:   defaultSystemPrompt,
			UserPrompt:     "Give me a {difficulty} difficulty word for hangman.",
		},
		Words: WordsConfig{
			DefaultWord: "python",
			Fallback: map[core.Difficulty][]string{
				core.DifficultyEasy:   {"cat", "dog", "house", "tree", "book", "happy"},
				core.DifficultyMedium: {"python", "computer", "elephant", "rainbow", "butterfly"},
				core.DifficultyHard:   {"programming", "algorithm", "mysterious", "extraordinary"},
			},
		},
		Difficulties: map[core.Difficulty]core.Band{
			core.DifficultyEasy:   {Min: 4, Max: 6},
			core.DifficultyMedium: {Min: 6, Max: 8},
			core.DifficultyHard:   {Min: 8, Max: 12},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultHangmanYAML
}
