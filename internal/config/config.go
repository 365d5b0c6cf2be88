// Package config provides YAML-based game configuration loading and
// environment handling for the hangman platform.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

// HangmanConfig contains all configuration for the hangman game.
type HangmanConfig struct {
	Provider     ProviderConfig                `yaml:"provider"`
	Words        WordsConfig                   `yaml:"words"`
	Difficulties map[core.Difficulty]core.Band `yaml:"difficulties"`
}

// ProviderConfig defines how the text-generation service is asked for a word.
type ProviderConfig struct {
	Model          string        `yaml:"model"`
	MaxTokens      int64         `yaml:"max_tokens"`
	Temperature    float64       `yaml:"temperature"`
	RequestTimeout time.Duration `yaml:"request_timeout"` // 0 = no timeout beyond the caller's context
	SystemPrompt   string        `yaml:"system_prompt"`   // {bands} is replaced with the length bands
	UserPrompt     string        `yaml:"user_prompt"`     // {difficulty} is replaced with the tier name
}

// WordsConfig defines the static words used when the provider cannot help.
type WordsConfig struct {
	DefaultWord string                       `yaml:"default_word"`
	Fallback    map[core.Difficulty][]string `yaml:"fallback"`
}

// Validation errors.
var (
	ErrNoModel         = errors.New("config: provider model is empty")
	ErrMaxTokens       = errors.New("config: provider max_tokens must be positive")
	ErrTemperature     = errors.New("config: provider temperature must be within [0, 2]")
	ErrDefaultWord     = errors.New("config: default word must be lowercase letters a-z")
	ErrFallbackMissing = errors.New("config: fallback list missing")
	ErrFallbackWord    = errors.New("config: fallback word must be lowercase letters a-z")
	ErrBand            = errors.New("config: difficulty band is invalid")
)

// Validate checks the configuration for values the game cannot work with.
func (c HangmanConfig) Validate() error {
	if strings.TrimSpace(c.Provider.Model) == "" {
		return ErrNoModel
	}
	if c.Provider.MaxTokens <= 0 {
		return ErrMaxTokens
	}
	if c.Provider.Temperature < 0 || c.Provider.Temperature > 2 {
		return ErrTemperature
	}
	if !IsWord(c.Words.DefaultWord) {
		return ErrDefaultWord
	}

	// Medium doubles as the list for unknown tiers, so it must always exist.
	for _, d := range core.Difficulties() {
		list := c.Words.Fallback[d]
		if len(list) == 0 {
			return fmt.Errorf("%w: %s", ErrFallbackMissing, d)
		}
		for _, w := range list {
			if !IsWord(w) {
				return fmt.Errorf("%w: %s: %q", ErrFallbackWord, d, w)
			}
		}
	}

	for d, b := range c.Difficulties {
		if b.Min <= 0 || b.Min > b.Max {
			return fmt.Errorf("%w: %s: %d-%d", ErrBand, d, b.Min, b.Max)
		}
	}
	return nil
}

// IsWord reports whether s is a non-empty run of lowercase ASCII letters.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
