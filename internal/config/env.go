package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process settings read once at startup. The provider credential
// lives here and nowhere else; a missing key only shows up as provider
// failures, which the word provider turns into fallback words.
type Env struct {
	APIKey   string `env:"OPENAI_API_KEY"`
	BaseURL  string `env:"OPENAI_BASE_URL"`
	Model    string `env:"HANGMAN_MODEL"`
	LogLevel string `env:"HANGMAN_LOG_LEVEL" envDefault:"info"`
}

// LoadEnv loads Env from environment variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}

// ApplyEnv overrides file configuration with environment settings.
func ApplyEnv(cfg *HangmanConfig, e Env) {
	if e.Model != "" {
		cfg.Provider.Model = e.Model
	}
}
