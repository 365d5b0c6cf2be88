// hangman is a terminal word-guessing game whose secret words come from a
// text-generation model, with a static word list when the model is unavailable.
//
// Usage:
//
//	hangman play            - Play in the terminal
//	hangman serve           - Start SSH server for remote play
//	hangman http            - Start the JSON API server
//	hangman word            - Fetch one word and show where it came from
//	hangman difficulties    - List difficulty tiers
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search ~/.hangman/configs, ./configs)
//	--seed <value>      - RNG seed for fallback word selection
//	--log-level <level> - debug, info, warn, error (default: $HANGMAN_LOG_LEVEL or info)
//	--log-file <path>   - Write logs of the terminal game to a file
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/games/hangman"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman - guess the model's word in your terminal",
	Long: `Hangman asks a text-generation model for a secret word and lets you guess
it letter by letter. Six wrong guesses and the gallows is complete.

Set OPENAI_API_KEY (or put it in a .env file) to get words from the model.
Without it the game picks from a built-in word list.

Available commands:
  play          - Play in the terminal
  serve         - Start SSH server for remote play
  http          - Start the JSON API server
  word          - Fetch one word and show its source
  difficulties  - List difficulty tiers

Examples:
  hangman play
  hangman play --difficulty hard
  hangman serve --ssh :2222
  hangman http --addr :8080
  hangman word --difficulty easy --log-level debug`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for fallback words (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for the terminal game")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(httpCmd)
	rootCmd.AddCommand(wordCmd)
	rootCmd.AddCommand(difficultiesCmd)
}

// app is everything a command needs to create word sources.
type app struct {
	cfg       config.HangmanConfig
	env       config.Env
	logger    *log.Logger
	completer words.Completer
}

// loadApp reads .env, the environment and the game config, and builds the
// logger. Logs go to w.
func loadApp(w io.Writer, prefix string) (*app, error) {
	// A missing .env file is normal.
	_ = godotenv.Load()

	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadHangman(flagConfig)
	if err != nil {
		return nil, err
	}
	config.ApplyEnv(&cfg, env)

	levelName := flagLogLevel
	if levelName == "" {
		levelName = env.LogLevel
	}
	level, err := log.ParseLevel(strings.ToLower(levelName))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", levelName)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})

	completer := words.NewOpenAICompleter(words.OpenAIConfig{
		APIKey:  env.APIKey,
		BaseURL: env.BaseURL,
	})
	if env.APIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set, words come from the built-in list")
	}

	return &app{cfg: cfg, env: env, logger: logger, completer: completer}, nil
}

// provider creates a word provider with its own RNG.
func (a *app) provider(seed int64) *words.Provider {
	return words.NewProvider(a.completer, a.cfg, seed, a.logger)
}

// source adapts provider to the session's word source.
func (a *app) source(seed int64) hangman.WordSource {
	return a.provider(seed)
}

// parseDifficultyFlag accepts known tiers only; the empty string selects the default.
func parseDifficultyFlag(s string) (core.Difficulty, error) {
	if s == "" {
		return core.DefaultDifficulty, nil
	}
	d, ok := core.ParseDifficulty(s)
	if !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
	return d, nil
}

// fail prints an error in the CLI's format and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
