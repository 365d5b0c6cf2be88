package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/games/hangman"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play hangman in the terminal",
	Long: `Start a hangman session in the terminal.

Controls:
  Ctrl+N         - Start a new game
  Tab/Shift+Tab  - Change difficulty
  a-z, Enter     - Guess a letter
  F1             - Show all keys
  Esc/Ctrl+C     - Quit

Difficulty options:
  easy    - 4-6 letter words
  medium  - 6-8 letter words (default)
  hard    - 8-12 letter words

Examples:
  hangman play
  hangman play --difficulty hard
  hangman play --log-file ./hangman.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preselected difficulty: easy, medium, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	d, err := parseDifficultyFlag(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}

	// Bubble Tea owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			fail("cannot open log file: %v", openErr)
		}
		defer f.Close()
		logOut = f
	}

	a, err := loadApp(logOut, "hangman")
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		Seed:       flagSeed,
		Difficulty: d,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := hangman.NewSession(a.source(cfg.Seed))
	if err := tui.Run(tui.NewModel(ctx, session, cfg, a.logger)); err != nil {
		fail("%v", err)
	}
}
