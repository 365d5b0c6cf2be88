package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

var flagWordDifficulty string

var wordCmd = &cobra.Command{
	Use:   "word",
	Short: "Fetch one secret word",
	Long: `Ask the word provider for one word and print it with its source:
remote (from the model), default (model reply was unusable) or
fallback (model call failed; picked from the built-in list).

Any difficulty string is accepted and passed to the model as is;
unknown ones use the medium fallback list.

Examples:
  hangman word
  hangman word --difficulty hard
  hangman word --seed 42`,
	Args: cobra.NoArgs,
	Run:  runWord,
}

func init() {
	wordCmd.Flags().StringVar(&flagWordDifficulty, "difficulty", string(core.DefaultDifficulty), "Difficulty tier")
}

func runWord(cmd *cobra.Command, _ []string) {
	a, err := loadApp(os.Stderr, "hangman")
	if err != nil {
		fail("%v", err)
	}

	d, _ := core.ParseDifficulty(flagWordDifficulty)
	out := a.provider(flagSeed).Fetch(context.Background(), d)

	fmt.Fprintf(cmd.OutOrStdout(), "%s\t(%s)\n", out.Word, out.Source)
}
