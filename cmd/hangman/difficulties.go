package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/core"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty tiers",
	Long:  `Shows the difficulty tiers with their word length bands and fallback word counts.`,
	Args:  cobra.NoArgs,
	Run:   runDifficulties,
}

func runDifficulties(cmd *cobra.Command, _ []string) {
	cfg, err := config.LoadHangman(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Difficulty tiers:")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %-8s  %-8s  %s\n", "Tier", "Length", "Fallback words")
	fmt.Fprintf(w, "  %-8s  %-8s  %s\n", "----", "------", "--------------")

	for _, d := range core.Difficulties() {
		length := "-"
		if b, ok := cfg.Band(d); ok {
			length = fmt.Sprintf("%d-%d", b.Min, b.Max)
		}
		fmt.Fprintf(w, "  %-8s  %-8s  %d\n", d, length, len(cfg.Words.Fallback[d]))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Run 'hangman play --difficulty <tier>' to play.\n")
}
