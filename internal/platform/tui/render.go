package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/games/hangman"
)

// render draws the full screen: title, difficulty selector, gallows next to
// the word panel, then the help bar.
func (m Model) render() string {
	t := currentTheme

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(t.Title.Render("  H A N G M A N  "))
	b.WriteString("\n")
	b.WriteString(t.Subtitle.Render("  Guess the word before the gallows is complete"))
	b.WriteString("\n\n")
	b.WriteString(renderDifficulties(t, m.difficulty))
	b.WriteString("\n\n")

	gallows := t.Gallows.Render(m.frame.Drawing)
	panel := m.renderPanel(t)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, gallows, "  ", panel))
	b.WriteString("\n\n")
	b.WriteString(t.Footer.Render(m.help.View(m.keyMapper.Keys())))
	b.WriteString("\n")

	out := b.String()
	if m.width > 0 && m.height > 0 {
		out = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}

// renderPanel draws the word, message, progress and input column.
func (m Model) renderPanel(t Theme) string {
	lines := []string{
		t.Word.Render(m.frame.Display),
		"",
	}

	if m.loading {
		lines = append(lines, m.spinner.View()+" Picking a "+m.difficulty.String()+" word...")
	} else {
		lines = append(lines, t.Message(m.tone).Render(m.frame.Message))
	}

	if m.frame.Progress != "" {
		lines = append(lines, t.Progress.Render(m.frame.Progress))
	}
	if m.state == hangman.StatePlaying {
		lines = append(lines, t.Remaining.Render(
			fmt.Sprintf("Wrong guesses: %d/%d", m.wrong, hangman.MaxWrong)))
	}

	lines = append(lines, "", m.input.View())
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderDifficulties draws the tier selector with the active tier highlighted.
func renderDifficulties(t Theme, active core.Difficulty) string {
	items := make([]string, 0, len(core.Difficulties()))
	for _, d := range core.Difficulties() {
		label := strings.ToUpper(d.String()[:1]) + d.String()[1:]
		if d == active {
			items = append(items, t.DiffActive.Render(label))
		} else {
			items = append(items, t.DiffNormal.Render(label))
		}
	}
	return "  Difficulty: " + lipgloss.JoinHorizontal(lipgloss.Top, items...)
}
