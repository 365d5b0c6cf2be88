package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds all styles for the hangman screen.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	DiffNormal  lipgloss.Style
	DiffActive  lipgloss.Style
	Gallows     lipgloss.Style
	Word        lipgloss.Style
	Progress    lipgloss.Style
	Remaining   lipgloss.Style
	MessageInfo lipgloss.Style
	MessageGood lipgloss.Style
	MessageWarn lipgloss.Style
	MessageBad  lipgloss.Style
	Footer      lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		// Difficulty selector
		DiffNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		DiffActive: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("226")).Bold(true).Padding(0, 1),

		Gallows: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2),

		Word:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Progress:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Remaining: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		MessageInfo: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		MessageGood: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		MessageWarn: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		MessageBad:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		Footer: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Message returns the message style for a tone.
func (t Theme) Message(tone Tone) lipgloss.Style {
	switch tone {
	case ToneGood:
		return t.MessageGood
	case ToneWarn:
		return t.MessageWarn
	case ToneBad:
		return t.MessageBad
	}
	return t.MessageInfo
}

// currentTheme is the theme used by View.
var currentTheme = DefaultTheme()

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
