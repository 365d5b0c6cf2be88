package core

// Action represents a semantic front-end action, abstracted from physical key presses.
type Action int

const (
	ActionNone           Action = iota
	ActionSubmit                // Enter - submit the typed letter
	ActionNewGame               // Ctrl+N - start a new game with the selected difficulty
	ActionNextDifficulty        // Tab - select the next difficulty tier
	ActionPrevDifficulty        // Shift+Tab - select the previous difficulty tier
	ActionHelp                  // ? - toggle the full help view
	ActionQuit                  // Esc, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSubmit:
		return "Submit"
	case ActionNewGame:
		return "NewGame"
	case ActionNextDifficulty:
		return "NextDifficulty"
	case ActionPrevDifficulty:
		return "PrevDifficulty"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
