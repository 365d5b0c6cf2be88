// Package tui runs hangman in the terminal with Bubble Tea, locally or over SSH.
package tui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/games/hangman"
)

// Initial texts shown before the first game, as in the web version.
const (
	idleDisplay = "Press ctrl+n to start a new game!"
	idleDrawing = "Ready to play!"
)

// Tone selects the style of the message line.
type Tone int

const (
	ToneInfo Tone = iota
	ToneGood
	ToneWarn
	ToneBad
)

// gameStartedMsg carries the frame of a freshly started game.
type gameStartedMsg struct {
	frame hangman.Frame
}

// Model is the Bubble Tea model for one hangman session.
//
// Start blocks on the word provider, so it runs as a command. While it is in
// flight the model ignores everything except quit, and View only reads the
// cached frame, state and wrong count.
type Model struct {
	ctx        context.Context
	session    *hangman.Session
	config     core.RuntimeConfig
	logger     *log.Logger
	keyMapper  *KeyMapper
	input      textinput.Model
	spinner    spinner.Model
	help       help.Model
	difficulty core.Difficulty
	frame      hangman.Frame
	state      hangman.State
	wrong      int
	tone       Tone
	loading    bool
	quitting   bool
	width      int
	height     int
}

// NewModel creates a new Bubble Tea model around a session.
func NewModel(ctx context.Context, session *hangman.Session, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if !cfg.Difficulty.Known() {
		cfg.Difficulty = core.DefaultDifficulty
	}

	in := textinput.New()
	in.Placeholder = "Type a letter..."
	in.Prompt = "Guess: "
	in.CharLimit = 8
	in.Width = 12
	in.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		ctx:        ctx,
		session:    session,
		config:     cfg,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		input:      in,
		spinner:    sp,
		help:       help.New(),
		difficulty: cfg.Difficulty,
		frame: hangman.Frame{
			Display: idleDisplay,
			Drawing: idleDrawing,
		},
		state:  session.State(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case gameStartedMsg:
		m.loading = false
		m.frame = msg.frame
		m.state = m.session.State()
		m.wrong = m.session.WrongCount()
		m.tone = ToneInfo
		m.logger.Info("game started", "difficulty", m.session.Difficulty())
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.loading {
		return m, nil
	}

	switch action {
	case core.ActionNewGame:
		m.loading = true
		m.input.Reset()
		return m, tea.Batch(m.spinner.Tick, m.startCmd())

	case core.ActionNextDifficulty:
		m.difficulty = m.difficulty.Next()
		return m, nil

	case core.ActionPrevDifficulty:
		m.difficulty = m.difficulty.Prev()
		return m, nil

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionSubmit:
		return m.submitGuess(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startCmd starts a game with the selected difficulty off the UI loop.
func (m Model) startCmd() tea.Cmd {
	ctx, session, d := m.ctx, m.session, m.difficulty
	return func() tea.Msg {
		return gameStartedMsg{frame: session.Start(ctx, d)}
	}
}

// submitGuess applies the typed input as a guess.
func (m Model) submitGuess() Model {
	value := m.input.Value()
	m.input.Reset()

	frame, err := m.session.Guess(value)
	if errors.Is(err, hangman.ErrNoGame) {
		// Keep the idle texts until the first game starts.
		frame.Display, frame.Drawing = m.frame.Display, m.frame.Drawing
	}
	m.frame = frame
	m.state = m.session.State()
	m.wrong = m.session.WrongCount()
	m.tone = toneFor(m.state, err)

	if err != nil {
		m.logger.Debug("guess rejected", "error", err)
	} else if m.state.Terminal() {
		m.logger.Info("game finished", "state", m.state, "wrong", m.wrong)
	}
	return m
}

// toneFor picks a message tone from the outcome of a guess.
func toneFor(state hangman.State, err error) Tone {
	switch {
	case err != nil:
		return ToneWarn
	case state == hangman.StateWon:
		return ToneGood
	case state == hangman.StateLost:
		return ToneBad
	}
	return ToneInfo
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// Frame returns the last frame shown.
func (m Model) Frame() hangman.Frame {
	return m.frame
}

// Difficulty returns the selected difficulty.
func (m Model) Difficulty() core.Difficulty {
	return m.difficulty
}

// Loading reports whether a new game is being fetched.
func (m Model) Loading() bool {
	return m.loading
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(model.ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && model.ctx.Err() != nil {
		return nil
	}
	return err
}
