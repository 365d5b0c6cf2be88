package httpserver

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-hangman/internal/games/hangman"
)

// ErrNotFound is returned for unknown game ids.
var ErrNotFound = errors.New("httpserver: game not found")

// Game is one hangman session addressable over HTTP. The mutex serializes
// actions so each session keeps a single caller at a time.
type Game struct {
	ID string

	mu      sync.Mutex
	session *hangman.Session
	last    hangman.Frame
}

// NewGame wraps a session under a fresh random id.
func NewGame(session *hangman.Session) *Game {
	return &Game{ID: uuid.NewString(), session: session}
}

// Store keeps games for the lifetime of the process.
type Store interface {
	// Save adds or replaces a game.
	Save(ctx context.Context, g *Game) error

	// Get retrieves a game by id or returns ErrNotFound.
	Get(ctx context.Context, id string) (*Game, error)

	// Len returns the number of stored games.
	Len() int
}

type memory struct {
	mu    sync.RWMutex
	games map[string]*Game
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*Game)}
}

func (m *memory) Save(_ context.Context, g *Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

func (m *memory) Get(_ context.Context, id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
