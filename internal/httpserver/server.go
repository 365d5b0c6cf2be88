// Package httpserver exposes hangman sessions as a small JSON API.
package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/games/hangman"
)

// SourceFactory builds the word source for one game.
type SourceFactory func(seed int64) hangman.WordSource

// Server bundles the router, the game store and the word source factory.
type Server struct {
	r       *chi.Mux
	store   Store
	sources SourceFactory
	logger  *log.Logger
}

// New constructs a Server, installs middleware and registers routes.
func New(st Store, sources SourceFactory, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{r: chi.NewRouter(), store: st, sources: sources, logger: logger}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(30 * time.Second)) // above the provider's request timeout
	s.r.Use(jsonContentType)
	s.r.Use(s.requestLogger)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "games": s.store.Len()})
	})

	s.r.Post("/games", s.handleNewGame)
	s.r.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", s.handleGetGame)
		r.Post("/guess", s.handleGuess)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})

	return s
}

// Router exposes the router, mostly for tests.
func (s *Server) Router() chi.Router { return s.r }

// ListenAndServe serves on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// ------------------------------ payloads -----------------------------------

type newGameReq struct {
	Difficulty string `json:"difficulty"`
}

type guessReq struct {
	Letter string `json:"letter"`
}

// gameRes is returned by every game endpoint.
type gameRes struct {
	ID         string `json:"id"`
	Difficulty string `json:"difficulty"`
	Display    string `json:"display"`
	Drawing    string `json:"drawing"`
	Message    string `json:"message"`
	Progress   string `json:"progress"`
	Status     string `json:"status"` // "playing" | "won" | "lost"
	Remaining  int    `json:"remaining"`
	Rejected   string `json:"rejected,omitempty"`
}

// ------------------------------ handlers -----------------------------------

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json")
			return
		}
	}

	d := core.Difficulty(strings.ToLower(strings.TrimSpace(req.Difficulty)))
	if d == "" {
		d = core.DefaultDifficulty
	}

	g := NewGame(hangman.NewSession(s.sources(time.Now().UnixNano())))
	g.mu.Lock()
	g.last = g.session.Start(r.Context(), d)
	res := g.response(nil)
	g.mu.Unlock()

	if err := s.store.Save(r.Context(), g); err != nil {
		s.logger.Error("save game", "error", err)
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	s.logger.Info("game started", "id", g.ID, "difficulty", d)
	writeJSON(w, http.StatusCreated, res)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookup(w, r)
	if !ok {
		return
	}

	g.mu.Lock()
	res := g.response(nil)
	g.mu.Unlock()

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	g.mu.Lock()
	frame, err := g.session.Guess(req.Letter)
	g.last = frame
	res := g.response(err)
	g.mu.Unlock()

	if err != nil {
		s.logger.Debug("guess rejected", "id", g.ID, "error", err)
	} else if res.Status != string(hangman.StatePlaying) {
		s.logger.Info("game finished", "id", g.ID, "status", res.Status)
	}
	writeJSON(w, http.StatusOK, res)
}

// lookup resolves the {id} path parameter or writes a 404.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*Game, bool) {
	g, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	return g, true
}

// response builds the payload for the last frame. Caller holds g.mu.
func (g *Game) response(err error) gameRes {
	return gameRes{
		ID:         g.ID,
		Difficulty: g.session.Difficulty().String(),
		Display:    g.last.Display,
		Drawing:    g.last.Drawing,
		Message:    g.last.Message,
		Progress:   g.last.Progress,
		Status:     string(g.session.State()),
		Remaining:  g.session.Remaining(),
		Rejected:   rejection(err),
	}
}

// rejection maps guess errors to stable codes.
func rejection(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, hangman.ErrInvalidGuess):
		return "invalid_guess"
	case errors.Is(err, hangman.ErrAlreadyGuessed):
		return "already_guessed"
	case errors.Is(err, hangman.ErrGameOver):
		return "game_over"
	case errors.Is(err, hangman.ErrNoGame):
		return "no_game"
	}
	return "rejected"
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs each request at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
