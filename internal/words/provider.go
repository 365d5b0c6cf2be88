package words

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/core"
)

// ErrNoCompleter is the failure recorded when a provider has no completer.
var ErrNoCompleter = errors.New("words: no completer configured")

// Source tells where a selected word came from.
type Source string

const (
	SourceRemote   Source = "remote"   // Sanitized provider reply
	SourceDefault  Source = "default"  // Provider replied, but nothing usable was left
	SourceFallback Source = "fallback" // Provider failed; picked from the static list
)

// Result is the outcome of one remote call: a raw reply or the reason it failed.
type Result struct {
	Reply string
	Err   error
}

// Outcome is the word chosen for a difficulty and how it was chosen.
type Outcome struct {
	Word   string
	Source Source
	Err    error // Provider failure that led to a fallback word, if any
}

// Provider selects secret words. It never fails: every failure path resolves
// to a lowercase a-z word. A Provider is not safe for concurrent use; give
// each session its own.
type Provider struct {
	completer Completer
	cfg       config.HangmanConfig
	rng       *rand.Rand
	logger    *log.Logger
}

// NewProvider creates a word provider. A zero seed uses the current time.
// A nil completer makes every remote call fail; a nil logger discards output.
func NewProvider(c Completer, cfg config.HangmanConfig, seed int64, logger *log.Logger) *Provider {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Provider{
		completer: c,
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		logger:    logger,
	}
}

// FetchWord returns a word for the difficulty.
func (p *Provider) FetchWord(ctx context.Context, d core.Difficulty) string {
	return p.Fetch(ctx, d).Word
}

// Fetch asks the completer for a word and resolves the result.
func (p *Provider) Fetch(ctx context.Context, d core.Difficulty) Outcome {
	out := p.Resolve(d, p.call(ctx, d))
	if out.Err != nil {
		p.logger.Warn("word provider failed, using fallback list", "difficulty", d, "error", out.Err)
	}
	p.logger.Debug("word selected", "difficulty", d, "source", out.Source, "length", len(out.Word))
	return out
}

// call performs the remote request and captures its result.
func (p *Provider) call(ctx context.Context, d core.Difficulty) Result {
	if p.completer == nil {
		return Result{Err: ErrNoCompleter}
	}
	if t := p.cfg.Provider.RequestTimeout; t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}
	reply, err := p.completer.Complete(ctx, p.Request(d))
	return Result{Reply: reply, Err: err}
}

// Request builds the completion request for a difficulty.
func (p *Provider) Request(d core.Difficulty) Request {
	pc := p.cfg.Provider
	return Request{
		Model:       pc.Model,
		System:      strings.ReplaceAll(pc.SystemPrompt, "{bands}", p.cfg.DescribeBands()),
		Prompt:      strings.ReplaceAll(pc.UserPrompt, "{difficulty}", string(d)),
		MaxTokens:   pc.MaxTokens,
		Temperature: pc.Temperature,
	}
}

// Resolve turns a remote result into a word: a failure picks from the
// fallback list, a reply is sanitized and replaced by the default word when
// nothing is left.
func (p *Provider) Resolve(d core.Difficulty, r Result) Outcome {
	if r.Err != nil {
		return Outcome{Word: p.Fallback(d), Source: SourceFallback, Err: r.Err}
	}
	if w := Sanitize(r.Reply); w != "" {
		return Outcome{Word: w, Source: SourceRemote}
	}
	return Outcome{Word: p.defaultWord(), Source: SourceDefault}
}

// Fallback picks a word uniformly from the static list for d. Unknown
// difficulties use the medium list.
func (p *Provider) Fallback(d core.Difficulty) string {
	list := p.FallbackList(d)
	if len(list) == 0 {
		return p.defaultWord()
	}
	return list[p.rng.Intn(len(list))]
}

// FallbackList returns the static list used for d.
func (p *Provider) FallbackList(d core.Difficulty) []string {
	if list, ok := p.cfg.Words.Fallback[d]; ok && len(list) > 0 {
		return list
	}
	return p.cfg.Words.Fallback[core.DifficultyMedium]
}

func (p *Provider) defaultWord() string {
	if config.IsWord(p.cfg.Words.DefaultWord) {
		return p.cfg.Words.DefaultWord
	}
	return "python"
}

// Sanitize trims and lowercases s and drops every character outside a-z.
func Sanitize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
