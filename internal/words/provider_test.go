package words

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/core"
)

func replying(reply string) Completer {
	return CompleterFunc(func(context.Context, Request) (string, error) {
		return reply, nil
	})
}

func failing(err error) Completer {
	return CompleterFunc(func(context.Context, Request) (string, error) {
		return "", err
	})
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"elephant", "elephant"},
		{"  Rainbow\n", "rainbow"},
		{"Butter-fly.", "butterfly"},
		{"\"Python\"", "python"},
		{"word: tree", "wordtree"},
		{"42", ""},
		{"   ", ""},
		{"café", "caf"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFetchRemoteWord(t *testing.T) {
	p := NewProvider(replying("  Elephant!\n"), config.DefaultHangmanConfig(), 1, nil)

	out := p.Fetch(context.Background(), core.DifficultyMedium)
	if out.Word != "elephant" {
		t.Errorf("word = %q, want elephant", out.Word)
	}
	if out.Source != SourceRemote {
		t.Errorf("source = %q, want %q", out.Source, SourceRemote)
	}
	if out.Err != nil {
		t.Errorf("unexpected error: %v", out.Err)
	}
}

func TestFetchEmptyReplyUsesDefaultWord(t *testing.T) {
	p := NewProvider(replying("123 !!"), config.DefaultHangmanConfig(), 1, nil)

	out := p.Fetch(context.Background(), core.DifficultyEasy)
	if out.Word != "python" || out.Source != SourceDefault {
		t.Errorf("got (%q, %q), want (python, default)", out.Word, out.Source)
	}
}

func TestFetchFailureUsesFallbackList(t *testing.T) {
	cfg := config.DefaultHangmanConfig()
	boom := errors.New("401 unauthorized")
	p := NewProvider(failing(boom), cfg, 7, nil)

	hard := cfg.Words.Fallback[core.DifficultyHard]
	for i := 0; i < 50; i++ {
		out := p.Fetch(context.Background(), core.DifficultyHard)
		if !slices.Contains(hard, out.Word) {
			t.Fatalf("word %q is not in the hard fallback list %v", out.Word, hard)
		}
		if out.Source != SourceFallback || !errors.Is(out.Err, boom) {
			t.Fatalf("got (%q, %v), want fallback with provider error", out.Source, out.Err)
		}
	}
}

func TestFallbackUnknownDifficultyUsesMedium(t *testing.T) {
	cfg := config.DefaultHangmanConfig()
	p := NewProvider(nil, cfg, 3, nil)

	medium := cfg.Words.Fallback[core.DifficultyMedium]
	for i := 0; i < 20; i++ {
		w := p.FetchWord(context.Background(), core.Difficulty("nightmare"))
		if !slices.Contains(medium, w) {
			t.Fatalf("word %q is not in the medium fallback list", w)
		}
	}
}

func TestFallbackCoversWholeList(t *testing.T) {
	cfg := config.DefaultHangmanConfig()
	p := NewProvider(nil, cfg, 99, nil)

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		seen[p.Fallback(core.DifficultyEasy)] = true
	}
	for _, w := range cfg.Words.Fallback[core.DifficultyEasy] {
		if !seen[w] {
			t.Errorf("fallback never picked %q in 500 draws", w)
		}
	}
}

func TestFallbackDeterministicWithSeed(t *testing.T) {
	cfg := config.DefaultHangmanConfig()
	p1 := NewProvider(nil, cfg, 12345, nil)
	p2 := NewProvider(nil, cfg, 12345, nil)

	for i := 0; i < 10; i++ {
		a := p1.Fallback(core.DifficultyMedium)
		b := p2.Fallback(core.DifficultyMedium)
		if a != b {
			t.Fatalf("draw %d differs: %q vs %q", i, a, b)
		}
	}
}

func TestRequestShape(t *testing.T) {
	var got Request
	c := CompleterFunc(func(_ context.Context, req Request) (string, error) {
		got = req
		return "algorithm", nil
	})
	p := NewProvider(c, config.DefaultHangmanConfig(), 1, nil)
	p.FetchWord(context.Background(), core.DifficultyHard)

	if got.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", got.Model)
	}
	if got.Prompt != "Give me a hard difficulty word for hangman." {
		t.Errorf("prompt = %q", got.Prompt)
	}
	if got.MaxTokens != 10 || got.Temperature != 0.8 {
		t.Errorf("sampling = (%d, %v), want (10, 0.8)", got.MaxTokens, got.Temperature)
	}
	for _, want := range []string{"Return ONLY the word", "- Easy: 4-6 letters", "- Hard: 8-12 letters", "lowercase"} {
		if !strings.Contains(got.System, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
	if strings.Contains(got.System, "{bands}") {
		t.Error("system prompt still contains the {bands} placeholder")
	}
}

func TestFetchTimeoutFallsBack(t *testing.T) {
	cfg := config.DefaultHangmanConfig()
	cfg.Provider.RequestTimeout = 10 * time.Millisecond

	slow := CompleterFunc(func(ctx context.Context, _ Request) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	p := NewProvider(slow, cfg, 1, nil)

	out := p.Fetch(context.Background(), core.DifficultyEasy)
	if out.Source != SourceFallback || !errors.Is(out.Err, context.DeadlineExceeded) {
		t.Errorf("got (%q, %v), want fallback after deadline", out.Source, out.Err)
	}
}

func TestFetchAlwaysYieldsLowercaseWord(t *testing.T) {
	replies := []Completer{
		replying("Extraordinary"),
		replying(""),
		replying("the word is: TREE."),
		failing(errors.New("network down")),
		nil,
	}
	difficulties := append(core.Difficulties(), core.Difficulty("unknown"))

	for _, c := range replies {
		p := NewProvider(c, config.DefaultHangmanConfig(), 5, nil)
		for _, d := range difficulties {
			w := p.FetchWord(context.Background(), d)
			if !config.IsWord(w) {
				t.Errorf("FetchWord(%q) = %q, want non-empty lowercase a-z", d, w)
			}
		}
	}
}
