// Package words picks secret words for hangman. A remote text-generation
// service is asked first; every failure falls back to curated static lists.
package words

import "context"

// Request is a single text-completion request.
type Request struct {
	Model       string
	System      string // Instructions that constrain the reply
	Prompt      string // User message
	MaxTokens   int64
	Temperature float64
}

// Completer returns one text completion for a request, or fails with a
// provider, network or auth error.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(ctx context.Context, req Request) (string, error)

// Complete calls f(ctx, req).
func (f CompleterFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
