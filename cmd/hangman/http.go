package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/httpserver"
)

var flagHTTPAddr string

var httpCmd = &cobra.Command{
	Use:   "http",
	Short: "Start the hangman JSON API server",
	Long: `Start an HTTP server exposing hangman games as JSON.

Endpoints:
  POST /games              {"difficulty":"easy"}  - Start a game
  POST /games/{id}/guess   {"letter":"a"}         - Guess a letter
  GET  /games/{id}                                - Current state
  GET  /health                                    - Liveness

Games live in memory and are lost on restart.

Examples:
  hangman http
  hangman http --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	Run:  runHTTP,
}

func init() {
	httpCmd.Flags().StringVar(&flagHTTPAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runHTTP(_ *cobra.Command, _ []string) {
	a, err := loadApp(os.Stderr, "hangman-http")
	if err != nil {
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.New(httpserver.NewMemoryStore(), a.source, a.logger)
	if err := srv.ListenAndServe(ctx, flagHTTPAddr); err != nil {
		fail("server: %v", err)
	}
}
