package tui

import (
	"github.com/LISSConsulting/LISSTech.Jester/internal/fetcher"
	"github.com/LISSConsulting/LISSTech.Jester/internal/joke"
)

// jokeFetchedMsg carries the outcome of one fetch back to the update loop.
type jokeFetchedMsg struct {
	id   fetcher.RequestID
	joke joke.Joke
	err  error
}

// revealMsg fires when the reveal delay for a request has passed.
type revealMsg struct{ id fetcher.RequestID }

// celebrationDoneMsg fires when the celebration window for a request ends.
type celebrationDoneMsg struct{ id fetcher.RequestID }
