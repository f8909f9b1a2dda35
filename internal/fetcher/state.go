// Package fetcher holds the joke fetch state machine. It performs no I/O and
// reads no clock: its owner reports responses and timer firings, tagged with
// the RequestID they belong to, and the machine drops anything stale.
package fetcher

import "github.com/LISSConsulting/LISSTech.Jester/internal/joke"

// Kind identifies where the current fetch attempt stands.
type Kind int

const (
	Idle    Kind = iota // Nothing requested yet
	Loading             // Request in flight or reveal pending
	Loaded              // Joke on display
	Failed              // Last attempt failed
)

// validTransitions defines the allowed Kind transitions. Loading→Loading
// covers a new trigger arriving while a previous one is still in flight.
var validTransitions = map[Kind][]Kind{
	Idle:    {Loading},
	Loading: {Loaded, Failed, Loading},
	Loaded:  {Loading},
	Failed:  {Loading},
}

// CanTransitionTo reports whether moving from k to next is valid.
func (k Kind) CanTransitionTo(next Kind) bool {
	for _, valid := range validTransitions[k] {
		if valid == next {
			return true
		}
	}
	return false
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Mood returns the emoji shown for the kind.
func (k Kind) Mood() string {
	switch k {
	case Idle:
		return "😂"
	case Loading:
		return "⏳"
	case Loaded:
		return "🤣"
	case Failed:
		return "😬"
	default:
		return "?"
	}
}

// State is the machine's externally visible value. Joke is only meaningful
// when Kind is Loaded; every other kind carries the zero Joke.
type State struct {
	Kind Kind
	Joke joke.Joke
}
