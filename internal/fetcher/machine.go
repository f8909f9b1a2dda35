package fetcher

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/LISSConsulting/LISSTech.Jester/internal/joke"
)

// RequestID tags one user trigger. IDs increase monotonically; zero is never
// issued.
type RequestID uint64

// Machine is the joke fetch state machine. It is not safe for concurrent
// use; the bubbletea update loop (or the headless command) owns it.
type Machine struct {
	state       State
	latest      RequestID
	pending     *joke.Joke // response received, reveal timer not yet fired
	celebrating bool
	err         error
	log         logrus.FieldLogger
}

// New returns an Idle machine. log receives one entry per failed fetch; nil
// discards.
func New(log logrus.FieldLogger) *Machine {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Machine{
		state: State{Kind: Idle},
		log:   log,
	}
}

// Request starts a new fetch from any state. The previous joke is hidden at
// once and any running celebration ends. The caller issues one fetch tagged
// with the returned ID.
func (m *Machine) Request() RequestID {
	m.latest++
	m.state = State{Kind: Loading}
	m.pending = nil
	m.celebrating = false
	m.err = nil
	m.log.WithField("request_id", uint64(m.latest)).Debug("fetch joke requested")
	return m.latest
}

// Resolve records a successful response for id. The joke is held back until
// Reveal so the loading state stays visible for the reveal delay. It reports
// whether the caller should schedule that reveal.
func (m *Machine) Resolve(id RequestID, j joke.Joke) bool {
	if !m.current(id) || m.state.Kind != Loading {
		return false
	}
	m.pending = &j
	return true
}

// Reveal shows the pending joke for id and starts the celebration. It
// reports whether the caller should schedule EndCelebration.
func (m *Machine) Reveal(id RequestID) bool {
	if !m.current(id) || m.pending == nil || !m.state.Kind.CanTransitionTo(Loaded) {
		return false
	}
	m.state = State{Kind: Loaded, Joke: *m.pending}
	m.pending = nil
	m.celebrating = true
	m.log.WithFields(logrus.Fields{
		"request_id": uint64(id),
		"joke_id":    m.state.Joke.ID,
	}).Debug("joke revealed")
	return true
}

// Fail records a failed response for id. Nothing from the attempt is kept
// and no celebration runs. It reports whether the failure was applied; a
// superseded failure is logged at debug level and otherwise ignored.
func (m *Machine) Fail(id RequestID, err error) bool {
	if !m.current(id) || m.state.Kind != Loading {
		m.log.WithFields(logrus.Fields{
			"request_id": uint64(id),
			"latest":     uint64(m.latest),
			"state":      m.state.Kind.String(),
		}).WithError(err).Debug("ignoring superseded fetch failure")
		return false
	}
	m.state = State{Kind: Failed}
	m.pending = nil
	m.celebrating = false
	m.err = err
	m.log.WithFields(logrus.Fields{
		"request_id": uint64(id),
	}).WithError(err).Error("fetch joke failed")
	return true
}

// EndCelebration clears the celebration flag if id is still the latest
// request. Timers from superseded requests are ignored.
func (m *Machine) EndCelebration(id RequestID) bool {
	if !m.current(id) || !m.celebrating {
		return false
	}
	m.celebrating = false
	return true
}

// current reports whether id belongs to the most recent Request.
func (m *Machine) current(id RequestID) bool {
	return id != 0 && id == m.latest
}

// State returns the current state value.
func (m *Machine) State() State { return m.state }

// Kind returns the current state kind.
func (m *Machine) Kind() Kind { return m.state.Kind }

// Joke returns the displayed joke, if any.
func (m *Machine) Joke() (joke.Joke, bool) {
	if m.state.Kind != Loaded {
		return joke.Joke{}, false
	}
	return m.state.Joke, true
}

// Celebrating reports whether the success celebration is active.
func (m *Machine) Celebrating() bool { return m.celebrating }

// Mood returns the emoji for the current state.
func (m *Machine) Mood() string { return m.state.Kind.Mood() }

// Latest returns the ID of the most recent request, or zero before the first.
func (m *Machine) Latest() RequestID { return m.latest }

// Err returns the error behind the current Failed state, for diagnostics.
func (m *Machine) Err() error { return m.err }
