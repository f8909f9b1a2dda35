package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/LISSConsulting/LISSTech.Jester/internal/config"
	"github.com/LISSConsulting/LISSTech.Jester/internal/fetcher"
	"github.com/LISSConsulting/LISSTech.Jester/internal/joke"
)

// Model is the bubbletea model for the joke card.
type Model struct {
	// Fetch state
	machine *fetcher.Machine
	source  joke.Fetcher
	ctx     context.Context

	// Timing
	revealDelay time.Duration
	celebration time.Duration

	// Display state
	spinner  spinner.Model
	help     help.Model
	keys     keyMap
	confetti confetti
	theme    Theme
	layout   Layout
}

// New creates the TUI Model. Fetches run under ctx and hit source; log
// receives the machine's diagnostics (nil discards).
func New(ctx context.Context, source joke.Fetcher, timing config.TimingConfig, accentColor string, log logrus.FieldLogger) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(loadingStyle))
	return Model{
		machine:     fetcher.New(log),
		source:      source,
		ctx:         ctx,
		revealDelay: timing.RevealDelay(),
		celebration: timing.CelebrationWindow(),
		spinner:     sp,
		help:        help.New(),
		keys:        defaultKeyMap(),
		theme:       NewTheme(accentColor),
		layout:      Calculate(80, 24),
	}
}

// Init starts the spinner animation.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// State returns the fetch state currently shown.
func (m Model) State() fetcher.State { return m.machine.State() }

// Celebrating reports whether the confetti is currently up.
func (m Model) Celebrating() bool { return m.machine.Celebrating() }

// fetchCmd runs one fetch for id off the update loop.
func fetchCmd(ctx context.Context, source joke.Fetcher, id fetcher.RequestID) tea.Cmd {
	return func() tea.Msg {
		j, err := source.Fetch(ctx)
		return jokeFetchedMsg{id: id, joke: j, err: err}
	}
}

// after delivers msg once d has elapsed; a non-positive d delivers it on the
// next update.
func after(d time.Duration, msg tea.Msg) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}
