package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.layout = Calculate(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case jokeFetchedMsg:
		return m.handleFetched(msg)

	case revealMsg:
		if m.machine.Reveal(msg.id) {
			m.confetti = newConfetti(int64(msg.id), m.layout.Width)
			return m, after(m.celebration, celebrationDoneMsg{id: msg.id})
		}
		return m, nil

	case celebrationDoneMsg:
		if m.machine.EndCelebration(msg.id) {
			m.confetti = confetti{}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Fetch):
		id := m.machine.Request()
		m.confetti = confetti{}
		return m, fetchCmd(m.ctx, m.source, id)
	}
	return m, nil
}

func (m Model) handleFetched(msg jokeFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.machine.Fail(msg.id, msg.err)
		return m, nil
	}
	if m.machine.Resolve(msg.id, msg.joke) {
		return m, after(m.revealDelay, revealMsg{id: msg.id})
	}
	return m, nil
}
