package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Jester/internal/fetcher"
)

const (
	title       = "Random Joke Generator"
	idlePrompt  = "Press space to get a joke! 😆"
	retryPrompt = "Couldn't fetch a joke. Press space to try again."
	loadingText = "Fetching a hilarious joke... ⏳"
	buttonLabel = "🎭 Get a Joke"
	divider     = "────"
)

// View renders confetti (while celebrating), the joke card and the help line.
func (m Model) View() string {
	if m.layout.TooSmall {
		if m.machine.Celebrating() && len(m.confetti.rows) > 0 {
			return m.confetti.rows[0] + "\n" + m.body(m.layout.Width)
		}
		return m.body(m.layout.Width)
	}

	inner := m.layout.CardWidth - m.theme.CardStyle(m.layout.CardWidth).GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	card := m.theme.CardStyle(m.layout.CardWidth).Render(lipgloss.JoinVertical(lipgloss.Center,
		moodStyle.Render(m.machine.Mood()),
		m.theme.TitleStyle().Render(title),
		"",
		m.body(inner),
		buttonStyle.Render(buttonLabel),
	))

	sections := []string{}
	if m.machine.Celebrating() {
		sections = append(sections, m.confetti.View())
	}
	sections = append(sections, card, m.help.View(m.keys))

	return lipgloss.Place(m.layout.Width, m.layout.Height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}

// body renders exactly one of: the prompt, the loading indicator, or the joke.
func (m Model) body(width int) string {
	wrap := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	switch m.machine.Kind() {
	case fetcher.Loading:
		return wrap.Render(m.spinner.View() + " " + loadingStyle.Render(loadingText))
	case fetcher.Loaded:
		j, _ := m.machine.Joke()
		return wrap.Render(strings.Join([]string{
			setupStyle.Render(j.Setup),
			dividerStyle.Render(divider),
			punchlineStyle.Render(j.Punchline),
		}, "\n"))
	case fetcher.Failed:
		return wrap.Render(promptStyle.Render(retryPrompt))
	default:
		return wrap.Render(promptStyle.Render(idlePrompt))
	}
}
