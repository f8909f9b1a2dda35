// Package tui provides a bubbletea + lipgloss terminal UI for fetching jokes.
package tui

import "github.com/charmbracelet/lipgloss"

// defaultAccentColor is the default accent color (magenta).
const defaultAccentColor = "#FF00FF"

// Color palette.
var (
	colorWhite  = lipgloss.Color("#FAFAFA")
	colorGray   = lipgloss.Color("#888888")
	colorPink   = lipgloss.Color("#EC4899")
	colorCyan   = lipgloss.Color("#00FFFF")
	colorYellow = lipgloss.Color("#FFD93D")
	colorGreen  = lipgloss.Color("#6BCB77")
)

// confettiColors are cycled through when scattering confetti.
var confettiColors = []lipgloss.Color{colorPink, colorCyan, colorYellow, colorGreen, colorWhite}

// Styles used across the TUI. Accent-dependent styles (border, title) live
// on the Theme and are computed from the configured accent color.
var (
	moodStyle = lipgloss.NewStyle().
			MarginBottom(1)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	loadingStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	setupStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	dividerStyle = lipgloss.NewStyle().
			Foreground(colorPink)

	punchlineStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorPink).
			Bold(true).
			Padding(0, 2).
			MarginTop(1)
)
