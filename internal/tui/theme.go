package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds accent-color-derived styles.
type Theme struct {
	titleStyle lipgloss.Style // gradient stand-in for the neon title
	cardStyle  lipgloss.Style // rounded accent border around the joke card
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#FF00FF").
// If accentColor is empty, the default accent color is used.
func NewTheme(accentColor string) Theme {
	color := defaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	c := lipgloss.Color(color)
	return Theme{
		titleStyle: lipgloss.NewStyle().
			Foreground(c).
			Bold(true),
		cardStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c).
			Padding(1, 3).
			Align(lipgloss.Center),
	}
}

// TitleStyle returns the style for the card title.
func (t Theme) TitleStyle() lipgloss.Style {
	return t.titleStyle
}

// CardStyle returns the bordered card style at the given outer width.
func (t Theme) CardStyle(width int) lipgloss.Style {
	return t.cardStyle.Width(width)
}
