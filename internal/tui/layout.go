package tui

const (
	maxCardWidth = 64
	minCardWidth = 24

	// minimum terminal size for the full card; below it only the body renders
	minWidth  = 30
	minHeight = 12
)

// Layout holds the card geometry for a given terminal size.
type Layout struct {
	Width, Height int // terminal
	CardWidth     int // card width including border
	TooSmall      bool
}

// Calculate computes the layout for a terminal of the given dimensions. The
// card takes the terminal width minus a two-column margin on each side,
// clamped to [minCardWidth, maxCardWidth].
func Calculate(width, height int) Layout {
	l := Layout{Width: width, Height: height}
	if width < minWidth || height < minHeight {
		l.TooSmall = true
		return l
	}
	w := width - 4
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < minCardWidth {
		w = minCardWidth
	}
	l.CardWidth = w
	return l
}
