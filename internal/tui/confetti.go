package tui

import (
	"math/rand"
	"strings"
)

// confettiGlyphs are scattered across the confetti strip.
var confettiGlyphs = []rune{'✦', '✧', '•', '*', '+', '°'}

const (
	confettiRows    = 3
	confettiDensity = 3 // one glyph per this many cells, on average
)

// confetti is a pre-rendered strip shown while the celebration runs. The
// layout is derived from a seed so a given reveal always looks the same.
type confetti struct {
	rows []string
}

// newConfetti scatters glyphs over a width-wide strip using seed.
func newConfetti(seed int64, width int) confetti {
	if width < 1 {
		return confetti{}
	}
	r := rand.New(rand.NewSource(seed))
	rows := make([]string, confettiRows)
	for i := range rows {
		var b strings.Builder
		for x := 0; x < width; x++ {
			if r.Intn(confettiDensity) != 0 {
				b.WriteByte(' ')
				continue
			}
			glyph := string(confettiGlyphs[r.Intn(len(confettiGlyphs))])
			color := confettiColors[r.Intn(len(confettiColors))]
			b.WriteString(promptStyle.Foreground(color).Render(glyph))
		}
		rows[i] = b.String()
	}
	return confetti{rows: rows}
}

// View renders the strip, or "" when empty.
func (c confetti) View() string {
	return strings.Join(c.rows, "\n")
}
