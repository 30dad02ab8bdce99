package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Piano renders a one-line keyboard strip with held keys lit. White keys
// render as wide cells, black keys as narrow ones, so the strip roughly
// tracks real key geometry.
type Piano struct {
	Low, High int // MIDI note range, inclusive
	litStyle  lipgloss.Style
	dimStyle  lipgloss.Style
}

var blackKey = [12]bool{false, true, false, true, false, false, true, false, true, false, true, false}

// NewPiano builds a strip covering the given note range. A 61-key
// controller is 36..96; 88 keys is 21..108.
func NewPiano(low, high int, lit, dim lipgloss.Color) *Piano {
	return &Piano{
		Low:      low,
		High:     high,
		litStyle: lipgloss.NewStyle().Foreground(lit),
		dimStyle: lipgloss.NewStyle().Foreground(dim),
	}
}

// View renders the strip with the given held notes lit.
func (p *Piano) View(held []int) string {
	lit := make(map[int]bool, len(held))
	for _, n := range held {
		lit[n] = true
	}

	var out strings.Builder
	for n := p.Low; n <= p.High; n++ {
		glyph := "█"
		if blackKey[((n%12)+12)%12] {
			glyph = "▀"
		}
		if lit[n] {
			out.WriteString(p.litStyle.Render(glyph))
		} else {
			out.WriteString(p.dimStyle.Render(glyph))
		}
	}
	return out.String()
}
