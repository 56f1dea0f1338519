package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"investingo/internal/ui/theme"
)

// ProgressBar renders advancement through a lesson or toward the next
// level as a glyph bar. Fraction is clamped to [0,1] at render time so
// callers can pass raw ratios.
type ProgressBar struct {
	label       string
	fraction    float64
	showPercent bool
	width       int
}

func NewProgressBar(label string, fraction float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{label: label, fraction: fraction, showPercent: showPercent, width: width}
}

// View renders the bar. A full bar switches to the success color, which
// reads as "lesson done" / "level up next" at a glance.
func (p ProgressBar) View() string {
	frac := p.fraction
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	var b strings.Builder
	if p.label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.label))
		b.WriteString("  ")
	}

	reserved := lipgloss.Width(b.String())
	if p.showPercent {
		reserved += 6
	}
	cells := p.width - reserved
	if cells < 4 {
		cells = 4
	}

	filled := int(float64(cells)*frac + 0.5)
	if filled > cells {
		filled = cells
	}

	fill := theme.Secondary
	if filled == cells {
		fill = theme.Success
	}
	b.WriteString(lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", cells-filled)))

	if p.showPercent {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(frac*100+0.5))))
	}

	return b.String()
}
