package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"investingo/internal/ui/theme"
)

// OptionList renders the answer options of a quiz question. It is a pure
// view component: the lesson session owns selection and reveal state, so
// the caller passes the current indices each frame.
type OptionList struct {
	Options []string
}

// NewOptionList creates an option list over the given options.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options}
}

// View renders the options. Before reveal, selected is highlighted.
// After reveal, the correct option is green and a wrong pick is red.
func (o OptionList) View(selected int, revealed bool, correctIndex, chosenIndex int) string {
	labels := []string{"A", "B", "C", "D", "E", "F"}

	var s string
	for i, opt := range o.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(labels) {
			label = labels[i]
		}

		prefix := "  "
		if i == selected && !revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if revealed {
			switch {
			case i == correctIndex:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case i == chosenIndex:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}
