// Package summary displays the verdict of a finished lesson attempt.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"investingo/internal/lesson"
	"investingo/internal/profile"
	"investingo/internal/router"
	"investingo/internal/screen"
	"investingo/internal/ui/layout"
	"investingo/internal/ui/theme"
)

// SummaryScreen shows the outcome of one lesson attempt.
type SummaryScreen struct {
	lessonTitle string
	completion  lesson.Completion
	outcome     profile.LessonOutcome
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(lessonTitle string, completion lesson.Completion, outcome profile.LessonOutcome) *SummaryScreen {
	return &SummaryScreen{
		lessonTitle: lessonTitle,
		completion:  completion,
		outcome:     outcome,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Lesson Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to path"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if s.outcome.Passed {
		center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true), "🎉 Lesson passed!")
	} else {
		center(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), "Lesson not passed")
	}
	center(lipgloss.NewStyle().Foreground(theme.TextDim), s.lessonTitle)
	b.WriteString("\n")

	center(lipgloss.NewStyle().Foreground(theme.Text), fmt.Sprintf(
		"Score: %.0f%%   (%d of %d correct)",
		s.completion.Score*100, s.completion.CorrectCount, s.completion.Total))
	b.WriteString("\n")

	if s.outcome.Passed {
		center(lipgloss.NewStyle().Foreground(theme.Secondary),
			fmt.Sprintf("◆ +%d XP", s.outcome.XPAwarded))
		center(lipgloss.NewStyle().Foreground(theme.Primary),
			fmt.Sprintf("$ +%.0f Investingo Bucks", s.outcome.BucksAwarded))
		if s.outcome.Unlocked != "" {
			b.WriteString("\n")
			center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
				fmt.Sprintf("🔓 Unlocked: %s", s.outcome.Unlocked))
		}
	} else {
		center(lipgloss.NewStyle().Foreground(theme.TextDim),
			"No rewards this time. Retry the lesson whenever you're ready.")
	}

	return b.String()
}
