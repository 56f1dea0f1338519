package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "investingo/internal/lesson"
	"investingo/internal/ui/components"
	"investingo/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	if s.session.Blocked() {
		return renderBlocked(width)
	}
	return s.renderQuestion(width)
}

// renderQuestion renders the active question with progress and, after a
// check, the reveal banner.
func (s *LessonScreen) renderQuestion(width int) string {
	q := s.session.Question()

	var b strings.Builder

	// Progress line.
	progress := components.NewProgressBar(
		fmt.Sprintf("  Question %d of %d", s.session.Index()+1, s.session.Total()),
		float64(s.session.Index())/float64(s.session.Total()),
		false,
		width-24,
	)
	b.WriteString(progress.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	// Options.
	correctIdx, chosenIdx := -1, -1
	revealed := s.session.Reveal() != sess.Unanswered
	if revealed {
		picked, _ := s.session.Selected()
		for i, opt := range q.Options {
			if opt == q.Answer {
				correctIdx = i
			}
			if opt == picked {
				chosenIdx = i
			}
		}
	}
	options := s.options.View(s.selected, revealed, correctIdx, chosenIdx)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, options))
	b.WriteString("\n")

	// Reveal banner.
	if revealed {
		b.WriteString("\n")
		b.WriteString(s.renderRevealBanner(width, q.Explanation))
	}

	// Action button mirroring what enter does in this phase. Enter on an
	// unanswered question grades the highlighted option, so CHECK is
	// always actionable.
	b.WriteString("\n")
	label := "CHECK"
	if revealed {
		label = "CONTINUE"
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Button(label, true)))

	return b.String()
}

// renderRevealBanner shows the verdict and the question's explanation.
func (s *LessonScreen) renderRevealBanner(width int, explanation string) string {
	var verdict string
	if s.session.Reveal() == sess.RevealedCorrect {
		verdict = lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("✓ Correct!")
	} else {
		verdict = lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true).
			Render("✗ Not quite. That cost a heart.")
	}

	body := verdict + "\n\n" +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(min(width-12, 70)).
			Render(explanation)

	card := theme.Card.Render(body)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

// renderBlocked is shown whenever the heart budget is exhausted, whether
// the last heart was lost here or the lesson was opened already empty.
func renderBlocked(width int) string {
	body := lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("♥ You're out of hearts!") + "\n\n" +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("This attempt is over. Take a break and\ncome back to try the lesson again.")

	card := theme.Card.Render(body)
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
