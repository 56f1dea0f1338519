// Package profile renders the learner's stats, portfolio, and lifetime
// record from the event log.
package profile

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"investingo/internal/market"
	prof "investingo/internal/profile"
	"investingo/internal/screen"
	"investingo/internal/store"
	"investingo/internal/ui/components"
	"investingo/internal/ui/theme"
)

// statsMsg delivers the event-log aggregates.
type statsMsg struct {
	Stats *store.LifetimeStats
	Err   error
}

// ProfileScreen implements screen.Screen for the profile view.
type ProfileScreen struct {
	profiles *prof.Store
	events   store.EventRepo
	engine   *market.Engine
	stats    *store.LifetimeStats
}

var _ screen.Screen = (*ProfileScreen)(nil)

// New creates a new ProfileScreen.
func New(profiles *prof.Store, events store.EventRepo, engine *market.Engine) *ProfileScreen {
	return &ProfileScreen{
		profiles: profiles,
		events:   events,
		engine:   engine,
	}
}

func (p *ProfileScreen) Init() tea.Cmd {
	if p.events == nil {
		return nil
	}
	return func() tea.Msg {
		stats, err := p.events.LifetimeStats(context.Background())
		return statsMsg{Stats: stats, Err: err}
	}
}

func (p *ProfileScreen) Title() string {
	return "Profile"
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsMsg); ok && m.Err == nil {
		p.stats = m.Stats
	}
	return p, nil
}

func (p *ProfileScreen) View(width, height int) string {
	cur := p.profiles.Current()

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(cur.Name))
	b.WriteString("\n\n")

	// Level progress toward the next 100 XP boundary.
	intoLevel := cur.XP % 100
	progress := components.NewProgressBar(
		fmt.Sprintf("  Level %d", cur.Level()),
		float64(intoLevel)/100,
		true,
		min(width-10, 60),
	)
	b.WriteString(progress.View())
	b.WriteString("\n\n")

	statLine := fmt.Sprintf("◆ %d XP    ★ %d day streak    ♥ %d/%d hearts    $%.2f",
		cur.XP, cur.Streak, cur.Hearts, prof.MaxHearts, cur.Bucks)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  " + statLine))
	b.WriteString("\n\n")

	b.WriteString(p.renderPortfolio(cur))
	b.WriteString(p.renderLifetime())

	return b.String()
}

// renderPortfolio lists holdings valued at live quotes.
func (p *ProfileScreen) renderPortfolio(cur prof.Profile) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  PORTFOLIO"))
	b.WriteString("\n")

	total := 0.0
	rows := 0
	for _, q := range p.engine.Quotes() {
		held := cur.Holding(q.Asset.Symbol)
		if held == 0 {
			continue
		}
		value := float64(held) * q.Price
		total += value
		rows++
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("    %-5s %4d × $%.2f = $%.2f", q.Asset.Symbol, held, q.Price, value)))
		b.WriteString("\n")
	}

	if rows == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			"    No holdings yet. Visit the market to place your first trade."))
		b.WriteString("\n")
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(
			fmt.Sprintf("    Market value: $%.2f", total)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	return b.String()
}

// renderLifetime shows the event-log aggregates once loaded.
func (p *ProfileScreen) renderLifetime() string {
	if p.stats == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  LIFETIME"))
	b.WriteString("\n")

	lines := []string{
		fmt.Sprintf("Lessons: %d finished, %d passed", p.stats.LessonsCompleted, p.stats.LessonsPassed),
		fmt.Sprintf("Answers: %d checked, %d correct", p.stats.AnswersChecked, p.stats.AnswersCorrect),
		fmt.Sprintf("Trades:  %d settled, %d rejected", p.stats.TradesAccepted, p.stats.TradesRejected),
		fmt.Sprintf("Coach:   %d questions asked", p.stats.CoachQuestions),
	}
	for _, line := range lines {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("    " + line))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
