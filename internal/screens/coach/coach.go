// Package coach renders the chat with Barnaby the Bull. One question is
// in flight at a time; send is ignored while a reply is pending.
package coach

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"investingo/internal/coach"
	"investingo/internal/screen"
	"investingo/internal/ui/components"
	"investingo/internal/ui/layout"
	"investingo/internal/ui/theme"
)

// replyMsg carries Barnaby's answer back into the event loop.
type replyMsg struct {
	Text string
}

// chatEntry is one rendered line of the conversation.
type chatEntry struct {
	fromCoach bool
	text      string
}

// CoachScreen implements screen.Screen for the coach chat.
type CoachScreen struct {
	gateway *coach.Gateway
	input   components.TextInput
	log     []chatEntry
	pending bool
}

var _ screen.Screen = (*CoachScreen)(nil)
var _ screen.KeyHintProvider = (*CoachScreen)(nil)

// New creates a new CoachScreen.
func New(gateway *coach.Gateway) *CoachScreen {
	return &CoachScreen{
		gateway: gateway,
		input:   components.NewTextInput("Ask about investing...", false, 200),
		log: []chatEntry{
			{fromCoach: true, text: "Hi! I'm Barnaby the Bull 🐂 Ask me anything about investing!"},
		},
	}
}

func (c *CoachScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *CoachScreen) Title() string {
	return "Ask Barnaby"
}

func (c *CoachScreen) KeyHints() []layout.KeyHint {
	if c.pending {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CoachScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		c.log = append(c.log, chatEntry{fromCoach: true, text: msg.Text})
		c.pending = false
		return c, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return c, c.send()
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// send dispatches the typed question. The gateway is total, so the cmd
// always comes back with displayable text.
func (c *CoachScreen) send() tea.Cmd {
	if c.pending {
		return nil
	}
	question := strings.TrimSpace(c.input.Value())
	if question == "" {
		return nil
	}

	c.log = append(c.log, chatEntry{text: question})
	c.input.Reset()
	c.pending = true

	return func() tea.Msg {
		return replyMsg{Text: c.gateway.Ask(context.Background(), question)}
	}
}

func (c *CoachScreen) View(width, height int) string {
	var b strings.Builder

	wrap := min(width-8, 76)

	// Show the most recent entries that fit the content area, input and
	// spacing included.
	budget := height - 4
	start := 0
	for i := len(c.log) - 1; i >= 0; i-- {
		lines := lipgloss.Height(renderEntry(c.log[i], wrap)) + 1
		if budget-lines < 0 {
			start = i + 1
			break
		}
		budget -= lines
	}

	for _, entry := range c.log[start:] {
		b.WriteString(renderEntry(entry, wrap))
		b.WriteString("\n\n")
	}

	if c.pending {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("  Barnaby is thinking..."))
		b.WriteString("\n\n")
	}

	b.WriteString("  " + c.input.View())

	return b.String()
}

// renderEntry renders one chat bubble.
func renderEntry(entry chatEntry, wrap int) string {
	if entry.fromCoach {
		label := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("🐂 Barnaby")
		body := lipgloss.NewStyle().Foreground(theme.Text).Width(wrap).Render(entry.text)
		return "  " + label + "\n  " + strings.ReplaceAll(body, "\n", "\n  ")
	}
	label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("You")
	body := lipgloss.NewStyle().Foreground(theme.TextDim).Width(wrap).Render(entry.text)
	return "  " + label + "\n  " + strings.ReplaceAll(body, "\n", "\n  ")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
