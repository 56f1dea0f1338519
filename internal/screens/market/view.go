package market

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"investingo/internal/market"
	"investingo/internal/profile"
	"investingo/internal/ui/components"
	"investingo/internal/ui/theme"
)

func (m *MarketScreen) View(width, height int) string {
	p := m.profiles.Current()
	level := p.Level()

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  WATCHLIST · prices drift every %s", market.TickInterval)))
	b.WriteString("\n\n")

	for i, q := range m.engine.Quotes() {
		b.WriteString(m.renderQuoteRow(q, i == m.selected, level, p.Holding(q.Asset.Symbol)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderOrderPanel(width, p))

	return b.String()
}

// renderQuoteRow renders one watchlist line.
func (m *MarketScreen) renderQuoteRow(q market.Quote, selected bool, level, held int) string {
	prefix := "    "
	if selected {
		prefix = "  ▸ "
	}

	symbol := fmt.Sprintf("%-5s", q.Asset.Symbol)
	name := fmt.Sprintf("%-22s", q.Asset.Name)
	price := fmt.Sprintf("$%10.2f", q.Price)

	changeStyle := theme.PriceUp
	arrow := "▲"
	if q.Change < 0 {
		changeStyle = theme.PriceDown
		arrow = "▼"
	}
	change := changeStyle.Render(fmt.Sprintf("%s %+.2f%%", arrow, q.Change))

	tail := ""
	if !market.Unlocked(q.Asset, level) {
		tail = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  🔒 L%d", q.Asset.LevelRequired))
	} else if held > 0 {
		tail = lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("  ◈ %d held", held))
	}

	rowStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		rowStyle = rowStyle.Bold(true)
	}

	return rowStyle.Render(prefix+symbol+name+price+"  ") + change + tail
}

// renderOrderPanel renders the buy/sell composer for the selected asset.
func (m *MarketScreen) renderOrderPanel(width int, p profile.Profile) string {
	quotes := m.engine.Quotes()
	if m.selected >= len(quotes) {
		return ""
	}
	quote := quotes[m.selected]

	buyTab := "  BUY  "
	sellTab := "  SELL  "
	if m.side == sideBuy {
		buyTab = theme.ButtonActive.Render(buyTab)
		sellTab = theme.ButtonInactive.Render(sellTab)
	} else {
		buyTab = theme.ButtonInactive.Render(buyTab)
		sellTab = theme.ButtonActive.Render(sellTab)
	}

	body := fmt.Sprintf("%s %s   %s  qty: %s",
		buyTab, sellTab,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(quote.Asset.Symbol),
		m.qty.View())

	body += "\n" + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Cash $%.2f · Holding %d", p.Bucks, p.Holding(quote.Asset.Symbol)))

	body += "\n" + components.Button("PLACE ORDER", m.qty.Value() != "")

	if m.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(theme.Error)
		if m.statusOK {
			statusStyle = lipgloss.NewStyle().Foreground(theme.Success)
		}
		body += "\n" + statusStyle.Render(m.status)
	}

	return theme.Card.Render(body)
}
