// Package market renders the paper-trading floor: live drifting quotes
// and a buy/sell order panel against the practice portfolio.
package market

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"investingo/internal/market"
	"investingo/internal/profile"
	"investingo/internal/screen"
	"investingo/internal/ui/components"
	"investingo/internal/ui/layout"
)

// tickMsg drives the price random walk.
type tickMsg time.Time

// orderSide is the direction of the order being composed.
type orderSide int

const (
	sideBuy orderSide = iota
	sideSell
)

// MarketScreen implements screen.Screen for the trading floor.
type MarketScreen struct {
	engine   *market.Engine
	profiles *profile.Store

	selected int
	side     orderSide
	qty      components.TextInput
	status   string
	statusOK bool
}

var _ screen.Screen = (*MarketScreen)(nil)
var _ screen.KeyHintProvider = (*MarketScreen)(nil)

// New creates a new MarketScreen over the shared engine.
func New(engine *market.Engine, profiles *profile.Store) *MarketScreen {
	return &MarketScreen{
		engine:   engine,
		profiles: profiles,
		qty:      components.NewTextInput("qty", true, 6),
	}
}

func (m *MarketScreen) Init() tea.Cmd {
	return tea.Batch(m.qty.Init(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(market.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *MarketScreen) Title() string {
	return "Market"
}

func (m *MarketScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Asset"},
		{Key: "Tab", Description: "Buy/Sell"},
		{Key: "Enter", Description: "Place order"},
		{Key: "Esc", Description: "Back"},
	}
}

func (m *MarketScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.engine.Tick()
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.status = ""
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.engine.Quotes())-1 {
				m.selected++
				m.status = ""
			}
			return m, nil
		case "tab":
			if m.side == sideBuy {
				m.side = sideSell
			} else {
				m.side = sideBuy
			}
			return m, nil
		case "enter":
			m.placeOrder()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.qty, cmd = m.qty.Update(msg)
	return m, cmd
}

// placeOrder settles the composed order through the profile store. The
// store is the authority: it silently rejects what the panel failed to
// gate, and the panel just reports what happened.
func (m *MarketScreen) placeOrder() {
	quotes := m.engine.Quotes()
	if m.selected >= len(quotes) {
		return
	}
	quote := quotes[m.selected]

	level := m.profiles.Current().Level()
	if !market.Unlocked(quote.Asset, level) {
		m.status = fmt.Sprintf("%s unlocks at level %d", quote.Asset.Symbol, quote.Asset.LevelRequired)
		m.statusOK = false
		return
	}

	n, err := m.qty.NumericValue()
	if err != nil || n <= 0 {
		m.status = "Enter a quantity first"
		m.statusOK = false
		return
	}

	qty := n
	if m.side == sideSell {
		qty = -n
	}

	result := m.profiles.Trade(context.Background(), quote.Asset.Symbol, qty, quote.Price)
	if !result.Accepted {
		if m.side == sideBuy {
			m.status = "Not enough Investingo Bucks for that order"
		} else {
			m.status = "You don't hold that many shares"
		}
		m.statusOK = false
		return
	}

	m.qty.Reset()
	if m.side == sideBuy {
		m.status = fmt.Sprintf("Bought %d × %s for $%.2f", n, quote.Asset.Symbol, result.Cost)
	} else {
		m.status = fmt.Sprintf("Sold %d × %s for $%.2f", n, quote.Asset.Symbol, -result.Cost)
	}
	m.statusOK = true
}
