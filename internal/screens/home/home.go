// Package home is the entry screen: the learning path plus navigation
// into the market, the coach, and the profile.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"investingo/internal/coach"
	"investingo/internal/content"
	"investingo/internal/market"
	"investingo/internal/profile"
	"investingo/internal/router"
	"investingo/internal/screen"
	coachscreen "investingo/internal/screens/coach"
	lessonscreen "investingo/internal/screens/lesson"
	marketscreen "investingo/internal/screens/market"
	profilescreen "investingo/internal/screens/profile"
	"investingo/internal/store"
	"investingo/internal/ui/components"
	"investingo/internal/ui/theme"
)

// HomeScreen is the main screen of the application.
type HomeScreen struct {
	catalog  *content.Catalog
	profiles *profile.Store
	events   store.EventRepo
	engine   *market.Engine
	gateway  *coach.Gateway

	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen with injected dependencies.
func New(catalog *content.Catalog, profiles *profile.Store, events store.EventRepo, engine *market.Engine, gateway *coach.Gateway) *HomeScreen {
	h := &HomeScreen{
		catalog:  catalog,
		profiles: profiles,
		events:   events,
		engine:   engine,
		gateway:  gateway,
	}
	h.menu = components.NewMenu(h.buildItems())
	return h
}

// buildItems assembles one menu entry per module on the learning path,
// then the fixed navigation entries.
func (h *HomeScreen) buildItems() []components.MenuItem {
	p := h.profiles.Current()

	var items []components.MenuItem
	for i := range h.catalog.Modules {
		mod := &h.catalog.Modules[i]

		badge := moduleBadge(mod, p)
		disabled := mod.Status == content.StatusLocked || len(mod.Lessons) == 0

		lesson := content.Lesson{}
		if len(mod.Lessons) > 0 {
			lesson = mod.Lessons[0]
		}

		items = append(items, components.MenuItem{
			Label:    fmt.Sprintf("%s  %s", mod.Icon, mod.Title),
			Badge:    badge,
			Disabled: disabled,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: lessonscreen.New(lesson, h.profiles),
					}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "📊  Market", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: marketscreen.New(h.engine, h.profiles),
				}
			}
		}},
		components.MenuItem{Label: "🐂  Ask Barnaby", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: coachscreen.New(h.gateway),
				}
			}
		}},
		components.MenuItem{Label: "👤  Profile", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: profilescreen.New(h.profiles, h.events, h.engine),
				}
			}
		}},
		components.MenuItem{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	return items
}

// moduleBadge summarizes a module's gating and progress state.
func moduleBadge(mod *content.Module, p profile.Profile) string {
	if mod.Status == content.StatusLocked {
		return "🔒 locked"
	}
	if len(mod.Lessons) == 0 {
		return "coming soon"
	}
	passed := 0
	for _, l := range mod.Lessons {
		if p.Completed(l.ID) {
			passed++
		}
	}
	if passed == len(mod.Lessons) {
		return "✓ passed"
	}
	return fmt.Sprintf("%d/%d · pass %.0f%%", passed, len(mod.Lessons), mod.RequiredScore*100)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Module statuses and completion badges change while other screens
	// are on top of this one, so rebuild before handling input.
	if _, ok := msg.(tea.KeyMsg); ok {
		selected := h.menu.Selected
		h.menu = components.NewMenu(h.buildItems())
		if selected < len(h.menu.Items) && !h.menu.Items[selected].Disabled {
			h.menu.Selected = selected
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Investingo"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Learn to invest, one lesson at a time"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  LEARNING PATH"))
	b.WriteString("\n\n")
	b.WriteString(h.menu.View())

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
