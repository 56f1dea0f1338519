package components

import "investingo/internal/ui/theme"

// Button renders the single action the enter key maps to right now,
// CHECK before grading and CONTINUE after. It is display only; the
// screen owning it handles the key itself.
func Button(label string, enabled bool) string {
	text := "  " + label + "  "
	if enabled {
		return theme.ButtonActive.Render(text)
	}
	return theme.ButtonInactive.Render(text)
}
