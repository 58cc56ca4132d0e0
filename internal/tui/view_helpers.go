package tui

import (
	"fmt"
	"strings"
)

const (
	uiDivider = "──────────────────────────────────────────────────────"

	// listWindow is how many logins a page lists at once.
	listWindow = 10
)

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: выход"))

	return b.String()
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

// renderLoginList renders a window of at most listWindow logins around
// selected. selected < 0 disables the marker.
func renderLoginList(logins []string, selected int) string {
	if len(logins) == 0 {
		return "  (пусто)"
	}

	start := 0
	if selected >= listWindow {
		start = selected - listWindow + 1
	}
	end := min(start+listWindow, len(logins))

	var b strings.Builder
	for i := start; i < end; i++ {
		line := "  " + fitText(logins[i], 40)
		if i == selected {
			line = selectedStyle.Render("> " + fitText(logins[i], 40))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if rest := len(logins) - end; rest > 0 {
		b.WriteString(fmt.Sprintf("  ... и ещё %d\n", rest))
	}

	return strings.TrimRight(b.String(), "\n")
}
