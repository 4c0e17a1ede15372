package app

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// dashboard is the home screen content below the welcome line.
const dashboard = `## Daily Manna

> *"The Lord is my shepherd; I shall not want."*
>
> Psalm 23:1

## Notice Board

| | |
|---|---|
| **Event** | Special Youth Meeting, this Friday @ 6:00 PM |
| **Admin** | Corps Council Meeting, Sunday after Holiness Meeting |

## Quick Actions

- **[s] Song Book**
- **[g] Giving**
- **[b] Bible**
- **[c] Corps Info**
`

type homeCache struct {
	width    int
	rendered string
}

// renderDashboard renders the dashboard markdown for width, caching the
// result until the width changes.
func (m *Model) renderDashboard(width int) string {
	if m.home.rendered != "" && m.home.width == width {
		return m.home.rendered
	}
	out, err := renderMarkdown(dashboard, width)
	if err != nil {
		m.Logger.Warn("failed to render dashboard", "error", err)
		out = dashboard
	}
	m.home = homeCache{width: width, rendered: out}
	return out
}

func renderMarkdown(md string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("light"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
