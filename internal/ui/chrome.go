package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"saconnect/internal/atmosphere"
	"saconnect/internal/state"
)

// RenderTabs renders the bottom navigation bar.
func RenderTabs(active state.Tab, width int) string {
	tabs := make([]string, len(state.Tabs))
	for i, t := range state.Tabs {
		style := TabStyle
		if t == active {
			style = TabActiveStyle
		}
		tabs[i] = style.Render(t.String())
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)
}

// RenderCapsules renders the category chips, highlighting the active one.
func RenderCapsules(categories []string, active string) string {
	chips := make([]string, len(categories))
	for i, c := range categories {
		style := CapsuleStyle
		if c == active {
			style = CapsuleActiveStyle
		}
		chips[i] = style.Render(c)
	}
	return strings.Join(chips, " ")
}

// PaintGradient draws content over a vertical atmosphere gradient that
// fills width x height.
func PaintGradient(content string, a atmosphere.Atmosphere, width, height int) string {
	lines := strings.Split(content, "\n")
	if height < len(lines) {
		height = len(lines)
	}
	rows := atmosphere.Gradient(a, height)
	out := make([]string, height)
	for i := 0; i < height; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = lipgloss.NewStyle().
			Background(rows[i]).
			Width(width).
			MaxWidth(width).
			Render(keepBackground(line, rows[i]))
	}
	return strings.Join(out, "\n")
}

// resetSeq is the SGR reset lipgloss emits at the end of every styled run.
const resetSeq = termenv.CSI + termenv.ResetSeq + "m"

// keepBackground re-applies bg after each reset in line so styled runs
// inside it do not punch holes in the row color.
func keepBackground(line string, bg lipgloss.Color) string {
	seq := lipgloss.ColorProfile().Color(string(bg)).Sequence(true)
	if seq == "" {
		return line
	}
	return strings.ReplaceAll(line, resetSeq, resetSeq+termenv.CSI+seq+"m")
}
