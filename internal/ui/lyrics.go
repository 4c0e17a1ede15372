package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"saconnect/internal/lyrics"
	"saconnect/internal/songs"
)

// ReferenceScale is the font scale at which lyrics use the full column.
const ReferenceScale = 22.0

const minLyricWidth = 12

var (
	chorusStyle = lipgloss.NewStyle().
			Foreground(RedColor).
			Bold(true).
			Align(lipgloss.Center).
			Padding(1, 0)

	stanzaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Bold(true).
			Align(lipgloss.Left).
			PaddingTop(1)

	verseStyle = lipgloss.NewStyle().
			Foreground(VerseColor).
			Align(lipgloss.Center)

	songNumberStyle = lipgloss.NewStyle().
			Foreground(RedColor).
			Bold(true)

	songTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Bold(true).
			Align(lipgloss.Center)

	songAltTitleStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Italic(true).
				Align(lipgloss.Center)
)

// LyricWidth maps a font scale to a text column width. A terminal cannot
// change its font size, so zooming in narrows the column the way larger
// glyphs would.
func LyricWidth(available int, scale float64) int {
	if scale <= 0 {
		scale = ReferenceScale
	}
	w := int(float64(available) * ReferenceScale / scale)
	if w > available {
		w = available
	}
	if w < minLyricWidth {
		w = minLyricWidth
	}
	return w
}

// StyleFor returns the style of a lyric role.
func StyleFor(role lyrics.Role) lipgloss.Style {
	switch role {
	case lyrics.Chorus:
		return chorusStyle
	case lyrics.StanzaHeader:
		return stanzaStyle
	default:
		return verseStyle
	}
}

// RenderLyrics renders classified lines centered in a column of width
// derived from scale.
func RenderLyrics(lines []lyrics.Line, width int, scale float64) string {
	col := LyricWidth(width, scale)
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		w := col
		if l.Role == lyrics.StanzaHeader {
			// Headers are drawn two units larger than the verses.
			w = LyricWidth(width, scale+2)
		}
		text := wordwrap.String(l.Text, w)
		out = append(out, StyleFor(l.Role).Width(col).Render(text))
	}
	block := lipgloss.JoinVertical(lipgloss.Left, out...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// RenderSongHeader renders the number, both titles and the reference chip.
func RenderSongHeader(song songs.Song, width int) string {
	parts := []string{
		songNumberStyle.Render("Song No. " + song.ID),
		songTitleStyle.Width(width).Render(song.Title),
	}
	if song.AltTitle != "" {
		parts = append(parts, songAltTitleStyle.Width(width).Render(song.AltTitle))
	}
	if song.HasRefs() {
		parts = append(parts, RenderRefChip(song))
	}
	parts = append(parts, lipgloss.NewStyle().Foreground(RedColor).Render(strings.Repeat("─", min(width, 30))))
	block := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// RenderRefChip renders "EngRef | TuneRef", omitting absent parts.
func RenderRefChip(song songs.Song) string {
	if !song.HasRefs() {
		return ""
	}
	var parts []string
	if song.EngRef != "" {
		parts = append(parts, RefChipStyle.Render(song.EngRef))
	}
	if song.TuneRef != "" {
		parts = append(parts, TuneChipStyle.Render(song.TuneRef))
	}
	return strings.Join(parts, lipgloss.NewStyle().Foreground(SubtleColor).Render(" | "))
}
