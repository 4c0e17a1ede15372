package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"saconnect/internal/songs"
)

// Item implements the list.Item interface for displaying songs.
type Item struct {
	Song songs.Song
}

// Title returns the Marathi title.
func (i Item) Title() string { return i.Song.Title }

// Description returns the English title.
func (i Item) Description() string { return i.Song.AltTitle }

// FilterValue is unused; the list's own filtering is disabled in favor of
// songs.Filter.
func (i Item) FilterValue() string { return i.Song.ID + " " + i.Song.Title + " " + i.Song.AltTitle }

// SongsToItems converts songs to list items, keeping their order.
func SongsToItems(s []songs.Song) []list.Item {
	items := make([]list.Item, len(s))
	for i, song := range s {
		items[i] = Item{Song: song}
	}
	return items
}

// StyledDelegate draws a song as a number badge followed by both titles
// and a category tag.
type StyledDelegate struct {
	list.DefaultDelegate
}

// NewStyledDelegate creates a styled delegate for the song list.
func NewStyledDelegate() StyledDelegate {
	d := list.NewDefaultDelegate()
	d.SetHeight(3)

	d.Styles.NormalTitle = lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Padding(0, 0, 0, 2)

	d.Styles.NormalDesc = lipgloss.NewStyle().
		Foreground(SubtleColor).
		Padding(0, 0, 0, 2)

	d.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(RedColor).
		Foreground(RedColor).
		Bold(true).
		Padding(0, 0, 0, 1)

	d.Styles.SelectedDesc = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(RedColor).
		Foreground(SubtleColor).
		Padding(0, 0, 0, 1)

	return StyledDelegate{DefaultDelegate: d}
}

var (
	badgeStyle = lipgloss.NewStyle().
			Foreground(RedColor).
			Bold(true).
			Width(badgeColumnWidth).
			Align(lipgloss.Right)

	badgeSelectedStyle = badgeStyle.
				Background(RedColor).
				Foreground(WhiteColor)

	categoryTagStyle = lipgloss.NewStyle().
				Foreground(RedColor).
				Padding(0, 0, 0, 2)
)

// Render renders a song row.
func (d StyledDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(Item)
	if !ok {
		return
	}

	isSelected := index == m.Index()
	badgeWidth, textWidth := CalculateColumnWidths(m.Width())

	// Content area is textWidth - 2 for padding
	title := ansi.Truncate(i.Title(), textWidth-2, "…")
	desc := ansi.Truncate(i.Description(), textWidth-2, "…")
	tag := categoryTagStyle.Width(textWidth).Render("• " + i.Song.Category)

	var badge, titleStr, descStr string
	if isSelected {
		badge = badgeSelectedStyle.Width(badgeWidth).Render(i.Song.ID)
		// Subtract 1 from width to account for left border character
		titleStr = d.Styles.SelectedTitle.Width(textWidth - 1).Render(title)
		descStr = d.Styles.SelectedDesc.Width(textWidth - 1).Render(desc)
	} else {
		badge = badgeStyle.Width(badgeWidth).Render(i.Song.ID)
		titleStr = d.Styles.NormalTitle.Width(textWidth).Render(title)
		descStr = d.Styles.NormalDesc.Width(textWidth).Render(desc)
	}

	blank := lipgloss.NewStyle().Width(badgeWidth).Render("")
	row := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, badge, titleStr),
		lipgloss.JoinHorizontal(lipgloss.Top, blank, descStr),
		lipgloss.JoinHorizontal(lipgloss.Top, blank, tag),
	)
	_, _ = fmt.Fprint(w, row)
}

const (
	badgeColumnWidth = 6
	minTextWidth     = 20
)

// CalculateColumnWidths returns the badge and text column widths for a given total width.
func CalculateColumnWidths(totalWidth int) (badgeCol, textCol int) {
	badgeCol = badgeColumnWidth
	textCol = totalWidth - badgeCol - 4
	if textCol < minTextWidth {
		textCol = minTextWidth
	}
	return
}
