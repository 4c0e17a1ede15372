package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"saconnect/internal/atmosphere"
	"saconnect/internal/lyrics"
	"saconnect/internal/songs"
	"saconnect/internal/state"
)

func TestLyricWidth(t *testing.T) {
	assert.Equal(t, 60, LyricWidth(60, ReferenceScale))
	assert.Equal(t, 60, LyricWidth(60, 16), "never wider than available")
	assert.Equal(t, 33, LyricWidth(60, 40))
	assert.Less(t, LyricWidth(60, 30), LyricWidth(60, 24))
	assert.Equal(t, minLyricWidth, LyricWidth(5, 40))
	assert.Equal(t, 60, LyricWidth(60, 0))
}

func TestStyleFor_DistinctPerRole(t *testing.T) {
	chorus := StyleFor(lyrics.Chorus)
	stanza := StyleFor(lyrics.StanzaHeader)
	verse := StyleFor(lyrics.Normal)

	assert.True(t, chorus.GetBold())
	assert.Equal(t, RedColor, chorus.GetForeground())
	assert.True(t, stanza.GetBold())
	assert.Equal(t, lipgloss.Color("#000000"), stanza.GetForeground())
	assert.False(t, verse.GetBold())
	assert.Equal(t, VerseColor, verse.GetForeground())
}

func TestRenderLyrics(t *testing.T) {
	lines := lyrics.Classify("1.\nLine one\nChorus\nLine two")
	out := RenderLyrics(lines, 60, state.DefaultFontScale.Value)

	for _, want := range []string{"1.", "Line one", "Chorus", "Line two"} {
		assert.Contains(t, out, want)
	}
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}
}

func TestRenderLyrics_WrapsWhenZoomed(t *testing.T) {
	lines := []lyrics.Line{{Text: "one two three four five six seven eight nine ten", Role: lyrics.Normal}}

	small := RenderLyrics(lines, 40, 16)
	large := RenderLyrics(lines, 40, 40)
	assert.Greater(t, lipgloss.Height(large), lipgloss.Height(small))
}

func TestRenderSongHeader(t *testing.T) {
	song := songs.Song{ID: "7", Title: "युद्धात चला", AltTitle: "Onward to Battle", EngRef: "Eng. 695", TuneRef: "Tune 167"}
	out := RenderSongHeader(song, 60)

	assert.Contains(t, out, "Song No. 7")
	assert.Contains(t, out, "Onward to Battle")
	assert.Contains(t, out, "Eng. 695")
	assert.Contains(t, out, "Tune 167")
}

func TestRenderSongHeader_NoAltTitleNoRefs(t *testing.T) {
	song := songs.Song{ID: "9", Title: "गीत"}
	out := RenderSongHeader(song, 40)
	assert.Contains(t, out, "Song No. 9")
	assert.NotContains(t, out, "|")
}

func TestRenderRefChip(t *testing.T) {
	assert.Empty(t, RenderRefChip(songs.Song{}))
	assert.Contains(t, RenderRefChip(songs.Song{EngRef: "Eng. 1"}), "Eng. 1")
	assert.NotContains(t, RenderRefChip(songs.Song{EngRef: "Eng. 1"}), "|")
	assert.Contains(t, RenderRefChip(songs.Song{EngRef: "Eng. 1", TuneRef: "Tune 2"}), "|")
	assert.NotContains(t, RenderRefChip(songs.Song{TuneRef: "Tune 2"}), "|")
}

func TestRenderTabs(t *testing.T) {
	out := RenderTabs(state.TabSongs, 80)
	for _, name := range []string{"Home", "Songs", "Giving", "Profile"} {
		assert.Contains(t, out, name)
	}
}

func TestRenderCapsules(t *testing.T) {
	out := RenderCapsules(songs.Categories, "Praise")
	for _, c := range songs.Categories {
		assert.Contains(t, out, c)
	}
}

func TestPaintGradient(t *testing.T) {
	out := PaintGradient("a\nb", atmosphere.For("Heaven"), 10, 5)
	rows := strings.Split(out, "\n")
	assert.Len(t, rows, 5)
	for _, r := range rows {
		assert.Equal(t, 10, lipgloss.Width(r))
	}
	assert.Contains(t, rows[0], "a")
	assert.Contains(t, rows[1], "b")
}

func TestPaintGradient_BackgroundSurvivesInnerStyles(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	a := atmosphere.Atmosphere{Start: "#102030", End: "#102030"}
	line := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Render("ab") + "cd"
	require.Contains(t, line, resetSeq)

	out := PaintGradient(line, a, 10, 1)

	bg := termenv.CSI + "48;2;16;32;48m"
	assert.Contains(t, out, resetSeq+bg+"cd", "text after a styled run keeps the row background")
}

func TestKeepBackground_NoColorProfile(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	assert.Equal(t, "plain", keepBackground("plain", "#102030"))
}

func TestPaintGradient_GrowsToContent(t *testing.T) {
	out := PaintGradient("a\nb\nc", atmosphere.Default, 4, 1)
	assert.Len(t, strings.Split(out, "\n"), 3)
}
