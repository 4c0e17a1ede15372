package app

import (
	"context"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"saconnect/internal/atmosphere"
	"saconnect/internal/auth"
	"saconnect/internal/songs"
	"saconnect/internal/state"
	"saconnect/internal/ui"
)

const frameInterval = 33 * time.Millisecond

// SignInResultMsg carries the resolved sign-in result.
type SignInResultMsg struct {
	Result auth.Result
}

// AtmosphereFrameMsg advances the background transition.
type AtmosphereFrameMsg struct {
	Time time.Time
}

// NoticeExpiredMsg removes the notice with the given ID if still shown.
type NoticeExpiredMsg struct {
	ID int
}

// SignIn is a Tea command that waits for the authenticator's result.
func SignIn(a auth.Authenticator, req auth.Request) tea.Cmd {
	return func() tea.Msg {
		if a == nil {
			return SignInResultMsg{Result: auth.Result{Err: auth.ErrInvalidCredentials}}
		}
		res, ok := <-a.SignIn(context.Background(), req)
		if !ok {
			return SignInResultMsg{Result: auth.Result{Err: auth.ErrInvalidCredentials}}
		}
		return SignInResultMsg{Result: res}
	}
}

// TickAtmosphere returns a command delivering the next animation frame.
func TickAtmosphere() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return AtmosphereFrameMsg{Time: t}
	})
}

// ShowNotice displays text and schedules its expiry.
func (m *Model) ShowNotice(text string, isError bool) tea.Cmd {
	m.noticeSeq++
	id := m.noticeSeq
	m.Notice = &Notice{ID: id, Text: text, Error: isError}
	return tea.Tick(m.noticeTimeout, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{ID: id}
	})
}

// apply runs a session transition and brings the widgets in line with the
// new snapshot.
func (m *Model) apply(transition func(s *state.Session)) tea.Cmd {
	prev := m.Session.Snapshot()
	transition(m.Session)
	return m.sync(prev, m.Session.Snapshot())
}

func (m *Model) sync(prev, next state.Snapshot) tea.Cmd {
	if next.SearchText != m.Search.Value() {
		m.Search.SetValue(next.SearchText)
	}
	if !next.Screen.IsSongbook() && m.Searching {
		m.Searching = false
		m.Search.Blur()
	}

	if !sameSongs(prev.Filtered, next.Filtered) {
		m.setListItems(next.Filtered, prev.SearchText != next.SearchText || prev.Category != next.Category)
	}

	if selectionChanged(prev.Selected, next.Selected) {
		m.Lyrics.GotoTop()
	}
	if next.Selected != nil && (selectionChanged(prev.Selected, next.Selected) || prev.FontScale != next.FontScale) {
		m.renderLyrics(next)
	}

	if next.Atmosphere != prev.Atmosphere {
		return m.startTransition(next.Atmosphere)
	}
	return nil
}

// setListItems replaces the list content. When the query did not change the
// cursor stays on the same song.
func (m *Model) setListItems(filtered []songs.Song, reset bool) {
	var selectedID string
	if sel, ok := m.SelectedSong(); ok && !reset {
		selectedID = sel.ID
	}
	m.List.SetItems(ui.SongsToItems(filtered))
	m.List.Select(0)
	if selectedID == "" {
		return
	}
	for i, s := range filtered {
		if s.ID == selectedID {
			m.List.Select(i)
			break
		}
	}
}

func (m *Model) renderLyrics(snap state.Snapshot) {
	if snap.Selected == nil {
		m.Lyrics.SetContent("")
		return
	}
	width := m.Lyrics.Width
	if width <= 0 {
		width = 60
	}
	header := ui.RenderSongHeader(*snap.Selected, width)
	body := ui.RenderLyrics(snap.Lines, width, snap.FontScale)
	m.Lyrics.SetContent(header + "\n\n" + body + "\n")
}

func (m *Model) startTransition(target atmosphere.Atmosphere) tea.Cmd {
	tr := atmosphere.NewTransition(m.Atmosphere, target, time.Now(), m.transitionLength)
	if a, done := tr.At(tr.Start); done {
		m.Atmosphere = a
		m.transition = nil
		return nil
	}
	m.transition = &tr
	return TickAtmosphere()
}

func (m *Model) advanceAtmosphere(now time.Time) tea.Cmd {
	if m.transition == nil {
		return nil
	}
	a, done := m.transition.At(now)
	m.Atmosphere = a
	if done {
		m.transition = nil
		return nil
	}
	return TickAtmosphere()
}

func sameSongs(a, b []songs.Song) bool {
	return slices.EqualFunc(a, b, func(x, y songs.Song) bool { return x.ID == y.ID })
}

func selectionChanged(a, b *songs.Song) bool {
	switch {
	case a == nil && b == nil:
		return false
	case a == nil || b == nil:
		return true
	default:
		return a.ID != b.ID
	}
}
