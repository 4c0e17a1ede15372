package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"saconnect/internal/auth"
	"saconnect/internal/state"
)

// Notices shown for features that exist only as entry points.
const (
	noticeProfile = "Profile & Connect to Corps coming soon!"
	noticePhone   = "Use a username for now, Phone sign-in coming soon!"
	noticeBible   = "Bible coming soon!"
	noticeCorps   = "Corps Info coming soon!"
)

// Update handles incoming messages and updates the model's state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Close()
			return m, tea.Quit
		}

		// Handle about screen dismissal
		if m.ShowAbout {
			m.ShowAbout = false
			return m, nil
		}
		// Any key dismisses a notice
		if m.Notice != nil {
			m.Notice = nil
			return m, nil
		}

		switch m.Session.Snapshot().Screen {
		case state.ScreenLogin:
			return m, m.updateLogin(msg)
		case state.ScreenSongbook:
			return m, m.updateSongbook(msg)
		case state.ScreenDetail:
			return m, m.updateDetail(msg)
		default:
			return m, m.updateHome(msg)
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.UpdateLayout()
		return m, nil

	case SignInResultMsg:
		m.SigningIn = false
		if !msg.Result.OK() {
			m.Logger.Warn("sign-in failed", "error", msg.Result.Err)
			return m, m.ShowNotice("Login Failed: "+msg.Result.Err.Error(), true)
		}
		m.Logger.Info("signed in", "session_id", msg.Result.SessionID)
		m.Password.SetValue("")
		cmd := m.apply(func(s *state.Session) { s.SignedIn(msg.Result.DisplayName) })
		if m.startSong != "" {
			if song, ok := m.Session.Catalog().Find(m.startSong); ok {
				cmd = tea.Batch(cmd, m.apply(func(s *state.Session) { s.SelectSong(song) }))
			} else {
				cmd = tea.Batch(cmd, m.ShowNotice("Song "+m.startSong+" not found", true))
			}
			m.startSong = ""
		}
		return m, cmd

	case AtmosphereFrameMsg:
		return m, m.advanceAtmosphere(msg.Time)

	case NoticeExpiredMsg:
		if m.Notice != nil && m.Notice.ID == msg.ID {
			m.Notice = nil
		}
		return m, nil
	}

	// Let the focused widget consume anything else (cursor blink etc.)
	return m, m.updateFocused(msg)
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.Session.Snapshot().Screen {
	case state.ScreenLogin:
		switch m.LoginFocus {
		case focusUsername:
			m.Username, cmd = m.Username.Update(msg)
		case focusPassword:
			m.Password, cmd = m.Password.Update(msg)
		}
	case state.ScreenSongbook:
		if m.Searching {
			m.Search, cmd = m.Search.Update(msg)
		}
	}
	return cmd
}

// globalKey handles keys shared by all signed-in screens. It reports
// whether the key was consumed.
func (m *Model) globalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.TabHome):
		return m.apply(func(s *state.Session) { s.Navigate(state.TabHome) }), true
	case key.Matches(msg, keys.TabSongs):
		return m.apply(func(s *state.Session) { s.Navigate(state.TabSongs) }), true
	case key.Matches(msg, keys.TabGiving):
		return m.apply(func(s *state.Session) { s.Navigate(state.TabGiving) }), true
	case key.Matches(msg, keys.TabProfile):
		return m.apply(func(s *state.Session) { s.Navigate(state.TabProfile) }), true
	case key.Matches(msg, keys.About):
		m.ShowAbout = true
		return nil, true
	case key.Matches(msg, keys.Quit):
		m.Close()
		return tea.Quit, true
	}
	return nil, false
}

func (m *Model) updateLogin(msg tea.KeyMsg) tea.Cmd {
	if m.SigningIn {
		return nil
	}
	switch msg.String() {
	case "tab", "down":
		m.setLoginFocus((m.LoginFocus + 1) % focusCount)
		return nil
	case "shift+tab", "up":
		m.setLoginFocus((m.LoginFocus + focusCount - 1) % focusCount)
		return nil
	case "esc":
		m.Close()
		return tea.Quit
	case "enter":
		switch m.LoginFocus {
		case focusUsername:
			m.setLoginFocus(focusPassword)
			return nil
		case focusPhone:
			return m.ShowNotice(noticePhone, false)
		default:
			return m.submitLogin()
		}
	}
	return m.updateFocused(msg)
}

func (m *Model) setLoginFocus(focus int) {
	m.LoginFocus = focus
	m.Username.Blur()
	m.Password.Blur()
	switch focus {
	case focusUsername:
		m.Username.Focus()
	case focusPassword:
		m.Password.Focus()
	}
}

func (m *Model) submitLogin() tea.Cmd {
	m.SigningIn = true
	req := auth.Request{Username: m.Username.Value(), Password: m.Password.Value()}
	return SignIn(m.Auth, req)
}

func (m *Model) updateHome(msg tea.KeyMsg) tea.Cmd {
	if cmd, ok := m.globalKey(msg); ok {
		return cmd
	}
	screen := m.Session.Snapshot().Screen
	switch {
	case key.Matches(msg, keys.Back):
		if screen != state.ScreenHome {
			return m.apply(func(s *state.Session) { s.Navigate(state.TabHome) })
		}
	case key.Matches(msg, keys.SignOut):
		m.setLoginFocus(focusUsername)
		return m.apply(func(s *state.Session) { s.SignedOut() })
	}
	if screen != state.ScreenHome {
		return nil
	}
	switch {
	case key.Matches(msg, keys.OpenSongbook):
		return m.apply(func(s *state.Session) { s.Open(state.ScreenSongbook) })
	case key.Matches(msg, keys.OpenGiving):
		return m.apply(func(s *state.Session) { s.Open(state.ScreenGiving) })
	case key.Matches(msg, keys.OpenBible):
		return m.ShowNotice(noticeBible, false)
	case key.Matches(msg, keys.OpenCorps):
		return m.ShowNotice(noticeCorps, false)
	case key.Matches(msg, keys.OpenProfile):
		return m.ShowNotice(noticeProfile, false)
	}
	return nil
}

func (m *Model) updateSongbook(msg tea.KeyMsg) tea.Cmd {
	if m.Searching {
		return m.updateSearch(msg)
	}
	if cmd, ok := m.globalKey(msg); ok {
		return cmd
	}
	switch {
	case key.Matches(msg, keys.Search):
		m.Searching = true
		m.UpdateLayout()
		return m.Search.Focus()
	case key.Matches(msg, keys.ClearSearch):
		if m.Search.Value() != "" {
			return m.apply(func(s *state.Session) { s.UpdateSearch("") })
		}
		return nil
	case key.Matches(msg, keys.NextCategory):
		return m.cycleCategory(1)
	case key.Matches(msg, keys.PrevCategory):
		return m.cycleCategory(-1)
	case key.Matches(msg, keys.Open):
		if song, ok := m.SelectedSong(); ok {
			return m.apply(func(s *state.Session) { s.SelectSong(song) })
		}
		return nil
	case key.Matches(msg, keys.Back):
		return m.apply(func(s *state.Session) { s.Navigate(state.TabHome) })
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return cmd
}

func (m *Model) updateDetail(msg tea.KeyMsg) tea.Cmd {
	if cmd, ok := m.globalKey(msg); ok {
		return cmd
	}
	switch {
	case key.Matches(msg, keys.ZoomIn):
		return m.apply(func(s *state.Session) { s.Zoom(1) })
	case key.Matches(msg, keys.ZoomOut):
		return m.apply(func(s *state.Session) { s.Zoom(-1) })
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Index):
		return m.apply(func(s *state.Session) { s.ClearSelection() })
	}

	var cmd tea.Cmd
	m.Lyrics, cmd = m.Lyrics.Update(msg)
	return cmd
}
