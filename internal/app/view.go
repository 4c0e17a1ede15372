package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"saconnect/internal/songs"
	"saconnect/internal/state"
	"saconnect/internal/ui"
)

// RenderHeader renders the red songbook header band.
func (m *Model) RenderHeader(title string) string {
	return ui.HeaderStyle.Width(max(m.Width, 1)).Render("← " + title)
}

// RenderSearchBar renders the search input or the active query.
func (m *Model) RenderSearchBar() string {
	snap := m.Session.Snapshot()
	info := fmt.Sprintf("  %d/%d", len(snap.Filtered), m.Session.Catalog().Len())
	if m.Searching || m.Search.Value() != "" {
		return ui.SearchBarStyle.Render(m.Search.View() + info)
	}
	return ui.SearchBarStyle.Render(lipgloss.NewStyle().Foreground(ui.SubtleColor).Render("/ "+m.Search.Placeholder) + info)
}

// RenderStatusBar renders the key help line for the current screen.
func (m *Model) RenderStatusBar(screen state.Screen) string {
	return ui.StatusBarStyle.Render(helpLine(HelpKeys(screen.String())))
}

// RenderAboutScreen renders the about dialog.
func (m *Model) RenderAboutScreen() string {
	content := fmt.Sprintf(`Salvation Army Connect

Songbook, notices and more for corps members.

Version:  %s
Commit:   %s
Built:    %s

Songs:    %d

Press any key to close`, m.About.Version, m.About.Commit, m.About.Date, m.Session.Catalog().Len())

	return ui.AboutBoxStyle.Render(content)
}

// RenderNotice renders the transient notice box.
func (m *Model) RenderNotice() string {
	if m.Notice == nil {
		return ""
	}
	style := ui.NoticeBoxStyle
	if m.Notice.Error {
		style = ui.ErrorNoticeStyle
	}
	return style.Render(m.Notice.Text)
}

// PlaceOverlay places the foreground string on top of the background string
// at the specified x, y position.
func PlaceOverlay(x, y int, fg, bg string) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for i, fgLine := range fgLines {
		bgLineIdx := y + i
		if bgLineIdx < 0 || bgLineIdx >= len(bgLines) {
			continue
		}

		bgLine := bgLines[bgLineIdx]
		bgLineWidth := ansi.StringWidth(bgLine)

		// Pad background line if needed
		if bgLineWidth < x {
			bgLine += strings.Repeat(" ", x-bgLineWidth)
			bgLineWidth = x
		}

		fgWidth := ansi.StringWidth(fgLine)
		leftPart := ansi.Truncate(bgLine, x, "")
		rightStart := x + fgWidth
		var rightPart string
		if rightStart < bgLineWidth {
			rightPart = ansi.TruncateLeft(bgLine, rightStart, "")
		}

		bgLines[bgLineIdx] = leftPart + fgLine + rightPart
	}

	return strings.Join(bgLines, "\n")
}

// View renders the application's UI.
func (m *Model) View() string {
	snap := m.Session.Snapshot()

	var mainView string
	switch snap.Screen {
	case state.ScreenLogin:
		mainView = m.viewLogin()
	case state.ScreenSongbook:
		mainView = m.viewSongbook(snap)
	case state.ScreenDetail:
		mainView = m.viewDetail(snap)
	case state.ScreenGiving:
		mainView = m.viewPlaceholder(snap, "Giving", "Online giving is coming soon.")
	case state.ScreenProfile:
		mainView = m.viewPlaceholder(snap, "Profile", noticeProfile)
	default:
		mainView = m.viewHome(snap)
	}

	// Overlays are placed within the rendered view, which can be shorter
	// than the window.
	height := lipgloss.Height(mainView)
	if m.Height > 0 {
		height = min(height, m.Height)
	}
	if m.Notice != nil {
		box := m.RenderNotice()
		x := max((m.Width-lipgloss.Width(box))/2, 0)
		y := max(height-lipgloss.Height(box)-3, 0)
		mainView = PlaceOverlay(x, y, box, mainView)
	}

	// Overlay about screen if requested
	if m.ShowAbout {
		aboutBox := m.RenderAboutScreen()
		x := max((m.Width-lipgloss.Width(aboutBox))/2, 0)
		y := max((height-lipgloss.Height(aboutBox))/2, 0)
		return PlaceOverlay(x, y, aboutBox, mainView)
	}

	return mainView
}

func (m *Model) viewLogin() string {
	button := func(label string, focused bool) string {
		if focused {
			return ui.ButtonStyle.Render(label)
		}
		return ui.ButtonMutedStyle.Render(label)
	}

	status := ""
	if m.SigningIn {
		status = lipgloss.NewStyle().Foreground(ui.SubtleColor).Render("◌ Signing in...")
	}

	form := lipgloss.JoinVertical(lipgloss.Center,
		ui.TitleStyle.UnsetMarginLeft().Render("Salvation Army Connect"),
		lipgloss.NewStyle().Foreground(ui.SubtleColor).Render("Blood and Fire"),
		"",
		m.Username.View(),
		m.Password.View(),
		"",
		button("Sign in", m.LoginFocus == focusSignIn),
		button("Continue with Phone", m.LoginFocus == focusPhone),
		"",
		status,
	)
	box := ui.LoginBoxStyle.Render(form)
	if m.Width == 0 || m.Height == 0 {
		return box
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) viewHome(snap state.Snapshot) string {
	welcome := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(ui.SubtleColor).Render("Welcome Back,"),
		lipgloss.NewStyle().Bold(true).Foreground(ui.TextColor).Render(snap.DisplayName),
	)
	width := m.Width
	if width <= 0 {
		width = 80
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		ui.TitleStyle.Render("Salvation Army"),
		"",
		lipgloss.NewStyle().MarginLeft(2).Render(welcome),
		m.renderDashboard(width-4),
		ui.RenderTabs(snap.Tab, width),
		m.RenderStatusBar(snap.Screen),
	)
}

func (m *Model) viewSongbook(snap state.Snapshot) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.RenderHeader("Song Book"),
		m.RenderSearchBar(),
		lipgloss.NewStyle().MarginLeft(2).Render(ui.RenderCapsules(songs.Categories, snap.Category)),
		m.List.View(),
		ui.RenderTabs(snap.Tab, m.Width),
		m.RenderStatusBar(snap.Screen),
	)
}

func (m *Model) viewDetail(snap state.Snapshot) string {
	zoom := fmt.Sprintf("A-  %.0f  A+", snap.FontScale)
	topBar := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Foreground(ui.RedColor).Bold(true).Render("← esc"),
		lipgloss.NewStyle().Width(max(m.Width-lipgloss.Width(zoom)-8, 1)).Render(""),
		lipgloss.NewStyle().Foreground(ui.TextColor).Bold(true).Render(zoom),
	)
	body := lipgloss.JoinVertical(lipgloss.Left, topBar, m.Lyrics.View())
	height := m.Lyrics.Height + 1
	return lipgloss.JoinVertical(lipgloss.Left,
		ui.PaintGradient(body, m.Atmosphere, max(m.Width, 1), height),
		ui.RenderTabs(snap.Tab, m.Width),
		m.RenderStatusBar(snap.Screen),
	)
}

func (m *Model) viewPlaceholder(snap state.Snapshot, title, text string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.RenderHeader(title),
		"",
		lipgloss.NewStyle().MarginLeft(2).Foreground(ui.SubtleColor).Render(text),
		"",
		ui.RenderTabs(snap.Tab, m.Width),
		m.RenderStatusBar(snap.Screen),
	)
}

// UpdateLayout recalculates widget sizes from the window size.
func (m *Model) UpdateLayout() {
	snap := m.Session.Snapshot()
	tabsHeight := lipgloss.Height(ui.RenderTabs(snap.Tab, m.Width))
	statusHeight := lipgloss.Height(m.RenderStatusBar(state.ScreenSongbook))

	fixed := lipgloss.Height(m.RenderHeader("Song Book")) +
		lipgloss.Height(m.RenderSearchBar()) +
		1 + // capsules
		tabsHeight + statusHeight
	m.List.SetSize(m.Width, max(m.Height-fixed, 0))

	m.Lyrics.Width = max(m.Width-4, 0)
	m.Lyrics.Height = max(m.Height-1-tabsHeight-statusHeight, 0)
	if snap.Selected != nil {
		m.renderLyrics(snap)
	}

	m.Username.Width = 30
	m.Password.Width = 30
	m.Search.Width = max(m.Width-24, 10)
}

// helpLine lists bindings as "key desc" pairs.
func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if h := b.Help(); h.Key != "" {
			parts = append(parts, h.Key+" "+h.Desc)
		}
	}
	return strings.Join(parts, "  │  ")
}
