package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"saconnect/internal/atmosphere"
	"saconnect/internal/auth"
	"saconnect/internal/songs"
	"saconnect/internal/state"
	"saconnect/internal/ui"
)

// AboutInfo holds version and metadata for the about screen.
type AboutInfo struct {
	Version string
	Commit  string
	Date    string
}

// Options configures a Model.
type Options struct {
	Catalog       *songs.Catalog
	Auth          auth.Authenticator
	Logger        *slog.Logger
	FontScale     state.FontScale
	Transition    time.Duration
	NoticeTimeout time.Duration
	About         AboutInfo
	// StartSong, when set, opens this song right after sign-in.
	StartSong string
}

// Notice is a transient message drawn over the current screen.
type Notice struct {
	ID    int
	Text  string
	Error bool
}

// login form focus order
const (
	focusUsername = iota
	focusPassword
	focusSignIn
	focusPhone
	focusCount
)

// Model is the bubbletea model. It owns the session state and renders the
// session snapshot; every input is translated into a session transition.
type Model struct {
	Session *state.Session
	Auth    auth.Authenticator
	Logger  *slog.Logger

	List      list.Model
	Search    textinput.Model
	Searching bool // Whether search input is focused
	Lyrics    viewport.Model

	Username   textinput.Model
	Password   textinput.Model
	LoginFocus int
	SigningIn  bool

	Atmosphere atmosphere.Atmosphere // currently drawn, may be mid-transition
	transition *atmosphere.Transition

	Notice    *Notice
	noticeSeq int

	ShowAbout bool
	About     AboutInfo
	Width     int
	Height    int

	transitionLength time.Duration
	noticeTimeout    time.Duration
	startSong        string
	home             homeCache
	unsubscribe      func()
}

// NewModel builds the model for a signed-out session over opts.Catalog.
func NewModel(opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.FontScale == (state.FontScale{}) {
		opts.FontScale = state.DefaultFontScale
	}
	if opts.NoticeTimeout <= 0 {
		opts.NoticeTimeout = 3 * time.Second
	}

	session := state.NewSession(opts.Catalog, opts.FontScale)

	l := list.New(ui.SongsToItems(session.Snapshot().Filtered), ui.NewStyledDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.SetStatusBarItemName("song", "songs")

	search := textinput.New()
	search.Placeholder = "Search Number or Name..."
	search.Prompt = "⌕ "

	username := textinput.New()
	username.Placeholder = "username (blank for guest)"
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	m := &Model{
		Session:          session,
		Auth:             opts.Auth,
		Logger:           opts.Logger,
		List:             l,
		Search:           search,
		Lyrics:           viewport.New(0, 0),
		Username:         username,
		Password:         password,
		Atmosphere:       atmosphere.Default,
		About:            opts.About,
		transitionLength: opts.Transition,
		noticeTimeout:    opts.NoticeTimeout,
		startSong:        opts.StartSong,
	}

	logger := opts.Logger
	m.unsubscribe = session.Subscribe(func(snap state.Snapshot) {
		logger.Debug("session changed",
			"screen", snap.Screen.String(),
			"tab", snap.Tab.String(),
			"search", snap.SearchText,
			"category", snap.Category,
			"results", len(snap.Filtered),
			"font_scale", snap.FontScale,
		)
	})
	return m
}

// Init initializes the application.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

// Close detaches the model from its session.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// SelectedSong returns the song under the list cursor.
func (m *Model) SelectedSong() (songs.Song, bool) {
	i, ok := m.List.SelectedItem().(ui.Item)
	if !ok {
		return songs.Song{}, false
	}
	return i.Song, true
}
