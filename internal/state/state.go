package state

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"saconnect/internal/atmosphere"
	"saconnect/internal/lyrics"
	"saconnect/internal/songs"
)

// Tab is an entry of the bottom navigation bar.
type Tab int

const (
	TabHome Tab = iota
	TabSongs
	TabGiving
	TabProfile
)

// Tabs lists the navigation bar entries in display order.
var Tabs = []Tab{TabHome, TabSongs, TabGiving, TabProfile}

func (t Tab) String() string {
	switch t {
	case TabSongs:
		return "Songs"
	case TabGiving:
		return "Giving"
	case TabProfile:
		return "Profile"
	default:
		return "Home"
	}
}

// Screen identifies the view currently shown.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenHome
	ScreenSongbook
	ScreenDetail
	ScreenGiving
	ScreenProfile
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenSongbook:
		return "songbook"
	case ScreenDetail:
		return "detail"
	case ScreenGiving:
		return "giving"
	case ScreenProfile:
		return "profile"
	default:
		return "home"
	}
}

// IsSongbook reports whether the screen owns the songbook query state.
func (s Screen) IsSongbook() bool {
	return s == ScreenSongbook || s == ScreenDetail
}

// DefaultDisplayName is shown when the identity provider gives no name.
const DefaultDisplayName = "Soldier"

// Snapshot is everything the presentation layer needs to draw one frame.
type Snapshot struct {
	LoggedIn    bool
	DisplayName string
	Tab         Tab
	Screen      Screen
	SearchText  string
	Category    string
	Filtered    []songs.Song
	Selected    *songs.Song
	Atmosphere  atmosphere.Atmosphere
	Lines       []lyrics.Line
	FontScale   float64
}

func (snap Snapshot) clone() Snapshot {
	if snap.Selected != nil {
		sel := *snap.Selected
		snap.Selected = &sel
	}
	snap.Filtered = slices.Clone(snap.Filtered)
	snap.Lines = slices.Clone(snap.Lines)
	return snap
}

// Session holds the transient UI state of one running session. Every
// transition recomputes the Snapshot and hands it to subscribers before
// returning. A Session is not safe for concurrent use; it lives on the
// UI goroutine.
type Session struct {
	catalog *songs.Catalog

	loggedIn    bool
	displayName string
	tab         Tab
	screen      Screen
	searchText  string
	category    string
	selected    *songs.Song
	font        FontScale

	snapshot    Snapshot
	subscribers map[int]func(Snapshot)
	nextID      int
}

// NewSession creates a signed-out session over catalog.
func NewSession(catalog *songs.Catalog, font FontScale) *Session {
	if catalog == nil {
		catalog = songs.NewCatalog(nil)
	}
	s := &Session{
		catalog:     catalog,
		screen:      ScreenLogin,
		category:    songs.AllCategories,
		font:        font,
		subscribers: make(map[int]func(Snapshot)),
	}
	s.recompute()
	return s
}

// Catalog returns the catalog the session filters.
func (s *Session) Catalog() *songs.Catalog { return s.catalog }

// Snapshot returns the view derived from the latest transition. The
// returned value owns its data; writes through it never reach the session.
func (s *Session) Snapshot() Snapshot { return s.snapshot.clone() }

// Subscribe registers fn to be called after every transition. The returned
// function removes the subscription.
func (s *Session) Subscribe(fn func(Snapshot)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	return func() { delete(s.subscribers, id) }
}

// SignedIn records a successful sign-in and shows the home screen.
func (s *Session) SignedIn(displayName string) {
	s.loggedIn = true
	s.displayName = displayName
	s.tab = TabHome
	s.leave(ScreenHome)
	s.changed()
}

// SignedOut drops back to the login screen and resets everything else.
func (s *Session) SignedOut() {
	s.loggedIn = false
	s.displayName = ""
	s.tab = TabHome
	s.leave(ScreenLogin)
	s.changed()
}

// Navigate selects a tab and shows the screen it leads to.
func (s *Session) Navigate(tab Tab) {
	if !s.loggedIn {
		return
	}
	s.tab = tab
	switch tab {
	case TabSongs:
		s.leave(ScreenSongbook)
	case TabGiving:
		s.leave(ScreenGiving)
	case TabProfile:
		s.leave(ScreenProfile)
	default:
		s.leave(ScreenHome)
	}
	s.changed()
}

// Open shows screen directly, as the home quick actions do. The tab
// follows the screen where one exists. Opening ScreenDetail without a
// selection shows the songbook instead.
func (s *Session) Open(screen Screen) {
	if !s.loggedIn || screen == ScreenLogin {
		return
	}
	if screen == ScreenDetail && s.selected == nil {
		screen = ScreenSongbook
	}
	switch screen {
	case ScreenHome:
		s.tab = TabHome
	case ScreenSongbook, ScreenDetail:
		s.tab = TabSongs
	case ScreenGiving:
		s.tab = TabGiving
	case ScreenProfile:
		s.tab = TabProfile
	}
	s.leave(screen)
	s.changed()
}

// SelectSong shows the lyrics of song.
func (s *Session) SelectSong(song songs.Song) {
	if !s.loggedIn {
		return
	}
	s.selected = &song
	s.tab = TabSongs
	s.screen = ScreenDetail
	s.changed()
}

// ClearSelection returns from the lyrics to the list, keeping the query.
func (s *Session) ClearSelection() {
	s.selected = nil
	if s.screen == ScreenDetail {
		s.screen = ScreenSongbook
	}
	s.changed()
}

// UpdateSearch replaces the search text.
func (s *Session) UpdateSearch(text string) {
	s.searchText = text
	s.changed()
}

// UpdateCategory replaces the selected category.
func (s *Session) UpdateCategory(category string) {
	s.category = category
	s.changed()
}

// Zoom moves the lyric font scale by steps increments, clamped to bounds.
func (s *Session) Zoom(steps int) {
	for ; steps > 0; steps-- {
		s.font = s.font.ZoomIn()
	}
	for ; steps < 0; steps++ {
		s.font = s.font.ZoomOut()
	}
	s.changed()
}

// leave switches to next, discarding the songbook query and selection when
// next is outside the songbook.
func (s *Session) leave(next Screen) {
	if !next.IsSongbook() {
		s.searchText = ""
		s.category = songs.AllCategories
		s.selected = nil
	}
	if next == ScreenSongbook {
		s.selected = nil
	}
	s.screen = next
}

func (s *Session) changed() {
	s.recompute()
	for _, fn := range s.subscribers {
		fn(s.snapshot.clone())
	}
}

func (s *Session) recompute() {
	snap := Snapshot{
		LoggedIn:    s.loggedIn,
		DisplayName: s.displayName,
		Tab:         s.tab,
		Screen:      s.screen,
		SearchText:  s.searchText,
		Category:    s.category,
		Filtered:    songs.Filter(s.catalog.Songs(), s.searchText, s.category),
		Atmosphere:  atmosphere.For(atmosphere.None),
		FontScale:   s.font.Value,
	}
	if snap.DisplayName == "" {
		snap.DisplayName = DefaultDisplayName
	}
	if s.selected != nil {
		sel := *s.selected
		snap.Selected = &sel
		snap.Atmosphere = atmosphere.For(sel.Category)
		snap.Lines = lyrics.Classify(sel.Lyrics)
	}
	s.snapshot = snap
}

const (
	logFileName = "saconnect.log"
	appDirName  = "saconnect"
)

// getStateDir returns the directory for session artifacts such as the log.
// On Linux: $XDG_STATE_HOME/saconnect or ~/.local/state/saconnect
// On macOS: ~/Library/Application Support/saconnect
func getStateDir() (string, error) {
	var baseDir string

	if runtime.GOOS == "darwin" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")
	} else {
		if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
			baseDir = xdgState
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".local", "state")
		}
	}

	return filepath.Join(baseDir, appDirName), nil
}

// DefaultLogPath returns the log file location, creating its directory.
func DefaultLogPath() (string, error) {
	stateDir, err := getStateDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create state directory: %w", err)
	}
	return filepath.Join(stateDir, logFileName), nil
}
