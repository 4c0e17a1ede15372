package app

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"saconnect/internal/songs"
	"saconnect/internal/state"
)

// updateSearch feeds a key to the search input while it has focus.
func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		// Leave search mode, keep the query
		m.stopSearching()
		return nil
	case "esc":
		// Cancel search, clear query
		m.stopSearching()
		return m.apply(func(s *state.Session) { s.UpdateSearch("") })
	}

	before := m.Search.Value()
	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	if after := m.Search.Value(); after != before {
		return tea.Batch(cmd, m.apply(func(s *state.Session) { s.UpdateSearch(after) }))
	}
	return cmd
}

func (m *Model) stopSearching() {
	m.Searching = false
	m.Search.Blur()
	m.UpdateLayout()
}

// cycleCategory moves the active capsule by delta, wrapping around.
func (m *Model) cycleCategory(delta int) tea.Cmd {
	current := m.Session.Snapshot().Category
	idx := slices.Index(songs.Categories, current)
	if idx < 0 {
		idx = 0
	}
	n := len(songs.Categories)
	next := songs.Categories[((idx+delta)%n+n)%n]
	return m.apply(func(s *state.Session) { s.UpdateCategory(next) })
}
