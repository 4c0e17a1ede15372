// Package lyrics splits song text into lines and tags each line with its
// structural role so the presentation layer can style it.
package lyrics

import (
	"regexp"
	"strings"
)

// Role is the structural role of a lyric line.
type Role int

const (
	// Normal is a sung verse line. Empty lines are Normal too.
	Normal Role = iota
	// Chorus marks a chorus line.
	Chorus
	// StanzaHeader is a line holding only a verse number, e.g. "3.".
	StanzaHeader
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case Chorus:
		return "chorus"
	case StanzaHeader:
		return "stanza-header"
	default:
		return "normal"
	}
}

// ChorusMarker is the refrain marker used in the Marathi songbook.
const ChorusMarker = "।।धृ.।।"

const chorusWord = "Chorus"

// The whole trimmed line must be the number; "3. Amazing grace" is a verse.
var stanzaPattern = regexp.MustCompile(`^\d+\.$`)

// Line is one classified line of lyrics.
type Line struct {
	Text string
	Role Role
}

// Classify splits text on newlines and assigns a role to every line.
// A chorus match wins over a stanza header.
func Classify(text string) []Line {
	raw := strings.Split(text, "\n")
	lines := make([]Line, len(raw))
	for i, l := range raw {
		lines[i] = Line{Text: l, Role: RoleOf(l)}
	}
	return lines
}

// RoleOf classifies a single line.
func RoleOf(line string) Role {
	switch {
	case strings.Contains(line, ChorusMarker), strings.Contains(line, chorusWord):
		return Chorus
	case stanzaPattern.MatchString(strings.TrimSpace(line)):
		return StanzaHeader
	default:
		return Normal
	}
}
