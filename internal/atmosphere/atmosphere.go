// Package atmosphere maps a song category to the two-color gradient drawn
// behind the song view.
package atmosphere

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Atmosphere is a vertical gradient from Start (top) to End (bottom).
type Atmosphere struct {
	Start lipgloss.Color
	End   lipgloss.Color
}

// None is the category used when no song is selected.
const None = "Default"

// Default is used for None and any category not in the table.
var Default = Atmosphere{Start: "#FFFFFF", End: "#F5F5F5"}

var table = map[string]Atmosphere{
	"Salvation": {Start: "#FFF8E1", End: "#FFEBEE"}, // gold to soft red
	"Warfare":   {Start: "#FFEBEE", End: "#FFCDD2"}, // soft red to courage red
	"Praise":    {Start: "#FFFDE7", End: "#FFF9C4"}, // bright yellow to gold
	"Prayer":    {Start: "#F3E5F5", End: "#E1BEE7"}, // mist to violet
	"Christmas": {Start: "#E8F5E9", End: "#FFEBEE"}, // soft green to soft red
	"Heaven":    {Start: "#E0F7FA", End: "#B2EBF2"}, // sky to clouds
	"Identity":  {Start: "#E3F2FD", End: "#BBDEFB"}, // flag blue tint
}

// For returns the atmosphere of category.
func For(category string) Atmosphere {
	if a, ok := table[category]; ok {
		return a
	}
	return Default
}

// Blend interpolates from a to b in Lab space. t is clamped to [0, 1].
func Blend(a, b Atmosphere, t float64) Atmosphere {
	return Atmosphere{
		Start: blendColor(a.Start, b.Start, t),
		End:   blendColor(a.End, b.End, t),
	}
}

// Gradient returns one color per row, running from a.Start to a.End.
func Gradient(a Atmosphere, rows int) []lipgloss.Color {
	if rows <= 0 {
		return nil
	}
	out := make([]lipgloss.Color, rows)
	if rows == 1 {
		out[0] = a.Start
		return out
	}
	for i := range out {
		out[i] = blendColor(a.Start, a.End, float64(i)/float64(rows-1))
	}
	return out
}

func blendColor(a, b lipgloss.Color, t float64) lipgloss.Color {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	ca, errA := colorful.Hex(string(a))
	cb, errB := colorful.Hex(string(b))
	if errA != nil || errB != nil {
		// Not a hex color; snap instead of interpolating.
		if t < 0.5 {
			return a
		}
		return b
	}
	return lipgloss.Color(ca.BlendLab(cb, t).Clamped().Hex())
}

// DefaultTransition is how long a change of atmosphere takes to settle.
const DefaultTransition = time.Second

// Transition animates between two atmospheres over a fixed duration.
type Transition struct {
	From     Atmosphere
	To       Atmosphere
	Start    time.Time
	Duration time.Duration
}

// NewTransition starts a transition at now.
func NewTransition(from, to Atmosphere, now time.Time, d time.Duration) Transition {
	return Transition{From: from, To: to, Start: now, Duration: d}
}

// At returns the atmosphere at now and whether the transition has finished.
func (tr Transition) At(now time.Time) (Atmosphere, bool) {
	if tr.Duration <= 0 || tr.From == tr.To {
		return tr.To, true
	}
	elapsed := now.Sub(tr.Start)
	if elapsed >= tr.Duration {
		return tr.To, true
	}
	if elapsed <= 0 {
		return tr.From, false
	}
	return Blend(tr.From, tr.To, float64(elapsed)/float64(tr.Duration)), false
}
