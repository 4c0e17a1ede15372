package atmosphere

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor_KnownCategories(t *testing.T) {
	tests := []struct {
		category string
		want     Atmosphere
	}{
		{"Salvation", Atmosphere{"#FFF8E1", "#FFEBEE"}},
		{"Warfare", Atmosphere{"#FFEBEE", "#FFCDD2"}},
		{"Praise", Atmosphere{"#FFFDE7", "#FFF9C4"}},
		{"Prayer", Atmosphere{"#F3E5F5", "#E1BEE7"}},
		{"Christmas", Atmosphere{"#E8F5E9", "#FFEBEE"}},
		{"Heaven", Atmosphere{"#E0F7FA", "#B2EBF2"}},
		{"Identity", Atmosphere{"#E3F2FD", "#BBDEFB"}},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, For(tt.category))
			assert.NotEqual(t, Default, For(tt.category))
		})
	}
}

func TestFor_UnknownFallsBackToDefault(t *testing.T) {
	for _, category := range []string{"", None, "All", "praise", "Easter", "  Praise"} {
		assert.Equal(t, Default, For(category), "category %q", category)
		assert.Equal(t, For(category), For(category))
	}
}

func TestBlend_Endpoints(t *testing.T) {
	a := For("Praise")
	b := For("Prayer")

	assert.Equal(t, a, Blend(a, b, 0))
	assert.Equal(t, b, Blend(a, b, 1))
	assert.Equal(t, a, Blend(a, b, -3))
	assert.Equal(t, b, Blend(a, b, 7))
}

func TestBlend_Midpoint(t *testing.T) {
	black := Atmosphere{"#000000", "#000000"}
	white := Atmosphere{"#ffffff", "#ffffff"}

	mid := Blend(black, white, 0.5)
	assert.NotEqual(t, black.Start, mid.Start)
	assert.NotEqual(t, white.Start, mid.Start)
	assert.Len(t, string(mid.Start), 7)
}

func TestBlend_NonHexSnaps(t *testing.T) {
	a := Atmosphere{"1", "1"}
	b := Atmosphere{"2", "2"}
	assert.Equal(t, a, Blend(a, b, 0.2))
	assert.Equal(t, b, Blend(a, b, 0.8))
}

func TestGradient(t *testing.T) {
	a := For("Heaven")

	assert.Nil(t, Gradient(a, 0))
	assert.Equal(t, []lipgloss.Color{a.Start}, Gradient(a, 1))

	rows := Gradient(a, 5)
	require.Len(t, rows, 5)
	assert.Equal(t, a.Start, rows[0])
	assert.Equal(t, a.End, rows[4])
}

func TestTransition(t *testing.T) {
	now := time.Unix(1000, 0)
	tr := NewTransition(Default, For("Warfare"), now, time.Second)

	got, done := tr.At(now)
	assert.False(t, done)
	assert.Equal(t, Default, got)

	got, done = tr.At(now.Add(500 * time.Millisecond))
	assert.False(t, done)
	assert.NotEqual(t, Default, got)
	assert.NotEqual(t, For("Warfare"), got)

	got, done = tr.At(now.Add(2 * time.Second))
	assert.True(t, done)
	assert.Equal(t, For("Warfare"), got)
}

func TestTransition_ZeroDurationOrSameEndpoints(t *testing.T) {
	now := time.Now()

	got, done := NewTransition(Default, For("Praise"), now, 0).At(now)
	assert.True(t, done)
	assert.Equal(t, For("Praise"), got)

	got, done = NewTransition(Default, Default, now, time.Second).At(now)
	assert.True(t, done)
	assert.Equal(t, Default, got)
}
