package lyrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleOf(t *testing.T) {
	tests := []struct {
		line string
		want Role
	}{
		{"Chorus", Chorus},
		{"Chorus: Soldier of the Cross", Chorus},
		{"  sing the Chorus again", Chorus},
		{"chorus", Normal},
		{ChorusMarker + " तारण झाले", Chorus},
		{"3.", StanzaHeader},
		{"  23.  ", StanzaHeader},
		{"\t1.\t", StanzaHeader},
		{"3. Amazing grace", Normal},
		{"3", Normal},
		{".", Normal},
		{"3.5.", Normal},
		{"", Normal},
		{"   ", Normal},
		{"Line one", Normal},
		{"12. Chorus", Chorus},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, RoleOf(tt.line))
		})
	}
}

func TestClassify_EndToEnd(t *testing.T) {
	got := Classify("1.\nLine one\nChorus\nLine two")
	want := []Line{
		{"1.", StanzaHeader},
		{"Line one", Normal},
		{"Chorus", Chorus},
		{"Line two", Normal},
	}
	assert.Equal(t, want, got)
}

func TestClassify_PreservesEmptyLines(t *testing.T) {
	got := Classify("a\n\nb\n")
	assert.Equal(t, []Line{{"a", Normal}, {"", Normal}, {"b", Normal}, {"", Normal}}, got)
}

func TestClassify_EmptyInput(t *testing.T) {
	assert.Equal(t, []Line{{"", Normal}}, Classify(""))
}

func TestClassify_Idempotent(t *testing.T) {
	text := "2.\n" + ChorusMarker + "\nverse"
	assert.Equal(t, Classify(text), Classify(text))
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "normal", Normal.String())
	assert.Equal(t, "chorus", Chorus.String())
	assert.Equal(t, "stanza-header", StanzaHeader.String())
}
