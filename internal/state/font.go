package state

// FontScale is the bounded lyric text size.
type FontScale struct {
	Min   float64
	Max   float64
	Step  float64
	Value float64
}

// DefaultFontScale matches the songbook's reading defaults.
var DefaultFontScale = FontScale{Min: 16, Max: 40, Step: 2, Value: 22}

// ZoomIn grows the scale by one step. At the ceiling it returns f unchanged.
func (f FontScale) ZoomIn() FontScale {
	if f.Value >= f.Max {
		return f
	}
	f.Value = min(f.Value+f.Step, f.Max)
	return f
}

// ZoomOut shrinks the scale by one step. At the floor it returns f unchanged.
func (f FontScale) ZoomOut() FontScale {
	if f.Value <= f.Min {
		return f
	}
	f.Value = max(f.Value-f.Step, f.Min)
	return f
}
