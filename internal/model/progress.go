package model

// ProgressSample is the percentage/speed pair scraped from one chunk of
// yt-dlp output. Either value may be missing.
type ProgressSample struct {
	Percent    float64 // in (0, 100] when HasPercent is set
	HasPercent bool
	Speed      string // display form, e.g. "1.50MiB/s"; empty when absent
}

// HasSpeed reports whether the chunk carried a transfer speed
func (p ProgressSample) HasSpeed() bool {
	return p.Speed != ""
}

// Fraction returns the percentage as a progress bar value in 0.0..1.0
func (p ProgressSample) Fraction() float64 {
	if !p.HasPercent {
		return 0
	}
	return p.Percent / 100.0
}

// IsEmpty reports whether the chunk carried nothing useful
func (p ProgressSample) IsEmpty() bool {
	return !p.HasPercent && !p.HasSpeed()
}
