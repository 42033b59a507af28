package filter

// PowerLineNotch suppresses mains interference by cascading one notch
// biquad per configured frequency: the output of stage i feeds stage i+1.
// A typical bank covers both 50 Hz and 60 Hz so recordings clean up
// correctly regardless of where the acquisition hardware was plugged in.
type PowerLineNotch struct {
	stages []*Biquad
	freqs  []float64
}

// NewPowerLineNotch creates a serial notch bank for the given frequencies.
// Frequencies at or above Nyquist are skipped; they cannot be filtered
// meaningfully at this sample rate.
func NewPowerLineNotch(freqs []float64, sampleRate float64) *PowerLineNotch {
	pl := &PowerLineNotch{}
	for _, f := range freqs {
		if f <= 0 || f >= sampleRate/2 {
			continue
		}
		pl.stages = append(pl.stages, NewNotch(f, sampleRate))
		pl.freqs = append(pl.freqs, f)
	}
	return pl
}

// Process runs one sample through every notch stage in series.
func (pl *PowerLineNotch) Process(x float64) float64 {
	for _, s := range pl.stages {
		x = s.Process(x)
	}
	return x
}

// Reset zeroes every stage.
func (pl *PowerLineNotch) Reset() {
	for _, s := range pl.stages {
		s.Reset()
	}
}

// Frequencies returns the notch frequencies actually in use.
func (pl *PowerLineNotch) Frequencies() []float64 {
	return pl.freqs
}
