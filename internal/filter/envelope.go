package filter

import "math"

// EMGEnvelope extracts the amplitude envelope of muscle (EMG) activity:
// full-wave rectification followed by a second-order Butterworth low-pass.
// Useful for spotting jaw-clench and frown contamination in EEG channels.
type EMGEnvelope struct {
	lp *Biquad
}

// NewEMGEnvelope creates an envelope detector with the given smoothing
// cutoff (a few Hz is typical).
func NewEMGEnvelope(cutoffHz, sampleRate float64) *EMGEnvelope {
	return &EMGEnvelope{lp: NewButterworthLowpass(cutoffHz, sampleRate)}
}

// Process rectifies one sample and smooths it.
func (e *EMGEnvelope) Process(x float64) float64 {
	return e.lp.Process(math.Abs(x))
}

// Reset zeroes the smoothing filter state.
func (e *EMGEnvelope) Reset() {
	e.lp.Reset()
}
