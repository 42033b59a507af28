// Package filter implements the streaming DSP primitives used to clean up
// multi-channel EEG signals: first-order and biquad IIR sections, moving
// averages, adaptive filters, and artifact/spike detection.
//
// Every streaming primitive carries its own recursive state and exposes
// Process (one sample in, one sample out) plus Reset (zero the state without
// touching the configuration). Instances are cheap; construct one per channel
// and never share an instance across channels or goroutines.
package filter

import "math"

// DCBlockCutoffHz is the fixed cutoff used by DC blockers. Low enough to
// leave slow EEG delta activity (0.5-4 Hz) intact while removing electrode
// drift and amplifier offset.
const DCBlockCutoffHz = 0.5

// FirstOrderHighPass is a single-pole recursive high-pass filter:
//
//	y[n] = alpha * (y[n-1] + x[n] - x[n-1])
//
// where alpha = rc/(rc+dt), rc = 1/(2*pi*cutoff), dt = 1/sampleRate.
// Steady-state gain at DC is zero, so a constant input converges to zero
// output. Stable for any 0 < alpha < 1.
type FirstOrderHighPass struct {
	alpha  float64
	x1, y1 float64
}

// NewFirstOrderHighPass creates a high-pass filter with the given cutoff.
// cutoffHz and sampleRate must be positive and satisfy Nyquist; the pipeline
// config validates this before construction.
func NewFirstOrderHighPass(cutoffHz, sampleRate float64) *FirstOrderHighPass {
	rc := 1.0 / (2.0 * math.Pi * cutoffHz)
	dt := 1.0 / sampleRate
	return &FirstOrderHighPass{alpha: rc / (rc + dt)}
}

// NewDCBlocker creates a high-pass filter fixed at DCBlockCutoffHz, used to
// strip electrode offset and baseline drift ahead of other stages.
func NewDCBlocker(sampleRate float64) *FirstOrderHighPass {
	return NewFirstOrderHighPass(DCBlockCutoffHz, sampleRate)
}

// Process filters one sample.
func (f *FirstOrderHighPass) Process(x float64) float64 {
	y := f.alpha * (f.y1 + x - f.x1)
	f.x1 = x
	f.y1 = y
	return y
}

// Reset zeroes the delay state. The coefficient is untouched.
func (f *FirstOrderHighPass) Reset() {
	f.x1 = 0
	f.y1 = 0
}
