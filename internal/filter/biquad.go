package filter

import "math"

// BiquadCoefficients holds one normalized second-order section.
// a0 is divided out at design time and not stored.
type BiquadCoefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Biquad is a two-pole, two-zero IIR section in Direct Form I:
//
//	y[n] = b0*x[n] + b1*x[n-1] + b2*x[n-2] - a1*y[n-1] - a2*y[n-2]
//
// The carried state is the last two inputs and outputs.
type Biquad struct {
	coeffs         BiquadCoefficients
	x1, x2, y1, y2 float64
}

// NewBiquad creates a section with the given coefficients and zero state.
func NewBiquad(c BiquadCoefficients) *Biquad {
	return &Biquad{coeffs: c}
}

// Process filters one sample.
func (b *Biquad) Process(x float64) float64 {
	c := &b.coeffs
	y := c.B0*x + c.B1*b.x1 + c.B2*b.x2 - c.A1*b.y1 - c.A2*b.y2
	b.x2 = b.x1
	b.x1 = x
	b.y2 = b.y1
	b.y1 = y
	return y
}

// Reset zeroes the delay lines without touching the coefficients.
func (b *Biquad) Reset() {
	b.x1 = 0
	b.x2 = 0
	b.y1 = 0
	b.y2 = 0
}

// SetCoefficients swaps the coefficient set while preserving the delay-line
// state. Used by the adaptive notch to retune without an output
// discontinuity.
func (b *Biquad) SetCoefficients(c BiquadCoefficients) {
	b.coeffs = c
}

// Coefficients returns the current coefficient set.
func (b *Biquad) Coefficients() BiquadCoefficients {
	return b.coeffs
}

// DefaultNotchBandwidthOctaves is the constant-Q notch bandwidth used when
// no explicit bandwidth is configured. Two octaves is wide enough to stay
// effective when the mains frequency wanders a little.
const DefaultNotchBandwidthOctaves = 2.0

// NotchCoefficients designs a constant-Q band-reject biquad centred on
// freq Hz at the given sample rate. bandwidthOctaves sets the reject band
// width in octaves:
//
//	omega = 2*pi*freq/sampleRate
//	alpha = sin(omega) * sinh(ln2/2 * bandwidth * omega/sin(omega))
//
// The section has unity gain far from the notch and a null at freq.
func NotchCoefficients(freq, sampleRate, bandwidthOctaves float64) BiquadCoefficients {
	omega := 2.0 * math.Pi * freq / sampleRate
	sinOmega := math.Sin(omega)
	alpha := sinOmega * math.Sinh(math.Ln2/2.0*bandwidthOctaves*omega/sinOmega)

	a0 := 1.0 + alpha
	return BiquadCoefficients{
		B0: 1.0 / a0,
		B1: -2.0 * math.Cos(omega) / a0,
		B2: 1.0 / a0,
		A1: -2.0 * math.Cos(omega) / a0,
		A2: (1.0 - alpha) / a0,
	}
}

// NewNotch creates a band-reject biquad at freq Hz with the default
// bandwidth.
func NewNotch(freq, sampleRate float64) *Biquad {
	return NewBiquad(NotchCoefficients(freq, sampleRate, DefaultNotchBandwidthOctaves))
}
