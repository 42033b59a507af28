package filter

import "math"

// Second-order Butterworth sections via the bilinear transform. The warped
// analog prototype uses c = 1/tan(pi*fc/fs) for low-pass and c = tan(pi*fc/fs)
// for high-pass, with the maximally-flat sqrt(2) damping term.

// ButterworthLowpassCoefficients designs a second-order low-pass section.
func ButterworthLowpassCoefficients(cutoffHz, sampleRate float64) BiquadCoefficients {
	c := 1.0 / math.Tan(math.Pi*cutoffHz/sampleRate)
	a0 := 1.0 + math.Sqrt2*c + c*c
	return BiquadCoefficients{
		B0: 1.0 / a0,
		B1: 2.0 / a0,
		B2: 1.0 / a0,
		A1: 2.0 * (1.0 - c*c) / a0,
		A2: (1.0 - math.Sqrt2*c + c*c) / a0,
	}
}

// ButterworthHighpassCoefficients designs a second-order high-pass section.
func ButterworthHighpassCoefficients(cutoffHz, sampleRate float64) BiquadCoefficients {
	c := math.Tan(math.Pi * cutoffHz / sampleRate)
	a0 := 1.0 + math.Sqrt2*c + c*c
	return BiquadCoefficients{
		B0: 1.0 / a0,
		B1: -2.0 / a0,
		B2: 1.0 / a0,
		A1: 2.0 * (c*c - 1.0) / a0,
		A2: (1.0 - math.Sqrt2*c + c*c) / a0,
	}
}

// NewButterworthLowpass creates a second-order low-pass biquad.
func NewButterworthLowpass(cutoffHz, sampleRate float64) *Biquad {
	return NewBiquad(ButterworthLowpassCoefficients(cutoffHz, sampleRate))
}

// NewButterworthHighpass creates a second-order high-pass biquad.
func NewButterworthHighpass(cutoffHz, sampleRate float64) *Biquad {
	return NewBiquad(ButterworthHighpassCoefficients(cutoffHz, sampleRate))
}

// BandPass is a band-pass filter built as a high-pass section feeding a
// low-pass section. The high-pass runs first so DC drift is removed before
// the low-pass smooths what remains; that ordering shapes the transient
// response and is relied on by the chain.
type BandPass struct {
	hp, lp *Biquad
}

// NewBandPass creates a band-pass cascade passing lowHz..highHz.
func NewBandPass(lowHz, highHz, sampleRate float64) *BandPass {
	return &BandPass{
		hp: NewButterworthHighpass(lowHz, sampleRate),
		lp: NewButterworthLowpass(highHz, sampleRate),
	}
}

// Process filters one sample through both sections in order.
func (bp *BandPass) Process(x float64) float64 {
	return bp.lp.Process(bp.hp.Process(x))
}

// Reset zeroes both sections.
func (bp *BandPass) Reset() {
	bp.hp.Reset()
	bp.lp.Reset()
}
