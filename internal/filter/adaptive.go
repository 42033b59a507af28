package filter

// LMSFilter is a least-mean-squares adaptive FIR filter. It needs a
// reference signal correlated with the component to extract (for EEG,
// typically a dedicated noise-reference electrode or a mains pickup loop);
// it is not usable standalone for single-channel noise removal.
type LMSFilter struct {
	mu     float64   // learning rate
	buf    []float64 // last `order` inputs, most recent first
	coeffs []float64
}

// NewLMSFilter creates an adaptive filter of the given order. Orders below 1
// are clamped to 1.
func NewLMSFilter(order int, learningRate float64) *LMSFilter {
	if order < 1 {
		order = 1
	}
	return &LMSFilter{
		mu:     learningRate,
		buf:    make([]float64, order),
		coeffs: make([]float64, order),
	}
}

// Process pushes one input sample, produces the filter output, and adapts
// the coefficients toward the reference using the standard LMS update:
//
//	e = reference - output
//	coeff[i] += mu * e * buf[i]
func (f *LMSFilter) Process(input, reference float64) float64 {
	copy(f.buf[1:], f.buf[:len(f.buf)-1])
	f.buf[0] = input

	var output float64
	for i, c := range f.coeffs {
		output += c * f.buf[i]
	}

	e := reference - output
	for i := range f.coeffs {
		f.coeffs[i] += f.mu * e * f.buf[i]
	}

	return output
}

// Reset zeroes the input history and the learned coefficients.
func (f *LMSFilter) Reset() {
	for i := range f.buf {
		f.buf[i] = 0
		f.coeffs[i] = 0
	}
}

// Coefficients returns the current coefficient vector (shared slice; callers
// must not modify it).
func (f *LMSFilter) Coefficients() []float64 {
	return f.coeffs
}
