package filter

// MovingAverage is a windowed low-pass approximation: the output is the sum
// of the last windowSize inputs divided by windowSize. Samples before the
// stream start count as zero, so a unit impulse produces windowSize outputs
// of 1/windowSize followed by zeros.
//
// This is deliberately not a Butterworth design; it trades frequency-domain
// accuracy for predictability and zero overshoot, which suits noisy ADC
// input from wearable acquisition hardware.
type MovingAverage struct {
	buf  []float64 // ring buffer of the last windowSize inputs
	pos  int
	sum  float64
	size int
}

// NewMovingAverage creates a moving-average filter. windowSize values below 1
// are clamped to 1 (pass-through).
func NewMovingAverage(windowSize int) *MovingAverage {
	if windowSize < 1 {
		windowSize = 1
	}
	return &MovingAverage{
		buf:  make([]float64, windowSize),
		size: windowSize,
	}
}

// WindowForCutoff derives a moving-average window length that roughly
// matches a low-pass cutoff: floor(sampleRate / (2 * cutoffHz)), never less
// than 1. An approximation, documented as such.
func WindowForCutoff(cutoffHz, sampleRate float64) int {
	if cutoffHz <= 0 {
		return 1
	}
	w := int(sampleRate / (cutoffHz * 2.0))
	if w < 1 {
		w = 1
	}
	return w
}

// Process pushes one sample into the window and returns the current average.
func (m *MovingAverage) Process(x float64) float64 {
	m.sum += x - m.buf[m.pos]
	m.buf[m.pos] = x
	m.pos = (m.pos + 1) % m.size
	return m.sum / float64(m.size)
}

// Reset zeroes the window contents.
func (m *MovingAverage) Reset() {
	for i := range m.buf {
		m.buf[i] = 0
	}
	m.pos = 0
	m.sum = 0
}

// WindowSize returns the configured window length.
func (m *MovingAverage) WindowSize() int {
	return m.size
}
