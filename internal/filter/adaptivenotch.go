package filter

// Adaptive notch tuning parameters.
const (
	adaptiveNotchBufferLen = 64   // rolling window for frequency estimation
	adaptiveNotchMaxLag    = 32   // autocorrelation lags tested (1..32)
	adaptiveNotchLearnRate = 0.05 // fraction of the estimate applied per retune
	adaptiveNotchRetune    = 16   // samples between coefficient updates
)

// AdaptiveNotch tracks the dominant periodic interferer in the input and
// keeps a notch biquad centred on it. The frequency estimate comes from a
// windowed autocorrelation over the last 64 samples: the lag with maximum
// correlation gives frequency = sampleRate/lag, and the notch target is
// nudged toward that estimate by a small learning step so a wandering
// interferer is followed without the notch jumping around.
type AdaptiveNotch struct {
	sampleRate float64
	target     float64 // current notch centre frequency (Hz)
	notch      *Biquad

	buf    [adaptiveNotchBufferLen]float64
	pos    int
	filled int
	since  int // samples since last retune
}

// NewAdaptiveNotch creates an adaptive notch starting at initialFreq Hz.
func NewAdaptiveNotch(initialFreq, sampleRate float64) *AdaptiveNotch {
	return &AdaptiveNotch{
		sampleRate: sampleRate,
		target:     initialFreq,
		notch:      NewNotch(initialFreq, sampleRate),
	}
}

// Process filters one sample, periodically re-estimating the interferer
// frequency and retuning the notch. The biquad delay-line state is preserved
// across retunes to avoid output discontinuities.
func (a *AdaptiveNotch) Process(x float64) float64 {
	a.buf[a.pos] = x
	a.pos = (a.pos + 1) % adaptiveNotchBufferLen
	if a.filled < adaptiveNotchBufferLen {
		a.filled++
	}

	a.since++
	if a.filled == adaptiveNotchBufferLen && a.since >= adaptiveNotchRetune {
		a.since = 0
		if est := a.estimateFrequency(); est > 0 {
			a.target += adaptiveNotchLearnRate * (est - a.target)
			a.clampTarget()
			a.notch.SetCoefficients(NotchCoefficients(a.target, a.sampleRate, DefaultNotchBandwidthOctaves))
		}
	}

	return a.notch.Process(x)
}

// estimateFrequency picks the autocorrelation lag with maximum correlation
// over the rolling buffer and converts it to Hz. Returns 0 when no lag shows
// positive correlation (aperiodic input).
func (a *AdaptiveNotch) estimateFrequency() float64 {
	// Oldest-to-newest view of the ring buffer.
	var w [adaptiveNotchBufferLen]float64
	for i := 0; i < adaptiveNotchBufferLen; i++ {
		w[i] = a.buf[(a.pos+i)%adaptiveNotchBufferLen]
	}

	bestLag := 0
	bestCorr := 0.0
	for lag := 1; lag <= adaptiveNotchMaxLag; lag++ {
		var corr float64
		for i := lag; i < adaptiveNotchBufferLen; i++ {
			corr += w[i] * w[i-lag]
		}
		corr /= float64(adaptiveNotchBufferLen - lag)
		if corr > bestCorr {
			bestCorr = corr
			bestLag = lag
		}
	}

	if bestLag == 0 {
		return 0
	}
	return a.sampleRate / float64(bestLag)
}

func (a *AdaptiveNotch) clampTarget() {
	nyquist := a.sampleRate / 2
	if a.target >= nyquist {
		a.target = nyquist * 0.99
	}
	if a.target < 1 {
		a.target = 1
	}
}

// TargetFrequency returns the current notch centre frequency in Hz.
func (a *AdaptiveNotch) TargetFrequency() float64 {
	return a.target
}

// Reset zeroes the estimation buffer and the notch state. The learned target
// frequency is kept; switching recordings on the same hardware usually means
// the same interferer.
func (a *AdaptiveNotch) Reset() {
	a.buf = [adaptiveNotchBufferLen]float64{}
	a.pos = 0
	a.filled = 0
	a.since = 0
	a.notch.Reset()
}
