package quality

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// Detailed assessment constants.
const (
	// MinDetailedSamples is the smallest window AssessDetailed will score.
	// Below this the spectral estimates are too coarse to be meaningful.
	MinDetailedSamples = 100

	// severeArtifactSigma flags gross excursions relative to the window's
	// own spread, independent of the absolute microvolt threshold.
	severeArtifactSigma = 5.0
)

// Band is a named EEG frequency band with edges in Hz.
type Band struct {
	Name string
	Low  float64
	High float64
}

// Clinical EEG bands. Gamma is capped at 45 Hz so a 50 Hz mains residue
// never inflates it.
var eegBands = []Band{
	{Name: "delta", Low: 0.5, High: 4},
	{Name: "theta", Low: 4, High: 8},
	{Name: "alpha", Low: 8, High: 13},
	{Name: "beta", Low: 13, High: 30},
	{Name: "gamma", Low: 30, High: 45},
}

// DetailedMetrics extends the basic summary with spectral and temporal
// measures suitable for clinical review screens.
type DetailedMetrics struct {
	Metrics

	// PowerLineLevel is the fraction of total spectral power found within
	// 1 Hz of the 50 and 60 Hz mains fundamentals, 0..1.
	PowerLineLevel float64

	// Stability measures how evenly variance is distributed across the
	// window, 1 meaning perfectly stationary, approaching 0 for bursty or
	// drifting signals.
	Stability float64

	// SevereArtifactRatio is the fraction of samples beyond
	// severeArtifactSigma standard deviations of the window mean.
	SevereArtifactRatio float64

	// BandPowers holds relative power per clinical band, keyed by band
	// name, each 0..1 of total in-band power.
	BandPowers map[string]float64

	// Recommendation is a short human-readable suggestion for improving
	// the signal, empty when the rating is good or better.
	Recommendation string
}

// AssessDetailed scores a window with the full 5-level scale. Windows
// shorter than MinDetailedSamples return the fixed unusable sentinel.
// sampleRate must be positive; it anchors the spectral band edges.
func AssessDetailed(samples []float64, sampleRate float64) DetailedMetrics {
	if len(samples) < MinDetailedSamples || sampleRate <= 0 {
		return DetailedMetrics{
			Metrics:        Metrics{SNR: 0, ArtifactRatio: 1, Rating: RatingUnusable},
			Recommendation: "record a longer window before assessing",
		}
	}

	basic := Assess(samples)

	spectrum := powerSpectrum(samples)
	binHz := sampleRate / float64(len(samples))

	dm := DetailedMetrics{
		Metrics:             basic,
		PowerLineLevel:      powerLineLevel(spectrum, binHz),
		Stability:           stability(samples),
		SevereArtifactRatio: severeArtifactRatio(samples),
		BandPowers:          bandPowers(spectrum, binHz),
	}
	dm.Rating = rateDetailed(dm)
	dm.Recommendation = recommend(dm)
	return dm
}

// rateDetailed maps the combined measures onto the 5-level scale. The
// detailed scale is stricter than the basic one: mains contamination and
// severe excursions demote a window even when SNR alone looks fine.
func rateDetailed(dm DetailedMetrics) Rating {
	switch {
	case dm.SNR > 10 && dm.ArtifactRatio < 0.02 && dm.PowerLineLevel < 0.3:
		return RatingExcellent
	case dm.SNR > 5 && dm.ArtifactRatio < 0.05 && dm.PowerLineLevel < 0.5:
		return RatingGood
	case dm.SNR > 2 && dm.ArtifactRatio < 0.1:
		return RatingFair
	case dm.SNR > 1:
		return RatingPoor
	default:
		return RatingUnusable
	}
}

// recommend picks the most actionable complaint for sub-good windows.
func recommend(dm DetailedMetrics) string {
	if dm.Rating == RatingExcellent || dm.Rating == RatingGood {
		return ""
	}
	switch {
	case dm.PowerLineLevel >= 0.5:
		return "strong mains interference: enable power-line notch filtering or move away from AC sources"
	case dm.SevereArtifactRatio >= 0.05 || dm.ArtifactRatio >= 0.1:
		return "frequent artifacts: check electrode contact and ask the subject to stay still"
	case dm.Stability < 0.5:
		return "unstable baseline: re-gel electrodes and wait for the signal to settle"
	default:
		return "low signal-to-noise: check impedances and shielding"
	}
}

// powerSpectrum returns |FFT|^2 for the positive-frequency half of the
// window, DC bin included.
func powerSpectrum(samples []float64) []float64 {
	coeffs := fft.FFTReal(samples)
	half := len(samples)/2 + 1
	spectrum := make([]float64, half)
	for i := 0; i < half; i++ {
		re := real(coeffs[i])
		im := imag(coeffs[i])
		spectrum[i] = re*re + im*im
	}
	return spectrum
}

// powerLineLevel sums spectral power within 1 Hz of each mains fundamental
// and divides by total non-DC power.
func powerLineLevel(spectrum []float64, binHz float64) float64 {
	var total, mains float64
	for i := 1; i < len(spectrum); i++ {
		freq := float64(i) * binHz
		total += spectrum[i]
		if math.Abs(freq-50) <= 1 || math.Abs(freq-60) <= 1 {
			mains += spectrum[i]
		}
	}
	if total == 0 {
		return 0
	}
	return mains / total
}

// bandPowers returns each clinical band's share of total in-band power.
func bandPowers(spectrum []float64, binHz float64) map[string]float64 {
	powers := make(map[string]float64, len(eegBands))
	var total float64
	for _, b := range eegBands {
		var p float64
		for i := 1; i < len(spectrum); i++ {
			freq := float64(i) * binHz
			if freq >= b.Low && freq < b.High {
				p += spectrum[i]
			}
		}
		powers[b.Name] = p
		total += p
	}
	if total > 0 {
		for name := range powers {
			powers[name] /= total
		}
	}
	return powers
}

// stability splits the window into eight segments and compares the spread
// of per-segment variances to the overall variance. A stationary signal
// has near-equal segment variances and scores close to 1.
func stability(samples []float64) float64 {
	const segments = 8
	segLen := len(samples) / segments
	if segLen < 2 {
		return 1
	}

	vars := make([]float64, segments)
	for s := 0; s < segments; s++ {
		seg := samples[s*segLen : (s+1)*segLen]
		sd := stdDev(seg)
		vars[s] = sd * sd
	}

	total := stdDev(samples)
	totalVar := total * total
	if totalVar == 0 {
		return 1
	}

	spread := stdDev(vars)
	return clamp01(1 / (1 + spread/totalVar))
}

// severeArtifactRatio counts samples beyond severeArtifactSigma standard
// deviations of the window mean.
func severeArtifactRatio(samples []float64) float64 {
	m := mean(samples)
	sd := stdDev(samples)
	if sd == 0 {
		return 0
	}
	limit := severeArtifactSigma * sd
	n := 0
	for _, v := range samples {
		if math.Abs(v-m) > limit {
			n++
		}
	}
	return float64(n) / float64(len(samples))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
