// Package quality scores finite windows of EEG samples: signal-to-noise,
// artifact load, power-line interference, stability, and a categorical
// rating front-ends can display directly. All functions are pure; no state
// is carried between windows.
package quality

import "math"

// Rating is the ordered categorical quality label.
type Rating string

// Ratings from worst to best.
const (
	RatingUnusable  Rating = "unusable"
	RatingPoor      Rating = "poor"
	RatingFair      Rating = "fair"
	RatingGood      Rating = "good"
	RatingExcellent Rating = "excellent"
)

// Assessment thresholds and constants.
const (
	// MinSamples is the smallest window Assess will score; shorter windows
	// yield the fixed poor sentinel.
	MinSamples = 10

	// ArtifactAmplitude is the absolute magnitude beyond which a sample
	// counts as an artifact. Assumes microvolt-scale input: genuine scalp
	// EEG stays well below 200 uV.
	ArtifactAmplitude = 200.0

	// noiseEpsilon guards the SNR division when the first-difference noise
	// estimate is zero (e.g. a constant input).
	noiseEpsilon = 0.001
)

// Metrics is the basic quality summary for one window of samples.
type Metrics struct {
	SNR           float64 // signal std over first-difference RMS (ratio, not dB)
	ArtifactRatio float64 // fraction of samples beyond ArtifactAmplitude, 0..1
	Rating        Rating
}

// Assess scores a window of raw samples. Windows shorter than MinSamples
// return the fixed degraded sentinel {SNR 0, ArtifactRatio 1, poor} rather
// than an error.
//
// SNR approximates signal power as the population standard deviation of the
// window and noise power as the RMS of first differences, so slow
// high-amplitude activity scores high and sample-to-sample jitter scores
// low.
func Assess(samples []float64) Metrics {
	if len(samples) < MinSamples {
		return Metrics{SNR: 0, ArtifactRatio: 1, Rating: RatingPoor}
	}

	snr := stdDev(samples) / (firstDiffRMS(samples) + noiseEpsilon)

	artifacts := 0
	for _, v := range samples {
		if math.Abs(v) > ArtifactAmplitude {
			artifacts++
		}
	}
	ratio := float64(artifacts) / float64(len(samples))

	return Metrics{
		SNR:           snr,
		ArtifactRatio: ratio,
		Rating:        rate(snr, ratio),
	}
}

// rate maps SNR and artifact ratio to the 4-level scale. The threshold
// tuples are part of the contract with consuming front-ends.
func rate(snr, artifactRatio float64) Rating {
	switch {
	case snr > 10 && artifactRatio < 0.05:
		return RatingExcellent
	case snr > 5 && artifactRatio < 0.1:
		return RatingGood
	case snr > 2 && artifactRatio < 0.2:
		return RatingFair
	default:
		return RatingPoor
	}
}

// mean returns the arithmetic mean.
func mean(samples []float64) float64 {
	var sum float64
	for _, v := range samples {
		sum += v
	}
	return sum / float64(len(samples))
}

// stdDev returns the population standard deviation.
func stdDev(samples []float64) float64 {
	m := mean(samples)
	var variance float64
	for _, v := range samples {
		variance += (v - m) * (v - m)
	}
	return math.Sqrt(variance / float64(len(samples)))
}

// firstDiffRMS returns sqrt(mean((x[i]-x[i-1])^2)), the noise estimate.
func firstDiffRMS(samples []float64) float64 {
	var sum float64
	for i := 1; i < len(samples); i++ {
		d := samples[i] - samples[i-1]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(samples)-1))
}
