package filter

import "math"

// ArtifactPolicy selects how a flagged artifact sample is replaced in the
// output stream.
type ArtifactPolicy int

const (
	// PolicyZero replaces the artifact sample with zero.
	PolicyZero ArtifactPolicy = iota
	// PolicyHold repeats the last clean sample.
	PolicyHold
	// PolicyInterpolate moves halfway from the last clean sample toward the
	// raw input, ramping back to the signal over consecutive artifacts.
	PolicyInterpolate
)

// String returns the policy name used in CLI flags and reports.
func (p ArtifactPolicy) String() string {
	switch p {
	case PolicyHold:
		return "hold"
	case PolicyInterpolate:
		return "interpolate"
	default:
		return "zero"
	}
}

// ArtifactDetector flags large-amplitude excursions attributable to
// movement, electrode pops, or amplifier saturation rather than brain
// activity. A sample is an artifact when the jump between the two most
// recent magnitudes exceeds the threshold, or when the sample itself
// exceeds twice the threshold (saturation).
type ArtifactDetector struct {
	threshold float64
	window    []float64 // last windowSize absolute magnitudes
}

// NewArtifactDetector creates a detector. threshold is an absolute amplitude
// in the caller's units (microvolts for typical EEG input).
func NewArtifactDetector(threshold float64, windowSize int) *ArtifactDetector {
	if windowSize < 2 {
		windowSize = 2
	}
	return &ArtifactDetector{
		threshold: threshold,
		window:    make([]float64, 0, windowSize),
	}
}

// Detect records the sample's magnitude and reports whether it is an
// artifact. Detection only; the caller decides remediation.
func (d *ArtifactDetector) Detect(v float64) bool {
	mag := math.Abs(v)
	if len(d.window) == cap(d.window) {
		copy(d.window, d.window[1:])
		d.window[len(d.window)-1] = mag
	} else {
		d.window = append(d.window, mag)
	}

	if mag > 2*d.threshold {
		return true // saturation
	}
	if n := len(d.window); n >= 2 {
		if math.Abs(d.window[n-1]-d.window[n-2]) > d.threshold {
			return true
		}
	}
	return false
}

// Reset clears the magnitude history.
func (d *ArtifactDetector) Reset() {
	d.window = d.window[:0]
}

// ArtifactSuppressor pairs a detector with a replacement policy so it can
// sit as the final stage of a filter chain: clean samples pass through and
// update the last-good value, flagged samples are replaced per the policy.
type ArtifactSuppressor struct {
	detector *ArtifactDetector
	policy   ArtifactPolicy
	lastGood float64
}

// NewArtifactSuppressor creates a suppressor with the given detector
// settings and replacement policy.
func NewArtifactSuppressor(threshold float64, windowSize int, policy ArtifactPolicy) *ArtifactSuppressor {
	return &ArtifactSuppressor{
		detector: NewArtifactDetector(threshold, windowSize),
		policy:   policy,
	}
}

// Process returns the sample unchanged when clean, or the policy replacement
// when flagged as an artifact.
func (s *ArtifactSuppressor) Process(v float64) float64 {
	if !s.detector.Detect(v) {
		s.lastGood = v
		return v
	}

	switch s.policy {
	case PolicyHold:
		return s.lastGood
	case PolicyInterpolate:
		s.lastGood += 0.5 * (v - s.lastGood)
		return s.lastGood
	default:
		return 0
	}
}

// Reset clears the detector history and the held sample.
func (s *ArtifactSuppressor) Reset() {
	s.detector.Reset()
	s.lastGood = 0
}
