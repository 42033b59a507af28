package filter

import "math"

// Spike detector window sizes.
const (
	spikeBufferLen = 32 // rolling history length
	spikeStatsLen  = 16 // trailing samples used for the adaptive threshold
)

// Spike is one detection result.
type Spike struct {
	Detected  bool
	Amplitude float64 // |sample - trailing mean| at the detection instant
}

// SpikeDetector finds transient discharges using an adaptive threshold:
// a spike is a sample deviating from the trailing mean by more than
// k standard deviations, provided the refractory period since the previous
// spike has elapsed. The refractory period suppresses re-triggering on the
// falling edge of the same event.
type SpikeDetector struct {
	k          float64
	refractory int // samples
	buf        [spikeBufferLen]float64
	pos        int
	filled     int
	sinceSpike int
}

// NewSpikeDetector creates a detector. k scales the adaptive threshold;
// refractoryMs is converted to samples at the given rate.
func NewSpikeDetector(k, refractoryMs, sampleRate float64) *SpikeDetector {
	sd := &SpikeDetector{
		k:          k,
		refractory: int(refractoryMs * sampleRate / 1000.0),
	}
	sd.sinceSpike = sd.refractory // allow detection from the first sample
	return sd
}

// Process pushes one sample and reports whether it is a spike.
func (sd *SpikeDetector) Process(v float64) Spike {
	sd.buf[sd.pos] = v
	sd.pos = (sd.pos + 1) % spikeBufferLen
	if sd.filled < spikeBufferLen {
		sd.filled++
	}
	sd.sinceSpike++

	if sd.filled < spikeStatsLen+1 {
		return Spike{}
	}

	mean, std := sd.trailingStats()
	amplitude := math.Abs(v - mean)

	if amplitude > sd.k*std && sd.sinceSpike > sd.refractory {
		sd.sinceSpike = 0
		return Spike{Detected: true, Amplitude: amplitude}
	}
	return Spike{Amplitude: amplitude}
}

// trailingStats computes mean and population standard deviation over the
// spikeStatsLen most recent samples, excluding the one just pushed.
func (sd *SpikeDetector) trailingStats() (mean, std float64) {
	for i := 2; i <= spikeStatsLen+1; i++ {
		mean += sd.buf[(sd.pos-i+2*spikeBufferLen)%spikeBufferLen]
	}
	mean /= spikeStatsLen

	var variance float64
	for i := 2; i <= spikeStatsLen+1; i++ {
		d := sd.buf[(sd.pos-i+2*spikeBufferLen)%spikeBufferLen] - mean
		variance += d * d
	}
	variance /= spikeStatsLen

	return mean, math.Sqrt(variance)
}

// Reset clears the history and re-arms detection immediately.
func (sd *SpikeDetector) Reset() {
	sd.buf = [spikeBufferLen]float64{}
	sd.pos = 0
	sd.filled = 0
	sd.sinceSpike = sd.refractory
}
