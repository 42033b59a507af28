package filter

import "math"

// LocalThresholdDenoiser is a batch local-statistics smoother: each interior
// sample is compared against the mean and standard deviation of a symmetric
// window around it, and the centred value is soft-thresholded. Despite its
// lineage this is not a wavelet transform; it is named for what it actually
// does.
type LocalThresholdDenoiser struct {
	threshold float64 // multiple of the local standard deviation
	window    int     // symmetric window length, typically 8
}

// NewLocalThresholdDenoiser creates a denoiser. Window sizes below 2 are
// clamped to 2.
func NewLocalThresholdDenoiser(threshold float64, windowSize int) *LocalThresholdDenoiser {
	if windowSize < 2 {
		windowSize = 2
	}
	return &LocalThresholdDenoiser{threshold: threshold, window: windowSize}
}

// Denoise returns a new slice of the same length. Interior samples become
// the local mean when the centred value is within threshold*std, otherwise
// mean + sign(x-mean)*(|x-mean| - threshold*std) (soft thresholding). Edge
// samples within half a window of either boundary pass through unmodified
// because no full window exists there.
func (d *LocalThresholdDenoiser) Denoise(samples []float64) []float64 {
	out := make([]float64, len(samples))
	copy(out, samples)

	half := d.window / 2
	for i := half; i < len(samples)-half; i++ {
		mean, std := localStats(samples[i-half : i+half+1])

		centred := samples[i] - mean
		limit := d.threshold * std
		if math.Abs(centred) > limit {
			out[i] = mean + math.Copysign(math.Abs(centred)-limit, centred)
		} else {
			out[i] = mean
		}
	}

	return out
}

// localStats returns the mean and population standard deviation of a window.
func localStats(w []float64) (mean, std float64) {
	for _, v := range w {
		mean += v
	}
	mean /= float64(len(w))

	var variance float64
	for _, v := range w {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(w))

	return mean, math.Sqrt(variance)
}
