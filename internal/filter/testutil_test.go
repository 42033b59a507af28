package filter

import (
	"math"
	"testing"
)

// sine generates n samples of a sine tone at freq Hz sampled at rate Hz.
func sine(freq, rate float64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2.0*math.Pi*freq*float64(i)/rate)
	}
	return out
}

// rms computes the root-mean-square level of a slice.
func rms(samples []float64) float64 {
	var sum float64
	for _, v := range samples {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// toneGain runs a tone through a streaming stage, discards the first settle
// samples, and returns output RMS over input RMS for the remainder.
func toneGain(t *testing.T, process func(float64) float64, freq, rate float64, settle, measure int) float64 {
	t.Helper()

	input := sine(freq, rate, 1.0, settle+measure)
	output := make([]float64, len(input))
	for i, v := range input {
		output[i] = process(v)
	}

	inRMS := rms(input[settle:])
	if inRMS == 0 {
		t.Fatal("input RMS is zero")
	}
	return rms(output[settle:]) / inRMS
}
