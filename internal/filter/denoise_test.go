package filter

import (
	"math"
	"testing"
)

func TestLocalThresholdDenoiser(t *testing.T) {
	t.Run("preserves length", func(t *testing.T) {
		d := NewLocalThresholdDenoiser(1.0, 8)
		in := sine(10, 250, 50, 100)
		out := d.Denoise(in)
		if len(out) != len(in) {
			t.Fatalf("output length = %d, want %d", len(out), len(in))
		}
	})

	t.Run("edges pass through unmodified", func(t *testing.T) {
		d := NewLocalThresholdDenoiser(1.0, 8)
		in := sine(10, 250, 50, 100)
		out := d.Denoise(in)

		for i := 0; i < 4; i++ {
			if out[i] != in[i] {
				t.Errorf("leading edge sample %d modified: %g != %g", i, out[i], in[i])
			}
		}
		for i := len(in) - 4; i < len(in); i++ {
			if out[i] != in[i] {
				t.Errorf("trailing edge sample %d modified: %g != %g", i, out[i], in[i])
			}
		}
	})

	t.Run("shrinks an isolated outlier", func(t *testing.T) {
		d := NewLocalThresholdDenoiser(1.0, 8)
		in := make([]float64, 21)
		in[10] = 10

		out := d.Denoise(in)
		if math.Abs(out[10]) >= 10 {
			t.Errorf("outlier after denoising = %g, want shrunk below 10", out[10])
		}
	})

	t.Run("constant signal is unchanged", func(t *testing.T) {
		d := NewLocalThresholdDenoiser(1.0, 8)
		in := make([]float64, 30)
		for i := range in {
			in[i] = 7.0
		}

		out := d.Denoise(in)
		for i, v := range out {
			if math.Abs(v-7.0) > 1e-12 {
				t.Errorf("constant sample %d = %g, want 7.0", i, v)
			}
		}
	})

	t.Run("does not modify the input slice", func(t *testing.T) {
		d := NewLocalThresholdDenoiser(1.0, 8)
		in := make([]float64, 21)
		in[10] = 10

		d.Denoise(in)
		if in[10] != 10 {
			t.Error("Denoise must not write to its input")
		}
	})
}

func TestEMGEnvelope(t *testing.T) {
	t.Run("converges to the rectified mean of a tone", func(t *testing.T) {
		e := NewEMGEnvelope(3, 250)

		input := sine(20, 250, 1.0, 2000)
		output := make([]float64, len(input))
		for i, v := range input {
			output[i] = e.Process(v)
		}

		// Full-wave rectified sine averages 2/pi of the amplitude.
		var mean float64
		for _, v := range output[1500:] {
			mean += v
		}
		mean /= 500

		if mean < 0.4 || mean > 0.9 {
			t.Errorf("settled envelope = %g, want near 2/pi (%g)", mean, 2/math.Pi)
		}
	})

	t.Run("envelope is non-negative after settling", func(t *testing.T) {
		e := NewEMGEnvelope(3, 250)
		input := sine(20, 250, 1.0, 2000)
		for i, v := range input {
			y := e.Process(v)
			if i > 500 && y < -0.05 {
				t.Fatalf("envelope at sample %d = %g, want non-negative", i, y)
			}
		}
	})
}
