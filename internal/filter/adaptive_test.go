package filter

import (
	"math"
	"testing"
)

func TestLMSFilter(t *testing.T) {
	t.Run("converges toward a correlated reference", func(t *testing.T) {
		f := NewLMSFilter(8, 0.01)

		input := sine(10, 250, 1.0, 2000)

		var earlyErr, lateErr float64
		for i, x := range input {
			ref := 0.5 * x
			out := f.Process(x, ref)
			e := math.Abs(ref - out)
			if i < 100 {
				earlyErr += e
			}
			if i >= len(input)-200 {
				lateErr += e
			}
		}
		earlyErr /= 100
		lateErr /= 200

		if lateErr >= earlyErr/5 {
			t.Errorf("late error %g not well below early error %g", lateErr, earlyErr)
		}
	})

	t.Run("order below one is clamped", func(t *testing.T) {
		f := NewLMSFilter(0, 0.01)
		if got := len(f.Coefficients()); got != 1 {
			t.Errorf("coefficient count = %d, want 1", got)
		}
	})

	t.Run("reset clears learned coefficients", func(t *testing.T) {
		f := NewLMSFilter(4, 0.1)
		for i := 0; i < 100; i++ {
			f.Process(1.0, 0.5)
		}
		f.Reset()
		for _, c := range f.Coefficients() {
			if c != 0 {
				t.Fatalf("coefficient after Reset = %g, want 0", c)
			}
		}
	})
}

func TestAdaptiveNotch(t *testing.T) {
	t.Run("tracks a periodic interferer", func(t *testing.T) {
		// 10 Hz at 200 Hz sampling puts the fundamental at lag 20, the only
		// multiple of the period within the tested lag range.
		a := NewAdaptiveNotch(20, 200)

		for _, v := range sine(10, 200, 1.0, 4000) {
			a.Process(v)
		}

		if got := a.TargetFrequency(); math.Abs(got-10) > 1.5 {
			t.Errorf("TargetFrequency() = %g, want near 10", got)
		}
	})

	t.Run("attenuates the tracked interferer", func(t *testing.T) {
		a := NewAdaptiveNotch(20, 200)

		input := sine(10, 200, 1.0, 6000)
		output := make([]float64, len(input))
		for i, v := range input {
			output[i] = a.Process(v)
		}

		tail := 1000
		ratio := rms(output[len(output)-tail:]) / rms(input[len(input)-tail:])
		if ratio > 0.3 {
			t.Errorf("tracked tone residual = %g of input, want < 0.3", ratio)
		}
	})

	t.Run("reset keeps the learned target", func(t *testing.T) {
		a := NewAdaptiveNotch(20, 200)
		for _, v := range sine(10, 200, 1.0, 4000) {
			a.Process(v)
		}

		learned := a.TargetFrequency()
		a.Reset()
		if got := a.TargetFrequency(); got != learned {
			t.Errorf("TargetFrequency() after Reset = %g, want %g", got, learned)
		}
	})

	t.Run("target stays below Nyquist", func(t *testing.T) {
		a := NewAdaptiveNotch(500, 200)
		for _, v := range sine(10, 200, 1.0, 1000) {
			a.Process(v)
		}
		if got := a.TargetFrequency(); got >= 100 {
			t.Errorf("TargetFrequency() = %g, want below Nyquist (100)", got)
		}
	})
}
