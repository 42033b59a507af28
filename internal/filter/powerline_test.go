package filter

import "testing"

func TestPowerLineNotch(t *testing.T) {
	t.Run("attenuates both mains frequencies", func(t *testing.T) {
		rate := 500.0

		for _, freq := range []float64{50, 60} {
			pl := NewPowerLineNotch([]float64{50, 60}, rate)
			gain := toneGain(t, pl.Process, freq, rate, 2000, 1000)
			if gain > 0.1 {
				t.Errorf("%g Hz gain through 50+60 bank = %g, want < 0.1", freq, gain)
			}
		}
	})

	t.Run("passes EEG-band activity", func(t *testing.T) {
		pl := NewPowerLineNotch([]float64{50, 60}, 500)

		gain := toneGain(t, pl.Process, 10, 500, 2000, 1000)
		if gain < 0.8 || gain > 1.1 {
			t.Errorf("10 Hz gain through 50+60 bank = %g, want about 1.0", gain)
		}
	})

	t.Run("skips frequencies at or above Nyquist", func(t *testing.T) {
		pl := NewPowerLineNotch([]float64{50, 60, 150}, 250)

		got := pl.Frequencies()
		want := []float64{50, 60}
		if len(got) != len(want) {
			t.Fatalf("Frequencies() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Frequencies()[%d] = %g, want %g", i, got[i], want[i])
			}
		}
	})

	t.Run("skips non-positive frequencies", func(t *testing.T) {
		pl := NewPowerLineNotch([]float64{0, -50, 60}, 250)
		if got := len(pl.Frequencies()); got != 1 {
			t.Errorf("active stages = %d, want 1", got)
		}
	})
}
