package filter

import (
	"math"
	"testing"
)

func TestMovingAverage(t *testing.T) {
	t.Run("impulse response is 1/window for window samples", func(t *testing.T) {
		m := NewMovingAverage(5)

		got := []float64{m.Process(1)}
		for i := 0; i < 7; i++ {
			got = append(got, m.Process(0))
		}

		want := []float64{0.2, 0.2, 0.2, 0.2, 0.2, 0, 0, 0}
		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-12 {
				t.Errorf("impulse output[%d] = %g, want %g", i, got[i], want[i])
			}
		}
	})

	t.Run("constant input converges to the constant", func(t *testing.T) {
		m := NewMovingAverage(8)

		var y float64
		for i := 0; i < 8; i++ {
			y = m.Process(3.0)
		}
		if math.Abs(y-3.0) > 1e-12 {
			t.Errorf("filled-window output = %g, want 3.0", y)
		}
	})

	t.Run("window below one is clamped to passthrough", func(t *testing.T) {
		m := NewMovingAverage(0)
		if m.WindowSize() != 1 {
			t.Fatalf("WindowSize() = %d, want 1", m.WindowSize())
		}
		if y := m.Process(7.5); y != 7.5 {
			t.Errorf("passthrough output = %g, want 7.5", y)
		}
	})

	t.Run("window derived from cutoff", func(t *testing.T) {
		tests := []struct {
			cutoff float64
			rate   float64
			want   int
		}{
			{30, 250, 4},
			{40, 250, 3},
			{0.1, 250, 1250},
			{200, 250, 1}, // clamps at 1
			{0, 250, 1},   // invalid cutoff clamps at 1
		}
		for _, tt := range tests {
			if got := WindowForCutoff(tt.cutoff, tt.rate); got != tt.want {
				t.Errorf("WindowForCutoff(%g, %g) = %d, want %d", tt.cutoff, tt.rate, got, tt.want)
			}
		}
	})

	t.Run("reset clears the window", func(t *testing.T) {
		m := NewMovingAverage(4)
		for i := 0; i < 4; i++ {
			m.Process(10)
		}
		m.Reset()
		if y := m.Process(4); math.Abs(y-1.0) > 1e-12 {
			t.Errorf("output after Reset = %g, want 1.0", y)
		}
	})
}
