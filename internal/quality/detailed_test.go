package quality

import (
	"math"
	"testing"
)

func TestAssessDetailed(t *testing.T) {
	t.Run("short window returns the unusable sentinel", func(t *testing.T) {
		m := AssessDetailed(make([]float64, MinDetailedSamples-1), 250)
		if m.Rating != RatingUnusable {
			t.Errorf("Rating = %s, want unusable", m.Rating)
		}
		if m.Recommendation == "" {
			t.Error("sentinel should carry a recommendation")
		}
	})

	t.Run("non-positive rate returns the unusable sentinel", func(t *testing.T) {
		m := AssessDetailed(make([]float64, 500), 0)
		if m.Rating != RatingUnusable {
			t.Errorf("Rating = %s, want unusable", m.Rating)
		}
	})

	t.Run("alpha tone dominates the alpha band", func(t *testing.T) {
		m := AssessDetailed(sine(10, 250, 50, 500), 250)

		alpha := m.BandPowers["alpha"]
		for band, power := range m.BandPowers {
			if band == "alpha" {
				continue
			}
			if power >= alpha {
				t.Errorf("band %s power %g >= alpha power %g", band, power, alpha)
			}
		}
	})

	t.Run("band powers are normalised", func(t *testing.T) {
		m := AssessDetailed(sine(10, 250, 50, 500), 250)

		var total float64
		for _, p := range m.BandPowers {
			total += p
		}
		if math.Abs(total-1) > 1e-9 {
			t.Errorf("band powers sum to %g, want 1", total)
		}
		if len(m.BandPowers) != 5 {
			t.Errorf("got %d bands, want 5", len(m.BandPowers))
		}
	})

	t.Run("mains tone drives the power-line level up", func(t *testing.T) {
		contaminated := AssessDetailed(sine(50, 250, 50, 500), 250)
		clean := AssessDetailed(sine(10, 250, 50, 500), 250)

		if contaminated.PowerLineLevel < 0.9 {
			t.Errorf("pure 50 Hz PowerLineLevel = %g, want near 1", contaminated.PowerLineLevel)
		}
		if clean.PowerLineLevel > 0.1 {
			t.Errorf("10 Hz PowerLineLevel = %g, want near 0", clean.PowerLineLevel)
		}
	})

	t.Run("mains contamination demotes the rating", func(t *testing.T) {
		m := AssessDetailed(sine(50, 250, 50, 500), 250)
		if m.Rating == RatingExcellent || m.Rating == RatingGood {
			t.Errorf("Rating = %s for mains-dominated input, want fair or worse", m.Rating)
		}
		if m.Recommendation == "" {
			t.Error("mains-dominated input should get a recommendation")
		}
	})

	t.Run("stationary tone is stable", func(t *testing.T) {
		m := AssessDetailed(sine(10, 250, 100, 500), 250)
		if m.Stability < 0.8 {
			t.Errorf("Stability = %g for a stationary tone, want > 0.8", m.Stability)
		}
	})

	t.Run("single burst lowers stability", func(t *testing.T) {
		samples := make([]float64, 800)
		burst := sine(10, 250, 100, 100)
		copy(samples[700:], burst)

		m := AssessDetailed(samples, 250)
		if m.Stability > 0.5 {
			t.Errorf("Stability = %g for a bursty signal, want <= 0.5", m.Stability)
		}
	})

	t.Run("clean slow tone rates excellent", func(t *testing.T) {
		m := AssessDetailed(sine(2, 250, 100, 1000), 250)
		if m.Rating != RatingExcellent {
			t.Errorf("Rating = %s (SNR %g, mains %g), want excellent",
				m.Rating, m.SNR, m.PowerLineLevel)
		}
		if m.Recommendation != "" {
			t.Errorf("Recommendation = %q, want empty for excellent", m.Recommendation)
		}
	})
}
