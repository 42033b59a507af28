// Package pipeline assembles filter primitives into per-channel processing
// chains from a declarative configuration, and provides the named presets
// the recording front-ends key off.
package pipeline

import (
	"fmt"

	"github.com/neurofield/eegproc/internal/filter"
)

// FilterType selects the primary filter of a chain.
type FilterType string

// Primary filter types.
const (
	FilterNone     FilterType = "none"
	FilterLowpass  FilterType = "lowpass"
	FilterHighpass FilterType = "highpass"
	FilterBandpass FilterType = "bandpass"
	FilterNotch    FilterType = "notch"
	FilterAdvanced FilterType = "advanced" // bandpass plus all cleanup stages
)

// Default cutoff parameters applied when a Config leaves them unset.
// The 0.5-40 Hz band covers clinical EEG activity from delta through gamma.
const (
	DefaultLowCutoffHz  = 0.5
	DefaultHighCutoffHz = 30.0
	DefaultNotchFreqHz  = 50.0

	// DefaultArtifactThreshold assumes microvolt-scale input; genuine scalp
	// EEG stays well under 200 uV, so larger excursions are treated as
	// movement or contact artifacts.
	DefaultArtifactThreshold = 200.0

	defaultArtifactWindow = 10
)

// Config describes one channel's filter chain. The zero value of each cutoff
// field means "use the default"; SamplingRate is always required.
type Config struct {
	Type         FilterType
	LowCutoff    float64 // Hz, high-pass edge (bandpass/highpass)
	HighCutoff   float64 // Hz, low-pass edge (bandpass/lowpass)
	NotchFreq    float64 // Hz, notch centre (notch type)
	SamplingRate float64 // Hz, required, must be positive

	EnableDCBlock          bool
	EnableArtifactRemoval  bool
	EnablePowerLineRemoval bool

	// PowerLineFreqs overrides the notch bank used when power-line removal
	// is enabled. Empty means both common mains frequencies.
	PowerLineFreqs []float64

	// ArtifactPolicy selects the replacement strategy for flagged samples.
	ArtifactPolicy filter.ArtifactPolicy
	// ArtifactThreshold overrides the detection threshold; zero means the
	// microvolt-scale default.
	ArtifactThreshold float64
}

// withDefaults returns a copy with unset fields replaced by defaults.
func (c Config) withDefaults() Config {
	if c.Type == "" {
		c.Type = FilterNone
	}
	if c.LowCutoff == 0 {
		c.LowCutoff = DefaultLowCutoffHz
	}
	if c.HighCutoff == 0 {
		c.HighCutoff = DefaultHighCutoffHz
	}
	if c.NotchFreq == 0 {
		c.NotchFreq = DefaultNotchFreqHz
	}
	if len(c.PowerLineFreqs) == 0 {
		c.PowerLineFreqs = []float64{50, 60}
	}
	if c.ArtifactThreshold == 0 {
		c.ArtifactThreshold = DefaultArtifactThreshold
	}
	return c
}

// Validate rejects configurations that would produce nonsensical filter
// coefficients: a non-positive sampling rate, or any cutoff/notch frequency
// at or beyond Nyquist (half the sampling rate).
func (c Config) Validate() error {
	if c.SamplingRate <= 0 {
		return fmt.Errorf("sampling rate must be positive, got %g", c.SamplingRate)
	}

	switch c.Type {
	case "", FilterNone, FilterLowpass, FilterHighpass, FilterBandpass, FilterNotch, FilterAdvanced:
	default:
		return fmt.Errorf("unknown filter type %q", c.Type)
	}

	nyquist := c.SamplingRate / 2
	cfg := c.withDefaults()

	check := func(name string, freq float64) error {
		if freq <= 0 {
			return fmt.Errorf("%s must be positive, got %g", name, freq)
		}
		if freq >= nyquist {
			return fmt.Errorf("%s %g Hz is at or above Nyquist (%g Hz for rate %g)",
				name, freq, nyquist, c.SamplingRate)
		}
		return nil
	}

	switch cfg.Type {
	case FilterLowpass:
		return check("high cutoff", cfg.HighCutoff)
	case FilterHighpass:
		return check("low cutoff", cfg.LowCutoff)
	case FilterBandpass, FilterAdvanced:
		if err := check("low cutoff", cfg.LowCutoff); err != nil {
			return err
		}
		if err := check("high cutoff", cfg.HighCutoff); err != nil {
			return err
		}
		if cfg.LowCutoff >= cfg.HighCutoff {
			return fmt.Errorf("low cutoff %g Hz must be below high cutoff %g Hz",
				cfg.LowCutoff, cfg.HighCutoff)
		}
	case FilterNotch:
		return check("notch frequency", cfg.NotchFreq)
	}

	return nil
}
