package pipeline

import (
	"github.com/neurofield/eegproc/internal/filter"
)

// Stage is one element of a processing chain: a stateful single-sample
// transform that can be zeroed without reconstruction.
type Stage interface {
	Process(sample float64) float64
	Reset()
}

// Chain is a stateful per-channel processing pipeline built once from a
// Config. Stage order is fixed and matters:
//
//  1. DC blocker — remove electrode offset before anything else sees it
//  2. power-line notch bank — mains hum rejection on the centred signal
//  3. primary filter selected by Type
//  4. artifact suppression — last, so it judges the cleaned signal
//
// A Chain owns its stages exclusively. One chain per logical channel; it is
// not safe for concurrent use.
type Chain struct {
	stages []Stage
}

// NewChain validates the configuration and builds the stage list. Disabled
// optional stages are simply absent.
func NewChain(cfg Config) (*Chain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	var stages []Stage

	if cfg.EnableDCBlock {
		stages = append(stages, filter.NewDCBlocker(cfg.SamplingRate))
	}
	if cfg.EnablePowerLineRemoval {
		stages = append(stages, filter.NewPowerLineNotch(cfg.PowerLineFreqs, cfg.SamplingRate))
	}

	switch cfg.Type {
	case FilterLowpass:
		stages = append(stages, filter.NewMovingAverage(filter.WindowForCutoff(cfg.HighCutoff, cfg.SamplingRate)))
	case FilterHighpass:
		stages = append(stages, filter.NewFirstOrderHighPass(cfg.LowCutoff, cfg.SamplingRate))
	case FilterNotch:
		stages = append(stages, filter.NewNotch(cfg.NotchFreq, cfg.SamplingRate))
	case FilterBandpass, FilterAdvanced:
		stages = append(stages, filter.NewBandPass(cfg.LowCutoff, cfg.HighCutoff, cfg.SamplingRate))
	}

	if cfg.EnableArtifactRemoval {
		stages = append(stages, filter.NewArtifactSuppressor(
			cfg.ArtifactThreshold, defaultArtifactWindow, cfg.ArtifactPolicy))
	}

	return &Chain{stages: stages}, nil
}

// Process runs one sample through every stage in order.
func (c *Chain) Process(sample float64) float64 {
	for _, s := range c.stages {
		sample = s.Process(sample)
	}
	return sample
}

// ProcessBlock filters a batch into a new slice of the same length.
func (c *Chain) ProcessBlock(samples []float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = c.Process(s)
	}
	return out
}

// Reset zeroes every stage's internal state without reconstruction. Call
// when reusing a chain for a new recording on the same channel.
func (c *Chain) Reset() {
	for _, s := range c.stages {
		s.Reset()
	}
}

// StageCount returns the number of active stages.
func (c *Chain) StageCount() int {
	return len(c.stages)
}

// Apply is the stateless batch entry point: it builds fresh filter state
// from the configuration, runs the whole slice through in a single pass,
// and returns a new slice of the same length. Type "none" and empty input
// are identity. Bandpass runs as high-pass then low-pass per element — DC
// drift is removed before smoothing — with each section owning its own
// state.
func Apply(samples []float64, cfg Config) ([]float64, error) {
	if cfg.Type == "" || cfg.Type == FilterNone || len(samples) == 0 {
		out := make([]float64, len(samples))
		copy(out, samples)
		return out, nil
	}

	chain, err := NewChain(cfg)
	if err != nil {
		return nil, err
	}
	return chain.ProcessBlock(samples), nil
}
