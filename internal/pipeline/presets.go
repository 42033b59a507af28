package pipeline

// Preset names. Front-ends key off these exact strings; do not rename.
const (
	PresetNone          = "none"
	PresetLowNoise      = "low-noise"
	PresetDCRemove      = "dc-remove"
	PresetEEGBand       = "eeg-band"
	PresetNotch50       = "notch-50hz"
	PresetNotch60       = "notch-60hz"
	PresetAdvancedClean = "advanced-clean"
)

// Presets returns the named filter configurations parameterized only by the
// sampling rate. Cutoff values and field shapes are part of the contract
// with consuming front-ends and test fixtures.
func Presets(sampleRate float64) map[string]Config {
	return map[string]Config{
		PresetNone: {
			Type:         FilterNone,
			SamplingRate: sampleRate,
		},
		PresetLowNoise: {
			Type:         FilterLowpass,
			HighCutoff:   40,
			SamplingRate: sampleRate,
		},
		PresetDCRemove: {
			Type:         FilterHighpass,
			LowCutoff:    0.5,
			SamplingRate: sampleRate,
		},
		PresetEEGBand: {
			Type:         FilterBandpass,
			LowCutoff:    0.5,
			HighCutoff:   40,
			SamplingRate: sampleRate,
		},
		PresetNotch50: {
			Type:         FilterNotch,
			NotchFreq:    50,
			SamplingRate: sampleRate,
		},
		PresetNotch60: {
			Type:         FilterNotch,
			NotchFreq:    60,
			SamplingRate: sampleRate,
		},
		PresetAdvancedClean: {
			Type:                   FilterAdvanced,
			LowCutoff:              0.5,
			HighCutoff:             40,
			SamplingRate:           sampleRate,
			EnableDCBlock:          true,
			EnableArtifactRemoval:  true,
			EnablePowerLineRemoval: true,
		},
	}
}

// PresetNames returns the preset names in a stable display order.
func PresetNames() []string {
	return []string{
		PresetNone,
		PresetLowNoise,
		PresetDCRemove,
		PresetEEGBand,
		PresetNotch50,
		PresetNotch60,
		PresetAdvancedClean,
	}
}
