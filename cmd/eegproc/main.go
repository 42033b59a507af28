package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"

	"github.com/neurofield/eegproc/internal/chart"
	"github.com/neurofield/eegproc/internal/cli"
	"github.com/neurofield/eegproc/internal/edfio"
	"github.com/neurofield/eegproc/internal/mains"
	"github.com/neurofield/eegproc/internal/pipeline"
	"github.com/neurofield/eegproc/internal/quality"
	"github.com/neurofield/eegproc/internal/report"
)

var (
	version = "0.0.1"
)

// powerLineHarmonics is how many mains harmonics the notch bank covers when
// power-line removal is enabled.
const powerLineHarmonics = 3

// versionFlag prints the styled version banner and exits, like
// kong.VersionFlag but through the cli styles.
type versionFlag bool

func (versionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	cli.PrintVersion(vars["version"])
	app.Exit(0)
	return nil
}

// CLI defines the command-line interface
type CLI struct {
	Version versionFlag `short:"v" help:"Show version information"`
	Verbose bool        `help:"Enable debug logging"`

	Filter  FilterCmd  `cmd:"" help:"Filter an EDF recording and write the cleaned result"`
	Quality QualityCmd `cmd:"" help:"Assess signal quality of an EDF recording"`
	Presets PresetsCmd `cmd:"" help:"List the named filter presets"`
}

// FilterCmd runs a filter chain over every channel of a recording.
type FilterCmd struct {
	Input  string `arg:"" type:"existingfile" help:"Input EDF file"`
	Output string `short:"o" help:"Output EDF file (default: <input>-filtered.edf)"`
	Preset string `short:"p" default:"eeg-band" help:"Named filter preset"`
	Chart  string `help:"Write a raw-vs-filtered HTML chart to this path"`
}

func (c *FilterCmd) Run() error {
	rec, err := edfio.Read(c.Input)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"channels": len(rec.Channels),
		"rate":     rec.SampleRate,
		"duration": rec.Duration(),
	}).Debug("loaded recording")

	cfg, ok := pipeline.Presets(rec.SampleRate)[c.Preset]
	if !ok {
		return fmt.Errorf("unknown preset %q (run 'eegproc presets' for the list)", c.Preset)
	}

	// Power-line presets target the local mains fundamental and its
	// harmonics rather than the generic 50+60 pair.
	if cfg.EnablePowerLineRemoval {
		cfg.PowerLineFreqs = mains.NotchBank(mains.Fundamental(), powerLineHarmonics, rec.SampleRate)
		log.WithField("freqs", cfg.PowerLineFreqs).Debug("power-line notch bank")
	}

	before := make([]quality.Metrics, len(rec.Channels))
	after := make([]quality.Metrics, len(rec.Channels))
	filtered := make([][]float64, len(rec.Channels))
	for i, ch := range rec.Channels {
		before[i] = quality.Assess(ch)
		out, err := pipeline.Apply(ch, cfg)
		if err != nil {
			return fmt.Errorf("filtering channel %s: %w", rec.Labels[i], err)
		}
		filtered[i] = out
		after[i] = quality.Assess(out)
	}

	output := c.Output
	if output == "" {
		output = strings.TrimSuffix(c.Input, ".edf") + "-filtered.edf"
	}

	outRec := &edfio.Recording{
		PatientID:   rec.PatientID,
		RecordingID: rec.RecordingID,
		StartTime:   rec.StartTime,
		SampleRate:  rec.SampleRate,
		Labels:      rec.Labels,
		Channels:    filtered,
	}
	if err := edfio.Write(output, outRec, chainDescription(cfg)); err != nil {
		return err
	}

	if c.Chart != "" {
		if err := chart.WriteComparison(c.Chart, rec.Labels, rec.SampleRate, rec.Channels, filtered); err != nil {
			return err
		}
		log.WithField("path", c.Chart).Debug("wrote comparison chart")
	}

	report.DisplayFilterResults(os.Stdout, rec, report.FilterSummary{
		InputPath:  c.Input,
		OutputPath: output,
		Preset:     c.Preset,
		FilterDesc: chainDescription(cfg),
		Before:     before,
		After:      after,
	})
	return nil
}

// QualityCmd assesses every channel and prints the detailed report.
type QualityCmd struct {
	Input string `arg:"" type:"existingfile" help:"Input EDF file"`
}

func (c *QualityCmd) Run() error {
	rec, err := edfio.Read(c.Input)
	if err != nil {
		return err
	}

	results := make([]quality.DetailedMetrics, len(rec.Channels))
	for i, ch := range rec.Channels {
		results[i] = quality.AssessDetailed(ch, rec.SampleRate)
	}

	report.DisplayQuality(os.Stdout, c.Input, rec, results)
	return nil
}

// PresetsCmd lists the named presets with their parameters.
type PresetsCmd struct {
	Rate float64 `default:"250" help:"Sampling rate the presets are resolved against (Hz)"`
}

func (c *PresetsCmd) Run() error {
	presets := pipeline.Presets(c.Rate)
	for _, name := range pipeline.PresetNames() {
		cfg := presets[name]
		fmt.Printf("%s\n    %s\n",
			cli.KeyStyle.Render(name),
			cli.ValueStyle.Render(chainDescription(cfg)))
	}
	return nil
}

// chainDescription summarises a filter configuration for reports and the
// EDF prefiltering header field.
func chainDescription(cfg pipeline.Config) string {
	var parts []string
	if cfg.EnableDCBlock {
		parts = append(parts, "DC block")
	}
	if cfg.EnablePowerLineRemoval {
		parts = append(parts, "power-line notch")
	}
	switch cfg.Type {
	case pipeline.FilterLowpass:
		parts = append(parts, fmt.Sprintf("LP:%gHz", cfg.HighCutoff))
	case pipeline.FilterHighpass:
		parts = append(parts, fmt.Sprintf("HP:%gHz", cfg.LowCutoff))
	case pipeline.FilterBandpass, pipeline.FilterAdvanced:
		parts = append(parts, fmt.Sprintf("BP:%g-%gHz", cfg.LowCutoff, cfg.HighCutoff))
	case pipeline.FilterNotch:
		parts = append(parts, fmt.Sprintf("N:%gHz", cfg.NotchFreq))
	}
	if cfg.EnableArtifactRemoval {
		parts = append(parts, "artifact suppression")
	}
	if len(parts) == 0 {
		return "passthrough"
	}
	return strings.Join(parts, ", ")
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("eegproc"),
		kong.Description("EEG signal filtering and quality assessment"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)
	if cliArgs.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := ctx.Run(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
