// Package report renders console reports for processed EEG recordings.
// This file provides the quality assessment and filtering summaries.

package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/neurofield/eegproc/internal/edfio"
	"github.com/neurofield/eegproc/internal/quality"
)

// ============================================================================
// Metric Interpretation Functions
// ============================================================================
// These functions interpret quality measurements and return human-readable
// descriptions of signal characteristics for clinical review.

// interpretSNR describes signal clarity from the std/first-difference ratio.
// Clean resting EEG typically scores well above 10; electrode problems or
// broadband noise push it toward 1.
func interpretSNR(snr float64) string {
	switch {
	case snr > 20:
		return "very clean, minimal broadband noise"
	case snr > 10:
		return "clean, suitable for clinical review"
	case snr > 5:
		return "usable, some high-frequency noise"
	case snr > 2:
		return "noisy, check electrode impedances"
	default:
		return "noise-dominated, likely poor contact"
	}
}

// interpretArtifactRatio describes artifact contamination.
func interpretArtifactRatio(ratio float64) string {
	switch {
	case ratio == 0:
		return "no large excursions"
	case ratio < 0.05:
		return "occasional artifacts, trimmable"
	case ratio < 0.2:
		return "frequent artifacts, review electrode contact"
	default:
		return "heavily contaminated"
	}
}

// interpretPowerLine describes mains interference load.
func interpretPowerLine(level float64) string {
	switch {
	case level < 0.1:
		return "negligible mains pickup"
	case level < 0.3:
		return "moderate mains pickup, notch recommended"
	default:
		return "strong mains pickup, notch required"
	}
}

// interpretStability describes baseline stationarity.
// Drifting or bursty signals indicate movement or drying electrode gel.
func interpretStability(stability float64) string {
	switch {
	case stability > 0.8:
		return "stationary baseline"
	case stability > 0.5:
		return "mild drift or bursts"
	default:
		return "unstable, re-gel electrodes"
	}
}

// interpretDominantBand names the clinical state usually associated with the
// band holding the most relative power.
func interpretDominantBand(band string) string {
	switch band {
	case "delta":
		return "deep sleep or pathology range"
	case "theta":
		return "drowsiness or light sleep range"
	case "alpha":
		return "relaxed wakefulness range"
	case "beta":
		return "active concentration range"
	case "gamma":
		return "high-frequency activity, verify not EMG"
	default:
		return ""
	}
}

// ============================================================================
// Console Reports
// ============================================================================

// DisplayQuality writes the per-channel quality assessment to the console.
func DisplayQuality(w io.Writer, inputPath string, rec *edfio.Recording, results []quality.DetailedMetrics) {
	// Header
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintf(w, "QUALITY: %s\n", filepath.Base(inputPath))
	fmt.Fprintln(w, strings.Repeat("=", 70))

	// File info
	fmt.Fprintf(w, "Duration:    %s\n", formatDurationHMS(rec.Duration()))
	fmt.Fprintf(w, "Sample Rate: %g Hz\n", rec.SampleRate)
	fmt.Fprintf(w, "Channels:    %d\n", len(rec.Channels))
	fmt.Fprintln(w)

	// Ratings section
	writeSection(w, "RATINGS")
	for i, label := range rec.Labels {
		fmt.Fprintf(w, "  %-12s %s\n", label+":", string(results[i].Rating))
	}
	fmt.Fprintln(w)

	// Metrics table
	writeSection(w, "METRICS")
	table := NewMetricTable(rec.Labels)

	snrs := make([]float64, len(results))
	artifacts := make([]string, len(results))
	mains := make([]string, len(results))
	stability := make([]float64, len(results))
	for i, r := range results {
		snrs[i] = r.SNR
		artifacts[i] = formatMetricPercent(r.ArtifactRatio, 1)
		mains[i] = formatMetricPercent(r.PowerLineLevel, 1)
		stability[i] = r.Stability
	}

	table.AddMetricRow("Signal-to-Noise", snrs, 1, "", interpretSNR(worst(snrs)))
	table.AddRow("Artifact Ratio", artifacts, "", interpretArtifactRatio(worstRatio(results)))
	table.AddRow("Mains Pickup", mains, "", interpretPowerLine(worstMains(results)))
	table.AddMetricRow("Stability", stability, 2, "", interpretStability(worst(stability)))
	fmt.Fprint(w, indent(table.String()))
	fmt.Fprintln(w)

	// Band powers table
	writeSection(w, "BAND POWERS")
	bandTable := NewMetricTable(rec.Labels)
	for _, band := range []string{"delta", "theta", "alpha", "beta", "gamma"} {
		values := make([]string, len(results))
		for i, r := range results {
			values[i] = formatMetricPercent(r.BandPowers[band], 1)
		}
		bandTable.AddRow(titleCase(band), values, "", interpretDominantBand(dominantIfBand(results, band)))
	}
	fmt.Fprint(w, indent(bandTable.String()))
	fmt.Fprintln(w)

	// Recommendations
	recommendations := collectRecommendations(rec.Labels, results)
	if len(recommendations) > 0 {
		writeSection(w, "RECOMMENDATIONS")
		for _, r := range recommendations {
			fmt.Fprintf(w, "  %s\n", r)
		}
		fmt.Fprintln(w)
	}
}

// FilterSummary captures what a filtering run did, for display.
type FilterSummary struct {
	InputPath  string
	OutputPath string
	Preset     string
	FilterDesc string // human-readable chain description
	Before     []quality.Metrics
	After      []quality.Metrics
}

// DisplayFilterResults writes the before/after comparison after filtering.
func DisplayFilterResults(w io.Writer, rec *edfio.Recording, summary FilterSummary) {
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintf(w, "FILTERED: %s\n", filepath.Base(summary.InputPath))
	fmt.Fprintln(w, strings.Repeat("=", 70))

	fmt.Fprintf(w, "Preset:      %s\n", summary.Preset)
	fmt.Fprintf(w, "Chain:       %s\n", summary.FilterDesc)
	if summary.OutputPath != "" {
		fmt.Fprintf(w, "Output:      %s\n", summary.OutputPath)
	}
	fmt.Fprintln(w)

	writeSection(w, "SIGNAL-TO-NOISE (before -> after)")
	for i, label := range rec.Labels {
		fmt.Fprintf(w, "  %-12s %6.1f -> %6.1f   (%s -> %s)\n",
			label+":",
			summary.Before[i].SNR, summary.After[i].SNR,
			string(summary.Before[i].Rating), string(summary.After[i].Rating))
	}
	fmt.Fprintln(w)
}

// writeSection writes a section header in the console report style.
func writeSection(w io.Writer, title string) {
	fmt.Fprintf(w, "%s\n%s\n", title, strings.Repeat("-", len(title)))
}

// formatDurationHMS formats a duration as H:MM:SS.
func formatDurationHMS(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n") + "\n"
}

func worst(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func worstRatio(results []quality.DetailedMetrics) float64 {
	max := 0.0
	for _, r := range results {
		if r.ArtifactRatio > max {
			max = r.ArtifactRatio
		}
	}
	return max
}

func worstMains(results []quality.DetailedMetrics) float64 {
	max := 0.0
	for _, r := range results {
		if r.PowerLineLevel > max {
			max = r.PowerLineLevel
		}
	}
	return max
}

// dominantIfBand returns band when it carries the most average power across
// channels, otherwise "". Only the dominant band row gets an interpretation.
func dominantIfBand(results []quality.DetailedMetrics, band string) string {
	sums := map[string]float64{}
	for _, r := range results {
		for name, p := range r.BandPowers {
			sums[name] += p
		}
	}
	best, bestPower := "", -1.0
	for name, p := range sums {
		if p > bestPower {
			best, bestPower = name, p
		}
	}
	if best == band {
		return band
	}
	return ""
}

func collectRecommendations(labels []string, results []quality.DetailedMetrics) []string {
	var out []string
	seen := map[string]bool{}
	for i, r := range results {
		if r.Recommendation == "" || seen[r.Recommendation] {
			continue
		}
		seen[r.Recommendation] = true
		out = append(out, fmt.Sprintf("%s: %s", labels[i], r.Recommendation))
	}
	return out
}
