// Package chart renders interactive HTML charts comparing raw and filtered
// EEG traces, one chart per channel.
package chart

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// maxPoints caps the samples plotted per trace. Longer recordings are
// decimated so the HTML stays responsive in a browser.
const maxPoints = 5000

// WriteComparison renders one line chart per channel, raw and filtered
// series overlaid, into a single HTML file.
func WriteComparison(path string, labels []string, sampleRate float64, raw, filtered [][]float64) error {
	if len(raw) != len(filtered) || len(raw) != len(labels) {
		return fmt.Errorf("channel count mismatch: %d labels, %d raw, %d filtered",
			len(labels), len(raw), len(filtered))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file %s: %w", path, err)
	}
	defer f.Close()

	for i, label := range labels {
		line := channelChart(label, sampleRate, raw[i], filtered[i])
		if err := line.Render(f); err != nil {
			return fmt.Errorf("rendering chart for %s: %w", label, err)
		}
	}
	return nil
}

func channelChart(label string, sampleRate float64, raw, filtered []float64) *charts.Line {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    label,
			Subtitle: "raw vs filtered, microvolts over seconds",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	step := 1
	if len(raw) > maxPoints {
		step = len(raw) / maxPoints
	}

	var xAxis []string
	var rawData, filteredData []opts.LineData
	for i := 0; i < len(raw); i += step {
		xAxis = append(xAxis, fmt.Sprintf("%.2f", float64(i)/sampleRate))
		rawData = append(rawData, opts.LineData{Value: raw[i]})
		if i < len(filtered) {
			filteredData = append(filteredData, opts.LineData{Value: filtered[i]})
		}
	}

	line.SetXAxis(xAxis).
		AddSeries("raw", rawData).
		AddSeries("filtered", filteredData)
	return line
}
