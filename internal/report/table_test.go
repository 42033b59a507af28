package report

import (
	"math"
	"strings"
	"testing"
)

func TestMetricTable(t *testing.T) {
	t.Run("empty table renders nothing", func(t *testing.T) {
		table := NewMetricTable([]string{"Fp1", "Fp2"})
		if got := table.String(); got != "" {
			t.Errorf("empty table rendered %q, want empty", got)
		}
	})

	t.Run("headers and values align per channel", func(t *testing.T) {
		table := NewMetricTable([]string{"Fp1", "Fp2"})
		table.AddMetricRow("Signal-to-Noise", []float64{12.3, 4.56}, 1, "", "")

		out := table.String()
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("rendered %d lines, want 2:\n%s", len(lines), out)
		}
		if !strings.Contains(lines[0], "Fp1") || !strings.Contains(lines[0], "Fp2") {
			t.Errorf("header line missing channel labels: %q", lines[0])
		}
		if !strings.Contains(lines[1], "12.3") || !strings.Contains(lines[1], "4.6") {
			t.Errorf("value line missing formatted values: %q", lines[1])
		}
	})

	t.Run("missing values render as dash", func(t *testing.T) {
		table := NewMetricTable([]string{"Fp1", "Fp2"})
		table.AddMetricRow("Stability", []float64{0.9, math.NaN()}, 2, "", "")

		if out := table.String(); !strings.Contains(out, MissingValue) {
			t.Errorf("NaN value should render as %q:\n%s", MissingValue, out)
		}
	})

	t.Run("interpretation column only shown when present", func(t *testing.T) {
		table := NewMetricTable([]string{"Cz"})
		table.AddMetricRow("SNR", []float64{3}, 1, "", "")
		if strings.Contains(table.String(), "Interpretation") {
			t.Error("interpretation header shown with no interpretations")
		}

		table.AddMetricRow("SNR", []float64{3}, 1, "", "noisy")
		if !strings.Contains(table.String(), "Interpretation") {
			t.Error("interpretation header missing")
		}
	})

	t.Run("units appended after values", func(t *testing.T) {
		table := NewMetricTable([]string{"Cz"})
		table.AddMetricRow("Amplitude", []float64{52.1}, 1, "uV", "")
		if out := table.String(); !strings.Contains(out, "uV") {
			t.Errorf("unit missing from output:\n%s", out)
		}
	})
}

func TestFormatMetric(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     string
	}{
		{"regular value", 12.345, 1, "12.3"},
		{"zero", 0, 2, "0.00"},
		{"NaN", math.NaN(), 1, MissingValue},
		{"positive infinity", math.Inf(1), 1, MissingValue},
		{"tiny value uses scientific notation", 0.00001, 2, "1.00e-05"},
		{"negative", -7.8, 1, "-7.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMetric(tt.value, tt.decimals); got != tt.want {
				t.Errorf("formatMetric(%g, %d) = %q, want %q", tt.value, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestFormatMetricPercent(t *testing.T) {
	if got := formatMetricPercent(0.052, 1); got != "5.2%" {
		t.Errorf("formatMetricPercent(0.052, 1) = %q, want \"5.2%%\"", got)
	}
	if got := formatMetricPercent(math.NaN(), 1); got != MissingValue {
		t.Errorf("formatMetricPercent(NaN) = %q, want %q", got, MissingValue)
	}
}
