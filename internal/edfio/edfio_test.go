package edfio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testRecording() *Recording {
	rate := 100.0
	n := 200 // two one-second records
	channels := make([][]float64, 2)
	for c := range channels {
		channels[c] = make([]float64, n)
		for i := range channels[c] {
			channels[c][i] = 50.0 * math.Sin(2.0*math.Pi*float64(c+1)*10.0*float64(i)/rate)
		}
	}
	return &Recording{
		PatientID:   "X X X X",
		RecordingID: "Startdate 01-JAN-2026 X X X",
		StartTime:   time.Date(2026, 1, 1, 10, 30, 0, 0, time.UTC),
		SampleRate:  rate,
		Labels:      []string{"EEG Fp1", "EEG Fp2"},
		Channels:    channels,
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.edf")
	want := testRecording()

	if err := Write(path, want, "HP:0.5Hz LP:40Hz"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if got.SampleRate != want.SampleRate {
		t.Errorf("SampleRate = %g, want %g", got.SampleRate, want.SampleRate)
	}
	if got.PatientID != want.PatientID {
		t.Errorf("PatientID = %q, want %q", got.PatientID, want.PatientID)
	}
	if !got.StartTime.Equal(want.StartTime) {
		t.Errorf("StartTime = %v, want %v", got.StartTime, want.StartTime)
	}
	if len(got.Labels) != 2 || got.Labels[0] != "EEG Fp1" || got.Labels[1] != "EEG Fp2" {
		t.Errorf("Labels = %v, want %v", got.Labels, want.Labels)
	}
	if len(got.Channels) != len(want.Channels) {
		t.Fatalf("channel count = %d, want %d", len(got.Channels), len(want.Channels))
	}

	// 16-bit quantisation over a +/-100 uV range resolves about 0.003 uV.
	for c := range want.Channels {
		if len(got.Channels[c]) != len(want.Channels[c]) {
			t.Fatalf("channel %d length = %d, want %d", c, len(got.Channels[c]), len(want.Channels[c]))
		}
		for i := range want.Channels[c] {
			if diff := math.Abs(got.Channels[c][i] - want.Channels[c][i]); diff > 0.05 {
				t.Fatalf("channel %d sample %d differs by %g after round trip", c, i, diff)
			}
		}
	}
}

func TestWritePadsPartialRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.edf")
	rec := testRecording()
	rec.Channels[0] = rec.Channels[0][:150] // one and a half records
	rec.Channels[1] = rec.Channels[1][:150]

	if err := Write(path, rec, ""); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	// The final record is zero-padded, so the file holds two full records.
	if len(got.Channels[0]) != 200 {
		t.Fatalf("padded channel length = %d, want 200", len(got.Channels[0]))
	}
	for i := 150; i < 200; i++ {
		if math.Abs(got.Channels[0][i]) > 0.05 {
			t.Errorf("padding sample %d = %g, want near 0", i, got.Channels[0][i])
		}
	}
}

// overwriteHeaderField replaces one 8-byte ASCII field of an EDF header in
// place, space-padded as the format requires.
func overwriteHeaderField(t *testing.T, path string, offset int64, value string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()
	if _, err := f.WriteAt([]byte(fmt.Sprintf("%-8s", value)), offset); err != nil {
		t.Fatalf("patching header: %v", err)
	}
}

func TestReadRejectsUnfinalisedRecordCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unfinalised.edf")
	if err := Write(path, testRecording(), ""); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// An interrupted EDF+ recording declares -1 data records. Read must
	// fail cleanly instead of sizing buffers from the negative count.
	overwriteHeaderField(t, path, 236, "-1")

	if _, err := Read(path); err == nil {
		t.Fatal("Read accepted a file with a -1 data record count")
	}
}

func TestReadRejectsMalformedStartDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baddate.edf")
	if err := Write(path, testRecording(), ""); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// A garbled start date must surface as an error. Silently zeroing
	// StartTime would let a later Write stamp the file with the current
	// time instead.
	overwriteHeaderField(t, path, 168, "xx.xx.xx")

	if _, err := Read(path); err == nil {
		t.Fatal("Read accepted a file with an unparseable start date")
	}
}

func TestWriteValidation(t *testing.T) {
	tests := []struct {
		name string
		rec  *Recording
	}{
		{"zero rate", &Recording{Labels: []string{"A"}, Channels: [][]float64{{1}}}},
		{"no channels", &Recording{SampleRate: 100}},
		{"label mismatch", &Recording{SampleRate: 100, Labels: []string{"A", "B"}, Channels: [][]float64{{1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "invalid.edf")
			if err := Write(path, tt.rec, ""); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDuration(t *testing.T) {
	rec := testRecording()
	if got := rec.Duration(); got != 2*time.Second {
		t.Errorf("Duration() = %v, want 2s", got)
	}

	empty := &Recording{}
	if got := empty.Duration(); got != 0 {
		t.Errorf("empty Duration() = %v, want 0", got)
	}
}
