// Package edfio loads and saves multi-channel EEG recordings in the
// EDF/EDF+ interchange format, presenting them as plain per-channel float64
// slices in physical units (microvolts).
package edfio

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/OpenPSG/edf"
)

// EDF signal header constants used when writing.
const (
	physicalDimension = "uV"
	digitalMin        = -32768
	digitalMax        = 32767

	// recordDuration is the data record length used for output files.
	// One-second records keep samples-per-record equal to the sampling rate.
	recordDuration = time.Second
)

// Recording is a decoded multi-channel EEG recording. All channels share one
// sampling rate; mixed-rate EDF files are rejected on read.
type Recording struct {
	PatientID   string
	RecordingID string
	StartTime   time.Time
	SampleRate  float64     // Hz
	Labels      []string    // one per channel
	Channels    [][]float64 // [channel][sample], microvolts
}

// Duration returns the recording length derived from the longest channel.
func (r *Recording) Duration() time.Duration {
	if r.SampleRate <= 0 {
		return 0
	}
	longest := 0
	for _, ch := range r.Channels {
		if len(ch) > longest {
			longest = len(ch)
		}
	}
	return time.Duration(float64(longest) / r.SampleRate * float64(time.Second))
}

// Read decodes an EDF file into a Recording. Sample decoding goes through
// the edf signal readers; the per-signal metadata (labels, rates) comes from
// a direct parse of the fixed-offset ASCII header, which the reader type
// does not expose.
func Read(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	meta, err := probeHeader(f)
	if err != nil {
		return nil, fmt.Errorf("parsing EDF header of %s: %w", path, err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	reader, err := edf.Open(f)
	if err != nil {
		return nil, fmt.Errorf("opening EDF stream of %s: %w", path, err)
	}

	rec := &Recording{
		PatientID:   meta.patientID,
		RecordingID: meta.recordingID,
		StartTime:   meta.startTime,
		SampleRate:  meta.sampleRate,
		Labels:      meta.labels,
		Channels:    make([][]float64, len(meta.labels)),
	}

	total := meta.dataRecords * meta.samplesPerRecord
	for i := range meta.labels {
		sr, err := reader.Signal(i)
		if err != nil {
			return nil, fmt.Errorf("selecting signal %d: %w", i, err)
		}
		samples := make([]float64, total)
		n, err := sr.Read(samples)
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading signal %d (%s): %w", i, meta.labels[i], err)
		}
		rec.Channels[i] = samples[:n]
	}

	return rec, nil
}

// Write encodes a Recording as an EDF file using one-second data records.
// The final partial record is zero-padded. prefiltering describes the
// processing already applied and lands in each signal header.
func Write(path string, rec *Recording, prefiltering string) error {
	if rec.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %g", rec.SampleRate)
	}
	if len(rec.Channels) == 0 {
		return fmt.Errorf("recording has no channels")
	}
	if len(rec.Labels) != len(rec.Channels) {
		return fmt.Errorf("label count %d does not match channel count %d",
			len(rec.Labels), len(rec.Channels))
	}

	samplesPerRecord := int(rec.SampleRate)
	if samplesPerRecord < 1 {
		samplesPerRecord = 1
	}

	signals := make([]edf.SignalHeader, len(rec.Channels))
	for i, label := range rec.Labels {
		pmin, pmax := physicalRange(rec.Channels[i])
		signals[i] = edf.SignalHeader{
			Label:             label,
			TransducerType:    "AgAgCl electrode",
			PhysicalDimension: physicalDimension,
			PhysicalMin:       pmin,
			PhysicalMax:       pmax,
			DigitalMin:        digitalMin,
			DigitalMax:        digitalMax,
			Prefiltering:      prefiltering,
			SamplesPerRecord:  samplesPerRecord,
		}
	}

	start := rec.StartTime
	if start.IsZero() {
		start = time.Now().UTC()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w, err := edf.Create(f, edf.Header{
		Version:            edf.Version0,
		PatientID:          rec.PatientID,
		RecordingID:        rec.RecordingID,
		StartTime:          start,
		DataRecordDuration: recordDuration,
		SignalCount:        len(signals),
		Signals:            signals,
	})
	if err != nil {
		return fmt.Errorf("writing EDF header: %w", err)
	}

	longest := 0
	for _, ch := range rec.Channels {
		if len(ch) > longest {
			longest = len(ch)
		}
	}
	records := (longest + samplesPerRecord - 1) / samplesPerRecord

	for r := 0; r < records; r++ {
		block := make([][]float64, len(rec.Channels))
		for i, ch := range rec.Channels {
			seg := make([]float64, samplesPerRecord)
			lo := r * samplesPerRecord
			if lo < len(ch) {
				hi := lo + samplesPerRecord
				if hi > len(ch) {
					hi = len(ch)
				}
				copy(seg, ch[lo:hi])
			}
			block[i] = seg
		}
		if err := w.WriteRecord(block); err != nil {
			return fmt.Errorf("writing record %d: %w", r, err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing EDF file: %w", err)
	}
	return nil
}

// physicalRange returns a symmetric calibration range covering the channel,
// with a sensible floor so near-silent channels keep microvolt resolution.
func physicalRange(samples []float64) (pmin, pmax float64) {
	peak := 100.0
	for _, v := range samples {
		if v > peak {
			peak = v
		}
		if -v > peak {
			peak = -v
		}
	}
	return -peak, peak
}

// headerMeta is the subset of the EDF header edfio needs directly.
type headerMeta struct {
	patientID        string
	recordingID      string
	startTime        time.Time
	dataRecords      int
	samplesPerRecord int
	sampleRate       float64
	labels           []string
}

// probeHeader parses the fixed-offset ASCII header. The EDF format stores
// every field as space-padded ASCII at a known byte offset, so this is a
// handful of slices and TrimSpace calls.
func probeHeader(r io.ReadSeeker) (*headerMeta, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	fixed := make([]byte, 256)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, fmt.Errorf("reading fixed header: %w", err)
	}

	field := func(b []byte) string { return strings.TrimSpace(string(b)) }

	meta := &headerMeta{
		patientID:   field(fixed[8:88]),
		recordingID: field(fixed[88:168]),
	}

	ts, err := time.Parse("02.01.06 15.04.05",
		field(fixed[168:176])+" "+field(fixed[176:184]))
	if err != nil {
		return nil, fmt.Errorf("start date/time: %w", err)
	}
	meta.startTime = ts

	records, err := strconv.Atoi(field(fixed[236:244]))
	if err != nil {
		return nil, fmt.Errorf("data record count: %w", err)
	}
	if records < 0 {
		// EDF+ permits -1 for interrupted recordings that were never
		// finalised. The signal readers cannot seek through such files.
		return nil, fmt.Errorf("data record count %d: recording was not finalised", records)
	}
	meta.dataRecords = records

	duration, err := strconv.ParseFloat(field(fixed[244:252]), 64)
	if err != nil {
		return nil, fmt.Errorf("record duration: %w", err)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("non-positive record duration %g", duration)
	}

	signalCount, err := strconv.Atoi(field(fixed[252:256]))
	if err != nil {
		return nil, fmt.Errorf("signal count: %w", err)
	}
	if signalCount < 1 {
		return nil, fmt.Errorf("file has no signals")
	}

	variable := make([]byte, signalCount*256)
	if _, err := io.ReadFull(r, variable); err != nil {
		return nil, fmt.Errorf("reading signal headers: %w", err)
	}

	meta.labels = make([]string, signalCount)
	for i := 0; i < signalCount; i++ {
		meta.labels[i] = field(variable[i*16 : (i+1)*16])
	}

	// Samples-per-record block sits after labels, transducers, dimensions,
	// physical and digital ranges, and prefiltering strings.
	sprOffset := signalCount * (16 + 80 + 8 + 8 + 8 + 8 + 8 + 80)
	for i := 0; i < signalCount; i++ {
		spr, err := strconv.Atoi(field(variable[sprOffset+i*8 : sprOffset+(i+1)*8]))
		if err != nil {
			return nil, fmt.Errorf("samples per record for signal %d: %w", i, err)
		}
		if i == 0 {
			meta.samplesPerRecord = spr
		} else if spr != meta.samplesPerRecord {
			return nil, fmt.Errorf("mixed sampling rates are not supported (signal %d has %d samples per record, signal 0 has %d)",
				i, spr, meta.samplesPerRecord)
		}
	}

	meta.sampleRate = float64(meta.samplesPerRecord) / duration
	return meta, nil
}
