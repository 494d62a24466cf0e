// Package eeg provides minimal in-memory recording types backing the dataset
// wrappers: Raw for continuous multi-channel signals and Epochs for their
// windowed derivatives. No filtering or windowing is done here; recordings
// arrive already prepared.
package eeg

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Raw is a continuous multi-channel recording: channels x samples at a fixed
// sampling rate.
type Raw struct {
	data    [][]float32
	sfreq   float64
	chNames []string
}

// NewRaw builds a recording from channel-major data. Every channel must have
// the same number of samples and names must match the channel count.
func NewRaw(data [][]float32, sfreq float64, chNames []string) (*Raw, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("recording has no channels")
	}
	if sfreq <= 0 {
		return nil, fmt.Errorf("sampling rate must be positive, got %g", sfreq)
	}
	if len(chNames) != len(data) {
		return nil, fmt.Errorf("got %d channel names for %d channels", len(chNames), len(data))
	}
	n := len(data[0])
	for i, ch := range data[1:] {
		if len(ch) != n {
			return nil, fmt.Errorf("channel %d has %d samples, channel 0 has %d", i+1, len(ch), n)
		}
	}
	return &Raw{data: data, sfreq: sfreq, chNames: chNames}, nil
}

// SamplingRate returns the sampling frequency in Hz.
func (r *Raw) SamplingRate() float64 { return r.sfreq }

// ChannelNames returns the channel names in channel order.
func (r *Raw) ChannelNames() []string { return r.chNames }

// NumSamples returns the number of time samples per channel.
func (r *Raw) NumSamples() int { return len(r.data[0]) }

// Sample returns the values of every channel at time index i.
func (r *Raw) Sample(i int) ([]float32, error) {
	if i < 0 || i >= r.NumSamples() {
		return nil, fmt.Errorf("sample index %d out of range [0, %d)", i, r.NumSamples())
	}
	col := make([]float32, len(r.data))
	for ch := range r.data {
		col[ch] = r.data[ch][i]
	}
	return col, nil
}

// Segment returns all channels over the half-open sample range [start, stop)
// as channels x times. The returned slices alias the recording's storage.
func (r *Raw) Segment(start, stop int) ([][]float32, error) {
	if start < 0 || stop > r.NumSamples() || start >= stop {
		return nil, fmt.Errorf("segment [%d, %d) out of range [0, %d)", start, stop, r.NumSamples())
	}
	seg := make([][]float32, len(r.data))
	for ch := range r.data {
		seg[ch] = r.data[ch][start:stop]
	}
	return seg, nil
}

// LoadRawCSV reads a recording from a CSV file where the header names the
// channels and each subsequent row is one time sample.
func LoadRawCSV(path string, sfreq float64) (*Raw, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recording CSV: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	chNames := make([]string, len(header))
	for i, name := range header {
		chNames[i] = strings.TrimSpace(name)
	}

	data := make([][]float32, len(chNames))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		for ch, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 32)
			if err != nil {
				return nil, fmt.Errorf("failed to parse channel %s: %w", chNames[ch], err)
			}
			data[ch] = append(data[ch], float32(v))
		}
	}
	if len(data[0]) == 0 {
		return nil, fmt.Errorf("recording CSV %s has no samples", path)
	}

	return NewRaw(data, sfreq, chNames)
}
