package eeg

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
)

// Epochs is a windowed recording: an ordered sequence of fixed-length
// multi-channel segments with a per-window metadata table. One event
// corresponds to one window.
type Epochs struct {
	data    [][][]float32 // windows x channels x times
	md      dataframe.DataFrame
	sfreq   float64
	chNames []string
}

// NewEpochs builds a windowed recording. All windows must share the same
// channels x times shape and metadata must have one row per window.
func NewEpochs(data [][][]float32, metadata dataframe.DataFrame, sfreq float64, chNames []string) (*Epochs, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("epochs have no windows")
	}
	if sfreq <= 0 {
		return nil, fmt.Errorf("sampling rate must be positive, got %g", sfreq)
	}
	channels := len(data[0])
	if channels == 0 {
		return nil, fmt.Errorf("window 0 has no channels")
	}
	if len(chNames) != channels {
		return nil, fmt.Errorf("got %d channel names for %d channels", len(chNames), channels)
	}
	times := len(data[0][0])
	for w, win := range data {
		if len(win) != channels {
			return nil, fmt.Errorf("window %d has %d channels, window 0 has %d", w, len(win), channels)
		}
		for ch, samples := range win {
			if len(samples) != times {
				return nil, fmt.Errorf("window %d channel %d has %d samples, expected %d", w, ch, len(samples), times)
			}
		}
	}
	if err := metadata.Error(); err != nil {
		return nil, fmt.Errorf("bad metadata: %w", err)
	}
	if metadata.Nrow() != len(data) {
		return nil, fmt.Errorf("metadata has %d rows for %d windows", metadata.Nrow(), len(data))
	}

	return &Epochs{data: data, md: metadata, sfreq: sfreq, chNames: chNames}, nil
}

// SamplingRate returns the sampling frequency in Hz.
func (e *Epochs) SamplingRate() float64 { return e.sfreq }

// ChannelNames returns the channel names in channel order.
func (e *Epochs) ChannelNames() []string { return e.chNames }

// NumEvents returns the number of windows.
func (e *Epochs) NumEvents() int { return len(e.data) }

// WindowLength returns the number of time samples per window.
func (e *Epochs) WindowLength() int { return len(e.data[0][0]) }

// Metadata returns the per-window table.
func (e *Epochs) Metadata() dataframe.DataFrame { return e.md }

// SegmentData returns window i as channels x times. The returned slices
// alias the epoch storage.
func (e *Epochs) SegmentData(i int) ([][]float32, error) {
	if i < 0 || i >= len(e.data) {
		return nil, fmt.Errorf("window index %d out of range [0, %d)", i, len(e.data))
	}
	return e.data[i], nil
}
