package datasets

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
)

// WindowedRecordingDataset pairs one pre-windowed recording with a one-row
// description. Targets are read per window from the backend's metadata table
// rather than from the description.
type WindowedRecordingDataset struct {
	Windows Windowed

	desc dataframe.DataFrame
}

// NewWindowedRecordingDataset wraps windows with its description row. The
// backend metadata must carry a "target" column and the three positional
// columns in MetadataKeys.
func NewWindowedRecordingDataset(windows Windowed, description dataframe.DataFrame) (*WindowedRecordingDataset, error) {
	md := windows.Metadata()
	required := append([]string{"target"}, MetadataKeys...)
	for _, col := range required {
		if !hasColumn(md, col) {
			return nil, fmt.Errorf("%w: window metadata missing column %q", ErrInvalidArgument, col)
		}
	}
	d := &WindowedRecordingDataset{Windows: windows}
	if err := d.SetDescription(description); err != nil {
		return nil, err
	}
	return d, nil
}

// Len returns the number of windows (one per event).
func (d *WindowedRecordingDataset) Len() int { return d.Windows.NumEvents() }

// Get returns window i flattened channels-major, its target, and its
// [i_window_in_trial, i_start_in_trial, i_stop_in_trial] position.
func (d *WindowedRecordingDataset) Get(i int) (Sample, error) {
	seg, err := d.Windows.SegmentData(i)
	if err != nil {
		return Sample{}, err
	}

	channels := len(seg)
	times := 0
	if channels > 0 {
		times = len(seg[0])
	}
	flat := make([]float32, 0, channels*times)
	for _, ch := range seg {
		flat = append(flat, ch...)
	}

	md := d.Windows.Metadata()
	window := make([]int, len(MetadataKeys))
	for k, col := range MetadataKeys {
		v, err := intAt(md, i, col)
		if err != nil {
			return Sample{}, fmt.Errorf("reading %s for window %d: %w", col, i, err)
		}
		window[k] = v
	}

	return Sample{
		Data:   flat,
		Shape:  []int{channels, times},
		Target: md.Col("target").Val(i),
		Window: window,
	}, nil
}

// Description returns the stored row refreshed with the windowed recording's
// current sampling rate and channel count.
func (d *WindowedRecordingDataset) Description() dataframe.DataFrame {
	d.desc = stamp(d.desc, "sampling_rate", d.Windows.SamplingRate())
	d.desc = stampInt(d.desc, "channel_count", len(d.Windows.ChannelNames()))
	return d.desc
}

// SetDescription replaces the description row, rejecting anything other
// than a valid single-row frame.
func (d *WindowedRecordingDataset) SetDescription(desc dataframe.DataFrame) error {
	if err := desc.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	if desc.Nrow() != 1 {
		return fmt.Errorf("%w: description must be a single row, got %d rows", ErrTypeMismatch, desc.Nrow())
	}
	d.desc = desc
	return nil
}

func (d *WindowedRecordingDataset) kind() datasetKind { return kindWindowed }

func (d *WindowedRecordingDataset) signalProps() signalProps {
	return signalProps{
		samplingRate: d.Windows.SamplingRate(),
		channels:     len(d.Windows.ChannelNames()),
		times:        d.Windows.WindowLength(),
	}
}
