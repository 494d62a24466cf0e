package datasets

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
)

// RecordingDataset pairs one continuous recording with a one-row description
// (subject id, session id and the like) and optionally exposes one
// description field as a supervised target.
//
// The Raw field is exported so callers can swap the underlying recording in
// place; Description always reflects whatever recording is current.
type RecordingDataset struct {
	Raw Recording

	desc   dataframe.DataFrame
	target any
}

// NewRecordingDataset wraps raw with its description row. description must
// have exactly one row. If targetField is non-empty its value is extracted
// from the description now and returned with every sample; a targetField
// absent from the description is an error.
func NewRecordingDataset(raw Recording, description dataframe.DataFrame, targetField string) (*RecordingDataset, error) {
	d := &RecordingDataset{Raw: raw}
	if err := d.SetDescription(description); err != nil {
		return nil, err
	}
	if targetField != "" {
		if !hasColumn(description, targetField) {
			return nil, fmt.Errorf("%w: target field %q not in description", ErrInvalidArgument, targetField)
		}
		d.target = description.Col(targetField).Val(0)
	}
	return d, nil
}

// Len returns the number of time samples in the recording.
func (d *RecordingDataset) Len() int { return d.Raw.NumSamples() }

// Get returns the values of every channel at time index i, paired with the
// dataset's target. Out-of-range indices surface the backend's error.
func (d *RecordingDataset) Get(i int) (Sample, error) {
	col, err := d.Raw.Sample(i)
	if err != nil {
		return Sample{}, err
	}
	return Sample{Data: col, Shape: []int{len(col)}, Target: d.target}, nil
}

// Target returns the value extracted at construction, or nil when no target
// field was requested.
func (d *RecordingDataset) Target() any { return d.target }

// Description returns the stored row refreshed with the recording's current
// sampling rate and channel count. The returned frame is a snapshot; edit it
// through SetDescription, not in place.
func (d *RecordingDataset) Description() dataframe.DataFrame {
	d.desc = stamp(d.desc, "sampling_rate", d.Raw.SamplingRate())
	d.desc = stampInt(d.desc, "channel_count", len(d.Raw.ChannelNames()))
	return d.desc
}

// SetDescription replaces the description row. Anything other than a valid
// single-row frame is rejected.
func (d *RecordingDataset) SetDescription(desc dataframe.DataFrame) error {
	if err := desc.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	if desc.Nrow() != 1 {
		return fmt.Errorf("%w: description must be a single row, got %d rows", ErrTypeMismatch, desc.Nrow())
	}
	d.desc = desc
	return nil
}

func (d *RecordingDataset) kind() datasetKind { return kindRaw }

func (d *RecordingDataset) signalProps() signalProps {
	return signalProps{
		samplingRate: d.Raw.SamplingRate(),
		channels:     len(d.Raw.ChannelNames()),
		times:        d.Raw.NumSamples(),
	}
}
