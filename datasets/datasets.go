package datasets

import "github.com/go-gota/gota/dataframe"

// This file defines the contracts shared by the dataset wrappers in this
// package.
//
// The wrappers adapt EEG recordings (continuous signals and their windowed
// derivatives) into indexable datasets suitable for model training. Each
// recording travels with a one-row description table (subject id, session,
// derived signal properties) kept as a gota DataFrame, the closest Go analog
// to the row-wise metadata the rest of the pipeline works with.
//
// Notes on data layout:
//   - Samples carry contiguous float32 buffers along with shape metadata.
//     These are trivial to convert into gomlx tensors (or any other tensor
//     type) in training code; see batch.go for the flat-batch helpers and
//     tensor conversions.
//
// Layout and intended usage:
//
// RecordingDataset
//   - Wraps one continuous recording plus its description row
//   - Indexing yields one time sample across all channels, paired with an
//     optional supervised target taken from the description
//
// WindowedRecordingDataset
//   - Wraps one pre-windowed recording plus its description row
//   - Indexing yields one fixed-length segment, its per-window target and
//     its position inside the original trial
//
// ConcatenatedRecordingDataset
//   - Owns an ordered, homogeneous sequence of the above and presents them
//     as one logical dataset; supports splitting into named subsets and
//     implements gomlx's train.Dataset interface for batch training.

// Sample is a single indexed example produced by any dataset in this
// package.
type Sample struct {
	// Data is a flat row-major buffer with dimensions given by Shape.
	// Continuous samples have shape [channels]; windowed samples have
	// shape [channels, times].
	Data  []float32
	Shape []int

	// Target is the supervised label, or nil when the dataset was built
	// without one.
	Target any

	// Window holds [i_window_in_trial, i_start_in_trial, i_stop_in_trial]
	// for windowed samples and is nil for continuous ones.
	Window []int
}

// Dataset is the two-method contract consumed by training loops and by the
// concatenation in this package.
type Dataset interface {
	Len() int
	Get(i int) (Sample, error)
}

// Recording is the surface this package needs from a continuous recording
// backend. eeg.Raw satisfies it.
type Recording interface {
	// Sample returns the values of every channel at time index i.
	Sample(i int) ([]float32, error)

	NumSamples() int
	SamplingRate() float64
	ChannelNames() []string
}

// Windowed is the surface this package needs from a windowed recording
// backend. eeg.Epochs satisfies it.
type Windowed interface {
	// SegmentData returns window i as channels x times.
	SegmentData(i int) ([][]float32, error)

	// Metadata is the per-window table; it must contain a "target" column
	// and the three positional columns listed in MetadataKeys.
	Metadata() dataframe.DataFrame

	NumEvents() int
	SamplingRate() float64
	ChannelNames() []string
	WindowLength() int
}

// MetadataKeys are the positional columns every windowed metadata table must
// carry, in the order they appear in Sample.Window.
var MetadataKeys = []string{"i_window_in_trial", "i_start_in_trial", "i_stop_in_trial"}
