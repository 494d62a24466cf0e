package datasets

import (
	"fmt"
	"strconv"

	"github.com/go-gota/gota/dataframe"
)

// datasetKind tags a member as continuous or windowed. The tag is fixed at
// construction so the concatenation never has to sniff its children.
type datasetKind int

const (
	kindRaw datasetKind = iota
	kindWindowed
)

func (k datasetKind) String() string {
	if k == kindRaw {
		return "raw"
	}
	return "windowed"
}

// signalProps are the per-child properties the concatenation requires to
// agree. times is the sample count for continuous children and the window
// length for windowed ones.
type signalProps struct {
	samplingRate float64
	channels     int
	times        int
}

// Member is the contract a dataset must satisfy to join a concatenation.
// Only RecordingDataset and WindowedRecordingDataset implement it.
type Member interface {
	Dataset
	Description() dataframe.DataFrame
	SetDescription(dataframe.DataFrame) error

	kind() datasetKind
	signalProps() signalProps
}

// ConcatenatedRecordingDataset presents an ordered sequence of per-recording
// datasets as one logical dataset. All members must be of the same kind;
// their signal properties are re-validated every time the aggregate
// description is read, so upstream replacement of a member's recording is
// caught at the next read.
type ConcatenatedRecordingDataset struct {
	// BatchSize controls how many samples Yield packs per batch.
	BatchSize int

	children []Member
	desc     dataframe.DataFrame
	cursor   int
}

// NewConcatenatedRecordingDataset builds a concatenation over children. The
// sequence must be non-empty and homogeneous in kind; mixing continuous and
// windowed datasets is rejected here rather than at read time. The aggregate
// description is stacked from each child's current description row.
func NewConcatenatedRecordingDataset(children []Member) (*ConcatenatedRecordingDataset, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("%w: concatenation requires at least one dataset", ErrInvalidArgument)
	}
	want := children[0].kind()
	for i, ds := range children {
		if ds.kind() != want {
			return nil, fmt.Errorf("%w: dataset %d is %s but dataset 0 is %s",
				ErrInvalidArgument, i, ds.kind(), want)
		}
	}

	agg := children[0].Description()
	for _, ds := range children[1:] {
		agg = agg.RBind(ds.Description())
	}
	if err := agg.Error(); err != nil {
		return nil, fmt.Errorf("%w: stacking descriptions: %v", ErrTypeMismatch, err)
	}

	c := &ConcatenatedRecordingDataset{
		BatchSize: 32,
		children:  children,
		desc:      agg,
	}
	if _, err := c.Description(); err != nil {
		return nil, err
	}
	return c, nil
}

// Children returns the member datasets in concatenation order. The slice is
// shared; do not reorder it.
func (c *ConcatenatedRecordingDataset) Children() []Member { return c.children }

// Len returns the total number of samples across all members.
func (c *ConcatenatedRecordingDataset) Len() int {
	total := 0
	for _, ds := range c.children {
		total += ds.Len()
	}
	return total
}

// Get resolves the global index i to (member, local index) by
// cumulative-length lookup and delegates to the member.
func (c *ConcatenatedRecordingDataset) Get(i int) (Sample, error) {
	if i < 0 {
		return Sample{}, fmt.Errorf("%w: index %d", ErrIndexRange, i)
	}
	rest := i
	for _, ds := range c.children {
		n := ds.Len()
		if rest < n {
			return ds.Get(rest)
		}
		rest -= n
	}
	return Sample{}, fmt.Errorf("%w: index %d not in [0, %d)", ErrIndexRange, i, c.Len())
}

// Split partitions the members into named groups and wraps each group in a
// fresh concatenation. Exactly one selector must be given: a non-empty
// byField groups members by the distinct values of that description column,
// while explicit groups are index lists labeled by their position.
func (c *ConcatenatedRecordingDataset) Split(byField string, groups [][]int) (map[string]*ConcatenatedRecordingDataset, error) {
	if (byField == "") == (groups == nil) {
		return nil, fmt.Errorf("%w: split requires exactly one of a field name or explicit groups", ErrInvalidArgument)
	}

	named := make(map[string][]int)
	if byField != "" {
		desc, err := c.Description()
		if err != nil {
			return nil, err
		}
		if !hasColumn(desc, byField) {
			return nil, fmt.Errorf("%w: split field %q not in description", ErrInvalidArgument, byField)
		}
		col := desc.Col(byField)
		for i := 0; i < col.Len(); i++ {
			key := col.Elem(i).String()
			named[key] = append(named[key], i)
		}
	} else {
		for i, group := range groups {
			named[strconv.Itoa(i)] = group
		}
	}

	splits := make(map[string]*ConcatenatedRecordingDataset, len(named))
	for name, idxs := range named {
		members := make([]Member, 0, len(idxs))
		for _, idx := range idxs {
			if idx < 0 || idx >= len(c.children) {
				return nil, fmt.Errorf("%w: split index %d not in [0, %d)", ErrIndexRange, idx, len(c.children))
			}
			members = append(members, c.children[idx])
		}
		sub, err := NewConcatenatedRecordingDataset(members)
		if err != nil {
			return nil, fmt.Errorf("building split %q: %w", name, err)
		}
		splits[name] = sub
	}
	return splits, nil
}

// Description validates that every member reports the same sampling rate,
// channel count and sample/window length, then returns the aggregate table
// with the shared values stamped in. The check runs on every call so that
// in-place replacement of a member's recording is caught immediately.
func (c *ConcatenatedRecordingDataset) Description() (dataframe.DataFrame, error) {
	first := c.children[0].signalProps()
	for i, ds := range c.children[1:] {
		props := ds.signalProps()
		if props.samplingRate != first.samplingRate {
			return dataframe.DataFrame{}, fmt.Errorf("%w: recordings have different sampling rates (%g at 0, %g at %d)",
				ErrValueMismatch, first.samplingRate, props.samplingRate, i+1)
		}
		if props.channels != first.channels {
			return dataframe.DataFrame{}, fmt.Errorf("%w: recordings have different numbers of channels (%d at 0, %d at %d)",
				ErrValueMismatch, first.channels, props.channels, i+1)
		}
		if props.times != first.times {
			return dataframe.DataFrame{}, fmt.Errorf("%w: recordings have different window lengths (%d at 0, %d at %d)",
				ErrValueMismatch, first.times, props.times, i+1)
		}
	}

	c.desc = stamp(c.desc, "sampling_rate", first.samplingRate)
	c.desc = stampInt(c.desc, "channel_count", first.channels)
	if c.children[0].kind() == kindRaw {
		c.desc = stampInt(c.desc, "sample_count", first.times)
	} else {
		c.desc = stampInt(c.desc, "window_length", first.times)
	}
	return c.desc, nil
}

// SetDescription replaces the aggregate table wholesale. It must be a valid
// multi-row frame with one row per member; the members' own descriptions are
// left untouched.
func (c *ConcatenatedRecordingDataset) SetDescription(desc dataframe.DataFrame) error {
	if err := desc.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	if desc.Nrow() != len(c.children) {
		return fmt.Errorf("%w: description must have one row per dataset, got %d rows for %d datasets",
			ErrTypeMismatch, desc.Nrow(), len(c.children))
	}
	c.desc = desc
	return nil
}
