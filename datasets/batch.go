package datasets

import (
	"fmt"
	"io"

	"github.com/gomlx/gomlx/pkg/core/tensors"
)

// Batch reads multiple samples by their global indices.
func (c *ConcatenatedRecordingDataset) Batch(indices []int) ([]Sample, error) {
	samples := make([]Sample, len(indices))
	for i, idx := range indices {
		s, err := c.Get(idx)
		if err != nil {
			return nil, err
		}
		samples[i] = s
	}
	return samples, nil
}

// SampleBatchFlat stores a batch in flat contiguous buffers. Inputs is
// batch-major over the per-sample shape recorded in Shape.
type SampleBatchFlat struct {
	Inputs  []float32
	Targets []float32
	Batch   int
	Shape   []int
}

// MakeSampleBatchFlat flattens a batch of samples into contiguous buffers.
// Every sample must share the same shape and carry a numeric target.
func MakeSampleBatchFlat(samples []Sample) (*SampleBatchFlat, error) {
	if len(samples) == 0 {
		return &SampleBatchFlat{}, nil
	}

	shape := samples[0].Shape
	size := 1
	for _, dim := range shape {
		size *= dim
	}

	flat := make([]float32, 0, len(samples)*size)
	targets := make([]float32, len(samples))
	for i, s := range samples {
		if !sameShape(s.Shape, shape) {
			return nil, fmt.Errorf("inconsistent shapes: sample 0 has shape %v, sample %d has shape %v",
				shape, i, s.Shape)
		}
		if len(s.Data) != size {
			return nil, fmt.Errorf("sample %d buffer has wrong size: expected %d, got %d", i, size, len(s.Data))
		}
		tgt, err := toFloat32(s.Target)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		flat = append(flat, s.Data...)
		targets[i] = tgt
	}

	return &SampleBatchFlat{
		Inputs:  flat,
		Targets: targets,
		Batch:   len(samples),
		Shape:   shape,
	}, nil
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ToGomlxTensors converts the flat batch to gomlx tensors. Two-dimensional
// samples produce a [batch, channels, times] input tensor, one-dimensional
// ones [batch, channels]; targets are a [batch] vector.
func (b *SampleBatchFlat) ToGomlxTensors() (inputs, targets *tensors.Tensor, err error) {
	if b.Batch == 0 {
		return tensors.FromAnyValue(make([][]float32, 0)), tensors.FromAnyValue(make([]float32, 0)), nil
	}

	switch len(b.Shape) {
	case 1:
		channels := b.Shape[0]
		data := make([][]float32, b.Batch)
		for i := range b.Batch {
			data[i] = b.Inputs[i*channels : (i+1)*channels]
		}
		inputs = tensors.FromAnyValue(data)
	case 2:
		channels, times := b.Shape[0], b.Shape[1]
		data := make([][][]float32, b.Batch)
		idx := 0
		for i := range b.Batch {
			data[i] = make([][]float32, channels)
			for j := range channels {
				data[i][j] = b.Inputs[idx : idx+times]
				idx += times
			}
		}
		inputs = tensors.FromAnyValue(data)
	default:
		return nil, nil, fmt.Errorf("unsupported sample rank %d", len(b.Shape))
	}

	return inputs, tensors.FromAnyValue(b.Targets), nil
}

// Tensors reads a batch of samples and returns them as gomlx tensors.
func (c *ConcatenatedRecordingDataset) Tensors(indices []int) (inputs, targets *tensors.Tensor, err error) {
	samples, err := c.Batch(indices)
	if err != nil {
		return nil, nil, err
	}
	flat, err := MakeSampleBatchFlat(samples)
	if err != nil {
		return nil, nil, err
	}
	return flat.ToGomlxTensors()
}

// Name returns the name of the dataset for the gomlx Dataset interface.
func (c *ConcatenatedRecordingDataset) Name() string {
	return "ConcatenatedRecordingDataset"
}

// Yield returns the next batch of data for the gomlx Dataset interface.
// Batches are taken sequentially; the batch size is controlled by the
// BatchSize field. Once the dataset is exhausted Yield keeps returning
// io.EOF until Restart is called.
func (c *ConcatenatedRecordingDataset) Yield() (spec any, inputs []*tensors.Tensor, targets []*tensors.Tensor, err error) {
	total := c.Len()
	if c.cursor >= total {
		return nil, nil, nil, io.EOF
	}

	end := c.cursor + c.BatchSize
	if end > total {
		end = total
	}
	indices := make([]int, 0, end-c.cursor)
	for i := c.cursor; i < end; i++ {
		indices = append(indices, i)
	}
	c.cursor = end

	in, tgt, err := c.Tensors(indices)
	if err != nil {
		return nil, nil, nil, err
	}
	return nil, []*tensors.Tensor{in}, []*tensors.Tensor{tgt}, nil
}

// Restart resets the dataset for a new epoch.
func (c *ConcatenatedRecordingDataset) Restart() error {
	c.cursor = 0
	return nil
}
