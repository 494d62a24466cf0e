package datasets

import (
	"io"
	"testing"
)

// makeWindowedConcat builds a concatenation of two windowed recordings with
// 3 and 2 windows each.
func makeWindowedConcat(t *testing.T) *ConcatenatedRecordingDataset {
	t.Helper()
	a, err := NewWindowedRecordingDataset(makeEpochs(t, 3, 100), makeDescription("S1", 30))
	if err != nil {
		t.Fatalf("NewWindowedRecordingDataset failed: %v", err)
	}
	b, err := NewWindowedRecordingDataset(makeEpochs(t, 2, 100), makeDescription("S2", 31))
	if err != nil {
		t.Fatalf("NewWindowedRecordingDataset failed: %v", err)
	}
	c, err := NewConcatenatedRecordingDataset([]Member{a, b})
	if err != nil {
		t.Fatalf("NewConcatenatedRecordingDataset failed: %v", err)
	}
	return c
}

func TestConcat_BatchAndFlat(t *testing.T) {
	c := makeWindowedConcat(t)

	samples, err := c.Batch([]int{0, 2, 4})
	if err != nil {
		t.Fatalf("Batch error: %v", err)
	}
	if len(samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(samples))
	}
	// Global index 4 is the second window of the second recording.
	if samples[2].Data[0] != 1 {
		t.Fatalf("unexpected data for global index 4: %v", samples[2].Data)
	}

	flat, err := MakeSampleBatchFlat(samples)
	if err != nil {
		t.Fatalf("MakeSampleBatchFlat error: %v", err)
	}
	if flat.Batch != 3 {
		t.Fatalf("expected batch 3, got %d", flat.Batch)
	}
	if len(flat.Inputs) != 3*2*4 {
		t.Fatalf("expected %d input values, got %d", 3*2*4, len(flat.Inputs))
	}
	// Targets are w%2 per window: windows 0, 2 and 1.
	if flat.Targets[0] != 0 || flat.Targets[1] != 0 || flat.Targets[2] != 1 {
		t.Fatalf("unexpected targets %v", flat.Targets)
	}
}

func TestMakeSampleBatchFlat_InconsistentShapes(t *testing.T) {
	samples := []Sample{
		{Data: []float32{1, 2}, Shape: []int{2}, Target: 0},
		{Data: []float32{1, 2, 3}, Shape: []int{3}, Target: 1},
	}
	if _, err := MakeSampleBatchFlat(samples); err == nil {
		t.Fatalf("expected error for inconsistent shapes")
	}
}

func TestConcat_Tensors(t *testing.T) {
	c := makeWindowedConcat(t)

	inputs, targets, err := c.Tensors([]int{0, 1})
	if err != nil {
		t.Fatalf("Tensors error: %v", err)
	}
	if got := inputs.Shape().Dimensions; len(got) != 3 || got[0] != 2 || got[1] != 2 || got[2] != 4 {
		t.Fatalf("unexpected input dims %v", got)
	}
	if got := targets.Shape().Dimensions; len(got) != 1 || got[0] != 2 {
		t.Fatalf("unexpected target dims %v", got)
	}
}

func TestConcat_YieldAndRestart(t *testing.T) {
	c := makeWindowedConcat(t)
	c.BatchSize = 2

	batches := 0
	for {
		_, inputs, targets, err := c.Yield()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Yield error: %v", err)
		}
		if len(inputs) != 1 || len(targets) != 1 {
			t.Fatalf("expected one input and one target tensor per batch")
		}
		batches++
		if batches > 10 {
			t.Fatalf("Yield never exhausted")
		}
	}
	// 5 windows at batch size 2 make 3 batches.
	if batches != 3 {
		t.Fatalf("expected 3 batches, got %d", batches)
	}

	if err := c.Restart(); err != nil {
		t.Fatalf("Restart error: %v", err)
	}
	if _, _, _, err := c.Yield(); err != nil {
		t.Fatalf("Yield after Restart error: %v", err)
	}
}

// Continuous concatenations batch too, using the per-dataset target.
func TestConcat_TensorsContinuous(t *testing.T) {
	ds, err := NewRecordingDataset(makeRaw(t, 4, 100), makeDescription("S1", 30), "age")
	if err != nil {
		t.Fatalf("NewRecordingDataset failed: %v", err)
	}
	c, err := NewConcatenatedRecordingDataset([]Member{ds})
	if err != nil {
		t.Fatalf("NewConcatenatedRecordingDataset failed: %v", err)
	}
	inputs, targets, err := c.Tensors([]int{0, 1, 2})
	if err != nil {
		t.Fatalf("Tensors error: %v", err)
	}
	if got := inputs.Shape().Dimensions; len(got) != 2 || got[0] != 3 || got[1] != 2 {
		t.Fatalf("unexpected input dims %v", got)
	}
	if got := targets.Shape().Dimensions; len(got) != 1 || got[0] != 3 {
		t.Fatalf("unexpected target dims %v", got)
	}
}
