package main

// Example command that assembles a small windowed dataset in memory,
// concatenates two recordings, splits them by subject and converts a batch
// into gomlx tensors using the helpers provided in the package.
//
// Usage:
//   go run ./example

import (
	"fmt"
	"log"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"neuroset/datasets"
	"neuroset/eeg"
)

// fakeEpochs builds n two-channel windows of length 4 with alternating
// class targets.
func fakeEpochs(n int, sfreq float64) (*eeg.Epochs, error) {
	data := make([][][]float32, n)
	targets := make([]int, n)
	iWindow := make([]int, n)
	iStart := make([]int, n)
	iStop := make([]int, n)
	for w := range data {
		v := float32(w)
		data[w] = [][]float32{{v, v, v, v}, {-v, -v, -v, -v}}
		targets[w] = w % 2
		iWindow[w] = w
		iStart[w] = w * 4
		iStop[w] = w*4 + 4
	}
	md := dataframe.New(
		series.New(targets, series.Int, "target"),
		series.New(iWindow, series.Int, "i_window_in_trial"),
		series.New(iStart, series.Int, "i_start_in_trial"),
		series.New(iStop, series.Int, "i_stop_in_trial"),
	)
	return eeg.NewEpochs(data, md, sfreq, []string{"C3", "C4"})
}

func describeRow(subject string) dataframe.DataFrame {
	return dataframe.New(series.New([]string{subject}, series.String, "subject_id"))
}

func main() {
	members := make([]datasets.Member, 0, 2)
	for _, subject := range []string{"S1", "S2"} {
		ep, err := fakeEpochs(6, 128)
		if err != nil {
			log.Fatalf("failed to build epochs: %v", err)
		}
		ds, err := datasets.NewWindowedRecordingDataset(ep, describeRow(subject))
		if err != nil {
			log.Fatalf("failed to wrap epochs: %v", err)
		}
		members = append(members, ds)
	}

	concat, err := datasets.NewConcatenatedRecordingDataset(members)
	if err != nil {
		log.Fatalf("failed to concatenate: %v", err)
	}
	fmt.Printf("Total windows available: %d\n", concat.Len())

	desc, err := concat.Description()
	if err != nil {
		log.Fatalf("failed to build description: %v", err)
	}
	fmt.Println(desc)

	splits, err := concat.Split("subject_id", nil)
	if err != nil {
		log.Fatalf("failed to split: %v", err)
	}
	for name, sub := range splits {
		fmt.Printf("subject %s: %d windows\n", name, sub.Len())
	}

	// Convert the first few windows into gomlx tensors.
	inputs, targets, err := concat.Tensors([]int{0, 1, 2, 3})
	if err != nil {
		log.Fatalf("failed to build tensors: %v", err)
	}
	fmt.Printf("input tensor shape: %v\n", inputs.Shape().Dimensions)
	fmt.Printf("target tensor shape: %v\n", targets.Shape().Dimensions)
}
