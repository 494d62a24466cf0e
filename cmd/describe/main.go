// Command describe assembles a concatenated recording dataset from CSV files
// on disk and reports on it: the aggregate description table, optional named
// splits, and an optional channel plot of the first recording.
//
// Usage:
//
//	describe -recordings 'data/*.csv' -descriptions data/participants.csv \
//	    -sfreq 250 -target subject_id -split subject_id -plot out.png
//
// Each recording CSV has channel names in the header and one time sample per
// row. The descriptions CSV has one row per recording, in glob order.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"neuroset/datasets"
	"neuroset/eeg"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	recordingsGlob = flag.String("recordings", "", "glob matching recording CSV files (required)")
	descriptionCSV = flag.String("descriptions", "", "CSV with one description row per recording (required)")
	samplingRate   = flag.Float64("sfreq", 250, "sampling rate of the recordings in Hz")
	targetField    = flag.String("target", "", "description field to expose as the supervised target")
	splitField     = flag.String("split", "", "description field to split the concatenation by")
	plotPath       = flag.String("plot", "", "write a channel plot of the first recording to this PNG")
	plotSamples    = flag.Int("plot-samples", 1000, "number of samples to plot per channel")
)

func main() {
	flag.Parse()
	if *recordingsGlob == "" || *descriptionCSV == "" {
		flag.Usage()
		os.Exit(2)
	}

	concat, err := loadConcat(*recordingsGlob, *descriptionCSV, *samplingRate, *targetField)
	if err != nil {
		log.Fatalf("loading datasets: %v", err)
	}

	desc, err := concat.Description()
	if err != nil {
		log.Fatalf("building description: %v", err)
	}
	fmt.Printf("%d recordings, %d samples total\n", len(concat.Children()), concat.Len())
	fmt.Println(desc)

	if *splitField != "" {
		splits, err := concat.Split(*splitField, nil)
		if err != nil {
			log.Fatalf("splitting by %s: %v", *splitField, err)
		}
		names := make([]string, 0, len(splits))
		for name := range splits {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			sub := splits[name]
			fmt.Printf("split %s=%s: %d recordings, %d samples\n",
				*splitField, name, len(sub.Children()), sub.Len())
		}
	}

	if *plotPath != "" {
		first, ok := concat.Children()[0].(*datasets.RecordingDataset)
		if !ok {
			log.Fatalf("plotting requires continuous recordings")
		}
		if err := plotChannels(first.Raw, *plotSamples, *plotPath); err != nil {
			log.Fatalf("plotting: %v", err)
		}
		log.Printf("wrote %s", *plotPath)
	}
}

// loadConcat reads every recording matched by pattern, pairs each with the
// corresponding row of the descriptions CSV and concatenates the result.
func loadConcat(pattern, descPath string, sfreq float64, target string) (*datasets.ConcatenatedRecordingDataset, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad glob %s: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no recording CSVs match %s", pattern)
	}
	sort.Strings(paths)

	f, err := os.Open(descPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open descriptions: %w", err)
	}
	defer f.Close()
	descs := dataframe.ReadCSV(f)
	if err := descs.Error(); err != nil {
		return nil, fmt.Errorf("failed to read descriptions: %w", err)
	}
	if descs.Nrow() != len(paths) {
		return nil, fmt.Errorf("descriptions have %d rows for %d recordings", descs.Nrow(), len(paths))
	}

	members := make([]datasets.Member, len(paths))
	for i, path := range paths {
		raw, err := eeg.LoadRawCSV(path, sfreq)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		ds, err := datasets.NewRecordingDataset(raw, descs.Subset([]int{i}), target)
		if err != nil {
			return nil, fmt.Errorf("wrapping %s: %w", path, err)
		}
		members[i] = ds
	}

	return datasets.NewConcatenatedRecordingDataset(members)
}

// plotChannels draws the first n samples of every channel as one line per
// channel against time in seconds.
func plotChannels(raw datasets.Recording, n int, out string) error {
	if total := raw.NumSamples(); n > total {
		n = total
	}

	p := plot.New()
	p.Title.Text = "recording channels"
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = "amplitude"

	sfreq := raw.SamplingRate()
	names := raw.ChannelNames()
	lines := make([]plotter.XYs, len(names))
	for i := 0; i < n; i++ {
		col, err := raw.Sample(i)
		if err != nil {
			return err
		}
		for ch := range lines {
			lines[ch] = append(lines[ch], plotter.XY{X: float64(i) / sfreq, Y: float64(col[ch])})
		}
	}
	for ch, name := range names {
		line, err := plotter.NewLine(lines[ch])
		if err != nil {
			return err
		}
		line.Width = vg.Points(0.8)
		p.Add(line)
		p.Legend.Add(name, line)
	}
	p.Add(plotter.NewGrid())

	return p.Save(8*vg.Inch, 4*vg.Inch, out)
}
