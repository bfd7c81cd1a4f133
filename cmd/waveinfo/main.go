// Command waveinfo reduces a synthetic preview waveform to per-pixel
// min/max columns and prints the result as a table.
//
// Usage:
//
//	waveinfo [flags]
//
// Examples:
//
//	waveinfo -width 40
//	waveinfo -frames 96000 -channels 2 -mode transient
//	waveinfo -prepend 12000 -append 4800 -width 60
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-waveform/wave/reduce"
	"github.com/cwbudde/algo-waveform/wave/signal"
	"github.com/cwbudde/algo-waveform/wave/summary"
)

func main() {
	frames := flag.Int("frames", 48000, "frames per channel in the preview buffer")
	channels := flag.Int("channels", 1, "channel count")
	rate := flag.Float64("rate", 48000, "sample rate of the preview buffer")
	width := flag.Int("width", 32, "output width in pixel columns")
	prepend := flag.Int("prepend", 0, "silent samples prepended in virtual space")
	postpend := flag.Int("append", 0, "silent samples appended in virtual space")
	mode := flag.String("mode", "normal", "display mode: normal or transient")
	flag.Parse()

	displayMode := reduce.ModeNormal
	switch *mode {
	case "normal":
	case "transient":
		displayMode = reduce.ModeTransientHighlight
	default:
		fmt.Fprintf(os.Stderr, "waveinfo: unknown mode %q\n", *mode)
		os.Exit(2)
	}

	gen := signal.NewGenerator(signal.WithSampleRate(*rate))
	buf, err := gen.Preview(*channels, *frames)
	if err != nil {
		fmt.Fprintf(os.Stderr, "waveinfo: %v\n", err)
		os.Exit(1)
	}

	total := *frames + *prepend + *postpend
	seq, ok := reduce.Reduce(reduce.Request{
		Buffer:           buf,
		SamplesToPrepend: *prepend,
		Window:           reduce.NewRange(0, total),
		Width:            *width,
		Mode:             displayMode,
	})
	if !ok {
		fmt.Fprintln(os.Stderr, "waveinfo: degenerate geometry, nothing to reduce")
		os.Exit(1)
	}

	printSummary(seq, total / *width, displayMode)
}

func printSummary(seq summary.Sequence, samplesPerPoint int, mode reduce.DisplayMode) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if mode == reduce.ModeTransientHighlight {
		fmt.Fprintln(w, "col\tsamples\tmin\tmax\tweight\tdispMin\tdispMax")
	} else {
		fmt.Fprintln(w, "col\tsamples\tmin\tmax")
	}

	for i, d := range seq {
		lo := i * samplesPerPoint
		hi := lo + samplesPerPoint
		if mode == reduce.ModeTransientHighlight {
			dMin, dMax := d.Scale()
			fmt.Fprintf(w, "%d\t%d..%d\t%+.4f\t%+.4f\t%.3f\t%+.4f\t%+.4f\n",
				i, lo, hi, d.Min, d.Max, d.TransientWeight, dMin, dMax)
		} else {
			fmt.Fprintf(w, "%d\t%d..%d\t%+.4f\t%+.4f\n", i, lo, hi, d.Min, d.Max)
		}
	}

	w.Flush()
}
