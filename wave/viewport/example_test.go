package viewport_test

import (
	"fmt"

	"github.com/cwbudde/algo-waveform/wave/buffer"
	"github.com/cwbudde/algo-waveform/wave/viewport"
)

func ExampleModel() {
	samples := make([]float64, 4800)
	for i := range samples {
		samples[i] = 0.5
	}

	m, err := viewport.New(buffer.Mono(samples), viewport.WithPadding(1200, 0))
	if err != nil {
		panic(err)
	}

	// Setting a width requests the first reduction; the result arrives on
	// the delivery channel.
	m.SetWidth(6)
	seq := <-m.Deliveries()

	fmt.Printf("total %d, columns %d\n", m.TotalVirtual(), len(seq))
	fmt.Printf("col 0: max %.1f (padding)\n", seq[0].Max)
	fmt.Printf("col 2: max %.1f (audio)\n", seq[2].Max)

	// Output:
	// total 6000, columns 6
	// col 0: max 0.0 (padding)
	// col 2: max 0.5 (audio)
}
