package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-waveform/wave/signal"
)

func ExampleGenerator_Preview() {
	g := signal.NewGenerator(signal.WithSampleRate(48000), signal.WithSeed(1))

	buf, err := g.Preview(2, 48000)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%d frames, %d channels\n", buf.Frames(), buf.Channels())

	// Output:
	// 48000 frames, 2 channels
}
