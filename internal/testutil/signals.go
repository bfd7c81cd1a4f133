package testutil

import "math"

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Step generates a signal that holds low for splitAt samples and high
// afterwards, useful for exercising transient edges.
func Step(low, high float64, length, splitAt int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i < splitAt {
			out[i] = low
		} else {
			out[i] = high
		}
	}
	return out
}

// ClickTrain generates silence with a single-sample click of the given
// amplitude every spacing samples, starting at offset.
func ClickTrain(amplitude float64, length, spacing, offset int) []float64 {
	out := make([]float64, length)
	if spacing < 1 {
		spacing = 1
	}
	for i := offset; i < length; i += spacing {
		if i >= 0 {
			out[i] = amplitude
		}
	}
	return out
}
