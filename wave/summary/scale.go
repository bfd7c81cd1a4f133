package summary

import "math"

const (
	// NonTransientAttenuation is the amplitude factor applied to columns
	// with zero transient weight.
	NonTransientAttenuation = 0.15

	// TransientExpansionExponent controls how strongly the magnitude curve
	// is expanded toward full scale as the transient weight grows.
	TransientExpansionExponent = 1.5
)

// ScaleAmplitude maps a sample amplitude in [-1, 1] and a transient weight
// in [0, 1] to a display amplitude. Non-transient material is attenuated to
// 15% of its magnitude; as weight approaches 1 the magnitude is expanded
// toward full scale, so a full-scale sample at weight 1 stays at 1. The
// mapping preserves sign and is monotonic in weight for fixed amplitude.
func ScaleAmplitude(amplitude, weight float64) float64 {
	attenuation := NonTransientAttenuation + weight*(1-NonTransientAttenuation)
	scaleFactor := 1 / (1 + weight*TransientExpansionExponent)
	scaled := math.Pow(math.Abs(amplitude), scaleFactor) * attenuation

	if amplitude < 0 {
		return -scaled
	}
	return scaled
}

// Scale returns the display min/max of d with ScaleAmplitude applied to
// both bounds using the column's own transient weight.
func (d SampleData) Scale() (minVal, maxVal float64) {
	return ScaleAmplitude(d.Min, d.TransientWeight), ScaleAmplitude(d.Max, d.TransientWeight)
}

// ScaleSequence applies ScaleAmplitude to every column of seq and writes the
// display bounds into dstMin and dstMax, which must be at least len(seq)
// long. Intended for paint-time batch conversion of a whole summary.
func ScaleSequence(dstMin, dstMax []float64, seq Sequence) {
	for i, d := range seq {
		dstMin[i], dstMax[i] = d.Scale()
	}
}
